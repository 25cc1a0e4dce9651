package validate_test

import (
	"testing"

	"github.com/bilemo/api/pkg/validate"
)

type createUserInput struct {
	FirstName string  `json:"firstName" validate:"required,min=2,max=100"`
	LastName  string  `json:"lastName"  validate:"required,min=2,max=100"`
	Email     string  `json:"email"     validate:"required,email"`
	Password  string  `json:"password"  validate:"required,min=8"`
	Role      string  `json:"role"      validate:"required,in=ROLE_CLIENT,ROLE_ADMIN,ROLE_SUPER_ADMIN"`
	Price     float64 `json:"price"     validate:"nullable,gte=0"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(createUserInput{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@example.com",
		Password:  "secret123",
		Role:      "ROLE_CLIENT",
		Price:     499.99,
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(createUserInput{})
	if !validate.HasErrors(errs) {
		t.Error("expected required errors")
	}
	if _, ok := errs["firstName"]; !ok {
		t.Error("expected firstName to be required")
	}
	if _, ok := errs["email"]; !ok {
		t.Error("expected email to be required")
	}
}

func TestEmailRule(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"required,email"`
	}
	errs := validate.Struct(in{Email: "not-an-email"})
	if _, ok := errs["email"]; !ok {
		t.Error("expected email validation error")
	}
	errs = validate.Struct(in{Email: "valid@example.com"})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestInRuleFollowedByAnotherRule(t *testing.T) {
	type in struct {
		Role string `json:"role" validate:"in=ROLE_CLIENT,ROLE_ADMIN,max=32"`
	}
	errs := validate.Struct(in{Role: "ROLE_ADMIN"})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
	errs = validate.Struct(in{Role: "ROLE_NOBODY"})
	if _, ok := errs["role"]; !ok {
		t.Error("expected role error for value outside the list")
	}
}

func TestNullablePointerSkipsRules(t *testing.T) {
	type in struct {
		Name  *string `json:"name"  validate:"nullable,min=2,max=100"`
		Stock *int    `json:"stock" validate:"nullable,gte=0"`
	}
	errs := validate.Struct(in{})
	if validate.HasErrors(errs) {
		t.Errorf("nil pointers should skip validation, got: %v", errs)
	}
}

func TestPointerValueIsValidated(t *testing.T) {
	type in struct {
		Name  *string `json:"name"  validate:"nullable,min=2"`
		Stock *int    `json:"stock" validate:"nullable,gte=0"`
	}
	name := "x"
	stock := -3
	errs := validate.Struct(in{Name: &name, Stock: &stock})
	if _, ok := errs["name"]; !ok {
		t.Error("expected min error on dereferenced name")
	}
	if _, ok := errs["stock"]; !ok {
		t.Error("expected gte error on dereferenced stock")
	}
}

func TestNumericBounds(t *testing.T) {
	type in struct {
		Screen float64 `json:"screenSize" validate:"required,gt=0,lte=20"`
	}
	if errs := validate.Struct(in{Screen: 6.1}); validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
	if errs := validate.Struct(in{Screen: 42}); len(errs) == 0 {
		t.Error("expected lte error for out-of-range value")
	}
}

func TestFirstFailingRuleWins(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"required,email,min=5"`
	}
	errs := validate.Struct(in{Email: "bad"})
	if errs["email"] != "The email must be a valid email address." {
		t.Errorf("unexpected message: %q", errs["email"])
	}
}
