package controllers

import (
	"errors"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/bilemo/api/app/models"
	"github.com/bilemo/api/app/repositories"
	"github.com/bilemo/api/app/resources"
	"github.com/bilemo/api/app/services"
	"github.com/bilemo/api/pkg/bind"
	"github.com/bilemo/api/pkg/cache"
	"github.com/bilemo/api/pkg/rbac"
	"github.com/bilemo/api/pkg/response"
	"github.com/bilemo/api/pkg/router"
	"github.com/bilemo/api/pkg/validate"
)

// CustomerController manages client companies and their login accounts.
type CustomerController struct {
	customers *repositories.CustomerRepository
	users     *repositories.UserRepository
	accounts  *services.AccountService
	cache     cache.Store
	router    *router.Router
}

func NewCustomerController(
	customers *repositories.CustomerRepository,
	users *repositories.UserRepository,
	accounts *services.AccountService,
	store cache.Store,
	rt *router.Router,
) *CustomerController {
	return &CustomerController{
		customers: customers,
		users:     users,
		accounts:  accounts,
		cache:     store,
		router:    rt,
	}
}

// AccountInput is the nested login account carried by a customer or
// employee create payload.
type AccountInput struct {
	Email    string `json:"email"    validate:"required,email,max=180"`
	Password string `json:"password" validate:"required,min=8"`
}

// AccountUpdateInput is the nested partial account update.
type AccountUpdateInput struct {
	Email    *string `json:"email"    validate:"nullable,email,max=180"`
	Password *string `json:"password" validate:"nullable,min=8"`
}

// CreateCustomerInput is the create payload. The nested account is
// mandatory: a customer without a login cannot use the API.
type CreateCustomerInput struct {
	Company    string        `json:"company"    validate:"required,max=255"`
	LastName   string        `json:"lastName"   validate:"required,max=255"`
	FirstName  string        `json:"firstName"  validate:"required,max=255"`
	PostalCode string        `json:"postalCode" validate:"required,max=10"`
	Address    string        `json:"address"    validate:"required,max=255"`
	City       string        `json:"city"       validate:"required,max=50"`
	Country    string        `json:"country"    validate:"required,max=50"`
	Phone      string        `json:"phone"      validate:"required,max=50"`
	TVANumber  string        `json:"tvaNumber"  validate:"nullable,max=50"`
	SIRET      string        `json:"siret"      validate:"nullable,max=50"`
	User       *AccountInput `json:"user"`
}

// UpdateCustomerInput is the partial-update payload.
type UpdateCustomerInput struct {
	Company    *string             `json:"company"    validate:"nullable,max=255"`
	LastName   *string             `json:"lastName"   validate:"nullable,max=255"`
	FirstName  *string             `json:"firstName"  validate:"nullable,max=255"`
	PostalCode *string             `json:"postalCode" validate:"nullable,max=10"`
	Address    *string             `json:"address"    validate:"nullable,max=255"`
	City       *string             `json:"city"       validate:"nullable,max=50"`
	Country    *string             `json:"country"    validate:"nullable,max=50"`
	Phone      *string             `json:"phone"      validate:"nullable,max=50"`
	TVANumber  *string             `json:"tvaNumber"  validate:"nullable,max=50"`
	SIRET      *string             `json:"siret"      validate:"nullable,max=50"`
	User       *AccountUpdateInput `json:"user"`
}

// List serves GET /api/customers.
func (c *CustomerController) List(w http.ResponseWriter, r *http.Request) {
	req, herr := services.ParsePageRequest(r)
	if herr != nil {
		response.FromError(w, herr)
		return
	}

	customers, herr := services.Paginate(r.Context(), c.cache, "customer", "", req,
		c.customers.Count, c.customers.List)
	if herr != nil {
		response.FromError(w, herr)
		return
	}

	response.Success(w, resources.CustomerList(customers))
}

// Detail serves GET /api/customers/{id}.
func (c *CustomerController) Detail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	customer, err := c.customers.Find(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.NotFound(w)
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.Success(w, resources.NewCustomerDetail(customer))
}

// Create serves POST /api/customers. The customer row and its login
// account are created together; if the account cannot be created the
// customer row is rolled back.
func (c *CustomerController) Create(w http.ResponseWriter, r *http.Request) {
	var input CreateCustomerInput
	errs, err := bind.JSON(r, &input)
	if err != nil {
		bindError(w, err)
		return
	}
	if errs == nil {
		errs = map[string]string{}
	}
	if input.User == nil {
		errs["user"] = "The user field is required."
	} else {
		for field, msg := range validate.Struct(input.User) {
			errs["user."+field] = msg
		}
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	customer := models.Customer{
		Company:    input.Company,
		LastName:   input.LastName,
		FirstName:  input.FirstName,
		PostalCode: input.PostalCode,
		Address:    input.Address,
		City:       input.City,
		Country:    input.Country,
		Phone:      input.Phone,
		TVANumber:  input.TVANumber,
		SIRET:      input.SIRET,
		CreatedAt:  time.Now(),
	}
	err = c.customers.Transaction(func(tx *gorm.DB) error {
		if err := c.customers.WithTx(tx).Create(&customer); err != nil {
			return err
		}
		user, herr := c.accounts.WithTx(tx).Create(input.User.Email, input.User.Password, rbac.RoleClient, &customer.ID, nil)
		if herr != nil {
			return herr
		}
		customer.User = &user
		return nil
	})
	if err != nil {
		response.FromError(w, err)
		return
	}

	services.Invalidate(r.Context(), c.cache, "customer")
	locate(w, c.router, "customers.detail", customer.ID)
	response.Created(w, resources.NewCustomerDetail(customer))
}

// Update serves PUT /api/customers/{id}. The nested account, when
// present, is merged field by field; the password is only rehashed when
// a new one was sent.
func (c *CustomerController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	customer, err := c.customers.Find(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.NotFound(w)
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	var input UpdateCustomerInput
	errs, err := bind.JSON(r, &input)
	if err != nil {
		bindError(w, err)
		return
	}
	if errs == nil {
		errs = map[string]string{}
	}
	if input.User != nil {
		for field, msg := range validate.Struct(input.User) {
			errs["user."+field] = msg
		}
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	// Row and account change together or not at all: a rejected account
	// update must not leave partially applied customer fields behind.
	applyCustomerUpdate(&customer, input)
	err = c.customers.Transaction(func(tx *gorm.DB) error {
		if err := c.customers.WithTx(tx).Update(&customer); err != nil {
			return err
		}
		if input.User == nil {
			return nil
		}

		account, err := c.users.WithTx(tx).FindByCustomer(customer.ID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewError(http.StatusBadRequest, "This customer has no login account.")
		}
		if err != nil {
			return err
		}
		if herr := c.accounts.WithTx(tx).Update(&account, input.User.Email, input.User.Password, nil); herr != nil {
			return herr
		}
		customer.User = &account
		return nil
	})
	if err != nil {
		response.FromError(w, err)
		return
	}

	services.Invalidate(r.Context(), c.cache, "customer")
	locate(w, c.router, "customers.detail", customer.ID)
	response.Success(w, resources.NewCustomerDetail(customer))
}

// Delete serves DELETE /api/customers/{id}. The FK constraints take the
// customer's end users and account with it.
func (c *CustomerController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	customer, err := c.customers.Find(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.NotFound(w)
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if err := c.customers.Delete(&customer); err != nil {
		response.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	services.Invalidate(r.Context(), c.cache, "customer")
	services.Invalidate(r.Context(), c.cache, "customerUser")
	response.NoContent(w)
}

func applyCustomerUpdate(customer *models.Customer, in UpdateCustomerInput) {
	if in.Company != nil {
		customer.Company = *in.Company
	}
	if in.LastName != nil {
		customer.LastName = *in.LastName
	}
	if in.FirstName != nil {
		customer.FirstName = *in.FirstName
	}
	if in.PostalCode != nil {
		customer.PostalCode = *in.PostalCode
	}
	if in.Address != nil {
		customer.Address = *in.Address
	}
	if in.City != nil {
		customer.City = *in.City
	}
	if in.Country != nil {
		customer.Country = *in.Country
	}
	if in.Phone != nil {
		customer.Phone = *in.Phone
	}
	if in.TVANumber != nil {
		customer.TVANumber = *in.TVANumber
	}
	if in.SIRET != nil {
		customer.SIRET = *in.SIRET
	}
}
