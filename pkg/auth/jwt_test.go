package auth_test

import (
	"testing"

	"github.com/bilemo/api/pkg/auth"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := auth.GenerateToken(42, "CLIENT", 7)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := auth.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != 42 || claims.Role != "CLIENT" || claims.CustomerID != 7 {
		t.Errorf("claims = %+v", claims)
	}
}

func TestGarbageTokenFails(t *testing.T) {
	if _, err := auth.ValidateToken("not.a.token"); err == nil {
		t.Error("expected error")
	}
}

func TestTamperedTokenFails(t *testing.T) {
	token, err := auth.GenerateToken(1, "ADMIN", 0)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := auth.ValidateToken(token + "x"); err == nil {
		t.Error("expected signature error")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := auth.HashPassword("secret123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "secret123" {
		t.Fatal("password stored in clear")
	}
	if !auth.CheckPassword(hash, "secret123") {
		t.Error("correct password rejected")
	}
	if auth.CheckPassword(hash, "wrong") {
		t.Error("wrong password accepted")
	}
}
