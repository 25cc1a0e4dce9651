package services

import (
	"errors"
	"net/http"

	"gorm.io/gorm"

	"github.com/bilemo/api/app/repositories"
	"github.com/bilemo/api/pkg/auth"
	"github.com/bilemo/api/pkg/response"
)

// AuthService exchanges credentials for a signed token.
type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService(users *repositories.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Login verifies the credentials and returns a JWT. Unknown email and
// wrong password fail identically so the response does not leak which
// accounts exist.
func (s *AuthService) Login(email, password string) (string, *response.HTTPError) {
	user, err := s.users.FindByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && !auth.CheckPassword(user.Password, password)) {
		return "", response.NewError(http.StatusUnauthorized, "Invalid credentials")
	}
	if err != nil {
		return "", response.NewError(http.StatusInternalServerError, "Internal server error")
	}

	customerID := uint(0)
	if user.CustomerID != nil {
		customerID = *user.CustomerID
	}

	token, err := auth.GenerateToken(user.ID, user.Role, customerID)
	if err != nil {
		return "", response.NewError(http.StatusInternalServerError, "Internal server error")
	}
	return token, nil
}
