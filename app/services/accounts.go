package services

import (
	"errors"
	"net/http"

	"gorm.io/gorm"

	"github.com/bilemo/api/app/models"
	"github.com/bilemo/api/app/repositories"
	"github.com/bilemo/api/pkg/auth"
	"github.com/bilemo/api/pkg/response"
)

// AccountService manages login accounts: email uniqueness, password
// hashing and partial updates.
type AccountService struct {
	users *repositories.UserRepository
}

func NewAccountService(users *repositories.UserRepository) *AccountService {
	return &AccountService{users: users}
}

// WithTx returns a copy of the service whose writes run inside tx, so an
// account and its owning row commit or roll back together.
func (s *AccountService) WithTx(tx *gorm.DB) *AccountService {
	return &AccountService{users: s.users.WithTx(tx)}
}

// Create hashes the password and persists a new account. The email must
// not already be in use.
func (s *AccountService) Create(email, password, role string, customerID, employeeID *uint) (models.User, *response.HTTPError) {
	taken, err := s.users.EmailTaken(email, 0)
	if err != nil {
		return models.User{}, response.NewError(http.StatusInternalServerError, "Internal server error")
	}
	if taken {
		return models.User{}, response.NewError(http.StatusBadRequest, "This email address is already in use.")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, response.NewError(http.StatusInternalServerError, "Internal server error")
	}

	user := models.User{
		Email:      email,
		Role:       role,
		Password:   hash,
		CustomerID: customerID,
		EmployeeID: employeeID,
	}
	if err := s.users.Create(&user); err != nil {
		// A concurrent insert can slip past EmailTaken; the unique index
		// reports it as a duplicate key.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.User{}, response.NewError(http.StatusBadRequest, "This email address is already in use.")
		}
		return models.User{}, response.NewError(http.StatusInternalServerError, "Internal server error")
	}
	return user, nil
}

// Update applies the fields present in the payload. The password is only
// rehashed when a new one was actually sent; an untouched account keeps
// its existing hash.
func (s *AccountService) Update(user *models.User, email, password, role *string) *response.HTTPError {
	if email != nil {
		taken, err := s.users.EmailTaken(*email, user.ID)
		if err != nil {
			return response.NewError(http.StatusInternalServerError, "Internal server error")
		}
		if taken {
			return response.NewError(http.StatusBadRequest, "This email address is already in use.")
		}
		user.Email = *email
	}
	if role != nil {
		user.Role = *role
	}
	if password != nil {
		hash, err := auth.HashPassword(*password)
		if err != nil {
			return response.NewError(http.StatusInternalServerError, "Internal server error")
		}
		user.Password = hash
	}

	if err := s.users.Update(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return response.NewError(http.StatusBadRequest, "This email address is already in use.")
		}
		return response.NewError(http.StatusInternalServerError, "Internal server error")
	}
	return nil
}
