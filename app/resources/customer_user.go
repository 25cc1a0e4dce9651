package resources

import (
	"time"

	"github.com/bilemo/api/app/models"
	"github.com/bilemo/api/pkg/collection"
)

// CustomerUserListItem is the compact shape used by paged listings.
type CustomerUserListItem struct {
	ID        uint   `json:"id"`
	LastName  string `json:"lastName"`
	FirstName string `json:"firstName"`
	Email     string `json:"email"`
}

// CustomerUserDetail carries the full record.
type CustomerUserDetail struct {
	ID         uint      `json:"id"`
	LastName   string    `json:"lastName"`
	FirstName  string    `json:"firstName"`
	Email      string    `json:"email"`
	PostalCode string    `json:"postalCode"`
	Address    string    `json:"address"`
	City       string    `json:"city"`
	Country    string    `json:"country"`
	Phone      string    `json:"phone"`
	CreatedAt  time.Time `json:"createdAt"`
	CustomerID uint      `json:"customerId"`
}

// CustomerUserList maps a page of end users to their list shape.
func CustomerUserList(users []models.CustomerUser) []CustomerUserListItem {
	return collection.Map(users, func(u models.CustomerUser) CustomerUserListItem {
		return CustomerUserListItem{
			ID:        u.ID,
			LastName:  u.LastName,
			FirstName: u.FirstName,
			Email:     u.Email,
		}
	})
}

// NewCustomerUserDetail maps one end user to its detail shape.
func NewCustomerUserDetail(u models.CustomerUser) CustomerUserDetail {
	return CustomerUserDetail{
		ID:         u.ID,
		LastName:   u.LastName,
		FirstName:  u.FirstName,
		Email:      u.Email,
		PostalCode: u.PostalCode,
		Address:    u.Address,
		City:       u.City,
		Country:    u.Country,
		Phone:      u.Phone,
		CreatedAt:  u.CreatedAt,
		CustomerID: u.CustomerID,
	}
}
