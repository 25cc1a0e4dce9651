package resources

import (
	"time"

	"github.com/bilemo/api/app/models"
	"github.com/bilemo/api/pkg/collection"
)

// CustomerListItem is the compact shape used by paged listings.
type CustomerListItem struct {
	ID        uint   `json:"id"`
	Company   string `json:"company"`
	LastName  string `json:"lastName"`
	FirstName string `json:"firstName"`
	City      string `json:"city"`
	Country   string `json:"country"`
	UserCount int    `json:"userCount"`
}

// CustomerDetail carries the full record plus its end users and the
// email of the login account when one exists.
type CustomerDetail struct {
	ID            uint                   `json:"id"`
	Company       string                 `json:"company"`
	LastName      string                 `json:"lastName"`
	FirstName     string                 `json:"firstName"`
	PostalCode    string                 `json:"postalCode"`
	Address       string                 `json:"address"`
	City          string                 `json:"city"`
	Country       string                 `json:"country"`
	Phone         string                 `json:"phone"`
	TVANumber     string                 `json:"tvaNumber,omitempty"`
	SIRET         string                 `json:"siret,omitempty"`
	CreatedAt     time.Time              `json:"createdAt"`
	AccountEmail  string                 `json:"accountEmail,omitempty"`
	CustomerUsers []CustomerUserListItem `json:"customerUsers"`
}

// CustomerList maps a page of customers to their list shape.
func CustomerList(customers []models.Customer) []CustomerListItem {
	return collection.Map(customers, func(c models.Customer) CustomerListItem {
		return CustomerListItem{
			ID:        c.ID,
			Company:   c.Company,
			LastName:  c.LastName,
			FirstName: c.FirstName,
			City:      c.City,
			Country:   c.Country,
			UserCount: len(c.CustomerUsers),
		}
	})
}

// NewCustomerDetail maps one customer to its detail shape.
func NewCustomerDetail(c models.Customer) CustomerDetail {
	detail := CustomerDetail{
		ID:            c.ID,
		Company:       c.Company,
		LastName:      c.LastName,
		FirstName:     c.FirstName,
		PostalCode:    c.PostalCode,
		Address:       c.Address,
		City:          c.City,
		Country:       c.Country,
		Phone:         c.Phone,
		TVANumber:     c.TVANumber,
		SIRET:         c.SIRET,
		CreatedAt:     c.CreatedAt,
		CustomerUsers: CustomerUserList(c.CustomerUsers),
	}
	if c.User != nil {
		detail.AccountEmail = c.User.Email
	}
	return detail
}
