package resources

import (
	"time"

	"github.com/bilemo/api/app/models"
	"github.com/bilemo/api/pkg/collection"
)

// AccountItem is the shape for login accounts. The password hash never
// leaves the model layer.
type AccountItem struct {
	ID         uint      `json:"id"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	CustomerID *uint     `json:"customerId,omitempty"`
	EmployeeID *uint     `json:"employeeId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// NewAccountItem maps one account.
func NewAccountItem(u models.User) AccountItem {
	return AccountItem{
		ID:         u.ID,
		Email:      u.Email,
		Role:       u.Role,
		CustomerID: u.CustomerID,
		EmployeeID: u.EmployeeID,
		CreatedAt:  u.CreatedAt,
	}
}

// AccountList maps a page of accounts.
func AccountList(users []models.User) []AccountItem {
	return collection.Map(users, NewAccountItem)
}
