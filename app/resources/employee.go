package resources

import (
	"time"

	"github.com/bilemo/api/app/models"
	"github.com/bilemo/api/pkg/collection"
)

// EmployeeListItem is the compact shape used by paged listings.
type EmployeeListItem struct {
	ID        uint   `json:"id"`
	LastName  string `json:"lastName"`
	FirstName string `json:"firstName"`
}

// EmployeeDetail carries the full record plus the login account email
// when one exists.
type EmployeeDetail struct {
	ID           uint      `json:"id"`
	LastName     string    `json:"lastName"`
	FirstName    string    `json:"firstName"`
	Phone        string    `json:"phone"`
	CreatedAt    time.Time `json:"createdAt"`
	AccountEmail string    `json:"accountEmail,omitempty"`
	AccountRole  string    `json:"accountRole,omitempty"`
}

// EmployeeList maps a page of employees to their list shape.
func EmployeeList(employees []models.Employee) []EmployeeListItem {
	return collection.Map(employees, func(e models.Employee) EmployeeListItem {
		return EmployeeListItem{
			ID:        e.ID,
			LastName:  e.LastName,
			FirstName: e.FirstName,
		}
	})
}

// NewEmployeeDetail maps one employee to its detail shape.
func NewEmployeeDetail(e models.Employee) EmployeeDetail {
	detail := EmployeeDetail{
		ID:        e.ID,
		LastName:  e.LastName,
		FirstName: e.FirstName,
		Phone:     e.Phone,
		CreatedAt: e.CreatedAt,
	}
	if e.User != nil {
		detail.AccountEmail = e.User.Email
		detail.AccountRole = e.User.Role
	}
	return detail
}
