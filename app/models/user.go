package models

import "time"

// User is a login account. It belongs to exactly one of a Customer or an
// Employee; standalone admin accounts have neither link set.
type User struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Email      string `gorm:"size:180;not null;uniqueIndex" json:"email"`
	Role       string `gorm:"size:50;not null;default:CLIENT" json:"role"`
	Password   string `gorm:"size:255;not null" json:"-"` // bcrypt hash, never serialised
	CustomerID *uint  `gorm:"uniqueIndex" json:"customerId,omitempty"`
	EmployeeID *uint  `gorm:"uniqueIndex" json:"employeeId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Customer *Customer `json:"customer,omitempty"`
	Employee *Employee `json:"employee,omitempty"`
}
