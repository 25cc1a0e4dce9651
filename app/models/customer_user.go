package models

import "time"

// CustomerUser is an end user registered by a customer company.
// Visibility is scoped: a customer only ever sees its own users.
type CustomerUser struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	LastName   string    `gorm:"size:255;not null" json:"lastName"`
	FirstName  string    `gorm:"size:255;not null" json:"firstName"`
	Email      string    `gorm:"size:50;not null" json:"email"`
	PostalCode string    `gorm:"size:10;not null" json:"postalCode"`
	Address    string    `gorm:"size:255;not null" json:"address"`
	City       string    `gorm:"size:50;not null" json:"city"`
	Country    string    `gorm:"size:50;not null" json:"country"`
	Phone      string    `gorm:"size:50;not null" json:"phone"`
	CreatedAt  time.Time `json:"createdAt"`
	CustomerID uint      `gorm:"not null;index" json:"customerId"`

	Customer *Customer `json:"customer,omitempty"`
}
