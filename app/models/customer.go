package models

import "time"

// Customer is a client company of the platform. Each customer owns a set
// of end users (CustomerUser) and has one login account (User).
type Customer struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Company    string    `gorm:"size:255;not null" json:"company"`
	LastName   string    `gorm:"size:255;not null" json:"lastName"`
	FirstName  string    `gorm:"size:255;not null" json:"firstName"`
	PostalCode string    `gorm:"size:10;not null" json:"postalCode"`
	Address    string    `gorm:"size:255;not null" json:"address"`
	City       string    `gorm:"size:50;not null" json:"city"`
	Country    string    `gorm:"size:50;not null" json:"country"`
	Phone      string    `gorm:"size:50;not null" json:"phone"`
	TVANumber  string    `gorm:"size:50" json:"tvaNumber"`
	SIRET      string    `gorm:"size:50" json:"siret"`
	CreatedAt  time.Time `json:"createdAt"`

	CustomerUsers []CustomerUser `gorm:"constraint:OnDelete:CASCADE" json:"customerUsers,omitempty"`
	User          *User          `gorm:"constraint:OnDelete:CASCADE" json:"user,omitempty"`
}
