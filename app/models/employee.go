package models

import "time"

// Employee is a member of the platform staff. Each employee has one
// login account (User) with an elevated role.
type Employee struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	LastName  string    `gorm:"size:255;not null" json:"lastName"`
	FirstName string    `gorm:"size:255;not null" json:"firstName"`
	Phone     string    `gorm:"size:50;not null" json:"phone"`
	CreatedAt time.Time `json:"createdAt"`

	User *User `gorm:"constraint:OnDelete:CASCADE" json:"user,omitempty"`
}
