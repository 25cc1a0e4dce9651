package repositories

import (
	"gorm.io/gorm"

	"github.com/bilemo/api/app/models"
)

// CustomerUserRepository handles database operations for CustomerUser.
type CustomerUserRepository struct {
	db *gorm.DB
}

func NewCustomerUserRepository(db *gorm.DB) *CustomerUserRepository {
	return &CustomerUserRepository{db: db}
}

// List returns one page of end users across all customers, ordered by id.
func (r *CustomerUserRepository) List(offset, limit int) ([]models.CustomerUser, error) {
	var users []models.CustomerUser
	err := r.db.Order("id").Offset(offset).Limit(limit).Find(&users).Error
	return users, err
}

// Count returns the total number of end users.
func (r *CustomerUserRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&models.CustomerUser{}).Count(&n).Error
	return n, err
}

// ListByCustomer returns one page of the customer's own end users.
func (r *CustomerUserRepository) ListByCustomer(customerID uint, offset, limit int) ([]models.CustomerUser, error) {
	var users []models.CustomerUser
	err := r.db.Where("customer_id = ?", customerID).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&users).Error
	return users, err
}

// CountByCustomer returns how many end users the customer owns.
func (r *CustomerUserRepository) CountByCustomer(customerID uint) (int64, error) {
	var n int64
	err := r.db.Model(&models.CustomerUser{}).
		Where("customer_id = ?", customerID).
		Count(&n).Error
	return n, err
}

// Find looks up an end user by primary key.
func (r *CustomerUserRepository) Find(id uint) (models.CustomerUser, error) {
	var user models.CustomerUser
	err := r.db.First(&user, id).Error
	return user, err
}

// Create persists a new end user.
func (r *CustomerUserRepository) Create(user *models.CustomerUser) error {
	return r.db.Create(user).Error
}

// Update persists all fields of an existing end user.
func (r *CustomerUserRepository) Update(user *models.CustomerUser) error {
	return r.db.Save(user).Error
}

// Delete removes an end user.
func (r *CustomerUserRepository) Delete(user *models.CustomerUser) error {
	return r.db.Delete(user).Error
}
