package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/bilemo/api/app/models"
)

// UserRepository handles database operations for login accounts.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// WithTx returns a copy of the repository bound to the transaction.
func (r *UserRepository) WithTx(tx *gorm.DB) *UserRepository {
	return &UserRepository{db: tx}
}

// List returns one page of accounts ordered by id.
func (r *UserRepository) List(offset, limit int) ([]models.User, error) {
	var users []models.User
	err := r.db.Order("id").Offset(offset).Limit(limit).Find(&users).Error
	return users, err
}

// Count returns the total number of accounts.
func (r *UserRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&models.User{}).Count(&n).Error
	return n, err
}

// Find looks up an account by primary key.
func (r *UserRepository) Find(id uint) (models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	return user, err
}

// FindByEmail looks up an account by email.
func (r *UserRepository) FindByEmail(email string) (models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	return user, err
}

// EmailTaken reports whether another account (id excluded) already uses
// the email.
func (r *UserRepository) EmailTaken(email string, excludeID uint) (bool, error) {
	var user models.User
	err := r.db.Where("email = ? AND id <> ?", email, excludeID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// FindByCustomer returns the account attached to a customer.
func (r *UserRepository) FindByCustomer(customerID uint) (models.User, error) {
	var user models.User
	err := r.db.Where("customer_id = ?", customerID).First(&user).Error
	return user, err
}

// FindByEmployee returns the account attached to an employee.
func (r *UserRepository) FindByEmployee(employeeID uint) (models.User, error) {
	var user models.User
	err := r.db.Where("employee_id = ?", employeeID).First(&user).Error
	return user, err
}

// Create persists a new account.
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// Update persists all fields of an existing account.
func (r *UserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// Delete removes an account.
func (r *UserRepository) Delete(user *models.User) error {
	return r.db.Delete(user).Error
}
