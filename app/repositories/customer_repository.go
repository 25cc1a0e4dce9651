package repositories

import (
	"gorm.io/gorm"

	"github.com/bilemo/api/app/models"
)

// CustomerRepository handles database operations for Customer.
type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// WithTx returns a copy of the repository bound to the transaction.
func (r *CustomerRepository) WithTx(tx *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: tx}
}

// Transaction runs fn atomically; any error rolls everything back.
func (r *CustomerRepository) Transaction(fn func(tx *gorm.DB) error) error {
	return r.db.Transaction(fn)
}

// List returns one page of customers, their users preloaded, ordered by id.
func (r *CustomerRepository) List(offset, limit int) ([]models.Customer, error) {
	var customers []models.Customer
	err := r.db.Preload("CustomerUsers").
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&customers).Error
	return customers, err
}

// Count returns the total number of customers.
func (r *CustomerRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&models.Customer{}).Count(&n).Error
	return n, err
}

// Find looks up a customer by primary key with its users and account.
func (r *CustomerRepository) Find(id uint) (models.Customer, error) {
	var customer models.Customer
	err := r.db.Preload("CustomerUsers").Preload("User").First(&customer, id).Error
	return customer, err
}

// Create persists a new customer.
func (r *CustomerRepository) Create(customer *models.Customer) error {
	return r.db.Create(customer).Error
}

// Update persists all fields of an existing customer.
func (r *CustomerRepository) Update(customer *models.Customer) error {
	return r.db.Save(customer).Error
}

// Delete removes a customer and, through FK constraints, its users
// and login account.
func (r *CustomerRepository) Delete(customer *models.Customer) error {
	return r.db.Delete(customer).Error
}
