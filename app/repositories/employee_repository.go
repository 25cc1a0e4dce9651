package repositories

import (
	"gorm.io/gorm"

	"github.com/bilemo/api/app/models"
)

// EmployeeRepository handles database operations for Employee.
type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// WithTx returns a copy of the repository bound to the transaction.
func (r *EmployeeRepository) WithTx(tx *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: tx}
}

// Transaction runs fn atomically; any error rolls everything back.
func (r *EmployeeRepository) Transaction(fn func(tx *gorm.DB) error) error {
	return r.db.Transaction(fn)
}

// List returns one page of employees ordered by id.
func (r *EmployeeRepository) List(offset, limit int) ([]models.Employee, error) {
	var employees []models.Employee
	err := r.db.Order("id").Offset(offset).Limit(limit).Find(&employees).Error
	return employees, err
}

// Count returns the total number of employees.
func (r *EmployeeRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&models.Employee{}).Count(&n).Error
	return n, err
}

// Find looks up an employee by primary key with its login account.
func (r *EmployeeRepository) Find(id uint) (models.Employee, error) {
	var employee models.Employee
	err := r.db.Preload("User").First(&employee, id).Error
	return employee, err
}

// Create persists a new employee.
func (r *EmployeeRepository) Create(employee *models.Employee) error {
	return r.db.Create(employee).Error
}

// Update persists all fields of an existing employee.
func (r *EmployeeRepository) Update(employee *models.Employee) error {
	return r.db.Save(employee).Error
}

// Delete removes an employee and, through the FK constraint, its
// login account.
func (r *EmployeeRepository) Delete(employee *models.Employee) error {
	return r.db.Delete(employee).Error
}
