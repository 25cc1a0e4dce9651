// Package migrations contains all database migration files. Each
// migration registers itself from init(); cmd/bilemo imports this
// package so the registry is populated at CLI startup.
package migrations

import (
	"gorm.io/gorm"

	"github.com/bilemo/api/app/models"
	"github.com/bilemo/api/pkg/migration"
)

func init() {
	migration.Register("20260101000000_create_products_table", &CreateProductsTable{})
	migration.Register("20260101000001_create_images_table", &CreateImagesTable{})
	migration.Register("20260101000002_create_customers_table", &CreateCustomersTable{})
	migration.Register("20260101000003_create_customer_users_table", &CreateCustomerUsersTable{})
	migration.Register("20260101000004_create_employees_table", &CreateEmployeesTable{})
	migration.Register("20260101000005_create_users_table", &CreateUsersTable{})
}

type CreateProductsTable struct{}

func (m *CreateProductsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Product{})
}

func (m *CreateProductsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("products")
}

type CreateImagesTable struct{}

func (m *CreateImagesTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Image{})
}

func (m *CreateImagesTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("images")
}

type CreateCustomersTable struct{}

func (m *CreateCustomersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Customer{})
}

func (m *CreateCustomersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("customers")
}

type CreateCustomerUsersTable struct{}

func (m *CreateCustomerUsersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.CustomerUser{})
}

func (m *CreateCustomerUsersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("customer_users")
}

type CreateEmployeesTable struct{}

func (m *CreateEmployeesTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Employee{})
}

func (m *CreateEmployeesTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("employees")
}

type CreateUsersTable struct{}

func (m *CreateUsersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{})
}

func (m *CreateUsersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("users")
}
