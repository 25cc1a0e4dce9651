package seeders

import (
	"fmt"
	"time"

	"github.com/bxcodec/faker/v3"
	"gorm.io/gorm"

	"github.com/bilemo/api/app/models"
	"github.com/bilemo/api/pkg/auth"
	"github.com/bilemo/api/pkg/rbac"
)

func init() {
	Register("employees", SeedEmployees)
}

// SeedEmployees inserts the staff: one SUPER_ADMIN
// (admin@bilemo.com / password) and two ADMIN accounts.
func SeedEmployees(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Employee{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil // already seeded
	}

	hash, err := auth.HashPassword("password")
	if err != nil {
		return err
	}

	staff := []struct {
		email string
		role  string
	}{
		{"admin@bilemo.com", rbac.RoleSuperAdmin},
		{"staff1@bilemo.com", rbac.RoleAdmin},
		{"staff2@bilemo.com", rbac.RoleAdmin},
	}

	for _, s := range staff {
		employee := models.Employee{
			LastName:  faker.LastName(),
			FirstName: faker.FirstName(),
			Phone:     faker.Phonenumber(),
			CreatedAt: time.Now(),
		}
		if err := db.Create(&employee).Error; err != nil {
			return err
		}

		account := models.User{
			Email:      s.email,
			Role:       s.role,
			Password:   hash,
			EmployeeID: &employee.ID,
		}
		if err := db.Create(&account).Error; err != nil {
			return fmt.Errorf("account %s: %w", s.email, err)
		}
	}
	return nil
}
