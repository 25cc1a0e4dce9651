package seeders

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/bxcodec/faker/v3"
	"gorm.io/gorm"

	"github.com/bilemo/api/app/models"
	"github.com/bilemo/api/pkg/auth"
	"github.com/bilemo/api/pkg/rbac"
)

func init() {
	Register("customers", SeedCustomers)
}

// SeedCustomers inserts 5 client companies, each with a CLIENT login
// (client<n>@bilemo.com / password) and 6 end users.
func SeedCustomers(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Customer{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil // already seeded
	}

	hash, err := auth.HashPassword("password")
	if err != nil {
		return err
	}

	for i := 1; i <= 5; i++ {
		customer := models.Customer{
			Company:    fmt.Sprintf("%s %s", faker.LastName(), "Telecom"),
			LastName:   faker.LastName(),
			FirstName:  faker.FirstName(),
			PostalCode: fmt.Sprintf("%05d", rand.Intn(99000)+1000),
			Address:    fmt.Sprintf("%d %s street", rand.Intn(200)+1, strings.ToLower(faker.Word())),
			City:       faker.Word(),
			Country:    "France",
			Phone:      faker.Phonenumber(),
			TVANumber:  fmt.Sprintf("FR%011d", rand.Int63n(99999999999)),
			SIRET:      fmt.Sprintf("%014d", rand.Int63n(99999999999999)),
			CreatedAt:  time.Now(),
		}
		if err := db.Create(&customer).Error; err != nil {
			return err
		}

		account := models.User{
			Email:      fmt.Sprintf("client%d@bilemo.com", i),
			Role:       rbac.RoleClient,
			Password:   hash,
			CustomerID: &customer.ID,
		}
		if err := db.Create(&account).Error; err != nil {
			return err
		}

		for j := 1; j <= 6; j++ {
			user := models.CustomerUser{
				LastName:   faker.LastName(),
				FirstName:  faker.FirstName(),
				Email:      faker.Email(),
				PostalCode: fmt.Sprintf("%05d", rand.Intn(99000)+1000),
				Address:    fmt.Sprintf("%d %s street", rand.Intn(200)+1, strings.ToLower(faker.Word())),
				City:       faker.Word(),
				Country:    "France",
				Phone:      faker.Phonenumber(),
				CreatedAt:  time.Now(),
				CustomerID: customer.ID,
			}
			if err := db.Create(&user).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
