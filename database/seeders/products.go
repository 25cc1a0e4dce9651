package seeders

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/bxcodec/faker/v3"
	"gorm.io/gorm"

	"github.com/bilemo/api/app/models"
)

func init() {
	Register("products", SeedProducts)
}

var (
	makers    = []string{"Apple", "Samsung", "Google", "Xiaomi", "OnePlus", "Sony"}
	colors    = []string{"Black", "White", "Silver", "Gold", "Blue", "Green"}
	platforms = []string{"iOS", "Android"}
	networks  = []string{"4G", "5G"}
)

// SeedProducts inserts 30 devices, each with 3 photos.
func SeedProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil // already seeded
	}

	for i := 1; i <= 30; i++ {
		maker := makers[rand.Intn(len(makers))]
		name := fmt.Sprintf("%s %s %d", maker, faker.Word(), rand.Intn(20)+1)

		product := models.Product{
			Reference:   fmt.Sprintf("REF-%04d", i),
			ReleaseDate: time.Now().AddDate(0, -rand.Intn(36), 0),
			Series:      faker.Word(),
			Name:        name,
			Description: faker.Sentence(),
			Maker:       maker,
			Price:       (rand.Intn(120) + 10) * 10,
			Color:       colors[rand.Intn(len(colors))],
			Platform:    platforms[rand.Intn(len(platforms))],
			Network:     networks[rand.Intn(len(networks))],
			Connector:   "USB-C",
			Battery:     fmt.Sprintf("%d mAh", rand.Intn(3000)+2500),
			RAM:         fmt.Sprintf("%d GB", 2<<rand.Intn(3)),
			ROM:         fmt.Sprintf("%d GB", 64<<rand.Intn(3)),
			BrandCPU:    faker.Word(),
			SpeedCPU:    fmt.Sprintf("%.1f GHz", 1.5+rand.Float64()*2),
			CoresCPU:    4 << rand.Intn(2),
			MainCam:     fmt.Sprintf("%d Mpx", rand.Intn(96)+12),
			SubCam:      fmt.Sprintf("%d Mpx", rand.Intn(24)+8),
			DisplayType: "OLED",
			DisplaySize: fmt.Sprintf("%.1f\"", 5.5+rand.Float64()*1.5),
			DoubleSIM:   rand.Intn(2) == 0,
			CardReader:  rand.Intn(2) == 0,
			Foldable:    rand.Intn(10) == 0,
			ESIM:        rand.Intn(2) == 0,
			Width:       rand.Intn(10) + 65,
			Height:      rand.Intn(20) + 140,
			Depth:       rand.Intn(4) + 7,
			Weight:      rand.Intn(80) + 150,
		}
		if err := db.Create(&product).Error; err != nil {
			return err
		}

		for j := 1; j <= 3; j++ {
			image := models.Image{
				Name:      fmt.Sprintf("product-%d-%d.jpg", product.ID, j),
				ProductID: product.ID,
			}
			if err := db.Create(&image).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
