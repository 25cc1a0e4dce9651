package repositories

import (
	"gorm.io/gorm"

	"github.com/bilemo/api/app/models"
)

// ImageRepository handles database operations for Image.
type ImageRepository struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) *ImageRepository {
	return &ImageRepository{db: db}
}

// List returns one page of images ordered by id.
func (r *ImageRepository) List(offset, limit int) ([]models.Image, error) {
	var images []models.Image
	err := r.db.Order("id").Offset(offset).Limit(limit).Find(&images).Error
	return images, err
}

// Count returns the total number of images.
func (r *ImageRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&models.Image{}).Count(&n).Error
	return n, err
}

// Find looks up an image by primary key.
func (r *ImageRepository) Find(id uint) (models.Image, error) {
	var image models.Image
	err := r.db.First(&image, id).Error
	return image, err
}

// ListByProduct returns all images attached to a product.
func (r *ImageRepository) ListByProduct(productID uint) ([]models.Image, error) {
	var images []models.Image
	err := r.db.Where("product_id = ?", productID).Order("id").Find(&images).Error
	return images, err
}

// Create persists a new image.
func (r *ImageRepository) Create(image *models.Image) error {
	return r.db.Create(image).Error
}

// Update persists all fields of an existing image.
func (r *ImageRepository) Update(image *models.Image) error {
	return r.db.Save(image).Error
}

// Delete removes an image row. The stored file is the caller's problem.
func (r *ImageRepository) Delete(image *models.Image) error {
	return r.db.Delete(image).Error
}
