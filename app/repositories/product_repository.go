// Package repositories wraps all GORM access behind typed repositories.
// Each repository receives its *gorm.DB at construction so tests can hand
// it an in-memory database.
package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/bilemo/api/app/models"
)

// ProductRepository handles database operations for Product.
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// List returns one page of products, images preloaded, ordered by id.
func (r *ProductRepository) List(offset, limit int) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Preload("Images").
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&products).Error
	return products, err
}

// Count returns the total number of products.
func (r *ProductRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&models.Product{}).Count(&n).Error
	return n, err
}

// Find looks up a product by primary key, images preloaded.
func (r *ProductRepository) Find(id uint) (models.Product, error) {
	var product models.Product
	err := r.db.Preload("Images").First(&product, id).Error
	return product, err
}

// FindByReference looks up a product by its commercial reference.
// Returns gorm.ErrRecordNotFound when no product carries it.
func (r *ProductRepository) FindByReference(reference string) (models.Product, error) {
	var product models.Product
	err := r.db.Where("reference = ?", reference).First(&product).Error
	return product, err
}

// ReferenceTaken reports whether another product (id excluded) already
// uses the reference.
func (r *ProductRepository) ReferenceTaken(reference string, excludeID uint) (bool, error) {
	var product models.Product
	err := r.db.Where("reference = ? AND id <> ?", reference, excludeID).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Create persists a new product.
func (r *ProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// Update persists all fields of an existing product.
func (r *ProductRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

// Delete removes a product and, through the FK constraint, its images.
func (r *ProductRepository) Delete(product *models.Product) error {
	return r.db.Delete(product).Error
}
