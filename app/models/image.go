package models

// Image is a product photo. Name is the stored filename; the binary
// itself lives on the storage disk under images/<Name>.
type Image struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"size:255;not null" json:"name"`
	ProductID uint   `gorm:"not null;index" json:"productId"`
}
