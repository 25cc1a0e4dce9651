package resources

import (
	"fmt"

	"github.com/bilemo/api/app/models"
	"github.com/bilemo/api/pkg/collection"
)

// ImageItem is the single shape used for images everywhere: compact
// enough for listings, complete enough for a detail fetch.
type ImageItem struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	ProductID uint   `json:"productId"`
	File      string `json:"file"`
}

// NewImageItem maps one image. File points at the download endpoint.
func NewImageItem(img models.Image) ImageItem {
	return ImageItem{
		ID:        img.ID,
		Name:      img.Name,
		ProductID: img.ProductID,
		File:      fmt.Sprintf("/api/images/%d/file", img.ID),
	}
}

// ImageList maps a slice of images.
func ImageList(images []models.Image) []ImageItem {
	return collection.Map(images, NewImageItem)
}
