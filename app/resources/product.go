// Package resources shapes models into the JSON the API returns. Each
// entity has a compact list view and a full detail view, so listings stay
// small while a single fetch carries everything.
package resources

import (
	"time"

	"github.com/bilemo/api/app/models"
	"github.com/bilemo/api/pkg/collection"
)

// ProductListItem is the compact shape used by paged listings.
type ProductListItem struct {
	ID        uint   `json:"id"`
	Reference string `json:"reference"`
	Name      string `json:"name"`
	Series    string `json:"series"`
	Maker     string `json:"maker"`
	Price     int    `json:"price"`
	Color     string `json:"color"`
	Platform  string `json:"platform"`
}

// ProductDetail carries every column plus the attached images.
type ProductDetail struct {
	ID          uint        `json:"id"`
	Reference   string      `json:"reference"`
	ReleaseDate time.Time   `json:"releaseDate"`
	Series      string      `json:"series"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Maker       string      `json:"maker"`
	Price       int         `json:"price"`
	Color       string      `json:"color"`
	Platform    string      `json:"platform"`
	Network     string      `json:"network,omitempty"`
	Connector   string      `json:"connector,omitempty"`
	Battery     string      `json:"battery,omitempty"`
	RAM         string      `json:"ram,omitempty"`
	ROM         string      `json:"rom,omitempty"`
	BrandCPU    string      `json:"brandCPU,omitempty"`
	SpeedCPU    string      `json:"speedCPU,omitempty"`
	CoresCPU    int         `json:"coresCPU,omitempty"`
	MainCam     string      `json:"mainCam,omitempty"`
	SubCam      string      `json:"subCam,omitempty"`
	DisplayType string      `json:"displayType,omitempty"`
	DisplaySize string      `json:"displaySize,omitempty"`
	DoubleSIM   bool        `json:"doubleSIM"`
	CardReader  bool        `json:"cardReader"`
	Foldable    bool        `json:"foldable"`
	ESIM        bool        `json:"eSIM"`
	Width       int         `json:"width,omitempty"`
	Height      int         `json:"height,omitempty"`
	Depth       int         `json:"depth,omitempty"`
	Weight      int         `json:"weight,omitempty"`
	Images      []ImageItem `json:"images"`
}

// ProductList maps a page of products to their list shape.
func ProductList(products []models.Product) []ProductListItem {
	return collection.Map(products, func(p models.Product) ProductListItem {
		return ProductListItem{
			ID:        p.ID,
			Reference: p.Reference,
			Name:      p.Name,
			Series:    p.Series,
			Maker:     p.Maker,
			Price:     p.Price,
			Color:     p.Color,
			Platform:  p.Platform,
		}
	})
}

// NewProductDetail maps one product, images included, to its detail shape.
func NewProductDetail(p models.Product) ProductDetail {
	return ProductDetail{
		ID:          p.ID,
		Reference:   p.Reference,
		ReleaseDate: p.ReleaseDate,
		Series:      p.Series,
		Name:        p.Name,
		Description: p.Description,
		Maker:       p.Maker,
		Price:       p.Price,
		Color:       p.Color,
		Platform:    p.Platform,
		Network:     p.Network,
		Connector:   p.Connector,
		Battery:     p.Battery,
		RAM:         p.RAM,
		ROM:         p.ROM,
		BrandCPU:    p.BrandCPU,
		SpeedCPU:    p.SpeedCPU,
		CoresCPU:    p.CoresCPU,
		MainCam:     p.MainCam,
		SubCam:      p.SubCam,
		DisplayType: p.DisplayType,
		DisplaySize: p.DisplaySize,
		DoubleSIM:   p.DoubleSIM,
		CardReader:  p.CardReader,
		Foldable:    p.Foldable,
		ESIM:        p.ESIM,
		Width:       p.Width,
		Height:      p.Height,
		Depth:       p.Depth,
		Weight:      p.Weight,
		Images:      ImageList(p.Images),
	}
}
