package models

import "time"

// Product is a device from the catalogue.
// Reference is the commercial identifier and must be unique.
type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Reference   string    `gorm:"size:255;not null;uniqueIndex" json:"reference"`
	ReleaseDate time.Time `json:"releaseDate"`
	Series      string    `gorm:"size:255;not null" json:"series"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Maker       string    `gorm:"size:50;not null" json:"maker"`
	Price       int       `gorm:"not null" json:"price"`
	Color       string    `gorm:"size:50;not null" json:"color"`
	Platform    string    `gorm:"size:50;not null" json:"platform"`
	Network     string    `gorm:"size:50" json:"network"`
	Connector   string    `gorm:"size:50" json:"connector"`
	Battery     string    `gorm:"size:50" json:"battery"`
	RAM         string    `gorm:"size:50" json:"ram"`
	ROM         string    `gorm:"size:50" json:"rom"`
	BrandCPU    string    `gorm:"size:50" json:"brandCPU"`
	SpeedCPU    string    `gorm:"size:50" json:"speedCPU"`
	CoresCPU    int       `json:"coresCPU"`
	MainCam     string    `gorm:"size:50" json:"mainCam"`
	SubCam      string    `gorm:"size:50" json:"subCam"`
	DisplayType string    `gorm:"size:50" json:"displayType"`
	DisplaySize string    `gorm:"size:50" json:"displaySize"`
	DoubleSIM   bool      `json:"doubleSIM"`
	CardReader  bool      `json:"cardReader"`
	Foldable    bool      `json:"foldable"`
	ESIM        bool      `json:"eSIM"`
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	Depth       int       `json:"depth"`
	Weight      int       `json:"weight"`

	Images []Image `gorm:"constraint:OnDelete:CASCADE" json:"images,omitempty"`
}
