package controllers

import (
	"errors"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/bilemo/api/app/models"
	"github.com/bilemo/api/app/repositories"
	"github.com/bilemo/api/app/resources"
	"github.com/bilemo/api/app/services"
	"github.com/bilemo/api/pkg/bind"
	"github.com/bilemo/api/pkg/cache"
	"github.com/bilemo/api/pkg/response"
	"github.com/bilemo/api/pkg/router"
)

// ProductController exposes the device catalogue.
type ProductController struct {
	products *repositories.ProductRepository
	cache    cache.Store
	router   *router.Router
}

func NewProductController(products *repositories.ProductRepository, store cache.Store, rt *router.Router) *ProductController {
	return &ProductController{products: products, cache: store, router: rt}
}

// CreateProductInput is the create payload. Every NOT NULL column is
// required.
type CreateProductInput struct {
	Reference   string    `json:"reference"   validate:"required,max=255"`
	ReleaseDate time.Time `json:"releaseDate"`
	Series      string    `json:"series"      validate:"required,max=255"`
	Name        string    `json:"name"        validate:"required,max=255"`
	Description string    `json:"description"`
	Maker       string    `json:"maker"       validate:"required,max=50"`
	Price       int       `json:"price"       validate:"required,gte=0"`
	Color       string    `json:"color"       validate:"required,max=50"`
	Platform    string    `json:"platform"    validate:"required,max=50"`
	Network     string    `json:"network"     validate:"nullable,max=50"`
	Connector   string    `json:"connector"   validate:"nullable,max=50"`
	Battery     string    `json:"battery"     validate:"nullable,max=50"`
	RAM         string    `json:"ram"         validate:"nullable,max=50"`
	ROM         string    `json:"rom"         validate:"nullable,max=50"`
	BrandCPU    string    `json:"brandCPU"    validate:"nullable,max=50"`
	SpeedCPU    string    `json:"speedCPU"    validate:"nullable,max=50"`
	CoresCPU    int       `json:"coresCPU"    validate:"nullable,gte=0"`
	MainCam     string    `json:"mainCam"     validate:"nullable,max=50"`
	SubCam      string    `json:"subCam"      validate:"nullable,max=50"`
	DisplayType string    `json:"displayType" validate:"nullable,max=50"`
	DisplaySize string    `json:"displaySize" validate:"nullable,max=50"`
	DoubleSIM   bool      `json:"doubleSIM"`
	CardReader  bool      `json:"cardReader"`
	Foldable    bool      `json:"foldable"`
	ESIM        bool      `json:"eSIM"`
	Width       int       `json:"width"       validate:"nullable,gte=0"`
	Height      int       `json:"height"      validate:"nullable,gte=0"`
	Depth       int       `json:"depth"       validate:"nullable,gte=0"`
	Weight      int       `json:"weight"      validate:"nullable,gte=0"`
}

// UpdateProductInput is the partial-update payload. A field left out of
// the JSON stays nil and keeps its stored value; a field that is present
// is applied even when it is zero, empty or false.
type UpdateProductInput struct {
	Reference   *string    `json:"reference"   validate:"nullable,max=255"`
	ReleaseDate *time.Time `json:"releaseDate"`
	Series      *string    `json:"series"      validate:"nullable,max=255"`
	Name        *string    `json:"name"        validate:"nullable,max=255"`
	Description *string    `json:"description"`
	Maker       *string    `json:"maker"       validate:"nullable,max=50"`
	Price       *int       `json:"price"       validate:"nullable,gte=0"`
	Color       *string    `json:"color"       validate:"nullable,max=50"`
	Platform    *string    `json:"platform"    validate:"nullable,max=50"`
	Network     *string    `json:"network"     validate:"nullable,max=50"`
	Connector   *string    `json:"connector"   validate:"nullable,max=50"`
	Battery     *string    `json:"battery"     validate:"nullable,max=50"`
	RAM         *string    `json:"ram"         validate:"nullable,max=50"`
	ROM         *string    `json:"rom"         validate:"nullable,max=50"`
	BrandCPU    *string    `json:"brandCPU"    validate:"nullable,max=50"`
	SpeedCPU    *string    `json:"speedCPU"    validate:"nullable,max=50"`
	CoresCPU    *int       `json:"coresCPU"    validate:"nullable,gte=0"`
	MainCam     *string    `json:"mainCam"     validate:"nullable,max=50"`
	SubCam      *string    `json:"subCam"      validate:"nullable,max=50"`
	DisplayType *string    `json:"displayType" validate:"nullable,max=50"`
	DisplaySize *string    `json:"displaySize" validate:"nullable,max=50"`
	DoubleSIM   *bool      `json:"doubleSIM"`
	CardReader  *bool      `json:"cardReader"`
	Foldable    *bool      `json:"foldable"`
	ESIM        *bool      `json:"eSIM"`
	Width       *int       `json:"width"       validate:"nullable,gte=0"`
	Height      *int       `json:"height"      validate:"nullable,gte=0"`
	Depth       *int       `json:"depth"       validate:"nullable,gte=0"`
	Weight      *int       `json:"weight"      validate:"nullable,gte=0"`
}

// List serves GET /api/products.
func (c *ProductController) List(w http.ResponseWriter, r *http.Request) {
	req, herr := services.ParsePageRequest(r)
	if herr != nil {
		response.FromError(w, herr)
		return
	}

	products, herr := services.Paginate(r.Context(), c.cache, "product", "", req,
		c.products.Count, c.products.List)
	if herr != nil {
		response.FromError(w, herr)
		return
	}

	response.Success(w, resources.ProductList(products))
}

// Detail serves GET /api/products/{id}.
func (c *ProductController) Detail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	product, err := c.products.Find(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.NotFound(w)
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.Success(w, resources.NewProductDetail(product))
}

// Create serves POST /api/products.
func (c *ProductController) Create(w http.ResponseWriter, r *http.Request) {
	var input CreateProductInput
	errs, err := bind.JSON(r, &input)
	if err != nil {
		bindError(w, err)
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	taken, err := c.products.ReferenceTaken(input.Reference, 0)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if taken {
		response.Error(w, http.StatusBadRequest, "This reference is already in use.")
		return
	}

	product := models.Product{
		Reference:   input.Reference,
		ReleaseDate: input.ReleaseDate,
		Series:      input.Series,
		Name:        input.Name,
		Description: input.Description,
		Maker:       input.Maker,
		Price:       input.Price,
		Color:       input.Color,
		Platform:    input.Platform,
		Network:     input.Network,
		Connector:   input.Connector,
		Battery:     input.Battery,
		RAM:         input.RAM,
		ROM:         input.ROM,
		BrandCPU:    input.BrandCPU,
		SpeedCPU:    input.SpeedCPU,
		CoresCPU:    input.CoresCPU,
		MainCam:     input.MainCam,
		SubCam:      input.SubCam,
		DisplayType: input.DisplayType,
		DisplaySize: input.DisplaySize,
		DoubleSIM:   input.DoubleSIM,
		CardReader:  input.CardReader,
		Foldable:    input.Foldable,
		ESIM:        input.ESIM,
		Width:       input.Width,
		Height:      input.Height,
		Depth:       input.Depth,
		Weight:      input.Weight,
	}
	if err := c.products.Create(&product); err != nil {
		// A concurrent insert can slip past ReferenceTaken; the unique
		// index reports it as a duplicate key.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			response.Error(w, http.StatusBadRequest, "This reference is already in use.")
			return
		}
		response.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	services.Invalidate(r.Context(), c.cache, "product")
	locate(w, c.router, "products.detail", product.ID)
	response.Created(w, resources.NewProductDetail(product))
}

// Update serves PUT /api/products/{id}.
func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	product, err := c.products.Find(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.NotFound(w)
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	var input UpdateProductInput
	errs, err := bind.JSON(r, &input)
	if err != nil {
		bindError(w, err)
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	if input.Reference != nil {
		taken, err := c.products.ReferenceTaken(*input.Reference, product.ID)
		if err != nil {
			response.Error(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if taken {
			response.Error(w, http.StatusBadRequest, "This reference is already in use.")
			return
		}
		product.Reference = *input.Reference
	}
	applyProductUpdate(&product, input)

	if err := c.products.Update(&product); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			response.Error(w, http.StatusBadRequest, "This reference is already in use.")
			return
		}
		response.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	services.Invalidate(r.Context(), c.cache, "product")
	locate(w, c.router, "products.detail", product.ID)
	response.Success(w, resources.NewProductDetail(product))
}

// Delete serves DELETE /api/products/{id}.
func (c *ProductController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	product, err := c.products.Find(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.NotFound(w)
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if err := c.products.Delete(&product); err != nil {
		response.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	services.Invalidate(r.Context(), c.cache, "product")
	services.Invalidate(r.Context(), c.cache, "image")
	response.NoContent(w)
}

// applyProductUpdate copies every field the payload actually carried.
// Reference is handled by the caller because of the uniqueness check.
func applyProductUpdate(p *models.Product, in UpdateProductInput) {
	if in.ReleaseDate != nil {
		p.ReleaseDate = *in.ReleaseDate
	}
	if in.Series != nil {
		p.Series = *in.Series
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Maker != nil {
		p.Maker = *in.Maker
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Color != nil {
		p.Color = *in.Color
	}
	if in.Platform != nil {
		p.Platform = *in.Platform
	}
	if in.Network != nil {
		p.Network = *in.Network
	}
	if in.Connector != nil {
		p.Connector = *in.Connector
	}
	if in.Battery != nil {
		p.Battery = *in.Battery
	}
	if in.RAM != nil {
		p.RAM = *in.RAM
	}
	if in.ROM != nil {
		p.ROM = *in.ROM
	}
	if in.BrandCPU != nil {
		p.BrandCPU = *in.BrandCPU
	}
	if in.SpeedCPU != nil {
		p.SpeedCPU = *in.SpeedCPU
	}
	if in.CoresCPU != nil {
		p.CoresCPU = *in.CoresCPU
	}
	if in.MainCam != nil {
		p.MainCam = *in.MainCam
	}
	if in.SubCam != nil {
		p.SubCam = *in.SubCam
	}
	if in.DisplayType != nil {
		p.DisplayType = *in.DisplayType
	}
	if in.DisplaySize != nil {
		p.DisplaySize = *in.DisplaySize
	}
	if in.DoubleSIM != nil {
		p.DoubleSIM = *in.DoubleSIM
	}
	if in.CardReader != nil {
		p.CardReader = *in.CardReader
	}
	if in.Foldable != nil {
		p.Foldable = *in.Foldable
	}
	if in.ESIM != nil {
		p.ESIM = *in.ESIM
	}
	if in.Width != nil {
		p.Width = *in.Width
	}
	if in.Height != nil {
		p.Height = *in.Height
	}
	if in.Depth != nil {
		p.Depth = *in.Depth
	}
	if in.Weight != nil {
		p.Weight = *in.Weight
	}
}
