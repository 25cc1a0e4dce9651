package controllers

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"path"
	"path/filepath"

	"gorm.io/gorm"

	"github.com/bilemo/api/app/repositories"
	"github.com/bilemo/api/app/resources"
	"github.com/bilemo/api/app/services"
	"github.com/bilemo/api/pkg/cache"
	"github.com/bilemo/api/pkg/response"
	"github.com/bilemo/api/pkg/storage"
)

// ImageController exposes product photos: metadata listings plus the
// binary itself from the storage disk. Images are read-only over HTTP;
// rows come in through seeding and product imports.
type ImageController struct {
	images *repositories.ImageRepository
	cache  cache.Store
}

func NewImageController(images *repositories.ImageRepository, store cache.Store) *ImageController {
	return &ImageController{images: images, cache: store}
}

// List serves GET /api/images.
func (c *ImageController) List(w http.ResponseWriter, r *http.Request) {
	req, herr := services.ParsePageRequest(r)
	if herr != nil {
		response.FromError(w, herr)
		return
	}

	images, herr := services.Paginate(r.Context(), c.cache, "image", "", req,
		c.images.Count, c.images.List)
	if herr != nil {
		response.FromError(w, herr)
		return
	}

	response.Success(w, resources.ImageList(images))
}

// Detail serves GET /api/images/{id}.
func (c *ImageController) Detail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	image, err := c.images.Find(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.NotFound(w)
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.Success(w, resources.NewImageItem(image))
}

// File serves GET /api/images/{id}/file: the stored binary, streamed
// from whichever disk is configured.
func (c *ImageController) File(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	image, err := c.images.Find(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.NotFound(w)
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	// Name is a bare filename; path.Base guards against stored names
	// that would otherwise escape the images directory.
	file := "images/" + path.Base(image.Name)
	rc, err := storage.GetStream(file)
	if err != nil {
		response.NotFound(w)
		return
	}
	defer rc.Close()

	ctype := mime.TypeByExtension(filepath.Ext(image.Name))
	if ctype == "" {
		ctype = "application/octet-stream"
	}
	w.Header().Set("Content-Type", ctype)
	w.WriteHeader(http.StatusOK)
	_, _ = io.Copy(w, rc)
}
