package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bilemo/api/app/models"
	"github.com/bilemo/api/app/resources"
)

func productPayload(reference string) map[string]interface{} {
	return map[string]interface{}{
		"reference":   reference,
		"releaseDate": "2026-03-01T00:00:00Z",
		"series":      "Galaxy",
		"name":        "Galaxy S30",
		"maker":       "Samsung",
		"price":       89900,
		"color":       "Black",
		"platform":    "Android",
	}
}

func TestProductListIsPublicAndPaginated(t *testing.T) {
	app := newAPI(t)
	seedProducts(t, app.db, 5)

	rec := app.request(t, http.MethodGet, "/api/products?limit=2", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var items []resources.ProductListItem
	decodeData(t, rec, &items)
	require.Len(t, items, 2)
	require.Equal(t, "REF-0001", items[0].Reference)

	rec = app.request(t, http.MethodGet, "/api/products?page=3&limit=2", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeData(t, rec, &items)
	require.Len(t, items, 1)
	require.Equal(t, "REF-0005", items[0].Reference)
}

func TestProductListRejectsBadPageParameters(t *testing.T) {
	app := newAPI(t)
	seedProducts(t, app.db, 5)

	rec := app.request(t, http.MethodGet, "/api/products?page=0", "", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "The page parameter must be a positive integer.", message(t, rec))

	rec = app.request(t, http.MethodGet, "/api/products?limit=abc", "", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "The limit parameter must be a positive integer.", message(t, rec))

	rec = app.request(t, http.MethodGet, "/api/products?page=4&limit=2", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "This page does not exist, total pages: 3", message(t, rec))
}

func TestProductCreateRequiresAdmin(t *testing.T) {
	app := newAPI(t)

	rec := app.request(t, http.MethodPost, "/api/products", "", productPayload("REF-9001"))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = app.request(t, http.MethodPost, "/api/products", clientToken(t, 1), productPayload("REF-9001"))
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, "You do not have sufficient rights for this operation.", message(t, rec))

	rec = app.request(t, http.MethodPost, "/api/products", adminToken(t), productPayload("REF-9001"))
	require.Equal(t, http.StatusCreated, rec.Code)

	var detail resources.ProductDetail
	decodeData(t, rec, &detail)
	require.Equal(t, "REF-9001", detail.Reference)
	require.Equal(t, "/api/products/1", rec.Header().Get("Location"))
}

func TestProductCreateRejectsDuplicateReference(t *testing.T) {
	app := newAPI(t)
	token := adminToken(t)

	rec := app.request(t, http.MethodPost, "/api/products", token, productPayload("REF-9001"))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = app.request(t, http.MethodPost, "/api/products", token, productPayload("REF-9001"))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "This reference is already in use.", message(t, rec))
}

func TestProductCreateValidatesPayload(t *testing.T) {
	app := newAPI(t)

	payload := productPayload("REF-9001")
	delete(payload, "name")
	payload["maker"] = "a maker name that is way longer than the fifty characters the column allows"

	rec := app.request(t, http.MethodPost, "/api/products", adminToken(t), payload)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var env struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Equal(t, "The name field is required.", env.Errors["name"])
	require.Contains(t, env.Errors, "maker")
}

func TestProductListReflectsWritesThroughCache(t *testing.T) {
	app := newAPI(t)
	seedProducts(t, app.db, 2)
	token := adminToken(t)

	rec := app.request(t, http.MethodGet, "/api/products?limit=10", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var items []resources.ProductListItem
	decodeData(t, rec, &items)
	require.Len(t, items, 2)

	rec = app.request(t, http.MethodPost, "/api/products", token, productPayload("REF-9001"))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = app.request(t, http.MethodGet, "/api/products?limit=10", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeData(t, rec, &items)
	require.Len(t, items, 3)
}

func TestProductUpdateAppliesOnlyPresentFields(t *testing.T) {
	app := newAPI(t)
	products := seedProducts(t, app.db, 1)
	token := adminToken(t)

	rec := app.request(t, http.MethodPut, "/api/products/1", token, map[string]interface{}{
		"price": 0,
		"color": "Red",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var stored models.Product
	require.NoError(t, app.db.First(&stored, products[0].ID).Error)
	require.Equal(t, 0, stored.Price)
	require.Equal(t, "Red", stored.Color)
	require.Equal(t, products[0].Name, stored.Name)
}

func TestProductDeleteRequiresSuperAdmin(t *testing.T) {
	app := newAPI(t)
	seedProducts(t, app.db, 1)

	rec := app.request(t, http.MethodDelete, "/api/products/1", adminToken(t), nil)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = app.request(t, http.MethodDelete, "/api/products/1", superAdminToken(t), nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = app.request(t, http.MethodGet, "/api/products/1", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProductDetailUnknownID(t *testing.T) {
	app := newAPI(t)

	rec := app.request(t, http.MethodGet, "/api/products/42", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = app.request(t, http.MethodGet, "/api/products/abc", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
