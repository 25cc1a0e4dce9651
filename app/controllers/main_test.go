package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bilemo/api/app/models"
	"github.com/bilemo/api/app/routes"
	"github.com/bilemo/api/pkg/auth"
	"github.com/bilemo/api/pkg/cache"
	"github.com/bilemo/api/pkg/rbac"
	"github.com/bilemo/api/pkg/router"
)

// api is one fully wired application over an in-memory database.
type api struct {
	handler http.Handler
	db      *gorm.DB
	store   *cache.MemoryStore
}

func newAPI(t *testing.T) *api {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// One shared in-memory database across the pool.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Product{},
		&models.Image{},
		&models.Customer{},
		&models.CustomerUser{},
		&models.Employee{},
		&models.User{},
	))

	store := cache.NewMemoryStore()
	r := router.New()
	routes.RegisterAPI(r, db, store)

	return &api{handler: r.Handler(), db: db, store: store}
}

func (a *api) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

// decodeData unmarshals the "data" field of the response envelope.
func decodeData(t *testing.T, rec *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()

	var env struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.NoError(t, json.Unmarshal(env.Data, dest))
}

func message(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var env struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env.Message
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := auth.GenerateToken(1000, rbac.RoleAdmin, 0)
	require.NoError(t, err)
	return token
}

func superAdminToken(t *testing.T) string {
	t.Helper()
	token, err := auth.GenerateToken(1001, rbac.RoleSuperAdmin, 0)
	require.NoError(t, err)
	return token
}

func clientToken(t *testing.T, customerID uint) string {
	t.Helper()
	token, err := auth.GenerateToken(2000+customerID, rbac.RoleClient, customerID)
	require.NoError(t, err)
	return token
}

func seedProducts(t *testing.T, db *gorm.DB, n int) []models.Product {
	t.Helper()

	out := make([]models.Product, 0, n)
	for i := 1; i <= n; i++ {
		p := models.Product{
			Reference:   fmt.Sprintf("REF-%04d", i),
			ReleaseDate: time.Now(),
			Series:      "S",
			Name:        fmt.Sprintf("Phone %d", i),
			Maker:       "Acme",
			Price:       100 * i,
			Color:       "Black",
			Platform:    "Android",
		}
		require.NoError(t, db.Create(&p).Error)
		out = append(out, p)
	}
	return out
}

func seedCustomer(t *testing.T, db *gorm.DB, company string, users int) models.Customer {
	t.Helper()

	c := models.Customer{
		Company:    company,
		LastName:   "Doe",
		FirstName:  "Jane",
		PostalCode: "75001",
		Address:    "1 rue de Rivoli",
		City:       "Paris",
		Country:    "France",
		Phone:      "0102030405",
		CreatedAt:  time.Now(),
	}
	require.NoError(t, db.Create(&c).Error)

	for i := 1; i <= users; i++ {
		u := models.CustomerUser{
			LastName:   fmt.Sprintf("User%d", i),
			FirstName:  "Test",
			Email:      fmt.Sprintf("user%d@%s.test", i, company),
			PostalCode: "75001",
			Address:    "1 rue de Rivoli",
			City:       "Paris",
			Country:    "France",
			Phone:      "0102030405",
			CreatedAt:  time.Now(),
			CustomerID: c.ID,
		}
		require.NoError(t, db.Create(&u).Error)
	}
	return c
}
