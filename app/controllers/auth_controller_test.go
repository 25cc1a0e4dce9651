package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bilemo/api/app/models"
	"github.com/bilemo/api/pkg/auth"
	"github.com/bilemo/api/pkg/rbac"
)

func TestLoginIssuesUsableToken(t *testing.T) {
	app := newAPI(t)
	customer := seedCustomer(t, app.db, "acme", 1)

	hash, err := auth.HashPassword("password")
	require.NoError(t, err)
	require.NoError(t, app.db.Create(&models.User{
		Email:      "client@acme.test",
		Password:   hash,
		Role:       rbac.RoleClient,
		CustomerID: &customer.ID,
	}).Error)

	rec := app.request(t, http.MethodPost, "/api/login", "", map[string]interface{}{
		"email":    "client@acme.test",
		"password": "password",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var data struct {
		Token string `json:"token"`
	}
	decodeData(t, rec, &data)
	require.NotEmpty(t, data.Token)

	claims, err := auth.ValidateToken(data.Token)
	require.NoError(t, err)
	require.Equal(t, rbac.RoleClient, claims.Role)
	require.Equal(t, customer.ID, claims.CustomerID)

	rec = app.request(t, http.MethodGet, "/api/customer-users", data.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app := newAPI(t)

	rec := app.request(t, http.MethodPost, "/api/login", "", map[string]interface{}{
		"email":    "missing@acme.test",
		"password": "password",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Invalid credentials", message(t, rec))

	hash, err := auth.HashPassword("password")
	require.NoError(t, err)
	require.NoError(t, app.db.Create(&models.User{
		Email:    "admin@acme.test",
		Password: hash,
		Role:     rbac.RoleAdmin,
	}).Error)

	rec = app.request(t, http.MethodPost, "/api/login", "", map[string]interface{}{
		"email":    "admin@acme.test",
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Invalid credentials", message(t, rec))
}
