package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bilemo/api/app/resources"
)

func customerUserPayload(idCustomer uint) map[string]interface{} {
	payload := map[string]interface{}{
		"lastName":   "Martin",
		"firstName":  "Paul",
		"email":      "paul.martin@example.test",
		"postalCode": "69001",
		"address":    "2 place Bellecour",
		"city":       "Lyon",
		"country":    "France",
		"phone":      "0405060708",
	}
	if idCustomer != 0 {
		payload["idCustomer"] = idCustomer
	}
	return payload
}

func TestCustomerUserListIsScopedForClients(t *testing.T) {
	app := newAPI(t)
	first := seedCustomer(t, app.db, "acme", 3)
	seedCustomer(t, app.db, "globex", 2)

	rec := app.request(t, http.MethodGet, "/api/customer-users?limit=10", clientToken(t, first.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var items []resources.CustomerUserListItem
	decodeData(t, rec, &items)
	require.Len(t, items, 3)
	for _, item := range items {
		require.Contains(t, item.Email, "@acme.test")
	}

	rec = app.request(t, http.MethodGet, "/api/customer-users?limit=10", adminToken(t), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeData(t, rec, &items)
	require.Len(t, items, 5)
}

func TestCustomerUserListRequiresAuth(t *testing.T) {
	app := newAPI(t)

	rec := app.request(t, http.MethodGet, "/api/customer-users", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCustomerUserCreateScoping(t *testing.T) {
	app := newAPI(t)
	first := seedCustomer(t, app.db, "acme", 0)
	second := seedCustomer(t, app.db, "globex", 0)

	// A CLIENT cannot plant a user under another customer.
	payload := customerUserPayload(second.ID)
	rec := app.request(t, http.MethodPost, "/api/customer-users", clientToken(t, first.ID), payload)
	require.Equal(t, http.StatusCreated, rec.Code)

	var detail resources.CustomerUserDetail
	decodeData(t, rec, &detail)
	require.Equal(t, first.ID, detail.CustomerID)
	require.Equal(t, fmt.Sprintf("/api/customer-users/%d", detail.ID), rec.Header().Get("Location"))
}

func TestCustomerUserCreateByAdminNeedsCustomerID(t *testing.T) {
	app := newAPI(t)
	seedCustomer(t, app.db, "acme", 0)

	rec := app.request(t, http.MethodPost, "/api/customer-users", adminToken(t), customerUserPayload(0))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Please provide a customer id.", message(t, rec))

	rec = app.request(t, http.MethodPost, "/api/customer-users", adminToken(t), customerUserPayload(99))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "This customer does not exist.", message(t, rec))

	rec = app.request(t, http.MethodPost, "/api/customer-users", adminToken(t), customerUserPayload(1))
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestCustomerUserCrossCustomerAccessIsForbidden(t *testing.T) {
	app := newAPI(t)
	first := seedCustomer(t, app.db, "acme", 1)
	second := seedCustomer(t, app.db, "globex", 1)
	_ = second

	// User 2 belongs to globex; acme's client must not reach it.
	token := clientToken(t, first.ID)

	rec := app.request(t, http.MethodGet, "/api/customer-users/2", token, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, "You cannot access this user.", message(t, rec))

	rec = app.request(t, http.MethodPut, "/api/customer-users/2", token, map[string]interface{}{"city": "Nantes"})
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, "You cannot modify this user.", message(t, rec))

	rec = app.request(t, http.MethodDelete, "/api/customer-users/2", token, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, "You cannot delete this user.", message(t, rec))
}

func TestCustomerUserUpdateAndDeleteOwn(t *testing.T) {
	app := newAPI(t)
	first := seedCustomer(t, app.db, "acme", 1)
	token := clientToken(t, first.ID)

	rec := app.request(t, http.MethodPut, "/api/customer-users/1", token, map[string]interface{}{
		"city": "Nantes",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var detail resources.CustomerUserDetail
	decodeData(t, rec, &detail)
	require.Equal(t, "Nantes", detail.City)
	require.Equal(t, "User1", detail.LastName)

	rec = app.request(t, http.MethodDelete, "/api/customer-users/1", token, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = app.request(t, http.MethodGet, "/api/customer-users/1", token, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCustomerUserListCacheIsInvalidatedOnCreate(t *testing.T) {
	app := newAPI(t)
	first := seedCustomer(t, app.db, "acme", 2)
	token := clientToken(t, first.ID)

	rec := app.request(t, http.MethodGet, "/api/customer-users?limit=10", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var items []resources.CustomerUserListItem
	decodeData(t, rec, &items)
	require.Len(t, items, 2)

	rec = app.request(t, http.MethodPost, "/api/customer-users", token, customerUserPayload(0))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = app.request(t, http.MethodGet, "/api/customer-users?limit=10", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeData(t, rec, &items)
	require.Len(t, items, 3)
}

func TestCustomerUserCreateValidatesEmail(t *testing.T) {
	app := newAPI(t)
	first := seedCustomer(t, app.db, "acme", 0)

	payload := customerUserPayload(0)
	payload["email"] = "not-an-email"

	rec := app.request(t, http.MethodPost, "/api/customer-users", clientToken(t, first.ID), payload)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var env struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Equal(t, "The email must be a valid email address.", env.Errors["email"])
}
