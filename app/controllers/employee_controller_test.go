package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bilemo/api/app/models"
	"github.com/bilemo/api/app/resources"
	"github.com/bilemo/api/pkg/auth"
	"github.com/bilemo/api/pkg/rbac"
)

func employeePayload(email string) map[string]interface{} {
	return map[string]interface{}{
		"lastName":  "Martin",
		"firstName": "Paul",
		"phone":     "0607080910",
		"user": map[string]interface{}{
			"email":    email,
			"password": "password123",
		},
	}
}

func seedEmployee(t *testing.T, app *api, lastName, email string) models.Employee {
	t.Helper()

	e := models.Employee{LastName: lastName, FirstName: "Paul", Phone: "0607080910"}
	require.NoError(t, app.db.Create(&e).Error)
	hash, err := auth.HashPassword("password")
	require.NoError(t, err)
	u := models.User{Email: email, Password: hash, Role: rbac.RoleAdmin, EmployeeID: &e.ID}
	require.NoError(t, app.db.Create(&u).Error)
	e.User = &u
	return e
}

func TestEmployeeSurfaceRequiresSuperAdmin(t *testing.T) {
	app := newAPI(t)
	seedEmployee(t, app, "Martin", "paul@bilemo.test")

	rec := app.request(t, http.MethodGet, "/api/employees", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = app.request(t, http.MethodGet, "/api/employees", adminToken(t), nil)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = app.request(t, http.MethodGet, "/api/employees?limit=10", superAdminToken(t), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var items []resources.EmployeeListItem
	decodeData(t, rec, &items)
	require.Len(t, items, 1)
	require.Equal(t, "Martin", items[0].LastName)
}

func TestEmployeeCreateWithAccount(t *testing.T) {
	app := newAPI(t)
	token := superAdminToken(t)

	rec := app.request(t, http.MethodPost, "/api/employees", token, employeePayload("paul@bilemo.test"))
	require.Equal(t, http.StatusCreated, rec.Code)

	var detail resources.EmployeeDetail
	decodeData(t, rec, &detail)
	require.Equal(t, "Martin", detail.LastName)
	require.Equal(t, "paul@bilemo.test", detail.AccountEmail)
	require.Equal(t, rbac.RoleAdmin, detail.AccountRole)
	require.Equal(t, fmt.Sprintf("/api/employees/%d", detail.ID), rec.Header().Get("Location"))

	payload := employeePayload("chief@bilemo.test")
	payload["role"] = rbac.RoleSuperAdmin
	rec = app.request(t, http.MethodPost, "/api/employees", token, payload)
	require.Equal(t, http.StatusCreated, rec.Code)
	decodeData(t, rec, &detail)
	require.Equal(t, rbac.RoleSuperAdmin, detail.AccountRole)
}

func TestEmployeeCreateRejectsBadRole(t *testing.T) {
	app := newAPI(t)

	payload := employeePayload("paul@bilemo.test")
	payload["role"] = "CLIENT"

	rec := app.request(t, http.MethodPost, "/api/employees", superAdminToken(t), payload)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var env struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Contains(t, env.Errors, "role")
}

func TestEmployeeCreateDuplicateEmailLeavesNoRow(t *testing.T) {
	app := newAPI(t)
	token := superAdminToken(t)
	seedEmployee(t, app, "Martin", "paul@bilemo.test")

	rec := app.request(t, http.MethodPost, "/api/employees", token, employeePayload("paul@bilemo.test"))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "This email address is already in use.", message(t, rec))

	var n int64
	require.NoError(t, app.db.Model(&models.Employee{}).Count(&n).Error)
	require.EqualValues(t, 1, n)
}

func TestEmployeeUpdateRejectedEmailRollsBack(t *testing.T) {
	app := newAPI(t)
	token := superAdminToken(t)
	seedEmployee(t, app, "Martin", "paul@bilemo.test")
	second := seedEmployee(t, app, "Durand", "anne@bilemo.test")

	rec := app.request(t, http.MethodPut, fmt.Sprintf("/api/employees/%d", second.ID), token, map[string]interface{}{
		"lastName": "Changed",
		"user":     map[string]interface{}{"email": "paul@bilemo.test"},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "This email address is already in use.", message(t, rec))

	// The rejected account change must not leave the name change behind.
	var stored models.Employee
	require.NoError(t, app.db.First(&stored, second.ID).Error)
	require.Equal(t, "Durand", stored.LastName)

	var account models.User
	require.NoError(t, app.db.Where("employee_id = ?", second.ID).First(&account).Error)
	require.Equal(t, "anne@bilemo.test", account.Email)
}

func TestEmployeeUpdateMergesFieldsAndRole(t *testing.T) {
	app := newAPI(t)
	token := superAdminToken(t)
	employee := seedEmployee(t, app, "Martin", "paul@bilemo.test")

	rec := app.request(t, http.MethodPut, fmt.Sprintf("/api/employees/%d", employee.ID), token, map[string]interface{}{
		"phone": "0611223344",
		"role":  rbac.RoleSuperAdmin,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var detail resources.EmployeeDetail
	decodeData(t, rec, &detail)
	require.Equal(t, "0611223344", detail.Phone)
	require.Equal(t, "Martin", detail.LastName)
	require.Equal(t, rbac.RoleSuperAdmin, detail.AccountRole)

	var account models.User
	require.NoError(t, app.db.Where("employee_id = ?", employee.ID).First(&account).Error)
	require.Equal(t, rbac.RoleSuperAdmin, account.Role)
}

func TestEmployeeUpdateWithoutAccountRollsBack(t *testing.T) {
	app := newAPI(t)
	employee := models.Employee{LastName: "Martin", FirstName: "Paul", Phone: "0607080910"}
	require.NoError(t, app.db.Create(&employee).Error)

	rec := app.request(t, http.MethodPut, fmt.Sprintf("/api/employees/%d", employee.ID), superAdminToken(t), map[string]interface{}{
		"lastName": "Changed",
		"user":     map[string]interface{}{"email": "new@bilemo.test"},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "This employee has no login account.", message(t, rec))

	var stored models.Employee
	require.NoError(t, app.db.First(&stored, employee.ID).Error)
	require.Equal(t, "Martin", stored.LastName)
}

func TestEmployeeDelete(t *testing.T) {
	app := newAPI(t)
	token := superAdminToken(t)
	employee := seedEmployee(t, app, "Martin", "paul@bilemo.test")

	rec := app.request(t, http.MethodDelete, fmt.Sprintf("/api/employees/%d", employee.ID), token, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = app.request(t, http.MethodGet, fmt.Sprintf("/api/employees/%d", employee.ID), token, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
