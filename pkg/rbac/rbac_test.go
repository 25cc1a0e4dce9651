package rbac_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bilemo/api/pkg/auth"
	"github.com/bilemo/api/pkg/middleware"
	"github.com/bilemo/api/pkg/rbac"
)

func TestAllowsHierarchy(t *testing.T) {
	cases := []struct {
		role, min string
		want      bool
	}{
		{rbac.RoleSuperAdmin, rbac.RoleClient, true},
		{rbac.RoleSuperAdmin, rbac.RoleSuperAdmin, true},
		{rbac.RoleAdmin, rbac.RoleClient, true},
		{rbac.RoleAdmin, rbac.RoleSuperAdmin, false},
		{rbac.RoleClient, rbac.RoleAdmin, false},
		{rbac.RoleClient, rbac.RoleClient, true},
		{rbac.RoleUser, rbac.RoleClient, false},
		{"ROLE_NOBODY", rbac.RoleUser, false},
	}
	for _, c := range cases {
		if got := rbac.Allows(c.role, c.min); got != c.want {
			t.Errorf("Allows(%s, %s) = %v, want %v", c.role, c.min, got, c.want)
		}
	}
}

func gated(min string) http.Handler {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return rbac.Require(min)(ok)
}

func TestRequireWithoutClaimsIs401(t *testing.T) {
	rec := httptest.NewRecorder()
	gated(rbac.RoleClient).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("got %d, want 401", rec.Code)
	}
}

func TestRequireBlocksLowerRole(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(middleware.WithClaims(req.Context(), &auth.Claims{UserID: 1, Role: rbac.RoleClient}))

	rec := httptest.NewRecorder()
	gated(rbac.RoleAdmin).ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("got %d, want 403", rec.Code)
	}
}

func TestRequireAdmitsHigherRole(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(middleware.WithClaims(req.Context(), &auth.Claims{UserID: 1, Role: rbac.RoleSuperAdmin}))

	rec := httptest.NewRecorder()
	gated(rbac.RoleClient).ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("got %d, want 200", rec.Code)
	}
}
