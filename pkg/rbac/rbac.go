// Package rbac provides role-based access control middleware.
//
// Roles form a strict hierarchy: SUPER_ADMIN outranks ADMIN, which outranks
// CLIENT, which outranks USER. A gate on CLIENT therefore also admits ADMIN
// and SUPER_ADMIN callers.
package rbac

import (
	"net/http"

	"github.com/bilemo/api/pkg/middleware"
	"github.com/bilemo/api/pkg/response"
)

const (
	RoleUser       = "USER"
	RoleClient     = "CLIENT"
	RoleAdmin      = "ADMIN"
	RoleSuperAdmin = "SUPER_ADMIN"
)

var level = map[string]int{
	RoleUser:       0,
	RoleClient:     1,
	RoleAdmin:      2,
	RoleSuperAdmin: 3,
}

// Allows reports whether a caller holding role clears the min gate.
// Unknown roles never clear any gate.
func Allows(role, min string) bool {
	have, ok := level[role]
	if !ok {
		return false
	}
	want, ok := level[min]
	if !ok {
		return false
	}
	return have >= want
}

// Require returns middleware that admits only callers whose role is min or
// higher. Wire middleware.Auth before it so the claims are in context.
func Require(min string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := middleware.ClaimsFromCtx(r.Context())
			if !ok {
				response.Unauthorized(w)
				return
			}
			if !Allows(claims.Role, min) {
				response.Forbidden(w, "You do not have sufficient rights for this operation.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
