package middleware

import (
	"net/http"

	"github.com/sandeepmed2/property-registration/pkg/auth"
)

// RoleClaimHeader carries the caller's organisational role claim.
const RoleClaimHeader = "X-Role-Claim"

// RoleClaim copies the role claim header into the request context.
func RoleClaim(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if claim := r.Header.Get(RoleClaimHeader); claim != "" {
			r = r.WithContext(auth.WithClaim(r.Context(), claim))
		}
		next.ServeHTTP(w, r)
	})
}
