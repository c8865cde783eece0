package rbac

import "net/http"

// Require gates a route behind a single permission derived from the
// role placed in the request context by the JWT middleware.
func Require(perm string) func(http.Handler) http.Handler {
	checker := NewChecker(nil)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := RoleFromContext(r.Context())
			if role == "" {
				http.Error(w, "unauthenticated", http.StatusUnauthorized)
				return
			}
			if !checker.Has(role, perm) {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAny passes when the role holds at least one of the permissions.
func RequireAny(perms ...string) func(http.Handler) http.Handler {
	checker := NewChecker(nil)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := RoleFromContext(r.Context())
			if role == "" {
				http.Error(w, "unauthenticated", http.StatusUnauthorized)
				return
			}
			if !checker.Any(role, perms...) {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
