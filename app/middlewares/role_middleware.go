package middlewares

import (
	"log"
	"net/http"

	"github.com/velamart/catalog-admin/app/helpers"
	"github.com/velamart/catalog-admin/app/models"
)

func userFromContext(r *http.Request) *models.User {
	user, ok := r.Context().Value(helpers.ContextKeyUser).(*models.User)
	if !ok {
		return nil
	}
	return user
}

// RequireCatalogManager admits admins and vendors; everyone else gets 401/403.
func RequireCatalogManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := userFromContext(r)
		if user == nil {
			http.Error(w, `{"error":"authentication required"}`, http.StatusUnauthorized)
			return
		}
		if !user.IsAdmin() && !user.IsVendor() {
			log.Printf("RequireCatalogManager: user %s (%s) denied", user.ID, user.Role)
			http.Error(w, `{"error":"you do not have permission to access the catalog"}`, http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin admits admins only.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := userFromContext(r)
		if user == nil {
			http.Error(w, `{"error":"authentication required"}`, http.StatusUnauthorized)
			return
		}
		if !user.IsAdmin() {
			log.Printf("RequireAdmin: user %s (%s) denied", user.ID, user.Role)
			http.Error(w, `{"error":"admin access required"}`, http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
