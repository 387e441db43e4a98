// internal/adapters/in/http/middleware/admin.go
package middleware

import (
	"context"
	"log"
	"net/http"
)

// AdminChecker reports whether a uid has the admin role.
// *usecase.UserUsecase satisfies this.
type AdminChecker interface {
	IsAdmin(ctx context.Context, uid string) (bool, error)
}

// AdminOnly runs after AuthMiddleware and rejects non-admin users.
type AdminOnly struct {
	Checker AdminChecker
}

func (m *AdminOnly) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		if m.Checker == nil {
			http.Error(w, "admin middleware not initialized", http.StatusServiceUnavailable)
			return
		}

		uid, ok := CurrentUID(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		isAdmin, err := m.Checker.IsAdmin(r.Context(), uid)
		if err != nil {
			log.Printf("[AdminOnly] role lookup failed uid=%s err=%v", uid, err)
			http.Error(w, "role lookup failed", http.StatusInternalServerError)
			return
		}
		if !isAdmin {
			http.Error(w, "forbidden: admin only", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
