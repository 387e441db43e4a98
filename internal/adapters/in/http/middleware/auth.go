// internal/adapters/in/http/middleware/auth.go
package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"
)

// FirebaseAuthClient is an alias for the firebase auth client so RouterDeps
// can take *middleware.FirebaseAuthClient.
type FirebaseAuthClient = fbauth.Client

// context key uses a dedicated type instead of string (SA1029).
type ctxKey struct{ name string }

var (
	ctxKeyUID   = ctxKey{name: "uid"}
	ctxKeyEmail = ctxKey{name: "email"}
	ctxKeyName  = ctxKey{name: "displayName"}
)

// AuthMiddleware verifies
//
//   - Authorization: Bearer <ID_TOKEN>
//
// and stores uid / email / display name in the request context.
type AuthMiddleware struct {
	FirebaseAuth *FirebaseAuthClient
}

func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		if m.FirebaseAuth == nil {
			http.Error(w, "auth middleware not initialized", http.StatusServiceUnavailable)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			http.Error(w, "unauthorized: missing bearer token", http.StatusUnauthorized)
			return
		}

		idToken := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if idToken == "" {
			http.Error(w, "unauthorized: empty bearer token", http.StatusUnauthorized)
			return
		}

		token, err := m.FirebaseAuth.VerifyIDToken(r.Context(), idToken)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		uid := strings.TrimSpace(token.UID)
		if uid == "" {
			http.Error(w, "invalid uid in token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), ctxKeyUID, uid)

		email := ""
		if raw, ok := token.Claims["email"]; ok {
			if e, ok2 := raw.(string); ok2 && strings.TrimSpace(e) != "" {
				email = strings.TrimSpace(e)
				ctx = context.WithValue(ctx, ctxKeyEmail, email)
			}
		}

		if raw, ok := token.Claims["name"]; ok {
			if n, ok2 := raw.(string); ok2 && strings.TrimSpace(n) != "" {
				ctx = context.WithValue(ctx, ctxKeyName, strings.TrimSpace(n))
			}
		}

		log.Printf("[AuthMiddleware] path=%s uid=%s email=%s", r.URL.Path, uid, email)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CurrentUID returns the verified Firebase UID from the context.
func CurrentUID(r *http.Request) (string, bool) {
	v := r.Context().Value(ctxKeyUID)
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", false
	}
	return strings.TrimSpace(s), true
}

// CurrentUIDAndEmail returns the verified Firebase UID and email.
func CurrentUIDAndEmail(r *http.Request) (uid string, email string, ok bool) {
	uid, ok = CurrentUID(r)
	if !ok {
		return "", "", false
	}
	if v := r.Context().Value(ctxKeyEmail); v != nil {
		if e, ok2 := v.(string); ok2 {
			email = strings.TrimSpace(e)
		}
	}
	return uid, email, true
}

// CurrentDisplayName returns the display name claim, when present.
func CurrentDisplayName(r *http.Request) (string, bool) {
	v := r.Context().Value(ctxKeyName)
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", false
	}
	return strings.TrimSpace(s), true
}
