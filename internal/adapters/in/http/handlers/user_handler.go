// internal/adapters/in/http/handlers/user_handler.go
package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"dreamweave/internal/adapters/in/http/middleware"
	usecase "dreamweave/internal/application/usecase"
	userdom "dreamweave/internal/domain/user"
)

// UserHandler serves the signed-in user's profile under /users.
//
//	POST  /users/bootstrap   create the profile record on first sign-in (idempotent)
//	GET   /users/me          the caller's profile plus the admin flag
//	PATCH /users/me          body: { "name": "..." }
type UserHandler struct {
	uc *usecase.UserUsecase
}

func NewUserHandler(uc *usecase.UserUsecase) http.Handler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log.Printf("[UserHandler] method=%s path=%s", r.Method, r.URL.Path)

	uid, email, ok := middleware.CurrentUIDAndEmail(r)
	if !ok {
		writeErrMsg(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	switch {
	case r.Method == http.MethodPost && pathTail(r.URL.Path, "/users") == "bootstrap":
		h.bootstrap(w, r, uid, email)

	case r.Method == http.MethodGet && pathTail(r.URL.Path, "/users") == "me":
		h.me(w, r, uid)

	case r.Method == http.MethodPatch && pathTail(r.URL.Path, "/users") == "me":
		h.updateName(w, r, uid)

	default:
		notFound(w)
	}
}

type profileResponse struct {
	*userdom.Profile
	IsAdmin bool `json:"isAdmin"`
}

func (h *UserHandler) bootstrap(w http.ResponseWriter, r *http.Request, uid, email string) {
	var body struct {
		Name string `json:"name"`
	}
	// body is optional; a missing one falls back to the token's name claim
	_ = json.NewDecoder(r.Body).Decode(&body)

	name := strings.TrimSpace(body.Name)
	if name == "" {
		if n, ok := middleware.CurrentDisplayName(r); ok {
			name = n
		}
	}

	profile, err := h.uc.EnsureProfile(r.Context(), uid, name, email)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *UserHandler) me(w http.ResponseWriter, r *http.Request, uid string) {
	profile, err := h.uc.Get(r.Context(), uid)
	if err != nil {
		writeErr(w, err)
		return
	}

	isAdmin, err := h.uc.IsAdmin(r.Context(), uid)
	if err != nil {
		log.Printf("[UserHandler] admin check failed uid=%s err=%v", uid, err)
		isAdmin = false
	}

	writeJSON(w, http.StatusOK, profileResponse{Profile: profile, IsAdmin: isAdmin})
}

func (h *UserHandler) updateName(w http.ResponseWriter, r *http.Request, uid string) {
	var body struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErrMsg(w, http.StatusBadRequest, "invalid json body")
		return
	}

	if err := h.uc.UpdateName(r.Context(), uid, body.Name); err != nil {
		writeErr(w, err)
		return
	}

	profile, err := h.uc.Get(r.Context(), uid)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// ------------------------------------------------------------
// Admin customer listing. Mounted behind AdminOnly.
//
//	GET /admin/customers
// ------------------------------------------------------------

type AdminCustomerHandler struct {
	uc *usecase.UserUsecase
}

func NewAdminCustomerHandler(uc *usecase.UserUsecase) http.Handler {
	return &AdminCustomerHandler{uc: uc}
}

func (h *AdminCustomerHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log.Printf("[AdminCustomerHandler] method=%s path=%s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet || pathTail(r.URL.Path, "/admin/customers") != "" {
		methodNotAllowed(w)
		return
	}

	customers, err := h.uc.ListCustomers(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	if customers == nil {
		customers = []userdom.Profile{}
	}
	writeJSON(w, http.StatusOK, customers)
}
