// internal/adapters/in/http/handlers/favorite_handler.go
package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"dreamweave/internal/adapters/in/http/middleware"
	usecase "dreamweave/internal/application/usecase"
)

// FavoriteHandler serves the signed-in user's favorites.
//
//	GET  /favorites             product ids the caller has favorited
//	POST /favorites/toggle      body: { "productId": "..." }
type FavoriteHandler struct {
	uc *usecase.FavoriteUsecase
}

func NewFavoriteHandler(uc *usecase.FavoriteUsecase) http.Handler {
	return &FavoriteHandler{uc: uc}
}

func (h *FavoriteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log.Printf("[FavoriteHandler] method=%s path=%s", r.Method, r.URL.Path)

	uid, ok := middleware.CurrentUID(r)
	if !ok {
		writeErrMsg(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	switch {
	case r.Method == http.MethodGet && pathTail(r.URL.Path, "/favorites") == "":
		h.list(w, r, uid)

	case r.Method == http.MethodPost && pathTail(r.URL.Path, "/favorites") == "toggle":
		h.toggle(w, r, uid)

	default:
		notFound(w)
	}
}

func (h *FavoriteHandler) list(w http.ResponseWriter, r *http.Request, uid string) {
	ids, err := h.uc.List(r.Context(), uid)
	if err != nil {
		writeErr(w, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"productIds": ids})
}

func (h *FavoriteHandler) toggle(w http.ResponseWriter, r *http.Request, uid string) {
	var body struct {
		ProductID string `json:"productId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErrMsg(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if strings.TrimSpace(body.ProductID) == "" {
		writeErrMsg(w, http.StatusBadRequest, "productId is required")
		return
	}

	nowFavorite, err := h.uc.Toggle(r.Context(), uid, body.ProductID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"productId": body.ProductID,
		"favorite":  nowFavorite,
	})
}
