// internal/adapters/in/http/handlers/review_handler.go
package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"dreamweave/internal/adapters/in/http/middleware"
	usecase "dreamweave/internal/application/usecase"
)

// ReviewHandler serves product reviews under /reviews.
//
//	GET  /reviews/{productId}              list reviews, newest first
//	GET  /reviews/{productId}/eligibility  can the caller review? has the caller already?
//	POST /reviews/{productId}              submit a review
//
// Listing is public; eligibility and submit require auth.
type ReviewHandler struct {
	uc *usecase.ReviewUsecase
}

func NewReviewHandler(uc *usecase.ReviewUsecase) http.Handler {
	return &ReviewHandler{uc: uc}
}

func (h *ReviewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log.Printf("[ReviewHandler] method=%s path=%s", r.Method, r.URL.Path)

	tail := pathTail(r.URL.Path, "/reviews")
	if tail == "" {
		notFound(w)
		return
	}

	productID, rest, _ := strings.Cut(tail, "/")

	switch {
	case r.Method == http.MethodGet && rest == "":
		h.list(w, r, productID)

	case r.Method == http.MethodGet && rest == "eligibility":
		h.eligibility(w, r, productID)

	case r.Method == http.MethodPost && rest == "":
		h.submit(w, r, productID)

	default:
		notFound(w)
	}
}

func (h *ReviewHandler) list(w http.ResponseWriter, r *http.Request, productID string) {
	reviews, err := h.uc.ListByProduct(r.Context(), productID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

func (h *ReviewHandler) eligibility(w http.ResponseWriter, r *http.Request, productID string) {
	uid, ok := middleware.CurrentUID(r)
	if !ok {
		writeErrMsg(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	eligible, err := h.uc.IsEligible(r.Context(), uid, productID)
	if err != nil {
		writeErr(w, err)
		return
	}

	reviewed, err := h.uc.HasReviewed(r.Context(), uid, productID)
	if err != nil {
		writeErr(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{
		"eligible": eligible,
		"reviewed": reviewed,
	})
}

func (h *ReviewHandler) submit(w http.ResponseWriter, r *http.Request, productID string) {
	uid, ok := middleware.CurrentUID(r)
	if !ok {
		writeErrMsg(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var body struct {
		Rating   int    `json:"rating"`
		Comment  string `json:"comment"`
		UserName string `json:"userName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErrMsg(w, http.StatusBadRequest, "invalid json body")
		return
	}

	userName := strings.TrimSpace(body.UserName)
	if userName == "" {
		if name, ok := middleware.CurrentDisplayName(r); ok {
			userName = name
		} else {
			userName = "Anonymous"
		}
	}

	review, err := h.uc.Submit(r.Context(), uid, userName, productID, body.Rating, body.Comment)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, review)
}
