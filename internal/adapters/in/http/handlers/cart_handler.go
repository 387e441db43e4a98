// internal/adapters/in/http/handlers/cart_handler.go
package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"dreamweave/internal/adapters/in/http/middleware"
	usecase "dreamweave/internal/application/usecase"
	cartdom "dreamweave/internal/domain/cart"
)

// CartHandler serves the signed-in user's cart under /cart.
//
//	GET    /cart               current lines (refreshed against the catalog)
//	POST   /cart/items         add a product
//	PATCH  /cart/items         set a line's quantity
//	DELETE /cart/items         remove a line
//	DELETE /cart               clear the cart
//	POST   /cart/sync          reconcile a guest cart at login
type CartHandler struct {
	uc *usecase.CartUsecase
}

func NewCartHandler(uc *usecase.CartUsecase) http.Handler {
	return &CartHandler{uc: uc}
}

func (h *CartHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log.Printf("[CartHandler] method=%s path=%s", r.Method, r.URL.Path)

	uid, ok := middleware.CurrentUID(r)
	if !ok {
		writeErrMsg(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	switch {
	case r.Method == http.MethodGet && pathTail(r.URL.Path, "/cart") == "":
		h.get(w, r, uid)

	case r.Method == http.MethodDelete && pathTail(r.URL.Path, "/cart") == "":
		h.clear(w, r, uid)

	case r.Method == http.MethodPost && pathTail(r.URL.Path, "/cart") == "items":
		h.addItem(w, r, uid)

	case r.Method == http.MethodPatch && pathTail(r.URL.Path, "/cart") == "items":
		h.setQuantity(w, r, uid)

	case r.Method == http.MethodDelete && pathTail(r.URL.Path, "/cart") == "items":
		h.removeItem(w, r, uid)

	case r.Method == http.MethodPost && pathTail(r.URL.Path, "/cart") == "sync":
		h.sync(w, r, uid)

	default:
		notFound(w)
	}
}

type cartResponse struct {
	Items []cartdom.Line `json:"items"`
	Total float64        `json:"total"`
	Count int            `json:"count"`
}

func respondCart(w http.ResponseWriter, lines []cartdom.Line) {
	snap := cartdom.Snapshot{Lines: lines}
	if lines == nil {
		lines = []cartdom.Line{}
	}
	writeJSON(w, http.StatusOK, cartResponse{
		Items: lines,
		Total: snap.Total(),
		Count: snap.Count(),
	})
}

func (h *CartHandler) get(w http.ResponseWriter, r *http.Request, uid string) {
	lines, err := h.uc.Get(r.Context(), uid)
	if err != nil {
		writeErr(w, err)
		return
	}
	respondCart(w, lines)
}

func (h *CartHandler) addItem(w http.ResponseWriter, r *http.Request, uid string) {
	var body struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
		Size      string `json:"size"`
		Color     string `json:"color"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErrMsg(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if body.Quantity <= 0 {
		body.Quantity = 1
	}

	lines, err := h.uc.AddItem(r.Context(), uid, body.ProductID, body.Quantity, body.Size, body.Color)
	if err != nil {
		writeErr(w, err)
		return
	}
	respondCart(w, lines)
}

func (h *CartHandler) setQuantity(w http.ResponseWriter, r *http.Request, uid string) {
	var body struct {
		ProductID string `json:"productId"`
		Size      string `json:"size"`
		Quantity  int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErrMsg(w, http.StatusBadRequest, "invalid json body")
		return
	}

	lines, err := h.uc.SetQuantity(r.Context(), uid, body.ProductID, body.Size, body.Quantity)
	if err != nil {
		writeErr(w, err)
		return
	}
	respondCart(w, lines)
}

func (h *CartHandler) removeItem(w http.ResponseWriter, r *http.Request, uid string) {
	var body struct {
		ProductID string `json:"productId"`
		Size      string `json:"size"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErrMsg(w, http.StatusBadRequest, "invalid json body")
		return
	}

	lines, err := h.uc.RemoveItem(r.Context(), uid, body.ProductID, body.Size)
	if err != nil {
		writeErr(w, err)
		return
	}
	respondCart(w, lines)
}

func (h *CartHandler) clear(w http.ResponseWriter, r *http.Request, uid string) {
	if err := h.uc.Clear(r.Context(), uid); err != nil {
		writeErr(w, err)
		return
	}
	respondCart(w, nil)
}

// sync reconciles the guest cart a device accumulated before login.
// The remote cart wins unless it is empty and the guest cart is not.
func (h *CartHandler) sync(w http.ResponseWriter, r *http.Request, uid string) {
	var body struct {
		Items []cartdom.Line `json:"items"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErrMsg(w, http.StatusBadRequest, "invalid json body")
		return
	}

	lines, err := h.uc.Sync(r.Context(), uid, body.Items)
	if err != nil {
		writeErr(w, err)
		return
	}
	respondCart(w, lines)
}
