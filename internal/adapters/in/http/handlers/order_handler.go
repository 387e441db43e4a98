// internal/adapters/in/http/handlers/order_handler.go
package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"dreamweave/internal/adapters/in/http/middleware"
	usecase "dreamweave/internal/application/usecase"
	orderdom "dreamweave/internal/domain/order"
)

// OrderHandler serves the signed-in user's orders.
//
//	POST /orders/checkout   place an order from the current cart
//	GET  /orders            the caller's order history, newest first
type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) http.Handler {
	return &OrderHandler{uc: uc}
}

func (h *OrderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log.Printf("[OrderHandler] method=%s path=%s", r.Method, r.URL.Path)

	uid, ok := middleware.CurrentUID(r)
	if !ok {
		writeErrMsg(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	switch {
	case r.Method == http.MethodPost && pathTail(r.URL.Path, "/orders") == "checkout":
		h.checkout(w, r, uid)

	case r.Method == http.MethodGet && pathTail(r.URL.Path, "/orders") == "":
		h.listMine(w, r, uid)

	default:
		notFound(w)
	}
}

func (h *OrderHandler) checkout(w http.ResponseWriter, r *http.Request, uid string) {
	var ship orderdom.ShippingDetails
	if err := json.NewDecoder(r.Body).Decode(&ship); err != nil {
		writeErrMsg(w, http.StatusBadRequest, "invalid json body")
		return
	}

	// fall back to the verified token email when the form omits it
	if strings.TrimSpace(ship.Email) == "" {
		if _, email, ok := middleware.CurrentUIDAndEmail(r); ok {
			ship.Email = email
		}
	}

	o, err := h.uc.Checkout(r.Context(), uid, ship)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, o)
}

func (h *OrderHandler) listMine(w http.ResponseWriter, r *http.Request, uid string) {
	orders, err := h.uc.ListMine(r.Context(), uid)
	if err != nil {
		writeErr(w, err)
		return
	}
	if orders == nil {
		orders = []orderdom.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

// ------------------------------------------------------------
// Admin order management. Mounted behind AdminOnly.
//
//	GET   /admin/orders               all orders, newest first
//	PATCH /admin/orders/{id}/status   body: { "userId": "...", "status": "Shipped" }
// ------------------------------------------------------------

type AdminOrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewAdminOrderHandler(uc *usecase.OrderUsecase) http.Handler {
	return &AdminOrderHandler{uc: uc}
}

func (h *AdminOrderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log.Printf("[AdminOrderHandler] method=%s path=%s", r.Method, r.URL.Path)

	tail := pathTail(r.URL.Path, "/admin/orders")

	switch {
	case r.Method == http.MethodGet && tail == "":
		h.listAll(w, r)

	case r.Method == http.MethodPatch && strings.HasSuffix(tail, "/status"):
		orderID := strings.TrimSuffix(tail, "/status")
		orderID = strings.Trim(orderID, "/")
		if orderID == "" {
			writeErrMsg(w, http.StatusBadRequest, "order id is required")
			return
		}
		h.updateStatus(w, r, orderID)

	default:
		notFound(w)
	}
}

func (h *AdminOrderHandler) listAll(w http.ResponseWriter, r *http.Request) {
	orders, err := h.uc.ListAll(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	if orders == nil {
		orders = []orderdom.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *AdminOrderHandler) updateStatus(w http.ResponseWriter, r *http.Request, orderID string) {
	var body struct {
		UserID string `json:"userId"`
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErrMsg(w, http.StatusBadRequest, "invalid json body")
		return
	}

	if err := h.uc.UpdateStatus(r.Context(), orderID, body.UserID, body.Status); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"id":     orderID,
		"status": body.Status,
	})
}
