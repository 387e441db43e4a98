// internal/adapters/in/http/handlers/helpers.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"dreamweave/internal/domain/common"
	orderdom "dreamweave/internal/domain/order"
	productdom "dreamweave/internal/domain/product"
	reviewdom "dreamweave/internal/domain/review"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErrMsg(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeErr maps error kinds and the domain sentinels to HTTP statuses.
func writeErr(w http.ResponseWriter, err error) {
	switch {
	case err == nil:
		return
	case common.KindOf(err) == common.KindValidation,
		errors.Is(err, productdom.ErrInvalidProduct),
		errors.Is(err, reviewdom.ErrInvalidReview),
		errors.Is(err, orderdom.ErrInvalidOrder),
		errors.Is(err, orderdom.ErrInvalidStatus):
		writeErrMsg(w, http.StatusBadRequest, err.Error())
	case common.KindOf(err) == common.KindUnauthorized:
		writeErrMsg(w, http.StatusForbidden, err.Error())
	case common.KindOf(err) == common.KindNotFound,
		errors.Is(err, productdom.ErrNotFound),
		errors.Is(err, orderdom.ErrNotFound):
		writeErrMsg(w, http.StatusNotFound, err.Error())
	case common.KindOf(err) == common.KindTransientIO:
		writeErrMsg(w, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, reviewdom.ErrAlreadyReviewed):
		writeErrMsg(w, http.StatusConflict, err.Error())
	default:
		writeErrMsg(w, http.StatusInternalServerError, err.Error())
	}
}

func methodNotAllowed(w http.ResponseWriter) {
	writeErrMsg(w, http.StatusMethodNotAllowed, "method_not_allowed")
}

func notFound(w http.ResponseWriter) {
	writeErrMsg(w, http.StatusNotFound, "not_found")
}

// pathTail strips prefix from the request path and returns the remainder
// without a trailing slash. "" means the collection root.
func pathTail(path, prefix string) string {
	tail := strings.TrimPrefix(path, prefix)
	return strings.Trim(tail, "/")
}
