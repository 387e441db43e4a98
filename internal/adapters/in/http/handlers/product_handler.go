// internal/adapters/in/http/handlers/product_handler.go
package handlers

import (
	"encoding/base64"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	usecase "dreamweave/internal/application/usecase"
)

// ProductHandler serves the public catalog reads.
//
//	GET /products        full catalog
//	GET /products/{id}   single product
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

func NewProductHandler(uc *usecase.ProductUsecase) http.Handler {
	return &ProductHandler{uc: uc}
}

func (h *ProductHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log.Printf("[ProductHandler] method=%s path=%s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	id := pathTail(r.URL.Path, "/products")
	if id == "" {
		h.list(w, r)
		return
	}
	if strings.Contains(id, "/") {
		notFound(w)
		return
	}
	h.get(w, r, id)
}

func (h *ProductHandler) list(w http.ResponseWriter, r *http.Request) {
	products, err := h.uc.List(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	p, err := h.uc.Get(r.Context(), id)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// ------------------------------------------------------------
// Admin catalog writes. Mounted behind AdminOnly.
//
//	POST   /admin/products
//	PUT    /admin/products/{id}
//	DELETE /admin/products/{id}
// ------------------------------------------------------------

type AdminProductHandler struct {
	uc *usecase.ProductUsecase
}

func NewAdminProductHandler(uc *usecase.ProductUsecase) http.Handler {
	return &AdminProductHandler{uc: uc}
}

// productPayload is the write body. Images arrive base64-encoded so the
// dashboard can submit file uploads and a manual URL in one JSON request.
type productPayload struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"originalPrice"`
	Image         string   `json:"image"`
	Category      string   `json:"category"`
	Colors        []string `json:"colors"`
	Sizes         []string `json:"sizes"`
	Badge         string   `json:"badge"`
	Features      []string `json:"features"`
	Images        []struct {
		FileName    string `json:"fileName"`
		ContentType string `json:"contentType"`
		Data        string `json:"data"` // base64
	} `json:"images"`
}

func (p *productPayload) input() usecase.ProductInput {
	return usecase.ProductInput{
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Image:         p.Image,
		Category:      p.Category,
		Colors:        p.Colors,
		Sizes:         p.Sizes,
		Badge:         p.Badge,
		Features:      p.Features,
	}
}

func (p *productPayload) decodeImages() ([]usecase.ProductImage, error) {
	if len(p.Images) == 0 {
		return nil, nil
	}
	out := make([]usecase.ProductImage, 0, len(p.Images))
	for _, img := range p.Images {
		data, err := base64.StdEncoding.DecodeString(img.Data)
		if err != nil {
			return nil, err
		}
		out = append(out, usecase.ProductImage{
			FileName:    img.FileName,
			ContentType: img.ContentType,
			Data:        data,
		})
	}
	return out, nil
}

func (h *AdminProductHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log.Printf("[AdminProductHandler] method=%s path=%s", r.Method, r.URL.Path)

	id := pathTail(r.URL.Path, "/admin/products")

	switch {
	case r.Method == http.MethodPost && id == "":
		h.create(w, r)

	case r.Method == http.MethodPut && id != "":
		h.update(w, r, id)

	case r.Method == http.MethodDelete && id != "":
		h.delete(w, r, id)

	default:
		methodNotAllowed(w)
	}
}

func (h *AdminProductHandler) create(w http.ResponseWriter, r *http.Request) {
	var body productPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErrMsg(w, http.StatusBadRequest, "invalid json body")
		return
	}

	images, err := body.decodeImages()
	if err != nil {
		writeErrMsg(w, http.StatusBadRequest, "invalid base64 image data")
		return
	}

	p, err := h.uc.Create(r.Context(), body.input(), images)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *AdminProductHandler) update(w http.ResponseWriter, r *http.Request, id string) {
	var body productPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErrMsg(w, http.StatusBadRequest, "invalid json body")
		return
	}

	images, err := body.decodeImages()
	if err != nil {
		writeErrMsg(w, http.StatusBadRequest, "invalid base64 image data")
		return
	}

	p, err := h.uc.Update(r.Context(), id, body.input(), images)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *AdminProductHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.uc.Delete(r.Context(), id); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"deleted": id})
}
