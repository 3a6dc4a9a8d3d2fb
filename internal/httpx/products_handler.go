package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/ariefcatur/go-catalog-orders.git/internal/domain"
	"github.com/ariefcatur/go-catalog-orders.git/internal/service"
)

type ProductsHandler struct {
	Service *service.CatalogService
}

type createProductReq struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Sizes []domain.Size   `json:"sizes"`
}

type createProductResp struct {
	ID uuid.UUID `json:"id"`
}

// productListItem is the listing projection: sizes and timestamps are
// not exposed there.
type productListItem struct {
	ID    uuid.UUID       `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type productListResp struct {
	Data []productListItem `json:"data"`
	Page domain.Page       `json:"page"`
}

func (h *ProductsHandler) Register(r *chi.Mux) {
	r.Post("/products", h.createProduct)
	r.Get("/products", h.listProducts)
}

func (h *ProductsHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	productID, err := h.Service.CreateProduct(ctx, domain.Product{
		Name:  req.Name,
		Price: req.Price,
		Sizes: req.Sizes,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, createProductResp{ID: productID})
}

func (h *ProductsHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := pageParams(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var filter domain.ProductFilter
	if name := r.URL.Query().Get("name"); name != "" {
		filter.Name = lo.ToPtr(name)
	}
	if size := r.URL.Query().Get("size"); size != "" {
		filter.Size = lo.ToPtr(size)
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	products, page, err := h.Service.ListProducts(ctx, filter, limit, offset)
	if err != nil {
		writeError(w, err)
		return
	}

	data := make([]productListItem, 0, len(products))
	for _, p := range products {
		data = append(data, productListItem{ID: p.ID, Name: p.Name, Price: p.Price})
	}
	writeJSON(w, http.StatusOK, productListResp{Data: data, Page: page})
}
