package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	domproduct "example.com/supplement-store/internal/domain/product"
)

func (a *API) handleListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := domproduct.ListParams{
		Page:      q.Get("page"),
		Limit:     q.Get("limit"),
		Search:    q.Get("search"),
		Types:     q["type"],
		Brands:    q["brand"],
		MinPrice:  q.Get("minPrice"),
		MaxPrice:  q.Get("maxPrice"),
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
	}

	page, err := a.catalogSvc.List(r.Context(), params)
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"products":   page.Products,
		"pagination": page.Pagination,
	})
}

func (a *API) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := a.catalogSvc.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (a *API) handleListByCategory(w http.ResponseWriter, r *http.Request) {
	var limit int64
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, _ = strconv.ParseInt(v, 10, 64)
	}

	products, err := a.catalogSvc.ListByType(r.Context(), chi.URLParam(r, "type"), limit)
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (a *API) handleListFeatured(w http.ResponseWriter, r *http.Request) {
	products, err := a.catalogSvc.ListFeatured(r.Context())
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

type createProductRequest struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice"`
	Type          string   `json:"type"`
	Brand         string   `json:"brand"`
	ImageURL      string   `json:"imageUrl"`
	Stock         int64    `json:"stock"`
	Rating        float64  `json:"rating"`
	IsActive      *bool    `json:"isActive"`
}

type updateProductRequest struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	Price         *float64 `json:"price"`
	OriginalPrice *float64 `json:"originalPrice"`
	Type          *string  `json:"type"`
	Brand         *string  `json:"brand"`
	ImageURL      *string  `json:"imageUrl"`
	Stock         *int64   `json:"stock"`
	Rating        *float64 `json:"rating"`
	IsActive      *bool    `json:"isActive"`
}

func (a *API) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	p, err := a.catalogSvc.Create(r.Context(), &domproduct.Product{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Type:          req.Type,
		Brand:         req.Brand,
		ImageURL:      req.ImageURL,
		Stock:         req.Stock,
		Rating:        req.Rating,
		IsActive:      isActive,
	})
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"product": p})
}

func (a *API) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req updateProductRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	p, err := a.catalogSvc.Update(r.Context(), chi.URLParam(r, "id"), domproduct.Update{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Type:          req.Type,
		Brand:         req.Brand,
		ImageURL:      req.ImageURL,
		Stock:         req.Stock,
		Rating:        req.Rating,
		IsActive:      req.IsActive,
	})
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"product": p})
}

func (a *API) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := a.catalogSvc.SoftDelete(r.Context(), chi.URLParam(r, "id")); err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
