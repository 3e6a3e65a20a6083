package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	domproduct "example.com/supplement-store/internal/domain/product"
	domuser "example.com/supplement-store/internal/domain/user"
	"example.com/supplement-store/internal/infra/security"
	cataloguc "example.com/supplement-store/internal/usecase/catalog"
)

// Mock product repository backing the catalog endpoints.
type mockProductRepository struct {
	products []*domproduct.Product
}

func (m *mockProductRepository) Create(ctx context.Context, p *domproduct.Product) (*domproduct.Product, error) {
	p.ID = primitive.NewObjectID()
	m.products = append(m.products, p)
	return p, nil
}

func (m *mockProductRepository) Update(ctx context.Context, id string, upd domproduct.Update) (*domproduct.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domproduct.ErrInvalidProductID
	}
	for _, p := range m.products {
		if p.ID == oid {
			if upd.Price != nil {
				p.Price = *upd.Price
			}
			if upd.Name != nil {
				p.Name = *upd.Name
			}
			return p, nil
		}
	}
	return nil, domproduct.ErrProductNotFound
}

func (m *mockProductRepository) SoftDelete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domproduct.ErrInvalidProductID
	}
	for _, p := range m.products {
		if p.ID == oid {
			p.IsActive = false
			return nil
		}
	}
	return domproduct.ErrProductNotFound
}

func (m *mockProductRepository) GetByID(ctx context.Context, id string) (*domproduct.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domproduct.ErrInvalidProductID
	}
	for _, p := range m.products {
		if p.ID == oid && p.IsActive {
			return p, nil
		}
	}
	return nil, domproduct.ErrProductNotFound
}

func (m *mockProductRepository) List(ctx context.Context, plan domproduct.QueryPlan) ([]*domproduct.Product, int64, error) {
	var matched []*domproduct.Product
	for _, p := range m.products {
		if !p.IsActive {
			continue
		}
		if len(plan.Brands) > 0 && !containsValue(plan.Brands, p.Brand) {
			continue
		}
		if len(plan.Types) > 0 && !containsValue(plan.Types, p.Type) {
			continue
		}
		if plan.MinPrice != nil && p.Price < *plan.MinPrice {
			continue
		}
		if plan.MaxPrice != nil && p.Price > *plan.MaxPrice {
			continue
		}
		matched = append(matched, p)
	}
	if plan.Sort.Field == "price" {
		sort.SliceStable(matched, func(i, j int) bool {
			if plan.Sort.Descending {
				return matched[i].Price > matched[j].Price
			}
			return matched[i].Price < matched[j].Price
		})
	}
	total := int64(len(matched))
	if plan.Skip >= total {
		return []*domproduct.Product{}, total, nil
	}
	matched = matched[plan.Skip:]
	if int64(len(matched)) > plan.Limit {
		matched = matched[:plan.Limit]
	}
	return matched, total, nil
}

func (m *mockProductRepository) ListByType(ctx context.Context, productType string, limit int64) ([]*domproduct.Product, error) {
	var out []*domproduct.Product
	for _, p := range m.products {
		if p.IsActive && p.Type == productType {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockProductRepository) ListFeatured(ctx context.Context) ([]*domproduct.Product, error) {
	var out []*domproduct.Product
	for _, p := range m.products {
		if p.IsActive && p.OriginalPrice != nil {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	if len(out) > domproduct.FeaturedLimit {
		out = out[:domproduct.FeaturedLimit]
	}
	return out, nil
}

func containsValue(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

func newCatalogRepo() *mockProductRepository {
	op := 45800.0
	repo := &mockProductRepository{}
	fixtures := []*domproduct.Product{
		{Name: "Combo Whey", Description: "Proteína con creatina.", Price: 36720, OriginalPrice: &op, Type: "Proteína", Brand: "Star Nutrition", Rating: 4.8},
		{Name: "Iron Bar", Description: "Barras energéticas.", Price: 57800, Type: "Creatina", Brand: "ENA", Rating: 4.7},
		{Name: "Scoop", Description: "Cuchara medidora.", Price: 1500, Type: "Pre-entreno", Brand: "Universal Nutrition", Rating: 4.9},
		{Name: "Whey Isolate", Description: "Proteína aislada.", Price: 109990, Type: "Proteína", Brand: "Star Nutrition", Rating: 4.9},
	}
	for _, p := range fixtures {
		p.ID = primitive.NewObjectID()
		p.IsActive = true
		p.ImageURL = "https://example.com/p.jpg"
		repo.products = append(repo.products, p)
	}
	return repo
}

func setupCatalogRouter(repo *mockProductRepository) http.Handler {
	tokenSvc := security.NewJWTService("test-secret", time.Hour)
	api := NewAPI(Dependencies{
		CatalogService: cataloguc.NewService(repo),
		TokenService:   tokenSvc,
	})
	return api.Router()
}

func bearerToken(t *testing.T) string {
	t.Helper()
	tokenSvc := security.NewJWTService("test-secret", time.Hour)
	token, err := tokenSvc.GenerateToken(&domuser.User{
		ID:    primitive.NewObjectID(),
		Email: "admin@example.com",
	})
	require.NoError(t, err)
	return token
}

func TestListProducts_Envelope(t *testing.T) {
	router := setupCatalogRouter(newCatalogRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/products?page=1&limit=2&sortBy=price-low", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Products   []map[string]any `json:"products"`
		Pagination struct {
			CurrentPage   int64 `json:"currentPage"`
			TotalPages    int64 `json:"totalPages"`
			TotalProducts int64 `json:"totalProducts"`
			HasNext       bool  `json:"hasNext"`
			HasPrev       bool  `json:"hasPrev"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Len(t, resp.Products, 2)
	require.Equal(t, "Scoop", resp.Products[0]["name"])
	require.Equal(t, int64(1), resp.Pagination.CurrentPage)
	require.Equal(t, int64(2), resp.Pagination.TotalPages)
	require.Equal(t, int64(4), resp.Pagination.TotalProducts)
	require.True(t, resp.Pagination.HasNext)
	require.False(t, resp.Pagination.HasPrev)
}

func TestListProducts_RepeatedBrandParams(t *testing.T) {
	router := setupCatalogRouter(newCatalogRepo())

	req := httptest.NewRequest(http.MethodGet,
		"/api/products?brand=Star+Nutrition&brand=ENA&limit=50", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Products []struct {
			Brand string `json:"brand"`
		} `json:"products"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Products, 3)
	for _, p := range resp.Products {
		require.Contains(t, []string{"Star Nutrition", "ENA"}, p.Brand)
	}
}

func TestGetProduct_NotFoundVsInvalidID(t *testing.T) {
	router := setupCatalogRouter(newCatalogRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/products/"+primitive.NewObjectID().Hex(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/products/not-a-hex-id", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetProduct_Found(t *testing.T) {
	repo := newCatalogRepo()
	router := setupCatalogRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/products/"+repo.products[0].ID.Hex(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var p map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	require.Equal(t, "Combo Whey", p["name"])
}

func TestFeaturedEndpoint(t *testing.T) {
	router := setupCatalogRouter(newCatalogRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/products/featured/list", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var products []struct {
		OriginalPrice *float64 `json:"originalPrice"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 1)
	require.NotNil(t, products[0].OriginalPrice)
}

func TestCategoryEndpoint(t *testing.T) {
	router := setupCatalogRouter(newCatalogRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/products/category/Proteína?limit=1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var products []struct {
		Name   string  `json:"name"`
		Rating float64 `json:"rating"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 1)
	require.Equal(t, "Whey Isolate", products[0].Name)
}

func TestCreateProduct_RequiresToken(t *testing.T) {
	router := setupCatalogRouter(newCatalogRepo())

	payload, _ := json.Marshal(map[string]any{"name": "New"})
	req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateProduct_Success(t *testing.T) {
	repo := newCatalogRepo()
	router := setupCatalogRouter(repo)

	payload, _ := json.Marshal(map[string]any{
		"name":        "Creatina Micronizada",
		"description": "Creatina monohidrato.",
		"price":       19990,
		"type":        "Creatina",
		"brand":       "ENA",
		"imageUrl":    "https://example.com/c.jpg",
		"stock":       10,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+bearerToken(t))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp struct {
		Product struct {
			ID       string `json:"id"`
			IsActive bool   `json:"isActive"`
		} `json:"product"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Product.ID)
	require.True(t, resp.Product.IsActive)
}

func TestCreateProduct_ValidationMessages(t *testing.T) {
	router := setupCatalogRouter(newCatalogRepo())

	payload, _ := json.Marshal(map[string]any{
		"name":  "",
		"price": -5,
		"type":  "Gaseosa",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+bearerToken(t))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp struct {
		Details []string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Contains(t, resp.Details, "Product name is required")
	require.Contains(t, resp.Details, "Price cannot be negative")
	require.Contains(t, resp.Details, `"Gaseosa" is not a valid product type`)
}

func TestDeleteProduct_SoftDeletes(t *testing.T) {
	repo := newCatalogRepo()
	router := setupCatalogRouter(repo)
	id := repo.products[0].ID.Hex()

	req := httptest.NewRequest(http.MethodDelete, "/api/products/"+id, nil)
	req.Header.Set("Authorization", "Bearer "+bearerToken(t))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)

	// The product is gone from customer-facing reads but not removed.
	req = httptest.NewRequest(http.MethodGet, "/api/products/"+id, nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.False(t, repo.products[0].IsActive)
}

func TestUpdateProduct(t *testing.T) {
	repo := newCatalogRepo()
	router := setupCatalogRouter(repo)

	payload, _ := json.Marshal(map[string]any{"price": 40000})
	req := httptest.NewRequest(http.MethodPut, "/api/products/"+repo.products[0].ID.Hex(), bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+bearerToken(t))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 40000.0, repo.products[0].Price)
}
