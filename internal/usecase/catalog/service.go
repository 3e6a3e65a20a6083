package catalog

import (
	"context"
	"time"

	dom "example.com/supplement-store/internal/domain/product"
)

type Service struct {
	repo dom.Repository
}

func NewService(repo dom.Repository) *Service {
	return &Service{repo: repo}
}

type Pagination struct {
	CurrentPage   int64 `json:"currentPage"`
	TotalPages    int64 `json:"totalPages"`
	TotalProducts int64 `json:"totalProducts"`
	HasNext       bool  `json:"hasNext"`
	HasPrev       bool  `json:"hasPrev"`
}

type Page struct {
	Products   []*dom.Product
	Pagination Pagination
}

// List builds a query plan from the raw parameters, runs the count+fetch
// pair and assembles the pagination metadata.
func (s *Service) List(ctx context.Context, params dom.ListParams) (*Page, error) {
	plan := dom.BuildQueryPlan(params)

	products, total, err := s.repo.List(ctx, plan)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []*dom.Product{}
	}

	return &Page{
		Products: products,
		Pagination: Pagination{
			CurrentPage:   plan.Page,
			TotalPages:    (total + plan.Limit - 1) / plan.Limit,
			TotalProducts: total,
			HasNext:       plan.Skip+int64(len(products)) < total,
			HasPrev:       plan.Page > 1,
		},
	}, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*dom.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByType(ctx context.Context, productType string, limit int64) ([]*dom.Product, error) {
	if limit < 1 {
		limit = dom.DefaultCategoryLimit
	}
	return s.repo.ListByType(ctx, productType, limit)
}

func (s *Service) ListFeatured(ctx context.Context) ([]*dom.Product, error) {
	return s.repo.ListFeatured(ctx)
}

func (s *Service) Create(ctx context.Context, p *dom.Product) (*dom.Product, error) {
	if err := dom.Validate(p); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.repo.Create(ctx, p)
}

func (s *Service) Update(ctx context.Context, id string, upd dom.Update) (*dom.Product, error) {
	if err := dom.ValidateUpdate(upd); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, upd)
}

// SoftDelete flips isActive off; the record is never physically removed.
func (s *Service) SoftDelete(ctx context.Context, id string) error {
	return s.repo.SoftDelete(ctx, id)
}
