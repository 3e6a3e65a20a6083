package product

import "context"

const (
	// DefaultCategoryLimit caps the by-category query when the caller
	// does not supply a limit.
	DefaultCategoryLimit = 10
	// FeaturedLimit caps the discounted-product query.
	FeaturedLimit = 6
)

type Repository interface {
	Create(ctx context.Context, p *Product) (*Product, error)
	Update(ctx context.Context, id string, upd Update) (*Product, error)
	SoftDelete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*Product, error)
	// List returns one page of active products matching the plan together
	// with the total match count. The two reads are independent; minor
	// drift under concurrent writes is accepted.
	List(ctx context.Context, plan QueryPlan) ([]*Product, int64, error)
	ListByType(ctx context.Context, productType string, limit int64) ([]*Product, error)
	ListFeatured(ctx context.Context) ([]*Product, error)
}
