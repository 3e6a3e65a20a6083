package mongodb

import (
	"go.mongodb.org/mongo-driver/bson"

	domproduct "example.com/supplement-store/internal/domain/product"
)

// planFilter translates a QueryPlan's predicates into a Mongo filter.
// The active-only restriction is always present; customer-facing reads
// never see soft-deleted products.
func planFilter(plan domproduct.QueryPlan) bson.M {
	filter := bson.M{"isActive": true}

	if plan.Search != "" {
		filter["$text"] = bson.M{"$search": plan.Search}
	}
	if v := inClause(plan.Types); v != nil {
		filter["type"] = v
	}
	if v := inClause(plan.Brands); v != nil {
		filter["brand"] = v
	}
	if plan.MinPrice != nil || plan.MaxPrice != nil {
		price := bson.M{}
		if plan.MinPrice != nil {
			price["$gte"] = *plan.MinPrice
		}
		if plan.MaxPrice != nil {
			price["$lte"] = *plan.MaxPrice
		}
		filter["price"] = price
	}
	return filter
}

// inClause collapses a single value to plain equality and wraps multiple
// values in $in (match any of them).
func inClause(values []string) any {
	switch len(values) {
	case 0:
		return nil
	case 1:
		return values[0]
	default:
		return bson.M{"$in": values}
	}
}

func planSort(s domproduct.SortSpec) bson.D {
	dir := 1
	if s.Descending {
		dir = -1
	}
	return bson.D{{Key: s.Field, Value: dir}}
}
