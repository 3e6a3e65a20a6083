package product

import (
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
)

// ListParams holds the raw query parameters of a catalog listing request
// exactly as they arrived. Empty strings and empty slices mean "not given".
type ListParams struct {
	Page      string
	Limit     string
	Search    string
	Types     []string
	Brands    []string
	MinPrice  string
	MaxPrice  string
	SortBy    string
	SortOrder string
}

type SortSpec struct {
	Field      string
	Descending bool
}

// QueryPlan is the normalized, storage-agnostic form of a catalog query:
// the filter predicates, a single sort key and the page window. Every plan
// implies the active-only restriction; the repository applies it.
type QueryPlan struct {
	Search   string
	Types    []string
	Brands   []string
	MinPrice *float64
	MaxPrice *float64
	Sort     SortSpec
	Page     int64
	Skip     int64
	Limit    int64
}

// BuildQueryPlan normalizes raw listing parameters into a QueryPlan. It
// never fails: malformed or non-positive page/limit fall back to the
// defaults and malformed price bounds are dropped. Limit is intentionally
// not capped; callers may request arbitrarily large pages.
func BuildQueryPlan(in ListParams) QueryPlan {
	page := parsePositive(in.Page, DefaultPage)
	limit := parsePositive(in.Limit, DefaultLimit)

	plan := QueryPlan{
		Search:   strings.TrimSpace(in.Search),
		Types:    compact(in.Types),
		Brands:   compact(in.Brands),
		MinPrice: parsePrice(in.MinPrice),
		MaxPrice: parsePrice(in.MaxPrice),
		Sort:     sortSpec(in.SortBy, in.SortOrder),
		Page:     page,
		Skip:     (page - 1) * limit,
		Limit:    limit,
	}
	return plan
}

// sortSpec maps the special sort keywords to their fixed field and
// direction; any other value sorts by that literal field name, with
// sortOrder consulted only in that case.
func sortSpec(sortBy, sortOrder string) SortSpec {
	switch sortBy {
	case "price-low":
		return SortSpec{Field: "price"}
	case "price-high":
		return SortSpec{Field: "price", Descending: true}
	case "rating":
		return SortSpec{Field: "rating", Descending: true}
	}
	if sortBy == "" {
		sortBy = "name"
	}
	return SortSpec{Field: sortBy, Descending: sortOrder == "desc"}
}

func parsePositive(s string, def int64) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n < 1 {
		return def
	}
	return n
}

func parsePrice(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
