package product

import (
	"slices"

	"weardistrict/internal/domain"
)

// Query combines the product list page controls. Zero values mean "no
// constraint"; MaxPrice of zero is treated as unbounded.
type Query struct {
	Search     string
	Categories []string
	MinPrice   domain.Money
	MaxPrice   domain.Money
	Page       int
}

// Page is one page of browse results.
type Page struct {
	Items      []domain.Product `json:"items"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	TotalPages int              `json:"totalPages"`
}

// Browse applies search, then the category selection (any of), then the
// inclusive price range, then pagination.
func (s *Service) Browse(q Query) Page {
	s.mu.RLock()
	results := s.products
	if q.Search != "" {
		results = search(results, q.Search)
	}
	var matched []domain.Product
	for _, p := range results {
		if len(q.Categories) > 0 && !slices.Contains(q.Categories, p.Category) {
			continue
		}
		maxPrice := q.MaxPrice
		if maxPrice <= 0 {
			maxPrice = domain.MaxMoney
		}
		if p.Price < q.MinPrice || p.Price > maxPrice {
			continue
		}
		matched = append(matched, p.Clone())
	}
	s.mu.RUnlock()

	total := len(matched)
	totalPages := (total + PageSize - 1) / PageSize
	page := q.Page
	if page < 1 {
		page = 1
	}
	out := Page{
		Items:      []domain.Product{},
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}
	// Pages past the end are empty; checked before the offset multiply.
	if page > totalPages {
		return out
	}
	start := (page - 1) * PageSize
	end := start + PageSize
	if end > total {
		end = total
	}
	out.Items = matched[start:end]
	return out
}

