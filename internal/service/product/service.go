package product

import (
	"fmt"
	"io"
	"log"
	"strings"
	"sync"

	"weardistrict/internal/domain"
	"weardistrict/internal/metrics"
)

// PageSize is the number of products per browse page.
const PageSize = 12

// Service owns the product catalog.
type Service struct {
	mu       sync.RWMutex
	products []domain.Product
	nextID   int
	logger   *log.Logger
	metrics  *metrics.Metrics
}

// New loads the catalog from seed. Seed entries with a non-positive or
// duplicate id are given a fresh id after the highest valid one.
func New(seed []domain.Product, logger *log.Logger, m *metrics.Metrics) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	s := &Service{logger: logger, metrics: m}

	maxID := 0
	for _, p := range seed {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	s.nextID = maxID + 1

	seen := make(map[int]bool, len(seed))
	s.products = make([]domain.Product, 0, len(seed))
	for _, p := range seed {
		p = p.Clone()
		if p.ID <= 0 || seen[p.ID] {
			old := p.ID
			p.ID = s.nextID
			s.nextID++
			logger.Printf("product svc: renumbered seed product name=%q old_id=%d new_id=%d", p.Name, old, p.ID)
		}
		seen[p.ID] = true
		s.products = append(s.products, p)
	}
	logger.Printf("product svc: loaded count=%d next_id=%d", len(s.products), s.nextID)
	return s
}

// List returns the whole catalog in catalog order.
func (s *Service) List() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.products)
}

// Count returns the number of products in the catalog.
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

func (s *Service) GetByID(id int) (domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.products[i].Clone(), true
	}
	return domain.Product{}, false
}

// Filter returns products in category (any category when empty) priced
// within [minPrice, maxPrice]. Pass domain.MaxMoney for no upper bound.
func (s *Service) Filter(category string, minPrice, maxPrice domain.Money) []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Product
	for _, p := range s.products {
		if category != "" && p.Category != category {
			continue
		}
		if p.Price < minPrice || p.Price > maxPrice {
			continue
		}
		out = append(out, p.Clone())
	}
	return out
}

// Search matches text case-insensitively against name or description.
func (s *Service) Search(text string) []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(search(s.products, text))
}

// Categories returns distinct categories in order of first appearance.
func (s *Service) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := make(map[string]bool)
	var out []string
	for _, p := range s.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

// Add appends p with a newly assigned id. Ids are never reused, even after
// the product holding the highest id is removed.
func (s *Service) Add(p domain.Product) (domain.Product, error) {
	if err := validate(p); err != nil {
		return domain.Product{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p = p.Clone()
	p.ID = s.nextID
	s.nextID++
	s.products = append(s.products, p)
	s.metrics.CatalogMutation("add")
	s.logger.Printf("product svc: added id=%d name=%q", p.ID, p.Name)
	return p.Clone(), nil
}

// Update merges patch into the product with the given id.
func (s *Service) Update(id int, patch domain.ProductPatch) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return domain.Product{}, domain.ErrNotFound
	}
	updated := s.products[i].Clone()
	patch.Apply(&updated)
	if err := validate(updated); err != nil {
		return domain.Product{}, err
	}
	s.products[i] = updated
	s.metrics.CatalogMutation("update")
	s.logger.Printf("product svc: updated id=%d", id)
	return updated.Clone(), nil
}

// Remove deletes the product and reports whether it existed.
func (s *Service) Remove(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.products = append(s.products[:i], s.products[i+1:]...)
	s.metrics.CatalogMutation("remove")
	s.logger.Printf("product svc: removed id=%d", id)
	return true
}

func (s *Service) indexOf(id int) int {
	for i, p := range s.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func search(products []domain.Product, text string) []domain.Product {
	q := strings.ToLower(text)
	var out []domain.Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, p)
		}
	}
	return out
}

func validate(p domain.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name required", domain.ErrInvalidProduct)
	}
	if p.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", domain.ErrInvalidProduct)
	}
	if p.Price > domain.MaxPrice {
		return fmt.Errorf("%w: price above %s", domain.ErrInvalidProduct, domain.MaxPrice)
	}
	return nil
}

func cloneAll(products []domain.Product) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		out = append(out, p.Clone())
	}
	return out
}
