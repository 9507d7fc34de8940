package cart

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"sync"

	"weardistrict/internal/domain"
	"weardistrict/internal/metrics"
	"weardistrict/internal/repository/kv"
)

// Service owns the shopping cart and mirrors it to durable storage after
// every change.
type Service struct {
	mu      sync.Mutex
	lines   []domain.CartLine
	store   kv.Repository
	logger  *log.Logger
	metrics *metrics.Metrics
}

// New rehydrates the cart from store. An unreadable or malformed blob is
// logged and yields an empty cart.
func New(ctx context.Context, store kv.Repository, logger *log.Logger, m *metrics.Metrics) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	s := &Service{store: store, logger: logger, metrics: m}
	s.lines = s.load(ctx)
	return s
}

// Lines returns a copy of the cart lines in insertion order.
func (s *Service) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.CartLine{}, s.lines...)
}

// Add merges qty of product in size into the cart. A line with the same
// (product id, size) has its quantity increased; otherwise a new line with a
// snapshot of the product is appended. Quantities, merged or not, must stay
// within 1..domain.MaxQuantity.
func (s *Service) Add(ctx context.Context, p domain.Product, size string, qty int) error {
	if !domain.ValidQuantity(qty) {
		return domain.ErrInvalidQuantity
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	key := domain.LineKey{ProductID: p.ID, Size: size}
	if i := s.indexOf(key); i >= 0 {
		if s.lines[i].Quantity > domain.MaxQuantity-qty {
			return domain.ErrInvalidQuantity
		}
		s.lines[i].Quantity += qty
	} else {
		s.lines = append(s.lines, domain.NewCartLine(p, size, qty))
	}
	s.persistLocked(ctx, "add")
	return nil
}

// Remove drops the line and reports whether it existed.
func (s *Service) Remove(ctx context.Context, productID int, size string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeLocked(ctx, domain.LineKey{ProductID: productID, Size: size})
}

// SetQuantity overwrites a line's quantity; qty <= 0 removes the line.
// It returns domain.ErrNotFound for a missing line and
// domain.ErrInvalidQuantity above domain.MaxQuantity.
func (s *Service) SetQuantity(ctx context.Context, productID int, size string, qty int) error {
	if qty > domain.MaxQuantity {
		return domain.ErrInvalidQuantity
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	key := domain.LineKey{ProductID: productID, Size: size}
	if qty <= 0 {
		if !s.removeLocked(ctx, key) {
			return domain.ErrNotFound
		}
		return nil
	}
	i := s.indexOf(key)
	if i < 0 {
		return domain.ErrNotFound
	}
	s.lines[i].Quantity = qty
	s.persistLocked(ctx, "set_quantity")
	return nil
}

// Clear empties the cart.
func (s *Service) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
	s.persistLocked(ctx, "clear")
}

// Drain returns the cart lines and empties the cart under one lock.
func (s *Service) Drain(ctx context.Context) []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := append([]domain.CartLine{}, s.lines...)
	if len(lines) > 0 {
		s.lines = nil
		s.persistLocked(ctx, "drain")
	}
	return lines
}

// TotalPrice is the sum of price * quantity over all lines.
func (s *Service) TotalPrice() domain.Money {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total domain.Money
	for _, l := range s.lines {
		total += l.Total()
	}
	return total
}

// TotalItems is the sum of quantities over all lines.
func (s *Service) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, l := range s.lines {
		n += l.Quantity
	}
	return n
}

func (s *Service) removeLocked(ctx context.Context, key domain.LineKey) bool {
	i := s.indexOf(key)
	if i < 0 {
		return false
	}
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	s.persistLocked(ctx, "remove")
	return true
}

func (s *Service) indexOf(key domain.LineKey) int {
	for i, l := range s.lines {
		if l.Key() == key {
			return i
		}
	}
	return -1
}

// persistLocked writes the whole cart. Storage failures are logged and
// counted; the in-memory cart stays authoritative.
func (s *Service) persistLocked(ctx context.Context, op string) {
	s.metrics.CartMutation(op)
	lines := s.lines
	if lines == nil {
		lines = []domain.CartLine{}
	}
	data, err := json.Marshal(lines)
	if err != nil {
		s.logger.Printf("cart svc: encode op=%s error=%v", op, err)
		s.metrics.StorageError(kv.KeyCart, "encode")
		return
	}
	if err := s.store.Set(ctx, kv.KeyCart, string(data)); err != nil {
		s.logger.Printf("cart svc: persist op=%s error=%v", op, err)
		s.metrics.StorageError(kv.KeyCart, "set")
	}
}

func (s *Service) load(ctx context.Context) []domain.CartLine {
	raw, ok, err := s.store.Get(ctx, kv.KeyCart)
	if err != nil {
		s.logger.Printf("cart svc: failed to load cart from storage error=%v", err)
		s.metrics.StorageError(kv.KeyCart, "get")
		return nil
	}
	if !ok {
		return nil
	}
	var decoded []domain.CartLine
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		s.logger.Printf("cart svc: failed to decode stored cart error=%v", err)
		s.metrics.StorageError(kv.KeyCart, "decode")
		return nil
	}
	lines := decoded[:0]
	for _, l := range decoded {
		if !domain.ValidQuantity(l.Quantity) || l.Price < 0 || l.Price > domain.MaxPrice {
			s.logger.Printf("cart svc: dropping stored line id=%d size=%s quantity=%d price=%s", l.ProductID, l.Size, l.Quantity, l.Price)
			continue
		}
		lines = append(lines, l)
	}
	s.logger.Printf("cart svc: rehydrated lines=%d", len(lines))
	return lines
}
