package checkout

import (
	"context"
	"fmt"
	"io"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"weardistrict/internal/domain"
	"weardistrict/internal/metrics"

	"github.com/google/uuid"
)

const (
	// FreeShippingThreshold is the subtotal above which shipping is free.
	FreeShippingThreshold domain.Money = 5000
	// ShippingFee is charged when the subtotal does not exceed the threshold.
	ShippingFee domain.Money = 1000
)

// Cart is the part of the cart store checkout needs. Drain must read and
// empty the cart atomically.
type Cart interface {
	TotalPrice() domain.Money
	TotalItems() int
	Drain(ctx context.Context) []domain.CartLine
}

// Form mirrors the checkout form. Card fields are validated for presence and
// then dropped.
type Form struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	Zip        string `json:"zip"`
	CardName   string `json:"cardName"`
	CardNumber string `json:"cardNumber"`
	CardExpiry string `json:"cardExpiry"`
	CardCVC    string `json:"cardCVC"`
}

// ValidationError lists the form fields that failed validation, keyed by
// their JSON name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("invalid checkout form: %s", strings.Join(names, ", "))
}

// Validate reports every blank required field.
func (f Form) Validate() error {
	required := []struct {
		name, value, message string
	}{
		{"firstName", f.FirstName, "First name is required"},
		{"lastName", f.LastName, "Last name is required"},
		{"email", f.Email, "Email is required"},
		{"phone", f.Phone, "Phone is required"},
		{"address", f.Address, "Address is required"},
		{"city", f.City, "City is required"},
		{"state", f.State, "State is required"},
		{"zip", f.Zip, "ZIP code is required"},
		{"cardName", f.CardName, "Cardholder name is required"},
		{"cardNumber", f.CardNumber, "Card number is required"},
		{"cardExpiry", f.CardExpiry, "Expiry date is required"},
		{"cardCVC", f.CardCVC, "CVC is required"},
	}
	fields := map[string]string{}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			fields[r.name] = r.message
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Summarize computes shipping, 10% tax rounded to the cent, and the total.
func Summarize(subtotal domain.Money, items int) domain.Summary {
	shipping := ShippingFee
	if subtotal > FreeShippingThreshold {
		shipping = 0
	}
	tax := (subtotal + 5) / 10
	return domain.Summary{
		Items:    items,
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}

// SummarizeLines summarizes a fixed set of cart lines.
func SummarizeLines(lines []domain.CartLine) domain.Summary {
	var (
		subtotal domain.Money
		items    int
	)
	for _, l := range lines {
		subtotal += l.Total()
		items += l.Quantity
	}
	return Summarize(subtotal, items)
}

// Stats are the order counters shown on the admin dashboard.
type Stats struct {
	Orders  int          `json:"orders"`
	Revenue domain.Money `json:"revenue"`
}

// Service places mock orders against the cart.
type Service struct {
	mu      sync.Mutex
	cart    Cart
	stats   Stats
	now     func() time.Time
	logger  *log.Logger
	metrics *metrics.Metrics
}

func New(cart Cart, logger *log.Logger, m *metrics.Metrics) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{cart: cart, now: time.Now, logger: logger, metrics: m}
}

// Summary summarizes the current cart.
func (s *Service) Summary() domain.Summary {
	return Summarize(s.cart.TotalPrice(), s.cart.TotalItems())
}

// PlaceOrder validates the form, then drains the cart into an order. The
// order's lines and summary come from the same drained snapshot.
func (s *Service) PlaceOrder(ctx context.Context, form Form) (*domain.Order, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.cart.Drain(ctx)
	if len(lines) == 0 {
		return nil, domain.ErrEmptyCart
	}
	order := &domain.Order{
		ID:       uuid.NewString(),
		Email:    strings.TrimSpace(form.Email),
		Lines:    lines,
		Summary:  SummarizeLines(lines),
		PlacedAt: s.now().UTC(),
	}

	s.stats.Orders++
	s.stats.Revenue += order.Summary.Total
	s.metrics.OrderPlaced()
	s.logger.Printf("checkout svc: order placed id=%s items=%d total=%s", order.ID, order.Summary.Items, order.Summary.Total)
	return order, nil
}

// Stats returns the orders placed since the process started.
func (s *Service) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}
