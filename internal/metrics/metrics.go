package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// Metrics records store activity. A nil *Metrics is valid and records nothing.
type Metrics struct {
	cartMutations    *prometheus.CounterVec
	catalogMutations *prometheus.CounterVec
	authAttempts     *prometheus.CounterVec
	storageErrors    *prometheus.CounterVec
	orders           prometheus.Counter
}

// New registers the storefront collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		cartMutations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cart_mutations_total",
			Help:      "Cart mutations by operation.",
		}, []string{"op"}),
		catalogMutations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_mutations_total",
			Help:      "Catalog mutations by operation.",
		}, []string{"op"}),
		authAttempts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_attempts_total",
			Help:      "Auth operations by operation and outcome.",
		}, []string{"op", "outcome"}),
		storageErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "storage_errors_total",
			Help:      "Durable storage failures by key and operation.",
		}, []string{"key", "op"}),
		orders: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_total",
			Help:      "Orders placed through checkout.",
		}),
	}
}

func (m *Metrics) CartMutation(op string) {
	if m == nil {
		return
	}
	m.cartMutations.WithLabelValues(op).Inc()
}

func (m *Metrics) CatalogMutation(op string) {
	if m == nil {
		return
	}
	m.catalogMutations.WithLabelValues(op).Inc()
}

// AuthAttempt records op (login, register, ...) with outcome "success" or a failure reason.
func (m *Metrics) AuthAttempt(op, outcome string) {
	if m == nil {
		return
	}
	m.authAttempts.WithLabelValues(op, outcome).Inc()
}

func (m *Metrics) StorageError(key, op string) {
	if m == nil {
		return
	}
	m.storageErrors.WithLabelValues(key, op).Inc()
}

func (m *Metrics) OrderPlaced() {
	if m == nil {
		return
	}
	m.orders.Inc()
}
