package basket

import "github.com/prometheus/client_golang/prometheus"

const metricsNamespace = "bootique"

type Metrics struct {
	ItemsAdded      prometheus.Counter
	ProductNotFound prometheus.Counter
}

// NewMetrics registers the basket collectors on reg, including a gauge that
// reads the live basket count from store.
func NewMetrics(reg prometheus.Registerer, store *Store) *Metrics {
	m := &Metrics{
		ItemsAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "basket",
			Name:      "items_added_total",
			Help:      "Order items appended to baskets",
		}),
		ProductNotFound: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "basket",
			Name:      "product_not_found_total",
			Help:      "Add-item requests rejected for an unknown product",
		}),
	}

	baskets := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "baskets",
		Help:      "Baskets held in memory",
	}, func() float64 { return float64(store.Len()) })

	reg.MustRegister(m.ItemsAdded, m.ProductNotFound, baskets)
	return m
}

func (m *Metrics) itemAdded() {
	if m != nil {
		m.ItemsAdded.Inc()
	}
}

func (m *Metrics) productNotFound() {
	if m != nil {
		m.ProductNotFound.Inc()
	}
}
