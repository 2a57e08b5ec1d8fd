package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg *prometheus.Registry

	QuotesTotal      prometheus.Counter
	RejectedToppings prometheus.Counter
	QuoteTotalPrice  prometheus.Histogram
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	quotes := prometheus.NewCounter(prometheus.CounterOpts{Name: "pizzeria_quotes_total"})
	rejected := prometheus.NewCounter(prometheus.CounterOpts{Name: "pizzeria_rejected_toppings_total"})
	totalPrice := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "pizzeria_quote_total_price_dollars",
		Buckets: []float64{5, 7.5, 10, 12.5, 15, 20, 30},
	})

	r.MustRegister(quotes, rejected, totalPrice)

	return &Registry{
		reg:              r,
		QuotesTotal:      quotes,
		RejectedToppings: rejected,
		QuoteTotalPrice:  totalPrice,
	}
}

func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
