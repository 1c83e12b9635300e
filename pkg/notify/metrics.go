package notify

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	subscribers prometheus.Gauge
	broadcasts  prometheus.Counter
	dropped     prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)

	return &metrics{
		subscribers: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "drinkmenu",
			Subsystem: "notify",
			Name:      "subscribers",
			Help:      "Number of connected update subscribers",
		}),
		broadcasts: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "drinkmenu",
			Subsystem: "notify",
			Name:      "broadcasts_total",
			Help:      "Update messages accepted for fan-out",
		}),
		dropped: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "drinkmenu",
			Subsystem: "notify",
			Name:      "dropped_total",
			Help:      "Update messages dropped because a queue was full",
		}),
	}
}
