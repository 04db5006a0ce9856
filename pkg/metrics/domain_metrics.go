package metrics

import "github.com/prometheus/client_golang/prometheus"

// StoreGauges reports row counts of the tournament store.
type StoreGauges struct {
	Tournaments prometheus.Gauge
	Players     prometheus.Gauge
}

func NewStoreGauges(serviceName string, reg prometheus.Registerer) *StoreGauges {
	labels := prometheus.Labels{"service": serviceName}
	g := &StoreGauges{
		Tournaments: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "tournaments_total",
			Help:        "Number of tournaments currently stored",
			ConstLabels: labels,
		}),
		Players: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "players_total",
			Help:        "Number of player records currently stored",
			ConstLabels: labels,
		}),
	}
	reg.MustRegister(g.Tournaments, g.Players)
	return g
}
