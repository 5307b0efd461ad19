package dispatcher

import "github.com/prometheus/client_golang/prometheus"

type Metrics struct {
	Passes         prometheus.Counter
	Events         *prometheus.CounterVec
	SnapshotWrites prometheus.Counter
}

func newMetrics() *Metrics {
	return &Metrics{
		Passes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lnbridge_dispatcher_passes_total",
			Help: "Number of event dispatch passes",
		}),
		Events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lnbridge_dispatcher_events_total",
			Help: "Number of dispatched engine events by kind",
		}, []string{"kind"}),
		SnapshotWrites: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lnbridge_dispatcher_snapshot_writes_total",
			Help: "Number of channel manager snapshots written",
		}),
	}
}

func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.Passes, m.Events, m.SnapshotWrites}
}
