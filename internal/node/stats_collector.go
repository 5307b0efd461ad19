package node

import (
	"context"
	"errors"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const statCollectionIntervalDefault = 15 * time.Second

var ErrFailedToRegisterStats = errors.New("failed to register stats collector")

type statsCollector struct {
	node     *Node
	logger   *slog.Logger
	interval time.Duration

	mu                sync.Mutex
	connectedPeers    prometheus.Gauge
	pendingBroadcasts prometheus.Gauge
	pendingFunding    prometheus.Gauge
	tipHeight         prometheus.Gauge
	feeEstimates      *prometheus.GaugeVec

	ctx       context.Context
	cancelAll context.CancelFunc
	waitGroup *sync.WaitGroup
}

func newStatsCollector(n *Node, logger *slog.Logger, interval time.Duration) *statsCollector {
	return &statsCollector{
		node:     n,
		logger:   logger,
		interval: interval,

		connectedPeers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "lnbridge_connected_peers",
			Help: "Current number of open peer connections",
		}),
		pendingBroadcasts: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "lnbridge_pending_broadcasts",
			Help: "Current number of transactions waiting to be mined",
		}),
		pendingFunding: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "lnbridge_pending_funding_transactions",
			Help: "Current number of funding transactions waiting to be broadcast",
		}),
		tipHeight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "lnbridge_chain_tip_height",
			Help: "Height of the last block replayed into the engine",
		}),
		feeEstimates: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "lnbridge_fee_estimate_sat_per_1000_weight",
			Help: "Current fee estimate by confirmation target",
		}, []string{"target"}),

		waitGroup: &sync.WaitGroup{},
	}
}

func (s *statsCollector) Start() error {
	collectors := []prometheus.Collector{
		s.connectedPeers,
		s.pendingBroadcasts,
		s.pendingFunding,
		s.tipHeight,
		s.feeEstimates,
	}
	collectors = append(collectors, s.node.dispatcher.Metrics().Collectors()...)

	err := registerStats(collectors...)
	if err != nil {
		unregisterStats(collectors...)
		return err
	}

	s.ctx, s.cancelAll = context.WithCancel(context.Background())
	s.collect()

	ticker := time.NewTicker(s.interval)

	s.waitGroup.Add(1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error("Recovered from panic", "panic", r, slog.String("stacktrace", string(debug.Stack())))
			}
		}()
		defer func() {
			ticker.Stop()
			unregisterStats(collectors...)
			s.waitGroup.Done()
		}()

		for {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				s.collect()
			}
		}
	}()

	return nil
}

func (s *statsCollector) collect() {
	n := s.node
	snapshot := n.fees.Snapshot()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.connectedPeers.Set(float64(n.peers.CountConnections()))
	s.pendingBroadcasts.Set(float64(n.broadcaster.Pending().Len()))
	s.pendingFunding.Set(float64(n.dispatcher.PendingFunding().Len()))
	s.tipHeight.Set(float64(n.syncer.TipHeight()))
	s.feeEstimates.WithLabelValues("background").Set(float64(snapshot.Background))
	s.feeEstimates.WithLabelValues("normal").Set(float64(snapshot.Normal))
	s.feeEstimates.WithLabelValues("high_priority").Set(float64(snapshot.HighPriority))
}

func (s *statsCollector) Shutdown() {
	if s.cancelAll == nil {
		return
	}

	s.cancelAll()
	s.waitGroup.Wait()
}

func registerStats(cs ...prometheus.Collector) error {
	for _, c := range cs {
		err := prometheus.Register(c)
		if err != nil {
			return errors.Join(ErrFailedToRegisterStats, err)
		}
	}

	return nil
}

func unregisterStats(cs ...prometheus.Collector) {
	for _, c := range cs {
		_ = prometheus.Unregister(c)
	}
}
