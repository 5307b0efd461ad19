package fees

import (
	"context"
	"log/slog"

	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"

	"github.com/bitcoin-sv/lnbridge/internal/engine"
	"github.com/bitcoin-sv/lnbridge/internal/rpc_client"
)

// MinSatPer1000Weight is the floor of every estimate handed to the engine.
const MinSatPer1000Weight = 253

type SmartFeeEstimator interface {
	EstimateSmartFee(ctx context.Context, confTarget int, mode string) (rpc_client.SmartFeeResult, error)
}

type query struct {
	confTarget int
	mode       string
	value      *atomic.Uint64
}

// Estimator caches fee estimates of the chain daemon. The three values are
// updated independently.
type Estimator struct {
	client       SmartFeeEstimator
	logger       *slog.Logger
	background   atomic.Uint64
	normal       atomic.Uint64
	highPriority atomic.Uint64
}

func New(client SmartFeeEstimator, logger *slog.Logger) *Estimator {
	return &Estimator{
		client: client,
		logger: logger.With(slog.String("module", "fee-estimator")),
	}
}

// Update refreshes all estimates. An estimate the daemon cannot provide keeps its previous value.
func (e *Estimator) Update(ctx context.Context) error {
	queries := []query{
		{confTarget: 6, mode: "CONSERVATIVE", value: &e.highPriority},
		{confTarget: 18, mode: "ECONOMICAL", value: &e.normal},
		{confTarget: 144, mode: "ECONOMICAL", value: &e.background},
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, q := range queries {
		g.Go(func() error {
			res, err := e.client.EstimateSmartFee(gctx, q.confTarget, q.mode)
			if err != nil {
				return err
			}

			if res.FeeRate == nil {
				e.logger.Debug("No fee rate available", slog.Int("target", q.confTarget), slog.Any("errors", res.Errors))
				return nil
			}

			q.value.Store(satPer1000Weight(*res.FeeRate))
			return nil
		})
	}

	return g.Wait()
}

// satPer1000Weight converts a rate in BTC per kilobyte.
func satPer1000Weight(btcPerKB float64) uint64 {
	return uint64(btcPerKB*100_000_000/250) + 3
}

func (e *Estimator) EstimateSatPer1000Weight(target engine.ConfirmationTarget) uint64 {
	var value uint64
	switch target {
	case engine.Background:
		value = e.background.Load()
	case engine.Normal:
		value = e.normal.Load()
	case engine.HighPriority:
		value = e.highPriority.Load()
	}

	return max(value, MinSatPer1000Weight)
}

type Snapshot struct {
	Background   uint64
	Normal       uint64
	HighPriority uint64
}

func (e *Estimator) Snapshot() Snapshot {
	return Snapshot{
		Background:   e.EstimateSatPer1000Weight(engine.Background),
		Normal:       e.EstimateSatPer1000Weight(engine.Normal),
		HighPriority: e.EstimateSatPer1000Weight(engine.HighPriority),
	}
}
