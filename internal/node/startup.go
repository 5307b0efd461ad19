package node

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/cenkalti/backoff/v4"

	"github.com/bitcoin-sv/lnbridge/config"
	"github.com/bitcoin-sv/lnbridge/internal/channel_store"
	"github.com/bitcoin-sv/lnbridge/internal/engine"
	"github.com/bitcoin-sv/lnbridge/internal/rpc_client"
)

const minVerificationProgress = 0.99

var (
	ErrDaemonUnreachable  = errors.New("chain daemon is unreachable")
	ErrMainnetRefused     = errors.New("refusing to run on mainnet")
	ErrDaemonNotSynced    = errors.New("chain daemon is not synced")
	ErrImportClaimKey     = errors.New("failed to import claim key")
	ErrLoadChannels       = errors.New("failed to load channel records")
	ErrMissingManagerData = errors.New("channel records exist but the channel manager snapshot is missing")
	ErrRestore            = errors.New("failed to restore engine")
)

func (n *Node) daemonBackoff(ctx context.Context) backoff.BackOff {
	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = 500 * time.Millisecond
	expBackoff.MaxInterval = 10 * time.Second

	return backoff.WithContext(backoff.WithMaxRetries(expBackoff, n.cfg.Bitcoind.StartupRetries), ctx)
}

func (n *Node) waitForDaemon(ctx context.Context) (rpc_client.BlockchainInfo, error) {
	var info rpc_client.BlockchainInfo

	operation := func() error {
		var err error
		info, err = n.client.GetBlockchainInfo(ctx)
		return err
	}

	notify := func(err error, next time.Duration) {
		n.logger.Warn("Chain daemon not available, retrying", slog.Duration("next", next), slog.String("err", err.Error()))
	}

	err := backoff.RetryNotify(operation, n.daemonBackoff(ctx), notify)
	if err != nil {
		return rpc_client.BlockchainInfo{}, errors.Join(ErrDaemonUnreachable, err)
	}

	return info, nil
}

func (n *Node) checkNetwork(info rpc_client.BlockchainInfo) (*chaincfg.Params, error) {
	params, err := config.GetChainParams(info.Chain)
	if err != nil {
		return nil, err
	}

	if params.Net == chaincfg.MainNetParams.Net && !n.cfg.Bitcoind.AllowMainnet {
		return nil, ErrMainnetRefused
	}

	if info.VerificationProgress <= minVerificationProgress {
		return nil, fmt.Errorf("%w: verification progress %.4f", ErrDaemonNotSynced, info.VerificationProgress)
	}

	n.logger.Info("Connected to chain daemon",
		slog.String("chain", info.Chain),
		slog.Uint64("blocks", uint64(info.Blocks)),
		slog.String("best", info.BestBlockHash),
	)

	return params, nil
}

// importClaimKeys makes the daemon wallet watch the outputs the engine sweeps closed channels to.
func (n *Node) importClaimKeys(ctx context.Context) error {
	for _, key := range n.engine.ClaimKeys() {
		err := n.client.ImportPrivKey(ctx, key.WIF, key.Label, false)
		if err != nil {
			return errors.Join(ErrImportClaimKey, fmt.Errorf("label %s: %w", key.Label, err))
		}
	}

	return nil
}

func (n *Node) restore() error {
	entries, err := n.store.LoadAll()
	if err != nil {
		return errors.Join(ErrLoadChannels, err)
	}

	monitors := make([]engine.MonitorState, 0, len(entries))
	for _, entry := range entries {
		monitors = append(monitors, engine.MonitorState{
			FundingTxo:    entry.OutPoint,
			LastBlockHash: entry.Record.LastBlockHash,
			Data:          entry.Record.Monitor,
		})
	}

	managerData, err := n.store.ReadManagerData()
	switch {
	case errors.Is(err, channel_store.ErrNotFound):
		if len(monitors) > 0 {
			return ErrMissingManagerData
		}
		managerData = nil
	case err != nil:
		return errors.Join(ErrRestore, err)
	}

	err = n.engine.Restore(engine.RestoreArgs{
		ManagerData:  managerData,
		Monitors:     monitors,
		FeeEstimator: n.fees,
		Broadcaster:  n.broadcaster,
		Persister:    n.store,
	})
	if err != nil {
		return errors.Join(ErrRestore, err)
	}

	n.logger.Info("Restored engine", slog.Int("channels", len(monitors)), slog.Bool("snapshot", managerData != nil))

	return nil
}
