package chain_sync

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/btcsuite/btcd/wire"
	"github.com/patrickmn/go-cache"
	"go.uber.org/atomic"

	"github.com/bitcoin-sv/lnbridge/internal/engine"
	"github.com/bitcoin-sv/lnbridge/internal/rpc_client"
)

const (
	DefaultPollInterval   = time.Second
	DefaultHeaderCacheTTL = 10 * time.Minute
)

var ErrBlockFetch = errors.New("failed to fetch block")

type ChainClient interface {
	GetBestBlockHash(ctx context.Context) (string, error)
	GetBlockHeader(ctx context.Context, hash string) (rpc_client.BlockHeader, error)
	GetBlock(ctx context.Context, hash string) (*wire.MsgBlock, error)
}

type FeeUpdater interface {
	Update(ctx context.Context) error
}

type Rebroadcaster interface {
	Rebroadcast(ctx context.Context)
}

type Notifier interface {
	Signal()
}

// Syncer polls the chain daemon and replays tip changes into the block listener.
type Syncer struct {
	client      ChainClient
	listener    engine.BlockListener
	fees        FeeUpdater
	broadcaster Rebroadcaster
	notifier    Notifier
	logger      *slog.Logger

	pollInterval   time.Duration
	headerCacheTTL time.Duration
	headerCache    *cache.Cache

	mu        sync.Mutex
	bestHash  string
	tipHeight atomic.Uint32

	ctx       context.Context
	cancelAll context.CancelFunc
	waitGroup *sync.WaitGroup
}

func WithPollInterval(d time.Duration) func(*Syncer) {
	return func(s *Syncer) {
		s.pollInterval = d
	}
}

func WithHeaderCacheTTL(d time.Duration) func(*Syncer) {
	return func(s *Syncer) {
		s.headerCacheTTL = d
	}
}

func WithFeeUpdater(fees FeeUpdater) func(*Syncer) {
	return func(s *Syncer) {
		s.fees = fees
	}
}

func WithRebroadcaster(broadcaster Rebroadcaster) func(*Syncer) {
	return func(s *Syncer) {
		s.broadcaster = broadcaster
	}
}

func WithNotifier(notifier Notifier) func(*Syncer) {
	return func(s *Syncer) {
		s.notifier = notifier
	}
}

func New(client ChainClient, listener engine.BlockListener, logger *slog.Logger, opts ...func(*Syncer)) *Syncer {
	s := &Syncer{
		client:         client,
		listener:       listener,
		logger:         logger.With(slog.String("module", "chain-sync")),
		pollInterval:   DefaultPollInterval,
		headerCacheTTL: DefaultHeaderCacheTTL,
		waitGroup:      &sync.WaitGroup{},
	}

	for _, opt := range opts {
		opt(s)
	}

	s.headerCache = cache.New(s.headerCacheTTL, 2*s.headerCacheTTL)
	s.ctx, s.cancelAll = context.WithCancel(context.Background())

	return s
}

// Start refreshes fees once and then polls the best block hash on every interval.
func (s *Syncer) Start() {
	s.waitGroup.Add(1)
	go func() {
		defer s.waitGroup.Done()

		if s.fees != nil {
			err := s.fees.Update(s.ctx)
			if err != nil {
				s.logger.Error("Failed to update fee estimates", slog.String("err", err.Error()))
			}
		}

		ticker := time.NewTicker(s.pollInterval)
		defer ticker.Stop()

		for {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				err := s.Tick(s.ctx)
				if err != nil && !errors.Is(err, context.Canceled) {
					s.logger.Error("Chain sync tick failed", slog.String("err", err.Error()))
				}
			}
		}
	}()
}

func (s *Syncer) BestBlockHash() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.bestHash
}

func (s *Syncer) TipHeight() uint32 {
	return s.tipHeight.Load()
}

// Tick processes one poll. The observed tip is only recorded once all fork steps
// have been applied, so a failed tick is retried from the last applied tip.
func (s *Syncer) Tick(ctx context.Context) error {
	newHash, err := s.client.GetBestBlockHash(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	oldHash := s.bestHash
	if newHash == oldHash {
		return nil
	}

	if oldHash == "" {
		s.bestHash = newHash
		s.logger.Info("Initial chain tip", slog.String("hash", newHash))
		if tip, err := s.header(ctx, newHash); err == nil {
			s.tipHeight.Store(tip.Height)
		}

		return nil
	}

	steps, err := s.FindFork(ctx, oldHash, newHash)
	if err != nil {
		return err
	}

	err = s.replay(ctx, steps)
	if err != nil {
		return err
	}

	s.bestHash = newHash

	if s.fees != nil {
		err = s.fees.Update(ctx)
		if err != nil {
			s.logger.Error("Failed to update fee estimates", slog.String("err", err.Error()))
		}
	}

	if s.broadcaster != nil {
		s.broadcaster.Rebroadcast(ctx)
	}

	if s.notifier != nil {
		s.notifier.Signal()
	}

	return nil
}

func (s *Syncer) replay(ctx context.Context, steps []ForkStep) error {
	ordered := orderForReplay(steps)

	blocks := make(map[string]*wire.MsgBlock)
	for _, step := range ordered {
		if step.Kind != ConnectBlock {
			continue
		}

		block, err := s.client.GetBlock(ctx, step.Block.Hash)
		if err != nil {
			return errors.Join(ErrBlockFetch, err)
		}
		blocks[step.Block.Hash] = block
	}

	for _, step := range ordered {
		switch step.Kind {
		case DisconnectBlock:
			s.logger.Info("Disconnecting block", slog.String("hash", step.Block.Hash), slog.Uint64("height", uint64(step.Block.Height)))
			s.listener.BlockDisconnected(step.Block.Header)
			s.tipHeight.Store(step.Block.Height - 1)
		case ConnectBlock:
			s.logger.Info("Connecting block", slog.String("hash", step.Block.Hash), slog.Uint64("height", uint64(step.Block.Height)))
			s.listener.BlockConnected(blocks[step.Block.Hash], step.Block.Height)
			s.tipHeight.Store(step.Block.Height)
		}
	}

	return nil
}

func (s *Syncer) Shutdown() {
	s.cancelAll()
	s.waitGroup.Wait()
	s.headerCache.Flush()
}
