package node

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/btcsuite/btcd/chaincfg"

	"github.com/bitcoin-sv/lnbridge/config"
	"github.com/bitcoin-sv/lnbridge/internal/broadcaster"
	"github.com/bitcoin-sv/lnbridge/internal/chain_sync"
	"github.com/bitcoin-sv/lnbridge/internal/channel_store"
	"github.com/bitcoin-sv/lnbridge/internal/dispatcher"
	"github.com/bitcoin-sv/lnbridge/internal/engine"
	"github.com/bitcoin-sv/lnbridge/internal/fees"
	"github.com/bitcoin-sv/lnbridge/internal/invoice"
	"github.com/bitcoin-sv/lnbridge/internal/p2p"
	"github.com/bitcoin-sv/lnbridge/internal/rpc_client"
	"github.com/bitcoin-sv/lnbridge/internal/spawner"
)

const channelsDir = "channels"

var (
	ErrNodeSetup   = errors.New("failed to set up node")
	ErrNotStarted  = errors.New("node is not started")
	ErrStartFailed = errors.New("failed to start node")
)

// ChainRPC is the part of the chain daemon API the node and its components use.
type ChainRPC interface {
	chain_sync.ChainClient
	fees.SmartFeeEstimator
	broadcaster.TxSender
	dispatcher.FundingClient
	GetBlockchainInfo(ctx context.Context) (rpc_client.BlockchainInfo, error)
	ImportPrivKey(ctx context.Context, wif string, label string, rescan bool) error
}

// Node wires the chain client, storage, peer layer and dispatcher around an engine.
type Node struct {
	cfg    *config.LnConfig
	client ChainRPC
	engine engine.Engine
	logger *slog.Logger

	spawner     spawner.Spawner
	fees        *fees.Estimator
	store       *channel_store.Store
	invoices    *invoice.Store
	broadcaster *broadcaster.Broadcaster

	dispatcher  *dispatcher.Dispatcher
	peers       *p2p.Manager
	syncer      *chain_sync.Syncer
	stats       *statsCollector
	chainParams *chaincfg.Params

	fatal         func(error)
	peerDialer    p2p.Dialer
	statsInterval time.Duration

	mu      sync.RWMutex
	started bool
}

type Option func(*Node)

// WithFatalHandler is called with errors that leave channel state unsafe to continue with.
func WithFatalHandler(fatal func(error)) Option {
	return func(n *Node) {
		n.fatal = fatal
	}
}

func WithPeerDialer(dialer p2p.Dialer) Option {
	return func(n *Node) {
		n.peerDialer = dialer
	}
}

func WithStatsInterval(d time.Duration) Option {
	return func(n *Node) {
		n.statsInterval = d
	}
}

func New(cfg *config.LnConfig, client ChainRPC, eng engine.Engine, logger *slog.Logger, opts ...Option) (*Node, error) {
	n := &Node{
		cfg:    cfg,
		client: client,
		engine: eng,
		logger: logger.With(slog.String("module", "node")),

		statsInterval: statCollectionIntervalDefault,
	}

	for _, opt := range opts {
		opt(n)
	}

	var err error
	n.spawner, err = spawner.New(spawner.Mode(cfg.Spawner.Mode), cfg.Spawner.Workers, cfg.Spawner.QueueSize, logger)
	if err != nil {
		return nil, errors.Join(ErrNodeSetup, err)
	}

	n.store, err = channel_store.New(filepath.Join(cfg.Lightning.DataDir, channelsDir), logger)
	if err != nil {
		n.spawner.Shutdown()
		return nil, errors.Join(ErrNodeSetup, err)
	}

	n.invoices, err = invoice.Open(filepath.Join(cfg.Lightning.DataDir, invoice.DefaultFileName), logger)
	if err != nil {
		n.spawner.Shutdown()
		return nil, errors.Join(ErrNodeSetup, err)
	}

	n.fees = fees.New(client, logger)
	n.broadcaster = broadcaster.New(client, n.spawner, logger)
	n.stats = newStatsCollector(n, n.logger, n.statsInterval)

	return n, nil
}

// Start brings the node up. It returns once the chain daemon is reachable, the
// engine is restored and all background loops run.
func (n *Node) Start(ctx context.Context) error {
	info, err := n.waitForDaemon(ctx)
	if err != nil {
		return errors.Join(ErrStartFailed, err)
	}

	n.chainParams, err = n.checkNetwork(info)
	if err != nil {
		return errors.Join(ErrStartFailed, err)
	}

	err = n.fees.Update(ctx)
	if err != nil {
		n.logger.Warn("Failed to update fee estimates", slog.String("err", err.Error()))
	}

	err = n.importClaimKeys(ctx)
	if err != nil {
		return errors.Join(ErrStartFailed, err)
	}

	err = n.restore()
	if err != nil {
		return errors.Join(ErrStartFailed, err)
	}

	dispatcherOpts := []dispatcher.Option{
		dispatcher.WithChainParams(n.chainParams),
		dispatcher.WithNotifyCapacity(n.cfg.Dispatcher.NotifyCapacity),
		dispatcher.WithRPCTimeout(n.cfg.Bitcoind.RPCTimeout),
	}
	if n.fatal != nil {
		dispatcherOpts = append(dispatcherOpts, dispatcher.WithFatalHandler(n.fatal))
	}

	n.dispatcher = dispatcher.New(dispatcher.Collaborators{
		Peers:       n.engine.PeerHandler(),
		Manager:     n.engine.ChannelManager(),
		Monitor:     n.engine.ChannelMonitor(),
		Client:      n.client,
		Broadcaster: n.broadcaster,
		Preimages:   n.invoices,
		Store:       n.store,
		Spawner:     n.spawner,
	}, n.logger, dispatcherOpts...)

	peerOpts := []p2p.ManagerOption{
		p2p.WithConnectTimeout(n.cfg.Peer.ConnectTimeout),
		p2p.WithWriteQueueSize(n.cfg.Peer.WriteQueueSize),
		p2p.WithReadBufferSize(n.cfg.Peer.ReadBufferSize),
	}
	if n.peerDialer != nil {
		peerOpts = append(peerOpts, p2p.WithDialer(n.peerDialer))
	}

	n.peers = p2p.NewManager(n.engine.PeerHandler(), n.dispatcher, n.spawner, n.logger, peerOpts...)

	n.syncer = chain_sync.New(n.client, n.engine.BlockListener(), n.logger,
		chain_sync.WithPollInterval(n.cfg.ChainSync.PollInterval),
		chain_sync.WithHeaderCacheTTL(n.cfg.ChainSync.HeaderCacheTTL),
		chain_sync.WithFeeUpdater(n.fees),
		chain_sync.WithRebroadcaster(n.broadcaster),
		chain_sync.WithNotifier(n.dispatcher),
	)

	n.dispatcher.Start()
	n.syncer.Start()

	if n.cfg.Lightning.Port > 0 {
		err = n.peers.Listen(n.cfg.Lightning.ListenAddr())
		if err != nil {
			n.shutdownComponents()
			return errors.Join(ErrStartFailed, err)
		}
	}

	n.mu.Lock()
	n.started = true
	n.mu.Unlock()

	n.connectBootstrapPeers(ctx)

	err = n.stats.Start()
	if err != nil {
		n.logger.Warn("Failed to start stats collector", slog.String("err", err.Error()))
	}

	n.dispatcher.Signal()
	n.logger.Info("Node started", slog.String("network", n.chainParams.Name))

	return nil
}

func (n *Node) connectBootstrapPeers(ctx context.Context) {
	for _, address := range n.cfg.Peer.Bootstrap {
		err := n.ConnectPeer(ctx, address)
		if err != nil {
			n.logger.Warn("Failed to connect bootstrap peer", slog.String("address", address), slog.String("err", err.Error()))
		}
	}
}

func (n *Node) isStarted() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.started
}

func (n *Node) shutdownComponents() {
	if n.peers != nil {
		n.peers.Shutdown()
	}
	if n.syncer != nil {
		n.syncer.Shutdown()
	}
	if n.dispatcher != nil {
		n.dispatcher.Shutdown()
	}
}

// Shutdown stops all loops and persists the final manager snapshot.
func (n *Node) Shutdown() {
	n.logger.Info("Shutting down node")

	n.stats.Shutdown()
	n.shutdownComponents()

	if n.dispatcher != nil && n.isStarted() {
		n.dispatcher.Pass(context.Background())
	}

	n.spawner.Shutdown()

	err := n.invoices.Close()
	if err != nil {
		n.logger.Error("Failed to close invoice store", slog.String("err", err.Error()))
	}

	n.mu.Lock()
	n.started = false
	n.mu.Unlock()
}
