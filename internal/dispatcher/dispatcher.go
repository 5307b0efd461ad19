package dispatcher

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"runtime/debug"
	"sync"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/wire"

	"github.com/bitcoin-sv/lnbridge/internal/broadcaster"
	"github.com/bitcoin-sv/lnbridge/internal/engine"
	"github.com/bitcoin-sv/lnbridge/internal/rpc_client"
	"github.com/bitcoin-sv/lnbridge/internal/spawner"
)

const DefaultNotifyCapacity = 2

var (
	ErrSnapshotSerialize = errors.New("failed to serialize channel manager")
	ErrSnapshotWrite     = errors.New("failed to write channel manager snapshot")
)

type FundingClient interface {
	CreateRawTransaction(ctx context.Context, address string, amount btcutil.Amount) (string, error)
	FundRawTransaction(ctx context.Context, txHex string) (rpc_client.FundResult, error)
	SignRawTransactionWithWallet(ctx context.Context, txHex string) (rpc_client.SignResult, error)
}

type Broadcaster interface {
	BroadcastTransaction(tx *wire.MsgTx)
}

type PreimageStore interface {
	Lookup(hash engine.PaymentHash) (engine.PaymentPreimage, bool, error)
}

type SnapshotWriter interface {
	WriteManagerData(data []byte) error
}

// Dispatcher drains engine events whenever it is signalled and persists the
// channel manager after every pass.
type Dispatcher struct {
	peers       engine.PeerHandler
	manager     engine.ChannelManager
	monitor     engine.EventsProvider
	client      FundingClient
	broadcaster Broadcaster
	preimages   PreimageStore
	store       SnapshotWriter
	spawner     spawner.Spawner
	logger      *slog.Logger

	chainParams    *chaincfg.Params
	notifyCapacity int
	notifyCh       chan struct{}
	fatal          func(error)
	rpcTimeout     time.Duration

	funding      *broadcaster.PendingSet
	lastSnapshot []byte
	metrics      *Metrics

	ctx       context.Context
	cancelAll context.CancelFunc
	waitGroup *sync.WaitGroup
}

type Option func(*Dispatcher)

func WithChainParams(params *chaincfg.Params) Option {
	return func(d *Dispatcher) {
		d.chainParams = params
	}
}

func WithNotifyCapacity(capacity int) Option {
	return func(d *Dispatcher) {
		if capacity > 0 {
			d.notifyCapacity = capacity
		}
	}
}

// WithFatalHandler sets the function called when the manager snapshot cannot be persisted.
func WithFatalHandler(fatal func(error)) Option {
	return func(d *Dispatcher) {
		d.fatal = fatal
	}
}

func WithRPCTimeout(d time.Duration) Option {
	return func(ds *Dispatcher) {
		ds.rpcTimeout = d
	}
}

type Collaborators struct {
	Peers       engine.PeerHandler
	Manager     engine.ChannelManager
	Monitor     engine.EventsProvider
	Client      FundingClient
	Broadcaster Broadcaster
	Preimages   PreimageStore
	Store       SnapshotWriter
	Spawner     spawner.Spawner
}

func New(c Collaborators, logger *slog.Logger, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		peers:       c.Peers,
		manager:     c.Manager,
		monitor:     c.Monitor,
		client:      c.Client,
		broadcaster: c.Broadcaster,
		preimages:   c.Preimages,
		store:       c.Store,
		spawner:     c.Spawner,
		logger:      logger.With(slog.String("module", "dispatcher")),

		chainParams:    &chaincfg.TestNet3Params,
		notifyCapacity: DefaultNotifyCapacity,
		rpcTimeout:     30 * time.Second,

		funding:   broadcaster.NewPendingSet(),
		metrics:   newMetrics(),
		waitGroup: &sync.WaitGroup{},
	}

	d.fatal = func(err error) {
		d.logger.Error("Unrecoverable storage failure", slog.String("err", err.Error()))
		os.Exit(1)
	}

	for _, opt := range opts {
		opt(d)
	}

	d.notifyCh = make(chan struct{}, d.notifyCapacity)
	d.ctx, d.cancelAll = context.WithCancel(context.Background())

	return d
}

// Signal requests a pass. Signals arriving while the channel is full are dropped,
// the pending pass will observe their effects.
func (d *Dispatcher) Signal() {
	select {
	case d.notifyCh <- struct{}{}:
	default:
	}
}

func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}

// PendingFunding returns the funding transactions waiting for FundingBroadcastSafe.
func (d *Dispatcher) PendingFunding() *broadcaster.PendingSet {
	return d.funding
}

func (d *Dispatcher) Start() {
	d.waitGroup.Add(1)
	go func() {
		defer d.waitGroup.Done()

		for {
			select {
			case <-d.ctx.Done():
				return
			case <-d.notifyCh:
				d.Pass(d.ctx)
			}
		}
	}()
}

// Pass processes peer events, dispatches all pending engine events in order and
// persists the manager snapshot if it changed.
func (d *Dispatcher) Pass(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("Recovered from panic", "panic", r, slog.String("stacktrace", string(debug.Stack())))
		}
	}()

	d.metrics.Passes.Inc()

	d.peers.ProcessEvents()

	events := d.manager.GetAndClearPendingEvents()
	events = append(events, d.monitor.GetAndClearPendingEvents()...)

	for _, event := range events {
		d.metrics.Events.WithLabelValues(event.Kind()).Inc()
		d.handle(ctx, event)
	}

	err := d.persistSnapshot()
	if err != nil {
		d.fatal(err)
	}
}

func (d *Dispatcher) handle(ctx context.Context, event engine.Event) {
	switch e := event.(type) {
	case engine.FundingGenerationReady:
		err := d.handleFundingGenerationReady(ctx, e)
		if err != nil {
			d.logger.Error("Failed to generate funding transaction",
				slog.String("channel", e.TemporaryChannelID.String()),
				slog.String("err", err.Error()),
			)
		}
	case engine.FundingBroadcastSafe:
		d.handleFundingBroadcastSafe(e)
	case engine.PaymentReceived:
		d.handlePaymentReceived(e)
	case engine.PendingHTLCsForwardable:
		d.handlePendingHTLCsForwardable(e)
	case engine.PaymentSent:
		d.logger.Info("Payment sent", slog.String("preimage", e.PaymentPreimage.String()))
	case engine.PaymentFailed:
		reason := "route"
		if e.RejectedByDest {
			reason = "destination"
		}
		d.logger.Warn("Payment failed", slog.String("hash", e.PaymentHash.String()), slog.String("rejected_by", reason))
	case engine.SpendableOutputs:
		d.handleSpendableOutputs(e)
	default:
		d.logger.Warn("Unknown event", slog.String("kind", event.Kind()))
	}
}

func (d *Dispatcher) handleFundingBroadcastSafe(e engine.FundingBroadcastSafe) {
	raw, found := d.funding.Remove(e.FundingTxo.Txid)
	if !found {
		d.logger.Error("Funding transaction not found", slog.String("outpoint", e.FundingTxo.String()))
		return
	}

	tx := &wire.MsgTx{}
	err := tx.Deserialize(bytes.NewReader(raw))
	if err != nil {
		d.logger.Error("Failed to decode funding transaction", slog.String("outpoint", e.FundingTxo.String()), slog.String("err", err.Error()))
		return
	}

	d.broadcaster.BroadcastTransaction(tx)
	d.logger.Info("Broadcast funding transaction", slog.String("hash", tx.TxHash().String()))
}

func (d *Dispatcher) handlePaymentReceived(e engine.PaymentReceived) {
	defer d.Signal()

	preimage, found, err := d.preimages.Lookup(e.PaymentHash)
	if err != nil {
		d.logger.Error("Failed to look up preimage", slog.String("hash", e.PaymentHash.String()), slog.String("err", err.Error()))
	}

	if !found {
		d.manager.FailHTLCBackwards(e.PaymentHash)
		d.logger.Warn("Received payment for unknown preimage", slog.String("hash", e.PaymentHash.String()))
		return
	}

	if !d.manager.ClaimFunds(preimage) {
		d.logger.Warn("Failed to claim payment", slog.String("hash", e.PaymentHash.String()))
		return
	}

	d.logger.Info("Claimed payment", slog.String("hash", e.PaymentHash.String()), slog.Uint64("amount_msat", e.AmountMsat))
}

func (d *Dispatcher) handlePendingHTLCsForwardable(e engine.PendingHTLCsForwardable) {
	err := d.spawner.Spawn(func() {
		timer := time.NewTimer(e.TimeForwardable)
		defer timer.Stop()

		select {
		case <-d.ctx.Done():
			return
		case <-timer.C:
		}

		d.manager.ProcessPendingHTLCForwards()
		d.Signal()
	})
	if err != nil {
		d.logger.Error("Failed to schedule HTLC forwarding", slog.String("err", err.Error()))
	}
}

func (d *Dispatcher) handleSpendableOutputs(e engine.SpendableOutputs) {
	for _, output := range e.Outputs {
		switch output.Kind {
		case engine.StaticOutput:
			d.logger.Info("Got on-chain output the wallet can claim", slog.String("outpoint", output.OutPoint.String()), slog.Uint64("value", output.Value))
		default:
			// TODO: sweep dynamic outputs back into the daemon wallet
			d.logger.Warn("Got dynamic on-chain output that needs claiming", slog.String("outpoint", output.OutPoint.String()), slog.Uint64("value", output.Value))
		}
	}
}

func (d *Dispatcher) persistSnapshot() error {
	buf := &bytes.Buffer{}
	err := d.manager.Write(buf)
	if err != nil {
		return errors.Join(ErrSnapshotSerialize, err)
	}

	if d.lastSnapshot != nil && bytes.Equal(buf.Bytes(), d.lastSnapshot) {
		return nil
	}

	err = d.store.WriteManagerData(buf.Bytes())
	if err != nil {
		return errors.Join(ErrSnapshotWrite, err)
	}

	d.lastSnapshot = buf.Bytes()
	d.metrics.SnapshotWrites.Inc()

	return nil
}

func (d *Dispatcher) Shutdown() {
	d.cancelAll()
	d.waitGroup.Wait()
}
