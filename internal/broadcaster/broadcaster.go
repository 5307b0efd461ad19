package broadcaster

import (
	"bytes"
	"context"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"golang.org/x/sync/errgroup"

	"github.com/bitcoin-sv/lnbridge/internal/rpc_client"
	"github.com/bitcoin-sv/lnbridge/internal/spawner"
)

const (
	sendTimeout          = 30 * time.Second
	maxConcurrentResends = 8
)

type TxSender interface {
	SendRawTransaction(ctx context.Context, txHex string, mayFail bool) (string, error)
}

// Broadcaster publishes transactions and keeps re-sending them until the daemon
// reports them as mined.
type Broadcaster struct {
	client  TxSender
	spawner spawner.Spawner
	pending *PendingSet
	logger  *slog.Logger
}

func New(client TxSender, sp spawner.Spawner, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		client:  client,
		spawner: sp,
		pending: NewPendingSet(),
		logger:  logger.With(slog.String("module", "broadcaster")),
	}
}

func (b *Broadcaster) Pending() *PendingSet {
	return b.pending
}

func (b *Broadcaster) BroadcastTransaction(tx *wire.MsgTx) {
	buf := &bytes.Buffer{}
	err := tx.Serialize(buf)
	if err != nil {
		b.logger.Error("Failed to serialize transaction", slog.String("hash", tx.TxHash().String()), slog.String("err", err.Error()))
		return
	}

	txid := tx.TxHash()
	b.pending.Insert(txid, buf.Bytes())

	err = b.spawner.Spawn(func() {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()

		b.send(ctx, txid, buf.Bytes())
	})
	if err != nil {
		b.logger.Error("Failed to spawn broadcast", slog.String("hash", txid.String()), slog.String("err", err.Error()))
	}
}

// Rebroadcast re-sends all pending transactions. Transactions already in the chain are dropped.
func (b *Broadcaster) Rebroadcast(ctx context.Context) {
	g := &errgroup.Group{}
	g.SetLimit(maxConcurrentResends)

	for txid, raw := range b.pending.Snapshot() {
		g.Go(func() error {
			b.send(ctx, txid, raw)
			return nil
		})
	}

	_ = g.Wait()
}

func (b *Broadcaster) send(ctx context.Context, txid chainhash.Hash, raw []byte) {
	_, err := b.client.SendRawTransaction(ctx, hex.EncodeToString(raw), true)
	if err == nil {
		b.logger.Debug("Transaction sent", slog.String("hash", txid.String()))
		return
	}

	if rpc_client.IsAlreadyInChain(err) {
		b.pending.Remove(txid)
		b.logger.Info("Transaction already in chain, stop rebroadcasting", slog.String("hash", txid.String()))
		return
	}

	b.logger.Debug("Failed to send transaction", slog.String("hash", txid.String()), slog.String("err", err.Error()))
}
