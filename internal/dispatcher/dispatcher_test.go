package dispatcher_test

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/bitcoin-sv/lnbridge/internal/dispatcher"
	"github.com/bitcoin-sv/lnbridge/internal/dispatcher/mocks"
	"github.com/bitcoin-sv/lnbridge/internal/engine"
	engineMocks "github.com/bitcoin-sv/lnbridge/internal/engine/mocks"
	"github.com/bitcoin-sv/lnbridge/internal/rpc_client"
	"github.com/bitcoin-sv/lnbridge/internal/spawner"
)

// eventQueue hands out one batch of events per call.
type eventQueue struct {
	mu      sync.Mutex
	batches [][]engine.Event
}

func (q *eventQueue) next() []engine.Event {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.batches) == 0 {
		return nil
	}

	batch := q.batches[0]
	q.batches = q.batches[1:]
	return batch
}

type fixture struct {
	peers       *engineMocks.PeerHandlerMock
	manager     *engineMocks.ChannelManagerMock
	monitor     *engineMocks.EventsProviderMock
	client      *mocks.FundingClientMock
	broadcaster *mocks.BroadcasterMock
	preimages   *mocks.PreimageStoreMock
	store       *mocks.SnapshotWriterMock
	events      *eventQueue

	mu       sync.Mutex
	snapshot []byte
	fatalErr error
}

func (f *fixture) setSnapshot(b []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.snapshot = b
}

func newFixture() *fixture {
	f := &fixture{
		events:   &eventQueue{},
		snapshot: []byte("state-1"),
	}

	f.peers = &engineMocks.PeerHandlerMock{ProcessEventsFunc: func() {}}
	f.manager = &engineMocks.ChannelManagerMock{
		GetAndClearPendingEventsFunc: f.events.next,
		WriteFunc: func(w io.Writer) error {
			f.mu.Lock()
			defer f.mu.Unlock()

			_, err := w.Write(f.snapshot)
			return err
		},
		FundingTransactionGeneratedFunc: func(_ engine.ChannelID, _ engine.OutPoint) {},
		ClaimFundsFunc:                  func(_ engine.PaymentPreimage) bool { return true },
		FailHTLCBackwardsFunc:           func(_ engine.PaymentHash) bool { return true },
		ProcessPendingHTLCForwardsFunc:  func() {},
	}
	f.monitor = &engineMocks.EventsProviderMock{GetAndClearPendingEventsFunc: func() []engine.Event { return nil }}
	f.client = &mocks.FundingClientMock{}
	f.broadcaster = &mocks.BroadcasterMock{BroadcastTransactionFunc: func(_ *wire.MsgTx) {}}
	f.preimages = &mocks.PreimageStoreMock{
		LookupFunc: func(_ engine.PaymentHash) (engine.PaymentPreimage, bool, error) {
			return engine.PaymentPreimage{}, false, nil
		},
	}
	f.store = &mocks.SnapshotWriterMock{WriteManagerDataFunc: func(_ []byte) error { return nil }}

	return f
}

func (f *fixture) dispatcher(t *testing.T, opts ...dispatcher.Option) *dispatcher.Dispatcher {
	t.Helper()

	sp := spawner.NewGoroutine(slog.Default())
	t.Cleanup(sp.Shutdown)

	opts = append([]dispatcher.Option{
		dispatcher.WithChainParams(&chaincfg.RegressionNetParams),
		dispatcher.WithFatalHandler(func(err error) {
			f.mu.Lock()
			defer f.mu.Unlock()

			f.fatalErr = err
		}),
	}, opts...)

	return dispatcher.New(dispatcher.Collaborators{
		Peers:       f.peers,
		Manager:     f.manager,
		Monitor:     f.monitor,
		Client:      f.client,
		Broadcaster: f.broadcaster,
		Preimages:   f.preimages,
		Store:       f.store,
		Spawner:     sp,
	}, slog.Default(), opts...)
}

func p2wpkhScript() []byte {
	return append([]byte{0x00, 0x14}, bytes.Repeat([]byte{0xab}, 20)...)
}

func fundingTx(t *testing.T) (*wire.MsgTx, string) {
	t.Helper()

	tx := wire.NewMsgTx(2)
	tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&chainhash.Hash{0x01}, 0), nil, nil))
	tx.AddTxOut(wire.NewTxOut(5_000, p2wpkhScript()))
	tx.AddTxOut(wire.NewTxOut(100_000, p2wpkhScript()))

	buf := &bytes.Buffer{}
	require.NoError(t, tx.Serialize(buf))

	return tx, hex.EncodeToString(buf.Bytes())
}

func TestSignal(t *testing.T) {
	t.Run("signals are coalesced", func(t *testing.T) {
		// given
		f := newFixture()

		release := make(chan struct{})
		var once sync.Once
		f.peers.ProcessEventsFunc = func() {
			once.Do(func() { <-release })
		}

		sut := f.dispatcher(t)
		sut.Start()
		defer sut.Shutdown()

		// when
		for i := 0; i < 10; i++ {
			sut.Signal()
		}
		close(release)

		// then
		require.Eventually(t, func() bool {
			return testutil.ToFloat64(sut.Metrics().Passes) >= 1
		}, time.Second, 10*time.Millisecond)
		time.Sleep(100 * time.Millisecond)

		passes := testutil.ToFloat64(sut.Metrics().Passes)
		require.GreaterOrEqual(t, passes, 1.0)
		require.LessOrEqual(t, passes, float64(dispatcher.DefaultNotifyCapacity+1))
	})

	t.Run("signal never blocks", func(t *testing.T) {
		// given
		sut := newFixture().dispatcher(t)

		// when
		done := make(chan struct{})
		go func() {
			for i := 0; i < 100; i++ {
				sut.Signal()
			}
			close(done)
		}()

		// then
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Signal blocked without a running loop")
		}
	})
}

func TestPassSnapshot(t *testing.T) {
	t.Run("unchanged snapshot is written once", func(t *testing.T) {
		// given
		f := newFixture()
		sut := f.dispatcher(t)

		// when
		sut.Pass(context.Background())
		sut.Pass(context.Background())

		// then
		require.Len(t, f.store.WriteManagerDataCalls(), 1)
		require.Equal(t, []byte("state-1"), f.store.WriteManagerDataCalls()[0].Data)
		require.Len(t, f.peers.ProcessEventsCalls(), 2)

		// when
		f.setSnapshot([]byte("state-2"))
		sut.Pass(context.Background())

		// then
		require.Len(t, f.store.WriteManagerDataCalls(), 2)
		require.Equal(t, 2.0, testutil.ToFloat64(sut.Metrics().SnapshotWrites))
		require.Equal(t, 3.0, testutil.ToFloat64(sut.Metrics().Passes))
	})

	t.Run("storage failure is fatal", func(t *testing.T) {
		// given
		f := newFixture()
		f.store.WriteManagerDataFunc = func(_ []byte) error { return errors.New("disk full") }
		sut := f.dispatcher(t)

		// when
		sut.Pass(context.Background())

		// then
		require.ErrorIs(t, f.fatalErr, dispatcher.ErrSnapshotWrite)
	})

	t.Run("failed write is retried on the next pass", func(t *testing.T) {
		// given
		f := newFixture()
		fail := true
		f.store.WriteManagerDataFunc = func(_ []byte) error {
			if fail {
				fail = false
				return errors.New("disk full")
			}
			return nil
		}
		sut := f.dispatcher(t)

		// when
		sut.Pass(context.Background())
		sut.Pass(context.Background())

		// then
		require.Len(t, f.store.WriteManagerDataCalls(), 2)
	})
}

func TestFunding(t *testing.T) {
	channelID := engine.ChannelID{0x42}

	tt := []struct {
		name           string
		script         []byte
		changePos      int
		signComplete   bool
		createErr      error
		expectedIndex  uint32
		expectedFunded bool
		expectedCreate int
	}{
		{
			name:           "change first",
			script:         p2wpkhScript(),
			changePos:      0,
			signComplete:   true,
			expectedIndex:  1,
			expectedFunded: true,
			expectedCreate: 1,
		},
		{
			name:           "change second",
			script:         p2wpkhScript(),
			changePos:      1,
			signComplete:   true,
			expectedIndex:  0,
			expectedFunded: true,
			expectedCreate: 1,
		},
		{
			name:           "incomplete signature",
			script:         p2wpkhScript(),
			changePos:      1,
			signComplete:   false,
			expectedCreate: 1,
		},
		{
			name:           "unexpected change position",
			script:         p2wpkhScript(),
			changePos:      -1,
			signComplete:   true,
			expectedCreate: 1,
		},
		{
			name:           "create fails",
			script:         p2wpkhScript(),
			createErr:      errors.New("wallet locked"),
			expectedCreate: 1,
		},
		{
			name:           "not a witness script",
			script:         append(append([]byte{0x76, 0xa9, 0x14}, bytes.Repeat([]byte{0x01}, 20)...), 0x88, 0xac),
			expectedCreate: 0,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// given
			tx, txHex := fundingTx(t)

			f := newFixture()
			f.events.batches = [][]engine.Event{{
				engine.FundingGenerationReady{
					TemporaryChannelID:   channelID,
					ChannelValueSatoshis: 100_000,
					OutputScript:         tc.script,
				},
				engine.PaymentSent{PaymentPreimage: engine.PaymentPreimage{0x01}},
			}}
			f.client.CreateRawTransactionFunc = func(_ context.Context, _ string, _ btcutil.Amount) (string, error) {
				return "raw", tc.createErr
			}
			f.client.FundRawTransactionFunc = func(_ context.Context, _ string) (rpc_client.FundResult, error) {
				return rpc_client.FundResult{Hex: "funded", ChangePos: tc.changePos}, nil
			}
			f.client.SignRawTransactionWithWalletFunc = func(_ context.Context, _ string) (rpc_client.SignResult, error) {
				return rpc_client.SignResult{Hex: txHex, Complete: tc.signComplete}, nil
			}

			sut := f.dispatcher(t)

			// when
			sut.Pass(context.Background())

			// then
			require.Len(t, f.client.CreateRawTransactionCalls(), tc.expectedCreate)
			require.Equal(t, 1.0, testutil.ToFloat64(sut.Metrics().Events.WithLabelValues(engine.KindPaymentSent)))
			require.Len(t, f.store.WriteManagerDataCalls(), 1)

			if !tc.expectedFunded {
				require.Empty(t, f.manager.FundingTransactionGeneratedCalls())
				require.Equal(t, 0, sut.PendingFunding().Len())
				return
			}

			createCall := f.client.CreateRawTransactionCalls()[0]
			require.Equal(t, btcutil.Amount(100_000), createCall.Amount)
			require.Contains(t, createCall.Address, "bcrt1")
			require.Equal(t, "raw", f.client.FundRawTransactionCalls()[0].TxHex)
			require.Equal(t, "funded", f.client.SignRawTransactionWithWalletCalls()[0].TxHex)

			generated := f.manager.FundingTransactionGeneratedCalls()
			require.Len(t, generated, 1)
			require.Equal(t, channelID, generated[0].TemporaryChannelID)
			require.Equal(t, engine.OutPoint{Txid: tx.TxHash(), Index: tc.expectedIndex}, generated[0].FundingTxo)
			require.Equal(t, 1, sut.PendingFunding().Len())
		})
	}
}

func TestFundingBroadcastSafe(t *testing.T) {
	t.Run("broadcasts the generated funding transaction", func(t *testing.T) {
		// given
		tx, txHex := fundingTx(t)
		fundingTxo := engine.OutPoint{Txid: tx.TxHash(), Index: 0}

		f := newFixture()
		f.events.batches = [][]engine.Event{
			{engine.FundingGenerationReady{TemporaryChannelID: engine.ChannelID{0x01}, ChannelValueSatoshis: 100_000, OutputScript: p2wpkhScript()}},
			{engine.FundingBroadcastSafe{FundingTxo: fundingTxo}},
		}
		f.client.CreateRawTransactionFunc = func(_ context.Context, _ string, _ btcutil.Amount) (string, error) {
			return "raw", nil
		}
		f.client.FundRawTransactionFunc = func(_ context.Context, _ string) (rpc_client.FundResult, error) {
			return rpc_client.FundResult{Hex: "funded", ChangePos: 1}, nil
		}
		f.client.SignRawTransactionWithWalletFunc = func(_ context.Context, _ string) (rpc_client.SignResult, error) {
			return rpc_client.SignResult{Hex: txHex, Complete: true}, nil
		}

		sut := f.dispatcher(t)

		// when
		sut.Pass(context.Background())
		sut.Pass(context.Background())

		// then
		calls := f.broadcaster.BroadcastTransactionCalls()
		require.Len(t, calls, 1)
		require.Equal(t, tx.TxHash(), calls[0].Tx.TxHash())
		require.Equal(t, 0, sut.PendingFunding().Len())
	})

	t.Run("unknown funding transaction", func(t *testing.T) {
		// given
		f := newFixture()
		f.events.batches = [][]engine.Event{{engine.FundingBroadcastSafe{FundingTxo: engine.OutPoint{Txid: chainhash.Hash{0x09}}}}}
		sut := f.dispatcher(t)

		// when
		sut.Pass(context.Background())

		// then
		require.Empty(t, f.broadcaster.BroadcastTransactionCalls())
	})
}

func TestPaymentReceived(t *testing.T) {
	hash := engine.PaymentHash{0x0a}
	preimage := engine.PaymentPreimage{0x0b}

	tt := []struct {
		name      string
		found     bool
		lookupErr error

		expectedClaims int
		expectedFails  int
	}{
		{
			name:           "known preimage is claimed",
			found:          true,
			expectedClaims: 1,
		},
		{
			name:          "unknown preimage is failed back",
			expectedFails: 1,
		},
		{
			name:          "lookup error is failed back",
			lookupErr:     errors.New("bolt closed"),
			expectedFails: 1,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// given
			f := newFixture()
			f.events.batches = [][]engine.Event{{engine.PaymentReceived{PaymentHash: hash, AmountMsat: 1000}}}
			f.preimages.LookupFunc = func(_ engine.PaymentHash) (engine.PaymentPreimage, bool, error) {
				return preimage, tc.found, tc.lookupErr
			}
			sut := f.dispatcher(t)

			// when
			sut.Pass(context.Background())

			// then
			require.Len(t, f.manager.ClaimFundsCalls(), tc.expectedClaims)
			require.Len(t, f.manager.FailHTLCBackwardsCalls(), tc.expectedFails)
			require.Equal(t, hash, f.preimages.LookupCalls()[0].Hash)
			if tc.expectedClaims > 0 {
				require.Equal(t, preimage, f.manager.ClaimFundsCalls()[0].Preimage)
			}
		})
	}
}

func TestPendingHTLCsForwardable(t *testing.T) {
	// given
	f := newFixture()
	f.events.batches = [][]engine.Event{{engine.PendingHTLCsForwardable{TimeForwardable: 20 * time.Millisecond}}}
	sut := f.dispatcher(t)
	sut.Start()
	defer sut.Shutdown()

	// when
	sut.Signal()

	// then
	require.Eventually(t, func() bool {
		return len(f.manager.ProcessPendingHTLCForwardsCalls()) == 1
	}, time.Second, 10*time.Millisecond)
	require.Eventually(t, func() bool {
		return testutil.ToFloat64(sut.Metrics().Passes) >= 2
	}, time.Second, 10*time.Millisecond)
}

func TestMonitorEvents(t *testing.T) {
	// given
	f := newFixture()
	f.monitor.GetAndClearPendingEventsFunc = func() []engine.Event {
		return []engine.Event{engine.SpendableOutputs{Outputs: []engine.SpendableOutput{
			{Kind: engine.StaticOutput, Value: 1000},
			{Kind: engine.DynamicOutputP2WSH, Value: 2000},
		}}}
	}
	sut := f.dispatcher(t)

	// when
	sut.Pass(context.Background())

	// then
	require.Len(t, f.monitor.GetAndClearPendingEventsCalls(), 1)
	require.Equal(t, 1.0, testutil.ToFloat64(sut.Metrics().Events.WithLabelValues(engine.KindSpendableOutputs)))
}
