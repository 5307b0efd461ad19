package chain_sync_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitcoin-sv/lnbridge/internal/chain_sync"
	"github.com/bitcoin-sv/lnbridge/internal/chain_sync/mocks"
	engineMocks "github.com/bitcoin-sv/lnbridge/internal/engine/mocks"
	"github.com/bitcoin-sv/lnbridge/internal/rpc_client"
)

var errNotFound = errors.New("block not found")

// testChain is a synthetic block tree addressed by labels like "A100".
type testChain struct {
	mu      sync.Mutex
	headers map[string]rpc_client.BlockHeader
	labels  map[string]string
	best    string
}

func newTestChain() *testChain {
	c := &testChain{
		headers: make(map[string]rpc_client.BlockHeader),
		labels:  make(map[string]string),
	}
	c.add("G0", "", 0)

	return c
}

func hashOf(label string) string {
	return chainhash.DoubleHashH([]byte(label)).String()
}

func (c *testChain) add(label string, parentLabel string, height uint32) {
	prev := ""
	if parentLabel != "" {
		prev = hashOf(parentLabel)
	}

	hash := hashOf(label)
	c.headers[hash] = rpc_client.BlockHeader{
		Hash:              hash,
		Height:            height,
		Version:           1,
		MerkleRoot:        chainhash.Hash{}.String(),
		Time:              int64(height),
		Bits:              "207fffff",
		PreviousBlockHash: prev,
	}
	c.labels[hash] = label
}

// extend appends blocks prefix{from}..prefix{to} on top of parentLabel.
func (c *testChain) extend(prefix string, parentLabel string, from, to uint32) {
	parent := parentLabel
	for h := from; h <= to; h++ {
		label := fmt.Sprintf("%s%d", prefix, h)
		c.add(label, parent, h)
		parent = label
	}
}

func (c *testChain) setBest(label string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.best = hashOf(label)
}

func (c *testChain) client() *mocks.ChainClientMock {
	return &mocks.ChainClientMock{
		GetBestBlockHashFunc: func(_ context.Context) (string, error) {
			c.mu.Lock()
			defer c.mu.Unlock()

			return c.best, nil
		},
		GetBlockHeaderFunc: func(_ context.Context, hash string) (rpc_client.BlockHeader, error) {
			header, ok := c.headers[hash]
			if !ok {
				return rpc_client.BlockHeader{}, errNotFound
			}

			return header, nil
		},
		GetBlockFunc: func(_ context.Context, hash string) (*wire.MsgBlock, error) {
			header, ok := c.headers[hash]
			if !ok {
				return nil, errNotFound
			}

			wireHeader, err := header.WireHeader()
			if err != nil {
				return nil, err
			}

			return &wire.MsgBlock{Header: *wireHeader}, nil
		},
	}
}

func (c *testChain) describe(steps []chain_sync.ForkStep) []string {
	described := make([]string, 0, len(steps))
	for _, step := range steps {
		described = append(described, step.Kind.String()+" "+c.labels[step.Block.Hash])
	}

	return described
}

// recordingListener records the order of listener callbacks by height. Synthetic
// headers carry their height as timestamp.
func recordingListener() (*engineMocks.BlockListenerMock, func() []string) {
	var mu sync.Mutex
	var applied []string

	listener := &engineMocks.BlockListenerMock{
		BlockConnectedFunc: func(_ *wire.MsgBlock, height uint32) {
			mu.Lock()
			defer mu.Unlock()
			applied = append(applied, fmt.Sprintf("connect %d", height))
		},
		BlockDisconnectedFunc: func(header *wire.BlockHeader) {
			mu.Lock()
			defer mu.Unlock()
			applied = append(applied, fmt.Sprintf("disconnect %d", header.Timestamp.Unix()))
		},
	}

	return listener, func() []string {
		mu.Lock()
		defer mu.Unlock()

		return append([]string{}, applied...)
	}
}

func newSyncer(client chain_sync.ChainClient, listener *engineMocks.BlockListenerMock, opts ...func(*chain_sync.Syncer)) *chain_sync.Syncer {
	if listener == nil {
		listener = &engineMocks.BlockListenerMock{}
	}

	return chain_sync.New(client, listener, slog.Default(), opts...)
}

func TestFindFork(t *testing.T) {
	tt := []struct {
		name  string
		build func(c *testChain)
		old   string
		new   string

		expectedSteps       []string
		expectedHeaderCalls int
		expectedError       error
	}{
		{
			name:          "same tip",
			build:         func(c *testChain) { c.extend("C", "G0", 1, 10) },
			old:           "C10",
			new:           "C10",
			expectedSteps: []string{},
		},
		{
			name:                "one new block",
			build:               func(c *testChain) { c.extend("C", "G0", 1, 10) },
			old:                 "C9",
			new:                 "C10",
			expectedSteps:       []string{"connect C10"},
			expectedHeaderCalls: 1,
		},
		{
			name:                "skipped blocks",
			build:               func(c *testChain) { c.extend("C", "G0", 1, 10) },
			old:                 "C7",
			new:                 "C10",
			expectedSteps:       []string{"connect C10", "connect C9", "connect C8"},
			expectedHeaderCalls: 4,
		},
		{
			name: "reorg onto longer chain forked at 99",
			build: func(c *testChain) {
				c.extend("C", "G0", 1, 99)
				c.extend("A", "C99", 100, 100)
				c.extend("B", "C99", 100, 102)
			},
			old:                 "A100",
			new:                 "B102",
			expectedSteps:       []string{"connect B102", "connect B101", "disconnect A100", "connect B100"},
			expectedHeaderCalls: 4,
		},
		{
			name: "reorg of equal length",
			build: func(c *testChain) {
				c.extend("C", "G0", 1, 50)
				c.extend("A", "C50", 51, 52)
				c.extend("B", "C50", 51, 52)
			},
			old:           "A52",
			new:           "B52",
			expectedSteps: []string{"disconnect A52", "connect B52", "disconnect A51", "connect B51"},
		},
		{
			name: "tip moved back to an ancestor",
			build: func(c *testChain) {
				c.extend("C", "G0", 1, 20)
			},
			old:           "C20",
			new:           "C18",
			expectedSteps: []string{"disconnect C20", "disconnect C19"},
		},
		{
			name: "old chain longer than new chain",
			build: func(c *testChain) {
				c.extend("C", "G0", 1, 30)
				c.extend("A", "C30", 31, 34)
				c.extend("B", "C30", 31, 32)
			},
			old:           "A34",
			new:           "B32",
			expectedSteps: []string{"disconnect A34", "disconnect A33", "disconnect A32", "connect B32", "disconnect A31", "connect B31"},
		},
		{
			name: "chains forked right after genesis",
			build: func(c *testChain) {
				c.extend("X", "G0", 1, 3)
				c.extend("Y", "G0", 1, 3)
			},
			old:           "X3",
			new:           "Y3",
			expectedSteps: []string{"disconnect X3", "connect Y3", "disconnect X2", "connect Y2", "disconnect X1", "connect Y1"},
		},
		{
			name:          "unknown old tip",
			build:         func(c *testChain) { c.extend("C", "G0", 1, 10) },
			old:           "Z5",
			new:           "C10",
			expectedError: chain_sync.ErrHeaderFetch,
		},
		{
			name:          "unknown new tip",
			build:         func(c *testChain) { c.extend("C", "G0", 1, 10) },
			old:           "C10",
			new:           "Z11",
			expectedError: chain_sync.ErrHeaderFetch,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// given
			chain := newTestChain()
			tc.build(chain)
			client := chain.client()
			sut := newSyncer(client, nil)

			// when
			steps, err := sut.FindFork(context.Background(), hashOf(tc.old), hashOf(tc.new))

			// then
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedSteps, chain.describe(steps))
			if tc.expectedHeaderCalls > 0 {
				assert.Len(t, client.GetBlockHeaderCalls(), tc.expectedHeaderCalls)
			}

			heights := map[chain_sync.StepKind]uint32{}
			for _, step := range steps {
				last, seen := heights[step.Kind]
				if seen {
					assert.Less(t, step.Block.Height, last, "steps of one kind must be height-descending")
				}
				heights[step.Kind] = step.Block.Height
			}
		})
	}
}

func TestTick(t *testing.T) {
	t.Run("first observation is only recorded", func(t *testing.T) {
		// given
		chain := newTestChain()
		chain.extend("C", "G0", 1, 5)
		chain.setBest("C5")
		listener, applied := recordingListener()
		notifier := &mocks.NotifierMock{SignalFunc: func() {}}
		sut := newSyncer(chain.client(), listener, chain_sync.WithNotifier(notifier))

		// when
		require.NoError(t, sut.Tick(context.Background()))

		// then
		assert.Empty(t, applied())
		assert.Equal(t, hashOf("C5"), sut.BestBlockHash())
		assert.Equal(t, uint32(5), sut.TipHeight())
		assert.Empty(t, notifier.SignalCalls())
	})

	t.Run("reorg is replayed disconnect first then oldest to newest", func(t *testing.T) {
		// given
		chain := newTestChain()
		chain.extend("C", "G0", 1, 99)
		chain.extend("A", "C99", 100, 100)
		chain.extend("B", "C99", 100, 102)
		chain.setBest("A100")

		listener, applied := recordingListener()
		feeUpdater := &mocks.FeeUpdaterMock{UpdateFunc: func(_ context.Context) error { return nil }}
		rebroadcaster := &mocks.RebroadcasterMock{RebroadcastFunc: func(_ context.Context) {}}
		notifier := &mocks.NotifierMock{SignalFunc: func() {}}
		sut := newSyncer(chain.client(), listener,
			chain_sync.WithFeeUpdater(feeUpdater),
			chain_sync.WithRebroadcaster(rebroadcaster),
			chain_sync.WithNotifier(notifier),
		)
		require.NoError(t, sut.Tick(context.Background()))

		// when
		chain.setBest("B102")
		require.NoError(t, sut.Tick(context.Background()))

		// then
		assert.Equal(t, []string{"disconnect 100", "connect 100", "connect 101", "connect 102"}, applied())
		assert.Equal(t, hashOf("B102"), sut.BestBlockHash())
		assert.Equal(t, uint32(102), sut.TipHeight())
		assert.Len(t, feeUpdater.UpdateCalls(), 1)
		assert.Len(t, rebroadcaster.RebroadcastCalls(), 1)
		assert.Len(t, notifier.SignalCalls(), 1)

		// when
		require.NoError(t, sut.Tick(context.Background()))

		// then
		assert.Len(t, applied(), 4)
		assert.Len(t, notifier.SignalCalls(), 1)
	})

	t.Run("failed block fetch aborts the tick before any hook", func(t *testing.T) {
		// given
		chain := newTestChain()
		chain.extend("C", "G0", 1, 10)
		chain.setBest("C7")
		listener, applied := recordingListener()
		client := chain.client()
		failing := true
		getBlock := client.GetBlockFunc
		client.GetBlockFunc = func(ctx context.Context, hash string) (*wire.MsgBlock, error) {
			if failing && hash == hashOf("C10") {
				return nil, rpc_client.ErrRPCFailed
			}
			return getBlock(ctx, hash)
		}
		sut := newSyncer(client, listener)
		require.NoError(t, sut.Tick(context.Background()))
		chain.setBest("C10")

		// when
		err := sut.Tick(context.Background())

		// then
		require.ErrorIs(t, err, chain_sync.ErrBlockFetch)
		assert.Empty(t, applied())
		assert.Equal(t, hashOf("C7"), sut.BestBlockHash())

		// when
		headerCalls := len(client.GetBlockHeaderCalls())
		failing = false
		require.NoError(t, sut.Tick(context.Background()))

		// then
		assert.Equal(t, []string{"connect 8", "connect 9", "connect 10"}, applied())
		assert.Equal(t, hashOf("C10"), sut.BestBlockHash())
		assert.Len(t, client.GetBlockHeaderCalls(), headerCalls, "headers are served from cache")
	})

	t.Run("best hash failure", func(t *testing.T) {
		// given
		client := &mocks.ChainClientMock{
			GetBestBlockHashFunc: func(_ context.Context) (string, error) {
				return "", rpc_client.ErrRPCFailed
			},
		}
		sut := newSyncer(client, nil)

		// when
		err := sut.Tick(context.Background())

		// then
		require.ErrorIs(t, err, rpc_client.ErrRPCFailed)
		assert.Empty(t, sut.BestBlockHash())
	})
}

func TestStartShutdown(t *testing.T) {
	// given
	chain := newTestChain()
	chain.extend("C", "G0", 1, 3)
	chain.setBest("C2")
	listener, applied := recordingListener()
	feeUpdater := &mocks.FeeUpdaterMock{UpdateFunc: func(_ context.Context) error { return nil }}
	sut := newSyncer(chain.client(), listener,
		chain_sync.WithPollInterval(5*time.Millisecond),
		chain_sync.WithFeeUpdater(feeUpdater),
	)

	// when
	sut.Start()
	require.Eventually(t, func() bool { return sut.BestBlockHash() == hashOf("C2") }, time.Second, 5*time.Millisecond)
	chain.setBest("C3")

	// then
	require.Eventually(t, func() bool { return len(applied()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"connect 3"}, applied())
	sut.Shutdown()
	assert.GreaterOrEqual(t, len(feeUpdater.UpdateCalls()), 2)
}
