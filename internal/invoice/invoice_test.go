package invoice_test

import (
	"crypto/sha256"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bitcoin-sv/lnbridge/internal/engine"
	"github.com/bitcoin-sv/lnbridge/internal/invoice"
)

func openStore(t *testing.T, path string) *invoice.Store {
	t.Helper()

	store, err := invoice.Open(path, slog.Default())
	require.NoError(t, err)

	return store
}

func TestStore(t *testing.T) {
	t.Run("new preimage can be looked up by its hash", func(t *testing.T) {
		// given
		sut := openStore(t, filepath.Join(t.TempDir(), invoice.DefaultFileName))
		defer sut.Close()

		// when
		hash, preimage, err := sut.NewPreimage()
		require.NoError(t, err)

		actual, found, err := sut.Lookup(hash)

		// then
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, preimage, actual)
		require.Equal(t, sha256.Sum256(preimage[:]), [32]byte(hash))
	})

	t.Run("unknown hash", func(t *testing.T) {
		// given
		sut := openStore(t, filepath.Join(t.TempDir(), invoice.DefaultFileName))
		defer sut.Close()

		// when
		_, found, err := sut.Lookup(engine.PaymentHash{0x01})

		// then
		require.NoError(t, err)
		require.False(t, found)
	})

	t.Run("deleted preimage is gone", func(t *testing.T) {
		// given
		sut := openStore(t, filepath.Join(t.TempDir(), invoice.DefaultFileName))
		defer sut.Close()

		hash, _, err := sut.NewPreimage()
		require.NoError(t, err)

		// when
		require.NoError(t, sut.Delete(hash))

		// then
		_, found, err := sut.Lookup(hash)
		require.NoError(t, err)
		require.False(t, found)
	})

	t.Run("preimages survive a restart", func(t *testing.T) {
		// given
		path := filepath.Join(t.TempDir(), "nested", invoice.DefaultFileName)
		first := openStore(t, path)

		hashA, preimageA, err := first.NewPreimage()
		require.NoError(t, err)
		hashB, _, err := first.NewPreimage()
		require.NoError(t, err)
		require.NotEqual(t, hashA, hashB)
		require.NoError(t, first.Close())

		// when
		sut := openStore(t, path)
		defer sut.Close()

		// then
		actual, found, err := sut.Lookup(hashA)
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, preimageA, actual)

		hashes, err := sut.Hashes()
		require.NoError(t, err)
		require.ElementsMatch(t, []engine.PaymentHash{hashA, hashB}, hashes)
	})
}
