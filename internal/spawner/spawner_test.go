package spawner

import (
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tt := []struct {
		name string
		mode Mode

		expectedError error
	}{
		{name: "default", mode: ""},
		{name: "goroutine", mode: ModeGoroutine},
		{name: "pool", mode: ModePool},
		{name: "inline", mode: ModeInline},
		{name: "unknown", mode: "threads", expectedError: ErrUnknownMode},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			sut, err := New(tc.mode, 2, 4, slog.Default())

			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				return
			}
			require.NoError(t, err)
			sut.Shutdown()
		})
	}
}

func TestSpawn(t *testing.T) {
	for _, mode := range []Mode{ModeGoroutine, ModePool, ModeInline} {
		t.Run(string(mode), func(t *testing.T) {
			// given
			sut, err := New(mode, 2, 16, slog.Default())
			require.NoError(t, err)

			var mu sync.Mutex
			done := 0

			// when
			for range 10 {
				require.NoError(t, sut.Spawn(func() {
					mu.Lock()
					done++
					mu.Unlock()
				}))
			}
			require.NoError(t, sut.Spawn(func() { panic("task failed") }))
			sut.Shutdown()

			// then
			assert.Equal(t, 10, done)
			require.ErrorIs(t, sut.Spawn(func() {}), ErrStopped)
		})
	}
}

func TestPoolQueueFull(t *testing.T) {
	// given
	sut := NewPool(1, 1, slog.Default())
	release := make(chan struct{})
	started := make(chan struct{})
	require.NoError(t, sut.Spawn(func() {
		close(started)
		<-release
	}))
	<-started
	require.NoError(t, sut.Spawn(func() {}))

	// when
	err := sut.Spawn(func() {})

	// then
	require.ErrorIs(t, err, ErrQueueFull)
	close(release)
	sut.Shutdown()
}

func TestInlineRunsOnCaller(t *testing.T) {
	// given
	sut := NewInline(slog.Default())
	ran := false

	// when
	require.NoError(t, sut.Spawn(func() { ran = true }))

	// then
	assert.True(t, ran)
}

func TestGoroutineShutdownWaits(t *testing.T) {
	// given
	sut := NewGoroutine(slog.Default())
	finished := make(chan struct{})
	require.NoError(t, sut.Spawn(func() {
		time.Sleep(20 * time.Millisecond)
		close(finished)
	}))

	// when
	sut.Shutdown()

	// then
	select {
	case <-finished:
	default:
		t.Fatal("shutdown returned before task finished")
	}
}
