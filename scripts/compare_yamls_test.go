package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMissingKeys(t *testing.T) {
	// given
	expected := map[string]any{
		"logLevel": "INFO",
		"peer": map[string]any{
			"writeQueueSize": 3,
		},
	}
	actual := map[string]any{
		"loglevel": "DEBUG",
		"peer": map[string]any{
			"writequeuesize": 8,
			"readbuffersize": 8192,
		},
		"spawner": map[string]any{"mode": "pool"},
	}

	// when
	missing := missingKeys("", actual, expected)

	// then
	require.Equal(t, []string{"peer.readbuffersize", "spawner"}, missing)
}
