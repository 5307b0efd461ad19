package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusIsEnabled(t *testing.T) {
	testCases := []struct {
		name     string
		config   *PrometheusConfig
		expected bool
	}{
		{
			name:     "nil",
			expected: false,
		},
		{
			name:     "no address",
			config:   &PrometheusConfig{Endpoint: "/metrics"},
			expected: false,
		},
		{
			name:     "enabled",
			config:   &PrometheusConfig{Endpoint: "/metrics", Addr: ":2112"},
			expected: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.config.IsEnabled())
		})
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name        string
		modify      func(c *LnConfig)
		expectedErr bool
	}{
		{
			name:   "defaults",
			modify: func(_ *LnConfig) {},
		},
		{
			name:        "empty rpc url",
			modify:      func(c *LnConfig) { c.Bitcoind.RPCURL = "" },
			expectedErr: true,
		},
		{
			name:        "empty data dir",
			modify:      func(c *LnConfig) { c.Lightning.DataDir = "" },
			expectedErr: true,
		},
		{
			name:        "port out of range",
			modify:      func(c *LnConfig) { c.Lightning.Port = 70000 },
			expectedErr: true,
		},
		{
			name:   "ephemeral port",
			modify: func(c *LnConfig) { c.Lightning.Port = 0 },
		},
		{
			name:        "zero write queue",
			modify:      func(c *LnConfig) { c.Peer.WriteQueueSize = 0 },
			expectedErr: true,
		},
		{
			name:        "zero notify capacity",
			modify:      func(c *LnConfig) { c.Dispatcher.NotifyCapacity = 0 },
			expectedErr: true,
		},
		{
			name:        "unknown spawner mode",
			modify:      func(c *LnConfig) { c.Spawner.Mode = "threads" },
			expectedErr: true,
		},
		{
			name:   "inline spawner",
			modify: func(c *LnConfig) { c.Spawner.Mode = "inline" },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			c := getDefaultLnConfig()
			tc.modify(c)

			// when
			err := validate(c)

			// then
			if tc.expectedErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
