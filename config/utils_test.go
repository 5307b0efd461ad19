package config

import (
	"testing"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/assert"
)

func Test_GetChainParams(t *testing.T) {
	testCases := []struct {
		name           string
		chain          string
		expectedParams *chaincfg.Params
		expectedError  error
	}{
		{
			name:           "mainnet",
			chain:          "main",
			expectedParams: &chaincfg.MainNetParams,
		},
		{
			name:           "testnet",
			chain:          "test",
			expectedParams: &chaincfg.TestNet3Params,
		},
		{
			name:           "regtest",
			chain:          "regtest",
			expectedParams: &chaincfg.RegressionNetParams,
		},
		{
			name:           "signet",
			chain:          "signet",
			expectedParams: &chaincfg.SigNetParams,
		},
		{
			name:          "invalid network",
			chain:         "invalidnet",
			expectedError: ErrConfigUnknownNetwork,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			actualParams, err := GetChainParams(tc.chain)

			// then
			assert.ErrorIs(t, err, tc.expectedError)
			assert.Equal(t, tc.expectedParams, actualParams)
		})
	}
}

func Test_ListenAddr(t *testing.T) {
	// given
	sut := &LightningConfig{Port: 9736}

	// then
	assert.Equal(t, ":9736", sut.ListenAddr())
}
