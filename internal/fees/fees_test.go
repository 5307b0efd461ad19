package fees_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitcoin-sv/lnbridge/internal/engine"
	"github.com/bitcoin-sv/lnbridge/internal/fees"
	"github.com/bitcoin-sv/lnbridge/internal/fees/mocks"
	"github.com/bitcoin-sv/lnbridge/internal/rpc_client"
)

func rate(v float64) *float64 {
	return &v
}

func TestEstimatorUpdate(t *testing.T) {
	tt := []struct {
		name  string
		rates map[int]*float64
		err   error

		expectedBackground   uint64
		expectedNormal       uint64
		expectedHighPriority uint64
		expectedError        error
	}{
		{
			name:                 "no update yet returns floor",
			rates:                map[int]*float64{6: nil, 18: nil, 144: nil},
			expectedBackground:   253,
			expectedNormal:       253,
			expectedHighPriority: 253,
		},
		{
			name:                 "rates converted to sat per 1000 weight",
			rates:                map[int]*float64{6: rate(0.5), 18: rate(0.25), 144: rate(0.125)},
			expectedBackground:   50_003,
			expectedNormal:       100_003,
			expectedHighPriority: 200_003,
		},
		{
			name:                 "low rates are raised to the floor",
			rates:                map[int]*float64{6: rate(0.5), 18: rate(0), 144: nil},
			expectedBackground:   253,
			expectedNormal:       253,
			expectedHighPriority: 200_003,
		},
		{
			name:                 "rpc failure",
			rates:                map[int]*float64{6: rate(0.5), 18: rate(0.25), 144: rate(0.125)},
			err:                  rpc_client.ErrRPCFailed,
			expectedBackground:   253,
			expectedNormal:       253,
			expectedHighPriority: 253,
			expectedError:        rpc_client.ErrRPCFailed,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// given
			client := &mocks.SmartFeeEstimatorMock{
				EstimateSmartFeeFunc: func(_ context.Context, confTarget int, _ string) (rpc_client.SmartFeeResult, error) {
					if tc.err != nil {
						return rpc_client.SmartFeeResult{}, tc.err
					}
					return rpc_client.SmartFeeResult{FeeRate: tc.rates[confTarget]}, nil
				},
			}
			sut := fees.New(client, slog.New(slog.NewTextHandler(os.Stdout, nil)))

			// when
			err := sut.Update(context.Background())

			// then
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.expectedBackground, sut.EstimateSatPer1000Weight(engine.Background))
			assert.Equal(t, tc.expectedNormal, sut.EstimateSatPer1000Weight(engine.Normal))
			assert.Equal(t, tc.expectedHighPriority, sut.EstimateSatPer1000Weight(engine.HighPriority))
			require.Len(t, client.EstimateSmartFeeCalls(), 3)
		})
	}
}

func TestEstimatorModes(t *testing.T) {
	// given
	modes := make(chan string, 3)
	client := &mocks.SmartFeeEstimatorMock{
		EstimateSmartFeeFunc: func(_ context.Context, confTarget int, mode string) (rpc_client.SmartFeeResult, error) {
			modes <- mode
			if confTarget == 6 && mode != "CONSERVATIVE" {
				return rpc_client.SmartFeeResult{}, errors.New("unexpected mode")
			}
			return rpc_client.SmartFeeResult{}, nil
		},
	}
	sut := fees.New(client, slog.Default())

	// when
	err := sut.Update(context.Background())

	// then
	require.NoError(t, err)
	close(modes)
	var conservative int
	for mode := range modes {
		if mode == "CONSERVATIVE" {
			conservative++
		}
	}
	assert.Equal(t, 1, conservative)
}

func TestEstimatorKeepsPreviousValue(t *testing.T) {
	// given
	current := rate(0.5)
	client := &mocks.SmartFeeEstimatorMock{
		EstimateSmartFeeFunc: func(_ context.Context, _ int, _ string) (rpc_client.SmartFeeResult, error) {
			return rpc_client.SmartFeeResult{FeeRate: current}, nil
		},
	}
	sut := fees.New(client, slog.Default())
	require.NoError(t, sut.Update(context.Background()))

	// when
	current = nil
	require.NoError(t, sut.Update(context.Background()))

	// then
	assert.Equal(t, fees.Snapshot{Background: 200_003, Normal: 200_003, HighPriority: 200_003}, sut.Snapshot())
}
