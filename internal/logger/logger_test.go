package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewLogger(t *testing.T) {
	testCases := []struct {
		name          string
		loglevel      string
		logformat     string
		expectedLevel slog.Level
		expectedError error
	}{
		{
			name:          "text logger",
			loglevel:      "INFO",
			logformat:     "text",
			expectedLevel: slog.LevelInfo,
		},
		{
			name:          "json logger",
			loglevel:      "WARN",
			logformat:     "json",
			expectedLevel: slog.LevelWarn,
		},
		{
			name:          "tint logger with lower case level",
			loglevel:      "debug",
			logformat:     "tint",
			expectedLevel: slog.LevelDebug,
		},
		{
			name:          "trace level",
			loglevel:      "TRACE",
			logformat:     "text",
			expectedLevel: LevelTrace,
		},
		{
			name:          "invalid log format",
			loglevel:      "INFO",
			logformat:     "invalid format",
			expectedError: ErrLoggerInvalidLogFormat,
		},
		{
			name:          "invalid log level",
			loglevel:      "INVALID_LEVEL",
			logformat:     "text",
			expectedError: ErrLoggerInvalidLogLevel,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			buf := &bytes.Buffer{}

			// when
			sut, err := NewLogger(tc.loglevel, tc.logformat, WithWriter(buf))

			// then
			assert.ErrorIs(t, err, tc.expectedError)
			if tc.expectedError != nil {
				return
			}

			assert.True(t, sut.Enabled(context.Background(), tc.expectedLevel))
			assert.False(t, sut.Enabled(context.Background(), tc.expectedLevel-1))

			sut.Log(context.Background(), tc.expectedLevel, "test")
			assert.Contains(t, buf.String(), "test")
		})
	}
}

func Test_TraceLevelName(t *testing.T) {
	// given
	buf := &bytes.Buffer{}
	sut, err := NewLogger("TRACE", "json", WithWriter(buf))
	require.NoError(t, err)

	// when
	sut.Log(context.Background(), LevelTrace, "bytes sent")

	// then
	assert.Contains(t, buf.String(), `"level":"TRACE"`)
}
