package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// LevelTrace is below debug and is used for per message peer traffic.
const LevelTrace = slog.LevelDebug - 4

var (
	ErrLoggerInvalidLogLevel  = errors.New("invalid log level")
	ErrLoggerInvalidLogFormat = errors.New("invalid log format")
)

type options struct {
	writer io.Writer
}

func WithWriter(w io.Writer) func(*options) {
	return func(o *options) {
		o.writer = w
	}
}

func NewLogger(logLevel, logFormat string, opts ...func(*options)) (*slog.Logger, error) {
	o := &options{writer: os.Stdout}
	for _, opt := range opts {
		opt(o)
	}

	slogLevel, err := getSlogLevel(logLevel)
	if err != nil {
		return nil, err
	}

	handlerOpts := &slog.HandlerOptions{Level: slogLevel, ReplaceAttr: replaceLevelName}

	switch strings.ToLower(logFormat) {
	case "json":
		return slog.New(slog.NewJSONHandler(o.writer, handlerOpts)), nil
	case "text":
		return slog.New(slog.NewTextHandler(o.writer, handlerOpts)), nil
	case "tint":
		return slog.New(tint.NewHandler(o.writer, &tint.Options{
			Level:       slogLevel,
			TimeFormat:  time.StampMilli,
			ReplaceAttr: replaceLevelName,
		})), nil
	}

	return nil, errors.Join(ErrLoggerInvalidLogFormat, fmt.Errorf("log format: %s", logFormat))
}

func replaceLevelName(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}

	if level, ok := a.Value.Any().(slog.Level); ok && level == LevelTrace {
		a.Value = slog.StringValue("TRACE")
	}

	return a
}

func getSlogLevel(logLevel string) (slog.Level, error) {
	switch strings.ToUpper(logLevel) {
	case "TRACE":
		return LevelTrace, nil
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARN":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	}

	return slog.LevelInfo, errors.Join(ErrLoggerInvalidLogLevel, fmt.Errorf("log level: %s", logLevel))
}
