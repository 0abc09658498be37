package xlog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/benz9527/xlist/lib/infra"
)

func TestLogLevelString(t *testing.T) {
	require.Equal(t, "DEBUG", LogLevelDebug.String())
	require.Equal(t, "INFO", LogLevelInfo.String())
	require.Equal(t, "WARN", LogLevelWarn.String())
	require.Equal(t, "ERROR", LogLevelError.String())
	require.Equal(t, zapcore.DebugLevel, LogLevelDebug.zapLevel())
	require.Equal(t, zapcore.InfoLevel, LogLevelInfo.zapLevel())
	require.Equal(t, zapcore.WarnLevel, LogLevelWarn.zapLevel())
	require.Equal(t, zapcore.ErrorLevel, LogLevelError.zapLevel())
	require.Equal(t, zapcore.DebugLevel, LogLevel("unknown").zapLevel())

	require.Equal(t, zapcore.DebugLevel, getLogLevelOrDefault(" "))
	require.Equal(t, zapcore.WarnLevel, getLogLevelOrDefault("warn"))
	require.Equal(t, zapcore.ErrorLevel, getLogLevelOrDefault("ERROR"))
}

type testMemOutWriter struct {
	data []byte
}

func (w *testMemOutWriter) Write(p []byte) (n int, err error) {
	w.data = append(w.data, p...)
	return len(p), nil
}

func (w *testMemOutWriter) Reset() {
	w.data = make([]byte, 0, 4096)
}

func (w *testMemOutWriter) entries(t *testing.T) []map[string]any {
	lines := bytes.Split(bytes.TrimSpace(w.data), []byte("\n"))
	res := make([]map[string]any, 0, len(lines))
	for _, line := range lines {
		if len(line) == 0 {
			continue
		}
		m := map[string]any{}
		require.NoError(t, json.Unmarshal(line, &m))
		res = append(res, m)
	}
	return res
}

func newTestMemLogger(t *testing.T, opts ...XLoggerOption) (XLogger, *testMemOutWriter) {
	w := &testMemOutWriter{data: make([]byte, 0, 4096)}
	writerMap[testMemAsOut] = zapcore.AddSync(w)
	t.Cleanup(func() {
		delete(writerMap, testMemAsOut)
	})
	opts = append([]XLoggerOption{
		WithXLoggerWriter(testMemAsOut),
		WithXLoggerEncoder(JSON),
	}, opts...)
	return NewXLogger(opts...), w
}

func TestXLogger_LevelAndFields(t *testing.T) {
	logger, w := newTestMemLogger(t,
		WithXLoggerLevel(LogLevelInfo),
		WithXLoggerName("xlist"),
	)
	require.Equal(t, "info", logger.Level())

	logger.Debug("dropped")
	logger.Info("kept", zap.Int64("len", 3))
	logger.Warn("warned")
	require.NoError(t, logger.Sync())

	entries := w.entries(t)
	require.Len(t, entries, 2)
	require.Equal(t, "kept", entries[0]["msg"])
	require.Equal(t, "INFO", entries[0]["lvl"])
	require.Equal(t, "xlist", entries[0]["component"])
	require.Equal(t, float64(3), entries[0]["len"])
	require.Equal(t, "WARN", entries[1]["lvl"])

	w.Reset()
	logger.IncreaseLogLevel(zapcore.ErrorLevel)
	require.Equal(t, "error", logger.Level())
	logger.Warn("dropped")
	logger.Error(errors.New("boom"), "failed")
	entries = w.entries(t)
	require.Len(t, entries, 1)
	require.Equal(t, "boom", entries[0]["error"])
}

func TestXLogger_ErrorStack(t *testing.T) {
	logger, w := newTestMemLogger(t, WithXLoggerLevel(LogLevelDebug))

	logger.ErrorStack(infra.NewErrorStack("stack error"), "with stack")
	logger.ErrorStack(errors.New("plain error"), "without stack")
	logger.ErrorStackf(infra.WrapErrorStack(errors.New("wrapped")), "formatted %d", 1)

	entries := w.entries(t)
	require.Len(t, entries, 3)
	require.Equal(t, "stack error", entries[0]["error"])
	require.NotEmpty(t, entries[0]["errorStack"])
	require.Equal(t, "plain error", entries[1]["error"])
	require.Nil(t, entries[1]["errorStack"])
	require.Equal(t, "formatted 1", entries[2]["msg"])
	require.Equal(t, []any{"wrapped"}, entries[2]["errorCauses"])
}

type testCtxKey string

func TestXLogger_ContextFields(t *testing.T) {
	logger, w := newTestMemLogger(t,
		WithXLoggerLevel(LogLevelDebug),
		WithXLoggerContextFieldExtract("traceId", "TraceID"),
		WithXLoggerContextFieldExtract("service"),
		WithXLoggerContextFieldExtract("omitted", ContextKeyMapToOmitempty),
		WithXLoggerContextFieldExtract(""),
	)

	//nolint:staticcheck
	ctx := context.WithValue(context.TODO(), "traceId", "1234567890")
	ctx = context.WithValue(ctx, testCtxKey("service"), "ignored")

	logger.InfoContext(ctx, "ctx info")
	logger.ErrorContext(ctx, errors.New("ctx error"), "ctx failed")
	logger.ErrorStackContext(ctx, infra.NewErrorStack("ctx stack"), "ctx stack failed")

	entries := w.entries(t)
	require.Len(t, entries, 3)
	for _, e := range entries {
		require.Equal(t, "1234567890", e["TraceID"])
		// Typed keys are not matched by the string key.
		require.Equal(t, "nil", e["service"])
		_, ok := e["omitted"]
		require.False(t, ok)
	}
	require.Equal(t, "ctx error", entries[1]["error"])
	require.Equal(t, "ctx stack", entries[2]["error"])
}

func TestXLogger_InvalidOptions(t *testing.T) {
	require.Panics(t, func() {
		NewXLogger(WithXLoggerWriter(_writerMax))
	})
	require.Panics(t, func() {
		NewXLogger(WithXLoggerEncoder(_encMax))
	})
	require.Panics(t, func() {
		NewXLogger(WithXLoggerName("  "))
	})
}

func TestNopXLogger(t *testing.T) {
	logger := NewNopXLogger()
	logger.Debug("nothing")
	logger.ErrorStack(infra.NewErrorStack("nothing"), "nothing")
	logger.Logf(zapcore.InfoLevel, "nothing %s", "at all")
	require.NoError(t, logger.Sync())
	require.Equal(t, "fatal", logger.Level())
}
