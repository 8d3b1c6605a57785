package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cdb/internal/adapters/logger"
)

func newTestHandler(t *testing.T, level slog.Leveler) (*logger.PrettyHandler, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	return logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: level}), buf
}

func TestPrettyHandler_Handle_Levels(t *testing.T) {
	tests := []struct {
		name  string
		level slog.Level
		msg   string
		want  string
	}{
		{name: "info", level: slog.LevelInfo, msg: "wrote 12 entries", want: "wrote 12 entries\n"},
		{name: "warn", level: slog.LevelWarn, msg: "no report files", want: "! no report files\n"},
		{name: "error", level: slog.LevelError, msg: "capture failed", want: "✗ capture failed\n"},
		{name: "debug filtered", level: slog.LevelDebug, msg: "dropped", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, buf := newTestHandler(t, slog.LevelInfo)
			slog.New(handler).Log(t.Context(), tt.level, tt.msg)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrettyHandler_LevelVar(t *testing.T) {
	level := &slog.LevelVar{}
	handler, buf := newTestHandler(t, level)
	lg := slog.New(handler)

	lg.Debug("before")
	level.Set(slog.LevelDebug)
	lg.Debug("after")

	assert.Equal(t, "~ after\n", buf.String())
}

func TestPrettyHandler_Attrs(t *testing.T) {
	handler, buf := newTestHandler(t, slog.LevelInfo)

	lg := slog.New(handler.WithAttrs([]slog.Attr{slog.String("session", "cdb-1")}))
	lg.Info("collected", "records", 3)
	lg.WithGroup("report").Info("skipped", "path", "cmd.9")
	lg.Info("grouped", slog.Group("stats", slog.Int("dropped", 2), slog.Group("dedup", slog.Int("skipped", 1))))
	lg.Info("empty", slog.String("value", ""))

	g := goldie.New(t)
	g.Assert(t, "handler_attrs", buf.Bytes())
}

func TestPrettyHandler_WithGroup_EmptyName(t *testing.T) {
	handler, _ := newTestHandler(t, slog.LevelInfo)
	assert.Same(t, handler, handler.WithGroup(""))
}

func TestPrettyHandler_Enabled(t *testing.T) {
	handler, _ := newTestHandler(t, slog.LevelWarn)

	assert.False(t, handler.Enabled(t.Context(), slog.LevelInfo))
	assert.True(t, handler.Enabled(t.Context(), slog.LevelWarn))
	assert.True(t, handler.Enabled(t.Context(), slog.LevelError))
}

func TestPrettyHandler_NilWriter(t *testing.T) {
	require.NotPanics(t, func() {
		_ = logger.NewPrettyHandler(nil, nil)
	})
}

func TestPrettyHandler_Handle_ReturnsError(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	handler := logger.NewPrettyHandler(&brokenWriter{}, nil)
	require.NotPanics(t, func() {
		slog.New(handler).Info("this will fail to write")
	})
}

// brokenWriter simulates a writer that always returns an error.
type brokenWriter struct{}

func (bw *brokenWriter) Write([]byte) (int, error) {
	return 0, assert.AnError
}
