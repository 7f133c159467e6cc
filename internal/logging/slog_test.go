package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufLogger() (*SlogLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewSlogLogger(slog.New(slog.NewJSONHandler(buf, nil))), buf
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	return m
}

func TestSlogLogger_Levels(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		log   func(l *SlogLogger)
		level string
	}{
		{"info", func(l *SlogLogger) { l.Info(ctx, "m", "k", "v") }, "INFO"},
		{"warn", func(l *SlogLogger) { l.Warn(ctx, "m") }, "WARN"},
		{"error", func(l *SlogLogger) { l.Error(ctx, "m") }, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := newBufLogger()
			tt.log(l)
			m := decodeLine(t, buf)
			assert.Equal(t, tt.level, m["level"])
			assert.Equal(t, "m", m["msg"])
		})
	}
}

func TestSlogLogger_With(t *testing.T) {
	l, buf := newBufLogger()
	child := l.With("module", "guard")
	child.Info(context.Background(), "decision")

	m := decodeLine(t, buf)
	assert.Equal(t, "guard", m["module"])
}
