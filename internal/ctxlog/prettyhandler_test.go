// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("write failed")
}

func newTestRecord(level slog.Level, msg string, attrs ...slog.Attr) slog.Record {
	r := slog.NewRecord(time.Date(2025, 1, 2, 3, 4, 5, 6_000_000, time.UTC), level, msg, 0)
	r.AddAttrs(attrs...)

	return r
}

func TestPrettyHandler_Handle(t *testing.T) {
	var buf bytes.Buffer

	h := NewPrettyHandler(&slog.HandlerOptions{Level: slog.LevelDebug}, WithDestinationWriter(&buf))

	err := h.Handle(context.Background(), newTestRecord(slog.LevelInfo, "invoked", slog.String("command", "a")))
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "[03:04:05.006] INFO: invoked {"), out)
	assert.Contains(t, out, `"command": "a"`)
	assert.True(t, strings.HasSuffix(out, "}\n"))
}

func TestPrettyHandler_NoAttrs(t *testing.T) {
	tests := []struct {
		name     string
		opts     []Option
		expected string
	}{
		{
			name:     "attrs omitted",
			expected: "[03:04:05.006] WARN: bare\n",
		},
		{
			name:     "empty attrs written",
			opts:     []Option{WithOutputEmptyAttrs()},
			expected: "[03:04:05.006] WARN: bare {}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			opts := append([]Option{WithDestinationWriter(&buf)}, tt.opts...)
			h := NewPrettyHandler(nil, opts...)

			require.NoError(t, h.Handle(context.Background(), newTestRecord(slog.LevelWarn, "bare")))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestPrettyHandler_Enabled(t *testing.T) {
	h := NewPrettyHandler(&slog.HandlerOptions{Level: slog.LevelInfo})

	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
}

func TestPrettyHandler_WithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(NewPrettyHandler(nil, WithDestinationWriter(&buf)))
	logger.With("runner", "serial").WithGroup("cmd").Info("done", "name", "b")

	out := buf.String()
	assert.Contains(t, out, `"runner": "serial"`)
	assert.Contains(t, out, `"cmd": {`)
	assert.Contains(t, out, `"name": "b"`)
}

func TestPrettyHandler_ReplaceAttr(t *testing.T) {
	var buf bytes.Buffer

	dropTime := func(_ []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey {
			return slog.Attr{}
		}

		return a
	}

	h := NewPrettyHandler(&slog.HandlerOptions{ReplaceAttr: dropTime}, WithDestinationWriter(&buf))
	require.NoError(t, h.Handle(context.Background(), newTestRecord(slog.LevelError, "boom")))

	assert.Equal(t, "ERROR: boom\n", buf.String())
}

func TestPrettyHandler_WriteError(t *testing.T) {
	h := NewPrettyHandler(nil, WithDestinationWriter(failingWriter{}))

	err := h.Handle(context.Background(), newTestRecord(slog.LevelInfo, "lost"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIoWrite)
}

func TestSuppressDefaults(t *testing.T) {
	f := suppressDefaults(nil)

	for _, key := range []string{slog.TimeKey, slog.LevelKey, slog.MessageKey} {
		assert.True(t, f(nil, slog.String(key, "x")).Equal(slog.Attr{}), key)
	}

	kept := slog.String("other", "x")
	assert.True(t, f(nil, kept).Equal(kept))
	assert.True(t, f([]string{"grp"}, slog.String(slog.MessageKey, "x")).Equal(slog.String(slog.MessageKey, "x")))
}

func TestLevelColour(t *testing.T) {
	assert.NotEqual(t, levelColour(slog.LevelInfo), levelColour(slog.LevelError))
	assert.Equal(t, levelColour(slog.LevelWarn), levelColour(slog.LevelWarn+1))
}
