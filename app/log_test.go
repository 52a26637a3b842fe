package app

import (
	"log/slog"
	"strings"
	"testing"

	"unicorn/internal/haltest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerOneLinePerRecord(t *testing.T) {
	l := &haltest.Logger{}
	log := NewLogger(l, slog.LevelInfo)

	log.Info("effect started", "effect", "stars")
	log.Debug("hidden")
	log.Warn("effect failed", "err", "boom")

	lines := l.Lines()
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "msg=\"effect started\" effect=stars")
	assert.Contains(t, lines[1], "level=WARN")
	for _, line := range lines {
		assert.False(t, strings.HasSuffix(line, "\n"))
	}
}

func TestNewLoggerNilSink(t *testing.T) {
	assert.NotPanics(t, func() {
		NewLogger(nil, slog.LevelDebug).Info("dropped")
	})
}
