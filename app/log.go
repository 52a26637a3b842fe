package app

import (
	"bytes"
	"log/slog"

	"unicorn/hal"
)

// NewLogger returns a text slog.Logger that writes one record per line to l.
func NewLogger(l hal.Logger, level slog.Level) *slog.Logger {
	if l == nil {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(lineWriter{l}, &slog.HandlerOptions{Level: level}))
}

type lineWriter struct {
	l hal.Logger
}

func (w lineWriter) Write(p []byte) (int, error) {
	w.l.WriteLineBytes(bytes.TrimRight(p, "\r\n"))
	return len(p), nil
}
