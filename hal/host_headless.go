//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

const (
	defaultWindowScale = 16
	defaultPressHold   = 150 * time.Millisecond
)

// RunFunc runs the core against a HAL until ctx is done.
type RunFunc func(ctx context.Context, h HAL) error

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Scale int
}

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	// Duration stops the run after the given wall time (0 = run until ctx is done).
	Duration time.Duration
	// Presses are replayed into the switch pins, relative to start.
	Presses []Press
	// Output receives log lines (default os.Stdout).
	Output io.Writer
}

// Press is one scheduled switch press.
type Press struct {
	At     time.Duration
	Button Button
	Hold   time.Duration
}

// RunHeadless runs the core without opening a window.
//
// Reaching Duration is a clean stop; an outer cancellation is returned as-is.
func RunHeadless(ctx context.Context, run RunFunc, cfg HeadlessConfig) error {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	h := newHostHAL(out)

	runCtx := ctx
	if cfg.Duration > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, cfg.Duration)
		defer cancel()
	}

	for _, p := range cfg.Presses {
		go replayPress(runCtx, h.sw, p)
	}

	err := run(runCtx, h)
	h.logger.WriteLineString(fmt.Sprintf("headless: %d frames presented", h.fb.frameCount()))
	if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
		return nil
	}
	return err
}

func replayPress(ctx context.Context, sw *switchPins, p Press) {
	hold := p.Hold
	if hold <= 0 {
		hold = defaultPressHold
	}
	select {
	case <-ctx.Done():
		return
	case <-time.After(p.At):
	}
	sw.set(p.Button, true)
	defer sw.set(p.Button, false)
	select {
	case <-ctx.Done():
	case <-time.After(hold):
	}
}

// ParsePress parses "<at>=<button>[+<hold>]", e.g. "1.5s=B" or "2s=SLEEP+300ms".
func ParsePress(s string) (Press, error) {
	at, rest, ok := strings.Cut(strings.TrimSpace(s), "=")
	if !ok {
		return Press{}, fmt.Errorf("press %q: want <at>=<button>[+<hold>]", s)
	}
	var p Press
	var err error
	if p.At, err = time.ParseDuration(at); err != nil {
		return Press{}, fmt.Errorf("press %q: %w", s, err)
	}
	name, hold, hasHold := cutLast(rest, "+")
	if !hasHold || !isDuration(hold) {
		name, hold, hasHold = rest, "", false
	}
	if p.Button, err = ParseButton(name); err != nil {
		return Press{}, fmt.Errorf("press %q: %w", s, err)
	}
	if hasHold {
		if p.Hold, err = time.ParseDuration(hold); err != nil {
			return Press{}, fmt.Errorf("press %q: %w", s, err)
		}
	}
	return p, nil
}

// ParseButton accepts the names produced by Button.String, case-insensitively.
func ParseButton(name string) (Button, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for i := 0; i < ButtonCount; i++ {
		if Button(i).String() == name {
			return Button(i), nil
		}
	}
	return 0, fmt.Errorf("unknown button %q", name)
}

func cutLast(s, sep string) (before, after string, found bool) {
	i := strings.LastIndex(s, sep)
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i+len(sep):], true
}

func isDuration(s string) bool {
	_, err := time.ParseDuration(s)
	return err == nil
}

func isShutdown(err error) bool {
	return err == nil || errors.Is(err, context.Canceled)
}
