// Package menu renders the two-level option menu and resolves a selection
// from the menu switches.
package menu

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"unicorn/core/brightness"
	"unicorn/core/gfx"
	"unicorn/core/input"
	"unicorn/hal"
)

// Layout in panel pixels.
const (
	rowTop     = 0
	rowSpacing = 8
	markerX    = 1
	markerDY   = 3
	markerR    = 1
	labelX     = 4
)

// Palette colors option rows by index mod 4.
var Palette = [4]color.RGBA{
	{R: 255, A: 255},
	{G: 255, A: 255},
	{G: 128, B: 255, A: 255},
	{R: 255, G: 200, A: 255},
}

var background = color.RGBA{A: 255}

// RowColor is the marker and label color of row i.
func RowColor(i int) color.RGBA {
	return Palette[i%len(Palette)]
}

type Config struct {
	// Tick is the pause between renders while waiting for a press.
	Tick time.Duration
	// ReleasePoll is the pause between reads while waiting for release.
	ReleasePoll time.Duration
}

// Stack owns the screen while a menu is shown.
type Stack struct {
	screen gfx.Screen
	input  *input.Poller
	bright *brightness.Controller
	clock  hal.Clock
	cfg    Config
	log    *slog.Logger

	// disarmed ignores presses until a tick with no menu switch held.
	disarmed bool
}

func NewStack(screen gfx.Screen, in *input.Poller, bright *brightness.Controller, clock hal.Clock, cfg Config, log *slog.Logger) *Stack {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Stack{screen: screen, input: in, bright: bright, clock: clock, cfg: cfg, log: log}
}

// Select shows options until a menu switch with an index below len(options)
// is pressed, waits for every switch to be released and returns that index.
//
// Held brightness switches adjust the level on every tick. After Disarm,
// presses are ignored until every menu switch has been seen released. The
// only error is ctx's, or a failed flush.
func (s *Stack) Select(ctx context.Context, title string, options []string) (int, error) {
	s.log.Debug("menu shown", "title", title, "options", len(options))
	for {
		if err := ctx.Err(); err != nil {
			return -1, err
		}
		s.render(options)
		if err := s.screen.Flush(s.bright.Output()); err != nil {
			return -1, fmt.Errorf("menu %s: %w", title, err)
		}

		snap := s.input.Poll()
		s.bright.Adjust(snap.BrightnessUp, snap.BrightnessDown)

		if s.disarmed && !snap.Any() {
			s.disarmed = false
		}
		if i := snap.Pressed.Index(); !s.disarmed && i >= 0 && i < len(options) {
			if err := s.waitRelease(ctx); err != nil {
				return -1, err
			}
			s.log.Info("menu selected", "title", title, "index", i, "label", options[i])
			return i, nil
		}
		s.clock.Sleep(s.cfg.Tick)
	}
}

// Disarm makes the next Select ignore the switch that is still held from
// leaving an effect.
func (s *Stack) Disarm() { s.disarmed = true }

// waitRelease blocks until no menu switch is held.
func (s *Stack) waitRelease(ctx context.Context) error {
	for s.input.Poll().Any() {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.clock.Sleep(s.cfg.ReleasePoll)
	}
	return nil
}

func (s *Stack) render(options []string) {
	s.screen.SetFont(gfx.Small)
	s.screen.SetPen(background)
	s.screen.Clear()
	for i, label := range options {
		y := rowTop + i*rowSpacing
		s.screen.SetPen(RowColor(i))
		s.screen.Circle(markerX, y+markerDY, markerR)
		s.screen.Text(label, labelX, y, 0, 1)
	}
}
