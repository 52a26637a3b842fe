// Package runner drives one effect at a fixed tick cadence, handling the
// sleep fade, brightness buttons and the exit-to-menu switches.
package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"unicorn/core/brightness"
	"unicorn/core/effect"
	"unicorn/core/gfx"
	"unicorn/core/input"
	"unicorn/hal"
)

// ErrReset is returned by Run when a menu switch ends the effect.
var ErrReset = errors.New("runner: reset to menu")

// State is the host's lifecycle state.
type State uint8

const (
	Idle State = iota
	Running
	Faulted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Faulted:
		return "faulted"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Host runs effects. It owns the screen and the brightness controller only
// for the duration of Run.
type Host struct {
	screen gfx.Screen
	input  *input.Poller
	bright *brightness.Controller
	clock  hal.Clock
	tick   time.Duration
	log    *slog.Logger

	state   State
	current effect.ID
	err     error
}

func New(screen gfx.Screen, in *input.Poller, bright *brightness.Controller, clock hal.Clock, tick time.Duration, log *slog.Logger) *Host {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Host{screen: screen, input: in, bright: bright, clock: clock, tick: tick, log: log}
}

// State returns the current lifecycle state, the effect being run and, when
// Faulted, the fault.
func (h *Host) State() (State, effect.ID, error) {
	return h.state, h.current, h.err
}

// Reset returns a faulted host to Idle.
func (h *Host) Reset() {
	h.state = Idle
	h.current = effect.None
	h.err = nil
}

// Run calls e.Init once and then ticks until a menu switch is pressed
// (ErrReset), the effect fails (*effect.FaultError) or ctx is done.
func (h *Host) Run(ctx context.Context, id effect.ID, e effect.Effect) error {
	h.state = Running
	h.current = id
	h.err = nil
	h.log.Info("effect started", "effect", id.String())

	err := h.loop(ctx, id, e)
	var fe *effect.FaultError
	if errors.As(err, &fe) {
		h.state = Faulted
		h.err = err
		return err
	}
	h.Reset()
	return err
}

func (h *Host) loop(ctx context.Context, id effect.ID, e effect.Effect) error {
	if err := call(id, effect.PhaseInit, e.Init); err != nil {
		return err
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		snap := h.input.Poll()
		if snap.Any() {
			h.log.Info("effect reset", "effect", id.String(), "button", snap.Pressed.String())
			return ErrReset
		}
		if snap.SleepToggled {
			h.bright.ToggleSleep()
			h.log.Info("sleep toggled", "sleeping", h.bright.Sleeping())
		}

		if h.bright.Sleeping() {
			if h.bright.Fade() {
				if err := call(id, effect.PhaseDraw, e.Draw); err != nil {
					return err
				}
			}
			if err := h.screen.Flush(h.bright.Output()); err != nil {
				return fmt.Errorf("flush: %w", err)
			}
		} else {
			if err := call(id, effect.PhaseDraw, e.Draw); err != nil {
				return err
			}
			if err := h.screen.Flush(h.bright.Output()); err != nil {
				return fmt.Errorf("flush: %w", err)
			}
			h.bright.Adjust(snap.BrightnessUp, snap.BrightnessDown)
		}
		h.clock.Sleep(h.tick)
	}
}

// call runs one lifecycle method, turning an error or a panic into a
// *effect.FaultError.
func call(id effect.ID, phase effect.Phase, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &effect.FaultError{ID: id, Phase: phase, Err: fmt.Errorf("panic: %v", r)}
		}
	}()
	if err := fn(); err != nil {
		return &effect.FaultError{ID: id, Phase: phase, Err: err}
	}
	return nil
}
