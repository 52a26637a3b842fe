// Package supervisor is the fault boundary around effect runs.
package supervisor

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"unicorn/core/brightness"
	"unicorn/core/effect"
	"unicorn/core/gfx"
	"unicorn/core/runner"
	"unicorn/hal"
)

// Outcome is how a supervised run ended.
type Outcome uint8

const (
	// Reset means a menu switch stopped the effect.
	Reset Outcome = iota
	// Recovered means the effect failed and the diagnostic has been shown.
	Recovered
)

func (o Outcome) String() string {
	if o == Recovered {
		return "recovered"
	}
	return "reset"
}

// Supervisor resolves effect IDs, runs them on a runner.Host and contains
// their failures.
type Supervisor struct {
	registry *effect.Registry
	host     *runner.Host
	screen   gfx.Screen
	bright   *brightness.Controller
	clock    hal.Clock
	dwell    time.Duration
	log      *slog.Logger
}

func New(registry *effect.Registry, host *runner.Host, screen gfx.Screen, bright *brightness.Controller, clock hal.Clock, dwell time.Duration, log *slog.Logger) *Supervisor {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Supervisor{
		registry: registry,
		host:     host,
		screen:   screen,
		bright:   bright,
		clock:    clock,
		dwell:    dwell,
		log:      log,
	}
}

// Supervise runs the effect bound to id until it is reset or fails.
//
// Resolution failures and effect faults are shown on the diagnostic screen
// for the dwell time and reported as Recovered. Only ctx errors and display
// failures are returned.
func (s *Supervisor) Supervise(ctx context.Context, id effect.ID) (Outcome, error) {
	e, err := s.registry.Resolve(id, effect.Env{
		Canvas: s.screen,
		Clock:  s.clock,
		Log:    s.log.With("effect", id.String()),
	})
	if err == nil {
		err = s.host.Run(ctx, id, e)
		if errors.Is(err, runner.ErrReset) {
			return Reset, nil
		}
	}

	var re *effect.ResolutionError
	var fe *effect.FaultError
	if !errors.As(err, &re) && !errors.As(err, &fe) {
		return Reset, err
	}

	s.log.Warn("effect failed", "effect", id.String(), "err", err)
	if derr := Diagnose(s.screen, effect.Message(err), s.bright.Level()); derr != nil {
		return Recovered, derr
	}
	s.clock.Sleep(s.dwell)
	s.host.Reset()
	return Recovered, ctx.Err()
}
