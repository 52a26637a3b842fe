// Package effect defines the animation capability and how effects are found.
package effect

import (
	"errors"
	"fmt"
	"log/slog"

	"unicorn/core/gfx"
	"unicorn/hal"
)

// Effect is a pluggable animation. Init is called once before the first
// Draw; Draw renders one frame into the canvas without flushing it.
type Effect interface {
	Init() error
	Draw() error
}

// Env is what an effect is built with.
type Env struct {
	Canvas gfx.Canvas
	Clock  hal.Clock
	Log    *slog.Logger
}

// Logger returns Log, or a logger that drops everything.
func (e Env) Logger() *slog.Logger {
	if e.Log == nil {
		return slog.New(slog.DiscardHandler)
	}
	return e.Log
}

// Factory builds a fresh effect for one run.
type Factory func(Env) Effect

// ID names an effect. The zero value is None: an option with nothing behind it.
type ID uint8

const (
	None ID = iota
	Elevator
	AlphabetSequence
	TrafficLights
	Rainbow
	Fire
	Stars
	Supercomputer
)

var idNames = [...]string{
	None:             "none",
	Elevator:         "elevator",
	AlphabetSequence: "alphabet_sequence",
	TrafficLights:    "traffic_lights",
	Rainbow:          "rainbow",
	Fire:             "fire",
	Stars:            "stars",
	Supercomputer:    "supercomputer",
}

func (id ID) String() string {
	if int(id) < len(idNames) {
		return idNames[id]
	}
	return fmt.Sprintf("effect(%d)", uint8(id))
}

// ResolutionError reports an ID with no registered factory, or a factory
// that failed to build its effect.
type ResolutionError struct {
	ID  ID
	Err error
}

func (e *ResolutionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("effect '%s' failed to load: %v", e.ID, e.Err)
	}
	return fmt.Sprintf("no effect named '%s'", e.ID)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// Phase is the lifecycle call an effect failed in.
type Phase string

const (
	PhaseInit Phase = "init"
	PhaseDraw Phase = "draw"
)

// FaultError wraps a failure raised by an effect.
type FaultError struct {
	ID    ID
	Phase Phase
	Err   error
}

func (e *FaultError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.ID, e.Phase, e.Err)
}

func (e *FaultError) Unwrap() error { return e.Err }

// Message is the short text shown on the diagnostic screen.
func Message(err error) string {
	var fe *FaultError
	if errors.As(err, &fe) {
		return fe.Err.Error()
	}
	return err.Error()
}
