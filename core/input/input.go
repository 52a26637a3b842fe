// Package input turns raw switch reads into one snapshot per tick.
package input

import (
	"log/slog"

	"unicorn/hal"
)

// Button is one of the four menu switches, or None.
type Button int8

const (
	None Button = iota - 1
	A
	B
	C
	D
)

func (b Button) String() string {
	switch b {
	case A:
		return "A"
	case B:
		return "B"
	case C:
		return "C"
	case D:
		return "D"
	default:
		return "none"
	}
}

// Index returns the menu row the button selects, or -1 for None.
func (b Button) Index() int { return int(b) }

// Snapshot is the state of the panel for a single tick.
type Snapshot struct {
	// Pressed is the lowest held menu switch (A beats B beats C beats D).
	Pressed        Button
	BrightnessUp   bool
	BrightnessDown bool
	// SleepToggled is true only on the tick the sleep switch goes down.
	SleepToggled bool
}

// Any reports whether a menu switch is held.
func (s Snapshot) Any() bool { return s.Pressed != None }

var menuButtons = [...]hal.Button{hal.ButtonA, hal.ButtonB, hal.ButtonC, hal.ButtonD}

// Poller samples hal.Buttons. A failed read counts as "not pressed".
type Poller struct {
	buttons   hal.Buttons
	log       *slog.Logger
	lastSleep bool
	faulted   bool
}

func NewPoller(buttons hal.Buttons, log *slog.Logger) *Poller {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Poller{buttons: buttons, log: log}
}

// Poll reads every switch once.
func (p *Poller) Poll() Snapshot {
	s := Snapshot{Pressed: None}
	failed := false
	read := func(b hal.Button) bool {
		if p.buttons == nil {
			return false
		}
		held, err := p.buttons.Pressed(b)
		if err != nil {
			if !failed && !p.faulted {
				p.log.Warn("button read failed; treating as released", "button", b.String(), "err", err)
			}
			failed = true
			return false
		}
		return held
	}

	for i, b := range menuButtons {
		if read(b) && s.Pressed == None {
			s.Pressed = Button(i)
		}
	}
	s.BrightnessUp = read(hal.ButtonBrightnessUp)
	s.BrightnessDown = read(hal.ButtonBrightnessDown)

	sleep := read(hal.ButtonSleep)
	s.SleepToggled = sleep && !p.lastSleep
	p.lastSleep = sleep

	if p.faulted && !failed {
		p.log.Info("button reads recovered")
	}
	p.faulted = failed
	return s
}

// Reset forgets the previous sleep switch state.
func (p *Poller) Reset() {
	p.lastSleep = false
}
