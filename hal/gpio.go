package hal

import (
	"fmt"
	"sync"
)

// GPIOPull selects the pull resistor configuration of an input.
type GPIOPull uint8

const (
	GPIOPullNone GPIOPull = iota
	GPIOPullUp
)

// GPIOCaps declares what a pin supports.
type GPIOCaps uint8

const (
	GPIOCapInput GPIOCaps = 1 << iota
	GPIOCapPullUp
)

// GPIOPin is a single digital input pin.
type GPIOPin interface {
	Caps() GPIOCaps
	ConfigureInput(pull GPIOPull) error
	Read() (level bool, err error)
}

// ButtonPin binds a switch to the pin it is wired to.
type ButtonPin struct {
	Button    Button
	Pin       GPIOPin
	ActiveLow bool
}

type pinButtons struct {
	pins [ButtonCount]ButtonPin
}

// NewPinButtons configures the pins as inputs and returns a Buttons reading them.
//
// Active-low switches get the internal pull-up when the pin offers one.
// Buttons without a pin report ErrNotImplemented.
func NewPinButtons(pins []ButtonPin) (Buttons, error) {
	b := &pinButtons{}
	for _, bp := range pins {
		if int(bp.Button) >= ButtonCount {
			return nil, fmt.Errorf("buttons: invalid button %d", bp.Button)
		}
		if bp.Pin == nil {
			continue
		}
		pull := GPIOPullNone
		if bp.ActiveLow && bp.Pin.Caps()&GPIOCapPullUp != 0 {
			pull = GPIOPullUp
		}
		if err := bp.Pin.ConfigureInput(pull); err != nil {
			return nil, fmt.Errorf("buttons: %s: %w", bp.Button, err)
		}
		b.pins[bp.Button] = bp
	}
	return b, nil
}

func (b *pinButtons) Pressed(btn Button) (bool, error) {
	if int(btn) >= ButtonCount {
		return false, ErrNotImplemented
	}
	bp := b.pins[btn]
	if bp.Pin == nil {
		return false, ErrNotImplemented
	}
	level, err := bp.Pin.Read()
	if err != nil {
		return false, err
	}
	return level != bp.ActiveLow, nil
}

// virtualPin is an input pin whose level is driven from software
// (keyboard, press schedules, tests).
type virtualPin struct {
	mu     sync.Mutex
	name   string
	caps   GPIOCaps
	pull   GPIOPull
	level  bool
	driven bool
}

func newVirtualPin(name string, caps GPIOCaps) *virtualPin {
	return &virtualPin{name: name, caps: caps}
}

func (p *virtualPin) Caps() GPIOCaps { return p.caps }

func (p *virtualPin) ConfigureInput(pull GPIOPull) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.caps&GPIOCapInput == 0 {
		return fmt.Errorf("gpio: pin %s: input unsupported", p.name)
	}
	switch pull {
	case GPIOPullNone:
	case GPIOPullUp:
		if p.caps&GPIOCapPullUp == 0 {
			return fmt.Errorf("gpio: pin %s: pull-up unsupported", p.name)
		}
	default:
		return fmt.Errorf("gpio: pin %s: invalid pull", p.name)
	}
	p.pull = pull
	return nil
}

func (p *virtualPin) Read() (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.driven {
		return p.pull == GPIOPullUp, nil
	}
	return p.level, nil
}

// drive forces the input level, as an external switch would.
func (p *virtualPin) drive(level bool) {
	p.mu.Lock()
	p.level = level
	p.driven = true
	p.mu.Unlock()
}

// release lets the pull resistor define the level again.
func (p *virtualPin) release() {
	p.mu.Lock()
	p.driven = false
	p.mu.Unlock()
}

// switchPins is a set of active-low virtual switches, one per Button.
type switchPins [ButtonCount]*virtualPin

func newSwitchPins() *switchPins {
	var s switchPins
	for i := range s {
		s[i] = newVirtualPin("SW_"+Button(i).String(), GPIOCapInput|GPIOCapPullUp)
	}
	return &s
}

func (s *switchPins) buttonPins() []ButtonPin {
	out := make([]ButtonPin, 0, len(s))
	for i, p := range s {
		out = append(out, ButtonPin{Button: Button(i), Pin: p, ActiveLow: true})
	}
	return out
}

// set presses (pulls low) or releases a switch.
func (s *switchPins) set(b Button, pressed bool) {
	if int(b) >= len(s) {
		return
	}
	if pressed {
		s[b].drive(false)
	} else {
		s[b].release()
	}
}
