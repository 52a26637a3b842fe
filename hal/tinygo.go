//go:build tinygo && baremetal

package hal

import "machine"

const (
	panelWidth  = 32
	panelHeight = 32
)

type tinyGoHAL struct {
	logger  *serialLogger
	fb      *memFramebuffer
	buttons Buttons
}

// New returns a Cosmic Unicorn (RP2040, 32x32) HAL implementation.
//
// GP0/GP1 carry switches A and B, so logs go to the default (USB CDC) serial.
// The framebuffer has no flush hook: nothing here drives the panel's PIO
// scan-out, so frames stay in memory.
func New() HAL {
	logger := &serialLogger{w: machine.Serial}

	pin := func(b Button, p machine.Pin) ButtonPin {
		return ButtonPin{Button: b, Pin: newMachinePin(p), ActiveLow: true}
	}
	pins := []ButtonPin{
		pin(ButtonA, machine.GP0),
		pin(ButtonB, machine.GP1),
		pin(ButtonC, machine.GP3),
		pin(ButtonD, machine.GP6),
		pin(ButtonBrightnessUp, machine.GP21),
		pin(ButtonBrightnessDown, machine.GP26),
		pin(ButtonSleep, machine.GP27),
	}
	buttons, err := NewPinButtons(pins)
	if err != nil {
		logger.WriteLineString("hal: buttons: " + err.Error())
		buttons = noButtons{}
	}

	return &tinyGoHAL{
		logger:  logger,
		fb:      newMemFramebuffer(panelWidth, panelHeight, nil),
		buttons: buttons,
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) Display() Display { return memDisplay{fb: h.fb} }
func (h *tinyGoHAL) Buttons() Buttons { return h.buttons }
func (h *tinyGoHAL) Clock() Clock     { return tinyGoClock{} }

type noButtons struct{}

func (noButtons) Pressed(Button) (bool, error) { return false, ErrNotImplemented }
