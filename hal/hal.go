package hal

import (
	"errors"
	"time"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// Display provides access to the framebuffer and the panel brightness.
//
// Brightness is applied at scan-out, the buffer always holds full-intensity
// pixels.
type Display interface {
	Framebuffer() Framebuffer
	SetBrightness(level float64)
}

// Button identifies one of the physical switches on the panel.
type Button uint8

const (
	ButtonA Button = iota
	ButtonB
	ButtonC
	ButtonD
	ButtonBrightnessUp
	ButtonBrightnessDown
	ButtonSleep

	ButtonCount = int(ButtonSleep) + 1
)

func (b Button) String() string {
	switch b {
	case ButtonA:
		return "A"
	case ButtonB:
		return "B"
	case ButtonC:
		return "C"
	case ButtonD:
		return "D"
	case ButtonBrightnessUp:
		return "LUX+"
	case ButtonBrightnessDown:
		return "LUX-"
	case ButtonSleep:
		return "SLEEP"
	default:
		return "?"
	}
}

// Buttons reports the raw (undebounced) state of the panel switches.
type Buttons interface {
	Pressed(b Button) (bool, error)
}

// Clock is the only time source the core uses.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// HAL provides the only contact point between the core and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Buttons() Buttons
	Clock() Clock
}
