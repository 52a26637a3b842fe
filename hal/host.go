//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

const (
	hostPanelWidth  = 32
	hostPanelHeight = 32
)

type hostHAL struct {
	logger  *hostLogger
	fb      *hostFramebuffer
	sw      *switchPins
	buttons Buttons
	clock   hostClock
}

// New returns a host HAL implementation.
func New() HAL {
	return newHostHAL(os.Stdout)
}

func newHostHAL(w io.Writer) *hostHAL {
	sw := newSwitchPins()
	buttons, err := NewPinButtons(sw.buttonPins())
	if err != nil {
		// Virtual switch pins always accept input + pull-up.
		panic(fmt.Sprintf("hal: host buttons: %v", err))
	}
	return &hostHAL{
		logger:  &hostLogger{w: w},
		fb:      newHostFramebuffer(hostPanelWidth, hostPanelHeight),
		sw:      sw,
		buttons: buttons,
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Buttons() Buttons { return h.buttons }
func (h *hostHAL) Clock() Clock     { return h.clock }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer    { return d.fb }
func (d hostDisplay) SetBrightness(level float64) { d.fb.setBrightness(level) }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
