//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"
)

type tinyGoClock struct{}

func (tinyGoClock) Now() time.Time        { return time.Now() }
func (tinyGoClock) Sleep(d time.Duration) { time.Sleep(d) }

type byteWriter interface {
	WriteByte(c byte) error
}

// serialLogger writes CRLF-terminated lines to the board console.
type serialLogger struct {
	w byteWriter
}

func (l *serialLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.w.WriteByte(s[i])
	}
	l.w.WriteByte('\r')
	l.w.WriteByte('\n')
}

func (l *serialLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.w.WriteByte(b[i])
	}
	l.w.WriteByte('\r')
	l.w.WriteByte('\n')
}

// machinePin adapts an MCU pin to GPIOPin.
type machinePin struct {
	pin machine.Pin
}

func newMachinePin(pin machine.Pin) *machinePin {
	return &machinePin{pin: pin}
}

func (p *machinePin) Caps() GPIOCaps { return GPIOCapInput | GPIOCapPullUp }

func (p *machinePin) ConfigureInput(pull GPIOPull) error {
	mode := machine.PinInput
	if pull == GPIOPullUp {
		mode = machine.PinInputPullup
	}
	p.pin.Configure(machine.PinConfig{Mode: mode})
	return nil
}

func (p *machinePin) Read() (bool, error) { return p.pin.Get(), nil }
