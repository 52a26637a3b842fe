//go:build tinygo && !baremetal

package hal

import "time"

type tinyGoHostHAL struct {
	logger *tinyGoHostLogger
	fb     *memFramebuffer
}

// New returns a TinyGo-on-host HAL implementation.
//
// This is used by `tinygo run` targets like linux/wasm where there is no MCU
// pin mapping, so every switch reads as unwired.
func New() HAL {
	return &tinyGoHostHAL{
		logger: &tinyGoHostLogger{},
		fb:     newMemFramebuffer(32, 32, nil),
	}
}

func (h *tinyGoHostHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHostHAL) Display() Display { return memDisplay{fb: h.fb} }
func (h *tinyGoHostHAL) Buttons() Buttons { return tinyGoHostButtons{} }
func (h *tinyGoHostHAL) Clock() Clock     { return tinyGoHostClock{} }

type tinyGoHostButtons struct{}

func (tinyGoHostButtons) Pressed(Button) (bool, error) { return false, ErrNotImplemented }

type tinyGoHostClock struct{}

func (tinyGoHostClock) Now() time.Time        { return time.Now() }
func (tinyGoHostClock) Sleep(d time.Duration) { time.Sleep(d) }

type tinyGoHostLogger struct{}

func (l *tinyGoHostLogger) WriteLineString(s string) {
	println(s)
}

func (l *tinyGoHostLogger) WriteLineBytes(b []byte) {
	println(string(b))
}
