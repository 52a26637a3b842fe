// Package haltest provides a virtual-time board for driving the core in tests.
//
// Every Clock.Sleep is one tick: it advances virtual time by the requested
// duration and bumps the tick counter that button scripts are keyed on.
package haltest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"unicorn/hal"
)

// Script returns the buttons held during the given tick.
type Script func(tick int) []hal.Button

// Board is a hal.HAL whose clock, buttons, framebuffer and logger are virtual.
type Board struct {
	mu sync.Mutex

	tick  int
	now   time.Time
	slept time.Duration
	limit int
	stop  context.CancelFunc

	script  Script
	readErr error

	fb     *Framebuffer
	logger *Logger
}

// NewBoard returns a 32x32 board with nothing pressed.
func NewBoard() *Board {
	return &Board{
		now:    time.Unix(0, 0),
		fb:     NewFramebuffer(32, 32),
		logger: &Logger{},
	}
}

// Limit cancels the returned context once the board has slept n ticks, so
// loops that never return on their own terminate deterministically.
func (b *Board) Limit(parent context.Context, n int) context.Context {
	ctx, cancel := context.WithCancel(parent)
	b.mu.Lock()
	b.limit = n
	b.stop = cancel
	b.mu.Unlock()
	return ctx
}

// Script installs the button schedule.
func (b *Board) Script(s Script) {
	b.mu.Lock()
	b.script = s
	b.mu.Unlock()
}

// FailReads makes every button read return err (nil restores reads).
func (b *Board) FailReads(err error) {
	b.mu.Lock()
	b.readErr = err
	b.mu.Unlock()
}

// Tick returns the number of sleeps so far.
func (b *Board) Tick() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.tick
}

// Slept returns the total virtual time slept.
func (b *Board) Slept() time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.slept
}

func (b *Board) Logger() hal.Logger   { return b.logger }
func (b *Board) Display() hal.Display { return b.fb }
func (b *Board) Buttons() hal.Buttons { return boardButtons{b} }
func (b *Board) Clock() hal.Clock     { return boardClock{b} }

// FB returns the recording framebuffer.
func (b *Board) FB() *Framebuffer { return b.fb }

// Log returns the recording logger.
func (b *Board) Log() *Logger { return b.logger }

type boardClock struct{ b *Board }

func (c boardClock) Now() time.Time {
	c.b.mu.Lock()
	defer c.b.mu.Unlock()
	return c.b.now
}

func (c boardClock) Sleep(d time.Duration) {
	c.b.mu.Lock()
	c.b.tick++
	c.b.now = c.b.now.Add(d)
	c.b.slept += d
	stop := c.b.stop
	hit := c.b.limit > 0 && c.b.tick >= c.b.limit
	c.b.mu.Unlock()
	if hit && stop != nil {
		stop()
	}
}

type boardButtons struct{ b *Board }

func (bb boardButtons) Pressed(btn hal.Button) (bool, error) {
	bb.b.mu.Lock()
	defer bb.b.mu.Unlock()
	if bb.b.readErr != nil {
		return false, bb.b.readErr
	}
	if bb.b.script == nil {
		return false, nil
	}
	for _, held := range bb.b.script(bb.b.tick) {
		if held == btn {
			return true, nil
		}
	}
	return false, nil
}

// Hold holds btn during ticks [from, to).
func Hold(btn hal.Button, from, to int) Script {
	return func(tick int) []hal.Button {
		if tick >= from && tick < to {
			return []hal.Button{btn}
		}
		return nil
	}
}

// Merge combines scripts; a button is held if any script holds it.
func Merge(scripts ...Script) Script {
	return func(tick int) []hal.Button {
		var out []hal.Button
		for _, s := range scripts {
			out = append(out, s(tick)...)
		}
		return out
	}
}

// Logger records every line written.
type Logger struct {
	mu    sync.Mutex
	lines []string
}

func (l *Logger) WriteLineString(s string) {
	l.mu.Lock()
	l.lines = append(l.lines, s)
	l.mu.Unlock()
}

func (l *Logger) WriteLineBytes(b []byte) { l.WriteLineString(string(b)) }

// Lines returns a copy of the recorded lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.lines...)
}

// Contains reports whether any line contains substr.
func (l *Logger) Contains(substr string) bool {
	for _, line := range l.Lines() {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

// Frame is one presented framebuffer with the brightness it was shown at.
type Frame struct {
	Pixels     []byte
	Brightness float64
}

// Framebuffer is an RGB565 buffer that records every Present; it also acts
// as the hal.Display.
type Framebuffer struct {
	w, h   int
	buf    []byte
	level  float64
	frames []Frame
	keep   int
}

// NewFramebuffer returns a w x h framebuffer retaining the last 64 frames.
func NewFramebuffer(w, h int) *Framebuffer {
	return &Framebuffer{w: w, h: h, buf: make([]byte, w*h*2), level: 1, keep: 64}
}

func (f *Framebuffer) Framebuffer() hal.Framebuffer { return f }
func (f *Framebuffer) SetBrightness(level float64)  { f.level = level }
func (f *Framebuffer) Width() int                   { return f.w }
func (f *Framebuffer) Height() int                  { return f.h }
func (f *Framebuffer) Format() hal.PixelFormat      { return hal.PixelFormatRGB565 }
func (f *Framebuffer) StrideBytes() int             { return f.w * 2 }
func (f *Framebuffer) Buffer() []byte               { return f.buf }

func (f *Framebuffer) ClearRGB(r, g, b uint8) {
	p := hal.RGB565(r, g, b)
	for i := 0; i+1 < len(f.buf); i += 2 {
		f.buf[i] = byte(p)
		f.buf[i+1] = byte(p >> 8)
	}
}

func (f *Framebuffer) Present() error {
	f.frames = append(f.frames, Frame{Pixels: append([]byte(nil), f.buf...), Brightness: f.level})
	if len(f.frames) > f.keep {
		f.frames = f.frames[len(f.frames)-f.keep:]
	}
	return nil
}

// Frames returns the retained presented frames, oldest first.
func (f *Framebuffer) Frames() []Frame { return f.frames }

// Last returns the most recent presented frame.
func (f *Framebuffer) Last() (Frame, bool) {
	if len(f.frames) == 0 {
		return Frame{}, false
	}
	return f.frames[len(f.frames)-1], true
}

// Pixel returns the RGB888 color at (x, y) of the working buffer.
func (f *Framebuffer) Pixel(x, y int) (r, g, b uint8) {
	off := (y*f.w + x) * 2
	return hal.RGB888(uint16(f.buf[off]) | uint16(f.buf[off+1])<<8)
}

// String renders the working buffer as rows of '.' (black) and '#'.
func (f *Framebuffer) String() string {
	var sb strings.Builder
	for y := 0; y < f.h; y++ {
		for x := 0; x < f.w; x++ {
			r, g, b := f.Pixel(x, y)
			if r|g|b == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('#')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// GoString is used by %#v in failure messages.
func (f *Framebuffer) GoString() string {
	return fmt.Sprintf("Framebuffer(%dx%d)\n%s", f.w, f.h, f.String())
}
