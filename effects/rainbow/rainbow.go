// Package rainbow builds a rainbow one band at a time, then shows it whole
// with a black heart in the middle.
package rainbow

import (
	"image/color"
	"time"

	"unicorn/core/effect"
	"unicorn/core/gfx"
	"unicorn/hal"
)

const (
	bandInterval = 2500 * time.Millisecond
	fullDuration = 10 * time.Second
	waitDuration = time.Second
	padding      = 2
	bandRows     = 4
	heartSize    = 3
)

var bands = []color.RGBA{
	{R: 255, A: 255},
	{R: 255, G: 165, A: 255},
	{R: 255, G: 255, A: 255},
	{G: 255, A: 255},
	{B: 255, A: 255},
	{R: 75, B: 130, A: 255},
	{R: 238, G: 130, B: 238, A: 255},
}

var black = color.RGBA{A: 255}

// heart rows, bit 6 is the leftmost column.
var heart = [...]uint8{
	0b0110110,
	0b1111111,
	0b1111111,
	0b1111111,
	0b0111110,
	0b0011100,
	0b0001000,
}

var (
	buildDuration = time.Duration(len(bands)) * bandInterval
	cycle         = buildDuration + fullDuration + waitDuration
)

// Rainbow is the rainbow effect.
type Rainbow struct {
	canvas gfx.Canvas
	clock  hal.Clock
	start  time.Time
}

func New(env effect.Env) effect.Effect {
	return &Rainbow{canvas: env.Canvas, clock: env.Clock}
}

// Register binds the effect to effect.Rainbow.
func Register(r *effect.Registry) {
	r.Register(effect.Rainbow, New)
}

func (r *Rainbow) Init() error {
	r.start = r.clock.Now()
	r.canvas.SetPen(black)
	r.canvas.Clear()
	return nil
}

// Band returns the single band shown after elapsed time, or -1 once the
// whole rainbow is up.
func Band(elapsed time.Duration) int {
	t := elapsed % cycle
	if t >= buildDuration {
		return -1
	}
	return int(t / bandInterval)
}

func (r *Rainbow) Draw() error {
	w, h := r.canvas.Size()
	r.canvas.SetPen(black)
	r.canvas.Clear()

	band := Band(r.clock.Now().Sub(r.start))
	if band >= 0 {
		r.canvas.SetPen(bands[band])
		r.canvas.Rectangle(0, padding+band*bandRows, w, bandRows)
		return nil
	}

	for i, c := range bands {
		y := padding + i*bandRows
		if y+bandRows > h-padding {
			break
		}
		r.canvas.SetPen(c)
		r.canvas.Rectangle(0, y, w, bandRows)
	}
	r.canvas.SetPen(black)
	x0, y0 := w/2-heartSize, h/2-heartSize
	for dy, row := range heart {
		for dx := 0; dx < 7; dx++ {
			if row&(1<<(6-dx)) != 0 {
				r.canvas.Pixel(x0+dx, y0+dy)
			}
		}
	}
	return nil
}
