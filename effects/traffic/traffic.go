// Package traffic shows a three-lamp traffic light cycling red, yellow, green.
package traffic

import (
	"image/color"
	"time"

	"unicorn/core/effect"
	"unicorn/core/gfx"
	"unicorn/hal"
)

const (
	radius    = 4
	spacing   = 2
	bodyW     = radius*2 + 5
	bodyH     = 3*radius*2 + 2*spacing + 4
	lampCount = 3
)

var (
	durations = [lampCount]time.Duration{4 * time.Second, 4 * time.Second, 2 * time.Second}
	lamps     = [lampCount]color.RGBA{
		{R: 255, A: 255},
		{R: 255, G: 200, A: 255},
		{G: 255, A: 255},
	}
	unlit = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	body  = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	black = color.RGBA{A: 255}
)

// Light is the traffic light effect.
type Light struct {
	canvas gfx.Canvas
	clock  hal.Clock
	start  time.Time
}

func New(env effect.Env) effect.Effect {
	return &Light{canvas: env.Canvas, clock: env.Clock}
}

// Register binds the effect to effect.TrafficLights.
func Register(r *effect.Registry) {
	r.Register(effect.TrafficLights, New)
}

func (l *Light) Init() error {
	l.start = l.clock.Now()
	l.canvas.SetPen(black)
	l.canvas.Clear()
	return nil
}

// Lit returns the lamp that is on after elapsed time.
func Lit(elapsed time.Duration) int {
	var cycle time.Duration
	for _, d := range durations {
		cycle += d
	}
	t := elapsed % cycle
	for i, d := range durations {
		if t < d {
			return i
		}
		t -= d
	}
	return 0
}

func (l *Light) Draw() error {
	w, h := l.canvas.Size()
	x := w / 2
	top := (h - bodyH) / 2
	ys := [lampCount]int{top + radius + 2, top + bodyH/2, top + bodyH - radius - 2}

	l.canvas.SetPen(black)
	l.canvas.Clear()
	l.canvas.SetPen(body)
	l.canvas.Rectangle(x-bodyW/2, top, bodyW, bodyH)

	lit := Lit(l.clock.Now().Sub(l.start))
	for i, y := range ys {
		if i == lit {
			l.canvas.SetPen(lamps[i])
		} else {
			l.canvas.SetPen(unlit)
		}
		l.canvas.Circle(x, y, radius)
	}
	return nil
}
