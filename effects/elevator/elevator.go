// Package elevator simulates a lift climbing to the top floor.
package elevator

import (
	"fmt"
	"image/color"
	"log/slog"
	"strconv"
	"time"

	"unicorn/core/effect"
	"unicorn/core/gfx"
	"unicorn/hal"
)

const (
	topFloor   = 5
	floorTime  = 2 * time.Second
	digitDelay = 50 * time.Millisecond
	digitX     = 5
	digitY     = 10
	digitScale = 2
)

var (
	message = color.RGBA{R: 255, A: 255}
	outline = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	black   = color.RGBA{A: 255}
)

// Lift is the elevator effect.
type Lift struct {
	canvas gfx.Canvas
	clock  hal.Clock
	log    *slog.Logger

	floor  int
	target int
	moved  time.Time
}

func New(env effect.Env) effect.Effect {
	return &Lift{canvas: env.Canvas, clock: env.Clock, log: env.Logger()}
}

// Register binds the effect to effect.Elevator.
func Register(r *effect.Registry) {
	r.Register(effect.Elevator, New)
}

func (l *Lift) Init() error {
	l.floor = 0
	l.target = topFloor
	l.moved = l.clock.Now()
	return nil
}

// Floor is the floor currently shown.
func (l *Lift) Floor() int { return l.floor }

// Moving reports whether the lift has not reached its target.
func (l *Lift) Moving() bool { return l.floor != l.target }

func (l *Lift) Draw() error {
	now := l.clock.Now()
	if l.floor < l.target && now.Sub(l.moved) > floorTime {
		l.floor++
		l.moved = now
		if l.floor == l.target {
			l.log.Info("lift arrived", "floor", l.floor)
		} else {
			l.log.Debug("lift passing", "floor", l.floor)
		}
	}
	if l.floor < 0 || l.floor > topFloor {
		return fmt.Errorf("floor %d out of range", l.floor)
	}

	w, h := l.canvas.Size()
	l.canvas.SetPen(black)
	l.canvas.Clear()
	l.canvas.SetPen(outline)
	l.canvas.Line(0, 0, w-1, 0)
	l.canvas.Line(w-1, 0, w-1, h-1)
	l.canvas.Line(w-1, h-1, 0, h-1)
	l.canvas.Line(0, h-1, 0, 0)

	l.canvas.SetPen(message)
	if now.Sub(l.moved) > digitDelay {
		l.canvas.SetFont(gfx.Large)
		l.canvas.Text(strconv.Itoa(l.floor), digitX, digitY, 0, digitScale)
	}
	if l.floor < l.target {
		l.canvas.Triangle(22, 10, 16, 20, 28, 20)
	}
	return nil
}
