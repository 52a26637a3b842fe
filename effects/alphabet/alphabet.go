// Package alphabet steps through the alphabet one large letter at a time,
// colored by group.
package alphabet

import (
	"image/color"
	"time"

	"unicorn/core/effect"
	"unicorn/core/gfx"
	"unicorn/hal"
)

const (
	letterDelay = 750 * time.Millisecond
	groupDelay  = 1250 * time.Millisecond
	scale       = 2
	top         = 8
)

type group struct {
	letters string
	color   color.RGBA
}

var groups = []group{
	{"ABCDEFG", color.RGBA{R: 255, A: 255}},
	{"HIJKLMNOP", color.RGBA{R: 255, G: 165, A: 255}},
	{"QRS", color.RGBA{G: 255, A: 255}},
	{"TUV", color.RGBA{B: 255, A: 255}},
	{"WX", color.RGBA{R: 75, B: 130, A: 255}},
	{"Y", color.RGBA{R: 238, G: 130, B: 238, A: 255}},
	{"Z", color.RGBA{R: 255, G: 255, A: 255}},
}

var cycle = func() time.Duration {
	var d time.Duration
	for _, g := range groups {
		d += time.Duration(len(g.letters))*letterDelay + groupDelay
	}
	return d
}()

// Sequence is the alphabet effect.
type Sequence struct {
	canvas gfx.Canvas
	clock  hal.Clock
	start  time.Time
}

func New(env effect.Env) effect.Effect {
	return &Sequence{canvas: env.Canvas, clock: env.Clock}
}

// Register binds the effect to effect.AlphabetSequence.
func Register(r *effect.Registry) {
	r.Register(effect.AlphabetSequence, New)
}

func (s *Sequence) Init() error {
	s.start = s.clock.Now()
	return nil
}

// LetterAt returns the letter shown after elapsed time. During the pause
// after a group its last letter stays up.
func LetterAt(elapsed time.Duration) (string, color.RGBA) {
	t := elapsed % cycle
	for _, g := range groups {
		span := time.Duration(len(g.letters)) * letterDelay
		if t < span+groupDelay {
			i := int(t / letterDelay)
			if i >= len(g.letters) {
				i = len(g.letters) - 1
			}
			return g.letters[i : i+1], g.color
		}
		t -= span + groupDelay
	}
	last := groups[len(groups)-1]
	return last.letters, last.color
}

func (s *Sequence) Draw() error {
	letter, c := LetterAt(s.clock.Now().Sub(s.start))
	w, _ := s.canvas.Size()

	s.canvas.SetFont(gfx.Large)
	s.canvas.SetPen(color.RGBA{A: 255})
	s.canvas.Clear()
	s.canvas.SetPen(c)
	x := (w - s.canvas.MeasureText(letter, scale)) / 2
	s.canvas.Text(letter, x, top, 0, scale)
	return nil
}
