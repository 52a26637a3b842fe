// Package stars is the bedtime starfield: twinkling stars appear one by one
// while the sky darkens and the bedtime words change.
package stars

import (
	"image/color"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"

	"unicorn/core/effect"
	"unicorn/core/gfx"
	"unicorn/hal"
)

const (
	maxStars      = 10
	introInterval = 5 * time.Second
	minSpacing    = 4
	textTop       = 19
	textLeading   = 6
	placeTries    = 64
)

var (
	sky   = color.RGBA{R: 5, G: 6, B: 25, A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	halo  = color.RGBA{R: 10, G: 10, B: 10, A: 255}
	glow  = grey(255 * 0.1)
)

var words = [...]string{
	"Blue", "Bath",
	"Bright", "Brush",
	"More?", "Jammy",
	"Dark", "Toy",
	"Tricks", "Bed",
	"Heaven", "Book",
	"Late", "Pray",
	"Fancy", "Kiss",
	"Count", "Night",
	"Sheep", "Sleep",
}

func grey(v float64) color.RGBA {
	c := uint8(math.Max(0, math.Min(255, v)))
	return color.RGBA{R: c, G: c, B: c, A: 255}
}

type star struct {
	x, y     int
	period   time.Duration
	start    time.Time
	vertical bool
}

func (s *star) draw(c gfx.Canvas, now time.Time) {
	t := now.Sub(s.start)
	if t < s.period/10 {
		return
	}
	phase := float64(t) / float64(s.period)
	intensity := math.Max(0, math.Min(0.2, 0.1+0.1*math.Sin(2*math.Pi*phase)))

	c.SetPen(white)
	c.Pixel(s.x, s.y)
	c.SetPen(halo)
	c.Pixel(s.x+1, s.y-1)
	c.Pixel(s.x+1, s.y+1)
	c.Pixel(s.x-1, s.y-1)
	c.Pixel(s.x-1, s.y+1)
	c.SetPen(glow)
	c.Pixel(s.x, s.y-1)
	c.Pixel(s.x, s.y+1)
	c.Pixel(s.x-1, s.y)
	c.Pixel(s.x+1, s.y)

	c.SetPen(grey(255 * intensity))
	if s.vertical {
		c.Pixel(s.x, s.y-1)
		c.Pixel(s.x, s.y+1)
	} else {
		c.Pixel(s.x-1, s.y)
		c.Pixel(s.x+1, s.y)
	}

	if t >= s.period {
		s.start = now
		s.vertical = !s.vertical
	}
}

// Field is the starfield effect.
type Field struct {
	canvas gfx.Canvas
	clock  hal.Clock
	log    *slog.Logger
	rng    *rand.Rand

	stars []*star
	intro time.Time
	lines []string
}

func New(env effect.Env) effect.Effect {
	return &Field{canvas: env.Canvas, clock: env.Clock, log: env.Logger()}
}

// Register binds the effect to effect.Stars.
func Register(r *effect.Registry) {
	r.Register(effect.Stars, New)
}

func (f *Field) Init() error {
	now := f.clock.Now()
	seed := uint64(now.UnixNano())
	f.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	f.stars = []*star{{x: 4, y: 4, period: time.Second, start: now}}
	f.intro = now
	f.lines = words[0:2]
	return nil
}

// Count is the number of stars in the sky.
func (f *Field) Count() int { return len(f.stars) }

// Lines are the words currently shown.
func (f *Field) Lines() []string { return f.lines }

func (f *Field) Draw() error {
	now := f.clock.Now()
	n := len(f.stars)

	dark := 1 - float64(n)/maxStars
	f.canvas.SetPen(color.RGBA{
		R: uint8(float64(sky.R) * dark),
		G: uint8(float64(sky.G) * dark),
		B: uint8(float64(sky.B) * dark),
		A: 255,
	})
	f.canvas.Clear()
	for _, s := range f.stars {
		s.draw(f.canvas, now)
	}

	if n < maxStars && now.Sub(f.intro) > introInterval {
		f.addStar(now)
	}

	f.canvas.SetFont(gfx.Small)
	f.canvas.SetPen(grey(float64(160 - len(f.stars)*10)))
	for i, line := range f.lines {
		f.canvas.Text(line, 0, textTop+i*textLeading, 0, 1)
	}
	return nil
}

func (f *Field) addStar(now time.Time) {
	n := len(f.stars)
	for try := 0; try < placeTries; try++ {
		x, y := 2+f.rng.IntN(27), 2+f.rng.IntN(15)
		if !f.clear(x, y) {
			continue
		}
		period := time.Duration(5+f.rng.IntN(6)) * 100 * time.Millisecond
		f.stars = append(f.stars, &star{x: x, y: y, period: period, start: now})
		f.lines = words[2*n : 2*n+2]
		f.intro = now
		f.log.Debug("star added", "count", len(f.stars), "x", x, "y", y)
		return
	}
}

func (f *Field) clear(x, y int) bool {
	for _, s := range f.stars {
		if math.Hypot(float64(x-s.x), float64(y-s.y)) <= minSpacing {
			return false
		}
	}
	return true
}
