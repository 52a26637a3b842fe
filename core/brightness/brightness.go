// Package brightness owns the panel brightness and the sleep fade.
package brightness

// State is the brightness as seen by the rest of the system.
type State struct {
	Level    float64
	Sleeping bool
}

// Config holds the default level and per-tick step sizes.
type Config struct {
	Default  float64
	Step     float64
	FadeStep float64
}

// eps absorbs float drift from repeated steps so the level lands exactly on 0 or 1.
const eps = 1e-9

// Controller holds the user level and, while sleeping, the fading output.
//
// Every mutation leaves both values clamped to [0,1].
type Controller struct {
	cfg      Config
	level    float64
	sleeping bool
	fade     float64
}

func New(cfg Config) *Controller {
	c := &Controller{cfg: cfg}
	c.Reset()
	return c
}

// Reset restores the boot state: default level, awake.
func (c *Controller) Reset() {
	c.level = clamp(c.cfg.Default)
	c.sleeping = false
	c.fade = 0
}

// State returns the user level and the sleep flag.
func (c *Controller) State() State {
	return State{Level: c.level, Sleeping: c.sleeping}
}

func (c *Controller) Level() float64 { return c.level }
func (c *Controller) Sleeping() bool { return c.sleeping }

// Output is the brightness to apply to the panel this tick.
func (c *Controller) Output() float64 {
	if c.sleeping {
		return c.fade
	}
	return c.level
}

// Adjust applies one tick of held brightness buttons.
func (c *Controller) Adjust(up, down bool) {
	if up {
		c.level = clamp(c.level + c.cfg.Step)
	}
	if down {
		c.level = clamp(c.level - c.cfg.Step)
	}
}

// ToggleSleep enters or leaves sleep. The fade starts from the current
// output; waking restores the user level at once.
func (c *Controller) ToggleSleep() {
	if c.sleeping {
		c.sleeping = false
		return
	}
	c.sleeping = true
	c.fade = c.level
}

// Fade lowers the sleeping output by one step, holding at 0, and reports
// whether anything is still visible.
func (c *Controller) Fade() bool {
	if !c.sleeping {
		return c.level > 0
	}
	c.fade = clamp(c.fade - c.cfg.FadeStep)
	return c.fade > 0
}

func clamp(v float64) float64 {
	if v < eps {
		return 0
	}
	if v > 1-eps {
		return 1
	}
	return v
}
