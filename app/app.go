// Package app wires the core together and runs the root state machine:
// Boot, MenuRoot, MenuCategory, EffectRunning and Faulted.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"unicorn/core/brightness"
	"unicorn/core/effect"
	"unicorn/core/gfx"
	"unicorn/core/input"
	"unicorn/core/menu"
	"unicorn/core/runner"
	"unicorn/core/supervisor"
	"unicorn/hal"
	"unicorn/internal/buildinfo"
	"unicorn/internal/config"
)

// State is the root state.
type State uint8

const (
	Boot State = iota
	MenuRoot
	MenuCategory
	EffectRunning
	Faulted
)

var stateNames = [...]string{
	Boot:          "boot",
	MenuRoot:      "menu_root",
	MenuCategory:  "menu_category",
	EffectRunning: "effect_running",
	Faulted:       "faulted",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

const rootTitle = "MENU"

// App is one appliance: a HAL plus the core components built on it.
type App struct {
	h        hal.HAL
	cfg      *config.Config
	log      *slog.Logger
	tree     menu.Tree
	registry *effect.Registry

	screen *gfx.Surface
	input  *input.Poller
	bright *brightness.Controller
	menu   *menu.Stack
	host   *runner.Host
	sup    *supervisor.Supervisor

	state   State
	onState func(State)
}

// Option customizes New.
type Option func(*App)

// WithLogger replaces the logger built from the HAL's line logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) { a.log = l }
}

// WithMenu replaces the built-in menu table.
func WithMenu(t menu.Tree) Option {
	return func(a *App) { a.tree = t }
}

// WithRegistry replaces the built-in effects.
func WithRegistry(r *effect.Registry) Option {
	return func(a *App) { a.registry = r }
}

// WithStateHook calls fn on every state transition.
func WithStateHook(fn func(State)) Option {
	return func(a *App) { a.onState = fn }
}

// New validates cfg (nil means config.Default) and builds the core.
func New(h hal.HAL, cfg *config.Config, opts ...Option) (*App, error) {
	if h == nil {
		return nil, fmt.Errorf("app: nil HAL")
	}
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	a := &App{h: h, cfg: cfg}
	for _, opt := range opts {
		opt(a)
	}
	if a.log == nil {
		lvl, _ := cfg.LogLevel()
		a.log = NewLogger(h.Logger(), lvl)
	}
	if a.tree == nil {
		a.tree = Menu()
	}
	if err := a.tree.Validate(); err != nil {
		return nil, err
	}
	if a.registry == nil {
		a.registry = Effects()
	}

	clock := h.Clock()
	a.screen = gfx.NewSurface(h.Display())
	a.input = input.NewPoller(h.Buttons(), a.log.With("component", "input"))
	a.bright = brightness.New(brightness.Config{
		Default:  cfg.Brightness.Default,
		Step:     cfg.Brightness.Step,
		FadeStep: cfg.Brightness.FadeStep,
	})
	a.menu = menu.NewStack(a.screen, a.input, a.bright, clock, menu.Config{
		Tick:        cfg.Timing.MenuTick,
		ReleasePoll: cfg.Timing.ReleasePoll,
	}, a.log.With("component", "menu"))
	a.host = runner.New(a.screen, a.input, a.bright, clock, cfg.Timing.EffectTick, a.log.With("component", "runner"))
	a.sup = supervisor.New(a.registry, a.host, a.screen, a.bright, clock, cfg.Timing.FaultDwell, a.log.With("component", "supervisor"))
	return a, nil
}

// Run builds an App and runs it until ctx is done.
func Run(ctx context.Context, h hal.HAL, cfg *config.Config, opts ...Option) error {
	a, err := New(h, cfg, opts...)
	if err != nil {
		return err
	}
	return a.Run(ctx)
}

// State returns the current root state.
func (a *App) State() State { return a.state }

// Brightness returns the brightness controller's state.
func (a *App) Brightness() brightness.State { return a.bright.State() }

// Run loops through the menus and effects. Effect failures and resets
// always come back to MenuRoot; the returned error is ctx's, a display
// failure, or a recovered panic from the menu layer.
func (a *App) Run(ctx context.Context) (err error) {
	defer a.recoverPanic(&err)

	a.enter(Boot)
	a.log.Info("boot", buildinfo.Fields()...)
	for {
		a.restart()

		cat, err := a.menu.Select(ctx, rootTitle, a.tree.Labels())
		if err != nil {
			return err
		}
		category := a.tree[cat]

		a.enter(MenuCategory)
		opt, err := a.menu.Select(ctx, category.Label, category.Labels())
		if err != nil {
			return err
		}
		leaf, err := a.tree.Leaf(cat, opt)
		if err != nil {
			return err
		}
		if !leaf.Bound() {
			a.log.Info("option unbound", "category", category.Label, "option", leaf.Label)
			continue
		}

		a.enter(EffectRunning)
		out, err := a.sup.Supervise(ctx, leaf.Effect)
		if err != nil {
			return err
		}
		switch out {
		case supervisor.Recovered:
			a.enter(Faulted)
		case supervisor.Reset:
			// Back to MenuRoot now; the root menu waits out the held switch.
			a.menu.Disarm()
		}
	}
}

// restart puts every component back into its boot state and enters MenuRoot.
func (a *App) restart() {
	a.bright.Reset()
	a.input.Reset()
	a.host.Reset()
	a.enter(MenuRoot)
}

func (a *App) enter(s State) {
	a.log.Debug("state", "from", a.state.String(), "to", s.String())
	a.state = s
	if a.onState != nil {
		a.onState(s)
	}
}
