package app

import (
	"unicorn/core/effect"
	"unicorn/effects/alphabet"
	"unicorn/effects/elevator"
	"unicorn/effects/rainbow"
	"unicorn/effects/stars"
	"unicorn/effects/traffic"
)

// Effects returns a registry holding every built-in effect.
func Effects() *effect.Registry {
	r := effect.NewRegistry()
	elevator.Register(r)
	alphabet.Register(r)
	traffic.Register(r)
	rainbow.Register(r)
	stars.Register(r)
	return r
}
