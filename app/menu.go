package app

import (
	"unicorn/core/effect"
	"unicorn/core/menu"
)

// Menu returns the appliance's menu table.
//
// FIRE and COMP name effects this build does not have; choosing them shows
// the diagnostic screen.
func Menu() menu.Tree {
	return menu.Tree{
		menu.Category("SEQ",
			menu.Option("LIFT", effect.Elevator),
			menu.Option("ABCD", effect.AlphabetSequence),
			menu.Option("TRAF", effect.TrafficLights),
			menu.Option("RBOW", effect.Rainbow),
		),
		menu.Category("STDBY",
			menu.Option("WTIME", effect.None),
			menu.Option("FIRE", effect.Fire),
			menu.Option("STAR", effect.Stars),
			menu.Option("COMP", effect.Supercomputer),
		),
		menu.Category("QUIZ",
			menu.Option("COLOR", effect.None),
		),
		menu.Category("PARTY"),
	}
}
