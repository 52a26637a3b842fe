package supervisor

import (
	"image/color"

	"unicorn/core/gfx"
)

const (
	diagMargin = 2
	diagTitleY = 2
	diagBodyY  = 10
	diagTitle  = "Error!"
)

var (
	diagBackground = color.RGBA{R: 255, A: 255}
	diagForeground = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Diagnose fills the screen red, writes "Error!" and msg wrapped to the
// panel width, and flushes it at the given brightness.
func Diagnose(screen gfx.Screen, msg string, level float64) error {
	w, _ := screen.Size()
	screen.SetFont(gfx.Small)
	screen.SetPen(diagBackground)
	screen.Clear()
	screen.SetPen(diagForeground)
	screen.Text(diagTitle, diagMargin, diagTitleY, 0, 1)
	screen.Text(msg, diagMargin, diagBodyY, w-2*diagMargin, 1)
	return screen.Flush(level)
}
