package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"

	"unicorn/core/gfx"
)

var (
	panicBackground = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	panicForeground = color.RGBA{A: 255}
)

// recoverPanic turns a panic outside the effect boundary into an error after
// logging the stack and leaving a panic screen on the panel.
func (a *App) recoverPanic(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if l := a.h.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf("unicorn panic: state=%s panic=%v", a.state, r))
		for _, line := range strings.Split(string(debug.Stack()), "\n") {
			if line == "" {
				continue
			}
			l.WriteLineString(line)
		}
	}
	if a.screen != nil {
		w, _ := a.screen.Size()
		a.screen.SetFont(gfx.Small)
		a.screen.SetPen(panicBackground)
		a.screen.Clear()
		a.screen.SetPen(panicForeground)
		a.screen.Text("Panic", 1, 1, 0, 1)
		a.screen.Text(fmt.Sprint(r), 1, 8, w-2, 1)
		_ = a.screen.Flush(1)
	}
	*err = fmt.Errorf("app: panic in %s: %v", a.state, r)
}
