//go:build !tinygo && cgo

package hal

import "github.com/hajimehoshi/ebiten/v2"

// hostKeymap maps desktop keys onto the panel switches.
var hostKeymap = [ButtonCount][]ebiten.Key{
	ButtonA:              {ebiten.Key1, ebiten.KeyA},
	ButtonB:              {ebiten.Key2, ebiten.KeyB},
	ButtonC:              {ebiten.Key3, ebiten.KeyC},
	ButtonD:              {ebiten.Key4, ebiten.KeyD},
	ButtonBrightnessUp:   {ebiten.KeyEqual, ebiten.KeyArrowUp},
	ButtonBrightnessDown: {ebiten.KeyMinus, ebiten.KeyArrowDown},
	ButtonSleep:          {ebiten.KeyZ},
}

// pollKeyboard mirrors the held keys into the virtual switch pins.
func pollKeyboard(sw *switchPins) {
	for i, keys := range hostKeymap {
		held := false
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				held = true
				break
			}
		}
		sw.set(Button(i), held)
	}
}
