//go:build tinygo

package main

import (
	"context"

	"unicorn/app"
	"unicorn/hal"
)

func main() {
	h := hal.New()
	if err := app.Run(context.Background(), h, nil); err != nil {
		h.Logger().WriteLineString("unicorn: " + err.Error())
	}
	select {}
}
