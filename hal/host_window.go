//go:build !tinygo && cgo

package hal

import (
	"context"
	"errors"
	"image"
	"os"

	"unicorn/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunWindow starts a desktop window that shows the panel and maps keys onto
// the panel switches. The core runs on its own goroutine; closing the window
// (or Escape) cancels its context. It blocks until both have stopped.
func RunWindow(run RunFunc, cfg WindowConfig) error {
	if cfg.Scale <= 0 {
		cfg.Scale = defaultWindowScale
	}

	h := newHostHAL(os.Stdout)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- run(ctx, h) }()

	g := &hostGame{h: h, done: done}
	ebiten.SetWindowTitle("Unicorn (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.fb.width*cfg.Scale, h.fb.height*cfg.Scale)
	ebiten.SetTPS(60)
	err := ebiten.RunGame(g)
	cancel()
	if !g.finished {
		if coreErr := <-done; err == nil && !isShutdown(coreErr) {
			err = coreErr
		}
	}
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type hostGame struct {
	h        *hostHAL
	img      *image.RGBA
	fbImg    *ebiten.Image
	done     <-chan error
	finished bool
}

func (g *hostGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	pollKeyboard(g.h.sw)

	select {
	case err := <-g.done:
		g.finished = true
		if isShutdown(err) {
			return ebiten.Termination
		}
		return err
	default:
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	fb.snapshotRGBA(g.img.Pix)
	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
