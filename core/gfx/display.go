package gfx

import (
	"image/color"

	"unicorn/hal"

	"tinygo.org/x/drivers"
)

var (
	_ drivers.Displayer = (*fbDisplay)(nil)
	_ drivers.Displayer = scaledDisplay{}
)

// fbDisplay adapts a hal.Framebuffer to drivers.Displayer so tinyfont and
// tinydraw can render into it.
type fbDisplay struct {
	fb hal.Framebuffer
}

func (d *fbDisplay) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return
	}

	w := d.fb.Width()
	h := d.fb.Height()
	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= w || iy < 0 || iy >= h {
		return
	}

	pixel := hal.RGB565(c.R, c.G, c.B)
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d *fbDisplay) Display() error {
	if d.fb == nil {
		return nil
	}
	return d.fb.Present()
}

// scaledDisplay magnifies everything drawn into it by an integer factor,
// anchored at (ox, oy) of the parent.
type scaledDisplay struct {
	parent *fbDisplay
	ox, oy int16
	scale  int16
}

func (d scaledDisplay) Size() (x, y int16) { return d.parent.Size() }

func (d scaledDisplay) SetPixel(x, y int16, c color.RGBA) {
	px := d.ox + x*d.scale
	py := d.oy + y*d.scale
	for dy := int16(0); dy < d.scale; dy++ {
		for dx := int16(0); dx < d.scale; dx++ {
			d.parent.SetPixel(px+dx, py+dy, c)
		}
	}
}

func (d scaledDisplay) Display() error { return nil }
