// Package gfx is the drawing surface shared by the menu, the diagnostic
// screen and the effects. Nothing drawn is visible until Flush.
package gfx

import (
	"image/color"
	"strings"
	"unicode/utf8"

	"unicorn/hal"

	"tinygo.org/x/tinydraw"
	"tinygo.org/x/tinyfont"
)

// Canvas is what an effect may draw with. All shapes are filled and use the
// current pen; Clear fills the whole panel with the pen.
type Canvas interface {
	Size() (w, h int)
	SetPen(c color.RGBA)
	SetFont(f *Font)
	Clear()
	Pixel(x, y int)
	Line(x0, y0, x1, y1 int)
	Rectangle(x, y, w, h int)
	Circle(x, y, r int)
	Triangle(x0, y0, x1, y1, x2, y2 int)
	// Text draws s with its top-left corner at (x, y). wrap > 0 breaks lines
	// so that none is wider than wrap pixels; scale magnifies each glyph pixel.
	Text(s string, x, y, wrap, scale int)
	MeasureText(s string, scale int) int
}

// Screen is a Canvas that can also be pushed to the panel.
type Screen interface {
	Canvas
	Flush(brightness float64) error
}

// Surface draws into a hal.Display's framebuffer.
type Surface struct {
	disp hal.Display
	d    *fbDisplay
	pen  color.RGBA
	font *Font
}

func NewSurface(disp hal.Display) *Surface {
	s := &Surface{disp: disp, d: &fbDisplay{}, font: Small}
	if disp != nil {
		s.d.fb = disp.Framebuffer()
	}
	s.pen = color.RGBA{A: 0xFF}
	return s
}

// Flush sets the panel brightness and presents the composed frame.
func (s *Surface) Flush(brightness float64) error {
	if s.disp != nil {
		s.disp.SetBrightness(brightness)
	}
	return s.d.Display()
}

func (s *Surface) Size() (w, h int) {
	x, y := s.d.Size()
	return int(x), int(y)
}

func (s *Surface) SetPen(c color.RGBA) {
	c.A = 0xFF
	s.pen = c
}

func (s *Surface) SetFont(f *Font) {
	if f != nil {
		s.font = f
	}
}

func (s *Surface) Clear() {
	if s.d.fb == nil {
		return
	}
	s.d.fb.ClearRGB(s.pen.R, s.pen.G, s.pen.B)
}

func (s *Surface) Pixel(x, y int) {
	s.d.SetPixel(int16(x), int16(y), s.pen)
}

func (s *Surface) Line(x0, y0, x1, y1 int) {
	tinydraw.Line(s.d, int16(x0), int16(y0), int16(x1), int16(y1), s.pen)
}

func (s *Surface) Rectangle(x, y, w, h int) {
	// Empty rectangles draw nothing.
	_ = tinydraw.FilledRectangle(s.d, int16(x), int16(y), int16(w), int16(h), s.pen)
}

func (s *Surface) Circle(x, y, r int) {
	if r <= 0 {
		s.Pixel(x, y)
		return
	}
	tinydraw.FilledCircle(s.d, int16(x), int16(y), int16(r), s.pen)
}

func (s *Surface) Triangle(x0, y0, x1, y1, x2, y2 int) {
	tinydraw.FilledTriangle(s.d, int16(x0), int16(y0), int16(x1), int16(y1), int16(x2), int16(y2), s.pen)
}

func (s *Surface) MeasureText(str string, scale int) int {
	if scale < 1 {
		scale = 1
	}
	_, outbox := tinyfont.LineWidth(s.font.face, str)
	return int(outbox) * scale
}

func (s *Surface) Text(str string, x, y, wrap, scale int) {
	if scale < 1 {
		scale = 1
	}
	lines := []string{str}
	if wrap > 0 {
		lines = s.wrapLines(str, wrap, scale)
	}
	step := int16(s.font.LineHeight() * scale)
	sd := scaledDisplay{parent: s.d, ox: int16(x), oy: int16(y), scale: int16(scale)}
	for _, line := range lines {
		tinyfont.WriteLine(sd, s.font.face, 0, s.font.ascent, line, s.pen)
		sd.oy += step
	}
}

// wrapLines breaks on spaces; words wider than wrap are split by runes.
func (s *Surface) wrapLines(str string, wrap, scale int) []string {
	var lines []string
	for _, para := range strings.Split(str, "\n") {
		cur := ""
		for _, word := range strings.Fields(para) {
			for s.MeasureText(word, scale) > wrap {
				if cur != "" {
					lines = append(lines, cur)
					cur = ""
				}
				head, rest := s.fitRunes(word, wrap, scale)
				lines = append(lines, head)
				word = rest
			}
			if word == "" {
				continue
			}
			candidate := word
			if cur != "" {
				candidate = cur + " " + word
			}
			if s.MeasureText(candidate, scale) <= wrap {
				cur = candidate
				continue
			}
			lines = append(lines, cur)
			cur = word
		}
		lines = append(lines, cur)
	}
	return lines
}

// fitRunes returns the longest prefix of word (at least one rune) no wider than wrap.
func (s *Surface) fitRunes(word string, wrap, scale int) (prefix, rest string) {
	end := 0
	for i, r := range word {
		next := i + utf8.RuneLen(r)
		if end > 0 && s.MeasureText(word[:next], scale) > wrap {
			break
		}
		end = next
	}
	return word[:end], word[end:]
}
