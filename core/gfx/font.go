package gfx

import (
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Font is a tinyfont face plus the metrics needed to place text by its top edge.
type Font struct {
	name   string
	face   tinyfont.Fonter
	ascent int16
}

// NewFont measures the face's ascent from the glyph for 'A'.
func NewFont(name string, face tinyfont.Fonter) *Font {
	f := &Font{name: name, face: face}
	if g := face.GetGlyph('A'); g != nil {
		f.ascent = -int16(g.Info().YOffset)
	}
	if f.ascent <= 0 {
		f.ascent = int16(face.GetYAdvance())
	}
	return f
}

var (
	// Small fits four-letter labels next to a marker on a 32px row.
	Small = NewFont("tomthumb", &tinyfont.TomThumb)
	// Large is used for single glyphs and numbers.
	Large = NewFont("proggy", &proggy.TinySZ8pt7b)
)

func (f *Font) Name() string { return f.name }

// LineHeight is the vertical advance at scale 1.
func (f *Font) LineHeight() int { return int(f.face.GetYAdvance()) }
