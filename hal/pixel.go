package hal

func rgb565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

func rgb888From565(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}

// RGB565 packs an 8-bit-per-channel color the way framebuffers store it.
func RGB565(r, g, b uint8) uint16 { return rgb565(r, g, b) }

// RGB888 unpacks a framebuffer pixel.
func RGB888(p uint16) (r, g, b uint8) { return rgb888From565(p) }

// dim scales a channel by a brightness level in [0,1].
func dim(c uint8, level float64) uint8 {
	if level <= 0 {
		return 0
	}
	if level >= 1 {
		return c
	}
	return uint8(float64(c)*level + 0.5)
}

func clampLevel(level float64) float64 {
	if level < 0 {
		return 0
	}
	if level > 1 {
		return 1
	}
	return level
}
