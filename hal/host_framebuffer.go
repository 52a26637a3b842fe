//go:build !tinygo

package hal

import "sync"

// hostFramebuffer is drawn into by the core (back buffer) and copied to the
// front buffer on Present, which is what the window shows.
type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte
	front  []byte
	level  float64
	frames uint64
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	stride := width * 2
	return &hostFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
		front:  make([]byte, stride*height),
		level:  1,
	}
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *hostFramebuffer) StrideBytes() int    { return f.stride }
func (f *hostFramebuffer) Buffer() []byte      { return f.buf }

func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(f.front, f.buf)
	f.frames++
	return nil
}

func (f *hostFramebuffer) ClearRGB(r, g, b uint8) {
	pixel := rgb565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

func (f *hostFramebuffer) setBrightness(level float64) {
	f.mu.Lock()
	f.level = clampLevel(level)
	f.mu.Unlock()
}

// snapshotRGBA writes the last presented frame, dimmed by the panel
// brightness, into dst (4 bytes per pixel).
func (f *hostFramebuffer) snapshotRGBA(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := 0; i+1 < len(f.front) && i/2*4+3 < len(dst); i += 2 {
		r, g, b := rgb888From565(uint16(f.front[i]) | uint16(f.front[i+1])<<8)
		j := (i / 2) * 4
		dst[j+0] = dim(r, f.level)
		dst[j+1] = dim(g, f.level)
		dst[j+2] = dim(b, f.level)
		dst[j+3] = 0xFF
	}
}

func (f *hostFramebuffer) frameCount() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.frames
}
