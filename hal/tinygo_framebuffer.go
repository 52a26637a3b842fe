//go:build tinygo

package hal

// memFramebuffer is a plain RGB565 buffer; scan-out is done by whoever owns
// the panel driver.
type memFramebuffer struct {
	w      int
	h      int
	stride int
	buf    []byte
	level  float64
	flush  func(buf []byte, level float64) error
}

func newMemFramebuffer(w, h int, flush func(buf []byte, level float64) error) *memFramebuffer {
	stride := w * 2
	return &memFramebuffer{
		w:      w,
		h:      h,
		stride: stride,
		buf:    make([]byte, stride*h),
		level:  1,
		flush:  flush,
	}
}

func (f *memFramebuffer) Width() int          { return f.w }
func (f *memFramebuffer) Height() int         { return f.h }
func (f *memFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *memFramebuffer) StrideBytes() int    { return f.stride }
func (f *memFramebuffer) Buffer() []byte      { return f.buf }

func (f *memFramebuffer) ClearRGB(r, g, b uint8) {
	pixel := rgb565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

func (f *memFramebuffer) Present() error {
	if f.flush == nil {
		return nil
	}
	return f.flush(f.buf, f.level)
}

type memDisplay struct {
	fb *memFramebuffer
}

func (d memDisplay) Framebuffer() Framebuffer    { return d.fb }
func (d memDisplay) SetBrightness(level float64) { d.fb.level = clampLevel(level) }
