package traffic

import (
	"testing"
	"time"

	"unicorn/core/effect"
	"unicorn/core/gfx"
	"unicorn/internal/haltest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLitCycle(t *testing.T) {
	cases := []struct {
		at   time.Duration
		want int
	}{
		{0, 0},
		{3999 * time.Millisecond, 0},
		{4 * time.Second, 1},
		{8 * time.Second, 2},
		{9999 * time.Millisecond, 2},
		{10 * time.Second, 0},
		{14500 * time.Millisecond, 1},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Lit(c.at), "at %v", c.at)
	}
}

func TestDrawLightsOneLamp(t *testing.T) {
	b := haltest.NewBoard()
	e := New(effect.Env{Canvas: gfx.NewSurface(b.Display()), Clock: b.Clock()})
	require.NoError(t, e.Init())

	b.Clock().Sleep(5 * time.Second)
	require.NoError(t, e.Draw())

	fb := b.FB()
	r, g, _ := fb.Pixel(16, 16)
	assert.Equal(t, uint8(255), r, "yellow lamp lit")
	assert.Greater(t, g, uint8(150))
	r, _, _ = fb.Pixel(16, 6)
	assert.Less(t, r, uint8(60), "red lamp dark")
	r, _, _ = fb.Pixel(0, 0)
	assert.Zero(t, r)
}
