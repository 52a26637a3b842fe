package stars

import (
	"math"
	"testing"
	"time"

	"unicorn/core/effect"
	"unicorn/core/gfx"
	"unicorn/internal/haltest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newField(t *testing.T) (*Field, *haltest.Board) {
	t.Helper()
	b := haltest.NewBoard()
	f := New(effect.Env{Canvas: gfx.NewSurface(b.Display()), Clock: b.Clock()}).(*Field)
	require.NoError(t, f.Init())
	return f, b
}

func TestStartsWithOneStar(t *testing.T) {
	f, b := newField(t)
	require.NoError(t, f.Draw())
	assert.Equal(t, 1, f.Count())
	assert.Equal(t, []string{"Blue", "Bath"}, f.Lines())

	b.Clock().Sleep(200 * time.Millisecond)
	require.NoError(t, f.Draw())
	r, g, bl := b.FB().Pixel(4, 4)
	assert.Equal(t, [3]uint8{255, 255, 255}, [3]uint8{r, g, bl}, "first star")
}

func TestStarsAccumulateToTen(t *testing.T) {
	f, b := newField(t)

	b.Clock().Sleep(5100 * time.Millisecond)
	require.NoError(t, f.Draw())
	assert.Equal(t, 2, f.Count())
	assert.Equal(t, []string{"Bright", "Brush"}, f.Lines())

	for i := 0; i < 2000; i++ {
		b.Clock().Sleep(100 * time.Millisecond)
		require.NoError(t, f.Draw())
	}
	assert.Equal(t, maxStars, f.Count())
	assert.Equal(t, []string{"Sheep", "Sleep"}, f.Lines())

	for i, a := range f.stars {
		assert.True(t, a.x >= 2 && a.x <= 28 && a.y >= 2 && a.y <= 16, "star %d at %d,%d", i, a.x, a.y)
		for _, c := range f.stars[i+1:] {
			assert.Greater(t, math.Hypot(float64(a.x-c.x), float64(a.y-c.y)), float64(minSpacing))
		}
	}
}

func TestSkyDarkensWithStars(t *testing.T) {
	f, b := newField(t)
	require.NoError(t, f.Draw())
	_, _, before := b.FB().Pixel(31, 0)
	assert.Positive(t, before)

	for f.Count() < maxStars {
		b.Clock().Sleep(time.Second)
		require.NoError(t, f.Draw())
	}
	require.NoError(t, f.Draw())
	_, _, after := b.FB().Pixel(31, 0)
	assert.Zero(t, after)
}
