package runner

import (
	"context"
	"errors"
	"testing"
	"time"

	"unicorn/core/brightness"
	"unicorn/core/effect"
	"unicorn/core/gfx"
	"unicorn/core/input"
	"unicorn/hal"
	"unicorn/internal/haltest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counter struct {
	inits, draws int
	initErr      error
	failAt       int
	failErr      error
	panicAt      int
}

func (p *counter) Init() error {
	p.inits++
	return p.initErr
}

func (p *counter) Draw() error {
	p.draws++
	if p.panicAt > 0 && p.draws == p.panicAt {
		panic("boom")
	}
	if p.failAt > 0 && p.draws == p.failAt {
		return p.failErr
	}
	return nil
}

// recordingScreen remembers the brightness of every flush.
type recordingScreen struct {
	*gfx.Surface
	flushes []float64
}

func (r *recordingScreen) Flush(level float64) error {
	r.flushes = append(r.flushes, level)
	return r.Surface.Flush(level)
}

func newHost(b *haltest.Board) (*Host, *recordingScreen, *brightness.Controller) {
	scr := &recordingScreen{Surface: gfx.NewSurface(b.Display())}
	br := brightness.New(brightness.Config{Default: 0.5, Step: 0.01, FadeStep: 0.01})
	h := New(scr, input.NewPoller(b.Buttons(), nil), br, b.Clock(), time.Millisecond, nil)
	return h, scr, br
}

func TestMenuButtonResetsWithinOneTick(t *testing.T) {
	for _, btn := range []hal.Button{hal.ButtonA, hal.ButtonB, hal.ButtonC, hal.ButtonD} {
		t.Run(btn.String(), func(t *testing.T) {
			b := haltest.NewBoard()
			b.Script(haltest.Hold(btn, 10, 1000))
			h, _, _ := newHost(b)
			p := &counter{}

			err := h.Run(context.Background(), effect.Stars, p)
			assert.ErrorIs(t, err, ErrReset)
			assert.Equal(t, 1, p.inits)
			assert.Equal(t, 10, p.draws)
			assert.Equal(t, 10, b.Tick())

			state, id, _ := h.State()
			assert.Equal(t, Idle, state)
			assert.Equal(t, effect.None, id)
		})
	}
}

func TestInitFailureIsFault(t *testing.T) {
	b := haltest.NewBoard()
	h, _, _ := newHost(b)
	cause := errors.New("no fonts")
	p := &counter{initErr: cause}

	err := h.Run(context.Background(), effect.Rainbow, p)
	var fe *effect.FaultError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, effect.PhaseInit, fe.Phase)
	assert.Equal(t, effect.Rainbow, fe.ID)
	assert.ErrorIs(t, err, cause)
	assert.Zero(t, p.draws)

	state, id, ferr := h.State()
	assert.Equal(t, Faulted, state)
	assert.Equal(t, effect.Rainbow, id)
	assert.Equal(t, err, ferr)

	h.Reset()
	state, _, _ = h.State()
	assert.Equal(t, Idle, state)
}

func TestDrawFailureIsFault(t *testing.T) {
	b := haltest.NewBoard()
	h, _, _ := newHost(b)
	cause := errors.New("floor out of range")
	p := &counter{failAt: 3, failErr: cause}

	err := h.Run(context.Background(), effect.Elevator, p)
	var fe *effect.FaultError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, effect.PhaseDraw, fe.Phase)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, 3, p.draws)
	assert.Equal(t, 2, b.Tick())
}

func TestDrawPanicIsFault(t *testing.T) {
	b := haltest.NewBoard()
	h, _, _ := newHost(b)
	p := &counter{panicAt: 2}

	err := h.Run(context.Background(), effect.TrafficLights, p)
	var fe *effect.FaultError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "panic: boom", fe.Err.Error())
}

func TestSleepFadesToZeroThenSkipsDraw(t *testing.T) {
	b := haltest.NewBoard()
	b.Script(haltest.Hold(hal.ButtonSleep, 5, 55))
	h, scr, br := newHost(b)
	p := &counter{}
	ctx := b.Limit(context.Background(), 100)

	err := h.Run(ctx, effect.Stars, p)
	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, scr.flushes, 100)

	for i := 0; i < 5; i++ {
		assert.InDelta(t, 0.5, scr.flushes[i], 1e-9, "tick %d", i)
	}
	for i := 5; i <= 53; i++ {
		assert.InDelta(t, scr.flushes[i-1]-0.01, scr.flushes[i], 1e-9, "tick %d", i)
		assert.Greater(t, scr.flushes[i], 0.0)
	}
	for i := 54; i < 100; i++ {
		assert.Equal(t, 0.0, scr.flushes[i], "tick %d", i)
	}
	assert.Equal(t, 54, p.draws, "draw skipped once dark")
	assert.True(t, br.Sleeping())
	assert.Equal(t, 0.5, br.Level())
}

func TestWakeRestoresLevelAndDrawing(t *testing.T) {
	b := haltest.NewBoard()
	b.Script(haltest.Merge(
		haltest.Hold(hal.ButtonSleep, 0, 3),
		haltest.Hold(hal.ButtonSleep, 80, 81),
	))
	h, scr, br := newHost(b)
	p := &counter{}
	ctx := b.Limit(context.Background(), 90)

	_ = h.Run(ctx, effect.Stars, p)
	assert.False(t, br.Sleeping())
	assert.Equal(t, 0.0, scr.flushes[79])
	assert.Equal(t, 0.5, scr.flushes[80])
	assert.Equal(t, 49+10, p.draws)
}

func TestBrightnessButtonsOnlyWhileAwake(t *testing.T) {
	b := haltest.NewBoard()
	b.Script(haltest.Merge(
		haltest.Hold(hal.ButtonBrightnessUp, 0, 10),
		haltest.Hold(hal.ButtonSleep, 20, 21),
		haltest.Hold(hal.ButtonBrightnessDown, 30, 40),
	))
	h, _, br := newHost(b)
	ctx := b.Limit(context.Background(), 50)

	_ = h.Run(ctx, effect.Stars, &counter{})
	assert.InDelta(t, 0.6, br.Level(), 1e-9)
	assert.True(t, br.Sleeping())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "running", Running.String())
	assert.Equal(t, "state(9)", State(9).String())
}
