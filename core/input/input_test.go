package input

import (
	"errors"
	"testing"

	"unicorn/hal"
	"unicorn/internal/haltest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPollNothingPressed(t *testing.T) {
	board := haltest.NewBoard()
	p := NewPoller(board.Buttons(), nil)

	s := p.Poll()
	assert.Equal(t, None, s.Pressed)
	assert.False(t, s.Any())
	assert.False(t, s.BrightnessUp)
	assert.False(t, s.BrightnessDown)
	assert.False(t, s.SleepToggled)
}

func TestPollLowestButtonWins(t *testing.T) {
	tests := []struct {
		held []hal.Button
		want Button
	}{
		{[]hal.Button{hal.ButtonD}, D},
		{[]hal.Button{hal.ButtonC, hal.ButtonD}, C},
		{[]hal.Button{hal.ButtonD, hal.ButtonB}, B},
		{[]hal.Button{hal.ButtonD, hal.ButtonC, hal.ButtonB, hal.ButtonA}, A},
	}
	for _, tt := range tests {
		board := haltest.NewBoard()
		board.Script(func(int) []hal.Button { return tt.held })
		p := NewPoller(board.Buttons(), nil)
		assert.Equal(t, tt.want, p.Poll().Pressed, "held %v", tt.held)
	}
}

func TestPollBrightnessIsLevelTriggered(t *testing.T) {
	board := haltest.NewBoard()
	board.Script(func(int) []hal.Button { return []hal.Button{hal.ButtonBrightnessUp} })
	p := NewPoller(board.Buttons(), nil)

	for i := 0; i < 3; i++ {
		s := p.Poll()
		require.True(t, s.BrightnessUp)
		require.False(t, s.BrightnessDown)
		require.False(t, s.Any())
	}
}

func TestSleepHeldFiftyTicksTogglesOnce(t *testing.T) {
	board := haltest.NewBoard()
	board.Script(haltest.Hold(hal.ButtonSleep, 2, 52))
	p := NewPoller(board.Buttons(), nil)
	clock := board.Clock()

	toggles := 0
	for i := 0; i < 80; i++ {
		if p.Poll().SleepToggled {
			toggles++
		}
		clock.Sleep(0)
	}
	assert.Equal(t, 1, toggles)
}

func TestSleepPressReleasePressTogglesTwice(t *testing.T) {
	board := haltest.NewBoard()
	board.Script(haltest.Merge(
		haltest.Hold(hal.ButtonSleep, 1, 4),
		haltest.Hold(hal.ButtonSleep, 6, 9),
	))
	p := NewPoller(board.Buttons(), nil)
	clock := board.Clock()

	var ticks []int
	for i := 0; i < 12; i++ {
		if p.Poll().SleepToggled {
			ticks = append(ticks, i)
		}
		clock.Sleep(0)
	}
	assert.Equal(t, []int{1, 6}, ticks)
}

func TestReadFailureDegradesToReleased(t *testing.T) {
	board := haltest.NewBoard()
	board.Script(func(int) []hal.Button { return []hal.Button{hal.ButtonA, hal.ButtonSleep} })
	board.FailReads(errors.New("bus fault"))
	p := NewPoller(board.Buttons(), nil)

	s := p.Poll()
	assert.Equal(t, None, s.Pressed)
	assert.False(t, s.SleepToggled)

	board.FailReads(nil)
	s = p.Poll()
	assert.Equal(t, A, s.Pressed)
	assert.True(t, s.SleepToggled)
}

func TestNilButtons(t *testing.T) {
	p := NewPoller(nil, nil)
	assert.Equal(t, None, p.Poll().Pressed)
}
