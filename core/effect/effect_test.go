package effect

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopEffect struct{}

func (nopEffect) Init() error { return nil }
func (nopEffect) Draw() error { return nil }

func TestResolveRegistered(t *testing.T) {
	r := NewRegistry()
	r.Register(Stars, func(Env) Effect { return nopEffect{} })

	e, err := r.Resolve(Stars, Env{})
	require.NoError(t, err)
	assert.NotNil(t, e)
	assert.True(t, r.Has(Stars))
}

func TestResolveUnknownIsResolutionError(t *testing.T) {
	r := NewRegistry()
	_, err := r.Resolve(Fire, Env{})

	var re *ResolutionError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, Fire, re.ID)
	assert.Equal(t, "no effect named 'fire'", err.Error())
}

func TestResolveNilFactoryResult(t *testing.T) {
	r := NewRegistry()
	r.Register(Rainbow, func(Env) Effect { return nil })
	_, err := r.Resolve(Rainbow, Env{})
	var re *ResolutionError
	assert.True(t, errors.As(err, &re))
}

func TestResolvePanickingFactory(t *testing.T) {
	r := NewRegistry()
	r.Register(Stars, func(Env) Effect { panic("no canvas") })

	var e Effect
	var err error
	require.NotPanics(t, func() { e, err = r.Resolve(Stars, Env{}) })
	assert.Nil(t, e)

	var re *ResolutionError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, Stars, re.ID)
	assert.EqualError(t, err, "effect 'stars' failed to load: panic: no canvas")
	assert.Equal(t, "panic: no canvas", errors.Unwrap(err).Error())
}

func TestRegisterRejectsNoneAndNil(t *testing.T) {
	r := NewRegistry()
	assert.PanicsWithValue(t, "effect: Register of None", func() {
		r.Register(None, func(Env) Effect { return nopEffect{} })
	})
	assert.PanicsWithValue(t, "effect: Register of nil factory for stars", func() {
		r.Register(Stars, nil)
	})
	assert.Empty(t, r.IDs())
}

func TestIDsSorted(t *testing.T) {
	r := NewRegistry()
	f := func(Env) Effect { return nopEffect{} }
	r.Register(Stars, f)
	r.Register(Elevator, f)
	r.Register(Rainbow, f)
	assert.Equal(t, []ID{Elevator, Rainbow, Stars}, r.IDs())
}

func TestFaultErrorUnwrapAndMessage(t *testing.T) {
	cause := errors.New("floor out of range")
	err := fmt.Errorf("run: %w", &FaultError{ID: Elevator, Phase: PhaseDraw, Err: cause})

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "floor out of range", Message(err))
	assert.Equal(t, "no effect named 'fire'", Message(&ResolutionError{ID: Fire}))
}

func TestIDString(t *testing.T) {
	assert.Equal(t, "traffic_lights", TrafficLights.String())
	assert.Equal(t, "effect(99)", ID(99).String())
}
