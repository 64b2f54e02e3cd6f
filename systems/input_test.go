package systems

import (
	"testing"

	"github.com/cbag/codebird-cave/components"
	cfg "github.com/cbag/codebird-cave/config"
	"github.com/stretchr/testify/assert"
)

func TestIntentFrom(t *testing.T) {
	input := &components.InputData{}
	input.Current[cfg.ActionMoveRight] = true
	input.Current[cfg.ActionJump] = true
	input.Current[cfg.ActionReset] = true

	in := IntentFrom(input)
	assert.True(t, in.Right)
	assert.True(t, in.Jump)
	assert.True(t, in.Reset, "reset fires on the press")
	assert.False(t, in.Left)

	input.Previous = input.Current
	in = IntentFrom(input)
	assert.True(t, in.Right, "movement is held")
	assert.True(t, in.Jump)
	assert.False(t, in.Reset, "holding reset does not repeat it")
}

func TestIntentFromGatesTeleport(t *testing.T) {
	prev := cfg.Debug.AllowTeleport
	t.Cleanup(func() { cfg.Debug.AllowTeleport = prev })

	input := &components.InputData{}
	input.Current[cfg.ActionDebugTeleport] = true

	cfg.Debug.AllowTeleport = false
	assert.False(t, IntentFrom(input).DebugTeleport)

	cfg.Debug.AllowTeleport = true
	assert.True(t, IntentFrom(input).DebugTeleport)
}

func TestTouchAction(t *testing.T) {
	cases := []struct {
		fx   float64
		want cfg.ActionID
		ok   bool
	}{
		{0.1, cfg.ActionMoveLeft, true},
		{0.3, cfg.ActionMoveRight, true},
		{0.6, cfg.ActionNone, false},
		{0.9, cfg.ActionJump, true},
		{1, cfg.ActionJump, true},
	}
	for _, c := range cases {
		got, ok := TouchAction(c.fx)
		assert.Equal(t, c.ok, ok, c.fx)
		assert.Equal(t, c.want, got, c.fx)
	}
}

func TestGetActionEdges(t *testing.T) {
	input := &components.InputData{}
	input.Previous[cfg.ActionJump] = true

	s := GetAction(input, cfg.ActionJump)
	assert.False(t, s.Pressed)
	assert.True(t, s.JustReleased)
}
