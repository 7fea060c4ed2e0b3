package app

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/decker502/nanobot/pkg/animation"
	"github.com/decker502/nanobot/pkg/input"
)

func TestEveryBindingHasAnEbitenKey(t *testing.T) {
	reachable := map[input.Key]bool{}
	for _, k := range ebitenKeys {
		reachable[k] = true
	}
	for _, b := range input.Bindings() {
		assert.True(t, reachable[b.Key], "key %s is not reachable from ebiten", b.Label)
	}
}

func TestTranslateKey(t *testing.T) {
	assert.Equal(t, input.KeyLeft, translateKey(ebiten.KeyArrowLeft))
	assert.Equal(t, input.Key3, translateKey(ebiten.KeyDigit3))
	assert.Equal(t, input.Key3, translateKey(ebiten.KeyNumpad3))
	assert.Equal(t, input.KeyNone, translateKey(ebiten.KeyF11))
}

func TestNextMenuMode(t *testing.T) {
	tests := []struct {
		current animation.Mode
		want    input.Action
	}{
		{animation.Standby, input.ActionFly},
		{animation.Fly, input.ActionDance},
		{animation.Dance, input.ActionWalk},
		{animation.Walk, input.ActionReboot},
		{animation.Reset, input.ActionStandby},
		{animation.Mode(-1), input.ActionStandby},
	}
	for _, tt := range tests {
		t.Run(tt.current.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, nextMenuMode(tt.current))
		})
	}
}
