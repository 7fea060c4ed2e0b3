package app

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/nanobot/pkg/input"
)

var ebitenKeys = map[ebiten.Key]input.Key{
	ebiten.KeyArrowLeft:  input.KeyLeft,
	ebiten.KeyArrowRight: input.KeyRight,
	ebiten.KeyArrowUp:    input.KeyUp,
	ebiten.KeyArrowDown:  input.KeyDown,
	ebiten.KeyEscape:     input.KeyEscape,
	ebiten.KeyTab:        input.KeyTab,
	ebiten.KeyA:          input.KeyA,
	ebiten.KeyC:          input.KeyC,
	ebiten.KeyF:          input.KeyF,
	ebiten.KeyL:          input.KeyL,
	ebiten.KeyN:          input.KeyN,
	ebiten.KeyQ:          input.KeyQ,
	ebiten.KeyR:          input.KeyR,
	ebiten.KeyS:          input.KeyS,
	ebiten.KeyW:          input.KeyW,
	ebiten.KeyDigit1:     input.Key1,
	ebiten.KeyDigit2:     input.Key2,
	ebiten.KeyDigit3:     input.Key3,
	ebiten.KeyDigit4:     input.Key4,
	ebiten.KeyDigit5:     input.Key5,
	ebiten.KeyNumpad1:    input.Key1,
	ebiten.KeyNumpad2:    input.Key2,
	ebiten.KeyNumpad3:    input.Key3,
	ebiten.KeyNumpad4:    input.Key4,
	ebiten.KeyNumpad5:    input.Key5,
}

func translateKey(k ebiten.Key) input.Key {
	return ebitenKeys[k]
}
