package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/nanobot/pkg/input"
)

// pointer merges mouse and touch input.
//
// Mouse: left click picks a joint, right drag rotates the selection.
// Touch: a tap picks, a drag with the finger down rotates the selection.
type pointer struct {
	mouse input.Drag

	touch   input.Drag
	touchID ebiten.TouchID
	moved   bool
}

// pointerEvent is what one frame of pointer input asks for.
type pointerEvent struct {
	pick         bool
	x, y         int
	dragX, dragY int
}

func (p *pointer) update() pointerEvent {
	if ev, ok := p.updateTouch(); ok {
		return ev
	}

	var ev pointerEvent
	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		ev.pick, ev.x, ev.y = true, x, y
	}
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
		p.mouse.Begin(x, y)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight):
		p.mouse.End()
	case p.mouse.Active():
		ev.dragX, ev.dragY = p.mouse.Move(x, y)
	}
	return ev
}

// updateTouch follows the first finger down. It reports false when no
// touch is in progress, leaving the frame to the mouse.
func (p *pointer) updateTouch() (pointerEvent, bool) {
	var ev pointerEvent

	if !p.touch.Active() {
		ids := inpututil.AppendJustPressedTouchIDs(nil)
		if len(ids) == 0 {
			return ev, false
		}
		p.touchID, p.moved = ids[0], false
		p.touch.Begin(ebiten.TouchPosition(p.touchID))
		return ev, true
	}

	if inpututil.IsTouchJustReleased(p.touchID) {
		p.touch.End()
		if !p.moved {
			ev.pick = true
			ev.x, ev.y = inpututil.TouchPositionInPreviousTick(p.touchID)
		}
		return ev, true
	}

	ev.dragX, ev.dragY = p.touch.Move(ebiten.TouchPosition(p.touchID))
	if ev.dragX != 0 || ev.dragY != 0 {
		p.moved = true
	}
	return ev, true
}
