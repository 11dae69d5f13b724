package entities

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/hoodev/fixedstep/core"
)

// InputHandler samples the keyboard into the fixed-layout button
// bitset the physics core consumes. It holds no player reference:
// decoding input is independent of whatever it will be applied to.
type InputHandler struct{}

// NewInputHandler creates an input handler.
func NewInputHandler() *InputHandler {
	return &InputHandler{}
}

// Poll reads the current keyboard state into a core.Buttons value.
// Jump is level-sensed here; core.Step derives the edge-triggered
// press/release/held distinctions itself from State.JumpWasDown, so
// the host only ever needs to report whether the button is currently
// down.
func (ih *InputHandler) Poll() core.Buttons {
	var b core.Buttons

	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		b |= core.ButtonLeft
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		b |= core.ButtonRight
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		b |= core.ButtonDown
	}
	if ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		b |= core.ButtonRun
	}
	if ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		b |= core.ButtonJump
	}

	return b
}

// JustPressedReset reports whether the debug reset key was pressed
// this frame. It is sensed with inpututil because it's a one-shot host
// command, not a simulated input the core needs to see every frame.
func (ih *InputHandler) JustPressedReset() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyR)
}
