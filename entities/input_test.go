package entities

import (
	"testing"

	"github.com/hoodev/fixedstep/core"
)

func TestNewInputHandler(t *testing.T) {
	input := NewInputHandler()
	if input == nil {
		t.Fatal("NewInputHandler returned nil")
	}
}

func TestInputHandler_PollNoKeysPressed(t *testing.T) {
	input := NewInputHandler()

	// With no keys pressed (the case in a headless test process), Poll
	// must return the zero bitset rather than panicking on an
	// uninitialized input device.
	b := input.Poll()
	if b != 0 {
		t.Errorf("expected no buttons set, got %#v", b)
	}
}

func TestInputHandler_JustPressedResetNoPanic(t *testing.T) {
	input := NewInputHandler()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("JustPressedReset panicked: %v", r)
		}
	}()

	_ = input.JustPressedReset()
}

func TestButtonBitsetIsIndependentPerBit(t *testing.T) {
	var b core.Buttons
	b |= core.ButtonLeft
	b |= core.ButtonJump

	if b&core.ButtonLeft == 0 {
		t.Error("expected ButtonLeft bit set")
	}
	if b&core.ButtonRight != 0 {
		t.Error("expected ButtonRight bit clear")
	}
	if b&core.ButtonJump == 0 {
		t.Error("expected ButtonJump bit set")
	}
}
