package entities

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hoodev/fixedstep/core"
)

func TestNewAnimation(t *testing.T) {
	img := ebiten.NewImage(64, 32)
	anim := NewAnimation(img, 32, 32, 2, 6, true)

	if anim == nil {
		t.Fatal("NewAnimation returned nil")
	}

	if anim.FrameCount != 2 {
		t.Errorf("Expected FrameCount 2, got %d", anim.FrameCount)
	}

	if anim.TicksPerFrame != 6 {
		t.Errorf("Expected TicksPerFrame 6, got %d", anim.TicksPerFrame)
	}

	if anim.Loop != true {
		t.Errorf("Expected Loop true, got %t", anim.Loop)
	}

	if anim.CurrentTick != 0 {
		t.Errorf("Expected CurrentTick 0, got %d", anim.CurrentTick)
	}

	if anim.Finished != false {
		t.Errorf("Expected Finished false, got %t", anim.Finished)
	}

	if len(anim.Frames) != 2 {
		t.Errorf("Expected 2 frames, got %d", len(anim.Frames))
	}

	wantDuration := float32(2*6) * core.DT
	if anim.Duration() != wantDuration {
		t.Errorf("Expected Duration %f, got %f", wantDuration, anim.Duration())
	}
}

// NewAnimation rejects a sub-tick frame duration by clamping to 1
// tick, since a frame that never advances would hang the animation.
func TestNewAnimation_ClampsTicksPerFrame(t *testing.T) {
	img := ebiten.NewImage(32, 32)
	anim := NewAnimation(img, 32, 32, 1, 0, true)
	if anim.TicksPerFrame != 1 {
		t.Errorf("Expected TicksPerFrame to clamp to 1, got %d", anim.TicksPerFrame)
	}
}

func TestAnimation_Advance(t *testing.T) {
	img := ebiten.NewImage(64, 32)
	anim := NewAnimation(img, 32, 32, 2, 3, true) // 3 ticks per frame, 2 frames, 6 ticks total

	anim.Advance(1)
	if anim.CurrentTick != 1 {
		t.Errorf("Expected CurrentTick 1, got %d", anim.CurrentTick)
	}

	anim.Advance(3) // crosses into frame 1
	if anim.CurrentTick != 4 {
		t.Errorf("Expected CurrentTick 4, got %d", anim.CurrentTick)
	}

	anim.Advance(3) // 4+3=7 >= 6 total ticks, should wrap with remainder 1
	if anim.CurrentTick != 1 {
		t.Errorf("Looping animation should wrap with the remainder, got CurrentTick %d", anim.CurrentTick)
	}
}

func TestAnimation_Reset(t *testing.T) {
	img := ebiten.NewImage(64, 32)
	anim := NewAnimation(img, 32, 32, 2, 3, false)

	anim.Advance(6)
	anim.Finished = true

	anim.Reset()

	if anim.CurrentTick != 0 {
		t.Errorf("Expected CurrentTick 0 after reset, got %d", anim.CurrentTick)
	}

	if anim.Finished != false {
		t.Errorf("Expected Finished false after reset, got %t", anim.Finished)
	}
}

func TestAnimation_GetCurrentFrame(t *testing.T) {
	img := ebiten.NewImage(64, 32)
	anim := NewAnimation(img, 32, 32, 2, 6, true)

	frame := anim.GetCurrentFrame()
	if frame == nil {
		t.Fatal("GetCurrentFrame returned nil")
	}

	bounds := frame.Bounds()
	if bounds.Dx() != 32 || bounds.Dy() != 32 {
		t.Errorf("Expected frame size 32x32, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestAnimation_NonLooping(t *testing.T) {
	img := ebiten.NewImage(64, 32)
	anim := NewAnimation(img, 32, 32, 2, 3, false) // 2 frames * 3 ticks = 6 ticks total

	anim.Advance(6)

	if !anim.IsFinished() {
		t.Error("Non-looping animation should be finished")
	}

	prevTick := anim.CurrentTick
	anim.Advance(3)
	if anim.CurrentTick != prevTick {
		t.Error("Finished non-looping animation should not advance further")
	}
}

func TestAnimation_EdgeCases(t *testing.T) {
	img := ebiten.NewImage(32, 32)
	anim := NewAnimation(img, 32, 32, 0, 6, true)

	// Should not panic
	anim.Advance(1)
	frame := anim.GetCurrentFrame()
	if frame != nil {
		t.Error("GetCurrentFrame should return nil for 0 frameCount")
	}

	smallImg := ebiten.NewImage(1, 1)
	smallAnim := NewAnimation(smallImg, 32, 32, 1, 6, true)

	// Should not panic
	smallAnim.Advance(1)
	smallFrame := smallAnim.GetCurrentFrame()
	if smallFrame == nil {
		t.Error("GetCurrentFrame should return a frame even with small sprite sheet")
	}
}

func TestAnimation_FrameIndexing(t *testing.T) {
	img := ebiten.NewImage(96, 32)
	anim := NewAnimation(img, 32, 32, 3, 3, true) // 3 frames, 3 ticks each

	frame0 := anim.GetCurrentFrame()
	if frame0 == nil {
		t.Fatal("Frame 0 should not be nil")
	}

	anim.Advance(3)
	frame1 := anim.GetCurrentFrame()
	if frame1 == nil {
		t.Fatal("Frame 1 should not be nil")
	}

	anim.Advance(3)
	frame2 := anim.GetCurrentFrame()
	if frame2 == nil {
		t.Fatal("Frame 2 should not be nil")
	}

	// Should loop back to frame 0
	anim.Advance(3)
	frameLooped := anim.GetCurrentFrame()
	if frameLooped == nil {
		t.Fatal("Looped frame should not be nil")
	}
	if anim.CurrentTick != 0 {
		t.Errorf("Expected CurrentTick to wrap to 0, got %d", anim.CurrentTick)
	}
}

func TestAnimationController_AdvanceDrivesActiveAnimation(t *testing.T) {
	sheet := ebiten.NewImage(128, 32)
	ac := NewAnimationController(sheet, 32, 32)
	ac.AddAnimation(AnimationIdle, 0, 2, 3, true)
	ac.AddAnimation(AnimationWalk, 2, 2, 3, true)
	ac.SetState(AnimationIdle)

	ac.Advance(3)
	if ac.animations[AnimationIdle].CurrentTick != 3 {
		t.Errorf("expected idle animation to advance, got tick %d", ac.animations[AnimationIdle].CurrentTick)
	}

	// Switching state resets the newly active animation but leaves the
	// previous one's progress untouched.
	ac.SetState(AnimationWalk)
	if ac.animations[AnimationWalk].CurrentTick != 0 {
		t.Errorf("expected walk animation to start at tick 0, got %d", ac.animations[AnimationWalk].CurrentTick)
	}

	ac.Advance(3)
	if ac.animations[AnimationIdle].CurrentTick != 3 {
		t.Error("advancing the controller should not touch an inactive animation")
	}
}
