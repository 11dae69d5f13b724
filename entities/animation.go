package entities

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hoodev/fixedstep/core"
)

// AnimationState represents different animation states
type AnimationState int

const (
	AnimationIdle AnimationState = iota
	AnimationWalk
	AnimationJump
	AnimationFall
)

// Animation represents a single animation sequence advanced in whole
// core.DT ticks, matching the cadence core.Step runs at. Frame
// durations are specified in ticks rather than seconds so an
// animation never drifts relative to the physics it illustrates.
type Animation struct {
	Frames        []*ebiten.Image // Individual frames of the animation
	FrameCount    int             // Number of frames in the animation
	TicksPerFrame int             // Fixed ticks each frame is held for
	Loop          bool            // Whether the animation should loop
	CurrentTick   int             // Ticks elapsed since the animation started
	Finished      bool            // Whether the animation has finished (for non-looping)
}

// NewAnimation creates a new animation from a sprite sheet
func NewAnimation(spriteSheet *ebiten.Image, frameWidth, frameHeight, frameCount, ticksPerFrame int, loop bool) *Animation {
	frames := make([]*ebiten.Image, frameCount)

	for i := 0; i < frameCount; i++ {
		x := i * frameWidth
		y := 0

		frame := spriteSheet.SubImage(image.Rect(x, y, x+frameWidth, y+frameHeight)).(*ebiten.Image)
		frames[i] = frame
	}

	if ticksPerFrame < 1 {
		ticksPerFrame = 1
	}

	return &Animation{
		Frames:        frames,
		FrameCount:    frameCount,
		TicksPerFrame: ticksPerFrame,
		Loop:          loop,
	}
}

// Duration returns how long a full non-looping playthrough lasts.
func (a *Animation) Duration() float32 {
	return float32(a.FrameCount*a.TicksPerFrame) * core.DT
}

// Advance advances the animation by the given number of fixed ticks.
// A host calls this once per core.Step call, passing 1; replay
// tooling can pass a larger count to fast-forward deterministically.
func (a *Animation) Advance(ticks int) {
	if a.Finished && !a.Loop {
		return
	}

	a.CurrentTick += ticks

	totalTicks := a.FrameCount * a.TicksPerFrame
	if a.CurrentTick >= totalTicks {
		if a.Loop {
			if totalTicks > 0 {
				a.CurrentTick %= totalTicks
			} else {
				a.CurrentTick = 0
			}
		} else {
			a.CurrentTick = totalTicks - 1
			a.Finished = true
		}
	}
}

// GetCurrentFrame returns the current frame image
func (a *Animation) GetCurrentFrame() *ebiten.Image {
	if a.FrameCount == 0 {
		return nil
	}

	frameIndex := a.CurrentTick / a.TicksPerFrame
	if frameIndex >= a.FrameCount {
		frameIndex = a.FrameCount - 1
	}

	return a.Frames[frameIndex]
}

// Reset resets the animation to the beginning
func (a *Animation) Reset() {
	a.CurrentTick = 0
	a.Finished = false
}

// IsFinished returns whether the animation has finished (for non-looping animations)
func (a *Animation) IsFinished() bool {
	return a.Finished
}

// AnimationController manages multiple tick-driven animations for a
// single entity, switching between them by AnimationState.
type AnimationController struct {
	animations    map[AnimationState]*Animation
	currentState  AnimationState
	previousState AnimationState
	spriteSheet   *ebiten.Image
	frameWidth    int
	frameHeight   int
}

// NewAnimationController creates a new animation controller
func NewAnimationController(spriteSheet *ebiten.Image, frameWidth, frameHeight int) *AnimationController {
	return &AnimationController{
		animations:  make(map[AnimationState]*Animation),
		spriteSheet: spriteSheet,
		frameWidth:  frameWidth,
		frameHeight: frameHeight,
	}
}

// AddAnimation adds an animation to the controller. ticksPerFrame is
// the number of fixed core.DT ticks each frame is displayed for.
func (ac *AnimationController) AddAnimation(state AnimationState, startFrame, frameCount, ticksPerFrame int, loop bool) {
	frames := make([]*ebiten.Image, frameCount)

	sheetWidth := ac.spriteSheet.Bounds().Dx()
	sheetHeight := ac.spriteSheet.Bounds().Dy()

	if sheetWidth < ac.frameWidth || sheetHeight < ac.frameHeight {
		for i := 0; i < frameCount; i++ {
			frames[i] = ac.spriteSheet
		}
	} else {
		framesPerRow := sheetWidth / ac.frameWidth
		if framesPerRow == 0 {
			framesPerRow = 1
		}

		for i := 0; i < frameCount; i++ {
			frameIndex := startFrame + i
			x := (frameIndex % framesPerRow) * ac.frameWidth
			y := (frameIndex / framesPerRow) * ac.frameHeight

			if x+ac.frameWidth > sheetWidth {
				x = sheetWidth - ac.frameWidth
				if x < 0 {
					x = 0
				}
			}
			if y+ac.frameHeight > sheetHeight {
				y = sheetHeight - ac.frameHeight
				if y < 0 {
					y = 0
				}
			}

			frame := ac.spriteSheet.SubImage(image.Rect(x, y, x+ac.frameWidth, y+ac.frameHeight)).(*ebiten.Image)
			frames[i] = frame
		}
	}

	if ticksPerFrame < 1 {
		ticksPerFrame = 1
	}

	ac.animations[state] = &Animation{
		Frames:        frames,
		FrameCount:    frameCount,
		TicksPerFrame: ticksPerFrame,
		Loop:          loop,
	}
}

// SetState changes the current animation state
func (ac *AnimationController) SetState(state AnimationState) {
	if state != ac.currentState {
		ac.previousState = ac.currentState
		ac.currentState = state

		if animation, exists := ac.animations[state]; exists {
			animation.Reset()
		}
	}
}

// GetCurrentState returns the current animation state
func (ac *AnimationController) GetCurrentState() AnimationState {
	return ac.currentState
}

// Advance advances the active animation by ticks fixed core.DT steps.
func (ac *AnimationController) Advance(ticks int) {
	if animation, exists := ac.animations[ac.currentState]; exists {
		animation.Advance(ticks)
	}
}

// GetCurrentFrame returns the current frame of the active animation
func (ac *AnimationController) GetCurrentFrame() *ebiten.Image {
	if animation, exists := ac.animations[ac.currentState]; exists {
		return animation.GetCurrentFrame()
	}
	return nil
}

// IsCurrentAnimationFinished returns whether the current animation has finished
func (ac *AnimationController) IsCurrentAnimationFinished() bool {
	if animation, exists := ac.animations[ac.currentState]; exists {
		return animation.IsFinished()
	}
	return false
}
