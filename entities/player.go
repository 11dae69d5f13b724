package entities

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hoodev/fixedstep/core"
)

// Player is the ROBO-9 character: a thin sprite/animation shell around
// a core.State, stepped once per fixed frame by core.Step. It holds
// no physics logic of its own; every position and velocity change
// comes back from the Step call.
type Player struct {
	State  core.State
	Params core.Params

	FacingRight bool

	AnimationController *AnimationController
}

// NewPlayer creates a new ROBO-9 player instance at the given
// position, using params for its tuning and width/height for its
// collision box.
func NewPlayer(x, y float64, width, height float64, params core.Params, spriteSheet *ebiten.Image) *Player {
	frameWidth := 32
	frameHeight := 32

	player := &Player{
		State: core.State{
			X: float32(x),
			Y: float32(y),
			W: float32(width),
			H: float32(height),
		},
		Params:      params,
		FacingRight: true,
	}

	player.AnimationController = NewAnimationController(spriteSheet, frameWidth, frameHeight)
	player.setupAnimations()
	player.AnimationController.SetState(AnimationIdle)

	return player
}

// setupAnimations configures the player's animation sequences. These
// frame offsets assume the sprite sheet layout CreateTestSpriteSheet
// produces.
func (p *Player) setupAnimations() {
	p.AnimationController.AddAnimation(AnimationIdle, 0, 4, 12, true)
	p.AnimationController.AddAnimation(AnimationWalk, 4, 4, 6, true)
	p.AnimationController.AddAnimation(AnimationJump, 8, 2, 6, false)
	p.AnimationController.AddAnimation(AnimationFall, 10, 2, 9, true)
}

// Step advances the player's physics by one fixed frame against world
// and the given input, then updates facing and animation state to
// match. It returns whatever events core.Step fired.
func (p *Player) Step(world core.World, buttons core.Buttons) core.Events {
	ev := core.Step(&p.Params, world, &p.State, buttons)

	if buttons&core.ButtonLeft != 0 && buttons&core.ButtonRight == 0 {
		p.FacingRight = false
	} else if buttons&core.ButtonRight != 0 && buttons&core.ButtonLeft == 0 {
		p.FacingRight = true
	}

	p.updateAnimationState()
	p.AnimationController.Advance(1)

	return ev
}

// updateAnimationState picks the animation matching the player's
// current motion.
func (p *Player) updateAnimationState() {
	if !p.State.Grounded {
		if p.State.VY < 0 {
			p.AnimationController.SetState(AnimationJump)
		} else {
			p.AnimationController.SetState(AnimationFall)
		}
		return
	}

	if p.State.VX > 1 || p.State.VX < -1 {
		p.AnimationController.SetState(AnimationWalk)
	} else {
		p.AnimationController.SetState(AnimationIdle)
	}
}

// GetBounds returns the player's collision rectangle.
func (p *Player) GetBounds() (float64, float64, float64, float64) {
	return float64(p.State.X), float64(p.State.Y), float64(p.State.W), float64(p.State.H)
}

// Draw renders the player at its current simulated position.
func (p *Player) Draw(screen *ebiten.Image) {
	currentFrame := p.AnimationController.GetCurrentFrame()
	if currentFrame == nil {
		return
	}

	op := &ebiten.DrawImageOptions{}

	if !p.FacingRight {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(p.State.W), 0)
	}

	op.GeoM.Translate(float64(p.State.X), float64(p.State.Y))

	screen.DrawImage(currentFrame, op)
}

// GetPosition returns the player's current position.
func (p *Player) GetPosition() (float64, float64) {
	return float64(p.State.X), float64(p.State.Y)
}

// GetVelocity returns the player's current velocity.
func (p *Player) GetVelocity() (float64, float64) {
	return float64(p.State.VX), float64(p.State.VY)
}

// IsOnGround returns whether the player is currently grounded.
func (p *Player) IsOnGround() bool {
	return p.State.Grounded
}

// GetAnimationState returns the current animation state.
func (p *Player) GetAnimationState() AnimationState {
	return p.AnimationController.GetCurrentState()
}
