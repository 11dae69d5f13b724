package core

import "math"

// decodeInput maps the raw bitset plus the previous frame's held bit
// into the booleans and edges the rest of Step consumes, and reports
// the updated jump-held bit for the caller to store back. Edge
// detection intentionally runs off the bit as delivered this frame,
// before any other mutation — see Open Question 3: a press and
// release on the same frame still buffers.
func decodeInput(buttons Buttons, jumpWasDown bool) (down, run, jump, jumpPressed, jumpReleased bool, moveDir float32) {
	left := buttons&ButtonLeft != 0
	right := buttons&ButtonRight != 0
	down = buttons&ButtonDown != 0
	run = buttons&ButtonRun != 0
	jump = buttons&ButtonJump != 0

	jumpPressed = jump && !jumpWasDown
	jumpReleased = !jump && jumpWasDown

	switch {
	case right && !left:
		moveDir = 1
	case left && !right:
		moveDir = -1
	default:
		moveDir = 0
	}
	return
}

// Step advances s by one fixed DT against p and w, reading buttons for
// this frame, and returns the events that occurred. Step never
// allocates and never mutates p or w.
func Step(p *Params, w World, s *State, buttons Buttons) Events {
	var ev Events

	down, run, jump, jumpPressed, jumpReleased, moveDir := decodeInput(buttons, s.JumpWasDown)
	s.JumpWasDown = jump

	wasGrounded := s.Grounded

	if wasGrounded {
		s.Coyote = p.CoyoteTime
	} else {
		s.Coyote = max32(s.Coyote-DT, 0)
	}

	if jumpPressed {
		s.JumpBuffer = p.JumpBuffer
	} else {
		s.JumpBuffer = max32(s.JumpBuffer-DT, 0)
	}

	applyHorizontal(p, s, wasGrounded, run, moveDir)
	applyVertical(p, s, down)

	canJump := wasGrounded || s.Coyote > 0
	wantsJump := s.JumpBuffer > 0
	if canJump && wantsJump {
		s.VY = -p.JumpVelocity
		s.Grounded = false
		s.Coyote = 0
		s.JumpBuffer = 0
		ev.Jumped = true
	}

	if jumpReleased && s.VY < 0 {
		cut := -p.JumpVelocity * p.JumpCutMultiplier
		if s.VY < cut {
			s.VY = cut
		}
	}

	r := Rect{X: Round32(s.X), Y: Round32(s.Y), W: Round32(s.W), H: Round32(s.H)}

	totalDX := s.VX * DT
	totalDY := s.VY * DT
	maxStep := max32(p.MaxStepPx, 1)
	largest := max32(abs32(totalDX), abs32(totalDY))
	steps := int(math.Ceil(float64(largest / maxStep)))
	if steps < 1 {
		steps = 1
	}
	dx := totalDX / float32(steps)
	dy := totalDY / float32(steps)

	hitGroundAny := false
	for i := 0; i < steps; i++ {
		r = resolveAxisX(r, w, dx)

		var hitGround, hitHead bool
		r, hitGround, hitHead = resolveAxisY(r, w, dy)

		if hitHead && s.VY < 0 {
			s.VY = 0
			ev.Bonked = true
		}
		if hitGround && s.VY > 0 {
			s.VY = 0
		}
		hitGroundAny = hitGroundAny || hitGround
	}

	s.X = r.X
	s.Y = r.Y

	nowGrounded := resolveGrounding(p, w, &r, s, hitGroundAny)

	if nowGrounded && !wasGrounded {
		ev.Landed = true
	}
	s.Grounded = nowGrounded

	applyWrap(p, s)

	return ev
}

// applyHorizontal implements the ground/air accel-decel-friction-drag
// machinery of section 4.2, selecting the active table from
// wasGrounded and clamping the result.
func applyHorizontal(p *Params, s *State, wasGrounded, run bool, moveDir float32) {
	runMult := float32(1)
	if run {
		runMult = p.RunMultiplier
	}

	var maxSpeed, accel, decel, friction float32
	if wasGrounded {
		maxSpeed = p.GroundMaxSpeed * runMult
		accel = p.GroundAccel
		decel = p.GroundDecel
		friction = p.GroundFriction
	} else {
		maxSpeed = p.AirMaxSpeed * runMult
		accel = p.AirAccel
		decel = p.AirDecel
		friction = 0
	}

	switch {
	case moveDir != 0:
		turning := s.VX != 0 && sign32(s.VX) != moveDir
		a := accel
		if turning {
			a = decel
		}
		s.VX += a * DT * moveDir
	case wasGrounded:
		applyZeroCrossing(&s.VX, friction*DT)
	}

	if !wasGrounded && p.AirDrag > 0 {
		applyZeroCrossing(&s.VX, p.AirDrag*DT)
	}

	s.VX = clamp32(s.VX, -maxSpeed, maxSpeed)
}

// applyZeroCrossing decays v toward zero by delta, clamping at zero
// rather than overshooting past it. Used for ground friction and air
// drag, which share the same rule.
func applyZeroCrossing(v *float32, delta float32) {
	if abs32(*v) <= delta {
		*v = 0
		return
	}
	*v -= sign32(*v) * delta
}

// applyVertical implements gravity, fast fall, and the vertical
// clamp of section 4.2.
func applyVertical(p *Params, s *State, down bool) {
	g := p.GravityDown
	if s.VY < 0 {
		g = p.GravityUp
	}
	if down && s.VY > 0 {
		g *= p.FastFallMultiplier
	}
	s.VY += g * DT
	s.VY = clamp32(s.VY, -5000, p.TerminalVelocity)
}

// resolveGrounding implements section 4.4: either a snap probe that
// latches onto the first matching collider in world order, or a plain
// carry-forward of whether any substep's Y resolution hit ground.
func resolveGrounding(p *Params, w World, r *Rect, s *State, hitGroundAny bool) bool {
	if p.SnapToGround <= 0 {
		return hitGroundAny
	}

	probeDY := Round32(p.SnapToGround)
	probe := *r
	probe.Y += probeDY

	for _, c := range w {
		if !intersects(probe, c) {
			continue
		}
		if r.Y+r.H <= c.Y+probeDY {
			r.Y = c.Y - r.H
			s.Y = r.Y
		}
		return true
	}
	return false
}

// applyWrap implements section 4.5's horizontal topology.
func applyWrap(p *Params, s *State) {
	switch WrapMode(Round32(p.WorldWrapMode)) {
	case WrapEdge:
		width := Round32(max32(p.WorldW, 1))
		left := Round32(s.X)
		right := left + Round32(s.W)
		switch {
		case left < 0:
			left = width - Round32(s.W)
		case right > width:
			left = 0
		}
		s.X = left
	case WrapCenter:
		width := max32(p.WorldW, 1)
		center := s.X + 0.5*s.W
		wrapped := mod32(center, width)
		s.X = Round32(wrapped - 0.5*s.W)
	}
}
