package core

// defaultParams mirrors the values scenario A-E of the specification
// settle on, tuned for a 1/60s step with a single ground strip.
func defaultParams() Params {
	return Params{
		GroundMaxSpeed: 90,
		GroundAccel:    600,
		GroundDecel:    800,
		GroundFriction: 700,
		RunMultiplier:  1.6,

		AirMaxSpeed: 90,
		AirAccel:    400,
		AirDecel:    400,
		AirDrag:     0,

		GravityUp:          2000,
		GravityDown:        2300,
		TerminalVelocity:   1200,
		FastFallMultiplier: 1.7,

		JumpVelocity:      520,
		JumpCutMultiplier: 0.5,
		CoyoteTime:        0.1,
		JumpBuffer:        0.12,

		SnapToGround: 6,
		MaxStepPx:    8,

		WorldW:        240,
		WorldWrapMode: float32(WrapCenter),
	}
}

func groundWorld() World {
	return World{{X: 0, Y: 120, W: 240, H: 16}}
}

func idleState() State {
	return State{X: 28, Y: 98, W: 14, H: 22}
}
