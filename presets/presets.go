// Package presets loads tuning data for core.Params from embedded
// YAML documents. Alternate tunings are data, never code paths: the
// core never branches on which preset produced its Params.
package presets

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hoodev/fixedstep/core"
)

//go:embed classic.yaml
var classicYAML []byte

//go:embed floaty.yaml
var floatyYAML []byte

//go:embed tight.yaml
var tightYAML []byte

var builtins = map[string][]byte{
	"classic": classicYAML,
	"floaty":  floatyYAML,
	"tight":   tightYAML,
}

// doc mirrors core.Params field-for-field with yaml tags; it exists
// so the wire format can use snake_case keys without tagging the
// physics struct itself.
type doc struct {
	GroundMaxSpeed float32 `yaml:"ground_max_speed"`
	GroundAccel    float32 `yaml:"ground_accel"`
	GroundDecel    float32 `yaml:"ground_decel"`
	GroundFriction float32 `yaml:"ground_friction"`
	RunMultiplier  float32 `yaml:"run_multiplier"`

	AirMaxSpeed float32 `yaml:"air_max_speed"`
	AirAccel    float32 `yaml:"air_accel"`
	AirDecel    float32 `yaml:"air_decel"`
	AirDrag     float32 `yaml:"air_drag"`

	GravityUp          float32 `yaml:"gravity_up"`
	GravityDown        float32 `yaml:"gravity_down"`
	TerminalVelocity   float32 `yaml:"terminal_velocity"`
	FastFallMultiplier float32 `yaml:"fast_fall_multiplier"`

	JumpVelocity      float32 `yaml:"jump_velocity"`
	JumpCutMultiplier float32 `yaml:"jump_cut_multiplier"`
	CoyoteTime        float32 `yaml:"coyote_time"`
	JumpBuffer        float32 `yaml:"jump_buffer"`

	SnapToGround float32 `yaml:"snap_to_ground"`
	MaxStepPx    float32 `yaml:"max_step_px"`

	WorldW        float32 `yaml:"world_w"`
	WorldWrapMode float32 `yaml:"world_wrap_mode"`
}

func (d doc) toParams() core.Params {
	return core.Params{
		GroundMaxSpeed: d.GroundMaxSpeed,
		GroundAccel:    d.GroundAccel,
		GroundDecel:    d.GroundDecel,
		GroundFriction: d.GroundFriction,
		RunMultiplier:  d.RunMultiplier,

		AirMaxSpeed: d.AirMaxSpeed,
		AirAccel:    d.AirAccel,
		AirDecel:    d.AirDecel,
		AirDrag:     d.AirDrag,

		GravityUp:          d.GravityUp,
		GravityDown:        d.GravityDown,
		TerminalVelocity:   d.TerminalVelocity,
		FastFallMultiplier: d.FastFallMultiplier,

		JumpVelocity:      d.JumpVelocity,
		JumpCutMultiplier: d.JumpCutMultiplier,
		CoyoteTime:        d.CoyoteTime,
		JumpBuffer:        d.JumpBuffer,

		SnapToGround: d.SnapToGround,
		MaxStepPx:    d.MaxStepPx,

		WorldW:        d.WorldW,
		WorldWrapMode: d.WorldWrapMode,
	}
}

// Names lists the built-in preset identifiers accepted by Load.
func Names() []string {
	return []string{"classic", "floaty", "tight"}
}

// Load decodes one of the embedded presets ("classic", "floaty",
// "tight") into a core.Params. An unknown name yields a
// core.BadInputError.
func Load(name string) (core.Params, error) {
	raw, ok := builtins[name]
	if !ok {
		return core.Params{}, &core.BadInputError{
			Kind: "preset",
			Err:  fmt.Errorf("unknown preset %q, want one of %v", name, Names()),
		}
	}
	return decode("preset", raw)
}

// LoadFile decodes a host-supplied YAML file with the same schema as
// the embedded presets.
func LoadFile(path string) (core.Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return core.Params{}, &core.BadInputError{Kind: "preset file", Err: err}
	}
	return decode("preset file", data)
}

func decode(kind string, raw []byte) (core.Params, error) {
	var d doc
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return core.Params{}, &core.BadInputError{Kind: kind, Err: err}
	}
	return d.toParams(), nil
}
