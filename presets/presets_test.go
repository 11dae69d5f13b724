package presets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoodev/fixedstep/core"
)

func TestLoadBuiltinsRoundTrip(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			p, err := Load(name)
			require.NoError(t, err)

			assert.Greater(t, p.GroundMaxSpeed, float32(0))
			assert.Greater(t, p.JumpVelocity, float32(0))
			assert.Greater(t, p.TerminalVelocity, float32(0))
			assert.GreaterOrEqual(t, p.CoyoteTime, float32(0))
			assert.GreaterOrEqual(t, p.JumpBuffer, float32(0))

			// A freshly-settled state run through Step must hold every
			// invariant section 3 names, regardless of which preset
			// produced the params.
			w := core.World{{X: 0, Y: 200, W: 400, H: 16}}
			s := core.State{X: 50, Y: 178, W: 14, H: 22}
			for frame := 0; frame < 30; frame++ {
				core.Step(&p, w, &s, 0)
				assert.GreaterOrEqual(t, s.Coyote, float32(0))
				assert.GreaterOrEqual(t, s.JumpBuffer, float32(0))
				assert.LessOrEqual(t, s.VY, p.TerminalVelocity)
				assert.GreaterOrEqual(t, s.VY, float32(-5000))
			}
		})
	}
}

func TestLoadUnknownPresetIsBadInput(t *testing.T) {
	_, err := Load("does-not-exist")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrBadInput)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("/nonexistent/path/to/preset.yaml")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrBadInput)
}
