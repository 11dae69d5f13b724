package replay

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoodev/fixedstep/core"
)

func parityScenario() Scenario {
	frames := make([]core.Buttons, 180)
	for i := range frames {
		frames[i] = core.ButtonRight
	}
	frames[10] |= core.ButtonJump

	return Scenario{
		Params: core.Params{
			GroundMaxSpeed: 90, GroundAccel: 600, GroundDecel: 800, GroundFriction: 700, RunMultiplier: 1.6,
			AirMaxSpeed: 90, AirAccel: 400, AirDecel: 400, AirDrag: 0,
			GravityUp: 2000, GravityDown: 2300, TerminalVelocity: 1200, FastFallMultiplier: 1.7,
			JumpVelocity: 520, JumpCutMultiplier: 0.5, CoyoteTime: 0.1, JumpBuffer: 0.12,
			SnapToGround: 6, MaxStepPx: 8,
			WorldW: 960, WorldWrapMode: 0,
		},
		World:  []float32{0, 480, 960, 60},
		State:  core.State{X: 80, Y: 480 - 44, W: 28, H: 44},
		Frames: frames,
	}
}

func TestRunIsDeterministicAcrossIndependentCalls(t *testing.T) {
	sc := parityScenario()
	world, err := core.DecodeWorld(sc.World)
	require.NoError(t, err)

	records1, counts1, final1, err := Run(sc, world)
	require.NoError(t, err)
	records2, counts2, final2, err := Run(sc, world)
	require.NoError(t, err)

	require.Equal(t, len(records1), len(records2))
	for i := range records1 {
		assert.Equal(t, records1[i], records2[i], "frame %d diverged", i)
	}
	assert.Equal(t, counts1, counts2)
	assert.Equal(t, final1, final2)
	assert.Equal(t, Hash(final1, counts1), Hash(final2, counts2))
}

func TestWriteCSVColumnOrder(t *testing.T) {
	records := []FrameRecord{
		{Frame: 0, X: 1, Y: 2, VX: 3, VY: 4, Grounded: true},
		{Frame: 1, X: 5, Y: 6, VX: 7, VY: 8, Grounded: false},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, records))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "frame,x,y,vx,vy,grounded", lines[0])
}

func TestDecodeScenarioRejectsBadWorld(t *testing.T) {
	payload := `{"params":{},"world":[1,2,3],"state":{},"frames":[]}`
	_, _, err := DecodeScenario(strings.NewReader(payload))
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrBadInput)
}

func TestDecodeScenarioRejectsMalformedJSON(t *testing.T) {
	_, _, err := DecodeScenario(strings.NewReader("{not json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrBadInput)
}
