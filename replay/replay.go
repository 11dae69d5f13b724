// Package replay implements the optional host tool described in the
// core's external interfaces: it drives core.Step across a recorded
// scenario and emits the CSV trace that conforming implementations
// must agree on bit-for-bit.
package replay

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"io"
	"math"

	"github.com/gocarina/gocsv"

	"github.com/hoodev/fixedstep/core"
)

// Scenario is the JSON-decodable input to Run: an initial state, the
// tuning parameters, a flat world buffer, and one button bitset per
// frame. The wire format is pinned to JSON by the specification,
// unlike the parameter presets which use YAML.
type Scenario struct {
	Params core.Params    `json:"params"`
	World  []float32      `json:"world"`
	State  core.State     `json:"state"`
	Frames []core.Buttons `json:"frames"`
}

// FrameRecord is one row of the portability-oracle CSV: the columns
// named in the specification, in that order, tagged for gocsv.
type FrameRecord struct {
	Frame    int     `csv:"frame"`
	X        float32 `csv:"x"`
	Y        float32 `csv:"y"`
	VX       float32 `csv:"vx"`
	VY       float32 `csv:"vy"`
	Grounded bool    `csv:"grounded"`
}

// EventCounts totals the events fired across a run, used both for
// reporting and for the parity hash.
type EventCounts struct {
	Jumped int
	Landed int
	Bonked int
}

// DecodeScenario parses a JSON scenario payload, validating the world
// buffer through core.DecodeWorld so malformed input surfaces as a
// core.BadInputError before any Step runs.
func DecodeScenario(r io.Reader) (Scenario, core.World, error) {
	var sc Scenario
	if err := json.NewDecoder(r).Decode(&sc); err != nil {
		return Scenario{}, nil, &core.BadInputError{Kind: "scenario", Err: err}
	}
	world, err := core.DecodeWorld(sc.World)
	if err != nil {
		return Scenario{}, nil, err
	}
	return sc, world, nil
}

// Run steps the scenario to completion, returning one FrameRecord per
// frame, the running event counts, and the final core.State (the
// input to Hash). It calls core.Step exactly once per entry in
// sc.Frames, strictly in order.
func Run(sc Scenario, world core.World) ([]FrameRecord, EventCounts, core.State, error) {
	p := sc.Params
	s := sc.State

	records := make([]FrameRecord, 0, len(sc.Frames))
	var counts EventCounts

	for i, buttons := range sc.Frames {
		ev := core.Step(&p, world, &s, buttons)
		if ev.Jumped {
			counts.Jumped++
		}
		if ev.Landed {
			counts.Landed++
		}
		if ev.Bonked {
			counts.Bonked++
		}
		records = append(records, FrameRecord{
			Frame:    i,
			X:        s.X,
			Y:        s.Y,
			VX:       s.VX,
			VY:       s.VY,
			Grounded: s.Grounded,
		})
	}

	return records, counts, s, nil
}

// WriteCSV marshals records with gocsv, in the exact column order
// FrameRecord declares.
func WriteCSV(w io.Writer, records []FrameRecord) error {
	if err := gocsv.Marshal(records, w); err != nil {
		return fmt.Errorf("writing replay csv: %w", err)
	}
	return nil
}

// Hash is the deterministic parity oracle named in scenario F: an
// FNV-1a hash over the IEEE-754 bit patterns of the final state's
// X, Y, VX and VY, its Grounded flag, and the three event counts
// (the other State fields are not hashed), so two
// conforming implementations that agree on the trace also agree on
// this single number.
func Hash(final core.State, counts EventCounts) uint64 {
	h := fnv.New64a()
	write32 := func(f float32) {
		var buf [4]byte
		bits := math.Float32bits(f)
		buf[0] = byte(bits)
		buf[1] = byte(bits >> 8)
		buf[2] = byte(bits >> 16)
		buf[3] = byte(bits >> 24)
		h.Write(buf[:])
	}
	writeInt := func(n int) {
		var buf [8]byte
		u := uint64(n)
		for i := range buf {
			buf[i] = byte(u >> (8 * i))
		}
		h.Write(buf[:])
	}
	writeBool := func(b bool) {
		if b {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	}

	write32(final.X)
	write32(final.Y)
	write32(final.VX)
	write32(final.VY)
	writeBool(final.Grounded)
	writeInt(counts.Jumped)
	writeInt(counts.Landed)
	writeInt(counts.Bonked)

	return h.Sum64()
}
