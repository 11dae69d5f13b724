// Command replay runs a JSON scenario through the physics core and
// writes the frame-by-frame CSV trace that conforming hosts must
// agree on bit-for-bit.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/hoodev/fixedstep/replay"
)

func main() {
	scenarioPath := flag.String("scenario", "", "path to a JSON scenario file (required)")
	outPath := flag.String("out", "replay.csv", "path to write the CSV trace")
	flag.Parse()

	if *scenarioPath == "" {
		log.Fatal("replay: -scenario is required")
	}

	in, err := os.Open(*scenarioPath)
	if err != nil {
		log.Fatalf("replay: opening scenario: %v", err)
	}
	defer in.Close()

	sc, world, err := replay.DecodeScenario(in)
	if err != nil {
		log.Fatalf("replay: decoding scenario: %v", err)
	}

	records, counts, final, err := replay.Run(sc, world)
	if err != nil {
		log.Fatalf("replay: running scenario: %v", err)
	}

	out, err := os.Create(*outPath)
	if err != nil {
		log.Fatalf("replay: creating output: %v", err)
	}
	defer out.Close()

	if err := replay.WriteCSV(out, records); err != nil {
		log.Fatalf("replay: writing csv: %v", err)
	}

	log.Printf("wrote %d frames to %s", len(records), *outPath)
	log.Printf("events: jumped=%d landed=%d bonked=%d", counts.Jumped, counts.Landed, counts.Bonked)
	log.Printf("final: x=%v y=%v vx=%v vy=%v grounded=%v", final.X, final.Y, final.VX, final.VY, final.Grounded)
	log.Printf("hash: %d", replay.Hash(final, counts))
}
