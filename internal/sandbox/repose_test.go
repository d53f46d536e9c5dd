package sandbox

import (
	"math"
	"testing"
)

func TestSteepStepSlumpsTowardRepose(t *testing.T) {
	cfg := quietConfig(8, 8)
	cfg.Params.ReliefBaseLevel = 0.2
	eng, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	center := eng.height.Index(4, 4)
	eng.Heights()[center] = 0.8

	before := 0.0
	for _, h := range eng.Heights() {
		before += h
	}

	eng.relaxSlopes()

	// Each of the four 0.6 steps moves (0.6-threshold)/2 * rate downhill.
	p := cfg.Params
	transfer := (0.6 - p.TalusThreshold) * 0.5 * p.TalusRate
	wantCenter := 0.8 - 4*transfer
	if got := eng.Heights()[center]; math.Abs(got-wantCenter) > 1e-12 {
		t.Fatalf("slumped peak = %f, want %f", got, wantCenter)
	}
	for _, n := range []int{center - 1, center + 1, center - 8, center + 8} {
		if got := eng.Heights()[n]; math.Abs(got-(0.2+transfer)) > 1e-12 {
			t.Fatalf("neighbor %d = %f, want %f", n, got, 0.2+transfer)
		}
	}

	after := 0.0
	for i, h := range eng.Heights() {
		if h < 0 || h > 1 {
			t.Fatalf("height[%d] = %f escaped [0,1]", i, h)
		}
		after += h
	}
	if math.Abs(after-before) > 1e-9 {
		t.Fatalf("slump changed total mass: %f -> %f", before, after)
	}
}

func TestGentleSlopeIsStable(t *testing.T) {
	cfg := quietConfig(8, 8)
	eng, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	// Ramp with per-cell steps below the repose threshold.
	heights := eng.Heights()
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			heights[y*8+x] = float64(x) * 0.03
		}
	}

	eng.relaxSlopes()

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if got := heights[y*8+x]; got != float64(x)*0.03 {
				t.Fatalf("stable slope moved at (%d,%d): %f", x, y, got)
			}
		}
	}
}

func TestSlumpConservesMassOnSeededRelief(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 48
	cfg.Height = 48
	cfg.Seed = 13
	eng, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}

	before := 0.0
	for _, h := range eng.Heights() {
		before += h
	}
	for i := 0; i < 50; i++ {
		eng.relaxSlopes()
	}
	after := 0.0
	for i, h := range eng.Heights() {
		if h < 0 || h > 1 {
			t.Fatalf("height[%d] = %f escaped [0,1] while slumping", i, h)
		}
		after += h
	}
	if math.Abs(after-before) > 1e-9 {
		t.Fatalf("repeated slumping changed total mass: %f -> %f", before, after)
	}
}

func TestSlumpReclassifiesTouchedCells(t *testing.T) {
	cfg := quietConfig(16, 16)
	cfg.Params.ReliefBaseLevel = 0.1
	eng, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	spike := eng.height.Index(8, 8)
	eng.Heights()[spike] = 0.9
	eng.dirty[spike] = true

	eng.Update(0)

	for i, h := range eng.Heights() {
		if got, want := eng.Materials()[i], ClassifyHeight(h); got != want {
			t.Fatalf("material[%d] = %s inconsistent with height %f (want %s)", i, got, h, want)
		}
	}
	// The neighbors must have left the water band after catching material.
	if eng.Materials()[spike+1] == MaterialWater {
		t.Fatal("slump receiver was never reclassified")
	}
}

func TestSlumpDisabledByZeroRate(t *testing.T) {
	cfg := quietConfig(8, 8)
	cfg.Params.TalusRate = 0
	eng, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	center := eng.height.Index(4, 4)
	eng.Heights()[center] = 0.9

	eng.relaxSlopes()

	if got := eng.Heights()[center]; got != 0.9 {
		t.Fatalf("disabled slump moved material: %f", got)
	}
}
