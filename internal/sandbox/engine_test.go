package sandbox

import (
	"slices"
	"testing"
)

func TestNewRejectsBadDimensions(t *testing.T) {
	if _, err := New(0, 64); err == nil {
		t.Fatal("expected error for zero width")
	}
	if _, err := New(64, -3); err == nil {
		t.Fatal("expected error for negative height")
	}
}

func TestResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 48
	cfg.Height = 48
	a, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(a.Heights(), b.Heights()) {
		t.Fatal("identical seeds produced different initial terrain")
	}

	a.Update(1.0 / 60)
	a.Reset(0)
	if !slices.Equal(a.Heights(), b.Heights()) {
		t.Fatal("reset did not restore the seeded terrain")
	}
	if a.Tick() != 0 {
		t.Fatalf("tick after reset = %d", a.Tick())
	}
	if a.pool.count() != 0 {
		t.Fatalf("active particles after reset = %d", a.pool.count())
	}
}

func TestResetSeedOverride(t *testing.T) {
	eng, err := New(48, 48)
	if err != nil {
		t.Fatal(err)
	}
	base := slices.Clone(eng.Heights())
	eng.Reset(99)
	if slices.Equal(base, eng.Heights()) {
		t.Fatal("different seed produced identical terrain")
	}
	eng.Reset(0)
	if !slices.Equal(base, eng.Heights()) {
		t.Fatal("zero seed did not fall back to the configured seed")
	}
}

func TestSculptAppliesAtTickBoundary(t *testing.T) {
	cfg := quietConfig(32, 32)
	cfg.Params.ReliefBaseLevel = 0.3
	eng, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}

	eng.Sculpt(16, 16, 4, 1.0, ToolRaise)
	if eng.Heights()[16*32+16] != 0.3 {
		t.Fatal("sculpt mutated the heightfield before Update")
	}
	eng.Update(0)
	if eng.Heights()[16*32+16] <= 0.3 {
		t.Fatal("queued sculpt was not applied on Update")
	}
	// The queue must drain; a second tick must not reapply the command.
	after := eng.Heights()[16*32+16]
	eng.Update(0)
	if eng.Heights()[16*32+16] != after {
		t.Fatal("sculpt command applied twice")
	}
}

func TestStatsTracksExtremaAndParticles(t *testing.T) {
	cfg := quietConfig(8, 8)
	cfg.Params.ReliefBaseLevel = 0.5
	eng, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	eng.height.Set(0, 0, 0.1)
	eng.height.Set(7, 7, 0.9)
	eng.pool.spawn(Particle{Life: 1})
	eng.pool.spawn(Particle{Life: 1})

	s := eng.Stats()
	if s.MinHeight != 0.1 || s.MaxHeight != 0.9 {
		t.Fatalf("extrema = %f, %f", s.MinHeight, s.MaxHeight)
	}
	want := (0.1 + 0.9 + 62*0.5) / 64
	if diff := s.AvgHeight - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("avg height = %f, want %f", s.AvgHeight, want)
	}
	if s.ActiveParticles != 2 {
		t.Fatalf("active particles = %d", s.ActiveParticles)
	}
}

func TestParameterSettersClamp(t *testing.T) {
	eng, err := New(16, 16)
	if err != nil {
		t.Fatal(err)
	}
	if !eng.SetFloatParameter("flow_rate", 5) {
		t.Fatal("flow_rate rejected")
	}
	if eng.cfg.Params.FlowRate != 0.25 {
		t.Fatalf("flow_rate = %f, want clamp to 0.25", eng.cfg.Params.FlowRate)
	}
	if !eng.SetFloatParameter("restitution", -2) {
		t.Fatal("restitution rejected")
	}
	if eng.cfg.Params.Restitution != 0 {
		t.Fatalf("restitution = %f, want clamp to 0", eng.cfg.Params.Restitution)
	}
	if !eng.SetIntParameter("droplets_per_tick", 99999) {
		t.Fatal("droplets_per_tick rejected")
	}
	if eng.cfg.Params.DropletsPerTick != 2000 {
		t.Fatalf("droplets_per_tick = %d, want clamp to 2000", eng.cfg.Params.DropletsPerTick)
	}
	if eng.SetFloatParameter("no_such_key", 1) {
		t.Fatal("unknown float key accepted")
	}
	if eng.SetIntParameter("no_such_key", 1) {
		t.Fatal("unknown int key accepted")
	}
}

func TestDisplayEncodesMaterialAndWetness(t *testing.T) {
	cfg := quietConfig(8, 8)
	cfg.Params.ReliefBaseLevel = 0.5
	eng, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	idx := 3*8 + 3
	if got := eng.Cells()[idx]; got != uint8(MaterialSoil) {
		t.Fatalf("display value = %d, want bare %d", got, uint8(MaterialSoil))
	}
	eng.waterCurr.Cells()[idx] = cfg.Params.WaterVisibleDepth * 2
	eng.rebuildDisplay()
	if got := eng.Cells()[idx]; got != uint8(MaterialSoil)|displayWetBit {
		t.Fatalf("display value = %d, want wet bit set", got)
	}
	if int(uint8(MaterialSoil)|displayWetBit) >= len(eng.Palette()) {
		t.Fatal("palette has no entry for the wet value")
	}
}
