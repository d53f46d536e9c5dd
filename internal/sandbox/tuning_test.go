package sandbox

import "testing"

func tuningConfig() Config {
	cfg := DefaultConfig()
	cfg.Width = 48
	cfg.Height = 48
	cfg.Params.DropletsPerTick = 50
	cfg.Params.RainBaseRate = 0
	cfg.Params.SnowBaseRate = 0
	cfg.Params.DustBaseRate = 0
	return cfg
}

func TestErosionProfileDeterministic(t *testing.T) {
	cfg := tuningConfig()
	a := ErosionProfile(cfg, 20)
	b := ErosionProfile(cfg, 20)
	if a != b {
		t.Fatalf("identical configs diverged: %+v vs %+v", a, b)
	}
	if a.TicksSimulated != 20 {
		t.Fatalf("ticks simulated = %d", a.TicksSimulated)
	}
	if a.CarvedVolume <= 0 {
		t.Fatal("erosion run carved nothing")
	}
	if a.CellsTouched == 0 {
		t.Fatal("erosion run touched no cells")
	}
}

func TestErosionProfileIgnoresEmitterRates(t *testing.T) {
	cfg := tuningConfig()
	base := ErosionProfile(cfg, 10)
	cfg.Params.RainBaseRate = 5000
	cfg.Params.SnowBaseRate = 5000
	cfg.Params.DustBaseRate = 5000
	if got := ErosionProfile(cfg, 10); got != base {
		t.Fatalf("emitter rates leaked into the profile: %+v vs %+v", got, base)
	}
}

func TestErosionProfileZeroTicks(t *testing.T) {
	if got := ErosionProfile(tuningConfig(), 0); got != (ErosionResult{}) {
		t.Fatalf("zero-tick profile = %+v, want zero value", got)
	}
	bad := tuningConfig()
	bad.Width = 0
	if got := ErosionProfile(bad, 10); got != (ErosionResult{}) {
		t.Fatalf("invalid-config profile = %+v, want zero value", got)
	}
}

func TestSweepNeverRegressesBaseline(t *testing.T) {
	cfg := tuningConfig()
	ticks := 10
	baseline := ErosionProfile(cfg, ticks)
	best, result, trace := ErosionParameterSweep(cfg, ticks, 1, 2)
	if result.CarvedVolume < baseline.CarvedVolume {
		t.Fatalf("sweep result %f carved less than baseline %f",
			result.CarvedVolume, baseline.CarvedVolume)
	}
	if len(trace) == 0 || trace[0].Parameter != "baseline" {
		t.Fatal("trace must start with the baseline record")
	}
	// The winning params must reproduce the reported telemetry.
	verify := cfg
	verify.Params = best
	if got := ErosionProfile(verify, ticks); got != result {
		t.Fatalf("best params replayed to %+v, want %+v", got, result)
	}
}
