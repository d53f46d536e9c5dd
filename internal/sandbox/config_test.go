package sandbox

import "testing"

func TestFromMapOverrides(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":                 "64",
		"h":                 "40",
		"seed":              "42",
		"droplets_per_tick": "250",
		"inertia":           "0.2",
		"flow_rate":         "0.05",
		"splash_count":      "8",
	})
	if cfg.Width != 64 || cfg.Height != 40 {
		t.Fatalf("dimensions = %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Seed != 42 {
		t.Fatalf("seed = %d", cfg.Seed)
	}
	if cfg.Params.DropletsPerTick != 250 {
		t.Fatalf("droplets_per_tick = %d", cfg.Params.DropletsPerTick)
	}
	if cfg.Params.Inertia != 0.2 {
		t.Fatalf("inertia = %f", cfg.Params.Inertia)
	}
	if cfg.Params.FlowRate != 0.05 {
		t.Fatalf("flow_rate = %f", cfg.Params.FlowRate)
	}
	if cfg.Params.SplashCount != 8 {
		t.Fatalf("splash_count = %d", cfg.Params.SplashCount)
	}
}

func TestFromMapRejectsInvalidValues(t *testing.T) {
	def := DefaultConfig()
	cfg := FromMap(map[string]string{
		"w":         "not-a-number",
		"h":         "-5",
		"inertia":   "1.5",
		"flow_rate": "0.9",
	})
	if cfg.Width != def.Width || cfg.Height != def.Height {
		t.Fatalf("dimensions = %dx%d, want defaults", cfg.Width, cfg.Height)
	}
	if cfg.Params.Inertia != def.Params.Inertia {
		t.Fatalf("inertia = %f, want default", cfg.Params.Inertia)
	}
	if cfg.Params.FlowRate != def.Params.FlowRate {
		t.Fatalf("flow_rate = %f, want default", cfg.Params.FlowRate)
	}
}

func TestFromMapNilYieldsDefaults(t *testing.T) {
	if got, want := FromMap(nil), DefaultConfig(); got != want {
		t.Fatal("nil map must return the default config")
	}
}
