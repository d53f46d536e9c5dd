package sandbox

import "strconv"

// Params holds the tunable constants for sculpting, erosion, water flow and
// the particle system.
type Params struct {
	// UnitStep scales every sculpt tool's per-cell effect.
	UnitStep float64

	DropletsPerTick    int
	DropletLifetime    int
	Inertia            float64
	SedimentCapacity   float64
	MinSlope           float64
	SedimentSolubility float64
	DepositionRate     float64
	EvaporationRate    float64
	Gravity            float64
	DropletStartWater  float64
	DropletMinWater    float64

	// TalusThreshold is the per-cell height step beyond which loose
	// material slides downhill; TalusRate is the fraction of the excess
	// moved per tick. Rates above 0.5 could overshoot the clamp range, so
	// 0.5 is the hard ceiling.
	TalusThreshold float64
	TalusRate      float64

	FlowRate   float64
	HeadFactor float64

	PoolCapacity      int
	RainBaseRate      float64
	SnowBaseRate      float64
	DustBaseRate      float64
	SteamChance       float64
	SplashCount       int
	SplashMinImpact   float64
	Restitution       float64
	SurfaceDamping    float64
	ParticleGravity   float64
	RenderScale       float64
	WaterVisibleDepth float64
	ContourInterval   float64

	ReliefBumps     int
	ReliefBaseLevel float64
}

// Config controls the sand-table engine dimensions and tunables.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  256,
		Height: 160,
		Seed:   1337,
		Params: Params{
			UnitStep: 0.02,

			DropletsPerTick:    100,
			DropletLifetime:    30,
			Inertia:            0.05,
			SedimentCapacity:   4.0,
			MinSlope:           0.01,
			SedimentSolubility: 0.01,
			DepositionRate:     0.3,
			EvaporationRate:    0.01,
			Gravity:            4.0,
			DropletStartWater:  1.0,
			DropletMinWater:    0.01,

			TalusThreshold: 0.04,
			TalusRate:      0.5,

			FlowRate:   0.1,
			HeadFactor: 0.5,

			PoolCapacity:      2000,
			RainBaseRate:      120,
			SnowBaseRate:      80,
			DustBaseRate:      40,
			SteamChance:       0.25,
			SplashCount:       5,
			SplashMinImpact:   18,
			Restitution:       0.3,
			SurfaceDamping:    0.6,
			ParticleGravity:   55,
			RenderScale:       100,
			WaterVisibleDepth: 0.004,
			ContourInterval:   0.1,

			ReliefBumps:     24,
			ReliefBaseLevel: 0.35,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["unit_step"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.UnitStep = parsed
		}
	}
	if v, ok := cfg["droplets_per_tick"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.DropletsPerTick = parsed
		}
	}
	if v, ok := cfg["droplet_lifetime"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.DropletLifetime = parsed
		}
	}
	if v, ok := cfg["inertia"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed < 1 {
			c.Params.Inertia = parsed
		}
	}
	if v, ok := cfg["sediment_capacity"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.SedimentCapacity = parsed
		}
	}
	if v, ok := cfg["min_slope"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.MinSlope = parsed
		}
	}
	if v, ok := cfg["solubility"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.SedimentSolubility = parsed
		}
	}
	if v, ok := cfg["deposition_rate"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.DepositionRate = parsed
		}
	}
	if v, ok := cfg["evaporation_rate"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed < 1 {
			c.Params.EvaporationRate = parsed
		}
	}
	if v, ok := cfg["gravity"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.Gravity = parsed
		}
	}
	if v, ok := cfg["talus_threshold"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 0.5 {
			c.Params.TalusThreshold = parsed
		}
	}
	if v, ok := cfg["talus_rate"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 0.5 {
			c.Params.TalusRate = parsed
		}
	}
	if v, ok := cfg["flow_rate"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 0.25 {
			c.Params.FlowRate = parsed
		}
	}
	if v, ok := cfg["head_factor"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.HeadFactor = parsed
		}
	}
	if v, ok := cfg["pool_capacity"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.PoolCapacity = parsed
		}
	}
	if v, ok := cfg["rain_rate"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.RainBaseRate = parsed
		}
	}
	if v, ok := cfg["snow_rate"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.SnowBaseRate = parsed
		}
	}
	if v, ok := cfg["dust_rate"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.DustBaseRate = parsed
		}
	}
	if v, ok := cfg["splash_count"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.SplashCount = parsed
		}
	}
	if v, ok := cfg["restitution"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.Restitution = parsed
		}
	}
	if v, ok := cfg["render_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.RenderScale = parsed
		}
	}
	if v, ok := cfg["contour_interval"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 && parsed <= 1 {
			c.Params.ContourInterval = parsed
		}
	}
	return c
}
