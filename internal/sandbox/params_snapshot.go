package sandbox

import (
	"strconv"

	"sandtable/internal/core"
)

func (e *Engine) Parameters() core.ParameterSnapshot {
	params := e.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", e.cfg.Width),
				intParam("h", "Height", e.cfg.Height),
				int64Param("seed", "Seed", e.cfg.Seed),
				floatParam("unit_step", "Sculpt unit step", params.UnitStep),
			},
		},
		{
			Name: "Erosion",
			Params: []core.Parameter{
				intParam("droplets_per_tick", "Droplets per tick", params.DropletsPerTick),
				intParam("droplet_lifetime", "Droplet lifetime", params.DropletLifetime),
				floatParam("inertia", "Inertia", params.Inertia),
				floatParam("sediment_capacity", "Sediment capacity", params.SedimentCapacity),
				floatParam("min_slope", "Min slope", params.MinSlope),
				floatParam("solubility", "Solubility", params.SedimentSolubility),
				floatParam("deposition_rate", "Deposition rate", params.DepositionRate),
				floatParam("evaporation_rate", "Evaporation rate", params.EvaporationRate),
				floatParam("gravity", "Gravity", params.Gravity),
				floatParam("talus_threshold", "Talus threshold", params.TalusThreshold),
				floatParam("talus_rate", "Talus rate", params.TalusRate),
			},
		},
		{
			Name: "Water",
			Params: []core.Parameter{
				floatParam("flow_rate", "Flow rate", params.FlowRate),
				floatParam("head_factor", "Head factor", params.HeadFactor),
			},
		},
		{
			Name: "Particles",
			Params: []core.Parameter{
				intParam("pool_capacity", "Pool capacity", params.PoolCapacity),
				floatParam("rain_rate", "Rain base rate", params.RainBaseRate),
				floatParam("snow_rate", "Snow base rate", params.SnowBaseRate),
				floatParam("dust_rate", "Dust base rate", params.DustBaseRate),
				intParam("splash_count", "Splash count", params.SplashCount),
				floatParam("restitution", "Restitution", params.Restitution),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the tunables adjustable from the HUD.
func (e *Engine) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "droplets_per_tick", Label: "Droplets/tick", Type: core.ParamTypeInt, Step: 25, Min: 0, Max: 2000, HasMin: true, HasMax: true},
		{Key: "inertia", Label: "Inertia", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 0.99, HasMin: true, HasMax: true},
		{Key: "sediment_capacity", Label: "Capacity", Type: core.ParamTypeFloat, Step: 0.25, Min: 0, Max: 16, HasMin: true, HasMax: true},
		{Key: "solubility", Label: "Solubility", Type: core.ParamTypeFloat, Step: 0.005, Min: 0, Max: 0.5, HasMin: true, HasMax: true},
		{Key: "deposition_rate", Label: "Deposition", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "evaporation_rate", Label: "Evaporation", Type: core.ParamTypeFloat, Step: 0.005, Min: 0, Max: 0.5, HasMin: true, HasMax: true},
		{Key: "talus_threshold", Label: "Talus slope", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 0.5, HasMin: true, HasMax: true},
		{Key: "flow_rate", Label: "Flow rate", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 0.25, HasMin: true, HasMax: true},
		{Key: "splash_count", Label: "Splash count", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 20, HasMin: true, HasMax: true},
		{Key: "restitution", Label: "Restitution", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetIntParameter applies a HUD adjustment to an integer tunable.
func (e *Engine) SetIntParameter(key string, value int) bool {
	if value < 0 {
		value = 0
	}
	switch key {
	case "droplets_per_tick":
		if value > 2000 {
			value = 2000
		}
		e.cfg.Params.DropletsPerTick = value
	case "droplet_lifetime":
		if value < 1 {
			value = 1
		}
		e.cfg.Params.DropletLifetime = value
	case "splash_count":
		if value > 20 {
			value = 20
		}
		e.cfg.Params.SplashCount = value
	default:
		return false
	}
	return true
}

// SetFloatParameter applies a HUD adjustment to a floating-point tunable.
func (e *Engine) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "inertia":
		e.cfg.Params.Inertia = clamp(value, 0, 0.99)
	case "sediment_capacity":
		e.cfg.Params.SedimentCapacity = clamp(value, 0, 16)
	case "min_slope":
		e.cfg.Params.MinSlope = clamp(value, 0, 1)
	case "solubility":
		e.cfg.Params.SedimentSolubility = clamp(value, 0, 0.5)
	case "deposition_rate":
		e.cfg.Params.DepositionRate = clamp(value, 0, 1)
	case "evaporation_rate":
		e.cfg.Params.EvaporationRate = clamp(value, 0, 0.5)
	case "talus_threshold":
		e.cfg.Params.TalusThreshold = clamp(value, 0, 0.5)
	case "talus_rate":
		e.cfg.Params.TalusRate = clamp(value, 0, 0.5)
	case "flow_rate":
		e.cfg.Params.FlowRate = clamp(value, 0, 0.25)
	case "head_factor":
		e.cfg.Params.HeadFactor = clamp(value, 0, 1)
	case "restitution":
		e.cfg.Params.Restitution = clamp(value, 0, 1)
	case "rain_rate":
		e.cfg.Params.RainBaseRate = clamp(value, 0, 1000)
	case "snow_rate":
		e.cfg.Params.SnowBaseRate = clamp(value, 0, 1000)
	case "dust_rate":
		e.cfg.Params.DustBaseRate = clamp(value, 0, 1000)
	default:
		return false
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
