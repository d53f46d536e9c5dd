package sandbox

import (
	"fmt"
	"math"

	"sandtable/internal/core"
)

// Tool identifies a sculpting operation.
type Tool uint8

const (
	ToolRaise Tool = iota
	ToolLower
	ToolSmooth
	ToolWater
)

// String returns the tool name used by the HUD.
func (t Tool) String() string {
	switch t {
	case ToolRaise:
		return "raise"
	case ToolLower:
		return "lower"
	case ToolSmooth:
		return "smooth"
	case ToolWater:
		return "water"
	default:
		return "unknown"
	}
}

// Stats summarizes the engine state for telemetry and the HUD.
type Stats struct {
	MinHeight       float64
	MaxHeight       float64
	AvgHeight       float64
	ActiveParticles int
}

type commandKind uint8

const (
	commandSculpt commandKind = iota
	commandEmitter
)

// command is a deferred external request. Sculpt and emitter changes queue
// here and apply at the top of the next Update so they never interleave with
// a simulation pass that is iterating the grids.
type command struct {
	kind commandKind

	x, y     float64
	radius   float64
	strength float64
	tool     Tool

	emitter   EmitterKind
	active    bool
	intensity float64
}

// Engine owns the heightfield, the standing-water layers, the derived
// material grid and the particle pool. All state is mutated synchronously
// inside Update; there is no internal concurrency.
type Engine struct {
	cfg Config

	w, h int

	height      *core.FloatGrid
	waterCurr   *core.FloatGrid
	waterNext   *core.FloatGrid
	material    []Material
	dirty       []bool
	reposeDelta []float64

	pool     *particlePool
	emitters [emitterCount]EmitterState

	display []uint8

	commands []command

	rng  *core.RNG
	tick uint64
}

// New returns an engine with the given dimensions using defaults.
func New(w, h int) (*Engine, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns an engine configured from the provided options. It is
// the only operation that can fail: a grid with non-positive dimensions
// cannot exist.
func NewWithConfig(cfg Config) (*Engine, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("sandbox: invalid grid dimensions %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Params.PoolCapacity <= 0 {
		cfg.Params.PoolCapacity = DefaultConfig().Params.PoolCapacity
	}
	total := cfg.Width * cfg.Height
	e := &Engine{
		cfg:         cfg,
		w:           cfg.Width,
		h:           cfg.Height,
		height:      core.NewFloatGrid(cfg.Width, cfg.Height),
		waterCurr:   core.NewFloatGrid(cfg.Width, cfg.Height),
		waterNext:   core.NewFloatGrid(cfg.Width, cfg.Height),
		material:    make([]Material, total),
		dirty:       make([]bool, total),
		reposeDelta: make([]float64, total),
		pool:        newParticlePool(cfg.Params.PoolCapacity),
		display:     make([]uint8, total),
		rng:         core.NewRNG(cfg.Seed),
	}
	e.Reset(0)
	return e, nil
}

// Name returns the engine identifier.
func (e *Engine) Name() string { return "sandtable" }

// Size reports the grid dimensions.
func (e *Engine) Size() core.Size { return core.Size{W: e.w, H: e.h} }

// Heights exposes the height layer. Values are always within [0, 1].
func (e *Engine) Heights() []float64 { return e.height.Cells() }

// WaterDepth exposes the standing-water layer. Values are always >= 0.
func (e *Engine) WaterDepth() []float64 { return e.waterCurr.Cells() }

// Materials exposes the derived material labels.
func (e *Engine) Materials() []Material { return e.material }

// Cells exposes the display buffer consumed by the renderer.
func (e *Engine) Cells() []uint8 { return e.display }

// Tick reports how many updates have run since the last reset.
func (e *Engine) Tick() uint64 { return e.tick }

// RenderScale reports the elevation scale factor used for particle z values.
func (e *Engine) RenderScale() float64 { return e.cfg.Params.RenderScale }

// ContourInterval reports the height spacing between topographic iso-lines.
func (e *Engine) ContourInterval() float64 { return e.cfg.Params.ContourInterval }

// Reset rebuilds a deterministic initial terrain from the seed. A zero seed
// falls back to the configured one.
func (e *Engine) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = e.cfg.Seed
	}
	e.rng = core.NewRNG(effective)
	e.tick = 0
	e.commands = e.commands[:0]
	for i := range e.emitters {
		e.emitters[i] = EmitterState{}
	}
	e.pool.reset()

	e.height.Fill(clamp01(e.cfg.Params.ReliefBaseLevel))
	e.waterCurr.Fill(0)
	e.waterNext.Fill(0)
	e.seedRelief()

	for i := range e.material {
		e.material[i] = ClassifyHeight(e.height.Cells()[i])
		e.dirty[i] = false
	}
	e.rebuildDisplay()
}

// seedRelief stamps a handful of smooth radial bumps and dents so a fresh
// table has slopes for droplets and water to work against.
func (e *Engine) seedRelief() {
	heights := e.height.Cells()
	for b := 0; b < e.cfg.Params.ReliefBumps; b++ {
		cx := e.rng.Range(0, float64(e.w))
		cy := e.rng.Range(0, float64(e.h))
		radius := e.rng.Range(8, float64(min(e.w, e.h))/3)
		amp := e.rng.Range(0.08, 0.35)
		if e.rng.Chance(0.4) {
			amp = -amp * 0.6
		}
		minX := int(cx - radius)
		maxX := int(cx + radius)
		minY := int(cy - radius)
		maxY := int(cy + radius)
		for y := minY; y <= maxY; y++ {
			if y < 0 || y >= e.h {
				continue
			}
			for x := minX; x <= maxX; x++ {
				if x < 0 || x >= e.w {
					continue
				}
				dist := math.Hypot(float64(x)-cx, float64(y)-cy)
				if dist >= radius {
					continue
				}
				t := dist / radius
				weight := (math.Cos(t*math.Pi) + 1) * 0.5
				idx := e.height.Index(x, y)
				heights[idx] = clamp01(heights[idx] + amp*weight)
			}
		}
	}
}

// Sculpt queues a sculpting command for the next tick.
func (e *Engine) Sculpt(x, y, radius, strength float64, tool Tool) {
	e.commands = append(e.commands, command{
		kind:     commandSculpt,
		x:        x,
		y:        y,
		radius:   radius,
		strength: strength,
		tool:     tool,
	})
}

// SetEmitter queues an emitter configuration change for the next tick.
func (e *Engine) SetEmitter(kind EmitterKind, active bool, intensity float64) {
	e.commands = append(e.commands, command{
		kind:      commandEmitter,
		emitter:   kind,
		active:    active,
		intensity: intensity,
	})
}

// Emitter returns the current state of the given emitter.
func (e *Engine) Emitter(kind EmitterKind) EmitterState {
	if int(kind) >= len(e.emitters) {
		return EmitterState{}
	}
	return e.emitters[kind]
}

// Update advances the simulation by one tick of dt seconds: queued commands,
// droplet erosion, talus relaxation, water diffusion, lazy reclassification,
// emitter spawns, then particle integration and collisions.
func (e *Engine) Update(dt float64) {
	if dt < 0 {
		dt = 0
	}
	e.drainCommands()
	e.runDroplets()
	e.relaxSlopes()
	e.flowStep()
	e.reclassifyDirty()
	e.runEmitters(dt)
	e.updateParticles(dt)
	e.rebuildDisplay()
	e.tick++
}

func (e *Engine) drainCommands() {
	for _, cmd := range e.commands {
		switch cmd.kind {
		case commandSculpt:
			e.applySculpt(cmd)
		case commandEmitter:
			e.applyEmitter(cmd)
		}
	}
	e.commands = e.commands[:0]
}

func (e *Engine) applyEmitter(cmd command) {
	if int(cmd.emitter) >= len(e.emitters) {
		return
	}
	state := &e.emitters[cmd.emitter]
	state.Active = cmd.active
	state.Intensity = clamp(cmd.intensity, 0, 1)
	if !state.Active {
		state.spawnDebt = 0
	}
}

// Stats computes the height extrema and particle count for telemetry.
func (e *Engine) Stats() Stats {
	heights := e.height.Cells()
	s := Stats{MinHeight: heights[0], MaxHeight: heights[0]}
	sum := 0.0
	for _, h := range heights {
		if h < s.MinHeight {
			s.MinHeight = h
		}
		if h > s.MaxHeight {
			s.MaxHeight = h
		}
		sum += h
	}
	s.AvgHeight = sum / float64(len(heights))
	s.ActiveParticles = e.pool.count()
	return s
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
