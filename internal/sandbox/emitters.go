package sandbox

// EmitterKind identifies an environmental particle source.
type EmitterKind uint8

const (
	EmitterRain EmitterKind = iota
	EmitterSnow
	EmitterDust

	emitterCount = 3
)

// String returns the emitter name.
func (k EmitterKind) String() string {
	switch k {
	case EmitterRain:
		return "rain"
	case EmitterSnow:
		return "snow"
	case EmitterDust:
		return "dust"
	default:
		return "unknown"
	}
}

// EmitterState holds the externally controlled knobs of one emitter plus the
// fractional spawn carry that keeps rates correct at any dt.
type EmitterState struct {
	Active    bool
	Intensity float64

	spawnDebt float64
}

// runEmitters spawns intensity*baseRate particles per second for each active
// emitter, carrying fractional remainders between ticks.
func (e *Engine) runEmitters(dt float64) {
	if dt <= 0 {
		return
	}
	p := &e.cfg.Params
	rates := [emitterCount]float64{p.RainBaseRate, p.SnowBaseRate, p.DustBaseRate}
	for kind := range e.emitters {
		state := &e.emitters[kind]
		if !state.Active || state.Intensity <= 0 {
			continue
		}
		state.spawnDebt += state.Intensity * rates[kind] * dt
		for state.spawnDebt >= 1 {
			state.spawnDebt--
			e.spawnEmitterParticle(EmitterKind(kind))
		}
	}
}

func (e *Engine) spawnEmitterParticle(kind EmitterKind) {
	switch kind {
	case EmitterRain:
		e.spawnRain()
	case EmitterSnow:
		e.spawnSnow()
	case EmitterDust:
		e.spawnDust()
	}
}

func (e *Engine) spawnRain() {
	p := &e.cfg.Params
	life := e.rng.Range(3, 6)
	e.pool.spawn(Particle{
		X:    e.rng.Range(0, float64(e.w)),
		Y:    e.rng.Range(0, float64(e.h)),
		Z:    p.RenderScale * e.rng.Range(1.1, 1.4),
		VX:   e.rng.Jitter(0, 2),
		VY:   e.rng.Jitter(0, 2),
		VZ:   -e.rng.Range(0.5, 0.8) * p.RenderScale,
		Life: life,
		Size: e.rng.Range(0.8, 1.4),
		R:    90, G: 140, B: 220, A: 200,
		Kind: ParticleRain,
	})
}

func (e *Engine) spawnSnow() {
	p := &e.cfg.Params
	life := e.rng.Range(6, 10)
	e.pool.spawn(Particle{
		X:    e.rng.Range(0, float64(e.w)),
		Y:    e.rng.Range(0, float64(e.h)),
		Z:    p.RenderScale * e.rng.Range(1.1, 1.4),
		VX:   e.rng.Jitter(0, 4),
		VY:   e.rng.Jitter(0, 4),
		VZ:   -e.rng.Range(0.05, 0.12) * p.RenderScale,
		Life: life,
		Size: e.rng.Range(1.0, 1.8),
		R:    235, G: 240, B: 250, A: 230,
		Kind: ParticleSnow,
	})
}

// spawnDust drifts near the surface; a fraction of spawns become the buoyant
// steam variant instead.
func (e *Engine) spawnDust() {
	p := &e.cfg.Params
	x := e.rng.Range(0, float64(e.w))
	y := e.rng.Range(0, float64(e.h))
	surface := e.height.At(int(x), int(y)) * p.RenderScale

	if e.rng.Chance(p.SteamChance) {
		e.pool.spawn(Particle{
			X: x, Y: y,
			Z:    surface + e.rng.Range(0.5, 2),
			VX:   e.rng.Jitter(0, 1.5),
			VY:   e.rng.Jitter(0, 1.5),
			VZ:   e.rng.Range(2, 6),
			Life: e.rng.Range(1.5, 3),
			Size: e.rng.Range(1.2, 2.2),
			R:    210, G: 210, B: 215, A: 120,
			Kind: ParticleSteam,
		})
		return
	}
	e.pool.spawn(Particle{
		X: x, Y: y,
		Z:    surface + e.rng.Range(0.5, 3),
		VX:   e.rng.Jitter(0, 6),
		VY:   e.rng.Jitter(0, 6),
		VZ:   e.rng.Jitter(0, 1),
		Life: e.rng.Range(0.8, 2),
		Size: e.rng.Range(0.6, 1.2),
		R:    170, G: 140, B: 100, A: 150,
		Kind: ParticleDust,
	})
}
