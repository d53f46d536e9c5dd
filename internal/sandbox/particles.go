package sandbox

// ParticleKind enumerates the transient particle variants.
type ParticleKind uint8

const (
	ParticleRain ParticleKind = iota
	ParticleSnow
	ParticleDust
	ParticleSteam
	ParticleWater
	ParticleSplash
)

// String returns the particle kind name.
func (k ParticleKind) String() string {
	switch k {
	case ParticleRain:
		return "rain"
	case ParticleSnow:
		return "snow"
	case ParticleDust:
		return "dust"
	case ParticleSteam:
		return "steam"
	case ParticleWater:
		return "water"
	case ParticleSplash:
		return "splash"
	default:
		return "unknown"
	}
}

// Particle is a pooled transient visual entity. X/Y are grid coordinates, Z
// is elevation in render units (height*RenderScale is the surface).
type Particle struct {
	X, Y, Z    float64
	VX, VY, VZ float64

	Life    float64
	MaxLife float64
	Size    float64

	R, G, B, A uint8

	Kind   ParticleKind
	Active bool
}

// ParticleView is the read-only snapshot handed to the renderer.
type ParticleView struct {
	X, Y, Z    float64
	Size       float64
	R, G, B, A uint8
	Kind       ParticleKind
}

// particlePool is a fixed-capacity arena with a free list of inactive slots.
// Spawning pops the list in O(1); a full pool drops the request silently,
// which is the backpressure policy for every spawner including splashes.
type particlePool struct {
	slots  []Particle
	free   []int
	active int
}

func newParticlePool(capacity int) *particlePool {
	if capacity <= 0 {
		capacity = 1
	}
	p := &particlePool{
		slots: make([]Particle, capacity),
		free:  make([]int, 0, capacity),
	}
	p.reset()
	return p
}

// reset deactivates every slot and rebuilds the free list. Low indices are
// pushed last so they are handed out first, keeping snapshots stable across
// identical runs.
func (p *particlePool) reset() {
	p.free = p.free[:0]
	for i := len(p.slots) - 1; i >= 0; i-- {
		p.slots[i].Active = false
		p.free = append(p.free, i)
	}
	p.active = 0
}

// spawn claims a slot for the given particle. It reports false when the pool
// is exhausted.
func (p *particlePool) spawn(pt Particle) bool {
	if len(p.free) == 0 {
		return false
	}
	idx := p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]
	pt.Active = true
	if pt.MaxLife <= 0 {
		pt.MaxLife = pt.Life
	}
	p.slots[idx] = pt
	p.active++
	return true
}

// release returns a slot to the free list.
func (p *particlePool) release(idx int) {
	if idx < 0 || idx >= len(p.slots) || !p.slots[idx].Active {
		return
	}
	p.slots[idx].Active = false
	p.free = append(p.free, idx)
	p.active--
}

func (p *particlePool) count() int { return p.active }

func (p *particlePool) capacity() int { return len(p.slots) }

// ActiveParticles copies the live particles into a render snapshot.
func (e *Engine) ActiveParticles() []ParticleView {
	out := make([]ParticleView, 0, e.pool.count())
	for i := range e.pool.slots {
		pt := &e.pool.slots[i]
		if !pt.Active {
			continue
		}
		out = append(out, ParticleView{
			X: pt.X, Y: pt.Y, Z: pt.Z,
			Size: pt.Size,
			R:    pt.R, G: pt.G, B: pt.B, A: pt.A,
			Kind: pt.Kind,
		})
	}
	return out
}

// updateParticles ages, integrates and collides every active particle.
func (e *Engine) updateParticles(dt float64) {
	if dt <= 0 {
		return
	}
	p := &e.cfg.Params
	for i := range e.pool.slots {
		pt := &e.pool.slots[i]
		if !pt.Active {
			continue
		}
		pt.Life -= dt
		if pt.Life <= 0 {
			e.pool.release(i)
			continue
		}

		switch pt.Kind {
		case ParticleRain, ParticleWater, ParticleSplash:
			pt.VZ -= p.ParticleGravity * dt
		case ParticleSnow:
			pt.VZ -= p.ParticleGravity * 0.15 * dt
		case ParticleDust:
			pt.VZ -= p.ParticleGravity * 0.05 * dt
			pt.VX *= 1 - 0.4*dt
			pt.VY *= 1 - 0.4*dt
		case ParticleSteam:
			pt.VZ += p.ParticleGravity * 0.08 * dt
		}

		pt.X += pt.VX * dt
		pt.Y += pt.VY * dt
		pt.Z += pt.VZ * dt

		if pt.X < 0 || pt.X >= float64(e.w) || pt.Y < 0 || pt.Y >= float64(e.h) {
			e.pool.release(i)
			continue
		}

		e.collideWithTerrain(i, pt)
	}
	e.collidePairs()
}
