package sandbox

import "math"

// collideWithTerrain resolves a particle against the heightfield cell under
// it. Water-bearing kinds that hit hard enough burst into splash particles.
func (e *Engine) collideWithTerrain(idx int, pt *Particle) {
	p := &e.cfg.Params
	cx := int(pt.X)
	cy := int(pt.Y)
	surface := e.height.At(cx, cy) * p.RenderScale
	if pt.Z > surface {
		return
	}

	impact := -pt.VZ
	pt.Z = surface
	if pt.VZ < 0 {
		pt.VZ = -pt.VZ * p.Restitution
	}
	pt.VX *= p.SurfaceDamping
	pt.VY *= p.SurfaceDamping

	switch pt.Kind {
	case ParticleRain:
		// Rain is absorbed on impact; its water enters the standing layer.
		e.waterCurr.Cells()[cy*e.w+cx] += rainDepositDepth
		e.pool.release(idx)
	case ParticleWater, ParticleSplash:
		// Only hard impacts burst; a settling splash must not seed
		// another burst on every landing.
		if impact >= p.SplashMinImpact {
			e.spawnSplashBurst(pt.X, pt.Y, surface)
		}
	case ParticleSnow, ParticleDust:
		// Grounded flecks settle and expire quickly.
		if pt.Life > 0.4 {
			pt.Life = 0.4
		}
	}
}

// rainDepositDepth is the standing water added per absorbed raindrop.
const rainDepositDepth = 0.0004

// spawnSplashBurst emits the configured number of short-lived splash
// particles with randomized outward velocity. Pool exhaustion drops the
// remainder silently.
func (e *Engine) spawnSplashBurst(x, y, z float64) {
	p := &e.cfg.Params
	for i := 0; i < p.SplashCount; i++ {
		angle := e.rng.Range(0, 2*math.Pi)
		speed := e.rng.Range(3, 9)
		e.pool.spawn(Particle{
			X: x, Y: y, Z: z + 0.5,
			VX:   math.Cos(angle) * speed,
			VY:   math.Sin(angle) * speed,
			VZ:   e.rng.Range(6, 14),
			Life: e.rng.Range(0.25, 0.5),
			Size: e.rng.Range(0.4, 0.8),
			R:    150, G: 190, B: 240, A: 180,
			Kind: ParticleSplash,
		})
	}
}

// collidePairs separates overlapping particles and exchanges their
// velocities scaled by restitution. The pass is O(n^2) over active
// particles and is the dominant cost of a tick; pairs are resolved in
// ascending (i, j) index order so a fixed spawn history always converges to
// the same state.
func (e *Engine) collidePairs() {
	rest := e.cfg.Params.Restitution
	slots := e.pool.slots
	for i := 0; i < len(slots); i++ {
		a := &slots[i]
		if !a.Active {
			continue
		}
		for j := i + 1; j < len(slots); j++ {
			b := &slots[j]
			if !b.Active {
				continue
			}
			dx := b.X - a.X
			dy := b.Y - a.Y
			dz := b.Z - a.Z
			dist := math.Sqrt(dx*dx + dy*dy + dz*dz)
			minDist := a.Size + b.Size
			if dist >= minDist {
				continue
			}

			var nx, ny, nz float64
			if dist > 1e-9 {
				nx = dx / dist
				ny = dy / dist
				nz = dz / dist
			} else {
				nz = 1
			}
			overlap := minDist - dist
			half := overlap * 0.5
			a.X -= nx * half
			a.Y -= ny * half
			a.Z -= nz * half
			b.X += nx * half
			b.Y += ny * half
			b.Z += nz * half

			a.VX, b.VX = b.VX*rest, a.VX*rest
			a.VY, b.VY = b.VY*rest, a.VY*rest
			a.VZ, b.VZ = b.VZ*rest, a.VZ*rest
		}
	}
}
