package sandbox

import (
	"math"
	"testing"
)

// flatEngine builds a quiet engine over a level terrain at height 0.2, so the
// surface sits at 0.2*RenderScale in particle z units.
func flatEngine(t *testing.T) *Engine {
	t.Helper()
	cfg := quietConfig(32, 32)
	cfg.Params.ReliefBaseLevel = 0.2
	eng, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return eng
}

func TestHardWaterImpactSpawnsSplashBurst(t *testing.T) {
	eng := flatEngine(t)
	surface := 0.2 * eng.cfg.Params.RenderScale

	eng.pool.spawn(Particle{
		X: 8, Y: 8, Z: surface + 0.5,
		VZ:   -30,
		Life: 5, Size: 1,
		Kind: ParticleWater,
	})
	eng.updateParticles(0.02)

	want := 1 + eng.cfg.Params.SplashCount
	if got := eng.pool.count(); got != want {
		t.Fatalf("active particles = %d, want %d (impactor plus burst)", got, want)
	}
	splashes := 0
	for _, v := range eng.ActiveParticles() {
		if v.Kind == ParticleSplash {
			splashes++
		}
	}
	if splashes != eng.cfg.Params.SplashCount {
		t.Fatalf("splash particles = %d, want %d", splashes, eng.cfg.Params.SplashCount)
	}
}

func TestSoftImpactBouncesWithoutSplash(t *testing.T) {
	eng := flatEngine(t)
	surface := 0.2 * eng.cfg.Params.RenderScale

	eng.pool.spawn(Particle{
		X: 8, Y: 8, Z: surface + 0.1,
		VX: 10, VZ: -10,
		Life: 5, Size: 1,
		Kind: ParticleWater,
	})
	dt := 0.02
	eng.updateParticles(dt)

	if got := eng.pool.count(); got != 1 {
		t.Fatalf("active particles = %d, want 1 (no splash below threshold)", got)
	}
	pt := &eng.pool.slots[0]
	impact := 10 + eng.cfg.Params.ParticleGravity*dt
	wantVZ := impact * eng.cfg.Params.Restitution
	if math.Abs(pt.VZ-wantVZ) > 1e-9 {
		t.Fatalf("VZ after bounce = %f, want %f", pt.VZ, wantVZ)
	}
	wantVX := 10 * eng.cfg.Params.SurfaceDamping
	if math.Abs(pt.VX-wantVX) > 1e-9 {
		t.Fatalf("VX after bounce = %f, want %f", pt.VX, wantVX)
	}
	if pt.Z != surface {
		t.Fatalf("Z after bounce = %f, want clamp to surface %f", pt.Z, surface)
	}
}

func TestRainIsAbsorbedIntoStandingWater(t *testing.T) {
	eng := flatEngine(t)
	surface := 0.2 * eng.cfg.Params.RenderScale

	eng.pool.spawn(Particle{
		X: 8, Y: 8, Z: surface + 0.5,
		VZ:   -30,
		Life: 5, Size: 1,
		Kind: ParticleRain,
	})
	eng.updateParticles(0.02)

	if got := eng.pool.count(); got != 0 {
		t.Fatalf("active particles = %d, want 0 (rain absorbed on impact)", got)
	}
	depth := eng.WaterDepth()[8*eng.w+8]
	if math.Abs(depth-rainDepositDepth) > 1e-12 {
		t.Fatalf("standing water at impact cell = %g, want %g", depth, rainDepositDepth)
	}
}

func TestSplashBurstRespectsPoolCapacity(t *testing.T) {
	cfg := quietConfig(32, 32)
	cfg.Params.ReliefBaseLevel = 0.2
	cfg.Params.PoolCapacity = 3
	eng, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	surface := 0.2 * eng.cfg.Params.RenderScale

	eng.pool.spawn(Particle{
		X: 8, Y: 8, Z: surface + 0.5,
		VZ:   -30,
		Life: 5, Size: 1,
		Kind: ParticleWater,
	})
	eng.updateParticles(0.02)

	if got := eng.pool.count(); got != 3 {
		t.Fatalf("active particles = %d, want pool capacity 3", got)
	}
}

func TestPairCollisionSeparatesAndExchangesVelocity(t *testing.T) {
	eng := flatEngine(t)
	eng.pool.spawn(Particle{X: 5, Y: 5, Z: 80, VX: 2, Life: 5, Size: 0.5, Kind: ParticleSnow})
	eng.pool.spawn(Particle{X: 5.5, Y: 5, Z: 80, VX: -2, Life: 5, Size: 0.5, Kind: ParticleSnow})

	eng.collidePairs()

	a := &eng.pool.slots[0]
	b := &eng.pool.slots[1]
	rest := eng.cfg.Params.Restitution
	if math.Abs(a.X-4.75) > 1e-9 || math.Abs(b.X-5.75) > 1e-9 {
		t.Fatalf("positions after separation = %f, %f, want 4.75, 5.75", a.X, b.X)
	}
	if math.Abs(a.VX-(-2*rest)) > 1e-9 || math.Abs(b.VX-2*rest) > 1e-9 {
		t.Fatalf("velocities after exchange = %f, %f", a.VX, b.VX)
	}
	// Separated pairs must not interact again on the next pass.
	ax, bx := a.X, b.X
	eng.collidePairs()
	if a.X != ax || b.X != bx {
		t.Fatal("non-overlapping pair moved on a second pass")
	}
}
