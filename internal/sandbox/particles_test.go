package sandbox

import "testing"

func TestPoolDropsSpawnsBeyondCapacity(t *testing.T) {
	pool := newParticlePool(2000)
	for i := 0; i < 2001; i++ {
		pool.spawn(Particle{Life: 10, Size: 1})
	}
	if got := pool.count(); got != 2000 {
		t.Fatalf("active count = %d, want 2000", got)
	}
	// The overflow spawn must report the drop but not corrupt the pool.
	if pool.spawn(Particle{Life: 10}) {
		t.Fatal("spawn into a full pool succeeded")
	}
	if got := pool.count(); got != 2000 {
		t.Fatalf("active count after dropped spawn = %d", got)
	}
}

func TestPoolReusesReleasedSlots(t *testing.T) {
	pool := newParticlePool(4)
	for i := 0; i < 4; i++ {
		pool.spawn(Particle{Life: 1})
	}
	pool.release(2)
	if got := pool.count(); got != 3 {
		t.Fatalf("count after release = %d, want 3", got)
	}
	if !pool.spawn(Particle{Life: 5}) {
		t.Fatal("spawn failed with a free slot available")
	}
	if !pool.slots[2].Active || pool.slots[2].Life != 5 {
		t.Fatal("released slot was not reused")
	}
	// Double release must not inflate the free list.
	pool.release(2)
	pool.release(2)
	if got := pool.count(); got != 3 {
		t.Fatalf("count after double release = %d, want 3", got)
	}
}

func TestParticlesExpireAndLeaveBounds(t *testing.T) {
	cfg := quietConfig(16, 16)
	cfg.Params.ReliefBaseLevel = 0.0
	eng, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}

	eng.pool.spawn(Particle{X: 8, Y: 8, Z: 50, Life: 0.01, Size: 1, Kind: ParticleDust})
	eng.pool.spawn(Particle{X: 15.9, Y: 8, Z: 50, VX: 100, Life: 10, Size: 1, Kind: ParticleSnow})
	eng.pool.spawn(Particle{X: 8, Y: 8, Z: 80, Life: 10, Size: 1, Kind: ParticleSteam})

	eng.updateParticles(0.1)

	if got := eng.pool.count(); got != 1 {
		t.Fatalf("active count = %d, want 1 (expired and escaped particles released)", got)
	}
	views := eng.ActiveParticles()
	if len(views) != 1 || views[0].Kind != ParticleSteam {
		t.Fatalf("surviving particle = %+v", views)
	}
}

func TestEmitterSpawnRateCarriesFraction(t *testing.T) {
	cfg := quietConfig(32, 32)
	cfg.Params.RainBaseRate = 25
	eng, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	eng.emitters[EmitterRain] = EmitterState{Active: true, Intensity: 1}

	// 25 particles/sec at dt=0.1: 2.5 per tick, so 2 then 3.
	eng.runEmitters(0.1)
	if got := eng.pool.count(); got != 2 {
		t.Fatalf("first tick spawned %d, want 2", got)
	}
	eng.runEmitters(0.1)
	if got := eng.pool.count(); got != 5 {
		t.Fatalf("two ticks spawned %d, want 5", got)
	}
}

func TestSetEmitterAppliesAtTickBoundary(t *testing.T) {
	cfg := quietConfig(32, 32)
	eng, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}

	eng.SetEmitter(EmitterSnow, true, 2.5)
	if eng.Emitter(EmitterSnow).Active {
		t.Fatal("emitter change applied before the tick boundary")
	}
	eng.Update(0)
	state := eng.Emitter(EmitterSnow)
	if !state.Active {
		t.Fatal("emitter change lost")
	}
	if state.Intensity != 1 {
		t.Fatalf("intensity = %f, want clamp to 1", state.Intensity)
	}
}

func TestEmittersRespectPoolCapacity(t *testing.T) {
	cfg := quietConfig(32, 32)
	cfg.Params.PoolCapacity = 50
	cfg.Params.RainBaseRate = 10000
	eng, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	eng.emitters[EmitterRain] = EmitterState{Active: true, Intensity: 1}

	for i := 0; i < 5; i++ {
		eng.runEmitters(0.1)
	}
	if got := eng.pool.count(); got != 50 {
		t.Fatalf("active count = %d, want capacity 50", got)
	}
}
