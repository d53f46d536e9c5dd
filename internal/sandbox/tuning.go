package sandbox

import (
	"math"
	"strconv"
	"sync"
)

// ErosionResult captures telemetry from a deterministic erosion run used for
// tuning.
type ErosionResult struct {
	// CarvedVolume sums the height removed from cells that ended lower
	// than they started.
	CarvedVolume float64
	// DepositedVolume sums the height added to cells that ended higher.
	DepositedVolume float64
	// MaxDeepening records the largest single-cell height loss.
	MaxDeepening float64
	// CellsTouched counts cells whose height changed at all.
	CellsTouched int
	// Relief is the final max-min height spread.
	Relief float64
	// TicksSimulated reports how many update ticks executed.
	TicksSimulated int
}

// SweepRecord documents a single improvement encountered while exploring the
// tuning parameter space.
type SweepRecord struct {
	Pass      int
	Parameter string
	Value     string
	Result    ErosionResult
	Params    Params
}

// ErosionProfile runs a deterministic erosion scenario with the provided
// configuration and returns carving telemetry.
//
// The helper resets the engine to its seeded relief, disables emitters, runs
// erosion for the requested number of ticks, and compares the final
// heightfield against the initial one.
func ErosionProfile(cfg Config, ticks int) ErosionResult {
	if ticks <= 0 {
		return ErosionResult{}
	}

	cfg.Params.RainBaseRate = 0
	cfg.Params.SnowBaseRate = 0
	cfg.Params.DustBaseRate = 0
	eng, err := NewWithConfig(cfg)
	if err != nil {
		return ErosionResult{}
	}
	eng.Reset(0)

	before := append([]float64(nil), eng.Heights()...)
	for t := 0; t < ticks; t++ {
		eng.Update(1.0 / 60)
	}

	result := ErosionResult{TicksSimulated: ticks}
	minH, maxH := math.Inf(1), math.Inf(-1)
	for i, h := range eng.Heights() {
		delta := h - before[i]
		switch {
		case delta < 0:
			result.CarvedVolume += -delta
			result.CellsTouched++
			if -delta > result.MaxDeepening {
				result.MaxDeepening = -delta
			}
		case delta > 0:
			result.DepositedVolume += delta
			result.CellsTouched++
		}
		if h < minH {
			minH = h
		}
		if h > maxH {
			maxH = h
		}
	}
	result.Relief = maxH - minH
	return result
}

type floatSpec struct {
	name   string
	values []float64
	getter func(Params) float64
	setter func(*Params, float64)
}

// ErosionParameterSweep performs a coarse coordinate-descent search across
// the erosion tunables, maximizing carved volume, and returns the best
// parameter set discovered along with the associated telemetry and an
// improvement trace. Candidate evaluations run on a bounded worker pool.
func ErosionParameterSweep(base Config, ticks, passes, workers int) (Params, ErosionResult, []SweepRecord) {
	if ticks <= 0 {
		ticks = 120
	}
	if passes <= 0 {
		passes = 1
	}
	if workers <= 0 {
		workers = 1
	}

	specs := []floatSpec{
		{
			name:   "inertia",
			values: []float64{0.01, 0.05, 0.1, 0.2, 0.4},
			getter: func(p Params) float64 { return p.Inertia },
			setter: func(p *Params, v float64) { p.Inertia = v },
		},
		{
			name:   "sediment_capacity",
			values: []float64{1, 2, 4, 8},
			getter: func(p Params) float64 { return p.SedimentCapacity },
			setter: func(p *Params, v float64) { p.SedimentCapacity = v },
		},
		{
			name:   "solubility",
			values: []float64{0.005, 0.01, 0.02, 0.05},
			getter: func(p Params) float64 { return p.SedimentSolubility },
			setter: func(p *Params, v float64) { p.SedimentSolubility = v },
		},
		{
			name:   "deposition_rate",
			values: []float64{0.1, 0.3, 0.5, 0.8},
			getter: func(p Params) float64 { return p.DepositionRate },
			setter: func(p *Params, v float64) { p.DepositionRate = v },
		},
		{
			name:   "evaporation_rate",
			values: []float64{0.005, 0.01, 0.02, 0.05},
			getter: func(p Params) float64 { return p.EvaporationRate },
			setter: func(p *Params, v float64) { p.EvaporationRate = v },
		},
	}

	best := base.Params
	bestResult := ErosionProfile(base, ticks)
	trace := []SweepRecord{{Pass: 0, Parameter: "baseline", Result: bestResult, Params: best}}

	type candidate struct {
		spec  int
		value float64
	}
	type outcome struct {
		candidate
		result ErosionResult
	}

	for pass := 1; pass <= passes; pass++ {
		improved := false
		for si, spec := range specs {
			current := spec.getter(best)
			var pending []candidate
			for _, v := range spec.values {
				if v == current {
					continue
				}
				pending = append(pending, candidate{spec: si, value: v})
			}
			if len(pending) == 0 {
				continue
			}

			results := make([]outcome, len(pending))
			jobs := make(chan int)
			var wg sync.WaitGroup
			for w := 0; w < workers; w++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for i := range jobs {
						cand := pending[i]
						cfg := base
						cfg.Params = best
						specs[cand.spec].setter(&cfg.Params, cand.value)
						results[i] = outcome{candidate: cand, result: ErosionProfile(cfg, ticks)}
					}
				}()
			}
			for i := range pending {
				jobs <- i
			}
			close(jobs)
			wg.Wait()

			for _, out := range results {
				if out.result.CarvedVolume <= bestResult.CarvedVolume {
					continue
				}
				bestResult = out.result
				specs[out.spec].setter(&best, out.value)
				improved = true
				trace = append(trace, SweepRecord{
					Pass:      pass,
					Parameter: specs[out.spec].name,
					Value:     strconv.FormatFloat(out.value, 'f', -1, 64),
					Result:    out.result,
					Params:    best,
				})
			}
		}
		if !improved {
			break
		}
	}

	return best, bestResult, trace
}
