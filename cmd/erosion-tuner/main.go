package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"strconv"
	"strings"

	"sandtable/internal/sandbox"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	ticks := flag.Int("ticks", 240, "number of ticks to simulate per candidate")
	passes := flag.Int("passes", 3, "coordinate-descent passes to execute")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel candidate evaluations")
	width := flag.Int("width", 192, "table width for tuning runs")
	height := flag.Int("height", 128, "table height for tuning runs")
	seed := flag.Int64("seed", 1337, "seed used for deterministic runs")
	droplets := flag.Int("droplets", 200, "droplets simulated per tick")
	manualOnly := flag.Bool("manual", false, "skip sweeping and only evaluate provided overrides")
	var overrides kvList
	flag.Var(&overrides, "set", "parameter override in key=value form (repeatable)")
	flag.Parse()

	cfg := sandbox.DefaultConfig()
	cfg.Width = *width
	cfg.Height = *height
	cfg.Seed = *seed
	cfg.Params.DropletsPerTick = *droplets

	for _, kv := range overrides {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		applyOverride(&cfg.Params, parts[0], parts[1])
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		log.Fatalf("invalid table dimensions %dx%d", cfg.Width, cfg.Height)
	}

	baseline := sandbox.ErosionProfile(cfg, *ticks)
	fmt.Printf("Baseline: carved %.3f, deposited %.3f, max deepening %.4f, cells touched %d, relief %.3f over %d ticks\n",
		baseline.CarvedVolume, baseline.DepositedVolume, baseline.MaxDeepening, baseline.CellsTouched, baseline.Relief, baseline.TicksSimulated)

	if *manualOnly {
		fmt.Println("Manual evaluation requested; skipping sweep.")
		printParams(cfg.Params)
		return
	}

	params, result, trace := sandbox.ErosionParameterSweep(cfg, *ticks, *passes, *workers)
	fmt.Printf("\nBest found: carved %.3f, deposited %.3f, max deepening %.4f, cells touched %d, relief %.3f\n",
		result.CarvedVolume, result.DepositedVolume, result.MaxDeepening, result.CellsTouched, result.Relief)
	printParams(params)

	if len(trace) > 1 {
		fmt.Println("\nImprovements:")
		for _, rec := range trace[1:] {
			fmt.Printf("  pass %d: %s=%s -> carved=%.3f, relief=%.3f\n",
				rec.Pass, rec.Parameter, rec.Value, rec.Result.CarvedVolume, rec.Result.Relief)
		}
	}
}

func applyOverride(params *sandbox.Params, key, value string) {
	switch key {
	case "inertia":
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			params.Inertia = v
		}
	case "sediment_capacity":
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			params.SedimentCapacity = v
		}
	case "min_slope":
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			params.MinSlope = v
		}
	case "solubility":
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			params.SedimentSolubility = v
		}
	case "deposition_rate":
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			params.DepositionRate = v
		}
	case "evaporation_rate":
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			params.EvaporationRate = v
		}
	case "gravity":
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			params.Gravity = v
		}
	case "talus_threshold":
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			params.TalusThreshold = v
		}
	case "talus_rate":
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			params.TalusRate = v
		}
	case "droplet_lifetime":
		if v, err := strconv.Atoi(value); err == nil && v > 0 {
			params.DropletLifetime = v
		}
	case "relief_bumps":
		if v, err := strconv.Atoi(value); err == nil && v >= 0 {
			params.ReliefBumps = v
		}
	}
}

func printParams(params sandbox.Params) {
	fmt.Println("Parameters:")
	fmt.Printf("  inertia=%.3f\n", params.Inertia)
	fmt.Printf("  sediment_capacity=%.3f\n", params.SedimentCapacity)
	fmt.Printf("  min_slope=%.3f\n", params.MinSlope)
	fmt.Printf("  solubility=%.3f\n", params.SedimentSolubility)
	fmt.Printf("  deposition_rate=%.3f\n", params.DepositionRate)
	fmt.Printf("  evaporation_rate=%.3f\n", params.EvaporationRate)
	fmt.Printf("  gravity=%.3f\n", params.Gravity)
	fmt.Printf("  talus_threshold=%.3f\n", params.TalusThreshold)
	fmt.Printf("  talus_rate=%.3f\n", params.TalusRate)
	fmt.Printf("  droplet_lifetime=%d\n", params.DropletLifetime)
}
