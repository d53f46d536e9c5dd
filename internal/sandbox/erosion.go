package sandbox

import "math"

// droplet is the transient state of a single erosion pass. It never outlives
// runDroplets.
type droplet struct {
	x, y     float64
	vx, vy   float64
	speed    float64
	water    float64
	sediment float64
}

// runDroplets spawns the configured number of droplets at seeded-random cells
// and traces each one downhill, trading sediment with the heightfield as its
// carry capacity changes.
func (e *Engine) runDroplets() {
	for i := 0; i < e.cfg.Params.DropletsPerTick; i++ {
		d := droplet{
			x:     float64(e.rng.IntN(e.w)),
			y:     float64(e.rng.IntN(e.h)),
			water: e.cfg.Params.DropletStartWater,
		}
		e.traceDroplet(&d)
	}
}

func (e *Engine) traceDroplet(d *droplet) {
	p := &e.cfg.Params
	heights := e.height.Cells()
	for step := 0; step < p.DropletLifetime; step++ {
		gradX, gradY := e.gradientAt(int(d.x), int(d.y))

		d.vx = d.vx*p.Inertia - gradX*(1-p.Inertia)
		d.vy = d.vy*p.Inertia - gradY*(1-p.Inertia)
		speed := math.Hypot(d.vx, d.vy)
		if speed == 0 {
			return
		}
		d.vx /= speed
		d.vy /= speed
		d.speed = speed

		oldIdx := int(d.y)*e.w + int(d.x)
		oldHeight := heights[oldIdx]

		d.x += d.vx
		d.y += d.vy
		if d.x < 0 || d.x >= float64(e.w) || d.y < 0 || d.y >= float64(e.h) {
			return
		}
		idx := int(d.y)*e.w + int(d.x)

		// Downhill drops feed kinetic energy into the carry capacity.
		if drop := oldHeight - heights[idx]; drop > 0 {
			d.speed += drop * p.Gravity
		}

		capacity := math.Max(p.MinSlope, d.speed) * d.water * p.SedimentCapacity
		if d.sediment > capacity {
			deposit := (d.sediment - capacity) * p.DepositionRate
			heights[idx] = clamp01(heights[idx] + deposit)
			d.sediment -= deposit
		} else {
			erode := (capacity - d.sediment) * p.SedimentSolubility
			if erode > heights[idx] {
				erode = heights[idx]
			}
			heights[idx] -= erode
			d.sediment += erode
		}
		e.dirty[idx] = true

		d.water *= 1 - p.EvaporationRate
		if d.water < p.DropletMinWater {
			return
		}
	}
}

// gradientAt returns the central-difference height gradient at a cell,
// falling back to one-sided differences along the border.
func (e *Engine) gradientAt(x, y int) (float64, float64) {
	heights := e.height.Cells()
	x0, x1 := x-1, x+1
	if x0 < 0 {
		x0 = x
	}
	if x1 >= e.w {
		x1 = x
	}
	y0, y1 := y-1, y+1
	if y0 < 0 {
		y0 = y
	}
	if y1 >= e.h {
		y1 = y
	}
	gradX := (heights[y*e.w+x1] - heights[y*e.w+x0]) / 2
	gradY := (heights[y1*e.w+x] - heights[y0*e.w+x]) / 2
	return gradX, gradY
}
