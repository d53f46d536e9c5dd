package sandbox

import "math"

// applySculpt dispatches a queued sculpt command. Out-of-bounds centers and
// non-positive radii are silent no-ops; user tool input is clamped, never
// rejected.
func (e *Engine) applySculpt(cmd command) {
	if cmd.radius <= 0 {
		return
	}
	cx := int(cmd.x)
	cy := int(cmd.y)
	if !e.height.InBounds(cx, cy) {
		return
	}
	switch cmd.tool {
	case ToolRaise:
		e.deformAt(cmd.x, cmd.y, cmd.radius, cmd.strength)
	case ToolLower:
		e.deformAt(cmd.x, cmd.y, cmd.radius, -cmd.strength)
	case ToolSmooth:
		e.smoothAt(cmd.x, cmd.y, cmd.radius, cmd.strength)
	case ToolWater:
		e.addWaterAt(cmd.x, cmd.y, cmd.radius, cmd.strength)
	}
}

// deformAt raises (positive strength) or lowers (negative) every cell within
// radius of (x, y) by strength*falloff*UnitStep, where falloff fades linearly
// from 1 at the center to 0 at the rim.
func (e *Engine) deformAt(x, y, radius, strength float64) {
	heights := e.height.Cells()
	step := strength * e.cfg.Params.UnitStep
	e.forEachInRadius(x, y, radius, func(idx int, falloff float64) {
		next := clamp01(heights[idx] + step*falloff)
		if next != heights[idx] {
			heights[idx] = next
			e.dirty[idx] = true
		}
	})
}

// smoothAt blends each covered cell toward the mean of its 3x3 neighborhood.
func (e *Engine) smoothAt(x, y, radius, strength float64) {
	heights := e.height.Cells()
	e.forEachInRadius(x, y, radius, func(idx int, falloff float64) {
		cx := idx % e.w
		cy := idx / e.w
		sum := 0.0
		count := 0
		for dy := -1; dy <= 1; dy++ {
			ny := cy + dy
			if ny < 0 || ny >= e.h {
				continue
			}
			for dx := -1; dx <= 1; dx++ {
				nx := cx + dx
				if nx < 0 || nx >= e.w {
					continue
				}
				sum += heights[ny*e.w+nx]
				count++
			}
		}
		if count == 0 {
			return
		}
		mean := sum / float64(count)
		blend := clamp(strength*falloff, 0, 1)
		next := clamp01(heights[idx] + (mean-heights[idx])*blend)
		if next != heights[idx] {
			heights[idx] = next
			e.dirty[idx] = true
		}
	})
}

// addWaterAt pours standing water; it feeds the flow solver rather than
// deforming terrain.
func (e *Engine) addWaterAt(x, y, radius, strength float64) {
	water := e.waterCurr.Cells()
	step := strength * e.cfg.Params.UnitStep
	if step <= 0 {
		return
	}
	e.forEachInRadius(x, y, radius, func(idx int, falloff float64) {
		water[idx] += step * falloff
	})
}

// forEachInRadius visits every cell within radius of (x, y), passing its
// linear index and linear falloff weight.
func (e *Engine) forEachInRadius(x, y, radius float64, fn func(idx int, falloff float64)) {
	minX := int(math.Floor(x - radius))
	maxX := int(math.Ceil(x + radius))
	minY := int(math.Floor(y - radius))
	maxY := int(math.Ceil(y + radius))
	for cy := minY; cy <= maxY; cy++ {
		if cy < 0 || cy >= e.h {
			continue
		}
		for cx := minX; cx <= maxX; cx++ {
			if cx < 0 || cx >= e.w {
				continue
			}
			dist := math.Hypot(float64(cx)-x, float64(cy)-y)
			if dist >= radius {
				continue
			}
			falloff := 1 - dist/radius
			if falloff <= 0 {
				continue
			}
			fn(cy*e.w+cx, falloff)
		}
	}
}
