package sandbox

// relaxSlopes is the thermal half of the erosion model: wherever the height
// step between two adjacent cells exceeds the angle-of-repose threshold,
// loose material slides downhill until the slope settles back toward it.
// Each pass moves half the excess scaled by TalusRate; with the rate capped
// at 0.5 the transfers cannot push either cell outside [0, 1], so the pass
// conserves height mass exactly. Deltas accumulate over the full grid before
// applying, so iteration order cannot bias the result.
func (e *Engine) relaxSlopes() {
	p := &e.cfg.Params
	if p.TalusThreshold <= 0 || p.TalusRate <= 0 {
		return
	}
	heights := e.height.Cells()
	deltas := e.reposeDelta
	for i := range deltas {
		deltas[i] = 0
	}

	// Right and down neighbors visit every adjacent pair exactly once.
	for y := 0; y < e.h; y++ {
		row := y * e.w
		for x := 0; x < e.w; x++ {
			idx := row + x
			if x+1 < e.w {
				slideExcess(heights, deltas, idx, idx+1, p.TalusThreshold, p.TalusRate)
			}
			if y+1 < e.h {
				slideExcess(heights, deltas, idx, idx+e.w, p.TalusThreshold, p.TalusRate)
			}
		}
	}

	for i, d := range deltas {
		if d == 0 {
			continue
		}
		heights[i] = clamp01(heights[i] + d)
		e.dirty[i] = true
	}
}

// slideExcess books the transfer between one adjacent pair: material moves
// from the higher cell to the lower one when the step exceeds the threshold.
func slideExcess(heights, deltas []float64, a, b int, threshold, rate float64) {
	diff := heights[a] - heights[b]
	if diff < 0 {
		a, b = b, a
		diff = -diff
	}
	if diff <= threshold {
		return
	}
	transfer := (diff - threshold) * 0.5 * rate
	deltas[a] -= transfer
	deltas[b] += transfer
}
