package sandbox

// flowStep diffuses standing water toward lower hydraulic head. The next
// buffer is computed from the current one so iteration order cannot bias the
// result; buffers swap once at the end of the tick. Flow out of a cell is
// bounded by its own water, so the pass never creates mass.
func (e *Engine) flowStep() {
	p := &e.cfg.Params
	heights := e.height.Cells()
	curr := e.waterCurr.Cells()
	next := e.waterNext.Cells()
	copy(next, curr)

	for y := 1; y < e.h-1; y++ {
		row := y * e.w
		for x := 1; x < e.w-1; x++ {
			idx := row + x
			avail := curr[idx]
			if avail <= 0 {
				continue
			}
			head := heights[idx] + avail
			outflow := 0.0
			for _, n := range [4]int{idx - 1, idx + 1, idx - e.w, idx + e.w} {
				headN := heights[n] + curr[n]
				if head <= headN {
					continue
				}
				flow := avail * p.FlowRate
				if limit := (head - headN) * p.HeadFactor; limit < flow {
					flow = limit
				}
				if flow <= 0 {
					continue
				}
				next[n] += flow
				outflow += flow
			}
			if outflow > 0 {
				next[idx] -= outflow
				if next[idx] < 0 {
					next[idx] = 0
				}
			}
		}
	}

	e.waterCurr, e.waterNext = e.waterNext, e.waterCurr
}
