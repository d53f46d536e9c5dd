package ui

// contourMask marks the cells that lie on topographic iso-lines: a cell is
// on a contour when the height band it falls into differs from the band of
// its right or lower neighbor, so each line is a single cell wide and every
// band boundary is drawn exactly once.
func contourMask(heights []float64, w, h int, interval float64, mask []bool) {
	if interval <= 0 || len(heights) != w*h || len(mask) != w*h {
		return
	}
	for i := range mask {
		mask[i] = false
	}
	for y := 0; y < h; y++ {
		row := y * w
		for x := 0; x < w; x++ {
			idx := row + x
			band := heightBand(heights[idx], interval)
			if x+1 < w && heightBand(heights[idx+1], interval) != band {
				mask[idx] = true
				continue
			}
			if y+1 < h && heightBand(heights[idx+w], interval) != band {
				mask[idx] = true
			}
		}
	}
}

func heightBand(height, interval float64) int {
	return int(height / interval)
}
