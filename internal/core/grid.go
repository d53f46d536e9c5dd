package core

// FloatGrid stores a 2D grid of float64 cell values in row-major order.
type FloatGrid struct {
	W, H int
	data []float64
}

// NewFloatGrid allocates a grid with the given dimensions.
func NewFloatGrid(w, h int) *FloatGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &FloatGrid{W: w, H: h, data: make([]float64, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *FloatGrid) Cells() []float64 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *FloatGrid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell inside the grid.
func (g *FloatGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the value at (x, y). Coordinates must be in bounds.
func (g *FloatGrid) At(x, y int) float64 { return g.data[y*g.W+x] }

// Set writes the value at (x, y). Coordinates must be in bounds.
func (g *FloatGrid) Set(x, y int, v float64) { g.data[y*g.W+x] = v }

// Fill sets every cell to the provided value.
func (g *FloatGrid) Fill(v float64) {
	for i := range g.data {
		g.data[i] = v
	}
}

// CopyFrom overwrites this grid's cells with those of src. Dimensions must match.
func (g *FloatGrid) CopyFrom(src *FloatGrid) {
	if src == nil || src.W != g.W || src.H != g.H {
		return
	}
	copy(g.data, src.data)
}
