package sandbox

// Material labels a cell by the terrain band its height falls into.
type Material uint8

const (
	MaterialWater Material = iota
	MaterialSand
	MaterialSoil
	MaterialGrass
	MaterialRock
	MaterialSnow
)

// String returns the material name.
func (m Material) String() string {
	switch m {
	case MaterialWater:
		return "water"
	case MaterialSand:
		return "sand"
	case MaterialSoil:
		return "soil"
	case MaterialGrass:
		return "grass"
	case MaterialRock:
		return "rock"
	case MaterialSnow:
		return "snow"
	default:
		return "unknown"
	}
}

// ClassifyHeight maps a height value to its material band.
func ClassifyHeight(h float64) Material {
	switch {
	case h < 0.2:
		return MaterialWater
	case h < 0.4:
		return MaterialSand
	case h < 0.6:
		return MaterialSoil
	case h < 0.8:
		return MaterialGrass
	case h < 0.95:
		return MaterialRock
	default:
		return MaterialSnow
	}
}

// reclassifyDirty relabels only the cells whose height changed since the last
// pass. Sculpting and erosion mark cells; everything else reads the labels.
func (e *Engine) reclassifyDirty() {
	heights := e.height.Cells()
	for i, d := range e.dirty {
		if !d {
			continue
		}
		e.material[i] = ClassifyHeight(heights[i])
		e.dirty[i] = false
	}
}
