package sandbox

import "image/color"

const (
	displayMaterialMask = 0x07
	displayWetBit       = 0x08
)

var sandboxPalette = buildSandboxPalette()

// Palette exposes the color palette used for rendering the terrain. The
// display buffer indexes into it.
func (e *Engine) Palette() []color.RGBA {
	return sandboxPalette
}

func buildSandboxPalette() []color.RGBA {
	palette := make([]color.RGBA, 16)
	for i := range palette {
		mat := Material(i & displayMaterialMask)
		wet := (i & displayWetBit) != 0
		palette[i] = toRGBA(paletteColorFor(mat, wet))
	}
	return palette
}

func toRGBA(c color.NRGBA) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func paletteColorFor(mat Material, wet bool) color.NRGBA {
	base := materialColor(mat)
	if wet {
		return blendColors(base, color.NRGBA{R: 40, G: 90, B: 180, A: 255}, 0.55)
	}
	return base
}

func materialColor(mat Material) color.NRGBA {
	switch mat {
	case MaterialWater:
		return color.NRGBA{R: 36, G: 78, B: 150, A: 255}
	case MaterialSand:
		return color.NRGBA{R: 206, G: 182, B: 120, A: 255}
	case MaterialSoil:
		return color.NRGBA{R: 120, G: 86, B: 52, A: 255}
	case MaterialGrass:
		return color.NRGBA{R: 72, G: 140, B: 70, A: 255}
	case MaterialRock:
		return color.NRGBA{R: 140, G: 140, B: 145, A: 255}
	case MaterialSnow:
		return color.NRGBA{R: 242, G: 245, B: 250, A: 255}
	default:
		return color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	}
}

func blendColors(base, overlay color.NRGBA, overlayWeight float64) color.NRGBA {
	if overlayWeight <= 0 {
		return base
	}
	if overlayWeight >= 1 {
		return overlay
	}
	br, bg, bb, ba := float64(base.R), float64(base.G), float64(base.B), float64(base.A)
	or, og, ob, oa := float64(overlay.R), float64(overlay.G), float64(overlay.B), float64(overlay.A)
	w := overlayWeight
	inv := 1 - w
	return color.NRGBA{
		R: uint8(br*inv + or*w + 0.5),
		G: uint8(bg*inv + og*w + 0.5),
		B: uint8(bb*inv + ob*w + 0.5),
		A: uint8(ba*inv + oa*w + 0.5),
	}
}

func encodeDisplayValue(mat Material, wet bool) uint8 {
	value := uint8(mat) & displayMaterialMask
	if wet {
		value |= displayWetBit
	}
	return value
}

func (e *Engine) rebuildDisplay() {
	water := e.waterCurr.Cells()
	threshold := e.cfg.Params.WaterVisibleDepth
	for i := range e.display {
		e.display[i] = encodeDisplayValue(e.material[i], water[i] > threshold)
	}
}
