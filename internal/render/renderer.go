//go:build ebiten

package render

import (
	"image/color"

	"sandtable/internal/sandbox"

	"github.com/hajimehoshi/ebiten/v2"
)

// TerrainPainter blits the engine's display buffer through its palette and
// draws the active particles on top.
type TerrainPainter struct {
	w, h  int
	img   *ebiten.Image
	buf   []byte
	pixel *ebiten.Image
}

// NewTerrainPainter allocates a painter for a grid of size w*h.
func NewTerrainPainter(w, h int) *TerrainPainter {
	tp := &TerrainPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	tp.img = ebiten.NewImage(w, h)
	tp.pixel = ebiten.NewImage(1, 1)
	tp.pixel.Fill(color.White)
	return tp
}

// Blit uploads the display cells into the painter image and draws it scaled.
func (tp *TerrainPainter) Blit(dst *ebiten.Image, cells []uint8, palette []color.RGBA, scale int) {
	if len(cells) != tp.w*tp.h {
		return
	}
	fillPaletteRGBA(tp.buf, cells, palette)
	tp.img.WritePixels(tp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(tp.img, op)
}

// DrawParticles paints each particle as a small scaled quad. Higher
// particles draw slightly larger, which reads as altitude from the top-down
// view.
func (tp *TerrainPainter) DrawParticles(dst *ebiten.Image, particles []sandbox.ParticleView, renderScale float64, scale int) {
	if tp.pixel == nil {
		return
	}
	for _, pt := range particles {
		size := pt.Size * float64(scale)
		if renderScale > 0 && pt.Z > 0 {
			size *= 1 + 0.4*(pt.Z/renderScale)
		}
		if size < 1 {
			size = 1
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(size, size)
		op.GeoM.Translate(pt.X*float64(scale)-size/2, pt.Y*float64(scale)-size/2)
		op.ColorM.Scale(float64(pt.R)/255.0, float64(pt.G)/255.0, float64(pt.B)/255.0, float64(pt.A)/255.0)
		dst.DrawImage(tp.pixel, op)
	}
}

// Size returns the dimensions of the underlying image.
func (tp *TerrainPainter) Size() (int, int) { return tp.w, tp.h }
