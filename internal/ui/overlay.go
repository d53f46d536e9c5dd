//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"sandtable/internal/sandbox"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws optional visuals on top of the table view: a standing-water
// depth tint, a sampled slope arrow field, and topographic contour lines.
type Overlay struct {
	eng   *sandbox.Engine
	scale int

	showWater    bool
	showSlope    bool
	showContours bool

	maskImg *ebiten.Image
	maskBuf []byte
	pixel   *ebiten.Image

	contourImg  *ebiten.Image
	contourBuf  []byte
	contourHits []bool

	slopeSamples []slopeSample
	cacheW       int
	cacheH       int
	cacheScale   int
}

type slopeSample struct {
	cx, cy int
	sx, sy float64
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(eng *sandbox.Engine, scale int) *Overlay {
	o := &Overlay{eng: eng, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles overlay layers from the keyboard.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showWater = !o.showWater
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showSlope = !o.showSlope
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showContours = !o.showContours
	}
}

// Draw renders the enabled overlay layers onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.eng.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	if o.showWater {
		o.drawWaterMask(screen, size.W, size.H)
	}
	if o.showContours {
		o.drawContourLines(screen, size.W, size.H)
	}
	if o.showSlope {
		o.drawSlopeField(screen, size.W, size.H)
	}
}

// drawContourLines overlays Magic-Sand style iso-lines at the engine's
// contour interval.
func (o *Overlay) drawContourLines(screen *ebiten.Image, w, h int) {
	total := w * h
	if o.contourImg == nil || o.contourImg.Bounds().Dx() != w || o.contourImg.Bounds().Dy() != h {
		o.contourImg = ebiten.NewImage(w, h)
		o.contourBuf = make([]byte, 4*total)
		o.contourHits = make([]bool, total)
	}

	heights := o.eng.Heights()
	if len(heights) != total {
		return
	}
	contourMask(heights, w, h, o.eng.ContourInterval(), o.contourHits)

	for i, hit := range o.contourHits {
		base := i * 4
		if !hit {
			o.contourBuf[base+0] = 0
			o.contourBuf[base+1] = 0
			o.contourBuf[base+2] = 0
			o.contourBuf[base+3] = 0
			continue
		}
		o.contourBuf[base+0] = 250
		o.contourBuf[base+1] = 250
		o.contourBuf[base+2] = 252
		o.contourBuf[base+3] = 190
	}
	o.contourImg.WritePixels(o.contourBuf)

	op := &ebiten.DrawImageOptions{}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.contourImg, op)
}

func (o *Overlay) drawWaterMask(screen *ebiten.Image, w, h int) {
	total := w * h
	if o.maskImg == nil || o.maskImg.Bounds().Dx() != w || o.maskImg.Bounds().Dy() != h {
		o.maskImg = ebiten.NewImage(w, h)
		o.maskBuf = make([]byte, 4*total)
	}

	water := o.eng.WaterDepth()
	if len(water) != total {
		return
	}
	// Normalize against the deepest cell so shallow sheets stay visible.
	maxDepth := 0.0
	for _, d := range water {
		if d > maxDepth {
			maxDepth = d
		}
	}
	if maxDepth <= 0 {
		maxDepth = 1
	}

	tint := color.RGBA{R: 64, G: 164, B: 223}
	for i := 0; i < total; i++ {
		base := i * 4
		intensity := water[i] / maxDepth
		if intensity <= 0 {
			o.maskBuf[base+0] = 0
			o.maskBuf[base+1] = 0
			o.maskBuf[base+2] = 0
			o.maskBuf[base+3] = 0
			continue
		}
		alpha := uint8(math.Round(150 * math.Pow(intensity, 0.6)))
		o.maskBuf[base+0] = tint.R
		o.maskBuf[base+1] = tint.G
		o.maskBuf[base+2] = tint.B
		o.maskBuf[base+3] = alpha
	}
	o.maskImg.WritePixels(o.maskBuf)

	op := &ebiten.DrawImageOptions{}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.maskImg, op)
}

func (o *Overlay) drawSlopeField(screen *ebiten.Image, w, h int) {
	if !o.ensureSlopeSamples(w, h) {
		return
	}
	heights := o.eng.Heights()
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	span := 0.0
	if len(o.slopeSamples) > 1 {
		span = math.Abs(o.slopeSamples[1].sx - o.slopeSamples[0].sx)
	}
	if span <= 0 {
		span = float64(scale) * 6
	}

	for _, sample := range o.slopeSamples {
		gx, gy := gradient(heights, w, h, sample.cx, sample.cy)
		mag := math.Hypot(gx, gy)
		if mag < 1e-4 {
			o.drawPoint(screen, sample.sx, sample.sy, float64(scale)*0.8, color.RGBA{R: 90, G: 130, B: 170, A: 110})
			continue
		}
		// Arrows point downslope, the direction droplets travel.
		nx := -gx / mag
		ny := -gy / mag
		strength := math.Min(mag*20, 1)
		length := span * (0.25 + 0.35*strength)
		tipX := sample.sx + nx*length
		tipY := sample.sy + ny*length
		col := color.RGBA{
			R: uint8(90 + 120*strength),
			G: uint8(150 + 60*strength),
			B: 220,
			A: uint8(140 + 100*strength),
		}
		o.drawLine(screen, sample.sx, sample.sy, tipX, tipY, float64(scale)*0.7, col)
	}
}

func gradient(heights []float64, w, h, x, y int) (float64, float64) {
	x0, x1 := x-1, x+1
	if x0 < 0 {
		x0 = x
	}
	if x1 >= w {
		x1 = x
	}
	y0, y1 := y-1, y+1
	if y0 < 0 {
		y0 = y
	}
	if y1 >= h {
		y1 = y
	}
	return (heights[y*w+x1] - heights[y*w+x0]) / 2, (heights[y1*w+x] - heights[y0*w+x]) / 2
}

func (o *Overlay) ensureSlopeSamples(w, h int) bool {
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	if o.cacheW == w && o.cacheH == h && o.cacheScale == scale && len(o.slopeSamples) > 0 {
		return true
	}

	const targetSamples = 300.0
	spacing := int(math.Sqrt(float64(w*h) / targetSamples))
	if spacing < 6 {
		spacing = 6
	}
	if spacing > 20 {
		spacing = 20
	}

	o.slopeSamples = o.slopeSamples[:0]
	for cy := spacing / 2; cy < h; cy += spacing {
		for cx := spacing / 2; cx < w; cx += spacing {
			o.slopeSamples = append(o.slopeSamples, slopeSample{
				cx: cx,
				cy: cy,
				sx: (float64(cx) + 0.5) * float64(scale),
				sy: (float64(cy) + 0.5) * float64(scale),
			})
		}
	}

	o.cacheW = w
	o.cacheH = h
	o.cacheScale = scale
	return len(o.slopeSamples) > 0
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if o.pixel == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}
