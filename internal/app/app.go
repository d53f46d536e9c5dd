//go:build ebiten

package app

import (
	"time"

	"sandtable/internal/core"
	"sandtable/internal/render"
	"sandtable/internal/sandbox"
	"sandtable/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the sand-table engine to the ebiten.Game interface: mouse
// drags sculpt, keys switch tools and toggle the weather emitters.
type Game struct {
	eng     *sandbox.Engine
	painter *render.TerrainPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	clock   *core.DeltaClock

	scale    int
	seed     int64
	paused   bool
	tickOnce bool

	tool        sandbox.Tool
	brushRadius float64
	brushStrong float64
	intensity   [3]float64
	emitterOn   [3]bool
}

// New constructs a Game for the provided engine.
func New(eng *sandbox.Engine, scale int, seed int64) *Game {
	size := eng.Size()
	g := &Game{
		eng:         eng,
		painter:     render.NewTerrainPainter(size.W, size.H),
		hud:         ui.NewHUD(eng, HUDWidth),
		overlay:     ui.NewOverlay(eng, scale),
		clock:       core.NewDeltaClock(100 * time.Millisecond),
		scale:       scale,
		seed:        seed,
		tool:        sandbox.ToolRaise,
		brushRadius: 6,
		brushStrong: 1,
	}
	for i := range g.intensity {
		g.intensity[i] = 0.5
	}
	return g
}

// Reset reinitializes the engine state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.eng.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.Reset(time.Now().UnixNano())
	}

	g.handleToolKeys()
	g.handleEmitterKeys()
	g.handleSculpt()

	if g.overlay != nil {
		g.overlay.Update()
	}
	if g.hud != nil {
		g.hud.Update(g.eng.Size().W * g.scale)
	}

	dt := g.clock.Tick()
	if (!g.paused) || g.tickOnce {
		g.eng.Update(dt)
		g.tickOnce = false
	}
	return nil
}

func (g *Game) handleToolKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyZ):
		g.tool = sandbox.ToolRaise
	case inpututil.IsKeyJustPressed(ebiten.KeyX):
		g.tool = sandbox.ToolLower
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.tool = sandbox.ToolSmooth
	case inpututil.IsKeyJustPressed(ebiten.KeyV):
		g.tool = sandbox.ToolWater
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) && g.brushRadius > 2 {
		g.brushRadius -= 2
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) && g.brushRadius < 40 {
		g.brushRadius += 2
	}
}

func (g *Game) handleEmitterKeys() {
	toggles := [3]ebiten.Key{ebiten.KeyF, ebiten.KeyG, ebiten.KeyH}
	for i, key := range toggles {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		g.emitterOn[i] = !g.emitterOn[i]
		g.eng.SetEmitter(sandbox.EmitterKind(i), g.emitterOn[i], g.intensity[i])
	}
	adjust := 0.0
	if inpututil.IsKeyJustPressed(ebiten.KeyComma) {
		adjust = -0.1
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPeriod) {
		adjust = 0.1
	}
	if adjust == 0 {
		return
	}
	for i := range g.intensity {
		g.intensity[i] += adjust
		if g.intensity[i] < 0 {
			g.intensity[i] = 0
		}
		if g.intensity[i] > 1 {
			g.intensity[i] = 1
		}
		if g.emitterOn[i] {
			g.eng.SetEmitter(sandbox.EmitterKind(i), true, g.intensity[i])
		}
	}
}

func (g *Game) handleSculpt() {
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if !left && !right {
		return
	}
	mx, my := ebiten.CursorPosition()
	size := g.eng.Size()
	if mx < 0 || my < 0 || mx >= size.W*g.scale || my >= size.H*g.scale {
		return
	}
	cx := float64(mx) / float64(g.scale)
	cy := float64(my) / float64(g.scale)
	tool := g.tool
	if right {
		// Right button always carves, whatever the active tool.
		tool = sandbox.ToolLower
	}
	g.eng.Sculpt(cx, cy, g.brushRadius, g.brushStrong, tool)
}

// Draw renders the terrain, particles and UI chrome.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.eng.Cells(), g.eng.Palette(), g.scale)
	g.painter.DrawParticles(screen, g.eng.ActiveParticles(), g.eng.RenderScale(), g.scale)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
	if g.hud != nil {
		g.hud.Draw(screen, g.eng.Size().W*g.scale, g.scale)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.eng.Size()
	return s.W*g.scale + HUDWidth, s.H * g.scale
}
