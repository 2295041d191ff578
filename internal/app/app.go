//go:build ebiten

package app

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"lifelab/internal/brush"
	"lifelab/internal/core"
	"lifelab/internal/render"
	"lifelab/internal/ui"
	"lifelab/internal/view"
)

// Game adapts a paintable simulation to the ebiten.Game interface.
type Game struct {
	sim     Sim
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	step    *core.FixedStep

	view    view.View
	brushes []*brush.Brush
	brush   *brush.Brush

	paint     stroke
	panning   bool
	panOrigin core.Vec

	screenW, screenH int
	hudWidth         int

	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim Sim, cfg *Config) *Game {
	size := sim.Size()
	return &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H, render.DefaultPalette()),
		hud:      ui.NewHUD(sim, cfg.HUD),
		overlay:  ui.NewOverlay(),
		step:     core.NewFixedStep(cfg.GPS),
		view:     view.New(view.ClampZoom(cfg.Zoom), core.Vec{}),
		brushes:  BrushSlots(),
		hudWidth: max(cfg.HUD, 0),
		seed:     cfg.Seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	logger.Infof("reset %s with seed %d", g.sim.Name(), seed)
}

// Update handles per-frame input and advances the simulation at the
// configured generation rate.
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
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.sim.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		g.sim.SetRules(g.sim.Rules().WithOscillations(!g.sim.Rules().DetectOscillations))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.step.SetTPS(g.step.TPS() + 5)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.step.SetTPS(max(g.step.TPS()-5, 1))
	}
	g.handleBrushKeys()
	g.handleMouse()
	g.overlay.Update()

	if g.hud != nil {
		g.hud.Update(g.panelOffsetX())
	}

	if (!g.paused && g.step.ShouldStep()) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) handleBrushKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit0) {
		g.brush = nil
	}
	for i, b := range g.brushes {
		if inpututil.IsKeyJustPressed(ebiten.KeyDigit1 + ebiten.Key(i)) {
			g.brush = b
			logger.Debugf("brush %s", b.Name)
		}
	}
	if g.brush == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.brush = g.brush.Rotate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.brush = g.brush.Flip()
	}
}

func (g *Game) handleMouse() {
	mx, my := ebiten.CursorPosition()
	cursor := core.VI(mx, my)

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.view = WheelZoom(g.view, cursor, wy)
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) || ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		if g.panning {
			g.view = g.view.PanBy(cursor.Sub(g.panOrigin))
		}
		g.panning = true
		g.panOrigin = cursor
	} else {
		g.panning = false
	}

	if mx >= g.panelOffsetX() {
		g.paint.end()
		return
	}
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.paint.end()
		return
	}
	x, y := g.view.CellAt(cursor)
	if g.brush != nil {
		// Brushes stamp once per press.
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			g.sim.Paint(x, y, g.brush)
		}
		return
	}
	if g.paint.enter(x, y) {
		g.sim.Paint(x, y, nil)
	}
}

func (g *Game) panelOffsetX() int {
	if g.hud == nil {
		return g.screenW
	}
	return g.screenW - g.hudWidth
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.painter.Draw(screen, g.sim, g.view)
	mx, my := ebiten.CursorPosition()
	g.overlay.Draw(screen, g.view, g.sim.Size(), g.brush, core.VI(mx, my))
	if g.hud != nil {
		g.hud.Draw(screen, g.panelOffsetX(), g.screenH, g.status())
	}
}

func (g *Game) status() ui.Status {
	return ui.Status{
		Generation: g.sim.Generation(),
		Population: g.sim.Grid().Population(),
		Rule:       g.sim.Rules().String(),
		Brush:      g.brush,
		Paused:     g.paused,
		TPS:        g.step.TPS(),
	}
}

// Layout tracks the window size; the grid is drawn through the view so any
// size works.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.screenW == 0 && outsideWidth > 0 {
		// Centre the grid the first time the window size is known.
		world := g.sim.Size().Vec().Div(2)
		screen := core.VI(outsideWidth-g.hudWidth, outsideHeight)
		g.view = g.view.CenterOn(world, screen)
	}
	g.screenW, g.screenH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
