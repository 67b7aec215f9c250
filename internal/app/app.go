//go:build ebiten

package app

import (
	"log/slog"
	"time"

	"gol-gpu/internal/core"
	"gol-gpu/internal/gol"
	"gol-gpu/internal/render"
	"gol-gpu/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a GOL to the ebiten.Game interface. Ebitengine's Draw callback
// is the host clock: it fires once per display refresh and the pacer decides
// whether that refresh advances the simulation.
type Game struct {
	gol   *gol.GOL
	ctx   *render.EbitenContext
	pacer *core.FramePacer
	hud   *ui.HUD
	stats *ui.Stats

	start    time.Time
	paused   bool
	tickOnce bool
	seed     int64
	w, h     int
}

// New constructs the rendering context and simulation for cfg.
func New(cfg *Config) (*Game, error) {
	w, h := cfg.SurfaceSize()
	ctx, err := render.NewEbitenContext(w, h)
	if err != nil {
		return nil, err
	}
	sim, err := gol.NewWithConfig(ctx, cfg.GOLConfig())
	if err != nil {
		ctx.Dispose()
		return nil, err
	}
	g := &Game{gol: sim, ctx: ctx, stats: ui.NewStats(), seed: cfg.Seed, w: w, h: h}
	g.pacer, err = core.NewFramePacer(cfg.Interval, core.DrawerFunc(g.advance))
	if err != nil {
		sim.Close()
		ctx.Dispose()
		return nil, err
	}
	if cfg.HUD {
		g.hud = ui.NewHUD(g.pacer)
	}
	return g, nil
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.gol.Reseed(seed)
	g.pacer.Reset()
	g.tickOnce = false
	slog.Info("reseeded", "seed", seed)
}

// Update handles input. The simulation itself advances from Draw.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
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
	g.hud.Update()
	return nil
}

// Draw is the per-refresh callback. The screen is cleared every frame, so a
// refresh that does not advance re-presents the last generation.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.start.IsZero() {
		g.start = time.Now()
	}
	g.ctx.Bind(screen)
	defer g.ctx.Bind(nil)

	drew := false
	switch {
	case g.tickOnce:
		g.advance()
		g.tickOnce = false
		drew = true
	case !g.paused:
		drew = g.pacer.Tick(time.Since(g.start))
	}
	if !drew {
		g.gol.Present()
	}

	if g.hud != nil {
		g.hud.Draw(screen, g.stats)
	}
}

func (g *Game) advance() {
	g.gol.Draw()
	g.stats.Update(g.gol.Generation(), g.gol.Population(), time.Since(g.start))
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.h
}

// Close releases GPU resources.
func (g *Game) Close() {
	g.gol.Close()
	g.ctx.Dispose()
}
