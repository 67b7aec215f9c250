// Package gol wires the grid, the step engine and the rasterizer into the
// single object a host drives once per frame.
package gol

import (
	"image/color"
	"log/slog"

	"github.com/pkg/errors"

	"gol-gpu/internal/core"
	"gol-gpu/internal/life"
	"gol-gpu/internal/render"
)

const (
	// DefaultPixelSize is the edge length of one cell block.
	DefaultPixelSize = 4
	// DefaultWidth and DefaultHeight size the surface of NewDefault.
	DefaultWidth  = 800
	DefaultHeight = 600
	// DefaultSeed seeds the initial generation when none is given.
	DefaultSeed = 42
	// DefaultDensity is the probability of a cell starting alive.
	DefaultDensity = 0.5
)

// Config controls construction of a GOL.
type Config struct {
	PixelSize int
	Seed      int64
	Density   float64
	// Workers is the number of step bands; 1 steps on the caller's goroutine
	// and values below 1 use every CPU.
	Workers int

	Alive color.Color
	Dead  color.Color
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		PixelSize: DefaultPixelSize,
		Seed:      DefaultSeed,
		Density:   DefaultDensity,
		Workers:   1,
		Alive:     color.White,
		Dead:      color.Black,
	}
}

// GOL is a Game of Life rendered through a Context.
type GOL struct {
	cfg    Config
	grid   *core.GridBuffer
	engine *life.Engine
	raster *render.Rasterizer
}

// New builds a GOL filling ctx's surface with pixelSize*pixelSize cells.
func New(ctx render.Context, pixelSize int) (*GOL, error) {
	cfg := DefaultConfig()
	cfg.PixelSize = pixelSize
	return NewWithConfig(ctx, cfg)
}

// NewDefault builds a GOL on a headless DefaultWidth*DefaultHeight surface.
func NewDefault() (*GOL, error) {
	ctx, err := render.NewMemoryContext(DefaultWidth, DefaultHeight)
	if err != nil {
		return nil, err
	}
	return New(ctx, DefaultPixelSize)
}

// NewWithConfig builds a GOL from cfg. The grid is the surface size divided by
// the pixel size; any remainder is left as an unrendered margin.
func NewWithConfig(ctx render.Context, cfg Config) (*GOL, error) {
	if cfg.PixelSize <= 0 {
		return nil, errors.Wrapf(core.ErrInvalidConfiguration, "[gol.New] pixel size must be positive, got %d", cfg.PixelSize)
	}
	if ctx == nil {
		return nil, errors.Wrap(core.ErrContextUnavailable, "[gol.New] nil rendering context")
	}
	sw, sh := ctx.SurfaceSize()
	grid, err := core.NewGridBuffer(sw/cfg.PixelSize, sh/cfg.PixelSize)
	if err != nil {
		return nil, errors.Wrapf(err, "[gol.New] surface %dx%d with pixel size %d", sw, sh, cfg.PixelSize)
	}
	core.Seed(grid, cfg.Seed, cfg.Density)

	engine := life.New(cfg.Workers)
	raster, err := render.NewRasterizer(ctx, grid, engine, cfg.PixelSize)
	if err != nil {
		return nil, err
	}
	if cfg.Alive != nil && cfg.Dead != nil {
		raster.SetColors(cfg.Alive, cfg.Dead)
	}
	raster.Upload()

	slog.Debug("gol ready",
		"surface_w", sw, "surface_h", sh,
		"grid_w", grid.Width(), "grid_h", grid.Height(),
		"px", cfg.PixelSize, "workers", engine.Workers(), "seed", cfg.Seed)
	return &GOL{cfg: cfg, grid: grid, engine: engine, raster: raster}, nil
}

// Draw advances one generation and renders it.
func (g *GOL) Draw() { g.raster.Draw() }

// Present re-issues the last frame's draw call without advancing.
func (g *GOL) Present() { g.raster.Present() }

// Reseed replaces the current generation with a fresh random one and
// uploads it. It must not be called from within Draw.
func (g *GOL) Reseed(seed int64) {
	g.cfg.Seed = seed
	core.Seed(g.grid, seed, g.cfg.Density)
	g.raster.Upload()
}

// Grid exposes the simulation grid for inspection.
func (g *GOL) Grid() *core.GridBuffer { return g.grid }

// Size returns the grid dimensions in cells.
func (g *GOL) Size() core.Size { return g.grid.Size() }

// Generation returns the number of generations advanced.
func (g *GOL) Generation() uint64 { return g.grid.Generation() }

// Population counts the live cells.
func (g *GOL) Population() int { return g.grid.Population() }

// PixelSize returns the cell block edge length.
func (g *GOL) PixelSize() int { return g.cfg.PixelSize }

// Close releases GPU resources. The grid goes with it.
func (g *GOL) Close() {
	g.raster.Close()
}
