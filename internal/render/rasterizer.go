package render

import (
	"image/color"

	"github.com/pkg/errors"

	"gol-gpu/internal/core"
)

// Rasterizer advances a grid and pushes it to the GPU once per Draw. It owns
// one texture and one staging buffer sized to the rendered area, both
// allocated at construction and reused for every frame.
type Rasterizer struct {
	ctx     Context
	grid    *core.GridBuffer
	stepper core.Stepper

	px  int
	tex Texture
	buf []byte

	on, off rgba8
	frames  uint64
}

// NewRasterizer allocates GPU storage for grid rendered with px*px blocks.
func NewRasterizer(ctx Context, grid *core.GridBuffer, stepper core.Stepper, px int) (*Rasterizer, error) {
	if px <= 0 {
		return nil, errors.Wrapf(core.ErrInvalidConfiguration, "[NewRasterizer] pixel size must be positive, got %d", px)
	}
	if ctx == nil {
		return nil, errors.Wrap(core.ErrContextUnavailable, "[NewRasterizer] nil rendering context")
	}
	if grid == nil || stepper == nil {
		return nil, errors.Wrap(core.ErrInvalidConfiguration, "[NewRasterizer] grid and stepper are required")
	}

	tw, th := grid.Width()*px, grid.Height()*px
	tex, err := ctx.NewTexture(tw, th)
	if err != nil {
		slogger().Error("texture allocation failed", "width", tw, "height", th, "error", err)
		return nil, core.ContextUnavailable(err, "[NewRasterizer] allocate %dx%d texture", tw, th)
	}
	slogger().Debug("rasterizer ready", "grid_w", grid.Width(), "grid_h", grid.Height(), "px", px, "texture_w", tw, "texture_h", th)

	return &Rasterizer{
		ctx:     ctx,
		grid:    grid,
		stepper: stepper,
		px:      px,
		tex:     tex,
		buf:     make([]byte, tw*th*4),
		on:      toRGBA8(color.White),
		off:     toRGBA8(color.Black),
	}, nil
}

// SetColors changes the alive and dead colors used from the next Draw.
func (r *Rasterizer) SetColors(alive, dead color.Color) {
	r.on = toRGBA8(alive)
	r.off = toRGBA8(dead)
}

// Draw steps the simulation once, uploads the new generation in a single
// transfer and issues one draw call covering the rendered surface.
func (r *Rasterizer) Draw() {
	r.stepper.Step(r.grid)
	r.Upload()
	r.ctx.DrawQuad(r.tex)
	r.frames++
}

// Upload serializes the current generation into the texture without
// stepping. Draw calls it; hosts use it directly to show the seed
// generation before the first step.
func (r *Rasterizer) Upload() {
	fillBlockRGBA(r.buf, r.grid.Cells(), r.grid.Width(), r.grid.Height(), r.px, r.on, r.off)
	r.tex.WritePixels(r.buf)
}

// Present redraws the last uploaded texture without stepping.
func (r *Rasterizer) Present() {
	r.ctx.DrawQuad(r.tex)
}

// Frames returns the number of completed Draw calls.
func (r *Rasterizer) Frames() uint64 { return r.frames }

// PixelSize returns the edge length in pixels of one cell block.
func (r *Rasterizer) PixelSize() int { return r.px }

// Close releases the GPU texture.
func (r *Rasterizer) Close() {
	if r.tex != nil {
		r.tex.Dispose()
		r.tex = nil
	}
}
