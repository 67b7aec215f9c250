//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"

	"gol-gpu/internal/core"
)

// EbitenContext renders through Ebitengine. The host binds the screen image
// handed to ebiten.Game.Draw before each frame.
type EbitenContext struct {
	w, h   int
	shader *ebiten.Shader
	screen *ebiten.Image
}

// NewEbitenContext compiles the display shader for a w*h logical surface.
func NewEbitenContext(w, h int) (*EbitenContext, error) {
	if w <= 0 || h <= 0 {
		return nil, errors.Wrapf(core.ErrInvalidConfiguration, "[NewEbitenContext] surface %dx%d", w, h)
	}
	shader, err := NewGridShader()
	if err != nil {
		return nil, err
	}
	slogger().Debug("ebiten context ready", "width", w, "height", h)
	return &EbitenContext{w: w, h: h, shader: shader}, nil
}

// Bind sets the image DrawQuad renders to.
func (c *EbitenContext) Bind(screen *ebiten.Image) { c.screen = screen }

// SurfaceSize returns the logical screen size.
func (c *EbitenContext) SurfaceSize() (int, int) { return c.w, c.h }

// NewTexture allocates an offscreen ebiten image.
func (c *EbitenContext) NewTexture(w, h int) (Texture, error) {
	if w <= 0 || h <= 0 || w > c.w || h > c.h {
		return nil, errors.Errorf("texture %dx%d does not fit surface %dx%d", w, h, c.w, c.h)
	}
	return &ebitenTexture{img: ebiten.NewImage(w, h)}, nil
}

// DrawQuad draws tex onto the bound screen with one shader draw call.
func (c *EbitenContext) DrawQuad(tex Texture) {
	t, ok := tex.(*ebitenTexture)
	if !ok || t.img == nil || c.screen == nil {
		return
	}
	b := t.img.Bounds()
	op := &ebiten.DrawRectShaderOptions{}
	op.Images[0] = t.img
	c.screen.DrawRectShader(b.Dx(), b.Dy(), c.shader, op)
}

// Dispose releases the shader.
func (c *EbitenContext) Dispose() {
	if c.shader != nil {
		c.shader.Dispose()
		c.shader = nil
	}
}

type ebitenTexture struct {
	img *ebiten.Image
}

func (t *ebitenTexture) WritePixels(pix []byte) {
	t.img.WritePixels(pix)
}

func (t *ebitenTexture) Dispose() {
	if t.img != nil {
		t.img.Dispose()
		t.img = nil
	}
}
