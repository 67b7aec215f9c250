package render

import (
	"image"

	"github.com/pkg/errors"

	"gol-gpu/internal/core"
)

// ErrAllocationRefused is returned by MemoryContext.NewTexture while
// allocation failures are being simulated.
var ErrAllocationRefused = errors.New("texture allocation refused")

// MemoryContext is a headless Context backed by a CPU framebuffer. It keeps
// count of uploads and draw calls so callers can check the per-frame
// contract.
type MemoryContext struct {
	w, h    int
	surface *image.RGBA

	uploads   int
	drawCalls int
	textures  int
	failAlloc bool
}

// NewMemoryContext returns a headless context with a w*h surface.
func NewMemoryContext(w, h int) (*MemoryContext, error) {
	if w <= 0 || h <= 0 {
		return nil, errors.Wrapf(core.ErrInvalidConfiguration, "[NewMemoryContext] surface %dx%d", w, h)
	}
	return &MemoryContext{w: w, h: h, surface: image.NewRGBA(image.Rect(0, 0, w, h))}, nil
}

// SurfaceSize returns the framebuffer size.
func (m *MemoryContext) SurfaceSize() (int, int) { return m.w, m.h }

// NewTexture allocates a CPU-side texture.
func (m *MemoryContext) NewTexture(w, h int) (Texture, error) {
	if m.failAlloc {
		return nil, ErrAllocationRefused
	}
	if w <= 0 || h <= 0 || w > m.w || h > m.h {
		return nil, errors.Errorf("texture %dx%d does not fit surface %dx%d", w, h, m.w, m.h)
	}
	m.textures++
	return &memoryTexture{ctx: m, img: image.NewRGBA(image.Rect(0, 0, w, h))}, nil
}

// DrawQuad copies tex onto the framebuffer at the origin.
func (m *MemoryContext) DrawQuad(tex Texture) {
	t, ok := tex.(*memoryTexture)
	if !ok || t.img == nil {
		return
	}
	m.drawCalls++
	b := t.img.Bounds()
	stride := b.Dx() * 4
	for y := 0; y < b.Dy(); y++ {
		copy(m.surface.Pix[y*m.surface.Stride:y*m.surface.Stride+stride], t.img.Pix[y*t.img.Stride:y*t.img.Stride+stride])
	}
}

// Surface exposes the presented framebuffer.
func (m *MemoryContext) Surface() *image.RGBA { return m.surface }

// Uploads returns the number of WritePixels calls across all textures.
func (m *MemoryContext) Uploads() int { return m.uploads }

// DrawCalls returns the number of DrawQuad calls.
func (m *MemoryContext) DrawCalls() int { return m.drawCalls }

// Textures returns the number of live textures.
func (m *MemoryContext) Textures() int { return m.textures }

// FailAllocations makes subsequent NewTexture calls fail, simulating a lost
// context.
func (m *MemoryContext) FailAllocations(fail bool) { m.failAlloc = fail }

type memoryTexture struct {
	ctx *MemoryContext
	img *image.RGBA
}

func (t *memoryTexture) WritePixels(pix []byte) {
	if t.img == nil {
		panic(errors.New("WritePixels: texture disposed"))
	}
	if len(pix) != len(t.img.Pix) {
		panic(errors.Errorf("WritePixels: got %d bytes, texture holds %d", len(pix), len(t.img.Pix)))
	}
	copy(t.img.Pix, pix)
	t.ctx.uploads++
}

func (t *memoryTexture) Dispose() {
	if t.img == nil {
		return
	}
	t.img = nil
	t.ctx.textures--
}
