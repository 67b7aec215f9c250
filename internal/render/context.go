package render

import (
	"log/slog"
	"sync/atomic"
)

// Context is the rendering context handed over by the host. It is already
// validated for the capabilities the renderer needs.
type Context interface {
	// SurfaceSize returns the drawable surface size in pixels.
	SurfaceSize() (w, h int)
	// NewTexture allocates GPU-resident RGBA storage of w*h pixels.
	NewTexture(w, h int) (Texture, error)
	// DrawQuad issues a single draw call that presents tex on the surface
	// with its top-left corner at the origin, one texel per pixel.
	DrawQuad(tex Texture)
}

// Texture is GPU-resident pixel storage owned by a Rasterizer.
type Texture interface {
	// WritePixels replaces the whole texture with row-major RGBA bytes.
	WritePixels(pix []byte)
	// Dispose releases the GPU storage.
	Dispose()
}

var logger atomic.Pointer[slog.Logger]

// SetLogger sets the logger used by the render package.
func SetLogger(l *slog.Logger) {
	logger.Store(l)
}

func slogger() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return slog.Default()
}
