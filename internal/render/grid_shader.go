//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"gol-gpu/internal/core"
)

// gridShaderSource presents the uploaded grid texture. Cells are already
// expanded to pixel blocks, so the fragment stage samples one texel per
// destination pixel and forces full opacity.
var gridShaderSource = []byte(`//kage:unit pixels

package main

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	c := imageSrc0At(srcPos)
	return vec4(c.rgb, 1)
}
`)

// GridShaderSource returns the Kage source of the grid display shader.
func GridShaderSource() []byte { return gridShaderSource }

// NewGridShader compiles the grid display shader.
func NewGridShader() (*ebiten.Shader, error) {
	s, err := ebiten.NewShader(gridShaderSource)
	if err != nil {
		return nil, core.ContextUnavailable(err, "[NewGridShader] compile")
	}
	return s, nil
}
