//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// IntervalControl is the part of the frame pacer the HUD adjusts.
type IntervalControl interface {
	Interval() time.Duration
	SetInterval(time.Duration)
}

// HUD renders a stats panel in the top-left corner of the surface with
// buttons that change the generation interval.
type HUD struct {
	pacer IntervalControl
	panel *ebiten.Image
	pixel *ebiten.Image

	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// NewHUD constructs a HUD bound to the provided pacer.
func NewHUD(pacer IntervalControl) *HUD {
	h := &HUD{pacer: pacer}
	h.panel = ebiten.NewImage(panelWidth, panelHeight)
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)

	buttonY := panelHeight - panelPadding - buttonSize
	h.plusRect = image.Rect(panelWidth-panelPadding-buttonSize, buttonY, panelWidth-panelPadding, buttonY+buttonSize)
	h.minusRect = image.Rect(h.plusRect.Min.X-buttonGap-buttonSize, buttonY, h.plusRect.Min.X-buttonGap, buttonY+buttonSize)
	return h
}

// Update handles clicks on the interval buttons.
func (h *HUD) Update() {
	if h == nil || h.pacer == nil {
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	switch {
	case pointInRect(mx, my, h.minusRect):
		h.adjust(-1)
	case pointInRect(mx, my, h.plusRect):
		h.adjust(1)
	}
}

func (h *HUD) adjust(direction int) {
	target := h.pacer.Interval() + time.Duration(direction)*intervalStep
	if target < 0 {
		target = 0
	}
	h.pacer.SetInterval(target)
}

// Draw paints the panel with the provided stats.
func (h *HUD) Draw(screen *ebiten.Image, stats *Stats) {
	if h == nil || stats == nil {
		return
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, "Game of Life", face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for _, line := range stats.Lines() {
		y += lineSpacing
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
	if h.pacer != nil {
		label := fmt.Sprintf("Interval    %dms", h.pacer.Interval().Milliseconds())
		text.Draw(h.panel, label, face, panelPadding, h.minusRect.Min.Y+labelBaseline, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		h.drawButton(h.minusRect, "-", h.pacer.Interval() > 0)
		h.drawButton(h.plusRect, "+", true)
	}
	screen.DrawImage(h.panel, nil)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	panelWidth     = 200
	panelHeight    = 124
	panelPadding   = 8
	buttonSize     = 18
	buttonGap      = 4
	headerBaseline = 12
	labelBaseline  = 13
	lineSpacing    = 16

	intervalStep = 10 * time.Millisecond
)
