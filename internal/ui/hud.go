//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"lifelab/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	controls     []hudControlState
	boolSetter   core.BoolParameterSetter
	intSetter    core.IntParameterSetter
	panelOffsetX int
	title        string

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if sim != nil {
		h.title = Title(sim.Name())
	}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		h.controls = make([]hudControlState, len(controls))
		for i, ctrl := range controls {
			h.controls[i] = hudControlState{control: ctrl}
		}
	}
	if setter, ok := sim.(core.BoolParameterSetter); ok {
		h.boolSetter = setter
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	return h
}

// Update refreshes the cached parameter snapshot from the simulation and handles
// HUD interactions.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	provider, ok := h.sim.(parameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = provider.Parameters()
	h.refreshControlValues()
	h.handleInput()
}

// Draw paints the HUD panel at offsetX, spanning the full screen height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int, status Status) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	y := h.drawStatus(status)
	h.layoutControls(y)
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawStatus(status Status) int {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for _, line := range status.Lines() {
		y += statusSpacing
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 160, G: 160, B: 170, A: 255})
	}
	return y + statusSpacing
}

func (h *HUD) refreshControlValues() {
	paramMap := map[string]core.Parameter{}
	for _, group := range h.snapshot.Groups {
		for _, param := range group.Params {
			paramMap[param.Key] = param
		}
	}
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := paramMap[state.control.Key]
		state.hasValue = false
		if !ok {
			continue
		}
		switch state.control.Type {
		case core.ParamTypeBool:
			parsed, err := strconv.ParseBool(param.Value)
			if err != nil {
				continue
			}
			state.on = parsed
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				continue
			}
			state.intValue = parsed
		default:
			continue
		}
		state.hasValue = true
	}
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 {
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		switch {
		case state.control.Type == core.ParamTypeInt && pointInRect(px, my, state.minusRect):
			h.adjust(state, -1)
		case state.control.Type == core.ParamTypeInt && pointInRect(px, my, state.rect):
			h.adjust(state, 1)
		case state.control.Type == core.ParamTypeBool && pointInRect(px, my, state.rect):
			if h.boolSetter != nil && h.boolSetter.SetBoolParameter(state.control.Key, !state.on) {
				state.on = !state.on
			}
		default:
			continue
		}
		return
	}
}

func (h *HUD) adjust(state *hudControlState, direction int) {
	if h.intSetter == nil {
		return
	}
	target, changed := state.control.Adjust(state.intValue, direction)
	if changed && h.intSetter.SetIntParameter(state.control.Key, target) {
		state.intValue = target
	}
}

func (h *HUD) drawControls() {
	if len(h.controls) == 0 {
		return
	}
	face := basicfont.Face7x13
	for i := range h.controls {
		state := &h.controls[i]
		labelColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if !state.hasValue {
			labelColor = color.RGBA{R: 120, G: 120, B: 130, A: 255}
		}
		text.Draw(h.panel, state.control.Label, face, panelPadding, state.top+labelBaseline, labelColor)
		if state.control.Type != core.ParamTypeInt {
			h.drawToggle(state.rect, state.on, state.hasValue)
			continue
		}
		value := "--"
		if state.hasValue {
			value = strconv.Itoa(state.intValue)
		}
		valueX := state.minusRect.Min.X - buttonGap - text.BoundString(face, value).Dx()
		text.Draw(h.panel, value, face, valueX, state.top+labelBaseline, labelColor)
		_, canDown := state.control.Adjust(state.intValue, -1)
		_, canUp := state.control.Adjust(state.intValue, 1)
		h.drawButton(state.minusRect, "-", state.hasValue && canDown)
		h.drawButton(state.rect, "+", state.hasValue && canUp)
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	h.drawToggle(rect, false, enabled)
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) drawToggle(rect image.Rectangle, on, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	if on {
		bg = color.RGBA{R: 70, G: 150, B: 90, A: 255}
	}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)
}

func (h *HUD) layoutControls(top int) {
	if len(h.controls) == 0 || h.width <= 0 {
		return
	}
	for i := range h.controls {
		rowTop := top + i*lineHeight
		buttonY := rowTop + (lineHeight-buttonSize)/2
		rect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		h.controls[i].top = rowTop
		h.controls[i].rect = rect
		h.controls[i].minusRect = rect.Sub(image.Pt(buttonSize+buttonGap, 0))
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

type hudControlState struct {
	control  core.ParameterControl
	on       bool
	intValue int
	hasValue bool

	// rect is the toggle, or the "+" button of an integer stepper.
	top       int
	rect      image.Rectangle
	minusRect image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 18
	buttonSize     = 12
	buttonGap      = 4
	headerBaseline = 18
	labelBaseline  = 13
	statusSpacing  = 16
)
