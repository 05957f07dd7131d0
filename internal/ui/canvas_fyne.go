//go:build fyne && cgo

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"formdesigner/internal/design"
	"formdesigner/internal/geom"
	"formdesigner/internal/props"
	"formdesigner/internal/surface"
)

var (
	formFill     = color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
	gridStroke   = color.RGBA{R: 0xdc, G: 0xdc, B: 0xdc, A: 0xff}
	widgetFill   = color.RGBA{R: 0xe1, G: 0xe1, B: 0xe1, A: 0xff}
	widgetStroke = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	selectStroke = color.RGBA{R: 0x00, G: 0x78, B: 0xd7, A: 0xff}
	handleFill   = color.White
)

// DesignCanvas draws the form under design and turns pointer input into
// controller presses, motions and releases. Coordinates are form pixels.
type DesignCanvas struct {
	widget.BaseWidget
	ctrl *surface.Controller

	// OnChange runs after any interaction that may have changed the model.
	OnChange func()
	// OnEdit runs on double tap over a widget.
	OnEdit func(id design.ID)

	last fyne.Position
}

func NewDesignCanvas(c *surface.Controller) *DesignCanvas {
	dc := &DesignCanvas{ctrl: c}
	dc.ExtendBaseWidget(dc)
	return dc
}

func toPt(p fyne.Position) geom.Pt { return geom.Pt{X: float64(p.X), Y: float64(p.Y)} }

func (dc *DesignCanvas) changed() {
	dc.Refresh()
	if dc.OnChange != nil {
		dc.OnChange()
	}
}

// MouseDown implements desktop.Mouseable.
func (dc *DesignCanvas) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	dc.last = e.Position
	dc.ctrl.Press(toPt(e.Position))
	dc.changed()
}

// MouseUp implements desktop.Mouseable. A release while idle is ignored by
// the controller, so DragEnd and MouseUp may both fire.
func (dc *DesignCanvas) MouseUp(e *desktop.MouseEvent) {
	dc.ctrl.Release(toPt(e.Position), true)
	dc.changed()
}

func (dc *DesignCanvas) Dragged(e *fyne.DragEvent) {
	dc.last = e.Position
	dc.ctrl.Motion(toPt(e.Position))
	dc.changed()
}

func (dc *DesignCanvas) DragEnd() {
	dc.ctrl.Release(toPt(dc.last), true)
	dc.changed()
}

func (dc *DesignCanvas) DoubleTapped(e *fyne.PointEvent) {
	w, ok := dc.ctrl.Model().WidgetAt(toPt(e.Position))
	if !ok || dc.OnEdit == nil {
		return
	}
	dc.OnEdit(w.ID)
}

// Contains reports whether an absolute position lies over the form.
func (dc *DesignCanvas) Contains(abs fyne.Position) (geom.Pt, bool) {
	origin := fyne.CurrentApp().Driver().AbsolutePositionForObject(dc)
	rel := abs.Subtract(origin)
	w, h := dc.ctrl.FormSize()
	p := toPt(rel)
	return p, p.X >= 0 && p.Y >= 0 && p.X < w && p.Y < h
}

func (dc *DesignCanvas) MinSize() fyne.Size {
	w, h := dc.ctrl.FormSize()
	return fyne.NewSize(float32(w), float32(h))
}

func (dc *DesignCanvas) CreateRenderer() fyne.WidgetRenderer {
	r := &designCanvasRenderer{dc: dc, form: canvas.NewRectangle(formFill)}
	r.rebuild()
	return r
}

type designCanvasRenderer struct {
	dc      *DesignCanvas
	form    *canvas.Rectangle
	objects []fyne.CanvasObject
}

func (r *designCanvasRenderer) Destroy()                     {}
func (r *designCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *designCanvasRenderer) MinSize() fyne.Size           { return r.dc.MinSize() }
func (r *designCanvasRenderer) Layout(fyne.Size)             {}

func (r *designCanvasRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.dc)
}

// rebuild recreates the drawables from the model: form, grid, widgets in
// z-order, then the selection overlay.
func (r *designCanvasRenderer) rebuild() {
	c := r.dc.ctrl
	fw, fh := c.FormSize()
	r.form.Move(fyne.NewPos(0, 0))
	r.form.Resize(fyne.NewSize(float32(fw), float32(fh)))
	objs := []fyne.CanvasObject{r.form}

	if g := c.Grid(); g.Enabled {
		for _, gl := range geom.GridLines(fw, fh, g.Size) {
			ln := canvas.NewLine(gridStroke)
			ln.StrokeWidth = 1
			ln.Position1 = fyne.NewPos(float32(gl.From.X), float32(gl.From.Y))
			ln.Position2 = fyne.NewPos(float32(gl.To.X), float32(gl.To.Y))
			objs = append(objs, ln)
		}
	}

	m := c.Model()
	var sel *design.Widget
	for _, id := range m.ZOrder() {
		w, ok := m.Get(id)
		if !ok {
			continue
		}
		objs = append(objs, widgetObjects(w)...)
		if w.Selected {
			sel = w
		}
	}
	if sel != nil {
		objs = append(objs, selectionObjects(sel)...)
	}
	r.objects = objs
}

func propColor(b *props.Bag, name string, def color.Color) color.Color {
	v, ok := b.Get(name)
	if !ok {
		return def
	}
	if c, ok := props.ParseColor(v.String()); ok {
		return c
	}
	return def
}

func widgetObjects(w *design.Widget) []fyne.CanvasObject {
	g := w.Geometry
	box := canvas.NewRectangle(propColor(w.Props, "background", widgetFill))
	box.StrokeColor = widgetStroke
	box.StrokeWidth = 1
	box.Move(fyne.NewPos(float32(g.X), float32(g.Y)))
	box.Resize(fyne.NewSize(float32(g.W), float32(g.H)))

	txt := canvas.NewText(w.Label.Text, propColor(w.Props, "foreground", color.Black))
	txt.TextSize = 12
	ts := txt.MinSize()
	txt.Move(fyne.NewPos(float32(w.Label.Pos.X)-ts.Width/2, float32(w.Label.Pos.Y)-ts.Height/2))
	return []fyne.CanvasObject{box, txt}
}

func selectionObjects(w *design.Widget) []fyne.CanvasObject {
	g := w.Geometry
	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = selectStroke
	border.StrokeWidth = 1
	border.Move(fyne.NewPos(float32(g.X-1), float32(g.Y-1)))
	border.Resize(fyne.NewSize(float32(g.W+2), float32(g.H+2)))
	objs := []fyne.CanvasObject{border}
	for _, h := range w.Handles {
		if !h.Visible {
			continue
		}
		b := h.Bounds()
		hr := canvas.NewRectangle(handleFill)
		hr.StrokeColor = selectStroke
		hr.StrokeWidth = 1
		hr.Move(fyne.NewPos(float32(b.X), float32(b.Y)))
		hr.Resize(fyne.NewSize(float32(b.W), float32(b.H)))
		objs = append(objs, hr)
	}
	return objs
}
