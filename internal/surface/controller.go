/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package surface turns pointer input on the design canvas into design model
// changes and keeps the generated code in step with the model.
//
// A Controller is not safe for concurrent use. All calls come from the UI
// event loop, which serializes drags, property edits and regeneration.
package surface

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"time"

	"formdesigner/internal/catalog"
	"formdesigner/internal/codegen"
	"formdesigner/internal/design"
	"formdesigner/internal/geom"
	applog "formdesigner/internal/log"
	"formdesigner/internal/propedit"
	"formdesigner/internal/props"
	"formdesigner/internal/undo"
)

// CodeSink receives freshly generated code. It replaces whatever the
// target buffer held before.
type CodeSink func(code string)

// EventSink records anonymous usage events; *telemetry.Client fits.
type EventSink interface {
	Event(name string, props map[string]any)
}

// Options configure a Controller. The zero value gives a controller with
// snapping off, no sink, no history and no events.
type Options struct {
	Grid geom.Grid
	// FormWidth and FormHeight bound the form; zero means unbounded.
	FormWidth, FormHeight float64
	Code                  codegen.Options
	Sink                  CodeSink
	History               *undo.Manager
	Events                EventSink
	// FontFamilies feeds the property editor's font dialog.
	FontFamilies func() []string
	Now          func() time.Time
}

// Controller is the design surface state machine.
type Controller struct {
	m       *design.Model
	opts    Options
	state   State
	status  string
	code    string
	pending []byte
	log     *slog.Logger
}

// New wraps m, or a fresh model when m is nil.
func New(m *design.Model, opts Options) *Controller {
	if m == nil {
		m = design.NewModel()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.FormWidth > 0 && opts.Code.Width == 0 {
		opts.Code.Width = int(opts.FormWidth)
	}
	if opts.FormHeight > 0 && opts.Code.Height == 0 {
		opts.Code.Height = int(opts.FormHeight)
	}
	return &Controller{
		m:      m,
		opts:   opts,
		state:  Idle{},
		status: "Ready",
		log:    applog.WithComponent("surface"),
	}
}

func (c *Controller) Model() *design.Model { return c.m }
func (c *Controller) State() State         { return c.state }

// Status is the status bar text: "Ready" or the live position readout.
func (c *Controller) Status() string { return c.status }

// Code returns the most recently generated program text.
func (c *Controller) Code() string { return c.code }

func (c *Controller) Grid() geom.Grid { return c.opts.Grid }

// SetSnap toggles snap to grid.
func (c *Controller) SetSnap(on bool) { c.opts.Grid.Enabled = on }

// SetGridSize changes the grid pitch; non-positive sizes are ignored.
func (c *Controller) SetGridSize(size float64) {
	if size > 0 {
		c.opts.Grid.Size = size
	}
}

// FormSize returns the configured form bounds.
func (c *Controller) FormSize() (w, h float64) { return c.opts.FormWidth, c.opts.FormHeight }

// Regenerate renders the model and pushes the text to the sink.
func (c *Controller) Regenerate() string {
	c.code = codegen.GenerateWith(c.m, c.opts.Code)
	if c.opts.Sink != nil {
		c.opts.Sink(c.code)
	}
	c.event("code_generated", map[string]any{"widgets": c.m.Len()})
	return c.code
}

func (c *Controller) event(name string, p map[string]any) {
	if c.opts.Events != nil {
		c.opts.Events.Event(name, p)
	}
}

func (c *Controller) capture() []byte {
	if c.opts.History == nil {
		return nil
	}
	blob, err := c.m.Snapshot()
	if err != nil {
		c.log.Warn("snapshot failed", slog.Any("err", err))
		return nil
	}
	return blob
}

func (c *Controller) record(label string, prev []byte) {
	if c.opts.History == nil || prev == nil {
		return
	}
	c.opts.History.Record(undo.Snapshot{Label: label, Blob: prev, TS: c.opts.Now()})
}

func (c *Controller) setReadout(r geom.Rect) {
	x, y, w, h := r.Ints()
	c.status = fmt.Sprintf("Position: (%d, %d) Size: %d×%d", x, y, w, h)
}

// PressPalette starts dragging a palette item. Only valid while idle.
func (c *Controller) PressPalette(t catalog.Type, offset geom.Pt) bool {
	if _, idle := c.state.(Idle); !idle {
		return false
	}
	c.state = DraggingCreate{Type: t, Offset: offset}
	return true
}

// Press handles a button press on the canvas. Handles of the selected widget
// win over widgets; widgets are tested top-down; empty canvas clears the
// selection.
func (c *Controller) Press(pt geom.Pt) {
	if _, idle := c.state.(Idle); !idle {
		return
	}
	if id, dir, ok := c.m.HandleAt(pt); ok {
		w, _ := c.m.Get(id)
		c.m.Select(id)
		c.pending = c.capture()
		c.state = DraggingResize{ID: id, Dir: dir, Offset: pt.Sub(w.Geometry.Min()), origin: pt, start: w.Geometry}
		return
	}
	if w, ok := c.m.WidgetAt(pt); ok {
		c.m.Select(w.ID)
		c.pending = c.capture()
		c.state = DraggingMove{ID: w.ID, Offset: pt.Sub(w.Geometry.Min()), origin: pt, start: w.Geometry}
		return
	}
	c.m.SelectNone()
}

// Motion handles pointer movement with the button held.
func (c *Controller) Motion(pt geom.Pt) {
	switch st := c.state.(type) {
	case DraggingMove:
		w, ok := c.m.Get(st.ID)
		if !ok {
			return
		}
		// The target corner follows the pointer from the press position so
		// snapping never swallows accumulated motion.
		target := c.opts.Grid.SnapPt(st.start.Min().Add(pt.Sub(st.origin)))
		dx, dy := target.X-w.Geometry.X, target.Y-w.Geometry.Y
		if dx == 0 && dy == 0 {
			return
		}
		c.m.Translate(st.ID, dx, dy)
		c.setReadout(w.Geometry)
	case DraggingResize:
		w, ok := c.m.Get(st.ID)
		if !ok {
			return
		}
		d := pt.Sub(st.origin)
		r := geom.ResizeRect(st.start, st.Dir, d.X, d.Y, c.opts.Grid)
		if r != w.Geometry {
			c.m.SetGeometry(st.ID, r)
			c.mirrorSize(st.ID, r)
		}
		c.setReadout(w.Geometry)
	}
}

// Release ends the current drag. A palette drag creates a widget at pt only
// when released over the canvas.
func (c *Controller) Release(pt geom.Pt, overCanvas bool) {
	switch st := c.state.(type) {
	case DraggingCreate:
		c.state = Idle{}
		if overCanvas {
			c.CreateWidget(st.Type, pt.X, pt.Y)
		}
	case DraggingMove:
		c.finishDrag(st.ID, st.start, editLabel("move", st.ID))
	case DraggingResize:
		c.finishDrag(st.ID, st.start, editLabel("resize", st.ID))
	}
}

func (c *Controller) finishDrag(id design.ID, start geom.Rect, label string) {
	c.state = Idle{}
	if w, ok := c.m.Get(id); ok && w.Geometry != start {
		c.record(label, c.pending)
	}
	c.pending = nil
	c.status = "Ready"
	c.Regenerate()
}

// editLabel names an undo step after the widget it touched, so bursts on
// different widgets never coalesce into one step.
func editLabel(kind string, id design.ID) string {
	return kind + ":" + strconv.FormatInt(int64(id), 10)
}

// mirrorSize writes r's size into the width and height properties the
// widget's type carries. Types without them stay untouched.
func (c *Controller) mirrorSize(id design.ID, r geom.Rect) {
	w, ok := c.m.Get(id)
	if !ok {
		return
	}
	_, _, wd, ht := r.Ints()
	if w.Props.Has("width") {
		c.m.SetProp(id, "width", props.String(strconv.Itoa(wd)))
	}
	if w.Props.Has("height") {
		c.m.SetProp(id, "height", props.String(strconv.Itoa(ht)))
	}
}

// CreateWidget places a widget of type t at (x, y) with its size class
// geometry, selects it and regenerates.
func (c *Controller) CreateWidget(t catalog.Type, x, y float64) design.ID {
	prev := c.capture()
	g := c.opts.Grid
	w, h := catalog.DefaultSize(t)
	w, h = geom.ClampMin(g.Snap(w), g.Snap(h))
	nw := c.m.Add(t, geom.R(g.Snap(x), g.Snap(y), w, h))
	c.mirrorSize(nw.ID, nw.Geometry)
	c.m.Select(nw.ID)
	c.record(editLabel("create", nw.ID), prev)
	c.log.Debug("widget created", slog.String("name", nw.Name), slog.String("type", string(t)))
	c.event("widget_created", map[string]any{"type": string(t)})
	c.status = "Ready"
	c.Regenerate()
	return nw.ID
}

// MoveSelection moves the selected widget by dx, dy. With snapping on the
// new top-left lands on the grid.
func (c *Controller) MoveSelection(dx, dy float64) bool {
	w, ok := c.m.Selected()
	if !ok {
		return false
	}
	target := c.opts.Grid.SnapPt(w.Geometry.Min().Add(geom.Pt{X: dx, Y: dy}))
	ddx, ddy := target.X-w.Geometry.X, target.Y-w.Geometry.Y
	if ddx == 0 && ddy == 0 {
		return false
	}
	prev := c.capture()
	c.m.Translate(w.ID, ddx, ddy)
	c.record(editLabel("move", w.ID), prev)
	c.setReadout(w.Geometry)
	c.Regenerate()
	return true
}

// ResizeSelection drags handle dir of the selected widget by dx, dy.
func (c *Controller) ResizeSelection(dir geom.Direction, dx, dy float64) bool {
	w, ok := c.m.Selected()
	if !ok {
		return false
	}
	r := geom.ResizeRect(w.Geometry, dir, dx, dy, c.opts.Grid)
	if r == w.Geometry {
		return false
	}
	prev := c.capture()
	c.m.SetGeometry(w.ID, r)
	c.mirrorSize(w.ID, r)
	c.record(editLabel("resize", w.ID), prev)
	c.setReadout(w.Geometry)
	c.Regenerate()
	return true
}

// SelectWidget selects id and raises it.
func (c *Controller) SelectWidget(id design.ID) bool { return c.m.Select(id) }

// SelectNone clears the selection.
func (c *Controller) SelectNone() { c.m.SelectNone() }

// DeleteSelection removes the selected widget.
func (c *Controller) DeleteSelection() bool {
	id := c.m.SelectedID()
	if id == 0 {
		return false
	}
	prev := c.capture()
	c.m.Delete(id)
	c.record(editLabel("delete", id), prev)
	c.Regenerate()
	return true
}

// OpenPropertyEditor opens an editor session over the widget's properties.
// Confirming it replaces the bag, refreshes label and geometry and
// regenerates.
func (c *Controller) OpenPropertyEditor(id design.ID) (*propedit.Session, bool) {
	w, ok := c.m.Get(id)
	if !ok {
		return nil, false
	}
	var families []string
	if c.opts.FontFamilies != nil {
		families = c.opts.FontFamilies()
	}
	s := propedit.Open(w.Type, w.Props, families, func(b *props.Bag) {
		c.applyProps(id, b)
	})
	return s, true
}

func (c *Controller) applyProps(id design.ID, b *props.Bag) {
	w, ok := c.m.Get(id)
	if !ok {
		return
	}
	prev := c.capture()
	b = keepWholeSizes(w.Props, b)
	r, ok := c.sizeFromProps(w.Geometry, b)
	c.m.SetProps(id, b)
	if ok {
		c.m.SetGeometry(id, r)
	}
	c.record(editLabel("props", id), prev)
	c.Regenerate()
}

// keepWholeSizes returns next with any width or height that is not a whole
// number replaced by its value in prev, or dropped if prev had none.
func keepWholeSizes(prev, next *props.Bag) *props.Bag {
	out := next
	for _, k := range []string{"width", "height"} {
		v, ok := next.Get(k)
		if !ok {
			continue
		}
		if _, whole := v.Int(); whole {
			continue
		}
		if out == next {
			out = next.Clone()
		}
		if old, had := prev.Get(k); had {
			out.Set(k, old)
		} else {
			out.Delete(k)
		}
	}
	return out
}

// sizeFromProps reads width and height from the bag. Values that are not
// whole numbers leave the geometry alone.
func (c *Controller) sizeFromProps(cur geom.Rect, b *props.Bag) (geom.Rect, bool) {
	wv, okW := b.Get("width")
	hv, okH := b.Get("height")
	if !okW || !okH {
		return cur, false
	}
	w, okW := wv.Int()
	h, okH := hv.Int()
	if !okW || !okH {
		return cur, false
	}
	fw, fh := geom.ClampMin(float64(w), float64(h))
	cur.W = c.snapAtLeast(fw, geom.MinWidth)
	cur.H = c.snapAtLeast(fh, geom.MinHeight)
	return cur, true
}

// snapAtLeast snaps v and, if that dropped it under min, takes the next
// grid multiple above min instead.
func (c *Controller) snapAtLeast(v, min float64) float64 {
	g := c.opts.Grid
	s := g.Snap(v)
	if s >= min {
		return s
	}
	if g.Enabled && g.Size > 0 {
		return math.Ceil(min/g.Size) * g.Size
	}
	return min
}
