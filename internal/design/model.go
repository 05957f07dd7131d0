/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package design

import (
	"fmt"
	"strings"

	"formdesigner/internal/catalog"
	"formdesigner/internal/geom"
	"formdesigner/internal/props"
)

// Model owns the placed widgets. Creation order drives code generation and
// is independent of the z-order, which changes when widgets are raised.
type Model struct {
	widgets  map[ID]*Widget
	order    []ID
	z        []ID // bottom to top
	selected ID
	counters map[catalog.Type]int
	nextID   ID
}

func NewModel() *Model {
	return &Model{
		widgets:  map[ID]*Widget{},
		counters: map[catalog.Type]int{},
		nextID:   1,
	}
}

// Add places a new widget of type t with geometry r and a fresh default
// property bag. The name is the lower-cased type plus a per-type counter
// that only ever increases. The widget goes on top of the z-order; it is not
// selected.
func (m *Model) Add(t catalog.Type, r geom.Rect) *Widget {
	m.counters[t]++
	w := &Widget{
		ID:       m.nextID,
		Type:     t,
		Name:     fmt.Sprintf("%s%d", strings.ToLower(string(t)), m.counters[t]),
		Geometry: r,
		Props:    props.Defaults(t),
	}
	m.nextID++
	w.Label.Text = string(t)
	w.relayout()
	m.widgets[w.ID] = w
	m.order = append(m.order, w.ID)
	m.z = append(m.z, w.ID)
	return w
}

func (m *Model) Get(id ID) (*Widget, bool) {
	w, ok := m.widgets[id]
	return w, ok
}

func (m *Model) Len() int { return len(m.order) }

// Widgets returns the widgets in creation order.
func (m *Model) Widgets() []*Widget {
	out := make([]*Widget, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.widgets[id])
	}
	return out
}

// ZOrder returns widget ids from bottom to top.
func (m *Model) ZOrder() []ID { return append([]ID(nil), m.z...) }

// SelectedID returns the selected widget id, or zero.
func (m *Model) SelectedID() ID { return m.selected }

func (m *Model) Selected() (*Widget, bool) {
	if m.selected == 0 {
		return nil, false
	}
	return m.Get(m.selected)
}

// Select makes id the only selected widget and raises it to the top.
// The previous selection loses its handles.
func (m *Model) Select(id ID) bool {
	w, ok := m.widgets[id]
	if !ok {
		return false
	}
	if prev, ok := m.widgets[m.selected]; ok && prev.ID != id {
		prev.setSelected(false)
	}
	m.selected = id
	w.setSelected(true)
	m.Raise(id)
	return true
}

// SelectNone clears the selection.
func (m *Model) SelectNone() {
	if prev, ok := m.widgets[m.selected]; ok {
		prev.setSelected(false)
	}
	m.selected = 0
}

// Raise moves id to the top of the z-order.
func (m *Model) Raise(id ID) {
	for i, zid := range m.z {
		if zid == id {
			m.z = append(m.z[:i], m.z[i+1:]...)
			m.z = append(m.z, id)
			return
		}
	}
}

// Delete removes a widget, clearing the selection if it was selected.
// Counters are left alone so names are not reused.
func (m *Model) Delete(id ID) bool {
	if _, ok := m.widgets[id]; !ok {
		return false
	}
	if m.selected == id {
		m.selected = 0
	}
	delete(m.widgets, id)
	m.order = without(m.order, id)
	m.z = without(m.z, id)
	return true
}

func without(ids []ID, id ID) []ID {
	out := ids[:0]
	for _, x := range ids {
		if x != id {
			out = append(out, x)
		}
	}
	return out
}

// SetGeometry replaces the geometry and rebuilds the label and handles.
func (m *Model) SetGeometry(id ID, r geom.Rect) bool {
	w, ok := m.widgets[id]
	if !ok {
		return false
	}
	w.Geometry = r
	w.relayout()
	return true
}

// Translate moves a widget with its label and handles.
func (m *Model) Translate(id ID, dx, dy float64) bool {
	w, ok := m.widgets[id]
	if !ok {
		return false
	}
	return m.SetGeometry(id, w.Geometry.Translate(dx, dy))
}

// SetProps replaces the property bag with a copy of b and refreshes the
// label caption. Geometry is not touched.
func (m *Model) SetProps(id ID, b *props.Bag) bool {
	w, ok := m.widgets[id]
	if !ok {
		return false
	}
	w.Props = b.Clone()
	w.Label.Text = labelText(w.Type, w.Props)
	return true
}

// SetProp sets a single property on a widget.
func (m *Model) SetProp(id ID, name string, v props.Value) bool {
	w, ok := m.widgets[id]
	if !ok {
		return false
	}
	w.Props.Set(name, v)
	if name == "text" {
		w.Label.Text = v.String()
	}
	return true
}

// WidgetAt returns the topmost widget containing p.
func (m *Model) WidgetAt(p geom.Pt) (*Widget, bool) {
	for i := len(m.z) - 1; i >= 0; i-- {
		w := m.widgets[m.z[i]]
		if w.Geometry.Contains(p) {
			return w, true
		}
	}
	return nil, false
}

// HandleAt hit-tests the handles of the selected widget, the only ones
// visible.
func (m *Model) HandleAt(p geom.Pt) (ID, geom.Direction, bool) {
	w, ok := m.Selected()
	if !ok {
		return 0, geom.NW, false
	}
	d, ok := w.HandleAt(p)
	if !ok {
		return 0, geom.NW, false
	}
	return w.ID, d, true
}

// Bounds is the union of all widget geometries.
func (m *Model) Bounds() (geom.Rect, bool) {
	var r geom.Rect
	for i, id := range m.order {
		g := m.widgets[id].Geometry
		if i == 0 {
			r = g
			continue
		}
		r = r.Union(g)
	}
	return r, len(m.order) > 0
}
