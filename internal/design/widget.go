/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package design is the in-memory source of truth for a form being designed:
// the placed widgets, their z-order and the current selection.
//
// A Model is not safe for concurrent use; it is driven from the UI event loop.
package design

import (
	"formdesigner/internal/catalog"
	"formdesigner/internal/geom"
	"formdesigner/internal/props"
)

// ID identifies a widget for the lifetime of a session. IDs start at 1 and
// are never reused; the zero ID means "none".
type ID int64

// Label is the caption drawn centered on a widget.
type Label struct {
	Text string
	Pos  geom.Pt
}

// Handle is one of the eight resize markers around a widget.
type Handle struct {
	Dir     geom.Direction
	Pos     geom.Pt
	Visible bool
}

// Bounds is the hit box of the handle.
func (h Handle) Bounds() geom.Rect { return geom.HandleRect(h.Pos) }

// Widget is one placed control. Label and Handles are derived from Geometry
// and kept in step by the Model; callers should treat a *Widget as read-only
// and mutate through Model methods.
type Widget struct {
	ID       ID
	Type     catalog.Type
	Name     string
	Geometry geom.Rect
	Props    *props.Bag
	Label    Label
	Handles  [8]Handle
	Selected bool
}

// relayout recomputes the label and handle positions from the geometry.
func (w *Widget) relayout() {
	w.Label.Pos = w.Geometry.Center()
	pts := geom.Handles(w.Geometry)
	for _, d := range geom.Directions {
		w.Handles[d] = Handle{Dir: d, Pos: pts[d], Visible: w.Selected}
	}
}

func (w *Widget) setSelected(on bool) {
	w.Selected = on
	for i := range w.Handles {
		w.Handles[i].Visible = on
	}
}

// HandleAt returns the handle whose hit box contains p.
func (w *Widget) HandleAt(p geom.Pt) (geom.Direction, bool) {
	for _, h := range w.Handles {
		if h.Bounds().Contains(p) {
			return h.Dir, true
		}
	}
	return geom.NW, false
}

// labelText picks the caption: the text property when set, else the type.
func labelText(t catalog.Type, b *props.Bag) string {
	if v, ok := b.Get("text"); ok {
		return v.String()
	}
	return string(t)
}
