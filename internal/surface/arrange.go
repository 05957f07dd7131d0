/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package surface

import (
	"formdesigner/internal/geom"
)

// AlignSelection lines every other widget up with the given edge of the
// selected widget. It returns how many widgets moved.
func (c *Controller) AlignSelection(e geom.Edge) int {
	return c.arrange("align", func(target, r geom.Rect) geom.Rect { return geom.Align(target, r, e) })
}

// MakeSameSize gives every other widget the selected widget's size.
func (c *Controller) MakeSameSize() int {
	return c.arrange("same-size", geom.SameSize)
}

func (c *Controller) arrange(label string, fn func(target, r geom.Rect) geom.Rect) int {
	sel, ok := c.m.Selected()
	if !ok {
		return 0
	}
	prev := c.capture()
	n := 0
	for _, w := range c.m.Widgets() {
		if w.ID == sel.ID {
			continue
		}
		r := fn(sel.Geometry, w.Geometry)
		if r != w.Geometry {
			resized := r.W != w.Geometry.W || r.H != w.Geometry.H
			c.m.SetGeometry(w.ID, r)
			if resized {
				c.mirrorSize(w.ID, r)
			}
			n++
		}
	}
	if n > 0 {
		c.record(label, prev)
		c.Regenerate()
	}
	return n
}

// ResizeForm changes the form size and pulls widgets that now stick out
// back inside. Non-positive sizes are ignored.
func (c *Controller) ResizeForm(w, h float64) bool {
	if w <= 0 || h <= 0 {
		return false
	}
	prev := c.capture()
	c.opts.FormWidth, c.opts.FormHeight = w, h
	c.opts.Code.Width, c.opts.Code.Height = int(w), int(h)
	for _, wd := range c.m.Widgets() {
		if r := geom.FitInside(w, h, wd.Geometry); r != wd.Geometry {
			c.m.SetGeometry(wd.ID, r)
		}
	}
	c.record("form", prev)
	c.Regenerate()
	return true
}
