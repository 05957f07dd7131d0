/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package geom holds the pure geometry used by the design surface: rectangles,
// grid snapping, the minimum-size floor and the eight resize handles.
// Nothing in here keeps state.
package geom

import "math"

// Pt is a point in canvas pixel units.
type Pt struct{ X, Y float64 }

// Add returns p translated by q.
func (p Pt) Add(q Pt) Pt { return Pt{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns the vector from q to p.
func (p Pt) Sub(q Pt) Pt { return Pt{X: p.X - q.X, Y: p.Y - q.Y} }

// Rect is an axis-aligned box defined by its top-left corner and size.
type Rect struct {
	X, Y float64
	W, H float64
}

func R(x, y, w, h float64) Rect { return Rect{X: x, Y: y, W: w, H: h} }

// FromEdges builds a rect from its left, top, right and bottom edges.
func FromEdges(x1, y1, x2, y2 float64) Rect { return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1} }

func (r Rect) Min() Pt         { return Pt{r.X, r.Y} }
func (r Rect) Max() Pt         { return Pt{r.X + r.W, r.Y + r.H} }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }
func (r Rect) Center() Pt      { return Pt{r.X + r.W/2, r.Y + r.H/2} }

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Pt) bool {
	return p.X >= r.X && p.Y >= r.Y && p.X <= r.X+r.W && p.Y <= r.Y+r.H
}

// Translate returns r moved by dx,dy.
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Union returns the minimal rect containing both.
func (r Rect) Union(o Rect) Rect {
	minX := math.Min(r.X, o.X)
	minY := math.Min(r.Y, o.Y)
	maxX := math.Max(r.X+r.W, o.X+o.W)
	maxY := math.Max(r.Y+r.H, o.Y+o.H)
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Ints returns the geometry truncated to whole pixels, the way it is shown in
// the status readout and emitted into generated code.
func (r Rect) Ints() (x, y, w, h int) {
	return int(r.X), int(r.Y), int(r.W), int(r.H)
}
