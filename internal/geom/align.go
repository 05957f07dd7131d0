/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geom

// Edge selects which side alignment operations line up.
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeRight
	EdgeTop
	EdgeBottom
)

func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// ParseEdge maps "left", "right", "top" or "bottom" to an Edge.
func ParseEdge(s string) (Edge, bool) {
	switch s {
	case "left":
		return EdgeLeft, true
	case "right":
		return EdgeRight, true
	case "top":
		return EdgeTop, true
	case "bottom":
		return EdgeBottom, true
	}
	return EdgeLeft, false
}

// Align moves r so that its edge matches the same edge of target. Size is kept.
func Align(target, r Rect, e Edge) Rect {
	switch e {
	case EdgeLeft:
		r.X = target.X
	case EdgeRight:
		r.X = target.Right() - r.W
	case EdgeTop:
		r.Y = target.Y
	case EdgeBottom:
		r.Y = target.Bottom() - r.H
	}
	return r
}

// SameSize gives r the size of target, keeping its top-left corner.
func SameSize(target, r Rect) Rect {
	r.W, r.H = target.W, target.H
	return r
}

// FitInside pulls r back inside a form of the given size when it sticks out
// past the right or bottom edge. Rects that already fit are returned as is.
func FitInside(formW, formH float64, r Rect) Rect {
	if r.Right() <= formW && r.Bottom() <= formH {
		return r
	}
	if r.X > formW-r.W {
		r.X = formW - r.W
	}
	if r.Y > formH-r.H {
		r.Y = formH - r.H
	}
	return r
}
