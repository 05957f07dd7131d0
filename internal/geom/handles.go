/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geom

import "fmt"

// Direction names one of the eight resize handles.
type Direction int

const (
	NW Direction = iota
	N
	NE
	E
	SE
	S
	SW
	W
)

// Directions lists the handles in canonical order.
var Directions = [8]Direction{NW, N, NE, E, SE, S, SW, W}

var directionNames = [8]string{"nw", "n", "ne", "e", "se", "s", "sw", "w"}

func (d Direction) String() string {
	if d < NW || d > W {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// ParseDirection maps "nw", "n", ... back to a Direction.
func ParseDirection(s string) (Direction, bool) {
	for i, n := range directionNames {
		if n == s {
			return Direction(i), true
		}
	}
	return NW, false
}

// West reports whether the handle moves the left edge.
func (d Direction) West() bool { return d == NW || d == W || d == SW }

// East reports whether the handle moves the right edge.
func (d Direction) East() bool { return d == NE || d == E || d == SE }

// North reports whether the handle moves the top edge.
func (d Direction) North() bool { return d == NW || d == N || d == NE }

// South reports whether the handle moves the bottom edge.
func (d Direction) South() bool { return d == SW || d == S || d == SE }

// HandleSize is the side length of a handle's hit box in pixels.
const HandleSize = 6

// Handles returns the eight handle points of r indexed by Direction.
func Handles(r Rect) [8]Pt {
	x1, y1, x2, y2 := r.X, r.Y, r.Right(), r.Bottom()
	cx, cy := x1+r.W/2, y1+r.H/2
	return [8]Pt{
		NW: {x1, y1},
		N:  {cx, y1},
		NE: {x2, y1},
		E:  {x2, cy},
		SE: {x2, y2},
		S:  {cx, y2},
		SW: {x1, y2},
		W:  {x1, cy},
	}
}

// HandlePositions is Handles keyed by direction.
func HandlePositions(r Rect) map[Direction]Pt {
	hs := Handles(r)
	out := make(map[Direction]Pt, len(hs))
	for _, d := range Directions {
		out[d] = hs[d]
	}
	return out
}

// HandleRect is the square hit box centered on a handle point.
func HandleRect(p Pt) Rect {
	return Rect{X: p.X - HandleSize/2, Y: p.Y - HandleSize/2, W: HandleSize, H: HandleSize}
}

// ResizeRect moves the edges named by dir by dx/dy, snaps all four edges to
// the grid and then restores the minimum size by pinning the dragged edge.
func ResizeRect(r Rect, dir Direction, dx, dy float64, g Grid) Rect {
	x1, y1, x2, y2 := r.X, r.Y, r.Right(), r.Bottom()
	if dir.West() {
		x1 += dx
	}
	if dir.East() {
		x2 += dx
	}
	if dir.North() {
		y1 += dy
	}
	if dir.South() {
		y2 += dy
	}

	x1, y1, x2, y2 = g.Snap(x1), g.Snap(y1), g.Snap(x2), g.Snap(y2)

	if x2-x1 < MinWidth {
		if dir.West() {
			x1 = x2 - MinWidth
		} else {
			x2 = x1 + MinWidth
		}
	}
	if y2-y1 < MinHeight {
		if dir.North() {
			y1 = y2 - MinHeight
		} else {
			y2 = y1 + MinHeight
		}
	}
	return FromEdges(x1, y1, x2, y2)
}
