/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geom

import "math"

const (
	// MinWidth and MinHeight are the floor every resize is clamped to.
	MinWidth  = 30
	MinHeight = 20

	// DefaultGridSize is the pixel pitch of the design grid.
	DefaultGridSize = 8
)

// Snap rounds v to the nearest multiple of grid. Halfway values round to the
// even multiple, so 100 on an 8px grid lands on 96. A non-positive grid
// returns v unchanged.
func Snap(v, grid float64) float64 {
	if grid <= 0 {
		return v
	}
	return math.RoundToEven(v/grid) * grid
}

// Grid is the surface-level snapping configuration.
type Grid struct {
	Size    float64
	Enabled bool
}

// DefaultGrid returns an enabled 8px grid.
func DefaultGrid() Grid { return Grid{Size: DefaultGridSize, Enabled: true} }

// Snap applies the grid to v, or passes it through when snapping is off.
func (g Grid) Snap(v float64) float64 {
	if !g.Enabled {
		return v
	}
	return Snap(v, g.Size)
}

// SnapPt snaps both coordinates of p.
func (g Grid) SnapPt(p Pt) Pt { return Pt{X: g.Snap(p.X), Y: g.Snap(p.Y)} }

// ClampMin enforces the minimum widget size.
func ClampMin(w, h float64) (float64, float64) {
	return math.Max(w, MinWidth), math.Max(h, MinHeight)
}

// GridLine is one guide line of the background grid.
type GridLine struct {
	From, To Pt
}

// GridLines returns the vertical then horizontal lines covering a w×h area at
// the given pitch. Unsized canvases fall back to 400×300.
func GridLines(w, h, size float64) []GridLine {
	if size <= 0 {
		return nil
	}
	if w <= 1 {
		w = 400
	}
	if h <= 1 {
		h = 300
	}
	var lines []GridLine
	for x := 0.0; x < w; x += size {
		lines = append(lines, GridLine{From: Pt{x, 0}, To: Pt{x, h}})
	}
	for y := 0.0; y < h; y += size {
		lines = append(lines, GridLine{From: Pt{0, y}, To: Pt{w, y}})
	}
	return lines
}
