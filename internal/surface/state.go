/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package surface

import (
	"formdesigner/internal/catalog"
	"formdesigner/internal/design"
	"formdesigner/internal/geom"
)

// State is the pointer interaction in progress. Exactly one is active:
// Idle, DraggingCreate, DraggingMove or DraggingResize.
type State interface {
	isState()
	String() string
}

// Idle waits for a press.
type Idle struct{}

// DraggingCreate carries a palette type towards the canvas. Offset is where
// the pointer grabbed the palette item.
type DraggingCreate struct {
	Type   catalog.Type
	Offset geom.Pt
}

// DraggingMove drags a widget. Offset is the pointer position relative to
// the widget's top-left corner at press time.
type DraggingMove struct {
	ID     design.ID
	Offset geom.Pt
	origin geom.Pt
	start  geom.Rect
}

// DraggingResize drags one of the selected widget's handles.
type DraggingResize struct {
	ID     design.ID
	Dir    geom.Direction
	Offset geom.Pt
	origin geom.Pt
	start  geom.Rect
}

func (Idle) isState()           {}
func (DraggingCreate) isState() {}
func (DraggingMove) isState()   {}
func (DraggingResize) isState() {}

func (Idle) String() string           { return "idle" }
func (DraggingCreate) String() string { return "dragging-create" }
func (DraggingMove) String() string   { return "dragging-move" }
func (DraggingResize) String() string { return "dragging-resize" }
