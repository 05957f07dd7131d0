//go:build fyne && cgo

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// These tests validate the Fyne-based UI components. They are gated behind the
// "fyne" build tag so CI (which is headless) does not need Fyne or a display.
// To run locally:
//
//	go test -tags fyne ./internal/ui
package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"

	"formdesigner/internal/design"
	"formdesigner/internal/geom"
	"formdesigner/internal/surface"
	"formdesigner/internal/undo"
)

func newTestCanvas(t *testing.T) (*DesignCanvas, *surface.Controller) {
	t.Helper()
	test.NewApp()
	c := surface.New(nil, surface.Options{
		Grid:      geom.Grid{Size: 8, Enabled: true},
		FormWidth: 800, FormHeight: 600,
		History: undo.NewManager(undo.Config{MaxDepth: 10}),
	})
	return NewDesignCanvas(c), c
}

func TestDesignCanvas_MinSizeFollowsForm(t *testing.T) {
	dc, c := newTestCanvas(t)
	if sz := dc.MinSize(); sz.Width != 800 || sz.Height != 600 {
		t.Fatalf("MinSize = %v", sz)
	}
	c.ResizeForm(400, 300)
	if sz := dc.MinSize(); sz.Width != 400 || sz.Height != 300 {
		t.Fatalf("MinSize after resize = %v", sz)
	}
}

func TestDesignCanvas_RendererObjects(t *testing.T) {
	dc, c := newTestCanvas(t)
	c.SetSnap(false)
	r := dc.CreateRenderer().(*designCanvasRenderer)
	if n := len(r.Objects()); n != 1 {
		t.Fatalf("empty canvas objects = %d, want form only", n)
	}
	c.CreateWidget("Button", 96, 96)
	r.Refresh()
	// form, box, text, selection border, eight handles
	if n := len(r.Objects()); n != 12 {
		t.Fatalf("objects with a selected widget = %d, want 12", n)
	}
	c.SelectNone()
	r.Refresh()
	if n := len(r.Objects()); n != 3 {
		t.Fatalf("objects without selection = %d, want 3", n)
	}
}

func TestDesignCanvas_GridLinesWhenSnapping(t *testing.T) {
	dc, _ := newTestCanvas(t)
	r := dc.CreateRenderer().(*designCanvasRenderer)
	want := 1 + len(geom.GridLines(800, 600, 8))
	if n := len(r.Objects()); n != want {
		t.Fatalf("objects = %d, want %d", n, want)
	}
}

func TestDesignCanvas_DragMovesWidget(t *testing.T) {
	dc, c := newTestCanvas(t)
	id := c.CreateWidget("Button", 96, 96)
	changes := 0
	dc.OnChange = func() { changes++ }

	dc.MouseDown(&desktop.MouseEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(100, 100)}, Button: desktop.MouseButtonPrimary})
	dc.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(132, 116)}})
	dc.DragEnd()
	dc.MouseUp(&desktop.MouseEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(132, 116)}, Button: desktop.MouseButtonPrimary})

	w, _ := c.Model().Get(id)
	if w.Geometry != geom.R(128, 112, 96, 32) {
		t.Fatalf("geometry after drag = %+v", w.Geometry)
	}
	if _, idle := c.State().(surface.Idle); !idle {
		t.Fatalf("state after release = %v", c.State())
	}
	if !c.CanUndo() {
		t.Fatalf("drag should be undoable")
	}
	if changes != 4 {
		t.Fatalf("OnChange calls = %d, want 4", changes)
	}
}

func TestDesignCanvas_SecondaryButtonIgnored(t *testing.T) {
	dc, c := newTestCanvas(t)
	id := c.CreateWidget("Button", 96, 96)
	c.SelectNone()
	dc.MouseDown(&desktop.MouseEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(100, 100)}, Button: desktop.MouseButtonSecondary})
	if c.Model().SelectedID() == id {
		t.Fatalf("secondary press should not select")
	}
}

func TestDesignCanvas_DoubleTapEdits(t *testing.T) {
	dc, c := newTestCanvas(t)
	id := c.CreateWidget("Label", 16, 16)
	var got design.ID
	dc.OnEdit = func(id design.ID) { got = id }
	dc.DoubleTapped(&fyne.PointEvent{Position: fyne.NewPos(20, 20)})
	if got != id {
		t.Fatalf("OnEdit id = %d, want %d", got, id)
	}
	got = 0
	dc.DoubleTapped(&fyne.PointEvent{Position: fyne.NewPos(700, 500)})
	if got != 0 {
		t.Fatalf("double tap on empty form should not edit")
	}
}
