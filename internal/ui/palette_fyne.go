//go:build fyne && cgo

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"formdesigner/internal/catalog"
	"formdesigner/internal/geom"
	"formdesigner/internal/surface"
)

// paletteItem is one draggable control entry. Dropping it over the design
// canvas creates a widget at the drop point; a plain tap places it at the
// top left of the form.
type paletteItem struct {
	widget.BaseWidget
	t      catalog.Type
	ctrl   *surface.Controller
	target *DesignCanvas
	done   func()

	dragging bool
	abs      fyne.Position
}

func newPaletteItem(t catalog.Type, c *surface.Controller, target *DesignCanvas, done func()) *paletteItem {
	p := &paletteItem{t: t, ctrl: c, target: target, done: done}
	p.ExtendBaseWidget(p)
	return p
}

func (p *paletteItem) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(widget.NewLabel(string(p.t)))
}

func (p *paletteItem) Tapped(*fyne.PointEvent) {
	g := p.ctrl.Grid()
	p.ctrl.CreateWidget(p.t, 2*g.Size, 2*g.Size)
	p.done()
}

func (p *paletteItem) Dragged(e *fyne.DragEvent) {
	if !p.dragging {
		if !p.ctrl.PressPalette(p.t, geom.Pt{}) {
			return
		}
		p.dragging = true
	}
	p.abs = e.AbsolutePosition
}

func (p *paletteItem) DragEnd() {
	if !p.dragging {
		return
	}
	p.dragging = false
	pt, over := p.target.Contains(p.abs)
	p.ctrl.Release(pt, over)
	p.done()
}

// newPalette builds the searchable control toolbox.
func newPalette(c *surface.Controller, target *DesignCanvas, done func()) fyne.CanvasObject {
	list := container.NewVBox()
	search := widget.NewEntry()
	search.SetPlaceHolder("Search controls")
	fill := func(q string) {
		list.RemoveAll()
		cats := catalog.Filter(q)
		if len(cats) == 0 {
			list.Add(widget.NewLabel("No matching controls"))
		}
		for _, cat := range cats {
			items := container.NewVBox()
			for _, t := range cat.Types {
				items.Add(newPaletteItem(t, c, target, done))
			}
			acc := widget.NewAccordion(widget.NewAccordionItem(cat.Name, items))
			if q != "" || cat.Name == catalog.Palette()[0].Name {
				acc.Open(0)
			}
			list.Add(acc)
		}
		list.Refresh()
	}
	search.OnChanged = fill
	fill("")
	return container.NewBorder(container.NewVBox(widget.NewLabelWithStyle("Toolbox", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}), search), nil, nil, nil, container.NewVScroll(list))
}
