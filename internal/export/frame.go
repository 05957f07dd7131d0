/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package export renders a wireframe of the designed form to PDF, PNG or SVG.
// All three share one layout pass: form frame, optional grid, then widgets bottom to top.
package export

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"formdesigner/internal/codegen"
	"formdesigner/internal/design"
	"formdesigner/internal/fonts"
	"formdesigner/internal/geom"
	"formdesigner/internal/props"
)

// Options controls wireframe output.
// Form carries title, size and background exactly as the code generator sees them.
type Options struct {
	Form          codegen.Options
	GridSize      float64 // > 0 draws grid guides
	ShowSelection bool    // outline the selected widget and its handles
	Scale         float64 // PNG pixels per form pixel; zero means 1
	Fonts         *fonts.Library
}

// DefaultOptions exports the stock form without grid or selection.
func DefaultOptions() Options {
	return Options{Form: codegen.DefaultOptions()}
}

var (
	widgetFill   = color.RGBA{R: 0xe1, G: 0xe1, B: 0xe1, A: 0xff}
	widgetStroke = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	selectStroke = color.RGBA{R: 0x00, G: 0x78, B: 0xd7, A: 0xff}
	gridColor    = color.RGBA{R: 0xd8, G: 0xd8, B: 0xd8, A: 0xff}
	textColor    = color.RGBA{A: 0xff}
	titleFill    = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// titleBarHeight is the caption strip drawn above the client area.
const titleBarHeight = 24.0

// item is one widget as it is drawn.
type item struct {
	rect     geom.Rect
	label    string
	fill     color.RGBA
	stroke   color.RGBA
	text     color.RGBA
	font     props.Font
	selected bool
	handles  []geom.Rect
}

// frame is the shared layout of a wireframe. Coordinates are form-client
// coordinates shifted down by the title bar.
type frame struct {
	title    string
	w, h     float64
	bg       color.RGBA
	grid     []geom.GridLine
	items    []item
	fullH    float64
	clientY0 float64
}

func layout(m *design.Model, opt Options) frame {
	form := opt.Form
	if form.Width <= 0 || form.Height <= 0 {
		d := codegen.DefaultOptions()
		form.Width, form.Height = d.Width, d.Height
	}
	bg, ok := props.ParseColor(form.Background)
	if !ok {
		bg, _ = props.ParseColor(codegen.DefaultOptions().Background)
	}
	f := frame{
		title:    form.Title,
		w:        float64(form.Width),
		h:        float64(form.Height),
		bg:       bg,
		clientY0: titleBarHeight,
	}
	f.fullH = f.h + titleBarHeight
	if opt.GridSize > 0 {
		f.grid = geom.GridLines(f.w, f.h, opt.GridSize)
	}
	if m == nil {
		return f
	}
	for _, id := range m.ZOrder() {
		w, ok := m.Get(id)
		if !ok {
			continue
		}
		it := item{
			rect:   w.Geometry.Translate(0, titleBarHeight),
			label:  w.Label.Text,
			fill:   propColor(w.Props, "background", widgetFill),
			stroke: widgetStroke,
			text:   propColor(w.Props, "foreground", textColor),
			font:   props.DefaultFont(),
		}
		if v, ok := w.Props.Get("font"); ok {
			it.font = props.ParseFont(v.String())
		}
		if opt.ShowSelection && w.Selected {
			it.selected = true
			it.stroke = selectStroke
			for _, h := range w.Handles {
				it.handles = append(it.handles, h.Bounds().Translate(0, titleBarHeight))
			}
		}
		f.items = append(f.items, it)
	}
	return f
}

func propColor(b *props.Bag, name string, def color.RGBA) color.RGBA {
	v, ok := b.Get(name)
	if !ok {
		return def
	}
	c, ok := props.ParseColor(v.String())
	if !ok {
		return def
	}
	return c
}

// ensureDir creates the parent directory of outPath.
func ensureDir(outPath string) error {
	if outPath == "" {
		return fmt.Errorf("output path is required")
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("ensure out dir: %w", err)
	}
	return nil
}
