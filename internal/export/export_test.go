/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package export

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"formdesigner/internal/design"
	"formdesigner/internal/fonts"
	"formdesigner/internal/geom"
	"formdesigner/internal/props"
)

func sampleModel() (*design.Model, design.ID) {
	m := design.NewModel()
	b := m.Add("Button", geom.R(96, 96, 96, 32))
	m.Add("Label", geom.R(16, 16, 96, 32))
	return m, b.ID
}

func TestRasterDrawsFrameAndWidgets(t *testing.T) {
	m, _ := sampleModel()
	img := Raster(m, DefaultOptions())
	if got := img.Bounds().Size(); got.X != 800 || got.Y != 600+titleBarHeight {
		t.Fatalf("image size = %v", got)
	}
	bg := color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
	if got := img.RGBAAt(400, 500); got != bg {
		t.Fatalf("client background = %v, want %v", got, bg)
	}
	// Button border and interior (background defaults to white).
	if got := img.RGBAAt(96, 96+titleBarHeight); got != widgetStroke {
		t.Fatalf("button border = %v", got)
	}
	if got := img.RGBAAt(98, 98+titleBarHeight); got != (color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}) {
		t.Fatalf("button fill = %v", got)
	}
}

func TestRasterUsesBackgroundProperty(t *testing.T) {
	m, id := sampleModel()
	m.SetProp(id, "background", props.String("#ff0000"))
	img := Raster(m, DefaultOptions())
	if got := img.RGBAAt(98, 98+titleBarHeight); got != (color.RGBA{R: 0xff, A: 0xff}) {
		t.Fatalf("button fill = %v, want red", got)
	}
}

func TestRasterSelectionOutline(t *testing.T) {
	m, id := sampleModel()
	m.Select(id)
	opt := DefaultOptions()
	img := Raster(m, opt)
	if got := img.RGBAAt(96, 96+titleBarHeight); got != widgetStroke {
		t.Fatalf("selection must not show unless requested, border = %v", got)
	}
	opt.ShowSelection = true
	img = Raster(m, opt)
	if got := img.RGBAAt(120, 96+titleBarHeight); got != selectStroke {
		t.Fatalf("selected border = %v, want %v", got, selectStroke)
	}
}

func TestRasterScale(t *testing.T) {
	m, _ := sampleModel()
	opt := DefaultOptions()
	opt.Scale = 0.5
	opt.Form.Width, opt.Form.Height = 400, 300
	img := Raster(m, opt)
	if got := img.Bounds().Size(); got.X != 200 || got.Y != 162 {
		t.Fatalf("scaled size = %v", got)
	}
}

func TestRasterWithFontLibrary(t *testing.T) {
	m, _ := sampleModel()
	opt := DefaultOptions()
	opt.Fonts = fonts.NewLibrary()
	img := Raster(m, opt)
	// Some label pixels differ from the white button fill.
	inked := false
	for x := 100; x < 188 && !inked; x++ {
		for y := 100 + int(titleBarHeight); y < 124+int(titleBarHeight); y++ {
			if img.RGBAAt(x, y) != (color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}) {
				inked = true
				break
			}
		}
	}
	if !inked {
		t.Fatalf("expected the Button label to be drawn")
	}
}

func TestPNGWritesDecodableFile(t *testing.T) {
	m, _ := sampleModel()
	out := filepath.Join(t.TempDir(), "out", "form.png")
	if err := PNG(m, out, DefaultOptions()); err != nil {
		t.Fatalf("PNG: %v", err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 800 {
		t.Fatalf("width = %d", img.Bounds().Dx())
	}
}

func TestPDFWritesFile(t *testing.T) {
	m, _ := sampleModel()
	out := filepath.Join(t.TempDir(), "form.pdf")
	opt := DefaultOptions()
	opt.GridSize = 8
	if err := PDF(m, out, opt); err != nil {
		t.Fatalf("PDF: %v", err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(b, []byte("%PDF-")) {
		t.Fatalf("not a pdf: %q", b[:8])
	}
}

func TestPDFRejectsEmptyPath(t *testing.T) {
	if err := PDF(design.NewModel(), "", DefaultOptions()); err == nil {
		t.Fatalf("expected error for empty output path")
	}
}

func TestSVGBytes(t *testing.T) {
	m, id := sampleModel()
	m.SetProp(id, "text", props.String("Save & <Exit>"))
	opt := DefaultOptions()
	opt.Form.Title = "Login"
	opt.GridSize = 100
	b, err := SVGBytes(m, opt)
	if err != nil {
		t.Fatalf("SVGBytes: %v", err)
	}
	s := string(b)
	for _, want := range []string{
		`viewBox="0 0 800 624"`,
		"<title>Login</title>",
		"Save &amp; &lt;Exit&gt;",
		`<rect x="96" y="120" width="96" height="32"`,
		"<line ",
	} {
		if !strings.Contains(s, want) {
			t.Fatalf("svg missing %q:\n%s", want, s)
		}
	}
}

func TestSVGWritesFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "form.svg")
	if err := SVG(nil, out, DefaultOptions()); err != nil {
		t.Fatalf("SVG: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("stat: %v", err)
	}
}
