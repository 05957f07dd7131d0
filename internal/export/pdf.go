/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"fmt"
	"image/color"

	"github.com/jung-kurt/gofpdf"

	"formdesigner/internal/design"
	"formdesigner/internal/version"
)

// PDF writes a single-page wireframe of the form to outPath.
// Units are points with a 1:1 mapping from form pixels; the page is sized to the form
// plus its title bar. Text uses the built-in Helvetica so nothing is embedded.
func PDF(m *design.Model, outPath string, opt Options) error {
	if err := ensureDir(outPath); err != nil {
		return err
	}
	pdf := render(m, opt)
	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func render(m *design.Model, opt Options) *gofpdf.Fpdf {
	f := layout(m, opt)
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: f.w, Ht: f.fullH},
	})
	pdf.SetTitle(f.title, true)
	pdf.SetCreator("formdesigner "+version.String(), true)
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Title bar
	setFillColor(pdf, titleFill)
	setDrawColor(pdf, widgetStroke)
	pdf.SetLineWidth(0.5)
	pdf.Rect(0, 0, f.w, titleBarHeight, "FD")
	pdf.SetFont("Helvetica", "B", 10)
	setTextColor(pdf, textColor)
	pdf.Text(6, titleBarHeight-8, tr(f.title))

	// Client area
	setFillColor(pdf, f.bg)
	pdf.Rect(0, f.clientY0, f.w, f.h, "FD")

	if len(f.grid) > 0 {
		setDrawColor(pdf, gridColor)
		pdf.SetLineWidth(0.2)
		for _, gl := range f.grid {
			pdf.Line(gl.From.X, gl.From.Y+f.clientY0, gl.To.X, gl.To.Y+f.clientY0)
		}
	}

	for _, it := range f.items {
		r := it.rect
		setFillColor(pdf, it.fill)
		setDrawColor(pdf, it.stroke)
		pdf.SetLineWidth(1)
		pdf.Rect(r.X, r.Y, r.W, r.H, "FD")

		style := ""
		if it.font.Bold() {
			style += "B"
		}
		if it.font.Italic() {
			style += "I"
		}
		size := float64(it.font.Size)
		if size <= 0 {
			size = 10
		}
		pdf.SetFont("Helvetica", style, size)
		setTextColor(pdf, it.text)
		label := tr(it.label)
		tw := pdf.GetStringWidth(label)
		c := r.Center()
		pdf.Text(c.X-tw/2, c.Y+size/3, label)

		if it.selected {
			setFillColor(pdf, selectStroke)
			for _, h := range it.handles {
				pdf.Rect(h.X, h.Y, h.W, h.H, "F")
			}
		}
	}
	return pdf
}

func setDrawColor(pdf *gofpdf.Fpdf, c color.RGBA) {
	pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
}

func setFillColor(pdf *gofpdf.Fpdf, c color.RGBA) {
	pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
}

func setTextColor(pdf *gofpdf.Fpdf, c color.RGBA) {
	pdf.SetTextColor(int(c.R), int(c.G), int(c.B))
}
