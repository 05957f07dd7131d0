/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"bytes"
	"fmt"
	"image/color"
	"os"

	"formdesigner/internal/design"
)

// SVG writes the wireframe as a standalone SVG document.
// The viewBox matches form pixels so the file scales cleanly.
func SVG(m *design.Model, outPath string, opt Options) error {
	if err := ensureDir(outPath); err != nil {
		return err
	}
	data, err := SVGBytes(m, opt)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}

// SVGBytes renders the wireframe document in memory.
func SVGBytes(m *design.Model, opt Options) ([]byte, error) {
	f := layout(m, opt)

	var buf bytes.Buffer
	var werr error
	wf := func(format string, args ...any) {
		if werr != nil {
			return
		}
		_, werr = fmt.Fprintf(&buf, format, args...)
	}

	wf("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	wf("<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" width=\"%g\" height=\"%g\" viewBox=\"0 0 %g %g\">\n", f.w, f.fullH, f.w, f.fullH)
	wf("  <title>%s</title>\n", escText(f.title))
	wf("  <rect x=\"0\" y=\"0\" width=\"%g\" height=\"%g\" fill=\"%s\" stroke=\"%s\"/>\n", f.w, titleBarHeight, svgColor(titleFill), svgColor(widgetStroke))
	wf("  <text x=\"6\" y=\"%g\" font-family=\"sans-serif\" font-size=\"10\" font-weight=\"bold\">%s</text>\n", titleBarHeight-8, escText(f.title))
	wf("  <rect x=\"0\" y=\"%g\" width=\"%g\" height=\"%g\" fill=\"%s\"/>\n", f.clientY0, f.w, f.h, svgColor(f.bg))

	if len(f.grid) > 0 {
		wf("  <g stroke=\"%s\" stroke-width=\"0.5\">\n", svgColor(gridColor))
		for _, gl := range f.grid {
			wf("    <line x1=\"%g\" y1=\"%g\" x2=\"%g\" y2=\"%g\"/>\n", gl.From.X, gl.From.Y+f.clientY0, gl.To.X, gl.To.Y+f.clientY0)
		}
		wf("  </g>\n")
	}

	for _, it := range f.items {
		r := it.rect
		wf("  <rect x=\"%g\" y=\"%g\" width=\"%g\" height=\"%g\" fill=\"%s\" stroke=\"%s\"/>\n", r.X, r.Y, r.W, r.H, svgColor(it.fill), svgColor(it.stroke))
		c := r.Center()
		weight, style := "normal", "normal"
		if it.font.Bold() {
			weight = "bold"
		}
		if it.font.Italic() {
			style = "italic"
		}
		wf("  <text x=\"%g\" y=\"%g\" text-anchor=\"middle\" dominant-baseline=\"middle\" font-family=\"%s\" font-size=\"%d\" font-weight=\"%s\" font-style=\"%s\" fill=\"%s\">%s</text>\n",
			c.X, c.Y, escAttr(it.font.Family), it.font.Size, weight, style, svgColor(it.text), escText(it.label))
		for _, h := range it.handles {
			wf("  <rect x=\"%g\" y=\"%g\" width=\"%g\" height=\"%g\" fill=\"%s\"/>\n", h.X, h.Y, h.W, h.H, svgColor(selectStroke))
		}
	}

	wf("</svg>\n")
	if werr != nil {
		return nil, fmt.Errorf("build svg: %w", werr)
	}
	return buf.Bytes(), nil
}

func svgColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func escAttr(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch ch {
		case '"':
			out = append(out, "&quot;"...)
		case '&':
			out = append(out, "&amp;"...)
		case '<':
			out = append(out, "&lt;"...)
		case '\n':
			out = append(out, ' ')
		case '\r':
			// skip
		default:
			out = append(out, ch)
		}
	}
	return string(out)
}

func escText(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch ch {
		case '&':
			out = append(out, "&amp;"...)
		case '<':
			out = append(out, "&lt;"...)
		case '>':
			out = append(out, "&gt;"...)
		default:
			out = append(out, ch)
		}
	}
	return string(out)
}
