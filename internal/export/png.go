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
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"formdesigner/internal/design"
	applog "formdesigner/internal/log"
)

// PNG rasterizes the wireframe and writes it to outPath.
// Labels use Options.Fonts when set and fall back to the fixed 7x13 face.
func PNG(m *design.Model, outPath string, opt Options) error {
	if err := ensureDir(outPath); err != nil {
		return err
	}
	img := Raster(m, opt)
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close png: %w", err)
	}
	return nil
}

// Raster draws the wireframe into a new RGBA image.
func Raster(m *design.Model, opt Options) *image.RGBA {
	f := layout(m, opt)
	scale := opt.Scale
	if scale <= 0 {
		scale = 1
	}
	px := func(v float64) int { return int(math.Round(v * scale)) }
	img := image.NewRGBA(image.Rect(0, 0, px(f.w), px(f.fullH)))

	// Title bar, then client area
	fillRect(img, 0, 0, px(f.w)-1, px(titleBarHeight)-1, titleFill)
	strokeRect(img, 0, 0, px(f.w)-1, px(titleBarHeight)-1, widgetStroke)
	fillRect(img, 0, px(f.clientY0), px(f.w)-1, px(f.fullH)-1, f.bg)
	drawLabel(img, basicfont.Face7x13, f.title, 6, px(titleBarHeight)/2, textColor, false)

	for _, gl := range f.grid {
		x0, y0 := px(gl.From.X), px(gl.From.Y+f.clientY0)
		x1, y1 := px(gl.To.X), px(gl.To.Y+f.clientY0)
		if x1 >= img.Bounds().Dx() {
			x1 = img.Bounds().Dx() - 1
		}
		if y1 >= img.Bounds().Dy() {
			y1 = img.Bounds().Dy() - 1
		}
		fillRect(img, x0, y0, x1, y1, gridColor)
	}

	for _, it := range f.items {
		r := it.rect
		x0, y0 := px(r.X), px(r.Y)
		x1, y1 := px(r.Right())-1, px(r.Bottom())-1
		fillRect(img, x0, y0, x1, y1, it.fill)
		strokeRect(img, x0, y0, x1, y1, it.stroke)

		face := labelFace(opt, it, scale)
		c := r.Center()
		drawLabel(img, face, it.label, px(c.X), px(c.Y), it.text, true)
		if closer, ok := face.(interface{ Close() error }); ok && face != basicfont.Face7x13 {
			_ = closer.Close()
		}
		for _, h := range it.handles {
			fillRect(img, px(h.X), px(h.Y), px(h.Right())-1, px(h.Bottom())-1, selectStroke)
		}
	}
	return img
}

func labelFace(opt Options, it item, scale float64) font.Face {
	if opt.Fonts == nil {
		return basicfont.Face7x13
	}
	face, err := opt.Fonts.Face(it.font, 72*scale)
	if err != nil {
		applog.WithComponent("export").Debug("label face fallback", "font", it.font.String(), "err", err)
		return basicfont.Face7x13
	}
	return face
}

// drawLabel draws s with its vertical middle at y; centered horizontally on x when center is set.
func drawLabel(img *image.RGBA, face font.Face, s string, x, y int, col color.RGBA, center bool) {
	if s == "" {
		return
	}
	d := &font.Drawer{Dst: img, Src: image.NewUniform(col), Face: face}
	m := face.Metrics()
	baseline := fixed.I(y) + (m.Ascent-m.Descent)/2
	start := fixed.I(x)
	if center {
		start -= d.MeasureString(s) / 2
	}
	d.Dot = fixed.Point26_6{X: start, Y: baseline}
	d.DrawString(s)
}

// strokeRect draws a 1px axis-aligned rectangle border inclusive of endpoints.
func strokeRect(img *image.RGBA, x0, y0, x1, y1 int, col color.RGBA) {
	// top and bottom
	for x := x0; x <= x1; x++ {
		img.SetRGBA(x, y0, col)
		img.SetRGBA(x, y1, col)
	}
	// left and right
	for y := y0; y <= y1; y++ {
		img.SetRGBA(x0, y, col)
		img.SetRGBA(x1, y, col)
	}
}

func fillRect(img *image.RGBA, x0, y0, x1, y1 int, col color.RGBA) {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	draw.Draw(img, image.Rect(x0, y0, x1+1, y1+1), image.NewUniform(col), image.Point{}, draw.Src)
}
