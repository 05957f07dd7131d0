/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package propedit

import (
	"image/color"
	"strconv"
	"strings"

	"formdesigner/internal/props"
)

// Editor is the value editor opened for one property. The concrete type
// tells the dialog what to show: *ColorEditor, *FontEditor, *ToggleEditor
// or *TextEditor.
type Editor interface {
	Property() string
}

// Begin opens the editor for name. Colors and fonts get a sub-dialog,
// booleans are flipped immediately and everything else is edited as text.
// It returns false when the session is closed or the property is unknown.
func (s *Session) Begin(name string) (Editor, bool) {
	if s.closed {
		return nil, false
	}
	v, ok := s.bag.Get(name)
	if !ok {
		return nil, false
	}
	switch {
	case name == "background" || name == "foreground":
		c, _ := props.ParseColor(v.String())
		return &ColorEditor{s: s, name: name, Initial: c}, true
	case name == "font":
		return &FontEditor{
			s: s, Font: props.ParseFont(v.String()),
			Families: s.families, Sizes: props.FontSizes, Styles: props.FontStyles,
		}, true
	case v.Kind() == props.KindBool:
		nv := props.Bool(!v.BoolVal())
		s.bag.Set(name, nv)
		return &ToggleEditor{name: name, Value: nv.BoolVal()}, true
	default:
		return &TextEditor{s: s, name: name, Text: v.String(), Options: props.Options(name), prior: v}, true
	}
}

// ColorEditor backs the color chooser sub-dialog.
type ColorEditor struct {
	s       *Session
	name    string
	Initial color.RGBA
}

func (e *ColorEditor) Property() string { return e.name }

// Accept stores the chosen color as hex text.
func (e *ColorEditor) Accept(c color.Color) {
	e.s.bag.Set(e.name, props.String(props.FormatColor(c)))
}

// AcceptHex stores a typed hex color; invalid text is ignored.
func (e *ColorEditor) AcceptHex(hex string) bool {
	c, ok := props.ParseColor(hex)
	if !ok {
		return false
	}
	e.Accept(c)
	return true
}

// Cancel closes the sub-dialog without touching the value.
func (e *ColorEditor) Cancel() {}

// FontEditor backs the font sub-dialog.
type FontEditor struct {
	s        *Session
	Font     props.Font
	Families []string
	Sizes    []int
	Styles   []string
}

func (e *FontEditor) Property() string { return "font" }

func (e *FontEditor) SetFamily(f string) { e.Font.Family = f }
func (e *FontEditor) SetSize(n int)      { e.Font.Size = n }
func (e *FontEditor) SetStyle(st string) { e.Font.Style = st }

// Confirm writes "family, size, style" back to the font property.
func (e *FontEditor) Confirm() {
	e.s.bag.Set("font", props.String(e.Font.String()))
}

// Cancel leaves the font property unchanged.
func (e *FontEditor) Cancel() {}

// ToggleEditor reports a boolean already flipped by Begin.
type ToggleEditor struct {
	name  string
	Value bool
}

func (e *ToggleEditor) Property() string { return e.name }

// TextEditor is the inline entry. Options is non-nil for enumerated
// properties such as relief or anchor.
type TextEditor struct {
	s       *Session
	name    string
	prior   props.Value
	Text    string
	Options []string
}

func (e *TextEditor) Property() string { return e.name }

func (e *TextEditor) SetText(t string) { e.Text = t }

// Commit stores the text, on Enter or focus loss. Numbers stay numbers when
// the new text still parses as one; otherwise the value becomes a string,
// the empty string included.
func (e *TextEditor) Commit() {
	v := props.String(e.Text)
	if e.prior.Kind() == props.KindNumber {
		if n, err := strconv.ParseFloat(strings.TrimSpace(e.Text), 64); err == nil {
			v = props.Number(n)
		}
	}
	e.s.bag.Set(e.name, v)
}

// Cancel abandons the inline edit.
func (e *TextEditor) Cancel() {}
