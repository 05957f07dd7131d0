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
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"formdesigner/internal/propedit"
	"formdesigner/internal/props"
)

// showPropertyDialog presents a property editor session. OK confirms the
// session, Cancel or closing the window discards it; done runs either way.
func showPropertyDialog(w fyne.Window, s *propedit.Session, done func()) {
	rows := container.NewVBox()
	desc := widget.NewLabel("")
	desc.Wrapping = fyne.TextWrapWord

	var rebuild func()
	rowWidget := func(r propedit.Row) fyne.CanvasObject {
		name := widget.NewButton(r.Name, func() { desc.SetText(s.Description(r.Name)) })
		name.Alignment = widget.ButtonAlignLeading
		return container.NewGridWithColumns(2, name, valueEditor(w, s, r, rebuild))
	}
	rebuild = func() {
		rows.RemoveAll()
		if s.View() == propedit.Alphabetical {
			for _, r := range s.Rows() {
				rows.Add(rowWidget(r))
			}
		} else {
			for _, sec := range s.Sections() {
				name := sec.Name
				marker := "▸ "
				if sec.Expanded {
					marker = "▾ "
				}
				hdr := widget.NewButton(marker+name, func() {
					s.ToggleSection(name)
					rebuild()
				})
				hdr.Alignment = widget.ButtonAlignLeading
				hdr.Importance = widget.LowImportance
				rows.Add(hdr)
				if !sec.Expanded {
					continue
				}
				for _, r := range sec.Rows {
					rows.Add(rowWidget(r))
				}
			}
		}
		rows.Refresh()
	}

	view := widget.NewRadioGroup([]string{propedit.Categorized.String(), propedit.Alphabetical.String()}, func(v string) {
		if v == propedit.Alphabetical.String() {
			s.SetView(propedit.Alphabetical)
		} else {
			s.SetView(propedit.Categorized)
		}
		rebuild()
	})
	view.Horizontal = true
	view.SetSelected(s.View().String())
	search := widget.NewEntry()
	search.SetPlaceHolder("Search properties")
	search.OnChanged = func(q string) {
		s.SetSearch(q)
		rebuild()
	}
	rebuild()

	scroll := container.NewVScroll(rows)
	scroll.SetMinSize(fyne.NewSize(420, 380))
	content := container.NewBorder(container.NewVBox(view, search), desc, nil, nil, scroll)
	d := dialog.NewCustomConfirm(s.Title(), "OK", "Cancel", content, func(ok bool) {
		if ok {
			s.Confirm()
		} else {
			s.Cancel()
		}
		done()
	}, w)
	d.Resize(fyne.NewSize(480, 560))
	d.Show()
}

// valueEditor returns the inline editor for one row. Text is committed on
// every change; colors, fonts and booleans go through their sub-editors and
// rebuild the list afterwards.
func valueEditor(w fyne.Window, s *propedit.Session, r propedit.Row, rebuild func()) fyne.CanvasObject {
	switch {
	case r.Name == "background" || r.Name == "foreground":
		return widget.NewButton(r.Value, func() {
			ed, ok := s.Begin(r.Name)
			if !ok {
				return
			}
			ce := ed.(*propedit.ColorEditor)
			picker := dialog.NewColorPicker("Choose "+r.Name, r.Value, func(c color.Color) {
				ce.Accept(c)
				rebuild()
			}, w)
			picker.Advanced = true
			picker.SetColor(ce.Initial)
			picker.Show()
		})
	case r.Name == "font":
		return widget.NewButton(r.Value, func() {
			ed, ok := s.Begin(r.Name)
			if !ok {
				return
			}
			showFontDialog(w, ed.(*propedit.FontEditor), rebuild)
		})
	case r.Kind == props.KindBool:
		chk := widget.NewCheck("", nil)
		chk.Checked = r.Value == "true"
		chk.OnChanged = func(bool) { s.Begin(r.Name) }
		return chk
	}
	ed, ok := s.Begin(r.Name)
	if !ok {
		return widget.NewLabel(r.Value)
	}
	te := ed.(*propedit.TextEditor)
	if len(te.Options) > 0 {
		sel := widget.NewSelect(te.Options, func(v string) {
			te.SetText(v)
			te.Commit()
		})
		sel.Selected = r.Value
		return sel
	}
	entry := widget.NewEntry()
	entry.SetText(r.Value)
	entry.OnChanged = func(v string) {
		te.SetText(v)
		te.Commit()
	}
	return entry
}

func showFontDialog(w fyne.Window, fe *propedit.FontEditor, rebuild func()) {
	family := widget.NewSelect(fe.Families, fe.SetFamily)
	family.Selected = fe.Font.Family
	sizes := make([]string, len(fe.Sizes))
	for i, n := range fe.Sizes {
		sizes[i] = strconv.Itoa(n)
	}
	size := widget.NewSelect(sizes, func(v string) {
		if n, err := strconv.Atoi(v); err == nil {
			fe.SetSize(n)
		}
	})
	size.Selected = strconv.Itoa(fe.Font.Size)
	style := widget.NewSelect(fe.Styles, fe.SetStyle)
	style.Selected = fe.Font.Style
	form := widget.NewForm(
		widget.NewFormItem("Family", family),
		widget.NewFormItem("Size", size),
		widget.NewFormItem("Style", style),
	)
	dialog.NewCustomConfirm("Font", "OK", "Cancel", form, func(ok bool) {
		if !ok {
			fe.Cancel()
			return
		}
		fe.Confirm()
		rebuild()
	}, w).Show()
}
