/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package catalog is the fixed set of widget types the designer offers:
// palette grouping, default size classes and the toolkit construct each type
// maps to in generated code.
package catalog

import (
	"sort"
	"strings"
)

// Type names a widget kind, e.g. "Button" or "DataGridView".
type Type string

// Category is one palette section.
type Category struct {
	Name  string
	Types []Type
}

var palette = []Category{
	{Name: "Common Controls", Types: []Type{"Button", "Label", "LinkLabel", "Entry", "TextBox", "Checkbutton", "Radiobutton", "GroupBox", "PictureBox"}},
	{Name: "Containers", Types: []Type{"Frame", "Panel", "GroupBox", "TabControl", "SplitContainer"}},
	{Name: "Menus & Toolbars", Types: []Type{"MenuStrip", "ToolStrip", "StatusStrip", "ContextMenuStrip"}},
	{Name: "Data", Types: []Type{"DataGridView", "Listbox", "ListView", "TreeView", "ComboBox"}},
	{Name: "Components", Types: []Type{"Timer", "FileSystemWatcher", "EventLog", "DirectoryEntry"}},
	{Name: "Printing", Types: []Type{"PrintDocument", "PrintDialog", "PageSetupDialog"}},
	{Name: "Dialogs", Types: []Type{"OpenFileDialog", "SaveFileDialog", "ColorDialog", "FontDialog"}},
	{Name: "Tkinter Widgets", Types: []Type{"Frame", "LabelFrame", "Text", "Canvas", "Scale", "Scrollbar", "Spinbox", "PanedWindow", "Progressbar"}},
}

// Palette returns the palette sections in display order. The result is a copy.
func Palette() []Category {
	out := make([]Category, len(palette))
	for i, c := range palette {
		out[i] = Category{Name: c.Name, Types: append([]Type(nil), c.Types...)}
	}
	return out
}

// Filter keeps the types whose name contains query, case-insensitively.
// Sections left empty are dropped. An empty query returns the full palette.
func Filter(query string) []Category {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Palette()
	}
	var out []Category
	for _, c := range palette {
		var hits []Type
		for _, t := range c.Types {
			if strings.Contains(strings.ToLower(string(t)), q) {
				hits = append(hits, t)
			}
		}
		if len(hits) > 0 {
			out = append(out, Category{Name: c.Name, Types: hits})
		}
	}
	return out
}

// Known reports whether t appears anywhere in the palette.
func Known(t Type) bool {
	for _, c := range palette {
		for _, pt := range c.Types {
			if pt == t {
				return true
			}
		}
	}
	return false
}

// Types lists every distinct palette type, sorted.
func Types() []Type {
	seen := map[Type]bool{}
	var out []Type
	for _, c := range palette {
		for _, t := range c.Types {
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
