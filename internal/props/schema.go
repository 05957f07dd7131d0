/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package props holds widget property values, the ordered property bag and
// the static schema: per-type defaults, display categories and the
// enumerated choices the editor offers.
package props

import (
	"sort"

	"formdesigner/internal/catalog"
)

type entry struct {
	name  string
	value Value
}

var common = []entry{
	{"background", String("#FFFFFF")},
	{"foreground", String("#000000")},
	{"font", String("TkDefaultFont")},
	{"relief", String("flat")},
}

var specific = map[string][]entry{
	"Button": {
		{"text", String("Button")},
		{"command", String("on_button_click")},
		{"width", Number(10)},
		{"height", Number(1)},
	},
	"Label": {
		{"text", String("Label")},
		{"width", Number(10)},
		{"height", Number(1)},
		{"anchor", String("center")},
	},
	"Entry": {
		{"width", Number(20)},
		{"show", String("")},
		{"state", String("normal")},
	},
	"Checkbutton": {
		{"text", String("Checkbutton")},
		{"variable", String("var")},
		{"onvalue", Bool(true)},
		{"offvalue", Bool(false)},
	},
	"Radiobutton": {
		{"text", String("Radiobutton")},
		{"variable", String("var")},
		{"value", Number(1)},
	},
	"Frame": {
		{"width", Number(200)},
		{"height", Number(150)},
		{"borderwidth", Number(1)},
	},
	"LabelFrame": {
		{"text", String("LabelFrame")},
		{"width", Number(200)},
		{"height", Number(150)},
	},
	"Listbox": {
		{"height", Number(5)},
		{"width", Number(20)},
		{"selectmode", String("single")},
	},
	"Text": {
		{"width", Number(30)},
		{"height", Number(5)},
		{"wrap", String("word")},
	},
	"Canvas": {
		{"width", Number(200)},
		{"height", Number(150)},
		{"borderwidth", Number(1)},
	},
	"Scrollbar": {
		{"orient", String("vertical")},
	},
	"Scale": {
		{"orient", String("horizontal")},
		{"from_", Number(0)},
		{"to", Number(100)},
		{"resolution", Number(1)},
	},
	"Spinbox": {
		{"from_", Number(0)},
		{"to", Number(100)},
		{"increment", Number(1)},
		{"width", Number(10)},
	},
	"Combobox": {
		{"values", String(`("Item 1", "Item 2", "Item 3")`)},
		{"width", Number(15)},
		{"state", String("readonly")},
	},
	"Treeview": {
		{"columns", String("column1,column2")},
		{"show", String("headings")},
		{"height", Number(5)},
	},
	"Progressbar": {
		{"orient", String("horizontal")},
		{"length", Number(100)},
		{"mode", String("determinate")},
		{"value", Number(50)},
	},
	"Notebook": {
		{"width", Number(300)},
		{"height", Number(200)},
	},
	"PanedWindow": {
		{"orient", String("horizontal")},
		{"width", Number(300)},
		{"height", Number(200)},
	},
}

// Defaults returns a fresh bag for t: the common properties followed by the
// type-specific ones. Palette types without their own table resolve through
// the toolkit construct they generate (ComboBox uses Combobox). Every call
// allocates a new bag.
func Defaults(t catalog.Type) *Bag {
	b := NewBag()
	for _, e := range common {
		b.Set(e.name, e.value)
	}
	extra, ok := specific[string(t)]
	if !ok {
		extra = specific[catalog.BaseConstruct(t)]
	}
	for _, e := range extra {
		b.Set(e.name, e.value)
	}
	return b
}

// Category is one section of the categorized property view.
type Category struct {
	Name  string
	Names []string
}

const (
	Appearance = "Appearance"
	Behavior   = "Behavior"
	Layout     = "Layout"
	Text       = "Text"
	Data       = "Data"
	Misc       = "Misc"
)

var categoryMembers = []struct {
	name  string
	props []string
}{
	{Appearance, []string{"background", "foreground", "font", "relief", "cursor"}},
	{Behavior, []string{"command", "takefocus", "state"}},
	{Layout, []string{"width", "height", "padx", "pady", "anchor"}},
	{Text, []string{"text", "justify", "wraplength"}},
	{Data, []string{"variable", "value", "values"}},
}

// CategoryOf returns the display category a property name belongs to.
func CategoryOf(name string) string {
	for _, c := range categoryMembers {
		for _, p := range c.props {
			if p == name {
				return c.name
			}
		}
	}
	return Misc
}

// Categorize groups the names of b into display categories in fixed order.
// Empty categories are omitted and names are sorted within each.
func Categorize(b *Bag) []Category {
	groups := map[string][]string{}
	for _, n := range b.Names() {
		c := CategoryOf(n)
		groups[c] = append(groups[c], n)
	}
	var out []Category
	for _, c := range []string{Appearance, Behavior, Layout, Text, Data, Misc} {
		names := groups[c]
		if len(names) == 0 {
			continue
		}
		sort.Strings(names)
		out = append(out, Category{Name: c, Names: names})
	}
	return out
}

var leading = []string{"text", "background", "foreground", "font", "width", "height"}

// OrderedNames lists the common names first, when present, then the rest
// alphabetically.
func OrderedNames(b *Bag) []string {
	seen := map[string]bool{}
	var out []string
	for _, n := range leading {
		if b.Has(n) {
			out = append(out, n)
			seen[n] = true
		}
	}
	rest := make([]string, 0, b.Len())
	for _, n := range b.Names() {
		if !seen[n] {
			rest = append(rest, n)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

var options = map[string][]string{
	"relief":  {"flat", "raised", "sunken", "solid", "ridge", "groove"},
	"anchor":  {"nw", "n", "ne", "w", "center", "e", "sw", "s", "se"},
	"justify": {"left", "center", "right"},
	"orient":  {"horizontal", "vertical"},
	"state":   {"normal", "disabled", "readonly"},
}

// Options returns the enumerated choices for name, or nil for free text.
func Options(name string) []string {
	o := options[name]
	if o == nil {
		return nil
	}
	return append([]string(nil), o...)
}
