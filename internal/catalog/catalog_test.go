/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPalette_ReturnsCopy(t *testing.T) {
	p := Palette()
	p[0].Types[0] = "Mutated"
	if Palette()[0].Types[0] != "Button" {
		t.Fatalf("palette storage was shared with caller")
	}
}

func TestFilter_DropsEmptyCategories(t *testing.T) {
	got := Filter("strip")
	want := []Category{
		{Name: "Menus & Toolbars", Types: []Type{"MenuStrip", "ToolStrip", "StatusStrip", "ContextMenuStrip"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Filter(strip) mismatch (-want +got):\n%s", diff)
	}
}

func TestFilter_CaseInsensitive(t *testing.T) {
	got := Filter("BUTTON")
	var names []Type
	for _, c := range got {
		names = append(names, c.Types...)
	}
	want := []Type{"Button", "Checkbutton", "Radiobutton"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("Filter(BUTTON) mismatch (-want +got):\n%s", diff)
	}
	if len(Filter("nothing-matches")) != 0 {
		t.Fatalf("expected empty result")
	}
	if len(Filter("  ")) != len(Palette()) {
		t.Fatalf("blank query should return the full palette")
	}
}

func TestSizeClasses(t *testing.T) {
	cases := []struct {
		typ  Type
		w, h float64
	}{
		{"Button", 100, 30},
		{"Frame", 200, 150},
		{"TextBox", 150, 100},
		{"MenuStrip", 200, 25},
		{"SomethingElse", 100, 30},
	}
	for _, c := range cases {
		w, h := DefaultSize(c.typ)
		if w != c.w || h != c.h {
			t.Errorf("DefaultSize(%s) = %vx%v, want %vx%v", c.typ, w, h, c.w, c.h)
		}
	}
}

func TestConstructs(t *testing.T) {
	cases := map[Type]string{
		"Button":       "tk.Button",
		"TextBox":      "tk.Text",
		"GroupBox":     "tk.LabelFrame",
		"DataGridView": "ttk.Treeview",
		"ComboBox":     "ttk.Combobox",
		"Progressbar":  "ttk.Progressbar",
		"Widget9000":   "tk.Widget9000",
	}
	for typ, want := range cases {
		if got := QualifiedConstruct(typ); got != want {
			t.Errorf("QualifiedConstruct(%s) = %q, want %q", typ, got, want)
		}
	}
	if BaseConstruct("ComboBox") != "Combobox" {
		t.Fatalf("BaseConstruct should drop the module prefix")
	}
	if Construct("Unknown") != "Unknown" {
		t.Fatalf("unknown types should pass through verbatim")
	}
}

func TestKnownAndTypes(t *testing.T) {
	if !Known("Spinbox") || Known("Spaceship") {
		t.Fatalf("Known mismatch")
	}
	ts := Types()
	for i := 1; i < len(ts); i++ {
		if ts[i-1] >= ts[i] {
			t.Fatalf("Types not sorted/unique at %d: %v %v", i, ts[i-1], ts[i])
		}
	}
}
