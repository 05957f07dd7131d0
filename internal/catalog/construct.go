/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package catalog

import "strings"

var constructs = map[Type]string{
	"Button":           "Button",
	"Label":            "Label",
	"LinkLabel":        "Label",
	"Entry":            "Entry",
	"TextBox":          "Text",
	"Checkbutton":      "Checkbutton",
	"Radiobutton":      "Radiobutton",
	"GroupBox":         "LabelFrame",
	"PictureBox":       "Label",
	"Frame":            "Frame",
	"Panel":            "Frame",
	"TabControl":       "ttk.Notebook",
	"SplitContainer":   "PanedWindow",
	"MenuStrip":        "Menu",
	"ToolStrip":        "Frame",
	"StatusStrip":      "Frame",
	"ContextMenuStrip": "Menu",
	"DataGridView":     "ttk.Treeview",
	"Listbox":          "Listbox",
	"ListView":         "ttk.Treeview",
	"TreeView":         "ttk.Treeview",
	"ComboBox":         "ttk.Combobox",
}

// themed constructs live in the ttk module even without an explicit prefix.
var themed = map[string]bool{
	"Combobox":    true,
	"Progressbar": true,
	"Treeview":    true,
	"Notebook":    true,
	"Separator":   true,
}

// Construct returns the toolkit class t maps to, possibly carrying a "ttk."
// prefix. Unmapped types pass through verbatim.
func Construct(t Type) string {
	if c, ok := constructs[t]; ok {
		return c
	}
	return string(t)
}

// BaseConstruct is Construct without any module prefix.
func BaseConstruct(t Type) string {
	return strings.TrimPrefix(Construct(t), "ttk.")
}

// QualifiedConstruct returns the construct with its module, "tk." or "ttk.".
func QualifiedConstruct(t Type) string {
	c := Construct(t)
	if strings.HasPrefix(c, "ttk.") {
		return c
	}
	if themed[c] {
		return "ttk." + c
	}
	return "tk." + c
}

// IsClickable reports whether generated code binds a click handler for t.
func IsClickable(t Type) bool { return t == "Button" }

// IsMenu reports whether t is installed as the window menu bar.
func IsMenu(t Type) bool { return t == "MenuStrip" }
