/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package codegen renders a design model as a Python/Tkinter program that
// rebuilds the same window with absolute placement.
//
// Generation is one-way: the output is never parsed back into a model, so
// edits made to generated text are replaced on the next regeneration.
package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"formdesigner/internal/catalog"
	"formdesigner/internal/design"
	"formdesigner/internal/props"
)

// Options control the window scaffold around the widgets.
type Options struct {
	Title      string
	Width      int
	Height     int
	Background string
}

// DefaultOptions matches the stock 800x600 form.
func DefaultOptions() Options {
	return Options{
		Title:      "Windows Forms Style Application",
		Width:      800,
		Height:     600,
		Background: "#F0F0F0",
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Title == "" {
		o.Title = d.Title
	}
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Height <= 0 {
		o.Height = d.Height
	}
	if o.Background == "" {
		o.Background = d.Background
	}
	return o
}

// suppressed properties are styling the constructor line leaves out.
var suppressed = map[string]bool{
	"background": true,
	"foreground": true,
	"font":       true,
	"relief":     true,
}

// Generate renders m with DefaultOptions.
func Generate(m *design.Model) string { return GenerateWith(m, DefaultOptions()) }

// GenerateWith renders m. The output depends only on the model content and
// its creation order, so equal models produce identical text.
func GenerateWith(m *design.Model, opts Options) string {
	opts = opts.withDefaults()
	var g gen
	g.preamble(opts)
	widgets := m.Widgets()
	for _, w := range widgets {
		g.widget(w)
	}
	g.events(widgets)
	g.trailer()
	return strings.Join(g.lines, "\n") + "\n"
}

type gen struct {
	lines []string
}

func (g *gen) add(format string, args ...any) {
	if len(args) == 0 {
		g.lines = append(g.lines, format)
		return
	}
	g.lines = append(g.lines, fmt.Sprintf(format, args...))
}

func (g *gen) preamble(o Options) {
	g.add("import tkinter as tk")
	g.add("from tkinter import ttk, messagebox")
	g.add("")
	g.add("class Application(tk.Tk):")
	g.add("    def __init__(self):")
	g.add("        super().__init__()")
	g.add("        self.title(%s)", quote(o.Title))
	g.add("        self.geometry(\"%dx%d\")", o.Width, o.Height)
	g.add("")
	g.add("        # Configure the window")
	g.add("        self.configure(background=%s)", quote(o.Background))
	g.add("")
	g.add("        # Create widgets")
	g.add("        self.create_widgets()")
	g.add("        self.create_events()")
	g.add("")
	g.add("    def create_widgets(self):")
}

func (g *gen) widget(w *design.Widget) {
	name := VarName(w)
	args := []string{"self"}
	for _, p := range w.Props.Names() {
		if suppressed[p] {
			continue
		}
		v, _ := w.Props.Get(p)
		args = append(args, p+"="+Literal(v))
	}
	x, y, wd, ht := w.Geometry.Ints()
	g.add("        self.%s = %s(%s)", name, catalog.QualifiedConstruct(w.Type), strings.Join(args, ", "))
	g.add("        self.%s.place(x=%d, y=%d, width=%d, height=%d)", name, x, y, wd, ht)

	switch {
	case catalog.IsClickable(w.Type):
		g.add("        self.%s.configure(command=self.%s_click)", name, name)
	case catalog.IsMenu(w.Type):
		g.add("        self.config(menu=self.%s)", name)
		g.add("        # Example menu items")
		g.add("        file_menu = tk.Menu(self.%s, tearoff=0)", name)
		g.add("        file_menu.add_command(label=\"New\", command=self.menu_new_click)")
		g.add("        file_menu.add_command(label=\"Open\", command=self.menu_open_click)")
		g.add("        file_menu.add_separator()")
		g.add("        file_menu.add_command(label=\"Exit\", command=self.destroy)")
		g.add("        self.%s.add_cascade(label=\"File\", menu=file_menu)", name)
	}
	g.add("")
}

func (g *gen) events(widgets []*design.Widget) {
	g.add("    def create_events(self):")
	g.add("        pass")
	g.add("")
	for _, w := range widgets {
		if !catalog.IsClickable(w.Type) {
			continue
		}
		name := VarName(w)
		g.add("    # Event handler for %s", name)
		g.add("    def %s_click(self):", name)
		g.add("        messagebox.showinfo(\"Button Click\", \"%s was clicked\")", name)
		g.add("")
	}
}

func (g *gen) trailer() {
	g.add("    def menu_new_click(self):")
	g.add("        messagebox.showinfo(\"Menu\", \"New menu item clicked\")")
	g.add("")
	g.add("    def menu_open_click(self):")
	g.add("        messagebox.showinfo(\"Menu\", \"Open menu item clicked\")")
	g.add("")
	g.add("if __name__ == \"__main__\":")
	g.add("    app = Application()")
	g.add("    app.mainloop()")
}

// VarName is the attribute name a widget gets in generated code.
func VarName(w *design.Widget) string { return strings.ToLower(w.Name) }

// Literal renders a property value as a Python expression. Strings are
// quoted unless they are all digits or start with "(", which are emitted
// as written.
func Literal(v props.Value) string {
	switch v.Kind() {
	case props.KindNumber:
		return strconv.FormatFloat(v.Num(), 'f', -1, 64)
	case props.KindBool:
		if v.BoolVal() {
			return "True"
		}
		return "False"
	}
	s := v.Str()
	if v.IsDigits() || strings.HasPrefix(s, "(") {
		return s
	}
	return quote(s)
}

var escaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

func quote(s string) string { return `"` + escaper.Replace(s) + `"` }
