/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package propedit is the modal property editor for one widget. A Session
// works on a private copy of the property bag; nothing reaches the widget
// until the whole dialog is confirmed.
package propedit

import (
	"fmt"
	"strings"

	"formdesigner/internal/catalog"
	"formdesigner/internal/props"
)

// View selects how rows are grouped.
type View int

const (
	Categorized View = iota
	Alphabetical
)

func (v View) String() string {
	if v == Alphabetical {
		return "Alphabetical"
	}
	return "Categorized"
}

// Row is one displayed property.
type Row struct {
	Name  string
	Value string
	Kind  props.Kind
}

// Section is a collapsible category in the categorized view.
type Section struct {
	Name     string
	Expanded bool
	Rows     []Row
}

// Session is one open editor dialog. It is used from the UI goroutine only.
type Session struct {
	widgetType catalog.Type
	bag        *props.Bag
	onConfirm  func(*props.Bag)
	families   []string

	view      View
	search    string
	collapsed map[string]bool
	closed    bool
}

// Open starts an editing session over a copy of b. onConfirm receives the
// edited bag once, when Confirm is called. families feeds the font dialog;
// when empty only the toolkit default is offered.
func Open(t catalog.Type, b *props.Bag, families []string, onConfirm func(*props.Bag)) *Session {
	if len(families) == 0 {
		families = []string{props.DefaultFontFamily}
	}
	return &Session{
		widgetType: t,
		bag:        b.Clone(),
		onConfirm:  onConfirm,
		families:   append([]string(nil), families...),
		collapsed:  map[string]bool{},
	}
}

func (s *Session) Title() string { return fmt.Sprintf("Properties - %s", s.widgetType) }

func (s *Session) View() View     { return s.view }
func (s *Session) SetView(v View) { s.view = v }

func (s *Session) Search() string { return s.search }

// SetSearch sets the live filter. Matching is case-insensitive on the name or
// the displayed value and never changes the bag.
func (s *Session) SetSearch(q string) { s.search = q }

// Closed reports whether Confirm or Cancel has been called.
func (s *Session) Closed() bool { return s.closed }

// Value returns the current edited value of a property.
func (s *Session) Value(name string) (props.Value, bool) { return s.bag.Get(name) }

// Bag returns a copy of the edited bag.
func (s *Session) Bag() *props.Bag { return s.bag.Clone() }

func (s *Session) matches(name string) bool {
	q := strings.ToLower(s.search)
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(name), q) {
		return true
	}
	v, _ := s.bag.Get(name)
	return strings.Contains(strings.ToLower(v.String()), q)
}

func (s *Session) row(name string) Row {
	v, _ := s.bag.Get(name)
	return Row{Name: name, Value: v.String(), Kind: v.Kind()}
}

// Sections returns the categorized view. Categories without a matching row
// are hidden.
func (s *Session) Sections() []Section {
	var out []Section
	for _, c := range props.Categorize(s.bag) {
		var rows []Row
		for _, n := range c.Names {
			if s.matches(n) {
				rows = append(rows, s.row(n))
			}
		}
		if len(rows) == 0 {
			continue
		}
		out = append(out, Section{Name: c.Name, Expanded: !s.collapsed[c.Name], Rows: rows})
	}
	return out
}

// Rows returns the flat alphabetical view.
func (s *Session) Rows() []Row {
	var out []Row
	for _, n := range props.OrderedNames(s.bag) {
		if s.matches(n) {
			out = append(out, s.row(n))
		}
	}
	return out
}

// ToggleSection expands or collapses a category and returns the new state.
func (s *Session) ToggleSection(name string) (expanded bool) {
	s.collapsed[name] = !s.collapsed[name]
	return !s.collapsed[name]
}

// Description is the help text shown for the selected property.
func (s *Session) Description(name string) string {
	v, _ := s.bag.Get(name)
	return fmt.Sprintf("Property: %s\nType: %s", name, v.Kind())
}

// Confirm hands the edited bag to the callback and closes the session.
// Later calls do nothing.
func (s *Session) Confirm() {
	if s.closed {
		return
	}
	s.closed = true
	if s.onConfirm != nil {
		s.onConfirm(s.bag.Clone())
	}
}

// Cancel discards every edit made in the session.
func (s *Session) Cancel() { s.closed = true }
