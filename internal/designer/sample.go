/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package designer

import (
	"sort"

	"formdesigner/internal/catalog"
	"formdesigner/internal/design"
	"formdesigner/internal/propedit"
	"formdesigner/internal/surface"
)

// Configure edits properties of widget id through a property editor session,
// the same path the dialog takes, and confirms it. Names the widget does not
// have are skipped; the result reports how many were applied.
func Configure(c *surface.Controller, id design.ID, values map[string]string) int {
	s, ok := c.OpenPropertyEditor(id)
	if !ok {
		return 0
	}
	names := make([]string, 0, len(values))
	for n := range values {
		names = append(names, n)
	}
	sort.Strings(names)
	applied := 0
	for _, n := range names {
		ed, ok := s.Begin(n)
		if !ok {
			continue
		}
		switch e := ed.(type) {
		case *propedit.TextEditor:
			e.SetText(values[n])
			e.Commit()
		case *propedit.ColorEditor:
			if !e.AcceptHex(values[n]) {
				continue
			}
		default:
			continue
		}
		applied++
	}
	s.Confirm()
	return applied
}

// placement is one widget of the sample form.
type placement struct {
	t      catalog.Type
	x, y   float64
	values map[string]string
}

var sampleForm = []placement{
	{"Label", 16, 16, map[string]string{"text": "User name:", "width": "96", "height": "32"}},
	{"Entry", 128, 16, nil},
	{"Label", 16, 56, map[string]string{"text": "Password:", "width": "96", "height": "32"}},
	{"Entry", 128, 56, nil},
	{"Checkbutton", 16, 96, map[string]string{"text": "Remember me"}},
	{"Button", 128, 136, map[string]string{"text": "Sign in", "width": "96", "height": "32"}},
}

// BuildSample drops a small login form onto the surface through the regular
// controller operations and returns the created IDs in order.
func BuildSample(c *surface.Controller) []design.ID {
	ids := make([]design.ID, 0, len(sampleForm))
	for _, p := range sampleForm {
		id := c.CreateWidget(p.t, p.x, p.y)
		if len(p.values) > 0 {
			Configure(c, id, p.values)
		}
		ids = append(ids, id)
	}
	c.SelectNone()
	return ids
}
