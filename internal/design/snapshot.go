/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package design

import (
	"encoding/json"
	"fmt"

	"formdesigner/internal/catalog"
	"formdesigner/internal/geom"
	"formdesigner/internal/props"
)

type widgetState struct {
	ID       ID           `json:"id"`
	Type     catalog.Type `json:"type"`
	Name     string       `json:"name"`
	Geometry geom.Rect    `json:"geometry"`
	Props    *props.Bag   `json:"props"`
	Label    string       `json:"label"`
}

type modelState struct {
	NextID   ID                   `json:"next_id"`
	Counters map[catalog.Type]int `json:"counters"`
	Selected ID                   `json:"selected,omitempty"`
	Widgets  []widgetState        `json:"widgets"`
	Z        []ID                 `json:"z"`
}

// Snapshot serializes the model for the undo history. It is an in-session
// blob, not a project file format.
func (m *Model) Snapshot() ([]byte, error) {
	st := modelState{
		NextID:   m.nextID,
		Counters: m.counters,
		Selected: m.selected,
		Z:        m.z,
	}
	for _, id := range m.order {
		w := m.widgets[id]
		st.Widgets = append(st.Widgets, widgetState{
			ID: w.ID, Type: w.Type, Name: w.Name, Geometry: w.Geometry,
			Props: w.Props, Label: w.Label.Text,
		})
	}
	return json.Marshal(st)
}

// Restore replaces the model contents with a snapshot. The id and name
// counters never move backwards, so widgets created after an undo still get
// fresh ids and names.
func (m *Model) Restore(data []byte) error {
	var st modelState
	if err := json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("design: restore snapshot: %w", err)
	}
	widgets := make(map[ID]*Widget, len(st.Widgets))
	order := make([]ID, 0, len(st.Widgets))
	for _, ws := range st.Widgets {
		b := ws.Props
		if b == nil {
			b = props.NewBag()
		}
		w := &Widget{ID: ws.ID, Type: ws.Type, Name: ws.Name, Geometry: ws.Geometry, Props: b}
		w.Label.Text = ws.Label
		widgets[w.ID] = w
		order = append(order, w.ID)
	}
	z := make([]ID, 0, len(st.Z))
	for _, id := range st.Z {
		if _, ok := widgets[id]; ok {
			z = append(z, id)
		}
	}

	m.widgets, m.order, m.z = widgets, order, z
	if st.NextID > m.nextID {
		m.nextID = st.NextID
	}
	for t, n := range st.Counters {
		if n > m.counters[t] {
			m.counters[t] = n
		}
	}
	m.selected = 0
	if _, ok := widgets[st.Selected]; ok {
		m.selected = st.Selected
	}
	for _, w := range widgets {
		w.Selected = w.ID == m.selected
		w.relayout()
	}
	return nil
}
