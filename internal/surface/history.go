/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package surface

import (
	"log/slog"

	"formdesigner/internal/undo"
)

// Undo restores the state before the last recorded change.
func (c *Controller) Undo() bool {
	return c.step(func(m *undo.Manager, cur undo.Snapshot) (undo.Snapshot, bool) { return m.Undo(cur) })
}

// Redo reapplies the last undone change.
func (c *Controller) Redo() bool {
	return c.step(func(m *undo.Manager, cur undo.Snapshot) (undo.Snapshot, bool) { return m.Redo(cur) })
}

func (c *Controller) step(fn func(*undo.Manager, undo.Snapshot) (undo.Snapshot, bool)) bool {
	if c.opts.History == nil {
		return false
	}
	if _, idle := c.state.(Idle); !idle {
		return false
	}
	cur := c.capture()
	if cur == nil {
		return false
	}
	s, ok := fn(c.opts.History, undo.Snapshot{Blob: cur, TS: c.opts.Now()})
	if !ok {
		return false
	}
	if err := c.m.Restore(s.Blob); err != nil {
		c.log.Error("restore failed", slog.Any("err", err))
		return false
	}
	c.status = "Ready"
	c.Regenerate()
	return true
}

func (c *Controller) CanUndo() bool { return c.opts.History != nil && c.opts.History.CanUndo() }
func (c *Controller) CanRedo() bool { return c.opts.History != nil && c.opts.History.CanRedo() }
