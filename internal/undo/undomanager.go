/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package undo

import (
	"sync"
	"time"
)

// Snapshot is a reversible state blob of the design model.
// Blob content is opaque to the manager; size is estimated as len(Blob).
// Label names the change that followed the capture ("move", "create", ...)
// and TS is when the snapshot was captured.
type Snapshot struct {
	Label string
	Blob  []byte
	TS    time.Time
}

// Config controls memory and depth caps and coalescing behavior.
type Config struct {
	// MaxBytes is a soft cap; older entries are pruned when exceeded.
	MaxBytes int
	// MaxDepth limits the number of undo steps kept (0 means unlimited).
	MaxDepth int
	// MinInterval coalesces snapshots with the same label captured within the
	// interval: the older state is kept so one undo reverts the whole burst.
	// Zero disables coalescing.
	MinInterval time.Duration
}

// Manager keeps undo and redo stacks of pre-change snapshots.
// It is safe for concurrent use.
type Manager struct {
	cfg  Config
	mu   sync.Mutex
	undo []Snapshot
	redo []Snapshot
	// accounting
	totalBytes int
}

func NewManager(cfg Config) *Manager {
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = 16 * 1024 * 1024 // 16 MiB
	}
	return &Manager{cfg: cfg}
}

// Record stores the state captured before a change. Any new change
// invalidates the redo stack.
func (m *Manager) Record(prev Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clearRedoLocked()
	if n := len(m.undo); n > 0 && m.cfg.MinInterval > 0 {
		last := m.undo[n-1]
		if last.Label != "" && last.Label == prev.Label && prev.TS.Sub(last.TS) < m.cfg.MinInterval {
			// Coalesce: keep the older state, extend the burst window
			m.undo[n-1].TS = prev.TS
			return
		}
	}
	m.undo = append(m.undo, prev)
	m.totalBytes += len(prev.Blob)
	m.enforceCapsLocked()
}

// Undo pops the most recent pre-change state and parks current on the redo
// stack. The caller restores the returned snapshot.
func (m *Manager) Undo(current Snapshot) (Snapshot, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.undo) == 0 {
		return Snapshot{}, false
	}
	s := m.undo[len(m.undo)-1]
	m.undo = m.undo[:len(m.undo)-1]
	m.totalBytes -= len(s.Blob)
	m.redo = append(m.redo, current)
	m.totalBytes += len(current.Blob)
	return s, true
}

// Redo is the inverse of Undo.
func (m *Manager) Redo(current Snapshot) (Snapshot, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.redo) == 0 {
		return Snapshot{}, false
	}
	s := m.redo[len(m.redo)-1]
	m.redo = m.redo[:len(m.redo)-1]
	m.totalBytes -= len(s.Blob)
	m.undo = append(m.undo, current)
	m.totalBytes += len(current.Blob)
	m.enforceCapsLocked()
	return s, true
}

func (m *Manager) CanUndo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.undo) > 0
}

func (m *Manager) CanRedo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.redo) > 0
}

// Clear drops both stacks to free memory.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.undo, m.redo, m.totalBytes = nil, nil, 0
}

// Stats returns current sizes for diagnostics.
func (m *Manager) Stats() (totalBytes int, undoDepth int, redoDepth int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.totalBytes, len(m.undo), len(m.redo)
}

func (m *Manager) clearRedoLocked() {
	for _, s := range m.redo {
		m.totalBytes -= len(s.Blob)
	}
	m.redo = nil
}

func (m *Manager) enforceCapsLocked() {
	if m.cfg.MaxDepth > 0 && len(m.undo) > m.cfg.MaxDepth {
		// drop the oldest extras
		toDrop := len(m.undo) - m.cfg.MaxDepth
		for i := 0; i < toDrop; i++ {
			m.totalBytes -= len(m.undo[i].Blob)
		}
		m.undo = append([]Snapshot{}, m.undo[toDrop:]...)
	}
	// Global memory cap: prune oldest undo entries, keep at least one
	for m.cfg.MaxBytes > 0 && m.totalBytes > m.cfg.MaxBytes && len(m.undo) > 1 {
		m.totalBytes -= len(m.undo[0].Blob)
		m.undo = m.undo[1:]
	}
}
