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
	"testing"
	"time"
)

func snap(label, blob string, ts time.Time) Snapshot {
	return Snapshot{Label: label, Blob: []byte(blob), TS: ts}
}

func TestUndoRedoBasic(t *testing.T) {
	m := NewManager(Config{MaxBytes: 1024 * 1024, MaxDepth: 10})
	t0 := time.Now()
	m.Record(snap("create", "a", t0))
	m.Record(snap("move", "b", t0.Add(20*time.Millisecond)))
	if _, depth, _ := m.Stats(); depth != 2 {
		t.Fatalf("expected 2 undo steps, got %d", depth)
	}
	s, ok := m.Undo(snap("", "c", t0))
	if !ok || string(s.Blob) != "b" {
		t.Fatalf("undo expected 'b', got ok=%v blob=%q", ok, string(s.Blob))
	}
	s, ok = m.Redo(snap("", "b", t0))
	if !ok || string(s.Blob) != "c" {
		t.Fatalf("redo expected 'c', got ok=%v blob=%q", ok, string(s.Blob))
	}
	if m.CanRedo() {
		t.Fatalf("redo stack should be empty")
	}
}

func TestRecordClearsRedo(t *testing.T) {
	m := NewManager(Config{})
	t0 := time.Now()
	m.Record(snap("create", "a", t0))
	if _, ok := m.Undo(snap("", "b", t0)); !ok {
		t.Fatalf("undo failed")
	}
	if !m.CanRedo() {
		t.Fatalf("expected redo to be available")
	}
	m.Record(snap("create", "a", t0.Add(time.Second)))
	if m.CanRedo() {
		t.Fatalf("new change should invalidate redo")
	}
	if _, ok := m.Redo(snap("", "x", t0)); ok {
		t.Fatalf("expected redo to fail")
	}
}

func TestCoalesceKeepsOlderState(t *testing.T) {
	m := NewManager(Config{MinInterval: 50 * time.Millisecond})
	t0 := time.Now()
	m.Record(snap("props", "1", t0))
	m.Record(snap("props", "2", t0.Add(10*time.Millisecond)))
	m.Record(snap("move", "3", t0.Add(20*time.Millisecond)))
	if _, depth, _ := m.Stats(); depth != 2 {
		t.Fatalf("expected 2 steps after coalescing, got %d", depth)
	}
	m.Undo(snap("", "now", t0))
	s, ok := m.Undo(snap("", "3", t0))
	if !ok || string(s.Blob) != "1" {
		t.Fatalf("expected coalesced snapshot '1', got ok=%v blob=%q", ok, string(s.Blob))
	}
}

func TestCaps(t *testing.T) {
	m := NewManager(Config{MaxBytes: 20, MaxDepth: 2})
	for i := 0; i < 10; i++ {
		m.Record(snap("move", "xxxxx", time.Now().Add(time.Duration(i)*time.Second)))
	}
	if _, depth, _ := m.Stats(); depth > 2 {
		t.Fatalf("expected MaxDepth cap to limit to 2, got %d", depth)
	}

	m = NewManager(Config{MaxBytes: 8})
	for i := 0; i < 5; i++ {
		m.Record(snap("move", "xxxx", time.Now()))
	}
	tb, depth, _ := m.Stats()
	if tb > 8 || depth != 2 {
		t.Fatalf("expected byte cap to prune to 2 steps, got bytes=%d depth=%d", tb, depth)
	}
}

func TestClear(t *testing.T) {
	m := NewManager(Config{})
	m.Record(snap("create", "abcdef", time.Now()))
	m.Clear()
	tb, depth, redo := m.Stats()
	if tb != 0 || depth != 0 || redo != 0 {
		t.Fatalf("expected cleared stats to be zero, got tb=%d depth=%d redo=%d", tb, depth, redo)
	}
	if _, ok := m.Undo(Snapshot{}); ok {
		t.Fatalf("undo on empty manager should fail")
	}
}
