/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// CodeEntry is one saved version of the generated code.
type CodeEntry struct {
	ID    int64
	TS    time.Time
	Label string
	Text  string
}

// language=SQL
// dialect=SQLite
const insertCodeSQL = `INSERT INTO code_history(ts, label, text) VALUES (?, ?, ?)`

// language=SQL
// dialect=SQLite
const selectLatestCodeSQL = `SELECT id, ts, label, text FROM code_history ORDER BY ts DESC, id DESC LIMIT 1`

// language=SQL
// dialect=SQLite
const listCodeSQL = `SELECT id, ts, label, text FROM code_history ORDER BY ts DESC, id DESC LIMIT ?`

// language=SQL
// dialect=SQLite
const pruneOldCodeSQL = `DELETE FROM code_history WHERE id NOT IN (
	SELECT id FROM code_history ORDER BY ts DESC, id DESC LIMIT ?
)`

// SaveCode appends a generated code version to the history.
// Identical text to the latest entry is not stored twice; the returned bool reports whether a row was written.
func (s *Store) SaveCode(ctx context.Context, label, text string, ts time.Time) (bool, error) {
	db, err := s.conn()
	if err != nil {
		return false, err
	}
	latest, ok, err := s.LatestCode(ctx)
	if err != nil {
		return false, err
	}
	if ok && latest.Text == text {
		return false, nil
	}
	if _, err := db.ExecContext(ctx, insertCodeSQL, ts.UTC().Format(tsLayout), label, text); err != nil {
		return false, fmt.Errorf("save code: %w", err)
	}
	return true, nil
}

// LatestCode returns the newest history entry, if any.
func (s *Store) LatestCode(ctx context.Context) (CodeEntry, bool, error) {
	db, err := s.conn()
	if err != nil {
		return CodeEntry{}, false, err
	}
	e, err := scanCode(db.QueryRowContext(ctx, selectLatestCodeSQL))
	if errors.Is(err, sql.ErrNoRows) {
		return CodeEntry{}, false, nil
	}
	if err != nil {
		return CodeEntry{}, false, fmt.Errorf("latest code: %w", err)
	}
	return e, true, nil
}

// ListCode returns up to limit history entries, newest first. limit <= 0 means 50.
func (s *Store) ListCode(ctx context.Context, limit int) ([]CodeEntry, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.QueryContext(ctx, listCodeSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("list code: %w", err)
	}
	defer func() { _ = rows.Close() }()
	var out []CodeEntry
	for rows.Next() {
		e, err := scanCode(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// PruneCode keeps at most keepLast entries and deletes older ones.
func (s *Store) PruneCode(ctx context.Context, keepLast int) (int64, error) {
	db, err := s.conn()
	if err != nil {
		return 0, err
	}
	if keepLast <= 0 {
		return 0, nil
	}
	res, err := db.ExecContext(ctx, pruneOldCodeSQL, keepLast)
	if err != nil {
		return 0, fmt.Errorf("prune code: %w", err)
	}
	return res.RowsAffected()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCode(row scanner) (CodeEntry, error) {
	var e CodeEntry
	var tsStr string
	if err := row.Scan(&e.ID, &tsStr, &e.Label, &e.Text); err != nil {
		return CodeEntry{}, err
	}
	e.TS, _ = time.Parse(tsLayout, tsStr)
	return e, nil
}
