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
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// MaxRecentFiles bounds the recent files list.
const MaxRecentFiles = 10

// language=SQL
// dialect=SQLite
const upsertRecentSQL = `INSERT INTO recent_files(path, opened_at) VALUES (?, ?)
	ON CONFLICT(path) DO UPDATE SET opened_at=excluded.opened_at`

// language=SQL
// dialect=SQLite
const listRecentSQL = `SELECT path FROM recent_files ORDER BY opened_at DESC, path ASC LIMIT ?`

// language=SQL
// dialect=SQLite
const pruneRecentSQL = `DELETE FROM recent_files WHERE path NOT IN (
	SELECT path FROM recent_files ORDER BY opened_at DESC, path ASC LIMIT ?
)`

// AddRecent records that path was opened or saved at ts; the list keeps MaxRecentFiles entries.
func (s *Store) AddRecent(ctx context.Context, path string, ts time.Time) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	if strings.TrimSpace(path) == "" {
		return errors.New("recent path is required")
	}
	if abs, aerr := filepath.Abs(path); aerr == nil {
		path = abs
	}
	if _, err := db.ExecContext(ctx, upsertRecentSQL, path, ts.UTC().Format(tsLayout)); err != nil {
		return fmt.Errorf("add recent: %w", err)
	}
	if _, err := db.ExecContext(ctx, pruneRecentSQL, MaxRecentFiles); err != nil {
		return fmt.Errorf("prune recent: %w", err)
	}
	return nil
}

// RecentFiles returns the most recently used paths, newest first.
func (s *Store) RecentFiles(ctx context.Context) ([]string, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, listRecentSQL, MaxRecentFiles)
	if err != nil {
		return nil, fmt.Errorf("list recent: %w", err)
	}
	defer func() { _ = rows.Close() }()
	var out []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
