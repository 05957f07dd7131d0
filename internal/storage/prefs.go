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
	"strconv"
	"strings"
	"time"
)

// Preference keys used by the designer.
const (
	PrefShowWelcome = "show_welcome"
	PrefWindowSize  = "window_size"
	PrefLastExport  = "last_export_dir"
)

// language=SQL
// dialect=SQLite
const upsertPrefSQL = `INSERT INTO prefs(key, value, updated_at) VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at`

// language=SQL
// dialect=SQLite
const selectPrefSQL = `SELECT value FROM prefs WHERE key=?`

// Pref returns the stored value for key and whether it exists.
func (s *Store) Pref(ctx context.Context, key string) (string, bool, error) {
	db, err := s.conn()
	if err != nil {
		return "", false, err
	}
	var v string
	err = db.QueryRowContext(ctx, selectPrefSQL, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read pref %s: %w", key, err)
	}
	return v, true, nil
}

// SetPref stores value under key, replacing any previous value.
func (s *Store) SetPref(ctx context.Context, key, value string) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	if strings.TrimSpace(key) == "" {
		return errors.New("pref key is required")
	}
	if _, err := db.ExecContext(ctx, upsertPrefSQL, key, value, time.Now().UTC().Format(tsLayout)); err != nil {
		return fmt.Errorf("write pref %s: %w", key, err)
	}
	return nil
}

// BoolPref reads a boolean preference, returning def when it is unset or unparsable.
func (s *Store) BoolPref(ctx context.Context, key string, def bool) (bool, error) {
	v, ok, err := s.Pref(ctx, key)
	if err != nil || !ok {
		return def, err
	}
	b, perr := strconv.ParseBool(v)
	if perr != nil {
		return def, nil
	}
	return b, nil
}

// SetBoolPref stores a boolean preference.
func (s *Store) SetBoolPref(ctx context.Context, key string, v bool) error {
	return s.SetPref(ctx, key, strconv.FormatBool(v))
}

// WindowSize returns the last saved designer window size.
func (s *Store) WindowSize(ctx context.Context) (w, h int, ok bool, err error) {
	v, found, err := s.Pref(ctx, PrefWindowSize)
	if err != nil || !found {
		return 0, 0, false, err
	}
	ws, hs, cut := strings.Cut(v, "x")
	if !cut {
		return 0, 0, false, nil
	}
	w, werr := strconv.Atoi(ws)
	h, herr := strconv.Atoi(hs)
	if werr != nil || herr != nil || w <= 0 || h <= 0 {
		return 0, 0, false, nil
	}
	return w, h, true, nil
}

// SetWindowSize persists the designer window size as "WxH".
func (s *Store) SetWindowSize(ctx context.Context, w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("invalid window size %dx%d", w, h)
	}
	return s.SetPref(ctx, PrefWindowSize, fmt.Sprintf("%dx%d", w, h))
}
