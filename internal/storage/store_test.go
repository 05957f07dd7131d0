/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), StoreFileName))
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpenCreatesSchema(t *testing.T) {
	s := openTemp(t)
	v, err := s.SchemaVersion(context.Background())
	if err != nil {
		t.Fatalf("SchemaVersion: %v", err)
	}
	if v != schemaVersion {
		t.Fatalf("schema = %d, want %d", v, schemaVersion)
	}
	if _, err := os.Stat(s.Path()); err != nil {
		t.Fatalf("store file missing: %v", err)
	}
}

func TestNilStoreReportsErrNoStore(t *testing.T) {
	var s *Store
	ctx := context.Background()
	if _, _, err := s.Pref(ctx, PrefShowWelcome); !errors.Is(err, ErrNoStore) {
		t.Fatalf("Pref on nil store: %v", err)
	}
	if _, err := s.SaveCode(ctx, "", "x", time.Now()); !errors.Is(err, ErrNoStore) {
		t.Fatalf("SaveCode on nil store: %v", err)
	}
	if _, err := s.RecentFiles(ctx); !errors.Is(err, ErrNoStore) {
		t.Fatalf("RecentFiles on nil store: %v", err)
	}
	if err := s.Close(); !errors.Is(err, ErrNoStore) {
		t.Fatalf("Close on nil store: %v", err)
	}
}

func TestClosedStoreReportsErrNoStore(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), StoreFileName))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := s.SetPref(context.Background(), "k", "v"); !errors.Is(err, ErrNoStore) {
		t.Fatalf("SetPref after close: %v", err)
	}
}

func TestMigrationsUpgradeV1ToV2(t *testing.T) {
	path := filepath.Join(t.TempDir(), StoreFileName)
	dsn := fmt.Sprintf("file:%s?cache=shared&_pragma=busy_timeout(2000)", filepath.ToSlash(path))
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	stmts := []string{
		`CREATE TABLE meta (key TEXT PRIMARY KEY, value TEXT NOT NULL);`,
		`CREATE TABLE version (id INTEGER PRIMARY KEY CHECK(id=1), schema INTEGER NOT NULL, app TEXT, created_at TEXT NOT NULL, updated_at TEXT NOT NULL);`,
		`INSERT INTO version(id, schema, app, created_at, updated_at) VALUES(1, 1, 'test', '2020-01-01T00:00:00Z', '2020-01-01T00:00:00Z');`,
		`CREATE TABLE code_history (id INTEGER PRIMARY KEY, ts TEXT NOT NULL, label TEXT NOT NULL DEFAULT '', text TEXT NOT NULL);`,
	}
	for _, q := range stmts {
		if _, err := db.ExecContext(ctx, q); err != nil {
			t.Fatalf("seed v1 schema: %v (q=%s)", err, q)
		}
	}
	_ = db.Close()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()
	v, err := s.SchemaVersion(ctx)
	if err != nil || v != 2 {
		t.Fatalf("schema after migration = %d, %v", v, err)
	}
	var cnt int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sqlite_master WHERE type='index' AND name IN ('idx_code_history_ts','idx_recent_files_opened')`).Scan(&cnt); err != nil {
		t.Fatalf("query indexes: %v", err)
	}
	if cnt != 2 {
		t.Fatalf("expected 2 migration indexes, got %d", cnt)
	}
}

func TestOpenOrRebuildRecoversGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), StoreFileName)
	if err := os.WriteFile(path, []byte("this is not a sqlite database, not even close"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, rebuilt, err := OpenOrRebuild(context.Background(), path)
	if err != nil {
		t.Fatalf("OpenOrRebuild: %v", err)
	}
	defer s.Close()
	if !rebuilt {
		t.Fatalf("expected rebuild for a corrupt file")
	}
	if err := s.SetPref(context.Background(), "k", "v"); err != nil {
		t.Fatalf("rebuilt store not usable: %v", err)
	}
	baks, _ := os.ReadDir(filepath.Join(filepath.Dir(path), BackupsDirName))
	if len(baks) == 0 {
		t.Fatalf("expected a backup of the corrupt store")
	}
}

func TestOpenOrRebuildKeepsHealthyStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), StoreFileName)
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SetPref(context.Background(), "k", "v"); err != nil {
		t.Fatal(err)
	}
	_ = s.Close()
	s2, rebuilt, err := OpenOrRebuild(context.Background(), path)
	if err != nil || rebuilt {
		t.Fatalf("OpenOrRebuild = rebuilt %v, err %v", rebuilt, err)
	}
	defer s2.Close()
	if v, ok, _ := s2.Pref(context.Background(), "k"); !ok || v != "v" {
		t.Fatalf("pref lost: %q %v", v, ok)
	}
}

func TestDataDirOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvDataDir, dir)
	p, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(filepath.Join(dir, StoreFileName), p); diff != "" {
		t.Fatalf("DefaultPath mismatch (-want +got):\n%s", diff)
	}
}
