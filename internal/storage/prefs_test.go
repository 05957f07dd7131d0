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
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestPrefs(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()

	if _, ok, err := s.Pref(ctx, "missing"); err != nil || ok {
		t.Fatalf("missing pref = %v, %v", ok, err)
	}
	if got, err := s.BoolPref(ctx, PrefShowWelcome, true); err != nil || !got {
		t.Fatalf("BoolPref default = %v, %v", got, err)
	}
	if err := s.SetBoolPref(ctx, PrefShowWelcome, false); err != nil {
		t.Fatal(err)
	}
	if got, _ := s.BoolPref(ctx, PrefShowWelcome, true); got {
		t.Fatalf("BoolPref after set = true")
	}
	if err := s.SetPref(ctx, PrefShowWelcome, "garbage"); err != nil {
		t.Fatal(err)
	}
	if got, _ := s.BoolPref(ctx, PrefShowWelcome, true); !got {
		t.Fatalf("unparsable bool should fall back to default")
	}
	if err := s.SetPref(ctx, " ", "v"); err == nil {
		t.Fatalf("blank key should be rejected")
	}
}

func TestWindowSize(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()
	if _, _, ok, err := s.WindowSize(ctx); ok || err != nil {
		t.Fatalf("unset window size = %v, %v", ok, err)
	}
	if err := s.SetWindowSize(ctx, 1024, 768); err != nil {
		t.Fatal(err)
	}
	w, h, ok, err := s.WindowSize(ctx)
	if err != nil || !ok || w != 1024 || h != 768 {
		t.Fatalf("WindowSize = %d x %d, %v, %v", w, h, ok, err)
	}
	if err := s.SetWindowSize(ctx, 0, 10); err == nil {
		t.Fatalf("zero width should be rejected")
	}
}

func TestRecentFilesOrderAndCap(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()
	dir := t.TempDir()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < MaxRecentFiles+3; i++ {
		p := filepath.Join(dir, fmt.Sprintf("form%02d.py", i))
		if err := s.AddRecent(ctx, p, base.Add(time.Duration(i)*time.Minute)); err != nil {
			t.Fatalf("AddRecent: %v", err)
		}
	}
	// Re-adding a pruned file puts it back at the front.
	again := filepath.Join(dir, "form01.py")
	if err := s.AddRecent(ctx, again, base.Add(time.Hour)); err != nil {
		t.Fatal(err)
	}
	got, err := s.RecentFiles(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != MaxRecentFiles {
		t.Fatalf("len = %d, want %d", len(got), MaxRecentFiles)
	}
	want := []string{again}
	for i := MaxRecentFiles + 2; len(want) < MaxRecentFiles; i-- {
		want = append(want, filepath.Join(dir, fmt.Sprintf("form%02d.py", i)))
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("RecentFiles mismatch (-want +got):\n%s", diff)
	}
}

func TestCodeHistory(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	if _, ok, err := s.LatestCode(ctx); ok || err != nil {
		t.Fatalf("LatestCode on empty store = %v, %v", ok, err)
	}
	texts := []string{"v1", "v2", "v2", "v3"}
	wrote := 0
	for i, txt := range texts {
		ok, err := s.SaveCode(ctx, fmt.Sprintf("save %d", i), txt, base.Add(time.Duration(i)*time.Second))
		if err != nil {
			t.Fatalf("SaveCode: %v", err)
		}
		if ok {
			wrote++
		}
	}
	if wrote != 3 {
		t.Fatalf("duplicate latest text should be skipped, wrote %d", wrote)
	}
	latest, ok, err := s.LatestCode(ctx)
	if err != nil || !ok || latest.Text != "v3" || latest.Label != "save 3" || !latest.TS.Equal(base.Add(3*time.Second)) {
		t.Fatalf("LatestCode = %+v, %v, %v", latest, ok, err)
	}
	list, err := s.ListCode(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, e := range list {
		got = append(got, e.Text)
	}
	if diff := cmp.Diff([]string{"v3", "v2", "v1"}, got); diff != "" {
		t.Fatalf("ListCode mismatch (-want +got):\n%s", diff)
	}
	n, err := s.PruneCode(ctx, 1)
	if err != nil || n != 2 {
		t.Fatalf("PruneCode = %d, %v", n, err)
	}
	if n, _ := s.PruneCode(ctx, 0); n != 0 {
		t.Fatalf("PruneCode(0) should be a no-op")
	}
	list, _ = s.ListCode(ctx, 10)
	if len(list) != 1 || list[0].Text != "v3" {
		t.Fatalf("after prune: %+v", list)
	}
}
