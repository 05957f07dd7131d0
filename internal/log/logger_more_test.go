/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestFromEnv(t *testing.T) {
	t.Setenv("FD_LOG_LEVEL", "warn")
	t.Setenv("FD_LOG_FORMAT", "json")
	t.Setenv("FD_LOG_SOURCE", "TRUE")
	t.Setenv("FD_LOG_FILE", "")

	opts := FromEnv()
	if opts.Level != "warn" || opts.Format != "json" || !opts.AddSource || opts.File != "" {
		t.Fatalf("FromEnv mismatch: %+v", opts)
	}
	t.Setenv("FD_LOG_LEVEL", "")
	if got := FromEnv().Level; got != "info" {
		t.Fatalf("empty level should fall back to info, got %q", got)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := parseLevel(in).Level(); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestMultiHandlerFansOutPerLevel(t *testing.T) {
	var quiet, loud bytes.Buffer
	h := multiHandler(
		slog.NewTextHandler(&quiet, &slog.HandlerOptions{Level: slog.LevelError}),
		slog.NewTextHandler(&loud, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)
	l := slog.New(h).With(slog.String("component", "surface"))
	l.Info("widget created", slog.String("type", "Button"))
	l.Error("codegen failed")

	if strings.Contains(quiet.String(), "widget created") || !strings.Contains(quiet.String(), "codegen failed") {
		t.Fatalf("error-level handler output wrong: %q", quiet.String())
	}
	if !strings.Contains(loud.String(), "widget created") || !strings.Contains(loud.String(), "component=surface") {
		t.Fatalf("debug-level handler output wrong: %q", loud.String())
	}
	if !h.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatalf("multi handler should be enabled when any child is")
	}
}

func TestPrettyTextHandler_GroupsAndLevels(t *testing.T) {
	var buf bytes.Buffer
	h := &prettyTextHandler{opts: prettyOpts{Level: slog.LevelWarn}, w: &buf}
	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Fatalf("info should not be enabled at warn level")
	}

	h2 := h.WithAttrs([]slog.Attr{slog.String("component", "export")}).WithGroup("rect")
	r := slog.NewRecord(time.Now(), slog.LevelError, "png export failed", 0)
	r.AddAttrs(slog.Int("x", 96), slog.Float64("scale", 0.5), slog.Bool("selected", true))
	if err := h2.Handle(context.Background(), r); err != nil {
		t.Fatalf("handle error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"ERR", "png export failed", "component=export", "rect.x=96", "rect.scale=0.5", "rect.selected=true"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q: %q", want, out)
		}
	}
	if strings.Contains(out, "rect.component") {
		t.Fatalf("attrs added before the group must stay unqualified: %q", out)
	}
	if got := attrValueString(slog.Float64Value(32)); got != "32" {
		t.Fatalf("whole float rendered as %q", got)
	}
}
