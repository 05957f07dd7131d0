/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// isolate points the config path at a fresh temp file and clears the overrides the tests touch.
func isolate(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv(EnvConfigFile, path)
	for _, env := range envKeys {
		t.Setenv(env, "")
	}
	return path
}

func TestLoadWithoutFileReturnsDefaults(t *testing.T) {
	isolate(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if diff := cmp.Diff(Defaults(), cfg); diff != "" {
		t.Fatalf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	isolate(t)
	want := Defaults()
	want.Designer.GridSize = 10
	want.Designer.SnapToGrid = false
	want.Designer.FormTitle = "Login"
	want.General.ShowWelcome = false
	want.Runner.Interpreter = "/usr/bin/python3.12"
	if err := Save(want); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	got, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := isolate(t)
	if err := os.WriteFile(path, []byte("designer:\n  form_width: 640\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Designer.FormWidth != 640 {
		t.Fatalf("FormWidth = %d, want 640", cfg.Designer.FormWidth)
	}
	if !cfg.Designer.SnapToGrid || cfg.Designer.GridSize != 8 || !cfg.General.ShowWelcome {
		t.Fatalf("defaults lost for unspecified fields: %#v", cfg)
	}
}

func TestInvalidFileIsIgnored(t *testing.T) {
	path := isolate(t)
	if err := os.WriteFile(path, []byte("designer:\n  grid_size: -4\n  form_title: Ignored\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Designer.GridSize != 8 || cfg.Designer.FormTitle != Defaults().Designer.FormTitle {
		t.Fatalf("invalid file should be ignored, got %#v", cfg.Designer)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		ok   bool
	}{
		{"empty", "", true},
		{"full", "config_version: 1\ndesigner:\n  grid_size: 8\n  snap_to_grid: true\nlogging:\n  format: json\n", true},
		{"unknown keys", "extra: 1\n", true},
		{"wrong type", "designer:\n  snap_to_grid: \"maybe\"\n", false},
		{"bad format", "logging:\n  format: xml\n", false},
		{"small form", "designer:\n  form_height: 5\n", false},
		{"not yaml", "designer: [\n", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate([]byte(tc.doc))
			if tc.ok && err != nil {
				t.Fatalf("Validate() error: %v", err)
			}
			if !tc.ok && !errors.Is(err, ErrInvalid) {
				t.Fatalf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestEnvOverridesDesigner(t *testing.T) {
	isolate(t)
	t.Setenv(EnvGridSize, "16")
	t.Setenv(EnvSnapToGrid, "off")
	t.Setenv(EnvFormTitle, "Env Title")
	t.Setenv(EnvFormWidth, "not-a-number")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Designer.GridSize != 16 || cfg.Designer.SnapToGrid || cfg.Designer.FormTitle != "Env Title" {
		t.Fatalf("designer overrides not applied: %#v", cfg.Designer)
	}
	if cfg.Designer.FormWidth != 800 {
		t.Fatalf("FormWidth = %d, want default 800 for unparsable override", cfg.Designer.FormWidth)
	}
}

func TestEnvOverridesTelemetry(t *testing.T) {
	isolate(t)
	t.Setenv(EnvTelemetryOptIn, "true")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !cfg.General.TelemetryOptIn {
		t.Fatalf("General.TelemetryOptIn expected true from env override")
	}
}

func TestMergeIncludesShowWelcome(t *testing.T) {
	dst := Defaults()
	src := Defaults()
	src.General.ShowWelcome = false
	mergeInto(&dst, &src)
	if dst.General.ShowWelcome {
		t.Fatalf("ShowWelcome was not merged from file config")
	}
}

func TestMergeIncludesLogging(t *testing.T) {
	dst := Defaults()
	src := Defaults()
	src.Logging.Level = "DEBUG"
	src.Logging.Format = "json"
	src.Logging.Source = true
	src.Logging.File = "/tmp/fd.log"
	mergeInto(&dst, &src)
	if dst.Logging.Level != "debug" || dst.Logging.Format != "json" || !dst.Logging.Source || dst.Logging.File != "/tmp/fd.log" {
		t.Fatalf("logging fields not merged correctly: %#v", dst.Logging)
	}
}

func TestEnvOverridesLogging(t *testing.T) {
	isolate(t)
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvLogFormat, "json")
	t.Setenv(EnvLogSource, "1")
	t.Setenv(EnvLogFile, "/var/tmp/fd.log")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Logging.Level != "error" || cfg.Logging.Format != "json" || !cfg.Logging.Source || cfg.Logging.File != "/var/tmp/fd.log" {
		t.Fatalf("env overrides not applied to logging: %#v", cfg.Logging)
	}
	opts := cfg.LogOptions()
	if opts.Level != "error" || opts.Format != "json" || !opts.AddSource || opts.File != "/var/tmp/fd.log" {
		t.Fatalf("LogOptions() = %#v", opts)
	}
}

func TestEnvOverrideFor(t *testing.T) {
	isolate(t)
	if _, ok := EnvOverrideFor("designer.grid_size"); ok {
		t.Fatalf("no override expected when env is empty")
	}
	t.Setenv(EnvGridSize, "4")
	if env, ok := EnvOverrideFor("designer.grid_size"); !ok || env != EnvGridSize {
		t.Fatalf("EnvOverrideFor = %q, %v", env, ok)
	}
	if _, ok := EnvOverrideFor("unknown.key"); ok {
		t.Fatalf("unknown key must not report an override")
	}
}
