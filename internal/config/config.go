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
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	applog "formdesigner/internal/log"
)

// AppConfig is the user-editable configuration persisted to a YAML file in the user scope.
// Environment variables are treated as read-only overrides at runtime.
//
// config_version: bump when the structure changes in a backward-incompatible way.
// Unknown fields are ignored on unmarshal.

type DesignerConfig struct {
	GridSize   int    `yaml:"grid_size"`
	SnapToGrid bool   `yaml:"snap_to_grid"`
	FormWidth  int    `yaml:"form_width"`
	FormHeight int    `yaml:"form_height"`
	FormTitle  string `yaml:"form_title"`
}

type GeneralConfig struct {
	TelemetryOptIn bool `yaml:"telemetry_opt_in"`
	ShowWelcome    bool `yaml:"show_welcome"`
}

type RunnerConfig struct {
	Interpreter string `yaml:"interpreter"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

type AppConfig struct {
	ConfigVersion int            `yaml:"config_version"`
	Designer      DesignerConfig `yaml:"designer"`
	General       GeneralConfig  `yaml:"general"`
	Runner        RunnerConfig   `yaml:"runner"`
	Logging       LoggingConfig  `yaml:"logging"`
}

// Defaults returns the application defaults.
func Defaults() AppConfig {
	return AppConfig{
		ConfigVersion: 1,
		Designer: DesignerConfig{
			GridSize:   8,
			SnapToGrid: true,
			FormWidth:  800,
			FormHeight: 600,
			FormTitle:  "Windows Forms Style Application",
		},
		General: GeneralConfig{TelemetryOptIn: false, ShowWelcome: true},
		Runner:  RunnerConfig{Interpreter: defaultInterpreter()},
		Logging: LoggingConfig{Level: "info", Format: "console", Source: false, File: ""},
	}
}

func defaultInterpreter() string {
	if runtime.GOOS == "windows" {
		return "python"
	}
	return "python3"
}

// Env var names used as overrides.
const (
	EnvConfigFile     = "FD_CONFIG"
	EnvGridSize       = "FD_GRID_SIZE"
	EnvSnapToGrid     = "FD_SNAP_TO_GRID"
	EnvFormWidth      = "FD_FORM_WIDTH"
	EnvFormHeight     = "FD_FORM_HEIGHT"
	EnvFormTitle      = "FD_FORM_TITLE"
	EnvTelemetryOptIn = "FD_TELEMETRY_OPT_IN"
	EnvShowWelcome    = "FD_SHOW_WELCOME"
	EnvInterpreter    = "FD_INTERPRETER"
	// EnvLogLevel Logging envs
	EnvLogLevel  = "FD_LOG_LEVEL"
	EnvLogFormat = "FD_LOG_FORMAT"
	EnvLogSource = "FD_LOG_SOURCE"
	EnvLogFile   = "FD_LOG_FILE"
)

//go:embed schema.json
var schemaJSON []byte

// ErrInvalid is wrapped by Validate when a document does not match the schema.
var ErrInvalid = errors.New("config: invalid document")

// ConfigPath returns the per-user config file path. FD_CONFIG replaces it entirely.
func ConfigPath() (string, error) {
	if p := strings.TrimSpace(os.Getenv(EnvConfigFile)); p != "" {
		return p, nil
	}
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("AppData")
		if base == "" { // fallback
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		base = filepath.Join(base, "FormDesigner")
	case "darwin":
		base = filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "FormDesigner")
	default: // linux and others
		if x := os.Getenv("XDG_CONFIG_HOME"); x != "" {
			base = filepath.Join(x, "formdesigner")
		} else {
			base = filepath.Join(os.Getenv("HOME"), ".config", "formdesigner")
		}
	}
	if base == "" {
		return "", errors.New("cannot resolve config directory")
	}
	return filepath.Join(base, "config.yaml"), nil
}

// Validate checks a YAML document against the embedded JSON schema.
func Validate(data []byte) error {
	var doc map[string]interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if doc == nil {
		doc = map[string]interface{}{}
	}
	res, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(schemaJSON), gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("config: schema: %w", err)
	}
	if !res.Valid() {
		msgs := make([]string, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
	}
	return nil
}

// Load reads the user config file (if present), applies defaults, and merges environment overrides.
// A file that fails schema validation is ignored with a warning.
func Load() (AppConfig, error) {
	cfg := Defaults()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	if data, err := os.ReadFile(path); err == nil {
		if verr := Validate(data); verr != nil {
			applog.WithComponent("config").Warn("ignoring config file", "path", path, "err", verr)
		} else {
			fileCfg := Defaults()
			if err := yaml.Unmarshal(data, &fileCfg); err == nil {
				mergeInto(&cfg, &fileCfg)
			}
		}
	}
	applyEnvOverrides(&cfg)
	return cfg, nil
}

// Save writes the user config YAML.
func Save(cfg AppConfig) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: mkdir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("config: write: %w", err)
	}
	return nil
}

// LogOptions maps the logging section onto logger options.
func (c AppConfig) LogOptions() applog.Options {
	return applog.Options{
		Level:     c.Logging.Level,
		Format:    c.Logging.Format,
		AddSource: c.Logging.Source,
		File:      c.Logging.File,
	}
}

func mergeInto(dst *AppConfig, src *AppConfig) {
	if src.ConfigVersion != 0 {
		dst.ConfigVersion = src.ConfigVersion
	}
	// designer
	if src.Designer.GridSize > 0 {
		dst.Designer.GridSize = src.Designer.GridSize
	}
	dst.Designer.SnapToGrid = src.Designer.SnapToGrid
	if src.Designer.FormWidth > 0 {
		dst.Designer.FormWidth = src.Designer.FormWidth
	}
	if src.Designer.FormHeight > 0 {
		dst.Designer.FormHeight = src.Designer.FormHeight
	}
	if strings.TrimSpace(src.Designer.FormTitle) != "" {
		dst.Designer.FormTitle = src.Designer.FormTitle
	}
	// booleans: copy directly from src (file) so user preferences persist
	dst.General.TelemetryOptIn = src.General.TelemetryOptIn
	dst.General.ShowWelcome = src.General.ShowWelcome
	if strings.TrimSpace(src.Runner.Interpreter) != "" {
		dst.Runner.Interpreter = strings.TrimSpace(src.Runner.Interpreter)
	}
	// logging
	if strings.TrimSpace(src.Logging.Level) != "" {
		dst.Logging.Level = strings.ToLower(strings.TrimSpace(src.Logging.Level))
	}
	if strings.TrimSpace(src.Logging.Format) != "" {
		dst.Logging.Format = strings.ToLower(strings.TrimSpace(src.Logging.Format))
	}
	dst.Logging.Source = src.Logging.Source
	if strings.TrimSpace(src.Logging.File) != "" {
		dst.Logging.File = strings.TrimSpace(src.Logging.File)
	}
}

func truthy(v string) bool {
	lv := strings.ToLower(v)
	return lv == "1" || lv == "true" || lv == "on" || lv == "yes"
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv(EnvGridSize)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Designer.GridSize = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvSnapToGrid)); v != "" {
		cfg.Designer.SnapToGrid = truthy(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvFormWidth)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Designer.FormWidth = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvFormHeight)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Designer.FormHeight = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvFormTitle)); v != "" {
		cfg.Designer.FormTitle = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvTelemetryOptIn)); v != "" {
		cfg.General.TelemetryOptIn = truthy(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvShowWelcome)); v != "" {
		cfg.General.ShowWelcome = truthy(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvInterpreter)); v != "" {
		cfg.Runner.Interpreter = v
	}
	// logging overrides
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogSource)); v != "" {
		cfg.Logging.Source = truthy(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
}

var envKeys = map[string]string{
	"designer.grid_size":       EnvGridSize,
	"designer.snap_to_grid":    EnvSnapToGrid,
	"designer.form_width":      EnvFormWidth,
	"designer.form_height":     EnvFormHeight,
	"designer.form_title":      EnvFormTitle,
	"general.telemetry_opt_in": EnvTelemetryOptIn,
	"general.show_welcome":     EnvShowWelcome,
	"runner.interpreter":       EnvInterpreter,
	"logging.level":            EnvLogLevel,
	"logging.format":           EnvLogFormat,
	"logging.source":           EnvLogSource,
	"logging.file":             EnvLogFile,
}

// EnvOverrideFor returns the env var name if the field is overridden by environment variables.
func EnvOverrideFor(key string) (string, bool) {
	env, ok := envKeys[key]
	if !ok || os.Getenv(env) == "" {
		return "", false
	}
	return env, true
}
