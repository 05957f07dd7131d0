/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package designer assembles one editing session from the user configuration:
// the design surface, its undo history, the font library, the local store and the code runner.
// The CLI and the desktop shell both start from here.
package designer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"formdesigner/internal/codegen"
	"formdesigner/internal/config"
	"formdesigner/internal/export"
	"formdesigner/internal/fonts"
	"formdesigner/internal/geom"
	applog "formdesigner/internal/log"
	"formdesigner/internal/runner"
	"formdesigner/internal/storage"
	"formdesigner/internal/surface"
	"formdesigner/internal/undo"
)

// Deps are the optional collaborators of a Designer. Zero values are fine:
// a nil Store disables history and preferences, nil Fonts uses the bundled Go fonts.
type Deps struct {
	Store    *storage.Store
	Fonts    *fonts.Library
	Events   surface.EventSink
	Dispatch runner.Dispatcher
	// OnCode observes every regeneration after the Designer has recorded it.
	OnCode func(code string)
	Now    func() time.Time
}

// Designer is one form-editing session.
type Designer struct {
	cfg     config.AppConfig
	deps    Deps
	ctrl    *surface.Controller
	history *undo.Manager
	runner  *runner.Runner
	code    string
	log     *slog.Logger
}

// New builds a Designer for cfg.
func New(cfg config.AppConfig, deps Deps) *Designer {
	if deps.Fonts == nil {
		deps.Fonts = fonts.NewLibrary()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	d := &Designer{
		cfg:     cfg,
		deps:    deps,
		history: undo.NewManager(undo.Config{MaxDepth: 200, MinInterval: 750 * time.Millisecond}),
		runner:  runner.New(cfg.Runner.Interpreter, deps.Dispatch),
		log:     applog.WithComponent("designer"),
	}
	d.ctrl = surface.New(nil, surface.Options{
		Grid:         GridFrom(cfg),
		FormWidth:    float64(cfg.Designer.FormWidth),
		FormHeight:   float64(cfg.Designer.FormHeight),
		Code:         CodeOptionsFrom(cfg),
		Sink:         d.onCode,
		History:      d.history,
		Events:       deps.Events,
		FontFamilies: deps.Fonts.Families,
		Now:          deps.Now,
	})
	d.ctrl.Regenerate()
	return d
}

// GridFrom maps the designer section onto the snapping grid.
func GridFrom(cfg config.AppConfig) geom.Grid {
	size := float64(cfg.Designer.GridSize)
	if size <= 0 {
		size = geom.DefaultGridSize
	}
	return geom.Grid{Size: size, Enabled: cfg.Designer.SnapToGrid}
}

// CodeOptionsFrom maps the designer section onto the generator scaffold.
func CodeOptionsFrom(cfg config.AppConfig) codegen.Options {
	o := codegen.DefaultOptions()
	if t := strings.TrimSpace(cfg.Designer.FormTitle); t != "" {
		o.Title = t
	}
	if cfg.Designer.FormWidth > 0 {
		o.Width = cfg.Designer.FormWidth
	}
	if cfg.Designer.FormHeight > 0 {
		o.Height = cfg.Designer.FormHeight
	}
	return o
}

func (d *Designer) onCode(code string) {
	d.code = code
	if d.deps.OnCode != nil {
		d.deps.OnCode(code)
	}
}

// Controller exposes the design surface.
func (d *Designer) Controller() *surface.Controller { return d.ctrl }

// Config returns the configuration the session was built from.
func (d *Designer) Config() config.AppConfig { return d.cfg }

// Fonts returns the font library backing the font dialog.
func (d *Designer) Fonts() *fonts.Library { return d.deps.Fonts }

// Store returns the local store, possibly nil.
func (d *Designer) Store() *storage.Store { return d.deps.Store }

// Code returns the last generated code buffer.
func (d *Designer) Code() string { return d.code }

// History returns the undo manager.
func (d *Designer) History() *undo.Manager { return d.history }

// Runner returns the code runner.
func (d *Designer) Runner() *runner.Runner { return d.runner }

// SaveCode writes the current code to path, records it in the code history
// and adds path to the recent files. Store failures are logged, not returned.
func (d *Designer) SaveCode(ctx context.Context, path string) error {
	ctx = applog.ContextWithForm(applog.ContextWithOperation(ctx, "save_code"), path)
	if err := storage.WriteCode(path, d.code); err != nil {
		d.log.ErrorContext(ctx, "write code failed", slog.Any("err", err))
		return fmt.Errorf("save code: %w", err)
	}
	now := d.deps.Now()
	if _, err := d.deps.Store.SaveCode(ctx, filepath.Base(path), d.code, now); err != nil && !errors.Is(err, storage.ErrNoStore) {
		d.log.WarnContext(ctx, "record code history failed", slog.Any("err", err))
	}
	if err := d.deps.Store.AddRecent(ctx, path, now); err != nil && !errors.Is(err, storage.ErrNoStore) {
		d.log.WarnContext(ctx, "record recent file failed", slog.Any("err", err))
	}
	d.log.InfoContext(ctx, "code saved", slog.Int("widgets", d.ctrl.Model().Len()))
	return nil
}

// Snapshot stores the current code in the history without writing a file.
func (d *Designer) Snapshot(ctx context.Context, label string) (bool, error) {
	return d.deps.Store.SaveCode(ctx, label, d.code, d.deps.Now())
}

// ExportOptions returns wireframe options matching the current form.
func (d *Designer) ExportOptions() export.Options {
	opt := export.DefaultOptions()
	opt.Form = CodeOptionsFrom(d.cfg)
	if w, h := d.ctrl.FormSize(); w > 0 && h > 0 {
		opt.Form.Width, opt.Form.Height = int(w), int(h)
	}
	opt.Fonts = d.deps.Fonts
	return opt
}

// Format is a wireframe output kind.
type Format string

const (
	FormatPDF Format = "pdf"
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// ParseFormat accepts pdf, png or svg in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatPDF, FormatPNG, FormatSVG:
		return f, nil
	}
	return "", fmt.Errorf("unknown export format %q (want pdf, png or svg)", s)
}

// Export writes a wireframe of the current form.
func (d *Designer) Export(f Format, out string) error {
	opt := d.ExportOptions()
	m := d.ctrl.Model()
	var err error
	switch f {
	case FormatPDF:
		err = export.PDF(m, out, opt)
	case FormatPNG:
		err = export.PNG(m, out, opt)
	case FormatSVG:
		err = export.SVG(m, out, opt)
	default:
		err = fmt.Errorf("unknown export format %q", f)
	}
	if err != nil {
		return err
	}
	d.log.Info("wireframe exported", slog.String("format", string(f)), slog.String("path", out))
	return nil
}

// Run starts the current code in the configured interpreter.
func (d *Designer) Run(done func(runner.Result)) error {
	return d.runner.Start(d.code, done)
}
