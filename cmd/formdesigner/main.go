/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"formdesigner/internal/catalog"
	"formdesigner/internal/config"
	"formdesigner/internal/crash"
	"formdesigner/internal/designer"
	"formdesigner/internal/fonts"
	applog "formdesigner/internal/log"
	"formdesigner/internal/propedit"
	"formdesigner/internal/props"
	"formdesigner/internal/runner"
	"formdesigner/internal/storage"
	"formdesigner/internal/telemetry"
	"formdesigner/internal/ui"
	"formdesigner/internal/version"
)

func usage() {
	fmt.Println("Form Designer")
	fmt.Printf("Version: %s\n", version.String())
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  formdesigner version|-v|--version          Show version")
	fmt.Println("  formdesigner palette [filter]               List the toolbox controls, optionally filtered")
	fmt.Println("  formdesigner props <type> [--alpha] [q]     Show the default properties of a control type")
	fmt.Println("  formdesigner demo [-o file]                 Build the sample form and print or save its code")
	fmt.Println("  formdesigner export pdf|png|svg <out>       Write a wireframe of the sample form")
	fmt.Println("  formdesigner history [n]                    List saved code history")
	fmt.Println("  formdesigner run                            Run the sample form's code in the configured interpreter")
	fmt.Println("  formdesigner ui                             Launch desktop UI (build with -tags fyne for full UI)")
}

func main() {
	cfg, cfgErr := config.Load()
	applog.Init(cfg.LogOptions())
	l := applog.WithComponent("cli")
	if cfgErr != nil {
		l.Warn("config load failed, using defaults", slog.Any("err", cfgErr))
	}
	telemetry.NewDefault(telemetry.FromEnv().WithOptIn(cfg.General.TelemetryOptIn))

	ctx := context.Background()
	var store *storage.Store
	openStore := func() *storage.Store {
		path, err := storage.DefaultPath()
		if err != nil {
			l.Warn("no data directory, history disabled", slog.Any("err", err))
			return nil
		}
		s, rebuilt, err := storage.OpenOrRebuild(ctx, path)
		if err != nil {
			l.Warn("open store failed, history disabled", slog.Any("err", err))
			return nil
		}
		if rebuilt {
			fmt.Fprintln(os.Stderr, "Local store was damaged and has been rebuilt; a backup was kept next to it.")
		}
		store = s
		return s
	}
	src := &sessionCode{}
	defer crash.Recover(crash.Dir(), src)
	defer func() {
		if store != nil {
			_ = store.Close()
		}
	}()
	newDesigner := func(withStore bool) *designer.Designer {
		deps := designer.Deps{Events: telemetry.Default(), Dispatch: runner.Direct}
		if withStore {
			deps.Store = openStore()
		}
		d := designer.New(cfg, deps)
		src.d = d
		return d
	}

	args := os.Args
	l.Debug("start", slog.Int("args", len(args)))
	if len(args) < 2 {
		usage()
		return
	}
	switch args[1] {
	case "version", "--version", "-v":
		fmt.Println("Form Designer")
		fmt.Println(version.String())
	case "palette":
		var q string
		if len(args) >= 3 {
			q = args[2]
		}
		printPalette(q)
	case "props":
		if len(args) < 3 {
			fmt.Println("props requires <type>")
			usage()
			os.Exit(2)
		}
		alpha := false
		var q string
		for _, a := range args[3:] {
			if a == "--alpha" {
				alpha = true
				continue
			}
			q = a
		}
		printProps(catalog.Type(args[2]), alpha, q)
	case "demo":
		var out string
		if len(args) >= 4 && args[2] == "-o" {
			out = args[3]
		} else if len(args) == 3 {
			fmt.Println("demo: -o requires a file")
			os.Exit(2)
		}
		d := newDesigner(out != "")
		designer.BuildSample(d.Controller())
		if out == "" {
			fmt.Print(d.Code())
			return
		}
		if err := d.SaveCode(ctx, out); err != nil {
			l.Error("save failed", slog.Any("err", err))
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		fmt.Println("Wrote", out)
	case "export":
		if len(args) < 4 {
			fmt.Println("export requires <format> and <out>")
			usage()
			os.Exit(2)
		}
		f, err := designer.ParseFormat(args[2])
		if err != nil {
			fmt.Println("Error:", err)
			os.Exit(2)
		}
		d := newDesigner(false)
		designer.BuildSample(d.Controller())
		if err := d.Export(f, args[3]); err != nil {
			l.Error("export failed", slog.Any("err", err))
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		fmt.Println("Exported", args[3])
	case "history":
		limit := 20
		if len(args) >= 3 {
			if _, err := fmt.Sscanf(args[2], "%d", &limit); err != nil || limit <= 0 {
				fmt.Println("history: n must be a positive number")
				os.Exit(2)
			}
		}
		if err := printHistory(ctx, openStore(), limit); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	case "run":
		d := newDesigner(false)
		designer.BuildSample(d.Controller())
		var res runner.Result
		if err := d.Run(func(r runner.Result) { res = r }); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		d.Runner().Wait()
		os.Stdout.WriteString(res.Stdout)
		os.Stderr.WriteString(res.Stderr)
		if res.Err != nil {
			fmt.Println("Error:", res.Err)
			os.Exit(1)
		}
		l.Info("run finished", slog.Int("exit", res.ExitCode), slog.Duration("took", res.Duration))
		if res.ExitCode != 0 {
			os.Exit(res.ExitCode)
		}
	case "ui":
		if err := ui.Run(cfg, openStore()); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	default:
		usage()
	}
}

// sessionCode hands the crash handler whichever designer the command built.
type sessionCode struct{ d *designer.Designer }

func (s *sessionCode) Code() string {
	if s.d == nil {
		return ""
	}
	return s.d.Code()
}

func printPalette(q string) {
	cats := catalog.Filter(q)
	if len(cats) == 0 {
		fmt.Println("No matching controls.")
		return
	}
	for _, c := range cats {
		fmt.Println(c.Name)
		for _, t := range c.Types {
			w, h := catalog.DefaultSize(t)
			fmt.Printf("  %-20s %s (%gx%g) -> %s\n", t, catalog.ClassOf(t), w, h, catalog.QualifiedConstruct(t))
		}
	}
}

func printProps(t catalog.Type, alpha bool, q string) {
	s := propedit.Open(t, props.Defaults(t), fonts.NewLibrary().Families(), nil)
	if alpha {
		s.SetView(propedit.Alphabetical)
	}
	s.SetSearch(q)
	fmt.Println(s.Title())
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer tw.Flush()
	if s.View() == propedit.Alphabetical {
		for _, r := range s.Rows() {
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", r.Name, r.Value, r.Kind)
		}
		return
	}
	for _, sec := range s.Sections() {
		fmt.Fprintf(tw, "%s\t\t\n", sec.Name)
		for _, r := range sec.Rows {
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", r.Name, r.Value, r.Kind)
		}
	}
}

func printHistory(ctx context.Context, s *storage.Store, limit int) error {
	entries, err := s.ListCode(ctx, limit)
	if errors.Is(err, storage.ErrNoStore) {
		fmt.Println("No local store available.")
		return nil
	}
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No code saved yet.")
		return nil
	}
	for _, e := range entries {
		lines := strings.Count(e.Text, "\n")
		fmt.Printf("%4d  %s  %-24s %d lines\n", e.ID, e.TS.Local().Format(time.DateTime), e.Label, lines)
	}
	return nil
}
