//go:build fyne && cgo

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	fstorage "fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"formdesigner/internal/config"
	"formdesigner/internal/crash"
	"formdesigner/internal/design"
	"formdesigner/internal/designer"
	"formdesigner/internal/fonts"
	"formdesigner/internal/geom"
	applog "formdesigner/internal/log"
	"formdesigner/internal/runner"
	"formdesigner/internal/storage"
	"formdesigner/internal/telemetry"
	"formdesigner/internal/version"
)

// Run starts the desktop designer. store may be nil; preferences and code
// history are then kept for the session only.
func Run(cfg config.AppConfig, store *storage.Store) error {
	l := applog.WithComponent("ui")
	l.Info("starting UI")
	ctx := context.Background()

	fyneApp := app.NewWithID("formdesigner")
	w := fyneApp.NewWindow("Form Designer")
	winW, winH, ok, err := store.WindowSize(ctx)
	if err != nil && !errors.Is(err, storage.ErrNoStore) {
		l.Warn("read window size failed", slog.Any("err", err))
	}
	if !ok {
		winW, winH = 1200, 800
	}
	w.Resize(fyne.NewSize(float32(max(winW, 800)), float32(max(winH, 600))))

	status := widget.NewLabel("Ready")
	codeView := widget.NewMultiLineEntry()
	codeView.TextStyle = fyne.TextStyle{Monospace: true}
	codeView.Wrapping = fyne.TextWrapOff

	d := designer.New(cfg, designer.Deps{
		Store:    store,
		Fonts:    fonts.LoadSystem(),
		Events:   telemetry.Default(),
		Dispatch: fyne.Do,
		OnCode:   codeView.SetText,
	})
	defer crash.Recover(crash.Dir(), d)
	ctrl := d.Controller()

	dc := NewDesignCanvas(ctrl)
	var undoItem, redoItem *fyne.MenuItem
	var mainMenu *fyne.MainMenu
	syncChrome := func() {
		status.SetText(ctrl.Status())
		if mainMenu == nil {
			return
		}
		u, r := !ctrl.CanUndo(), !ctrl.CanRedo()
		if u != undoItem.Disabled || r != redoItem.Disabled {
			undoItem.Disabled, redoItem.Disabled = u, r
			mainMenu.Refresh()
		}
	}
	refresh := func() {
		dc.Refresh()
		syncChrome()
	}
	dc.OnChange = syncChrome
	editProps := func(id design.ID) {
		s, ok := ctrl.OpenPropertyEditor(id)
		if !ok {
			return
		}
		showPropertyDialog(w, s, refresh)
	}
	dc.OnEdit = editProps

	palette := newPalette(ctrl, dc, refresh)
	surfaceScroll := container.NewScroll(container.NewPadded(dc))
	codePane := container.NewBorder(widget.NewLabelWithStyle("Generated code", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}), nil, nil, nil, codeView)
	work := container.NewHSplit(surfaceScroll, codePane)
	work.SetOffset(0.6)
	split := container.NewHSplit(palette, work)
	split.SetOffset(0.18)
	w.SetContent(container.NewBorder(nil, status, nil, nil, split))

	w.Canvas().SetOnTypedKey(func(k *fyne.KeyEvent) {
		step := ctrl.Grid().Size
		if !ctrl.Grid().Enabled {
			step = 1
		}
		switch k.Name {
		case fyne.KeyDelete, fyne.KeyBackspace:
			ctrl.DeleteSelection()
		case fyne.KeyLeft:
			ctrl.MoveSelection(-step, 0)
		case fyne.KeyRight:
			ctrl.MoveSelection(step, 0)
		case fyne.KeyUp:
			ctrl.MoveSelection(0, -step)
		case fyne.KeyDown:
			ctrl.MoveSelection(0, step)
		case fyne.KeyReturn, fyne.KeyEnter:
			if id := ctrl.Model().SelectedID(); id != 0 {
				editProps(id)
			}
			return
		default:
			return
		}
		refresh()
	})

	showErr := func(op string, err error) {
		l.Error(op+" failed", slog.Any("err", err))
		dialog.ShowError(err, w)
	}
	saveTo := func(title, ext string, fn func(path string)) {
		fd := dialog.NewFileSave(func(uc fyne.URIWriteCloser, err error) {
			if err != nil {
				showErr(title, err)
				return
			}
			if uc == nil {
				return
			}
			path := uc.URI().Path()
			_ = uc.Close()
			if filepath.Ext(path) == "" {
				path += ext
			}
			fn(path)
			_ = store.SetPref(ctx, storage.PrefLastExport, filepath.Dir(path))
		}, w)
		fd.SetFileName("form" + ext)
		if dir, ok, _ := store.Pref(ctx, storage.PrefLastExport); ok {
			if lister, err := fstorage.ListerForURI(fstorage.NewFileURI(dir)); err == nil {
				fd.SetLocation(lister)
			}
		}
		fd.Show()
	}

	saveItem := fyne.NewMenuItem("Save Code…", func() {
		saveTo("save code", ".py", func(path string) {
			if err := d.SaveCode(ctx, path); err != nil {
				showErr("save code", err)
				return
			}
			status.SetText("Saved " + path)
		})
	})
	saveItem.Shortcut = &desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: fyne.KeyModifierShortcutDefault}
	exportItem := func(f designer.Format) *fyne.MenuItem {
		return fyne.NewMenuItem("Export "+strings.ToUpper(string(f))+"…", func() {
			saveTo("export", "."+string(f), func(path string) {
				if err := d.Export(f, path); err != nil {
					showErr("export", err)
					return
				}
				status.SetText("Exported " + path)
			})
		})
	}
	recentItem := fyne.NewMenuItem("Recent Files…", func() { showRecent(ctx, w, store) })
	historyItem := fyne.NewMenuItem("Code History…", func() { showHistory(ctx, w, store, codeView) })

	undoItem = fyne.NewMenuItem("Undo", func() { ctrl.Undo(); refresh() })
	undoItem.Shortcut = &desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault}
	redoItem = fyne.NewMenuItem("Redo", func() { ctrl.Redo(); refresh() })
	redoItem.Shortcut = &desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: fyne.KeyModifierShortcutDefault}
	deleteItem := fyne.NewMenuItem("Delete", func() { ctrl.DeleteSelection(); refresh() })
	propsItem := fyne.NewMenuItem("Properties…", func() {
		if id := ctrl.Model().SelectedID(); id != 0 {
			editProps(id)
		}
	})
	deselectItem := fyne.NewMenuItem("Select None", func() { ctrl.SelectNone(); refresh() })

	alignItem := func(e geom.Edge) *fyne.MenuItem {
		return fyne.NewMenuItem("Align "+edgeTitle(e), func() {
			if ctrl.AlignSelection(e) == 0 {
				status.SetText("Nothing to align")
				return
			}
			refresh()
		})
	}
	sameSizeItem := fyne.NewMenuItem("Make Same Size", func() { ctrl.MakeSameSize(); refresh() })
	snapItem := fyne.NewMenuItem("Snap to Grid", nil)
	snapItem.Checked = ctrl.Grid().Enabled
	snapItem.Action = func() {
		snapItem.Checked = !snapItem.Checked
		ctrl.SetSnap(snapItem.Checked)
		refresh()
	}
	gridItem := fyne.NewMenuItem("Grid Size…", func() {
		e := widget.NewEntry()
		e.SetText(strconv.FormatFloat(ctrl.Grid().Size, 'f', -1, 64))
		dialog.ShowForm("Grid Size", "Apply", "Cancel", []*widget.FormItem{widget.NewFormItem("Pixels", e)}, func(ok bool) {
			if !ok {
				return
			}
			if n, err := strconv.ParseFloat(strings.TrimSpace(e.Text), 64); err == nil {
				ctrl.SetGridSize(n)
				refresh()
			}
		}, w)
	})
	formSizeItem := fyne.NewMenuItem("Form Size…", func() {
		fw, fh := ctrl.FormSize()
		we, he := widget.NewEntry(), widget.NewEntry()
		we.SetText(strconv.Itoa(int(fw)))
		he.SetText(strconv.Itoa(int(fh)))
		dialog.ShowForm("Form Size", "Apply", "Cancel", []*widget.FormItem{
			widget.NewFormItem("Width", we),
			widget.NewFormItem("Height", he),
		}, func(ok bool) {
			if !ok {
				return
			}
			nw, err1 := strconv.Atoi(strings.TrimSpace(we.Text))
			nh, err2 := strconv.Atoi(strings.TrimSpace(he.Text))
			if err1 != nil || err2 != nil || !ctrl.ResizeForm(float64(nw), float64(nh)) {
				dialog.ShowInformation("Form Size", "Width and height must be positive whole numbers.", w)
				return
			}
			refresh()
		}, w)
	})

	runItem := fyne.NewMenuItem("Run Code", func() {
		err := d.Run(func(res runner.Result) { showRunResult(w, res) })
		if errors.Is(err, runner.ErrBusy) {
			status.SetText("A run is already in progress")
			return
		}
		if err != nil {
			showErr("run", err)
			return
		}
		status.SetText("Running…")
	})
	runItem.Shortcut = &desktop.CustomShortcut{KeyName: fyne.KeyR, Modifier: fyne.KeyModifierShortcutDefault}
	sampleItem := fyne.NewMenuItem("Insert Sample Form", func() { designer.BuildSample(ctrl); refresh() })
	aboutItem := fyne.NewMenuItem("About", func() {
		dialog.ShowInformation("About", "Form Designer "+version.String(), w)
	})

	mainMenu = fyne.NewMainMenu(
		fyne.NewMenu("File", saveItem, fyne.NewMenuItemSeparator(), exportItem(designer.FormatPDF), exportItem(designer.FormatPNG), exportItem(designer.FormatSVG), fyne.NewMenuItemSeparator(), recentItem, historyItem),
		fyne.NewMenu("Edit", undoItem, redoItem, fyne.NewMenuItemSeparator(), deleteItem, propsItem, deselectItem),
		fyne.NewMenu("Format", alignItem(geom.EdgeLeft), alignItem(geom.EdgeRight), alignItem(geom.EdgeTop), alignItem(geom.EdgeBottom), sameSizeItem, fyne.NewMenuItemSeparator(), snapItem, gridItem, formSizeItem),
		fyne.NewMenu("Run", runItem, sampleItem),
		fyne.NewMenu("Help", aboutItem),
	)
	w.SetMainMenu(mainMenu)
	for _, it := range []*fyne.MenuItem{saveItem, undoItem, redoItem, runItem} {
		if sc, ok := it.Shortcut.(*desktop.CustomShortcut); ok {
			item := it
			w.Canvas().AddShortcut(sc, func(fyne.Shortcut) { item.Action() })
		}
	}
	refresh()

	w.SetCloseIntercept(func() {
		sz := w.Canvas().Size()
		if err := store.SetWindowSize(ctx, int(sz.Width), int(sz.Height)); err != nil && !errors.Is(err, storage.ErrNoStore) {
			l.Warn("save window size failed", slog.Any("err", err))
		}
		if _, err := d.Snapshot(ctx, "session"); err != nil && !errors.Is(err, storage.ErrNoStore) {
			l.Warn("snapshot failed", slog.Any("err", err))
		}
		d.Runner().Wait()
		w.Close()
	})

	showWelcome(ctx, w, store, cfg.General.ShowWelcome)
	w.ShowAndRun()
	l.Info("UI closed")
	return nil
}

func showWelcome(ctx context.Context, w fyne.Window, store *storage.Store, def bool) {
	on, err := store.BoolPref(ctx, storage.PrefShowWelcome, def)
	if err != nil && !errors.Is(err, storage.ErrNoStore) {
		on = def
	}
	if !on {
		return
	}
	msg := widget.NewLabel("Drag controls from the toolbox onto the form.\nDouble-click a control to edit its properties.\nThe generated Python code updates as you work.")
	again := widget.NewCheck("Show this at startup", nil)
	again.Checked = true
	dialog.ShowCustom("Welcome to Form Designer", "Start", container.NewVBox(msg, again), w)
	again.OnChanged = func(v bool) { _ = store.SetBoolPref(ctx, storage.PrefShowWelcome, v) }
}

func showRecent(ctx context.Context, w fyne.Window, store *storage.Store) {
	files, err := store.RecentFiles(ctx)
	if err != nil && !errors.Is(err, storage.ErrNoStore) {
		dialog.ShowError(err, w)
		return
	}
	if len(files) == 0 {
		dialog.ShowInformation("Recent Files", "No files saved yet.", w)
		return
	}
	dialog.ShowInformation("Recent Files", strings.Join(files, "\n"), w)
}

func showHistory(ctx context.Context, w fyne.Window, store *storage.Store, view *widget.Entry) {
	entries, err := store.ListCode(ctx, 50)
	if err != nil && !errors.Is(err, storage.ErrNoStore) {
		dialog.ShowError(err, w)
		return
	}
	if len(entries) == 0 {
		dialog.ShowInformation("Code History", "No code has been saved yet.", w)
		return
	}
	preview := widget.NewMultiLineEntry()
	preview.TextStyle = fyne.TextStyle{Monospace: true}
	list := widget.NewList(
		func() int { return len(entries) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(i widget.ListItemID, o fyne.CanvasObject) {
			e := entries[i]
			o.(*widget.Label).SetText(fmt.Sprintf("%s  %s", e.TS.Local().Format("2006-01-02 15:04"), e.Label))
		},
	)
	list.OnSelected = func(i widget.ListItemID) { preview.SetText(entries[i].Text) }
	split := container.NewHSplit(list, preview)
	split.SetOffset(0.35)
	d := dialog.NewCustom("Code History", "Close", split, w)
	d.Resize(fyne.NewSize(900, 560))
	d.Show()
}

func showRunResult(w fyne.Window, res runner.Result) {
	var b strings.Builder
	if res.Err != nil {
		fmt.Fprintf(&b, "Could not start: %v\n", res.Err)
	} else {
		fmt.Fprintf(&b, "Exit code %d after %s\n", res.ExitCode, res.Duration.Round(time.Millisecond))
	}
	if s := strings.TrimSpace(res.Stdout); s != "" {
		b.WriteString("\nOutput:\n" + s + "\n")
	}
	if s := strings.TrimSpace(res.Stderr); s != "" {
		b.WriteString("\nErrors:\n" + s + "\n")
	}
	out := widget.NewMultiLineEntry()
	out.TextStyle = fyne.TextStyle{Monospace: true}
	out.SetText(b.String())
	d := dialog.NewCustom("Run Result", "Close", out, w)
	d.Resize(fyne.NewSize(640, 420))
	d.Show()
}

func edgeTitle(e geom.Edge) string {
	s := e.String()
	return strings.ToUpper(s[:1]) + s[1:]
}
