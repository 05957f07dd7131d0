/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package fonts discovers font families for the font dialog and resolves
// faces for wireframe rendering. The Go font family is always available.
package fonts

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	applog "formdesigner/internal/log"
	"formdesigner/internal/props"
)

type key struct {
	bold, italic bool
}

// Library maps family names to their loaded styles.
type Library struct {
	families map[string]map[key]*opentype.Font
}

// NewLibrary returns a library preloaded with the Go fonts.
func NewLibrary() *Library {
	l := &Library{families: map[string]map[key]*opentype.Font{}}
	builtin := []struct {
		family       string
		bold, italic bool
		data         []byte
	}{
		{"Go", false, false, goregular.TTF},
		{"Go", true, false, gobold.TTF},
		{"Go", false, true, goitalic.TTF},
		{"Go", true, true, gobolditalic.TTF},
		{"Go Mono", false, false, gomono.TTF},
		{"Go Mono", true, false, gomonobold.TTF},
		{"Go Mono", false, true, gomonoitalic.TTF},
		{"Go Mono", true, true, gomonobolditalic.TTF},
	}
	for _, b := range builtin {
		f, err := opentype.Parse(b.data)
		if err != nil {
			continue
		}
		l.add(b.family, key{b.bold, b.italic}, f)
	}
	return l
}

func (l *Library) add(family string, k key, f *opentype.Font) {
	m := l.families[family]
	if m == nil {
		m = map[key]*opentype.Font{}
		l.families[family] = m
	}
	if _, exists := m[k]; !exists {
		m[k] = f
	}
}

// LoadFile parses one TrueType/OpenType file and registers it under the
// family and style recorded in its name table.
func (l *Library) LoadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read font %s: %w", path, err)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return "", fmt.Errorf("parse font %s: %w", path, err)
	}
	var buf sfnt.Buffer
	family, err := f.Name(&buf, sfnt.NameIDFamily)
	if err != nil || strings.TrimSpace(family) == "" {
		family = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	sub, _ := f.Name(&buf, sfnt.NameIDSubfamily)
	sub = strings.ToLower(sub)
	k := key{
		bold:   strings.Contains(sub, "bold"),
		italic: strings.Contains(sub, "italic") || strings.Contains(sub, "oblique"),
	}
	l.add(family, k, f)
	return family, nil
}

// LoadDir registers every .ttf/.otf file below dir. Unreadable files are
// skipped and logged; a missing directory is not an error.
func (l *Library) LoadDir(dir string) (int, error) {
	log := applog.WithComponent("fonts")
	n := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
				return nil
			}
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".ttf", ".otf":
		default:
			return nil
		}
		if _, err := l.LoadFile(path); err != nil {
			log.Debug("skip font", slog.String("path", path), slog.Any("err", err))
			return nil
		}
		n++
		return nil
	})
	return n, err
}

// Families lists the known family names sorted, with the toolkit default
// font name included.
func (l *Library) Families() []string {
	out := []string{props.DefaultFontFamily}
	for name := range l.families {
		if name != props.DefaultFontFamily {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// Has reports whether family is loaded.
func (l *Library) Has(family string) bool {
	_, ok := l.families[family]
	return ok
}

// Face resolves f to a drawable face at the given DPI (72 when zero).
// Unknown families and the toolkit default fall back to Go; a missing style
// falls back to the family's regular face.
func (l *Library) Face(f props.Font, dpi float64) (font.Face, error) {
	if dpi <= 0 {
		dpi = 72
	}
	size := float64(f.Size)
	if size <= 0 {
		size = 10
	}
	fam := l.families[f.Family]
	if fam == nil {
		fam = l.families["Go"]
	}
	otf := fam[key{f.Bold(), f.Italic()}]
	if otf == nil {
		otf = fam[key{}]
	}
	if otf == nil {
		for _, v := range fam {
			otf = v
			break
		}
	}
	if otf == nil {
		return nil, fmt.Errorf("fonts: no face for %q", f.Family)
	}
	return opentype.NewFace(otf, &opentype.FaceOptions{Size: size, DPI: dpi, Hinting: font.HintingFull})
}
