/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package storage

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// BackupsDirName is the folder, next to a written file, that keeps its previous versions.
const BackupsDirName = ".formdesigner-backups"

// WriteCode writes generated code to path with transactional semantics:
// the previous file (if any) is copied to a timestamped backup, the new text is
// written to a temp file in the same directory and renamed over the target.
func WriteCode(path, text string) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("target path is required")
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("ensure target dir: %w", err)
	}
	if _, statErr := os.Stat(path); statErr == nil {
		if _, err := backupFile(path); err != nil {
			return fmt.Errorf("backup current file: %w", err)
		}
	}

	base := filepath.Base(path)
	temp := filepath.Join(dir, fmt.Sprintf(".%s.tmp-%d-%d", base, os.Getpid(), rand.Int()))
	if werr := writeFileSync(temp, []byte(text)); werr != nil {
		_ = os.Remove(temp)
		return fmt.Errorf("write temp file: %w", werr)
	}
	// Windows cannot rename over an existing file.
	if _, err := os.Stat(path); err == nil {
		_ = os.Remove(path)
	}
	if rerr := os.Rename(temp, path); rerr != nil {
		_ = os.Remove(temp)
		return fmt.Errorf("replace %s: %w", base, rerr)
	}
	return nil
}

// Backups lists the backups WriteCode kept for path, oldest first.
func Backups(path string) ([]string, error) {
	bdir := filepath.Join(filepath.Dir(path), BackupsDirName)
	ents, err := os.ReadDir(bdir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read backups dir: %w", err)
	}
	prefix := filepath.Base(path) + "."
	var out []string
	for _, e := range ents {
		name := e.Name()
		if strings.HasPrefix(name, prefix) && strings.HasSuffix(name, ".bak") {
			out = append(out, filepath.Join(bdir, name))
		}
	}
	sort.Strings(out) // timestamp in name yields lexicographic order
	return out, nil
}

// RestoreLatestBackup returns the text of the newest backup of path.
func RestoreLatestBackup(path string) (string, error) {
	list, err := Backups(path)
	if err != nil {
		return "", err
	}
	if len(list) == 0 {
		return "", errors.New("no backups found")
	}
	b, err := os.ReadFile(list[len(list)-1])
	if err != nil {
		return "", fmt.Errorf("read latest backup: %w", err)
	}
	return string(b), nil
}

func backupFile(path string) (string, error) {
	bdir := filepath.Join(filepath.Dir(path), BackupsDirName)
	stamp := time.Now().Format("20060102-150405.000000000")
	bpath := filepath.Join(bdir, fmt.Sprintf("%s.%s.bak", filepath.Base(path), stamp))
	return bpath, copyFile(path, bpath)
}

// writeFileSync writes data to a file, ensures it is flushed to disk.
func writeFileSync(path string, data []byte) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if _, err := f.Write(data); err != nil {
		return err
	}
	return f.Sync()
}

// copyFile copies a file from src to dst (overwrites dst if exists).
func copyFile(src, dst string) (err error) {
	sf, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := sf.Close(); err == nil {
			err = cerr
		}
	}()
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	df, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := df.Close(); err == nil {
			err = cerr
		}
	}()
	if _, err := io.Copy(df, sf); err != nil {
		return err
	}
	return df.Sync()
}
