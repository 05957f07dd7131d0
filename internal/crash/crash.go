/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package crash turns a panic at the process edge into a crash report plus an autosave of the generated code.
package crash

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	applog "formdesigner/internal/log"
	"formdesigner/internal/storage"
	"formdesigner/internal/telemetry"
	"formdesigner/internal/version"
)

// CrashDirName is the folder under the data directory that receives reports and autosaves.
const CrashDirName = "crash"

// CodeSource supplies the most recently generated code buffer.
type CodeSource interface {
	Code() string
}

// exitFn is used to allow testing of Recover without terminating the test process.
var exitFn = os.Exit

// Recover captures a panic, logs an error with stacktrace,
// writes an error report file into dir (temp dir when empty),
// and autosaves the last generated code of src next to it.
//
// Usage: defer crash.Recover(dir, controller)
func Recover(dir string, src CodeSource) {
	if r := recover(); r != nil {
		l := applog.WithComponent("crash")
		stack := debug.Stack()
		l.Error("panic recovered", slog.Any("panic", r), slog.String("stack", string(stack)))

		reportPath, err := writeReport(dir, r, stack)
		if err != nil {
			l.Error("write crash report failed", slog.Any("err", err))
		}
		if src != nil {
			if path, err := autosave(filepath.Dir(reportPath), src); err != nil {
				l.Error("autosave generated code failed", slog.Any("err", err))
			} else if path != "" {
				l.Info("generated code autosaved", slog.String("path", path))
			}
		}

		if _, err := fmt.Fprintf(os.Stderr, "A fatal error occurred. A crash report was saved to: %s\n", reportPath); err != nil {
			l.Error("failed to write crash message to stderr", slog.Any("err", err))
		}
		if _, err := fmt.Fprintf(os.Stderr, "Version: %s\nOS/Arch: %s/%s\n", version.String(), runtime.GOOS, runtime.GOARCH); err != nil {
			l.Error("failed to write version info to stderr", slog.Any("err", err))
		}
		exitFn(2)
	}
}

// autosave writes the code buffer to autosave-<stamp>.py; an empty buffer writes nothing.
func autosave(dir string, src CodeSource) (string, error) {
	code := src.Code()
	if strings.TrimSpace(code) == "" {
		return "", nil
	}
	stamp := time.Now().Format("20060102-150405")
	path := filepath.Join(dir, fmt.Sprintf("autosave-%s.py", stamp))
	if err := storage.WriteCode(path, code); err != nil {
		return "", err
	}
	return path, nil
}

func writeReport(dir string, panicVal any, stack []byte) (string, error) {
	if dir == "" {
		dir = os.TempDir()
	}
	_ = os.MkdirAll(dir, 0o755)
	stamp := time.Now().Format("20060102-150405")
	path := filepath.Join(dir, fmt.Sprintf("crash-%s.log", stamp))

	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return path, err
	}
	defer func() {
		if err := f.Close(); err != nil {
			applog.WithComponent("crash").Error("failed to close crash report file", slog.Any("err", err), slog.String("path", path))
		}
	}()

	var buf bytes.Buffer
	_, _ = fmt.Fprintf(&buf, "Form Designer Crash Report\n")
	_, _ = fmt.Fprintf(&buf, "Timestamp: %s\n", time.Now().Format(time.RFC3339))
	_, _ = fmt.Fprintf(&buf, "Version: %s\n", version.String())
	_, _ = fmt.Fprintf(&buf, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	_, _ = fmt.Fprintf(&buf, "\nPanic: %v\n\n", panicVal)
	_, _ = fmt.Fprintf(&buf, "Stack:\n%s\n", string(stack))

	if _, err := f.Write(buf.Bytes()); err != nil {
		return path, err
	}
	_ = f.Sync()

	// optional upload, opt-in only
	telemetry.UploadCrash(buf.Bytes())
	return path, nil
}

// Dir returns the crash folder under the designer data directory.
func Dir() string {
	base, err := storage.DataDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, CrashDirName)
}
