/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package runner executes generated code in an external interpreter off the UI thread
// and hands the result back through a Dispatcher.
package runner

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	applog "formdesigner/internal/log"
)

// ErrBusy is returned by Start while a previous run has not finished.
var ErrBusy = errors.New("runner: a run is already in progress")

// Dispatcher schedules fn on the thread that owns the UI state.
// Direct is enough for the CLI and tests; the desktop shell passes fyne.Do.
type Dispatcher func(fn func())

// Direct runs fn immediately on the calling goroutine.
func Direct(fn func()) { fn() }

// Result is the outcome of one run. Err is set when the interpreter could not be
// started or the script could not be written; a non-zero exit is not an error.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Duration time.Duration
	Err      error
}

// Runner launches one interpreter process at a time.
type Runner struct {
	Interpreter string
	// Args go before the script path.
	Args []string
	// Env is appended to the current environment.
	Env      []string
	Dispatch Dispatcher

	mu   sync.Mutex
	busy bool
	wg   sync.WaitGroup
}

// New returns a runner for interpreter that delivers results through d (Direct when nil).
func New(interpreter string, d Dispatcher) *Runner {
	if d == nil {
		d = Direct
	}
	return &Runner{Interpreter: interpreter, Dispatch: d}
}

// Busy reports whether a run is in flight.
func (r *Runner) Busy() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.busy
}

// Start writes code to a temp file and runs it on a new goroutine.
// done receives the Result through the Dispatcher exactly once.
func (r *Runner) Start(code string, done func(Result)) error {
	r.mu.Lock()
	if r.busy {
		r.mu.Unlock()
		return ErrBusy
	}
	r.busy = true
	r.wg.Add(1)
	r.mu.Unlock()

	go func() {
		defer r.wg.Done()
		res := r.run(code)
		r.mu.Lock()
		r.busy = false
		r.mu.Unlock()
		dispatch := r.Dispatch
		if dispatch == nil {
			dispatch = Direct
		}
		if done != nil {
			dispatch(func() { done(res) })
		}
	}()
	return nil
}

// Wait blocks until the current run, if any, has delivered its result.
func (r *Runner) Wait() { r.wg.Wait() }

func (r *Runner) run(code string) Result {
	l := applog.WithOperation(applog.WithComponent("runner"), "run")
	start := time.Now()

	dir, err := os.MkdirTemp("", "formdesigner-run-")
	if err != nil {
		return Result{ExitCode: -1, Err: fmt.Errorf("runner: temp dir: %w", err)}
	}
	defer func() { _ = os.RemoveAll(dir) }()
	script := filepath.Join(dir, "form.py")
	if err := os.WriteFile(script, []byte(code), 0o600); err != nil {
		return Result{ExitCode: -1, Err: fmt.Errorf("runner: write script: %w", err)}
	}

	interp := r.Interpreter
	if interp == "" {
		interp = "python3"
	}
	args := append(append([]string(nil), r.Args...), script)
	cmd := exec.Command(interp, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), r.Env...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	l.Info("starting interpreter", slog.String("interpreter", interp))
	err = cmd.Run()
	res := Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		res.ExitCode = 0
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
	default:
		res.ExitCode = -1
		res.Err = fmt.Errorf("runner: start %s: %w", interp, err)
	}
	l.Info("interpreter finished", slog.Int("exit", res.ExitCode), slog.Duration("took", res.Duration))
	return res
}
