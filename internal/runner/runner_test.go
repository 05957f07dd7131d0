/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package runner

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"
)

// TestHelperProcess acts as a fake interpreter: it echoes the script to stdout.
// A script containing "fail" exits with code 3 after writing to stderr.
func TestHelperProcess(t *testing.T) {
	if os.Getenv("FD_WANT_HELPER_PROCESS") != "1" {
		return
	}
	script := os.Args[len(os.Args)-1]
	b, err := os.ReadFile(script)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(4)
	}
	if strings.Contains(string(b), "slow") {
		time.Sleep(300 * time.Millisecond)
	}
	fmt.Print(string(b))
	if strings.Contains(string(b), "fail") {
		fmt.Fprint(os.Stderr, "Traceback: boom")
		os.Exit(3)
	}
	os.Exit(0)
}

func fakeRunner(d Dispatcher) *Runner {
	r := New(os.Args[0], d)
	r.Args = []string{"-test.run=TestHelperProcess", "--"}
	r.Env = []string{"FD_WANT_HELPER_PROCESS=1"}
	return r
}

func waitResult(t *testing.T, ch <-chan Result) Result {
	t.Helper()
	select {
	case res := <-ch:
		return res
	case <-time.After(10 * time.Second):
		t.Fatalf("timed out waiting for result")
		return Result{}
	}
}

func TestStartDeliversOutput(t *testing.T) {
	ch := make(chan Result, 1)
	r := fakeRunner(nil)
	if err := r.Start("print('hello')", func(res Result) { ch <- res }); err != nil {
		t.Fatalf("Start: %v", err)
	}
	res := waitResult(t, ch)
	if res.Err != nil || res.ExitCode != 0 {
		t.Fatalf("result = %+v", res)
	}
	if res.Stdout != "print('hello')" {
		t.Fatalf("stdout = %q", res.Stdout)
	}
}

func TestStartReportsExitCode(t *testing.T) {
	ch := make(chan Result, 1)
	r := fakeRunner(nil)
	if err := r.Start("fail()", func(res Result) { ch <- res }); err != nil {
		t.Fatalf("Start: %v", err)
	}
	res := waitResult(t, ch)
	if res.Err != nil {
		t.Fatalf("non-zero exit is not an error: %v", res.Err)
	}
	if res.ExitCode != 3 || !strings.Contains(res.Stderr, "Traceback") {
		t.Fatalf("result = %+v", res)
	}
}

func TestStartWhileBusy(t *testing.T) {
	ch := make(chan Result, 1)
	r := fakeRunner(nil)
	if err := r.Start("slow", func(res Result) { ch <- res }); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := r.Start("second", nil); !errors.Is(err, ErrBusy) {
		t.Fatalf("second Start = %v, want ErrBusy", err)
	}
	waitResult(t, ch)
	r.Wait()
	if r.Busy() {
		t.Fatalf("runner still busy after completion")
	}
	if err := r.Start("third", nil); err != nil {
		t.Fatalf("Start after completion: %v", err)
	}
	r.Wait()
}

func TestMissingInterpreter(t *testing.T) {
	ch := make(chan Result, 1)
	r := New("formdesigner-no-such-interpreter", nil)
	if err := r.Start("x", func(res Result) { ch <- res }); err != nil {
		t.Fatalf("Start: %v", err)
	}
	res := waitResult(t, ch)
	if res.Err == nil || res.ExitCode != -1 {
		t.Fatalf("expected start error, got %+v", res)
	}
}

func TestDispatcherReceivesCallback(t *testing.T) {
	queue := make(chan func(), 1)
	r := fakeRunner(func(fn func()) { queue <- fn })
	got := ""
	if err := r.Start("queued", func(res Result) { got = res.Stdout }); err != nil {
		t.Fatalf("Start: %v", err)
	}
	var fn func()
	select {
	case fn = <-queue:
	case <-time.After(10 * time.Second):
		t.Fatalf("dispatcher never called")
	}
	if got != "" {
		t.Fatalf("callback ran before dispatch")
	}
	fn()
	if got != "queued" {
		t.Fatalf("callback result = %q", got)
	}
}
