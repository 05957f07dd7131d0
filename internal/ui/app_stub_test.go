//go:build !fyne

package ui

import (
	"strings"
	"testing"

	"formdesigner/internal/config"
)

func TestRunStub_PointsAtFyneBuild(t *testing.T) {
	err := Run(config.Defaults(), nil)
	if err == nil {
		t.Fatal("expected error from Run() in non-fyne build, got nil")
	}
	msg := err.Error()
	for _, want := range []string{"UI not built", "-tags fyne", "./cmd/formdesigner"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("error %q does not mention %q", msg, want)
		}
	}
}
