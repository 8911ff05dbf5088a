package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/x/ansi"
)

func TestRenderStatusBarPadsToWidth(t *testing.T) {
	bar := renderStatusBar(40, "Counted 3")
	if got := ansi.StringWidth(bar); got != 40 {
		t.Fatalf("status bar width = %d, want 40", got)
	}
	if !strings.Contains(bar, "Counted 3") {
		t.Fatalf("status bar missing message: %q", bar)
	}
}

func TestRenderStatusBarDefaultsToReady(t *testing.T) {
	bar := renderStatusBar(20, "   ")
	if !strings.Contains(bar, "Ready") {
		t.Fatalf("empty status should render Ready, got %q", bar)
	}
}

func TestRenderFooterSkipsDisabledBindings(t *testing.T) {
	keys := newKeyMap()
	keys.Reset.SetEnabled(false)
	footer := renderFooter(80, keys.ShortHelp())
	if strings.Contains(footer, "reset") {
		t.Fatalf("disabled binding leaked into footer: %q", footer)
	}
	if !strings.Contains(footer, "count one") || !strings.Contains(footer, "quit") {
		t.Fatalf("footer missing enabled bindings: %q", footer)
	}
}

func TestRenderFooterEmpty(t *testing.T) {
	footer := renderFooter(30, []key.Binding{})
	if !strings.Contains(footer, "No shortcuts") {
		t.Fatalf("empty footer should show placeholder, got %q", footer)
	}
}
