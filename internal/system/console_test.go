package system

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteVT(t *testing.T) {
	dir := t.TempDir()
	tty := filepath.Join(dir, "tty")
	if err := os.WriteFile(tty, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	missing := filepath.Join(dir, "missing")
	if err := writeVT([]string{missing, tty}, escHideCursor); err != nil {
		t.Fatalf("writeVT: %v", err)
	}
	got, err := os.ReadFile(tty)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != escHideCursor {
		t.Errorf("wrote %q, want %q", got, escHideCursor)
	}

	if err := writeVT([]string{missing}, escShowCursor); !errors.Is(err, ErrNoConsole) {
		t.Errorf("missing console err = %v", err)
	}
	if err := writeVT(nil, escShowCursor); !errors.Is(err, ErrNoConsole) {
		t.Errorf("no paths err = %v", err)
	}
}

func TestConsoleOnPlainFile(t *testing.T) {
	tty := filepath.Join(t.TempDir(), "tty")
	if err := os.WriteFile(tty, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	c := &Console{Paths: []string{tty}}

	// A regular file accepts the cursor escape but not KDSETMODE.
	if err := c.Enter(); !errors.Is(err, ErrNoConsole) {
		t.Errorf("Enter err = %v", err)
	}
	if c.Graphics() {
		t.Error("graphics mode reported after failed ioctl")
	}
	if err := c.Restore(); err != nil {
		t.Errorf("Restore err = %v", err)
	}
	got, _ := os.ReadFile(tty)
	// The file is reopened without O_APPEND, so the show escape overwrites the hide one.
	if string(got) != escShowCursor {
		t.Errorf("tty contents = %q", got)
	}
}
