//go:build unix

package main

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// redirectStdIO points fd 1 and 2 at path, so runtime panics from any
// goroutine land in the log while the console shows graphics.
func redirectStdIO(path string) error {
	f, err := openStdioLog(path)
	if err != nil || f == nil {
		return err
	}
	defer f.Close()

	for _, std := range []*os.File{os.Stdout, os.Stderr} {
		if err := unix.Dup2(int(f.Fd()), int(std.Fd())); err != nil {
			return fmt.Errorf("dup2 %s: %w", std.Name(), err)
		}
	}
	return nil
}

func openStdioLog(path string) (*os.File, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(f, "--- guibridge-diag pid %d started %s\n", os.Getpid(), time.Now().Format(time.RFC3339))
	return f, nil
}
