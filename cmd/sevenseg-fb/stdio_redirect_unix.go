//go:build unix

package main

import (
	"os"

	"golang.org/x/sys/unix"
)

// redirectStdIO sends stdout and stderr to the file named by the
// -stdio-log flag or SEVENSEG_STDIO_LOG. While the console sits in
// KD_GRAPHICS mode a panic would otherwise vanish with the text
// console, so the host dups the descriptors before touching the
// framebuffer.
func redirectStdIO(path string) error {
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	// Dup2 rather than reassigning os.Stdout: runtime-level output such
	// as panic stack traces bypasses the os.Stdout variable entirely.
	if err := unix.Dup2(int(f.Fd()), int(os.Stdout.Fd())); err != nil {
		return err
	}
	return unix.Dup2(int(f.Fd()), int(os.Stderr.Fd()))
}
