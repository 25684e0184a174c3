//go:build !unix

package main

import "os"

// redirectStdIO reassigns os.Stdout/os.Stderr on platforms without
// Dup2. This misses runtime-level output (panic stack traces), but the
// graphics-mode console switch this guards against is Linux-only
// anyway; the fallback just keeps the host building elsewhere.
func redirectStdIO(path string) error {
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	os.Stdout = f
	os.Stderr = f
	return nil
}
