// Package console switches the active virtual terminal in and out of
// graphics mode so the framebuffer host renders without a blinking
// hardware cursor on top of the clock.
package console

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/pixelhaus/sevenseg/internal/logging"
)

// KD console modes from linux/kd.h
const (
	kdText     = 0x00
	kdGraphics = 0x01
	kdSetMode  = 0x4B3A // KDSETMODE ioctl
)

// SetGraphicsMode switches the active console to graphics mode.
// It prefers /dev/tty (the active VT) and falls back to /dev/tty0.
func SetGraphicsMode() error { return setMode(kdGraphics, "KD_GRAPHICS") }

// RestoreTextMode returns the console to text mode.
func RestoreTextMode() error { return setMode(kdText, "KD_TEXT") }

func setMode(mode int, name string) error {
	var lastErr error
	for _, path := range []string{"/dev/tty", "/dev/tty0"} {
		fd, err := unix.Open(path, unix.O_RDONLY, 0)
		if err != nil {
			lastErr = fmt.Errorf("open %s: %w", path, err)
			continue
		}
		err = unix.IoctlSetInt(fd, kdSetMode, mode)
		unix.Close(fd)
		if err != nil {
			lastErr = fmt.Errorf("%s on %s: %w", name, path, err)
			continue
		}
		return nil
	}
	return lastErr
}

// HideCursor writes the ANSI escape to hide the cursor on the active VT.
func HideCursor() error { return writeVT("\x1b[?25l") }

// ShowCursor makes the cursor visible again.
func ShowCursor() error { return writeVT("\x1b[?25h") }

func writeVT(s string) error {
	var lastErr error
	for _, path := range []string{"/dev/tty", "/dev/tty0"} {
		f, err := os.OpenFile(path, os.O_WRONLY, 0)
		if err != nil {
			lastErr = err
			continue
		}
		_, err = f.WriteString(s)
		f.Close()
		if err == nil {
			return nil
		}
		lastErr = err
	}
	return fmt.Errorf("write VT: %w", lastErr)
}

// SetGraphicsModeWithLog wraps SetGraphicsMode with component logging.
func SetGraphicsModeWithLog(l logging.Logger) error {
	err := SetGraphicsMode()
	logResult(l, "KD_GRAPHICS", err)
	return err
}

// RestoreTextModeWithLog wraps RestoreTextMode with component logging.
func RestoreTextModeWithLog(l logging.Logger) error {
	err := RestoreTextMode()
	logResult(l, "KD_TEXT", err)
	return err
}

func logResult(l logging.Logger, what string, err error) {
	if l == nil {
		return
	}
	if err != nil {
		l.Errorf("tty", "%s failed: %v", what, err)
		return
	}
	l.Infof("tty", "%s set", what)
}
