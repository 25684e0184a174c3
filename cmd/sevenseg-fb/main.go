// Command sevenseg-fb runs the clock plugin standalone on the Linux
// framebuffer. It is a minimal stand-in for the LED-matrix rotation
// host: it owns the tick loop and the canvas, the plugin draws frames.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"os/signal"
	"syscall"
	"time"

	fb "github.com/gonutz/framebuffer"

	"github.com/pixelhaus/sevenseg"
	"github.com/pixelhaus/sevenseg/internal/config"
	"github.com/pixelhaus/sevenseg/internal/console"
	"github.com/pixelhaus/sevenseg/internal/logging"
)

func main() {
	configPath := flag.String("config", "", "plugin config JSON; defaults apply when empty")
	width := flag.Int("width", 64, "logical canvas width in pixels")
	height := flag.Int("height", 32, "logical canvas height in pixels")
	tick := flag.Duration("tick", 250*time.Millisecond, "render interval")
	debug := flag.Bool("debug", false, "enable debug logging to ./sevenseg-debug.log")
	stdioLog := flag.String("stdio-log", "", "redirect stdout+stderr (including panics) to this file; also configurable via SEVENSEG_STDIO_LOG")
	flag.Parse()

	// Redirect all stdout/stderr output (including panic stack traces) to a
	// file so crashes are diagnosable when the console is in graphics mode.
	logPath := *stdioLog
	if logPath == "" {
		logPath = os.Getenv("SEVENSEG_STDIO_LOG")
	}
	if logPath != "" {
		if err := redirectStdIO(logPath); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	var logger logging.Logger = logging.Noop{}
	if *debug {
		f, err := os.OpenFile("./sevenseg-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			logger = logging.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Println("config load error, using defaults:", err)
		} else {
			cfg = loaded
		}
	}

	clock := sevenseg.New(cfg)
	clock.Logger = logger
	if !clock.Enabled() {
		fmt.Println("clock plugin is disabled in config")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := clock.Init(ctx); err != nil {
		fmt.Println("plugin init error:", err)
		os.Exit(1)
	}

	dev, err := fb.Open("/dev/fb0")
	if err != nil {
		fmt.Println("framebuffer open error:", err)
		os.Exit(1)
	}
	defer dev.Close()
	bounds := dev.Bounds()
	logger.Infof("fb", "framebuffer open, bounds=%dx%d", bounds.Dx(), bounds.Dy())

	if err := console.SetGraphicsModeWithLog(logger); err == nil {
		defer func() { _ = console.RestoreTextModeWithLog(logger) }()
	}
	_ = console.HideCursor()
	defer func() { _ = console.ShowCursor() }()

	canvas := image.NewRGBA(image.Rect(0, 0, *width, *height))
	ticker := time.NewTicker(*tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			draw.Draw(canvas, canvas.Bounds(), image.Transparent, image.Point{}, draw.Src)
			clock.Update(time.Time{})
			if err := clock.Render(canvas); err != nil {
				logger.Errorf("fb", "render error: %v", err)
			}
			blit(dev, canvas)
		}
	}
}

// blit scales the logical canvas onto the framebuffer with nearest
// neighbor sampling, so each LED-sized pixel becomes a crisp block.
func blit(dev *fb.Device, canvas *image.RGBA) {
	bounds := dev.Bounds()
	fbWidth := bounds.Dx()
	fbHeight := bounds.Dy()
	cw := canvas.Bounds().Dx()
	ch := canvas.Bounds().Dy()
	for y := 0; y < fbHeight; y++ {
		sy := (y * ch) / fbHeight
		for x := 0; x < fbWidth; x++ {
			sx := (x * cw) / fbWidth
			pixel := canvas.RGBAAt(sx, sy)
			dev.Set(bounds.Min.X+x, bounds.Min.Y+y, color.RGBA{R: pixel.R, G: pixel.G, B: pixel.B, A: 0xFF})
		}
	}
}
