// Command sevenseg-sim runs the clock plugin headless and writes each
// frame as a PNG, for eyeballing layout and colors without hardware.
// A fixed -at timestamp plus the fake clock makes output reproducible.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/pixelhaus/sevenseg"
	"github.com/pixelhaus/sevenseg/internal/config"
	"github.com/pixelhaus/sevenseg/internal/logging"
)

func main() {
	configPath := flag.String("config", "", "plugin config JSON; defaults apply when empty")
	width := flag.Int("width", 64, "canvas width in pixels")
	height := flag.Int("height", 32, "canvas height in pixels")
	frames := flag.Int("frames", 4, "number of frames to write")
	interval := flag.Duration("interval", time.Second, "simulated time between frames")
	outDir := flag.String("out", "./frames", "output directory for PNG frames")
	at := flag.String("at", "", "fixed start instant (RFC3339); empty means now")
	flag.Parse()

	logger := logging.NewFileLogger(os.Stderr)

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Println("config load error, using defaults:", err)
		} else {
			cfg = loaded
		}
	}

	start := time.Now()
	if *at != "" {
		parsed, err := time.Parse(time.RFC3339, *at)
		if err != nil {
			fmt.Println("bad -at timestamp:", err)
			os.Exit(2)
		}
		start = parsed
	}
	fake := clockwork.NewFakeClockAt(start)

	clock := sevenseg.New(cfg)
	clock.Logger = logger
	clock.SetTimeSource(fake)
	if err := clock.Init(context.Background()); err != nil {
		fmt.Println("plugin init error:", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Println("output dir error:", err)
		os.Exit(1)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, *width, *height))
	for frame := 0; frame < *frames; frame++ {
		draw.Draw(canvas, canvas.Bounds(), image.Transparent, image.Point{}, draw.Src)
		clock.Update(time.Time{})
		if err := clock.Render(canvas); err != nil {
			fmt.Println("render error:", err)
			os.Exit(1)
		}
		path := filepath.Join(*outDir, fmt.Sprintf("frame_%03d.png", frame))
		if err := writePNG(path, canvas); err != nil {
			fmt.Println("write error:", err)
			os.Exit(1)
		}
		fmt.Println("wrote", path)
		fake.Advance(*interval)
	}
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
