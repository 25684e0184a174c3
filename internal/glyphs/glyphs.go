// Package glyphs owns the read-only bitmap cache for the clock face.
// Assets ship as embedded SVG outlines rasterized once at load; an
// on-disk PNG directory can override them glyph by glyph.
package glyphs

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/pixelhaus/sevenseg/internal/assets"
	"github.com/pixelhaus/sevenseg/internal/clockface"
	"github.com/pixelhaus/sevenseg/internal/logging"
)

// Set is the immutable glyph bitmap table. Built once by Load, shared
// read-only across all render calls afterwards.
type Set struct {
	digits    [10]*image.RGBA
	separator *image.RGBA
}

// Image returns the bitmap for g. Both separator states share the same
// bitmap; the hidden state only matters at composite time.
func (s *Set) Image(g clockface.Glyph) *image.RGBA {
	if g.IsDigit() {
		return s.digits[g.Digit()]
	}
	if g.IsSeparator() {
		return s.separator
	}
	return nil
}

// DigitSize returns the bitmap dimensions shared by all ten digits.
func (s *Set) DigitSize() (width, height int) {
	b := s.digits[0].Bounds()
	return b.Dx(), b.Dy()
}

// SeparatorSize returns the separator bitmap dimensions.
func (s *Set) SeparatorSize() (width, height int) {
	b := s.separator.Bounds()
	return b.Dx(), b.Dy()
}

// Width returns the advance width of g.
func (s *Set) Width(g clockface.Glyph) int {
	img := s.Image(g)
	if img == nil {
		return 0
	}
	return img.Bounds().Dx()
}

// Load builds the glyph table. overrideDir, when non-empty, is checked
// first for the number_N.png / separator.png files; anything missing
// there falls back to the embedded outlines. Any corrupt or unreadable
// asset fails the whole load: the plugin stays disabled rather than
// rendering a partial face.
func Load(overrideDir string, logger logging.Logger) (*Set, error) {
	if logger == nil {
		logger = logging.Noop{}
	}
	set := &Set{}
	for digit := 0; digit < 10; digit++ {
		img, err := loadOne(overrideDir, fmt.Sprintf("number_%d.png", digit), func() ([]byte, error) {
			return assets.DigitSVG(digit)
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("glyphs: digit %d: %w", digit, err)
		}
		set.digits[digit] = img
	}
	img, err := loadOne(overrideDir, "separator.png", assets.SeparatorSVG, logger)
	if err != nil {
		return nil, fmt.Errorf("glyphs: separator: %w", err)
	}
	set.separator = img
	logger.Infof("glyphs", "glyph set loaded (digit %dx%d, separator %dx%d)",
		set.digits[0].Bounds().Dx(), set.digits[0].Bounds().Dy(),
		set.separator.Bounds().Dx(), set.separator.Bounds().Dy())
	return set, nil
}

func loadOne(overrideDir, pngName string, embedded func() ([]byte, error), logger logging.Logger) (*image.RGBA, error) {
	if overrideDir != "" {
		path := filepath.Join(overrideDir, pngName)
		if _, err := os.Stat(path); err == nil {
			img, err := loadPNG(path)
			if err != nil {
				return nil, err
			}
			logger.Infof("glyphs", "loaded override %s", path)
			return img, nil
		}
	}
	data, err := embedded()
	if err != nil {
		return nil, err
	}
	return rasterize(data)
}

// rasterize renders an SVG outline at its native viewBox size.
func rasterize(svg []byte) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svg))
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}
	width := int(icon.ViewBox.W)
	height := int(icon.ViewBox.H)
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("svg has empty viewBox")
	}
	icon.SetTarget(0, 0, float64(width), float64(height))
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1)
	return img, nil
}

func loadPNG(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	img := image.NewRGBA(decoded.Bounds())
	draw.Draw(img, img.Bounds(), decoded, decoded.Bounds().Min, draw.Src)
	return img, nil
}
