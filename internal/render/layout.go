// Package render recolors glyph bitmaps and composites them centered on
// a host-supplied canvas.
package render

import (
	"fmt"
	"image"
	"math"

	"github.com/pixelhaus/sevenseg/internal/clockface"
	"github.com/pixelhaus/sevenseg/internal/glyphs"
)

// Spacing is the gap between adjacent glyphs at scale 1.
const Spacing = 2

// ScaleMode selects how the glyph run relates to the canvas size.
type ScaleMode int

const (
	// ScaleNone composites at the native bitmap size.
	ScaleNone ScaleMode = iota
	// ScaleFit scales the run to fill most of the canvas, clamped so
	// the face stays readable.
	ScaleFit
)

func ParseScaleMode(s string) (ScaleMode, error) {
	switch s {
	case "none", "":
		return ScaleNone, nil
	case "fit":
		return ScaleFit, nil
	}
	return ScaleNone, fmt.Errorf("render: unknown scale mode %q", s)
}

const (
	fitPadding  = 0.9
	fitMinScale = 0.5
	fitMaxScale = 3.0
)

// Box is one glyph's placement on the canvas.
type Box struct {
	Glyph clockface.Glyph
	Rect  image.Rectangle
}

// Plan is a fully positioned glyph run. An empty plan means the canvas
// cannot fit a single glyph and the frame stays blank.
type Plan struct {
	Boxes []Box
	Scale float64
}

// Layout places seq left to right with fixed spacing, centered on both
// axes. Separators are vertically centered within the digit height.
// A run wider than the canvas is left-anchored; compositing clips the
// overflow silently.
func Layout(seq []clockface.Glyph, set *glyphs.Set, canvasW, canvasH int, mode ScaleMode) Plan {
	if len(seq) == 0 || canvasW <= 0 || canvasH <= 0 {
		return Plan{Scale: 1}
	}

	digitW, digitH := set.DigitSize()
	_, sepH := set.SeparatorSize()

	scale := 1.0
	if mode == ScaleFit {
		baseW := runWidth(seq, set, 1)
		scale = math.Min(fitPadding*float64(canvasW)/float64(baseW), fitPadding*float64(canvasH)/float64(digitH))
		scale = math.Max(fitMinScale, math.Min(fitMaxScale, scale))
	}

	scaledDigitW := scaled(digitW, scale)
	scaledDigitH := scaled(digitH, scale)
	scaledSepH := scaled(sepH, scale)
	if scaledDigitH > canvasH || scaledDigitW > canvasW {
		return Plan{Scale: scale}
	}

	total := runWidth(seq, set, scale)
	startX := (canvasW - total) / 2
	if total > canvasW {
		startX = 0
	}
	startY := (canvasH - scaledDigitH) / 2

	plan := Plan{Boxes: make([]Box, 0, len(seq)), Scale: scale}
	x := startX
	for _, g := range seq {
		w := scaled(set.Width(g), scale)
		y, h := startY, scaledDigitH
		if g.IsSeparator() {
			y = startY + (scaledDigitH-scaledSepH)/2
			h = scaledSepH
		}
		plan.Boxes = append(plan.Boxes, Box{Glyph: g, Rect: image.Rect(x, y, x+w, y+h)})
		x += w + scaled(Spacing, scale)
	}
	return plan
}

func runWidth(seq []clockface.Glyph, set *glyphs.Set, scale float64) int {
	total := 0
	for _, g := range seq {
		total += scaled(set.Width(g), scale)
	}
	return total + scaled(Spacing, scale)*(len(seq)-1)
}

func scaled(v int, scale float64) int {
	if scale == 1 {
		return v
	}
	return int(float64(v) * scale)
}
