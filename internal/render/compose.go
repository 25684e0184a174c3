package render

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/pixelhaus/sevenseg/internal/clockface"
	"github.com/pixelhaus/sevenseg/internal/glyphs"
)

// Recolor replaces every lit pixel's RGB with c while keeping the
// per-pixel alpha, so antialiased segment edges keep their coverage.
// Background pixels (transparent or pure black) stay transparent.
func Recolor(src *image.RGBA, c color.RGBA) *image.RGBA {
	out := image.NewRGBA(src.Bounds())
	b := src.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px := src.RGBAAt(x, y)
			if px.A == 0 || (px.R == 0 && px.G == 0 && px.B == 0) {
				continue
			}
			a := uint32(px.A)
			out.SetRGBA(x, y, color.RGBA{
				R: uint8((uint32(c.R)*a + 127) / 255),
				G: uint8((uint32(c.G)*a + 127) / 255),
				B: uint8((uint32(c.B)*a + 127) / 255),
				A: px.A,
			})
		}
	}
	return out
}

// Compose lays out seq on the canvas and draws each visible glyph in
// the given color. Hidden separators keep their slot but draw nothing.
// Glyph boxes extending past the canvas clip silently; a canvas too
// small for any glyph leaves the frame untouched.
func Compose(canvas draw.Image, seq []clockface.Glyph, set *glyphs.Set, c color.RGBA, mode ScaleMode) Plan {
	bounds := canvas.Bounds()
	plan := Layout(seq, set, bounds.Dx(), bounds.Dy(), mode)
	for _, box := range plan.Boxes {
		if box.Glyph == clockface.SeparatorOff {
			continue
		}
		src := Recolor(set.Image(box.Glyph), c)
		dst := box.Rect.Add(bounds.Min)
		if dst.Dx() == src.Bounds().Dx() && dst.Dy() == src.Bounds().Dy() {
			draw.Draw(canvas, dst, src, src.Bounds().Min, draw.Over)
			continue
		}
		xdraw.NearestNeighbor.Scale(canvas, dst, src, src.Bounds(), xdraw.Over, nil)
	}
	return plan
}
