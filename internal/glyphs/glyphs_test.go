package glyphs

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelhaus/sevenseg/internal/clockface"
)

func TestLoadEmbedded(t *testing.T) {
	set, err := Load("", nil)
	require.NoError(t, err)

	w, h := set.DigitSize()
	assert.Equal(t, 13, w)
	assert.Equal(t, 32, h)

	sw, sh := set.SeparatorSize()
	assert.Equal(t, 4, sw)
	assert.Equal(t, 14, sh)

	for g := clockface.Digit0; g <= clockface.Digit9; g++ {
		img := set.Image(g)
		require.NotNil(t, img, "glyph %d", g)
		assert.True(t, hasOpaquePixels(img), "glyph %d has no lit pixels", g)
	}
	assert.NotNil(t, set.Image(clockface.SeparatorOn))
	assert.Same(t, set.Image(clockface.SeparatorOn), set.Image(clockface.SeparatorOff))
}

func TestWidth(t *testing.T) {
	set, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, 13, set.Width(clockface.Digit5))
	assert.Equal(t, 4, set.Width(clockface.SeparatorOff))
	assert.Equal(t, 0, set.Width(clockface.Glyph(99)))
}

func TestDigitOneIsNarrowShape(t *testing.T) {
	// Digit 1 lights only the right-hand segments; the left column must
	// stay fully transparent.
	set, err := Load("", nil)
	require.NoError(t, err)
	one := set.Image(clockface.Digit1)
	for y := one.Bounds().Min.Y; y < one.Bounds().Max.Y; y++ {
		assert.Equal(t, uint8(0), one.RGBAAt(0, y).A, "y=%d", y)
	}
}

func TestLoadOverrideDir(t *testing.T) {
	dir := t.TempDir()
	// Single 5x6 override for digit 0; everything else falls back.
	img := image.NewRGBA(image.Rect(0, 0, 5, 6))
	img.SetRGBA(2, 3, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	f, err := os.Create(filepath.Join(dir, "number_0.png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	set, err := Load(dir, nil)
	require.NoError(t, err)
	zero := set.Image(clockface.Digit0)
	assert.Equal(t, 5, zero.Bounds().Dx())
	assert.Equal(t, 6, zero.Bounds().Dy())
	assert.Equal(t, 13, set.Width(clockface.Digit1))
}

func TestLoadCorruptOverrideFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "separator.png"), []byte("not a png"), 0o644))
	_, err := Load(dir, nil)
	assert.Error(t, err)
}

func hasOpaquePixels(img *image.RGBA) bool {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y).A > 0 {
				return true
			}
		}
	}
	return false
}
