package assets

import (
	"embed"
	"fmt"
)

//go:embed glyphs/*.svg
var glyphFS embed.FS

// DigitSVG returns the embedded 7-segment outline for a single digit 0-9.
func DigitSVG(digit int) ([]byte, error) {
	if digit < 0 || digit > 9 {
		return nil, fmt.Errorf("assets: no glyph for digit %d", digit)
	}
	return glyphFS.ReadFile(fmt.Sprintf("glyphs/digit_%d.svg", digit))
}

// SeparatorSVG returns the embedded colon outline.
func SeparatorSVG() ([]byte, error) {
	return glyphFS.ReadFile("glyphs/separator.svg")
}
