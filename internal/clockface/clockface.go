// Package clockface turns a wall-clock instant into the ordered glyph
// sequence a seven-segment display shows for it.
package clockface

import "time"

// Glyph identifies a single renderable unit of the clock face.
// Digits map directly to their value; the separator has two states so a
// hidden (flashing-off) colon still reserves its width at layout time.
type Glyph int

const (
	Digit0 Glyph = iota
	Digit1
	Digit2
	Digit3
	Digit4
	Digit5
	Digit6
	Digit7
	Digit8
	Digit9
	SeparatorOn
	SeparatorOff
)

// IsDigit reports whether g is one of Digit0..Digit9.
func (g Glyph) IsDigit() bool { return g >= Digit0 && g <= Digit9 }

// IsSeparator reports whether g is a separator in either state.
func (g Glyph) IsSeparator() bool { return g == SeparatorOn || g == SeparatorOff }

// Digit returns the numeric value of a digit glyph, -1 otherwise.
func (g Glyph) Digit() int {
	if !g.IsDigit() {
		return -1
	}
	return int(g)
}

// Options are the format flags of the clock face.
type Options struct {
	TwentyFourHour    bool
	LeadingZero       bool
	FlashingSeparator bool
}

// Sequence formats t (already localized by the caller) as "HH:MM" or
// "H:MM" glyphs. 24-hour mode is always zero-padded; 12-hour mode pads
// only when LeadingZero is set, so the sequence length varies between
// 4 and 5 glyphs. Formatting is total over all valid timestamps.
func Sequence(t time.Time, opts Options) []Glyph {
	hour := t.Hour()
	if !opts.TwentyFourHour {
		hour = hour % 12
		if hour == 0 {
			hour = 12
		}
	}

	separator := SeparatorOn
	if opts.FlashingSeparator && t.Second()%2 == 1 {
		separator = SeparatorOff
	}

	seq := make([]Glyph, 0, 5)
	if opts.TwentyFourHour || opts.LeadingZero || hour >= 10 {
		seq = append(seq, Glyph(hour/10))
	}
	seq = append(seq,
		Glyph(hour%10),
		separator,
		Glyph(t.Minute()/10),
		Glyph(t.Minute()%10),
	)
	return seq
}
