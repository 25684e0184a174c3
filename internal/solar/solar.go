// Package solar computes sun elevation for a location and blends the
// day and night display colors by where the sun sits in the fade band.
package solar

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/nathan-osman/go-sunrise"
)

// FadeThreshold selects the elevation at which the night color is fully
// reached. FadeNone switches colors at the horizon with no blending.
type FadeThreshold int

const (
	FadeNone FadeThreshold = iota
	FadeCivil
	FadeNautical
	FadeAstronomical
)

// ParseFadeThreshold maps the config strings onto the enum.
func ParseFadeThreshold(s string) (FadeThreshold, error) {
	switch s {
	case "none", "":
		return FadeNone, nil
	case "civil":
		return FadeCivil, nil
	case "nautical":
		return FadeNautical, nil
	case "astronomical":
		return FadeAstronomical, nil
	}
	return FadeNone, fmt.Errorf("solar: unknown fade threshold %q", s)
}

// Degrees returns the elevation at which the fade band bottoms out.
func (t FadeThreshold) Degrees() float64 {
	switch t {
	case FadeCivil:
		return -6
	case FadeNautical:
		return -12
	case FadeAstronomical:
		return -18
	default:
		return 0
	}
}

func (t FadeThreshold) String() string {
	switch t {
	case FadeCivil:
		return "civil"
	case FadeNautical:
		return "nautical"
	case FadeAstronomical:
		return "astronomical"
	default:
		return "none"
	}
}

// Elevation returns the sun's angle above the horizon in degrees at the
// given location and instant. Pure: same inputs, same angle.
func Elevation(lat, lng float64, at time.Time) float64 {
	return sunrise.Elevation(lat, lng, at)
}

// Factor maps an elevation to the daytime blend weight in [0,1].
// 1 is full daytime, 0 full nighttime. The fade band is [threshold, 0].
func Factor(elevation float64, threshold FadeThreshold) float64 {
	if threshold == FadeNone {
		if elevation >= 0 {
			return 1
		}
		return 0
	}
	low := threshold.Degrees()
	f := (elevation - low) / (0 - low)
	return math.Min(1, math.Max(0, f))
}

// Blend linearly interpolates day and night componentwise by factor,
// rounding each channel to the nearest integer. Equal inputs come back
// unchanged for any factor.
func Blend(day, night color.RGBA, factor float64) color.RGBA {
	if day == night {
		return day
	}
	return color.RGBA{
		R: lerpChannel(day.R, night.R, factor),
		G: lerpChannel(day.G, night.G, factor),
		B: lerpChannel(day.B, night.B, factor),
		A: 0xFF,
	}
}

func lerpChannel(day, night uint8, factor float64) uint8 {
	v := math.Round(float64(day)*factor + float64(night)*(1-factor))
	return uint8(math.Min(255, math.Max(0, v)))
}

// Mixer bundles a location, fade policy, and the two configured colors.
type Mixer struct {
	Lat       float64
	Lng       float64
	Threshold FadeThreshold
	Day       color.RGBA
	Night     color.RGBA
}

// ColorAt returns the frame color for the given instant.
func (m Mixer) ColorAt(at time.Time) color.RGBA {
	if m.Day == m.Night {
		return m.Day
	}
	elevation := Elevation(m.Lat, m.Lng, at)
	return Blend(m.Day, m.Night, Factor(elevation, m.Threshold))
}
