package solar

import (
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red  = color.RGBA{R: 200, G: 40, B: 10, A: 0xFF}
	blue = color.RGBA{R: 10, G: 40, B: 200, A: 0xFF}
)

func TestParseFadeThreshold(t *testing.T) {
	tests := []struct {
		in      string
		want    FadeThreshold
		wantErr bool
	}{
		{"none", FadeNone, false},
		{"", FadeNone, false},
		{"civil", FadeCivil, false},
		{"nautical", FadeNautical, false},
		{"astronomical", FadeAstronomical, false},
		{"dusk", FadeNone, true},
	}
	for _, tt := range tests {
		got, err := ParseFadeThreshold(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestThresholdDegrees(t *testing.T) {
	assert.Equal(t, 0.0, FadeNone.Degrees())
	assert.Equal(t, -6.0, FadeCivil.Degrees())
	assert.Equal(t, -12.0, FadeNautical.Degrees())
	assert.Equal(t, -18.0, FadeAstronomical.Degrees())
}

func TestFactorBinaryWithNoThreshold(t *testing.T) {
	assert.Equal(t, 1.0, Factor(5, FadeNone))
	assert.Equal(t, 1.0, Factor(0, FadeNone))
	assert.Equal(t, 0.0, Factor(-5, FadeNone))
}

func TestFactorFadeBand(t *testing.T) {
	assert.Equal(t, 1.0, Factor(10, FadeCivil))
	assert.Equal(t, 1.0, Factor(0, FadeCivil))
	assert.InDelta(t, 0.5, Factor(-3, FadeCivil), 1e-12)
	assert.Equal(t, 0.0, Factor(-6, FadeCivil))
	assert.Equal(t, 0.0, Factor(-30, FadeCivil))
	assert.InDelta(t, 0.5, Factor(-9, FadeAstronomical), 1e-12)
}

func TestBlendEndpoints(t *testing.T) {
	assert.Equal(t, red, Blend(red, blue, 1))
	assert.Equal(t, blue, Blend(red, blue, 0))
}

func TestBlendMidpointIsComponentwiseAverage(t *testing.T) {
	got := Blend(red, blue, 0.5)
	assert.Equal(t, color.RGBA{R: 105, G: 40, B: 105, A: 0xFF}, got)
}

func TestBlendEqualColorsConstant(t *testing.T) {
	for _, factor := range []float64{0, 0.25, 0.5, 1} {
		assert.Equal(t, red, Blend(red, red, factor))
	}
}

func TestElevationDeterministic(t *testing.T) {
	at := time.Date(2026, time.March, 20, 12, 0, 0, 0, time.UTC)
	first := Elevation(40.7, -74.0, at)
	second := Elevation(40.7, -74.0, at)
	assert.Equal(t, first, second)
}

func TestElevationSign(t *testing.T) {
	// Noon UTC on the equinox at 0N 0E: sun near zenith. Midnight: well below.
	noon := time.Date(2026, time.March, 20, 12, 0, 0, 0, time.UTC)
	midnight := time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC)
	assert.Greater(t, Elevation(0, 0, noon), 45.0)
	assert.Less(t, Elevation(0, 0, midnight), 0.0)
}

func TestMixerCivilTwilightBlends(t *testing.T) {
	// Shortly after equinox sunset at 0N 0E the sun sits inside the
	// civil band (-6, 0), so ColorAt must return a true blend of the
	// two colors, matching Factor+Blend composed by hand.
	dusk := time.Date(2026, time.March, 20, 18, 15, 0, 0, time.UTC)
	elevation := Elevation(0, 0, dusk)
	require.Greater(t, elevation, -6.0)
	require.Less(t, elevation, 0.0)

	m := Mixer{Lat: 0, Lng: 0, Threshold: FadeCivil, Day: red, Night: blue}
	got := m.ColorAt(dusk)

	factor := Factor(elevation, FadeCivil)
	assert.Greater(t, factor, 0.0)
	assert.Less(t, factor, 1.0)
	assert.Equal(t, Blend(red, blue, factor), got)
	assert.NotEqual(t, red, got)
	assert.NotEqual(t, blue, got)
}

func TestMixer(t *testing.T) {
	noon := time.Date(2026, time.March, 20, 12, 0, 0, 0, time.UTC)
	midnight := time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC)
	m := Mixer{Lat: 0, Lng: 0, Threshold: FadeNone, Day: red, Night: blue}
	assert.Equal(t, red, m.ColorAt(noon))
	assert.Equal(t, blue, m.ColorAt(midnight))

	m.Day, m.Night = red, red
	assert.Equal(t, red, m.ColorAt(noon))
	assert.Equal(t, red, m.ColorAt(midnight))
}
