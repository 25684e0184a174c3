package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#FFFFFF", color.RGBA{255, 255, 255, 255}, false},
		{"#ff8c00", color.RGBA{255, 140, 0, 255}, false},
		{"00ff00", color.RGBA{0, 255, 0, 255}, false},
		{"#abc", color.RGBA{0xaa, 0xbb, 0xcc, 255}, false},
		{"#FFF", color.RGBA{255, 255, 255, 255}, false},
		{"", color.RGBA{255, 255, 255, 255}, true},
		{"#12345", color.RGBA{255, 255, 255, 255}, true},
		{"#zzzzzz", color.RGBA{255, 255, 255, 255}, true},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
		} else {
			assert.NoError(t, err, "input %q", tt.in)
		}
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.True(t, cfg.Enabled)
	assert.True(t, cfg.TwentyFourHour)
	assert.True(t, cfg.FlashingSeparator)
	assert.Equal(t, "civil", cfg.MinFadeElevation)
	assert.Equal(t, DefaultTimezone, cfg.Location.Timezone)
	assert.Empty(t, cfg.Validate())
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clock.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"is_24_hour_format": false,
		"has_leading_zero": true,
		"color_daytime": "#112233",
		"location": {"lat": 51.5, "lng": -0.12, "timezone": "Europe/London", "locality": "London"}
	}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.TwentyFourHour)
	assert.True(t, cfg.LeadingZero)
	assert.Equal(t, color.RGBA{0x11, 0x22, 0x33, 255}, cfg.DayColor())
	assert.Equal(t, "Europe/London", cfg.Location.Timezone)
	// Untouched fields keep their defaults.
	assert.Equal(t, "civil", cfg.MinFadeElevation)
	assert.True(t, cfg.FlashingSeparator)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
	assert.True(t, cfg.Enabled, "defaults still returned")
}

func TestValidateWarnings(t *testing.T) {
	cfg := Default()
	cfg.ColorDaytime = "red"
	cfg.MinFadeElevation = "dusk"
	cfg.ScaleMode = "stretch"
	cfg.Location.Lat = 123
	cfg.Location.Timezone = "Mars/Olympus_Mons"
	assert.Len(t, cfg.Validate(), 5)
}

func TestLocationValid(t *testing.T) {
	assert.True(t, Location{Lat: 51.5, Lng: -0.12}.Valid())
	assert.False(t, Location{Lat: 91}.Valid())
	assert.False(t, Location{Lng: -181}.Valid())
}

func TestRotationSlot(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "15s", cfg.RotationSlot().String())
	cfg.DisplayDuration = 30
	assert.Equal(t, "30s", cfg.RotationSlot().String())
	cfg.DisplayDuration = -1
	assert.Equal(t, "15s", cfg.RotationSlot().String())
}

func TestBadColorFallsBackToWhite(t *testing.T) {
	cfg := Default()
	cfg.ColorNighttime = "chartreuse"
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, cfg.NightColor())
}
