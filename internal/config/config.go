// Package config holds the clock plugin configuration as handed over by
// the host. Schema validation happens on the host side; everything here
// degrades to safe defaults instead of failing the render path.
package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"strings"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Defaults applied when the host config leaves fields unset or invalid.
const (
	DefaultTimezone = "UTC"
	DefaultLat      = 0.0
	DefaultLng      = 0.0
)

var white = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

// Location is where the clock lives, for timezone and solar position.
type Location struct {
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Timezone string  `json:"timezone"`
	Locality string  `json:"locality"`
}

// Valid reports whether lat/lng are inside their legal ranges.
func (l Location) Valid() bool {
	return l.Lat >= -90 && l.Lat <= 90 && l.Lng >= -180 && l.Lng <= 180
}

// Config mirrors the host's plugin configuration block.
type Config struct {
	Enabled           bool     `json:"enabled"`
	DisplayDuration   int      `json:"display_duration"` // seconds per rotation slot
	TwentyFourHour    bool     `json:"is_24_hour_format"`
	LeadingZero       bool     `json:"has_leading_zero"`
	FlashingSeparator bool     `json:"has_flashing_separator"`
	ColorDaytime      string   `json:"color_daytime"`
	ColorNighttime    string   `json:"color_nighttime"`
	MinFadeElevation  string   `json:"min_fade_elevation"` // none|civil|nautical|astronomical
	ScaleMode         string   `json:"scale_mode"`         // none|fit
	AssetDir          string   `json:"asset_dir"`          // optional PNG override directory
	Location          Location `json:"location"`
}

// Default returns the baseline configuration the host overlays.
func Default() Config {
	return Config{
		Enabled:           true,
		DisplayDuration:   15,
		TwentyFourHour:    true,
		FlashingSeparator: true,
		ColorDaytime:      "#FFFFFF",
		ColorNighttime:    "#FF8C00",
		MinFadeElevation:  "civil",
		ScaleMode:         "none",
		Location:          Location{Lat: DefaultLat, Lng: DefaultLng, Timezone: DefaultTimezone},
	}
}

// Load reads a JSON config file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return cfg, nil
}

// ParseHexColor converts "#RRGGBB" or "#RGB" (the # is optional) into an
// opaque RGBA. Malformed values return white and an error so callers can
// log and keep rendering.
func ParseHexColor(s string) (color.RGBA, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(trimmed) != 3 && len(trimmed) != 6 {
		return white, fmt.Errorf("config: invalid hex color %q", s)
	}
	parsed, err := colorful.Hex("#" + strings.ToLower(trimmed))
	if err != nil {
		return white, fmt.Errorf("config: invalid hex color %q: %w", s, err)
	}
	r, g, b := parsed.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}, nil
}

// DayColor returns the parsed daytime color, white on bad input.
func (c Config) DayColor() color.RGBA {
	parsed, _ := ParseHexColor(c.ColorDaytime)
	return parsed
}

// NightColor returns the parsed nighttime color, white on bad input.
func (c Config) NightColor() color.RGBA {
	parsed, _ := ParseHexColor(c.ColorNighttime)
	return parsed
}

// RotationSlot returns how long the host should keep the clock on screen.
func (c Config) RotationSlot() time.Duration {
	if c.DisplayDuration <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.DisplayDuration) * time.Second
}

// Validate returns human-readable warnings for suspicious values. None
// of these are fatal; the plugin substitutes defaults at init.
func (c Config) Validate() []string {
	var warnings []string
	if _, err := ParseHexColor(c.ColorDaytime); err != nil {
		warnings = append(warnings, fmt.Sprintf("color_daytime %q is not a hex color, using white", c.ColorDaytime))
	}
	if _, err := ParseHexColor(c.ColorNighttime); err != nil {
		warnings = append(warnings, fmt.Sprintf("color_nighttime %q is not a hex color, using white", c.ColorNighttime))
	}
	switch c.MinFadeElevation {
	case "", "none", "civil", "nautical", "astronomical":
	default:
		warnings = append(warnings, fmt.Sprintf("min_fade_elevation %q is unknown, using none", c.MinFadeElevation))
	}
	switch c.ScaleMode {
	case "", "none", "fit":
	default:
		warnings = append(warnings, fmt.Sprintf("scale_mode %q is unknown, using none", c.ScaleMode))
	}
	if !c.Location.Valid() {
		warnings = append(warnings, fmt.Sprintf("location %.4f,%.4f is out of range, using %.0f,%.0f",
			c.Location.Lat, c.Location.Lng, DefaultLat, DefaultLng))
	}
	if c.Location.Timezone != "" {
		if _, err := time.LoadLocation(c.Location.Timezone); err != nil {
			warnings = append(warnings, fmt.Sprintf("timezone %q is unknown, using %s", c.Location.Timezone, DefaultTimezone))
		}
	}
	return warnings
}
