package sevenseg

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/pixelhaus/sevenseg/internal/clockface"
	"github.com/pixelhaus/sevenseg/internal/config"
	"github.com/pixelhaus/sevenseg/internal/glyphs"
	"github.com/pixelhaus/sevenseg/internal/logging"
	"github.com/pixelhaus/sevenseg/internal/render"
	"github.com/pixelhaus/sevenseg/internal/solar"
)

const pluginID = "sevenseg_clock"

// Clock renders the seven-segment clock face. All cross-tick state is
// immutable after Init (config, glyph bitmaps, timezone); everything
// else is recomputed per frame, so no locking is needed.
type Clock struct {
	Logger logging.Logger

	cfg       config.Config
	timeSrc   clockwork.Clock
	loc       *time.Location
	set       *glyphs.Set
	mixer     solar.Mixer
	opts      clockface.Options
	scaleMode render.ScaleMode

	now time.Time // cached by Update, consumed by Render
}

var _ Plugin = (*Clock)(nil)

// New builds a Clock for the given host configuration. Call Init before
// the first Render.
func New(cfg config.Config) *Clock {
	return &Clock{
		Logger:  logging.Noop{},
		cfg:     cfg,
		timeSrc: clockwork.NewRealClock(),
	}
}

// SetTimeSource swaps the wall clock, mainly so tests can freeze time.
func (c *Clock) SetTimeSource(clk clockwork.Clock) {
	if clk != nil {
		c.timeSrc = clk
	}
}

func (c *Clock) ID() string { return pluginID }

// Init resolves the timezone and location, parses the color and fade
// configuration, and builds the immutable glyph bitmap table. A glyph
// load failure is fatal; every other bad value degrades to a default.
func (c *Clock) Init(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.Logger == nil {
		c.Logger = logging.Noop{}
	}
	for _, warning := range c.cfg.Validate() {
		c.Logger.Errorf(pluginID, "config: %s", warning)
	}

	c.loc = resolveTimezone(c.cfg.Location.Timezone, c.Logger)

	lat, lng := c.cfg.Location.Lat, c.cfg.Location.Lng
	if !c.cfg.Location.Valid() {
		lat, lng = config.DefaultLat, config.DefaultLng
	}

	threshold, err := solar.ParseFadeThreshold(c.cfg.MinFadeElevation)
	if err != nil {
		threshold = solar.FadeNone
	}
	c.mixer = solar.Mixer{
		Lat:       lat,
		Lng:       lng,
		Threshold: threshold,
		Day:       c.cfg.DayColor(),
		Night:     c.cfg.NightColor(),
	}

	c.opts = clockface.Options{
		TwentyFourHour:    c.cfg.TwentyFourHour,
		LeadingZero:       c.cfg.LeadingZero,
		FlashingSeparator: c.cfg.FlashingSeparator,
	}

	if c.scaleMode, err = render.ParseScaleMode(c.cfg.ScaleMode); err != nil {
		c.scaleMode = render.ScaleNone
	}

	set, err := glyphs.Load(c.cfg.AssetDir, c.Logger)
	if err != nil {
		return fmt.Errorf("sevenseg: %w", err)
	}
	c.set = set

	c.Logger.Infof(pluginID, "initialized (tz=%s threshold=%s locality=%q)",
		c.loc, threshold, c.cfg.Location.Locality)
	return nil
}

// Update caches the localized instant the next Render draws. Safe to
// call before Init: the timezone falls back to UTC until Init resolves
// the configured one.
func (c *Clock) Update(now time.Time) {
	if now.IsZero() {
		now = c.timeSrc.Now()
	}
	if c.loc == nil {
		c.loc = time.UTC
	}
	c.now = now.In(c.loc)
}

// Render composites the clock face onto the host canvas. On an
// uninitialized plugin it paints a red error banner instead of
// crashing the host's rotation loop.
func (c *Clock) Render(canvas draw.Image) error {
	if c.set == nil {
		drawErrorBanner(canvas, "CLOCK ERR")
		return fmt.Errorf("sevenseg: render before successful Init")
	}
	if c.now.IsZero() {
		c.Update(time.Time{})
	}
	seq := clockface.Sequence(c.now, c.opts)
	frameColor := c.mixer.ColorAt(c.now)
	render.Compose(canvas, seq, c.set, frameColor, c.scaleMode)
	return nil
}

func (c *Clock) Enabled() bool { return c.cfg.Enabled }

func (c *Clock) DisplayDuration() time.Duration { return c.cfg.RotationSlot() }

// Location returns the timezone Render localizes into.
func (c *Clock) Location() *time.Location { return c.loc }

func resolveTimezone(name string, logger logging.Logger) *time.Location {
	if name == "" {
		name = config.DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		logger.Errorf(pluginID, "unknown timezone %q, using %s: %v", name, config.DefaultTimezone, err)
		return time.UTC
	}
	return loc
}

func drawErrorBanner(canvas draw.Image, msg string) {
	b := canvas.Bounds()
	drawer := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(color.RGBA{R: 0xFF, A: 0xFF}),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(b.Min.X+2, b.Min.Y+12),
	}
	drawer.DrawString(msg)
}
