// Package sevenseg is a seven-segment clock plugin for LED-matrix
// rotation hosts. The host owns the display loop and the canvas; the
// plugin only formats the time, picks a color from the sun's elevation,
// and composites pre-rendered glyph bitmaps onto the frame.
package sevenseg

import (
	"context"
	"image/draw"
	"time"
)

// Plugin is the contract a rotation host drives once per refresh tick.
// Init is called once before the first frame; a failed Init leaves the
// plugin disabled. Update and Render are called from a single goroutine.
type Plugin interface {
	ID() string
	Init(ctx context.Context) error
	// Update caches the instant the next Render uses. A zero now means
	// "read the system clock yourself".
	Update(now time.Time)
	// Render composites the current frame onto the host's canvas.
	Render(canvas draw.Image) error
	Enabled() bool
	// DisplayDuration is how long the rotation scheduler should keep
	// this plugin on screen.
	DisplayDuration() time.Duration
}
