// Package geometry maps progress percentages onto pixel spans.
package geometry

import "math"

// MapPercentToPixel returns the pixel for percent along a track that starts at
// trackStart and is trackWidth pixels wide. Callers pass validated percentages
// in [0, 100].
func MapPercentToPixel(percent float64, trackStart, trackWidth int) int {
	return trackStart + int(math.Floor(percent*float64(trackWidth)/100))
}

// Track is a horizontal span in pixels.
type Track struct {
	Start int
	Width int
}

// Pixel maps percent onto the track.
func (t Track) Pixel(percent float64) int {
	return MapPercentToPixel(percent, t.Start, t.Width)
}

// End returns the pixel just past the last pixel of the track.
func (t Track) End() int {
	return t.Start + t.Width
}
