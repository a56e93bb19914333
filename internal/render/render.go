// Package render turns progress state into fill commands for a host canvas.
package render

import (
	"image"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pablasso/sectionbar/internal/geometry"
	"github.com/pablasso/sectionbar/internal/section"
)

// BlendDivisor scales an animation step into a blend factor.
const BlendDivisor = 256

// Kind identifies what a Fill draws.
type Kind int

const (
	KindProgress Kind = iota
	KindSection
	KindSplitBlock
)

func (k Kind) String() string {
	switch k {
	case KindProgress:
		return "progress"
	case KindSection:
		return "section"
	case KindSplitBlock:
		return "split-block"
	default:
		return "unknown"
	}
}

// Fill is a solid rectangle in pixels. Rect.Max is exclusive.
type Fill struct {
	Kind  Kind
	Rect  image.Rectangle
	Color colorful.Color
}

// Frame is the host surface the bar is drawn on.
type Frame struct {
	Width        int
	Height       int
	PaddingLeft  int
	PaddingRight int
}

// Track returns the horizontal span between the paddings.
func (f Frame) Track() geometry.Track {
	w := f.Width - f.PaddingLeft - f.PaddingRight
	if w < 0 {
		w = 0
	}
	return geometry.Track{Start: f.PaddingLeft, Width: w}
}

// Style holds colors and sizes for the bar.
type Style struct {
	ProgressColor    colorful.Color
	SplitBlockColor  colorful.Color
	BlinkColor       colorful.Color
	ProgressHeight   int
	SplitBlockWidth  int
	SplitBlockHeight int
}

// Source is the read side of a progress model.
type Source interface {
	CurrentProgress() float64
	Sections() []section.Section
	AnimationStep() (int, bool)
}

// Render produces the fills for one frame, in paint order.
func Render(frame Frame, style Style, src Source) []Fill {
	track := frame.Track()
	centerY := frame.Height / 2
	barTop := centerY - style.ProgressHeight/2
	barBottom := barTop + style.ProgressHeight
	blockTop := centerY - style.SplitBlockHeight/2
	blockBottom := blockTop + style.SplitBlockHeight

	current := src.CurrentProgress()
	sections := src.Sections()

	var fills []Fill

	if len(sections) == 0 || current > sections[len(sections)-1].End {
		fills = append(fills, Fill{
			Kind:  KindProgress,
			Rect:  image.Rect(track.Start, barTop, track.Pixel(current), barBottom),
			Color: style.ProgressColor,
		})
	}

	for _, sec := range sections {
		color := style.ProgressColor
		if sec.Selected {
			color = style.BlinkColor
			if step, ok := src.AnimationStep(); ok {
				color = Blend(style.ProgressColor, style.BlinkColor, step)
			}
		}
		fills = append(fills, Fill{
			Kind:  KindSection,
			Rect:  image.Rect(track.Pixel(sec.Start), barTop, track.Pixel(sec.End), barBottom),
			Color: color,
		})

		end := track.Pixel(sec.End)
		left := end - style.SplitBlockWidth/2
		fills = append(fills, Fill{
			Kind:  KindSplitBlock,
			Rect:  image.Rect(left, blockTop, left+style.SplitBlockWidth, blockBottom),
			Color: style.SplitBlockColor,
		})
	}

	return fills
}

// Blend mixes base toward highlight by step/BlendDivisor in RGB space.
func Blend(base, highlight colorful.Color, step int) colorful.Color {
	return base.BlendRgb(highlight, float64(step)/BlendDivisor).Clamped()
}
