package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pablasso/sectionbar/internal/render"
)

const cellChar = " "

// SectionBar rasterizes render fills onto a grid of terminal cells, one
// cell per pixel, and paints them with background colors.
type SectionBar struct {
	Width      int
	Height     int
	TrackColor colorful.Color
	// The empty track band, painted with TrackColor under the fills.
	TrackTop    int
	TrackBottom int
	TrackLeft   int
	TrackRight  int
}

// NewSectionBar creates a bar canvas of the given size.
func NewSectionBar(width, height int) SectionBar {
	return SectionBar{
		Width:      width,
		Height:     height,
		TrackColor: colorful.Color{R: 0.2, G: 0.2, B: 0.2},
	}
}

// WithTrack marks the empty track band [left, right) x [top, bottom).
func (b SectionBar) WithTrack(left, top, right, bottom int) SectionBar {
	b.TrackLeft, b.TrackTop, b.TrackRight, b.TrackBottom = left, top, right, bottom
	return b
}

// Canvas paints fills in order and returns the cell grid. Nil cells are unpainted.
func (b SectionBar) Canvas(fills []render.Fill) [][]*colorful.Color {
	if b.Width <= 0 || b.Height <= 0 {
		return nil
	}

	grid := make([][]*colorful.Color, b.Height)
	for y := range grid {
		grid[y] = make([]*colorful.Color, b.Width)
	}

	track := b.TrackColor
	b.paint(grid, b.TrackLeft, b.TrackTop, b.TrackRight, b.TrackBottom, &track)

	for i := range fills {
		f := fills[i]
		col := f.Color
		b.paint(grid, f.Rect.Min.X, f.Rect.Min.Y, f.Rect.Max.X, f.Rect.Max.Y, &col)
	}
	return grid
}

func (b SectionBar) paint(grid [][]*colorful.Color, x0, y0, x1, y1 int, col *colorful.Color) {
	x0, x1 = clamp(x0, 0, b.Width), clamp(x1, 0, b.Width)
	y0, y1 = clamp(y0, 0, b.Height), clamp(y1, 0, b.Height)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			grid[y][x] = col
		}
	}
}

// View returns the rendered bar, one line per row.
func (b SectionBar) View(fills []render.Fill) string {
	grid := b.Canvas(fills)
	if grid == nil {
		return ""
	}

	lines := make([]string, len(grid))
	for y, row := range grid {
		lines[y] = renderRow(row)
	}
	return strings.Join(lines, "\n")
}

// renderRow groups runs of equal color into a single styled span.
func renderRow(row []*colorful.Color) string {
	var sb strings.Builder
	for x := 0; x < len(row); {
		start := x
		for x < len(row) && sameColor(row[start], row[x]) {
			x++
		}
		run := strings.Repeat(cellChar, x-start)
		if row[start] == nil {
			sb.WriteString(run)
			continue
		}
		style := lipgloss.NewStyle().Background(lipgloss.Color(row[start].Hex()))
		sb.WriteString(style.Render(run))
	}
	return sb.String()
}

func sameColor(a, b *colorful.Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Hex() == b.Hex()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Label renders the percentage summary shown under the bar, like: 45% · 2 sections
func Label(percent float64, sections int) string {
	noun := "sections"
	if sections == 1 {
		noun = "section"
	}
	return fmt.Sprintf("%.0f%% · %d %s", percent, sections, noun)
}
