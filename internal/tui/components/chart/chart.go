// Package chart draws a weight series as a braille line chart.
package chart

import (
	"fmt"
	"image/color"
	"strings"

	drawille "github.com/exrook/drawille-go"

	"charm.land/lipgloss/v2"

	"github.com/zyclope0/supernovafit-sub004/internal/tui/components/braille"
	"github.com/zyclope0/supernovafit-sub004/internal/tui/theme"
	"github.com/zyclope0/supernovafit-sub004/internal/weight"
)

const (
	axisWidth = 7 // "  72.5 " gutter
	minCols   = 8
	minRows   = 2
)

type Chart struct {
	Points    []weight.Point
	Cols      int // plot area in cells
	Rows      int
	Title     string
	Color     color.Color
	AxisColor color.Color
}

func New(points []weight.Point, cols, rows int) Chart {
	return Chart{
		Points:    points,
		Cols:      max(cols, minCols),
		Rows:      max(rows, minRows),
		Title:     "WEIGHT",
		Color:     theme.ColorChart,
		AxisColor: theme.ColorDim,
	}
}

// Plot returns the dot coordinates of every point. X is proportional to time
// and Y to weight, top of the canvas being the heaviest value.
func (c Chart) Plot() [][2]int {
	if len(c.Points) == 0 {
		return nil
	}

	var (
		dotsW  = c.Cols * braille.DotsPerCol
		dotsH  = c.Rows * braille.DotsPerRow
		first  = c.Points[0].Date
		span   = c.Points[len(c.Points)-1].Date.Sub(first).Seconds()
		lo, hi = c.bounds()
		out    = make([][2]int, len(c.Points))
	)

	for i, p := range c.Points {
		x := 0
		if span > 0 {
			x = int(p.Date.Sub(first).Seconds() / span * float64(dotsW-1))
		}
		y := (dotsH - 1) / 2
		if hi > lo {
			y = int((hi - p.WeightKG) / (hi - lo) * float64(dotsH-1))
		}
		out[i] = [2]int{x, y}
	}
	return out
}

func (c Chart) Render() string {
	titleStyle := lipgloss.NewStyle().Foreground(theme.ColorWhite).Bold(true)
	axisStyle := lipgloss.NewStyle().Foreground(c.AxisColor)

	if len(c.Points) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render(c.Title),
			axisStyle.Render("no weight measurements"),
		)
	}

	canvas := drawille.NewCanvas()
	pts := c.Plot()
	canvas.Set(pts[0][0], pts[0][1])
	for i := 1; i < len(pts); i++ {
		braille.Line(&canvas, pts[i-1][0], pts[i-1][1], pts[i][0], pts[i][1])
	}

	var (
		plot   = strings.Split(braille.Rows(&canvas, c.Cols*braille.DotsPerCol, c.Rows*braille.DotsPerRow), "\n")
		lo, hi = c.bounds()
		style  = lipgloss.NewStyle().Foreground(c.Color)
		lines  = make([]string, 0, len(plot)+2)
	)

	lines = append(lines, titleStyle.Render(c.Title))
	for i, row := range plot {
		label := strings.Repeat(" ", axisWidth)
		switch i {
		case 0:
			label = fmt.Sprintf("%6.1f ", hi)
		case len(plot) - 1:
			label = fmt.Sprintf("%6.1f ", lo)
		}
		lines = append(lines, axisStyle.Render(label+"┤")+style.Render(row))
	}

	from := c.Points[0].Date.Format("Jan 02")
	to := c.Points[len(c.Points)-1].Date.Format("Jan 02")
	gap := max(c.Cols+1-len(from)-len(to), 1)
	lines = append(lines, axisStyle.Render(strings.Repeat(" ", axisWidth)+from+strings.Repeat(" ", gap)+to))

	return strings.Join(lines, "\n")
}

func (c Chart) bounds() (float64, float64) {
	lo, hi := c.Points[0].WeightKG, c.Points[0].WeightKG
	for _, p := range c.Points[1:] {
		lo = min(lo, p.WeightKG)
		hi = max(hi, p.WeightKG)
	}
	return lo, hi
}
