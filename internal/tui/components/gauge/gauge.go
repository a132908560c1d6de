package gauge

import (
	"fmt"
	"image/color"
	"strings"

	drawille "github.com/exrook/drawille-go"

	"charm.land/lipgloss/v2"

	"github.com/zyclope0/supernovafit-sub004/internal/tui/components/braille"
	"github.com/zyclope0/supernovafit-sub004/internal/tui/theme"
)

const (
	// large enough to leave a hollow center for the value text
	defaultDotsSize = 40 // 20 chars wide, 10 chars tall
	minDotsSize     = 16
)

// Gauge is a circular progress ring with its value in the center.
type Gauge struct {
	Value     *float64 // nil = no data
	Max       float64
	Label     string
	Color     color.Color
	BgColor   color.Color
	TextColor color.Color
	Format    func(float64) string
	dots      int
}

type Option func(*Gauge)

func WithTextColor(c color.Color) Option {
	return func(g *Gauge) {
		g.TextColor = c
	}
}

func WithFormat(f func(float64) string) Option {
	return func(g *Gauge) {
		g.Format = f
	}
}

// WithSize sets the ring diameter in braille dots, rounded down to whole cells.
func WithSize(dots int) Option {
	return func(g *Gauge) {
		dots = max(dots, minDotsSize)
		g.dots = dots - dots%braille.DotsPerRow
	}
}

// Percent formats values on a 0-100 scale.
func Percent(v float64) string { return fmt.Sprintf("%.0f%%", v) }

func New(value *float64, max float64, label string, c color.Color, opts ...Option) Gauge {
	g := Gauge{
		Value:     value,
		Max:       max,
		Label:     label,
		Color:     c,
		BgColor:   theme.ColorBgLight,
		TextColor: theme.ColorWhite,
		Format:    func(v float64) string { return fmt.Sprintf("%.1f", v) },
		dots:      defaultDotsSize,
	}
	for _, opt := range opts {
		opt(&g)
	}
	return g
}

// Fraction is Value/Max clamped to [0, 1]; no data or a non-positive Max is 0.
func (g Gauge) Fraction() float64 {
	if g.Value == nil || g.Max <= 0 {
		return 0
	}
	return max(0, min(*g.Value/g.Max, 1))
}

func (g Gauge) Render() string {
	var (
		canvas  = drawille.NewCanvas()
		center  = float64(g.dots) / 2
		radius  = center - 1
		percent = g.Fraction()
	)

	drawFullArc(&canvas, center, center, radius)
	bgArc := braille.Rows(&canvas, g.dots, g.dots)

	canvas.Clear()
	if percent > 0 {
		drawFilledArc(&canvas, center, center, radius, percent)
	}
	filledArc := braille.Rows(&canvas, g.dots, g.dots)

	ring := overlayArcsRaw(bgArc, filledArc, g.BgColor, g.Color)

	valueStr := "--"
	if g.Value != nil {
		valueStr = g.Format(*g.Value)
	}

	var (
		ringHeight = lipgloss.Height(ring)
		ringWidth  = lipgloss.Width(ring)
	)

	centeredValue := lipgloss.Place(
		ringWidth,
		ringHeight,
		lipgloss.Center,
		lipgloss.Center,
		lipgloss.NewStyle().Foreground(g.TextColor).Bold(true).Render(valueStr),
	)

	labelStyle := lipgloss.NewStyle().
		Foreground(g.TextColor).
		Bold(true).
		Width(ringWidth).
		Align(lipgloss.Center)

	return lipgloss.JoinVertical(
		lipgloss.Center,
		braille.Overlay(ring, centeredValue),
		labelStyle.Render(g.Label),
	)
}

// overlayArcsRaw colors the two arcs. Where both have dots, the dots are
// merged and drawn in the fill color.
func overlayArcsRaw(bgStr, fillStr string, bgColor, fillColor color.Color) string {
	var (
		bgLines   = strings.Split(bgStr, "\n")
		fillLines = strings.Split(fillStr, "\n")
		result    = make([]string, 0, len(bgLines))
		bgStyle   = lipgloss.NewStyle().Foreground(bgColor)
		fillStyle = lipgloss.NewStyle().Foreground(fillColor)
	)

	for i, bgLine := range bgLines {
		bgRunes := []rune(bgLine)
		var fillRunes []rune
		if i < len(fillLines) {
			fillRunes = []rune(fillLines[i])
		}

		var b strings.Builder
		for j, bgChar := range bgRunes {
			fillChar := ' '
			if j < len(fillRunes) {
				fillChar = fillRunes[j]
			}

			bgIsBraille := braille.IsBraille(bgChar)
			fillHasDots := braille.HasDots(fillChar)

			switch {
			case fillHasDots && bgIsBraille:
				b.WriteString(fillStyle.Render(string(braille.Combine(bgChar, fillChar))))
			case fillHasDots:
				b.WriteString(fillStyle.Render(string(fillChar)))
			case bgIsBraille:
				b.WriteString(bgStyle.Render(string(bgChar)))
			default:
				b.WriteRune(' ')
			}
		}
		result = append(result, b.String())
	}

	return strings.Join(result, "\n")
}
