// Package braille holds the canvas plumbing shared by the drawille-based components.
// Each braille cell is 2 dots wide and 4 dots tall.
package braille

import (
	"strings"
	"unicode"

	drawille "github.com/exrook/drawille-go"
)

const (
	Empty      rune = '⠀'
	ansiEscape rune = '\x1b'

	DotsPerCol = 2
	DotsPerRow = 4
)

// Rows renders the canvas region [0, dotsW) x [0, dotsH) as exactly
// dotsH/4 lines of dotsW/2 runes each.
func Rows(canvas *drawille.Canvas, dotsW, dotsH int) string {
	var (
		charWidth  = dotsW / DotsPerCol
		charHeight = dotsH / DotsPerRow
		rows       = canvas.Rows(0, 0, dotsW, dotsH)
		lines      = make([]string, 0, charHeight)
	)

	for i := range charHeight {
		if i >= len(rows) {
			lines = append(lines, strings.Repeat(" ", charWidth))
			continue
		}
		line := []rune(rows[i])
		switch {
		case len(line) < charWidth:
			lines = append(lines, string(line)+strings.Repeat(" ", charWidth-len(line)))
		case len(line) > charWidth:
			lines = append(lines, string(line[:charWidth]))
		default:
			lines = append(lines, string(line))
		}
	}

	return strings.Join(lines, "\n")
}

// Line plots a segment with Bresenham's algorithm.
func Line(canvas *drawille.Canvas, x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy

	for {
		canvas.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func IsBraille(r rune) bool {
	return r >= 0x2800 && r <= 0x28FF
}

// HasDots is false for the blank braille cell.
func HasDots(r rune) bool {
	return IsBraille(r) && r != Empty
}

// Combine ORs the dots of two braille cells.
func Combine(a, b rune) rune {
	return Empty + ((a - Empty) | (b - Empty))
}

func StripANSI(s string) string {
	var (
		result   strings.Builder
		inEscape = false
	)

	for _, r := range s {
		if r == ansiEscape {
			inEscape = true
			continue
		}
		if inEscape {
			if unicode.IsLetter(r) {
				inEscape = false
			}
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}

// ExtractStyledSegment returns the visible runes [start, end) of a styled string
// together with the escape sequences that precede each of them.
func ExtractStyledSegment(styledStr string, start, end int) string {
	var (
		result         strings.Builder
		visibleIdx     = 0
		inEscape       = false
		pendingEscapes strings.Builder
	)

	for _, r := range styledStr {
		if r == ansiEscape {
			inEscape = true
			pendingEscapes.WriteRune(r)
			continue
		}

		if inEscape {
			pendingEscapes.WriteRune(r)
			if unicode.IsLetter(r) {
				inEscape = false
			}
			continue
		}

		if visibleIdx >= start && visibleIdx < end {
			result.WriteString(pendingEscapes.String())
			result.WriteRune(r)
		}
		pendingEscapes.Reset()
		visibleIdx++
	}

	return result.String()
}

// Overlay draws the visible span of each foreground line on top of the
// background line, keeping the background styling on either side.
func Overlay(background, foreground string) string {
	var (
		bgLines  = strings.Split(background, "\n")
		fgLines  = strings.Split(foreground, "\n")
		maxLines = max(len(bgLines), len(fgLines))
		result   = make([]string, maxLines)
	)

	for i := range maxLines {
		var bgLine, fgLine string
		if i < len(bgLines) {
			bgLine = bgLines[i]
		}
		if i < len(fgLines) {
			fgLine = fgLines[i]
		}

		fgStart, fgEnd := -1, -1
		for idx, r := range []rune(StripANSI(fgLine)) {
			if r != ' ' {
				if fgStart == -1 {
					fgStart = idx
				}
				fgEnd = idx + 1
			}
		}
		if fgStart == -1 {
			result[i] = bgLine
			continue
		}

		bgWidth := len([]rune(StripANSI(bgLine)))

		var b strings.Builder
		b.WriteString(ExtractStyledSegment(bgLine, 0, min(fgStart, bgWidth)))
		for range fgStart - bgWidth {
			b.WriteRune(' ')
		}
		b.WriteString(ExtractStyledSegment(fgLine, fgStart, fgEnd))
		if fgEnd < bgWidth {
			b.WriteString(ExtractStyledSegment(bgLine, fgEnd, bgWidth))
		}
		result[i] = b.String()
	}

	return strings.Join(result, "\n")
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
