package footer

import (
	"strings"

	"charm.land/lipgloss/v2"
)

const hintSeparator = " · "

// Footer is the bottom bar of the dashboard: build version and a status
// line on the left, key hints flush right.
type Footer struct {
	status  string
	hints   []string
	width   int
	padding int
}

func New(width int) Footer {
	return Footer{
		width:   width,
		padding: 2,
	}
}

func (f Footer) WithStatus(status string) Footer {
	f.status = status
	return f
}

func (f Footer) WithHints(hints ...string) Footer {
	f.hints = hints
	return f
}

func (f Footer) Render() string {
	left := versionLabel()
	if f.status != "" {
		left += "  " + f.status
	}
	right := strings.Join(f.hints, hintSeparator)

	spacerWidth := max(f.width-lipgloss.Width(left)-lipgloss.Width(right)-(f.padding*2), 0)

	return lipgloss.NewStyle().
		PaddingLeft(f.padding).
		PaddingRight(f.padding).
		Render(left + strings.Repeat(" ", spacerWidth) + right)
}
