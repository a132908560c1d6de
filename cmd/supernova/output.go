package main

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	go_json "github.com/goccy/go-json"

	"github.com/zyclope0/supernovafit-sub004/internal/tui/theme"
)

var styles = theme.New()

func writeJSON(w io.Writer, v any) error {
	enc := go_json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

// field is one "label  value" line of a text report.
type field struct {
	label string
	value string
}

func writeSection(w io.Writer, title string, fields []field) error {
	width := 0
	for _, f := range fields {
		width = max(width, len(f.label))
	}

	var b strings.Builder
	b.WriteString(styles.Heading().Render(title))
	b.WriteByte('\n')
	for _, f := range fields {
		b.WriteString("  ")
		b.WriteString(styles.Label().Render(f.label + strings.Repeat(" ", width-len(f.label))))
		b.WriteString("  ")
		b.WriteString(f.value)
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// writeTable renders rows under an underlined header, columns separated by padding only.
func writeTable(w io.Writer, header []string, rows [][]string) error {
	cell := lipgloss.NewStyle().PaddingRight(2)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.Label()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.Heading().PaddingRight(2)
			}
			return cell
		}).
		Headers(header...).
		Rows(rows...)

	_, err := io.WriteString(w, t.Render()+"\n")
	return err
}

func balanceValue(kcal float64, deficit bool) string {
	if deficit {
		return styles.Balance(true).Render(fmt.Sprintf("%.0f kcal (deficit)", kcal))
	}
	return styles.Balance(false).Render(fmt.Sprintf("+%.0f kcal (surplus)", kcal))
}
