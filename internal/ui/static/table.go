// Package static renders non-interactive terminal output such as tables.
package static

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/raphi011/clack/internal/ui/styles"
)

// RenderTable creates a formatted table with proper column alignment.
// Headers and rows are rendered using lipgloss/table which automatically
// calculates column widths based on content. No borders are rendered.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).PaddingRight(2)
			}
			return lipgloss.NewStyle().PaddingRight(2)
		})

	return t.String() + "\n"
}

// PresetHeaders are the columns of PresetRows.
var PresetHeaders = []string{"NAME", "CURRENT", "COLORS"}

// PresetRows lists every theme preset with a swatch of its dark variant,
// marking the one named current.
func PresetRows(current string) [][]string {
	names := styles.PresetNames()
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		mark := ""
		if name == current {
			mark = "*"
		}
		rows = append(rows, []string{name, mark, swatch(styles.GetPreset(name))})
	}
	return rows
}

// swatch draws one block per theme color, in field order.
func swatch(t *styles.Theme) string {
	if t == nil {
		return ""
	}
	var b strings.Builder
	for _, c := range []color.Color{t.Primary, t.Accent, t.Success, t.Error, t.Muted, t.Normal, t.Info, t.Warning} {
		if c == nil {
			b.WriteString("■")
			continue
		}
		b.WriteString(lipgloss.NewStyle().Foreground(c).Render("■"))
	}
	return b.String()
}
