// Package ui renders plain tables for the ontology CLI.
package ui

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

type Column struct {
	Title string
	Width int
}

type Row []string

// Table is a non-interactive table. Cells wider than their column are
// truncated with an ellipsis.
type Table struct {
	columns []Column
	rows    []Row
	styles  TableStyles
}

type TableStyles struct {
	Header lipgloss.Style
	Cell   lipgloss.Style
}

func DefaultTableStyles() TableStyles {
	return TableStyles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220")),
		Cell: lipgloss.NewStyle(),
	}
}

type TableOption func(*Table)

func WithColumns(cols []Column) TableOption {
	return func(t *Table) {
		t.columns = cols
	}
}

func WithRows(rows []Row) TableOption {
	return func(t *Table) {
		t.rows = rows
	}
}

func WithStyles(styles TableStyles) TableOption {
	return func(t *Table) {
		t.styles = styles
	}
}

func NewTable(opts ...TableOption) *Table {
	t := &Table{
		styles: DefaultTableStyles(),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// terminalWidth reports the width of out when it is a terminal, and 0
// otherwise.
func terminalWidth(out io.Writer) int {
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}

	if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
		return width
	}

	return 80
}

// AutoSizeColumns sizes each column to its widest value. When out is a
// terminal the columns are scaled down to fit it.
func AutoSizeColumns(out io.Writer, headers []string, rows []Row) []Column {
	if len(headers) == 0 {
		return nil
	}

	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = lipgloss.Width(header)
	}

	for _, row := range rows {
		for i, value := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(value))
			}
		}
	}

	if termWidth := terminalWidth(out); termWidth > 0 {
		gaps := (len(headers) - 1) * 2

		total := gaps
		for _, w := range widths {
			total += w
		}

		if total > termWidth {
			scale := float64(termWidth-gaps) / float64(total-gaps)

			for i := range widths {
				widths[i] = max(int(float64(widths[i])*scale), 10)
			}
		}
	}

	columns := make([]Column, len(headers))
	for i, header := range headers {
		columns[i] = Column{
			Title: header,
			Width: widths[i],
		}
	}

	return columns
}

func (t *Table) Render() string {
	if len(t.columns) == 0 || len(t.rows) == 0 {
		return ""
	}

	lines := []string{t.render(t.titles(), t.styles.Header)}

	for _, row := range t.rows {
		lines = append(lines, t.render(row, t.styles.Cell))
	}

	return strings.Join(lines, "\n")
}

func (t *Table) titles() Row {
	row := make(Row, len(t.columns))
	for i, col := range t.columns {
		row[i] = col.Title
	}
	return row
}

func (t *Table) render(row Row, style lipgloss.Style) string {
	cells := make([]string, 0, len(t.columns)*2)

	for i, col := range t.columns {
		if col.Width <= 0 {
			continue
		}

		if i > 0 {
			cells = append(cells, "  ")
		}

		value := ""
		if i < len(row) {
			value = row[i]
		}

		cell := lipgloss.NewStyle().
			Width(col.Width).
			MaxWidth(col.Width).
			Inline(true)

		cells = append(cells, style.Render(cell.Render(runewidth.Truncate(value, col.Width, "…"))))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}
