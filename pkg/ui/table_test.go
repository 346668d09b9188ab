package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutoSizeColumns(t *testing.T) {
	rows := []Row{
		{"0", "Class"},
		{"25", "NegativeAnnotationAssertion"},
	}

	cols := AutoSizeColumns(&bytes.Buffer{}, []string{"ID", "NAME"}, rows)
	require.Len(t, cols, 2)
	assert.Equal(t, Column{Title: "ID", Width: 2}, cols[0])
	assert.Equal(t, Column{Title: "NAME", Width: len("NegativeAnnotationAssertion")}, cols[1])

	assert.Nil(t, AutoSizeColumns(&bytes.Buffer{}, nil, rows))
}

func TestRender(t *testing.T) {
	table := NewTable(
		WithColumns([]Column{{Title: "ID", Width: 2}, {Title: "NAME", Width: 8}}),
		WithRows([]Row{{"0", "Class"}, {"14", "AnnotationProperty"}}),
		WithStyles(TableStyles{Header: lipgloss.NewStyle(), Cell: lipgloss.NewStyle()}),
	)

	lines := strings.Split(table.Render(), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "ID  NAME    ", lines[0])
	assert.Equal(t, "0   Class   ", lines[1])
	assert.Equal(t, "14  Annotat…", lines[2])

	assert.Empty(t, NewTable().Render())
}
