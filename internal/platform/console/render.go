package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-blokus/internal/blokus"
)

// GridRenderer draws grids with row and column indices, one cell per
// column. Cells holding the preview marker are highlighted.
type GridRenderer struct {
	index    lipgloss.Style
	empty    lipgloss.Style
	occupied lipgloss.Style
	preview  lipgloss.Style

	previewMarker rune
}

// NewGridRenderer creates a renderer whose colors follow the terminal
// profile of r. Output to a non-terminal is plain text.
func NewGridRenderer(r *lipgloss.Renderer, previewMarker rune) GridRenderer {
	return GridRenderer{
		index:         r.NewStyle().Foreground(lipgloss.Color("245")),
		empty:         r.NewStyle().Foreground(lipgloss.Color("240")),
		occupied:      r.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		preview:       r.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		previewMarker: previewMarker,
	}
}

// Render returns g with a header row of column indices and a leading
// row index on every line. The result has no trailing newline.
func (gr GridRenderer) Render(g blokus.Grid) string {
	rowW := len(strconv.Itoa(g.Height() - 1))
	colW := len(strconv.Itoa(g.Width() - 1))

	lines := make([]string, 0, g.Height()+1)

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", rowW))
	for j := 0; j < g.Width(); j++ {
		b.WriteString(" ")
		b.WriteString(gr.index.Render(fmt.Sprintf("%*d", colW, j)))
	}
	lines = append(lines, b.String())

	for i := 0; i < g.Height(); i++ {
		b.Reset()
		b.WriteString(gr.index.Render(fmt.Sprintf("%*d", rowW, i)))
		for j := 0; j < g.Width(); j++ {
			b.WriteString(" ")
			b.WriteString(gr.cell(g.Cell(i, j), colW))
		}
		lines = append(lines, b.String())
	}

	return strings.Join(lines, "\n")
}

func (gr GridRenderer) cell(c blokus.CellState, width int) string {
	text := fmt.Sprintf("%*c", width, c.Rune())
	switch {
	case c.IsEmpty():
		return gr.empty.Render(text)
	case c.Rune() == gr.previewMarker:
		return gr.preview.Render(text)
	default:
		return gr.occupied.Render(text)
	}
}

// RenderGrid writes g to w, styled for w's terminal profile.
func RenderGrid(w io.Writer, g blokus.Grid, previewMarker rune) {
	gr := NewGridRenderer(lipgloss.NewRenderer(w), previewMarker)
	fmt.Fprintln(w, gr.Render(g))
}

// Preview returns a copy of board with m drawn using marker.
func Preview(board blokus.Grid, m blokus.Move, marker rune) (blokus.Grid, error) {
	preview := board.Clone()
	if err := blokus.Place(&preview, m, marker); err != nil {
		return blokus.Grid{}, err
	}
	return preview, nil
}
