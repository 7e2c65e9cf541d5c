package blokus

import (
	"fmt"
	"strings"
)

// Grid is a rectangular matrix of cell characters used for both boards and
// pieces. Cells are stored in row-major order: index = row*w + col.
//
// The zero Grid has no cells; use Parse, NewGrid or NewEmptyGrid.
// Engine functions never write to a Grid they are given; call Clone before
// trialling a mutation on a shared board.
type Grid struct {
	w     int
	h     int
	cells []rune
}

// Parse builds a grid from text, one row per line.
// A single trailing newline is ignored and "\r\n" line endings are accepted.
// Empty text or rows of differing length are rejected with ErrInputFormat.
func Parse(text string) (Grid, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return Grid{}, fmt.Errorf("%w: empty grid", ErrInputFormat)
	}

	lines := strings.Split(text, "\n")
	rows := make([][]rune, len(lines))
	for i, line := range lines {
		rows[i] = []rune(line)
	}
	return NewGrid(rows)
}

// MustParse is like Parse but panics on malformed text.
// Intended for fixed piece literals and tests.
func MustParse(text string) Grid {
	g, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return g
}

// NewGrid builds a grid from explicit rows. The rows are copied.
func NewGrid(rows [][]rune) (Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Grid{}, fmt.Errorf("%w: empty grid", ErrInputFormat)
	}

	w := len(rows[0])
	g := Grid{w: w, h: len(rows), cells: make([]rune, 0, w*len(rows))}
	for i, row := range rows {
		if len(row) != w {
			return Grid{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInputFormat, i, len(row), w)
		}
		g.cells = append(g.cells, row...)
	}
	return g, nil
}

// NewEmptyGrid creates a height x width grid with every cell empty.
// Non-positive dimensions are rejected with ErrInputFormat.
func NewEmptyGrid(height, width int) (Grid, error) {
	if height < 1 || width < 1 {
		return Grid{}, fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInputFormat, height, width)
	}
	return filledGrid(height, width, EmptyMarker), nil
}

// filledGrid allocates a grid with every cell set to r.
func filledGrid(height, width int, r rune) Grid {
	cells := make([]rune, height*width)
	for i := range cells {
		cells[i] = r
	}
	return Grid{w: width, h: height, cells: cells}
}

// Width returns the number of columns.
func (g Grid) Width() int {
	return g.w
}

// Height returns the number of rows.
func (g Grid) Height() int {
	return g.h
}

// InBounds reports whether (row, col) lies inside the grid.
func (g Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.h && col >= 0 && col < g.w
}

// Cell returns the state at (row, col).
// Reads outside the grid return the out-of-bounds sentinel so geometry
// code can treat board edges like any other cell.
func (g Grid) Cell(row, col int) CellState {
	if !g.InBounds(row, col) {
		return OutOfBoundsCell()
	}
	return cellFromRune(g.cells[row*g.w+col])
}

// At is Cell addressed by a Point.
func (g Grid) At(p Point) CellState {
	return g.Cell(p.Row, p.Col)
}

// SetCell overwrites (row, col) with marker.
// Writes outside the grid fail with ErrOutOfBounds.
func (g *Grid) SetCell(row, col int, marker rune) error {
	if !g.InBounds(row, col) {
		return fmt.Errorf("%w: (%d, %d) outside %dx%d grid", ErrOutOfBounds, row, col, g.h, g.w)
	}
	g.cells[row*g.w+col] = marker
	return nil
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	cells := make([]rune, len(g.cells))
	copy(cells, g.cells)
	return Grid{w: g.w, h: g.h, cells: cells}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g Grid) Equal(other Grid) bool {
	if g.w != other.w || g.h != other.h {
		return false
	}
	for i, r := range g.cells {
		if r != other.cells[i] {
			return false
		}
	}
	return true
}

// OccupiedCount returns the number of occupied cells.
func (g Grid) OccupiedCount() int {
	count := 0
	for _, r := range g.cells {
		if r != EmptyMarker {
			count++
		}
	}
	return count
}

// String serializes the grid in the same format Parse accepts,
// without a trailing newline.
func (g Grid) String() string {
	var b strings.Builder
	b.Grow(len(g.cells) + g.h)
	for row := 0; row < g.h; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for _, r := range g.cells[row*g.w : (row+1)*g.w] {
			b.WriteRune(r)
		}
	}
	return b.String()
}
