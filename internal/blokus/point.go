// Package blokus provides move generation and placement validation for a
// Blokus-style tile-placement game.
// This package is UI-agnostic and deterministic: it performs no I/O and
// keeps no package-level mutable state.
package blokus

import "fmt"

// Point is a (row, col) coordinate on a board or inside a piece.
// Row increases downward, Col increases to the right.
type Point struct {
	Row int
	Col int
}

// P is a convenience constructor for Point.
func P(row, col int) Point {
	return Point{Row: row, Col: col}
}

// Add returns the component-wise sum of two points.
func (p Point) Add(other Point) Point {
	return Point{Row: p.Row + other.Row, Col: p.Col + other.Col}
}

// Sub returns the component-wise difference p - other.
func (p Point) Sub(other Point) Point {
	return Point{Row: p.Row - other.Row, Col: p.Col - other.Col}
}

// String returns a string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// less orders points row-major.
func (p Point) less(other Point) bool {
	if p.Row != other.Row {
		return p.Row < other.Row
	}
	return p.Col < other.Col
}

// orthogonal offsets, used by the collision check.
var orthogonal = [4]Point{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
