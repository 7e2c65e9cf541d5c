package blokus

import (
	"fmt"
	"sort"
)

// Move is a placement: Piece (already rotated) positioned so that its
// PieceMark cell lands on the board cell GridCorner.
type Move struct {
	Piece      Grid
	GridCorner Point
	PieceMark  Point
}

// Offset returns the translation from piece coordinates to board coordinates.
func (m Move) Offset() Point {
	return m.GridCorner.Sub(m.PieceMark)
}

// Footprint returns the board cells covered by the move, row-major by
// piece cell.
func (m Move) Footprint() []Point {
	offset := m.Offset()
	marks := DetectMarks(m.Piece)
	for i, mark := range marks {
		marks[i] = mark.Add(offset)
	}
	return marks
}

// String returns a compact description for logs.
func (m Move) String() string {
	return fmt.Sprintf("%dx%d piece at %v pivot %v", m.Piece.h, m.Piece.w, m.GridCorner, m.PieceMark)
}

// moveKey identifies a move by exact triple: shape, anchor and pivot.
type moveKey struct {
	shape  string
	anchor Point
	pivot  Point
}

func (m Move) key() moveKey {
	return moveKey{shape: m.Piece.String(), anchor: m.GridCorner, pivot: m.PieceMark}
}

// GetMoves enumerates every legal placement of piece on board for the given
// turn. All four rotations are tried against every anchor (the board corners
// on turn 0, DetectCorners otherwise) and every pivot (DetectMarks of the
// rotated piece). A candidate is kept when it fits on the board and does not
// collide.
//
// The result is a set: identical (shape, anchor, pivot) triples appear once.
// Two different triples covering the same board cells are both kept.
// Moves are returned in discovery order; use SortMoves for presentation.
// The board is never modified.
func GetMoves(board, piece Grid, turn int) []Move {
	var moves []Move
	seen := make(map[moveKey]struct{})
	anchorSet := anchors(board, turn)

	for _, deg := range rotations {
		rotated, err := Rotate(piece, deg)
		if err != nil {
			// rotations holds only multiples of 90
			panic(err)
		}
		pivots := DetectMarks(rotated)

		for _, anchor := range anchorSet {
			for _, pivot := range pivots {
				m := Move{Piece: rotated, GridCorner: anchor, PieceMark: pivot}
				k := m.key()
				if _, ok := seen[k]; ok {
					continue
				}
				if !fits(board, rotated, anchor, pivot) {
					continue
				}
				if Collides(board, rotated, anchor, pivot) {
					continue
				}
				seen[k] = struct{}{}
				moves = append(moves, m)
			}
		}
	}
	return moves
}

// SortMoves orders moves by anchor, then pivot, then piece shape.
func SortMoves(moves []Move) {
	sort.SliceStable(moves, func(i, j int) bool {
		a, b := moves[i], moves[j]
		if a.GridCorner != b.GridCorner {
			return a.GridCorner.less(b.GridCorner)
		}
		if a.PieceMark != b.PieceMark {
			return a.PieceMark.less(b.PieceMark)
		}
		return a.Piece.String() < b.Piece.String()
	})
}

// Place commits a move, writing marker to every board cell the piece covers.
// If any covered cell is off-board the board is left untouched and an error
// wrapping ErrOutOfBounds is returned. Place does not check collisions.
func Place(board *Grid, m Move, marker rune) error {
	cells := m.Footprint()
	for _, p := range cells {
		if !board.InBounds(p.Row, p.Col) {
			return fmt.Errorf("%w: move %v covers %v", ErrOutOfBounds, m, p)
		}
	}
	for _, p := range cells {
		if err := board.SetCell(p.Row, p.Col, marker); err != nil {
			return err
		}
	}
	return nil
}
