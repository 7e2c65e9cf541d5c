package blokus

import "fmt"

// Collides reports whether placing piece so that its pieceMark cell lands on
// gridCorner would overlap an occupied board cell or share an edge with one.
// Off-board reads count as empty, so board edges never collide by themselves.
//
// Every occupied piece cell must project inside the board. Callers either
// run the enumerator's bounds filter first or use ValidatePlacement; a piece
// cell projecting off-board without colliding panics with ErrOutOfBounds.
func Collides(board, piece Grid, gridCorner, pieceMark Point) bool {
	offset := gridCorner.Sub(pieceMark)
	for i := 0; i < piece.h; i++ {
		for j := 0; j < piece.w; j++ {
			if !piece.Cell(i, j).IsOccupied() {
				continue
			}
			p := P(i, j).Add(offset)
			if board.At(p).IsOccupied() {
				return true
			}
			for _, d := range orthogonal {
				if board.At(p.Add(d)).IsOccupied() {
					return true
				}
			}
			if board.At(p).IsOutOfBounds() {
				panic(fmt.Errorf("%w: piece cell (%d, %d) projects to %v outside %dx%d board",
					ErrOutOfBounds, i, j, p, board.h, board.w))
			}
		}
	}
	return false
}

// fits is the enumerator's bounds filter: the piece's bounding box, aligned
// so pieceMark sits on gridCorner, must lie entirely inside the board.
func fits(board, piece Grid, gridCorner, pieceMark Point) bool {
	if gridCorner.Row-pieceMark.Row < 0 || gridCorner.Row+(piece.h-pieceMark.Row-1) >= board.h {
		return false
	}
	if gridCorner.Col-pieceMark.Col < 0 || gridCorner.Col+(piece.w-pieceMark.Col-1) >= board.w {
		return false
	}
	return true
}

// ValidatePlacement checks a single candidate placement, such as one derived
// from pointer coordinates. It returns an error wrapping ErrOutOfBounds when
// the pivot is not an occupied piece cell or the piece does not fit on the
// board, ErrCollision when Collides is true, and nil for a legal placement.
//
// The corner-touch anchor rule is not checked here; GetMoves enforces it.
func ValidatePlacement(board, piece Grid, gridCorner, pieceMark Point) error {
	if !piece.InBounds(pieceMark.Row, pieceMark.Col) {
		return fmt.Errorf("%w: pivot %v outside %dx%d piece", ErrOutOfBounds, pieceMark, piece.h, piece.w)
	}
	if !piece.At(pieceMark).IsOccupied() {
		return fmt.Errorf("%w: pivot %v is an empty piece cell", ErrOutOfBounds, pieceMark)
	}
	if !fits(board, piece, gridCorner, pieceMark) {
		return fmt.Errorf("%w: piece at %v with pivot %v leaves %dx%d board",
			ErrOutOfBounds, gridCorner, pieceMark, board.h, board.w)
	}
	if Collides(board, piece, gridCorner, pieceMark) {
		return fmt.Errorf("%w: piece at %v with pivot %v", ErrCollision, gridCorner, pieceMark)
	}
	return nil
}
