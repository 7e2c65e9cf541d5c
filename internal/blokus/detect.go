package blokus

import "sort"

// DetectMarks returns every occupied cell of a piece in row-major order.
// Each mark is a candidate pivot for aligning the piece with an anchor.
func DetectMarks(piece Grid) []Point {
	marks := make([]Point, 0, piece.OccupiedCount())
	for i := 0; i < piece.h; i++ {
		for j := 0; j < piece.w; j++ {
			if piece.Cell(i, j).IsOccupied() {
				marks = append(marks, P(i, j))
			}
		}
	}
	return marks
}

// DetectCorners returns the anchor candidates of a board: diagonal
// neighbours of occupied cells whose two intervening orthogonal cells are
// both empty. An off-board orthogonal cell does not count as empty.
//
// The result has no duplicates and is sorted row-major. Candidates may
// themselves be occupied or off-board; the enumerator filters those.
func DetectCorners(board Grid) []Point {
	seen := make(map[Point]struct{})
	var corners []Point

	add := func(p Point) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		corners = append(corners, p)
	}

	for i := 0; i < board.h; i++ {
		for j := 0; j < board.w; j++ {
			if !board.Cell(i, j).IsOccupied() {
				continue
			}
			for _, dr := range [2]int{-1, 1} {
				for _, dc := range [2]int{-1, 1} {
					if board.Cell(i+dr, j).IsEmpty() && board.Cell(i, j+dc).IsEmpty() {
						add(P(i+dr, j+dc))
					}
				}
			}
		}
	}

	sort.Slice(corners, func(a, b int) bool {
		return corners[a].less(corners[b])
	})
	return corners
}

// StartCorners returns the anchors used on the first turn:
// (0,0), (H,0), (0,W) and (H,W), independent of board contents.
func StartCorners(board Grid) []Point {
	return []Point{
		P(0, 0),
		P(board.h, 0),
		P(0, board.w),
		P(board.h, board.w),
	}
}

// anchors selects the anchor set for a turn.
func anchors(board Grid, turn int) []Point {
	if turn == 0 {
		return StartCorners(board)
	}
	return DetectCorners(board)
}
