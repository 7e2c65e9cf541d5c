package blokus

import (
	"errors"
	"testing"
)

const scenarioBoard = ".....\n.x...\n.x...\n.....\n....."

func TestCollides(t *testing.T) {
	domino := MustParse("x\nx")

	tests := []struct {
		name   string
		board  string
		piece  Grid
		corner Point
		mark   Point
		want   bool
	}{
		{
			name:   "edge adjacent",
			board:  scenarioBoard,
			piece:  domino,
			corner: P(3, 2),
			mark:   P(1, 0),
			want:   true,
		},
		{
			name:   "corner touch only",
			board:  scenarioBoard,
			piece:  domino,
			corner: P(3, 3),
			mark:   P(0, 0),
			want:   false,
		},
		{
			name:   "overlap",
			board:  scenarioBoard,
			piece:  domino,
			corner: P(1, 1),
			mark:   P(0, 0),
			want:   true,
		},
		{
			name:   "along board edge",
			board:  "...\n...\n...",
			piece:  MustParse("x"),
			corner: P(0, 0),
			mark:   P(0, 0),
			want:   false,
		},
		{
			name:   "diagonal neighbour",
			board:  "...\n.x.\n...",
			piece:  MustParse("x"),
			corner: P(2, 2),
			mark:   P(0, 0),
			want:   false,
		},
		{
			name:   "empty piece cells ignored",
			board:  "...\n.x.\n...",
			piece:  MustParse("x.\n.."),
			corner: P(0, 0),
			mark:   P(0, 0),
			want:   false,
		},
		{
			name:   "any marker collides",
			board:  "...\n.b.\n...",
			piece:  MustParse("x"),
			corner: P(0, 1),
			mark:   P(0, 0),
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := MustParse(tt.board)
			got := Collides(board, tt.piece, tt.corner, tt.mark)
			if got != tt.want {
				t.Errorf("Collides(corner=%v, mark=%v) = %v, want %v", tt.corner, tt.mark, got, tt.want)
			}
			if again := Collides(board, tt.piece, tt.corner, tt.mark); again != got {
				t.Errorf("Collides is not deterministic: %v then %v", got, again)
			}
		})
	}
}

func TestCollidesDoesNotModifyInputs(t *testing.T) {
	board := MustParse(scenarioBoard)
	piece := MustParse("x\nx")
	boardBefore, pieceBefore := board.Clone(), piece.Clone()

	Collides(board, piece, P(3, 3), P(0, 0))

	if !board.Equal(boardBefore) || !piece.Equal(pieceBefore) {
		t.Error("Collides must not modify its inputs")
	}
}

func TestCollidesPanicsOffBoard(t *testing.T) {
	board := MustParse("...\n...\n...")
	piece := MustParse("x")

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for a piece cell projected off the board")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("panic value = %v, want error wrapping ErrOutOfBounds", r)
		}
	}()

	Collides(board, piece, P(5, 5), P(0, 0))
}

func TestValidatePlacement(t *testing.T) {
	board := MustParse(scenarioBoard)
	domino := MustParse("x\nx")
	bend := MustParse("xxx\n..x\n..x")

	tests := []struct {
		name    string
		piece   Grid
		corner  Point
		mark    Point
		wantErr error
	}{
		{"legal", domino, P(3, 3), P(0, 0), nil},
		{"collides", domino, P(3, 2), P(1, 0), ErrCollision},
		{"off the bottom", domino, P(4, 3), P(0, 0), ErrOutOfBounds},
		{"off the top", domino, P(0, 3), P(1, 0), ErrOutOfBounds},
		{"off the side", domino, P(2, 5), P(0, 0), ErrOutOfBounds},
		{"pivot outside piece", domino, P(2, 3), P(0, 1), ErrOutOfBounds},
		{"pivot on empty piece cell", bend, P(2, 2), P(1, 0), ErrOutOfBounds},
		{"pivot on occupied piece cell", bend, P(0, 4), P(0, 2), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePlacement(board, tt.piece, tt.corner, tt.mark)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidatePlacement() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidatePlacement() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
