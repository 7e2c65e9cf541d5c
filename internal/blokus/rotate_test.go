package blokus

import (
	"errors"
	"testing"
)

func TestRotate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		degrees  int
		expected string
	}{
		{
			name:     "square 90",
			input:    ".x\nxx",
			degrees:  90,
			expected: "x.\nxx",
		},
		{
			name:     "identity",
			input:    "xxx\nx..",
			degrees:  0,
			expected: "xxx\nx..",
		},
		{
			name:     "wide 90",
			input:    "xxx\nx..",
			degrees:  90,
			expected: "xx\n.x\n.x",
		},
		{
			name:     "wide 180",
			input:    "xxx\nx..",
			degrees:  180,
			expected: "..x\nxxx",
		},
		{
			name:     "wide 270",
			input:    "xxx\nx..",
			degrees:  270,
			expected: "x.\nx.\nxx",
		},
		{
			name:     "bar 90",
			input:    "x\nx\nx",
			degrees:  90,
			expected: "xxx",
		},
		{
			name:     "markers preserved",
			input:    "ab\ncd",
			degrees:  90,
			expected: "ca\ndb",
		},
		{
			name:     "360 reduces to 0",
			input:    "xx.",
			degrees:  360,
			expected: "xx.",
		},
		{
			name:     "450 reduces to 90",
			input:    "xx.",
			degrees:  450,
			expected: "x\nx\n.",
		},
		{
			name:     "negative 90 is 270",
			input:    "xx.",
			degrees:  -90,
			expected: ".\nx\nx",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Rotate(MustParse(tt.input), tt.degrees)
			if err != nil {
				t.Fatalf("Rotate(%d) failed: %v", tt.degrees, err)
			}
			if got.String() != tt.expected {
				t.Errorf("Rotate(%q, %d) = %q, want %q", tt.input, tt.degrees, got.String(), tt.expected)
			}
		})
	}
}

func TestRotateInvalidDegrees(t *testing.T) {
	g := MustParse("x.")
	for _, deg := range []int{45, 1, 359, -45, 100} {
		if _, err := Rotate(g, deg); !errors.Is(err, ErrConfiguration) {
			t.Errorf("Rotate(%d) error = %v, want ErrConfiguration", deg, err)
		}
	}
}

func TestRotateRoundTrips(t *testing.T) {
	inputs := []string{
		"x",
		"xxx\nx..\nx..",
		".x\nxx",
		"ab.\n.cd\ne..\n..f",
		"..........\n...x......",
	}

	mustRotate := func(g Grid, deg int) Grid {
		t.Helper()
		r, err := Rotate(g, deg)
		if err != nil {
			t.Fatalf("Rotate(%d) failed: %v", deg, err)
		}
		return r
	}

	for _, text := range inputs {
		g := MustParse(text)

		if !mustRotate(g, 0).Equal(g) {
			t.Errorf("rotate 0 of %q changed the grid", text)
		}

		full := g
		for i := 0; i < 4; i++ {
			full = mustRotate(full, 90)
		}
		if !full.Equal(g) {
			t.Errorf("four 90 rotations of %q = %q", text, full.String())
		}

		if half := mustRotate(mustRotate(g, 180), 180); !half.Equal(g) {
			t.Errorf("two 180 rotations of %q = %q", text, half.String())
		}

		if back := mustRotate(mustRotate(g, 90), 270); !back.Equal(g) {
			t.Errorf("90 then 270 of %q = %q", text, back.String())
		}
	}
}

func TestRotateDoesNotAlias(t *testing.T) {
	g := MustParse("x.\n..")
	r, err := Rotate(g, 0)
	if err != nil {
		t.Fatalf("Rotate() failed: %v", err)
	}
	if err := r.SetCell(1, 1, 'x'); err != nil {
		t.Fatalf("SetCell() failed: %v", err)
	}
	if g.Cell(1, 1).IsOccupied() {
		t.Error("rotated grid should not share storage with its input")
	}
}
