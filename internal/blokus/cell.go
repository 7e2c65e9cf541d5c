package blokus

const (
	// EmptyMarker is the stored character of an empty cell.
	EmptyMarker = '.'
	// OutOfBoundsMarker is returned for reads outside a grid. It is never stored.
	OutOfBoundsMarker = '-'
)

// CellKind classifies a cell read.
type CellKind uint8

const (
	CellEmpty       CellKind = iota // in range, holding EmptyMarker
	CellOccupied                    // in range, holding any other character
	CellOutOfBounds                 // outside the grid
)

// String returns the string representation of a cell kind.
func (k CellKind) String() string {
	switch k {
	case CellEmpty:
		return "Empty"
	case CellOccupied:
		return "Occupied"
	case CellOutOfBounds:
		return "OutOfBounds"
	default:
		return "Unknown"
	}
}

// CellState is the result of reading a grid cell.
type CellState struct {
	Kind   CellKind
	Marker rune // Stored character; OutOfBoundsMarker for off-grid reads
}

// EmptyCell returns an empty cell.
func EmptyCell() CellState {
	return CellState{Kind: CellEmpty, Marker: EmptyMarker}
}

// OccupiedCell returns a cell occupied by the given marker.
func OccupiedCell(marker rune) CellState {
	return CellState{Kind: CellOccupied, Marker: marker}
}

// OutOfBoundsCell returns the sentinel read for coordinates outside a grid.
func OutOfBoundsCell() CellState {
	return CellState{Kind: CellOutOfBounds, Marker: OutOfBoundsMarker}
}

// cellFromRune classifies a stored character. Anything but '.' is occupied.
func cellFromRune(r rune) CellState {
	if r == EmptyMarker {
		return EmptyCell()
	}
	return OccupiedCell(r)
}

// IsEmpty reports whether the cell is in range and empty.
func (c CellState) IsEmpty() bool { return c.Kind == CellEmpty }

// IsOccupied reports whether the cell is in range and holds a marker.
func (c CellState) IsOccupied() bool { return c.Kind == CellOccupied }

// IsOutOfBounds reports whether the read fell outside the grid.
func (c CellState) IsOutOfBounds() bool { return c.Kind == CellOutOfBounds }

// Rune returns the character for this cell.
func (c CellState) Rune() rune {
	return c.Marker
}
