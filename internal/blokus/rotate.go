package blokus

import "fmt"

// rotations lists the angles tried for every piece, in order.
var rotations = [4]int{0, 90, 180, 270}

// placeholder pre-fills rotated grids; every cell is overwritten.
const placeholder = '@'

// Rotate returns a new grid holding g rotated clockwise by degrees.
// Degrees are reduced modulo 360 (negative angles rotate counterclockwise);
// anything other than a multiple of 90 fails with ErrConfiguration.
func Rotate(g Grid, degrees int) (Grid, error) {
	deg := ((degrees % 360) + 360) % 360
	h, w := g.h, g.w

	var out Grid
	switch deg {
	case 0, 180:
		out = filledGrid(h, w, placeholder)
	case 90, 270:
		out = filledGrid(w, h, placeholder)
	default:
		return Grid{}, fmt.Errorf("%w: rotation must be a multiple of 90 degrees, got %d", ErrConfiguration, degrees)
	}

	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			r := g.cells[i*w+j]
			switch deg {
			case 0:
				out.cells[i*out.w+j] = r
			case 90:
				out.cells[j*out.w+(h-1-i)] = r
			case 180:
				out.cells[(h-1-i)*out.w+(w-1-j)] = r
			case 270:
				out.cells[(w-1-j)*out.w+i] = r
			}
		}
	}
	return out, nil
}
