package config

import (
	_ "embed"
)

//go:embed defaults/blokus.yaml
var defaultBlokusYAML []byte

// DefaultBlokusConfig returns the default configuration: a 10x10 board
// and the three-piece starter set.
func DefaultBlokusConfig() BlokusConfig {
	return BlokusConfig{
		Board: BoardConfig{
			Width:         10,
			Height:        10,
			Marker:        "x",
			PreviewMarker: "o",
		},
		Pieces: []PieceConfig{
			{Name: "I3", Shape: "x\nx\nx"},
			{Name: "I3H", Shape: "xxx"},
			{Name: "V5", Shape: "xxx\nx..\nx.."},
		},
	}
}
