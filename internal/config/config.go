// Package config provides YAML-based configuration loading for the
// Blokus engine CLI: board dimensions, placement markers and the piece set.
package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-blokus/internal/blokus"
)

// BlokusConfig contains all configuration for a game.
type BlokusConfig struct {
	Board  BoardConfig   `yaml:"board"`
	Pieces []PieceConfig `yaml:"pieces"`
}

// BoardConfig defines the board and the markers written onto it.
type BoardConfig struct {
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	Marker        string `yaml:"marker"`         // Written for committed placements
	PreviewMarker string `yaml:"preview_marker"` // Written for move previews
}

// PieceConfig defines one piece in the plain-text grid format.
type PieceConfig struct {
	Name  string `yaml:"name"`
	Shape string `yaml:"shape"`
}

// Piece is a parsed, named piece.
type Piece struct {
	Name string
	Grid blokus.Grid
}

// Validate checks the configuration for values the engine cannot use.
func (c BlokusConfig) Validate() error {
	if c.Board.Width < 1 || c.Board.Height < 1 {
		return fmt.Errorf("invalid config: board must be at least 1x1, got %dx%d", c.Board.Height, c.Board.Width)
	}
	if err := validateMarker("marker", c.Board.Marker); err != nil {
		return err
	}
	if err := validateMarker("preview_marker", c.Board.PreviewMarker); err != nil {
		return err
	}
	if len(c.Pieces) == 0 {
		return fmt.Errorf("invalid config: no pieces defined")
	}

	names := make(map[string]bool, len(c.Pieces))
	for i, p := range c.Pieces {
		if p.Name == "" {
			return fmt.Errorf("invalid config: piece %d has no name", i)
		}
		if names[p.Name] {
			return fmt.Errorf("invalid config: duplicate piece %q", p.Name)
		}
		names[p.Name] = true

		g, err := blokus.Parse(p.Shape)
		if err != nil {
			return fmt.Errorf("invalid config: piece %q: %w", p.Name, err)
		}
		if g.OccupiedCount() == 0 {
			return fmt.Errorf("invalid config: piece %q has no cells", p.Name)
		}
	}
	return nil
}

// validateMarker requires a single non-empty-cell character.
func validateMarker(field, m string) error {
	if utf8.RuneCountInString(m) != 1 {
		return fmt.Errorf("invalid config: %s must be a single character, got %q", field, m)
	}
	r, _ := utf8.DecodeRuneInString(m)
	if r == blokus.EmptyMarker {
		return fmt.Errorf("invalid config: %s cannot be %q", field, blokus.EmptyMarker)
	}
	return nil
}

// MarkerRune returns the committed-placement marker.
func (c BlokusConfig) MarkerRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Board.Marker)
	return r
}

// PreviewRune returns the preview marker.
func (c BlokusConfig) PreviewRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Board.PreviewMarker)
	return r
}

// NewBoard creates an empty board with the configured dimensions.
func (c BlokusConfig) NewBoard() (blokus.Grid, error) {
	return blokus.NewEmptyGrid(c.Board.Height, c.Board.Width)
}

// ParsePieces parses the configured piece set, preserving file order.
func (c BlokusConfig) ParsePieces() ([]Piece, error) {
	pieces := make([]Piece, 0, len(c.Pieces))
	for _, p := range c.Pieces {
		g, err := blokus.Parse(p.Shape)
		if err != nil {
			return nil, fmt.Errorf("piece %q: %w", p.Name, err)
		}
		pieces = append(pieces, Piece{Name: p.Name, Grid: g})
	}
	return pieces, nil
}

// Piece returns the named piece.
func (c BlokusConfig) Piece(name string) (Piece, error) {
	for _, p := range c.Pieces {
		if p.Name != name {
			continue
		}
		g, err := blokus.Parse(p.Shape)
		if err != nil {
			return Piece{}, fmt.Errorf("piece %q: %w", p.Name, err)
		}
		return Piece{Name: p.Name, Grid: g}, nil
	}
	return Piece{}, fmt.Errorf("unknown piece %q", name)
}
