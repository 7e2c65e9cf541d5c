package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-blokus/internal/blokus"
	"github.com/vovakirdan/tui-blokus/internal/config"
)

var (
	flagBoard     string
	flagPiece     string
	flagPieceFile string
)

// readGrid parses a grid text file.
func readGrid(path string) (blokus.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return blokus.Grid{}, fmt.Errorf("reading %s: %w", path, err)
	}
	g, err := blokus.Parse(string(data))
	if err != nil {
		return blokus.Grid{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return g, nil
}

// resolveBoard returns the --board file, or an empty configured board.
func resolveBoard(cfg config.BlokusConfig) (blokus.Grid, error) {
	if flagBoard == "" {
		return cfg.NewBoard()
	}
	return readGrid(flagBoard)
}

// resolvePiece returns the --piece-file grid or the named --piece.
func resolvePiece(cfg config.BlokusConfig) (string, blokus.Grid, error) {
	switch {
	case flagPieceFile != "" && flagPiece != "":
		return "", blokus.Grid{}, fmt.Errorf("use either --piece or --piece-file, not both")
	case flagPieceFile != "":
		g, err := readGrid(flagPieceFile)
		return flagPieceFile, g, err
	case flagPiece != "":
		p, err := cfg.Piece(flagPiece)
		return p.Name, p.Grid, err
	default:
		return "", blokus.Grid{}, fmt.Errorf("a piece is required (--piece or --piece-file)")
	}
}

// parsePoint parses "row,col".
func parsePoint(s string) (blokus.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return blokus.Point{}, fmt.Errorf("point %q must be row,col", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return blokus.Point{}, fmt.Errorf("point %q: bad row: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return blokus.Point{}, fmt.Errorf("point %q: bad col: %w", s, err)
	}
	return blokus.P(row, col), nil
}
