package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-blokus/internal/blokus"
	"github.com/vovakirdan/tui-blokus/internal/config"
)

func TestParsePoint(t *testing.T) {
	tests := []struct {
		input   string
		want    blokus.Point
		wantErr bool
	}{
		{"3,4", blokus.P(3, 4), false},
		{" 0 , 10 ", blokus.P(0, 10), false},
		{"-1,2", blokus.P(-1, 2), false},
		{"3", blokus.Point{}, true},
		{"a,1", blokus.Point{}, true},
		{"1,b", blokus.Point{}, true},
		{"1,2,3", blokus.Point{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parsePoint(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parsePoint(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parsePoint(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestResolvePiece(t *testing.T) {
	cfg := config.DefaultBlokusConfig()
	path := filepath.Join(t.TempDir(), "piece.txt")
	if err := os.WriteFile(path, []byte("xx\nx.\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	t.Cleanup(func() { flagPiece, flagPieceFile = "", "" })

	flagPiece, flagPieceFile = "I3", ""
	name, g, err := resolvePiece(cfg)
	if err != nil || name != "I3" || g.String() != "x\nx\nx" {
		t.Errorf("named piece = %s %q %v", name, g.String(), err)
	}

	flagPiece, flagPieceFile = "", path
	_, g, err = resolvePiece(cfg)
	if err != nil || g.String() != "xx\nx." {
		t.Errorf("piece file = %q %v", g.String(), err)
	}

	flagPiece, flagPieceFile = "I3", path
	if _, _, err := resolvePiece(cfg); err == nil {
		t.Error("expected an error when both --piece and --piece-file are set")
	}

	flagPiece, flagPieceFile = "", ""
	if _, _, err := resolvePiece(cfg); err == nil {
		t.Error("expected an error when no piece is given")
	}
}

func TestResolveBoard(t *testing.T) {
	cfg := config.DefaultBlokusConfig()
	t.Cleanup(func() { flagBoard = "" })

	flagBoard = ""
	board, err := resolveBoard(cfg)
	if err != nil {
		t.Fatalf("resolveBoard() failed: %v", err)
	}
	if board.Height() != 10 || board.Width() != 10 {
		t.Errorf("default board = %dx%d, want 10x10", board.Height(), board.Width())
	}

	path := filepath.Join(t.TempDir(), "board.txt")
	if err := os.WriteFile(path, []byte("...\n..\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	flagBoard = path
	if _, err := resolveBoard(cfg); err == nil {
		t.Error("expected a ragged board file to be rejected")
	}
}
