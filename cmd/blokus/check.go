package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blokus/internal/blokus"
	"github.com/vovakirdan/tui-blokus/internal/platform/console"
)

var (
	flagAnchor string
	flagPivot  string
	flagRotate int
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a single placement",
	Long: `Check whether a piece, optionally rotated, can be placed with its pivot
cell on the anchor cell: it must fit on the board and must not overlap
or share an edge with any occupied cell. The pivot is a row,col of the
rotated piece and must be one of its occupied cells; the default 0,0 is
empty for some shapes (V5 rotated 90 or 180, for example).

Exits with status 1 when the placement is not legal.

Examples:
  blokus check --board board.txt --piece I3 --anchor 3,3 --pivot 0,0
  blokus check --board board.txt --piece V5 --rotate 90 --anchor 4,2 --pivot 0,2`,
	Args: cobra.NoArgs,
	Run:  runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&flagBoard, "board", "", "Board text file (default: empty configured board)")
	checkCmd.Flags().StringVar(&flagPiece, "piece", "", "Piece name from the config")
	checkCmd.Flags().StringVar(&flagPieceFile, "piece-file", "", "Piece text file")
	checkCmd.Flags().StringVar(&flagAnchor, "anchor", "", "Board cell row,col for the pivot")
	checkCmd.Flags().StringVar(&flagPivot, "pivot", "0,0", "Occupied cell row,col of the rotated piece placed on the anchor")
	checkCmd.Flags().IntVar(&flagRotate, "rotate", 0, "Clockwise rotation in degrees (0, 90, 180, 270)")
	_ = checkCmd.MarkFlagRequired("anchor")
}

func runCheck(cmd *cobra.Command, args []string) {
	logger := newLogger()
	cfg := loadConfig(logger)

	board, err := resolveBoard(cfg)
	if err != nil {
		fail("%v", err)
	}
	name, piece, err := resolvePiece(cfg)
	if err != nil {
		fail("%v", err)
	}
	piece, err = blokus.Rotate(piece, flagRotate)
	if err != nil {
		fail("%v", err)
	}
	anchor, err := parsePoint(flagAnchor)
	if err != nil {
		fail("--anchor: %v", err)
	}
	pivot, err := parsePoint(flagPivot)
	if err != nil {
		fail("--pivot: %v", err)
	}

	out := cmd.OutOrStdout()
	err = blokus.ValidatePlacement(board, piece, anchor, pivot)
	logger.Debug("placement checked", "piece", name, "anchor", anchor, "pivot", pivot, "error", err)

	switch {
	case err == nil:
		fmt.Fprintln(out, "Valid placement")
		preview, perr := console.Preview(board, blokus.Move{Piece: piece, GridCorner: anchor, PieceMark: pivot}, cfg.PreviewRune())
		if perr != nil {
			fail("%v", perr)
		}
		console.RenderGrid(out, preview, cfg.PreviewRune())
	case errors.Is(err, blokus.ErrCollision), errors.Is(err, blokus.ErrOutOfBounds):
		fmt.Fprintf(out, "Invalid placement: %v\n", err)
		os.Exit(1)
	default:
		fail("%v", err)
	}
}
