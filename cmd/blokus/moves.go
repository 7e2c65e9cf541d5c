package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blokus/internal/blokus"
	"github.com/vovakirdan/tui-blokus/internal/platform/console"
)

var (
	flagTurn    int
	flagPreview bool
)

var movesCmd = &cobra.Command{
	Use:   "moves",
	Short: "List legal moves for a piece",
	Long: `Enumerate every legal placement of a piece: all four rotations against
every anchor and pivot. On turn 0 the anchors are the board corners;
afterwards they are the corner-touch cells of the occupied board.

Moves are printed sorted by anchor, then pivot, then shape.

Examples:
  blokus moves --piece I3
  blokus moves --piece V5 --board board.txt --turn 2 --preview
  blokus moves --piece-file piece.txt --board board.txt --turn 1`,
	Args: cobra.NoArgs,
	Run:  runMoves,
}

func init() {
	movesCmd.Flags().StringVar(&flagBoard, "board", "", "Board text file (default: empty configured board)")
	movesCmd.Flags().StringVar(&flagPiece, "piece", "", "Piece name from the config")
	movesCmd.Flags().StringVar(&flagPieceFile, "piece-file", "", "Piece text file")
	movesCmd.Flags().IntVar(&flagTurn, "turn", 0, "Turn index (0 = first move)")
	movesCmd.Flags().BoolVar(&flagPreview, "preview", false, "Print the board with each move drawn")
}

func runMoves(cmd *cobra.Command, args []string) {
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
	if flagTurn < 0 {
		fail("--turn must not be negative")
	}

	moves := blokus.GetMoves(board, piece, flagTurn)
	blokus.SortMoves(moves)
	logger.Debug("moves enumerated", "piece", name, "turn", flagTurn, "count", len(moves))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Moves: %d\n", len(moves))
	for i, m := range moves {
		fmt.Fprintf(out, "[%d] anchor %v pivot %v covers %v\n", i, m.GridCorner, m.PieceMark, m.Footprint())
		if !flagPreview {
			continue
		}
		preview, err := console.Preview(board, m, cfg.PreviewRune())
		if err != nil {
			fail("previewing move %d: %v", i, err)
		}
		console.RenderGrid(out, preview, cfg.PreviewRune())
	}
}
