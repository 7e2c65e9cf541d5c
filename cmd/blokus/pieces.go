package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blokus/internal/platform/console"
)

var piecesCmd = &cobra.Command{
	Use:   "pieces",
	Short: "List the configured pieces",
	Long:  `Shows every piece in the configured piece set with its shape.`,
	Args:  cobra.NoArgs,
	Run:   runPieces,
}

func runPieces(cmd *cobra.Command, args []string) {
	cfg := loadConfig(newLogger())

	pieces, err := cfg.ParsePieces()
	if err != nil {
		fail("%v", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Pieces (%d):\n", len(pieces))
	for _, p := range pieces {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "%s (%d cells)\n", p.Name, p.Grid.OccupiedCount())
		console.RenderGrid(out, p.Grid, cfg.PreviewRune())
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'blokus moves --piece <name>' to list its moves.")
}
