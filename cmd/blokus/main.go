// blokus enumerates and validates piece placements for a Blokus-style game.
//
// Usage:
//
//	blokus pieces                          - List the configured pieces
//	blokus moves --piece <name>            - List legal moves for a piece
//	blokus check --piece <name> --anchor r,c --pivot r,c
//	                                       - Validate one placement
//	blokus play                            - Play in the terminal, one turn at a time
//
// Global flags:
//
//	--config <path>  - Config YAML (default: ~/.blokus/configs/blokus.yaml, then built-in)
//	--debug          - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blokus/internal/config"
)

var (
	// Global flags
	flagConfig string
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blokus",
	Short: "Blokus move engine - enumerate and validate placements",
	Long: `blokus generates every legal placement of a polyomino piece on a
Blokus-style board under the corner-touch rule.

Boards and pieces are plain text, one row per line: '.' is empty and
any other character is occupied.

Available commands:
  pieces   - Show the configured piece set
  moves    - List legal moves for a piece on a board
  check    - Validate a single placement
  play     - Play a game in the terminal

Examples:
  blokus pieces
  blokus moves --piece V5
  blokus moves --board board.txt --piece-file piece.txt --turn 3
  blokus check --board board.txt --piece I3 --anchor 3,3 --pivot 0,0
  blokus play --config ./blokus.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(piecesCmd)
	rootCmd.AddCommand(movesCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(playCmd)
}

// newLogger creates the stderr logger shared by all commands.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "blokus",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadConfig loads the configuration or exits.
func loadConfig(logger *log.Logger) config.BlokusConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("loading config: %v", err)
	}
	logger.Debug("config loaded", "path", flagConfig, "board", fmt.Sprintf("%dx%d", cfg.Board.Height, cfg.Board.Width), "pieces", len(cfg.Pieces))
	return cfg
}

// fail prints an error and exits with status 1.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
