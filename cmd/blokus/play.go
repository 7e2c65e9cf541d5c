package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-blokus/internal/platform/console"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game in the terminal",
	Long: `Start a single-player game on an empty configured board.

Each turn:
  1. Choose a piece (q quits)
  2. Choose one of its legal moves (b or esc goes back, q quits)

Type an index and press enter, or move the highlight with up/down (k/j)
and press enter. The highlighted move is previewed on the board.

The chosen move is committed and the turn advances. The game ends when
every piece is used or no remaining piece has a legal move.

When input is not a terminal (for example a script piped to stdin), the
first invalid choice ends the game with an error instead of re-prompting,
and the prompts are printed as a transcript when the game ends.

Examples:
  blokus play
  blokus play --config ./blokus.yaml
  printf '0\n0\nq\n' | blokus play`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := newLogger()
	cfg := loadConfig(logger)

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	logger.Debug("starting session", "interactive", interactive)

	session, err := console.NewSession(cfg, console.Options{
		In:          os.Stdin,
		Out:         cmd.OutOrStdout(),
		Interactive: interactive,
		Logger:      logger,
	})
	if err != nil {
		fail("%v", err)
	}

	if err := session.Run(); err != nil {
		fail("%v", err)
	}
	logger.Info("game over", "turns", session.Turn(), "remaining", len(session.Remaining()))
}
