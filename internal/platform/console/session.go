// Package console runs a Blokus game in the terminal as a Bubble Tea
// program: choose a piece, choose one of its legal moves, commit it, repeat.
package console

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-blokus/internal/blokus"
	"github.com/vovakirdan/tui-blokus/internal/config"
)

// Options configures a Session.
type Options struct {
	In  io.Reader
	Out io.Writer

	// Interactive renders the model on a terminal and re-prompts on
	// malformed input. Otherwise input is a script: the first invalid
	// choice ends the game and the transcript is printed on exit.
	Interactive bool

	// Logger receives debug and info events. Nil discards them.
	Logger *log.Logger
}

// Session runs a Model to completion.
type Session struct {
	model       Model
	in          io.Reader
	out         io.Writer
	interactive bool
	logger      *log.Logger
}

// NewSession creates a session on an empty board from cfg.
func NewSession(cfg config.BlokusConfig, opts Options) (*Session, error) {
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	in := opts.In
	if in == nil {
		in = strings.NewReader("")
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	model, err := NewModel(cfg, out, opts.Interactive, logger)
	if err != nil {
		return nil, err
	}

	return &Session{
		model:       model,
		in:          in,
		out:         out,
		interactive: opts.Interactive,
		logger:      logger,
	}, nil
}

// Board returns a copy of the current board.
func (s *Session) Board() blokus.Grid {
	return s.model.Board()
}

// Turn returns the number of committed placements.
func (s *Session) Turn() int {
	return s.model.Turn()
}

// Remaining returns the names of the pieces not yet played.
func (s *Session) Remaining() []string {
	return s.model.Remaining()
}

// Run plays until the pieces run out, no piece has a legal move, the player
// quits with "q", or input ends.
func (s *Session) Run() error {
	opts := []tea.ProgramOption{tea.WithOutput(s.out)}

	var scripted *endNotifier
	if s.interactive {
		opts = append(opts, tea.WithInput(s.in))
	} else {
		scripted = &endNotifier{r: s.in}
		opts = append(opts, tea.WithInput(scripted), tea.WithoutRenderer())
	}

	p := tea.NewProgram(s.model, opts...)
	if scripted != nil {
		scripted.onEnd = func() { p.Send(inputEndedMsg{}) }
	}

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("console: %w", err)
	}
	if m, ok := final.(Model); ok {
		s.model = m
	}

	if s.interactive {
		fmt.Fprintln(s.out, s.model.Status())
	} else {
		fmt.Fprintln(s.out, s.model.Transcript())
	}
	fmt.Fprintln(s.out, "Final grid:")
	fmt.Fprintln(s.out, s.model.grid.Render(s.model.board))

	if err := s.model.Err(); err != nil {
		return err
	}
	s.logger.Debug("session finished", "turn", s.model.Turn())
	return nil
}

// endNotifier calls onEnd once when the wrapped reader is exhausted, so the
// program learns that a piped script has no more keys.
type endNotifier struct {
	r     io.Reader
	onEnd func()
	once  sync.Once
}

func (e *endNotifier) Read(p []byte) (int, error) {
	n, err := e.r.Read(p)
	if n == 0 && errors.Is(err, io.EOF) && e.onEnd != nil {
		e.once.Do(e.onEnd)
	}
	return n, err
}
