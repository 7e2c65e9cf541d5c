package console

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-blokus/internal/blokus"
	"github.com/vovakirdan/tui-blokus/internal/config"
)

// ErrInvalidChoice is returned by a scripted session for unusable input.
var ErrInvalidChoice = errors.New("invalid choice")

type phase int

const (
	phasePiece phase = iota
	phaseMove
	phaseDone
)

// inputEndedMsg is sent when a scripted input stream is exhausted.
type inputEndedMsg struct{}

type menuStyles struct {
	title  lipgloss.Style
	cursor lipgloss.Style
	status lipgloss.Style
}

func newMenuStyles(r *lipgloss.Renderer) menuStyles {
	return menuStyles{
		title:  r.NewStyle().Bold(true),
		cursor: r.NewStyle().Foreground(lipgloss.Color("12")),
		status: r.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// Model is the Bubble Tea model of one player's game: the board, the
// remaining pieces and the turn counter. Each turn passes through a piece
// phase and a move phase; the turn and inventory are handed to the engine
// explicitly.
type Model struct {
	board   blokus.Grid
	pieces  []config.Piece
	turn    int
	marker  rune
	preview rune

	phase  phase
	moves  []blokus.Move
	piece  int
	cursor int
	input  string
	status string
	err    error

	// transcript records every prompt and message in order; a scripted
	// session prints it once the program exits.
	transcript []string

	interactive bool
	keys        KeyMap
	help        help.Model
	grid        GridRenderer
	styles      menuStyles
	logger      *log.Logger
}

// NewModel creates a model on an empty board from cfg. Board colors follow
// the terminal profile of out.
func NewModel(cfg config.BlokusConfig, out io.Writer, interactive bool, logger *log.Logger) (Model, error) {
	board, err := cfg.NewBoard()
	if err != nil {
		return Model{}, fmt.Errorf("console: %w", err)
	}
	pieces, err := cfg.ParsePieces()
	if err != nil {
		return Model{}, fmt.Errorf("console: %w", err)
	}
	if out == nil {
		out = io.Discard
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	renderer := lipgloss.NewRenderer(out)
	m := Model{
		board:       board,
		pieces:      pieces,
		marker:      cfg.MarkerRune(),
		preview:     cfg.PreviewRune(),
		interactive: interactive,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		grid:        NewGridRenderer(renderer, cfg.PreviewRune()),
		styles:      newMenuStyles(renderer),
		logger:      logger,
	}
	m, _ = m.startTurn()
	return m, nil
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	if m.phase == phaseDone {
		return tea.Quit
	}
	return nil
}

// Update handles messages for the session.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.phase == phaseDone {
			return m, nil
		}
		return m.handleKey(msg)

	case inputEndedMsg:
		if m.phase == phaseDone {
			return m, nil
		}
		return m.finish("Quitting!")

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.finish("Quitting!")

	case key.Matches(msg, m.keys.Back):
		if m.phase == phaseMove {
			m.logger.Debug("back to piece selection", "turn", m.turn)
			return m.startTurn()
		}

	case key.Matches(msg, m.keys.Select):
		return m.submit()

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.options()-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Delete):
		if m.input != "" {
			r := []rune(m.input)
			m.input = string(r[:len(r)-1])
		}

	case msg.Type == tea.KeyRunes:
		m.input += string(msg.Runes)
	}

	return m, nil
}

// submit selects the typed index, or the highlighted entry when nothing was
// typed. A scripted session ignores empty submissions.
func (m Model) submit() (Model, tea.Cmd) {
	line := strings.TrimSpace(m.input)
	m.input = ""

	idx := m.cursor
	if line == "" {
		if !m.interactive {
			return m, nil
		}
	} else {
		var err error
		if idx, err = parseIndex(line, m.options()); err != nil {
			return m.reject(err)
		}
	}

	if m.phase == phasePiece {
		return m.choosePiece(idx)
	}
	return m.chooseMove(idx)
}

// reject reports an unusable choice. An interactive session re-prompts;
// a scripted one stops with the error.
func (m Model) reject(err error) (Model, tea.Cmd) {
	m.emit(err.Error())
	if m.interactive {
		m.status = err.Error()
		return m, nil
	}
	m.err = err
	m.phase = phaseDone
	return m, tea.Quit
}

// startTurn opens the piece phase, or ends the game when no remaining
// piece has a legal move.
func (m Model) startTurn() (Model, tea.Cmd) {
	if !m.anyMoves() {
		return m.finish("No moves left!")
	}
	m.phase = phasePiece
	m.moves = nil
	m.cursor = 0
	m.input = ""
	m.emit(m.pieceMenu(false))
	return m, nil
}

func (m Model) choosePiece(idx int) (Model, tea.Cmd) {
	piece := m.pieces[idx]
	moves := blokus.GetMoves(m.board, piece.Grid, m.turn)
	blokus.SortMoves(moves)
	m.logger.Debug("moves enumerated", "piece", piece.Name, "turn", m.turn, "count", len(moves))

	if len(moves) == 0 {
		m.status = fmt.Sprintf("No moves for piece %s.", piece.Name)
		m.emit(m.status)
		return m.startTurn()
	}

	m.phase = phaseMove
	m.piece = idx
	m.moves = moves
	m.cursor = 0
	m.status = ""

	menu, err := m.moveMenu(-1)
	if err != nil {
		return m.fail(err)
	}
	m.emit(menu)
	return m, nil
}

func (m Model) chooseMove(idx int) (Model, tea.Cmd) {
	piece := m.pieces[m.piece]
	mv := m.moves[idx]

	board := m.board.Clone()
	if err := blokus.Place(&board, mv, m.marker); err != nil {
		return m.fail(fmt.Errorf("console: committing %s: %w", piece.Name, err))
	}
	m.board = board
	m.logger.Info("placement committed", "piece", piece.Name, "turn", m.turn, "anchor", mv.GridCorner, "pivot", mv.PieceMark)

	remaining := make([]config.Piece, 0, len(m.pieces)-1)
	remaining = append(remaining, m.pieces[:m.piece]...)
	m.pieces = append(remaining, m.pieces[m.piece+1:]...)
	m.turn++
	m.status = ""

	if len(m.pieces) == 0 {
		return m.finish("Used all pieces!")
	}

	m.emit("Grid:\n" + m.grid.Render(m.board))
	return m.startTurn()
}

// finish ends the game with a closing message.
func (m Model) finish(message string) (Model, tea.Cmd) {
	m.status = message
	m.emit(message)
	m.phase = phaseDone
	return m, tea.Quit
}

// fail ends the game with an internal error.
func (m Model) fail(err error) (Model, tea.Cmd) {
	m.err = err
	m.phase = phaseDone
	return m, tea.Quit
}

// anyMoves reports whether some remaining piece can be placed.
func (m Model) anyMoves() bool {
	for _, p := range m.pieces {
		if len(blokus.GetMoves(m.board, p.Grid, m.turn)) > 0 {
			return true
		}
	}
	return false
}

// options is the number of entries of the current menu.
func (m Model) options() int {
	if m.phase == phaseMove {
		return len(m.moves)
	}
	return len(m.pieces)
}

func (m *Model) emit(text string) {
	m.transcript = append(m.transcript, text)
}

// pieceMenu lists the remaining pieces with their shapes.
func (m Model) pieceMenu(withCursor bool) string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render("Pieces:"))
	b.WriteString("\n")
	for i, p := range m.pieces {
		b.WriteString(m.entry(i, p.Name, withCursor))
		b.WriteString("\n")
		b.WriteString(m.grid.Render(p.Grid))
		b.WriteString("\n")
	}
	b.WriteString("Choose piece: ")
	return b.String()
}

// moveMenu lists the legal moves of the chosen piece. With selected < 0
// every move is previewed; otherwise only the selected one is.
func (m Model) moveMenu(selected int) (string, error) {
	var b strings.Builder
	b.WriteString(m.styles.title.Render(fmt.Sprintf("Moves: %d", len(m.moves))))
	b.WriteString("\n")
	for i, mv := range m.moves {
		label := fmt.Sprintf("anchor %v pivot %v", mv.GridCorner, mv.PieceMark)
		b.WriteString(m.entry(i, label, selected >= 0))
		b.WriteString("\n")
		if selected >= 0 && i != selected {
			continue
		}
		preview, err := Preview(m.board, mv, m.preview)
		if err != nil {
			return "", fmt.Errorf("console: previewing move %d: %w", i, err)
		}
		b.WriteString(m.grid.Render(preview))
		b.WriteString("\n")
	}
	b.WriteString("Choose move: ")
	return b.String(), nil
}

func (m Model) entry(i int, label string, withCursor bool) string {
	line := fmt.Sprintf("[%d] %s", i, label)
	if !withCursor {
		return line
	}
	if i == m.cursor {
		return m.styles.cursor.Render("> " + line)
	}
	return "  " + line
}

// View renders the current phase.
func (m Model) View() string {
	if m.phase == phaseDone {
		return ""
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Turn %d\n", m.turn))
	b.WriteString(m.grid.Render(m.board))
	b.WriteString("\n\n")

	if m.phase == phaseMove {
		selected := m.cursor
		if idx, err := parseIndex(strings.TrimSpace(m.input), len(m.moves)); err == nil {
			selected = idx
		}
		menu, err := m.moveMenu(selected)
		if err != nil {
			menu = err.Error()
		}
		b.WriteString(menu)
	} else {
		b.WriteString(m.pieceMenu(true))
	}
	b.WriteString(m.input)
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(m.styles.status.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}

// Board returns a copy of the current board.
func (m Model) Board() blokus.Grid {
	return m.board.Clone()
}

// Turn returns the number of committed placements.
func (m Model) Turn() int {
	return m.turn
}

// Remaining returns the names of the pieces not yet played.
func (m Model) Remaining() []string {
	names := make([]string, len(m.pieces))
	for i, p := range m.pieces {
		names[i] = p.Name
	}
	return names
}

// Done reports whether the game has ended.
func (m Model) Done() bool {
	return m.phase == phaseDone
}

// Err returns the error that ended the game, if any.
func (m Model) Err() error {
	return m.err
}

// Status returns the latest message shown to the player.
func (m Model) Status() string {
	return m.status
}

// Transcript returns every prompt and message shown so far.
func (m Model) Transcript() string {
	return strings.Join(m.transcript, "\n")
}

// parseIndex parses a menu index in [0, n).
func parseIndex(line string, n int) (int, error) {
	idx, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an index", ErrInvalidChoice, line)
	}
	if idx < 0 || idx >= n {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidChoice, idx, n)
	}
	return idx, nil
}
