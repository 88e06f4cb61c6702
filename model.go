package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/imjasonh/chessboard/internal/board"
	"github.com/imjasonh/chessboard/internal/render"
)

// model is a read-only board viewer. The cursor is tracked in display
// coordinates so arrow keys move the way the board looks in either perspective.
type model struct {
	board     *board.Board
	painter   render.Painter
	white     bool
	cursorRow int
	cursorCol int
}

func initialModel(painter render.Painter, white bool) model {
	return model{
		board:     board.NewBoard(),
		painter:   painter,
		white:     white,
		cursorRow: board.Size - 1,
		cursorCol: 0,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursorRow > 0 {
			m.cursorRow--
		}
	case "down", "j":
		if m.cursorRow < board.Size-1 {
			m.cursorRow++
		}
	case "left", "h":
		if m.cursorCol > 0 {
			m.cursorCol--
		}
	case "right", "l":
		if m.cursorCol < board.Size-1 {
			m.cursorCol++
		}
	case "f":
		m.white = !m.white
	}
	return m, nil
}

// cursor returns the board square under the cursor.
func (m model) cursor() board.Position {
	if m.white {
		return board.Position{Row: m.cursorRow, Col: m.cursorCol}
	}
	return board.Position{Row: board.Size - 1 - m.cursorRow, Col: board.Size - 1 - m.cursorCol}
}

func (m model) perspective() board.Color {
	if m.white {
		return board.White
	}
	return board.Black
}

func (m model) View() string {
	var s strings.Builder

	s.WriteString("Chessboard\n")
	s.WriteString("Arrow keys move the cursor, F flips the board, Q quits\n\n")

	boardLines := strings.Split(strings.TrimSuffix(m.boardView(), "\n"), "\n")
	infoLines := m.infoLines()

	n := max(len(boardLines), len(infoLines))
	for i := range n {
		if i < len(boardLines) {
			s.WriteString(boardLines[i])
		}
		if i < len(infoLines) {
			s.WriteString("   ")
			s.WriteString(infoLines[i])
		}
		s.WriteString("\n")
	}
	return s.String()
}

// boardView draws the board with the cursor square highlighted.
func (m model) boardView() string {
	l := render.Plan(m.board, m.white)
	l.Highlight(m.cursor())
	return l.Render(m.painter)
}

func (m model) infoLines() []string {
	pos := m.cursor()
	sq := m.board.Square(pos)

	// Line up with the first rank row of the board.
	lines := []string{"", ""}
	lines = append(lines, "┌─────────────────────┐")
	lines = append(lines, "│ BOARD INFO          │")
	lines = append(lines, "├─────────────────────┤")
	lines = append(lines, fmt.Sprintf("│ Viewing as: %-7s │", m.perspective()))
	lines = append(lines, "│                     │")
	lines = append(lines, fmt.Sprintf("│ Cursor: %-11s │", pos))
	lines = append(lines, fmt.Sprintf("│ Square: %-11s │", sq.Background))
	if sq.Piece.IsEmpty() {
		lines = append(lines, "│ Piece: Empty        │")
	} else {
		lines = append(lines, fmt.Sprintf("│ Piece: %-12s │", sq.Piece))
		if sq.Piece.Type.TracksMoves() {
			lines = append(lines, fmt.Sprintf("│ Moved: %-12t │", sq.Piece.Moved))
		}
	}
	lines = append(lines, "├─────────────────────┤")
	lines = append(lines, fmt.Sprintf("│ White king: %-7s │", m.board.KingPos(board.White)))
	lines = append(lines, fmt.Sprintf("│ Black king: %-7s │", m.board.KingPos(board.Black)))
	lines = append(lines, "└─────────────────────┘")
	return lines
}
