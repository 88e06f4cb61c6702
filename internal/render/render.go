// Package render draws a board as framed, colored terminal text.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/imjasonh/chessboard/internal/board"
)

const (
	whiteFiles = "abcdefgh"
	blackFiles = "hgfedcba"
	separator  = "    +---+---+---+---+---+---+---+---+"
)

// Cell is one square as it will appear on screen.
type Cell struct {
	Pos   board.Position
	Glyph string
	Ink   Ink
	Bold  bool
	// Highlight marks the cell under a cursor. It is drawn as [g] so it
	// stays visible without colors.
	Highlight bool
}

func (c Cell) style() Style {
	return Style{Ink: c.Ink, Bold: c.Bold, Highlight: c.Highlight}
}

// Rank is one printed row, top to bottom.
type Rank struct {
	Number int
	Cells  [board.Size]Cell
}

// Layout is the board in display order for one perspective.
type Layout struct {
	Files string
	Ranks [board.Size]Rank
}

// Plan lays out b as seen by White (Black's back rank on top, files a..h)
// or by Black (everything mirrored).
func Plan(b *board.Board, whitePerspective bool) Layout {
	l := Layout{Files: whiteFiles}
	rank, step := board.Size, -1
	if !whitePerspective {
		l.Files = blackFiles
		rank, step = 1, 1
	}

	for i := range board.Size {
		row := i
		if !whitePerspective {
			row = board.Size - 1 - i
		}

		r := Rank{Number: rank}
		for j := range board.Size {
			col := j
			if !whitePerspective {
				col = board.Size - 1 - j
			}
			r.Cells[j] = cellFor(b.Grid[row][col], board.Position{Row: row, Col: col})
		}
		l.Ranks[i] = r
		rank += step
	}
	return l
}

// Highlight marks the cell showing pos. Off-board positions are ignored.
func (l *Layout) Highlight(pos board.Position) {
	for i := range l.Ranks {
		for j := range l.Ranks[i].Cells {
			if l.Ranks[i].Cells[j].Pos == pos {
				l.Ranks[i].Cells[j].Highlight = true
			}
		}
	}
}

// Render formats the layout with p.
func (l Layout) Render(p Painter) string {
	var s strings.Builder
	writeLayout(&s, l, p)
	return s.String()
}

func cellFor(sq board.Square, pos board.Position) Cell {
	if sq.Piece.IsEmpty() {
		return Cell{Pos: pos, Glyph: EmptyGlyph, Ink: InkFor(sq.Background)}
	}
	return Cell{Pos: pos, Glyph: Glyph(sq.Piece), Ink: InkFor(sq.Piece.Color), Bold: true}
}

// Draw writes b to w in the chosen perspective.
func Draw(w io.Writer, b *board.Board, whitePerspective bool, p Painter) error {
	if _, err := io.WriteString(w, Plan(b, whitePerspective).Render(p)); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}
	return nil
}

// String renders b for embedding in a larger view.
func String(b *board.Board, whitePerspective bool, p Painter) string {
	return Plan(b, whitePerspective).Render(p)
}

// Print draws b on standard output in true color.
func Print(b *board.Board, whitePerspective bool) error {
	return Draw(os.Stdout, b, whitePerspective, StdoutPainter())
}

func writeLayout(s *strings.Builder, l Layout, p Painter) {
	header := fileHeader(l.Files)
	s.WriteString(header)

	for _, r := range l.Ranks {
		fmt.Fprintf(s, "%s\n %d  ", p.Paint(separator, frame), r.Number)
		for _, c := range r.Cells {
			if c.Highlight {
				s.WriteString(p.Paint("|", frame))
				s.WriteString(p.Paint("["+c.Glyph+"]", c.style()))
				continue
			}
			s.WriteString(p.Paint("| ", frame))
			s.WriteString(p.Paint(c.Glyph, c.style()))
			s.WriteString(p.Paint(" ", frame))
		}
		s.WriteString(p.Paint("|", frame))
		s.WriteString("\n")
	}

	s.WriteString(p.Paint(separator, frame))
	s.WriteString("\n")
	s.WriteString(header)
}

func fileHeader(files string) string {
	var s strings.Builder
	s.WriteString("     ")
	for _, f := range files {
		fmt.Fprintf(&s, " %c  ", f)
	}
	return strings.TrimRight(s.String(), " ") + "\n"
}
