package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/imjasonh/chessboard/internal/board"
	"github.com/muesli/termenv"
)

func TestPlanWhitePerspective(t *testing.T) {
	l := Plan(board.NewBoard(), true)

	if l.Files != "abcdefgh" {
		t.Errorf("Files = %q", l.Files)
	}
	for i, r := range l.Ranks {
		if want := 8 - i; r.Number != want {
			t.Errorf("rank %d numbered %d, want %d", i, r.Number, want)
		}
		for j, c := range r.Cells {
			if want := (board.Position{Row: i, Col: j}); c.Pos != want {
				t.Errorf("cell (%d,%d) is %v, want %v", i, j, c.Pos, want)
			}
		}
	}

	topLeft := l.Ranks[0].Cells[0]
	if topLeft.Pos.String() != "a8" || topLeft.Glyph != "♖" || topLeft.Ink != InkDark || !topLeft.Bold {
		t.Errorf("top left = %+v, want bold dark rook on a8", topLeft)
	}
}

func TestPlanBlackPerspective(t *testing.T) {
	b := board.NewBoard()
	white := Plan(b, true)
	black := Plan(b, false)

	if black.Files != "hgfedcba" {
		t.Errorf("Files = %q", black.Files)
	}
	for i := range board.Size {
		if got, want := black.Ranks[i].Number, i+1; got != want {
			t.Errorf("rank %d numbered %d, want %d", i, got, want)
		}
		for j := range board.Size {
			if got, want := black.Ranks[i].Cells[j], white.Ranks[7-i].Cells[7-j]; got != want {
				t.Errorf("black (%d,%d) = %+v, want mirror %+v", i, j, got, want)
			}
		}
	}

	if got := black.Ranks[0].Cells[0].Pos.String(); got != "h1" {
		t.Errorf("top left square = %s, want h1", got)
	}
}

func TestPlanEmptySquaresFollowBackground(t *testing.T) {
	b := board.NewBoard()
	// Leave a black rook next to an empty square so a neighbor's ink can't leak.
	b.Move(board.Position{Row: 0, Col: 0}, board.Position{Row: 3, Col: 3})

	for _, r := range Plan(b, true).Ranks {
		for _, c := range r.Cells {
			sq := b.Square(c.Pos)
			if !sq.Piece.IsEmpty() {
				if c.Ink != InkFor(sq.Piece.Color) || !c.Bold {
					t.Errorf("%s: %+v, want bold %s ink", c.Pos, c, InkFor(sq.Piece.Color))
				}
				continue
			}
			if c.Glyph != EmptyGlyph || c.Bold {
				t.Errorf("%s: %+v, want plain %q", c.Pos, c, EmptyGlyph)
			}
			if c.Ink != InkFor(sq.Background) {
				t.Errorf("%s: ink %s, want %s from background", c.Pos, c.Ink, InkFor(sq.Background))
			}
		}
	}
}

func TestGlyphsDistinct(t *testing.T) {
	seen := map[string]board.Piece{}
	for _, c := range []board.Color{board.White, board.Black} {
		for _, typ := range []board.PieceType{board.Pawn, board.Rook, board.Knight, board.Bishop, board.Queen, board.King} {
			p := board.NewPiece(typ, c)
			g := Glyph(p)
			if g == "" || g == EmptyGlyph {
				t.Errorf("Glyph(%s) = %q", p, g)
			}
			if prev, ok := seen[g]; ok {
				t.Errorf("%s and %s share glyph %q", prev, p, g)
			}
			seen[g] = p
			if Glyph(p.WithMoved()) != g {
				t.Errorf("moved %s drew a different glyph", p)
			}
		}
	}
	if Glyph(board.NoPiece) != EmptyGlyph {
		t.Errorf("Glyph(empty) = %q", Glyph(board.NoPiece))
	}
}

const startWhite = `      a   b   c   d   e   f   g   h
    +---+---+---+---+---+---+---+---+
 8  | ♖ | ♘ | ♗ | ♕ | ♔ | ♗ | ♘ | ♖ |
    +---+---+---+---+---+---+---+---+
 7  | ♙ | ♙ | ♙ | ♙ | ♙ | ♙ | ♙ | ♙ |
    +---+---+---+---+---+---+---+---+
 6  | · | · | · | · | · | · | · | · |
    +---+---+---+---+---+---+---+---+
 5  | · | · | · | · | · | · | · | · |
    +---+---+---+---+---+---+---+---+
 4  | · | · | · | · | · | · | · | · |
    +---+---+---+---+---+---+---+---+
 3  | · | · | · | · | · | · | · | · |
    +---+---+---+---+---+---+---+---+
 2  | ♟ | ♟ | ♟ | ♟ | ♟ | ♟ | ♟ | ♟ |
    +---+---+---+---+---+---+---+---+
 1  | ♜ | ♞ | ♝ | ♛ | ♚ | ♝ | ♞ | ♜ |
    +---+---+---+---+---+---+---+---+
      a   b   c   d   e   f   g   h
`

const startBlack = `      h   g   f   e   d   c   b   a
    +---+---+---+---+---+---+---+---+
 1  | ♜ | ♞ | ♝ | ♚ | ♛ | ♝ | ♞ | ♜ |
    +---+---+---+---+---+---+---+---+
 2  | ♟ | ♟ | ♟ | ♟ | ♟ | ♟ | ♟ | ♟ |
    +---+---+---+---+---+---+---+---+
 3  | · | · | · | · | · | · | · | · |
    +---+---+---+---+---+---+---+---+
 4  | · | · | · | · | · | · | · | · |
    +---+---+---+---+---+---+---+---+
 5  | · | · | · | · | · | · | · | · |
    +---+---+---+---+---+---+---+---+
 6  | · | · | · | · | · | · | · | · |
    +---+---+---+---+---+---+---+---+
 7  | ♙ | ♙ | ♙ | ♙ | ♙ | ♙ | ♙ | ♙ |
    +---+---+---+---+---+---+---+---+
 8  | ♖ | ♘ | ♗ | ♔ | ♕ | ♗ | ♘ | ♖ |
    +---+---+---+---+---+---+---+---+
      h   g   f   e   d   c   b   a
`

func TestDrawPlain(t *testing.T) {
	for _, tc := range []struct {
		name  string
		white bool
		want  string
	}{
		{"white", true, startWhite},
		{"black", false, startBlack},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Draw(&buf, board.NewBoard(), tc.white, Plain{}); err != nil {
				t.Fatal(err)
			}
			if got := buf.String(); got != tc.want {
				t.Errorf("Draw() =\n%s\nwant\n%s", got, tc.want)
			}
		})
	}
}

// recorder remembers what was painted, in order.
type recorder struct {
	calls []paintCall
}

type paintCall struct {
	text string
	Style
}

func (r *recorder) Paint(text string, s Style) string {
	r.calls = append(r.calls, paintCall{text, s})
	return text
}

func TestDrawPaintsFrameAndPieces(t *testing.T) {
	var r recorder
	s := String(board.NewBoard(), true, &r)
	if s != startWhite {
		t.Errorf("String() with recording painter differs from plain output")
	}

	var pieces, empties int
	for _, c := range r.calls {
		switch {
		case c.text == EmptyGlyph:
			empties++
			if c.Bold || c.Ink == InkFrame {
				t.Errorf("empty square painted %+v", c)
			}
		case c.Bold:
			pieces++
			if c.Ink == InkFrame {
				t.Errorf("piece %q painted with frame ink", c.text)
			}
		default:
			if c.Ink != InkFrame {
				t.Errorf("frame text %q painted with %s ink", c.text, c.Ink)
			}
		}
		if c.Highlight {
			t.Errorf("%q highlighted with no cursor", c.text)
		}
	}
	if pieces != 32 || empties != 32 {
		t.Errorf("painted %d pieces and %d empty squares, want 32 and 32", pieces, empties)
	}
}

func TestDrawDeterministic(t *testing.T) {
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(termenv.TrueColor)
	p := NewStylePainter(r)
	b := board.NewBoard()

	for _, white := range []bool{true, false} {
		var first, second bytes.Buffer
		if err := Draw(&first, b, white, p); err != nil {
			t.Fatal(err)
		}
		if err := Draw(&second, b, white, p); err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(first.Bytes(), second.Bytes()) {
			t.Errorf("white=%v: two draws of the same board differ", white)
		}
		if !strings.Contains(first.String(), "\x1b[") {
			t.Errorf("white=%v: true color output has no escape sequences", white)
		}
		if !strings.Contains(first.String(), "♚") {
			t.Errorf("white=%v: output lost the glyphs", white)
		}
	}
}

func TestStylePainterAscii(t *testing.T) {
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(termenv.Ascii)

	var buf bytes.Buffer
	if err := Draw(&buf, board.NewBoard(), true, NewStylePainter(r)); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != startWhite {
		t.Errorf("ascii profile output =\n%q\nwant\n%q", got, startWhite)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, bytes.ErrTooLarge }

func TestDrawWriteError(t *testing.T) {
	if err := Draw(failWriter{}, board.NewBoard(), true, Plain{}); err == nil {
		t.Error("Draw() to a failing writer returned nil")
	}
}

func TestHighlight(t *testing.T) {
	b := board.NewBoard()
	for _, tc := range []struct {
		name  string
		white bool
		pos   board.Position
		line  string
	}{
		{"white a8", true, board.Position{Row: 0, Col: 0}, " 8  |[♖]| ♘ | ♗ | ♕ | ♔ | ♗ | ♘ | ♖ |"},
		{"white e4", true, board.Position{Row: 4, Col: 4}, " 4  | · | · | · | · |[·]| · | · | · |"},
		{"black h1", false, board.Position{Row: 7, Col: 7}, " 1  |[♜]| ♞ | ♝ | ♚ | ♛ | ♝ | ♞ | ♜ |"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			l := Plan(b, tc.white)
			l.Highlight(tc.pos)

			var r recorder
			out := l.Render(&r)
			if !strings.Contains(out, tc.line+"\n") {
				t.Errorf("Render() missing %q:\n%s", tc.line, out)
			}
			if plain := Plan(b, tc.white).Render(Plain{}); len(plain) != len(out) {
				t.Errorf("highlight changed output length: %d vs %d", len(out), len(plain))
			}

			var highlighted []paintCall
			for _, c := range r.calls {
				if c.Highlight {
					highlighted = append(highlighted, c)
				}
			}
			want := "[" + Glyph(b.At(tc.pos)) + "]"
			if len(highlighted) != 1 || highlighted[0].text != want {
				t.Errorf("highlighted fragments = %+v, want one %q", highlighted, want)
			}
		})
	}
}

func TestHighlightOffBoard(t *testing.T) {
	b := board.NewBoard()
	l := Plan(b, true)
	l.Highlight(board.Position{Row: 8, Col: 0})
	if got := l.Render(Plain{}); got != startWhite {
		t.Errorf("off-board highlight changed output:\n%s", got)
	}
}

func TestStylePainterHighlight(t *testing.T) {
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(termenv.ANSI)
	p := NewStylePainter(r)

	plain := p.Paint("♜", Style{Ink: InkLight, Bold: true})
	lit := p.Paint("♜", Style{Ink: InkLight, Bold: true, Highlight: true})
	if plain == lit {
		t.Errorf("highlight did not change styling: %q", lit)
	}
	if !strings.Contains(lit, "♜") {
		t.Errorf("highlight lost the glyph: %q", lit)
	}
}
