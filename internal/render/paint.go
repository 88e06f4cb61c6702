package render

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/imjasonh/chessboard/internal/board"
	"github.com/muesli/termenv"
)

// Ink is the color a piece of board text is drawn in.
type Ink int

const (
	// InkFrame is used for borders and separators.
	InkFrame Ink = iota
	InkLight
	InkDark
)

func (i Ink) String() string {
	switch i {
	case InkLight:
		return "light"
	case InkDark:
		return "dark"
	}
	return "frame"
}

// InkFor maps a side (or a square shade) to its ink.
func InkFor(c board.Color) Ink {
	if c == board.White {
		return InkLight
	}
	return InkDark
}

// Style is how one fragment of board text should look.
type Style struct {
	Ink       Ink
	Bold      bool
	Highlight bool
}

var frame = Style{Ink: InkFrame}

// Painter styles a run of text. Draw calls it for every styled fragment,
// so swapping the Painter changes the escape sequences and nothing else.
type Painter interface {
	Paint(text string, s Style) string
}

// Plain leaves text unstyled.
type Plain struct{}

func (Plain) Paint(text string, _ Style) string { return text }

var (
	frameColor     = lipgloss.Color("#505050")
	lightColor     = lipgloss.Color("7")
	darkColor      = lipgloss.Color("1")
	highlightColor = lipgloss.Color("3")
)

// StylePainter paints with lipgloss styles bound to one renderer, which
// decides the color profile (stdout, an SSH session, a test buffer).
type StylePainter struct {
	styles [3]lipgloss.Style
}

func NewStylePainter(r *lipgloss.Renderer) *StylePainter {
	return &StylePainter{
		styles: [3]lipgloss.Style{
			InkFrame: r.NewStyle().Foreground(frameColor),
			InkLight: r.NewStyle().Foreground(lightColor),
			InkDark:  r.NewStyle().Foreground(darkColor),
		},
	}
}

func (p *StylePainter) Paint(text string, s Style) string {
	style := p.styles[s.Ink].Bold(s.Bold)
	if s.Highlight {
		style = style.Background(highlightColor)
	}
	return style.Render(text)
}

// StdoutPainter paints in true color for the process's standard output.
func StdoutPainter() *StylePainter {
	r := lipgloss.NewRenderer(os.Stdout)
	r.SetColorProfile(termenv.TrueColor)
	return NewStylePainter(r)
}
