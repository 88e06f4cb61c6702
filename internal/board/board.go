package board

import "fmt"

// Size is the number of ranks and files.
const Size = 8

type Position struct {
	Row, Col int
}

func (p Position) Valid() bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

// String returns the square name. Row 0 is Black's back rank, so rank = 8-row.
func (p Position) String() string {
	if !p.Valid() {
		return "invalid"
	}
	return fmt.Sprintf("%c%d", 'a'+p.Col, Size-p.Row)
}

// Square is one cell of the grid. Background is fixed when the board is
// built; Piece is replaced wholesale on moves and captures.
type Square struct {
	Piece      Piece
	Background Color
}

// Board is an 8x8 grid indexed [row][col], row 0 being Black's back rank
// and row 7 White's.
//
// WhiteKing and BlackKing cache the king squares. They must always match
// the grid: code that relocates a king either goes through Set or Move,
// which keep them current, or updates the field itself.
type Board struct {
	Grid      [Size][Size]Square
	WhiteKing Position
	BlackKing Position
}

var backRank = [Size]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard returns a board in the standard starting position.
func NewBoard() *Board {
	b := &Board{}

	for row := range Size {
		for col := range Size {
			b.Grid[row][col] = Square{Piece: NoPiece, Background: backgroundAt(row, col)}
		}
	}

	for col := range Size {
		b.Grid[0][col].Piece = NewPiece(backRank[col], Black)
		b.Grid[1][col].Piece = NewPiece(Pawn, Black)
		b.Grid[6][col].Piece = NewPiece(Pawn, White)
		b.Grid[7][col].Piece = NewPiece(backRank[col], White)
	}

	b.BlackKing = Position{0, 4}
	b.WhiteKing = Position{7, 4}
	return b
}

// backgroundAt shades a square by the parity of row+col: even is dark.
func backgroundAt(row, col int) Color {
	if (row+col)%2 == 0 {
		return Black
	}
	return White
}

func (b *Board) Square(pos Position) Square {
	if !pos.Valid() {
		return Square{Piece: NoPiece}
	}
	return b.Grid[pos.Row][pos.Col]
}

func (b *Board) At(pos Position) Piece {
	if !pos.Valid() {
		return NoPiece
	}
	return b.Grid[pos.Row][pos.Col].Piece
}

// Set places piece on pos, updating the cached king square when piece is a King.
// Overwriting a king with anything else leaves its cached square stale; the
// caller must place that king elsewhere.
func (b *Board) Set(pos Position, piece Piece) {
	if !pos.Valid() {
		return
	}
	b.Grid[pos.Row][pos.Col].Piece = piece
	if piece.Type == King {
		b.setKingPos(piece.Color, pos)
	}
}

// Move relocates the piece on from to to, replacing whatever was there and
// marking the piece as moved. It does not check legality. It returns false
// if either square is off the board or from is empty.
func (b *Board) Move(from, to Position) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}

	piece := b.At(from)
	if piece.IsEmpty() {
		return false
	}

	b.Set(to, piece.WithMoved())
	if from != to {
		b.Grid[from.Row][from.Col].Piece = NoPiece
	}
	return true
}

// KingPos returns the cached king square for color.
func (b *Board) KingPos(color Color) Position {
	if color == White {
		return b.WhiteKing
	}
	return b.BlackKing
}

func (b *Board) setKingPos(color Color, pos Position) {
	if color == White {
		b.WhiteKing = pos
	} else {
		b.BlackKing = pos
	}
}
