package board

type Color int

const (
	White Color = iota
	Black
)

func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opponent returns the other side.
func (c Color) Opponent() Color {
	return 1 - c
}

type PieceType int

const (
	Empty PieceType = iota
	Pawn
	Rook
	Knight
	Bishop
	Queen
	King
)

func (t PieceType) String() string {
	switch t {
	case Pawn:
		return "Pawn"
	case Rook:
		return "Rook"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Queen:
		return "Queen"
	case King:
		return "King"
	}
	return "Empty"
}

// TracksMoves reports whether pieces of this type carry a moved flag.
// Castling, double steps and en passant all depend on it.
func (t PieceType) TracksMoves() bool {
	return t == Pawn || t == Rook || t == King
}

// Piece is the occupant of a square. An empty square still holds a Piece
// with Type Empty; its Color is a placeholder and callers check Type first.
type Piece struct {
	Type  PieceType
	Color Color
	// Moved is only meaningful when Type.TracksMoves(). Set it with
	// WithMoved so other kinds keep it false.
	Moved bool
}

// NoPiece is the value stored on unoccupied squares.
var NoPiece = Piece{Type: Empty, Color: White}

func NewPiece(t PieceType, c Color) Piece {
	return Piece{Type: t, Color: c}
}

// Name returns the piece kind, ignoring color and move history.
func (p Piece) Name() string {
	return p.Type.String()
}

func (p Piece) String() string {
	if p.Type == Empty {
		return "Empty"
	}
	return p.Color.String() + " " + p.Type.String()
}

// IsEmpty reports whether p marks an unoccupied square.
func (p Piece) IsEmpty() bool {
	return p.Type == Empty
}

// WithMoved returns p with its moved flag set. Kinds that don't track
// moves are returned unchanged so equal pieces stay equal.
func (p Piece) WithMoved() Piece {
	if p.Type.TracksMoves() {
		p.Moved = true
	}
	return p
}
