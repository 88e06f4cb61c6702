package render

import "github.com/imjasonh/chessboard/internal/board"

// EmptyGlyph marks an unoccupied square.
const EmptyGlyph = "·"

// White pieces use the solid glyphs and Black the outlined ones. Both are
// painted in their side's ink, so on a dark terminal the solid shapes read
// as white.
var glyphs = map[board.Color]map[board.PieceType]string{
	board.White: {
		board.Pawn:   "♟",
		board.Rook:   "♜",
		board.Knight: "♞",
		board.Bishop: "♝",
		board.Queen:  "♛",
		board.King:   "♚",
	},
	board.Black: {
		board.Pawn:   "♙",
		board.Rook:   "♖",
		board.Knight: "♘",
		board.Bishop: "♗",
		board.Queen:  "♕",
		board.King:   "♔",
	},
}

// Glyph returns the symbol drawn for p.
func Glyph(p board.Piece) string {
	if p.IsEmpty() {
		return EmptyGlyph
	}
	return glyphs[p.Color][p.Type]
}
