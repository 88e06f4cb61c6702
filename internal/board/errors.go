package board

import "fmt"

// MoveError is the closed set of failures the move validation layer reports
// against this board. Nothing in this package returns one.
//
// The zero value is not a MoveError; the set is exactly MoveErrors().
type MoveError int

const (
	// ErrLength means a move or coordinate had the wrong size.
	ErrLength MoveError = iota + 1
	// ErrEmpty means a piece was required but the square is empty.
	ErrEmpty
	ErrIllegalMove
	ErrOutOfBounds
	// ErrEnemyMove means the acting side tried to move the opponent's piece.
	ErrEnemyMove
	// ErrTeamDmg means a move would capture a piece of the same side.
	ErrTeamDmg
	ErrCheck
)

// MoveErrors returns every MoveError in declaration order.
func MoveErrors() []MoveError {
	return []MoveError{ErrLength, ErrEmpty, ErrIllegalMove, ErrOutOfBounds, ErrEnemyMove, ErrTeamDmg, ErrCheck}
}

func (e MoveError) Error() string {
	switch e {
	case ErrLength:
		return "wrong input length"
	case ErrEmpty:
		return "no piece on square"
	case ErrIllegalMove:
		return "illegal move"
	case ErrOutOfBounds:
		return "square out of bounds"
	case ErrEnemyMove:
		return "cannot move opponent's piece"
	case ErrTeamDmg:
		return "cannot capture own piece"
	case ErrCheck:
		return "king would be in check"
	}
	return fmt.Sprintf("invalid MoveError(%d)", int(e))
}
