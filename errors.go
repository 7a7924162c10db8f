package chess

import "fmt"

// BadFenError indicates a FEN string failed to parse.
type BadFenError struct {
	FEN string
	Err error
}

func (e *BadFenError) Error() string {
	return fmt.Sprintf("chess: bad fen %q: %v", e.FEN, e.Err)
}

func (e *BadFenError) Unwrap() error { return e.Err }

// NoPieceToMoveError indicates Push was called with no piece of the side to
// move on the move's origin square.
type NoPieceToMoveError struct {
	Square Square
}

func (e *NoPieceToMoveError) Error() string {
	return fmt.Sprintf("chess: no piece to move on %s", e.Square)
}

// IllegalMoveError indicates SAN/UCI resolution found no legal move
// matching the input in the current position.
type IllegalMoveError struct {
	Text string
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("chess: illegal move %q", e.Text)
}

// BadUciError indicates a string did not match the UCI move grammar.
type BadUciError struct {
	Text string
}

func (e *BadUciError) Error() string {
	return fmt.Sprintf("chess: bad uci move %q", e.Text)
}

// ParseError is a single per-move failure recorded while building a game
// tree from an upstream PGN parse result. It never aborts the build; it is
// collected onto Game.Errors.
type ParseError struct {
	Message    string
	SAN        string
	FEN        string
	MoveNumber int // 0 if not applicable
}

func (e *ParseError) Error() string {
	if e.MoveNumber > 0 {
		return fmt.Sprintf("chess: move %d (%q): %s [fen %s]", e.MoveNumber, e.SAN, e.Message, e.FEN)
	}
	return fmt.Sprintf("chess: move %q: %s [fen %s]", e.SAN, e.Message, e.FEN)
}
