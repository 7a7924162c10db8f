package chess

import (
	"errors"
	"testing"
)

func TestStartingPositionFEN(t *testing.T) {
	b, err := NewBoard()
	if err != nil {
		t.Fatalf("NewBoard() error: %v", err)
	}
	if got := b.FEN(); got != startingFEN {
		t.Errorf("FEN() = %q, want %q", got, startingFEN)
	}
}

func TestSetFENRoundTrip(t *testing.T) {
	fen := "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3"
	b, err := NewBoard(fen)
	if err != nil {
		t.Fatalf("NewBoard(%q) error: %v", fen, err)
	}
	if got := b.FEN(); got != fen {
		t.Errorf("round-trip FEN = %q, want %q", got, fen)
	}
}

func TestSetFENTolerantTail(t *testing.T) {
	b, err := NewBoard("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR")
	if err != nil {
		t.Fatalf("NewBoard with placement-only fen error: %v", err)
	}
	if b.Turn() != White {
		t.Errorf("Turn() = %v, want White (default)", b.Turn())
	}
	if b.EpSquare() != NoSquare {
		t.Errorf("EpSquare() = %v, want NoSquare (default)", b.EpSquare())
	}
	if b.HalfmoveClock() != 0 {
		t.Errorf("HalfmoveClock() = %d, want 0 (default)", b.HalfmoveClock())
	}
	if b.FullmoveNumber() != 1 {
		t.Errorf("FullmoveNumber() = %d, want 1 (default)", b.FullmoveNumber())
	}
}

func TestSetFENBadPlacement(t *testing.T) {
	_, err := NewBoard("not-a-fen")
	if err == nil {
		t.Fatal("expected error for malformed placement field")
	}
	var badFen *BadFenError
	if !errors.As(err, &badFen) {
		t.Errorf("error = %v, want *BadFenError", err)
	}
}
