package chess

import "testing"

func TestPieceTypeOrdering(t *testing.T) {
	if !(Pawn < Knight && Knight < Bishop && Bishop < Rook && Rook < Queen && Queen < King) {
		t.Fatal("piece type ordering is not Pawn < Knight < Bishop < Rook < Queen < King")
	}
}

func TestPieceSymbol(t *testing.T) {
	cases := []struct {
		p    Piece
		want string
	}{
		{newPiece(Pawn, White), "P"},
		{newPiece(Pawn, Black), "p"},
		{newPiece(Queen, White), "Q"},
		{newPiece(Knight, Black), "n"},
		{NoPiece, ""},
	}
	for _, c := range cases {
		if got := c.p.Symbol(); got != c.want {
			t.Errorf("Symbol() = %q, want %q", got, c.want)
		}
	}
}

func TestPieceTypeAndColor(t *testing.T) {
	p := newPiece(Rook, Black)
	if p.Type() != Rook {
		t.Errorf("Type() = %v, want Rook", p.Type())
	}
	if p.Color() != Black {
		t.Errorf("Color() = %v, want Black", p.Color())
	}
}

func TestPieceTypeFromLetter(t *testing.T) {
	cases := map[byte]PieceType{
		'N': Knight, 'B': Bishop, 'R': Rook, 'Q': Queen, 'K': King, 'P': Pawn,
	}
	for l, want := range cases {
		pt, ok := pieceTypeFromLetter(l)
		if !ok || pt != want {
			t.Errorf("pieceTypeFromLetter(%q) = (%v, %v), want (%v, true)", l, pt, ok, want)
		}
	}
	if _, ok := pieceTypeFromLetter('Z'); ok {
		t.Error("pieceTypeFromLetter('Z') expected ok=false")
	}
}

func TestPieceUnicode(t *testing.T) {
	if NoPiece.Unicode() != "" {
		t.Errorf("NoPiece.Unicode() = %q, want empty", NoPiece.Unicode())
	}
	if newPiece(King, White).Unicode() == "" {
		t.Error("white king unicode glyph missing")
	}
}
