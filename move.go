package chess

import "fmt"

// A Move is an immutable (from, to, promotion?, drop?) tuple. It carries no
// notion of legality or of the position it applies to; the board engine
// interprets it. The null move is NullMove (From and To both A1, no
// promotion, no drop); since Pawn is the zero PieceType, the zero Move value
// is not the null move.
type Move struct {
	From      Square
	To        Square
	Promotion PieceType // NoPieceType if not a promotion
	Drop      PieceType // NoPieceType if not a drop
}

// NullMove is the canonical null move ("--" / "Z0" in SAN, "0000" in UCI).
var NullMove = Move{From: A1, To: A1, Promotion: NoPieceType, Drop: NoPieceType}

// IsNull reports whether m is the null move.
func (m Move) IsNull() bool {
	return m == NullMove
}

// IsDrop reports whether m places a piece from outside the board (the
// crazyhouse-style drop shape; the board engine does not apply drops).
func (m Move) IsDrop() bool {
	return m.Drop != NoPieceType
}

// Equals reports whether m and other denote the same move.
func (m Move) Equals(other Move) bool {
	return m == other
}

// UCI encodes the move using the UCI grammar: four lowercase square
// letters, an optional fifth promotion letter, "0000" for the null move, or
// "<PIECE>@<square>" for a drop.
func (m Move) UCI() string {
	if m.IsDrop() {
		l := m.Drop.letter()
		if l == "" {
			l = "P"
		}
		return l + "@" + m.To.String()
	}
	if m.IsNull() {
		return "0000"
	}
	s := m.From.String() + m.To.String()
	if m.Promotion != NoPieceType {
		s += promoLetterLower(m.Promotion)
	}
	return s
}

func promoLetterLower(pt PieceType) string {
	l := pt.letter()
	if l == "" {
		return ""
	}
	return string(rune(l[0]) + 32)
}

// ParseUCI decodes a UCI move string. It fails with BadUci if s does not
// match the UCI grammar; it does not check legality.
func ParseUCI(s string) (Move, error) {
	if s == "0000" {
		return NullMove, nil
	}
	if len(s) >= 2 && s[1] == '@' {
		pt, ok := pieceTypeFromLetter(s[0])
		if !ok {
			return Move{}, &BadUciError{s}
		}
		to, err := ParseSquare(s[2:])
		if err != nil {
			return Move{}, &BadUciError{s}
		}
		return Move{From: A1, To: to, Promotion: NoPieceType, Drop: pt}, nil
	}
	if len(s) != 4 && len(s) != 5 {
		return Move{}, &BadUciError{s}
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return Move{}, &BadUciError{s}
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return Move{}, &BadUciError{s}
	}
	promo := NoPieceType
	if len(s) == 5 {
		switch s[4] {
		case 'n':
			promo = Knight
		case 'b':
			promo = Bishop
		case 'r':
			promo = Rook
		case 'q':
			promo = Queen
		default:
			return Move{}, &BadUciError{s}
		}
	}
	return Move{From: from, To: to, Promotion: promo, Drop: NoPieceType}, nil
}

func (m Move) String() string {
	return fmt.Sprintf("Move(%s)", m.UCI())
}
