package chess

import "strings"

// sanComponents describes the parsed components of a SAN token, before it is
// resolved against a position.
type sanComponents struct {
	piece     PieceType // NoPieceType for a pawn move
	discFile  File
	discRank  Rank
	hasFile   bool
	hasRank   bool
	dest      Square
	promotion PieceType
}

// ParseSAN converts SAN text to a legal Move in the board's current
// position. It fails with an *IllegalMoveError if no legal move matches
// after disambiguation. A "<PIECE>@<square>" token (e.g. "N@d4") is
// parsed as a drop and returned unchecked against LegalMoves, since the
// board engine never applies drops.
func (b *Board) ParseSAN(text string) (Move, error) {
	trimmed := strings.TrimRight(text, "+#!?")

	switch trimmed {
	case "--", "Z0":
		return NullMove, nil
	case "O-O", "0-0":
		return b.resolveCastle(true)
	case "O-O-O", "0-0-0":
		return b.resolveCastle(false)
	}

	if idx := strings.IndexByte(trimmed, '@'); idx == 1 {
		pt, ok := pieceTypeFromLetter(trimmed[0])
		if !ok {
			return Move{}, &IllegalMoveError{text}
		}
		sq, err := ParseSquare(trimmed[idx+1:])
		if err != nil {
			return Move{}, &IllegalMoveError{text}
		}
		return Move{From: A1, To: sq, Promotion: NoPieceType, Drop: pt}, nil
	}

	comp, err := parseSANComponents(trimmed)
	if err != nil {
		return Move{}, &IllegalMoveError{text}
	}

	var candidates []Move
	for _, m := range b.LegalMoves() {
		if !sanComponentsMatch(b, comp, m) {
			continue
		}
		candidates = append(candidates, m)
	}
	if len(candidates) != 1 {
		return Move{}, &IllegalMoveError{text}
	}
	return candidates[0], nil
}

func (b *Board) resolveCastle(kingSide bool) (Move, error) {
	rank := Rank1
	if b.turn == Black {
		rank = Rank8
	}
	from := NewSquare(FileE, rank)
	var to Square
	if kingSide {
		to = NewSquare(FileG, rank)
	} else {
		to = NewSquare(FileC, rank)
	}
	want := Move{From: from, To: to, Promotion: NoPieceType, Drop: NoPieceType}
	for _, m := range b.LegalMoves() {
		if m == want {
			return m, nil
		}
	}
	text := "O-O"
	if !kingSide {
		text = "O-O-O"
	}
	return Move{}, &IllegalMoveError{text}
}

func sanComponentsMatch(b *Board, comp sanComponents, m Move) bool {
	moving := b.PieceAt(m.From)
	wantType := comp.piece
	if wantType == NoPieceType {
		wantType = Pawn
	}
	if moving.Type() != wantType {
		return false
	}
	if m.To != comp.dest {
		return false
	}
	if comp.promotion != NoPieceType && m.Promotion != comp.promotion {
		return false
	}
	if comp.promotion == NoPieceType && m.Promotion != NoPieceType {
		return false
	}
	if comp.hasFile && m.From.File() != comp.discFile {
		return false
	}
	if comp.hasRank && m.From.Rank() != comp.discRank {
		return false
	}
	return true
}

// parseSANComponents strips the optional piece letter, disambiguation,
// capture marker, destination, and promotion suffix from a trimmed SAN
// token, per spec.md's grammar:
// [KQRBN]? [a-h1-8]{0,2} x? [a-h][1-8] (=[QRBN])?
func parseSANComponents(s string) (sanComponents, error) {
	var comp sanComponents
	comp.promotion = NoPieceType

	if s == "" {
		return comp, errBadSAN
	}

	i := 0
	if pt, ok := pieceTypeFromLetter(s[0]); ok && s[0] != 'P' {
		comp.piece = pt
		i++
	} else {
		comp.piece = NoPieceType
	}

	// optional promotion suffix at the end
	if idx := strings.IndexByte(s, '='); idx != -1 {
		if idx+1 >= len(s) {
			return comp, errBadSAN
		}
		pt, ok := pieceTypeFromLetter(s[idx+1])
		if !ok {
			return comp, errBadSAN
		}
		comp.promotion = pt
		s = s[:idx]
	}

	// drop every "x" capture marker
	rest := s[i:]
	rest = strings.ReplaceAll(rest, "x", "")

	if len(rest) < 2 {
		return comp, errBadSAN
	}
	destStr := rest[len(rest)-2:]
	disc := rest[:len(rest)-2]

	dest, err := ParseSquare(destStr)
	if err != nil {
		return comp, errBadSAN
	}
	comp.dest = dest

	switch len(disc) {
	case 0:
	case 1:
		ch := disc[0]
		if ch >= 'a' && ch <= 'h' {
			comp.discFile = File(ch - 'a')
			comp.hasFile = true
		} else if ch >= '1' && ch <= '8' {
			comp.discRank = Rank(ch - '1')
			comp.hasRank = true
		} else {
			return comp, errBadSAN
		}
	case 2:
		if disc[0] < 'a' || disc[0] > 'h' || disc[1] < '1' || disc[1] > '8' {
			return comp, errBadSAN
		}
		comp.discFile = File(disc[0] - 'a')
		comp.discRank = Rank(disc[1] - '1')
		comp.hasFile = true
		comp.hasRank = true
	default:
		return comp, errBadSAN
	}

	return comp, nil
}

var errBadSAN = sanErr("malformed SAN token")

type sanErr string

func (e sanErr) Error() string { return string(e) }

// SAN renders the canonical Standard Algebraic Notation for m, which must
// be legal in the board's current position: piece letter, disambiguation,
// capture marker, destination, promotion suffix, and a trailing '+' or '#'
// reflecting the resulting position.
func (b *Board) SAN(m Move) string {
	if m.IsNull() {
		return "--"
	}
	if m.IsDrop() {
		l := m.Drop.letter()
		if l == "" {
			l = "P"
		}
		return l + "@" + m.To.String()
	}
	moving := b.PieceAt(m.From)
	isCastle := moving.Type() == King && abs(int(m.From.File())-int(m.To.File())) == 2
	if isCastle {
		base := "O-O"
		if m.To.File() == FileC {
			base = "O-O-O"
		}
		return base + b.checkSuffix(m)
	}

	var sb strings.Builder
	capture := b.PieceAt(m.To) != NoPiece || (moving.Type() == Pawn && m.To == b.epSquare)

	if moving.Type() == Pawn {
		if capture {
			sb.WriteString(m.From.File().String())
		}
	} else {
		sb.WriteString(moving.Type().letter())
		sb.WriteString(b.disambiguation(m, moving))
	}
	if capture {
		sb.WriteByte('x')
	}
	sb.WriteString(m.To.String())
	if m.Promotion != NoPieceType {
		sb.WriteByte('=')
		sb.WriteString(m.Promotion.letter())
	}
	sb.WriteString(b.checkSuffix(m))
	return sb.String()
}

// disambiguation decides which of file/rank/both must be included to
// uniquely identify the moving piece among same-type, same-destination
// legal moves: the full origin square if others share both its file and its
// rank, else rank if another shares the file, else file if any other
// conflict exists, else nothing.
func (b *Board) disambiguation(m Move, moving Piece) string {
	var sameFile, sameRank, other bool
	for _, alt := range b.LegalMoves() {
		if alt == m || alt.To != m.To {
			continue
		}
		if b.PieceAt(alt.From).Type() != moving.Type() {
			continue
		}
		other = true
		if alt.From.File() == m.From.File() {
			sameFile = true
		}
		if alt.From.Rank() == m.From.Rank() {
			sameRank = true
		}
	}
	if !other {
		return ""
	}
	switch {
	case sameFile && sameRank:
		return m.From.String()
	case sameFile:
		return m.From.Rank().String()
	default:
		return m.From.File().String()
	}
}

func (b *Board) checkSuffix(m Move) string {
	cp := b.Copy()
	if err := cp.Push(m); err != nil {
		return ""
	}
	if !cp.IsCheck() {
		return ""
	}
	if len(cp.LegalMoves()) == 0 {
		return "#"
	}
	return "+"
}

// PushSAN parses text as SAN and applies the resulting move, returning it.
func (b *Board) PushSAN(text string) (Move, error) {
	m, err := b.ParseSAN(text)
	if err != nil {
		return Move{}, err
	}
	if err := b.Push(m); err != nil {
		return Move{}, err
	}
	return m, nil
}

// PushUCI parses text as a UCI move, verifies it is legal in the current
// position, applies it, and returns it.
func (b *Board) PushUCI(text string) (Move, error) {
	m, err := ParseUCI(text)
	if err != nil {
		return Move{}, err
	}
	for _, legal := range b.LegalMoves() {
		if legal == m {
			if err := b.Push(m); err != nil {
				return Move{}, err
			}
			return m, nil
		}
	}
	return Move{}, &IllegalMoveError{text}
}
