package chess

import (
	"strconv"
	"strings"

	"github.com/zilin/pgn-chess-tree/internal/pgnscan"
)

// parsePGNText lexes text into the external parser's upstream structure. It
// is the chess package's only call into the pgnscan parser; the rest of this
// file uses only pgnscan's result types.
func parsePGNText(text string) []*pgnscan.ParseResult {
	return pgnscan.Parse(text)
}

// BuildGame converts one upstream parse result into a Game tree. It never
// aborts on an unreadable move: the move and everything nested under it
// (including its own variations) are dropped, a *ParseError is recorded on
// the Game, and the rest of the game is built as if that move were absent.
func BuildGame(pr *pgnscan.ParseResult) *Game {
	g := NewGame()
	for _, tag := range pr.Tags {
		g.headers.Set(tag.Key, tag.Value)
	}
	if fen, ok := g.headers.Get("FEN"); ok && fen != "" {
		g.startFEN = fen
	}
	if pr.GameComment != nil {
		g.SetComment(pr.GameComment.Text)
		g.SetArrows(parseArrows(pr.GameComment.ColorArrows))
		g.SetShapes(parseShapes(pr.GameComment.ColorFields))
	}

	buildLine(g.GameNode, pr.Moves, g)
	log.Debug("built game tree", "headers", g.headers.unorderedKeys(),
		"nodes", g.GameNode.CountNodes()-1, "errors", len(g.errs))
	return g
}

// buildLine applies records as the mainline continuation of parent, in
// order, attaching each record's nested variations as siblings of the move
// they replace (children of parent, not of the move's own node), per the
// tree builder's central rule.
func buildLine(parent *GameNode, records []pgnscan.MoveRecord, g *Game) *GameNode {
	cur := parent
	for _, rec := range records {
		if rec.Result != "" {
			if g.headers.Value("Result") == "" {
				g.headers.Set("Result", rec.Result)
			}
			continue
		}

		board := cur.Board()
		move, err := resolveMove(board, rec.SAN)
		if err != nil {
			log.Debug("dropping unreadable move", "san", rec.SAN.Notation, "error", err)
			g.AddError(&ParseError{
				Message:    err.Error(),
				SAN:        rec.SAN.Notation,
				FEN:        board.FEN(),
				MoveNumber: cur.MoveNumber(),
			})
			continue
		}

		child := cur.AddVariation(move, AnnotationOpts{})
		applyRecordAnnotations(child, rec)

		for _, alt := range rec.Variations {
			buildLine(cur, alt, g)
		}

		if move.IsDrop() {
			// The board engine never applies drops (materializeBoard skips
			// them on replay), so a drop has no position of its own to
			// continue from: it is recorded as a leaf, and the rest of the
			// line continues as siblings under the same parent.
			continue
		}
		cur = child
	}
	return cur
}

// resolveMove parses rec's SAN text against board. It tries board.ParseSAN
// first; if that fails, it falls back to the upstream scanner's pre-split
// sub-fields (tok.Fig/Col/Row/Disc/Promotion/Drop), per spec.md §4.H:
// filter board.LegalMoves() by destination, piece letter, disambiguation
// text, and promotion letter.
func resolveMove(board *Board, tok pgnscan.SANToken) (Move, error) {
	if m, err := board.ParseSAN(tok.Notation); err == nil {
		return m, nil
	}
	if tok.Drop {
		return dropMoveFromToken(tok)
	}
	return resolveSANFallback(board, tok)
}

// dropMoveFromToken constructs a drop Move directly from the scanner's
// sub-fields, for the rare case a drop token's raw text doesn't survive
// board.ParseSAN's own "@" handling (e.g. a malformed disambiguation tail).
func dropMoveFromToken(tok pgnscan.SANToken) (Move, error) {
	if tok.Col == 0 || tok.Row == 0 {
		return Move{}, &IllegalMoveError{tok.Notation}
	}
	pt := Pawn
	if tok.Fig != "" {
		p, ok := pieceTypeFromLetter(tok.Fig[0])
		if !ok {
			return Move{}, &IllegalMoveError{tok.Notation}
		}
		pt = p
	}
	sq, err := ParseSquare(string(tok.Col) + string(tok.Row))
	if err != nil {
		return Move{}, &IllegalMoveError{tok.Notation}
	}
	return Move{From: A1, To: sq, Promotion: NoPieceType, Drop: pt}, nil
}

// resolveSANFallback resolves a non-drop SAN token that board.ParseSAN
// rejected outright by filtering board.LegalMoves() against the scanner's
// already-split sub-fields instead of re-deriving them from raw text.
func resolveSANFallback(board *Board, tok pgnscan.SANToken) (Move, error) {
	if tok.Col == 0 || tok.Row == 0 {
		return Move{}, &IllegalMoveError{tok.Notation}
	}
	dest, err := ParseSquare(string(tok.Col) + string(tok.Row))
	if err != nil {
		return Move{}, &IllegalMoveError{tok.Notation}
	}

	wantType := Pawn
	if tok.Fig != "" {
		pt, ok := pieceTypeFromLetter(tok.Fig[0])
		if !ok {
			return Move{}, &IllegalMoveError{tok.Notation}
		}
		wantType = pt
	}

	wantPromo := NoPieceType
	if tok.Promotion != "" {
		pt, ok := pieceTypeFromLetter(tok.Promotion[0])
		if !ok {
			return Move{}, &IllegalMoveError{tok.Notation}
		}
		wantPromo = pt
	}

	var candidates []Move
	for _, m := range board.LegalMoves() {
		if board.PieceAt(m.From).Type() != wantType || m.To != dest {
			continue
		}
		if m.Promotion != wantPromo {
			continue
		}
		if !discMatches(tok.Disc, m.From) {
			continue
		}
		candidates = append(candidates, m)
	}
	if len(candidates) != 1 {
		return Move{}, &IllegalMoveError{tok.Notation}
	}
	return candidates[0], nil
}

// discMatches reports whether from satisfies disc's file and/or rank
// disambiguation text (0, 1, or 2 characters).
func discMatches(disc string, from Square) bool {
	switch len(disc) {
	case 0:
		return true
	case 1:
		ch := disc[0]
		switch {
		case ch >= 'a' && ch <= 'h':
			return from.File() == File(ch-'a')
		case ch >= '1' && ch <= '8':
			return from.Rank() == Rank(ch-'1')
		default:
			return false
		}
	case 2:
		if disc[0] < 'a' || disc[0] > 'h' || disc[1] < '1' || disc[1] > '8' {
			return false
		}
		return from.File() == File(disc[0]-'a') && from.Rank() == Rank(disc[1]-'1')
	default:
		return false
	}
}

func applyRecordAnnotations(n *GameNode, rec pgnscan.MoveRecord) {
	if rec.CommentMove != "" {
		n.SetStartingComment(rec.CommentMove)
	}
	if rec.CommentAfter != "" {
		n.SetComment(rec.CommentAfter)
	}
	for _, raw := range rec.NAGs {
		if v, err := strconv.Atoi(raw); err == nil {
			n.AddNAG(v)
		}
	}
	applyDiag(n, rec.Diag)
}

func applyDiag(n *GameNode, d pgnscan.CommentDiag) {
	if d.Clk != "" {
		if secs, ok := parseClock(d.Clk); ok {
			n.SetClock(secs)
		}
	}
	if d.Eval != "" {
		if v, err := strconv.ParseFloat(d.Eval, 64); err == nil {
			n.SetEval(v)
		}
	}
	if len(d.ColorArrows) > 0 {
		n.SetArrows(parseArrows(d.ColorArrows))
	}
	if len(d.ColorFields) > 0 {
		n.SetShapes(parseShapes(d.ColorFields))
	}
}

// parseClock parses a "[%clk]" value into whole seconds. It accepts the
// full "h:mm:ss" form as well as the "mm:ss" and bare-seconds forms some
// PGN sources emit; a trailing fractional-seconds tail ("ss.fff") is
// truncated.
func parseClock(s string) (int, bool) {
	parts := strings.Split(s, ":")
	nums := make([]int, len(parts))
	for i, p := range parts {
		if i == len(parts)-1 {
			if idx := strings.IndexByte(p, '.'); idx != -1 {
				p = p[:idx]
			}
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, false
		}
		nums[i] = n
	}
	switch len(nums) {
	case 1:
		return nums[0], true
	case 2:
		return nums[0]*60 + nums[1], true
	case 3:
		return nums[0]*3600 + nums[1]*60 + nums[2], true
	default:
		return 0, false
	}
}

// parseArrows converts "[%cal ...]" CFFTT codes into Arrows, skipping any
// code that doesn't resolve to two valid squares.
func parseArrows(codes []string) []Arrow {
	var out []Arrow
	for _, c := range codes {
		if len(c) != 5 {
			continue
		}
		tail, err1 := ParseSquare(c[1:3])
		head, err2 := ParseSquare(c[3:5])
		if err1 != nil || err2 != nil {
			continue
		}
		out = append(out, Arrow{Color: c[0], Tail: tail, Head: head})
	}
	return out
}

// parseShapes converts "[%csl ...]" CSS codes into Shapes.
func parseShapes(codes []string) []Shape {
	var out []Shape
	for _, c := range codes {
		if len(c) != 3 {
			continue
		}
		sq, err := ParseSquare(c[1:3])
		if err != nil {
			continue
		}
		out = append(out, Shape{Color: c[0], Square: sq})
	}
	return out
}
