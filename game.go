package chess

import (
	"fmt"
	"strconv"
	"strings"
)

// A Game is the root of a game tree: a GameNode extended with PGN headers
// and the parse errors collected while the tree was built.
type Game struct {
	*GameNode
	headers *Headers
	errs    []*ParseError
}

// NewGame returns a new Game at the standard starting position. Optional
// functions configure the initial state, following the teacher library's
// own functional-options convention.
func NewGame(opts ...func(*Game)) *Game {
	g := &Game{
		GameNode: newRootNode(""),
		headers:  NewHeaders(),
	}
	for _, f := range opts {
		if f != nil {
			f(g)
		}
	}
	return g
}

// WithFEN configures a Game to start from the given FEN instead of the
// standard position, and records it on the "FEN" header.
func WithFEN(fen string) func(*Game) {
	return func(g *Game) {
		g.headers.Set("FEN", fen)
		g.startFEN = fen
		g.InvalidateBoard()
	}
}

// Headers returns the game's ordered PGN tag store.
func (g *Game) Headers() *Headers { return g.headers }

// Errors returns the parse errors collected while building this game's
// tree. An empty slice means the PGN parsed cleanly.
func (g *Game) Errors() []*ParseError { return g.errs }

// AddError appends a parse error to the game's error list without aborting
// tree construction.
func (g *Game) AddError(e *ParseError) {
	g.errs = append(g.errs, e)
}

// PGNOptions configures Game.PGN rendering.
type PGNOptions struct {
	// Columns wraps movetext at approximately this many characters,
	// breaking only on whitespace. 0 means no wrapping.
	Columns int
}

// PGN renders the game as PGN text: header lines, a blank line, then
// movetext. See spec.md §4.G for the exact movetext algorithm.
func (g *Game) PGN(opts ...PGNOptions) string {
	var opt PGNOptions
	if len(opts) > 0 {
		opt = opts[0]
	}

	var sb strings.Builder
	for _, key := range g.headers.Keys() {
		val, _ := g.headers.Get(key)
		sb.WriteString(fmt.Sprintf("[%s \"%s\"]\n", key, escapeTagValue(val)))
	}
	sb.WriteByte('\n')

	tokens := renderMovetext(g.GameNode, false)
	result := g.headers.Value("Result")
	if result == "" {
		result = "*"
	}
	if len(tokens) == 0 || tokens[len(tokens)-1] != result {
		tokens = append(tokens, result)
	}

	sb.WriteString(wrapTokens(tokens, opt.Columns))
	sb.WriteByte('\n')
	return sb.String()
}

func (g *Game) String() string {
	return g.PGN()
}

// escapeTagValue escapes backslashes and double quotes for header output.
func escapeTagValue(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `"`, `\"`)
	return v
}

func moveNumberLabel(ply int) int {
	return (ply-1)/2 + 1
}

// renderMovetext walks node's mainline, interleaving sibling variations at
// the point they branch from, per spec.md §4.G.
func renderMovetext(node *GameNode, forceNumber bool) []string {
	if len(node.variations) == 0 {
		return nil
	}
	var tokens []string
	main := node.variations[0]
	tokens = appendMoveTokens(tokens, main, forceNumber)

	nextForce := main.Comment() != ""
	for _, alt := range node.variations[1:] {
		var sub []string
		if sc := alt.StartingComment(); sc != "" {
			sub = append(sub, "{"+sc+"}")
		}
		sub = appendMoveTokens(sub, alt, true)
		sub = append(sub, renderMovetext(alt, alt.Comment() != "")...)
		if len(sub) == 0 {
			sub = []string{"()"}
		} else {
			sub[0] = "(" + sub[0]
			sub[len(sub)-1] = sub[len(sub)-1] + ")"
		}
		tokens = append(tokens, sub...)
		nextForce = true
	}

	tokens = append(tokens, renderMovetext(main, nextForce)...)
	return tokens
}

// appendMoveTokens appends the move-number prefix (if needed), SAN, NAGs,
// and after-comment for a single node.
func appendMoveTokens(tokens []string, node *GameNode, forceNumber bool) []string {
	ply := node.Ply()
	white := ply%2 == 1
	label := moveNumberLabel(ply)
	switch {
	case white:
		tokens = append(tokens, strconv.Itoa(label)+".")
	case forceNumber:
		tokens = append(tokens, strconv.Itoa(label)+"...")
	}
	tokens = append(tokens, node.SAN())
	for _, nag := range node.NAGs() {
		tokens = append(tokens, "$"+strconv.Itoa(nag))
	}
	if c := node.Comment(); c != "" {
		tokens = append(tokens, "{"+c+"}")
	}
	return tokens
}

// wrapTokens joins tokens with spaces, wrapping at whitespace boundaries so
// no line exceeds columns characters. columns <= 0 disables wrapping.
func wrapTokens(tokens []string, columns int) string {
	if columns <= 0 {
		return strings.Join(tokens, " ")
	}
	var sb strings.Builder
	lineLen := 0
	for i, tok := range tokens {
		addLen := len(tok)
		if i > 0 {
			addLen++ // separating space
		}
		if i > 0 && lineLen+addLen > columns {
			sb.WriteByte('\n')
			lineLen = 0
			sb.WriteString(tok)
			lineLen += len(tok)
			continue
		}
		if i > 0 {
			sb.WriteByte(' ')
			lineLen++
		}
		sb.WriteString(tok)
		lineLen += len(tok)
	}
	return sb.String()
}

// ReadGame parses a single PGN game from text. It returns (nil, false) if
// text is empty or no game could be recovered at all (a catastrophic
// failure in the external lexical parser); individual unreadable moves do
// not cause failure here — they are recorded on the returned Game's errors.
func ReadGame(text string) (*Game, bool) {
	games := ReadGames(text)
	if len(games) == 0 {
		return nil, false
	}
	return games[0], true
}

// ReadGames parses every PGN game in text, returning an empty slice if none
// could be recovered.
func ReadGames(text string) []*Game {
	results := parsePGNText(text)
	games := make([]*Game, 0, len(results))
	for _, pr := range results {
		games = append(games, BuildGame(pr))
	}
	return games
}
