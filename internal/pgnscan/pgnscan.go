// Package pgnscan is a small, dependency-free PGN lexer/parser. It plays
// the role spec.md treats as an external collaborator: it knows nothing
// about chess rules or legality, and only turns PGN text into the flat
// upstream structure the tree builder in the parent chess package
// consumes — ordered tags, a linear move list, and per-move nested
// variation groups. It never fails on an individual malformed move; it
// hands the raw SAN text through uninterpreted and lets the caller decide
// what to do with it.
package pgnscan

import "strings"

// TagPair is one ordered "[Key \"Value\"]" header line.
type TagPair struct {
	Key   string
	Value string
}

// SANToken is the unresolved shape of a single move token, split into the
// sub-fields spec.md's tree builder uses for its fallback resolution path:
// destination square letters, piece letter, disambiguation text, promotion
// letter, and the drop flag.
type SANToken struct {
	Notation  string // the raw token, decorations (+,#,!,?) included
	Fig       string // upper-case piece letter, "" for a pawn move
	Col       byte   // destination file letter, 0 if not applicable (castle/null)
	Row       byte   // destination rank digit, 0 if not applicable
	Disc      string // disambiguation text (file and/or rank), "" if none
	Promotion string // upper-case promotion letter, "" if none
	Drop      bool
}

// CommentDiag is the PGN "commentDiag" micro-grammar extracted from a
// comment: [%clk], [%eval], [%cal], [%csl], each left as raw text for the
// builder to interpret.
type CommentDiag struct {
	Clk         string
	Eval        string
	ColorArrows []string // five-character "CFFTT" codes
	ColorFields []string // three-character "CSS" codes
}

// GameComment is a root-level comment appearing before the first move.
type GameComment struct {
	Text        string
	ColorArrows []string
	ColorFields []string
}

// MoveRecord is either a trailing result token (Result non-empty) or a
// single parsed move with its annotations and nested variations.
type MoveRecord struct {
	Result       string
	SAN          SANToken
	CommentMove  string
	CommentAfter string
	NAGs         []string
	Diag         CommentDiag
	Variations   [][]MoveRecord
}

// ParseResult is one game's upstream parse tree: ordered tags, an optional
// root comment, and the linear mainline move list (with nested variations
// hanging off the move they follow).
type ParseResult struct {
	Tags        []TagPair
	GameComment *GameComment
	Moves       []MoveRecord
}

// Parse splits text into individual games and parses each into a
// ParseResult. It returns an empty slice if text contains no recoverable
// game at all — the catastrophic-failure case spec.md §7 requires
// ReadGame/ReadGames to handle by returning none/empty.
func Parse(text string) []*ParseResult {
	var results []*ParseResult
	for _, chunk := range splitGames(text) {
		if pr := parseOneGame(chunk); pr != nil {
			results = append(results, pr)
		}
	}
	return results
}

// splitGames breaks concatenated PGN text into per-game chunks, cutting
// after each top-level result token ("1-0", "0-1", "1/2-1/2", "*") that
// appears outside any comment or variation. A trailing chunk with no
// result token (a game still "in progress") is kept if it contains a tag
// or a move.
func splitGames(text string) []string {
	var chunks []string
	start := 0
	braceDepth, parenDepth := 0, 0
	i := 0
	n := len(text)
	for i < n {
		switch text[i] {
		case '{':
			braceDepth++
		case '}':
			if braceDepth > 0 {
				braceDepth--
			}
		case '(':
			if braceDepth == 0 {
				parenDepth++
			}
		case ')':
			if braceDepth == 0 && parenDepth > 0 {
				parenDepth--
			}
		}
		if braceDepth == 0 && parenDepth == 0 {
			if tok, end, ok := matchResultAt(text, i); ok {
				chunks = append(chunks, text[start:end])
				start = end
				i = end
				_ = tok
				continue
			}
		}
		i++
	}
	rest := strings.TrimSpace(text[start:])
	if rest != "" {
		chunks = append(chunks, text[start:])
	}
	return chunks
}

var resultTokens = []string{"1-0", "0-1", "1/2-1/2", "*"}

func matchResultAt(text string, i int) (string, int, bool) {
	for _, r := range resultTokens {
		if strings.HasPrefix(text[i:], r) {
			// must be a standalone token: not glued to a following
			// non-space, non-EOF character such as another digit.
			end := i + len(r)
			if end < len(text) {
				c := text[end]
				if !isSpace(c) && c != '[' && c != '(' && c != ')' {
					continue
				}
			}
			// and not glued to a preceding digit/word character
			if i > 0 {
				c := text[i-1]
				if !isSpace(c) && c != ']' && c != ')' {
					continue
				}
			}
			return r, end, true
		}
	}
	return "", i, false
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
