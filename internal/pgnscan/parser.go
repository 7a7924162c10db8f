package pgnscan

import "strings"

// parseOneGame parses a single game chunk. It returns nil only if the
// chunk has no tags, no game comment and no moves (nothing recoverable at
// all).
func parseOneGame(chunk string) *ParseResult {
	p := &parser{s: chunk}
	tags := p.parseTags()

	p.skipSpace()
	var gc *GameComment
	if p.i < len(p.s) && p.s[p.i] == '{' {
		raw := p.readBraceComment()
		diag := extractDiag(raw)
		gc = &GameComment{Text: diag.text, ColorArrows: diag.arrows, ColorFields: diag.fields}
	}

	moves := p.parseMoveList()

	if len(tags) == 0 && gc == nil && len(moves) == 0 {
		return nil
	}
	return &ParseResult{Tags: tags, GameComment: gc, Moves: moves}
}

type parser struct {
	s string
	i int
}

func (p *parser) skipSpace() {
	for p.i < len(p.s) && isSpace(p.s[p.i]) {
		p.i++
	}
}

// parseTags consumes a run of "[Key \"Value\"]" lines.
func (p *parser) parseTags() []TagPair {
	var tags []TagPair
	for {
		p.skipSpace()
		if p.i >= len(p.s) || p.s[p.i] != '[' {
			break
		}
		start := p.i
		p.i++
		keyStart := p.i
		for p.i < len(p.s) && p.s[p.i] != ' ' && p.s[p.i] != ']' {
			p.i++
		}
		key := p.s[keyStart:p.i]
		for p.i < len(p.s) && p.s[p.i] != '"' && p.s[p.i] != ']' {
			p.i++
		}
		var value string
		if p.i < len(p.s) && p.s[p.i] == '"' {
			p.i++
			var sb strings.Builder
			for p.i < len(p.s) && p.s[p.i] != '"' {
				if p.s[p.i] == '\\' && p.i+1 < len(p.s) {
					p.i++
				}
				sb.WriteByte(p.s[p.i])
				p.i++
			}
			value = sb.String()
			if p.i < len(p.s) {
				p.i++ // closing quote
			}
		}
		for p.i < len(p.s) && p.s[p.i] != ']' {
			p.i++
		}
		if p.i < len(p.s) {
			p.i++ // closing bracket
		}
		if p.i == start {
			break // malformed tag line; stop rather than loop forever
		}
		tags = append(tags, TagPair{Key: key, Value: value})
	}
	return tags
}

func (p *parser) readBraceComment() string {
	if p.i >= len(p.s) || p.s[p.i] != '{' {
		return ""
	}
	p.i++
	start := p.i
	for p.i < len(p.s) && p.s[p.i] != '}' {
		p.i++
	}
	text := p.s[start:p.i]
	if p.i < len(p.s) {
		p.i++ // closing brace
	}
	return text
}

func (p *parser) readNAG() string {
	start := p.i
	p.i++ // consume '$'
	for p.i < len(p.s) && isDigit(p.s[p.i]) {
		p.i++
	}
	return p.s[start:p.i]
}

func (p *parser) readToken() string {
	start := p.i
	for p.i < len(p.s) && !isSpace(p.s[p.i]) && p.s[p.i] != '(' && p.s[p.i] != ')' &&
		p.s[p.i] != '{' && p.s[p.i] != '}' && p.s[p.i] != '$' {
		p.i++
	}
	return p.s[start:p.i]
}

// parseMoveList parses a sequence of move records until it hits a result
// token, an unmatched ')', or end of input. It is used both for the
// top-level mainline and, recursively, for each variation's move list.
func (p *parser) parseMoveList() []MoveRecord {
	var out []MoveRecord
	pending := ""

	for {
		p.skipSpace()
		if p.i >= len(p.s) {
			break
		}
		c := p.s[p.i]
		if c == ')' {
			break
		}
		if c == '(' {
			// A variation with no preceding move in this list is not
			// well-formed PGN; skip it rather than losing our place.
			p.i++
			p.parseMoveList()
			p.skipSpace()
			if p.i < len(p.s) && p.s[p.i] == ')' {
				p.i++
			}
			continue
		}
		if c == '{' {
			pending += p.readBraceComment()
			continue
		}
		if c == '$' {
			nag := p.readNAG()
			if len(out) > 0 {
				out[len(out)-1].NAGs = append(out[len(out)-1].NAGs, strings.TrimPrefix(nag, "$"))
			}
			continue
		}

		tok := p.readToken()
		if tok == "" {
			p.i++ // guard against an unexpected character; don't loop forever
			continue
		}
		if isResultToken(tok) {
			out = append(out, MoveRecord{Result: tok})
			break
		}
		if isMoveNumberToken(tok) {
			continue
		}

		rec := MoveRecord{SAN: parseSANToken(tok)}
		if pending != "" {
			diag := extractDiag(pending)
			rec.CommentMove = diag.text
			rec.Diag = diag.diag
			pending = ""
		}

		// trailing NAGs/comments glued to this move before any variations
		for {
			p.skipSpace()
			if p.i < len(p.s) && p.s[p.i] == '$' {
				rec.NAGs = append(rec.NAGs, strings.TrimPrefix(p.readNAG(), "$"))
				continue
			}
			if p.i < len(p.s) && p.s[p.i] == '{' {
				diag := extractDiag(p.readBraceComment())
				rec.CommentAfter += diag.text
				mergeDiag(&rec.Diag, diag.diag)
				continue
			}
			break
		}

		for {
			p.skipSpace()
			if p.i < len(p.s) && p.s[p.i] == '(' {
				p.i++
				sub := p.parseMoveList()
				p.skipSpace()
				if p.i < len(p.s) && p.s[p.i] == ')' {
					p.i++
				}
				rec.Variations = append(rec.Variations, sub)
				continue
			}
			break
		}

		out = append(out, rec)
	}
	return out
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isResultToken(tok string) bool {
	switch tok {
	case "1-0", "0-1", "1/2-1/2", "*":
		return true
	}
	return false
}

// isMoveNumberToken reports whether tok is a pure move-number marker such
// as "12." or "12...", carrying no move text of its own.
func isMoveNumberToken(tok string) bool {
	i := 0
	for i < len(tok) && isDigit(tok[i]) {
		i++
	}
	if i == 0 {
		return false
	}
	for i < len(tok) {
		if tok[i] != '.' {
			return false
		}
		i++
	}
	return true
}

func mergeDiag(dst *CommentDiag, src CommentDiag) {
	if src.Clk != "" {
		dst.Clk = src.Clk
	}
	if src.Eval != "" {
		dst.Eval = src.Eval
	}
	dst.ColorArrows = append(dst.ColorArrows, src.ColorArrows...)
	dst.ColorFields = append(dst.ColorFields, src.ColorFields...)
}
