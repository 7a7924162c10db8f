package pgnscan

import "strings"

// parseSANToken splits a raw move token into its unresolved sub-fields. It
// never fails and does not validate: fields are split by position (the last
// two characters become Col/Row), a token shorter than that keeps only
// Notation, and it is up to the tree builder to decide whether the result is
// fatal for this one move.
func parseSANToken(raw string) SANToken {
	tok := SANToken{Notation: raw}

	trimmed := strings.TrimRight(raw, "+#!?")
	switch trimmed {
	case "O-O", "0-0", "O-O-O", "0-0-0", "--", "Z0":
		return tok
	}

	if idx := strings.IndexByte(trimmed, '@'); idx > 0 {
		tok.Drop = true
		tok.Fig = strings.ToUpper(trimmed[:idx])
		dest := trimmed[idx+1:]
		if len(dest) == 2 {
			tok.Col, tok.Row = dest[0], dest[1]
		}
		return tok
	}

	s := trimmed
	if idx := strings.IndexByte(s, '='); idx != -1 && idx+1 < len(s) {
		tok.Promotion = strings.ToUpper(string(s[idx+1]))
		s = s[:idx]
	}

	i := 0
	if len(s) > 0 && isUpperPieceLetter(s[0]) {
		tok.Fig = string(s[0])
		i++
	}
	rest := strings.ReplaceAll(s[i:], "x", "")
	if len(rest) < 2 {
		return tok
	}
	dest := rest[len(rest)-2:]
	disc := rest[:len(rest)-2]
	tok.Col = dest[0]
	tok.Row = dest[1]
	tok.Disc = disc
	return tok
}

func isUpperPieceLetter(c byte) bool {
	switch c {
	case 'K', 'Q', 'R', 'B', 'N':
		return true
	}
	return false
}

type diagResult struct {
	text  string
	diag  CommentDiag
	arrows []string
	fields []string
}

// extractDiag pulls the "[%clk ...]", "[%eval ...]", "[%cal ...]", and
// "[%csl ...]" micro-grammar out of a raw comment, returning the remaining
// free text separately.
func extractDiag(raw string) diagResult {
	var res diagResult
	text := raw
	for {
		start := strings.IndexByte(text, '[')
		if start == -1 {
			break
		}
		end := strings.IndexByte(text[start:], ']')
		if end == -1 {
			break
		}
		end += start
		tag := text[start+1 : end]
		consumed := true
		switch {
		case strings.HasPrefix(tag, "%clk "):
			res.diag.Clk = strings.TrimSpace(tag[len("%clk "):])
		case strings.HasPrefix(tag, "%eval "):
			res.diag.Eval = strings.TrimSpace(tag[len("%eval "):])
		case strings.HasPrefix(tag, "%cal "):
			res.diag.ColorArrows = append(res.diag.ColorArrows, splitCommaList(tag[len("%cal "):])...)
			res.arrows = res.diag.ColorArrows
		case strings.HasPrefix(tag, "%csl "):
			res.diag.ColorFields = append(res.diag.ColorFields, splitCommaList(tag[len("%csl "):])...)
			res.fields = res.diag.ColorFields
		default:
			consumed = false
		}
		if consumed {
			text = text[:start] + text[end+1:]
			continue
		}
		// Not a recognized command; skip past this bracket so we don't loop.
		text = text[:start] + text[start+1:]
	}
	res.text = strings.TrimSpace(text)
	return res
}

func splitCommaList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
