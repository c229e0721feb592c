package pretty

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

type tokKind int

const (
	tokEOF tokKind = iota
	tokIdent
	tokNumber
	tokString
	tokPunct
)

type token struct {
	kind tokKind
	text string // identifier, number text, punctuation, or the decoded string value
	pos  int
}

func (t token) is(punct string) bool { return t.kind == tokPunct && t.text == punct }

func lex(src string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(src) {
		r, size := utf8.DecodeRuneInString(src[i:])
		switch {
		case unicode.IsSpace(r):
			i += size
		case isIdentStart(r):
			j := i + size
			for j < len(src) {
				r2, s2 := utf8.DecodeRuneInString(src[j:])
				if !isIdentPart(r2) {
					break
				}
				j += s2
			}
			toks = append(toks, token{kind: tokIdent, text: src[i:j], pos: i})
			i = j
		case r >= '0' && r <= '9' || r == '.' && i+1 < len(src) && isDigit(src[i+1]):
			j := scanNumber(src, i)
			toks = append(toks, token{kind: tokNumber, text: src[i:j], pos: i})
			i = j
		case r == '"' || r == '\'':
			s, j, err := scanString(src, i)
			if err != nil {
				return nil, err
			}
			toks = append(toks, token{kind: tokString, text: s, pos: i})
			i = j
		case strings.ContainsRune("()[]{},:.;-", r):
			toks = append(toks, token{kind: tokPunct, text: string(r), pos: i})
			i += size
		default:
			return nil, fmt.Errorf("pretty: unexpected character %q at offset %d", r, i)
		}
	}
	return append(toks, token{kind: tokEOF, pos: len(src)}), nil
}

func isIdentStart(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func scanNumber(src string, i int) int {
	j := i
	for j < len(src) && (isDigit(src[j]) || src[j] == '.') {
		j++
	}
	if j < len(src) && (src[j] == 'e' || src[j] == 'E') {
		j++
		if j < len(src) && (src[j] == '+' || src[j] == '-') {
			j++
		}
		for j < len(src) && isDigit(src[j]) {
			j++
		}
	}
	return j
}

// scanString decodes a JS string literal starting at src[i] and returns its
// value and the offset just past the closing quote.
func scanString(src string, i int) (string, int, error) {
	quote := src[i]
	var b strings.Builder
	j := i + 1
	for j < len(src) {
		c := src[j]
		switch {
		case c == quote:
			return b.String(), j + 1, nil
		case c == '\n':
			return "", 0, fmt.Errorf("pretty: unterminated string at offset %d", i)
		case c != '\\':
			b.WriteByte(c)
			j++
			continue
		}
		if j+1 >= len(src) {
			break
		}
		esc := src[j+1]
		j += 2
		switch esc {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'v':
			b.WriteByte('\v')
		case '0':
			b.WriteByte(0)
		case 'x':
			if j+2 > len(src) {
				return "", 0, fmt.Errorf("pretty: bad \\x escape at offset %d", j-2)
			}
			v, err := strconv.ParseUint(src[j:j+2], 16, 8)
			if err != nil {
				return "", 0, fmt.Errorf("pretty: bad \\x escape at offset %d", j-2)
			}
			b.WriteRune(rune(v))
			j += 2
		case 'u':
			r, next, err := scanUnicodeEscape(src, j)
			if err != nil {
				return "", 0, err
			}
			// Combine a surrogate pair written as two escapes.
			if utf16.IsSurrogate(r) && next+1 < len(src) && src[next] == '\\' && src[next+1] == 'u' {
				if r2, next2, err := scanUnicodeEscape(src, next+2); err == nil {
					if c := utf16.DecodeRune(r, r2); c != unicode.ReplacementChar {
						r, next = c, next2
					}
				}
			}
			b.WriteRune(r)
			j = next
		case '\n':
			// line continuation
		default:
			b.WriteByte(esc)
		}
	}
	return "", 0, fmt.Errorf("pretty: unterminated string at offset %d", i)
}

// scanUnicodeEscape reads XXXX or {X...} after "\u".
func scanUnicodeEscape(src string, j int) (rune, int, error) {
	if j < len(src) && src[j] == '{' {
		end := strings.IndexByte(src[j:], '}')
		if end < 0 {
			return 0, 0, fmt.Errorf("pretty: bad \\u escape at offset %d", j-2)
		}
		v, err := strconv.ParseUint(src[j+1:j+end], 16, 32)
		if err != nil || v > unicode.MaxRune {
			return 0, 0, fmt.Errorf("pretty: bad \\u escape at offset %d", j-2)
		}
		return rune(v), j + end + 1, nil
	}
	if j+4 > len(src) {
		return 0, 0, fmt.Errorf("pretty: bad \\u escape at offset %d", j-2)
	}
	v, err := strconv.ParseUint(src[j:j+4], 16, 16)
	if err != nil {
		return 0, 0, fmt.Errorf("pretty: bad \\u escape at offset %d", j-2)
	}
	return rune(v), j + 4, nil
}
