package pretty

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

type printer struct {
	cfg Config
}

func (p *printer) semiWidth() int {
	if p.cfg.Semicolons {
		return 1
	}
	return 0
}

func (p *printer) indent(level int) string {
	if p.cfg.UseTabs {
		return strings.Repeat("\t", level)
	}
	return strings.Repeat(" ", level*p.cfg.IndentWidth)
}

// width measures display columns; a tab counts as one indent step.
func (p *printer) width(s string) int {
	tabs := strings.Count(s, "\t")
	return runewidth.StringWidth(strings.ReplaceAll(s, "\t", "")) + tabs*p.cfg.IndentWidth
}

// endCol returns the column after writing s starting at col.
func (p *printer) endCol(col int, s string) int {
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return p.width(s[i+1:])
	}
	return col + p.width(s)
}

func (p *printer) fits(col int, s string, tail int) bool {
	return !strings.Contains(s, "\n") && col+p.width(s)+tail <= p.cfg.LineWidth
}

// layout prints n starting at column col on a line indented level times,
// reserving tail columns for text that follows on the same line.
func (p *printer) layout(n node, level, col, tail int) string {
	if flat := p.flat(n); p.fits(col, flat, tail) {
		return flat
	}
	switch v := n.(type) {
	case call:
		return p.layoutCall(v, level, col, tail)
	case member:
		obj := p.layout(v.obj, level, col, tail+1+len(v.name))
		return obj + "." + v.name
	case arrayLit:
		return p.broken("[", "]", len(v.elems), level, func(i, lvl, c int) string {
			return p.layout(v.elems[i], lvl, c, 1)
		})
	case objectLit:
		return p.broken("{", "}", len(v.props), level, func(i, lvl, c int) string {
			key := p.key(v.props[i]) + ": "
			return key + p.layout(v.props[i].value, lvl, c+p.width(key), 1)
		})
	case paren:
		return "(" + p.layout(v.inner, level, col+1, tail+1) + ")"
	default:
		return p.flat(n)
	}
}

func (p *printer) layoutCall(c call, level, col, tail int) string {
	if len(c.args) == 0 {
		return p.layout(c.fn, level, col, tail+2) + "()"
	}
	fn := p.layout(c.fn, level, col, 1)
	col = p.endCol(col, fn) + 1

	flatArgs := make([]string, len(c.args))
	for i, a := range c.args {
		flatArgs[i] = p.flat(a)
	}
	if joined := strings.Join(flatArgs, ", "); p.fits(col, joined, tail+1) {
		return fn + "(" + joined + ")"
	}

	// Hug a trailing array or object literal when the leading args fit.
	last := c.args[len(c.args)-1]
	if isLiteral(last) {
		lead := strings.Join(flatArgs[:len(flatArgs)-1], ", ")
		if lead != "" {
			lead += ", "
		}
		if p.fits(col, lead, 1) {
			return fn + "(" + lead + p.layout(last, level, col+p.width(lead), tail+1) + ")"
		}
	}

	return fn + p.broken("(", ")", len(c.args), level, func(i, lvl, cc int) string {
		return p.layout(c.args[i], lvl, cc, 1)
	})
}

// broken prints a bracketed list one element per line with trailing commas.
func (p *printer) broken(open, close string, n, level int, elem func(i, level, col int) string) string {
	if n == 0 {
		return open + close
	}
	var b strings.Builder
	b.WriteString(open)
	b.WriteByte('\n')
	ind := p.indent(level + 1)
	for i := 0; i < n; i++ {
		b.WriteString(ind)
		b.WriteString(elem(i, level+1, p.width(ind)))
		b.WriteString(",\n")
	}
	b.WriteString(p.indent(level))
	b.WriteString(close)
	return b.String()
}

func isLiteral(n node) bool {
	switch n.(type) {
	case arrayLit, objectLit:
		return true
	}
	return false
}

// flat prints n on a single line.
func (p *printer) flat(n node) string {
	switch v := n.(type) {
	case leaf:
		return v.text
	case strLit:
		return p.quote(v.value)
	case member:
		return p.flat(v.obj) + "." + v.name
	case call:
		args := make([]string, len(v.args))
		for i, a := range v.args {
			args[i] = p.flat(a)
		}
		return p.flat(v.fn) + "(" + strings.Join(args, ", ") + ")"
	case arrayLit:
		elems := make([]string, len(v.elems))
		for i, e := range v.elems {
			elems[i] = p.flat(e)
		}
		return "[" + strings.Join(elems, ", ") + "]"
	case objectLit:
		if len(v.props) == 0 {
			return "{}"
		}
		props := make([]string, len(v.props))
		for i, pr := range v.props {
			props[i] = p.key(pr) + ": " + p.flat(pr.value)
		}
		return "{ " + strings.Join(props, ", ") + " }"
	case paren:
		return "(" + p.flat(v.inner) + ")"
	default:
		panic(fmt.Sprintf("pretty: unknown node %T", n))
	}
}

var identKey = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

func (p *printer) key(pr prop) string {
	if !pr.quoted {
		return pr.key
	}
	if p.cfg.QuoteProps == QuotePropsAsNeeded && identKey.MatchString(pr.key) {
		return pr.key
	}
	return p.quote(pr.key)
}

// quote renders s as a JS string literal in the configured quote style.
func (p *printer) quote(s string) string {
	q := byte('"')
	if p.cfg.SingleQuotes {
		q = '\''
	}
	var b strings.Builder
	b.WriteByte(q)
	for _, r := range s {
		switch r {
		case rune(q):
			b.WriteByte('\\')
			b.WriteByte(q)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\v':
			b.WriteString(`\v`)
		case '\u2028', '\u2029':
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\x%02x`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte(q)
	return b.String()
}
