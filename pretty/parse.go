package pretty

import "fmt"

type node interface{}

// leaf is printed verbatim: identifiers, keywords, numbers.
type leaf struct{ text string }

type strLit struct{ value string }

type member struct {
	obj  node
	name string
}

// call also covers "new X(...)" with fn = leaf{"new X"}.
type call struct {
	fn   node
	args []node
}

type arrayLit struct{ elems []node }

type prop struct {
	key    string
	quoted bool // key was written as a string literal
	value  node
}

type objectLit struct{ props []prop }

type paren struct{ inner node }

type parser struct {
	toks []token
	i    int
}

func parse(toks []token) (node, error) {
	p := &parser{toks: toks}
	n, err := p.expr()
	if err != nil {
		return nil, err
	}
	if p.peek().is(";") {
		p.i++
	}
	if t := p.peek(); t.kind != tokEOF {
		return nil, p.errorf(t, "unexpected %q after expression", t.text)
	}
	return n, nil
}

func (p *parser) peek() token { return p.toks[p.i] }

func (p *parser) next() token {
	t := p.toks[p.i]
	if t.kind != tokEOF {
		p.i++
	}
	return t
}

func (p *parser) expect(punct string) error {
	if t := p.next(); !t.is(punct) {
		return p.errorf(t, "expected %q", punct)
	}
	return nil
}

func (p *parser) errorf(t token, format string, args ...any) error {
	return fmt.Errorf("pretty: offset %d: %s", t.pos, fmt.Sprintf(format, args...))
}

func (p *parser) expr() (node, error) {
	n, err := p.primary()
	if err != nil {
		return nil, err
	}
	for {
		switch t := p.peek(); {
		case t.is("."):
			p.i++
			name := p.next()
			if name.kind != tokIdent {
				return nil, p.errorf(name, "expected property name")
			}
			n = member{obj: n, name: name.text}
		case t.is("("):
			args, err := p.list(")")
			if err != nil {
				return nil, err
			}
			n = call{fn: n, args: args}
		default:
			return n, nil
		}
	}
}

func (p *parser) primary() (node, error) {
	t := p.next()
	switch {
	case t.kind == tokIdent && t.text == "new":
		callee := p.next()
		if callee.kind != tokIdent {
			return nil, p.errorf(callee, "expected constructor name")
		}
		name := callee.text
		for p.peek().is(".") {
			p.i++
			part := p.next()
			if part.kind != tokIdent {
				return nil, p.errorf(part, "expected property name")
			}
			name += "." + part.text
		}
		var args []node
		if p.peek().is("(") {
			var err error
			if args, err = p.list(")"); err != nil {
				return nil, err
			}
		}
		return call{fn: leaf{text: "new " + name}, args: args}, nil
	case t.kind == tokIdent, t.kind == tokNumber:
		return leaf{text: t.text}, nil
	case t.kind == tokString:
		return strLit{value: t.text}, nil
	case t.is("-"):
		num := p.next()
		if num.kind != tokNumber {
			return nil, p.errorf(num, "expected number after '-'")
		}
		return leaf{text: "-" + num.text}, nil
	case t.is("["):
		p.i--
		elems, err := p.list("]")
		if err != nil {
			return nil, err
		}
		return arrayLit{elems: elems}, nil
	case t.is("{"):
		return p.object()
	case t.is("("):
		inner, err := p.expr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(")"); err != nil {
			return nil, err
		}
		return paren{inner: inner}, nil
	case t.kind == tokEOF:
		return nil, p.errorf(t, "unexpected end of input")
	default:
		return nil, p.errorf(t, "unexpected %q", t.text)
	}
}

// list parses an opening bracket, comma separated expressions (trailing
// comma allowed) and the closing bracket.
func (p *parser) list(closing string) ([]node, error) {
	p.i++ // opening bracket
	var out []node
	for {
		if p.peek().is(closing) {
			p.i++
			return out, nil
		}
		n, err := p.expr()
		if err != nil {
			return nil, err
		}
		out = append(out, n)
		if p.peek().is(",") {
			p.i++
			continue
		}
		if err := p.expect(closing); err != nil {
			return nil, err
		}
		return out, nil
	}
}

func (p *parser) object() (node, error) {
	var o objectLit
	for {
		if p.peek().is("}") {
			p.i++
			return o, nil
		}
		k := p.next()
		var pr prop
		switch k.kind {
		case tokIdent, tokNumber:
			pr.key = k.text
		case tokString:
			pr.key, pr.quoted = k.text, true
		default:
			return nil, p.errorf(k, "expected property key")
		}
		if err := p.expect(":"); err != nil {
			return nil, err
		}
		v, err := p.expr()
		if err != nil {
			return nil, err
		}
		pr.value = v
		o.props = append(o.props, pr)
		if p.peek().is(",") {
			p.i++
			continue
		}
		if err := p.expect("}"); err != nil {
			return nil, err
		}
		return o, nil
	}
}
