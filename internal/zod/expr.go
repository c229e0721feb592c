// Package zod is a small AST for Zod expressions.
//
// An expression is a base call (z.string(), z.object({...})) followed by an
// ordered list of modifier calls (.min(1), .optional()). Production rules
// build Exprs and only render them to text at the end, so rewriting a
// trailing modifier (nullable to nullish) never touches rendered text.
package zod

import "strings"

// Node is anything that can appear as a call argument.
type Node interface {
	write(b *strings.Builder)
}

// Raw is pre-rendered source text, typically a JSON-encoded literal or a
// number.
type Raw string

func (r Raw) write(b *strings.Builder) { b.WriteString(string(r)) }

// Call is a function or method call.
type Call struct {
	Name string
	Args []Node
}

func (c Call) write(b *strings.Builder) {
	b.WriteString(c.Name)
	b.WriteByte('(')
	writeList(b, c.Args)
	b.WriteByte(')')
}

// Array is an array literal.
type Array []Node

func (a Array) write(b *strings.Builder) {
	b.WriteByte('[')
	writeList(b, a)
	b.WriteByte(']')
}

// Field is one key/value entry of an object literal. Key is pre-encoded.
type Field struct {
	Key   string
	Value Node
}

// ObjectLit is an object literal.
type ObjectLit []Field

func (o ObjectLit) write(b *strings.Builder) {
	if len(o) == 0 {
		b.WriteString("{}")
		return
	}
	b.WriteString("{ ")
	for i, f := range o {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.Key)
		b.WriteString(": ")
		f.Value.write(b)
	}
	b.WriteString(" }")
}

// New is a constructor call such as new RegExp("...").
type New struct {
	Ctor string
	Args []Node
}

func (n New) write(b *strings.Builder) {
	b.WriteString("new ")
	Call{Name: n.Ctor, Args: n.Args}.write(b)
}

// Expr is a base call followed by chained modifiers.
type Expr struct {
	Base Call
	Mods []Call
}

// Z builds z.<name>(args...).
func Z(name string, args ...Node) *Expr {
	return &Expr{Base: Call{Name: "z." + name, Args: args}}
}

// With returns a copy of e with one more modifier. e is not modified.
func (e *Expr) With(name string, args ...Node) *Expr {
	mods := make([]Call, len(e.Mods), len(e.Mods)+1)
	copy(mods, e.Mods)
	return &Expr{Base: e.Base, Mods: append(mods, Call{Name: name, Args: args})}
}

// Last returns the name of the outermost modifier, or "" when there is none.
func (e *Expr) Last() string {
	if len(e.Mods) == 0 {
		return ""
	}
	return e.Mods[len(e.Mods)-1].Name
}

// ReplaceLast returns a copy of e whose outermost modifier is replaced.
// Without modifiers it behaves like With.
func (e *Expr) ReplaceLast(name string, args ...Node) *Expr {
	if len(e.Mods) == 0 {
		return e.With(name, args...)
	}
	mods := make([]Call, len(e.Mods))
	copy(mods, e.Mods)
	mods[len(mods)-1] = Call{Name: name, Args: args}
	return &Expr{Base: e.Base, Mods: mods}
}

func (e *Expr) write(b *strings.Builder) {
	e.Base.write(b)
	for _, m := range e.Mods {
		b.WriteByte('.')
		m.write(b)
	}
}

// String renders the expression on a single line.
func (e *Expr) String() string {
	var b strings.Builder
	e.write(&b)
	return b.String()
}

func writeList(b *strings.Builder, nodes []Node) {
	for i, n := range nodes {
		if i > 0 {
			b.WriteString(", ")
		}
		n.write(b)
	}
}
