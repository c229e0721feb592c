// Package ir defines the JSON-Schema-shaped intermediate representation
// consumed by the translator.
//
// A Schema is either a trivial boolean schema (Bool) or a structured node
// (*Object). Object facets are optional: a nil facet means "not constrained
// along that axis". Several facets may be set at once; the translator
// resolves overlaps with a fixed precedence (union, literal, enum, type).
package ir

// Schema is the root IR node interface. It is sealed: only Bool and
// *Object implement it.
type Schema interface {
	isSchema()
}

// Bool is a trivial schema. true accepts any value, false accepts none.
type Bool bool

func (Bool) isSchema() {}

// True and False are the two trivial schemas.
const (
	True  Bool = true
	False Bool = false
)

// Object is a structured schema node.
type Object struct {
	Type TypeSpec

	// Enum lists the values an instance must equal one of. nil means absent;
	// a non-nil empty slice rejects every value; a single element makes the
	// node a literal.
	Enum []any
	// Const, when set, makes the node a literal regardless of other facets.
	Const *Literal

	Format string

	String     *StringFacet
	Number     *NumberFacet
	Array      *ArrayFacet
	Object     *ObjectFacet
	Subschemas *Subschemas
	Metadata   *Metadata
}

func (*Object) isSchema() {}

// Literal wraps a JSON-compatible value so that an explicit null can be
// told apart from an absent facet.
type Literal struct {
	Value any
}

// StringFacet holds string constraints.
type StringFacet struct {
	MinLength *uint64
	MaxLength *uint64
	Pattern   *string
}

// NumberFacet holds number/integer constraints. Bounds are inclusive
// unless named Exclusive.
type NumberFacet struct {
	MultipleOf       *float64
	Minimum          *float64
	Maximum          *float64
	ExclusiveMinimum *float64
	ExclusiveMaximum *float64
}

// ArrayFacet holds array and tuple constraints.
type ArrayFacet struct {
	Items           Items
	AdditionalItems Schema
	MinItems        *uint64
	MaxItems        *uint64
	Contains        Schema
	UniqueItems     *bool
}

// ObjectFacet holds object constraints.
type ObjectFacet struct {
	Properties           map[string]Schema
	Required             []string
	AdditionalProperties Schema
	MinProperties        *uint64
	MaxProperties        *uint64
	PatternProperties    map[string]Schema
	PropertyNames        Schema
}

// IsRequired reports whether name is listed in Required.
func (o *ObjectFacet) IsRequired(name string) bool {
	for _, r := range o.Required {
		if r == name {
			return true
		}
	}
	return false
}

// Subschemas holds combinators. Only OneOf and AnyOf are translatable.
type Subschemas struct {
	OneOf []Schema
	AnyOf []Schema
	AllOf []Schema
	Not   Schema
	If    Schema
	Then  Schema
	Else  Schema
}

// Metadata carries annotations that do not constrain validation.
type Metadata struct {
	Title       string
	Description *string
	Default     *Literal
}
