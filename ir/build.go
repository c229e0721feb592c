package ir

// Helpers for building IR by hand. Generated IR usually comes from the
// jsonschema package instead.

// Typed returns a node declaring a single instance type.
func Typed(t InstanceType) *Object { return &Object{Type: Single(t)} }

// Nullable returns a node declaring t or null.
func Nullable(t InstanceType) *Object { return &Object{Type: Set{t, TypeNull}} }

// Const returns a literal node.
func Const(v any) *Object { return &Object{Const: &Literal{Value: v}} }

// Enum returns a node listing the accepted values.
func Enum(values ...any) *Object {
	if values == nil {
		values = []any{}
	}
	return &Object{Enum: values}
}

// ArrayOf returns a homogeneous array node.
func ArrayOf(item Schema) *Object {
	return &Object{Type: Single(TypeArray), Array: &ArrayFacet{Items: SingleItem{Schema: item}}}
}

// TupleOf returns a fixed tuple node.
func TupleOf(items ...Schema) *Object {
	return &Object{Type: Single(TypeArray), Array: &ArrayFacet{Items: TupleItems(items)}}
}

// Struct returns an object node with the given properties and required names.
func Struct(props map[string]Schema, required ...string) *Object {
	return &Object{
		Type:   Single(TypeObject),
		Object: &ObjectFacet{Properties: props, Required: required},
	}
}

// OneOf returns a union node.
func OneOf(members ...Schema) *Object {
	if members == nil {
		members = []Schema{}
	}
	return &Object{Subschemas: &Subschemas{OneOf: members}}
}

// AnyOf returns a union node using anyOf.
func AnyOf(members ...Schema) *Object {
	if members == nil {
		members = []Schema{}
	}
	return &Object{Subschemas: &Subschemas{AnyOf: members}}
}

// Ptr returns a pointer to v. Handy for optional facet fields.
func Ptr[T any](v T) *T { return &v }

// Describe sets the node description and returns the node.
func (o *Object) Describe(desc string) *Object {
	if o.Metadata == nil {
		o.Metadata = &Metadata{}
	}
	o.Metadata.Description = &desc
	return o
}

// WithDefault sets the node default value and returns the node.
func (o *Object) WithDefault(v any) *Object {
	if o.Metadata == nil {
		o.Metadata = &Metadata{}
	}
	o.Metadata.Default = &Literal{Value: v}
	return o
}
