package ir

import "fmt"

// InstanceType is a JSON Schema primitive type tag.
type InstanceType string

const (
	TypeNull    InstanceType = "null"
	TypeBoolean InstanceType = "boolean"
	TypeNumber  InstanceType = "number"
	TypeInteger InstanceType = "integer"
	TypeString  InstanceType = "string"
	TypeArray   InstanceType = "array"
	TypeObject  InstanceType = "object"
)

// ParseInstanceType maps a JSON Schema "type" keyword value to an InstanceType.
func ParseInstanceType(s string) (InstanceType, error) {
	switch t := InstanceType(s); t {
	case TypeNull, TypeBoolean, TypeNumber, TypeInteger, TypeString, TypeArray, TypeObject:
		return t, nil
	}
	return "", fmt.Errorf("ir: unknown instance type %q", s)
}

// TypeSpec is the declared "type" of a node: Single or Set. A nil TypeSpec
// means no type was declared.
type TypeSpec interface {
	isTypeSpec()
}

// Single declares exactly one instance type.
type Single InstanceType

func (Single) isTypeSpec() {}

// Set declares a union of instance types. Including TypeNull marks the node
// nullable rather than adding a null member.
type Set []InstanceType

func (Set) isTypeSpec() {}

// WithoutNull returns the non-null tags in declaration order and whether
// null was present.
func (s Set) WithoutNull() ([]InstanceType, bool) {
	out := make([]InstanceType, 0, len(s))
	nullable := false
	for _, t := range s {
		if t == TypeNull {
			nullable = true
			continue
		}
		out = append(out, t)
	}
	return out, nullable
}

// Items is the item schema shape of an array: SingleItem or TupleItems.
type Items interface {
	isItems()
}

// SingleItem describes a homogeneous array.
type SingleItem struct {
	Schema Schema
}

func (SingleItem) isItems() {}

// TupleItems describes a fixed-arity tuple, one schema per position.
type TupleItems []Schema

func (TupleItems) isItems() {}
