// Package schema holds the declaration-side model that the compiler consumes:
// a record and its ordered fields, each with a declared type and raw directive tag.
package schema

import "reflect"

// TagKey is the struct tag key that carries field directives.
const TagKey = "inspect"

// Shape is the syntactic shape of a field's declared type.
type Shape int

const (
	// ShapeNamed is a predeclared or named type, e.g. uint32, string, Address.
	ShapeNamed Shape = iota
	// ShapeSequence is a slice or array type.
	ShapeSequence
	// ShapeOther covers pointers, maps, channels, funcs, interfaces and anonymous structs.
	ShapeOther
)

// String returns a human-readable representation of the Shape.
func (s Shape) String() string {
	switch s {
	case ShapeNamed:
		return "named"
	case ShapeSequence:
		return "sequence"
	case ShapeOther:
		return "other"
	default:
		return "unknown"
	}
}

// TypeExpr is the declared type of a field.
type TypeExpr struct {
	Name  string // type name without package qualifier; empty for unnamed shapes
	Shape Shape
	// Predeclared is true for the language's builtin types (uint32, string, ...).
	Predeclared bool
	// Unsigned and Integer describe predeclared numeric types, used for bound warnings.
	Unsigned bool
	Integer  bool
}

// String returns the type name, or a shape description for unnamed types.
func (t TypeExpr) String() string {
	if t.Name != "" {
		return t.Name
	}

	return "<" + t.Shape.String() + ">"
}

// Field is one declared field of a record.
type Field struct {
	Name  string
	Type  TypeExpr
	Tag   string // raw value of the `inspect` struct tag
	Index int    // position in the struct declaration
}

// Record is a named struct and its exported fields in declaration order.
type Record struct {
	Name    string
	PkgPath string
	Fields  []Field
}

// Field returns the field called name and true, or false if there is none.
func (r *Record) Field(name string) (*Field, bool) {
	for i := range r.Fields {
		if r.Fields[i].Name == name {
			return &r.Fields[i], true
		}
	}

	return nil, false
}

// TagValue extracts the directive tag from a full struct tag string.
func TagValue(structTag string) string {
	return reflect.StructTag(structTag).Get(TagKey)
}
