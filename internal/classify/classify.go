// Package classify maps a field's declared type to the widget category that renders it.
package classify

import (
	"inspector-generator/internal/common"
	"inspector-generator/internal/diagnostic"
	"inspector-generator/internal/schema"
)

// Category is the widget category of a field.
type Category int

const (
	CategoryInvalid Category = iota
	CategoryScalarNumeric
	CategoryText
	CategoryBoolean
	CategoryComposite
)

// String returns a human-readable representation of the Category.
func (c Category) String() string {
	switch c {
	case CategoryScalarNumeric:
		return "scalar"
	case CategoryText:
		return "text"
	case CategoryBoolean:
		return "boolean"
	case CategoryComposite:
		return "composite"
	default:
		return common.UnknownStr
	}
}

// primitives maps predeclared type names to their category. Matching is exact;
// adding a scalar width is one line here.
var primitives = map[string]Category{
	"uint8":   CategoryScalarNumeric,
	"uint16":  CategoryScalarNumeric,
	"uint32":  CategoryScalarNumeric,
	"uint64":  CategoryScalarNumeric,
	"uint":    CategoryScalarNumeric,
	"float32": CategoryScalarNumeric,
	"float64": CategoryScalarNumeric,
	"byte":    CategoryScalarNumeric,
	"int":     CategoryScalarNumeric,
	"int8":    CategoryScalarNumeric,
	"int16":   CategoryScalarNumeric,
	"int32":   CategoryScalarNumeric,
	"int64":   CategoryScalarNumeric,
	"rune":    CategoryScalarNumeric,

	"string": CategoryText,
	"bool":   CategoryBoolean,
}

// Classify returns the category for a declared type.
//
// Named types that are not in the primitive table are Composite and are trusted
// to implement their own inspector. Sequences and other unnamed shapes are
// rejected, as are predeclared types with no widget (complex, uintptr).
func Classify(t schema.TypeExpr) (Category, error) {
	switch t.Shape {
	case schema.ShapeSequence:
		return CategoryInvalid, diagnostic.Errorf(diagnostic.CodeUnsupportedFieldShape,
			"slice and array fields are not supported")
	case schema.ShapeOther:
		return CategoryInvalid, diagnostic.Errorf(diagnostic.CodeUnsupportedFieldShape,
			"field type %s is not a plain named type", t)
	}

	if c, ok := primitives[t.Name]; ok {
		return c, nil
	}

	if t.Predeclared {
		return CategoryInvalid, diagnostic.Errorf(diagnostic.CodeUnsupportedFieldShape,
			"predeclared type %s has no widget", t.Name)
	}

	return CategoryComposite, nil
}

// IsPrimitive reports whether name is in the primitive table.
func IsPrimitive(name string) bool {
	_, ok := primitives[name]
	return ok
}
