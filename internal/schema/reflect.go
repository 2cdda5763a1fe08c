package schema

import (
	"reflect"

	"inspector-generator/internal/diagnostic"
)

// FromType builds a Record from a struct type's runtime metadata.
// Pointers to structs are dereferenced; any other kind is UnknownRecordShape.
func FromType(t reflect.Type) (Record, error) {
	if t == nil {
		return Record{}, diagnostic.Errorf(diagnostic.CodeUnknownRecordShape, "nil type")
	}

	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t.Kind() != reflect.Struct {
		return Record{}, diagnostic.At(
			diagnostic.Errorf(diagnostic.CodeUnknownRecordShape, "%s is a %s, not a struct", t, t.Kind()),
			t.Name(), "")
	}

	rec := Record{Name: t.Name(), PkgPath: t.PkgPath()}
	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}

		rec.Fields = append(rec.Fields, Field{
			Name:  sf.Name,
			Type:  TypeExprOf(sf.Type),
			Tag:   sf.Tag.Get(TagKey),
			Index: i,
		})
	}

	return rec, nil
}

// TypeExprOf describes a runtime type the way the classifier expects.
func TypeExprOf(t reflect.Type) TypeExpr {
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return TypeExpr{Shape: ShapeSequence}
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func,
		reflect.Interface, reflect.UnsafePointer:
		return TypeExpr{Name: t.Name(), Shape: ShapeOther}
	}

	if t.Name() == "" {
		return TypeExpr{Shape: ShapeOther}
	}

	expr := TypeExpr{Name: t.Name(), Shape: ShapeNamed, Predeclared: t.PkgPath() == ""}
	if expr.Predeclared {
		switch t.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			expr.Integer = true
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			expr.Integer = true
			expr.Unsigned = true
		}
	}

	return expr
}
