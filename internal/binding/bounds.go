package binding

import (
	"go/constant"
	"go/token"
	"math"

	"inspector-generator/internal/directive"
	"inspector-generator/internal/schema"
)

// intRanges holds the bounds of the predeclared integer types.
var intRanges = map[string][2]constant.Value{
	"int8":  {constant.MakeInt64(math.MinInt8), constant.MakeInt64(math.MaxInt8)},
	"int16": {constant.MakeInt64(math.MinInt16), constant.MakeInt64(math.MaxInt16)},
	"int32": {constant.MakeInt64(math.MinInt32), constant.MakeInt64(math.MaxInt32)},
	"rune":  {constant.MakeInt64(math.MinInt32), constant.MakeInt64(math.MaxInt32)},
	"int64": {constant.MakeInt64(math.MinInt64), constant.MakeInt64(math.MaxInt64)},
	"int":   {constant.MakeInt64(math.MinInt64), constant.MakeInt64(math.MaxInt64)},

	"uint8":  {constant.MakeUint64(0), constant.MakeUint64(math.MaxUint8)},
	"byte":   {constant.MakeUint64(0), constant.MakeUint64(math.MaxUint8)},
	"uint16": {constant.MakeUint64(0), constant.MakeUint64(math.MaxUint16)},
	"uint32": {constant.MakeUint64(0), constant.MakeUint64(math.MaxUint32)},
	"uint64": {constant.MakeUint64(0), constant.MakeUint64(math.MaxUint64)},
	"uint":   {constant.MakeUint64(0), constant.MakeUint64(math.MaxUint64)},
}

// Bound returns the slider bound lit as a value of the field type typ. Bounds of
// float fields are kept as written. Bounds of integer fields are truncated toward
// zero and clamped to the type's range. exact is false when the value changed.
func Bound(lit *directive.Literal, typ schema.TypeExpr) (v constant.Value, exact bool) {
	v = lit.Value()
	if !typ.Integer {
		return v, true
	}

	exact = true

	if constant.ToInt(v).Kind() != constant.Int {
		f, _ := constant.Float64Val(v)
		v = constant.MakeFloat64(math.Trunc(f))
		exact = false
	}

	v = constant.ToInt(v)

	if r, ok := intRanges[typ.Name]; ok {
		switch {
		case constant.Compare(v, token.LSS, r[0]):
			v, exact = r[0], false
		case constant.Compare(v, token.GTR, r[1]):
			v, exact = r[1], false
		}
	}

	return v, exact
}

// BoundText is Bound rendered as a Go literal, the original text when exact.
func BoundText(lit *directive.Literal, typ schema.TypeExpr) string {
	v, exact := Bound(lit, typ)
	if exact {
		return lit.Text
	}

	return v.ExactString()
}
