package directive

import (
	"go/constant"
	"go/token"
	"strings"

	"inspector-generator/internal/common"
)

//go:generate go tool stringer -type=LiteralKind -trimprefix=Literal -output=literalkind_string.go

// LiteralKind classifies a directive argument token.
type LiteralKind int

const (
	LiteralInvalid LiteralKind = iota
	LiteralInt
	LiteralFloat
	LiteralImag
	LiteralChar
	LiteralString
	LiteralBool
	LiteralIdent
)

// IsNumeric reports whether the kind is accepted as a slider bound.
func (k LiteralKind) IsNumeric() bool {
	switch k {
	case LiteralInt, LiteralFloat:
		return true
	default:
		return false
	}
}

// Literal is a directive argument kept verbatim as written in the tag.
type Literal struct {
	Kind LiteralKind
	Text string // e.g. "120", "-0.5", "1e3"
}

// Negative reports whether the literal carries a leading minus sign.
func (l Literal) Negative() bool {
	return strings.HasPrefix(l.Text, "-")
}

// String returns the literal text.
func (l Literal) String() string {
	return l.Text
}

// Kind is the directive keyword.
type Kind int

const (
	KindSlider Kind = iota + 1
	KindIgnore
	KindNested
)

// String returns the tag keyword for the kind.
func (k Kind) String() string {
	switch k {
	case KindSlider:
		return "slider"
	case KindIgnore:
		return "ignore"
	case KindNested:
		return "nested"
	default:
		return common.UnknownStr
	}
}

// Directive is one parsed keyword with its arguments.
type Directive struct {
	Kind Kind
	// Min and Max are the slider bounds; nil when not given.
	Min *Literal
	Max *Literal
}

// Set is the ordered, de-duplicated collection of a field's directives.
type Set []Directive

// Has reports whether the set contains a directive of kind k.
func (s Set) Has(k Kind) bool {
	_, ok := s.Get(k)
	return ok
}

// Get returns the directive of kind k.
func (s Set) Get(k Kind) (Directive, bool) {
	for _, d := range s {
		if d.Kind == k {
			return d, true
		}
	}

	return Directive{}, false
}

// Ignored reports whether the field is excluded from generation.
func (s Set) Ignored() bool {
	return s.Has(KindIgnore)
}

// Slider returns the slider directive, if any.
func (s Set) Slider() (Directive, bool) {
	return s.Get(KindSlider)
}

// Value returns the literal as an exact constant, or an Unknown value if the
// text is not a valid Go number.
func (l Literal) Value() constant.Value {
	text := strings.TrimPrefix(l.Text, "-")

	var tok token.Token

	switch l.Kind {
	case LiteralInt:
		tok = token.INT
	case LiteralFloat:
		tok = token.FLOAT
	default:
		return constant.MakeUnknown()
	}

	v := constant.MakeFromLiteral(text, tok, 0)
	if l.Negative() {
		v = constant.UnaryOp(token.SUB, v, 0)
	}

	return v
}
