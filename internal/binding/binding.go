// Package binding turns one classified field and its directives into the widget
// binding that renders it.
package binding

import (
	"fmt"

	"inspector-generator/internal/classify"
	"inspector-generator/internal/common"
	"inspector-generator/internal/diagnostic"
	"inspector-generator/internal/directive"
)

// WidgetKind is the widget a binding draws.
type WidgetKind int

const (
	WidgetInvalid WidgetKind = iota
	WidgetInputScalar
	WidgetSlider
	WidgetInputText
	WidgetCheckbox
	WidgetDelegate
)

// String returns a human-readable representation of the WidgetKind.
func (w WidgetKind) String() string {
	switch w {
	case WidgetInputScalar:
		return "input"
	case WidgetSlider:
		return "slider"
	case WidgetInputText:
		return "text"
	case WidgetCheckbox:
		return "checkbox"
	case WidgetDelegate:
		return "delegate"
	default:
		return common.UnknownStr
	}
}

// Binding is the compiled rendering unit for one field.
type Binding struct {
	// Field is the Go field name that is read and written.
	Field string
	// Label is the display text drawn next to the widget, or the heading passed
	// to a delegated inspector.
	Label string
	// ID is the widget scope pushed around the widget.
	ID     string
	Widget WidgetKind
	// Min and Max are set for sliders only.
	Min *directive.Literal
	Max *directive.Literal
}

// String renders the binding compactly, e.g. "slider(Age,0,120)" or "delegate(Profile,\"Profile\")".
func (b Binding) String() string {
	switch b.Widget {
	case WidgetSlider:
		return fmt.Sprintf("slider(%s,%s,%s)", b.Field, b.Min, b.Max)
	case WidgetDelegate:
		return fmt.Sprintf("delegate(%s,%q)", b.Field, b.Label)
	default:
		return fmt.Sprintf("%s(%s)", b.Widget, b.Field)
	}
}

// Emit builds the binding for field name.
//
// A nested directive forces delegation. A slider directive only affects scalar
// fields, and then needs both bounds.
func Emit(name string, category classify.Category, set directive.Set) (Binding, error) {
	b := Binding{Field: name, Label: name, ID: name}

	if set.Has(directive.KindNested) {
		category = classify.CategoryComposite
	}

	switch category {
	case classify.CategoryScalarNumeric:
		slider, ok := set.Slider()
		if !ok {
			b.Widget = WidgetInputScalar
			return b, nil
		}

		if slider.Min == nil || slider.Max == nil {
			return Binding{}, diagnostic.Errorf(diagnostic.CodeMissingSliderBounds,
				"slider on %s needs both min and max", name)
		}

		b.Widget = WidgetSlider
		b.Min = slider.Min
		b.Max = slider.Max

	case classify.CategoryText:
		b.Widget = WidgetInputText

	case classify.CategoryBoolean:
		b.Widget = WidgetCheckbox

	case classify.CategoryComposite:
		b.Widget = WidgetDelegate

	default:
		return Binding{}, fmt.Errorf("emit %s: invalid category %s", name, category)
	}

	return b, nil
}
