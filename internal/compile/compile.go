package compile

import (
	"go/constant"
	"go/token"

	"inspector-generator/internal/binding"
	"inspector-generator/internal/classify"
	"inspector-generator/internal/diagnostic"
	"inspector-generator/internal/directive"
	"inspector-generator/internal/schema"
)

// Options controls assembly.
type Options struct {
	// Register emits a registration hook for the record.
	Register bool
}

// Procedure is one generated entry point.
type Procedure struct {
	Record string
	// Nested procedures draw the caller's label before the bindings.
	Nested   bool
	Bindings []binding.Binding
}

// Registration associates a record type with its generated procedures.
type Registration struct {
	Record string
}

// Result is the output of compiling one record.
type Result struct {
	Record       schema.Record
	Render       Procedure
	RenderNested Procedure
	Registration *Registration
	Diagnostics  diagnostic.Diagnostics
}

// Walk compiles the record's fields into bindings, in declaration order.
func Walk(rec schema.Record) ([]binding.Binding, error) {
	return walk(rec, nil)
}

// Assemble packages bindings into the plain and nested render procedures.
func Assemble(record string, bindings []binding.Binding, opts Options) Result {
	res := Result{
		Render:       Procedure{Record: record, Bindings: bindings},
		RenderNested: Procedure{Record: record, Nested: true, Bindings: bindings},
	}

	if opts.Register {
		res.Registration = &Registration{Record: record}
	}

	return res
}

// Compile walks and assembles rec, collecting non-fatal warnings on the way.
func Compile(rec schema.Record, opts Options) (*Result, error) {
	var diags diagnostic.Diagnostics

	bindings, err := walk(rec, &diags)
	if err != nil {
		return nil, err
	}

	res := Assemble(rec.Name, bindings, opts)
	res.Record = rec
	res.Diagnostics = diags

	return &res, nil
}

func walk(rec schema.Record, diags *diagnostic.Diagnostics) ([]binding.Binding, error) {
	bindings := make([]binding.Binding, 0, len(rec.Fields))

	for _, f := range rec.Fields {
		set, err := directive.Parse(f.Tag)
		if err != nil {
			return nil, diagnostic.At(err, rec.Name, f.Name)
		}

		if set.Ignored() {
			if diags != nil {
				diags.AddInfo(diagnostic.CodeFieldIgnored, "field skipped by ignore", rec.Name, f.Name)
			}

			continue
		}

		category, err := classify.Classify(f.Type)
		if err != nil {
			return nil, diagnostic.At(err, rec.Name, f.Name)
		}

		b, err := binding.Emit(f.Name, category, set)
		if err != nil {
			return nil, diagnostic.At(err, rec.Name, f.Name)
		}

		if diags != nil {
			checkNested(diags, rec.Name, f, set)
			checkSlider(diags, rec.Name, f, set, b)
		}

		bindings = append(bindings, b)
	}

	return bindings, nil
}

// checkNested flags nested on a primitive field. The emitted Delegate call needs
// the field to implement its own inspector, which a predeclared type never does.
func checkNested(diags *diagnostic.Diagnostics, record string, f schema.Field, set directive.Set) {
	if set.Has(directive.KindNested) && f.Type.Predeclared && classify.IsPrimitive(f.Type.Name) {
		diags.AddWarning(diagnostic.CodeNestedOnPrimitive,
			"nested on "+f.Type.Name+" field delegates to an inspector the type cannot have", record, f.Name)
	}
}

// checkSlider records bound problems that the compiler passes through unchanged.
func checkSlider(diags *diagnostic.Diagnostics, record string, f schema.Field, set directive.Set, b binding.Binding) {
	if b.Widget != binding.WidgetSlider {
		if set.Has(directive.KindSlider) {
			diags.AddWarning(diagnostic.CodeSliderIgnored,
				"slider has no effect on a "+b.Widget.String()+" field", record, f.Name)
		}

		return
	}

	lo, hi := b.Min.Value(), b.Max.Value()
	if constant.Compare(lo, token.GTR, hi) {
		diags.AddWarning(diagnostic.CodeSliderBoundsInverted,
			"slider min "+b.Min.Text+" is greater than max "+b.Max.Text, record, f.Name)
	}

	for _, bound := range []*directive.Literal{b.Min, b.Max} {
		v := bound.Value()

		if f.Type.Integer && constant.ToInt(v).Kind() != constant.Int {
			diags.AddWarning(diagnostic.CodeFloatBoundOnInteger,
				"bound "+bound.Text+" is not an integer but "+f.Name+" is "+f.Type.Name, record, f.Name)
		}

		if f.Type.Unsigned && constant.Sign(v) < 0 {
			diags.AddWarning(diagnostic.CodeNegativeBoundOnUint,
				"bound "+bound.Text+" is negative but "+f.Name+" is "+f.Type.Name, record, f.Name)
		}
	}
}
