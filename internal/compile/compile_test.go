package compile

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inspector-generator/internal/binding"
	"inspector-generator/internal/diagnostic"
	"inspector-generator/internal/directive"
	"inspector-generator/internal/schema"
)

func basic(name string) schema.TypeExpr {
	expr := schema.TypeExpr{Name: name, Shape: schema.ShapeNamed, Predeclared: true}

	switch name {
	case "uint8", "uint16", "uint32", "uint64", "uint":
		expr.Integer, expr.Unsigned = true, true
	case "int", "int8", "int16", "int32", "int64":
		expr.Integer = true
	}

	return expr
}

func record(name string) schema.TypeExpr {
	return schema.TypeExpr{Name: name, Shape: schema.ShapeNamed}
}

func field(name string, typ schema.TypeExpr, tag string) schema.Field {
	return schema.Field{Name: name, Type: typ, Tag: tag}
}

func strs(bindings []binding.Binding) []string {
	out := make([]string, 0, len(bindings))
	for _, b := range bindings {
		out = append(out, b.String())
	}

	return out
}

func TestWalk_UserScenario(t *testing.T) {
	rec := schema.Record{
		Name: "User",
		Fields: []schema.Field{
			field("age", basic("uint32"), "slider(0,120)"),
			field("name", basic("string"), ""),
			field("active", basic("bool"), ""),
			field("profile", record("Address"), ""),
		},
	}

	bindings, err := Walk(rec)
	require.NoError(t, err)

	want := []string{
		"slider(age,0,120)",
		"text(name)",
		"checkbox(active)",
		`delegate(profile,"profile")`,
	}
	if diff := cmp.Diff(want, strs(bindings)); diff != "" {
		t.Fatalf("bindings mismatch (-want +got):\n%s\n%s", diff, spew.Sdump(bindings))
	}
}

func TestWalk_PreservesDeclarationOrder(t *testing.T) {
	rec := schema.Record{Name: "Plain"}
	types := []string{"uint8", "string", "float64", "bool", "int", "uint64", "float32"}

	for i, typ := range types {
		rec.Fields = append(rec.Fields, field(string(rune('A'+i)), basic(typ), ""))
	}

	bindings, err := Walk(rec)
	require.NoError(t, err)
	require.Len(t, bindings, len(rec.Fields))

	for i, b := range bindings {
		assert.Equal(t, rec.Fields[i].Name, b.Field)
		assert.Equal(t, b.Field, b.ID)
	}
}

func TestWalk_MissingSliderBounds(t *testing.T) {
	rec := schema.Record{
		Name:   "Bad",
		Fields: []schema.Field{field("x", basic("uint32"), "slider")},
	}

	_, err := Walk(rec)
	require.Error(t, err)
	assert.ErrorIs(t, err, diagnostic.ErrMissingSliderBounds)
	assert.Equal(t, "Bad.x: [MissingSliderBounds] slider on x needs both min and max", err.Error())
}

func TestWalk_RemovingABoundFails(t *testing.T) {
	for _, tag := range []string{"slider(0)", "slider()"} {
		rec := schema.Record{
			Name:   "R",
			Fields: []schema.Field{field("v", basic("float32"), tag)},
		}

		_, err := Walk(rec)
		assert.ErrorIs(t, err, diagnostic.ErrMissingSliderBounds, tag)
	}
}

func TestWalk_IgnoreProducesNothing(t *testing.T) {
	rec := schema.Record{
		Name: "Secrets",
		Fields: []schema.Field{
			field("secret", basic("string"), "ignore"),
			field("tags", schema.TypeExpr{Shape: schema.ShapeSequence}, "ignore"),
			field("x", basic("uint32"), "slider, ignore"),
			field("weird", basic("uint32"), `slider("a"); nested; ignore`),
		},
	}

	bindings, err := Walk(rec)
	require.NoError(t, err)
	assert.Empty(t, bindings)

	res := Assemble(rec.Name, bindings, Options{})
	assert.Empty(t, res.Render.Bindings)
	assert.Empty(t, res.RenderNested.Bindings)
}

func TestWalk_FailFast(t *testing.T) {
	rec := schema.Record{
		Name: "R",
		Fields: []schema.Field{
			field("ok", basic("bool"), ""),
			field("tags", schema.TypeExpr{Shape: schema.ShapeSequence}, ""),
			field("bad", basic("uint32"), `slider("x", 1)`),
		},
	}

	bindings, err := Walk(rec)
	require.Error(t, err)
	assert.Nil(t, bindings)
	assert.ErrorIs(t, err, diagnostic.ErrUnsupportedFieldShape)

	var de *diagnostic.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "tags", de.Field)
	assert.Equal(t, "R", de.Record)
}

func TestWalk_ErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name  string
		field schema.Field
		want  error
	}{
		{"literal", field("v", basic("uint8"), `slider('a', 'z')`), diagnostic.ErrUnsupportedLiteralKind},
		{"bounds", field("v", basic("uint8"), `slider(1)`), diagnostic.ErrMissingSliderBounds},
		{"sequence", field("v", schema.TypeExpr{Shape: schema.ShapeSequence}, ""), diagnostic.ErrUnsupportedFieldShape},
		{"pointer", field("v", schema.TypeExpr{Shape: schema.ShapeOther}, ""), diagnostic.ErrUnsupportedFieldShape},
		{"malformed", field("v", basic("uint8"), `slider(1, 2`), diagnostic.ErrMalformedDirective},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Walk(schema.Record{Name: "R", Fields: []schema.Field{tt.field}})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestWalk_SelfReferenceDelegates(t *testing.T) {
	rec := schema.Record{
		Name: "Node",
		Fields: []schema.Field{
			field("Value", basic("int"), ""),
			field("Next", record("Node"), ""),
		},
	}

	bindings, err := Walk(rec)
	require.NoError(t, err)
	assert.Equal(t, []string{"input(Value)", `delegate(Next,"Next")`}, strs(bindings))
}

func TestWalk_NestedForcesDelegation(t *testing.T) {
	rec := schema.Record{
		Name:   "R",
		Fields: []schema.Field{field("Color", basic("uint32"), "nested")},
	}

	bindings, err := Walk(rec)
	require.NoError(t, err)
	assert.Equal(t, binding.WidgetDelegate, bindings[0].Widget)
}

func TestWalk_SliderBoundsPassedThrough(t *testing.T) {
	rec := schema.Record{
		Name:   "R",
		Fields: []schema.Field{field("v", basic("int"), "slider(100, 1)")},
	}

	bindings, err := Walk(rec)
	require.NoError(t, err)

	want := binding.Binding{
		Field:  "v",
		Label:  "v",
		ID:     "v",
		Widget: binding.WidgetSlider,
		Min:    &directive.Literal{Kind: directive.LiteralInt, Text: "100"},
		Max:    &directive.Literal{Kind: directive.LiteralInt, Text: "1"},
	}
	if diff := cmp.Diff([]binding.Binding{want}, bindings); diff != "" {
		t.Fatalf("bindings mismatch (-want +got):\n%s", diff)
	}
}

func TestAssemble(t *testing.T) {
	bindings := []binding.Binding{{Field: "A", Label: "A", ID: "A", Widget: binding.WidgetCheckbox}}

	res := Assemble("Rec", bindings, Options{Register: true})

	assert.Equal(t, "Rec", res.Render.Record)
	assert.False(t, res.Render.Nested)
	assert.True(t, res.RenderNested.Nested)
	assert.Equal(t, res.Render.Bindings, res.RenderNested.Bindings)
	require.NotNil(t, res.Registration)
	assert.Equal(t, "Rec", res.Registration.Record)

	assert.Nil(t, Assemble("Rec", bindings, Options{}).Registration)
}

func TestCompile_Warnings(t *testing.T) {
	rec := schema.Record{
		Name: "R",
		Fields: []schema.Field{
			field("Inverted", basic("int"), "slider(10, 0)"),
			field("Fraction", basic("int32"), "slider(0, 0.5)"),
			field("WholeFloat", basic("int32"), "slider(0, 2.0)"),
			field("Negative", basic("uint8"), "slider(-1, 10)"),
			field("Title", basic("string"), "slider(0, 1)"),
			field("Clean", basic("float32"), "slider(-1, 1)"),
		},
	}

	res, err := Compile(rec, Options{})
	require.NoError(t, err)
	assert.Len(t, res.Render.Bindings, 6)
	assert.False(t, res.Diagnostics.HasErrors())

	codes := map[string]string{}
	for _, w := range res.Diagnostics.Warnings {
		codes[w.Field] = w.Code
	}

	assert.Equal(t, map[string]string{
		"Inverted": diagnostic.CodeSliderBoundsInverted,
		"Fraction": diagnostic.CodeFloatBoundOnInteger,
		"Negative": diagnostic.CodeNegativeBoundOnUint,
		"Title":    diagnostic.CodeSliderIgnored,
	}, codes, spew.Sdump(res.Diagnostics.Warnings))
}

func TestCompile_NestedOnPrimitive(t *testing.T) {
	rec := schema.Record{
		Name: "R",
		Fields: []schema.Field{
			field("Level", basic("int"), "nested"),
			field("Home", record("Address"), "nested"),
			field("Mode", record("Difficulty"), "nested"),
		},
	}

	res, err := Compile(rec, Options{})
	require.NoError(t, err)
	require.Len(t, res.Diagnostics.Warnings, 1, spew.Sdump(res.Diagnostics.Warnings))

	w := res.Diagnostics.Warnings[0]
	assert.Equal(t, diagnostic.CodeNestedOnPrimitive, w.Code)
	assert.Equal(t, "Level", w.Field)
	assert.Equal(t, "R", w.Record)
}

func TestCompile_IgnoredFieldsReported(t *testing.T) {
	rec := schema.Record{
		Name: "R",
		Fields: []schema.Field{
			field("Name", basic("string"), ""),
			field("Secret", basic("string"), "ignore"),
		},
	}

	res, err := Compile(rec, Options{})
	require.NoError(t, err)
	assert.Len(t, res.Render.Bindings, 1)
	assert.Empty(t, res.Diagnostics.Warnings)
	require.Len(t, res.Diagnostics.Infos, 1)
	assert.Equal(t, diagnostic.CodeFieldIgnored, res.Diagnostics.Infos[0].Code)
	assert.Equal(t, "Secret", res.Diagnostics.Infos[0].Field)
}

func TestCompile_Error(t *testing.T) {
	res, err := Compile(schema.Record{
		Name:   "R",
		Fields: []schema.Field{field("x", basic("uint32"), "slider")},
	}, Options{Register: true})

	assert.Nil(t, res)
	assert.ErrorIs(t, err, diagnostic.ErrMissingSliderBounds)
}
