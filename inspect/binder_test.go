package inspect_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inspector-generator/inspect"
	"inspector-generator/inspect/inspecttest"
	"inspector-generator/internal/diagnostic"
)

type profile struct {
	Bio string
}

type user struct {
	Age     uint32 `inspect:"slider(0, 120)"`
	Name    string
	Active  bool
	Profile profile
}

type scored struct {
	Points  int16   `inspect:"slider(-10, 10.9)"`
	Ratio   float32 `inspect:"slider(0, 1)"`
	Count   uint8   `inspect:"slider(-5, 5)"`
	Total   int64
	Tags    []string `inspect:"ignore"`
	Badge   badge
	private int
}

type nestedScalar struct {
	Color uint32 `inspect:"nested"`
}

type withSlice struct {
	Tags []string
}

type withPointer struct {
	Next *withPointer
}

type narrow struct {
	Small uint8
	Tiny  int8
	Ratio float32
	Level int16 `inspect:"slider(0, 10)"`
}

type badSlider struct {
	X uint32 `inspect:"slider"`
}

func TestCompile_UserScenario(t *testing.T) {
	in, err := inspect.For[user]()
	require.NoError(t, err)

	got := make([]string, 0)
	for _, b := range in.Bindings() {
		got = append(got, b.String())
	}

	want := []string{
		"slider(Age,0,120)",
		"text(Name)",
		"checkbox(Active)",
		`delegate(Profile,"Profile")`,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("bindings mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, reflect.TypeFor[user](), in.Type())
}

func TestInspector_Render(t *testing.T) {
	in, err := inspect.For[user]()
	require.NoError(t, err)

	u := user{Age: 30, Name: "bob", Profile: profile{Bio: "hi"}}
	rec := inspecttest.NewRecorder()
	in.Render(rec, &u)

	assert.Equal(t, []string{
		"slider_uint Age=30 [0..120]",
		"input_text Name=bob",
		"checkbox Active=false",
		"input_text Profile/Bio=hi",
	}, rec.WidgetStrings(), spew.Sdump(rec.Calls))

	assert.Equal(t, []string{"Age", "Name", "Active", "Profile", "Bio"}, rec.Texts())
	assert.Zero(t, rec.Depth())
}

func TestInspector_RenderNested(t *testing.T) {
	in, err := inspect.Compile(reflect.TypeFor[*user]())
	require.NoError(t, err)

	rec := inspecttest.NewRecorder()
	in.RenderNested(rec, &user{}, "Owner")

	assert.Equal(t, "Owner", rec.Texts()[0])
	assert.Len(t, rec.Widgets(), 4)
}

func TestInspector_WriteBack(t *testing.T) {
	in, err := inspect.For[user]()
	require.NoError(t, err)

	u := user{Age: 30}
	rec := inspecttest.NewRecorder().
		Edit("Age", 64).
		Edit("Name", "carol").
		Edit("Active", true).
		Edit("Profile/Bio", "edited")

	in.Render(rec, &u)

	assert.Empty(t, rec.Pending())
	assert.Equal(t, user{Age: 64, Name: "carol", Active: true, Profile: profile{Bio: "edited"}}, u)
}

func TestInspector_ClampsEditsToFieldRange(t *testing.T) {
	in, err := inspect.For[narrow]()
	require.NoError(t, err)

	var n narrow
	rec := inspecttest.NewRecorder().
		Edit("Small", 300).
		Edit("Tiny", -200).
		Edit("Ratio", 1e40).
		Edit("Level", 40000)

	in.Render(rec, &n)

	assert.Empty(t, rec.Pending())
	assert.Equal(t, narrow{Small: 255, Tiny: -128, Ratio: math.MaxFloat32, Level: 32767}, n)
}

func TestInspector_BoundsAndDelegation(t *testing.T) {
	in, err := inspect.For[scored]()
	require.NoError(t, err)

	s := scored{Points: 3, Ratio: 0.5, Count: 2, Total: 9, Badge: badge{Title: "b"}}
	rec := inspecttest.NewRecorder()
	in.Render(rec, &s)

	assert.Equal(t, []string{
		"slider_int Points=3 [-10..10]",
		"slider_float Ratio=0.5 [0..1]",
		"slider_uint Count=2 [0..5]",
		"input_int Total=9",
		"input_text Badge/Title=b",
	}, rec.WidgetStrings())
}

func TestInspector_RenderPanicsOnWrongType(t *testing.T) {
	in, err := inspect.For[user]()
	require.NoError(t, err)

	rec := inspecttest.NewRecorder()

	assert.Panics(t, func() { in.Render(rec, user{}) })
	assert.Panics(t, func() { in.Render(rec, &profile{}) })
	assert.Panics(t, func() { in.Render(rec, (*user)(nil)) })
}

func TestCompile_Errors(t *testing.T) {
	tests := []struct {
		name string
		typ  reflect.Type
		want error
	}{
		{"slice field", reflect.TypeFor[withSlice](), diagnostic.ErrUnsupportedFieldShape},
		{"pointer field", reflect.TypeFor[withPointer](), diagnostic.ErrUnsupportedFieldShape},
		{"missing bounds", reflect.TypeFor[badSlider](), diagnostic.ErrMissingSliderBounds},
		{"nested scalar", reflect.TypeFor[nestedScalar](), diagnostic.ErrUnsupportedFieldShape},
		{"not a struct", reflect.TypeFor[int](), diagnostic.ErrUnknownRecordShape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := inspect.Compile(tt.typ)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCompile_Cached(t *testing.T) {
	a, err := inspect.For[user]()
	require.NoError(t, err)

	b, err := inspect.Compile(reflect.TypeFor[*user]())
	require.NoError(t, err)

	assert.Same(t, a, b)
}
