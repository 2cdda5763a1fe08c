package inspect

import (
	"fmt"
	"go/constant"
	"reflect"
	"sync"

	"inspector-generator/internal/binding"
	"inspector-generator/internal/compile"
	"inspector-generator/internal/diagnostic"
	"inspector-generator/internal/schema"
)

// Binding is one compiled field of an Inspector.
type Binding = binding.Binding

var renderableType = reflect.TypeFor[Renderable]()

// Inspector renders a struct type through reflection, using the same bindings
// the code generator would emit for it.
type Inspector struct {
	typ      reflect.Type
	bindings []Binding
	steps    []step
}

// step renders one binding against the field at index.
type step struct {
	index  int
	id     string
	label  string
	render func(ui UI, field reflect.Value)
}

var cache sync.Map // reflect.Type -> *Inspector

// For compiles the inspector for struct type T.
func For[T any]() (*Inspector, error) {
	return Compile(reflect.TypeFor[T]())
}

// Compile builds the inspector for struct type t (or a pointer to one).
// Results are cached per type.
func Compile(t reflect.Type) (*Inspector, error) {
	if t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if cached, ok := cache.Load(t); ok {
		return cached.(*Inspector), nil
	}

	rec, err := schema.FromType(t)
	if err != nil {
		return nil, err
	}

	res, err := compile.Compile(rec, compile.Options{})
	if err != nil {
		return nil, err
	}

	in := &Inspector{typ: t, bindings: res.Render.Bindings}

	for _, b := range res.Render.Bindings {
		f, _ := rec.Field(b.Field)
		ft := t.Field(f.Index).Type

		render, err := stepFor(b, f.Type, ft)
		if err != nil {
			return nil, diagnostic.At(err, rec.Name, b.Field)
		}

		in.steps = append(in.steps, step{index: f.Index, id: b.ID, label: b.Label, render: render})
	}

	actual, _ := cache.LoadOrStore(t, in)

	return actual.(*Inspector), nil
}

// Type returns the struct type the inspector renders.
func (in *Inspector) Type() reflect.Type {
	return in.typ
}

// Bindings returns the compiled bindings in field order.
func (in *Inspector) Bindings() []Binding {
	return append([]Binding(nil), in.bindings...)
}

// Render draws one widget per field of the struct ptr points to.
// It panics if ptr is not a non-nil pointer to the inspector's type.
func (in *Inspector) Render(ui UI, ptr any) {
	in.renderValue(ui, in.elem(ptr))
}

// RenderNested draws label as a heading, then the fields.
func (in *Inspector) RenderNested(ui UI, ptr any, label string) {
	ui.Text(label)
	in.renderValue(ui, in.elem(ptr))
}

func (in *Inspector) elem(ptr any) reflect.Value {
	rv := reflect.ValueOf(ptr)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Type().Elem() != in.typ {
		panic(fmt.Sprintf("inspect: %s inspector cannot render %T", in.typ, ptr))
	}

	return rv.Elem()
}

func (in *Inspector) renderValue(ui UI, v reflect.Value) {
	for _, s := range in.steps {
		ui.PushID(s.id)
		s.render(ui, v.Field(s.index))
		ui.PopID()
	}
}

// stepFor builds the reflective render function for one binding.
func stepFor(b Binding, typ schema.TypeExpr, ft reflect.Type) (func(UI, reflect.Value), error) {
	label := b.Label

	switch b.Widget {
	case binding.WidgetInputScalar:
		return func(ui UI, fv reflect.Value) {
			FieldLabel(ui, label, DefaultLabelColumn)
			inputReflect(ui, fv)
		}, nil

	case binding.WidgetSlider:
		return sliderStep(label, b, typ, ft), nil

	case binding.WidgetInputText:
		return func(ui UI, fv reflect.Value) {
			FieldLabel(ui, label, DefaultLabelColumn)

			v := fv.String()
			if ui.InputText(HiddenLabel, &v) {
				fv.SetString(v)
			}
		}, nil

	case binding.WidgetCheckbox:
		return func(ui UI, fv reflect.Value) {
			FieldLabel(ui, label, DefaultLabelColumn)

			v := fv.Bool()
			if ui.Checkbox(HiddenLabel, &v) {
				fv.SetBool(v)
			}
		}, nil

	case binding.WidgetDelegate:
		return delegateStep(label, ft)

	default:
		return nil, fmt.Errorf("unknown widget %s", b.Widget)
	}
}

func inputReflect(ui UI, fv reflect.Value) {
	switch classOf(fv.Kind()) {
	case classFloat:
		v := fv.Float()
		if ui.InputFloat(HiddenLabel, &v) {
			fv.SetFloat(clampFloat(v, fv.Type().Bits()))
		}
	case classUint:
		v := fv.Uint()
		if ui.InputUint(HiddenLabel, &v) {
			fv.SetUint(clampUint(v, fv.Type().Bits()))
		}
	default:
		v := fv.Int()
		if ui.InputInt(HiddenLabel, &v) {
			fv.SetInt(clampInt(v, fv.Type().Bits()))
		}
	}
}

func sliderStep(label string, b Binding, typ schema.TypeExpr, ft reflect.Type) func(UI, reflect.Value) {
	lo, _ := binding.Bound(b.Min, typ)
	hi, _ := binding.Bound(b.Max, typ)

	switch classOf(ft.Kind()) {
	case classFloat:
		minVal, _ := constant.Float64Val(lo)
		maxVal, _ := constant.Float64Val(hi)

		return func(ui UI, fv reflect.Value) {
			FieldLabel(ui, label, DefaultLabelColumn)

			v := fv.Float()
			if ui.SliderFloat(HiddenLabel, &v, minVal, maxVal) {
				fv.SetFloat(clampFloat(v, fv.Type().Bits()))
			}
		}

	case classUint:
		minVal, _ := constant.Uint64Val(lo)
		maxVal, _ := constant.Uint64Val(hi)

		return func(ui UI, fv reflect.Value) {
			FieldLabel(ui, label, DefaultLabelColumn)

			v := fv.Uint()
			if ui.SliderUint(HiddenLabel, &v, minVal, maxVal) {
				fv.SetUint(clampUint(v, fv.Type().Bits()))
			}
		}

	default:
		minVal, _ := constant.Int64Val(lo)
		maxVal, _ := constant.Int64Val(hi)

		return func(ui UI, fv reflect.Value) {
			FieldLabel(ui, label, DefaultLabelColumn)

			v := fv.Int()
			if ui.SliderInt(HiddenLabel, &v, minVal, maxVal) {
				fv.SetInt(clampInt(v, fv.Type().Bits()))
			}
		}
	}
}

// delegateStep renders a composite field through its Renderable implementation,
// falling back to a reflective inspector for plain structs.
func delegateStep(label string, ft reflect.Type) (func(UI, reflect.Value), error) {
	if reflect.PointerTo(ft).Implements(renderableType) {
		return func(ui UI, fv reflect.Value) {
			Delegate(ui, fv.Addr().Interface().(Renderable), label)
		}, nil
	}

	if ft.Kind() != reflect.Struct {
		return nil, diagnostic.Errorf(diagnostic.CodeUnsupportedFieldShape,
			"%s does not implement inspect.Renderable", ft)
	}

	nested, err := Compile(ft)
	if err != nil {
		return nil, err
	}

	return func(ui UI, fv reflect.Value) {
		ui.Text(label)
		nested.renderValue(ui, fv)
	}, nil
}
