package inspect

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"
)

var (
	// ErrAlreadyRegistered is returned when a type is registered twice.
	ErrAlreadyRegistered = errors.New("inspector already registered")
	// ErrNotRegistered is returned when rendering a type with no inspector.
	ErrNotRegistered = errors.New("no inspector registered")
)

// RenderFunc renders the record pointed to by v. When nested is set, label is
// drawn as a heading before the fields; otherwise label is unused.
type RenderFunc func(ui UI, v any, nested bool, label string)

// Registry maps record types to their inspectors. It is created by the host and
// passed to whoever registers or renders. The zero value is an empty registry.
// Registrations may happen concurrently and in any order.
type Registry struct {
	mu      sync.RWMutex
	entries map[reflect.Type]RenderFunc
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[reflect.Type]RenderFunc)}
}

// Add registers fn for record type t.
func (r *Registry) Add(t reflect.Type, fn RenderFunc) error {
	if t == nil || fn == nil {
		return errors.New("registry: nil type or render func")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[reflect.Type]RenderFunc)
	}

	if _, ok := r.entries[t]; ok {
		return fmt.Errorf("%s: %w", t, ErrAlreadyRegistered)
	}

	r.entries[t] = fn

	return nil
}

// Register registers the generated inspector of T.
func Register[T any, PT interface {
	*T
	Renderable
}](r *Registry) error {
	return r.Add(reflect.TypeFor[T](), func(ui UI, v any, nested bool, label string) {
		rec := PT(v.(*T))
		if !nested {
			rec.RenderInspector(ui)
			return
		}

		rec.RenderInspectorNested(ui, label)
	})
}

// RegisterReflect compiles T with reflection and registers the result.
func RegisterReflect[T any](r *Registry) error {
	in, err := For[T]()
	if err != nil {
		return err
	}

	return r.Add(in.Type(), func(ui UI, v any, nested bool, label string) {
		if !nested {
			in.Render(ui, v)
			return
		}

		in.RenderNested(ui, v, label)
	})
}

// Lookup returns the inspector registered for t.
func (r *Registry) Lookup(t reflect.Type) (RenderFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fn, ok := r.entries[t]

	return fn, ok
}

// Render draws the inspector for the record v points to.
func (r *Registry) Render(ui UI, v any) error {
	return r.render(ui, v, false, "")
}

// RenderNested draws label as a heading, then the inspector for the record v
// points to. An empty label still produces the heading.
func (r *Registry) RenderNested(ui UI, v any, label string) error {
	return r.render(ui, v, true, label)
}

func (r *Registry) render(ui UI, v any, nested bool, label string) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("registry: render needs a non-nil pointer, got %T", v)
	}

	fn, ok := r.Lookup(rv.Type().Elem())
	if !ok {
		return fmt.Errorf("%s: %w", rv.Type().Elem(), ErrNotRegistered)
	}

	fn(ui, v, nested, label)

	return nil
}

// Types returns the registered types sorted by name.
func (r *Registry) Types() []reflect.Type {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]reflect.Type, 0, len(r.entries))
	for t := range r.entries {
		out = append(out, t)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })

	return out
}
