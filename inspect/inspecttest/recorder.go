// Package inspecttest provides a recording inspect.UI for tests.
package inspecttest

import (
	"fmt"
	"reflect"
	"strings"

	"inspector-generator/inspect"
)

// Op names a recorded UI call.
type Op string

const (
	OpPushID      Op = "push"
	OpPopID       Op = "pop"
	OpText        Op = "text"
	OpSameLine    Op = "sameline"
	OpInputInt    Op = "input_int"
	OpInputUint   Op = "input_uint"
	OpInputFloat  Op = "input_float"
	OpSliderInt   Op = "slider_int"
	OpSliderUint  Op = "slider_uint"
	OpSliderFloat Op = "slider_float"
	OpInputText   Op = "input_text"
	OpCheckbox    Op = "checkbox"
)

// Call is one recorded UI call.
type Call struct {
	Op Op
	// Scope is the ID stack at the time of the call, joined with "/".
	Scope string
	// Label is the ID, text or widget label passed in.
	Label string
	// Value is the widget value before any scripted edit.
	Value any
	// Min and Max are set for sliders.
	Min, Max any
	// Changed reports whether a scripted edit was applied.
	Changed bool
}

// IsWidget reports whether the call drew an editable widget.
func (c Call) IsWidget() bool {
	switch c.Op {
	case OpPushID, OpPopID, OpText, OpSameLine:
		return false
	default:
		return true
	}
}

// String renders the call compactly, e.g. "slider_uint Age=30 [0..120]".
func (c Call) String() string {
	switch {
	case c.Min != nil || c.Max != nil:
		return fmt.Sprintf("%s %s=%v [%v..%v]", c.Op, c.Scope, c.Value, c.Min, c.Max)
	case c.IsWidget():
		return fmt.Sprintf("%s %s=%v", c.Op, c.Scope, c.Value)
	default:
		return fmt.Sprintf("%s %s", c.Op, c.Label)
	}
}

// Recorder is an inspect.UI that records every call and applies scripted edits.
type Recorder struct {
	Calls []Call

	stack    []string
	maxDepth int
	edits    map[string]any
}

var _ inspect.UI = (*Recorder)(nil)

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{edits: make(map[string]any)}
}

// Edit scripts the next widget drawn in scope to report value as the user's
// edit. Each edit applies once. Numeric values are converted to the widget type.
func (r *Recorder) Edit(scope string, value any) *Recorder {
	r.edits[scope] = value
	return r
}

// Pending returns the scopes of edits that no widget consumed.
func (r *Recorder) Pending() []string {
	var out []string
	for scope := range r.edits {
		out = append(out, scope)
	}

	return out
}

// Widgets returns the recorded widget calls.
func (r *Recorder) Widgets() []Call {
	var out []Call

	for _, c := range r.Calls {
		if c.IsWidget() {
			out = append(out, c)
		}
	}

	return out
}

// WidgetStrings returns Widgets rendered with Call.String.
func (r *Recorder) WidgetStrings() []string {
	var out []string
	for _, c := range r.Widgets() {
		out = append(out, c.String())
	}

	return out
}

// Texts returns the recorded static text, in order.
func (r *Recorder) Texts() []string {
	var out []string

	for _, c := range r.Calls {
		if c.Op == OpText {
			out = append(out, c.Label)
		}
	}

	return out
}

// Depth returns the current ID stack depth; 0 after a balanced frame.
func (r *Recorder) Depth() int {
	return len(r.stack)
}

// MaxDepth returns the deepest ID stack seen.
func (r *Recorder) MaxDepth() int {
	return r.maxDepth
}

// Reset clears the recorded calls, keeping pending edits.
func (r *Recorder) Reset() {
	r.Calls = nil
	r.stack = nil
	r.maxDepth = 0
}

func (r *Recorder) scope() string {
	return strings.Join(r.stack, "/")
}

func (r *Recorder) record(c Call) {
	c.Scope = r.scope()
	r.Calls = append(r.Calls, c)
}

// PushID implements inspect.UI.
func (r *Recorder) PushID(id string) {
	r.record(Call{Op: OpPushID, Label: id})
	r.stack = append(r.stack, id)
	r.maxDepth = max(r.maxDepth, len(r.stack))
}

// PopID implements inspect.UI.
func (r *Recorder) PopID() {
	if len(r.stack) > 0 {
		r.stack = r.stack[:len(r.stack)-1]
	}

	r.record(Call{Op: OpPopID})
}

// Text implements inspect.UI.
func (r *Recorder) Text(text string) {
	r.record(Call{Op: OpText, Label: text})
}

// SameLine implements inspect.UI.
func (r *Recorder) SameLine(offsetX float32) {
	r.record(Call{Op: OpSameLine, Value: offsetX})
}

// InputInt implements inspect.UI.
func (r *Recorder) InputInt(label string, value *int64) bool {
	return widget(r, OpInputInt, label, value, nil, nil)
}

// InputUint implements inspect.UI.
func (r *Recorder) InputUint(label string, value *uint64) bool {
	return widget(r, OpInputUint, label, value, nil, nil)
}

// InputFloat implements inspect.UI.
func (r *Recorder) InputFloat(label string, value *float64) bool {
	return widget(r, OpInputFloat, label, value, nil, nil)
}

// SliderInt implements inspect.UI.
func (r *Recorder) SliderInt(label string, value *int64, minVal, maxVal int64) bool {
	return widget(r, OpSliderInt, label, value, minVal, maxVal)
}

// SliderUint implements inspect.UI.
func (r *Recorder) SliderUint(label string, value *uint64, minVal, maxVal uint64) bool {
	return widget(r, OpSliderUint, label, value, minVal, maxVal)
}

// SliderFloat implements inspect.UI.
func (r *Recorder) SliderFloat(label string, value *float64, minVal, maxVal float64) bool {
	return widget(r, OpSliderFloat, label, value, minVal, maxVal)
}

// InputText implements inspect.UI.
func (r *Recorder) InputText(label string, value *string) bool {
	return widget(r, OpInputText, label, value, nil, nil)
}

// Checkbox implements inspect.UI.
func (r *Recorder) Checkbox(label string, value *bool) bool {
	return widget(r, OpCheckbox, label, value, nil, nil)
}

func widget[T any](r *Recorder, op Op, label string, value *T, minVal, maxVal any) bool {
	c := Call{Op: op, Label: label, Value: *value, Min: minVal, Max: maxVal}

	scope := r.scope()
	if edit, ok := r.edits[scope]; ok {
		delete(r.edits, scope)

		*value = convert[T](edit)
		c.Changed = true
	}

	r.record(c)

	return c.Changed
}

func convert[T any](v any) T {
	if t, ok := v.(T); ok {
		return t
	}

	return reflect.ValueOf(v).Convert(reflect.TypeFor[T]()).Interface().(T)
}
