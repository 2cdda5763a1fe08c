package inspect

// HiddenLabel is the widget label used next to a field label. The "##" prefix
// hides it in ImGui-style backends while still contributing to the widget ID.
const HiddenLabel = "##hidden"

// DefaultLabelColumn is the x offset where widgets start after a field label.
const DefaultLabelColumn float32 = 50

// UI is the immediate-mode widget surface inspectors draw on.
//
// Every widget takes a label and a pointer to the backing value and reports
// whether the user changed the value this frame.
type UI interface {
	// PushID opens a widget ID scope; PopID closes the innermost one.
	PushID(id string)
	PopID()

	// Text draws static text.
	Text(text string)
	// SameLine keeps the cursor on the current line at offsetX.
	SameLine(offsetX float32)

	InputInt(label string, value *int64) bool
	InputUint(label string, value *uint64) bool
	InputFloat(label string, value *float64) bool

	SliderInt(label string, value *int64, minVal, maxVal int64) bool
	SliderUint(label string, value *uint64, minVal, maxVal uint64) bool
	SliderFloat(label string, value *float64, minVal, maxVal float64) bool

	InputText(label string, value *string) bool
	Checkbox(label string, value *bool) bool
}

// FieldLabel draws a field name and moves the cursor to column for its widget.
func FieldLabel(ui UI, name string, column float32) {
	ui.Text(name)
	ui.SameLine(column)
}
