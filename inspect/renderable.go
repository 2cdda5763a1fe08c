package inspect

// Renderable is implemented by every record that has an inspector.
type Renderable interface {
	// RenderInspector draws one widget per field.
	RenderInspector(ui UI)
	// RenderInspectorNested draws label as a heading, then the fields.
	RenderInspectorNested(ui UI, label string)
}

// Delegate renders a composite field through its own nested inspector.
func Delegate(ui UI, field Renderable, label string) {
	field.RenderInspectorNested(ui, label)
}
