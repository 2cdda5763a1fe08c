// Package inspect is the runtime side of inspector-generator.
//
// Records get an editable inspector panel by implementing [Renderable], either
// through generated code:
//
//	//go:generate go run inspector-generator/cmd/inspector-generator gen -pkg . -types Player
//
//	type Player struct {
//		Name   string
//		Age    uint32 `inspect:"slider(0, 120)"`
//		Secret string `inspect:"ignore"`
//		Home   Address
//	}
//
// or at runtime through reflection with [Compile].
//
// Widgets are drawn through the [UI] interface, which an immediate-mode GUI
// backend implements. Each field is drawn inside its own ID scope so fields with
// equal labels do not share widget state. Composite fields delegate to the
// nested record's RenderInspectorNested, which draws the field name as a heading.
//
// Rendering a record that contains itself (through a type implementing
// Renderable by hand) recurses without bound; guarding against that is up to the
// host.
package inspect
