// Package gen provides deterministic Go code generation for record inspectors.
//
// Generation approach uses text/template + go/format, producing one file per
// package that holds, for every compiled record:
//   - RenderInspector, the plain render procedure
//   - RenderInspectorNested, which draws the caller's label first
//   - renderInspectorFields, the shared field bindings
//
// and optionally a RegisterInspectors hook for an inspect.Registry.
//
// Binding patterns:
//   - Scalar input:  inspect.InputScalar(ui, inspect.HiddenLabel, &r.Field)
//   - Range slider:  inspect.SliderScalar(ui, inspect.HiddenLabel, &r.Field, min, max)
//   - Text input:    ui.InputText(inspect.HiddenLabel, &r.Field)
//   - Checkbox:      ui.Checkbox(inspect.HiddenLabel, &r.Field)
//   - Delegation:    inspect.Delegate(ui, &r.Field, "Field")
package gen
