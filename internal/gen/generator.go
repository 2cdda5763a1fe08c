package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"log/slog"
	"strconv"
	"text/template"

	"inspector-generator/internal/binding"
	"inspector-generator/internal/compile"
	"inspector-generator/internal/schema"
)

// InspectImport is the import path of the runtime package generated code calls into.
const InspectImport = "inspector-generator/inspect"

// DefaultFilename is the name of the generated file when none is configured.
const DefaultFilename = "inspector_gen.go"

// BuildTag excludes generated files from builds that set it. The CLI loads
// packages with it set.
const BuildTag = "inspectorgen"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName is the package clause of the generated file.
	PackageName string
	// OutputDir is where debug sidecars go when formatting fails.
	OutputDir string
	// Filename is the generated file name.
	Filename string
	// LabelColumn is the x offset of widgets after their field label.
	LabelColumn float32
	// Logger receives per-record progress; nil discards.
	Logger *slog.Logger
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Filename:    DefaultFilename,
		LabelColumn: 50,
	}
}

// Generator renders compiled records into Go source.
type Generator struct {
	config GeneratorConfig
	logger *slog.Logger
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	if config.Filename == "" {
		config.Filename = DefaultFilename
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Generator{config: config, logger: logger}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "inspector_gen.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// ErrNoPackage is returned when the configuration names no package.
var ErrNoPackage = errors.New("generator: package name is required")

// Generate renders one file holding the inspectors of every result, in order.
// If gofmt rejects the output, the unformatted source is returned with the error.
func (g *Generator) Generate(results []*compile.Result) (GeneratedFile, error) {
	if g.config.PackageName == "" {
		return GeneratedFile{}, ErrNoPackage
	}

	data, err := g.buildTemplateData(results)
	if err != nil {
		return GeneratedFile{}, err
	}

	var buf bytes.Buffer
	if err := inspectorTemplate.Execute(&buf, data); err != nil {
		return GeneratedFile{}, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		_ = writeDebugUnformatted(g.config.OutputDir, g.config.Filename, buf.Bytes())

		return GeneratedFile{
			Filename: g.config.Filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return GeneratedFile{Filename: g.config.Filename, Content: formatted}, nil
}

// templateData is the root object passed to inspectorTemplate.
type templateData struct {
	PackageName string
	BuildTag    string
	Imports     []string
	LabelColumn string
	Records     []recordData
	// Registered lists the records exposed through RegisterInspectors.
	Registered []string
}

type recordData struct {
	Name   string
	Fields []fieldData
}

type fieldData struct {
	ID       string
	Label    string
	Delegate bool
	// Stmt is the widget call for the field.
	Stmt string
}

func (g *Generator) buildTemplateData(results []*compile.Result) (*templateData, error) {
	data := &templateData{
		PackageName: g.config.PackageName,
		BuildTag:    BuildTag,
		LabelColumn: strconv.FormatFloat(float64(g.config.LabelColumn), 'f', -1, 32),
	}

	for _, res := range results {
		rd := recordData{Name: res.Render.Record}

		for _, b := range res.Render.Bindings {
			fd, err := fieldFor(res.Record, b)
			if err != nil {
				return nil, fmt.Errorf("generating %s.%s: %w", rd.Name, b.Field, err)
			}

			rd.Fields = append(rd.Fields, fd)
		}

		g.logger.Debug("generated inspector", "record", rd.Name, "bindings", len(rd.Fields))

		data.Records = append(data.Records, rd)

		if res.Registration != nil {
			data.Registered = append(data.Registered, res.Registration.Record)
		}
	}

	if len(data.Registered) > 0 {
		data.Imports = append(data.Imports, "errors")
	}

	data.Imports = append(data.Imports, InspectImport)

	return data, nil
}

// fieldFor renders the widget statement of one binding.
func fieldFor(rec schema.Record, b binding.Binding) (fieldData, error) {
	fd := fieldData{ID: b.ID, Label: b.Label}
	target := "&r." + b.Field

	switch b.Widget {
	case binding.WidgetInputScalar:
		fd.Stmt = fmt.Sprintf("inspect.InputScalar(ui, inspect.HiddenLabel, %s)", target)

	case binding.WidgetSlider:
		var typ schema.TypeExpr
		if f, ok := rec.Field(b.Field); ok {
			typ = f.Type
		}

		fd.Stmt = fmt.Sprintf("inspect.SliderScalar(ui, inspect.HiddenLabel, %s, %s, %s)",
			target, binding.BoundText(b.Min, typ), binding.BoundText(b.Max, typ))

	case binding.WidgetInputText:
		fd.Stmt = fmt.Sprintf("ui.InputText(inspect.HiddenLabel, %s)", target)

	case binding.WidgetCheckbox:
		fd.Stmt = fmt.Sprintf("ui.Checkbox(inspect.HiddenLabel, %s)", target)

	case binding.WidgetDelegate:
		fd.Delegate = true
		fd.Stmt = fmt.Sprintf("inspect.Delegate(ui, %s, %q)", target, b.Label)

	default:
		return fieldData{}, fmt.Errorf("unknown widget %s", b.Widget)
	}

	return fd, nil
}

var inspectorTemplate = template.Must(template.New("inspector").Parse(`// Code generated by inspector-generator. DO NOT EDIT.

//go:build !{{.BuildTag}}

package {{.PackageName}}

import (
{{range .Imports}}	"{{.}}"
{{end}})
{{range .Records}}
// RenderInspector draws one widget per inspected field of {{.Name}}.
func (r *{{.Name}}) RenderInspector(ui inspect.UI) {
	r.renderInspectorFields(ui)
}

// RenderInspectorNested draws label, then the fields of {{.Name}}.
func (r *{{.Name}}) RenderInspectorNested(ui inspect.UI, label string) {
	ui.Text(label)
	r.renderInspectorFields(ui)
}

func (r *{{.Name}}) renderInspectorFields(ui inspect.UI) {
{{- range .Fields}}
	ui.PushID({{printf "%q" .ID}})
{{- if not .Delegate}}
	inspect.FieldLabel(ui, {{printf "%q" .Label}}, {{$.LabelColumn}})
{{- end}}
	{{.Stmt}}
	ui.PopID()
{{- end}}
}
{{end}}
{{- if .Registered}}
// RegisterInspectors adds the inspectors generated in this file to reg.
func RegisterInspectors(reg *inspect.Registry) error {
	return errors.Join(
{{- range .Registered}}
		inspect.Register[{{.}}](reg),
{{- end}}
	)
}
{{end}}`))
