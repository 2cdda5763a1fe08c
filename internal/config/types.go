package config

// CurrentVersion is the only supported file version.
const CurrentVersion = "1"

// File is the root of an inspector configuration file.
type File struct {
	// Version is the schema version; defaults to CurrentVersion.
	Version string `yaml:"version"`
	// Output is the generated file name, relative to the package directory.
	Output string `yaml:"output,omitempty"`
	// LabelColumn is the x offset of widgets; nil keeps the generator default.
	LabelColumn *float32 `yaml:"label_column,omitempty"`
	// Register emits RegisterInspectors for the selected records.
	Register bool `yaml:"register,omitempty"`
	// Types selects records and overrides their fields. Empty selects every record.
	Types []TypeOverride `yaml:"types,omitempty"`
}

// TypeOverride configures one record.
type TypeOverride struct {
	Name string `yaml:"name"`
	// Ignore lists fields that get no widget.
	Ignore []string `yaml:"ignore,omitempty"`
	// Fields maps a field name to the directive text that replaces its tag.
	Fields map[string]string `yaml:"fields,omitempty"`
}

// TypeNames returns the selected record names in file order.
func (f *File) TypeNames() []string {
	names := make([]string, 0, len(f.Types))
	for _, t := range f.Types {
		names = append(names, t.Name)
	}

	return names
}

// Override returns the override for record name, if any.
func (f *File) Override(name string) (*TypeOverride, bool) {
	for i := range f.Types {
		if f.Types[i].Name == name {
			return &f.Types[i], true
		}
	}

	return nil, false
}
