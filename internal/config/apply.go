package config

import (
	"fmt"
	"maps"
	"slices"

	"inspector-generator/internal/diagnostic"
	"inspector-generator/internal/directive"
	"inspector-generator/internal/schema"
)

// Config error codes.
const (
	CodeUnsupportedVersion = "UnsupportedVersion"
	CodeDuplicateType      = "DuplicateType"
	CodeEmptyTypeName      = "EmptyTypeName"

	CodeFieldOverridden = "FieldOverridden"
)

// Validate checks the file on its own, before any record is known.
func Validate(f *File) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	if f.Version != CurrentVersion {
		diags.AddError(CodeUnsupportedVersion,
			fmt.Sprintf("unsupported config version %q, want %q", f.Version, CurrentVersion), "", "")
	}

	seen := make(map[string]bool, len(f.Types))

	for _, t := range f.Types {
		if t.Name == "" {
			diags.AddError(CodeEmptyTypeName, "type entry without a name", "", "")
			continue
		}

		if seen[t.Name] {
			diags.AddError(CodeDuplicateType, fmt.Sprintf("type %s configured twice", t.Name), t.Name, "")
		}

		seen[t.Name] = true
	}

	return diags
}

// Apply returns copies of records with the file's overrides applied. Records the
// file does not mention pass through unchanged. Every configured type and field
// must exist in records.
func Apply(f *File, records []schema.Record) ([]schema.Record, diagnostic.Diagnostics) {
	diags := Validate(f)

	out := make([]schema.Record, 0, len(records))
	for _, rec := range records {
		rec.Fields = slices.Clone(rec.Fields)
		out = append(out, rec)
	}

	for _, t := range f.Types {
		idx := slices.IndexFunc(out, func(r schema.Record) bool { return r.Name == t.Name })
		if idx < 0 {
			if t.Name != "" {
				diags.AddError(diagnostic.CodeUnknownType,
					fmt.Sprintf("type %s is not a struct in the loaded package", t.Name), t.Name, "")
			}

			continue
		}

		rec := &out[idx]

		for name, tag := range sortedFields(t.Fields) {
			fld, ok := rec.Field(name)
			if !ok {
				diags.AddError(diagnostic.CodeUnknownField,
					fmt.Sprintf("%s has no exported field %s", rec.Name, name), rec.Name, name)

				continue
			}

			diags.AddInfo(CodeFieldOverridden,
				fmt.Sprintf("tag %q replaced by %q", fld.Tag, tag), rec.Name, name)

			fld.Tag = tag
		}

		for _, name := range t.Ignore {
			fld, ok := rec.Field(name)
			if !ok {
				diags.AddError(diagnostic.CodeUnknownField,
					fmt.Sprintf("%s has no exported field %s", rec.Name, name), rec.Name, name)

				continue
			}

			fld.Tag = directive.KindIgnore.String()
		}
	}

	return out, diags
}

// sortedFields yields the field overrides in name order so diagnostics are stable.
func sortedFields(fields map[string]string) func(yield func(string, string) bool) {
	return func(yield func(string, string) bool) {
		for _, name := range slices.Sorted(maps.Keys(fields)) {
			if !yield(name, fields[name]) {
				return
			}
		}
	}
}
