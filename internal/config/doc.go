// Package config loads the optional YAML file that selects which records get an
// inspector and overrides per-field directives without touching struct tags.
//
// Example:
//
//	version: "1"
//	output: inspector_gen.go
//	label_column: 50
//	register: true
//	types:
//	  - name: Player
//	    ignore: [Secret]
//	    fields:
//	      Health: "slider(0, 100)"
//
// A fields entry replaces the field's tag; an ignore entry turns the field off.
// Names that match no record or field are reported as errors by Apply.
package config
