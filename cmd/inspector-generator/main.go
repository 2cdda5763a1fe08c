// Package main provides the CLI entrypoint for inspector-generator.
//
// inspector-generator is a Go codegen tool that:
//   - Loads a Go package (go/packages + go/types) and finds its struct records
//   - Reads `inspect:"..."` field tags and an optional YAML override file
//   - Compiles every record into widget bindings
//   - Generates RenderInspector methods that draw the record on an inspect.UI
//
// Usage:
//
//	inspector-generator gen   -pkg ./examples/basic [-types Player,Stats] [-config inspector.yaml]
//	                          [-out dir] [-file inspector_gen.go] [-register] [-label-column 50] [-v]
//	inspector-generator check -pkg ./examples/basic [-types Player] [-config inspector.yaml] [-v]
//	inspector-generator init  -pkg ./examples/basic [-types Player] [-o inspector.yaml] [-force] [-v]
//
// Generated files carry a "//go:build !inspectorgen" constraint, and packages are
// loaded with that tag set, so a stale file never stops regeneration.
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
