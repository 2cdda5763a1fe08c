// Package analyze provides package loading and record extraction.
//
// It uses golang.org/x/tools/go/packages with AST and go/types
// to turn the struct types of a package into schema records.
//
// Key types:
//   - TypeID: package import path + type name
//   - Graph: the records and non-record type names of the loaded packages
//   - PackageInfo: import path, name and directory of a loaded package
package analyze
