package analyze

import (
	"fmt"
	"go/token"
	"sort"

	"inspector-generator/internal/diagnostic"
	"inspector-generator/internal/schema"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "inspector-generator/examples/basic"
	Name    string // e.g., "Player"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Graph holds the records found in the loaded packages.
type Graph struct {
	// Records maps struct type names to their records.
	Records map[TypeID]*schema.Record
	// Others maps named non-struct types to a description of what they are.
	Others map[TypeID]string
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		Records:  make(map[TypeID]*schema.Record),
		Others:   make(map[TypeID]string),
		Packages: make(map[string]*PackageInfo),
	}
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path    string   // Import path
	Name    string   // Package name
	Dir     string   // Directory holding the package's Go files
	Records []TypeID // Struct types defined in this package, sorted by name
}

// Record returns the record for pkgPath.name.
// A named type that is not a plain struct fails with UnknownRecordShape.
func (g *Graph) Record(pkgPath, name string) (schema.Record, error) {
	id := TypeID{PkgPath: pkgPath, Name: name}

	if rec, ok := g.Records[id]; ok {
		return *rec, nil
	}

	if what, ok := g.Others[id]; ok {
		return schema.Record{}, diagnostic.At(
			diagnostic.Errorf(diagnostic.CodeUnknownRecordShape, "%s is %s, not a struct", id, what),
			name, "")
	}

	return schema.Record{}, fmt.Errorf("type %s not found", id)
}

// ExportedRecords returns the exported struct records of a package, sorted by name.
func (g *Graph) ExportedRecords(pkgPath string) []schema.Record {
	pkg, ok := g.Packages[pkgPath]
	if !ok {
		return nil
	}

	var out []schema.Record

	for _, id := range pkg.Records {
		rec := g.Records[id]
		if rec == nil || !token.IsExported(rec.Name) {
			continue
		}

		out = append(out, *rec)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

