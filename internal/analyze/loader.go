package analyze

import (
	"fmt"
	"go/types"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"

	"inspector-generator/internal/common"
	"inspector-generator/internal/schema"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and extracts struct records.
type Analyzer struct {
	graph  *Graph
	logger *slog.Logger
	dir    string
	tags   []string
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithDir sets the working directory patterns are resolved against.
func WithDir(dir string) Option {
	return func(a *Analyzer) {
		a.dir = dir
	}
}

// WithBuildTags sets extra build tags for loading.
func WithBuildTags(tags ...string) Option {
	return func(a *Analyzer) {
		a.tags = append(a.tags, tags...)
	}
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		graph:  NewGraph(),
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// LoadPackages loads the specified packages and extracts their records.
// Patterns are standard Go package patterns (e.g., "./examples/basic").
func (a *Analyzer) LoadPackages(patterns ...string) (*Graph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.dir,
	}

	if len(a.tags) > 0 {
		cfg.BuildFlags = []string{"-tags=" + strings.Join(a.tags, ",")}
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	for _, pkg := range pkgs {
		a.processPackage(pkg)
	}

	return a.graph, nil
}

// Graph returns the current graph.
func (a *Analyzer) Graph() *Graph {
	return a.graph
}

// processPackage extracts the named types of a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) {
	pkgInfo := &PackageInfo{
		Path: pkg.PkgPath,
		Name: common.FirstNonEmpty(pkg.Name, common.PkgAlias(pkg.PkgPath)),
	}

	if file, ok := common.First(pkg.GoFiles); ok {
		pkgInfo.Dir = filepath.Dir(file)
	}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		// Only process type names (not variables, constants, functions)
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || typeName.IsAlias() {
			continue
		}

		id := TypeID{PkgPath: pkg.PkgPath, Name: name}

		named, ok := typeName.Type().(*types.Named)
		if !ok {
			continue
		}

		if named.TypeParams().Len() > 0 {
			a.graph.Others[id] = "a generic type"
			a.logger.Debug("skipping generic type", "type", id)

			continue
		}

		st, ok := named.Underlying().(*types.Struct)
		if !ok {
			a.graph.Others[id] = describe(named.Underlying())
			continue
		}

		a.graph.Records[id] = a.buildRecord(id, st)
		pkgInfo.Records = append(pkgInfo.Records, id)
	}

	sort.Slice(pkgInfo.Records, func(i, j int) bool {
		return pkgInfo.Records[i].Name < pkgInfo.Records[j].Name
	})

	a.graph.Packages[pkg.PkgPath] = pkgInfo
	a.logger.Debug("loaded package", "path", pkg.PkgPath, "records", len(pkgInfo.Records))
}

// buildRecord extracts the exported fields of a struct in declaration order.
func (a *Analyzer) buildRecord(id TypeID, st *types.Struct) *schema.Record {
	rec := &schema.Record{Name: id.Name, PkgPath: id.PkgPath}

	for i := range st.NumFields() {
		field := st.Field(i)

		// Unexported fields cannot be written back by the runtime binder either.
		if !field.Exported() {
			continue
		}

		rec.Fields = append(rec.Fields, schema.Field{
			Name:  field.Name(),
			Type:  TypeExprOf(field.Type()),
			Tag:   schema.TagValue(st.Tag(i)),
			Index: i,
		})
	}

	return rec
}

// TypeExprOf describes a go/types type the way the classifier expects.
func TypeExprOf(t types.Type) schema.TypeExpr {
	t = types.Unalias(t)

	switch tt := t.(type) {
	case *types.Basic:
		info := tt.Info()

		return schema.TypeExpr{
			Name:        tt.Name(),
			Shape:       schema.ShapeNamed,
			Predeclared: true,
			Integer:     info&types.IsInteger != 0,
			Unsigned:    info&types.IsUnsigned != 0,
		}

	case *types.Named:
		obj := tt.Obj()

		switch tt.Underlying().(type) {
		case *types.Struct, *types.Basic:
			return schema.TypeExpr{Name: obj.Name(), Shape: schema.ShapeNamed, Predeclared: obj.Pkg() == nil}
		case *types.Slice, *types.Array:
			return schema.TypeExpr{Name: obj.Name(), Shape: schema.ShapeSequence}
		default:
			return schema.TypeExpr{Name: obj.Name(), Shape: schema.ShapeOther}
		}

	case *types.Slice, *types.Array:
		return schema.TypeExpr{Shape: schema.ShapeSequence}

	default:
		return schema.TypeExpr{Shape: schema.ShapeOther}
	}
}

func describe(t types.Type) string {
	switch t.(type) {
	case *types.Basic:
		return "a basic type"
	case *types.Interface:
		return "an interface"
	case *types.Signature:
		return "a func type"
	case *types.Slice, *types.Array:
		return "a sequence type"
	case *types.Map:
		return "a map type"
	case *types.Pointer:
		return "a pointer type"
	case *types.Chan:
		return "a channel type"
	default:
		return "a " + t.String()
	}
}

