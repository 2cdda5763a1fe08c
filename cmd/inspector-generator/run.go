package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"inspector-generator/internal/analyze"
	"inspector-generator/internal/common"
	"inspector-generator/internal/compile"
	"inspector-generator/internal/config"
	"inspector-generator/internal/diagnostic"
	"inspector-generator/internal/gen"
	"inspector-generator/internal/schema"
)

var logLevel = new(slog.LevelVar)

const usage = `usage: inspector-generator <command> [flags]

commands:
  gen    generate inspector methods for a package
  check  compile the records of a package without writing anything
  init   write a config file listing the records of a package

run "inspector-generator <command> -h" for the flags of a command`

// options are the flags of every command; each command registers its own subset.
type options struct {
	pkg         string
	types       string
	configPath  string
	out         string
	file        string
	register    bool
	labelColumn float64
	verbose     bool
	configOut   string
	force       bool

	labelColumnSet bool
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}))

	if len(args) == 0 {
		fmt.Fprintln(stderr, usage)
		return 2
	}

	cmd, rest := args[0], args[1:]

	switch cmd {
	case "gen", "check", "init":
	case "-h", "-help", "--help", "help":
		fmt.Fprintln(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n%s\n", cmd, usage)
		return 2
	}

	opts, err := parseFlags(cmd, rest, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		return 2
	}

	if opts.verbose {
		logLevel.Set(slog.LevelDebug)
	}

	if err := execute(cmd, opts, stdout, logger); err != nil {
		logger.Error(cmd+" failed", "err", err)
		return 1
	}

	return 0
}

func parseFlags(cmd string, args []string, stderr io.Writer) (*options, error) {
	opts := &options{}

	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.pkg, "pkg", ".", "package pattern to load (exactly one package)")
	fs.StringVar(&opts.types, "types", "", "comma separated record names (default: every exported struct)")
	fs.BoolVar(&opts.verbose, "v", false, "verbose (debug) logging")

	if cmd == "init" {
		fs.StringVar(&opts.configOut, "o", "inspector.yaml", "config file to write")
		fs.BoolVar(&opts.force, "force", false, "overwrite an existing config file")
	} else {
		fs.StringVar(&opts.configPath, "config", "", "YAML file with type selection and field overrides")
	}

	if cmd == "gen" {
		fs.StringVar(&opts.out, "out", "", "output directory (default: the package directory)")
		fs.StringVar(&opts.file, "file", "", "output file name (default: "+gen.DefaultFilename+")")
		fs.BoolVar(&opts.register, "register", false, "emit RegisterInspectors for the generated records")
		fs.Float64Var(&opts.labelColumn, "label-column", float64(gen.DefaultGeneratorConfig().LabelColumn),
			"x offset of widgets after their field label")
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "label-column" {
			opts.labelColumnSet = true
		}
	})

	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		return nil, errors.New("unexpected arguments")
	}

	return opts, nil
}

func execute(cmd string, opts *options, stdout io.Writer, logger *slog.Logger) error {
	cfg := &config.File{Version: config.CurrentVersion}

	if opts.configPath != "" {
		loaded, err := config.LoadFile(opts.configPath)
		if err != nil {
			return err
		}

		cfg = loaded
	}

	// Previously generated files are left out so a stale one cannot break loading.
	analyzer := analyze.NewAnalyzer(analyze.WithLogger(logger), analyze.WithBuildTags(gen.BuildTag))

	graph, err := analyzer.LoadPackages(opts.pkg)
	if err != nil {
		return err
	}

	pkg, err := singlePackage(graph, opts.pkg)
	if err != nil {
		return err
	}

	records, diags, err := selectRecords(graph, pkg, cfg, splitList(opts.types))
	if err != nil {
		return err
	}

	if cmd == "init" {
		return writeConfig(records, opts, stdout)
	}

	results, compileDiags, err := compileRecords(records, opts.register || cfg.Register, logger)
	if err != nil {
		return err
	}

	diags.Merge(compileDiags)
	logDiagnostics(logger, diags)

	if cmd == "check" {
		fmt.Fprintf(stdout, "ok: %d records in %s\n", len(results), pkg.Path)
		return nil
	}

	genCfg := gen.DefaultGeneratorConfig()
	genCfg.PackageName = pkg.Name
	genCfg.OutputDir = common.FirstNonEmpty(opts.out, pkg.Dir)
	genCfg.Filename = common.FirstNonEmpty(opts.file, cfg.Output, gen.DefaultFilename)
	genCfg.Logger = logger

	switch {
	case opts.labelColumnSet:
		genCfg.LabelColumn = float32(opts.labelColumn)
	case cfg.LabelColumn != nil:
		genCfg.LabelColumn = *cfg.LabelColumn
	}

	file, err := gen.NewGenerator(genCfg).Generate(results)
	if err != nil {
		return err
	}

	if err := gen.WriteFiles([]gen.GeneratedFile{file}, genCfg.OutputDir, logger); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "generated %d inspectors into %s\n", len(results), file.Filename)

	return nil
}

func singlePackage(graph *analyze.Graph, pattern string) (*analyze.PackageInfo, error) {
	if len(graph.Packages) != 1 {
		return nil, fmt.Errorf("pattern %q matched %d packages, want exactly one", pattern, len(graph.Packages))
	}

	for _, pkg := range graph.Packages {
		return pkg, nil
	}

	return nil, nil
}

// selectRecords applies the config overrides and picks the records to compile:
// the -types list if given, else the config's types, else every exported struct.
func selectRecords(
	graph *analyze.Graph, pkg *analyze.PackageInfo, cfg *config.File, names []string,
) ([]schema.Record, diagnostic.Diagnostics, error) {
	records, diags := config.Apply(cfg, graph.ExportedRecords(pkg.Path))
	if err := diags.Err(); err != nil {
		return nil, diags, fmt.Errorf("invalid config: %w", err)
	}

	if len(names) == 0 {
		names = cfg.TypeNames()
	}

	if len(names) == 0 {
		return records, diags, nil
	}

	byName := make(map[string]schema.Record, len(records))
	for _, rec := range records {
		byName[rec.Name] = rec
	}

	selected := make([]schema.Record, 0, len(names))

	for _, name := range names {
		rec, ok := byName[name]
		if !ok {
			// Record reports why: not a struct, or not declared at all.
			_, err := graph.Record(pkg.Path, name)
			if err == nil {
				err = fmt.Errorf("type %s is not exported", name)
			}

			return nil, diags, err
		}

		selected = append(selected, rec)
	}

	return selected, diags, nil
}

// compileRecords compiles every record. A failing record does not stop the
// others; all failures are returned together.
func compileRecords(
	records []schema.Record, register bool, logger *slog.Logger,
) ([]*compile.Result, diagnostic.Diagnostics, error) {
	var (
		results []*compile.Result
		diags   diagnostic.Diagnostics
		errs    []error
	)

	for _, rec := range records {
		res, err := compile.Compile(rec, compile.Options{Register: register})
		if err != nil {
			logger.Debug("record failed", "record", rec.Name, "code", diagnostic.CodeOf(err))

			errs = append(errs, err)

			continue
		}

		logger.Debug("compiled record", "record", rec.Name, "bindings", len(res.Render.Bindings))

		diags.Merge(res.Diagnostics)
		results = append(results, res)
	}

	if len(errs) > 0 {
		return nil, diags, errors.Join(errs...)
	}

	return results, diags, nil
}

func logDiagnostics(logger *slog.Logger, diags diagnostic.Diagnostics) {
	for _, w := range diags.Warnings {
		logger.Warn(w.Message, "code", w.Code, "record", w.Record, "field", w.Field)
	}

	for _, i := range diags.Infos {
		logger.Debug(i.Message, "code", i.Code, "record", i.Record, "field", i.Field)
	}
}

// writeConfig writes a config skeleton naming every selected record.
func writeConfig(records []schema.Record, opts *options, stdout io.Writer) error {
	if !opts.force {
		if _, err := os.Stat(opts.configOut); err == nil {
			return fmt.Errorf("%s already exists (use -force to overwrite)", opts.configOut)
		}
	}

	f := &config.File{Version: config.CurrentVersion, Output: gen.DefaultFilename}
	for _, rec := range records {
		f.Types = append(f.Types, config.TypeOverride{Name: rec.Name})
	}

	if err := config.WriteFile(f, opts.configOut); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "wrote %d types to %s\n", len(f.Types), opts.configOut)

	return nil
}

func splitList(s string) []string {
	var out []string

	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
