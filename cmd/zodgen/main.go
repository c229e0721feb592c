package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/reoring/zodgen"
	"github.com/reoring/zodgen/ir"
	"github.com/reoring/zodgen/jsonschema"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return 2
	}
	var err error
	switch args[0] {
	case "translate":
		err = translateCmd(args[1:], stdin, stdout, stderr)
	case "config":
		err = configCmd(stdout)
	case "-h", "-help", "--help", "help":
		usage(stdout)
		return 0
	default:
		usage(stderr)
		return 2
	}
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if errors.Is(err, errUsage) {
		return 2
	}
	if err != nil {
		msg := err.Error()
		if !strings.HasPrefix(msg, "zodgen:") {
			msg = "zodgen: " + msg
		}
		fmt.Fprintln(stderr, msg)
		return 1
	}
	return 0
}

var errUsage = errors.New("usage")

func usage(w io.Writer) {
	fmt.Fprintln(w, `zodgen translates JSON Schema into Zod expressions

Usage:
  zodgen translate [-in schema.json|-] [-config zodgen.yaml] [-o out.ts] [-export Name] [-pretty auto|always|never]
  zodgen translate -in crds.yaml -crd Widget [-crd-version v1]
  zodgen config    print the default configuration as YAML

Run "zodgen translate -h" for every flag.`)
}

// translateFlags holds the parsed flags of the translate subcommand.
type translateFlags struct {
	in, out, configPath string
	inFormat            string
	crd, crdVersion     string
	export              string
	pretty              string
	strict, verbose     bool
	ignoreNullable      bool

	cfg zodgen.Config
}

func parseTranslateFlags(args []string, stderr io.Writer) (*translateFlags, error) {
	fs := flag.NewFlagSet("translate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &translateFlags{}
	fs.StringVar(&f.in, "in", "-", "input schema file, - for stdin")
	fs.StringVar(&f.inFormat, "format", "auto", "input format: auto|json|yaml")
	fs.StringVar(&f.crd, "crd", "", "read the openAPIV3Schema of this CustomResourceDefinition kind")
	fs.StringVar(&f.crdVersion, "crd-version", "", "CRD version (default: first listed)")
	fs.StringVar(&f.configPath, "config", "", "YAML translator configuration")
	fs.StringVar(&f.out, "o", "", "output file (default: stdout)")
	fs.StringVar(&f.export, "export", "", "emit a TypeScript module exporting the schema under this name")
	fs.StringVar(&f.pretty, "pretty", "auto", "format output: auto|always|never (auto formats for terminals)")
	fs.BoolVar(&f.strict, "strict", false, "fail on ignored keywords and unresolved $refs")
	fs.BoolVar(&f.ignoreNullable, "ignore-nullable", false, `ignore OpenAPI "nullable: true"`)
	fs.BoolVar(&f.verbose, "v", false, "enable debug logs")

	// Per-option overrides applied on top of -config.
	var (
		coerceDates, explicitMinMax, descriptions, propertyDefaults   bool
		preferUnknown, ignoreUndefined, nonNegativeInt, openByDefault bool
		arrayStyle, intersectionOrder, closedObjects, openObjects     string
		maxDepth                                                      int
	)
	fs.BoolVar(&coerceDates, "coerce-dates", false, "emit z.coerce.date() for date formats")
	fs.BoolVar(&explicitMinMax, "explicit-min-max", false, "spell numeric bounds .gte/.lte")
	fs.BoolVar(&descriptions, "descriptions", false, "append .describe(...)")
	fs.BoolVar(&propertyDefaults, "property-defaults", false, "emit .default(v) for property defaults")
	fs.BoolVar(&preferUnknown, "prefer-unknown", false, "spell the accept-anything schema z.unknown()")
	fs.BoolVar(&ignoreUndefined, "ignore-undefined", false, "never mark properties optional")
	fs.BoolVar(&nonNegativeInt, "nonnegative-int", false, "turn integer minimum 0 into .nonnegative()")
	fs.BoolVar(&openByDefault, "open-by-default", false, "treat absent additionalProperties as true")
	fs.StringVar(&arrayStyle, "array-style", "", "prefix|postfix")
	fs.StringVar(&intersectionOrder, "intersection-order", "", "union-first|object-first")
	fs.StringVar(&closedObjects, "closed-objects", "", "strict|strict-object|implicit")
	fs.StringVar(&openObjects, "open-objects", "", "passthrough|loose-object|catchall")
	fs.IntVar(&maxDepth, "max-depth", 0, "maximum schema nesting")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, errUsage
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "translate: unexpected argument %q\n", fs.Arg(0))
		return nil, errUsage
	}
	switch f.pretty {
	case "auto", "always", "never":
	default:
		return nil, fmt.Errorf("-pretty must be auto, always or never, got %q", f.pretty)
	}

	cfg, err := loadConfig(f.configPath)
	if err != nil {
		return nil, err
	}
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "coerce-dates":
			cfg.CoerceDates = coerceDates
		case "explicit-min-max":
			cfg.ExplicitMinMax = explicitMinMax
		case "descriptions":
			cfg.Descriptions = descriptions
		case "property-defaults":
			cfg.PropertyDefaults = propertyDefaults
		case "prefer-unknown":
			cfg.PreferUnknown = preferUnknown
		case "ignore-undefined":
			cfg.IgnoreUndefined = ignoreUndefined
		case "nonnegative-int":
			cfg.NonNegativeInt = nonNegativeInt
		case "open-by-default":
			cfg.OpenByDefault = openByDefault
		case "array-style":
			cfg.ArrayStyle = zodgen.ArrayStyle(arrayStyle)
		case "intersection-order":
			cfg.IntersectionOrder = zodgen.IntersectionOrder(intersectionOrder)
		case "closed-objects":
			cfg.ClosedObjects = zodgen.ClosedObjects(closedObjects)
		case "open-objects":
			cfg.OpenObjects = zodgen.OpenObjects(openObjects)
		case "max-depth":
			cfg.MaxDepth = maxDepth
		}
	})
	f.cfg = cfg
	return f, nil
}

func loadConfig(path string) (zodgen.Config, error) {
	var cfg zodgen.Config
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

func translateCmd(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	f, err := parseTranslateFlags(args, stderr)
	if err != nil {
		return err
	}
	level := slog.LevelWarn
	if f.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	tr, err := zodgen.New(f.cfg, zodgen.WithLogger(log), zodgen.WithFileExtension(outputExt(f.out)))
	if err != nil {
		return err
	}

	data, err := readInput(f.in, stdin)
	if err != nil {
		return err
	}
	schema, err := importSchema(f, data, log)
	if err != nil {
		return err
	}

	pretty := f.pretty == "always" || (f.pretty == "auto" && f.out == "" && isTerminal(stdout))
	log.Debug("translate", "in", f.in, "out", f.out, "pretty", pretty, "export", f.export)

	var text string
	switch {
	case f.export != "":
		text, err = tr.TranslateModule([]zodgen.Decl{{Name: f.export, Schema: schema}}, pretty)
	case pretty:
		text, err = tr.TranslatePretty(schema)
	default:
		text, err = tr.Translate(schema)
	}
	if err != nil {
		return err
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	if f.out == "" {
		_, err = io.WriteString(stdout, text)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.out), 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	if err := os.WriteFile(f.out, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(stdin)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return b, nil
}

func importSchema(f *translateFlags, data []byte, log *slog.Logger) (ir.Schema, error) {
	opts := jsonschema.Options{Strict: f.strict, IgnoreNullable: f.ignoreNullable}
	var (
		s    ir.Schema
		diag jsonschema.Diag
		err  error
	)
	switch {
	case f.crd != "":
		s, diag, err = jsonschema.ImportCRD(data, f.crd, f.crdVersion, opts)
	case inputIsYAML(f.inFormat, f.in, data):
		s, diag, err = jsonschema.ImportYAML(data, opts)
	default:
		s, diag, err = jsonschema.Import(data, opts)
	}
	if diag != nil {
		for _, w := range diag.Warnings() {
			log.Warn("import", "warning", w)
		}
	}
	return s, err
}

func inputIsYAML(format, path string, data []byte) bool {
	switch format {
	case "yaml", "yml":
		return true
	case "json":
		return false
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	case ".json":
		return false
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return false
	}
	switch trimmed[0] {
	case '{', '[':
		return false
	}
	return !bytes.Equal(trimmed, []byte("true")) && !bytes.Equal(trimmed, []byte("false"))
}

// outputExt picks the formatter hint from the output file name.
func outputExt(out string) string {
	switch ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(out), ".")); ext {
	case "js", "jsx", "mjs", "cjs", "ts", "tsx", "mts", "cts":
		return ext
	}
	return "ts"
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func configCmd(stdout io.Writer) error {
	enc := yaml.NewEncoder(stdout)
	enc.SetIndent(2)
	if err := enc.Encode(zodgen.DefaultConfig()); err != nil {
		return err
	}
	return enc.Close()
}
