package main

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/tidwall/gjson"

	"jsoncompare/internal/comparator"
	"jsoncompare/internal/config"
	apperrors "jsoncompare/internal/errors"
	"jsoncompare/internal/formatter"
	"jsoncompare/internal/models"
	"jsoncompare/internal/parser"
)

// CLI defines the command-line interface
var CLI struct {
	Left           string `arg:"" optional:"" help:"Path to the left JSON document. Use '-' to read from stdin."`
	Right          string `arg:"" optional:"" help:"Path to the right JSON document. Use '-' to read from stdin."`
	Format         string `help:"Output format: text, table or json. Defaults to text." short:"f"`
	Output         string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	Select         string `help:"Compare only the sub-document at this path (gjson syntax), e.g. 'users.0.profile'." short:"s"`
	Color          bool   `help:"Colorize text output." short:"c"`
	StrictNumbers  bool   `help:"Compare numbers by literal form, so 1 and 1.0 differ."`
	OnlyMismatches bool   `help:"Hide matched fields from the report." short:"m"`
	Stats          bool   `help:"Print a summary line after the report."`
	Config         string `help:"Path to config file." type:"path"`
	Debug          bool   `help:"Enable debug logging." short:"d"`
	Version        bool   `help:"Show version information." short:"v"`
}

// Context holds the runtime context
type Context struct {
	Debug  bool
	Config *config.Config
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	// Parse CLI arguments with Kong
	parser := kong.Must(&CLI,
		kong.Name("jsoncompare"),
		kong.Description("A tool to compare two JSON documents field by field"),
		kong.UsageOnError(),
	)

	// Parse the command line arguments
	_, err := parser.Parse(os.Args[1:])
	if err != nil {
		// If there's an error parsing arguments, the usage will already be shown by kong.UsageOnError()
		os.Exit(2)
	}

	// Show version and exit if requested
	if CLI.Version {
		fmt.Printf("jsoncompare version %s\n", Version)
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fail(err)
	}

	code, err := run(&Context{Debug: CLI.Debug, Config: cfg})
	if err != nil {
		fail(err)
	}
	os.Exit(code)
}

func fail(err error) {
	// Use our custom error handling to provide user-friendly error messages
	fmt.Fprintf(os.Stderr, "%s\n", apperrors.UserFriendlyError(err))

	// Show help on error
	fmt.Fprintf(os.Stderr, "\nFor help, run: jsoncompare --help\n")

	os.Exit(2)
}

// run executes the main program logic. The returned code follows diff-tool
// convention: 0 when the documents match, 1 when any field differs.
func run(ctx *Context) (int, error) {
	cfg := ctx.Config

	// 1. Read both documents
	leftDoc, err := loadDocument(CLI.Left, "left", cfg)
	if err != nil {
		return 2, err
	}
	rightDoc, err := loadDocument(CLI.Right, "right", cfg)
	if err != nil {
		return 2, err
	}

	// 2. Compare the trees
	var st comparator.Stats
	var opts []comparator.Option
	if cfg.StrictNumbers {
		opts = append(opts, comparator.WithStrictNumbers())
	}
	if cfg.Stats {
		opts = append(opts, comparator.WithStats(&st))
	}
	nodes, err := comparator.Compare(leftDoc, rightDoc, opts...)
	if err != nil {
		return 2, err
	}
	if ctx.Debug {
		fmt.Fprintf(os.Stderr, "debug: compared %d top-level fields\n", len(nodes))
	}

	// 3. Render the report
	f := formatter.NewFormatter()
	f.OnlyMismatches = cfg.OnlyMismatches
	f.Color = cfg.Color && CLI.Output == ""

	buf := &bytes.Buffer{}
	switch cfg.Format {
	case config.FormatTable:
		err = f.FormatTable(buf, nodes)
	case config.FormatJSON:
		err = f.FormatJSON(buf, nodes)
	default:
		err = f.FormatText(buf, nodes)
	}
	if err != nil {
		return 2, err
	}
	if cfg.Stats {
		buf.WriteString(f.FormatStats(&st))
	}

	// 4. Output the result
	if err := writeOutput(buf.String()); err != nil {
		return 2, err
	}

	if comparator.AllMatched(nodes) {
		return 0, nil
	}
	return 1, nil
}

// loadConfig resolves the effective configuration: config file (explicit
// path or nearest .jsoncompare.yml up the directory tree), then CLI flags
// on top.
func loadConfig() (*config.Config, error) {
	path := CLI.Config
	if path == "" {
		path = config.FindConfigFile()
	}

	cfg := config.NewConfig()
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, apperrors.NewInputError(fmt.Sprintf("failed to load config from '%s'", path), err)
		}
		cfg = loaded
	}

	// CLI flags override file settings
	if CLI.Format != "" {
		cfg.Format = CLI.Format
	}
	if CLI.Color {
		cfg.Color = true
	}
	if CLI.StrictNumbers {
		cfg.StrictNumbers = true
	}
	if CLI.OnlyMismatches {
		cfg.OnlyMismatches = true
	}
	if CLI.Stats {
		cfg.Stats = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, apperrors.NewInputError(err.Error(), nil)
	}
	return cfg, nil
}

// loadDocument reads one side, applies the optional --select path, and
// parses it into a value tree.
func loadDocument(path, side string, cfg *config.Config) (models.Value, error) {
	data, err := readInput(path, side)
	if err != nil {
		return models.Value{}, err
	}

	if CLI.Select != "" {
		result := gjson.GetBytes(data, CLI.Select)
		if !result.Exists() {
			return models.Value{}, apperrors.NewInputError(
				fmt.Sprintf("--select path %q matched nothing in the %s document", CLI.Select, side),
				apperrors.ErrSelectNoMatch,
			)
		}
		data = []byte(result.Raw)
	}

	parser.MaxDepth = cfg.MaxDepth
	doc, err := parser.ParseBytes(data)
	if err != nil {
		return models.Value{}, sideError(side, err)
	}
	return doc, nil
}

// readInput reads raw JSON from a file or stdin
func readInput(path, side string) ([]byte, error) {
	if path == "" {
		return nil, apperrors.NewInputError(fmt.Sprintf("no %s document provided", side), apperrors.ErrNoInput)
	}

	if path == "-" {
		if CLI.Left == "-" && CLI.Right == "-" {
			return nil, apperrors.NewInputError("only one document can be read from stdin", apperrors.ErrNoInput)
		}
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, apperrors.NewInputError("failed to read from stdin", err)
		}
		if len(data) == 0 {
			return nil, apperrors.NewInputError(fmt.Sprintf("empty %s document received from stdin", side), apperrors.ErrEmptyInput)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NewInputError(
				fmt.Sprintf("file '%s' not found", path),
				apperrors.ErrFileNotFound,
			)
		}
		return nil, apperrors.NewInputError(
			fmt.Sprintf("failed to read file '%s'", path),
			err,
		)
	}
	if len(data) == 0 {
		return nil, apperrors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", path),
			apperrors.ErrFileEmpty,
		)
	}
	return data, nil
}

// sideError prefixes an error with which document it came from, keeping the
// original error type and sentinel.
func sideError(side string, err error) error {
	var appErr *apperrors.AppError
	if stderrors.As(err, &appErr) {
		return &apperrors.AppError{
			Type:    appErr.Type,
			Message: fmt.Sprintf("%s document: %s", side, appErr.Message),
			Err:     appErr.Err,
		}
	}
	return fmt.Errorf("%s document: %w", side, err)
}

// writeOutput writes the report to file or stdout
func writeOutput(report string) error {
	if CLI.Output != "" {
		err := os.WriteFile(CLI.Output, []byte(report), 0644)
		if err != nil {
			return apperrors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", CLI.Output), err)
		}
		fmt.Fprintf(os.Stderr, "Comparison report written to %s\n", CLI.Output)
		return nil
	}

	_, err := fmt.Print(report)
	if err != nil {
		return apperrors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}
