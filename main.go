package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/davecgh/go-spew/spew"
	"github.com/mcncl/xmlrpcval/internal/config"
	"github.com/mcncl/xmlrpcval/internal/decoder"
	"github.com/mcncl/xmlrpcval/internal/encoder"
	"github.com/mcncl/xmlrpcval/internal/errors"
	"github.com/mcncl/xmlrpcval/internal/escape"
	"github.com/mcncl/xmlrpcval/internal/export"
	"github.com/mcncl/xmlrpcval/internal/models"
	"github.com/mcncl/xmlrpcval/internal/parser"
	"github.com/mcncl/xmlrpcval/internal/wire"
)

// CLI defines the command-line interface
var CLI struct {
	Input       string `help:"Path to input file. If not specified, reads from stdin." short:"i" type:"path"`
	Output      string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	From        string `help:"Input representation: an XML-RPC value document (xml) or json." default:"xml" enum:"xml,json"`
	To          string `help:"Output representation: json, xml, yaml, cbor or debug. Defaults to json for XML input and xml for JSON input."`
	Escape      string `help:"String escape policy: substitute, identity or auto." default:"auto" enum:"auto,substitute,identity"`
	MemberCase  string `help:"Struct member name casing on export: keep, camel or snake." default:"keep" enum:"keep,camel,snake"`
	Indent      bool   `help:"Indent JSON output." default:"true"`
	Config      string `help:"Path to a config file. The nearest .xmlrpcval.yml is used when omitted." short:"c" type:"path"`
	Debug       bool   `help:"Enable debug logging." short:"d"`
	Version     bool   `help:"Show version information." short:"v"`
	Interactive bool   `help:"Run in interactive mode, allowing direct input with Ctrl+D to process." short:"I"`
}

// Context holds the runtime context
type Context struct {
	Debug bool
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	// Parse CLI arguments with Kong
	parser := kong.Must(&CLI,
		kong.Name("xmlrpcval"),
		kong.Description("A tool to convert XML-RPC values to and from JSON, YAML and CBOR"),
		kong.UsageOnError(),
	)

	// Check if no arguments provided and set interactive mode by default
	if len(os.Args) == 1 {
		CLI.Interactive = true
	}

	_, err := parser.Parse(os.Args[1:])
	if err != nil {
		// If there's an error parsing arguments, the usage will already be shown by kong.UsageOnError()
		os.Exit(1)
	}

	// Show version and exit if requested
	if CLI.Version {
		fmt.Printf("xmlrpcval version %s\n", Version)
		return
	}

	err = run(&Context{Debug: CLI.Debug})
	if err != nil {
		// Use our custom error handling to provide user-friendly error messages
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))

		// Show help on error
		fmt.Fprintf(os.Stderr, "\nFor help, run: xmlrpcval --help\n")

		os.Exit(1)
	}
}

// run executes the main program logic
func run(ctx *Context) error {
	// 1. Resolve configuration
	configPath := CLI.Config
	if configPath == "" {
		configPath = config.FindConfigFile()
	}
	cfg, err := config.LoadConfigWithCLI(configPath, CLI.From, CLI.To, CLI.Escape, CLI.MemberCase, CLI.Indent)
	if err != nil {
		return err
	}

	// 2. Read raw input
	data, err := readInput()
	if err != nil {
		return err
	}

	// 3. Convert
	to := outputFormat(cfg)
	out, err := convert(ctx, cfg, to, data)
	if err != nil {
		return err
	}

	// 4. Output the result
	return writeOutput(out, to != "cbor")
}

// outputFormat resolves the target representation: conversions default to
// the "other side" of their input.
func outputFormat(cfg *config.Config) string {
	if cfg.To != "" {
		return cfg.To
	}
	if cfg.From == "json" {
		return "xml"
	}
	return "json"
}

// convert runs the conversion pipeline selected by the configuration.
func convert(ctx *Context, cfg *config.Config, to string, data []byte) ([]byte, error) {
	var value models.Value
	var err error

	switch cfg.From {
	case "json":
		value, err = parser.ParseString(string(data))
	default:
		var tree *wire.Node
		tree, err = wire.ParseDocument(bytes.NewReader(data))
		if err == nil {
			value, err = decoder.NewDecoder(decodePolicy(cfg)).Decode(tree)
		}
	}
	if err != nil {
		return nil, err
	}

	if ctx.Debug {
		fmt.Fprintf(os.Stderr, "decoded value:\n%s", spew.Sdump(value))
	}

	switch to {
	case "xml":
		tree, err := encoder.NewEncoder(encodePolicy(cfg)).Encode(value)
		if err != nil {
			return nil, err
		}
		return wire.Render(tree), nil
	case "debug":
		return []byte(spew.Sdump(value)), nil
	default:
		exporter := export.NewExporter(export.Format(to), export.MemberCase(cfg.MemberCase), cfg.Output.Indent)
		return exporter.Export(value)
	}
}

// The XML scanner resolves entities while reading and the renderer writes
// text verbatim, so auto mode decodes with the identity policy and encodes
// with the substitute policy.
func decodePolicy(cfg *config.Config) escape.Policy {
	if cfg.Escape == "auto" {
		return escape.PolicyIdentity
	}
	p, _ := escape.ParsePolicy(cfg.Escape)
	return p
}

func encodePolicy(cfg *config.Config) escape.Policy {
	if cfg.Escape == "auto" {
		return escape.PolicySubstitute
	}
	p, _ := escape.ParsePolicy(cfg.Escape)
	return p
}

// readInput reads raw input from file or stdin
func readInput() ([]byte, error) {
	if CLI.Input != "" {
		data, err := os.ReadFile(CLI.Input)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, errors.NewInputError(
					fmt.Sprintf("file '%s' not found", CLI.Input),
					errors.ErrFileNotFound,
				)
			}
			return nil, errors.NewInputError(
				fmt.Sprintf("failed to read file '%s'", CLI.Input),
				err,
			)
		}
		if len(bytes.TrimSpace(data)) == 0 {
			return nil, errors.NewInputError(
				fmt.Sprintf("input file '%s' is empty", CLI.Input),
				errors.ErrFileEmpty,
			)
		}
		return data, nil
	}

	// Check if stdin has data
	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return nil, errors.NewInputError("failed to access stdin", err)
	}

	// Interactive mode or piped input
	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		// Terminal is interactive (not piped)
		if CLI.Interactive {
			return readInteractiveInput()
		}
		// No data provided on stdin and not in interactive mode
		return nil, errors.NewInputError("no input provided", errors.ErrNoInput)
	}

	// Read from stdin (piped input)
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, errors.NewInputError("failed to read from stdin", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.NewInputError("empty input received from stdin", errors.ErrEmptyInput)
	}
	return data, nil
}

// writeOutput writes the converted result to file or stdout. Text formats
// get a trailing newline on stdout; binary output stays untouched.
func writeOutput(out []byte, text bool) error {
	if CLI.Output != "" {
		err := os.WriteFile(CLI.Output, out, 0644)
		if err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", CLI.Output), err)
		}
		fmt.Fprintf(os.Stderr, "Converted output written to %s\n", CLI.Output)
		return nil
	}

	if _, err := os.Stdout.Write(out); err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	if text && (len(out) == 0 || out[len(out)-1] != '\n') {
		fmt.Println()
	}
	return nil
}

// readInteractiveInput provides an interactive mode for users to paste a
// document and signal completion with Ctrl+D (EOF)
func readInteractiveInput() ([]byte, error) {
	fmt.Fprintln(os.Stderr, "xmlrpcval Interactive Mode")
	fmt.Fprintln(os.Stderr, "Paste your input below and press Ctrl+D (or Ctrl+Z on Windows) when done:")

	// Read all input until EOF (Ctrl+D)
	reader := bufio.NewReader(os.Stdin)
	var builder strings.Builder

	for {
		line, err := reader.ReadString('\n')
		if err == io.EOF {
			builder.WriteString(line)
			break
		}
		if err != nil {
			return nil, errors.NewInputError("error reading input", err)
		}
		builder.WriteString(line)
	}

	data := builder.String()
	if len(strings.TrimSpace(data)) == 0 {
		return nil, errors.NewInputError("empty input received", errors.ErrEmptyInput)
	}

	fmt.Fprintln(os.Stderr, "\nProcessing input...")
	return []byte(data), nil
}
