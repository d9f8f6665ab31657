package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"

	"github.com/mcncl/jsonflat/flattener"
	"github.com/mcncl/jsonflat/internal/config"
	"github.com/mcncl/jsonflat/internal/errors"
	"github.com/mcncl/jsonflat/internal/formatter"
	"github.com/mcncl/jsonflat/internal/models"
	"github.com/mcncl/jsonflat/internal/parser"
)

// CLI defines the command-line interface
var CLI struct {
	Input       string `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	Output      string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	Format      string `help:"Output format: json, lines or env. Defaults to the config file value, then json." short:"f"`
	EnvPrefix   string `help:"Prefix for variable names in env format." name:"env-prefix"`
	Config      string `help:"Path to config file. Defaults to the nearest .jsonflat.yml." short:"c" type:"path"`
	Debug       bool   `help:"Enable debug logging." short:"d"`
	Version     bool   `help:"Show version information." short:"v"`
	Interactive bool   `help:"Run in interactive mode, allowing direct JSON input with Ctrl+D to process." short:"I"`
}

// Context holds the runtime context
type Context struct {
	Config *config.Config
	Log    logrus.FieldLogger
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	parser := kong.Must(&CLI,
		kong.Name("jsonflat"),
		kong.Description("Flatten nested JSON into path keys and scalar values"),
		kong.UsageOnError(),
	)

	if len(os.Args) == 1 {
		CLI.Interactive = true
	}

	_, err := parser.Parse(os.Args[1:])
	if err != nil {
		// kong.UsageOnError already printed the usage
		os.Exit(1)
	}

	if CLI.Version {
		fmt.Printf("jsonflat version %s\n", Version)
		return
	}

	configPath := CLI.Config
	if configPath == "" {
		configPath = config.FindConfigFile()
	}
	cfg, err := config.LoadConfigWithCLI(configPath, CLI.Format, CLI.EnvPrefix, CLI.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}

	log := newLogger(cfg.Dev.Debug)
	if configPath != "" {
		log.WithField("config", configPath).Debug("Loaded configuration")
	}

	err = run(&Context{Config: cfg, Log: log})
	if err != nil {
		log.WithError(err).Debug("Run failed")
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		fmt.Fprintf(os.Stderr, "\nFor help, run: jsonflat --help\n")
		os.Exit(1)
	}
}

// newLogger returns a stderr text logger, at debug level when debug is set
func newLogger(debug bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.WarnLevel)
	if debug {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

// run executes the main program logic
func run(ctx *Context) error {
	log := ctx.Log
	if log == nil {
		log = newLogger(false)
	}

	// 1. Parse JSON input
	doc, err := parseInput()
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"input": doc.Source,
		"bytes": doc.Size,
		"array": doc.RootIsArray(),
	}).Debug("Parsed input")

	// 2. Flatten
	fl, err := flattener.NewFromValue(doc.Root)
	if err != nil {
		return err
	}
	entries := fl.FlattenAsMap().Len()

	// 3. Render
	out, err := formatter.NewFormatter(ctx.Config).Format(fl)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"format":  ctx.Config.Output.Format,
		"entries": entries,
	}).Debug("Flattened document")

	// 4. Output the result
	return writeOutput(out)
}

// parseInput reads JSON from file or stdin
func parseInput() (models.Document, error) {
	if CLI.Input != "" {
		root, err := parser.ParseFile(CLI.Input)
		if err != nil {
			return models.Document{}, err
		}
		size := 0
		if info, statErr := os.Stat(CLI.Input); statErr == nil {
			size = int(info.Size())
		}
		return models.Document{Source: CLI.Input, Root: root, Size: size}, nil
	}

	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return models.Document{}, errors.NewInputError("failed to access stdin", err)
	}

	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		if CLI.Interactive {
			return readInteractiveInput()
		}
		return models.Document{}, errors.NewInputError("no input provided", errors.ErrNoInput)
	}

	jsonData, err := io.ReadAll(os.Stdin)
	if err != nil {
		return models.Document{}, errors.NewInputError("failed to read from stdin", err)
	}

	if len(jsonData) == 0 {
		return models.Document{}, errors.NewInputError("empty input received from stdin", errors.ErrEmptyInput)
	}

	root, err := parser.ParseBytes(jsonData)
	if err != nil {
		return models.Document{}, err
	}
	return models.Document{Source: "stdin", Root: root, Size: len(jsonData)}, nil
}

// writeOutput writes the rendered document to file or stdout
func writeOutput(out string) error {
	if CLI.Output != "" {
		err := os.WriteFile(CLI.Output, []byte(out+"\n"), 0644)
		if err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", CLI.Output), err)
		}
		fmt.Fprintf(os.Stderr, "Flattened JSON written to %s\n", CLI.Output)
		return nil
	}

	_, err := fmt.Println(strings.TrimSpace(out))
	if err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}

// readInteractiveInput provides an interactive mode for users to paste JSON
// and signal completion with Ctrl+D (EOF)
func readInteractiveInput() (models.Document, error) {
	fmt.Fprintln(os.Stderr, "jsonflat Interactive Mode")
	fmt.Fprintln(os.Stderr, "Paste your JSON below and press Ctrl+D (or Ctrl+Z on Windows) when done:")

	reader := bufio.NewReader(os.Stdin)
	var jsonBuilder strings.Builder

	for {
		line, err := reader.ReadString('\n')
		jsonBuilder.WriteString(line)
		if err == io.EOF {
			break
		}
		if err != nil {
			return models.Document{}, errors.NewInputError("error reading input", err)
		}
	}

	jsonData := jsonBuilder.String()
	if strings.TrimSpace(jsonData) == "" {
		return models.Document{}, errors.NewInputError("empty input received", errors.ErrEmptyInput)
	}

	fmt.Fprintln(os.Stderr, "\nProcessing JSON...")
	root, err := parser.ParseString(jsonData)
	if err != nil {
		return models.Document{}, err
	}
	return models.Document{Source: "interactive", Root: root, Size: len(jsonData)}, nil
}
