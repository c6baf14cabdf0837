package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ExitError is an error carrying a specific process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Config is the validated command-line configuration.
type Config struct {
	ThemePath  string   // optional .yaml/.yml/.hcl theme
	OutPath    string   // "" or "-" means stdout
	Prefix     *string  // overrides the theme prefix when the flag is given
	Strategies []string // overrides the theme strategies
	Values     []string // overrides the theme values (key = raw value)
	Compact    bool
	LogLevel   string
	LogFormat  string
}

// Parse processes command-line arguments. It returns the Config, a boolean
// telling the caller to exit cleanly (help was printed), or an ExitError.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("gridcols", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
gridcols - CSS grid utilities that distribute the items of an under-filled row.

Usage:
  gridcols [options] [THEME_PATH]

Arguments:
  THEME_PATH
    Optional .yaml, .yml or .hcl theme file. Without one the default values
    1..12 are generated for every strategy.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to the theme file.")
	cFlag := flagSet.String("c", "", "Path to the theme file (shorthand).")
	outFlag := flagSet.String("out", "-", "Output file; '-' writes to stdout.")
	prefixFlag := flagSet.String("prefix", "", "Class prefix, e.g. 'tw-'. Overrides the theme; -prefix '' removes it.")
	strategiesFlag := flagSet.String("strategies", "", "Comma-separated strategies: start,center,end,between,around,evenly.")
	valuesFlag := flagSet.String("values", "", "Comma-separated values, e.g. '2,3,4'. Overrides the theme.")
	compactFlag := flagSet.Bool("compact", false, "Render one block per line.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := ""
	switch {
	case *configFlag != "":
		path = *configFlag
	case *cFlag != "":
		path = *cFlag
	case flagSet.NArg() > 0:
		path = flagSet.Arg(0)
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: "too many arguments: expected at most one THEME_PATH"}
	}
	slog.Debug("Theme path determined.", "path", path)

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	var prefix *string
	flagSet.Visit(func(f *flag.Flag) {
		if f.Name == "prefix" {
			prefix = prefixFlag
		}
	})

	cfg := &Config{
		ThemePath:  path,
		OutPath:    *outFlag,
		Prefix:     prefix,
		Strategies: splitList(*strategiesFlag),
		Values:     splitList(*valuesFlag),
		Compact:    *compactFlag,
		LogLevel:   logLevel,
		LogFormat:  logFormat,
	}
	slog.Debug("CLI parser finished successfully.", "config", cfg)

	return cfg, false, nil
}

// splitList splits a comma-separated flag, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
