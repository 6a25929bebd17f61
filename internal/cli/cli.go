package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/itemtree/internal/app"
	"github.com/spf13/cobra"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var (
		cfg     app.Config
		invoked bool
	)

	cmd := &cobra.Command{
		Use:   "itemtree [flags] PATH...",
		Short: "Build an item tree and expand relative item references.",
		Long: `itemtree - loads item definitions, arranges them in a tree addressed by
dot-separated paths and rewrites relative references (".child", "..sister")
in item attributes to absolute paths.

Each PATH is an item file (.hcl, .yaml, .yml) or a directory searched
recursively for such files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, positional []string) error {
			invoked = true
			cfg.Paths = positional
			return nil
		},
	}
	cmd.SetArgs(args)
	cmd.SetOut(output)
	cmd.SetErr(output)

	flags := cmd.Flags()
	flags.StringVar(&cfg.LogFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")
	flags.StringVar(&cfg.LogLevel, "log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.StringVarP(&cfg.Output, "output", "o", app.OutputText, "Item dump format. Options: 'text' or 'json'.")
	flags.StringVar(&cfg.Item, "item", "", "Only print the subtree rooted at this absolute item path.")
	flags.IntVar(&cfg.Workers, "workers", 0, "Number of concurrent expansion workers. 0 uses GOMAXPROCS.")
	flags.BoolVar(&cfg.StrictPaths, "strict-paths", false, "Fail on relative references that climb above the top level instead of clamping them.")

	if err := cmd.Execute(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if !invoked {
		// --help was handled by cobra.
		return nil, true, nil
	}
	slog.Debug("Arguments parsed successfully.", "paths", cfg.Paths)

	if len(cfg.Paths) == 0 {
		slog.Debug("No item path provided, printing usage and exiting.")
		_ = cmd.Usage()
		return nil, true, nil
	}

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	cfg.Output = strings.ToLower(cfg.Output)

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid configuration: %v", err)}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
