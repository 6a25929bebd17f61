package app

import (
	"errors"
	"fmt"
)

// Output formats understood by the dump writer.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Paths []string // item files or directories (hcl, yaml)

	LogFormat string
	LogLevel  string

	Output string // text or json
	// Item limits the dump to the subtree rooted at this absolute path.
	Item        string
	Workers     int
	StrictPaths bool
}

func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.Paths) == 0 {
		return nil, errors.New("at least one item path is required")
	}
	switch cfg.Output {
	case "":
		cfg.Output = OutputText
	case OutputText, OutputJSON:
	default:
		return nil, fmt.Errorf("invalid output format %q: must be '%s' or '%s'", cfg.Output, OutputText, OutputJSON)
	}
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("workers must not be negative, got %d", cfg.Workers)
	}

	return &cfg, nil
}
