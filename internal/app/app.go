package app

import (
	"io"
	"log/slog"

	"github.com/specialistvlad/itemtree/internal/config"
	"github.com/specialistvlad/itemtree/internal/hcl_adapter"
	"github.com/specialistvlad/itemtree/internal/yaml_adapter"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	loaders []config.Loader
}

// DefaultLoaders are the item file formats compiled into the binary.
func DefaultLoaders() []config.Loader {
	return []config.Loader{
		hcl_adapter.NewLoader(),
		yaml_adapter.NewLoader(),
	}
}

// NewApp is the constructor for the main application. The item dump goes to
// outW and logs go to logW. Without explicit loaders, DefaultLoaders is used.
func NewApp(outW, logW io.Writer, cfg *Config, loaders ...config.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	if len(loaders) == 0 {
		loaders = DefaultLoaders()
	}

	return &App{
		outW:    outW,
		logger:  logger,
		config:  cfg,
		loaders: loaders,
	}
}
