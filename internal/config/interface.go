// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package config

import (
	"context"
)

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Extensions lists the file extensions (with leading dot) the loader
	// understands.
	Extensions() []string

	// Load reads the given files and translates them into the
	// format-agnostic model.
	Load(ctx context.Context, files ...string) (*Model, error)
}
