package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/itemtree/internal/config"
	"github.com/specialistvlad/itemtree/internal/ctxlog"
	"github.com/specialistvlad/itemtree/internal/fsutil"
)

// Load discovers all item files below the configured paths and merges them,
// in discovery order, into a single model.
func (a *App) Load(ctx context.Context) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	byExt := make(map[string]config.Loader)
	var exts []string
	for _, l := range a.loaders {
		for _, ext := range l.Extensions() {
			byExt[ext] = l
			exts = append(exts, ext)
		}
	}

	files, err := fsutil.FindFiles(a.config.Paths, exts...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered item files.", "count", len(files))
	if len(files) == 0 {
		return nil, fmt.Errorf("no item files (%s) found in %s", strings.Join(exts, ", "), strings.Join(a.config.Paths, ", "))
	}

	model := config.NewModel()
	for _, file := range files {
		loader := byExt[strings.ToLower(filepath.Ext(file))]
		fileModel, err := loader.Load(ctx, file)
		if err != nil {
			return nil, err
		}
		model.Merge(fileModel)
	}

	logger.Info("Item configuration loaded.", "files", len(files), "items", model.Count(), "rules", len(model.Rules))
	return model, nil
}
