package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/itemtree/internal/builder"
	"github.com/specialistvlad/itemtree/internal/config"
	"github.com/specialistvlad/itemtree/internal/ctxlog"
	"github.com/specialistvlad/itemtree/internal/itemtree"
)

// Run loads the configuration, builds the item tree, expands relative
// references and writes the resulting tree to the output writer.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	tree, err := a.Prepare(ctx)
	if err != nil {
		return err
	}

	if err := a.dump(tree); err != nil {
		return fmt.Errorf("failed to write items: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// Prepare runs the load, build and expand phases and returns the finished
// tree.
func (a *App) Prepare(ctx context.Context) (*itemtree.Tree, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	model, err := a.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	tree, err := builder.Build(ctx, model)
	if err != nil {
		return nil, fmt.Errorf("failed to build item tree: %w", err)
	}

	rules := config.EffectiveRules(model.Rules)
	report, err := builder.Expand(ctx, tree, rules, builder.Options{
		Workers: a.config.Workers,
		Strict:  a.config.StrictPaths,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to expand relative references: %w", err)
	}

	a.logger.Info("Relative references expanded.", "items", report.Items, "rewritten", report.Rewritten, "warnings", len(report.Warnings))
	return tree, nil
}
