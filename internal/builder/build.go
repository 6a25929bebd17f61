package builder

import (
	"context"
	"fmt"

	"github.com/specialistvlad/itemtree/internal/config"
	"github.com/specialistvlad/itemtree/internal/ctxlog"
	"github.com/specialistvlad/itemtree/internal/itemtree"
)

// Build creates an item tree from the model.
func Build(ctx context.Context, model *config.Model) (*itemtree.Tree, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Building item tree from config model...", "configured_items", model.Count())

	tree := itemtree.New()
	if err := addItems(tree, nil, model.Items); err != nil {
		return nil, err
	}

	logger.Debug("Item tree built.", "items", tree.Len())
	return tree, nil
}

func addItems(tree *itemtree.Tree, parent *itemtree.Item, items []*config.Item) error {
	for _, cfg := range items {
		it, err := tree.Add(parent, cfg.Name, cfg.Attributes)
		if err != nil {
			if cfg.Source != "" {
				return fmt.Errorf("failed to add item declared in %s: %w", cfg.Source, err)
			}
			return fmt.Errorf("failed to add item: %w", err)
		}
		if err := addItems(tree, it, cfg.Children); err != nil {
			return err
		}
	}
	return nil
}
