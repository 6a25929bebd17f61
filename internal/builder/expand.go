package builder

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/specialistvlad/itemtree/internal/config"
	"github.com/specialistvlad/itemtree/internal/ctxlog"
	"github.com/specialistvlad/itemtree/internal/itemtree"
	"github.com/specialistvlad/itemtree/internal/relpath"
	"golang.org/x/sync/errgroup"
)

// Options tune the expansion pass.
type Options struct {
	// Workers bounds the number of items expanded concurrently. Zero or less
	// means GOMAXPROCS.
	Workers int
	// Strict turns references that climb above the top level into errors.
	Strict bool
}

// Warning records a reference that was clamped to an empty path.
type Warning struct {
	Item      string
	Attribute string
	Err       error
}

func (w Warning) String() string {
	return fmt.Sprintf("%s.%s: %v", w.Item, w.Attribute, w.Err)
}

// Report summarizes an expansion pass.
type Report struct {
	// Items is the number of items visited.
	Items int
	// Rewritten is the number of attribute values that changed.
	Rewritten int
	Warnings  []Warning
}

// Expand rewrites every attribute covered by rules on every item of tree.
// It must only be called once the tree is complete.
func Expand(ctx context.Context, tree *itemtree.Tree, rules []*config.ExpansionRule, opts Options) (*Report, error) {
	logger := ctxlog.FromContext(ctx)

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	for _, rule := range rules {
		if err := rule.Validate(); err != nil {
			return nil, err
		}
	}

	items := tree.Items()
	logger.Debug("Expanding relative references...", "items", len(items), "rules", len(rules), "workers", workers, "strict", opts.Strict)

	var (
		mu     sync.Mutex
		report = &Report{Items: len(items)}
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, it := range items {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			rewritten, warnings, err := expandItem(gctx, it, rules, opts.Strict)

			mu.Lock()
			report.Rewritten += rewritten
			report.Warnings = append(report.Warnings, warnings...)
			mu.Unlock()
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return report, err
	}
	if err := ctx.Err(); err != nil {
		return report, err
	}

	logger.Debug("Expansion finished.", "rewritten", report.Rewritten, "warnings", len(report.Warnings))
	return report, nil
}

// expandItem applies every rule to a single item.
func expandItem(ctx context.Context, it *itemtree.Item, rules []*config.ExpansionRule, strict bool) (int, []Warning, error) {
	ctx, logger := ctxlog.With(ctx, "item", it.ID())

	var (
		rewritten int
		warnings  []Warning
	)
	for _, rule := range rules {
		if err := ctx.Err(); err != nil {
			return rewritten, warnings, err
		}

		rewrite := rewriterFor(rule)
		changed, err := it.RewriteAttribute(rule.Attribute, func(value string, base []string) (string, error) {
			out, err := rewrite(value, base, true)
			if err == nil {
				return out, nil
			}
			if strict || !errors.Is(err, relpath.ErrAboveRoot) {
				return "", err
			}

			logger.Warn("Relative address climbs above the top level; using an empty path.", "attribute", rule.Attribute, "error", err)
			warnings = append(warnings, Warning{Item: it.ID(), Attribute: rule.Attribute, Err: err})
			return rewrite(value, base, false)
		})
		if err != nil {
			return rewritten, warnings, fmt.Errorf("expanding attribute '%s' of item '%s': %w", rule.Attribute, it.ID(), err)
		}
		if changed {
			rewritten++
			value, _ := it.Attr(rule.Attribute)
			logger.Debug("Attribute expanded.", "attribute", rule.Attribute, "mode", rule.Mode.String(), "value", value)
		}
	}
	return rewritten, warnings, nil
}
