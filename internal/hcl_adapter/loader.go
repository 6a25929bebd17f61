package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/itemtree/internal/config"
	"github.com/specialistvlad/itemtree/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Extensions implements config.Loader.
func (l *Loader) Extensions() []string {
	return []string{".hcl"}
}

// Load parses every given HCL file and merges the items and expansion rules
// it declares into one model, in file order.
func (l *Loader) Load(ctx context.Context, files ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "file_count", len(files))

	model := config.NewModel()
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		fileModel := config.NewModel()
		for _, block := range root.Items {
			item, err := l.translateItem(ctx, block, file)
			if err != nil {
				return nil, err
			}
			fileModel.Items = append(fileModel.Items, item)
		}
		for _, block := range root.Expands {
			rule, err := config.NewRule(block.Attribute, block.Mode, block.Prefix, block.Stop, block.Delimiter)
			if err != nil {
				return nil, fmt.Errorf("in HCL file %s: %w", file, err)
			}
			fileModel.Rules = append(fileModel.Rules, rule)
		}

		logger.Debug("HCL file translated.", "file", file, "items", fileModel.Count(), "rules", len(fileModel.Rules))
		model.Merge(fileModel)
	}

	logger.Debug("HCL loading complete.", "items", model.Count(), "rules", len(model.Rules))
	return model, nil
}
