// Package hclloader parses graph files written in HCL into the
// format-agnostic config model.
package hclloader

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/seedgridgo/internal/config"
	"github.com/vk/seedgridgo/internal/ctxlog"
	"github.com/vk/seedgridgo/internal/fsutil"
)

// Loader is the HCL-specific graph loader.
type Loader struct{}

// NewLoader creates a new HCL graph loader.
func NewLoader() *Loader {
	return &Loader{}
}

// nodeArgs represents the content of the 'arguments' block within a node.
type nodeArgs struct {
	Body hcl.Body `hcl:",remain"`
}

// nodeBlock represents a `node` block from a user's graph file.
type nodeBlock struct {
	TypeKey     string    `hcl:"node_type,label"`
	Name        string    `hcl:"instance_name,label"`
	Arguments   *nodeArgs `hcl:"arguments,block"`
	SeedControl string    `hcl:"control_after_generate,optional"`
}

// fileRoot decodes the top-level blocks of a graph file.
type fileRoot struct {
	Nodes  []*nodeBlock `hcl:"node,block"`
	Remain hcl.Body     `hcl:",remain"`
}

// Load parses path (a single .hcl file, or a directory searched
// recursively for .hcl files) into the config model. Node instances keep
// their file order, which is also the host's execution order.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL graph loader started.", "path", path)

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to access graph path %s: %w", path, err)
	}

	files := []string{path}
	if info.IsDir() {
		files, err = fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("failed to walk graph directory %s: %w", path, err)
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl graph files found in %s", path)
	}
	logger.Debug("Discovered graph files.", "count", len(files))

	parser := hclparse.NewParser()
	model := &config.Model{}

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse graph file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode graph file %s: %w", file, diags)
		}

		for _, blk := range root.Nodes {
			n, err := translateNode(blk)
			if err != nil {
				return nil, fmt.Errorf("in %s: %w", file, err)
			}
			model.Nodes = append(model.Nodes, n)
		}
	}

	logger.Debug("Graph loading complete.", "nodes", len(model.Nodes))
	return model, nil
}

// translateNode converts a decoded HCL block into the format-agnostic node
// model, validating the seed control policy and flattening the arguments
// body into raw expressions.
func translateNode(blk *nodeBlock) (*config.Node, error) {
	control := blk.SeedControl
	if control == "" {
		control = config.ControlFixed
	}
	if !config.ValidSeedControl(control) {
		return nil, fmt.Errorf("node %s.%s: unknown control_after_generate %q (valid: %v)",
			blk.TypeKey, blk.Name, blk.SeedControl, config.SeedControls)
	}

	n := &config.Node{
		TypeKey:     blk.TypeKey,
		Name:        blk.Name,
		SeedControl: control,
	}

	if blk.Arguments != nil && blk.Arguments.Body != nil {
		attrs, diags := blk.Arguments.Body.JustAttributes()
		if diags.HasErrors() {
			return nil, fmt.Errorf("node %s.%s: invalid arguments block: %w", blk.TypeKey, blk.Name, diags)
		}
		n.Arguments = make(map[string]hcl.Expression, len(attrs))
		for name, attr := range attrs {
			n.Arguments[name] = attr.Expr
		}
	}

	return n, nil
}
