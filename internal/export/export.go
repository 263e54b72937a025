// Package export turns a finished form configuration into a downloadable
// project archive: template skeleton, generated source, rewritten
// package.json, zipped.
package export

import (
	"context"
	"fmt"

	"github.com/openzeppelin/ui-builder-cli/internal/adapter"
	"github.com/openzeppelin/ui-builder-cli/internal/builder"
	"github.com/openzeppelin/ui-builder-cli/internal/network"
)

// Options tune one export. The zero value is a production export with a
// derived project name.
type Options struct {
	ProjectName string
	Description string
	Author      string
	License     string
	Environment Environment
	// CompressionLevel is a compress/flate level; nil means the default.
	CompressionLevel *int
	OnProgress       ProgressFunc
}

// Exporter runs the export pipeline against a fixed adapter registry.
type Exporter struct {
	registry *adapter.Registry
	packages *PackageManager
	codegen  *Generator
}

// NewExporter creates an exporter over the adapter registry.
func NewExporter(reg *adapter.Registry) (*Exporter, error) {
	gen, err := NewGenerator()
	if err != nil {
		return nil, err
	}
	return &Exporter{
		registry: reg,
		packages: NewPackageManager(reg),
		codegen:  gen,
	}, nil
}

// ExportApp builds the complete project archive for one form. It has no side
// effects outside the returned archive. A missing function, missing adapter,
// or broken adapter export config aborts the export before any file is
// produced.
func (e *Exporter) ExportApp(ctx context.Context, form *builder.BuilderFormConfig, schema *builder.ContractSchema, net *network.Config, opts Options) (*Archive, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if form == nil || schema == nil || net == nil {
		return nil, fmt.Errorf("export requires a form config, contract schema, and network")
	}
	if _, err := schema.FunctionByID(form.FunctionID); err != nil {
		return nil, fmt.Errorf("export target: %w", err)
	}

	a, err := e.registry.Get(net.Ecosystem)
	if err != nil {
		return nil, err
	}
	cfg, err := a.ExportConfig()
	if err != nil {
		return nil, fmt.Errorf("resolving %s adapter export config: %w", net.Ecosystem, err)
	}

	if form.Execution != nil {
		if err := a.ValidateExecutionConfig(form.Execution); err != nil {
			return nil, fmt.Errorf("execution config: %w", err)
		}
	}

	files, err := baseProjectFiles()
	if err != nil {
		return nil, err
	}

	source, err := e.codegen.GenerateSource(form, schema, net, cfg)
	if err != nil {
		return nil, err
	}
	for path, content := range source {
		files[path] = []byte(content)
	}

	files["package.json"], err = e.packages.UpdatePackageJSON(files["package.json"], form, net.Ecosystem, form.FunctionID, opts)
	if err != nil {
		return nil, err
	}

	projectName := opts.ProjectName
	if projectName == "" {
		projectName = ProjectName(form.FunctionID)
	}
	return CreateZipFile(files, projectName, &ZipOptions{
		CompressionLevel: opts.CompressionLevel,
		OnProgress:       opts.OnProgress,
	})
}
