package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/openzeppelin/ui-builder-cli/internal/adapter"
	"github.com/openzeppelin/ui-builder-cli/internal/builder"
	"github.com/openzeppelin/ui-builder-cli/internal/network"
)

// Generator renders the per-export source files. It is a pure function of
// its inputs: identical inputs yield byte-identical output.
type Generator struct {
	templates *template.Template
}

// NewGenerator parses the embedded source templates.
func NewGenerator() (*Generator, error) {
	t, err := template.ParseFS(templateFS, "templates/codegen/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing source templates: %w", err)
	}
	return &Generator{templates: t}, nil
}

// templateData is the rendering context shared by all source templates.
type templateData struct {
	Title             string
	AdapterPackage    string
	AdapterExport     string
	FormJSON          string
	SchemaJSON        string
	NetworkJSON       string
	ViteConfig        string
	VitePluginImports string
	HasPluginsSnippet bool
}

// GenerateSource renders the source files for one export: the generated form
// component, app shell, entrypoint, adapter barrel, config module, and the
// vite config with the adapter's snippet merged in.
func (g *Generator) GenerateSource(form *builder.BuilderFormConfig, schema *builder.ContractSchema, net *network.Config, cfg *adapter.AdapterConfig) (map[string]string, error) {
	formJSON, err := json.MarshalIndent(form, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding form config: %w", err)
	}
	schemaJSON, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding contract schema: %w", err)
	}
	netJSON, err := json.MarshalIndent(net, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding network config: %w", err)
	}

	title := form.Title
	if title == "" {
		title = schema.Name
	}

	data := templateData{
		Title:          title,
		AdapterPackage: cfg.PackageName,
		AdapterExport:  adapterExportName(net.Ecosystem),
		FormJSON:       string(formJSON),
		SchemaJSON:     string(schemaJSON),
		NetworkJSON:    string(netJSON),
	}
	if cfg.ViteConfig != "" {
		data.ViteConfig = cfg.ViteConfig
		data.HasPluginsSnippet = strings.Contains(cfg.ViteConfig, "plugins:")
		if strings.Contains(cfg.ViteConfig, "nodePolyfills") {
			data.VitePluginImports = "import { nodePolyfills } from 'vite-plugin-node-polyfills';"
		}
	}

	outputs := map[string]string{
		"src/components/GeneratedForm.tsx": "GeneratedForm.tsx.tmpl",
		"src/App.tsx":                      "App.tsx.tmpl",
		"src/main.tsx":                     "main.tsx.tmpl",
		"src/adapter.ts":                   "adapter.ts.tmpl",
		"src/config.ts":                    "config.ts.tmpl",
		"vite.config.ts":                   "vite.config.ts.tmpl",
	}
	files := make(map[string]string, len(outputs))
	for path, tmpl := range outputs {
		var buf bytes.Buffer
		if err := g.templates.ExecuteTemplate(&buf, tmpl, data); err != nil {
			return nil, fmt.Errorf("rendering %s: %w", path, err)
		}
		files[path] = buf.String()
	}
	return files, nil
}

// adapterExportName maps an ecosystem to the class exported by its adapter
// package.
func adapterExportName(eco network.Ecosystem) string {
	s := string(eco)
	if s == "evm" {
		return "EvmAdapter"
	}
	return strings.ToUpper(s[:1]) + s[1:] + "Adapter"
}
