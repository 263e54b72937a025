package evm

import "github.com/openzeppelin/ui-builder-cli/internal/adapter"

// ExportConfig returns the export-time dependency manifest for EVM projects:
// the adapter package plus the wagmi/RainbowKit wallet stack it wires up.
func (a *Adapter) ExportConfig() (*adapter.AdapterConfig, error) {
	return &adapter.AdapterConfig{
		PackageName: "@openzeppelin/ui-adapter-evm",
		Dependencies: adapter.Dependencies{
			Runtime: map[string]string{
				"@openzeppelin/ui-adapter-evm": "^1.0.0",
				"wagmi":                        "^2.12.0",
				"viem":                         "^2.21.0",
				"@rainbow-me/rainbowkit":       "^2.1.0",
				"@tanstack/react-query":        "^5.51.0",
			},
			Dev:   map[string]string{},
			Build: map[string]string{},
		},
		ViteConfig: `  define: {
    'process.env': {},
  },`,
	}, nil
}
