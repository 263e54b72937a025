package solana

import "github.com/openzeppelin/ui-builder-cli/internal/adapter"

// ExportConfig returns the export-time dependency manifest for Solana
// projects. @solana/web3.js ships Node-flavored builds, so the exported
// project carries a browser-compat patch and polyfill plumbing.
func (a *Adapter) ExportConfig() (*adapter.AdapterConfig, error) {
	return &adapter.AdapterConfig{
		PackageName: "@openzeppelin/ui-adapter-solana",
		Dependencies: adapter.Dependencies{
			Runtime: map[string]string{
				"@openzeppelin/ui-adapter-solana": "^1.0.0",
				"@solana/web3.js":                 "1.95.3",
				"@solana/wallet-adapter-base":     "^0.9.23",
				"@solana/wallet-adapter-react":    "^0.15.35",
				"@solana/wallet-adapter-react-ui": "^0.9.35",
			},
			Dev: map[string]string{},
			Build: map[string]string{
				"vite-plugin-node-polyfills": "^0.22.0",
			},
		},
		PatchedDependencies: map[string]string{
			"@solana/web3.js@1.95.3": "patches/@solana__web3.js@1.95.3.patch",
		},
		ViteConfig: `  plugins: [react(), nodePolyfills({ globals: { Buffer: true } })],`,
	}, nil
}
