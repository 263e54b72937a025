package export

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openzeppelin/ui-builder-cli/internal/adapter/catalog"
	"github.com/openzeppelin/ui-builder-cli/internal/builder"
	"github.com/openzeppelin/ui-builder-cli/internal/network"
)

func newPackageManager() *PackageManager {
	return NewPackageManager(catalog.Default(catalog.Options{}))
}

func templatePackageJSON(t *testing.T) []byte {
	t.Helper()
	files, err := baseProjectFiles()
	require.NoError(t, err)
	raw, ok := files["package.json"]
	require.True(t, ok)
	return raw
}

func TestDependencies(t *testing.T) {
	m := newPackageManager()

	form := &builder.BuilderFormConfig{FunctionID: "transfer_address_uint256"}

	deps, err := m.Dependencies(form, network.EcosystemEVM)
	require.NoError(t, err)
	assert.Equal(t, "^18.3.1", deps["react"])
	assert.Contains(t, deps, "@openzeppelin/ui-renderer")
	assert.Contains(t, deps, "@openzeppelin/ui-types")
	assert.Contains(t, deps, "@openzeppelin/ui-adapter-evm")
	assert.Contains(t, deps, "wagmi")
	assert.NotContains(t, deps, "@openzeppelin/ui-adapter-solana")
}

func TestDependenciesUnknownEcosystem(t *testing.T) {
	m := newPackageManager()

	deps, err := m.Dependencies(&builder.BuilderFormConfig{}, "cosmos")
	require.NoError(t, err)
	assert.Len(t, deps, len(coreDependencies))
	for name := range coreDependencies {
		assert.Contains(t, deps, name)
	}
}

func TestDependenciesDateField(t *testing.T) {
	m := newPackageManager()

	form := &builder.BuilderFormConfig{
		Fields: []builder.FormField{{Name: "deadline", Type: builder.FieldTypeDate}},
	}
	deps, err := m.Dependencies(form, network.EcosystemEVM)
	require.NoError(t, err)
	assert.Contains(t, deps, "react-datepicker")

	devDeps, err := m.DevDependencies(form, network.EcosystemEVM)
	require.NoError(t, err)
	assert.Contains(t, devDeps, "@types/react-datepicker")
}

func TestPatchedDependencies(t *testing.T) {
	m := newPackageManager()

	patches, err := m.PatchedDependencies(network.EcosystemSolana)
	require.NoError(t, err)
	assert.Equal(t, "patches/@solana__web3.js@1.95.3.patch", patches["@solana/web3.js@1.95.3"])

	patches, err = m.PatchedDependencies(network.EcosystemEVM)
	require.NoError(t, err)
	assert.Empty(t, patches)
}

func TestUpdatePackageJSON(t *testing.T) {
	m := newPackageManager()
	form := &builder.BuilderFormConfig{FunctionID: "transfer_address_uint256"}

	out, err := m.UpdatePackageJSON(templatePackageJSON(t), form, network.EcosystemEVM,
		"transfer_address_uint256", Options{Author: "Ada", License: "MIT"})
	require.NoError(t, err)

	var pkg packageJSON
	require.NoError(t, json.Unmarshal(out, &pkg))

	assert.Equal(t, "transfer-address-uint256-form", pkg.Name)
	assert.Equal(t, "Ada", pkg.Author)
	assert.Equal(t, "MIT", pkg.License)
	assert.Contains(t, pkg.Dependencies, "@openzeppelin/ui-adapter-evm")

	for _, script := range []string{"dev", "build", "update-renderer", "check-deps"} {
		assert.Contains(t, pkg.Scripts, script)
	}

	// EVM contributes no patches; no pnpm section is emitted.
	assert.Nil(t, pkg.Pnpm)
}

func TestUpdatePackageJSONVersionPolicy(t *testing.T) {
	m := newPackageManager()
	form := &builder.BuilderFormConfig{FunctionID: "transfer"}

	tests := []struct {
		name     string
		env      Environment
		renderer string
		adapter  string
	}{
		{"local", EnvLocal, "file:../../packages/renderer", "workspace:*"},
		{"staging", EnvStaging, "^1.0.0", "rc"},
		{"production", EnvProduction, "^1.0.0", "^1.0.0"},
		{"default is production", "", "^1.0.0", "^1.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := m.UpdatePackageJSON(templatePackageJSON(t), form,
				network.EcosystemEVM, "transfer", Options{Environment: tt.env})
			require.NoError(t, err)

			var pkg packageJSON
			require.NoError(t, json.Unmarshal(out, &pkg))

			assert.Equal(t, tt.renderer, pkg.Dependencies["@openzeppelin/ui-renderer"])
			assert.Equal(t, tt.adapter, pkg.Dependencies["@openzeppelin/ui-adapter-evm"])
			// External packages are never rewritten.
			assert.Equal(t, "^18.3.1", pkg.Dependencies["react"])
			assert.Equal(t, "^5.4.11", pkg.DevDependencies["vite"])
		})
	}
}

func TestUpdatePackageJSONSolanaPatches(t *testing.T) {
	m := newPackageManager()
	form := &builder.BuilderFormConfig{FunctionID: "initialize"}

	out, err := m.UpdatePackageJSON(templatePackageJSON(t), form,
		network.EcosystemSolana, "initialize", Options{})
	require.NoError(t, err)

	var pkg packageJSON
	require.NoError(t, json.Unmarshal(out, &pkg))

	require.NotNil(t, pkg.Pnpm)
	assert.Equal(t, "patches/@solana__web3.js@1.95.3.patch",
		pkg.Pnpm.PatchedDependencies["@solana/web3.js@1.95.3"])
}

func TestProjectName(t *testing.T) {
	tests := []struct {
		id       string
		expected string
	}{
		{"transfer_address_uint256", "transfer-address-uint256-form"},
		{"pause", "pause-form"},
		{"batch_vec<u64>", "batch-vec-u64-form"},
		{"", "contract-form"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.expected, ProjectName(tt.id))
		})
	}
}
