package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openzeppelin/ui-builder-cli/internal/adapter/evm"
	"github.com/openzeppelin/ui-builder-cli/internal/adapter/solana"
	"github.com/openzeppelin/ui-builder-cli/internal/builder"
	"github.com/openzeppelin/ui-builder-cli/internal/network"
)

func transferFixture() (*builder.BuilderFormConfig, *builder.ContractSchema, *network.Config) {
	schema := &builder.ContractSchema{
		Ecosystem: "evm",
		Name:      "Token",
		Functions: []builder.ContractFunction{{
			ID:          "transfer_address_uint256",
			Name:        "transfer",
			DisplayName: "Transfer",
			Inputs: []builder.FunctionParameter{
				{Name: "to", Type: "address", DisplayName: "To"},
				{Name: "amount", Type: "uint256", DisplayName: "Amount"},
			},
			ModifiesState: true,
		}},
	}
	form := &builder.BuilderFormConfig{
		FunctionID: "transfer_address_uint256",
		Title:      "Transfer",
		Fields: []builder.FormField{
			{ID: "to", Name: "to", Label: "To", Type: builder.FieldTypeAddress,
				Validation: builder.FieldValidation{Required: true}, OriginalParameterType: "address"},
			{ID: "amount", Name: "amount", Label: "Amount", Type: builder.FieldTypeBigInt,
				Validation: builder.FieldValidation{Required: true}, OriginalParameterType: "uint256"},
		},
		Layout:         builder.LayoutConfig{Columns: 1, Spacing: "normal"},
		ValidationMode: "onChange",
	}
	net := &network.Config{
		Name: "local", DisplayName: "Local Node", Ecosystem: network.EcosystemEVM,
		ChainID: 1337, NativeCurrency: "ETH", RPCURL: "http://localhost:8545",
	}
	return form, schema, net
}

func TestGenerateSource(t *testing.T) {
	gen, err := NewGenerator()
	require.NoError(t, err)

	form, schema, net := transferFixture()
	cfg, err := evm.New().ExportConfig()
	require.NoError(t, err)

	files, err := gen.GenerateSource(form, schema, net, cfg)
	require.NoError(t, err)

	for _, path := range []string{
		"src/components/GeneratedForm.tsx",
		"src/App.tsx",
		"src/main.tsx",
		"src/adapter.ts",
		"src/config.ts",
		"vite.config.ts",
	} {
		assert.Contains(t, files, path)
	}

	assert.Contains(t, files["src/adapter.ts"], "@openzeppelin/ui-adapter-evm")
	assert.Contains(t, files["src/adapter.ts"], "new EvmAdapter(networkConfig)")
	assert.Contains(t, files["src/config.ts"], `"transfer_address_uint256"`)
	assert.Contains(t, files["src/App.tsx"], "<h1>Transfer</h1>")
	assert.Contains(t, files["vite.config.ts"], "'process.env': {}")
	// The EVM snippet carries no plugins entry; the default one is kept.
	assert.Contains(t, files["vite.config.ts"], "plugins: [react()],")
}

func TestGenerateSourceIdempotent(t *testing.T) {
	gen, err := NewGenerator()
	require.NoError(t, err)

	form, schema, net := transferFixture()
	cfg, err := evm.New().ExportConfig()
	require.NoError(t, err)

	first, err := gen.GenerateSource(form, schema, net, cfg)
	require.NoError(t, err)
	second, err := gen.GenerateSource(form, schema, net, cfg)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateSourceSolanaViteSnippet(t *testing.T) {
	gen, err := NewGenerator()
	require.NoError(t, err)

	form, schema, net := transferFixture()
	schema.Ecosystem = "solana"
	net = &network.Config{Name: "solana", Ecosystem: network.EcosystemSolana, NativeCurrency: "SOL"}

	cfg, err := solana.New().ExportConfig()
	require.NoError(t, err)

	files, err := gen.GenerateSource(form, schema, net, cfg)
	require.NoError(t, err)

	vite := files["vite.config.ts"]
	assert.Contains(t, vite, "import { nodePolyfills } from 'vite-plugin-node-polyfills';")
	assert.Contains(t, vite, "nodePolyfills({ globals: { Buffer: true } })")
	// The snippet supplies the plugins entry; the default one is suppressed.
	assert.NotContains(t, vite, "plugins: [react()],")

	assert.Contains(t, files["src/adapter.ts"], "new SolanaAdapter(networkConfig)")
}
