package stellar

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openzeppelin/ui-builder-cli/internal/builder"
)

const tokenSpec = `{
  "name": "token",
  "functions": [
    {"name": "transfer", "inputs": [
      {"name": "from", "type": "address"},
      {"name": "to", "type": "address"},
      {"name": "amount", "type": "i128"}
    ]},
    {"name": "balance", "mutability": "readonly", "inputs": [
      {"name": "id", "type": "address"}
    ]}
  ]
}`

func TestLoadContractFromSpec(t *testing.T) {
	a := New()

	schema, err := a.LoadContract(context.Background(), tokenSpec)
	require.NoError(t, err)

	assert.Equal(t, "stellar", schema.Ecosystem)
	assert.Equal(t, "token", schema.Name)
	require.Len(t, schema.Functions, 2)

	writable := a.GetWritableFunctions(schema)
	require.Len(t, writable, 1)
	assert.Equal(t, "transfer", writable[0].Name)
}

func TestIsValidAddress(t *testing.T) {
	a := New()

	tests := []struct {
		name  string
		addr  string
		valid bool
	}{
		{"account", "GBRPYHIL2CI3FNQ4BXLFMNDLFJUNPU2HY3ZMFSHONUCEOASW7QC7OX2H", true},
		{"contract", "CA7QYNF7SOWQ3GLR2BGMZEHXAVIRZA4KVWLTJJFC7MGXUA74P7UJUWDA", true},
		{"evm address", "0x1234567890abcdef1234567890abcdef12345678", false},
		{"garbage", "hello", false},
		{"muxed account rejected", "MBRPYHIL2CI3FNQ4BXLFMNDLFJUNPU2HY3ZMFSHONUCEOASW7QC7OX2HAAAAAAAAAAAAAAAAA", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, a.IsValidAddress(tt.addr))
		})
	}
}

func TestMapParameterTypeToFieldType(t *testing.T) {
	a := New()

	tests := []struct {
		paramType string
		expected  builder.FieldType
	}{
		{"address", builder.FieldTypeAddress},
		{"i128", builder.FieldTypeBigInt},
		{"u32", builder.FieldTypeNumber},
		{"symbol", builder.FieldTypeText},
		{"bytes", builder.FieldTypeBytes},
		{"vec<address>", builder.FieldTypeArray},
		{"map<symbol,u64>", builder.FieldTypeObject},
	}

	for _, tt := range tests {
		t.Run(tt.paramType, func(t *testing.T) {
			assert.Equal(t, tt.expected, a.MapParameterTypeToFieldType(tt.paramType))
		})
	}
}

func TestFormatTransactionData(t *testing.T) {
	a := New()

	fields := []builder.FormField{
		{Name: "from", OriginalParameterType: "address", IsHardcoded: true,
			HardcodedValue: "GBRPYHIL2CI3FNQ4BXLFMNDLFJUNPU2HY3ZMFSHONUCEOASW7QC7OX2H"},
		{Name: "to", OriginalParameterType: "address", Validation: builder.FieldValidation{Required: true}},
		{Name: "amount", OriginalParameterType: "i128", Validation: builder.FieldValidation{Required: true}},
	}

	data, err := a.FormatTransactionData("transfer_address_address_i128", map[string]any{
		"to":     "CA7QYNF7SOWQ3GLR2BGMZEHXAVIRZA4KVWLTJJFC7MGXUA74P7UJUWDA",
		"amount": "1000000",
	}, fields)
	require.NoError(t, err)

	tx, ok := data.(*StellarTransactionData)
	require.True(t, ok)
	assert.Equal(t, "transfer", tx.Function)
	require.Len(t, tx.Args, 3)
	// Parameter order preserved, hardcoded value first.
	assert.Equal(t, "from", tx.Args[0].Name)
	assert.Equal(t, "GBRPYHIL2CI3FNQ4BXLFMNDLFJUNPU2HY3ZMFSHONUCEOASW7QC7OX2H", tx.Args[0].Value)
	assert.Equal(t, "amount", tx.Args[2].Name)
}

func TestFormatTransactionDataBadAddress(t *testing.T) {
	a := New()

	fields := []builder.FormField{
		{Name: "to", OriginalParameterType: "address", Validation: builder.FieldValidation{Required: true}},
	}
	_, err := a.FormatTransactionData("transfer_address", map[string]any{"to": "nope"}, fields)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a valid Stellar address")
}

func TestValidateExecutionConfig(t *testing.T) {
	a := New()

	assert.NoError(t, a.ValidateExecutionConfig(&builder.ExecutionConfig{
		Method: builder.ExecutionMethodEOA,
		EOA:    &builder.EOAConfig{AllowAny: true},
	}))

	err := a.ValidateExecutionConfig(&builder.ExecutionConfig{Method: "warp"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown execution method")
}
