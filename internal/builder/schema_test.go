package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFunctionID(t *testing.T) {
	tests := []struct {
		name     string
		fn       string
		inputs   []FunctionParameter
		expected string
	}{
		{"no params", "totalSupply", nil, "totalSupply"},
		{
			"one param",
			"balanceOf",
			[]FunctionParameter{{Name: "owner", Type: "address"}},
			"balanceOf_address",
		},
		{
			"two params",
			"transfer",
			[]FunctionParameter{{Name: "to", Type: "address"}, {Name: "amount", Type: "uint256"}},
			"transfer_address_uint256",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FunctionID(tt.fn, tt.inputs))
		})
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"transfer", "Transfer"},
		{"transferFrom", "Transfer From"},
		{"set_fee_basis_points", "Set Fee Basis Points"},
		{"mintNFT", "Mint NFT"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, DisplayName(tt.in))
		})
	}
}

func TestFunctionByID(t *testing.T) {
	schema := &ContractSchema{
		Ecosystem: "evm",
		Name:      "Token",
		Functions: []ContractFunction{
			{ID: "transfer_address_uint256", Name: "transfer"},
			{ID: "approve_address_uint256", Name: "approve"},
		},
	}

	fn, err := schema.FunctionByID("approve_address_uint256")
	require.NoError(t, err)
	assert.Equal(t, "approve", fn.Name)

	_, err = schema.FunctionByID("burn")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFunctionNotFound)
}

func TestHasFieldType(t *testing.T) {
	cfg := &BuilderFormConfig{
		Fields: []FormField{
			{Name: "to", Type: FieldTypeAddress},
			{Name: "deadline", Type: FieldTypeDate, IsHidden: true, IsHardcoded: true},
		},
	}

	assert.True(t, cfg.HasFieldType(FieldTypeAddress))
	// Hidden+hardcoded fields render no control, so the date-picker
	// dependency must not be pulled in for them.
	assert.False(t, cfg.HasFieldType(FieldTypeDate))
	assert.False(t, cfg.HasFieldType(FieldTypeCheckbox))
}
