package evm

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openzeppelin/ui-builder-cli/internal/builder"
)

const erc20ABI = `[
  {"type":"function","name":"transfer","stateMutability":"nonpayable",
   "inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],
   "outputs":[{"name":"","type":"bool"}]},
  {"type":"function","name":"balanceOf","stateMutability":"view",
   "inputs":[{"name":"owner","type":"address"}],
   "outputs":[{"name":"","type":"uint256"}]},
  {"type":"event","name":"Transfer","inputs":[]}
]`

func TestLoadContractFromRawABI(t *testing.T) {
	a := New()

	schema, err := a.LoadContract(context.Background(), erc20ABI)
	require.NoError(t, err)

	assert.Equal(t, "evm", schema.Ecosystem)
	require.Len(t, schema.Functions, 2) // events excluded

	transfer, err := schema.FunctionByID("transfer_address_uint256")
	require.NoError(t, err)
	assert.True(t, transfer.ModifiesState)
	assert.Equal(t, "Transfer", transfer.DisplayName)
	require.Len(t, transfer.Inputs, 2)
	assert.Equal(t, "uint256", transfer.Inputs[1].Type)

	balanceOf, err := schema.FunctionByID("balanceOf_address")
	require.NoError(t, err)
	assert.False(t, balanceOf.ModifiesState)
}

func TestLoadContractFromArtifact(t *testing.T) {
	a := New()

	artifact := fmt.Sprintf(`{"contractName":"MyToken","abi":%s,"bytecode":"0x6080"}`, erc20ABI)
	schema, err := a.LoadContract(context.Background(), artifact)
	require.NoError(t, err)
	assert.Equal(t, "MyToken", schema.Name)
	assert.Len(t, schema.Functions, 2)
}

func TestLoadContractBadJSON(t *testing.T) {
	a := New()

	_, err := a.LoadContract(context.Background(), `{"not":"an abi"}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "abi")
}

func TestLoadContractFromExplorer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"status":"1","message":"OK","result":%q}`, erc20ABI)
	}))
	defer srv.Close()

	a := New(WithExplorers(NewBlockScout(srv.URL, srv.Client())))

	schema, err := a.LoadContract(context.Background(), "0x1234567890abcdef1234567890abcdef12345678")
	require.NoError(t, err)
	assert.Equal(t, "0x1234567890abcdef1234567890abcdef12345678", schema.Address)
	assert.Len(t, schema.Functions, 2)
}

func TestLoadContractExplorerFallback(t *testing.T) {
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"0","message":"NOTOK","result":"Contract source code not verified"}`)
	}))
	defer bad.Close()
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"status":"1","message":"OK","result":%q}`, erc20ABI)
	}))
	defer good.Close()

	a := New(WithExplorers(
		NewBlockScout(bad.URL, bad.Client()),
		NewBlockScout(good.URL, good.Client()),
	))

	schema, err := a.LoadContract(context.Background(), "0x1234567890abcdef1234567890abcdef12345678")
	require.NoError(t, err)
	assert.Len(t, schema.Functions, 2)
}

func TestLoadContractNotVerified(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"0","message":"NOTOK","result":"Contract source code not verified"}`)
	}))
	defer srv.Close()

	a := New(WithExplorers(NewBlockScout(srv.URL, srv.Client())))

	_, err := a.LoadContract(context.Background(), "0x1234567890abcdef1234567890abcdef12345678")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not verified")
}

func TestGetWritableFunctions(t *testing.T) {
	a := New()

	schema, err := a.LoadContract(context.Background(), erc20ABI)
	require.NoError(t, err)

	writable := a.GetWritableFunctions(schema)
	require.Len(t, writable, 1)
	assert.Equal(t, "transfer", writable[0].Name)
}

func TestIsValidAddress(t *testing.T) {
	a := New()

	assert.True(t, a.IsValidAddress("0x1234567890abcdef1234567890abcdef12345678"))
	assert.True(t, a.IsValidAddress("1234567890abcdef1234567890abcdef12345678"))
	assert.False(t, a.IsValidAddress("0x1234"))
	assert.False(t, a.IsValidAddress("GBRPYHIL2CI3FNQ4BXLFMNDLFJUNPU2HY3ZMFSHONUCEOASW7QC7OX2H"))
}

func TestValidateExecutionConfig(t *testing.T) {
	a := New()

	tests := []struct {
		name    string
		cfg     *builder.ExecutionConfig
		wantErr string
	}{
		{"nil config is valid", nil, ""},
		{
			"eoa allow any",
			&builder.ExecutionConfig{Method: builder.ExecutionMethodEOA, EOA: &builder.EOAConfig{AllowAny: true}},
			"",
		},
		{
			"eoa restricted without address",
			&builder.ExecutionConfig{Method: builder.ExecutionMethodEOA, EOA: &builder.EOAConfig{AllowAny: false}},
			"specific",
		},
		{
			"eoa restricted with address",
			&builder.ExecutionConfig{Method: builder.ExecutionMethodEOA, EOA: &builder.EOAConfig{
				SpecificAddress: "0x1234567890abcdef1234567890abcdef12345678"}},
			"",
		},
		{
			"relayer without url",
			&builder.ExecutionConfig{Method: builder.ExecutionMethodRelayer, Relayer: &builder.RelayerConfig{}},
			"service URL",
		},
		{
			"multisig with bad address",
			&builder.ExecutionConfig{Method: builder.ExecutionMethodMultisig, Multisig: &builder.MultisigConfig{SafeAddress: "nope"}},
			"not a valid",
		},
		{
			"unknown method is a hard error",
			&builder.ExecutionConfig{Method: "teleport"},
			"unknown execution method",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := a.ValidateExecutionConfig(tt.cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
