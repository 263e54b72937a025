package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetByName(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		name      string
		ecosystem Ecosystem
		chainID   int64
	}{
		{"ethereum", EcosystemEVM, 1},
		{"local", EcosystemEVM, 1337},
		{"solana-devnet", EcosystemSolana, 0},
		{"stellar-testnet", EcosystemStellar, 0},
		{"midnight-testnet", EcosystemMidnight, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := r.GetByName(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.ecosystem, n.Ecosystem)
			assert.Equal(t, tt.chainID, n.ChainID)
		})
	}
}

func TestGetByNameCaseInsensitive(t *testing.T) {
	r := NewRegistry()
	n, err := r.GetByName("Ethereum")
	require.NoError(t, err)
	assert.Equal(t, "ethereum", n.Name)
}

func TestGetByNameNotFound(t *testing.T) {
	r := NewRegistry()
	_, err := r.GetByName("near")
	assert.ErrorIs(t, err, ErrNetworkNotFound)
}

func TestGetByChainID(t *testing.T) {
	r := NewRegistry()

	n, err := r.GetByChainID(8453)
	require.NoError(t, err)
	assert.Equal(t, "base", n.Name)

	_, err = r.GetByChainID(99999)
	assert.ErrorIs(t, err, ErrNetworkNotFound)
}

func TestByEcosystem(t *testing.T) {
	r := NewRegistry()

	evm := r.ByEcosystem(EcosystemEVM)
	require.NotEmpty(t, evm)
	for _, n := range evm {
		assert.Equal(t, EcosystemEVM, n.Ecosystem)
		assert.NotZero(t, n.ChainID)
	}

	sol := r.ByEcosystem(EcosystemSolana)
	assert.Len(t, sol, 2)
}
