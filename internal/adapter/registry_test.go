package adapter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openzeppelin/ui-builder-cli/internal/adapter"
	"github.com/openzeppelin/ui-builder-cli/internal/adapter/catalog"
	"github.com/openzeppelin/ui-builder-cli/internal/network"
)

func TestDefaultRegistry(t *testing.T) {
	reg := catalog.Default(catalog.Options{})

	for _, eco := range []network.Ecosystem{
		network.EcosystemEVM,
		network.EcosystemSolana,
		network.EcosystemStellar,
		network.EcosystemMidnight,
	} {
		assert.True(t, reg.Has(eco), "missing adapter for %s", eco)

		a, err := reg.Get(eco)
		require.NoError(t, err)
		require.NotNil(t, a)
	}

	assert.Equal(t, []network.Ecosystem{
		network.EcosystemEVM,
		network.EcosystemMidnight,
		network.EcosystemSolana,
		network.EcosystemStellar,
	}, reg.Ecosystems())
}

func TestGetUnknownEcosystem(t *testing.T) {
	reg := adapter.NewRegistry()

	_, err := reg.Get("cosmos")
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrAdapterNotFound)
}

func TestDoubleRegisterPanics(t *testing.T) {
	reg := catalog.Default(catalog.Options{})

	assert.Panics(t, func() {
		reg.Register(network.EcosystemEVM, nil)
	})
}
