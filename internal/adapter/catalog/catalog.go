// Package catalog assembles the default adapter registry.
package catalog

import (
	"net/http"
	"time"

	"github.com/openzeppelin/ui-builder-cli/internal/adapter"
	"github.com/openzeppelin/ui-builder-cli/internal/adapter/evm"
	"github.com/openzeppelin/ui-builder-cli/internal/adapter/midnight"
	"github.com/openzeppelin/ui-builder-cli/internal/adapter/solana"
	"github.com/openzeppelin/ui-builder-cli/internal/adapter/stellar"
	"github.com/openzeppelin/ui-builder-cli/internal/network"
)

// Options carries the environment-dependent pieces of adapter construction:
// explorer credentials and the network the EVM explorers should target.
type Options struct {
	EtherscanAPIKey string
	Network         *network.Config
}

// Default builds a registry with every supported ecosystem adapter
// installed. EVM explorer providers are wired from the options; without a
// network or API key the EVM adapter still loads contracts from pasted
// definitions.
func Default(opts Options) *adapter.Registry {
	client := &http.Client{Timeout: 15 * time.Second}

	var explorers []evm.ExplorerProvider
	if opts.Network != nil && opts.Network.Ecosystem == network.EcosystemEVM {
		if e := evm.NewEtherscan(opts.Network.ChainID, opts.EtherscanAPIKey, client); e != nil {
			explorers = append(explorers, e)
		}
		if b := evm.NewBlockScout(opts.Network.ExplorerAPIURL, client); b != nil {
			explorers = append(explorers, b)
		}
	}

	reg := adapter.NewRegistry()
	reg.Register(network.EcosystemEVM, evm.New(evm.WithExplorers(explorers...), evm.WithHTTPClient(client)))
	reg.Register(network.EcosystemSolana, solana.New())
	reg.Register(network.EcosystemStellar, stellar.New())
	reg.Register(network.EcosystemMidnight, midnight.New())
	return reg
}
