package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/openzeppelin/ui-builder-cli/internal/adapter"
	"github.com/openzeppelin/ui-builder-cli/internal/adapter/catalog"
	"github.com/openzeppelin/ui-builder-cli/internal/config"
	"github.com/openzeppelin/ui-builder-cli/internal/network"
)

// resolveNetwork maps a --network flag value (or the configured default) to
// its registry entry.
func resolveNetwork(name string) (*network.Config, error) {
	if name == "" {
		name = cfg.DefaultNetwork
	}
	net, err := network.NewRegistry().GetByName(name)
	if err != nil {
		return nil, fmt.Errorf("unknown network %q — run `uibuilder networks list` to see all networks", name)
	}
	return net, nil
}

// newAdapters builds the adapter registry for one network, wiring the EVM
// explorer providers with the stored Etherscan API key.
func newAdapters(net *network.Config) *adapter.Registry {
	return catalog.Default(catalog.Options{
		EtherscanAPIKey: cfg.ExplorerAPIKey("etherscan", config.DefaultKeystore()),
		Network:         net,
	})
}

// readSource resolves a contract source argument: "@path" reads a local
// definition file, anything else passes through (address or raw definition).
func readSource(arg string) (string, error) {
	if !strings.HasPrefix(arg, "@") {
		return arg, nil
	}
	data, err := os.ReadFile(strings.TrimPrefix(arg, "@"))
	if err != nil {
		return "", fmt.Errorf("reading definition file: %w", err)
	}
	return string(data), nil
}
