package network

import (
	"errors"
	"strings"
)

// ErrNetworkNotFound is returned when a network is not in the registry.
var ErrNetworkNotFound = errors.New("network not found")

// Ecosystem identifies a blockchain platform family. It is the key for
// adapter and dependency lookup throughout the export pipeline.
type Ecosystem string

const (
	EcosystemEVM      Ecosystem = "evm"
	EcosystemSolana   Ecosystem = "solana"
	EcosystemStellar  Ecosystem = "stellar"
	EcosystemMidnight Ecosystem = "midnight"
)

// Config holds all metadata for a single network.
type Config struct {
	Name           string    `json:"name"`
	DisplayName    string    `json:"display_name"`
	Ecosystem      Ecosystem `json:"ecosystem"`
	ChainID        int64     `json:"chain_id"` // 0 for non-EVM
	NativeCurrency string    `json:"native_currency"`
	RPCURL         string    `json:"rpc_url"`
	ExplorerURL    string    `json:"explorer_url"`
	// Etherscan-compatible API endpoint used for contract/ABI lookup
	// (EVM only; empty for ecosystems without one).
	ExplorerAPIURL string `json:"explorer_api_url,omitempty"`
	IsTestnet      bool   `json:"is_testnet"`
}

// Registry is the network registry.
type Registry struct {
	networks []Config
	byName   map[string]*Config
	byChain  map[int64]*Config
}

// NewRegistry creates the full registry of supported networks.
func NewRegistry() *Registry {
	networks := allNetworks()
	r := &Registry{
		networks: networks,
		byName:   make(map[string]*Config, len(networks)),
		byChain:  make(map[int64]*Config, len(networks)),
	}
	for i := range r.networks {
		n := &r.networks[i]
		r.byName[n.Name] = n
		if n.ChainID != 0 {
			r.byChain[n.ChainID] = n
		}
	}
	return r
}

// All returns every network in the registry.
func (r *Registry) All() []Config {
	return r.networks
}

// ByEcosystem returns the networks belonging to one ecosystem.
func (r *Registry) ByEcosystem(eco Ecosystem) []Config {
	var out []Config
	for _, n := range r.networks {
		if n.Ecosystem == eco {
			out = append(out, n)
		}
	}
	return out
}

// GetByName finds a network by its slug name (e.g. "ethereum", "solana-devnet").
func (r *Registry) GetByName(name string) (*Config, error) {
	n, ok := r.byName[strings.ToLower(name)]
	if !ok {
		return nil, ErrNetworkNotFound
	}
	return n, nil
}

// GetByChainID finds an EVM network by its numeric chain ID.
func (r *Registry) GetByChainID(id int64) (*Config, error) {
	n, ok := r.byChain[id]
	if !ok {
		return nil, ErrNetworkNotFound
	}
	return n, nil
}

// --- network data ---

func allNetworks() []Config {
	return []Config{
		// EVM
		{
			Name: "ethereum", DisplayName: "Ethereum", Ecosystem: EcosystemEVM,
			ChainID: 1, NativeCurrency: "ETH",
			RPCURL:         "https://ethereum-rpc.publicnode.com",
			ExplorerURL:    "https://etherscan.io",
			ExplorerAPIURL: "https://eth.blockscout.com/api",
		},
		{
			Name: "sepolia", DisplayName: "Sepolia", Ecosystem: EcosystemEVM,
			ChainID: 11155111, NativeCurrency: "ETH",
			RPCURL:         "https://rpc.sepolia.org",
			ExplorerURL:    "https://sepolia.etherscan.io",
			ExplorerAPIURL: "https://eth-sepolia.blockscout.com/api",
			IsTestnet:      true,
		},
		{
			Name: "polygon", DisplayName: "Polygon", Ecosystem: EcosystemEVM,
			ChainID: 137, NativeCurrency: "POL",
			RPCURL:         "https://polygon-bor-rpc.publicnode.com",
			ExplorerURL:    "https://polygonscan.com",
			ExplorerAPIURL: "https://polygon.blockscout.com/api",
		},
		{
			Name: "base", DisplayName: "Base", Ecosystem: EcosystemEVM,
			ChainID: 8453, NativeCurrency: "ETH",
			RPCURL:         "https://mainnet.base.org",
			ExplorerURL:    "https://basescan.org",
			ExplorerAPIURL: "https://base.blockscout.com/api",
		},
		{
			Name: "arbitrum", DisplayName: "Arbitrum", Ecosystem: EcosystemEVM,
			ChainID: 42161, NativeCurrency: "ETH",
			RPCURL:         "https://arb1.arbitrum.io/rpc",
			ExplorerURL:    "https://arbiscan.io",
			ExplorerAPIURL: "https://arbitrum.blockscout.com/api",
		},
		{
			Name: "local", DisplayName: "Local Node", Ecosystem: EcosystemEVM,
			ChainID: 1337, NativeCurrency: "ETH",
			RPCURL:      "http://127.0.0.1:8545",
			ExplorerURL: "",
			IsTestnet:   true,
		},
		// Solana
		{
			Name: "solana", DisplayName: "Solana", Ecosystem: EcosystemSolana,
			NativeCurrency: "SOL",
			RPCURL:         "https://api.mainnet-beta.solana.com",
			ExplorerURL:    "https://solscan.io",
		},
		{
			Name: "solana-devnet", DisplayName: "Solana Devnet", Ecosystem: EcosystemSolana,
			NativeCurrency: "SOL",
			RPCURL:         "https://api.devnet.solana.com",
			ExplorerURL:    "https://solscan.io/?cluster=devnet",
			IsTestnet:      true,
		},
		// Stellar
		{
			Name: "stellar", DisplayName: "Stellar", Ecosystem: EcosystemStellar,
			NativeCurrency: "XLM",
			RPCURL:         "https://soroban-mainnet.stellar.org",
			ExplorerURL:    "https://stellar.expert/explorer/public",
		},
		{
			Name: "stellar-testnet", DisplayName: "Stellar Testnet", Ecosystem: EcosystemStellar,
			NativeCurrency: "XLM",
			RPCURL:         "https://soroban-testnet.stellar.org",
			ExplorerURL:    "https://stellar.expert/explorer/testnet",
			IsTestnet:      true,
		},
		// Midnight
		{
			Name: "midnight-testnet", DisplayName: "Midnight Testnet", Ecosystem: EcosystemMidnight,
			NativeCurrency: "tDUST",
			RPCURL:         "https://rpc.testnet-02.midnight.network",
			ExplorerURL:    "https://explorer.testnet-02.midnight.network",
			IsTestnet:      true,
		},
	}
}
