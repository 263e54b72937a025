// Package stellar implements the adapter contract for Soroban contracts on
// the Stellar network.
package stellar

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/stellar/go/strkey"

	"github.com/openzeppelin/ui-builder-cli/internal/adapter"
	"github.com/openzeppelin/ui-builder-cli/internal/builder"
	"github.com/openzeppelin/ui-builder-cli/internal/network"
)

// SpecFetcher retrieves the contract spec for a deployed contract ID.
type SpecFetcher interface {
	FetchSpec(ctx context.Context, contractID string) ([]byte, error)
}

// Adapter is the Stellar/Soroban ecosystem adapter.
type Adapter struct {
	fetcher SpecFetcher
}

// Option configures the adapter.
type Option func(*Adapter)

// WithSpecFetcher enables contract-ID-based loading through the given
// fetcher.
func WithSpecFetcher(f SpecFetcher) Option {
	return func(a *Adapter) { a.fetcher = f }
}

// New creates a Stellar adapter.
func New(opts ...Option) *Adapter {
	a := &Adapter{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// contractSpec is the JSON contract interface document this adapter
// consumes (the JSON rendering of a Soroban contract spec).
type contractSpec struct {
	Name      string `json:"name"`
	Functions []struct {
		Name       string `json:"name"`
		Mutability string `json:"mutability"` // "" | "readonly"
		Inputs     []struct {
			Name string `json:"name"`
			Type string `json:"type"`
		} `json:"inputs"`
	} `json:"functions"`
}

// LoadContract loads a schema from either a deployed contract ID (C...) or
// a raw contract spec JSON document.
func (a *Adapter) LoadContract(ctx context.Context, source string) (*builder.ContractSchema, error) {
	source = strings.TrimSpace(source)
	if isContractID(source) {
		if a.fetcher == nil {
			return nil, fmt.Errorf("no spec fetcher configured for contract lookup of %s", source)
		}
		raw, err := a.fetcher.FetchSpec(ctx, source)
		if err != nil {
			return nil, fmt.Errorf("fetching contract spec for %s: %w", source, err)
		}
		return schemaFromSpec(raw, source)
	}
	return schemaFromSpec([]byte(source), "")
}

func schemaFromSpec(raw []byte, contractID string) (*builder.ContractSchema, error) {
	var spec contractSpec
	if err := json.Unmarshal(raw, &spec); err != nil {
		return nil, fmt.Errorf("invalid contract spec JSON: %w", err)
	}
	if len(spec.Functions) == 0 {
		return nil, fmt.Errorf("contract spec has no functions")
	}

	name := spec.Name
	if name == "" {
		name = "Contract"
	}
	schema := &builder.ContractSchema{
		Ecosystem: string(network.EcosystemStellar),
		Name:      name,
		Address:   contractID,
	}
	for _, fn := range spec.Functions {
		inputs := make([]builder.FunctionParameter, len(fn.Inputs))
		for i, in := range fn.Inputs {
			inputs[i] = builder.FunctionParameter{
				Name:        in.Name,
				Type:        in.Type,
				DisplayName: builder.DisplayName(in.Name),
			}
		}
		schema.Functions = append(schema.Functions, builder.ContractFunction{
			ID:            builder.FunctionID(fn.Name, inputs),
			Name:          fn.Name,
			DisplayName:   builder.DisplayName(fn.Name),
			Inputs:        inputs,
			ModifiesState: fn.Mutability != "readonly",
		})
	}
	return schema, nil
}

// IsValidAddress accepts both account addresses (G...) and contract
// addresses (C...), validated as strkeys.
func (a *Adapter) IsValidAddress(addr string) bool {
	return strkey.IsValidEd25519PublicKey(addr) || isContractID(addr)
}

func isContractID(s string) bool {
	_, err := strkey.Decode(strkey.VersionByteContract, s)
	return err == nil
}

// GetWritableFunctions filters out readonly functions.
func (a *Adapter) GetWritableFunctions(schema *builder.ContractSchema) []builder.ContractFunction {
	var out []builder.ContractFunction
	for _, fn := range schema.Functions {
		if fn.ModifiesState {
			out = append(out, fn)
		}
	}
	return out
}

// GetSupportedExecutionMethods lists the execution methods available to
// Stellar forms.
func (a *Adapter) GetSupportedExecutionMethods() []builder.ExecutionMethodDetail {
	return []builder.ExecutionMethodDetail{
		{Method: builder.ExecutionMethodEOA, Name: "Wallet", Description: "Direct execution from a connected wallet"},
	}
}

// ValidateExecutionConfig checks the execution config, exhaustively over the
// method tag.
func (a *Adapter) ValidateExecutionConfig(cfg *builder.ExecutionConfig) error {
	if cfg == nil {
		return nil
	}
	switch cfg.Method {
	case builder.ExecutionMethodEOA:
		if cfg.EOA == nil {
			return fmt.Errorf("eoa execution config is missing its eoa section")
		}
		if !cfg.EOA.AllowAny && cfg.EOA.SpecificAddress == "" {
			return fmt.Errorf("eoa execution config must either allow any address or name a specific one")
		}
		if cfg.EOA.SpecificAddress != "" && !strkey.IsValidEd25519PublicKey(cfg.EOA.SpecificAddress) {
			return fmt.Errorf("eoa specific address %q is not a valid Stellar account", cfg.EOA.SpecificAddress)
		}
		return nil
	case builder.ExecutionMethodRelayer:
		return fmt.Errorf("relayer execution is not supported on Stellar")
	case builder.ExecutionMethodMultisig:
		return fmt.Errorf("multisig execution is not supported on Stellar")
	default:
		return fmt.Errorf("unknown execution method %q", cfg.Method)
	}
}

// ExportConfig returns the export-time dependency manifest for Stellar
// projects.
func (a *Adapter) ExportConfig() (*adapter.AdapterConfig, error) {
	return &adapter.AdapterConfig{
		PackageName: "@openzeppelin/ui-adapter-stellar",
		Dependencies: adapter.Dependencies{
			Runtime: map[string]string{
				"@openzeppelin/ui-adapter-stellar": "^1.0.0",
				"@stellar/stellar-sdk":             "^12.3.0",
				"@creit.tech/stellar-wallets-kit":  "^1.2.0",
			},
			Dev: map[string]string{},
			Build: map[string]string{
				"vite-plugin-node-polyfills": "^0.22.0",
			},
		},
		ViteConfig: `  plugins: [react(), nodePolyfills({ globals: { Buffer: true } })],`,
	}, nil
}
