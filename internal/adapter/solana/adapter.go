// Package solana implements the adapter contract for the Solana ecosystem.
// Contracts are described by Anchor-style IDL documents.
package solana

import (
	"context"
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go"

	"github.com/openzeppelin/ui-builder-cli/internal/builder"
)

// IDLFetcher retrieves the published IDL for a program address.
type IDLFetcher interface {
	FetchIDL(ctx context.Context, programID string) ([]byte, error)
}

// Adapter is the Solana ecosystem adapter.
type Adapter struct {
	fetcher IDLFetcher
}

// Option configures the adapter.
type Option func(*Adapter)

// WithIDLFetcher enables address-based loading through the given fetcher.
func WithIDLFetcher(f IDLFetcher) Option {
	return func(a *Adapter) { a.fetcher = f }
}

// New creates a Solana adapter.
func New(opts ...Option) *Adapter {
	a := &Adapter{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// LoadContract loads a program schema from either a program address (the
// published IDL is fetched) or a raw Anchor IDL JSON document.
func (a *Adapter) LoadContract(ctx context.Context, source string) (*builder.ContractSchema, error) {
	source = strings.TrimSpace(source)
	if a.IsValidAddress(source) {
		if a.fetcher == nil {
			return nil, fmt.Errorf("no IDL fetcher configured for program lookup of %s", source)
		}
		raw, err := a.fetcher.FetchIDL(ctx, source)
		if err != nil {
			return nil, fmt.Errorf("fetching IDL for %s: %w", source, err)
		}
		return schemaFromIDL(raw, source)
	}
	return schemaFromIDL([]byte(source), "")
}

// IsValidAddress reports whether addr parses as a base58 Solana public key.
func (a *Adapter) IsValidAddress(addr string) bool {
	_, err := solana.PublicKeyFromBase58(addr)
	return err == nil
}

// GetWritableFunctions returns every instruction: Solana instructions always
// execute against on-chain state, there is no view/pure distinction in an IDL.
func (a *Adapter) GetWritableFunctions(schema *builder.ContractSchema) []builder.ContractFunction {
	out := make([]builder.ContractFunction, 0, len(schema.Functions))
	for _, fn := range schema.Functions {
		if fn.ModifiesState {
			out = append(out, fn)
		}
	}
	return out
}

// GetSupportedExecutionMethods lists the execution methods available to
// Solana forms.
func (a *Adapter) GetSupportedExecutionMethods() []builder.ExecutionMethodDetail {
	return []builder.ExecutionMethodDetail{
		{Method: builder.ExecutionMethodEOA, Name: "Wallet", Description: "Direct execution from a connected wallet"},
		{Method: builder.ExecutionMethodRelayer, Name: "Relayer", Description: "Execution through a relayer service"},
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
		if cfg.EOA.SpecificAddress != "" && !a.IsValidAddress(cfg.EOA.SpecificAddress) {
			return fmt.Errorf("eoa specific address %q is not a valid Solana public key", cfg.EOA.SpecificAddress)
		}
		return nil
	case builder.ExecutionMethodRelayer:
		if cfg.Relayer == nil || cfg.Relayer.ServiceURL == "" {
			return fmt.Errorf("relayer execution config requires a service URL")
		}
		return nil
	case builder.ExecutionMethodMultisig:
		return fmt.Errorf("multisig execution is not supported on Solana")
	default:
		return fmt.Errorf("unknown execution method %q", cfg.Method)
	}
}
