// Package evm implements the adapter contract for EVM-compatible chains.
package evm

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/openzeppelin/ui-builder-cli/internal/builder"
)

// Adapter is the EVM ecosystem adapter.
type Adapter struct {
	client    *http.Client
	explorers []ExplorerProvider
}

// Option configures the adapter.
type Option func(*Adapter)

// WithExplorers sets the ordered list of explorer providers used for
// address-based contract loading.
func WithExplorers(ps ...ExplorerProvider) Option {
	return func(a *Adapter) { a.explorers = ps }
}

// WithHTTPClient overrides the HTTP client (tests).
func WithHTTPClient(c *http.Client) Option {
	return func(a *Adapter) { a.client = c }
}

// New creates an EVM adapter.
func New(opts ...Option) *Adapter {
	a := &Adapter{
		client: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// IsValidAddress reports whether addr is a well-formed 20-byte hex address.
func (a *Adapter) IsValidAddress(addr string) bool {
	return common.IsHexAddress(addr)
}

// GetWritableFunctions filters out view/pure functions.
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
// EVM-based forms.
func (a *Adapter) GetSupportedExecutionMethods() []builder.ExecutionMethodDetail {
	return []builder.ExecutionMethodDetail{
		{Method: builder.ExecutionMethodEOA, Name: "EOA", Description: "Direct execution from a connected wallet"},
		{Method: builder.ExecutionMethodRelayer, Name: "Relayer", Description: "Execution through an OpenZeppelin Relayer service"},
		{Method: builder.ExecutionMethodMultisig, Name: "Multisig", Description: "Proposal to a Safe multisig wallet"},
	}
}

// ValidateExecutionConfig checks the execution config, exhaustively over the
// method tag.
func (a *Adapter) ValidateExecutionConfig(cfg *builder.ExecutionConfig) error {
	if cfg == nil {
		return nil // no execution config means the default EOA flow
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
			return fmt.Errorf("eoa specific address %q is not a valid EVM address", cfg.EOA.SpecificAddress)
		}
		return nil
	case builder.ExecutionMethodRelayer:
		if cfg.Relayer == nil || cfg.Relayer.ServiceURL == "" {
			return fmt.Errorf("relayer execution config requires a service URL")
		}
		return nil
	case builder.ExecutionMethodMultisig:
		if cfg.Multisig == nil || cfg.Multisig.SafeAddress == "" {
			return fmt.Errorf("multisig execution config requires a safe address")
		}
		if !a.IsValidAddress(cfg.Multisig.SafeAddress) {
			return fmt.Errorf("multisig safe address %q is not a valid EVM address", cfg.Multisig.SafeAddress)
		}
		return nil
	default:
		return fmt.Errorf("unknown execution method %q", cfg.Method)
	}
}
