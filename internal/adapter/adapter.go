package adapter

import (
	"context"

	"github.com/openzeppelin/ui-builder-cli/internal/builder"
)

// TransactionData is the chain-specific payload produced by
// FormatTransactionData. Each adapter returns its own concrete type
// (EVMTransactionData, SolanaTransactionData, ...).
type TransactionData any

// AdapterConfig is the per-ecosystem dependency manifest consumed at export
// time. It is static data: loaded once, merged into the exported project,
// never mutated.
type AdapterConfig struct {
	// PackageName is the adapter's npm package in the exported project.
	PackageName  string       `json:"package_name"`
	Dependencies Dependencies `json:"dependencies"`
	// Overrides forces specific versions of transitive packages.
	Overrides map[string]string `json:"overrides,omitempty"`
	// PatchedDependencies maps "package@version" to a patch file path of
	// the form "patches/<package>@<version>.patch".
	PatchedDependencies map[string]string `json:"patched_dependencies,omitempty"`
	// ViteConfig is an extra snippet merged into the exported vite.config.ts
	// (node polyfills and similar SDK browser-compat plumbing).
	ViteConfig string `json:"vite_config,omitempty"`
}

// Dependencies groups the npm version maps an adapter contributes.
type Dependencies struct {
	Runtime map[string]string `json:"runtime"`
	Dev     map[string]string `json:"dev"`
	Build   map[string]string `json:"build"`
}

// Adapter is the capability contract every blockchain ecosystem implements.
// Implementations must expose exactly this surface so ecosystems stay
// interchangeable.
type Adapter interface {
	// LoadContract accepts either an on-chain address (fetched from an
	// explorer/indexer) or a raw contract definition string (parsed
	// directly). The source is classified before dispatching.
	LoadContract(ctx context.Context, source string) (*builder.ContractSchema, error)

	// MapParameterTypeToFieldType maps one chain-native parameter type to
	// the default UI field type. Pure.
	MapParameterTypeToFieldType(paramType string) builder.FieldType

	// GetCompatibleFieldTypes lists every field type a parameter type can
	// be rendered as, default first. Pure.
	GetCompatibleFieldTypes(paramType string) []builder.FieldType

	// GenerateDefaultField builds the default field config for a parameter.
	GenerateDefaultField(param builder.FunctionParameter) builder.FormField

	// FormatTransactionData reconciles submitted values with hardcoded and
	// hidden fields (original parameter order preserved) and encodes the
	// chain-specific payload.
	FormatTransactionData(functionID string, submitted map[string]any, allFields []builder.FormField) (TransactionData, error)

	// IsValidAddress reports whether addr is a well-formed address for the
	// ecosystem.
	IsValidAddress(addr string) bool

	// GetWritableFunctions filters out pure/view functions.
	GetWritableFunctions(schema *builder.ContractSchema) []builder.ContractFunction

	// GetSupportedExecutionMethods lists the execution methods this
	// ecosystem supports.
	GetSupportedExecutionMethods() []builder.ExecutionMethodDetail

	// ValidateExecutionConfig checks an execution config. It is exhaustive
	// over the method tag: an unrecognized method is a hard error, never
	// silently accepted. A nil return means the config is valid.
	ValidateExecutionConfig(cfg *builder.ExecutionConfig) error

	// ExportConfig returns the export-time dependency manifest. An adapter
	// that cannot produce one fails the whole export.
	ExportConfig() (*AdapterConfig, error)
}
