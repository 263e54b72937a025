package builder

// Execution method tags. Exactly one variant of ExecutionConfig is active,
// selected by Method.
const (
	ExecutionMethodEOA      = "eoa"
	ExecutionMethodRelayer  = "relayer"
	ExecutionMethodMultisig = "multisig"
)

// ExecutionConfig is a tagged union over the execution method. Only the
// variant struct matching Method is consulted; adapters validate it before
// an export is allowed.
type ExecutionConfig struct {
	Method   string          `json:"method"`
	EOA      *EOAConfig      `json:"eoa,omitempty"`
	Relayer  *RelayerConfig  `json:"relayer,omitempty"`
	Multisig *MultisigConfig `json:"multisig,omitempty"`
}

// EOAConfig configures direct wallet execution. When AllowAny is false a
// SpecificAddress must be supplied.
type EOAConfig struct {
	AllowAny        bool   `json:"allow_any"`
	SpecificAddress string `json:"specific_address,omitempty"`
}

// RelayerConfig configures execution through a relayer service.
type RelayerConfig struct {
	ServiceURL         string            `json:"service_url"`
	TransactionOptions map[string]string `json:"transaction_options,omitempty"`
}

// MultisigConfig configures execution through a multisig wallet.
type MultisigConfig struct {
	SafeAddress string `json:"safe_address"`
}

// ExecutionMethodDetail describes one execution method an adapter supports,
// for presentation in the builder.
type ExecutionMethodDetail struct {
	Method      string `json:"method"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
