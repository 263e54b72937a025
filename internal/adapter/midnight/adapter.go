// Package midnight implements the adapter contract for the Midnight
// network. Contracts are described by a compiled Compact contract
// descriptor listing the circuits a dapp can call.
package midnight

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/openzeppelin/ui-builder-cli/internal/adapter"
	"github.com/openzeppelin/ui-builder-cli/internal/builder"
	"github.com/openzeppelin/ui-builder-cli/internal/network"
)

// Adapter is the Midnight ecosystem adapter.
type Adapter struct{}

// New creates a Midnight adapter.
func New() *Adapter {
	return &Adapter{}
}

// Midnight shielded addresses are bech32m strings with an mn_shield-addr
// human-readable part; contract addresses are 64+2 hex chars.
var (
	shieldAddrRe  = regexp.MustCompile(`^mn_shield-addr_[a-z0-9]+1[02-9ac-hj-np-z]{6,}$`)
	contractHexRe = regexp.MustCompile(`^[0-9a-fA-F]{64,68}$`)
)

// descriptor is the compiled Compact contract descriptor this adapter
// consumes.
type descriptor struct {
	ContractName string `json:"contractName"`
	Circuits     []struct {
		Name      string `json:"name"`
		Pure      bool   `json:"pure"`
		Arguments []struct {
			Name string `json:"name"`
			Type string `json:"type"`
		} `json:"arguments"`
	} `json:"circuits"`
}

// LoadContract loads a schema from a raw Compact descriptor. Address-based
// loading needs an indexer that publishes contract metadata; none is wired
// yet, so address sources are rejected with a descriptive error.
func (a *Adapter) LoadContract(ctx context.Context, source string) (*builder.ContractSchema, error) {
	source = strings.TrimSpace(source)
	if a.IsValidAddress(source) {
		return nil, fmt.Errorf("loading Midnight contracts by address is not available; paste the compiled contract descriptor instead")
	}

	var d descriptor
	if err := json.Unmarshal([]byte(source), &d); err != nil {
		return nil, fmt.Errorf("invalid contract descriptor JSON: %w", err)
	}
	if len(d.Circuits) == 0 {
		return nil, fmt.Errorf("contract descriptor has no circuits")
	}

	name := d.ContractName
	if name == "" {
		name = "Contract"
	}
	schema := &builder.ContractSchema{
		Ecosystem: string(network.EcosystemMidnight),
		Name:      name,
	}
	for _, c := range d.Circuits {
		inputs := make([]builder.FunctionParameter, len(c.Arguments))
		for i, arg := range c.Arguments {
			inputs[i] = builder.FunctionParameter{
				Name:        arg.Name,
				Type:        arg.Type,
				DisplayName: builder.DisplayName(arg.Name),
			}
		}
		schema.Functions = append(schema.Functions, builder.ContractFunction{
			ID:            builder.FunctionID(c.Name, inputs),
			Name:          c.Name,
			DisplayName:   builder.DisplayName(c.Name),
			Inputs:        inputs,
			ModifiesState: !c.Pure,
		})
	}
	return schema, nil
}

// IsValidAddress accepts shielded bech32m addresses and hex contract
// addresses.
func (a *Adapter) IsValidAddress(addr string) bool {
	if shieldAddrRe.MatchString(addr) {
		return true
	}
	return contractHexRe.MatchString(strings.TrimPrefix(addr, "0x"))
}

// MapParameterTypeToFieldType maps a Compact type to the default UI field
// type.
func (a *Adapter) MapParameterTypeToFieldType(paramType string) builder.FieldType {
	switch {
	case strings.HasPrefix(paramType, "Vector<"), strings.HasSuffix(paramType, "[]"):
		return builder.FieldTypeArray
	case strings.HasPrefix(paramType, "struct "), strings.HasPrefix(paramType, "Map<"):
		return builder.FieldTypeObject
	}
	switch paramType {
	case "Address", "ContractAddress", "ZswapCoinPublicKey":
		return builder.FieldTypeAddress
	case "Boolean":
		return builder.FieldTypeCheckbox
	case "Uint<8>", "Uint<16>", "Uint<32>":
		return builder.FieldTypeNumber
	case "Uint<64>", "Uint<128>", "Uint<256>", "Field":
		return builder.FieldTypeBigInt
	case "Opaque<\"string\">", "Text":
		return builder.FieldTypeText
	case "Bytes<32>", "Bytes":
		return builder.FieldTypeBytes
	default:
		return builder.FieldTypeText
	}
}

// GetCompatibleFieldTypes lists the field types a parameter can be rendered
// as, default first.
func (a *Adapter) GetCompatibleFieldTypes(paramType string) []builder.FieldType {
	def := a.MapParameterTypeToFieldType(paramType)
	switch def {
	case builder.FieldTypeArray, builder.FieldTypeObject:
		return []builder.FieldType{def, builder.FieldTypeTextarea}
	case builder.FieldTypeNumber:
		return []builder.FieldType{builder.FieldTypeNumber, builder.FieldTypeBigInt, builder.FieldTypeText}
	default:
		return []builder.FieldType{def, builder.FieldTypeText}
	}
}

// GenerateDefaultField builds the default field config for one parameter.
func (a *Adapter) GenerateDefaultField(param builder.FunctionParameter) builder.FormField {
	ft := a.MapParameterTypeToFieldType(param.Type)
	label := param.DisplayName
	if label == "" {
		label = builder.DisplayName(param.Name)
	}
	f := builder.FormField{
		ID:                    param.Name,
		Name:                  param.Name,
		Label:                 label,
		Type:                  ft,
		Placeholder:           "Enter " + param.Type,
		Validation:            builder.FieldValidation{Required: true},
		OriginalParameterType: param.Type,
	}
	if ft == builder.FieldTypeAddress {
		f.Placeholder = "mn_shield-addr_..."
		f.Validation.Custom = "address"
	}
	if ft == builder.FieldTypeCheckbox {
		f.Validation.Required = false
		f.DefaultValue = false
	}
	return f
}

// MidnightTransactionData is the circuit invocation payload: the circuit
// name plus ordered arguments. Proof generation happens in the exported
// app's SDK layer.
type MidnightTransactionData struct {
	Circuit string `json:"circuit"`
	Args    []any  `json:"args"`
}

// FormatTransactionData reconciles submitted values with hardcoded/hidden
// fields, preserving argument order.
func (a *Adapter) FormatTransactionData(functionID string, submitted map[string]any, allFields []builder.FormField) (adapter.TransactionData, error) {
	types := make([]string, len(allFields))
	for i, f := range allFields {
		types[i] = f.OriginalParameterType
	}
	circuit := functionID
	if len(types) > 0 {
		circuit = strings.TrimSuffix(functionID, "_"+strings.Join(types, "_"))
	}

	args := make([]any, 0, len(allFields))
	for _, f := range allFields {
		var raw any
		if f.IsHardcoded {
			raw = f.HardcodedValue
		} else {
			v, ok := submitted[f.Name]
			if !ok {
				if f.Validation.Required {
					return nil, fmt.Errorf("missing value for required field %q", f.Name)
				}
				v = f.DefaultValue
			}
			raw = v
		}
		args = append(args, raw)
	}
	return &MidnightTransactionData{Circuit: circuit, Args: args}, nil
}

// GetWritableFunctions filters out pure circuits.
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
// Midnight forms.
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
		return nil
	case builder.ExecutionMethodRelayer:
		return fmt.Errorf("relayer execution is not supported on Midnight")
	case builder.ExecutionMethodMultisig:
		return fmt.Errorf("multisig execution is not supported on Midnight")
	default:
		return fmt.Errorf("unknown execution method %q", cfg.Method)
	}
}

// ExportConfig returns the export-time dependency manifest for Midnight
// projects.
func (a *Adapter) ExportConfig() (*adapter.AdapterConfig, error) {
	return &adapter.AdapterConfig{
		PackageName: "@openzeppelin/ui-adapter-midnight",
		Dependencies: adapter.Dependencies{
			Runtime: map[string]string{
				"@openzeppelin/ui-adapter-midnight":  "^1.0.0",
				"@midnight-ntwrk/compact-runtime":    "^0.7.0",
				"@midnight-ntwrk/dapp-connector-api": "^1.2.0",
			},
			Dev:   map[string]string{},
			Build: map[string]string{},
		},
	}, nil
}
