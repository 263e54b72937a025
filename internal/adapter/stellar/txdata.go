package stellar

import (
	"fmt"
	"strings"

	"github.com/openzeppelin/ui-builder-cli/internal/adapter"
	"github.com/openzeppelin/ui-builder-cli/internal/builder"
)

// StellarTransactionData is the invocation payload for a Soroban contract
// call: the function name plus its typed arguments in declaration order.
// ScVal/XDR assembly happens in the exported app's SDK layer.
type StellarTransactionData struct {
	Function string       `json:"function"`
	Args     []StellarArg `json:"args"`
}

// StellarArg is one typed invocation argument.
type StellarArg struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value any    `json:"value"`
}

// FormatTransactionData reconciles submitted values with hardcoded/hidden
// fields, preserving parameter order, and validates them against their
// declared spec types.
func (a *Adapter) FormatTransactionData(functionID string, submitted map[string]any, allFields []builder.FormField) (adapter.TransactionData, error) {
	types := make([]string, len(allFields))
	for i, f := range allFields {
		types[i] = f.OriginalParameterType
	}
	fnName := functionID
	if len(types) > 0 {
		fnName = strings.TrimSuffix(functionID, "_"+strings.Join(types, "_"))
	}

	args := make([]StellarArg, 0, len(allFields))
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

		if f.OriginalParameterType == "address" {
			s, ok := raw.(string)
			if !ok || !a.IsValidAddress(s) {
				return nil, fmt.Errorf("field %q: %v is not a valid Stellar address", f.Name, raw)
			}
		}
		args = append(args, StellarArg{Name: f.Name, Type: f.OriginalParameterType, Value: raw})
	}

	return &StellarTransactionData{Function: fnName, Args: args}, nil
}
