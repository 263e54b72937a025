package builder

import (
	"errors"
	"fmt"
	"strings"
)

// ErrFunctionNotFound is returned when a function id is not in the schema.
var ErrFunctionNotFound = errors.New("function not found in contract schema")

// ContractSchema describes a loaded contract. It is produced once by an
// adapter's LoadContract and never mutated afterwards; reloading a contract
// replaces the schema wholesale.
type ContractSchema struct {
	Ecosystem string             `json:"ecosystem"`
	Name      string             `json:"name"`
	Address   string             `json:"address,omitempty"`
	Functions []ContractFunction `json:"functions"`
}

// ContractFunction is a single callable function on a contract.
type ContractFunction struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	DisplayName   string              `json:"display_name"`
	Inputs        []FunctionParameter `json:"inputs"`
	ModifiesState bool                `json:"modifies_state"`
}

// FunctionParameter is one input parameter of a contract function.
type FunctionParameter struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	DisplayName string `json:"display_name"`
}

// FunctionByID looks up a function by its id.
func (s *ContractSchema) FunctionByID(id string) (*ContractFunction, error) {
	for i := range s.Functions {
		if s.Functions[i].ID == id {
			return &s.Functions[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrFunctionNotFound, id)
}

// FunctionID builds the canonical id for a function: the name plus the
// parameter types, so overloads (legal in Solidity) get distinct ids.
func FunctionID(name string, inputs []FunctionParameter) string {
	if len(inputs) == 0 {
		return name
	}
	types := make([]string, len(inputs))
	for i, in := range inputs {
		types[i] = in.Type
	}
	return name + "_" + strings.Join(types, "_")
}

// DisplayName converts an identifier like "transferFrom" or "transfer_from"
// into a human-readable label ("Transfer From").
func DisplayName(ident string) string {
	if ident == "" {
		return ""
	}
	var b strings.Builder
	prevLower := false
	for _, r := range ident {
		switch {
		case r == '_' || r == '-':
			b.WriteByte(' ')
			prevLower = false
			continue
		case r >= 'A' && r <= 'Z' && prevLower:
			b.WriteByte(' ')
		}
		b.WriteRune(r)
		prevLower = r >= 'a' && r <= 'z' || r >= '0' && r <= '9'
	}
	words := strings.Fields(b.String())
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
