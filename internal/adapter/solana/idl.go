package solana

import (
	"encoding/json"
	"fmt"

	"github.com/openzeppelin/ui-builder-cli/internal/builder"
	"github.com/openzeppelin/ui-builder-cli/internal/network"
)

// idlDocument is the subset of an Anchor IDL this adapter consumes.
type idlDocument struct {
	Name         string           `json:"name"`
	Instructions []idlInstruction `json:"instructions"`
	Metadata     struct {
		Name    string `json:"name"`
		Address string `json:"address"`
	} `json:"metadata"`
}

type idlInstruction struct {
	Name string   `json:"name"`
	Args []idlArg `json:"args"`
}

type idlArg struct {
	Name string          `json:"name"`
	Type json.RawMessage `json:"type"`
}

// schemaFromIDL parses an Anchor IDL document into the builder's schema.
func schemaFromIDL(raw []byte, programID string) (*builder.ContractSchema, error) {
	var idl idlDocument
	if err := json.Unmarshal(raw, &idl); err != nil {
		return nil, fmt.Errorf("invalid IDL JSON: %w", err)
	}
	if len(idl.Instructions) == 0 {
		return nil, fmt.Errorf("IDL has no instructions — is this an Anchor IDL document?")
	}

	name := idl.Name
	if name == "" {
		name = idl.Metadata.Name
	}
	if name == "" {
		name = "Program"
	}

	schema := &builder.ContractSchema{
		Ecosystem: string(network.EcosystemSolana),
		Name:      name,
		Address:   programID,
	}
	for _, ins := range idl.Instructions {
		inputs := make([]builder.FunctionParameter, len(ins.Args))
		for i, arg := range ins.Args {
			typ, err := normalizeIDLType(arg.Type)
			if err != nil {
				return nil, fmt.Errorf("instruction %s, arg %s: %w", ins.Name, arg.Name, err)
			}
			inputs[i] = builder.FunctionParameter{
				Name:        arg.Name,
				Type:        typ,
				DisplayName: builder.DisplayName(arg.Name),
			}
		}
		schema.Functions = append(schema.Functions, builder.ContractFunction{
			ID:            builder.FunctionID(ins.Name, inputs),
			Name:          ins.Name,
			DisplayName:   builder.DisplayName(ins.Name),
			Inputs:        inputs,
			ModifiesState: true, // every instruction executes against on-chain state
		})
	}
	return schema, nil
}

// normalizeIDLType flattens an IDL type (string or structured) into a
// canonical textual tag: "u64", "publicKey", "vec<u8>", "array<u64,4>",
// "defined:MyStruct".
func normalizeIDLType(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}

	var structured struct {
		Vec     json.RawMessage   `json:"vec"`
		Array   []json.RawMessage `json:"array"`
		Defined string            `json:"defined"`
		Option  json.RawMessage   `json:"option"`
	}
	if err := json.Unmarshal(raw, &structured); err != nil {
		return "", fmt.Errorf("unrecognized IDL type: %s", raw)
	}
	switch {
	case structured.Vec != nil:
		inner, err := normalizeIDLType(structured.Vec)
		if err != nil {
			return "", err
		}
		return "vec<" + inner + ">", nil
	case len(structured.Array) == 2:
		inner, err := normalizeIDLType(structured.Array[0])
		if err != nil {
			return "", err
		}
		var n int
		if err := json.Unmarshal(structured.Array[1], &n); err != nil {
			return "", fmt.Errorf("bad array length in IDL type: %s", raw)
		}
		return fmt.Sprintf("array<%s,%d>", inner, n), nil
	case structured.Defined != "":
		return "defined:" + structured.Defined, nil
	case structured.Option != nil:
		inner, err := normalizeIDLType(structured.Option)
		if err != nil {
			return "", err
		}
		return "option<" + inner + ">", nil
	default:
		return "", fmt.Errorf("unrecognized IDL type: %s", raw)
	}
}
