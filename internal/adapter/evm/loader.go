package evm

import (
	"context"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/openzeppelin/ui-builder-cli/internal/builder"
	"github.com/openzeppelin/ui-builder-cli/internal/network"
)

// LoadContract loads a contract schema from either an on-chain address or a
// raw definition (ABI array / Hardhat / Foundry artifact). The source is
// classified first: a hex address triggers an explorer fetch, anything else
// is parsed directly.
func (a *Adapter) LoadContract(ctx context.Context, source string) (*builder.ContractSchema, error) {
	source = strings.TrimSpace(source)
	if common.IsHexAddress(source) {
		return a.loadFromExplorer(ctx, source)
	}

	abi, name, err := parseDefinition([]byte(source))
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = "Contract"
	}
	return schemaFromABI(name, "", abi), nil
}

// loadFromExplorer tries each configured explorer in order and returns the
// first verified ABI, collecting per-provider failures into the final error
// when all of them fail.
func (a *Adapter) loadFromExplorer(ctx context.Context, address string) (*builder.ContractSchema, error) {
	if len(a.explorers) == 0 {
		return nil, fmt.Errorf("no explorer configured for address lookup of %s", address)
	}

	var warnings []string
	for _, p := range a.explorers {
		if p == nil {
			continue
		}
		abi, err := p.FetchABI(ctx, address)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: %v", p.Name(), err))
			continue
		}
		return schemaFromABI("Contract "+shortAddress(address), address, abi), nil
	}
	return nil, fmt.Errorf("loading contract %s: %s", address, strings.Join(warnings, "; "))
}

// schemaFromABI converts parsed ABI entries into the builder's schema.
func schemaFromABI(name, address string, abi []ABIEntry) *builder.ContractSchema {
	schema := &builder.ContractSchema{
		Ecosystem: string(network.EcosystemEVM),
		Name:      name,
		Address:   address,
	}
	for _, e := range abi {
		if e.Type != "function" {
			continue
		}
		inputs := make([]builder.FunctionParameter, len(e.Inputs))
		for i, in := range e.Inputs {
			pname := in.Name
			if pname == "" {
				pname = fmt.Sprintf("param%d", i)
			}
			inputs[i] = builder.FunctionParameter{
				Name:        pname,
				Type:        in.Type,
				DisplayName: builder.DisplayName(pname),
			}
		}
		schema.Functions = append(schema.Functions, builder.ContractFunction{
			ID:            builder.FunctionID(e.Name, inputs),
			Name:          e.Name,
			DisplayName:   builder.DisplayName(e.Name),
			Inputs:        inputs,
			ModifiesState: e.StateMutability != "view" && e.StateMutability != "pure",
		})
	}
	return schema
}

func shortAddress(addr string) string {
	if len(addr) <= 10 {
		return addr
	}
	return addr[:6] + "…" + addr[len(addr)-4:]
}
