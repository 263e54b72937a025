package evm

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ABIEntry is a single ABI function/event entry.
type ABIEntry struct {
	Name            string     `json:"name"`
	Type            string     `json:"type"`
	Inputs          []ABIParam `json:"inputs"`
	Outputs         []ABIParam `json:"outputs"`
	StateMutability string     `json:"stateMutability"`
}

// ABIParam is a parameter in an ABI entry.
type ABIParam struct {
	Name       string     `json:"name"`
	Type       string     `json:"type"`
	Components []ABIParam `json:"components,omitempty"` // tuple members
}

// parseABI parses a raw ABI JSON array.
func parseABI(data []byte) ([]ABIEntry, error) {
	var abi []ABIEntry
	if err := json.Unmarshal(data, &abi); err != nil {
		data = bytes.TrimSpace(data)
		if len(data) > 0 && data[0] == '{' {
			return nil, fmt.Errorf("definition is a JSON object, not an ABI array — if this is a Hardhat/Foundry artifact it must have an \"abi\" key")
		}
		return nil, fmt.Errorf("invalid ABI JSON: expected an array of function/event definitions, got parse error: %w", err)
	}
	return abi, nil
}

// parseDefinition parses a raw contract definition that is either:
//   - a raw ABI JSON array: [{"type":"function",...}, ...]
//   - a Hardhat/Foundry artifact: {"abi":[...],"bytecode":"0x...",...}
//
// Both formats are detected automatically.
func parseDefinition(data []byte) ([]ABIEntry, string, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, "", fmt.Errorf("contract definition is empty")
	}

	// Attempt to detect a Hardhat/Foundry artifact (object with an "abi" key).
	var artifact struct {
		ABI          json.RawMessage `json:"abi"`
		ContractName string          `json:"contractName"`
	}
	if json.Unmarshal(data, &artifact) == nil && len(artifact.ABI) > 1 && artifact.ABI[0] == '[' {
		abi, err := parseABI(artifact.ABI)
		if err != nil {
			return nil, "", err
		}
		if err := validateABI(abi); err != nil {
			return nil, "", err
		}
		return abi, artifact.ContractName, nil
	}

	// Fall back: treat the whole definition as a raw ABI array.
	abi, err := parseABI(data)
	if err != nil {
		return nil, "", err
	}
	if err := validateABI(abi); err != nil {
		return nil, "", err
	}
	return abi, "", nil
}

// validateABI checks that the parsed ABI has at least one function or event.
func validateABI(abi []ABIEntry) error {
	if len(abi) == 0 {
		return fmt.Errorf("ABI is empty (no functions or events found)")
	}
	for _, e := range abi {
		if e.Type == "function" || e.Type == "event" || e.Type == "constructor" {
			return nil
		}
	}
	return fmt.Errorf("ABI has %d entries but none are functions or events — check the definition format", len(abi))
}
