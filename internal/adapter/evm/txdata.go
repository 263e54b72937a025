package evm

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	gethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/sha3"

	"github.com/openzeppelin/ui-builder-cli/internal/adapter"
	"github.com/openzeppelin/ui-builder-cli/internal/builder"
)

// EVMTransactionData is the encoded calldata payload for an EVM write.
type EVMTransactionData struct {
	FunctionName string `json:"function_name"`
	Selector     string `json:"selector"` // 0x-prefixed 4-byte selector
	Data         []byte `json:"data"`     // selector + ABI-encoded args
	Args         []any  `json:"args"`     // decoded args in parameter order
}

// FormatTransactionData reconciles submitted values with hardcoded/hidden
// fields (original parameter order preserved by allFields) and ABI-encodes
// the calldata.
func (a *Adapter) FormatTransactionData(functionID string, submitted map[string]any, allFields []builder.FormField) (adapter.TransactionData, error) {
	types := make([]string, len(allFields))
	values := make([]any, len(allFields))
	for i, f := range allFields {
		types[i] = f.OriginalParameterType

		var raw any
		switch {
		case f.IsHardcoded:
			raw = f.HardcodedValue
		default:
			v, ok := submitted[f.Name]
			if !ok {
				if f.Validation.Required {
					return nil, fmt.Errorf("missing value for required field %q", f.Name)
				}
				v = f.DefaultValue
			}
			raw = v
		}
		values[i] = raw
	}

	fnName := functionNameFromID(functionID, types)
	args := make(gethabi.Arguments, len(types))
	packed := make([]any, len(types))
	for i, t := range types {
		abiType, err := gethabi.NewType(t, "", nil)
		if err != nil {
			return nil, fmt.Errorf("unsupported parameter type %q: %w", t, err)
		}
		args[i] = gethabi.Argument{Name: allFields[i].Name, Type: abiType}
		packed[i], err = convertValue(t, values[i])
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", allFields[i].Name, err)
		}
	}

	encoded, err := args.Pack(packed...)
	if err != nil {
		return nil, fmt.Errorf("encoding arguments for %s: %w", fnName, err)
	}

	selector := functionSelector(fnName, types)
	return &EVMTransactionData{
		FunctionName: fnName,
		Selector:     "0x" + hex.EncodeToString(selector),
		Data:         append(selector, encoded...),
		Args:         packed,
	}, nil
}

// functionSelector computes the 4-byte keccak selector for
// name(type1,type2,...).
func functionSelector(name string, types []string) []byte {
	sig := name + "(" + strings.Join(types, ",") + ")"
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(sig))
	return h.Sum(nil)[:4]
}

// functionNameFromID inverts builder.FunctionID: the id is the function name
// optionally suffixed with "_"-joined parameter types.
func functionNameFromID(id string, types []string) string {
	if len(types) == 0 {
		return id
	}
	suffix := "_" + strings.Join(types, "_")
	return strings.TrimSuffix(id, suffix)
}

// convertValue turns a user-submitted value (typically a string from the
// form, but native Go values are accepted too) into the Go representation
// go-ethereum's packer expects for the Solidity type.
func convertValue(solType string, v any) (any, error) {
	if v == nil {
		return nil, fmt.Errorf("no value for %s parameter", solType)
	}

	if idx := strings.LastIndex(solType, "["); idx != -1 && strings.HasSuffix(solType, "]") {
		return convertSlice(solType[:idx], v)
	}
	if solType == "tuple" || strings.HasPrefix(solType, "tuple") {
		return nil, fmt.Errorf("tuple parameters cannot be encoded from form input")
	}

	switch {
	case solType == "address":
		s, err := asString(v)
		if err != nil {
			return nil, err
		}
		if !common.IsHexAddress(s) {
			return nil, fmt.Errorf("%q is not a valid address", s)
		}
		return common.HexToAddress(s), nil

	case solType == "bool":
		switch b := v.(type) {
		case bool:
			return b, nil
		case string:
			return strconv.ParseBool(b)
		}
		return nil, fmt.Errorf("cannot interpret %T as bool", v)

	case solType == "string":
		return asString(v)

	case solType == "bytes":
		s, err := asString(v)
		if err != nil {
			return nil, err
		}
		return hex.DecodeString(strings.TrimPrefix(s, "0x"))

	case strings.HasPrefix(solType, "bytes"):
		n, err := strconv.Atoi(strings.TrimPrefix(solType, "bytes"))
		if err != nil {
			return nil, fmt.Errorf("bad fixed-bytes type %q", solType)
		}
		s, err := asString(v)
		if err != nil {
			return nil, err
		}
		raw, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
		if err != nil {
			return nil, err
		}
		if len(raw) != n {
			return nil, fmt.Errorf("%s needs %d bytes, got %d", solType, n, len(raw))
		}
		arr := reflect.New(reflect.ArrayOf(n, reflect.TypeOf(byte(0)))).Elem()
		reflect.Copy(arr, reflect.ValueOf(raw))
		return arr.Interface(), nil

	case strings.HasPrefix(solType, "uint"), strings.HasPrefix(solType, "int"):
		return convertInteger(solType, v)

	default:
		return nil, fmt.Errorf("unsupported parameter type %q", solType)
	}
}

// convertSlice converts a JSON-array string or a native slice into []T for
// the element type.
func convertSlice(elemType string, v any) (any, error) {
	var elems []any
	switch s := v.(type) {
	case string:
		if err := json.Unmarshal([]byte(s), &elems); err != nil {
			return nil, fmt.Errorf("array value must be a JSON array: %w", err)
		}
	case []any:
		elems = s
	default:
		return nil, fmt.Errorf("cannot interpret %T as an array", v)
	}

	sample, err := convertValue(elemType, zeroSample(elemType))
	if err != nil {
		return nil, fmt.Errorf("unsupported array element type %q: %w", elemType, err)
	}
	out := reflect.MakeSlice(reflect.SliceOf(reflect.TypeOf(sample)), 0, len(elems))
	for i, e := range elems {
		conv, err := convertValue(elemType, e)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out = reflect.Append(out, reflect.ValueOf(conv))
	}
	return out.Interface(), nil
}

// convertInteger maps a uint/int type to the exact Go integer type the
// packer requires for its bit width.
func convertInteger(solType string, v any) (any, error) {
	n := new(big.Int)
	switch x := v.(type) {
	case *big.Int:
		n.Set(x)
	case int:
		n.SetInt64(int64(x))
	case int64:
		n.SetInt64(x)
	case uint64:
		n.SetUint64(x)
	case float64:
		n.SetInt64(int64(x))
	case string:
		x = strings.TrimSpace(x)
		if _, ok := n.SetString(x, 10); !ok {
			return nil, fmt.Errorf("%q is not a valid integer", x)
		}
	default:
		return nil, fmt.Errorf("cannot interpret %T as %s", v, solType)
	}

	bits := intBits(solType)
	signed := !strings.HasPrefix(solType, "u")
	if !fitsBits(n, bits, signed) {
		return nil, fmt.Errorf("value %s overflows %s", n, solType)
	}
	if bits > 64 {
		return n, nil
	}
	if signed {
		switch {
		case bits <= 8:
			return int8(n.Int64()), nil
		case bits <= 16:
			return int16(n.Int64()), nil
		case bits <= 32:
			return int32(n.Int64()), nil
		default:
			return n.Int64(), nil
		}
	}
	switch {
	case bits <= 8:
		return uint8(n.Uint64()), nil
	case bits <= 16:
		return uint16(n.Uint64()), nil
	case bits <= 32:
		return uint32(n.Uint64()), nil
	default:
		return n.Uint64(), nil
	}
}

// fitsBits reports whether n is representable in a bits-wide integer:
// [0, 2^bits) unsigned, [-2^(bits-1), 2^(bits-1)) signed.
func fitsBits(n *big.Int, bits int, signed bool) bool {
	if !signed {
		return n.Sign() >= 0 && n.BitLen() <= bits
	}
	bound := new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
	if n.Sign() < 0 {
		return n.Cmp(new(big.Int).Neg(bound)) >= 0
	}
	return n.Cmp(bound) < 0
}

func asString(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("expected a string value, got %T", v)
	}
	return s, nil
}

// zeroSample returns a placeholder value used only to determine the Go type
// of converted array elements.
func zeroSample(elemType string) any {
	switch {
	case elemType == "address":
		return "0x0000000000000000000000000000000000000000"
	case elemType == "bool":
		return "false"
	case elemType == "string":
		return ""
	case elemType == "bytes" || strings.HasPrefix(elemType, "bytes"):
		return "0x" + strings.Repeat("00", fixedBytesLen(elemType))
	default:
		return "0"
	}
}

func fixedBytesLen(t string) int {
	n, err := strconv.Atoi(strings.TrimPrefix(t, "bytes"))
	if err != nil {
		return 0
	}
	return n
}
