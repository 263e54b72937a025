package solana

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"

	"github.com/openzeppelin/ui-builder-cli/internal/adapter"
	"github.com/openzeppelin/ui-builder-cli/internal/builder"
)

// SolanaTransactionData is the borsh-encoded instruction payload for a
// Solana program call.
type SolanaTransactionData struct {
	Instruction   string `json:"instruction"`
	Discriminator []byte `json:"discriminator"` // 8-byte Anchor discriminator
	Data          []byte `json:"data"`          // discriminator + borsh-encoded args
	Args          []any  `json:"args"`
}

// FormatTransactionData reconciles submitted values with hardcoded/hidden
// fields and borsh-encodes the instruction data with the Anchor
// discriminator prefix.
func (a *Adapter) FormatTransactionData(functionID string, submitted map[string]any, allFields []builder.FormField) (adapter.TransactionData, error) {
	types := make([]string, len(allFields))
	for i, f := range allFields {
		types[i] = f.OriginalParameterType
	}
	insName := instructionNameFromID(functionID, types)

	disc := anchorDiscriminator(insName)
	var buf bytes.Buffer
	buf.Write(disc)
	enc := bin.NewBorshEncoder(&buf)

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

		conv, err := convertValue(f.OriginalParameterType, raw)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}
		if err := enc.Encode(conv); err != nil {
			return nil, fmt.Errorf("encoding field %q: %w", f.Name, err)
		}
		args = append(args, conv)
	}

	return &SolanaTransactionData{
		Instruction:   insName,
		Discriminator: disc,
		Data:          buf.Bytes(),
		Args:          args,
	}, nil
}

// anchorDiscriminator computes the 8-byte Anchor instruction discriminator:
// sha256("global:<snake_case_name>")[:8].
func anchorDiscriminator(name string) []byte {
	h := sha256.Sum256([]byte("global:" + toSnakeCase(name)))
	return h[:8]
}

func toSnakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// instructionNameFromID inverts builder.FunctionID.
func instructionNameFromID(id string, types []string) string {
	if len(types) == 0 {
		return id
	}
	return strings.TrimSuffix(id, "_"+strings.Join(types, "_"))
}

// convertValue turns a user-submitted value into the Go representation the
// borsh encoder expects for the normalized IDL type.
func convertValue(idlType string, v any) (any, error) {
	switch {
	case strings.HasPrefix(idlType, "vec<") && strings.HasSuffix(idlType, ">"):
		return convertSlice(idlType[4:len(idlType)-1], v, -1)
	case strings.HasPrefix(idlType, "array<") && strings.HasSuffix(idlType, ">"):
		inner := idlType[6 : len(idlType)-1]
		comma := strings.LastIndex(inner, ",")
		if comma == -1 {
			return nil, fmt.Errorf("bad array type %q", idlType)
		}
		n, err := strconv.Atoi(inner[comma+1:])
		if err != nil {
			return nil, fmt.Errorf("bad array length in %q", idlType)
		}
		return convertSlice(inner[:comma], v, n)
	case strings.HasPrefix(idlType, "defined:"):
		return nil, fmt.Errorf("defined struct parameters cannot be encoded from form input")
	case strings.HasPrefix(idlType, "option<"):
		return nil, fmt.Errorf("option parameters cannot be encoded from form input")
	}

	if v == nil {
		return nil, fmt.Errorf("no value for %s parameter", idlType)
	}

	switch idlType {
	case "publicKey", "pubkey":
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("expected a base58 string, got %T", v)
		}
		pk, err := solana.PublicKeyFromBase58(s)
		if err != nil {
			return nil, fmt.Errorf("%q is not a valid public key: %w", s, err)
		}
		return pk, nil

	case "bool":
		switch b := v.(type) {
		case bool:
			return b, nil
		case string:
			return strconv.ParseBool(b)
		}
		return nil, fmt.Errorf("cannot interpret %T as bool", v)

	case "string":
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("expected a string, got %T", v)
		}
		return s, nil

	case "bytes":
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("expected a hex string, got %T", v)
		}
		return hex.DecodeString(strings.TrimPrefix(s, "0x"))

	case "u8", "u16", "u32", "u64", "u128", "i8", "i16", "i32", "i64":
		return convertInteger(idlType, v)

	default:
		return nil, fmt.Errorf("unsupported parameter type %q", idlType)
	}
}

func convertSlice(elemType string, v any, fixedLen int) (any, error) {
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
	if fixedLen >= 0 && len(elems) != fixedLen {
		return nil, fmt.Errorf("fixed array needs %d elements, got %d", fixedLen, len(elems))
	}

	sample, err := convertValue(elemType, sampleValue(elemType))
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

func convertInteger(idlType string, v any) (any, error) {
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
		if _, ok := n.SetString(strings.TrimSpace(x), 10); !ok {
			return nil, fmt.Errorf("%q is not a valid integer", x)
		}
	default:
		return nil, fmt.Errorf("cannot interpret %T as %s", v, idlType)
	}

	switch idlType {
	case "u8", "u16", "u32", "u64":
		if !n.IsUint64() {
			return nil, fmt.Errorf("value %s overflows %s", n, idlType)
		}
		u := n.Uint64()
		switch idlType {
		case "u8":
			if u > 0xff {
				return nil, fmt.Errorf("value %s overflows u8", n)
			}
			return uint8(u), nil
		case "u16":
			if u > 0xffff {
				return nil, fmt.Errorf("value %s overflows u16", n)
			}
			return uint16(u), nil
		case "u32":
			if u > 0xffffffff {
				return nil, fmt.Errorf("value %s overflows u32", n)
			}
			return uint32(u), nil
		default:
			return u, nil
		}
	case "u128":
		if n.Sign() < 0 || n.BitLen() > 128 {
			return nil, fmt.Errorf("value %s overflows u128", n)
		}
		lo := new(big.Int).And(n, new(big.Int).SetUint64(^uint64(0))).Uint64()
		hi := new(big.Int).Rsh(n, 64).Uint64()
		return bin.Uint128{Lo: lo, Hi: hi}, nil
	case "i8", "i16", "i32", "i64":
		if !n.IsInt64() {
			return nil, fmt.Errorf("value %s overflows %s", n, idlType)
		}
		i := n.Int64()
		switch idlType {
		case "i8":
			if i < -128 || i > 127 {
				return nil, fmt.Errorf("value %s overflows i8", n)
			}
			return int8(i), nil
		case "i16":
			if i < -32768 || i > 32767 {
				return nil, fmt.Errorf("value %s overflows i16", n)
			}
			return int16(i), nil
		case "i32":
			if i < -2147483648 || i > 2147483647 {
				return nil, fmt.Errorf("value %s overflows i32", n)
			}
			return int32(i), nil
		default:
			return i, nil
		}
	}
	return nil, fmt.Errorf("unsupported integer type %q", idlType)
}

func sampleValue(elemType string) any {
	switch elemType {
	case "publicKey", "pubkey":
		return "11111111111111111111111111111111"
	case "bool":
		return "false"
	case "string":
		return ""
	case "bytes":
		return "0x"
	default:
		return "0"
	}
}
