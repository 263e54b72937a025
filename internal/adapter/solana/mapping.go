package solana

import (
	"strings"

	"github.com/openzeppelin/ui-builder-cli/internal/builder"
)

// MapParameterTypeToFieldType maps a normalized IDL type to the default UI
// field type. Vectors, arrays and defined structs route to the
// structured-text field types.
func (a *Adapter) MapParameterTypeToFieldType(paramType string) builder.FieldType {
	switch {
	case strings.HasPrefix(paramType, "vec<"), strings.HasPrefix(paramType, "array<"):
		return builder.FieldTypeArray
	case strings.HasPrefix(paramType, "defined:"):
		return builder.FieldTypeObject
	case strings.HasPrefix(paramType, "option<"):
		return a.MapParameterTypeToFieldType(strings.TrimSuffix(strings.TrimPrefix(paramType, "option<"), ">"))
	}
	switch paramType {
	case "publicKey", "pubkey":
		return builder.FieldTypeAddress
	case "bool":
		return builder.FieldTypeCheckbox
	case "string":
		return builder.FieldTypeText
	case "bytes":
		return builder.FieldTypeBytes
	case "u8", "u16", "u32", "i8", "i16", "i32":
		return builder.FieldTypeNumber
	case "u64", "u128", "i64", "i128", "f32", "f64":
		return builder.FieldTypeBigInt
	default:
		return builder.FieldTypeText
	}
}

// GetCompatibleFieldTypes lists the field types a parameter can be rendered
// as, default first.
func (a *Adapter) GetCompatibleFieldTypes(paramType string) []builder.FieldType {
	def := a.MapParameterTypeToFieldType(paramType)
	switch def {
	case builder.FieldTypeAddress:
		return []builder.FieldType{builder.FieldTypeAddress, builder.FieldTypeText}
	case builder.FieldTypeNumber:
		return []builder.FieldType{builder.FieldTypeNumber, builder.FieldTypeBigInt, builder.FieldTypeText}
	case builder.FieldTypeBigInt:
		return []builder.FieldType{builder.FieldTypeBigInt, builder.FieldTypeAmount, builder.FieldTypeText}
	case builder.FieldTypeArray, builder.FieldTypeObject:
		return []builder.FieldType{def, builder.FieldTypeTextarea}
	default:
		return []builder.FieldType{def, builder.FieldTypeTextarea}
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
		Validation:            builder.FieldValidation{Required: !strings.HasPrefix(param.Type, "option<")},
		OriginalParameterType: param.Type,
	}
	switch ft {
	case builder.FieldTypeAddress:
		f.Placeholder = "Base58 public key"
		f.Validation.Custom = "address"
	case builder.FieldTypeArray, builder.FieldTypeObject:
		f.HelperText = "JSON-encoded value matching " + param.Type
	case builder.FieldTypeCheckbox:
		f.Validation.Required = false
		f.DefaultValue = false
	}
	return f
}
