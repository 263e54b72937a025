package stellar

import (
	"strings"

	"github.com/openzeppelin/ui-builder-cli/internal/builder"
)

// MapParameterTypeToFieldType maps a Soroban spec type to the default UI
// field type. Vec and map types route to the structured-text field types.
func (a *Adapter) MapParameterTypeToFieldType(paramType string) builder.FieldType {
	switch {
	case strings.HasPrefix(paramType, "vec<"):
		return builder.FieldTypeArray
	case strings.HasPrefix(paramType, "map<"), strings.HasPrefix(paramType, "struct:"):
		return builder.FieldTypeObject
	}
	switch paramType {
	case "address":
		return builder.FieldTypeAddress
	case "bool":
		return builder.FieldTypeCheckbox
	case "u32", "i32":
		return builder.FieldTypeNumber
	case "u64", "i64", "u128", "i128", "u256", "i256", "timepoint", "duration":
		return builder.FieldTypeBigInt
	case "string", "symbol":
		return builder.FieldTypeText
	case "bytes", "bytesn":
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
		Validation:            builder.FieldValidation{Required: true},
		OriginalParameterType: param.Type,
	}
	switch ft {
	case builder.FieldTypeAddress:
		f.Placeholder = "G... or C..."
		f.Validation.Custom = "address"
	case builder.FieldTypeArray, builder.FieldTypeObject:
		f.HelperText = "JSON-encoded value matching " + param.Type
	case builder.FieldTypeCheckbox:
		f.Validation.Required = false
		f.DefaultValue = false
	}
	return f
}
