package evm

import (
	"strconv"
	"strings"

	"github.com/openzeppelin/ui-builder-cli/internal/builder"
)

// MapParameterTypeToFieldType maps a Solidity parameter type to the default
// UI field type. Arrays and tuples route to the structured-text field types.
func (a *Adapter) MapParameterTypeToFieldType(paramType string) builder.FieldType {
	if strings.HasSuffix(paramType, "]") {
		return builder.FieldTypeArray
	}
	if paramType == "tuple" || strings.HasPrefix(paramType, "tuple") {
		return builder.FieldTypeObject
	}
	switch {
	case paramType == "address":
		return builder.FieldTypeAddress
	case paramType == "bool":
		return builder.FieldTypeCheckbox
	case paramType == "string":
		return builder.FieldTypeText
	case paramType == "bytes" || strings.HasPrefix(paramType, "bytes"):
		return builder.FieldTypeBytes
	case strings.HasPrefix(paramType, "uint"), strings.HasPrefix(paramType, "int"):
		if intBits(paramType) <= 32 {
			return builder.FieldTypeNumber
		}
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
		return []builder.FieldType{builder.FieldTypeAddress, builder.FieldTypeText, builder.FieldTypeSelect}
	case builder.FieldTypeNumber:
		return []builder.FieldType{builder.FieldTypeNumber, builder.FieldTypeBigInt, builder.FieldTypeText, builder.FieldTypeSelect}
	case builder.FieldTypeBigInt:
		return []builder.FieldType{builder.FieldTypeBigInt, builder.FieldTypeAmount, builder.FieldTypeText}
	case builder.FieldTypeCheckbox:
		return []builder.FieldType{builder.FieldTypeCheckbox, builder.FieldTypeSelect}
	case builder.FieldTypeArray, builder.FieldTypeObject:
		return []builder.FieldType{def, builder.FieldTypeTextarea}
	case builder.FieldTypeBytes:
		return []builder.FieldType{builder.FieldTypeBytes, builder.FieldTypeTextarea, builder.FieldTypeText}
	default:
		return []builder.FieldType{def, builder.FieldTypeTextarea}
	}
}

// GenerateDefaultField builds the default field config for one parameter.
// Validation defaults to required, with the chain address validator attached
// for address parameters.
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
		f.Placeholder = "0x..."
		f.Validation.Custom = "address"
	case builder.FieldTypeArray, builder.FieldTypeObject:
		f.HelperText = "JSON-encoded value matching " + param.Type
	case builder.FieldTypeCheckbox:
		f.Validation.Required = false
		f.DefaultValue = false
	}
	return f
}

// intBits returns the bit width of a uint/int Solidity type. Bare
// "uint"/"int" alias the 256-bit form.
func intBits(paramType string) int {
	s := strings.TrimPrefix(strings.TrimPrefix(paramType, "u"), "int")
	if s == "" {
		return 256
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 256
	}
	return n
}
