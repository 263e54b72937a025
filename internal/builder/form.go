package builder

// FieldType tags the UI control used to collect one function parameter.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeNumber   FieldType = "number"
	FieldTypeBigInt   FieldType = "bigint"
	FieldTypeAddress  FieldType = "blockchain-address"
	FieldTypeCheckbox FieldType = "checkbox"
	FieldTypeSelect   FieldType = "select"
	FieldTypeTextarea FieldType = "textarea"
	FieldTypeDate     FieldType = "date"
	FieldTypeAmount   FieldType = "amount"
	FieldTypeBytes    FieldType = "bytes"
	// Arrays and tuples/structs are edited as structured text (JSON).
	FieldTypeArray  FieldType = "array"
	FieldTypeObject FieldType = "object"
)

// FieldValidation holds the validation rules attached to a field.
type FieldValidation struct {
	Required bool `json:"required"`
	// Custom names an adapter-supplied validator, e.g. "address" for
	// chain-native address format checks.
	Custom string `json:"custom,omitempty"`
	Min    *int64 `json:"min,omitempty"`
	Max    *int64 `json:"max,omitempty"`
}

// FormField is one input element of the generated form.
type FormField struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Label          string          `json:"label"`
	Type           FieldType       `json:"type"`
	Placeholder    string          `json:"placeholder,omitempty"`
	HelperText     string          `json:"helper_text,omitempty"`
	DefaultValue   any             `json:"default_value,omitempty"`
	Validation     FieldValidation `json:"validation"`
	IsHardcoded    bool            `json:"is_hardcoded,omitempty"`
	HardcodedValue any             `json:"hardcoded_value,omitempty"`
	IsHidden       bool            `json:"is_hidden,omitempty"`
	// OriginalParameterType preserves the chain-native type the field was
	// derived from, so transaction formatting can re-encode it.
	OriginalParameterType string `json:"original_parameter_type,omitempty"`
}

// BuilderFormConfig is the in-progress form definition. It is owned by the
// wizard while the user customizes fields, and is a read-only input to the
// export pipeline.
type BuilderFormConfig struct {
	FunctionID     string           `json:"function_id"`
	Fields         []FormField      `json:"fields"`
	Layout         LayoutConfig     `json:"layout"`
	ValidationMode string           `json:"validation_mode"` // "onChange" | "onBlur" | "onSubmit"
	Title          string           `json:"title,omitempty"`
	Description    string           `json:"description,omitempty"`
	Execution      *ExecutionConfig `json:"execution,omitempty"`
}

// LayoutConfig holds coarse layout settings for the generated form.
type LayoutConfig struct {
	Columns int    `json:"columns"`
	Spacing string `json:"spacing"` // "compact" | "normal" | "relaxed"
}

// DefaultFormConfig builds the initial form config for a function using the
// adapter-provided default fields. The caller customizes it from there.
func DefaultFormConfig(fn *ContractFunction, fields []FormField) *BuilderFormConfig {
	return &BuilderFormConfig{
		FunctionID:     fn.ID,
		Fields:         fields,
		Layout:         LayoutConfig{Columns: 1, Spacing: "normal"},
		ValidationMode: "onChange",
		Title:          fn.DisplayName,
	}
}

// HasFieldType reports whether any visible field in the config uses the
// given field type. Hardcoded hidden fields never render a control, so they
// do not count.
func (c *BuilderFormConfig) HasFieldType(t FieldType) bool {
	for _, f := range c.Fields {
		if f.Type == t && !(f.IsHidden && f.IsHardcoded) {
			return true
		}
	}
	return false
}
