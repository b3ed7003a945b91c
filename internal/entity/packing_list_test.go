package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormFieldTypeValid(t *testing.T) {
	for _, ft := range []FormFieldType{
		FieldText, FieldTextarea, FieldCheckbox, FieldDropdown,
		FieldEmail, FieldTel, FieldName, FieldSurname,
	} {
		assert.True(t, ft.Valid(), string(ft))
	}

	assert.False(t, FormFieldType("number").Valid())
	assert.False(t, FormFieldType("").Valid())
}

func TestFormFieldValidate(t *testing.T) {
	dropdown := FormField{
		Type:     FieldDropdown,
		Label:    "Packaging",
		Required: true,
		Options:  []FormFieldOption{{Value: "Fragile"}, {Value: "Sturdy"}},
	}

	tests := []struct {
		name    string
		field   FormField
		value   any
		wantErr bool
	}{
		{"text ok", FormField{Type: FieldText, Label: "Contents", Required: true}, "two laptops", false},
		{"text required empty", FormField{Type: FieldText, Label: "Contents", Required: true}, "", true},
		{"text optional empty", FormField{Type: FieldText, Label: "Notes"}, "", false},
		{"text wrong type", FormField{Type: FieldText, Label: "Contents"}, 42, true},

		{"email ok", FormField{Type: FieldEmail, Label: "Email"}, "tari@example.com", false},
		{"email invalid", FormField{Type: FieldEmail, Label: "Email"}, "not-an-email", true},
		{"email optional empty", FormField{Type: FieldEmail, Label: "Email"}, "", false},

		{"tel ok", FormField{Type: FieldTel, Label: "Phone"}, "+263 77 123 4567", false},
		{"tel invalid", FormField{Type: FieldTel, Label: "Phone"}, "call me maybe", true},

		{"checkbox bool ok", FormField{Type: FieldCheckbox, Label: "Insured"}, true, false},
		{"checkbox required unchecked", FormField{Type: FieldCheckbox, Label: "Terms", Required: true}, false, true},
		{"checkbox choices ok", FormField{Type: FieldCheckbox, Label: "Extras",
			Options: []FormFieldOption{{Value: "Wrap"}, {Value: "Label"}}}, []string{"Wrap"}, false},
		{"checkbox unknown choice", FormField{Type: FieldCheckbox, Label: "Extras",
			Options: []FormFieldOption{{Value: "Wrap"}}}, []string{"Insure"}, true},
		{"checkbox mixed element types", FormField{Type: FieldCheckbox, Label: "Extras",
			Options: []FormFieldOption{{Value: "Wrap"}}}, []any{"Wrap", 7}, true},
		{"checkbox wrong type", FormField{Type: FieldCheckbox, Label: "Insured"}, "yes", true},

		{"dropdown ok", dropdown, "Fragile", false},
		{"dropdown unknown option", dropdown, "Liquid", true},
		{"dropdown required empty", dropdown, "", true},

		{"unknown type", FormField{Type: "number", Label: "Weight"}, "5", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.field.Validate(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// Multi-select values reach Validate as []any because submission payloads
// are JSON-decoded into a map.
func TestFormFieldValidateJSONDecodedCheckbox(t *testing.T) {
	field := FormField{
		Type:    FieldCheckbox,
		Label:   "Contents",
		Options: []FormFieldOption{{Value: "Laptops"}, {Value: "Printers"}},
	}

	var data map[string]any
	require.NoError(t, json.Unmarshal([]byte(`{"Contents":["Laptops","Printers"]}`), &data))
	assert.NoError(t, field.Validate(data["Contents"]))

	require.NoError(t, json.Unmarshal([]byte(`{"Contents":["Couches"]}`), &data))
	assert.Error(t, field.Validate(data["Contents"]))
}
