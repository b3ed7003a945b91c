package entity

import (
	"fmt"
	"net/mail"
	"regexp"
	"time"
)

type FormFieldType string

const (
	FieldText     FormFieldType = "text"
	FieldTextarea FormFieldType = "textarea"
	FieldCheckbox FormFieldType = "checkbox"
	FieldDropdown FormFieldType = "dropdown"
	FieldEmail    FormFieldType = "email"
	FieldTel      FormFieldType = "tel"
	FieldName     FormFieldType = "name"
	FieldSurname  FormFieldType = "surname"
)

func (t FormFieldType) Valid() bool {
	switch t {
	case FieldText, FieldTextarea, FieldCheckbox, FieldDropdown,
		FieldEmail, FieldTel, FieldName, FieldSurname:
		return true
	}

	return false
}

type FormFieldOption struct {
	Value string `json:"value" firestore:"value"`
}

type FormField struct {
	Type     FormFieldType     `json:"type" firestore:"type"`
	Label    string            `json:"label" firestore:"label"`
	Required bool              `json:"required" firestore:"required"`
	Options  []FormFieldOption `json:"options,omitempty" firestore:"options"`
}

var telPattern = regexp.MustCompile(`^\+?[0-9][0-9 ()-]{4,19}$`)

// Validate checks a submitted value against the field variant. Each field type
// owns its own rule rather than one shared type switch.
func (f *FormField) Validate(value any) error {
	switch f.Type {
	case FieldText, FieldTextarea, FieldName, FieldSurname:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("field '%s' expects text", f.Label)
		}
		if f.Required && s == "" {
			return fmt.Errorf("field '%s' is required", f.Label)
		}
	case FieldEmail:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("field '%s' expects an email address", f.Label)
		}
		if s == "" {
			if f.Required {
				return fmt.Errorf("field '%s' is required", f.Label)
			}
			return nil
		}
		if _, err := mail.ParseAddress(s); err != nil {
			return fmt.Errorf("field '%s' is not a valid email address", f.Label)
		}
	case FieldTel:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("field '%s' expects a phone number", f.Label)
		}
		if s == "" {
			if f.Required {
				return fmt.Errorf("field '%s' is required", f.Label)
			}
			return nil
		}
		if !telPattern.MatchString(s) {
			return fmt.Errorf("field '%s' is not a valid phone number", f.Label)
		}
	case FieldCheckbox:
		switch v := value.(type) {
		case bool:
			if f.Required && !v {
				return fmt.Errorf("field '%s' must be checked", f.Label)
			}
		case []string:
			if f.Required && len(v) == 0 {
				return fmt.Errorf("field '%s' is required", f.Label)
			}
			for _, choice := range v {
				if !f.hasOption(choice) {
					return fmt.Errorf("field '%s' has no option '%s'", f.Label, choice)
				}
			}
		case []any:
			// JSON arrays decode as []any when the submission payload is
			// bound into a map.
			if f.Required && len(v) == 0 {
				return fmt.Errorf("field '%s' is required", f.Label)
			}
			for _, raw := range v {
				choice, ok := raw.(string)
				if !ok {
					return fmt.Errorf("field '%s' expects a checkbox value", f.Label)
				}
				if !f.hasOption(choice) {
					return fmt.Errorf("field '%s' has no option '%s'", f.Label, choice)
				}
			}
		default:
			return fmt.Errorf("field '%s' expects a checkbox value", f.Label)
		}
	case FieldDropdown:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("field '%s' expects a selection", f.Label)
		}
		if s == "" {
			if f.Required {
				return fmt.Errorf("field '%s' is required", f.Label)
			}
			return nil
		}
		if !f.hasOption(s) {
			return fmt.Errorf("field '%s' has no option '%s'", f.Label, s)
		}
	default:
		return fmt.Errorf("field '%s' has unknown type '%s'", f.Label, f.Type)
	}

	return nil
}

func (f *FormField) hasOption(v string) bool {
	for _, opt := range f.Options {
		if opt.Value == v {
			return true
		}
	}

	return false
}

type TrackingNumberType string

const (
	TrackingConsignment TrackingNumberType = "consignment"
	TrackingShakers     TrackingNumberType = "shakers"
)

type TrackingNumberRef struct {
	Type   TrackingNumberType `json:"type" firestore:"type"`
	Number string             `json:"number" firestore:"number"`
}

type Submitter struct {
	Name  string `json:"name" firestore:"name"`
	Email string `json:"email" firestore:"email"`
}

// db model, stored in the form's submissions subcollection.
type PackingListSubmission struct {
	Id        string         `json:"id" firestore:"id"`
	FormId    string         `json:"formId" firestore:"formId"`
	Date      time.Time      `json:"date" firestore:"date"`
	Submitter Submitter      `json:"submitter" firestore:"submitter"`
	Data      map[string]any `json:"data" firestore:"data"`
}

// db model
type PackingListForm struct {
	Id             string                  `json:"id" firestore:"id"`
	Title          string                  `json:"title" firestore:"title"`
	Description    string                  `json:"description,omitempty" firestore:"description"`
	TrackingNumber *TrackingNumberRef      `json:"trackingNumber,omitempty" firestore:"trackingNumber"`
	Fields         []FormField             `json:"fields" firestore:"fields"`
	Submissions    []PackingListSubmission `json:"submissions" firestore:"-"`
	CreatedAt      time.Time               `json:"createdAt" firestore:"createdAt"`
}

// service + repo input model
type CreateFormInput struct {
	Title          string
	Description    string
	TrackingNumber *TrackingNumberRef
	Fields         []FormField
}

type SubmitFormInput struct {
	Submitter Submitter
	Data      map[string]any
}
