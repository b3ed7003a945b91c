package service

import (
	"context"
	"testing"
	"time"

	"bbl-admins-portal/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createForm(t *testing.T, env *testEnv) *entity.PackingListForm {
	t.Helper()

	form, err := env.services.PackingList.CreateForm(context.Background(), &entity.CreateFormInput{
		Title: "Electronics Shipment",
		TrackingNumber: &entity.TrackingNumberRef{
			Type:   entity.TrackingConsignment,
			Number: "CN-5005",
		},
		Fields: []entity.FormField{
			{Type: entity.FieldText, Label: "Item description", Required: true},
			{Type: entity.FieldEmail, Label: "Contact email", Required: true},
			{Type: entity.FieldDropdown, Label: "Fragility", Options: []entity.FormFieldOption{
				{Value: "Fragile"}, {Value: "Sturdy"},
			}},
		},
	})
	require.NoError(t, err)

	return form
}

func TestCreateFormRejectsBadDefinitions(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	cases := []struct {
		name   string
		fields []entity.FormField
	}{
		{"no fields", nil},
		{"missing label", []entity.FormField{{Type: entity.FieldText}}},
		{"unknown type", []entity.FormField{{Type: "signature", Label: "Sign here"}}},
		{"dropdown without options", []entity.FormField{{Type: entity.FieldDropdown, Label: "Choice"}}},
		{"duplicate labels", []entity.FormField{
			{Type: entity.FieldText, Label: "Item"},
			{Type: entity.FieldTextarea, Label: "Item"},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.services.PackingList.CreateForm(ctx, &entity.CreateFormInput{
				Title:  "Bad form",
				Fields: tc.fields,
			})
			assert.ErrorIs(t, err, ErrInvalidFormDef)
		})
	}
}

func TestSubmitValidatesAgainstSchema(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	form := createForm(t, env)

	// Missing required field.
	_, err := env.services.PackingList.Submit(ctx, form.Id, &entity.SubmitFormInput{
		Submitter: entity.Submitter{Name: "Chenai", Email: "chenai@example.com"},
		Data:      map[string]any{"Item description": "Two laptops"},
	})
	assert.ErrorIs(t, err, ErrInvalidSubmission)

	// Bad email value.
	_, err = env.services.PackingList.Submit(ctx, form.Id, &entity.SubmitFormInput{
		Submitter: entity.Submitter{Name: "Chenai", Email: "chenai@example.com"},
		Data: map[string]any{
			"Item description": "Two laptops",
			"Contact email":    "not-an-email",
		},
	})
	assert.ErrorIs(t, err, ErrInvalidSubmission)

	// Dropdown value outside the options.
	_, err = env.services.PackingList.Submit(ctx, form.Id, &entity.SubmitFormInput{
		Submitter: entity.Submitter{Name: "Chenai", Email: "chenai@example.com"},
		Data: map[string]any{
			"Item description": "Two laptops",
			"Contact email":    "chenai@example.com",
			"Fragility":        "Indestructible",
		},
	})
	assert.ErrorIs(t, err, ErrInvalidSubmission)

	// Nothing was stored and no shipment was spawned.
	stored, err := env.services.PackingList.GetFormById(ctx, form.Id)
	require.NoError(t, err)
	assert.Empty(t, stored.Submissions)

	shipments, err := env.services.Shipment.GetShipments(ctx)
	require.NoError(t, err)
	assert.Empty(t, shipments)
}

func TestSubmitSpawnsExactlyOneShipment(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	form := createForm(t, env)

	submission, err := env.services.PackingList.Submit(ctx, form.Id, &entity.SubmitFormInput{
		Submitter: entity.Submitter{Name: "Chenai", Email: "Chenai@Example.com"},
		Data: map[string]any{
			"Item description": "Two laptops and a printer",
			"Contact email":    "chenai@example.com",
			"Fragility":        "Fragile",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, form.Id, submission.FormId)
	assert.Equal(t, "chenai@example.com", submission.Submitter.Email)

	shipments, err := env.services.Shipment.GetShipments(ctx)
	require.NoError(t, err)
	require.Len(t, shipments, 1)

	shipment := shipments[0]
	assert.Equal(t, "Dubai", shipment.Origin)
	assert.Equal(t, "Zimbabwe", shipment.Destination)
	assert.Equal(t, "Beyond Borders Logistics", shipment.ShippingCompany)
	assert.Equal(t, string(entity.ShipmentPending), shipment.Status)
	assert.Equal(t, "CN-5005", shipment.ConsignmentNumber)
	assert.Equal(t, "Chenai", shipment.ClientName)

	// Description comes from the first declared field's value.
	assert.Equal(t, "Packing list for Electronics Shipment: Two laptops and a printer", shipment.Description)

	eta := time.Now().UTC().AddDate(0, 0, 14).Format("2006-01-02")
	assert.Equal(t, eta, shipment.EstimatedDeliveryDate)
}

func TestDeleteSubmissions(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	form := createForm(t, env)

	submission, err := env.services.PackingList.Submit(ctx, form.Id, &entity.SubmitFormInput{
		Submitter: entity.Submitter{Name: "Chenai", Email: "chenai@example.com"},
		Data: map[string]any{
			"Item description": "Two laptops",
			"Contact email":    "chenai@example.com",
		},
	})
	require.NoError(t, err)

	require.NoError(t, env.services.PackingList.DeleteSubmissions(ctx, form.Id, []string{submission.Id}))

	stored, err := env.services.PackingList.GetFormById(ctx, form.Id)
	require.NoError(t, err)
	assert.Empty(t, stored.Submissions)

	err = env.services.PackingList.DeleteSubmissions(ctx, "missing-form", []string{submission.Id})
	assert.ErrorIs(t, err, ErrFormNotFound)
}
