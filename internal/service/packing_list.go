package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bbl-admins-portal/internal/entity"
	"bbl-admins-portal/internal/repo"
	"bbl-admins-portal/internal/repo/repo_errors"
)

type PackingListService struct {
	formRepo  repo.PackingList
	shipments Shipment
}

func NewPackingListService(repos *repo.Repositories, shipments Shipment) *PackingListService {
	return &PackingListService{
		formRepo:  repos.PackingList,
		shipments: shipments,
	}
}

func (s *PackingListService) CreateForm(ctx context.Context, input *entity.CreateFormInput) (*entity.PackingListForm, error) {
	if len(input.Fields) == 0 {
		return nil, ErrInvalidFormDef
	}

	seen := make(map[string]struct{}, len(input.Fields))
	for _, field := range input.Fields {
		if field.Label == "" || !field.Type.Valid() {
			return nil, ErrInvalidFormDef
		}
		if field.Type == entity.FieldDropdown && len(field.Options) == 0 {
			return nil, ErrInvalidFormDef
		}
		if _, ok := seen[field.Label]; ok {
			return nil, ErrInvalidFormDef
		}
		seen[field.Label] = struct{}{}
	}

	form := &entity.PackingListForm{
		Title:          input.Title,
		Description:    input.Description,
		TrackingNumber: input.TrackingNumber,
		Fields:         input.Fields,
		CreatedAt:      time.Now().UTC(),
	}

	if _, err := s.formRepo.CreateForm(ctx, form); err != nil {
		return nil, err
	}

	return form, nil
}

func (s *PackingListService) GetForms(ctx context.Context) ([]entity.PackingListForm, error) {
	return s.formRepo.ListForms(ctx)
}

func (s *PackingListService) GetFormById(ctx context.Context, id string) (*entity.PackingListForm, error) {
	form, err := s.formRepo.GetFormById(ctx, id)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrFormNotFound
		}

		return nil, err
	}

	return form, nil
}

// Submit validates the submitted values against the form definition, stores
// the submission and spawns a pending shipment for it.
func (s *PackingListService) Submit(ctx context.Context, formId string, input *entity.SubmitFormInput) (*entity.PackingListSubmission, error) {
	form, err := s.GetFormById(ctx, formId)
	if err != nil {
		return nil, err
	}

	for _, field := range form.Fields {
		value, present := input.Data[field.Label]
		if !present || value == nil {
			if field.Required {
				return nil, fmt.Errorf("%w: %q is required", ErrInvalidSubmission, field.Label)
			}

			continue
		}
		if err := field.Validate(value); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSubmission, err)
		}
	}

	submission := &entity.PackingListSubmission{
		FormId: form.Id,
		Date:   time.Now().UTC(),
		Submitter: entity.Submitter{
			Name:  input.Submitter.Name,
			Email: strings.ToLower(input.Submitter.Email),
		},
		Data: input.Data,
	}

	if _, err := s.formRepo.AddSubmission(ctx, form.Id, submission); err != nil {
		return nil, err
	}

	if _, err := s.spawnShipment(ctx, form, submission); err != nil {
		return nil, err
	}

	return submission, nil
}

func (s *PackingListService) DeleteSubmissions(ctx context.Context, formId string, submissionIds []string) error {
	if _, err := s.GetFormById(ctx, formId); err != nil {
		return err
	}

	return s.formRepo.DeleteSubmissions(ctx, formId, submissionIds)
}

func (s *PackingListService) spawnShipment(ctx context.Context, form *entity.PackingListForm, submission *entity.PackingListSubmission) (*entity.ShipmentOutputModel, error) {
	input := &entity.CreateShipmentInput{
		ClientName:            submission.Submitter.Name,
		ClientEmail:           submission.Submitter.Email,
		Origin:                "Dubai",
		Destination:           "Zimbabwe",
		ShippingCompany:       "Beyond Borders Logistics",
		EstimatedDeliveryDate: time.Now().UTC().AddDate(0, 0, 14).Format("2006-01-02"),
		Description:           submissionSummary(form, submission),
	}

	if tracking := form.TrackingNumber; tracking != nil {
		switch tracking.Type {
		case entity.TrackingConsignment:
			input.ConsignmentNumber = tracking.Number
		case entity.TrackingShakers:
			input.ShakersNumber = tracking.Number
		}
	}

	return s.shipments.AddShipment(ctx, input)
}

// submissionSummary builds a shipment description from the first filled
// field of the submission, in form declaration order.
func submissionSummary(form *entity.PackingListForm, submission *entity.PackingListSubmission) string {
	for _, field := range form.Fields {
		value, ok := submission.Data[field.Label]
		if !ok || value == nil {
			continue
		}

		text := fmt.Sprintf("%v", value)
		if text == "" {
			continue
		}
		if len(text) > 80 {
			text = text[:80] + "..."
		}

		return fmt.Sprintf("Packing list for %s: %s", form.Title, text)
	}

	return fmt.Sprintf("Packing list for %s", form.Title)
}
