package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"bbl-admins-portal/internal/entity"
	"bbl-admins-portal/internal/repo"
	"bbl-admins-portal/internal/repo/repo_errors"
)

// searchFields is the secondary lookup order after an exact tracking id miss.
var searchFields = []string{
	"consignmentNumberLower",
	"shakersNumberLower",
	"clientNameLower",
	"clientEmail",
}

type ShipmentService struct {
	shipmentRepo repo.Shipment
	notifier     Notifier
	newId        func() string
}

func NewShipmentService(repos *repo.Repositories, notifier Notifier) *ShipmentService {
	return &ShipmentService{
		shipmentRepo: repos.Shipment,
		notifier:     notifier,
		newId:        newTrackingId,
	}
}

func (s *ShipmentService) GetShipments(ctx context.Context) ([]entity.ShipmentOutputModel, error) {
	shipments, err := s.shipmentRepo.ListShipments(ctx)
	if err != nil {
		return nil, err
	}

	return mapShipments(shipments), nil
}

func (s *ShipmentService) FindShipment(ctx context.Context, query string) (*entity.ShipmentOutputModel, error) {
	shipment, err := s.shipmentRepo.GetShipmentById(ctx, query)
	if err == nil {
		return mapShipment(shipment), nil
	}
	if !errors.Is(err, repo_errors.ErrNotFound) {
		return nil, err
	}

	searchTerm := strings.ToLower(query)
	for _, field := range searchFields {
		matches, err := s.shipmentRepo.SearchShipments(ctx, field, searchTerm)
		if err != nil {
			return nil, err
		}
		if len(matches) == 0 {
			continue
		}

		// several shipments can share a client name; prefer the most
		// recently updated one
		best := matches[0]
		for _, match := range matches[1:] {
			if match.LastUpdate.After(best.LastUpdate) {
				best = match
			}
		}

		return mapShipment(&best), nil
	}

	return nil, ErrShipmentNotFound
}

func (s *ShipmentService) AddShipment(ctx context.Context, input *entity.CreateShipmentInput) (*entity.ShipmentOutputModel, error) {
	status := input.Status
	if status == "" {
		status = entity.ShipmentPending
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	id, err := s.allocateTrackingId(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	shipment := &entity.Shipment{
		Id:                    id,
		ClientName:            input.ClientName,
		ClientEmail:           strings.ToLower(input.ClientEmail),
		ConsignmentNumber:     input.ConsignmentNumber,
		ShakersNumber:         input.ShakersNumber,
		Origin:                input.Origin,
		Destination:           input.Destination,
		EstimatedDeliveryDate: input.EstimatedDeliveryDate,
		ShippingCompany:       input.ShippingCompany,
		Description:           input.Description,
		Status:                status,
		LastUpdate:            now,
		History: []entity.ShipmentHistoryItem{{
			Status:   status,
			Date:     now,
			Location: input.Origin,
			Remarks:  "Shipment created.",
		}},
		ConsignmentNumberLower: strings.ToLower(input.ConsignmentNumber),
		ShakersNumberLower:     strings.ToLower(input.ShakersNumber),
		ClientNameLower:        strings.ToLower(input.ClientName),
	}

	if err := s.shipmentRepo.CreateShipment(ctx, shipment); err != nil {
		return nil, err
	}

	if shipment.ClientEmail != "" {
		s.notifier.ShipmentCreated(shipment.ClientEmail, shipment.Id)
	}

	return mapShipment(shipment), nil
}

// UpdateShipment overwrites the editable fields and, only when the status
// actually changes, prepends a history entry. Last writer wins.
func (s *ShipmentService) UpdateShipment(ctx context.Context, id string, input *entity.UpdateShipmentInput) (*entity.ShipmentOutputModel, error) {
	if !input.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	shipment, err := s.shipmentRepo.GetShipmentById(ctx, id)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrShipmentNotFound
		}

		return nil, err
	}

	now := time.Now().UTC()
	statusChanged := input.Status != shipment.Status

	shipment.Description = input.Description
	shipment.Destination = input.Destination
	shipment.EstimatedDeliveryDate = input.EstimatedDeliveryDate
	shipment.Status = input.Status
	shipment.LastUpdate = now

	if statusChanged {
		location := input.Location
		if location == "" {
			location = "N/A"
		}
		remarks := input.Remarks
		if remarks == "" {
			remarks = "Status updated."
		}
		shipment.History = append([]entity.ShipmentHistoryItem{{
			Status:   input.Status,
			Date:     now,
			Location: location,
			Remarks:  remarks,
		}}, shipment.History...)
	}

	if err := s.shipmentRepo.UpdateShipment(ctx, shipment); err != nil {
		return nil, err
	}

	if statusChanged && shipment.ClientEmail != "" {
		s.notifier.ShipmentStatusChanged(shipment.ClientEmail, shipment.Id, string(input.Status))
	}

	shipment, err = s.shipmentRepo.GetShipmentById(ctx, id)
	if err != nil {
		return nil, err
	}

	return mapShipment(shipment), nil
}

func (s *ShipmentService) DeleteShipments(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	return s.shipmentRepo.DeleteShipments(ctx, ids)
}

// allocateTrackingId draws random ids until one is free in the store.
func (s *ShipmentService) allocateTrackingId(ctx context.Context) (string, error) {
	for attempt := 0; attempt < 10; attempt++ {
		id := s.newId()

		_, err := s.shipmentRepo.GetShipmentById(ctx, id)
		if errors.Is(err, repo_errors.ErrNotFound) {
			return id, nil
		}
		if err != nil {
			return "", err
		}
	}

	return "", fmt.Errorf("could not allocate a free tracking id")
}

func newTrackingId() string {
	return fmt.Sprintf("BBL-%06d", 100000+rand.IntN(900000))
}
