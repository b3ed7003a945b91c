package memdb

import (
	"context"
	"sort"

	"bbl-admins-portal/internal/entity"
	"bbl-admins-portal/internal/repo/repo_errors"
)

type ShipmentRepo struct {
	store *Store
}

func NewShipmentRepo(store *Store) *ShipmentRepo {
	return &ShipmentRepo{store}
}

func (r *ShipmentRepo) CreateShipment(_ context.Context, shipment *entity.Shipment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.shipments[shipment.Id] = cloneShipment(shipment)

	return nil
}

func (r *ShipmentRepo) GetShipmentById(_ context.Context, id string) (*entity.Shipment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	shipment, ok := r.store.shipments[id]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}
	copied := cloneShipment(&shipment)

	return &copied, nil
}

func (r *ShipmentRepo) SearchShipments(_ context.Context, field string, value string) ([]entity.Shipment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	matches := make([]entity.Shipment, 0)
	for _, shipment := range r.store.shipments {
		var fieldValue string
		switch field {
		case "consignmentNumberLower":
			fieldValue = shipment.ConsignmentNumberLower
		case "shakersNumberLower":
			fieldValue = shipment.ShakersNumberLower
		case "clientNameLower":
			fieldValue = shipment.ClientNameLower
		case "clientEmail":
			fieldValue = shipment.ClientEmail
		}

		if fieldValue != "" && fieldValue == value {
			matches = append(matches, cloneShipment(&shipment))
		}
	}

	return matches, nil
}

func (r *ShipmentRepo) ListShipments(_ context.Context) ([]entity.Shipment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	shipments := make([]entity.Shipment, 0, len(r.store.shipments))
	for _, shipment := range r.store.shipments {
		shipments = append(shipments, cloneShipment(&shipment))
	}
	sort.Slice(shipments, func(i, j int) bool {
		return shipments[i].LastUpdate.After(shipments[j].LastUpdate)
	})

	return shipments, nil
}

func (r *ShipmentRepo) UpdateShipment(_ context.Context, shipment *entity.Shipment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.shipments[shipment.Id] = cloneShipment(shipment)

	return nil
}

func (r *ShipmentRepo) DeleteShipments(_ context.Context, ids []string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, id := range ids {
		delete(r.store.shipments, id)
	}

	return nil
}

func cloneShipment(s *entity.Shipment) entity.Shipment {
	copied := *s
	copied.History = append([]entity.ShipmentHistoryItem(nil), s.History...)

	return copied
}
