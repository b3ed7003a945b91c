package firestoredb

import (
	"context"

	"bbl-admins-portal/internal/entity"
	"bbl-admins-portal/internal/repo/repo_errors"
	"bbl-admins-portal/pkg/fsclient"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const shipmentCollection = "shipments"

type ShipmentRepo struct {
	*fsclient.Client
}

func NewShipmentRepo(client *fsclient.Client) *ShipmentRepo {
	return &ShipmentRepo{client}
}

func (r *ShipmentRepo) col() *firestore.CollectionRef {
	return r.Firestore.Collection(shipmentCollection)
}

// CreateShipment stores the shipment under its tracking id.
func (r *ShipmentRepo) CreateShipment(ctx context.Context, shipment *entity.Shipment) error {
	_, err := r.col().Doc(shipment.Id).Create(ctx, shipment)

	return err
}

func (r *ShipmentRepo) GetShipmentById(ctx context.Context, id string) (*entity.Shipment, error) {
	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	var shipment entity.Shipment
	if err := snap.DataTo(&shipment); err != nil {
		return nil, err
	}
	shipment.Id = snap.Ref.ID

	return &shipment, nil
}

func (r *ShipmentRepo) SearchShipments(ctx context.Context, field string, value string) ([]entity.Shipment, error) {
	iter := r.col().Where(field, "==", value).Documents(ctx)
	defer iter.Stop()

	shipments := make([]entity.Shipment, 0)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var shipment entity.Shipment
		if err := snap.DataTo(&shipment); err != nil {
			return nil, err
		}
		shipment.Id = snap.Ref.ID
		shipments = append(shipments, shipment)
	}

	return shipments, nil
}

func (r *ShipmentRepo) ListShipments(ctx context.Context) ([]entity.Shipment, error) {
	iter := r.col().OrderBy("lastUpdate", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	shipments := make([]entity.Shipment, 0)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var shipment entity.Shipment
		if err := snap.DataTo(&shipment); err != nil {
			return nil, err
		}
		shipment.Id = snap.Ref.ID
		shipments = append(shipments, shipment)
	}

	return shipments, nil
}

func (r *ShipmentRepo) UpdateShipment(ctx context.Context, shipment *entity.Shipment) error {
	_, err := r.col().Doc(shipment.Id).Set(ctx, shipment)

	return err
}

// DeleteShipments removes the given records in one atomic batch write.
func (r *ShipmentRepo) DeleteShipments(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	batch := r.Firestore.Batch()
	for _, id := range ids {
		batch.Delete(r.col().Doc(id))
	}
	_, err := batch.Commit(ctx)

	return err
}
