package service

import (
	"context"
	"strings"
	"testing"

	"bbl-admins-portal/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddShipmentDefaults(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	shipment, err := env.services.Shipment.AddShipment(ctx, &entity.CreateShipmentInput{
		ClientName:  "Tinashe Moyo",
		ClientEmail: "Tinashe@Example.com",
		Origin:      "Dubai",
		Destination: "Zimbabwe",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(shipment.Id, "BBL-"))
	assert.Len(t, shipment.Id, 10)
	assert.Equal(t, string(entity.ShipmentPending), shipment.Status)
	assert.Equal(t, "tinashe@example.com", shipment.ClientEmail)

	require.Len(t, shipment.History, 1)
	assert.Equal(t, string(entity.ShipmentPending), shipment.History[0].Status)
	assert.Equal(t, "Dubai", shipment.History[0].Location)
	assert.Equal(t, "Shipment created.", shipment.History[0].Remarks)

	assert.Equal(t, []string{"tinashe@example.com"}, env.notifier.shipmentCreated)
}

func TestAddShipmentRetriesTakenTrackingIds(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	existing, err := env.services.Shipment.AddShipment(ctx, &entity.CreateShipmentInput{
		ClientName:  "First Client",
		Origin:      "Dubai",
		Destination: "Zimbabwe",
	})
	require.NoError(t, err)

	// Draw the taken id first, then a free one.
	ids := []string{existing.Id, "BBL-999999"}
	svc := env.services.Shipment.(*ShipmentService)
	svc.newId = func() string {
		id := ids[0]
		if len(ids) > 1 {
			ids = ids[1:]
		}

		return id
	}

	shipment, err := env.services.Shipment.AddShipment(ctx, &entity.CreateShipmentInput{
		ClientName:  "Second Client",
		Origin:      "Dubai",
		Destination: "Zimbabwe",
	})
	require.NoError(t, err)
	assert.Equal(t, "BBL-999999", shipment.Id)
}

func TestAddShipmentRejectsUnknownStatus(t *testing.T) {
	env := newTestEnv()

	_, err := env.services.Shipment.AddShipment(context.Background(), &entity.CreateShipmentInput{
		ClientName:  "Someone",
		Origin:      "Dubai",
		Destination: "Zimbabwe",
		Status:      "Lost",
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateShipmentPrependsHistoryOnlyOnStatusChange(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	created, err := env.services.Shipment.AddShipment(ctx, &entity.CreateShipmentInput{
		ClientName:  "Someone",
		Origin:      "Dubai",
		Destination: "Zimbabwe",
	})
	require.NoError(t, err)

	// Same status, edited description: no new history entry.
	updated, err := env.services.Shipment.UpdateShipment(ctx, created.Id, &entity.UpdateShipmentInput{
		Description: "Two boxes of spares",
		Destination: "Zimbabwe",
		Status:      entity.ShipmentPending,
	})
	require.NoError(t, err)
	assert.Len(t, updated.History, 1)
	assert.Equal(t, "Two boxes of spares", updated.Description)

	// Status change: exactly one entry prepended and mirrored in Status.
	updated, err = env.services.Shipment.UpdateShipment(ctx, created.Id, &entity.UpdateShipmentInput{
		Description: "Two boxes of spares",
		Destination: "Zimbabwe",
		Status:      entity.ShipmentInTransit,
		Location:    "Jebel Ali Port",
		Remarks:     "Loaded on vessel.",
	})
	require.NoError(t, err)
	require.Len(t, updated.History, 2)
	assert.Equal(t, string(entity.ShipmentInTransit), updated.Status)
	assert.Equal(t, updated.Status, updated.History[0].Status)
	assert.Equal(t, "Jebel Ali Port", updated.History[0].Location)
	assert.Equal(t, "Loaded on vessel.", updated.History[0].Remarks)
}

func TestUpdateShipmentHistoryDefaults(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	created, err := env.services.Shipment.AddShipment(ctx, &entity.CreateShipmentInput{
		ClientName:  "Someone",
		Origin:      "Dubai",
		Destination: "Zimbabwe",
	})
	require.NoError(t, err)

	updated, err := env.services.Shipment.UpdateShipment(ctx, created.Id, &entity.UpdateShipmentInput{
		Destination: "Zimbabwe",
		Status:      entity.ShipmentDelayed,
	})
	require.NoError(t, err)
	require.Len(t, updated.History, 2)
	assert.Equal(t, "N/A", updated.History[0].Location)
	assert.Equal(t, "Status updated.", updated.History[0].Remarks)
}

func TestUpdateShipmentNotFound(t *testing.T) {
	env := newTestEnv()

	_, err := env.services.Shipment.UpdateShipment(context.Background(), "BBL-000000", &entity.UpdateShipmentInput{
		Status: entity.ShipmentPending,
	})
	assert.ErrorIs(t, err, ErrShipmentNotFound)
}

func TestFindShipmentLookupOrder(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	byConsignment, err := env.services.Shipment.AddShipment(ctx, &entity.CreateShipmentInput{
		ClientName:        "Alice Banda",
		ConsignmentNumber: "CN-1001",
		Origin:            "Dubai",
		Destination:       "Zambia",
	})
	require.NoError(t, err)

	byShakers, err := env.services.Shipment.AddShipment(ctx, &entity.CreateShipmentInput{
		ClientName:    "Brian Chirwa",
		ShakersNumber: "SH-2002",
		Origin:        "Dubai",
		Destination:   "Zimbabwe",
	})
	require.NoError(t, err)

	// Exact tracking id wins over everything.
	found, err := env.services.Shipment.FindShipment(ctx, byShakers.Id)
	require.NoError(t, err)
	assert.Equal(t, byShakers.Id, found.Id)

	// Secondary lookups are case-insensitive.
	found, err = env.services.Shipment.FindShipment(ctx, "cn-1001")
	require.NoError(t, err)
	assert.Equal(t, byConsignment.Id, found.Id)

	found, err = env.services.Shipment.FindShipment(ctx, "sh-2002")
	require.NoError(t, err)
	assert.Equal(t, byShakers.Id, found.Id)

	found, err = env.services.Shipment.FindShipment(ctx, "alice banda")
	require.NoError(t, err)
	assert.Equal(t, byConsignment.Id, found.Id)

	_, err = env.services.Shipment.FindShipment(ctx, "no-such-shipment")
	assert.ErrorIs(t, err, ErrShipmentNotFound)
}

func TestFindShipmentPrefersMostRecentlyUpdated(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	first, err := env.services.Shipment.AddShipment(ctx, &entity.CreateShipmentInput{
		ClientName:  "Chipo Dube",
		Origin:      "Dubai",
		Destination: "Zimbabwe",
	})
	require.NoError(t, err)

	second, err := env.services.Shipment.AddShipment(ctx, &entity.CreateShipmentInput{
		ClientName:  "Chipo Dube",
		Origin:      "Dubai",
		Destination: "Zambia",
	})
	require.NoError(t, err)

	// Touch the first one so it becomes the most recently updated.
	_, err = env.services.Shipment.UpdateShipment(ctx, first.Id, &entity.UpdateShipmentInput{
		Destination: "Zimbabwe",
		Status:      entity.ShipmentInTransit,
	})
	require.NoError(t, err)

	found, err := env.services.Shipment.FindShipment(ctx, "Chipo Dube")
	require.NoError(t, err)
	assert.Equal(t, first.Id, found.Id)
	assert.NotEqual(t, second.Id, found.Id)
}

// Full lifecycle: create, progress through statuses, look up by consignment
// number, and verify the history reads newest first.
func TestShipmentLifecycle(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	created, err := env.services.Shipment.AddShipment(ctx, &entity.CreateShipmentInput{
		ClientName:        "Kudzai Ncube",
		ClientEmail:       "kudzai@example.com",
		ConsignmentNumber: "CN-CHINA-88",
		Origin:            "China",
		Destination:       "Zambia",
		ShippingCompany:   "Beyond Borders Logistics",
	})
	require.NoError(t, err)

	_, err = env.services.Shipment.UpdateShipment(ctx, created.Id, &entity.UpdateShipmentInput{
		Destination: "Zambia",
		Status:      entity.ShipmentInTransit,
		Location:    "Indian Ocean",
	})
	require.NoError(t, err)

	final, err := env.services.Shipment.UpdateShipment(ctx, created.Id, &entity.UpdateShipmentInput{
		Destination: "Zambia",
		Status:      entity.ShipmentDelivered,
		Location:    "Lusaka",
		Remarks:     "Received by client.",
	})
	require.NoError(t, err)

	found, err := env.services.Shipment.FindShipment(ctx, "cn-china-88")
	require.NoError(t, err)
	assert.Equal(t, created.Id, found.Id)
	assert.Equal(t, string(entity.ShipmentDelivered), found.Status)

	require.Len(t, found.History, 3)
	assert.Equal(t, string(entity.ShipmentDelivered), found.History[0].Status)
	assert.Equal(t, "Lusaka", found.History[0].Location)
	assert.Equal(t, string(entity.ShipmentPending), found.History[2].Status)

	assert.Equal(t, final.History, found.History)
	assert.Contains(t, env.notifier.statusChanged, "kudzai@example.com:Delivered")
}

func TestDeleteShipments(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	created, err := env.services.Shipment.AddShipment(ctx, &entity.CreateShipmentInput{
		ClientName:  "Someone",
		Origin:      "Dubai",
		Destination: "Zimbabwe",
	})
	require.NoError(t, err)

	require.NoError(t, env.services.Shipment.DeleteShipments(ctx, []string{created.Id}))

	_, err = env.services.Shipment.FindShipment(ctx, created.Id)
	assert.ErrorIs(t, err, ErrShipmentNotFound)
}
