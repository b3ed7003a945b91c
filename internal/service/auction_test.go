package service

import (
	"context"
	"testing"

	"bbl-admins-portal/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listItem(t *testing.T, env *testEnv, price float64) *entity.AuctionItemOutputModel {
	t.Helper()

	item, err := env.services.Auction.AddItem(context.Background(), &entity.CreateAuctionItemInput{
		Name:     "Diamond Ring",
		Price:    price,
		Category: "Jewellery",
	})
	require.NoError(t, err)

	return item
}

func testBidder(name string) entity.Bidder {
	return entity.Bidder{
		Name:  name,
		Email: name + "@example.com",
		Phone: "+971501234567",
	}
}

func TestAddItemDefaults(t *testing.T) {
	env := newTestEnv()

	item := listItem(t, env, 100)
	assert.Equal(t, string(entity.AuctionListed), item.Status)
	assert.Equal(t, 1, item.Quantity)
	assert.Empty(t, item.BidHistory)
}

func TestAddItemRejectsUnknownCategory(t *testing.T) {
	env := newTestEnv()

	_, err := env.services.Auction.AddItem(context.Background(), &entity.CreateAuctionItemInput{
		Name:     "Mystery Box",
		Price:    10,
		Category: "Antiques",
	})
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestAddItemRejectsNonInitialStatus(t *testing.T) {
	env := newTestEnv()

	_, err := env.services.Auction.AddItem(context.Background(), &entity.CreateAuctionItemInput{
		Name:     "Gold Chain",
		Price:    10,
		Category: "Jewellery",
		Status:   entity.AuctionSold,
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestPlaceBidRaisesPriceAndStatus(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	item := listItem(t, env, 100)

	updated, err := env.services.Auction.PlaceBid(ctx, item.Id, 150, testBidder("alice"))
	require.NoError(t, err)

	assert.Equal(t, string(entity.AuctionBidOn), updated.Status)
	assert.Equal(t, 150.0, updated.CurrentBid)
	require.NotNil(t, updated.HighestBidder)
	assert.Equal(t, "alice@example.com", updated.HighestBidder.Email)
	require.Len(t, updated.BidHistory, 1)
}

func TestPlaceBidMustExceedCurrentPrice(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	item := listItem(t, env, 100)

	// Equal to the starting price is not enough.
	_, err := env.services.Auction.PlaceBid(ctx, item.Id, 100, testBidder("alice"))
	assert.ErrorIs(t, err, ErrInvalidBid)

	_, err = env.services.Auction.PlaceBid(ctx, item.Id, 150, testBidder("alice"))
	require.NoError(t, err)

	// Equal to the current bid is not enough either.
	_, err = env.services.Auction.PlaceBid(ctx, item.Id, 150, testBidder("bob"))
	assert.ErrorIs(t, err, ErrInvalidBid)

	// A failed bid changes nothing.
	after, err := env.services.Auction.GetItemById(ctx, item.Id)
	require.NoError(t, err)
	assert.Equal(t, 150.0, after.CurrentBid)
	assert.Equal(t, "alice@example.com", after.HighestBidder.Email)
	assert.Len(t, after.BidHistory, 1)
}

func TestPlaceBidOnDraftOrSoldItem(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	draft, err := env.services.Auction.AddItem(ctx, &entity.CreateAuctionItemInput{
		Name:     "Draft Item",
		Price:    50,
		Category: "Gadgets",
		Status:   entity.AuctionDraft,
	})
	require.NoError(t, err)

	_, err = env.services.Auction.PlaceBid(ctx, draft.Id, 60, testBidder("alice"))
	assert.ErrorIs(t, err, ErrItemNotListed)

	sold := listItem(t, env, 100)
	_, err = env.services.Auction.PlaceBid(ctx, sold.Id, 150, testBidder("alice"))
	require.NoError(t, err)
	_, err = env.services.Auction.FinalizeSale(ctx, sold.Id)
	require.NoError(t, err)

	_, err = env.services.Auction.PlaceBid(ctx, sold.Id, 200, testBidder("bob"))
	assert.ErrorIs(t, err, ErrItemNotListed)
}

func TestPlaceBidUnknownItem(t *testing.T) {
	env := newTestEnv()

	_, err := env.services.Auction.PlaceBid(context.Background(), "missing", 10, testBidder("alice"))
	assert.ErrorIs(t, err, ErrItemNotFound)
}

// $100 listing, $150 bid, finalize; the second finalize must fail because
// Sold is terminal.
func TestAuctionSaleLifecycle(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	item := listItem(t, env, 100)

	bidOn, err := env.services.Auction.PlaceBid(ctx, item.Id, 150, testBidder("alice"))
	require.NoError(t, err)
	assert.Equal(t, string(entity.AuctionBidOn), bidOn.Status)

	sold, err := env.services.Auction.FinalizeSale(ctx, item.Id)
	require.NoError(t, err)
	assert.Equal(t, string(entity.AuctionSold), sold.Status)
	assert.Equal(t, []string{"alice@example.com:Diamond Ring"}, env.notifier.auctionWinners)

	_, err = env.services.Auction.FinalizeSale(ctx, item.Id)
	assert.ErrorIs(t, err, ErrNotBiddable)
}

func TestFinalizeSaleRequiresBid(t *testing.T) {
	env := newTestEnv()

	item := listItem(t, env, 100)

	_, err := env.services.Auction.FinalizeSale(context.Background(), item.Id)
	assert.ErrorIs(t, err, ErrNotBiddable)
	assert.Empty(t, env.notifier.auctionWinners)
}

func TestImportItems(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	created, err := env.services.Auction.ImportItems(ctx, []entity.CreateAuctionItemInput{
		{Name: "Drill", Price: 40, Category: "Hardware"},
		{Name: "Necklace", Price: 80, Category: "Jewellery", Quantity: 3, Status: entity.AuctionDraft},
	})
	require.NoError(t, err)
	require.Len(t, created, 2)

	assert.Equal(t, 1, created[0].Quantity)
	assert.Equal(t, string(entity.AuctionListed), created[0].Status)
	assert.Equal(t, 3, created[1].Quantity)
	assert.Equal(t, string(entity.AuctionDraft), created[1].Status)

	_, err = env.services.Auction.ImportItems(ctx, []entity.CreateAuctionItemInput{
		{Name: "Unknown", Price: 5, Category: "Furniture"},
	})
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestPublishItems(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	draft, err := env.services.Auction.AddItem(ctx, &entity.CreateAuctionItemInput{
		Name:     "Draft Item",
		Price:    50,
		Category: "Gadgets",
		Status:   entity.AuctionDraft,
	})
	require.NoError(t, err)

	require.NoError(t, env.services.Auction.PublishItems(ctx, []string{draft.Id}))

	published, err := env.services.Auction.GetItemById(ctx, draft.Id)
	require.NoError(t, err)
	assert.Equal(t, string(entity.AuctionListed), published.Status)
}

func TestUpdateItemPatchesOnlyGivenFields(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	item := listItem(t, env, 100)

	newName := "Sapphire Ring"
	updated, err := env.services.Auction.UpdateItem(ctx, item.Id, &entity.UpdateAuctionItemInput{
		Name: &newName,
	})
	require.NoError(t, err)
	assert.Equal(t, "Sapphire Ring", updated.Name)
	assert.Equal(t, 100.0, updated.Price)
	assert.Equal(t, "Jewellery", updated.Category)

	badCategory := "Furniture"
	_, err = env.services.Auction.UpdateItem(ctx, item.Id, &entity.UpdateAuctionItemInput{
		Category: &badCategory,
	})
	assert.ErrorIs(t, err, ErrInvalidCategory)
}
