package service

import (
	"context"
	"errors"
	"time"

	"bbl-admins-portal/internal/entity"
	"bbl-admins-portal/internal/repo"
	"bbl-admins-portal/internal/repo/repo_errors"
)

type AuctionService struct {
	auctionRepo repo.Auction
	notifier    Notifier
}

func NewAuctionService(repos *repo.Repositories, notifier Notifier) *AuctionService {
	return &AuctionService{
		auctionRepo: repos.Auction,
		notifier:    notifier,
	}
}

func (s *AuctionService) GetItems(ctx context.Context) ([]entity.AuctionItemOutputModel, error) {
	items, err := s.auctionRepo.ListItems(ctx)
	if err != nil {
		return nil, err
	}

	return mapAuctionItems(items), nil
}

func (s *AuctionService) GetItemById(ctx context.Context, id string) (*entity.AuctionItemOutputModel, error) {
	item, err := s.auctionRepo.GetItemById(ctx, id)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrItemNotFound
		}

		return nil, err
	}

	return mapAuctionItem(item), nil
}

func (s *AuctionService) AddItem(ctx context.Context, input *entity.CreateAuctionItemInput) (*entity.AuctionItemOutputModel, error) {
	item, err := itemFromInput(input)
	if err != nil {
		return nil, err
	}

	if _, err := s.auctionRepo.CreateItem(ctx, item); err != nil {
		return nil, err
	}

	return mapAuctionItem(item), nil
}

// ImportItems persists a cleaned CSV batch in one go.
func (s *AuctionService) ImportItems(ctx context.Context, inputs []entity.CreateAuctionItemInput) ([]entity.AuctionItemOutputModel, error) {
	items := make([]entity.AuctionItem, 0, len(inputs))
	for i := range inputs {
		item, err := itemFromInput(&inputs[i])
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}

	created, err := s.auctionRepo.CreateItemsBatch(ctx, items)
	if err != nil {
		return nil, err
	}

	return mapAuctionItems(created), nil
}

func (s *AuctionService) UpdateItem(ctx context.Context, id string, input *entity.UpdateAuctionItemInput) (*entity.AuctionItemOutputModel, error) {
	if input.Category != nil && !entity.ValidAuctionCategory(*input.Category) {
		return nil, ErrInvalidCategory
	}
	if input.Status != nil && !input.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	item, err := s.auctionRepo.GetItemById(ctx, id)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrItemNotFound
		}

		return nil, err
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.Price != nil {
		item.Price = *input.Price
	}
	if input.ImageUrls != nil {
		item.ImageUrls = input.ImageUrls
	}
	if input.Category != nil {
		item.Category = *input.Category
	}
	if input.Quantity != nil {
		item.Quantity = *input.Quantity
	}
	if input.Status != nil {
		item.Status = *input.Status
	}

	if err := s.auctionRepo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}

	return mapAuctionItem(item), nil
}

func (s *AuctionService) DeleteItems(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	return s.auctionRepo.DeleteItems(ctx, ids)
}

func (s *AuctionService) PublishItems(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	return s.auctionRepo.UpdateItemsStatus(ctx, ids, entity.AuctionListed)
}

// PlaceBid runs the amount check and the write inside one transaction so two
// concurrent bidders cannot both pass the comparison against a stale read.
func (s *AuctionService) PlaceBid(ctx context.Context, id string, amount float64, bidder entity.Bidder) (*entity.AuctionItemOutputModel, error) {
	updated, err := s.auctionRepo.UpdateItemTx(ctx, id, func(item *entity.AuctionItem) error {
		if item.Status == entity.AuctionDraft || item.Status == entity.AuctionSold {
			return ErrItemNotListed
		}

		floor := item.Price
		if item.CurrentBid > floor {
			floor = item.CurrentBid
		}
		if amount <= floor {
			return ErrInvalidBid
		}

		item.CurrentBid = amount
		item.Status = entity.AuctionBidOn
		item.HighestBidder = &bidder
		item.BidHistory = append(item.BidHistory, entity.Bid{
			Amount:    amount,
			Bidder:    bidder,
			Timestamp: time.Now().UTC(),
		})

		return nil
	})
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrItemNotFound
		}

		return nil, err
	}

	return mapAuctionItem(updated), nil
}

// FinalizeSale marks a BidOn item Sold. Sold is terminal, so calling this
// twice fails the second time.
func (s *AuctionService) FinalizeSale(ctx context.Context, id string) (*entity.AuctionItemOutputModel, error) {
	updated, err := s.auctionRepo.UpdateItemTx(ctx, id, func(item *entity.AuctionItem) error {
		if item.Status != entity.AuctionBidOn || item.HighestBidder == nil {
			return ErrNotBiddable
		}

		item.Status = entity.AuctionSold

		return nil
	})
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrItemNotFound
		}

		return nil, err
	}

	s.notifier.AuctionWon(updated.HighestBidder.Email, updated.Name)

	return mapAuctionItem(updated), nil
}

func itemFromInput(input *entity.CreateAuctionItemInput) (*entity.AuctionItem, error) {
	if !entity.ValidAuctionCategory(input.Category) {
		return nil, ErrInvalidCategory
	}

	status := input.Status
	if status == "" {
		status = entity.AuctionListed
	}
	if status != entity.AuctionDraft && status != entity.AuctionListed {
		return nil, ErrInvalidStatus
	}

	quantity := input.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	return &entity.AuctionItem{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		ImageUrls:   input.ImageUrls,
		Category:    input.Category,
		Status:      status,
		Quantity:    quantity,
		BidHistory:  make([]entity.Bid, 0),
		CreatedAt:   time.Now().UTC(),
	}, nil
}
