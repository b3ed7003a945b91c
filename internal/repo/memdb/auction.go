package memdb

import (
	"context"
	"sort"

	"bbl-admins-portal/internal/entity"
	"bbl-admins-portal/internal/repo/repo_errors"

	"github.com/google/uuid"
)

type AuctionRepo struct {
	store *Store
}

func NewAuctionRepo(store *Store) *AuctionRepo {
	return &AuctionRepo{store}
}

func (r *AuctionRepo) CreateItem(_ context.Context, item *entity.AuctionItem) (string, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item.Id = uuid.NewString()
	r.store.items[item.Id] = cloneItem(item)

	return item.Id, nil
}

func (r *AuctionRepo) CreateItemsBatch(_ context.Context, items []entity.AuctionItem) ([]entity.AuctionItem, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range items {
		items[i].Id = uuid.NewString()
		r.store.items[items[i].Id] = cloneItem(&items[i])
	}

	return items, nil
}

func (r *AuctionRepo) GetItemById(_ context.Context, id string) (*entity.AuctionItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.items[id]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}
	copied := cloneItem(&item)

	return &copied, nil
}

func (r *AuctionRepo) ListItems(_ context.Context) ([]entity.AuctionItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	items := make([]entity.AuctionItem, 0, len(r.store.items))
	for _, item := range r.store.items {
		items = append(items, cloneItem(&item))
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })

	return items, nil
}

func (r *AuctionRepo) UpdateItem(_ context.Context, item *entity.AuctionItem) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.items[item.Id]; !ok {
		return repo_errors.ErrNotFound
	}
	r.store.items[item.Id] = cloneItem(item)

	return nil
}

func (r *AuctionRepo) UpdateItemTx(_ context.Context, id string, mutate func(*entity.AuctionItem) error) (*entity.AuctionItem, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item, ok := r.store.items[id]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}

	if err := mutate(&item); err != nil {
		return nil, err
	}
	r.store.items[id] = cloneItem(&item)

	return &item, nil
}

func (r *AuctionRepo) UpdateItemsStatus(_ context.Context, ids []string, status entity.AuctionItemStatus) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, id := range ids {
		item, ok := r.store.items[id]
		if !ok {
			continue
		}
		item.Status = status
		r.store.items[id] = item
	}

	return nil
}

func (r *AuctionRepo) DeleteItems(_ context.Context, ids []string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, id := range ids {
		delete(r.store.items, id)
	}

	return nil
}

func cloneItem(item *entity.AuctionItem) entity.AuctionItem {
	copied := *item
	copied.ImageUrls = append([]string(nil), item.ImageUrls...)
	copied.BidHistory = append([]entity.Bid(nil), item.BidHistory...)
	if item.HighestBidder != nil {
		bidder := *item.HighestBidder
		copied.HighestBidder = &bidder
	}

	return copied
}
