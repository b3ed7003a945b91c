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

const auctionCollection = "auctionItems"

// maxBatchOps is the Firestore limit on operations per batch write.
const maxBatchOps = 500

type AuctionRepo struct {
	*fsclient.Client
}

func NewAuctionRepo(client *fsclient.Client) *AuctionRepo {
	return &AuctionRepo{client}
}

func (r *AuctionRepo) col() *firestore.CollectionRef {
	return r.Firestore.Collection(auctionCollection)
}

func (r *AuctionRepo) CreateItem(ctx context.Context, item *entity.AuctionItem) (string, error) {
	ref := r.col().NewDoc()
	item.Id = ref.ID

	if _, err := ref.Create(ctx, item); err != nil {
		return "", err
	}

	return ref.ID, nil
}

// CreateItemsBatch writes the items in chunks that respect the batch
// operation limit. Ids are assigned in place.
func (r *AuctionRepo) CreateItemsBatch(ctx context.Context, items []entity.AuctionItem) ([]entity.AuctionItem, error) {
	for start := 0; start < len(items); start += maxBatchOps {
		end := start + maxBatchOps
		if end > len(items) {
			end = len(items)
		}

		batch := r.Firestore.Batch()
		for i := start; i < end; i++ {
			ref := r.col().NewDoc()
			items[i].Id = ref.ID
			batch.Set(ref, &items[i])
		}

		if _, err := batch.Commit(ctx); err != nil {
			return nil, err
		}
	}

	return items, nil
}

func (r *AuctionRepo) GetItemById(ctx context.Context, id string) (*entity.AuctionItem, error) {
	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return itemFromSnap(snap)
}

func (r *AuctionRepo) ListItems(ctx context.Context) ([]entity.AuctionItem, error) {
	iter := r.col().OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	items := make([]entity.AuctionItem, 0)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		item, err := itemFromSnap(snap)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}

	return items, nil
}

func (r *AuctionRepo) UpdateItem(ctx context.Context, item *entity.AuctionItem) error {
	_, err := r.col().Doc(item.Id).Set(ctx, item)

	return err
}

func (r *AuctionRepo) UpdateItemTx(ctx context.Context, id string, mutate func(*entity.AuctionItem) error) (*entity.AuctionItem, error) {
	var updated entity.AuctionItem

	ref := r.col().Doc(id)
	err := r.Firestore.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return repo_errors.ErrNotFound
			}

			return err
		}

		var item entity.AuctionItem
		if err := snap.DataTo(&item); err != nil {
			return err
		}
		item.Id = snap.Ref.ID

		if err := mutate(&item); err != nil {
			return err
		}

		updated = item

		return tx.Set(ref, &item)
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *AuctionRepo) UpdateItemsStatus(ctx context.Context, ids []string, status entity.AuctionItemStatus) error {
	if len(ids) == 0 {
		return nil
	}

	batch := r.Firestore.Batch()
	for _, id := range ids {
		batch.Update(r.col().Doc(id), []firestore.Update{{Path: "status", Value: status}})
	}
	_, err := batch.Commit(ctx)

	return err
}

func (r *AuctionRepo) DeleteItems(ctx context.Context, ids []string) error {
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

func itemFromSnap(snap *firestore.DocumentSnapshot) (*entity.AuctionItem, error) {
	var item entity.AuctionItem
	if err := snap.DataTo(&item); err != nil {
		return nil, err
	}
	item.Id = snap.Ref.ID

	return &item, nil
}
