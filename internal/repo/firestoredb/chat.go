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

const chatCollection = "chatMessages"

type ChatRepo struct {
	*fsclient.Client
}

func NewChatRepo(client *fsclient.Client) *ChatRepo {
	return &ChatRepo{client}
}

func (r *ChatRepo) col() *firestore.CollectionRef {
	return r.Firestore.Collection(chatCollection)
}

func (r *ChatRepo) CreateMessage(ctx context.Context, message *entity.ChatMessage) (string, error) {
	ref := r.col().NewDoc()
	message.Id = ref.ID

	if _, err := ref.Create(ctx, message); err != nil {
		return "", err
	}

	return ref.ID, nil
}

func (r *ChatRepo) GetMessageById(ctx context.Context, id string) (*entity.ChatMessage, error) {
	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	var message entity.ChatMessage
	if err := snap.DataTo(&message); err != nil {
		return nil, err
	}
	message.Id = snap.Ref.ID

	return &message, nil
}

func (r *ChatRepo) ListMessages(ctx context.Context) ([]entity.ChatMessage, error) {
	iter := r.col().OrderBy("timestamp", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	messages := make([]entity.ChatMessage, 0)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var message entity.ChatMessage
		if err := snap.DataTo(&message); err != nil {
			return nil, err
		}
		message.Id = snap.Ref.ID
		messages = append(messages, message)
	}

	return messages, nil
}

func (r *ChatRepo) UpdateMessage(ctx context.Context, message *entity.ChatMessage) error {
	_, err := r.col().Doc(message.Id).Set(ctx, message)

	return err
}

func (r *ChatRepo) DeleteMessage(ctx context.Context, id string) error {
	_, err := r.col().Doc(id).Delete(ctx)

	return err
}

// ClearMessages deletes the whole collection in batch chunks.
func (r *ChatRepo) ClearMessages(ctx context.Context) error {
	iter := r.col().Documents(ctx)
	defer iter.Stop()

	batch := r.Firestore.Batch()
	pending := 0
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return err
		}

		batch.Delete(snap.Ref)
		pending++
		if pending == maxBatchOps {
			if _, err := batch.Commit(ctx); err != nil {
				return err
			}
			batch = r.Firestore.Batch()
			pending = 0
		}
	}

	if pending > 0 {
		if _, err := batch.Commit(ctx); err != nil {
			return err
		}
	}

	return nil
}
