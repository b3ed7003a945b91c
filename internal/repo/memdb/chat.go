package memdb

import (
	"context"
	"sort"

	"bbl-admins-portal/internal/entity"
	"bbl-admins-portal/internal/repo/repo_errors"

	"github.com/google/uuid"
)

type ChatRepo struct {
	store *Store
}

func NewChatRepo(store *Store) *ChatRepo {
	return &ChatRepo{store}
}

func (r *ChatRepo) CreateMessage(_ context.Context, message *entity.ChatMessage) (string, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	message.Id = uuid.NewString()
	r.store.messages[message.Id] = *message

	return message.Id, nil
}

func (r *ChatRepo) GetMessageById(_ context.Context, id string) (*entity.ChatMessage, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	message, ok := r.store.messages[id]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}

	return &message, nil
}

func (r *ChatRepo) ListMessages(_ context.Context) ([]entity.ChatMessage, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	messages := make([]entity.ChatMessage, 0, len(r.store.messages))
	for _, message := range r.store.messages {
		messages = append(messages, message)
	}
	sort.Slice(messages, func(i, j int) bool {
		return messages[i].Timestamp.Before(messages[j].Timestamp)
	})

	return messages, nil
}

func (r *ChatRepo) UpdateMessage(_ context.Context, message *entity.ChatMessage) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.messages[message.Id]; !ok {
		return repo_errors.ErrNotFound
	}
	r.store.messages[message.Id] = *message

	return nil
}

func (r *ChatRepo) DeleteMessage(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.messages, id)

	return nil
}

func (r *ChatRepo) ClearMessages(_ context.Context) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.messages = make(map[string]entity.ChatMessage)

	return nil
}
