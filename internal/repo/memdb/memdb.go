// Package memdb is an in-memory implementation of the store interfaces.
// It backs the service tests and the STORE=memory development mode.
package memdb

import (
	"sync"

	"bbl-admins-portal/internal/entity"
)

type Store struct {
	mu sync.RWMutex

	shipments map[string]entity.Shipment
	admins    map[string]entity.AdminUser
	items     map[string]entity.AuctionItem
	forms     map[string]entity.PackingListForm
	messages  map[string]entity.ChatMessage
}

func NewStore() *Store {
	return &Store{
		shipments: make(map[string]entity.Shipment),
		admins:    make(map[string]entity.AdminUser),
		items:     make(map[string]entity.AuctionItem),
		forms:     make(map[string]entity.PackingListForm),
		messages:  make(map[string]entity.ChatMessage),
	}
}
