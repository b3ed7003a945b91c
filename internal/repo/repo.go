package repo

import (
	"context"

	"bbl-admins-portal/internal/entity"
	"bbl-admins-portal/internal/repo/firestoredb"
	"bbl-admins-portal/internal/repo/memdb"
	"bbl-admins-portal/pkg/fsclient"
)

type Diagnostics interface {
	Ping(ctx context.Context) error
}

type Shipment interface {
	CreateShipment(ctx context.Context, shipment *entity.Shipment) error
	GetShipmentById(ctx context.Context, id string) (*entity.Shipment, error)
	// SearchShipments matches an indexed document field by equality.
	SearchShipments(ctx context.Context, field string, value string) ([]entity.Shipment, error)
	ListShipments(ctx context.Context) ([]entity.Shipment, error)
	UpdateShipment(ctx context.Context, shipment *entity.Shipment) error
	DeleteShipments(ctx context.Context, ids []string) error
}

type Admin interface {
	CreateAdmin(ctx context.Context, admin *entity.AdminUser) (string, error)
	GetAdminById(ctx context.Context, id string) (*entity.AdminUser, error)
	GetAdminByEmail(ctx context.Context, email string) (*entity.AdminUser, error)
	ListAdmins(ctx context.Context) ([]entity.AdminUser, error)
	UpdateAdmin(ctx context.Context, admin *entity.AdminUser) error
	// UpdateAdminTx applies mutate to the stored record inside a transaction;
	// an error from mutate aborts the write and is returned unchanged.
	UpdateAdminTx(ctx context.Context, id string, mutate func(*entity.AdminUser) error) (*entity.AdminUser, error)
	DeleteAdmin(ctx context.Context, id string) error
}

type Auction interface {
	CreateItem(ctx context.Context, item *entity.AuctionItem) (string, error)
	CreateItemsBatch(ctx context.Context, items []entity.AuctionItem) ([]entity.AuctionItem, error)
	GetItemById(ctx context.Context, id string) (*entity.AuctionItem, error)
	ListItems(ctx context.Context) ([]entity.AuctionItem, error)
	UpdateItem(ctx context.Context, item *entity.AuctionItem) error
	// UpdateItemTx applies mutate to the stored record inside a transaction;
	// an error from mutate aborts the write and is returned unchanged.
	UpdateItemTx(ctx context.Context, id string, mutate func(*entity.AuctionItem) error) (*entity.AuctionItem, error)
	UpdateItemsStatus(ctx context.Context, ids []string, status entity.AuctionItemStatus) error
	DeleteItems(ctx context.Context, ids []string) error
}

type PackingList interface {
	CreateForm(ctx context.Context, form *entity.PackingListForm) (string, error)
	GetFormById(ctx context.Context, id string) (*entity.PackingListForm, error)
	ListForms(ctx context.Context) ([]entity.PackingListForm, error)
	AddSubmission(ctx context.Context, formId string, submission *entity.PackingListSubmission) (string, error)
	DeleteSubmissions(ctx context.Context, formId string, ids []string) error
}

type Chat interface {
	CreateMessage(ctx context.Context, message *entity.ChatMessage) (string, error)
	GetMessageById(ctx context.Context, id string) (*entity.ChatMessage, error)
	ListMessages(ctx context.Context) ([]entity.ChatMessage, error)
	UpdateMessage(ctx context.Context, message *entity.ChatMessage) error
	DeleteMessage(ctx context.Context, id string) error
	ClearMessages(ctx context.Context) error
}

type Repositories struct {
	Diagnostics
	Shipment
	Admin
	Auction
	PackingList
	Chat
}

func NewRepositories(client *fsclient.Client) *Repositories {
	return &Repositories{
		Diagnostics: firestoredb.NewDiagnosticsRepo(client),
		Shipment:    firestoredb.NewShipmentRepo(client),
		Admin:       firestoredb.NewAdminRepo(client),
		Auction:     firestoredb.NewAuctionRepo(client),
		PackingList: firestoredb.NewPackingListRepo(client),
		Chat:        firestoredb.NewChatRepo(client),
	}
}

// NewMemoryRepositories backs the repositories with the in-memory store.
// Used by tests and the STORE=memory development mode.
func NewMemoryRepositories() *Repositories {
	store := memdb.NewStore()

	return &Repositories{
		Diagnostics: memdb.NewDiagnosticsRepo(),
		Shipment:    memdb.NewShipmentRepo(store),
		Admin:       memdb.NewAdminRepo(store),
		Auction:     memdb.NewAuctionRepo(store),
		PackingList: memdb.NewPackingListRepo(store),
		Chat:        memdb.NewChatRepo(store),
	}
}
