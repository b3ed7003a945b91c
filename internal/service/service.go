package service

import (
	"context"

	"bbl-admins-portal/internal/ai"
	"bbl-admins-portal/internal/auth"
	"bbl-admins-portal/internal/entity"
	"bbl-admins-portal/internal/repo"

	"go.uber.org/zap"
)

type Diagnostics interface {
	Ping(ctx context.Context) error
}

type Shipment interface {
	GetShipments(ctx context.Context) ([]entity.ShipmentOutputModel, error)
	// FindShipment resolves a tracking id, consignment/shakers number,
	// client name or client email, in that order.
	FindShipment(ctx context.Context, query string) (*entity.ShipmentOutputModel, error)
	AddShipment(ctx context.Context, input *entity.CreateShipmentInput) (*entity.ShipmentOutputModel, error)
	UpdateShipment(ctx context.Context, id string, input *entity.UpdateShipmentInput) (*entity.ShipmentOutputModel, error)
	DeleteShipments(ctx context.Context, ids []string) error
}

type Auction interface {
	GetItems(ctx context.Context) ([]entity.AuctionItemOutputModel, error)
	GetItemById(ctx context.Context, id string) (*entity.AuctionItemOutputModel, error)
	AddItem(ctx context.Context, input *entity.CreateAuctionItemInput) (*entity.AuctionItemOutputModel, error)
	ImportItems(ctx context.Context, inputs []entity.CreateAuctionItemInput) ([]entity.AuctionItemOutputModel, error)
	UpdateItem(ctx context.Context, id string, input *entity.UpdateAuctionItemInput) (*entity.AuctionItemOutputModel, error)
	DeleteItems(ctx context.Context, ids []string) error
	PublishItems(ctx context.Context, ids []string) error
	PlaceBid(ctx context.Context, id string, amount float64, bidder entity.Bidder) (*entity.AuctionItemOutputModel, error)
	FinalizeSale(ctx context.Context, id string) (*entity.AuctionItemOutputModel, error)
}

type Admin interface {
	GetAdmins(ctx context.Context) ([]entity.AdminOutputModel, error)
	GetAdminById(ctx context.Context, id string) (*entity.AdminOutputModel, error)
	Invite(ctx context.Context, input *entity.InviteAdminInput) (*entity.AdminOutputModel, error)
	// GetInvitation is the set-password page load; it fails once the
	// invitation has expired.
	GetInvitation(ctx context.Context, id string) (*entity.AdminOutputModel, error)
	SetPassword(ctx context.Context, id string, password string) (*entity.AdminOutputModel, error)
	Approve(ctx context.Context, id string) (*entity.AdminOutputModel, error)
	UpdatePermissions(ctx context.Context, id string, permissions []entity.Permission) (*entity.AdminOutputModel, error)
	Remove(ctx context.Context, id string) error
	UpdateMyProfile(ctx context.Context, id string, input *entity.UpdateProfileInput) (*entity.AdminOutputModel, error)
	Authenticate(ctx context.Context, email, password string) (*entity.AdminOutputModel, error)
	SeedDefaultAdmin(ctx context.Context, name, email, password string) error
}

type PackingList interface {
	GetForms(ctx context.Context) ([]entity.PackingListForm, error)
	GetFormById(ctx context.Context, id string) (*entity.PackingListForm, error)
	CreateForm(ctx context.Context, input *entity.CreateFormInput) (*entity.PackingListForm, error)
	Submit(ctx context.Context, formId string, input *entity.SubmitFormInput) (*entity.PackingListSubmission, error)
	DeleteSubmissions(ctx context.Context, formId string, ids []string) error
}

type Chat interface {
	GetMessages(ctx context.Context) ([]entity.ChatMessageOutputModel, error)
	PostMessage(ctx context.Context, adminId, message string) (*entity.ChatMessageOutputModel, error)
	EditMessage(ctx context.Context, adminId, id, message string) (*entity.ChatMessageOutputModel, error)
	DeleteMessage(ctx context.Context, adminId, id string) error
	ClearHistory(ctx context.Context) error
}

type AI interface {
	GenerateAuctionDescription(ctx context.Context, itemName, keywords string) (string, error)
	GenerateDelayReason(ctx context.Context, input *ai.DelayReasonInput) (string, error)
	AnalyzeAuctionCSV(ctx context.Context, csvData string) (*ai.CSVAnalysisOutput, error)
	Ask(ctx context.Context, question string) (string, error)
}

// TextGenerator is what the AI service needs from the Gemini client.
type TextGenerator interface {
	GenerateAuctionDescription(ctx context.Context, input ai.AuctionDescriptionInput) (*ai.AuctionDescriptionOutput, error)
	GenerateDelayReason(ctx context.Context, input ai.DelayReasonInput) (*ai.DelayReasonOutput, error)
	AnalyzeAuctionCSV(ctx context.Context, csvData string, categories []string) (*ai.CSVAnalysisOutput, error)
	Ask(ctx context.Context, systemPrompt, question string, tools []ai.Tool) (string, error)
}

type Services struct {
	Diagnostics Diagnostics
	Shipment    Shipment
	Auction     Auction
	Admin       Admin
	PackingList PackingList
	Chat        Chat
	AI          AI
}

type Deps struct {
	Repos    *repo.Repositories
	Hasher   auth.PasswordHasher
	Notifier Notifier
	// Generator may be nil when no API key is configured; AI operations
	// then fail with ErrAIUnavailable.
	Generator TextGenerator
	Logger    *zap.Logger
}

func NewServices(deps Deps) *Services {
	shipments := NewShipmentService(deps.Repos, deps.Notifier)
	auctions := NewAuctionService(deps.Repos, deps.Notifier)
	admins := NewAdminService(deps.Repos, deps.Hasher, deps.Notifier)

	return &Services{
		Diagnostics: NewDiagnosticsService(deps.Repos),
		Shipment:    shipments,
		Auction:     auctions,
		Admin:       admins,
		PackingList: NewPackingListService(deps.Repos, shipments),
		Chat:        NewChatService(deps.Repos),
		AI:          NewAIService(deps.Generator, deps.Repos, shipments, auctions, admins, deps.Logger),
	}
}
