package service

import (
	"context"
	"errors"
	"time"

	"bbl-admins-portal/internal/ai"
	"bbl-admins-portal/internal/entity"
	"bbl-admins-portal/internal/repo"
	"bbl-admins-portal/internal/repo/repo_errors"

	"go.uber.org/zap"
)

// AIService fronts the Gemini client. The assistant flow exposes portal
// operations as tools the model may call while answering.
type AIService struct {
	generator TextGenerator
	repos     *repo.Repositories
	shipments Shipment
	auctions  Auction
	admins    Admin
	logger    *zap.Logger
}

func NewAIService(generator TextGenerator, repos *repo.Repositories, shipments Shipment, auctions Auction, admins Admin, logger *zap.Logger) *AIService {
	return &AIService{
		generator: generator,
		repos:     repos,
		shipments: shipments,
		auctions:  auctions,
		admins:    admins,
		logger:    logger,
	}
}

func (s *AIService) GenerateAuctionDescription(ctx context.Context, itemName, keywords string) (string, error) {
	if s.generator == nil {
		return "", ErrAIUnavailable
	}

	out, err := s.generator.GenerateAuctionDescription(ctx, ai.AuctionDescriptionInput{
		ItemName: itemName,
		Keywords: keywords,
	})
	if err != nil {
		s.logger.Error("auction description generation failed", zap.Error(err))

		return "", ErrAIUnavailable
	}

	return out.Description, nil
}

func (s *AIService) GenerateDelayReason(ctx context.Context, input *ai.DelayReasonInput) (string, error) {
	if s.generator == nil {
		return "", ErrAIUnavailable
	}

	out, err := s.generator.GenerateDelayReason(ctx, *input)
	if err != nil {
		s.logger.Error("delay reason generation failed", zap.Error(err), zap.String("shipment", input.ShipmentId))

		return "", ErrAIUnavailable
	}

	return out.DelayReason, nil
}

func (s *AIService) AnalyzeAuctionCSV(ctx context.Context, csvData string) (*ai.CSVAnalysisOutput, error) {
	if s.generator == nil {
		return nil, ErrAIUnavailable
	}

	out, err := s.generator.AnalyzeAuctionCSV(ctx, csvData, entity.AuctionCategories)
	if err != nil {
		s.logger.Error("csv analysis failed", zap.Error(err))

		return nil, ErrAIUnavailable
	}

	return out, nil
}

func (s *AIService) Ask(ctx context.Context, question string) (string, error) {
	if s.generator == nil {
		return "", ErrAIUnavailable
	}

	answer, err := s.generator.Ask(ctx, ai.AssistantSystemPrompt, question, s.assistantTools(ctx))
	if err != nil {
		s.logger.Error("assistant request failed", zap.Error(err))

		return "", ErrAIUnavailable
	}

	return answer, nil
}

// assistantTools exposes read and write operations to the model. Each Run
// closure captures the request context.
func (s *AIService) assistantTools(ctx context.Context) []ai.Tool {
	return []ai.Tool{
		{
			Name:        "get_shipment_stats",
			Description: "Returns shipment totals: overall count, in-transit count, deliveries in the last 30 days and the status distribution.",
			Run: func(_ map[string]any) (map[string]any, error) {
				return s.shipmentStats(ctx)
			},
		},
		{
			Name:        "get_admin_stats",
			Description: "Returns the number of admins and how many are pending approval.",
			Run: func(_ map[string]any) (map[string]any, error) {
				return s.adminStats(ctx)
			},
		},
		{
			Name:        "get_auction_stats",
			Description: "Returns auction listing counts by status and the total value of current bids.",
			Run: func(_ map[string]any) (map[string]any, error) {
				return s.auctionStats(ctx)
			},
		},
		{
			Name:        "find_shipment",
			Description: "Looks up a shipment by tracking id, consignment number, shakers number, client name or client email.",
			Params: map[string]ai.ToolParam{
				"query": {Type: "string", Description: "The tracking id or client detail to search for."},
			},
			Required: []string{"query"},
			Run: func(args map[string]any) (map[string]any, error) {
				shipment, err := s.shipments.FindShipment(ctx, argString(args, "query"))
				if err != nil {
					return toolFailure(err), nil
				}

				return map[string]any{
					"id":          shipment.Id,
					"clientName":  shipment.ClientName,
					"status":      shipment.Status,
					"origin":      shipment.Origin,
					"destination": shipment.Destination,
					"lastUpdate":  shipment.LastUpdate,
				}, nil
			},
		},
		{
			Name:        "create_shipment",
			Description: "Creates a new shipment and returns its tracking id.",
			Params: map[string]ai.ToolParam{
				"clientName":  {Type: "string", Description: "Name of the client."},
				"clientEmail": {Type: "string", Description: "Email of the client."},
				"origin":      {Type: "string", Description: "Origin city or country."},
				"destination": {Type: "string", Description: "Destination city or country."},
				"description": {Type: "string", Description: "What is being shipped."},
			},
			Required: []string{"clientName", "origin", "destination"},
			Run: func(args map[string]any) (map[string]any, error) {
				shipment, err := s.shipments.AddShipment(ctx, &entity.CreateShipmentInput{
					ClientName:  argString(args, "clientName"),
					ClientEmail: argString(args, "clientEmail"),
					Origin:      argString(args, "origin"),
					Destination: argString(args, "destination"),
					Description: argString(args, "description"),
				})
				if err != nil {
					return toolFailure(err), nil
				}

				return map[string]any{"id": shipment.Id, "status": shipment.Status}, nil
			},
		},
		{
			Name:        "update_shipment_status",
			Description: "Changes the status of a shipment, optionally recording location and remarks.",
			Params: map[string]ai.ToolParam{
				"id":       {Type: "string", Description: "The BBL tracking id."},
				"status":   {Type: "string", Description: "The new status.", Enum: shipmentStatusNames()},
				"location": {Type: "string", Description: "Where the status change happened."},
				"remarks":  {Type: "string", Description: "A short note for the history entry."},
			},
			Required: []string{"id", "status"},
			Run: func(args map[string]any) (map[string]any, error) {
				shipment, err := s.shipments.UpdateShipment(ctx, argString(args, "id"), &entity.UpdateShipmentInput{
					Status:   entity.ShipmentStatus(argString(args, "status")),
					Location: argString(args, "location"),
					Remarks:  argString(args, "remarks"),
				})
				if err != nil {
					return toolFailure(err), nil
				}

				return map[string]any{"id": shipment.Id, "status": shipment.Status}, nil
			},
		},
		{
			Name:        "approve_admin",
			Description: "Approves a pending admin account identified by email.",
			Params: map[string]ai.ToolParam{
				"email": {Type: "string", Description: "Email of the pending admin."},
			},
			Required: []string{"email"},
			Run: func(args map[string]any) (map[string]any, error) {
				admin, err := s.repos.Admin.GetAdminByEmail(ctx, argString(args, "email"))
				if err != nil {
					if errors.Is(err, repo_errors.ErrNotFound) {
						return toolFailure(ErrAdminNotFound), nil
					}

					return toolFailure(err), nil
				}

				approved, err := s.admins.Approve(ctx, admin.Id)
				if err != nil {
					return toolFailure(err), nil
				}

				return map[string]any{"id": approved.Id, "role": approved.Role}, nil
			},
		},
		{
			Name:        "create_auction_item",
			Description: "Creates a new auction listing.",
			Params: map[string]ai.ToolParam{
				"name":        {Type: "string", Description: "Item name."},
				"description": {Type: "string", Description: "Listing description."},
				"category":    {Type: "string", Description: "Item category.", Enum: entity.AuctionCategories},
				"price":       {Type: "number", Description: "Starting price in USD."},
			},
			Required: []string{"name", "category", "price"},
			Run: func(args map[string]any) (map[string]any, error) {
				item, err := s.auctions.AddItem(ctx, &entity.CreateAuctionItemInput{
					Name:        argString(args, "name"),
					Description: argString(args, "description"),
					Category:    argString(args, "category"),
					Price:       argNumber(args, "price"),
				})
				if err != nil {
					return toolFailure(err), nil
				}

				return map[string]any{"id": item.Id, "status": item.Status}, nil
			},
		},
	}
}

func (s *AIService) shipmentStats(ctx context.Context) (map[string]any, error) {
	shipments, err := s.repos.Shipment.ListShipments(ctx)
	if err != nil {
		return toolFailure(err), nil
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -30)
	inTransit, recentDelivered := 0, 0
	distribution := make(map[string]int)
	for i := range shipments {
		distribution[string(shipments[i].Status)]++
		if shipments[i].Status == entity.ShipmentInTransit {
			inTransit++
		}
		if shipments[i].Status == entity.ShipmentDelivered && shipments[i].LastUpdate.After(cutoff) {
			recentDelivered++
		}
	}

	return map[string]any{
		"total_shipments":        len(shipments),
		"in_transit_count":       inTransit,
		"delivered_last_30_days": recentDelivered,
		"status_distribution":    distribution,
	}, nil
}

func (s *AIService) adminStats(ctx context.Context) (map[string]any, error) {
	admins, err := s.repos.Admin.ListAdmins(ctx)
	if err != nil {
		return toolFailure(err), nil
	}

	pending := 0
	for i := range admins {
		if admins[i].Role == entity.RolePending {
			pending++
		}
	}

	return map[string]any{
		"total_admins":      len(admins),
		"pending_approvals": pending,
	}, nil
}

func (s *AIService) auctionStats(ctx context.Context) (map[string]any, error) {
	items, err := s.repos.Auction.ListItems(ctx)
	if err != nil {
		return toolFailure(err), nil
	}

	counts := make(map[string]int)
	totalBidValue := 0.0
	for i := range items {
		counts[string(items[i].Status)]++
		if items[i].Status == entity.AuctionBidOn {
			totalBidValue += items[i].CurrentBid
		}
	}

	return map[string]any{
		"total_items":     len(items),
		"status_counts":   counts,
		"total_bid_value": totalBidValue,
	}, nil
}

func shipmentStatusNames() []string {
	return []string{
		string(entity.ShipmentPending),
		string(entity.ShipmentInTransit),
		string(entity.ShipmentDelivered),
		string(entity.ShipmentDelayed),
		string(entity.ShipmentException),
	}
}

// toolFailure reports a failed tool call back to the model so it can relay
// the problem instead of aborting the whole exchange.
func toolFailure(err error) map[string]any {
	return map[string]any{"error": err.Error()}
}

func argString(args map[string]any, key string) string {
	v, _ := args[key].(string)

	return v
}

func argNumber(args map[string]any, key string) float64 {
	switch v := args[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}

	return 0
}
