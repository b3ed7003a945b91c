package service

import (
	"time"

	"bbl-admins-portal/internal/entity"
)

func mapShipment(s *entity.Shipment) *entity.ShipmentOutputModel {
	history := make([]entity.ShipmentHistoryItemOutput, 0, len(s.History))
	for _, item := range s.History {
		history = append(history, entity.ShipmentHistoryItemOutput{
			Status:   string(item.Status),
			Date:     item.Date.Format(time.RFC3339),
			Location: item.Location,
			Remarks:  item.Remarks,
		})
	}

	return &entity.ShipmentOutputModel{
		Id:                    s.Id,
		ClientName:            s.ClientName,
		ClientEmail:           s.ClientEmail,
		ConsignmentNumber:     s.ConsignmentNumber,
		ShakersNumber:         s.ShakersNumber,
		Origin:                s.Origin,
		Destination:           s.Destination,
		EstimatedDeliveryDate: s.EstimatedDeliveryDate,
		Status:                string(s.Status),
		History:               history,
		LastUpdate:            s.LastUpdate.Format(time.RFC3339),
		ShippingCompany:       s.ShippingCompany,
		Description:           s.Description,
	}
}

func mapShipments(shipments []entity.Shipment) []entity.ShipmentOutputModel {
	out := make([]entity.ShipmentOutputModel, 0, len(shipments))
	for i := range shipments {
		out = append(out, *mapShipment(&shipments[i]))
	}

	return out
}

func mapAuctionItem(item *entity.AuctionItem) *entity.AuctionItemOutputModel {
	bids := make([]entity.BidOutput, 0, len(item.BidHistory))
	for _, bid := range item.BidHistory {
		bids = append(bids, entity.BidOutput{
			Amount:    bid.Amount,
			Bidder:    bid.Bidder,
			Timestamp: bid.Timestamp.Format(time.RFC3339),
		})
	}

	return &entity.AuctionItemOutputModel{
		Id:            item.Id,
		Name:          item.Name,
		Description:   item.Description,
		Price:         item.Price,
		ImageUrls:     item.ImageUrls,
		Category:      item.Category,
		Status:        string(item.Status),
		Quantity:      item.Quantity,
		CurrentBid:    item.CurrentBid,
		HighestBidder: item.HighestBidder,
		BidHistory:    bids,
		CreatedAt:     item.CreatedAt.Format(time.RFC3339),
	}
}

func mapAuctionItems(items []entity.AuctionItem) []entity.AuctionItemOutputModel {
	out := make([]entity.AuctionItemOutputModel, 0, len(items))
	for i := range items {
		out = append(out, *mapAuctionItem(&items[i]))
	}

	return out
}

func mapAdmin(a *entity.AdminUser) *entity.AdminOutputModel {
	out := &entity.AdminOutputModel{
		Id:          a.Id,
		Name:        a.Name,
		Email:       a.Email,
		Role:        string(a.Role),
		AvatarUrl:   a.AvatarUrl,
		Permissions: append([]entity.Permission{}, a.Permissions...),
		PasswordSet: a.PasswordHash != "",
	}
	if !a.InvitationGeneratedAt.IsZero() {
		out.InvitationGeneratedAt = a.InvitationGeneratedAt.Format(time.RFC3339)
	}

	return out
}

func mapAdmins(admins []entity.AdminUser) []entity.AdminOutputModel {
	out := make([]entity.AdminOutputModel, 0, len(admins))
	for i := range admins {
		out = append(out, *mapAdmin(&admins[i]))
	}

	return out
}

func mapChatMessage(m *entity.ChatMessage) *entity.ChatMessageOutputModel {
	return &entity.ChatMessageOutputModel{
		Id:          m.Id,
		AdminId:     m.AdminId,
		AdminName:   m.AdminName,
		AvatarUrl:   m.AvatarUrl,
		Message:     m.Message,
		MessageHtml: m.MessageHtml,
		Timestamp:   m.Timestamp.Format(time.RFC3339),
		Edited:      m.Edited,
	}
}

func mapChatMessages(messages []entity.ChatMessage) []entity.ChatMessageOutputModel {
	out := make([]entity.ChatMessageOutputModel, 0, len(messages))
	for i := range messages {
		out = append(out, *mapChatMessage(&messages[i]))
	}

	return out
}
