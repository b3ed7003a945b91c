package entity

import (
	"time"
)

type ShipmentStatus string

const (
	ShipmentPending   ShipmentStatus = "Pending"
	ShipmentInTransit ShipmentStatus = "In Transit"
	ShipmentDelivered ShipmentStatus = "Delivered"
	ShipmentDelayed   ShipmentStatus = "Delayed"
	ShipmentException ShipmentStatus = "Exception"
)

func (s ShipmentStatus) Valid() bool {
	switch s {
	case ShipmentPending, ShipmentInTransit, ShipmentDelivered, ShipmentDelayed, ShipmentException:
		return true
	}

	return false
}

type ShipmentHistoryItem struct {
	Status   ShipmentStatus `json:"status" firestore:"status"`
	Date     time.Time      `json:"date" firestore:"date"`
	Location string         `json:"location" firestore:"location"`
	Remarks  string         `json:"remarks,omitempty" firestore:"remarks"`
}

// db model. History is kept newest first; Status always mirrors History[0].Status.
type Shipment struct {
	Id                    string                `json:"id" firestore:"id"`
	ClientName            string                `json:"clientName,omitempty" firestore:"clientName"`
	ClientEmail           string                `json:"clientEmail,omitempty" firestore:"clientEmail"`
	ConsignmentNumber     string                `json:"consignmentNumber,omitempty" firestore:"consignmentNumber"`
	ShakersNumber         string                `json:"shakersNumber,omitempty" firestore:"shakersNumber"`
	Origin                string                `json:"origin" firestore:"origin"`
	Destination           string                `json:"destination" firestore:"destination"`
	EstimatedDeliveryDate string                `json:"estimatedDeliveryDate" firestore:"estimatedDeliveryDate"`
	Status                ShipmentStatus        `json:"status" firestore:"status"`
	History               []ShipmentHistoryItem `json:"history" firestore:"history"`
	LastUpdate            time.Time             `json:"lastUpdate" firestore:"lastUpdate"`
	ShippingCompany       string                `json:"shippingCompany" firestore:"shippingCompany"`
	Description           string                `json:"description" firestore:"description"`

	// Lowercase shadow fields so secondary lookups can be case-insensitive
	// with plain equality queries.
	ConsignmentNumberLower string `json:"-" firestore:"consignmentNumberLower"`
	ShakersNumberLower     string `json:"-" firestore:"shakersNumberLower"`
	ClientNameLower        string `json:"-" firestore:"clientNameLower"`
}

// service + repo input model
type CreateShipmentInput struct {
	ClientName            string
	ClientEmail           string
	ConsignmentNumber     string
	ShakersNumber         string
	Origin                string
	Destination           string
	EstimatedDeliveryDate string
	ShippingCompany       string
	Description           string
	Status                ShipmentStatus // defaults to Pending when empty
	// Id, History and LastUpdate are set by the service.
}

// service input model for updates; a status change prepends a history entry
// built from Location and Remarks.
type UpdateShipmentInput struct {
	Description           string
	Destination           string
	EstimatedDeliveryDate string
	Status                ShipmentStatus
	Location              string
	Remarks               string
}

// controller model
type ShipmentOutputModel struct {
	Id                    string                      `json:"id"`
	ClientName            string                      `json:"clientName,omitempty"`
	ClientEmail           string                      `json:"clientEmail,omitempty"`
	ConsignmentNumber     string                      `json:"consignmentNumber,omitempty"`
	ShakersNumber         string                      `json:"shakersNumber,omitempty"`
	Origin                string                      `json:"origin"`
	Destination           string                      `json:"destination"`
	EstimatedDeliveryDate string                      `json:"estimatedDeliveryDate"`
	Status                string                      `json:"status"`
	History               []ShipmentHistoryItemOutput `json:"history"`
	LastUpdate            string                      `json:"lastUpdate"`
	ShippingCompany       string                      `json:"shippingCompany"`
	Description           string                      `json:"description"`
}

type ShipmentHistoryItemOutput struct {
	Status   string `json:"status"`
	Date     string `json:"date"`
	Location string `json:"location"`
	Remarks  string `json:"remarks,omitempty"`
}
