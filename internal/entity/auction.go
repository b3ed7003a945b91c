package entity

import (
	"time"
)

type AuctionItemStatus string

const (
	AuctionDraft  AuctionItemStatus = "Draft"
	AuctionListed AuctionItemStatus = "Listed"
	AuctionBidOn  AuctionItemStatus = "BidOn"
	AuctionSold   AuctionItemStatus = "Sold"
)

func (s AuctionItemStatus) Valid() bool {
	switch s {
	case AuctionDraft, AuctionListed, AuctionBidOn, AuctionSold:
		return true
	}

	return false
}

var AuctionCategories = []string{
	"Jewellery", "Gadgets", "Machines", "Hardware",
	"Accessories", "Clothes", "Cosmetics", "Autospares",
}

func ValidAuctionCategory(c string) bool {
	for _, known := range AuctionCategories {
		if c == known {
			return true
		}
	}

	return false
}

type Bidder struct {
	Name    string `json:"name" firestore:"name"`
	Email   string `json:"email" firestore:"email"`
	Phone   string `json:"phone" firestore:"phone"`
	Address string `json:"address" firestore:"address"`
}

type Bid struct {
	Amount    float64   `json:"amount" firestore:"amount"`
	Bidder    Bidder    `json:"bidder" firestore:"bidder"`
	Timestamp time.Time `json:"timestamp" firestore:"timestamp"`
}

// db model. BidHistory is append-only; CurrentBid only ever increases once set.
type AuctionItem struct {
	Id            string            `json:"id" firestore:"id"`
	Name          string            `json:"name" firestore:"name"`
	Description   string            `json:"description" firestore:"description"`
	Price         float64           `json:"price" firestore:"price"`
	ImageUrls     []string          `json:"imageUrls" firestore:"imageUrls"`
	Category      string            `json:"category" firestore:"category"`
	Status        AuctionItemStatus `json:"status" firestore:"status"`
	Quantity      int               `json:"quantity" firestore:"quantity"`
	CurrentBid    float64           `json:"currentBid,omitempty" firestore:"currentBid"`
	HighestBidder *Bidder           `json:"highestBidder,omitempty" firestore:"highestBidder"`
	BidHistory    []Bid             `json:"bidHistory" firestore:"bidHistory"`
	CreatedAt     time.Time         `json:"createdAt" firestore:"createdAt"`
}

// service + repo input model
type CreateAuctionItemInput struct {
	Name        string
	Description string
	Price       float64
	ImageUrls   []string
	Category    string
	Quantity    int
	Status      AuctionItemStatus // defaults to Listed when empty
}

// service input model for edits; nil fields are left untouched.
type UpdateAuctionItemInput struct {
	Name        *string
	Description *string
	Price       *float64
	ImageUrls   []string
	Category    *string
	Quantity    *int
	Status      *AuctionItemStatus
}

// controller model
type AuctionItemOutputModel struct {
	Id            string      `json:"id"`
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	Price         float64     `json:"price"`
	ImageUrls     []string    `json:"imageUrls"`
	Category      string      `json:"category"`
	Status        string      `json:"status"`
	Quantity      int         `json:"quantity"`
	CurrentBid    float64     `json:"currentBid,omitempty"`
	HighestBidder *Bidder     `json:"highestBidder,omitempty"`
	BidHistory    []BidOutput `json:"bidHistory"`
	CreatedAt     string      `json:"createdAt"`
}

type BidOutput struct {
	Amount    float64 `json:"amount"`
	Bidder    Bidder  `json:"bidder"`
	Timestamp string  `json:"timestamp"`
}
