package dto

import "time"

type PlaceBidRequestDTO struct {
	Amount float64 `json:"amount" example:"1100"`
}

type PlaceBidResponseDTO struct {
	BidID      int     `json:"bid_id" example:"42"`
	Amount     float64 `json:"amount" example:"1100"`
	CurrentBid float64 `json:"current_bid" example:"1100"`
	MinimumBid float64 `json:"minimum_bid" example:"1200"`
	NewBalance float64 `json:"new_balance" example:"3900"`
}

type BidDTO struct {
	User      string    `json:"user" example:"collector7"`
	Amount    float64   `json:"amount" example:"1100"`
	IsWinning bool      `json:"is_winning" example:"true"`
	Timestamp time.Time `json:"timestamp" example:"2025-01-15T16:09:57+03:00"`
}

type GetMyBidsResponseDTO struct {
	LotID     int       `json:"lot_id" example:"3"`
	LotTitle  string    `json:"lot_title" example:"Vintage clocks"`
	Amount    float64   `json:"amount" example:"1100"`
	IsWinning bool      `json:"is_winning" example:"false"`
	Timestamp time.Time `json:"timestamp" example:"2025-01-15T16:09:57+03:00"`
}
