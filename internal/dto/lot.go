package dto

import "time"

type LotStatusResponseDTO struct {
	LotID         int      `json:"lot_id" example:"3"`
	Status        string   `json:"status" example:"active"`
	CurrentBid    float64  `json:"current_bid" example:"1100"`
	MinimumBid    float64  `json:"minimum_bid" example:"1200"`
	BidCount      int      `json:"bid_count" example:"7"`
	TimeRemaining *float64 `json:"time_remaining,omitempty" example:"42.5"`
	Countdown     *float64 `json:"countdown,omitempty" example:"3.2"`
	Winner        *string  `json:"winner,omitempty" example:"collector7"`
	WinningBid    *float64 `json:"winning_bid,omitempty" example:"1100"`
	Bids          []BidDTO `json:"bids"`
}

type GetInvoicesResponseDTO struct {
	InvoiceNumber string    `json:"invoice_number" example:"INV-9f2b1c"`
	LotID         int       `json:"lot_id" example:"3"`
	Amount        float64   `json:"amount" example:"1100"`
	Commission    float64   `json:"commission" example:"110"`
	Status        string    `json:"status" example:"issued"`
	IssuedAt      time.Time `json:"issued_at" example:"2025-01-15T16:09:57+03:00"`
}
