package dto

import "time"

type WalletResponseDTO struct {
	Balance float64 `json:"balance" example:"1500.5"`
}

type DepositRequestDTO struct {
	Amount     float64 `json:"amount" example:"1000"`
	PaymentRef string  `json:"payment_ref" example:"2377225624"`
}

type GetTransactionsResponseDTO struct {
	Kind        string    `json:"kind" example:"bid_debit"`
	Amount      float64   `json:"amount" example:"-1100"`
	Description string    `json:"description" example:"Bid placed on Lot 3"`
	CreatedAt   time.Time `json:"created_at" example:"2025-01-15T16:09:57+03:00"`
}
