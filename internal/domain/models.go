package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

const (
	WalletKindUser  string = "user"
	WalletKindHouse string = "house"
)

type Wallet struct {
	ID        int             `db:"id"`
	UserID    *int            `db:"user_id"`
	Kind      string          `db:"kind"`
	Balance   decimal.Decimal `db:"balance"`
	Version   int64           `db:"version"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

const (
	TxnDeposit    string = "deposit"
	TxnBidDebit   string = "bid_debit"
	TxnBidRefund  string = "bid_refund"
	TxnCommission string = "commission"
	TxnPayout     string = "payout"
)

type Transaction struct {
	ID          int             `db:"id"`
	WalletID    int             `db:"wallet_id"`
	Kind        string          `db:"kind"`
	Amount      decimal.Decimal `db:"amount"`
	Description string          `db:"description"`
	BidID       *int            `db:"bid_id"`
	CreatedAt   time.Time       `db:"created_at"`
}

const (
	ItemStatusAvailable string = "available"
	ItemStatusLotted    string = "lotted"
	ItemStatusSold      string = "sold"
)

type Item struct {
	ID             int             `db:"id"`
	OwnerID        int             `db:"owner_id"`
	Title          string          `db:"title"`
	EstimatedValue decimal.Decimal `db:"estimated_value"`
	Status         string          `db:"status"`
	LotID          *int            `db:"lot_id"`
	CreatedAt      time.Time       `db:"created_at"`
}

const (
	AuctionStatusDraft     string = "draft"
	AuctionStatusLive      string = "live"
	AuctionStatusCompleted string = "completed"
	AuctionStatusCancelled string = "cancelled"
)

type Auction struct {
	ID                int             `db:"id"`
	Title             string          `db:"title"`
	Status            string          `db:"status"`
	StartDate         *time.Time      `db:"start_date"`
	EndDate           *time.Time      `db:"end_date"`
	MinBidIncrement   decimal.Decimal `db:"min_bid_increment"`
	AllowProxyBidding bool            `db:"allow_proxy_bidding"`
	CreatedBy         int             `db:"created_by"`
	CreatedAt         time.Time       `db:"created_at"`
}

type Bid struct {
	ID        int             `db:"id"`
	LotID     int             `db:"lot_id"`
	BidderID  int             `db:"bidder_id"`
	Amount    decimal.Decimal `db:"amount"`
	IsWinning bool            `db:"is_winning"`
	IsAutoBid bool            `db:"is_auto_bid"`
	CreatedAt time.Time       `db:"created_at"`
}

// LotBid is a bid joined with its bidder's login, for lot status snapshots.
type LotBid struct {
	Bid
	BidderLogin string `db:"login"`
}

// UserBid is a bid joined with its lot's title, for a user's bid history.
type UserBid struct {
	Bid
	LotTitle string `db:"title"`
}

const InvoiceStatusIssued string = "issued"

type Invoice struct {
	ID            int             `db:"id"`
	InvoiceNumber string          `db:"invoice_number"`
	LotID         int             `db:"lot_id"`
	UserID        int             `db:"user_id"`
	Amount        decimal.Decimal `db:"amount"`
	Commission    decimal.Decimal `db:"commission"`
	Status        string          `db:"status"`
	IssuedAt      time.Time       `db:"issued_at"`
}
