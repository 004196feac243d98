package events

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeBidAccepted  Type = "bid_accepted"
	TypeTimerUpdate  Type = "timer_update"
	TypeLotClosed    Type = "lot_closed"
	TypeWalletUpdate Type = "wallet_update"
)

// Event is one real-time message pushed to connected clients. LotID routes
// lot-scoped events; UserID routes private wallet updates.
type Event struct {
	ID      string      `json:"id"`
	Type    Type        `json:"type"`
	LotID   int         `json:"lot_id,omitempty"`
	UserID  int         `json:"-"`
	Payload interface{} `json:"data"`
	At      time.Time   `json:"at"`
}

func New(t Type, payload interface{}) Event {
	return Event{
		ID:      uuid.NewString(),
		Type:    t,
		Payload: payload,
		At:      time.Now(),
	}
}

type BidAcceptedPayload struct {
	LotID           int      `json:"lot_id"`
	Leader          string   `json:"leader"`
	Amount          float64  `json:"amount"`
	CurrentBid      float64  `json:"current_bid"`
	MinimumBid      float64  `json:"minimum_bid"`
	DisplacedLeader *string  `json:"displaced_leader,omitempty"`
	LeaderBalance   float64  `json:"leader_balance"`
	DisplacedBalance *float64 `json:"displaced_balance,omitempty"`
}

type TimerUpdatePayload struct {
	LotID         int      `json:"lot_id"`
	TimeRemaining float64  `json:"time_remaining"`
	Countdown     *float64 `json:"countdown,omitempty"`
}

type LotClosedPayload struct {
	LotID      int     `json:"lot_id"`
	Status     string  `json:"status"`
	Winner     *string `json:"winner,omitempty"`
	WinningBid float64 `json:"winning_bid"`
}

type WalletUpdatePayload struct {
	Balance float64 `json:"balance"`
}
