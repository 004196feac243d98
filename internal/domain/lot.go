package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	LotStatusDraft     string = "draft"
	LotStatusActive    string = "active"
	LotStatusSold      string = "sold"
	LotStatusUnsold    string = "unsold"
	LotStatusWithdrawn string = "withdrawn"
)

const (
	// IdleTimeout is how long a lot may sit without a new bid before the
	// closing countdown starts.
	IdleTimeout = 15 * time.Second
	// CountdownDuration is the grace window broadcast to observers before an
	// idle lot actually closes.
	CountdownDuration = 5 * time.Second

	// AntiSnipeWindow and AntiSnipeExtension implement the anti-snipe rule for
	// timed lots: a bid accepted within the window pushes the deadline back.
	AntiSnipeWindow    = 60 * time.Second
	AntiSnipeExtension = 2 * time.Minute

	incrementTierOne = 10
	incrementTierTwo = 20
)

var (
	tierOneMultiplier = decimal.NewFromFloat(1.2)
	tierTwoMultiplier = decimal.NewFromFloat(1.3)

	// CommissionRate is the house cut of a winning bid.
	CommissionRate = decimal.NewFromFloat(0.10)
)

type Lot struct {
	ID              int             `db:"id"`
	AuctionID       int             `db:"auction_id"`
	LotNumber       int             `db:"lot_number"`
	Title           string          `db:"title"`
	StartingBid     decimal.Decimal `db:"starting_bid"`
	CurrentBid      decimal.Decimal `db:"current_bid"`
	MinIncrement    decimal.Decimal `db:"min_increment"`
	Status          string          `db:"status"`
	WinningBidderID *int            `db:"winning_bidder_id"`
	IsTimed         bool            `db:"is_timed"`
	EndTime         *time.Time      `db:"end_time"`
	LastBidTime     *time.Time      `db:"last_bid_time"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

func (l *Lot) IsTerminal() bool {
	switch l.Status {
	case LotStatusSold, LotStatusUnsold, LotStatusWithdrawn:
		return true
	}
	return false
}

// EffectiveIncrement selects the increment tier from the total number of bids
// already placed on the lot. The multiplier is picked by count, not compounded
// per bid.
func (l *Lot) EffectiveIncrement(bidCount int) decimal.Decimal {
	switch {
	case bidCount >= incrementTierTwo:
		return l.MinIncrement.Mul(tierTwoMultiplier)
	case bidCount >= incrementTierOne:
		return l.MinIncrement.Mul(tierOneMultiplier)
	}
	return l.MinIncrement
}

// MinimumNextBid is the smallest amount the next bid must reach: the starting
// bid while the lot has no bids, otherwise current bid plus the tiered
// increment.
func (l *Lot) MinimumNextBid(bidCount int) decimal.Decimal {
	if bidCount == 0 {
		return l.StartingBid
	}
	return l.CurrentBid.Add(l.EffectiveIncrement(bidCount))
}

// CloseReason says why a lot's life ended.
type CloseReason string

const (
	CloseReasonNone        CloseReason = ""
	CloseReasonDeadline    CloseReason = "hard_deadline"
	CloseReasonIdleTimeout CloseReason = "idle_timeout"
	CloseReasonAuctionEnd  CloseReason = "auction_end"
)

// ShouldClose evaluates the lot's end conditions at the given instant, in
// order: hard deadline, idle timeout, parent-auction end date fallback.
// auctionEnd may be nil when the parent auction has no end date.
func (l *Lot) ShouldClose(now time.Time, auctionEnd *time.Time) CloseReason {
	if l.Status != LotStatusActive {
		return CloseReasonNone
	}
	if l.IsTimed && l.EndTime != nil {
		if !now.Before(*l.EndTime) {
			return CloseReasonDeadline
		}
		return CloseReasonNone
	}
	if l.LastBidTime != nil {
		if now.Sub(*l.LastBidTime) >= IdleTimeout+CountdownDuration {
			return CloseReasonIdleTimeout
		}
		return CloseReasonNone
	}
	if auctionEnd != nil && !now.Before(*auctionEnd) {
		return CloseReasonAuctionEnd
	}
	return CloseReasonNone
}

// TimeRemaining reports the seconds until the lot's next end condition fires,
// or nil when no condition is pending.
func (l *Lot) TimeRemaining(now time.Time, auctionEnd *time.Time) *float64 {
	var deadline time.Time
	switch {
	case l.IsTimed && l.EndTime != nil:
		deadline = *l.EndTime
	case l.LastBidTime != nil:
		deadline = l.LastBidTime.Add(IdleTimeout + CountdownDuration)
	case auctionEnd != nil:
		deadline = *auctionEnd
	default:
		return nil
	}
	rem := deadline.Sub(now).Seconds()
	if rem < 0 {
		rem = 0
	}
	return &rem
}

// TimedCountdownWindow is how close to a hard deadline the countdown field
// starts appearing in timer updates.
const TimedCountdownWindow = 10 * time.Second

// Countdown reports the remaining grace seconds once an idle lot has passed
// its idle timeout, or the final seconds of a timed lot's deadline. Nil
// outside either window.
func (l *Lot) Countdown(now time.Time) *float64 {
	if l.IsTimed {
		if l.EndTime == nil {
			return nil
		}
		rem := l.EndTime.Sub(now)
		if rem <= 0 || rem > TimedCountdownWindow {
			return nil
		}
		sec := rem.Seconds()
		return &sec
	}
	if l.LastBidTime == nil {
		return nil
	}
	since := now.Sub(*l.LastBidTime)
	if since <= IdleTimeout {
		return nil
	}
	rem := (IdleTimeout + CountdownDuration - since).Seconds()
	if rem <= 0 {
		return nil
	}
	return &rem
}

// InAntiSnipeWindow reports whether an accepted bid at the given instant must
// extend a timed lot's deadline.
func (l *Lot) InAntiSnipeWindow(now time.Time) bool {
	if !l.IsTimed || l.EndTime == nil {
		return false
	}
	return l.EndTime.Sub(now) < AntiSnipeWindow
}
