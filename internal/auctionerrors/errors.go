package auctionerrors

import "errors"

// Bid validation errors. Each is returned to the caller as a rejection with
// the lot and wallet state untouched.
var (
	ErrLotNotActive      = errors.New("lot is not active")
	ErrLotEnded          = errors.New("lot has ended")
	ErrSelfBidForbidden  = errors.New("cannot bid on your own lots/items")
	ErrAlreadyLeading    = errors.New("you are already the highest bidder")
	ErrBidTooLow         = errors.New("bid amount too low")
	ErrInsufficientFunds = errors.New("insufficient wallet balance")
	// ErrLotHasBids blocks withdrawal once money has moved for a lot.
	ErrLotHasBids = errors.New("lot already has accepted bids")
)

// Concurrency and settlement errors.
var (
	// ErrConcurrentModification signals lock contention; the bid path retries
	// a bounded number of times before surfacing it.
	ErrConcurrentModification = errors.New("concurrent modification")
	// ErrSettlementCompleted means a concurrent caller already settled the
	// lot. Callers treat it as success.
	ErrSettlementCompleted = errors.New("settlement already completed")
	ErrDataIntegrity       = errors.New("data integrity error")
)

// Plumbing errors.
var (
	ErrLotNotFound    = errors.New("lot not found")
	ErrWalletNotFound = errors.New("wallet not found")
)
