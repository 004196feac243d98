package bidservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Meetvaghasiya-5040/Auction-House/internal/auctionerrors"
	"github.com/Meetvaghasiya-5040/Auction-House/internal/domain"
	"github.com/Meetvaghasiya-5040/Auction-House/internal/events"
	"github.com/Meetvaghasiya-5040/Auction-House/internal/pg"
)

//go:generate mockgen -source=bidservice.go -destination=bidservice_mock.go -package=bidservice

type LotRepo interface {
	GetByIDForUpdate(ctx context.Context, lotID int) (*domain.Lot, error)
	GetAuction(ctx context.Context, auctionID int) (*domain.Auction, error)
	UpdateOnBid(ctx context.Context, lot *domain.Lot) error
}

type BidRepo interface {
	Create(ctx context.Context, bid *domain.Bid) (*domain.Bid, error)
	GetWinningByLot(ctx context.Context, lotID int) (*domain.Bid, error)
	ClearWinning(ctx context.Context, bidID int) error
	CountByLot(ctx context.Context, lotID int) (int, error)
}

type ItemRepo interface {
	OwnerHasItemInLot(ctx context.Context, lotID, userID int) (bool, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type Wallets interface {
	EnsureWallet(ctx context.Context, userID int) (*domain.Wallet, error)
	LockWallet(ctx context.Context, userID int) (*domain.Wallet, error)
	Credit(ctx context.Context, wallet *domain.Wallet, amount decimal.Decimal, kind, description string, bidID *int) (*domain.Wallet, error)
	Debit(ctx context.Context, wallet *domain.Wallet, amount decimal.Decimal, kind, description string, bidID *int) (*domain.Wallet, error)
}

type Publisher interface {
	PublishLot(lotID int, event events.Event)
	PublishUser(userID int, event events.Event)
}

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

type Service struct {
	txManager  pg.TXManager
	lotRepo    LotRepo
	bidRepo    BidRepo
	itemRepo   ItemRepo
	userRepo   UserRepo
	wallets    Wallets
	publisher  Publisher
	allowTopUp bool
}

func New(txManager pg.TXManager, lotRepo LotRepo, bidRepo BidRepo, itemRepo ItemRepo, userRepo UserRepo, wallets Wallets, publisher Publisher, allowTopUp bool) *Service {
	return &Service{
		txManager:  txManager,
		lotRepo:    lotRepo,
		bidRepo:    bidRepo,
		itemRepo:   itemRepo,
		userRepo:   userRepo,
		wallets:    wallets,
		publisher:  publisher,
		allowTopUp: allowTopUp,
	}
}

// DisplacedLeader describes the previous leader refunded by an accepted bid.
type DisplacedLeader struct {
	UserID  int
	Login   string
	Balance decimal.Decimal
}

type PlaceBidResult struct {
	Bid             *domain.Bid
	Lot             *domain.Lot
	MinimumNextBid  decimal.Decimal
	NewBalance      decimal.Decimal
	LeaderLogin     string
	DisplacedLeader *DisplacedLeader
}

// PlaceBid validates and commits one bid. The whole operation runs in a
// single transaction that locks, in order, the lot row, the bidder's wallet
// row and the displaced leader's wallet row; either every effect commits or
// none does. Lock contention is retried a bounded number of times before
// surfacing as ErrConcurrentModification.
func (s *Service) PlaceBid(ctx context.Context, lotID, bidderID int, amount decimal.Decimal) (*PlaceBidResult, error) {
	if _, err := s.wallets.EnsureWallet(ctx, bidderID); err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		result, err := s.placeBid(ctx, lotID, bidderID, amount)
		if err == nil {
			s.publishAccepted(result)
			return result, nil
		}
		if !isRetryable(err) {
			return nil, err
		}
		lastErr = err
		zap.L().Warn("bid hit lock contention, retrying",
			zap.Int("lotID", lotID), zap.Int("attempt", attempt))
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryInterval * time.Duration(attempt)):
		}
	}
	return nil, fmt.Errorf("%w: %v", auctionerrors.ErrConcurrentModification, lastErr)
}

func (s *Service) placeBid(ctx context.Context, lotID, bidderID int, amount decimal.Decimal) (*PlaceBidResult, error) {
	now := time.Now()
	var result *PlaceBidResult

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		lot, err := s.lotRepo.GetByIDForUpdate(ctx, lotID)
		if err != nil {
			return err
		}
		if lot == nil {
			return auctionerrors.ErrLotNotFound
		}
		if lot.Status != domain.LotStatusActive {
			return auctionerrors.ErrLotNotActive
		}

		auction, err := s.lotRepo.GetAuction(ctx, lot.AuctionID)
		if err != nil {
			return err
		}
		var auctionEnd *time.Time
		if auction != nil {
			auctionEnd = auction.EndDate
		}
		if lot.ShouldClose(now, auctionEnd) != domain.CloseReasonNone {
			return auctionerrors.ErrLotEnded
		}

		ownsItem, err := s.itemRepo.OwnerHasItemInLot(ctx, lotID, bidderID)
		if err != nil {
			return err
		}
		if ownsItem {
			return auctionerrors.ErrSelfBidForbidden
		}

		prevWinning, err := s.bidRepo.GetWinningByLot(ctx, lotID)
		if err != nil {
			return err
		}
		topUp := prevWinning != nil && prevWinning.BidderID == bidderID
		if topUp && !s.allowTopUp {
			return auctionerrors.ErrAlreadyLeading
		}

		bidCount, err := s.bidRepo.CountByLot(ctx, lotID)
		if err != nil {
			return err
		}
		minimumBid := lot.MinimumNextBid(bidCount)
		if amount.LessThan(minimumBid) {
			return fmt.Errorf("%w: minimum bid is %s", auctionerrors.ErrBidTooLow, minimumBid)
		}

		bidderWallet, err := s.wallets.LockWallet(ctx, bidderID)
		if err != nil {
			return err
		}

		// Top-up replaces the leader's own bid, so only the difference is
		// charged; a new leader is charged the full amount.
		required := amount
		if topUp {
			required = amount.Sub(prevWinning.Amount)
		}
		if bidderWallet.Balance.LessThan(required) {
			return fmt.Errorf("%w: balance %s, required %s",
				auctionerrors.ErrInsufficientFunds, bidderWallet.Balance, required)
		}

		var displaced *DisplacedLeader
		if prevWinning != nil && !topUp {
			prevWallet, err := s.wallets.LockWallet(ctx, prevWinning.BidderID)
			if err != nil {
				return err
			}
			refunded, err := s.wallets.Credit(ctx, prevWallet, prevWinning.Amount,
				domain.TxnBidRefund,
				fmt.Sprintf("Refund: outbid on %q", lot.Title), &prevWinning.ID)
			if err != nil {
				return err
			}
			prevUser, err := s.userRepo.FindByID(ctx, prevWinning.BidderID)
			if err != nil {
				return err
			}
			displaced = &DisplacedLeader{
				UserID:  prevWinning.BidderID,
				Balance: refunded.Balance,
			}
			if prevUser != nil {
				displaced.Login = prevUser.Login
			}
		}
		if prevWinning != nil {
			if err := s.bidRepo.ClearWinning(ctx, prevWinning.ID); err != nil {
				return err
			}
		}

		bid, err := s.bidRepo.Create(ctx, &domain.Bid{
			LotID:     lotID,
			BidderID:  bidderID,
			Amount:    amount,
			IsWinning: true,
		})
		if err != nil {
			return err
		}

		description := fmt.Sprintf("Bid placed on %q", lot.Title)
		if topUp {
			description = fmt.Sprintf("Bid increased on %q (top-up)", lot.Title)
		}
		debited, err := s.wallets.Debit(ctx, bidderWallet, required, domain.TxnBidDebit, description, &bid.ID)
		if err != nil {
			return err
		}

		lot.CurrentBid = amount
		lot.WinningBidderID = &bidderID
		lot.LastBidTime = &now
		if lot.InAntiSnipeWindow(now) {
			extended := lot.EndTime.Add(domain.AntiSnipeExtension)
			lot.EndTime = &extended
		}
		if err := s.lotRepo.UpdateOnBid(ctx, lot); err != nil {
			return err
		}

		bidder, err := s.userRepo.FindByID(ctx, bidderID)
		if err != nil {
			return err
		}
		leaderLogin := ""
		if bidder != nil {
			leaderLogin = bidder.Login
		}

		result = &PlaceBidResult{
			Bid:             bid,
			Lot:             lot,
			MinimumNextBid:  lot.MinimumNextBid(bidCount + 1),
			NewBalance:      debited.Balance,
			LeaderLogin:     leaderLogin,
			DisplacedLeader: displaced,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Service) publishAccepted(result *PlaceBidResult) {
	payload := events.BidAcceptedPayload{
		LotID:         result.Lot.ID,
		Leader:        result.LeaderLogin,
		Amount:        result.Bid.Amount.InexactFloat64(),
		CurrentBid:    result.Lot.CurrentBid.InexactFloat64(),
		MinimumBid:    result.MinimumNextBid.InexactFloat64(),
		LeaderBalance: result.NewBalance.InexactFloat64(),
	}
	if result.DisplacedLeader != nil {
		balance := result.DisplacedLeader.Balance.InexactFloat64()
		payload.DisplacedLeader = &result.DisplacedLeader.Login
		payload.DisplacedBalance = &balance
	}
	s.publisher.PublishLot(result.Lot.ID, events.New(events.TypeBidAccepted, payload))

	s.publisher.PublishUser(result.Bid.BidderID, events.New(events.TypeWalletUpdate,
		events.WalletUpdatePayload{Balance: result.NewBalance.InexactFloat64()}))
	if result.DisplacedLeader != nil {
		s.publisher.PublishUser(result.DisplacedLeader.UserID, events.New(events.TypeWalletUpdate,
			events.WalletUpdatePayload{Balance: result.DisplacedLeader.Balance.InexactFloat64()}))
	}
}

// isRetryable reports whether the error is transient lock contention:
// serialization failure, deadlock, or lock-not-available.
func isRetryable(err error) bool {
	if errors.Is(err, auctionerrors.ErrConcurrentModification) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", "40P01", "55P03":
			return true
		}
	}
	return false
}
