package lotservice

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Meetvaghasiya-5040/Auction-House/internal/auctionerrors"
	"github.com/Meetvaghasiya-5040/Auction-House/internal/domain"
	"github.com/Meetvaghasiya-5040/Auction-House/internal/pg"
	"github.com/Meetvaghasiya-5040/Auction-House/internal/service/settlementservice"
)

//go:generate mockgen -source=lotservice.go -destination=lotservice_mock.go -package=lotservice

const recentBidsLimit = 10

type LotRepo interface {
	GetByID(ctx context.Context, lotID int) (*domain.Lot, error)
	GetByIDForUpdate(ctx context.Context, lotID int) (*domain.Lot, error)
	GetAuction(ctx context.Context, auctionID int) (*domain.Auction, error)
	UpdateStatus(ctx context.Context, lotID int, status string, winningBidderID *int) error
	ActivateByAuction(ctx context.Context, auctionID int, startedAt time.Time) ([]int, error)
	FindActiveIDs(ctx context.Context) ([]int, error)
}

type BidRepo interface {
	CountByLot(ctx context.Context, lotID int) (int, error)
	GetWinningByLot(ctx context.Context, lotID int) (*domain.Bid, error)
	ListRecentByLot(ctx context.Context, lotID int, limit int) ([]domain.LotBid, error)
	ListByUser(ctx context.Context, userID int) ([]domain.UserBid, error)
}

type ItemRepo interface {
	UpdateStatusByLot(ctx context.Context, lotID int, status string) error
}

type InvoiceRepo interface {
	ListByUser(ctx context.Context, userID int) ([]domain.Invoice, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type Settlement interface {
	Settle(ctx context.Context, lotID int) (*settlementservice.Outcome, error)
}

type Service struct {
	txManager   pg.TXManager
	lotRepo     LotRepo
	bidRepo     BidRepo
	itemRepo    ItemRepo
	invoiceRepo InvoiceRepo
	userRepo    UserRepo
	settlement  Settlement
}

func New(txManager pg.TXManager, lotRepo LotRepo, bidRepo BidRepo, itemRepo ItemRepo, invoiceRepo InvoiceRepo, userRepo UserRepo, settlement Settlement) *Service {
	return &Service{
		txManager:   txManager,
		lotRepo:     lotRepo,
		bidRepo:     bidRepo,
		itemRepo:    itemRepo,
		invoiceRepo: invoiceRepo,
		userRepo:    userRepo,
		settlement:  settlement,
	}
}

// Snapshot is a point-in-time view of a lot served to pollers.
type Snapshot struct {
	Lot           *domain.Lot
	MinimumBid    decimal.Decimal
	BidCount      int
	TimeRemaining *float64
	Countdown     *float64
	WinnerLogin   *string
	RecentBids    []domain.LotBid
}

// GetSnapshot reads a lot for the polling endpoint. If the lot's end
// condition has already fired it settles the lot synchronously first, so a
// poller never observes an expired lot still reported active.
func (s *Service) GetSnapshot(ctx context.Context, lotID int) (*Snapshot, error) {
	lot, err := s.lotRepo.GetByID(ctx, lotID)
	if err != nil {
		return nil, err
	}
	if lot == nil {
		return nil, auctionerrors.ErrLotNotFound
	}

	if lot.Status == domain.LotStatusActive {
		auctionEnd, err := s.auctionEnd(ctx, lot.AuctionID)
		if err != nil {
			return nil, err
		}
		if lot.ShouldClose(time.Now(), auctionEnd) != domain.CloseReasonNone {
			outcome, err := s.settlement.Settle(ctx, lotID)
			if err != nil {
				return nil, err
			}
			lot = outcome.Lot
		}
	}

	return s.buildSnapshot(ctx, lot)
}

func (s *Service) buildSnapshot(ctx context.Context, lot *domain.Lot) (*Snapshot, error) {
	bidCount, err := s.bidRepo.CountByLot(ctx, lot.ID)
	if err != nil {
		return nil, err
	}
	recent, err := s.bidRepo.ListRecentByLot(ctx, lot.ID, recentBidsLimit)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		Lot:        lot,
		MinimumBid: lot.MinimumNextBid(bidCount),
		BidCount:   bidCount,
		RecentBids: recent,
	}

	if lot.Status == domain.LotStatusActive {
		auctionEnd, err := s.auctionEnd(ctx, lot.AuctionID)
		if err != nil {
			return nil, err
		}
		now := time.Now()
		snap.TimeRemaining = lot.TimeRemaining(now, auctionEnd)
		snap.Countdown = lot.Countdown(now)
	}

	if lot.WinningBidderID != nil {
		user, err := s.userRepo.FindByID(ctx, *lot.WinningBidderID)
		if err != nil {
			return nil, err
		}
		if user != nil {
			snap.WinnerLogin = &user.Login
		}
	}
	return snap, nil
}

func (s *Service) auctionEnd(ctx context.Context, auctionID int) (*time.Time, error) {
	auction, err := s.lotRepo.GetAuction(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	if auction == nil {
		return nil, nil
	}
	return auction.EndDate, nil
}

// ActivateAuction opens every draft lot of an auction for bidding and marks
// the auction live. Returns the IDs of the lots that went active so the
// watcher can pick them up immediately.
func (s *Service) ActivateAuction(ctx context.Context, auctionID int) ([]int, error) {
	auction, err := s.lotRepo.GetAuction(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	if auction == nil {
		return nil, auctionerrors.ErrLotNotFound
	}

	var lotIDs []int
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		lotIDs, err = s.lotRepo.ActivateByAuction(ctx, auctionID, time.Now())
		return err
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("auction activated",
		zap.Int("auctionID", auctionID),
		zap.Int("lots", len(lotIDs)))
	return lotIDs, nil
}

// WithdrawLot pulls a lot from the block before it sells. Only lots without
// accepted bids can be withdrawn; once money has moved the lot must run to
// settlement.
func (s *Service) WithdrawLot(ctx context.Context, lotID int) error {
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		lot, err := s.lotRepo.GetByIDForUpdate(ctx, lotID)
		if err != nil {
			return err
		}
		if lot == nil {
			return auctionerrors.ErrLotNotFound
		}
		if lot.IsTerminal() {
			return auctionerrors.ErrLotNotActive
		}
		winning, err := s.bidRepo.GetWinningByLot(ctx, lotID)
		if err != nil {
			return err
		}
		if winning != nil {
			return auctionerrors.ErrLotHasBids
		}
		if err := s.lotRepo.UpdateStatus(ctx, lotID, domain.LotStatusWithdrawn, nil); err != nil {
			return err
		}
		return s.itemRepo.UpdateStatusByLot(ctx, lotID, domain.ItemStatusAvailable)
	})
	if err != nil {
		if !errors.Is(err, auctionerrors.ErrLotNotFound) {
			zap.L().Warn("lot withdrawal rejected", zap.Int("lotID", lotID), zap.Error(err))
		}
		return err
	}

	zap.L().Info("lot withdrawn", zap.Int("lotID", lotID))
	return nil
}

// ListActiveIDs feeds the watcher's sweep loop.
func (s *Service) ListActiveIDs(ctx context.Context) ([]int, error) {
	return s.lotRepo.FindActiveIDs(ctx)
}

// GetMyBids returns the caller's bids newest first.
func (s *Service) GetMyBids(ctx context.Context, userID int) ([]domain.UserBid, error) {
	return s.bidRepo.ListByUser(ctx, userID)
}

// GetInvoices returns the invoices issued to the caller as winning bidder.
func (s *Service) GetInvoices(ctx context.Context, userID int) ([]domain.Invoice, error) {
	return s.invoiceRepo.ListByUser(ctx, userID)
}
