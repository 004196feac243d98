package watcher

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Meetvaghasiya-5040/Auction-House/internal/auctionerrors"
	"github.com/Meetvaghasiya-5040/Auction-House/internal/domain"
	"github.com/Meetvaghasiya-5040/Auction-House/internal/events"
	"github.com/Meetvaghasiya-5040/Auction-House/internal/service/settlementservice"
)

//go:generate mockgen -source=watcher.go -destination=watcher_mock.go -package=watcher

const (
	tickInterval  = time.Second * 1
	sweepInterval = time.Second * 5
)

type LotRepo interface {
	GetByID(ctx context.Context, lotID int) (*domain.Lot, error)
	GetAuction(ctx context.Context, auctionID int) (*domain.Auction, error)
	FindActiveIDs(ctx context.Context) ([]int, error)
}

type Settlement interface {
	Settle(ctx context.Context, lotID int) (*settlementservice.Outcome, error)
}

type Publisher interface {
	PublishLot(lotID int, event events.Event)
}

// Scheduler runs one goroutine per active lot, ticking every second to
// broadcast timer state and to close the lot when an end condition fires.
// A sweep loop reconciles the goroutine set against the database so lots
// activated outside this process still get watched.
type Scheduler struct {
	lotRepo    LotRepo
	settlement Settlement
	publisher  Publisher

	mu       sync.Mutex
	watching map[int]struct{}
	wg       sync.WaitGroup
}

func New(lotRepo LotRepo, settlement Settlement, publisher Publisher) *Scheduler {
	return &Scheduler{
		lotRepo:    lotRepo,
		settlement: settlement,
		publisher:  publisher,
		watching:   make(map[int]struct{}),
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	zap.L().Info("Lot watcher started")
	go s.run(ctx)
}

func (s *Scheduler) run(ctx context.Context) {
	s.sweep(ctx)

	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping lot watcher")
			s.wg.Wait()
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Scheduler) sweep(ctx context.Context) {
	lotIDs, err := s.lotRepo.FindActiveIDs(ctx)
	if err != nil {
		zap.L().Error("Failed to list active lots", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, lotID := range lotIDs {
		lotID := lotID
		g.Go(func() error {
			s.Watch(ctx, lotID)
			return nil
		})
	}
	_ = g.Wait()
}

// Watch ensures a tick loop is running for the lot. Calling it for a lot
// already being watched is a no-op, so bid handlers and the sweep loop can
// both call it freely.
func (s *Scheduler) Watch(ctx context.Context, lotID int) {
	s.mu.Lock()
	if _, ok := s.watching[lotID]; ok {
		s.mu.Unlock()
		return
	}
	s.watching[lotID] = struct{}{}
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer func() {
			s.mu.Lock()
			delete(s.watching, lotID)
			s.mu.Unlock()
		}()
		s.watchLot(ctx, lotID)
	}()
}

func (s *Scheduler) watchLot(ctx context.Context, lotID int) {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			done, err := s.tick(ctx, lotID)
			if err != nil {
				zap.L().Error("Lot watcher tick failed", zap.Int("lotID", lotID), zap.Error(err))
				continue
			}
			if done {
				return
			}
		}
	}
}

// tick reads the lot, publishes a timer update, and settles the lot when an
// end condition has fired. Reports done once the lot is terminal.
func (s *Scheduler) tick(ctx context.Context, lotID int) (bool, error) {
	lot, err := s.lotRepo.GetByID(ctx, lotID)
	if err != nil {
		return false, err
	}
	if lot == nil {
		return true, auctionerrors.ErrLotNotFound
	}
	if lot.Status != domain.LotStatusActive {
		return true, nil
	}

	auction, err := s.lotRepo.GetAuction(ctx, lot.AuctionID)
	if err != nil {
		return false, err
	}
	var auctionEnd *time.Time
	if auction != nil {
		auctionEnd = auction.EndDate
	}

	now := time.Now()
	if reason := lot.ShouldClose(now, auctionEnd); reason != domain.CloseReasonNone {
		_, err := s.settlement.Settle(ctx, lotID)
		if err != nil {
			// A concurrent poll may have settled first; that still ends the watch.
			if errors.Is(err, auctionerrors.ErrSettlementCompleted) {
				return true, nil
			}
			return false, err
		}
		zap.L().Info("Lot closed by watcher",
			zap.Int("lotID", lotID),
			zap.String("reason", string(reason)))
		return true, nil
	}

	s.publishTimer(lot, now, auctionEnd)
	return false, nil
}

func (s *Scheduler) publishTimer(lot *domain.Lot, now time.Time, auctionEnd *time.Time) {
	remaining := lot.TimeRemaining(now, auctionEnd)
	if remaining == nil {
		return
	}
	payload := events.TimerUpdatePayload{
		LotID:         lot.ID,
		TimeRemaining: *remaining,
		Countdown:     lot.Countdown(now),
	}
	s.publisher.PublishLot(lot.ID, events.New(events.TypeTimerUpdate, payload))
}
