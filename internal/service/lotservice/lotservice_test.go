package lotservice

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/Meetvaghasiya-5040/Auction-House/internal/auctionerrors"
	"github.com/Meetvaghasiya-5040/Auction-House/internal/domain"
	"github.com/Meetvaghasiya-5040/Auction-House/internal/pg"
	"github.com/Meetvaghasiya-5040/Auction-House/internal/service/settlementservice"
)

type mocks struct {
	txManager   *pg.MockTXManager
	lotRepo     *MockLotRepo
	bidRepo     *MockBidRepo
	itemRepo    *MockItemRepo
	invoiceRepo *MockInvoiceRepo
	userRepo    *MockUserRepo
	settlement  *MockSettlement
}

func newService(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		txManager:   pg.NewMockTXManager(ctrl),
		lotRepo:     NewMockLotRepo(ctrl),
		bidRepo:     NewMockBidRepo(ctrl),
		itemRepo:    NewMockItemRepo(ctrl),
		invoiceRepo: NewMockInvoiceRepo(ctrl),
		userRepo:    NewMockUserRepo(ctrl),
		settlement:  NewMockSettlement(ctrl),
	}
	m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()
	svc := New(m.txManager, m.lotRepo, m.bidRepo, m.itemRepo, m.invoiceRepo, m.userRepo, m.settlement)
	return svc, m
}

func TestGetSnapshot_ActiveLot(t *testing.T) {
	svc, m := newService(t)

	bidAt := time.Now().Add(-2 * time.Second)
	lot := &domain.Lot{
		ID:           3,
		AuctionID:    1,
		Title:        "Vintage clocks",
		StartingBid:  decimal.NewFromInt(1000),
		CurrentBid:   decimal.NewFromInt(1100),
		MinIncrement: decimal.NewFromInt(100),
		Status:       domain.LotStatusActive,
		LastBidTime:  &bidAt,
	}

	m.lotRepo.EXPECT().GetByID(gomock.Any(), 3).Return(lot, nil)
	m.lotRepo.EXPECT().GetAuction(gomock.Any(), 1).Return(&domain.Auction{ID: 1}, nil).Times(2)
	m.bidRepo.EXPECT().CountByLot(gomock.Any(), 3).Return(2, nil)
	m.bidRepo.EXPECT().ListRecentByLot(gomock.Any(), 3, recentBidsLimit).Return([]domain.LotBid{
		{Bid: domain.Bid{ID: 42, Amount: decimal.NewFromInt(1100), IsWinning: true}, BidderLogin: "collector7"},
	}, nil)

	snap, err := svc.GetSnapshot(context.Background(), 3)

	assert.NoError(t, err)
	assert.Equal(t, 2, snap.BidCount)
	assert.True(t, snap.MinimumBid.Equal(decimal.NewFromInt(1200)))
	assert.NotNil(t, snap.TimeRemaining)
	assert.Nil(t, snap.Countdown)
	assert.Len(t, snap.RecentBids, 1)
}

func TestGetSnapshot_ExpiredLotSettlesFirst(t *testing.T) {
	svc, m := newService(t)

	staleBid := time.Now().Add(-time.Minute)
	lot := &domain.Lot{
		ID:          3,
		AuctionID:   1,
		Status:      domain.LotStatusActive,
		CurrentBid:  decimal.NewFromInt(1100),
		LastBidTime: &staleBid,
	}
	winnerID := 7
	settled := &domain.Lot{
		ID:              3,
		AuctionID:       1,
		Status:          domain.LotStatusSold,
		CurrentBid:      decimal.NewFromInt(1100),
		WinningBidderID: &winnerID,
	}

	m.lotRepo.EXPECT().GetByID(gomock.Any(), 3).Return(lot, nil)
	m.lotRepo.EXPECT().GetAuction(gomock.Any(), 1).Return(&domain.Auction{ID: 1}, nil)
	m.settlement.EXPECT().Settle(gomock.Any(), 3).Return(&settlementservice.Outcome{Lot: settled}, nil)
	m.bidRepo.EXPECT().CountByLot(gomock.Any(), 3).Return(2, nil)
	m.bidRepo.EXPECT().ListRecentByLot(gomock.Any(), 3, recentBidsLimit).Return(nil, nil)
	m.userRepo.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.User{ID: 7, Login: "collector7"}, nil)

	snap, err := svc.GetSnapshot(context.Background(), 3)

	assert.NoError(t, err)
	assert.Equal(t, domain.LotStatusSold, snap.Lot.Status)
	assert.Equal(t, "collector7", *snap.WinnerLogin)
	assert.Nil(t, snap.TimeRemaining)
}

func TestGetSnapshot_NotFound(t *testing.T) {
	svc, m := newService(t)

	m.lotRepo.EXPECT().GetByID(gomock.Any(), 99).Return(nil, nil)

	snap, err := svc.GetSnapshot(context.Background(), 99)

	assert.Nil(t, snap)
	assert.ErrorIs(t, err, auctionerrors.ErrLotNotFound)
}

func TestActivateAuction(t *testing.T) {
	t.Run("opens draft lots", func(t *testing.T) {
		svc, m := newService(t)

		m.lotRepo.EXPECT().GetAuction(gomock.Any(), 1).Return(&domain.Auction{ID: 1}, nil)
		m.lotRepo.EXPECT().ActivateByAuction(gomock.Any(), 1, gomock.Any()).Return([]int{3, 4}, nil)

		lotIDs, err := svc.ActivateAuction(context.Background(), 1)

		assert.NoError(t, err)
		assert.Equal(t, []int{3, 4}, lotIDs)
	})

	t.Run("unknown auction", func(t *testing.T) {
		svc, m := newService(t)

		m.lotRepo.EXPECT().GetAuction(gomock.Any(), 9).Return(nil, nil)

		_, err := svc.ActivateAuction(context.Background(), 9)

		assert.ErrorIs(t, err, auctionerrors.ErrLotNotFound)
	})
}

func TestWithdrawLot(t *testing.T) {
	tests := []struct {
		name        string
		prepareMock func(m *mocks)
		wantErr     error
	}{
		{
			name: "withdraws clean lot",
			prepareMock: func(m *mocks) {
				m.lotRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 3).Return(
					&domain.Lot{ID: 3, Status: domain.LotStatusActive}, nil)
				m.bidRepo.EXPECT().GetWinningByLot(gomock.Any(), 3).Return(nil, nil)
				m.lotRepo.EXPECT().UpdateStatus(gomock.Any(), 3, domain.LotStatusWithdrawn, nil).Return(nil)
				m.itemRepo.EXPECT().UpdateStatusByLot(gomock.Any(), 3, domain.ItemStatusAvailable).Return(nil)
			},
		},
		{
			name: "rejects lot with bids",
			prepareMock: func(m *mocks) {
				m.lotRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 3).Return(
					&domain.Lot{ID: 3, Status: domain.LotStatusActive}, nil)
				m.bidRepo.EXPECT().GetWinningByLot(gomock.Any(), 3).Return(
					&domain.Bid{ID: 42, IsWinning: true}, nil)
			},
			wantErr: auctionerrors.ErrLotHasBids,
		},
		{
			name: "rejects terminal lot",
			prepareMock: func(m *mocks) {
				m.lotRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 3).Return(
					&domain.Lot{ID: 3, Status: domain.LotStatusSold}, nil)
			},
			wantErr: auctionerrors.ErrLotNotActive,
		},
		{
			name: "missing lot",
			prepareMock: func(m *mocks) {
				m.lotRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 3).Return(nil, nil)
			},
			wantErr: auctionerrors.ErrLotNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			tt.prepareMock(m)

			err := svc.WithdrawLot(context.Background(), 3)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
