package bidservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/Meetvaghasiya-5040/Auction-House/internal/auctionerrors"
	"github.com/Meetvaghasiya-5040/Auction-House/internal/domain"
	"github.com/Meetvaghasiya-5040/Auction-House/internal/pg"
)

type mocks struct {
	txManager *pg.MockTXManager
	lotRepo   *MockLotRepo
	bidRepo   *MockBidRepo
	itemRepo  *MockItemRepo
	userRepo  *MockUserRepo
	wallets   *MockWallets
	publisher *MockPublisher
}

func newService(t *testing.T, allowTopUp bool) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		txManager: pg.NewMockTXManager(ctrl),
		lotRepo:   NewMockLotRepo(ctrl),
		bidRepo:   NewMockBidRepo(ctrl),
		itemRepo:  NewMockItemRepo(ctrl),
		userRepo:  NewMockUserRepo(ctrl),
		wallets:   NewMockWallets(ctrl),
		publisher: NewMockPublisher(ctrl),
	}
	svc := New(m.txManager, m.lotRepo, m.bidRepo, m.itemRepo, m.userRepo, m.wallets, m.publisher, allowTopUp)
	return svc, m
}

func passthroughTx(m *mocks) {
	m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()
}

func activeLot() *domain.Lot {
	return &domain.Lot{
		ID:           3,
		AuctionID:    1,
		Title:        "Vintage clocks",
		StartingBid:  decimal.NewFromInt(1000),
		CurrentBid:   decimal.NewFromInt(1000),
		MinIncrement: decimal.NewFromInt(100),
		Status:       domain.LotStatusActive,
	}
}

func wallet(userID int, balance int64) *domain.Wallet {
	return &domain.Wallet{ID: userID + 100, UserID: &userID, Kind: domain.WalletKindUser, Balance: decimal.NewFromInt(balance)}
}

func TestPlaceBid_FirstBid(t *testing.T) {
	svc, m := newService(t, false)
	passthroughTx(m)
	ctx := context.Background()

	lot := activeLot()
	lot.CurrentBid = decimal.Zero

	m.wallets.EXPECT().EnsureWallet(ctx, 7).Return(wallet(7, 5000), nil)
	m.lotRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 3).Return(lot, nil)
	m.lotRepo.EXPECT().GetAuction(gomock.Any(), 1).Return(&domain.Auction{ID: 1}, nil)
	m.itemRepo.EXPECT().OwnerHasItemInLot(gomock.Any(), 3, 7).Return(false, nil)
	m.bidRepo.EXPECT().GetWinningByLot(gomock.Any(), 3).Return(nil, nil)
	m.bidRepo.EXPECT().CountByLot(gomock.Any(), 3).Return(0, nil)
	m.wallets.EXPECT().LockWallet(gomock.Any(), 7).Return(wallet(7, 5000), nil)
	m.bidRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, bid *domain.Bid) (*domain.Bid, error) {
			assert.True(t, bid.IsWinning)
			bid.ID = 42
			return bid, nil
		})
	m.wallets.EXPECT().Debit(gomock.Any(), gomock.Any(), decimal.NewFromInt(1000), domain.TxnBidDebit, gomock.Any(), gomock.Any()).
		Return(wallet(7, 4000), nil)
	m.lotRepo.EXPECT().UpdateOnBid(gomock.Any(), gomock.Any()).Return(nil)
	m.userRepo.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.User{ID: 7, Login: "collector7"}, nil)
	m.publisher.EXPECT().PublishLot(3, gomock.Any())
	m.publisher.EXPECT().PublishUser(7, gomock.Any())

	result, err := svc.PlaceBid(ctx, 3, 7, decimal.NewFromInt(1000))

	assert.NoError(t, err)
	assert.Equal(t, 42, result.Bid.ID)
	assert.True(t, result.Lot.CurrentBid.Equal(decimal.NewFromInt(1000)))
	assert.True(t, result.MinimumNextBid.Equal(decimal.NewFromInt(1100)))
	assert.True(t, result.NewBalance.Equal(decimal.NewFromInt(4000)))
	assert.Equal(t, "collector7", result.LeaderLogin)
	assert.Nil(t, result.DisplacedLeader)
}

func TestPlaceBid_RefundsDisplacedLeader(t *testing.T) {
	svc, m := newService(t, false)
	passthroughTx(m)
	ctx := context.Background()

	lot := activeLot()
	prev := &domain.Bid{ID: 41, LotID: 3, BidderID: 5, Amount: decimal.NewFromInt(1000), IsWinning: true}

	m.wallets.EXPECT().EnsureWallet(ctx, 7).Return(wallet(7, 5000), nil)
	m.lotRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 3).Return(lot, nil)
	m.lotRepo.EXPECT().GetAuction(gomock.Any(), 1).Return(&domain.Auction{ID: 1}, nil)
	m.itemRepo.EXPECT().OwnerHasItemInLot(gomock.Any(), 3, 7).Return(false, nil)
	m.bidRepo.EXPECT().GetWinningByLot(gomock.Any(), 3).Return(prev, nil)
	m.bidRepo.EXPECT().CountByLot(gomock.Any(), 3).Return(1, nil)
	m.wallets.EXPECT().LockWallet(gomock.Any(), 7).Return(wallet(7, 5000), nil)
	m.wallets.EXPECT().LockWallet(gomock.Any(), 5).Return(wallet(5, 0), nil)
	m.wallets.EXPECT().Credit(gomock.Any(), gomock.Any(), decimal.NewFromInt(1000), domain.TxnBidRefund, gomock.Any(), &prev.ID).
		Return(wallet(5, 1000), nil)
	m.userRepo.EXPECT().FindByID(gomock.Any(), 5).Return(&domain.User{ID: 5, Login: "collector5"}, nil)
	m.bidRepo.EXPECT().ClearWinning(gomock.Any(), 41).Return(nil)
	m.bidRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, bid *domain.Bid) (*domain.Bid, error) {
			bid.ID = 42
			return bid, nil
		})
	m.wallets.EXPECT().Debit(gomock.Any(), gomock.Any(), decimal.NewFromInt(1100), domain.TxnBidDebit, gomock.Any(), gomock.Any()).
		Return(wallet(7, 3900), nil)
	m.lotRepo.EXPECT().UpdateOnBid(gomock.Any(), gomock.Any()).Return(nil)
	m.userRepo.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.User{ID: 7, Login: "collector7"}, nil)
	m.publisher.EXPECT().PublishLot(3, gomock.Any())
	m.publisher.EXPECT().PublishUser(7, gomock.Any())
	m.publisher.EXPECT().PublishUser(5, gomock.Any())

	result, err := svc.PlaceBid(ctx, 3, 7, decimal.NewFromInt(1100))

	assert.NoError(t, err)
	assert.NotNil(t, result.DisplacedLeader)
	assert.Equal(t, 5, result.DisplacedLeader.UserID)
	assert.Equal(t, "collector5", result.DisplacedLeader.Login)
	assert.True(t, result.DisplacedLeader.Balance.Equal(decimal.NewFromInt(1000)))
	assert.True(t, result.NewBalance.Equal(decimal.NewFromInt(3900)))
}

func TestPlaceBid_TopUpChargesDifference(t *testing.T) {
	svc, m := newService(t, true)
	passthroughTx(m)
	ctx := context.Background()

	lot := activeLot()
	prev := &domain.Bid{ID: 41, LotID: 3, BidderID: 7, Amount: decimal.NewFromInt(1000), IsWinning: true}

	m.wallets.EXPECT().EnsureWallet(ctx, 7).Return(wallet(7, 500), nil)
	m.lotRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 3).Return(lot, nil)
	m.lotRepo.EXPECT().GetAuction(gomock.Any(), 1).Return(&domain.Auction{ID: 1}, nil)
	m.itemRepo.EXPECT().OwnerHasItemInLot(gomock.Any(), 3, 7).Return(false, nil)
	m.bidRepo.EXPECT().GetWinningByLot(gomock.Any(), 3).Return(prev, nil)
	m.bidRepo.EXPECT().CountByLot(gomock.Any(), 3).Return(1, nil)
	m.wallets.EXPECT().LockWallet(gomock.Any(), 7).Return(wallet(7, 500), nil)
	m.bidRepo.EXPECT().ClearWinning(gomock.Any(), 41).Return(nil)
	m.bidRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, bid *domain.Bid) (*domain.Bid, error) {
			bid.ID = 42
			return bid, nil
		})
	m.wallets.EXPECT().Debit(gomock.Any(), gomock.Any(), decimal.NewFromInt(200), domain.TxnBidDebit, gomock.Any(), gomock.Any()).
		Return(wallet(7, 300), nil)
	m.lotRepo.EXPECT().UpdateOnBid(gomock.Any(), gomock.Any()).Return(nil)
	m.userRepo.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.User{ID: 7, Login: "collector7"}, nil)
	m.publisher.EXPECT().PublishLot(3, gomock.Any())
	m.publisher.EXPECT().PublishUser(7, gomock.Any())

	result, err := svc.PlaceBid(ctx, 3, 7, decimal.NewFromInt(1200))

	assert.NoError(t, err)
	assert.True(t, result.NewBalance.Equal(decimal.NewFromInt(300)))
	assert.Nil(t, result.DisplacedLeader)
}

func TestPlaceBid_Rejections(t *testing.T) {
	userID := 7
	tests := []struct {
		name        string
		prepareMock func(m *mocks)
		amount      decimal.Decimal
		wantErr     error
	}{
		{
			name: "lot not found",
			prepareMock: func(m *mocks) {
				m.lotRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 3).Return(nil, nil)
			},
			amount:  decimal.NewFromInt(1000),
			wantErr: auctionerrors.ErrLotNotFound,
		},
		{
			name: "lot not active",
			prepareMock: func(m *mocks) {
				lot := activeLot()
				lot.Status = domain.LotStatusSold
				m.lotRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 3).Return(lot, nil)
			},
			amount:  decimal.NewFromInt(1000),
			wantErr: auctionerrors.ErrLotNotActive,
		},
		{
			name: "lot past hard deadline",
			prepareMock: func(m *mocks) {
				lot := activeLot()
				lot.IsTimed = true
				past := time.Now().Add(-time.Minute)
				lot.EndTime = &past
				m.lotRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 3).Return(lot, nil)
				m.lotRepo.EXPECT().GetAuction(gomock.Any(), 1).Return(&domain.Auction{ID: 1}, nil)
			},
			amount:  decimal.NewFromInt(1000),
			wantErr: auctionerrors.ErrLotEnded,
		},
		{
			name: "own item in lot",
			prepareMock: func(m *mocks) {
				m.lotRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 3).Return(activeLot(), nil)
				m.lotRepo.EXPECT().GetAuction(gomock.Any(), 1).Return(&domain.Auction{ID: 1}, nil)
				m.itemRepo.EXPECT().OwnerHasItemInLot(gomock.Any(), 3, userID).Return(true, nil)
			},
			amount:  decimal.NewFromInt(1000),
			wantErr: auctionerrors.ErrSelfBidForbidden,
		},
		{
			name: "already leading",
			prepareMock: func(m *mocks) {
				m.lotRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 3).Return(activeLot(), nil)
				m.lotRepo.EXPECT().GetAuction(gomock.Any(), 1).Return(&domain.Auction{ID: 1}, nil)
				m.itemRepo.EXPECT().OwnerHasItemInLot(gomock.Any(), 3, userID).Return(false, nil)
				m.bidRepo.EXPECT().GetWinningByLot(gomock.Any(), 3).Return(
					&domain.Bid{ID: 41, BidderID: userID, Amount: decimal.NewFromInt(1000), IsWinning: true}, nil)
			},
			amount:  decimal.NewFromInt(1200),
			wantErr: auctionerrors.ErrAlreadyLeading,
		},
		{
			name: "bid too low",
			prepareMock: func(m *mocks) {
				m.lotRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 3).Return(activeLot(), nil)
				m.lotRepo.EXPECT().GetAuction(gomock.Any(), 1).Return(&domain.Auction{ID: 1}, nil)
				m.itemRepo.EXPECT().OwnerHasItemInLot(gomock.Any(), 3, userID).Return(false, nil)
				m.bidRepo.EXPECT().GetWinningByLot(gomock.Any(), 3).Return(nil, nil)
				m.bidRepo.EXPECT().CountByLot(gomock.Any(), 3).Return(1, nil)
			},
			amount:  decimal.NewFromInt(1050),
			wantErr: auctionerrors.ErrBidTooLow,
		},
		{
			name: "insufficient funds",
			prepareMock: func(m *mocks) {
				m.lotRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 3).Return(activeLot(), nil)
				m.lotRepo.EXPECT().GetAuction(gomock.Any(), 1).Return(&domain.Auction{ID: 1}, nil)
				m.itemRepo.EXPECT().OwnerHasItemInLot(gomock.Any(), 3, userID).Return(false, nil)
				m.bidRepo.EXPECT().GetWinningByLot(gomock.Any(), 3).Return(nil, nil)
				m.bidRepo.EXPECT().CountByLot(gomock.Any(), 3).Return(1, nil)
				m.wallets.EXPECT().LockWallet(gomock.Any(), userID).Return(wallet(userID, 500), nil)
			},
			amount:  decimal.NewFromInt(1100),
			wantErr: auctionerrors.ErrInsufficientFunds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t, false)
			passthroughTx(m)
			m.wallets.EXPECT().EnsureWallet(gomock.Any(), userID).Return(wallet(userID, 500), nil)
			tt.prepareMock(m)

			result, err := svc.PlaceBid(context.Background(), 3, userID, tt.amount)

			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPlaceBid_RetriesLockContention(t *testing.T) {
	svc, m := newService(t, false)
	ctx := context.Background()

	m.wallets.EXPECT().EnsureWallet(ctx, 7).Return(wallet(7, 5000), nil)
	lockErr := &pgconn.PgError{Code: "55P03"}
	m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).Return(lockErr).Times(maxRetries)

	result, err := svc.PlaceBid(ctx, 3, 7, decimal.NewFromInt(1000))

	assert.Nil(t, result)
	assert.ErrorIs(t, err, auctionerrors.ErrConcurrentModification)
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, isRetryable(auctionerrors.ErrConcurrentModification))
	assert.True(t, isRetryable(&pgconn.PgError{Code: "40001"}))
	assert.True(t, isRetryable(&pgconn.PgError{Code: "40P01"}))
	assert.True(t, isRetryable(&pgconn.PgError{Code: "55P03"}))
	assert.False(t, isRetryable(errors.New("boom")))
	assert.False(t, isRetryable(auctionerrors.ErrBidTooLow))
}
