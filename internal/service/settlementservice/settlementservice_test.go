package settlementservice

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/Meetvaghasiya-5040/Auction-House/internal/auctionerrors"
	"github.com/Meetvaghasiya-5040/Auction-House/internal/documents"
	"github.com/Meetvaghasiya-5040/Auction-House/internal/domain"
	"github.com/Meetvaghasiya-5040/Auction-House/internal/pg"
)

type mocks struct {
	txManager   *pg.MockTXManager
	lotRepo     *MockLotRepo
	bidRepo     *MockBidRepo
	itemRepo    *MockItemRepo
	invoiceRepo *MockInvoiceRepo
	userRepo    *MockUserRepo
	wallets     *MockWallets
	publisher   *MockPublisher
	dispatcher  *MockDispatcher
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
		wallets:     NewMockWallets(ctrl),
		publisher:   NewMockPublisher(ctrl),
		dispatcher:  NewMockDispatcher(ctrl),
	}
	m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()
	svc := New(m.txManager, m.lotRepo, m.bidRepo, m.itemRepo, m.invoiceRepo, m.userRepo, m.wallets, m.publisher, m.dispatcher)
	return svc, m
}

type decMatcher struct{ want decimal.Decimal }

func (d decMatcher) Matches(x any) bool {
	got, ok := x.(decimal.Decimal)
	return ok && got.Equal(d.want)
}

func (d decMatcher) String() string {
	return fmt.Sprintf("decimal equal to %s", d.want)
}

func decEq(v int64) gomock.Matcher { return decMatcher{want: decimal.NewFromInt(v)} }

func activeLot() *domain.Lot {
	return &domain.Lot{
		ID:        3,
		AuctionID: 1,
		Title:     "Vintage clocks",
		Status:    domain.LotStatusActive,
	}
}

func houseWallet() *domain.Wallet {
	return &domain.Wallet{ID: 1, Kind: domain.WalletKindHouse, Balance: decimal.Zero}
}

func ownerWallet(userID int) *domain.Wallet {
	return &domain.Wallet{ID: userID + 100, UserID: &userID, Kind: domain.WalletKindUser, Balance: decimal.Zero}
}

func TestSettle_SoldLot(t *testing.T) {
	svc, m := newService(t)
	ctx := context.Background()

	winning := &domain.Bid{ID: 42, LotID: 3, BidderID: 7, Amount: decimal.NewFromInt(1100), IsWinning: true}
	lotID := 3
	items := []domain.Item{
		{ID: 10, OwnerID: 20, Title: "Mantel clock", EstimatedValue: decimal.NewFromInt(300), Status: domain.ItemStatusLotted, LotID: &lotID},
		{ID: 11, OwnerID: 21, Title: "Grandfather clock", EstimatedValue: decimal.NewFromInt(700), Status: domain.ItemStatusLotted, LotID: &lotID},
	}

	m.lotRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 3).Return(activeLot(), nil)
	m.bidRepo.EXPECT().GetWinningByLot(gomock.Any(), 3).Return(winning, nil)
	m.itemRepo.EXPECT().ListByLot(gomock.Any(), 3).Return(items, nil)

	// Commission of 10 percent goes to the house wallet.
	m.wallets.EXPECT().LockHouseWallet(gomock.Any()).Return(houseWallet(), nil)
	m.wallets.EXPECT().Credit(gomock.Any(), gomock.Any(), decEq(110), domain.TxnCommission, gomock.Any(), &winning.ID).
		Return(houseWallet(), nil)

	// The remaining 990 splits 297 and 693 by estimated value.
	m.wallets.EXPECT().EnsureWallet(gomock.Any(), 20).Return(ownerWallet(20), nil)
	m.wallets.EXPECT().LockWallet(gomock.Any(), 20).Return(ownerWallet(20), nil)
	m.wallets.EXPECT().Credit(gomock.Any(), gomock.Any(), decEq(297), domain.TxnPayout, gomock.Any(), &winning.ID).
		Return(ownerWallet(20), nil)
	m.wallets.EXPECT().EnsureWallet(gomock.Any(), 21).Return(ownerWallet(21), nil)
	m.wallets.EXPECT().LockWallet(gomock.Any(), 21).Return(ownerWallet(21), nil)
	m.wallets.EXPECT().Credit(gomock.Any(), gomock.Any(), decEq(693), domain.TxnPayout, gomock.Any(), &winning.ID).
		Return(ownerWallet(21), nil)

	m.itemRepo.EXPECT().UpdateStatusByLot(gomock.Any(), 3, domain.ItemStatusSold).Return(nil)
	m.lotRepo.EXPECT().UpdateStatus(gomock.Any(), 3, domain.LotStatusSold, &winning.BidderID).Return(nil)
	m.invoiceRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, inv *domain.Invoice) (*domain.Invoice, error) {
			assert.True(t, inv.Amount.Equal(decimal.NewFromInt(1100)))
			assert.True(t, inv.Commission.Equal(decimal.NewFromInt(110)))
			assert.Equal(t, 3, inv.LotID)
			assert.Equal(t, 7, inv.UserID)
			assert.NotEmpty(t, inv.InvoiceNumber)
			inv.ID = 1
			return inv, nil
		})
	m.userRepo.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.User{ID: 7, Login: "collector7"}, nil)

	m.publisher.EXPECT().PublishLot(3, gomock.Any())
	m.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Do(
		func(_ context.Context, doc documents.SettlementDocument) {
			assert.Len(t, doc.Items, 2)
			assert.True(t, doc.Items[0].OwnerPayout.Equal(decimal.NewFromInt(297)))
			assert.True(t, doc.Items[1].OwnerPayout.Equal(decimal.NewFromInt(693)))
			assert.Equal(t, "collector7", doc.WinnerLogin)
		})

	outcome, err := svc.Settle(ctx, 3)

	assert.NoError(t, err)
	assert.False(t, outcome.AlreadySettled)
	assert.Equal(t, domain.LotStatusSold, outcome.Lot.Status)
	assert.NotNil(t, outcome.Invoice)
	assert.Equal(t, "collector7", *outcome.WinnerLogin)
}

func TestSettle_NoBidsGoesUnsold(t *testing.T) {
	svc, m := newService(t)

	m.lotRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 3).Return(activeLot(), nil)
	m.bidRepo.EXPECT().GetWinningByLot(gomock.Any(), 3).Return(nil, nil)
	m.lotRepo.EXPECT().UpdateStatus(gomock.Any(), 3, domain.LotStatusUnsold, nil).Return(nil)
	m.itemRepo.EXPECT().UpdateStatusByLot(gomock.Any(), 3, domain.ItemStatusAvailable).Return(nil)
	m.publisher.EXPECT().PublishLot(3, gomock.Any())

	outcome, err := svc.Settle(context.Background(), 3)

	assert.NoError(t, err)
	assert.Equal(t, domain.LotStatusUnsold, outcome.Lot.Status)
	assert.Nil(t, outcome.Invoice)
}

func TestSettle_AlreadySettled(t *testing.T) {
	svc, m := newService(t)

	winnerID := 7
	lot := activeLot()
	lot.Status = domain.LotStatusSold
	lot.WinningBidderID = &winnerID
	invoice := &domain.Invoice{ID: 1, InvoiceNumber: "INV-9F2B1C4D", LotID: 3}

	m.lotRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 3).Return(lot, nil)
	m.invoiceRepo.EXPECT().GetByLot(gomock.Any(), 3).Return(invoice, nil)
	m.userRepo.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.User{ID: 7, Login: "collector7"}, nil)

	outcome, err := svc.Settle(context.Background(), 3)

	assert.NoError(t, err)
	assert.True(t, outcome.AlreadySettled)
	assert.Equal(t, invoice, outcome.Invoice)
	assert.Equal(t, "collector7", *outcome.WinnerLogin)
}

func TestSettle_ZeroEstimatedValueAborts(t *testing.T) {
	svc, m := newService(t)

	winning := &domain.Bid{ID: 42, LotID: 3, BidderID: 7, Amount: decimal.NewFromInt(1100), IsWinning: true}
	items := []domain.Item{
		{ID: 10, OwnerID: 20, Title: "Mantel clock", EstimatedValue: decimal.Zero},
	}

	m.lotRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 3).Return(activeLot(), nil)
	m.bidRepo.EXPECT().GetWinningByLot(gomock.Any(), 3).Return(winning, nil)
	m.itemRepo.EXPECT().ListByLot(gomock.Any(), 3).Return(items, nil)

	outcome, err := svc.Settle(context.Background(), 3)

	assert.Nil(t, outcome)
	assert.ErrorIs(t, err, auctionerrors.ErrDataIntegrity)
}

func TestSettle_NoItemsAborts(t *testing.T) {
	svc, m := newService(t)

	winning := &domain.Bid{ID: 42, LotID: 3, BidderID: 7, Amount: decimal.NewFromInt(1100), IsWinning: true}

	m.lotRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 3).Return(activeLot(), nil)
	m.bidRepo.EXPECT().GetWinningByLot(gomock.Any(), 3).Return(winning, nil)
	m.itemRepo.EXPECT().ListByLot(gomock.Any(), 3).Return(nil, nil)

	outcome, err := svc.Settle(context.Background(), 3)

	assert.Nil(t, outcome)
	assert.ErrorIs(t, err, auctionerrors.ErrDataIntegrity)
}

func TestSettle_LotNotFound(t *testing.T) {
	svc, m := newService(t)

	m.lotRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 99).Return(nil, nil)

	outcome, err := svc.Settle(context.Background(), 99)

	assert.Nil(t, outcome)
	assert.ErrorIs(t, err, auctionerrors.ErrLotNotFound)
}
