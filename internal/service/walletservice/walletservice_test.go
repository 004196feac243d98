package walletservice

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/Meetvaghasiya-5040/Auction-House/internal/auctionerrors"
	"github.com/Meetvaghasiya-5040/Auction-House/internal/domain"
	"github.com/Meetvaghasiya-5040/Auction-House/internal/pg"
)

func newService(t *testing.T) (*Service, *MockWalletRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	repo := NewMockWalletRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()
	return New(repo, txManager), repo, txManager
}

func userWallet(userID int, balance int64) *domain.Wallet {
	return &domain.Wallet{ID: 10, UserID: &userID, Kind: domain.WalletKindUser, Balance: decimal.NewFromInt(balance)}
}

func TestEnsureWallet(t *testing.T) {
	t.Run("existing wallet returned", func(t *testing.T) {
		svc, repo, _ := newService(t)
		existing := userWallet(7, 500)
		repo.EXPECT().GetByUserID(gomock.Any(), 7).Return(existing, nil)

		wallet, err := svc.EnsureWallet(context.Background(), 7)

		assert.NoError(t, err)
		assert.Equal(t, existing, wallet)
	})

	t.Run("created on first need", func(t *testing.T) {
		svc, repo, _ := newService(t)
		created := userWallet(7, 0)
		repo.EXPECT().GetByUserID(gomock.Any(), 7).Return(nil, nil)
		repo.EXPECT().Create(gomock.Any(), 7).Return(created, nil)

		wallet, err := svc.EnsureWallet(context.Background(), 7)

		assert.NoError(t, err)
		assert.Equal(t, created, wallet)
	})
}

func TestDeposit(t *testing.T) {
	t.Run("credits and records transaction", func(t *testing.T) {
		svc, repo, _ := newService(t)
		wallet := userWallet(7, 500)

		repo.EXPECT().GetByUserID(gomock.Any(), 7).Return(wallet, nil)
		repo.EXPECT().GetByUserIDForUpdate(gomock.Any(), 7).Return(wallet, nil)
		repo.EXPECT().UpdateBalance(gomock.Any(), 10, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int, balance decimal.Decimal) (*domain.Wallet, error) {
				assert.True(t, balance.Equal(decimal.NewFromInt(1500)))
				return userWallet(7, 1500), nil
			})
		repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
				assert.Equal(t, domain.TxnDeposit, txn.Kind)
				assert.True(t, txn.Amount.Equal(decimal.NewFromInt(1000)))
				return txn, nil
			})

		updated, err := svc.Deposit(context.Background(), 7, decimal.NewFromInt(1000), "Deposit (ref 2377225624)")

		assert.NoError(t, err)
		assert.True(t, updated.Balance.Equal(decimal.NewFromInt(1500)))
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		svc, _, _ := newService(t)

		_, err := svc.Deposit(context.Background(), 7, decimal.Zero, "")

		assert.ErrorIs(t, err, ErrInvalidAmount)
	})
}

func TestDebit(t *testing.T) {
	t.Run("writes negative ledger entry", func(t *testing.T) {
		svc, repo, _ := newService(t)
		wallet := userWallet(7, 1500)

		repo.EXPECT().UpdateBalance(gomock.Any(), 10, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int, balance decimal.Decimal) (*domain.Wallet, error) {
				assert.True(t, balance.Equal(decimal.NewFromInt(400)))
				return userWallet(7, 400), nil
			})
		repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
				assert.True(t, txn.Amount.Equal(decimal.NewFromInt(-1100)))
				assert.Equal(t, domain.TxnBidDebit, txn.Kind)
				return txn, nil
			})

		updated, err := svc.Debit(context.Background(), wallet, decimal.NewFromInt(1100), domain.TxnBidDebit, "Bid placed", nil)

		assert.NoError(t, err)
		assert.True(t, updated.Balance.Equal(decimal.NewFromInt(400)))
	})

	t.Run("rejects overdraft", func(t *testing.T) {
		svc, _, _ := newService(t)
		wallet := userWallet(7, 500)

		_, err := svc.Debit(context.Background(), wallet, decimal.NewFromInt(1100), domain.TxnBidDebit, "Bid placed", nil)

		assert.ErrorIs(t, err, auctionerrors.ErrInsufficientFunds)
	})
}

func TestLockWallet(t *testing.T) {
	t.Run("missing wallet", func(t *testing.T) {
		svc, repo, _ := newService(t)
		repo.EXPECT().GetByUserIDForUpdate(gomock.Any(), 7).Return(nil, nil)

		_, err := svc.LockWallet(context.Background(), 7)

		assert.ErrorIs(t, err, auctionerrors.ErrWalletNotFound)
	})
}

func TestAuditWallet(t *testing.T) {
	tests := []struct {
		name      string
		balance   int64
		ledgerSum int64
		want      bool
	}{
		{"balance matches ledger", 400, 400, true},
		{"balance diverged", 400, 500, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newService(t)
			wallet := userWallet(7, tt.balance)
			repo.EXPECT().SumTransactions(gomock.Any(), 10).Return(decimal.NewFromInt(tt.ledgerSum), nil)

			ok, err := svc.AuditWallet(context.Background(), wallet)

			assert.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}
