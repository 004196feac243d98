package walletrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Meetvaghasiya-5040/Auction-House/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, nil)
	defer mockDB.Close()

	return repo, mockDB
}

var fixedTime = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

func walletRow(id int, userID *int, kind string, balance int64, version int) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "user_id", "kind", "balance", "version", "created_at", "updated_at"}).
		AddRow(id, userID, kind, decimal.NewFromInt(balance), int64(version), fixedTime, fixedTime)
}

func TestRepository_GetByUserIDForUpdate(t *testing.T) {
	repo, mock := NewMock(t)
	userID := 5

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Wallet
	}{
		{
			name: "Wallet locked",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
					WithArgs(5).
					WillReturnRows(walletRow(1, &userID, domain.WalletKindUser, 5000, 3))
			},
			result: &domain.Wallet{
				ID:        1,
				UserID:    &userID,
				Kind:      domain.WalletKindUser,
				Balance:   decimal.NewFromInt(5000),
				Version:   3,
				CreatedAt: fixedTime,
				UpdatedAt: fixedTime,
			},
		},
		{
			name: "Wallet not found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
					WithArgs(5).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
					WithArgs(5).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByUserIDForUpdate(context.Background(), userID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_GetHouseWalletForUpdate(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("House wallet exists", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE kind = 'house'")).
			WillReturnRows(walletRow(2, nil, domain.WalletKindHouse, 100, 1))

		result, err := repo.GetHouseWalletForUpdate(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, domain.WalletKindHouse, result.Kind)
		assert.Nil(t, result.UserID)
	})

	t.Run("House wallet created on first need", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE kind = 'house'")).
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO wallets (user_id, kind, balance)")).
			WillReturnRows(walletRow(2, nil, domain.WalletKindHouse, 0, 0))

		result, err := repo.GetHouseWalletForUpdate(context.Background())
		assert.NoError(t, err)
		assert.True(t, result.Balance.IsZero())
	})
}

func TestRepository_UpdateBalance(t *testing.T) {
	repo, mock := NewMock(t)
	userID := 5

	t.Run("Balance updated and version bumped", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SET balance = $1, version = version + 1, updated_at = now()")).
			WithArgs(decimal.NewFromInt(3900), 1).
			WillReturnRows(walletRow(1, &userID, domain.WalletKindUser, 3900, 4))

		result, err := repo.UpdateBalance(context.Background(), 1, decimal.NewFromInt(3900))
		assert.NoError(t, err)
		assert.True(t, result.Balance.Equal(decimal.NewFromInt(3900)))
		assert.Equal(t, int64(4), result.Version)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE wallets")).
			WithArgs(decimal.NewFromInt(3900), 1).
			WillReturnError(errors.New("database error"))

		_, err := repo.UpdateBalance(context.Background(), 1, decimal.NewFromInt(3900))
		assert.Error(t, err)
	})
}

func TestRepository_CreateTransaction(t *testing.T) {
	repo, mock := NewMock(t)
	bidID := 9

	txn := &domain.Transaction{
		WalletID:    1,
		Kind:        domain.TxnBidDebit,
		Amount:      decimal.NewFromInt(-1100),
		Description: "Bid on lot 3",
		BidID:       &bidID,
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO transactions (wallet_id, kind, amount, description, bid_id)")).
		WithArgs(1, domain.TxnBidDebit, decimal.NewFromInt(-1100), "Bid on lot 3", &bidID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(42, fixedTime))

	result, err := repo.CreateTransaction(context.Background(), txn)
	assert.NoError(t, err)
	assert.Equal(t, 42, result.ID)
	assert.Equal(t, fixedTime, result.CreatedAt)
}

func TestRepository_ListTransactionsByWallet(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows([]string{"id", "wallet_id", "kind", "amount", "description", "bid_id", "created_at"}).
		AddRow(2, 1, domain.TxnBidDebit, decimal.NewFromInt(-1100), "Bid on lot 3", nil, fixedTime).
		AddRow(1, 1, domain.TxnDeposit, decimal.NewFromInt(5000), "Deposit", nil, fixedTime)
	mock.ExpectQuery(regexp.QuoteMeta("FROM transactions")).
		WithArgs(1).
		WillReturnRows(rows)

	result, err := repo.ListTransactionsByWallet(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, domain.TxnBidDebit, result[0].Kind)
}

func TestRepository_SumTransactions(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("COALESCE(SUM(amount), 0)")).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(decimal.NewFromInt(3900)))

	sum, err := repo.SumTransactions(context.Background(), 1)
	assert.NoError(t, err)
	assert.True(t, sum.Equal(decimal.NewFromInt(3900)))
}
