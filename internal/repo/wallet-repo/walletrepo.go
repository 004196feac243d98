package walletrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Meetvaghasiya-5040/Auction-House/internal/domain"
	"github.com/Meetvaghasiya-5040/Auction-House/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const walletColumns = "id, user_id, kind, balance, version, created_at, updated_at"

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	var w domain.Wallet
	err := row.Scan(&w.ID, &w.UserID, &w.Kind, &w.Balance, &w.Version, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *Repository) GetByUserID(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
        SELECT ` + walletColumns + `
        FROM wallets
        WHERE user_id = $1
    `
	wallet, err := scanWallet(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

// GetByUserIDForUpdate locks the wallet row for the duration of the enclosing
// transaction. Callers must hold a transaction on ctx.
func (r *Repository) GetByUserIDForUpdate(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
        SELECT ` + walletColumns + `
        FROM wallets
        WHERE user_id = $1
        FOR UPDATE
    `
	wallet, err := scanWallet(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to lock wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

func (r *Repository) Create(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
        INSERT INTO wallets (user_id, kind, balance)
        VALUES ($1, 'user', 0)
        ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
        RETURNING ` + walletColumns + `
    `
	wallet, err := scanWallet(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		zap.L().Error("failed to create wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

// GetHouseWalletForUpdate locks the singleton commission wallet, creating it
// on first need.
func (r *Repository) GetHouseWalletForUpdate(ctx context.Context) (*domain.Wallet, error) {
	query := `
        SELECT ` + walletColumns + `
        FROM wallets
        WHERE kind = 'house'
        FOR UPDATE
    `
	wallet, err := scanWallet(r.db.QueryRow(ctx, query))
	if err == nil {
		return wallet, nil
	}
	if err != pgx.ErrNoRows {
		zap.L().Error("failed to lock house wallet", zap.Error(err))
		return nil, err
	}

	insert := `
        INSERT INTO wallets (user_id, kind, balance)
        VALUES (NULL, 'house', 0)
        RETURNING ` + walletColumns + `
    `
	wallet, err = scanWallet(r.db.QueryRow(ctx, insert))
	if err != nil {
		zap.L().Error("failed to create house wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

func (r *Repository) GetHouseWallet(ctx context.Context) (*domain.Wallet, error) {
	query := `
        SELECT ` + walletColumns + `
        FROM wallets
        WHERE kind = 'house'
    `
	wallet, err := scanWallet(r.db.QueryRow(ctx, query))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get house wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

func (r *Repository) UpdateBalance(ctx context.Context, walletID int, balance decimal.Decimal) (*domain.Wallet, error) {
	query := `
        UPDATE wallets
        SET balance = $1, version = version + 1, updated_at = now()
        WHERE id = $2
        RETURNING ` + walletColumns + `
    `
	wallet, err := scanWallet(r.db.QueryRow(ctx, query, balance, walletID))
	if err != nil {
		zap.L().Error("failed to update wallet balance", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

func (r *Repository) CreateTransaction(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
	query := `
        INSERT INTO transactions (wallet_id, kind, amount, description, bid_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, txn.WalletID, txn.Kind, txn.Amount, txn.Description, txn.BidID).
		Scan(&txn.ID, &txn.CreatedAt)
	if err != nil {
		zap.L().Error("failed to create transaction", zap.Error(err))
		return nil, err
	}
	return txn, nil
}

func (r *Repository) ListTransactionsByWallet(ctx context.Context, walletID int) ([]domain.Transaction, error) {
	query := `
        SELECT id, wallet_id, kind, amount, description, bid_id, created_at
        FROM transactions
        WHERE wallet_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, walletID)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		err := rows.Scan(&t.ID, &t.WalletID, &t.Kind, &t.Amount, &t.Description, &t.BidID, &t.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan transaction row", zap.Error(err))
			return nil, err
		}
		txns = append(txns, t)
	}
	return txns, nil
}

// SumTransactions returns the committed transaction total for a wallet. It
// must always equal the wallet's balance.
func (r *Repository) SumTransactions(ctx context.Context, walletID int) (decimal.Decimal, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM transactions
        WHERE wallet_id = $1
    `
	var sum decimal.Decimal
	if err := r.db.QueryRow(ctx, query, walletID).Scan(&sum); err != nil {
		zap.L().Error("failed to sum transactions", zap.Error(err))
		return decimal.Zero, err
	}
	return sum, nil
}
