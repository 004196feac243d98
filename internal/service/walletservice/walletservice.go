package walletservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Meetvaghasiya-5040/Auction-House/internal/auctionerrors"
	"github.com/Meetvaghasiya-5040/Auction-House/internal/domain"
	"github.com/Meetvaghasiya-5040/Auction-House/internal/pg"
)

//go:generate mockgen -source=walletservice.go -destination=walletservice_mock.go -package=walletservice

type WalletRepo interface {
	GetByUserID(ctx context.Context, userID int) (*domain.Wallet, error)
	GetByUserIDForUpdate(ctx context.Context, userID int) (*domain.Wallet, error)
	Create(ctx context.Context, userID int) (*domain.Wallet, error)
	GetHouseWallet(ctx context.Context) (*domain.Wallet, error)
	GetHouseWalletForUpdate(ctx context.Context) (*domain.Wallet, error)
	UpdateBalance(ctx context.Context, walletID int, balance decimal.Decimal) (*domain.Wallet, error)
	CreateTransaction(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error)
	ListTransactionsByWallet(ctx context.Context, walletID int) ([]domain.Transaction, error)
	SumTransactions(ctx context.Context, walletID int) (decimal.Decimal, error)
}

type Service struct {
	walletRepo WalletRepo
	txManager  pg.TXManager
}

func New(walletRepo WalletRepo, txManager pg.TXManager) *Service {
	return &Service{
		walletRepo: walletRepo,
		txManager:  txManager,
	}
}

var ErrInvalidAmount = errors.New("amount must be positive")

// EnsureWallet returns the user's wallet, creating it on first need. The
// create is idempotent; concurrent callers converge on the same row.
func (s *Service) EnsureWallet(ctx context.Context, userID int) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	if wallet != nil {
		return wallet, nil
	}
	wallet, err = s.walletRepo.Create(ctx, userID)
	if err != nil {
		zap.L().Error("failed to create wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

// Deposit adds funds to the user's wallet and records a deposit transaction.
func (s *Service) Deposit(ctx context.Context, userID int, amount decimal.Decimal, description string) (*domain.Wallet, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if _, err := s.EnsureWallet(ctx, userID); err != nil {
		return nil, err
	}

	var updated *domain.Wallet
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		wallet, err := s.walletRepo.GetByUserIDForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if wallet == nil {
			return auctionerrors.ErrWalletNotFound
		}
		updated, err = s.Credit(ctx, wallet, amount, domain.TxnDeposit, description, nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Credit adds amount to an already-locked wallet and writes the matching
// ledger entry. Must run inside the caller's transaction.
func (s *Service) Credit(ctx context.Context, wallet *domain.Wallet, amount decimal.Decimal, kind, description string, bidID *int) (*domain.Wallet, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	updated, err := s.walletRepo.UpdateBalance(ctx, wallet.ID, wallet.Balance.Add(amount))
	if err != nil {
		return nil, err
	}
	_, err = s.walletRepo.CreateTransaction(ctx, &domain.Transaction{
		WalletID:    wallet.ID,
		Kind:        kind,
		Amount:      amount,
		Description: description,
		BidID:       bidID,
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Debit removes amount from an already-locked wallet, rejecting the operation
// when the balance cannot cover it. The ledger entry carries a negative
// amount so the transaction sum always matches the balance.
func (s *Service) Debit(ctx context.Context, wallet *domain.Wallet, amount decimal.Decimal, kind, description string, bidID *int) (*domain.Wallet, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if wallet.Balance.LessThan(amount) {
		return nil, fmt.Errorf("%w: balance %s, required %s",
			auctionerrors.ErrInsufficientFunds, wallet.Balance, amount)
	}
	updated, err := s.walletRepo.UpdateBalance(ctx, wallet.ID, wallet.Balance.Sub(amount))
	if err != nil {
		return nil, err
	}
	_, err = s.walletRepo.CreateTransaction(ctx, &domain.Transaction{
		WalletID:    wallet.ID,
		Kind:        kind,
		Amount:      amount.Neg(),
		Description: description,
		BidID:       bidID,
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) GetBalance(ctx context.Context, userID int) (*domain.Wallet, error) {
	return s.EnsureWallet(ctx, userID)
}

func (s *Service) GetTransactions(ctx context.Context, userID int) ([]domain.Transaction, error) {
	wallet, err := s.EnsureWallet(ctx, userID)
	if err != nil {
		return nil, err
	}
	txns, err := s.walletRepo.ListTransactionsByWallet(ctx, wallet.ID)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	return txns, nil
}

// LockWallet locks the user's wallet row inside the caller's transaction.
func (s *Service) LockWallet(ctx context.Context, userID int) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetByUserIDForUpdate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, auctionerrors.ErrWalletNotFound
	}
	return wallet, nil
}

// LockHouseWallet locks the commission wallet inside the caller's
// transaction, creating it on first need.
func (s *Service) LockHouseWallet(ctx context.Context) (*domain.Wallet, error) {
	return s.walletRepo.GetHouseWalletForUpdate(ctx)
}

// AuditWallet re-derives the wallet balance from its ledger and reports
// whether they agree.
func (s *Service) AuditWallet(ctx context.Context, wallet *domain.Wallet) (bool, error) {
	sum, err := s.walletRepo.SumTransactions(ctx, wallet.ID)
	if err != nil {
		return false, err
	}
	if !sum.Equal(wallet.Balance) {
		zap.L().Error("wallet balance diverged from its ledger",
			zap.Int("walletID", wallet.ID),
			zap.String("balance", wallet.Balance.String()),
			zap.String("ledgerSum", sum.String()))
		return false, nil
	}
	return true, nil
}
