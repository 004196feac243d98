package bidrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Meetvaghasiya-5040/Auction-House/internal/domain"
	"github.com/Meetvaghasiya-5040/Auction-House/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, bid *domain.Bid) (*domain.Bid, error) {
	query := `
        INSERT INTO bids (lot_id, bidder_id, amount, is_winning, is_auto_bid)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, bid.LotID, bid.BidderID, bid.Amount, bid.IsWinning, bid.IsAutoBid).
		Scan(&bid.ID, &bid.CreatedAt)
	if err != nil {
		zap.L().Error("can't save bid", zap.Error(err))
		return nil, err
	}
	return bid, nil
}

func (r *Repository) GetWinningByLot(ctx context.Context, lotID int) (*domain.Bid, error) {
	query := `
        SELECT id, lot_id, bidder_id, amount, is_winning, is_auto_bid, created_at
        FROM bids
        WHERE lot_id = $1 AND is_winning
    `
	var bid domain.Bid
	err := r.db.QueryRow(ctx, query, lotID).Scan(&bid.ID, &bid.LotID, &bid.BidderID,
		&bid.Amount, &bid.IsWinning, &bid.IsAutoBid, &bid.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find winning bid", zap.Error(err))
		return nil, err
	}
	return &bid, nil
}

func (r *Repository) ClearWinning(ctx context.Context, bidID int) error {
	query := `
        UPDATE bids
        SET is_winning = FALSE
        WHERE id = $1
    `
	if _, err := r.db.Exec(ctx, query, bidID); err != nil {
		zap.L().Error("can't clear winning flag", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) CountByLot(ctx context.Context, lotID int) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM bids
        WHERE lot_id = $1
    `
	var count int
	if err := r.db.QueryRow(ctx, query, lotID).Scan(&count); err != nil {
		zap.L().Error("can't count bids", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) ListRecentByLot(ctx context.Context, lotID int, limit int) ([]domain.LotBid, error) {
	query := `
        SELECT b.id, b.lot_id, b.bidder_id, b.amount, b.is_winning, b.is_auto_bid, b.created_at, u.login
        FROM bids b
        JOIN users u ON u.id = b.bidder_id
        WHERE b.lot_id = $1
        ORDER BY b.created_at DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, lotID, limit)
	if err != nil {
		zap.L().Error("can't list bids", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var bids []domain.LotBid
	for rows.Next() {
		var b domain.LotBid
		err := rows.Scan(&b.ID, &b.LotID, &b.BidderID, &b.Amount, &b.IsWinning, &b.IsAutoBid,
			&b.CreatedAt, &b.BidderLogin)
		if err != nil {
			zap.L().Error("can't scan bid row", zap.Error(err))
			return nil, err
		}
		bids = append(bids, b)
	}
	return bids, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID int) ([]domain.UserBid, error) {
	query := `
        SELECT b.id, b.lot_id, b.bidder_id, b.amount, b.is_winning, b.is_auto_bid, b.created_at, l.title
        FROM bids b
        JOIN lots l ON l.id = b.lot_id
        WHERE b.bidder_id = $1
        ORDER BY b.created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't list user bids", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var bids []domain.UserBid
	for rows.Next() {
		var b domain.UserBid
		err := rows.Scan(&b.ID, &b.LotID, &b.BidderID, &b.Amount, &b.IsWinning, &b.IsAutoBid,
			&b.CreatedAt, &b.LotTitle)
		if err != nil {
			zap.L().Error("can't scan user bid row", zap.Error(err))
			return nil, err
		}
		bids = append(bids, b)
	}
	return bids, nil
}
