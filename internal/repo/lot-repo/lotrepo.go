package lotrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
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

const lotColumns = `id, auction_id, lot_number, title, starting_bid, current_bid,
        min_increment, status, winning_bidder_id, is_timed, end_time, last_bid_time,
        created_at, updated_at`

func scanLot(row pgx.Row) (*domain.Lot, error) {
	var l domain.Lot
	err := row.Scan(&l.ID, &l.AuctionID, &l.LotNumber, &l.Title, &l.StartingBid, &l.CurrentBid,
		&l.MinIncrement, &l.Status, &l.WinningBidderID, &l.IsTimed, &l.EndTime, &l.LastBidTime,
		&l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *Repository) GetByID(ctx context.Context, lotID int) (*domain.Lot, error) {
	query := `
        SELECT ` + lotColumns + `
        FROM lots
        WHERE id = $1
    `
	lot, err := scanLot(r.db.QueryRow(ctx, query, lotID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find lot", zap.Error(err))
		return nil, err
	}
	return lot, nil
}

// GetByIDForUpdate locks the lot row. The lot lock is always taken before any
// wallet lock so the bid and settlement paths cannot deadlock each other.
func (r *Repository) GetByIDForUpdate(ctx context.Context, lotID int) (*domain.Lot, error) {
	query := `
        SELECT ` + lotColumns + `
        FROM lots
        WHERE id = $1
        FOR UPDATE
    `
	lot, err := scanLot(r.db.QueryRow(ctx, query, lotID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't lock lot", zap.Error(err))
		return nil, err
	}
	return lot, nil
}

func (r *Repository) GetAuction(ctx context.Context, auctionID int) (*domain.Auction, error) {
	query := `
        SELECT id, title, status, start_date, end_date, min_bid_increment,
               allow_proxy_bidding, created_by, created_at
        FROM auctions
        WHERE id = $1
    `
	var a domain.Auction
	err := r.db.QueryRow(ctx, query, auctionID).Scan(&a.ID, &a.Title, &a.Status, &a.StartDate,
		&a.EndDate, &a.MinBidIncrement, &a.AllowProxyBidding, &a.CreatedBy, &a.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find auction", zap.Error(err))
		return nil, err
	}
	return &a, nil
}

// UpdateOnBid persists the lot-side effect of an accepted bid: current bid,
// leader, last-bid timestamp and, for timed lots, the possibly extended
// deadline.
func (r *Repository) UpdateOnBid(ctx context.Context, lot *domain.Lot) error {
	query := `
        UPDATE lots
        SET current_bid = $1, winning_bidder_id = $2, last_bid_time = $3,
            end_time = $4, updated_at = now()
        WHERE id = $5
    `
	_, err := r.db.Exec(ctx, query, lot.CurrentBid, lot.WinningBidderID, lot.LastBidTime,
		lot.EndTime, lot.ID)
	if err != nil {
		zap.L().Error("failed to update lot on bid", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateStatus(ctx context.Context, lotID int, status string, winningBidderID *int) error {
	query := `
        UPDATE lots
        SET status = $1, winning_bidder_id = $2, updated_at = now()
        WHERE id = $3
    `
	_, err := r.db.Exec(ctx, query, status, winningBidderID, lotID)
	if err != nil {
		zap.L().Error("failed to update lot status", zap.Error(err))
		return err
	}
	return nil
}

// ActivateByAuction transitions every draft lot of an auction to active and
// the auction itself to live. Returns the activated lot IDs.
func (r *Repository) ActivateByAuction(ctx context.Context, auctionID int, startedAt time.Time) ([]int, error) {
	var lotIDs []int
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		query := `
            UPDATE lots
            SET status = 'active', updated_at = now()
            WHERE auction_id = $1 AND status = 'draft'
            RETURNING id
        `
		rows, err := r.db.Query(ctx, query, auctionID)
		if err != nil {
			zap.L().Error("failed to activate lots", zap.Error(err))
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var id int
			if err := rows.Scan(&id); err != nil {
				return err
			}
			lotIDs = append(lotIDs, id)
		}

		auctionQuery := `
            UPDATE auctions
            SET status = 'live', start_date = COALESCE(start_date, $2)
            WHERE id = $1
        `
		if _, err := r.db.Exec(ctx, auctionQuery, auctionID, startedAt); err != nil {
			zap.L().Error("failed to mark auction live", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lotIDs, nil
}

func (r *Repository) FindActiveIDs(ctx context.Context) ([]int, error) {
	query := `
        SELECT id
        FROM lots
        WHERE status = 'active'
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list active lots", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("can't scan lot id", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
