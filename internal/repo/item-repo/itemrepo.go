package itemrepo

import (
	"context"

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

func (r *Repository) ListByLot(ctx context.Context, lotID int) ([]domain.Item, error) {
	query := `
        SELECT id, owner_id, title, estimated_value, status, lot_id, created_at
        FROM items
        WHERE lot_id = $1
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query, lotID)
	if err != nil {
		zap.L().Error("can't list lot items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var it domain.Item
		err := rows.Scan(&it.ID, &it.OwnerID, &it.Title, &it.EstimatedValue, &it.Status,
			&it.LotID, &it.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan item row", zap.Error(err))
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

// OwnerHasItemInLot reports whether the user owns any item inside the lot,
// which forbids them from bidding on it.
func (r *Repository) OwnerHasItemInLot(ctx context.Context, lotID, userID int) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM items WHERE lot_id = $1 AND owner_id = $2
        )
    `
	var exists bool
	if err := r.db.QueryRow(ctx, query, lotID, userID).Scan(&exists); err != nil {
		zap.L().Error("can't check item ownership", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) UpdateStatusByLot(ctx context.Context, lotID int, status string) error {
	query := `
        UPDATE items
        SET status = $1
        WHERE lot_id = $2
    `
	if _, err := r.db.Exec(ctx, query, status, lotID); err != nil {
		zap.L().Error("can't update item statuses", zap.Error(err))
		return err
	}
	return nil
}
