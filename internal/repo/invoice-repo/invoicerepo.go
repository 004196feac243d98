package invoicerepo

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

const invoiceColumns = "id, invoice_number, lot_id, user_id, amount, commission, status, issued_at"

func scanInvoice(row pgx.Row) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := row.Scan(&inv.ID, &inv.InvoiceNumber, &inv.LotID, &inv.UserID, &inv.Amount,
		&inv.Commission, &inv.Status, &inv.IssuedAt)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *Repository) Create(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error) {
	query := `
        INSERT INTO invoices (invoice_number, lot_id, user_id, amount, commission, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, issued_at
    `
	err := r.db.QueryRow(ctx, query, inv.InvoiceNumber, inv.LotID, inv.UserID, inv.Amount,
		inv.Commission, inv.Status).Scan(&inv.ID, &inv.IssuedAt)
	if err != nil {
		zap.L().Error("can't save invoice", zap.Error(err))
		return nil, err
	}
	return inv, nil
}

func (r *Repository) GetByLot(ctx context.Context, lotID int) (*domain.Invoice, error) {
	query := `
        SELECT ` + invoiceColumns + `
        FROM invoices
        WHERE lot_id = $1
    `
	inv, err := scanInvoice(r.db.QueryRow(ctx, query, lotID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find invoice", zap.Error(err))
		return nil, err
	}
	return inv, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID int) ([]domain.Invoice, error) {
	query := `
        SELECT ` + invoiceColumns + `
        FROM invoices
        WHERE user_id = $1
        ORDER BY issued_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't list invoices", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var invoices []domain.Invoice
	for rows.Next() {
		var inv domain.Invoice
		err := rows.Scan(&inv.ID, &inv.InvoiceNumber, &inv.LotID, &inv.UserID, &inv.Amount,
			&inv.Commission, &inv.Status, &inv.IssuedAt)
		if err != nil {
			zap.L().Error("can't scan invoice row", zap.Error(err))
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, nil
}
