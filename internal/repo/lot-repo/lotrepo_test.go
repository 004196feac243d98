package lotrepo

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
	"go.uber.org/mock/gomock"

	"github.com/Meetvaghasiya-5040/Auction-House/internal/domain"
	"github.com/Meetvaghasiya-5040/Auction-House/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()

	return New(mockDB, txManager), mockDB
}

var fixedTime = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

func lotRows(id int, status string) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "auction_id", "lot_number", "title", "starting_bid",
		"current_bid", "min_increment", "status", "winning_bidder_id", "is_timed", "end_time",
		"last_bid_time", "created_at", "updated_at"}).
		AddRow(id, 1, id, "Vintage clocks", decimal.NewFromInt(1000), decimal.NewFromInt(1100),
			decimal.NewFromInt(100), status, nil, false, nil, nil, fixedTime, fixedTime)
}

func TestRepository_GetByIDForUpdate(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name: "Lot locked",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
					WithArgs(3).
					WillReturnRows(lotRows(3, domain.LotStatusActive))
			},
			found: true,
		},
		{
			name: "Lot not found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
					WithArgs(3).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
					WithArgs(3).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByIDForUpdate(context.Background(), 3)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.found {
				assert.Equal(t, 3, result.ID)
				assert.Equal(t, domain.LotStatusActive, result.Status)
				assert.True(t, result.CurrentBid.Equal(decimal.NewFromInt(1100)))
			} else {
				assert.Nil(t, result)
			}
		})
	}
}

func TestRepository_GetAuction(t *testing.T) {
	repo, mock := NewMock(t)

	endDate := fixedTime.Add(time.Hour)
	rows := pgxmock.NewRows([]string{"id", "title", "status", "start_date", "end_date",
		"min_bid_increment", "allow_proxy_bidding", "created_by", "created_at"}).
		AddRow(1, "Autumn sale", "live", &fixedTime, &endDate, decimal.NewFromInt(100), false, 1, fixedTime)
	mock.ExpectQuery(regexp.QuoteMeta("FROM auctions")).
		WithArgs(1).
		WillReturnRows(rows)

	result, err := repo.GetAuction(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, "Autumn sale", result.Title)
	assert.Equal(t, endDate, *result.EndDate)
}

func TestRepository_UpdateOnBid(t *testing.T) {
	repo, mock := NewMock(t)

	bidderID := 5
	lastBid := fixedTime
	lot := &domain.Lot{
		ID:              3,
		CurrentBid:      decimal.NewFromInt(1100),
		WinningBidderID: &bidderID,
		LastBidTime:     &lastBid,
	}

	mock.ExpectExec(regexp.QuoteMeta("SET current_bid = $1, winning_bidder_id = $2, last_bid_time = $3")).
		WithArgs(lot.CurrentBid, lot.WinningBidderID, lot.LastBidTime, lot.EndTime, lot.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateOnBid(context.Background(), lot)
	assert.NoError(t, err)
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := NewMock(t)

	winnerID := 5
	mock.ExpectExec(regexp.QuoteMeta("SET status = $1, winning_bidder_id = $2, updated_at = now()")).
		WithArgs(domain.LotStatusSold, &winnerID, 3).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateStatus(context.Background(), 3, domain.LotStatusSold, &winnerID)
	assert.NoError(t, err)
}

func TestRepository_ActivateByAuction(t *testing.T) {
	repo, mock := NewMock(t)

	startedAt := fixedTime
	mock.ExpectQuery(regexp.QuoteMeta("WHERE auction_id = $1 AND status = 'draft'")).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(3).AddRow(4))
	mock.ExpectExec(regexp.QuoteMeta("SET status = 'live', start_date = COALESCE(start_date, $2)")).
		WithArgs(1, startedAt).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	lotIDs, err := repo.ActivateByAuction(context.Background(), 1, startedAt)
	assert.NoError(t, err)
	assert.Equal(t, []int{3, 4}, lotIDs)
}

func TestRepository_FindActiveIDs(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE status = 'active'")).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(3).AddRow(4))

	ids, err := repo.FindActiveIDs(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []int{3, 4}, ids)
}
