package settlementservice

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Meetvaghasiya-5040/Auction-House/internal/auctionerrors"
	"github.com/Meetvaghasiya-5040/Auction-House/internal/documents"
	"github.com/Meetvaghasiya-5040/Auction-House/internal/domain"
	"github.com/Meetvaghasiya-5040/Auction-House/internal/events"
	"github.com/Meetvaghasiya-5040/Auction-House/internal/pg"
)

//go:generate mockgen -source=settlementservice.go -destination=settlementservice_mock.go -package=settlementservice

type LotRepo interface {
	GetByIDForUpdate(ctx context.Context, lotID int) (*domain.Lot, error)
	UpdateStatus(ctx context.Context, lotID int, status string, winningBidderID *int) error
}

type BidRepo interface {
	GetWinningByLot(ctx context.Context, lotID int) (*domain.Bid, error)
}

type ItemRepo interface {
	ListByLot(ctx context.Context, lotID int) ([]domain.Item, error)
	UpdateStatusByLot(ctx context.Context, lotID int, status string) error
}

type InvoiceRepo interface {
	Create(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error)
	GetByLot(ctx context.Context, lotID int) (*domain.Invoice, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type Wallets interface {
	EnsureWallet(ctx context.Context, userID int) (*domain.Wallet, error)
	LockWallet(ctx context.Context, userID int) (*domain.Wallet, error)
	LockHouseWallet(ctx context.Context) (*domain.Wallet, error)
	Credit(ctx context.Context, wallet *domain.Wallet, amount decimal.Decimal, kind, description string, bidID *int) (*domain.Wallet, error)
}

type Publisher interface {
	PublishLot(lotID int, event events.Event)
}

type Dispatcher interface {
	Dispatch(ctx context.Context, doc documents.SettlementDocument)
}

type Service struct {
	txManager   pg.TXManager
	lotRepo     LotRepo
	bidRepo     BidRepo
	itemRepo    ItemRepo
	invoiceRepo InvoiceRepo
	userRepo    UserRepo
	wallets     Wallets
	publisher   Publisher
	dispatcher  Dispatcher
}

func New(txManager pg.TXManager, lotRepo LotRepo, bidRepo BidRepo, itemRepo ItemRepo, invoiceRepo InvoiceRepo, userRepo UserRepo, wallets Wallets, publisher Publisher, dispatcher Dispatcher) *Service {
	return &Service{
		txManager:   txManager,
		lotRepo:     lotRepo,
		bidRepo:     bidRepo,
		itemRepo:    itemRepo,
		invoiceRepo: invoiceRepo,
		userRepo:    userRepo,
		wallets:     wallets,
		publisher:   publisher,
		dispatcher:  dispatcher,
	}
}

// Outcome is the result of settling a lot, or of finding it already settled.
type Outcome struct {
	Lot            *domain.Lot
	Invoice        *domain.Invoice
	WinnerLogin    *string
	AlreadySettled bool
}

// Settle finalizes a lot exactly once. The lot's status is re-checked under
// its row lock inside the same transaction that moves the funds, so a
// concurrent watcher tick and API poll cannot both pay out: the loser of the
// race observes a terminal status and gets the existing outcome back.
func (s *Service) Settle(ctx context.Context, lotID int) (*Outcome, error) {
	var (
		outcome *Outcome
		doc     *documents.SettlementDocument
	)

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		lot, err := s.lotRepo.GetByIDForUpdate(ctx, lotID)
		if err != nil {
			return err
		}
		if lot == nil {
			return auctionerrors.ErrLotNotFound
		}
		if lot.Status != domain.LotStatusActive {
			invoice, err := s.invoiceRepo.GetByLot(ctx, lotID)
			if err != nil {
				return err
			}
			outcome = &Outcome{Lot: lot, Invoice: invoice, AlreadySettled: true}
			outcome.WinnerLogin, err = s.winnerLogin(ctx, lot.WinningBidderID)
			return err
		}

		winning, err := s.bidRepo.GetWinningByLot(ctx, lotID)
		if err != nil {
			return err
		}

		if winning == nil {
			if err := s.lotRepo.UpdateStatus(ctx, lotID, domain.LotStatusUnsold, nil); err != nil {
				return err
			}
			if err := s.itemRepo.UpdateStatusByLot(ctx, lotID, domain.ItemStatusAvailable); err != nil {
				return err
			}
			lot.Status = domain.LotStatusUnsold
			outcome = &Outcome{Lot: lot}
			return nil
		}

		outcome, doc, err = s.settleSold(ctx, lot, winning)
		return err
	})
	if err != nil {
		return nil, err
	}

	if !outcome.AlreadySettled {
		s.publishClosed(outcome)
		if doc != nil {
			s.dispatcher.Dispatch(ctx, *doc)
		}
	}
	return outcome, nil
}

func (s *Service) settleSold(ctx context.Context, lot *domain.Lot, winning *domain.Bid) (*Outcome, *documents.SettlementDocument, error) {
	items, err := s.itemRepo.ListByLot(ctx, lot.ID)
	if err != nil {
		return nil, nil, err
	}
	if len(items) == 0 {
		return nil, nil, fmt.Errorf("%w: lot %d has no items", auctionerrors.ErrDataIntegrity, lot.ID)
	}

	totalEstimated := decimal.Zero
	for _, item := range items {
		totalEstimated = totalEstimated.Add(item.EstimatedValue)
	}
	if totalEstimated.IsZero() {
		// Proportional payout is undefined; abort the whole unit and leave
		// the lot active so the condition is surfaced and retried.
		return nil, nil, fmt.Errorf("%w: lot %d items have zero total estimated value",
			auctionerrors.ErrDataIntegrity, lot.ID)
	}

	commission := winning.Amount.Mul(domain.CommissionRate).Round(2)
	distributable := winning.Amount.Sub(commission)

	houseWallet, err := s.wallets.LockHouseWallet(ctx)
	if err != nil {
		return nil, nil, err
	}
	_, err = s.wallets.Credit(ctx, houseWallet, commission, domain.TxnCommission,
		fmt.Sprintf("Commission: lot %q sold for %s", lot.Title, winning.Amount.StringFixed(2)),
		&winning.ID)
	if err != nil {
		return nil, nil, err
	}

	// Each owner's share is proportional to their item's estimated value; the
	// final item absorbs the rounding remainder so the split sums exactly.
	lines := make([]documents.LineItem, 0, len(items))
	paid := decimal.Zero
	for i, item := range items {
		share := distributable.Mul(item.EstimatedValue).Div(totalEstimated).Round(2)
		if i == len(items)-1 {
			share = distributable.Sub(paid)
		}
		paid = paid.Add(share)

		if share.IsPositive() {
			if _, err := s.wallets.EnsureWallet(ctx, item.OwnerID); err != nil {
				return nil, nil, err
			}
			ownerWallet, err := s.wallets.LockWallet(ctx, item.OwnerID)
			if err != nil {
				return nil, nil, err
			}
			_, err = s.wallets.Credit(ctx, ownerWallet, share, domain.TxnPayout,
				fmt.Sprintf("Payout: %q sold in lot %q", item.Title, lot.Title), &winning.ID)
			if err != nil {
				return nil, nil, err
			}
		}
		lines = append(lines, documents.LineItem{
			Title:          item.Title,
			EstimatedValue: item.EstimatedValue,
			OwnerPayout:    share,
		})
	}

	if err := s.itemRepo.UpdateStatusByLot(ctx, lot.ID, domain.ItemStatusSold); err != nil {
		return nil, nil, err
	}
	if err := s.lotRepo.UpdateStatus(ctx, lot.ID, domain.LotStatusSold, &winning.BidderID); err != nil {
		return nil, nil, err
	}

	invoice, err := s.invoiceRepo.Create(ctx, &domain.Invoice{
		InvoiceNumber: newInvoiceNumber(),
		LotID:         lot.ID,
		UserID:        winning.BidderID,
		Amount:        winning.Amount,
		Commission:    commission,
		Status:        domain.InvoiceStatusIssued,
	})
	if err != nil {
		return nil, nil, err
	}

	lot.Status = domain.LotStatusSold
	lot.WinningBidderID = &winning.BidderID
	lot.CurrentBid = winning.Amount

	outcome := &Outcome{Lot: lot, Invoice: invoice}
	outcome.WinnerLogin, err = s.winnerLogin(ctx, &winning.BidderID)
	if err != nil {
		return nil, nil, err
	}

	winnerLogin := ""
	if outcome.WinnerLogin != nil {
		winnerLogin = *outcome.WinnerLogin
	}
	doc := &documents.SettlementDocument{
		InvoiceNumber: invoice.InvoiceNumber,
		LotID:         lot.ID,
		LotTitle:      lot.Title,
		WinnerLogin:   winnerLogin,
		Amount:        winning.Amount,
		Commission:    commission,
		Items:         lines,
		IssuedAt:      invoice.IssuedAt,
	}

	zap.L().Info("lot settled",
		zap.Int("lotID", lot.ID),
		zap.String("winner", winnerLogin),
		zap.String("amount", winning.Amount.StringFixed(2)),
		zap.String("commission", commission.StringFixed(2)))
	return outcome, doc, nil
}

func (s *Service) winnerLogin(ctx context.Context, winnerID *int) (*string, error) {
	if winnerID == nil {
		return nil, nil
	}
	user, err := s.userRepo.FindByID(ctx, *winnerID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return &user.Login, nil
}

func (s *Service) publishClosed(outcome *Outcome) {
	payload := events.LotClosedPayload{
		LotID:      outcome.Lot.ID,
		Status:     outcome.Lot.Status,
		Winner:     outcome.WinnerLogin,
		WinningBid: outcome.Lot.CurrentBid.InexactFloat64(),
	}
	s.publisher.PublishLot(outcome.Lot.ID, events.New(events.TypeLotClosed, payload))
}

func newInvoiceNumber() string {
	return "INV-" + strings.ToUpper(uuid.NewString()[:8])
}
