package lots

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Meetvaghasiya-5040/Auction-House/internal/auctionerrors"
	"github.com/Meetvaghasiya-5040/Auction-House/internal/domain"
	"github.com/Meetvaghasiya-5040/Auction-House/internal/dto"
	"github.com/Meetvaghasiya-5040/Auction-House/internal/events"
	"github.com/Meetvaghasiya-5040/Auction-House/internal/service/lotservice"
	"github.com/Meetvaghasiya-5040/Auction-House/pkg/auth"
	"github.com/Meetvaghasiya-5040/Auction-House/pkg/utils"
)

//go:generate mockgen -source=lots.go -destination=lots_mock.go -package=lots

type Service interface {
	GetSnapshot(ctx context.Context, lotID int) (*lotservice.Snapshot, error)
	ActivateAuction(ctx context.Context, auctionID int) ([]int, error)
	WithdrawLot(ctx context.Context, lotID int) error
	GetInvoices(ctx context.Context, userID int) ([]domain.Invoice, error)
}

type Subscriber interface {
	SubscribeLot(lotID int) (<-chan events.Event, func())
}

type Watcher interface {
	Watch(ctx context.Context, lotID int)
}

type LotHandler struct {
	lotService Service
	subscriber Subscriber
	watcher    Watcher
}

func New(lotService Service, subscriber Subscriber, watcher Watcher) *LotHandler {
	return &LotHandler{
		lotService: lotService,
		subscriber: subscriber,
		watcher:    watcher,
	}
}

// GetLotStatus godoc
//
//	@Summary		Get lot status
//	@Description	Poll the current state of a lot: bid, minimum next bid, timers and recent bids. An expired lot is settled before the snapshot is taken.
//	@Tags			Lots
//	@Produce		json
//	@Param			lotID	path		int	true	"Lot ID"
//	@Success		200		{object}	dto.LotStatusResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid lot ID"
//	@Failure		404		{object}	utils.Response	"Lot not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/lots/{lotID} [get]
func (h *LotHandler) GetLotStatus(w http.ResponseWriter, r *http.Request) {
	lotID, err := strconv.Atoi(chi.URLParam(r, "lotID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid lot ID")
		return
	}

	snap, err := h.lotService.GetSnapshot(r.Context(), lotID)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrLotNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.LotStatusResponseDTO{
		LotID:         snap.Lot.ID,
		Status:        snap.Lot.Status,
		CurrentBid:    snap.Lot.CurrentBid.InexactFloat64(),
		MinimumBid:    snap.MinimumBid.InexactFloat64(),
		BidCount:      snap.BidCount,
		TimeRemaining: snap.TimeRemaining,
		Countdown:     snap.Countdown,
		Winner:        snap.WinnerLogin,
		Bids:          make([]dto.BidDTO, 0, len(snap.RecentBids)),
	}
	if snap.Lot.Status == domain.LotStatusSold {
		winningBid := snap.Lot.CurrentBid.InexactFloat64()
		response.WinningBid = &winningBid
	}
	for _, b := range snap.RecentBids {
		response.Bids = append(response.Bids, dto.BidDTO{
			User:      b.BidderLogin,
			Amount:    b.Amount.InexactFloat64(),
			IsWinning: b.IsWinning,
			Timestamp: b.CreatedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// StreamEvents godoc
//
//	@Summary		Stream lot events
//	@Description	Server-sent events for a lot: bid_accepted, timer_update and lot_closed.
//	@Tags			Lots
//	@Produce		text/event-stream
//	@Param			lotID	path		int		true	"Lot ID"
//	@Success		200		{string}	string	"Event stream"
//	@Failure		400		{object}	utils.Response	"Invalid lot ID"
//	@Failure		500		{object}	utils.Response	"Streaming unsupported"
//	@Router			/api/lots/{lotID}/events [get]
func (h *LotHandler) StreamEvents(w http.ResponseWriter, r *http.Request) {
	lotID, err := strconv.Atoi(chi.URLParam(r, "lotID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid lot ID")
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.RespondWithError(w, http.StatusInternalServerError, "Streaming unsupported")
		return
	}

	events, cancel := h.subscriber.SubscribeLot(lotID)
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(event.Payload)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "id: %s\nevent: %s\ndata: %s\n\n", event.ID, event.Type, data)
			flusher.Flush()
		}
	}
}

// ActivateAuction godoc
//
//	@Summary		Activate an auction
//	@Description	Open every draft lot of the auction for bidding and mark the auction live.
//	@Tags			Lots
//	@Security		BearerAuth
//	@Produce		json
//	@Param			auctionID	path		int				true	"Auction ID"
//	@Success		200			{object}	utils.Response	"Auction activated"
//	@Failure		400			{object}	utils.Response	"Invalid auction ID"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		404			{object}	utils.Response	"Auction not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/auctions/{auctionID}/activate [post]
func (h *LotHandler) ActivateAuction(w http.ResponseWriter, r *http.Request) {
	auctionID, err := strconv.Atoi(chi.URLParam(r, "auctionID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid auction ID")
		return
	}

	lotIDs, err := h.lotService.ActivateAuction(r.Context(), auctionID)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrLotNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Auction not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	for _, lotID := range lotIDs {
		h.watcher.Watch(context.WithoutCancel(r.Context()), lotID)
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{
		Message: fmt.Sprintf("Auction activated, %d lots open for bidding", len(lotIDs)),
	})
}

// WithdrawLot godoc
//
//	@Summary		Withdraw a lot
//	@Description	Pull a lot from the block before it sells. Rejected once the lot has accepted bids.
//	@Tags			Lots
//	@Security		BearerAuth
//	@Produce		json
//	@Param			lotID	path		int				true	"Lot ID"
//	@Success		200		{object}	utils.Response	"Lot withdrawn"
//	@Failure		400		{object}	utils.Response	"Invalid lot ID"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Lot not found"
//	@Failure		409		{object}	utils.Response	"Lot has bids or is already closed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/lots/{lotID}/withdraw [post]
func (h *LotHandler) WithdrawLot(w http.ResponseWriter, r *http.Request) {
	lotID, err := strconv.Atoi(chi.URLParam(r, "lotID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid lot ID")
		return
	}

	if err := h.lotService.WithdrawLot(r.Context(), lotID); err != nil {
		switch {
		case errors.Is(err, auctionerrors.ErrLotNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, auctionerrors.ErrLotHasBids), errors.Is(err, auctionerrors.ErrLotNotActive):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Lot withdrawn"})
}

// GetInvoices godoc
//
//	@Summary		Get own invoices
//	@Description	List the invoices issued to the authenticated user as winning bidder.
//	@Tags			Lots
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.GetInvoicesResponseDTO
//	@Success		204	{string}	string			"No invoices"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/invoices [get]
func (h *LotHandler) GetInvoices(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	invoices, err := h.lotService.GetInvoices(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(invoices) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	response := make([]dto.GetInvoicesResponseDTO, 0, len(invoices))
	for _, inv := range invoices {
		response = append(response, dto.GetInvoicesResponseDTO{
			InvoiceNumber: inv.InvoiceNumber,
			LotID:         inv.LotID,
			Amount:        inv.Amount.InexactFloat64(),
			Commission:    inv.Commission.InexactFloat64(),
			Status:        inv.Status,
			IssuedAt:      inv.IssuedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
