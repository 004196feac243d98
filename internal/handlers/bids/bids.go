package bids

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/Meetvaghasiya-5040/Auction-House/internal/auctionerrors"
	"github.com/Meetvaghasiya-5040/Auction-House/internal/domain"
	"github.com/Meetvaghasiya-5040/Auction-House/internal/dto"
	"github.com/Meetvaghasiya-5040/Auction-House/internal/service/bidservice"
	"github.com/Meetvaghasiya-5040/Auction-House/pkg/auth"
	"github.com/Meetvaghasiya-5040/Auction-House/pkg/utils"
)

//go:generate mockgen -source=bids.go -destination=bids_mock.go -package=bids

type Service interface {
	PlaceBid(ctx context.Context, lotID, bidderID int, amount decimal.Decimal) (*bidservice.PlaceBidResult, error)
}

type BidLister interface {
	GetMyBids(ctx context.Context, userID int) ([]domain.UserBid, error)
}

type Watcher interface {
	Watch(ctx context.Context, lotID int)
}

type BidHandler struct {
	bidService Service
	bidLister  BidLister
	watcher    Watcher
}

func New(bidService Service, bidLister BidLister, watcher Watcher) *BidHandler {
	return &BidHandler{
		bidService: bidService,
		bidLister:  bidLister,
		watcher:    watcher,
	}
}

// PlaceBid godoc
//
//	@Summary		Place a bid on a lot
//	@Description	Accept a bid on an active lot. The bid amount is debited from the caller's wallet and the displaced leader, if any, is refunded atomically.
//	@Tags			Bids
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			lotID	path		int						true	"Lot ID"
//	@Param			request	body		dto.PlaceBidRequestDTO	true	"Bid payload"
//	@Success		200		{object}	dto.PlaceBidResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body or lot ID"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient wallet balance"
//	@Failure		403		{object}	utils.Response	"Bidding on own lot"
//	@Failure		404		{object}	utils.Response	"Lot not found"
//	@Failure		409		{object}	utils.Response	"Lot not active, already leading, or lock contention"
//	@Failure		422		{object}	utils.Response	"Bid amount too low"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/lots/{lotID}/bids [post]
func (h *BidHandler) PlaceBid(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	lotID, err := strconv.Atoi(chi.URLParam(r, "lotID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid lot ID")
		return
	}
	var req dto.PlaceBidRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	amount := decimal.NewFromFloat(req.Amount)
	if !amount.IsPositive() {
		utils.RespondWithError(w, http.StatusBadRequest, "Bid amount must be positive")
		return
	}

	result, err := h.bidService.PlaceBid(r.Context(), lotID, userID, amount)
	if err != nil {
		respondBidError(w, err)
		return
	}
	h.watcher.Watch(context.WithoutCancel(r.Context()), lotID)

	utils.RespondWithJSON(w, http.StatusOK, dto.PlaceBidResponseDTO{
		BidID:      result.Bid.ID,
		Amount:     result.Bid.Amount.InexactFloat64(),
		CurrentBid: result.Lot.CurrentBid.InexactFloat64(),
		MinimumBid: result.MinimumNextBid.InexactFloat64(),
		NewBalance: result.NewBalance.InexactFloat64(),
	})
}

func respondBidError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, auctionerrors.ErrLotNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, auctionerrors.ErrLotNotActive),
		errors.Is(err, auctionerrors.ErrLotEnded),
		errors.Is(err, auctionerrors.ErrAlreadyLeading),
		errors.Is(err, auctionerrors.ErrConcurrentModification):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, auctionerrors.ErrSelfBidForbidden):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, auctionerrors.ErrInsufficientFunds):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// GetMyBids godoc
//
//	@Summary		Get own bids
//	@Description	List the bids placed by the authenticated user, newest first.
//	@Tags			Bids
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.GetMyBidsResponseDTO
//	@Success		204	{string}	string			"No bids"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/bids [get]
func (h *BidHandler) GetMyBids(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	userBids, err := h.bidLister.GetMyBids(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(userBids) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	response := make([]dto.GetMyBidsResponseDTO, 0, len(userBids))
	for _, b := range userBids {
		response = append(response, dto.GetMyBidsResponseDTO{
			LotID:     b.LotID,
			LotTitle:  b.LotTitle,
			Amount:    b.Amount.InexactFloat64(),
			IsWinning: b.IsWinning,
			Timestamp: b.CreatedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
