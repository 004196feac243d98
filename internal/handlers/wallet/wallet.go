package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/Meetvaghasiya-5040/Auction-House/internal/domain"
	"github.com/Meetvaghasiya-5040/Auction-House/internal/dto"
	"github.com/Meetvaghasiya-5040/Auction-House/internal/service/walletservice"
	"github.com/Meetvaghasiya-5040/Auction-House/pkg/auth"
	"github.com/Meetvaghasiya-5040/Auction-House/pkg/utils"
	"github.com/Meetvaghasiya-5040/Auction-House/pkg/validate"
)

//go:generate mockgen -source=wallet.go -destination=wallet_mock.go -package=wallet

type Service interface {
	GetBalance(ctx context.Context, userID int) (*domain.Wallet, error)
	Deposit(ctx context.Context, userID int, amount decimal.Decimal, description string) (*domain.Wallet, error)
	GetTransactions(ctx context.Context, userID int) ([]domain.Transaction, error)
}

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// GetWallet godoc
//
//	@Summary		Get wallet balance
//	@Description	Retrieve the current wallet balance for the authenticated user.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.WalletResponseDTO	"Current balance"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/wallet [get]
func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	wallet, err := h.walletService.GetBalance(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WalletResponseDTO{
		Balance: wallet.Balance.InexactFloat64(),
	})
}

// Deposit godoc
//
//	@Summary		Deposit funds
//	@Description	Credit the wallet of the authenticated user. The payment reference must pass a Luhn check.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DepositRequestDTO	true	"Deposit request payload"
//	@Success		200		{object}	dto.WalletResponseDTO	"Balance after deposit"
//	@Failure		400		{object}	utils.Response			"Invalid request body or amount"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		422		{object}	utils.Response			"Invalid payment reference"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/user/wallet/deposit [post]
func (h *WalletHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.DepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !validate.IsLuna(req.PaymentRef) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid payment reference")
		return
	}

	amount := decimal.NewFromFloat(req.Amount)
	description := fmt.Sprintf("Deposit (ref %s)", req.PaymentRef)
	wallet, err := h.walletService.Deposit(r.Context(), userID, amount, description)
	if err != nil {
		if errors.Is(err, walletservice.ErrInvalidAmount) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WalletResponseDTO{
		Balance: wallet.Balance.InexactFloat64(),
	})
}

// GetTransactions godoc
//
//	@Summary		Get wallet transactions
//	@Description	List the ledger entries of the authenticated user's wallet, newest first.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.GetTransactionsResponseDTO
//	@Success		204	{string}	string			"No transactions"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/wallet/transactions [get]
func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	transactions, err := h.walletService.GetTransactions(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(transactions) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	response := make([]dto.GetTransactionsResponseDTO, 0, len(transactions))
	for _, txn := range transactions {
		response = append(response, dto.GetTransactionsResponseDTO{
			Kind:        txn.Kind,
			Amount:      txn.Amount.InexactFloat64(),
			Description: txn.Description,
			CreatedAt:   txn.CreatedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
