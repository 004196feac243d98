package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Meetvaghasiya-5040/Auction-House/docs"
	"github.com/Meetvaghasiya-5040/Auction-House/internal/events"
	authhandlers "github.com/Meetvaghasiya-5040/Auction-House/internal/handlers/auth"
	bidshandlers "github.com/Meetvaghasiya-5040/Auction-House/internal/handlers/bids"
	lotshandlers "github.com/Meetvaghasiya-5040/Auction-House/internal/handlers/lots"
	wallethandlers "github.com/Meetvaghasiya-5040/Auction-House/internal/handlers/wallet"
	"github.com/Meetvaghasiya-5040/Auction-House/internal/service"
	"github.com/Meetvaghasiya-5040/Auction-House/internal/watcher"
	"github.com/Meetvaghasiya-5040/Auction-House/pkg/auth"
)

//go:generate mockgen -source=handlers.go -destination=handlers_mock.go -package=handlers

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetWallet(w http.ResponseWriter, r *http.Request)
	Deposit(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
}

type BidHandler interface {
	PlaceBid(w http.ResponseWriter, r *http.Request)
	GetMyBids(w http.ResponseWriter, r *http.Request)
}

type LotHandler interface {
	GetLotStatus(w http.ResponseWriter, r *http.Request)
	StreamEvents(w http.ResponseWriter, r *http.Request)
	ActivateAuction(w http.ResponseWriter, r *http.Request)
	WithdrawLot(w http.ResponseWriter, r *http.Request)
	GetInvoices(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler   AuthHandler
	WalletHandler WalletHandler
	BidHandler    BidHandler
	LotHandler    LotHandler
}

func New(s *service.Services, hub *events.Hub, scheduler *watcher.Scheduler) *Handlers {
	return &Handlers{
		AuthHandler:   authhandlers.New(s.AuthService),
		WalletHandler: wallethandlers.New(s.WalletService),
		BidHandler:    bidshandlers.New(s.BidService, s.LotService, scheduler),
		LotHandler:    lotshandlers.New(s.LotService, hub, scheduler),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/wallet", func(r chi.Router) {
				r.Get("/", h.WalletHandler.GetWallet)
				r.Post("/deposit", h.WalletHandler.Deposit)
				r.Get("/transactions", h.WalletHandler.GetTransactions)
			})
			r.Get("/bids", h.BidHandler.GetMyBids)
			r.Get("/invoices", h.LotHandler.GetInvoices)
		})
	})
	r.Route("/api/lots/{lotID}", func(r chi.Router) {
		r.Get("/", h.LotHandler.GetLotStatus)
		r.Get("/events", h.LotHandler.StreamEvents)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Post("/bids", h.BidHandler.PlaceBid)
			r.Post("/withdraw", h.LotHandler.WithdrawLot)
		})
	})
	r.With(auth.AuthMiddleware).Post("/api/auctions/{auctionID}/activate", h.LotHandler.ActivateAuction)

	return r
}
