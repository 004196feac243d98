package service

import (
	"github.com/Meetvaghasiya-5040/Auction-House/internal/config"
	"github.com/Meetvaghasiya-5040/Auction-House/internal/events"
	"github.com/Meetvaghasiya-5040/Auction-House/internal/pg"
	"github.com/Meetvaghasiya-5040/Auction-House/internal/repo"
	"github.com/Meetvaghasiya-5040/Auction-House/internal/service/authservice"
	"github.com/Meetvaghasiya-5040/Auction-House/internal/service/bidservice"
	"github.com/Meetvaghasiya-5040/Auction-House/internal/service/lotservice"
	"github.com/Meetvaghasiya-5040/Auction-House/internal/service/settlementservice"
	"github.com/Meetvaghasiya-5040/Auction-House/internal/service/walletservice"
	pkgauth "github.com/Meetvaghasiya-5040/Auction-House/pkg/auth"
)

type Services struct {
	AuthService       *authservice.Service
	WalletService     *walletservice.Service
	BidService        *bidservice.Service
	LotService        *lotservice.Service
	SettlementService *settlementservice.Service
}

func New(cfg *config.Config, repo *repo.Repositories, txManager pg.TXManager, hub *events.Hub, dispatcher settlementservice.Dispatcher) *Services {
	walletService := walletservice.New(repo.WalletRepo, txManager)
	authService := authservice.New(repo.UserRepo, walletService, &pkgauth.HashService{}, &pkgauth.JWTService{})
	bidService := bidservice.New(txManager, repo.LotRepo, repo.BidRepo, repo.ItemRepo, repo.UserRepo, walletService, hub, cfg.AllowTopUp)
	settlementService := settlementservice.New(txManager, repo.LotRepo, repo.BidRepo, repo.ItemRepo, repo.InvoiceRepo, repo.UserRepo, walletService, hub, dispatcher)
	lotService := lotservice.New(txManager, repo.LotRepo, repo.BidRepo, repo.ItemRepo, repo.InvoiceRepo, repo.UserRepo, settlementService)

	return &Services{
		AuthService:       authService,
		WalletService:     walletService,
		BidService:        bidService,
		LotService:        lotService,
		SettlementService: settlementService,
	}
}
