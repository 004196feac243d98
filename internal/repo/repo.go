package repo

import (
	"github.com/Meetvaghasiya-5040/Auction-House/internal/pg"
	bidrepo "github.com/Meetvaghasiya-5040/Auction-House/internal/repo/bid-repo"
	invoicerepo "github.com/Meetvaghasiya-5040/Auction-House/internal/repo/invoice-repo"
	itemrepo "github.com/Meetvaghasiya-5040/Auction-House/internal/repo/item-repo"
	lotrepo "github.com/Meetvaghasiya-5040/Auction-House/internal/repo/lot-repo"
	userrepo "github.com/Meetvaghasiya-5040/Auction-House/internal/repo/user-repo"
	walletrepo "github.com/Meetvaghasiya-5040/Auction-House/internal/repo/wallet-repo"
)

type Repositories struct {
	UserRepo    *userrepo.Repository
	WalletRepo  *walletrepo.Repository
	LotRepo     *lotrepo.Repository
	BidRepo     *bidrepo.Repository
	ItemRepo    *itemrepo.Repository
	InvoiceRepo *invoicerepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:    userrepo.New(conn),
		WalletRepo:  walletrepo.New(conn, txManager),
		LotRepo:     lotrepo.New(conn, txManager),
		BidRepo:     bidrepo.New(conn),
		ItemRepo:    itemrepo.New(conn),
		InvoiceRepo: invoicerepo.New(conn),
	}
}
