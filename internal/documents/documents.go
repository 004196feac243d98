package documents

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// SettlementDocument carries everything the invoice renderer needs about a
// settled lot. It is handed to the dispatcher after the settlement
// transaction commits; delivery failures never touch the financial state.
type SettlementDocument struct {
	InvoiceNumber string
	LotID         int
	LotTitle      string
	WinnerLogin   string
	Amount        decimal.Decimal
	Commission    decimal.Decimal
	Items         []LineItem
	IssuedAt      time.Time
}

type LineItem struct {
	Title          string
	EstimatedValue decimal.Decimal
	OwnerPayout    decimal.Decimal
}

// Renderer produces the invoice artifact for a settlement document.
type Renderer interface {
	Render(doc SettlementDocument) ([]byte, error)
}

type InvoiceRenderer struct{}

func NewInvoiceRenderer() *InvoiceRenderer {
	return &InvoiceRenderer{}
}

func (r *InvoiceRenderer) Render(doc SettlementDocument) ([]byte, error) {
	if doc.InvoiceNumber == "" {
		return nil, fmt.Errorf("settlement document has no invoice number")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "INVOICE %s\n", doc.InvoiceNumber)
	fmt.Fprintf(&b, "Issued: %s\n", doc.IssuedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "Lot #%d: %s\n", doc.LotID, doc.LotTitle)
	fmt.Fprintf(&b, "Winner: %s\n\n", doc.WinnerLogin)

	fmt.Fprintf(&b, "%-40s %12s %12s\n", "Item", "Est. value", "Payout")
	for _, item := range doc.Items {
		fmt.Fprintf(&b, "%-40s %12s %12s\n",
			item.Title, item.EstimatedValue.StringFixed(2), item.OwnerPayout.StringFixed(2))
	}

	fmt.Fprintf(&b, "\n%-40s %12s\n", "Winning bid", doc.Amount.StringFixed(2))
	fmt.Fprintf(&b, "%-40s %12s\n", "House commission", doc.Commission.StringFixed(2))
	fmt.Fprintf(&b, "%-40s %12s\n", "Distributed to owners", doc.Amount.Sub(doc.Commission).StringFixed(2))

	return []byte(b.String()), nil
}
