package account

import (
	"github.com/shopspring/decimal"

	"github.com/OliverGavin/rusty-bank/internal/transaction"
)

// Account is the balance state for one client.
//
// Held and Total are the stored quantities; the available balance is
// always derived. Nothing forces Held <= Total or Held >= 0: disputing
// a deposit that was already partially withdrawn legitimately drives
// the available balance negative.
type Account struct {
	Client transaction.ClientID
	Held   decimal.Decimal // funds earmarked by open disputes
	Total  decimal.Decimal // held plus available funds
	Locked bool            // set by a chargeback, never cleared
}

// Available returns the funds the client can withdraw (total - held).
func (a Account) Available() decimal.Decimal {
	return a.Total.Sub(a.Held)
}

// Summary is the exported view of an account, with the derived
// available balance materialized for serialization.
type Summary struct {
	Client    transaction.ClientID
	Available decimal.Decimal
	Held      decimal.Decimal
	Total     decimal.Decimal
	Locked    bool
}

// NewSummary builds the exported view of an account.
func NewSummary(a Account) Summary {
	return Summary{
		Client:    a.Client,
		Available: a.Available(),
		Held:      a.Held,
		Total:     a.Total,
		Locked:    a.Locked,
	}
}
