package account

import (
	"github.com/shopspring/decimal"

	"github.com/OliverGavin/rusty-bank/internal/transaction"
)

// Store defines the account balance store interface. Every operation
// creates an empty account on first reference to a client, then checks
// the lock before mutating.
type Store interface {
	// AddFunds credits amount to the client's total.
	// Returns ErrAccountLocked if the account is frozen; it never
	// fails for insufficient funds.
	AddFunds(client transaction.ClientID, amount decimal.Decimal) error

	// RemoveFunds debits amount from the client's total.
	// Returns ErrInsufficientFunds if amount exceeds the available
	// balance, ErrAccountLocked if the account is frozen.
	RemoveFunds(client transaction.ClientID, amount decimal.Decimal) error

	// HoldFunds moves amount under hold. There is no ceiling check
	// against the total; the available balance may go negative.
	HoldFunds(client transaction.ClientID, amount decimal.Decimal) error

	// ReleaseFunds releases amount from hold.
	ReleaseFunds(client transaction.ClientID, amount decimal.Decimal) error

	// ReleaseAndDebit releases amount from hold, debits it from the
	// total and locks the account. The lock is unconditional on
	// success, even when the resulting total is negative.
	ReleaseAndDebit(client transaction.ClientID, amount decimal.Decimal) error

	// Export returns every account as a value copy, in no particular
	// order. Callers run it once, after all mutations are done.
	Export() []Account
}
