package transaction

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Validation failures. Each marks the offending record as skippable,
// never fatal.
var (
	ErrUnexpectedAmount  = errors.New("unexpected amount")
	ErrNonPositiveAmount = errors.New("amount must be positive")
	ErrMissingAmount     = errors.New("missing amount")
)

// Transaction is one of the five record variants. The set is closed:
// the unexported marker method keeps implementations inside this
// package, so a type switch over Transaction covers every case.
type Transaction interface {
	transaction()
}

// Deposit credits funds to a client account.
type Deposit struct {
	Client ClientID
	Tx     ID
	Amount decimal.Decimal
}

// Withdrawal debits funds from a client account.
type Withdrawal struct {
	Client ClientID
	Tx     ID
	Amount decimal.Decimal
}

// Dispute opens a claim against an earlier deposit.
type Dispute struct {
	Client ClientID
	Tx     ID
}

// Resolve releases a disputed deposit back to the client.
type Resolve struct {
	Client ClientID
	Tx     ID
}

// Chargeback reverses a disputed deposit and freezes the account.
type Chargeback struct {
	Client ClientID
	Tx     ID
}

func (Deposit) transaction()    {}
func (Withdrawal) transaction() {}
func (Dispute) transaction()    {}
func (Resolve) transaction()    {}
func (Chargeback) transaction() {}

// Validate converts a raw record into a typed Transaction. A dispute,
// resolve or chargeback must not carry an amount; a deposit or
// withdrawal must carry a positive one. An amount on the wrong kind is
// rejected before its sign is considered.
func Validate(raw Raw) (Transaction, error) {
	switch raw.Kind {
	case KindDispute, KindResolve, KindChargeback:
		if raw.Amount != nil {
			return nil, fmt.Errorf("%s: %w", raw.Kind, ErrUnexpectedAmount)
		}
	}
	if raw.Amount != nil && !raw.Amount.IsPositive() {
		return nil, fmt.Errorf("%s: %w", raw.Kind, ErrNonPositiveAmount)
	}

	switch raw.Kind {
	case KindDeposit:
		if raw.Amount == nil {
			return nil, fmt.Errorf("%s: %w", raw.Kind, ErrMissingAmount)
		}
		return Deposit{Client: raw.Client, Tx: raw.Tx, Amount: *raw.Amount}, nil
	case KindWithdrawal:
		if raw.Amount == nil {
			return nil, fmt.Errorf("%s: %w", raw.Kind, ErrMissingAmount)
		}
		return Withdrawal{Client: raw.Client, Tx: raw.Tx, Amount: *raw.Amount}, nil
	case KindDispute:
		return Dispute{Client: raw.Client, Tx: raw.Tx}, nil
	case KindResolve:
		return Resolve{Client: raw.Client, Tx: raw.Tx}, nil
	case KindChargeback:
		return Chargeback{Client: raw.Client, Tx: raw.Tx}, nil
	default:
		return nil, fmt.Errorf("unknown transaction kind %q", raw.Kind)
	}
}
