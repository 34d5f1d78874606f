package account

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/OliverGavin/rusty-bank/internal/transaction"
)

// Common errors
var (
	ErrAccountLocked     = errors.New("account locked")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// LockedError reports an operation rejected because the account was
// frozen by an earlier chargeback.
type LockedError struct {
	Client transaction.ClientID
}

func (e *LockedError) Error() string {
	return fmt.Sprintf("account locked: client=%d", e.Client)
}

func (e *LockedError) Is(target error) bool {
	return target == ErrAccountLocked
}

// InsufficientFundsError represents a withdrawal exceeding the
// available balance, with details.
type InsufficientFundsError struct {
	Client    transaction.ClientID
	Requested decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: client=%d requested=%s available=%s",
		e.Client, e.Requested, e.Available)
}

func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}
