// Package ledger tracks which deposits are eligible for dispute and
// the lifecycle of every dispute case opened against them.
package ledger

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/OliverGavin/rusty-bank/internal/transaction"
)

var (
	ErrUnknownTransaction = errors.New("no deposit under that transaction id")
	ErrClientMismatch     = errors.New("transaction belongs to another client")
	ErrCaseExists         = errors.New("dispute case already exists")
	ErrNoCase             = errors.New("no dispute case under that transaction id")
	ErrCaseNotOpen        = errors.New("dispute case is not open")
)

// Status is the lifecycle state of a dispute case. Resolved and
// Chargebacked are terminal.
type Status string

const (
	StatusOpen         Status = "open"
	StatusResolved     Status = "resolved"
	StatusChargebacked Status = "chargebacked"
)

// DepositRecord remembers a settled deposit so a later dispute can
// reference its amount.
type DepositRecord struct {
	Client transaction.ClientID
	Tx     transaction.ID
	Amount decimal.Decimal
}

// DisputeCase is the state of one dispute. A case is created at most
// once per transaction and never removed.
type DisputeCase struct {
	Tx     transaction.ID
	Client transaction.ClientID
	Amount decimal.Decimal
	Status Status
}

// Ledger keeps the deposit history and the dispute cases of a run.
// It is not safe for concurrent use.
type Ledger struct {
	deposits map[transaction.ID]DepositRecord
	cases    map[transaction.ID]*DisputeCase
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{
		deposits: make(map[transaction.ID]DepositRecord),
		cases:    make(map[transaction.ID]*DisputeCase),
	}
}

// RecordDeposit remembers a settled deposit under its transaction id.
func (l *Ledger) RecordDeposit(client transaction.ClientID, tx transaction.ID, amount decimal.Decimal) {
	l.deposits[tx] = DepositRecord{Client: client, Tx: tx, Amount: amount}
}

// Disputable checks whether a dispute may open against tx and returns
// the deposit it would contest. A deposit with a prior case, in any
// state, cannot be disputed again.
func (l *Ledger) Disputable(client transaction.ClientID, tx transaction.ID) (DepositRecord, error) {
	rec, exists := l.deposits[tx]
	if !exists {
		return DepositRecord{}, ErrUnknownTransaction
	}
	if rec.Client != client {
		return DepositRecord{}, ErrClientMismatch
	}
	if _, exists := l.cases[tx]; exists {
		return DepositRecord{}, ErrCaseExists
	}
	return rec, nil
}

// OpenCase opens a dispute case against the given deposit.
func (l *Ledger) OpenCase(rec DepositRecord) {
	l.cases[rec.Tx] = &DisputeCase{
		Tx:     rec.Tx,
		Client: rec.Client,
		Amount: rec.Amount,
		Status: StatusOpen,
	}
}

// ActiveCase returns the open dispute case on tx, or an error when
// there is none, it belongs to another client, or it already reached a
// terminal state.
func (l *Ledger) ActiveCase(client transaction.ClientID, tx transaction.ID) (DisputeCase, error) {
	c, exists := l.cases[tx]
	if !exists {
		return DisputeCase{}, ErrNoCase
	}
	if c.Client != client {
		return DisputeCase{}, ErrClientMismatch
	}
	if c.Status != StatusOpen {
		return DisputeCase{}, ErrCaseNotOpen
	}
	return *c, nil
}

// Resolve moves the case on tx to its resolved terminal state.
func (l *Ledger) Resolve(tx transaction.ID) {
	if c, exists := l.cases[tx]; exists {
		c.Status = StatusResolved
	}
}

// Chargeback moves the case on tx to its chargebacked terminal state.
func (l *Ledger) Chargeback(tx transaction.ID) {
	if c, exists := l.cases[tx]; exists {
		c.Status = StatusChargebacked
	}
}

// Case returns a copy of the dispute case on tx.
func (l *Ledger) Case(tx transaction.ID) (DisputeCase, bool) {
	c, exists := l.cases[tx]
	if !exists {
		return DisputeCase{}, false
	}
	return *c, true
}
