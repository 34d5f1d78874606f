package account

import (
	"github.com/shopspring/decimal"

	"github.com/OliverGavin/rusty-bank/internal/transaction"
)

// MemoryStore is an in-memory implementation of the account store.
// It is not safe for concurrent use: a processing run has exactly one
// logical writer.
type MemoryStore struct {
	accounts map[transaction.ClientID]*Account
}

// NewMemoryStore creates a new in-memory account store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		accounts: make(map[transaction.ClientID]*Account),
	}
}

// unlocked returns the client's account, creating an empty one on
// first reference, or a LockedError if the account is frozen.
func (s *MemoryStore) unlocked(client transaction.ClientID) (*Account, error) {
	acct, exists := s.accounts[client]
	if !exists {
		acct = &Account{Client: client}
		s.accounts[client] = acct
	}
	if acct.Locked {
		return nil, &LockedError{Client: client}
	}
	return acct, nil
}

// AddFunds credits amount to the client's total.
func (s *MemoryStore) AddFunds(client transaction.ClientID, amount decimal.Decimal) error {
	acct, err := s.unlocked(client)
	if err != nil {
		return err
	}
	acct.Total = acct.Total.Add(amount)
	return nil
}

// RemoveFunds debits amount from the client's total if enough is
// available.
func (s *MemoryStore) RemoveFunds(client transaction.ClientID, amount decimal.Decimal) error {
	acct, err := s.unlocked(client)
	if err != nil {
		return err
	}
	if amount.GreaterThan(acct.Available()) {
		return &InsufficientFundsError{
			Client:    client,
			Requested: amount,
			Available: acct.Available(),
		}
	}
	acct.Total = acct.Total.Sub(amount)
	return nil
}

// HoldFunds moves amount under hold.
func (s *MemoryStore) HoldFunds(client transaction.ClientID, amount decimal.Decimal) error {
	acct, err := s.unlocked(client)
	if err != nil {
		return err
	}
	acct.Held = acct.Held.Add(amount)
	return nil
}

// ReleaseFunds releases amount from hold.
func (s *MemoryStore) ReleaseFunds(client transaction.ClientID, amount decimal.Decimal) error {
	acct, err := s.unlocked(client)
	if err != nil {
		return err
	}
	acct.Held = acct.Held.Sub(amount)
	return nil
}

// ReleaseAndDebit releases amount from hold, debits the total and
// locks the account.
func (s *MemoryStore) ReleaseAndDebit(client transaction.ClientID, amount decimal.Decimal) error {
	acct, err := s.unlocked(client)
	if err != nil {
		return err
	}
	acct.Held = acct.Held.Sub(amount)
	acct.Total = acct.Total.Sub(amount)
	acct.Locked = true
	return nil
}

// Export returns every account as a value copy, in map order.
func (s *MemoryStore) Export() []Account {
	accounts := make([]Account, 0, len(s.accounts))
	for _, acct := range s.accounts {
		accounts = append(accounts, *acct)
	}
	return accounts
}
