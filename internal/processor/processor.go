// Package processor drives one run of the transaction stream: decode,
// validate, route to the balance and dispute operations, then export.
package processor

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/OliverGavin/rusty-bank/internal/account"
	"github.com/OliverGavin/rusty-bank/internal/ledger"
	"github.com/OliverGavin/rusty-bank/internal/transaction"
)

// Source yields raw transaction records one at a time. Next returns
// io.EOF at the end of the stream. A *transaction.DecodeError marks a
// single unreadable record and leaves the stream usable; any other
// error means the stream itself failed.
type Source interface {
	Next() (transaction.Raw, error)
}

// Sink receives one account summary per client during export.
type Sink interface {
	Write(account.Summary) error
}

// Processor applies a transaction stream to a set of client accounts.
type Processor struct {
	store  account.Store
	ledger *ledger.Ledger
	log    *zap.Logger
}

// New creates a processor backed by the given account store.
func New(store account.Store, log *zap.Logger) *Processor {
	return &Processor{
		store:  store,
		ledger: ledger.New(),
		log:    log,
	}
}

// Process drains the source. Records that fail to decode or validate
// are logged and skipped; a transaction rejected by a balance or
// dispute guard is logged and ignored. Only a failing source stops the
// run.
func (p *Processor) Process(src Source) error {
	for {
		raw, err := src.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		var decodeErr *transaction.DecodeError
		if errors.As(err, &decodeErr) {
			p.log.Warn("skipping unreadable record", zap.Error(err))
			continue
		}
		if err != nil {
			return fmt.Errorf("reading transaction stream: %w", err)
		}

		txn, err := transaction.Validate(raw)
		if err != nil {
			p.log.Warn("skipping malformed transaction",
				zap.String("kind", string(raw.Kind)),
				zap.Uint16("client", uint16(raw.Client)),
				zap.Uint32("tx", uint32(raw.Tx)),
				zap.Error(err))
			continue
		}
		p.apply(txn)
	}
}

// apply routes one validated transaction to the store and the ledger.
func (p *Processor) apply(txn transaction.Transaction) {
	switch t := txn.(type) {
	case transaction.Deposit:
		if err := p.store.AddFunds(t.Client, t.Amount); err != nil {
			p.skip("deposit", t.Client, t.Tx, err)
			return
		}
		p.ledger.RecordDeposit(t.Client, t.Tx, t.Amount)

	case transaction.Withdrawal:
		if err := p.store.RemoveFunds(t.Client, t.Amount); err != nil {
			p.skip("withdrawal", t.Client, t.Tx, err)
		}

	case transaction.Dispute:
		rec, err := p.ledger.Disputable(t.Client, t.Tx)
		if err != nil {
			p.skip("dispute", t.Client, t.Tx, err)
			return
		}
		if err := p.store.HoldFunds(t.Client, rec.Amount); err != nil {
			p.skip("dispute", t.Client, t.Tx, err)
			return
		}
		p.ledger.OpenCase(rec)

	case transaction.Resolve:
		c, err := p.ledger.ActiveCase(t.Client, t.Tx)
		if err != nil {
			p.skip("resolve", t.Client, t.Tx, err)
			return
		}
		if err := p.store.ReleaseFunds(t.Client, c.Amount); err != nil {
			p.skip("resolve", t.Client, t.Tx, err)
			return
		}
		p.ledger.Resolve(t.Tx)

	case transaction.Chargeback:
		c, err := p.ledger.ActiveCase(t.Client, t.Tx)
		if err != nil {
			p.skip("chargeback", t.Client, t.Tx, err)
			return
		}
		if err := p.store.ReleaseAndDebit(t.Client, c.Amount); err != nil {
			p.skip("chargeback", t.Client, t.Tx, err)
			return
		}
		p.ledger.Chargeback(t.Tx)

	default:
		p.log.Error("unhandled transaction variant", zap.Any("transaction", txn))
	}
}

// skip records a transaction the guards rejected. Rejections never
// stop the run.
func (p *Processor) skip(kind string, client transaction.ClientID, tx transaction.ID, err error) {
	p.log.Warn("transaction ignored",
		zap.String("kind", kind),
		zap.Uint16("client", uint16(client)),
		zap.Uint32("tx", uint32(tx)),
		zap.Error(err))
}

// Export writes one summary per account to the sink. Call it once,
// after the stream is drained.
func (p *Processor) Export(sink Sink) error {
	for _, acct := range p.store.Export() {
		if err := sink.Write(account.NewSummary(acct)); err != nil {
			return fmt.Errorf("exporting account %d: %w", acct.Client, err)
		}
	}
	return nil
}
