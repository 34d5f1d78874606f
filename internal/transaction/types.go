package transaction

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ClientID identifies a client account. IDs arrive on the wire and are
// never reused across accounts.
type ClientID uint16

// ID identifies a deposit or withdrawal record. The input stream is
// trusted not to reuse it across distinct records of those two kinds;
// disputes, resolves and chargebacks reference an earlier deposit by it.
type ID uint32

// Kind is the type tag carried by a raw transaction record.
type Kind string

const (
	KindDeposit    Kind = "deposit"
	KindWithdrawal Kind = "withdrawal"
	KindDispute    Kind = "dispute"
	KindResolve    Kind = "resolve"
	KindChargeback Kind = "chargeback"
)

// ParseKind normalizes a wire type tag into a Kind. Matching is
// case-insensitive and ignores surrounding whitespace.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindDeposit, KindWithdrawal, KindDispute, KindResolve, KindChargeback:
		return k, nil
	default:
		return "", fmt.Errorf("unknown transaction type %q", s)
	}
}

// Raw is a decoded but not yet validated transaction record. Amount is
// nil when the field was absent on the wire.
type Raw struct {
	Kind   Kind
	Client ClientID
	Tx     ID
	Amount *decimal.Decimal
}

// DecodeError reports a single record that could not be decoded. The
// stream it came from is still usable; callers log the record and skip
// it. Any other error from a record source means the stream itself
// failed.
type DecodeError struct {
	Line int
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("record on line %d: %v", e.Line, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
