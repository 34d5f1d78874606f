// Package csvio binds the processing core to its CSV wire format: a
// reader that decodes transaction records and a writer that renders
// account summaries.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/OliverGavin/rusty-bank/internal/transaction"
)

// Reader decodes transaction records from CSV input. The first row is
// a header and is discarded. Rows carry 3 or 4 fields; whitespace
// around fields is ignored.
type Reader struct {
	csv    *csv.Reader
	header bool
}

// NewReader creates a transaction reader over r.
func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	return &Reader{csv: cr}
}

// Next returns the next transaction record. It returns io.EOF at the
// end of input and a *transaction.DecodeError for a row that cannot be
// decoded; the reader stays usable after a decode error.
func (r *Reader) Next() (transaction.Raw, error) {
	if !r.header {
		r.header = true
		if _, err := r.read(); err != nil {
			return transaction.Raw{}, err
		}
	}
	fields, err := r.read()
	if err != nil {
		return transaction.Raw{}, err
	}
	line, _ := r.csv.FieldPos(0)
	return decode(line, fields)
}

// read pulls one CSV row, converting per-row parse failures into
// decode errors so the caller can skip them.
func (r *Reader) read() ([]string, error) {
	fields, err := r.csv.Read()
	if err == nil {
		return fields, nil
	}
	if errors.Is(err, io.EOF) {
		return nil, io.EOF
	}
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return nil, &transaction.DecodeError{Line: parseErr.Line, Err: err}
	}
	return nil, err
}

// decode maps one CSV row onto a raw transaction record.
func decode(line int, fields []string) (transaction.Raw, error) {
	fail := func(err error) (transaction.Raw, error) {
		return transaction.Raw{}, &transaction.DecodeError{Line: line, Err: err}
	}
	if len(fields) < 3 || len(fields) > 4 {
		return fail(fmt.Errorf("expected 3 or 4 fields, got %d", len(fields)))
	}
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}

	kind, err := transaction.ParseKind(fields[0])
	if err != nil {
		return fail(err)
	}
	client, err := strconv.ParseUint(fields[1], 10, 16)
	if err != nil {
		return fail(fmt.Errorf("client id %q: %w", fields[1], err))
	}
	tx, err := strconv.ParseUint(fields[2], 10, 32)
	if err != nil {
		return fail(fmt.Errorf("transaction id %q: %w", fields[2], err))
	}

	raw := transaction.Raw{
		Kind:   kind,
		Client: transaction.ClientID(client),
		Tx:     transaction.ID(tx),
	}
	if len(fields) == 4 && fields[3] != "" {
		amount, err := decimal.NewFromString(fields[3])
		if err != nil {
			return fail(fmt.Errorf("amount %q: %w", fields[3], err))
		}
		raw.Amount = &amount
	}
	return raw, nil
}
