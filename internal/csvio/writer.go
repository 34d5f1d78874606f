package csvio

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/OliverGavin/rusty-bank/internal/account"
)

// Writer renders account summaries as CSV. The header row is written
// before the first record, so an empty export produces empty output.
type Writer struct {
	csv    *csv.Writer
	header bool
}

// NewWriter creates a summary writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// Write renders one account summary.
func (w *Writer) Write(s account.Summary) error {
	if !w.header {
		w.header = true
		header := []string{"client", "available", "held", "total", "locked"}
		if err := w.csv.Write(header); err != nil {
			return err
		}
	}
	record := []string{
		strconv.FormatUint(uint64(s.Client), 10),
		formatAmount(s.Available),
		formatAmount(s.Held),
		formatAmount(s.Total),
		strconv.FormatBool(s.Locked),
	}
	return w.csv.Write(record)
}

// formatAmount renders an amount at its own scale. Decimal.String
// trims trailing zeros, but a balance parsed as 1.0 must export as
// 1.0.
func formatAmount(v decimal.Decimal) string {
	if v.Exponent() < 0 {
		return v.StringFixed(-v.Exponent())
	}
	return v.String()
}

// Flush writes buffered records through to the underlying writer.
func (w *Writer) Flush() error {
	w.csv.Flush()
	return w.csv.Error()
}
