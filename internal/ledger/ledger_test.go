package ledger

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

var d = decimal.RequireFromString

func TestDisputable(t *testing.T) {
	l := New()
	l.RecordDeposit(1, 100, d("25.5"))

	rec, err := l.Disputable(1, 100)
	if err != nil {
		t.Fatalf("Disputable failed: %v", err)
	}
	if rec.Client != 1 || rec.Tx != 100 {
		t.Errorf("expected client=1 tx=100, got client=%d tx=%d", rec.Client, rec.Tx)
	}
	if !rec.Amount.Equal(d("25.5")) {
		t.Errorf("expected amount 25.5, got %s", rec.Amount)
	}
}

func TestDisputable_UnknownTransaction(t *testing.T) {
	l := New()

	_, err := l.Disputable(1, 100)
	if !errors.Is(err, ErrUnknownTransaction) {
		t.Errorf("expected ErrUnknownTransaction, got: %v", err)
	}
}

func TestDisputable_ClientMismatch(t *testing.T) {
	l := New()
	l.RecordDeposit(1, 100, d("10"))

	_, err := l.Disputable(2, 100)
	if !errors.Is(err, ErrClientMismatch) {
		t.Errorf("expected ErrClientMismatch, got: %v", err)
	}
}

func TestDisputable_CaseAlreadyOpen(t *testing.T) {
	l := New()
	l.RecordDeposit(1, 100, d("10"))

	rec, err := l.Disputable(1, 100)
	if err != nil {
		t.Fatalf("Disputable failed: %v", err)
	}
	l.OpenCase(rec)

	_, err = l.Disputable(1, 100)
	if !errors.Is(err, ErrCaseExists) {
		t.Errorf("expected ErrCaseExists, got: %v", err)
	}
}

func TestDisputable_CaseExistsAfterResolve(t *testing.T) {
	l := New()
	l.RecordDeposit(1, 100, d("10"))

	rec, err := l.Disputable(1, 100)
	if err != nil {
		t.Fatalf("Disputable failed: %v", err)
	}
	l.OpenCase(rec)
	l.Resolve(100)

	// A resolved case still blocks a second dispute on the same
	// deposit.
	_, err = l.Disputable(1, 100)
	if !errors.Is(err, ErrCaseExists) {
		t.Errorf("expected ErrCaseExists after resolve, got: %v", err)
	}
}

func TestOpenCaseAndActiveCase(t *testing.T) {
	l := New()
	l.RecordDeposit(1, 100, d("10"))

	rec, err := l.Disputable(1, 100)
	if err != nil {
		t.Fatalf("Disputable failed: %v", err)
	}
	l.OpenCase(rec)

	c, err := l.ActiveCase(1, 100)
	if err != nil {
		t.Fatalf("ActiveCase failed: %v", err)
	}
	if c.Status != StatusOpen {
		t.Errorf("expected status open, got %s", c.Status)
	}
	if !c.Amount.Equal(d("10")) {
		t.Errorf("expected amount 10, got %s", c.Amount)
	}
}

func TestActiveCase_NoCase(t *testing.T) {
	l := New()
	l.RecordDeposit(1, 100, d("10"))

	// Deposit exists but no dispute was ever opened.
	_, err := l.ActiveCase(1, 100)
	if !errors.Is(err, ErrNoCase) {
		t.Errorf("expected ErrNoCase, got: %v", err)
	}
}

func TestActiveCase_ClientMismatch(t *testing.T) {
	l := New()
	l.RecordDeposit(1, 100, d("10"))

	rec, err := l.Disputable(1, 100)
	if err != nil {
		t.Fatalf("Disputable failed: %v", err)
	}
	l.OpenCase(rec)

	_, err = l.ActiveCase(2, 100)
	if !errors.Is(err, ErrClientMismatch) {
		t.Errorf("expected ErrClientMismatch, got: %v", err)
	}
}

func TestActiveCase_TerminalStates(t *testing.T) {
	tests := []struct {
		name     string
		finish   func(l *Ledger)
		wantStat Status
	}{
		{"resolved", func(l *Ledger) { l.Resolve(100) }, StatusResolved},
		{"chargebacked", func(l *Ledger) { l.Chargeback(100) }, StatusChargebacked},
	}

	for _, tt := range tests {
		l := New()
		l.RecordDeposit(1, 100, d("10"))
		rec, err := l.Disputable(1, 100)
		if err != nil {
			t.Fatalf("%s: Disputable failed: %v", tt.name, err)
		}
		l.OpenCase(rec)
		tt.finish(l)

		_, err = l.ActiveCase(1, 100)
		if !errors.Is(err, ErrCaseNotOpen) {
			t.Errorf("%s: expected ErrCaseNotOpen, got: %v", tt.name, err)
		}

		c, exists := l.Case(100)
		if !exists {
			t.Fatalf("%s: case disappeared", tt.name)
		}
		if c.Status != tt.wantStat {
			t.Errorf("%s: expected status %s, got %s", tt.name, tt.wantStat, c.Status)
		}
	}
}

func TestResolve_WithoutCaseIsNoOp(t *testing.T) {
	l := New()

	l.Resolve(100)
	l.Chargeback(200)

	if _, exists := l.Case(100); exists {
		t.Error("Resolve on missing case created one")
	}
	if _, exists := l.Case(200); exists {
		t.Error("Chargeback on missing case created one")
	}
}

func TestCase_ReturnsCopy(t *testing.T) {
	l := New()
	l.RecordDeposit(1, 100, d("10"))
	rec, err := l.Disputable(1, 100)
	if err != nil {
		t.Fatalf("Disputable failed: %v", err)
	}
	l.OpenCase(rec)

	c, exists := l.Case(100)
	if !exists {
		t.Fatal("expected case to exist")
	}
	c.Status = StatusChargebacked

	// Mutating the copy must not leak into the ledger.
	again, _ := l.Case(100)
	if again.Status != StatusOpen {
		t.Errorf("expected status open, got %s", again.Status)
	}
}
