package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerRow is one entry from the beneficiary's business ledger.
// Rows are constructed by the mapper and never mutated afterwards.
type LedgerRow struct {
	Date        time.Time // calendar date, UTC midnight; timezone-naive by contract
	Type        LedgerType
	Amount      decimal.Decimal
	Description string
	Category    string
	Actor       Actor

	HumanInterventionMinutes int

	// EvidenceLink must be non-empty (after trimming) when Type is IRWE.
	EvidenceLink string
	Notes        string
}

// MonthKey returns the "YYYY-MM" grouping key for a date.
func MonthKey(d time.Time) string {
	return d.Format("2006-01")
}
