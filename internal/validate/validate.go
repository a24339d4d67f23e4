package validate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/phoenix/internal/domain"
)

// ValidateRow enforces the row-level invariants. Validation is a hard
// stop: a row that fails here must never reach the rule engine.
func ValidateRow(row domain.LedgerRow) error {
	if row.Date.IsZero() {
		return fmt.Errorf("%w: row date is unset", ErrInvalidDate)
	}
	if !domain.ValidLedgerTypes[string(row.Type)] {
		return fmt.Errorf("%w: Type %q", ErrInvalidEnum, string(row.Type))
	}
	if !domain.ValidActors[string(row.Actor)] {
		return fmt.Errorf("%w: Actor %q", ErrInvalidEnum, string(row.Actor))
	}
	if row.HumanInterventionMinutes < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMinutes, row.HumanInterventionMinutes)
	}
	if row.Type == domain.TypeIRWE && strings.TrimSpace(row.EvidenceLink) == "" {
		return fmt.Errorf("%w: IRWE entry requires EvidenceLink (hard gate)", ErrMissingEvidence)
	}
	return nil
}

// ValidateRows validates each row in input order, stopping at the first
// failure. On success the rows are returned unchanged.
func ValidateRows(rows []domain.LedgerRow) ([]domain.LedgerRow, error) {
	for i, r := range rows {
		if err := ValidateRow(r); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}
	return rows, nil
}

// ValidateMonthString checks a "YYYY-MM" month key and returns its parts.
func ValidateMonthString(month string) (year, m int, err error) {
	if len(month) != 7 || month[4] != '-' {
		return 0, 0, fmt.Errorf("%w: %q (want YYYY-MM)", ErrInvalidMonthFormat, month)
	}
	year, yErr := strconv.Atoi(month[0:4])
	m, mErr := strconv.Atoi(month[5:7])
	if yErr != nil || mErr != nil {
		return 0, 0, fmt.Errorf("%w: %q (non-numeric)", ErrInvalidMonthFormat, month)
	}
	if m < 1 || m > 12 {
		return 0, 0, fmt.Errorf("%w: month part %02d (want 01..12)", ErrInvalidMonthRange, m)
	}
	if year < 1900 || year > 3000 {
		return 0, 0, fmt.Errorf("%w: year part %d (want 1900..3000)", ErrInvalidMonthRange, year)
	}
	return year, m, nil
}
