package validate

import "errors"

var (
	// ErrInvalidDate indicates a row date that is not a usable calendar date.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidEnum indicates a ledger type or actor outside the canonical set.
	ErrInvalidEnum = errors.New("invalid enum value")

	// ErrInvalidMinutes indicates a negative or unparsable minutes value.
	ErrInvalidMinutes = errors.New("invalid human intervention minutes")

	// ErrInvalidAmount indicates a value that cannot be parsed as an exact
	// base-10 decimal.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrMissingEvidence indicates an IRWE row without an evidence link.
	// This is a hard gate: the row must be rejected, never defaulted.
	ErrMissingEvidence = errors.New("missing evidence link")

	// ErrInvalidMonthFormat indicates a month key not shaped "YYYY-MM".
	ErrInvalidMonthFormat = errors.New("invalid month format")

	// ErrInvalidMonthRange indicates a month key outside 1900-01..3000-12.
	ErrInvalidMonthRange = errors.New("month out of range")
)
