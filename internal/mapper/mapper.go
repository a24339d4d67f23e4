package mapper

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/phoenix/internal/domain"
	"github.com/alexanderramin/phoenix/internal/validate"
)

// ErrMissingColumn indicates a raw row without one of the required
// canonical columns.
var ErrMissingColumn = errors.New("missing required column")

// RequiredColumns is the canonical minimum schema for a ledger row. The
// Notes column is part of the canonical sheet but its absence is tolerated.
var RequiredColumns = []string{
	"Date",
	"Type",
	"Amount",
	"Description",
	"Category",
	"Actor",
	"HumanInterventionMinutes",
	"EvidenceLink",
}

// dateLayouts are tried in order; the first successful parse wins.
var dateLayouts = []string{"2006-01-02", "01/02/2006", "01/02/06"}

func parseDate(value string) (time.Time, error) {
	s := strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: Date %q", validate.ErrInvalidDate, value)
}

// MapRow converts one raw column->value mapping into a LedgerRow.
// The IRWE evidence gate is enforced here as well as in the validator,
// so a bad row is rejected before it ever becomes a domain value.
func MapRow(raw map[string]string) (domain.LedgerRow, error) {
	var zero domain.LedgerRow

	for _, col := range RequiredColumns {
		if _, ok := raw[col]; !ok {
			return zero, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}

	date, err := parseDate(raw["Date"])
	if err != nil {
		return zero, err
	}

	typ := strings.TrimSpace(raw["Type"])
	if !domain.ValidLedgerTypes[typ] {
		return zero, fmt.Errorf("%w: Type %q", validate.ErrInvalidEnum, raw["Type"])
	}

	amount, err := validate.EnsureDecimal(raw["Amount"])
	if err != nil {
		return zero, err
	}

	actor := strings.TrimSpace(raw["Actor"])
	if !domain.ValidActors[actor] {
		return zero, fmt.Errorf("%w: Actor %q", validate.ErrInvalidEnum, raw["Actor"])
	}

	minutes, err := strconv.Atoi(strings.TrimSpace(raw["HumanInterventionMinutes"]))
	if err != nil {
		return zero, fmt.Errorf("%w: %q", validate.ErrInvalidMinutes, raw["HumanInterventionMinutes"])
	}
	if minutes < 0 {
		return zero, fmt.Errorf("%w: %d", validate.ErrInvalidMinutes, minutes)
	}

	evidence := strings.TrimSpace(raw["EvidenceLink"])
	notes := strings.TrimSpace(raw["Notes"])

	if domain.LedgerType(typ) == domain.TypeIRWE && evidence == "" {
		return zero, fmt.Errorf("%w: IRWE entry requires EvidenceLink (hard gate)", validate.ErrMissingEvidence)
	}

	return domain.LedgerRow{
		Date:                     date,
		Type:                     domain.LedgerType(typ),
		Amount:                   validate.QuantizeMoney(amount),
		Description:              strings.TrimSpace(raw["Description"]),
		Category:                 strings.TrimSpace(raw["Category"]),
		Actor:                    domain.Actor(actor),
		HumanInterventionMinutes: minutes,
		EvidenceLink:             evidence,
		Notes:                    notes,
	}, nil
}

// MapRows converts raw rows in order, stopping at the first failure.
func MapRows(raws []map[string]string) ([]domain.LedgerRow, error) {
	rows := make([]domain.LedgerRow, 0, len(raws))
	for i, raw := range raws {
		row, err := MapRow(raw)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
