// Package testutil provides shared ledger fixtures for tests.
package testutil

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/alexanderramin/phoenix/internal/domain"
)

// MustDate parses a "YYYY-MM-DD" date, panicking on bad fixture input.
func MustDate(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d.UTC()
}

// MustDecimal parses a decimal string, panicking on bad fixture input.
func MustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Row returns a valid ledger row. IRWE rows get a placeholder evidence
// link so the hard gate passes; tests exercising the gate clear it.
func Row(date string, typ domain.LedgerType, amount string) domain.LedgerRow {
	row := domain.LedgerRow{
		Date:        MustDate(date),
		Type:        typ,
		Amount:      MustDecimal(amount),
		Description: "fixture entry",
		Category:    "General",
		Actor:       domain.ActorPhoenix,
	}
	if typ == domain.TypeIRWE {
		row.EvidenceLink = "https://evidence.example/receipt-001"
	}
	return row
}

// RawRow returns a canonical raw sheet row, with overrides applied on top.
// An override with an empty value keeps the column present but blank; to
// remove a column entirely, delete it from the returned map.
func RawRow(overrides map[string]string) map[string]string {
	raw := map[string]string{
		"Date":                     "2025-03-14",
		"Type":                     "W2",
		"Amount":                   "1200.00",
		"Description":              "March payroll",
		"Category":                 "Payroll",
		"Actor":                    "PHOENIX",
		"HumanInterventionMinutes": "0",
		"EvidenceLink":             "",
		"Notes":                    "",
	}
	for k, v := range overrides {
		raw[k] = v
	}
	return raw
}

// Config returns a baseline config with the given SGA limit.
func Config(sgaLimit string) domain.PhoenixConfig {
	return domain.PhoenixConfig{
		SGALimitBlind: MustDecimal(sgaLimit),
		Timezone:      domain.DefaultTimezone,
	}
}
