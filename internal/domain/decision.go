package domain

import "github.com/shopspring/decimal"

// Flag is an informational marker attached to a decision record.
// Flags never block evaluation or alter metrics.
type Flag struct {
	Code     FlagCode
	Severity Severity
	Message  string
	Payload  map[string]any
}

// Alert signals a condition requiring human attention. The engine records
// alerts; it never acts on them.
type Alert struct {
	Code     AlertCode
	Severity Severity
	Message  string
	Payload  map[string]any
}

// MonthlyMetrics holds the computed monetary aggregates for one month.
// All values are quantized to two decimal places.
type MonthlyMetrics struct {
	Month             string // "YYYY-MM"
	GrossW2           decimal.Decimal
	IRWETotal         decimal.Decimal
	CountableEarnings decimal.Decimal
	DistTotal         decimal.Decimal
	SGALimitBlind     decimal.Decimal
	SGAHeadroom       decimal.Decimal
}

// Explainability is the SSA-facing narrative payload: which rules governed
// the run, what was measured, and what the beneficiary should do next.
type Explainability struct {
	Month        string
	RulesApplied []string
	Measurements map[string]any
	Conclusions  []string
	NextActions  []string
}

// InputSummary records how many rows the engine received and how many fell
// in the target month, plus the configured timezone for audit context.
type InputSummary struct {
	TotalRowsReceived int
	RowsInTargetMonth int
	Timezone          string
}

// DecisionRecord is the full machine-readable output of one monthly
// evaluation. The engine constructs it once; nothing mutates it afterwards.
type DecisionRecord struct {
	Month          string
	ConfigSnapshot map[string]any
	InputSummary   InputSummary
	Metrics        MonthlyMetrics
	Flags          []Flag
	Alerts         []Alert
	Explain        Explainability
}
