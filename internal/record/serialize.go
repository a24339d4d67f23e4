// Package record converts decision records into their canonical
// JSON-serializable form. Monetary values are rendered as fixed
// two-decimal strings so no binary float ever carries money.
package record

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/alexanderramin/phoenix/internal/domain"
	"github.com/alexanderramin/phoenix/internal/validate"
)

// ToMap converts a DecisionRecord into a structure whose leaves are only
// strings, booleans, integers, and nested maps/slices thereof. No I/O.
func ToMap(rec *domain.DecisionRecord) map[string]any {
	flags := make([]any, 0, len(rec.Flags))
	for _, f := range rec.Flags {
		flags = append(flags, map[string]any{
			"code":     string(f.Code),
			"severity": string(f.Severity),
			"message":  f.Message,
			"payload":  walkPayload(f.Payload),
		})
	}

	alerts := make([]any, 0, len(rec.Alerts))
	for _, a := range rec.Alerts {
		alerts = append(alerts, map[string]any{
			"code":     string(a.Code),
			"severity": string(a.Severity),
			"message":  a.Message,
			"payload":  walkPayload(a.Payload),
		})
	}

	return map[string]any{
		"month":           rec.Month,
		"config_snapshot": walkPayload(rec.ConfigSnapshot),
		"input_summary": map[string]any{
			"total_rows_received":  rec.InputSummary.TotalRowsReceived,
			"rows_in_target_month": rec.InputSummary.RowsInTargetMonth,
			"timezone":             rec.InputSummary.Timezone,
		},
		"metrics": map[string]any{
			"month":                 rec.Metrics.Month,
			"gross_w2":              validate.Money(rec.Metrics.GrossW2),
			"irwe_total_documented": validate.Money(rec.Metrics.IRWETotal),
			"countable_earnings":    validate.Money(rec.Metrics.CountableEarnings),
			"dist_total":            validate.Money(rec.Metrics.DistTotal),
			"sga_limit_blind":       validate.Money(rec.Metrics.SGALimitBlind),
			"sga_headroom":          validate.Money(rec.Metrics.SGAHeadroom),
		},
		"flags":  flags,
		"alerts": alerts,
		"explain": map[string]any{
			"month":         rec.Explain.Month,
			"rules_applied": toAnySlice(rec.Explain.RulesApplied),
			"measurements":  walkPayload(rec.Explain.Measurements),
			"conclusions":   toAnySlice(rec.Explain.Conclusions),
			"next_actions":  toAnySlice(rec.Explain.NextActions),
		},
	}
}

// ToJSON renders the canonical JSON form. encoding/json sorts map keys,
// so identical records serialize to identical bytes.
func ToJSON(rec *domain.DecisionRecord) ([]byte, error) {
	data, err := json.MarshalIndent(ToMap(rec), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling decision record: %w", err)
	}
	return data, nil
}

// walkPayload rewrites any decimal values that leaked into a payload as
// fixed two-decimal strings, recursing into nested maps and slices.
func walkPayload(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = walkValue(v)
	}
	return out
}

func walkValue(v any) any {
	switch t := v.(type) {
	case decimal.Decimal:
		return validate.Money(t)
	case *decimal.Decimal:
		if t == nil {
			return nil
		}
		return validate.Money(*t)
	case map[string]any:
		return walkPayload(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = walkValue(e)
		}
		return out
	default:
		return v
	}
}

func toAnySlice(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
