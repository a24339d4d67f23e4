package engine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/alexanderramin/phoenix/internal/domain"
	"github.com/alexanderramin/phoenix/internal/validate"
)

// Input carries everything one evaluation needs. Rows may span any number
// of months; the engine filters to TargetMonth itself.
type Input struct {
	Rows        []domain.LedgerRow
	Config      domain.PhoenixConfig
	TargetMonth string // "YYYY-MM"

	// AnnualW2YTD is the year-to-date W-2 total, used only by the advisory
	// reasonable-compensation check. Nil skips the check.
	AnnualW2YTD *decimal.Decimal
}

// rulesApplied is the fixed, version-stable description of the logic that
// governs every evaluation. The same five strings appear in every decision
// record so reviewers can see which rules were in force.
var rulesApplied = []string{
	"Income classification: W2 counted; DIST not counted toward SGA; Trust transfers are post-income allocations (tracked elsewhere).",
	"IRWE gate: if disabled -> 0; if enabled -> subtract documented IRWE only.",
	"SGA safety: if countable > SGA_LIMIT_BLIND -> ALERT_CRITICAL.",
	"Work activity attribution: OWNER with human_intervention_minutes > 0 -> FLAG_WORK_ACTIVITY_REVIEW.",
	"IRS reasonable compensation is advisory only.",
}

func sumAmounts(rows []domain.LedgerRow) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(validate.QuantizeMoney(r.Amount))
	}
	return validate.QuantizeMoney(total)
}

// EvaluateMonth runs the full monthly compliance evaluation and assembles
// the decision record. It is a pure function of its input: any validation
// failure aborts the whole run with no partial record, and once inputs
// validate no later step can fail.
func EvaluateMonth(in Input) (*domain.DecisionRecord, error) {
	if _, _, err := validate.ValidateMonthString(in.TargetMonth); err != nil {
		return nil, err
	}
	rows, err := validate.ValidateRows(in.Rows)
	if err != nil {
		return nil, err
	}

	var monthRows []domain.LedgerRow
	for _, r := range rows {
		if domain.MonthKey(r.Date) == in.TargetMonth {
			monthRows = append(monthRows, r)
		}
	}

	// EXP rows are validated and counted in row totals but feed no metric.
	var w2Rows, irweRows, distRows []domain.LedgerRow
	for _, r := range monthRows {
		switch r.Type {
		case domain.TypeW2:
			w2Rows = append(w2Rows, r)
		case domain.TypeIRWE:
			irweRows = append(irweRows, r)
		case domain.TypeDist:
			distRows = append(distRows, r)
		}
	}

	grossW2 := sumAmounts(w2Rows)

	irweTotal := validate.QuantizeMoney(decimal.Zero)
	if in.Config.IRWEEnabled {
		irweTotal = sumAmounts(irweRows)
	}

	countable := validate.QuantizeMoney(grossW2.Sub(irweTotal))
	distTotal := sumAmounts(distRows)

	sgaLimit := validate.QuantizeMoney(in.Config.SGALimitBlind)
	headroom := validate.QuantizeMoney(sgaLimit.Sub(countable))

	var flags []domain.Flag
	var alerts []domain.Alert

	for _, r := range monthRows {
		if r.Actor == domain.ActorOwner && r.HumanInterventionMinutes > 0 {
			flags = append(flags, domain.Flag{
				Code:     domain.FlagWorkActivityReview,
				Severity: domain.SeverityInfo,
				Message:  "Owner-attributed entry with human intervention minutes > 0 (informational review flag).",
				Payload: map[string]any{
					"date":                       r.Date.Format("2006-01-02"),
					"type":                       string(r.Type),
					"amount":                     validate.Money(validate.QuantizeMoney(r.Amount)),
					"description":                r.Description,
					"human_intervention_minutes": r.HumanInterventionMinutes,
				},
			})
		}
	}

	if countable.GreaterThan(sgaLimit) {
		overBy := validate.QuantizeMoney(countable.Sub(sgaLimit))
		alerts = append(alerts, domain.Alert{
			Code:     domain.AlertCriticalSGAExceeded,
			Severity: domain.SeverityCritical,
			Message:  "Countable earnings exceed the blind SGA limit for the month. Human intervention required.",
			Payload: map[string]any{
				"month":              in.TargetMonth,
				"countable_earnings": validate.Money(countable),
				"sga_limit_blind":    validate.Money(sgaLimit),
				"over_by":            validate.Money(overBy),
			},
		})
	}

	if in.Config.MinReasonableComp != nil && in.AnnualW2YTD != nil {
		minRC := validate.QuantizeMoney(*in.Config.MinReasonableComp)
		annualW2 := validate.QuantizeMoney(*in.AnnualW2YTD)
		if annualW2.LessThan(minRC) {
			alerts = append(alerts, domain.Alert{
				Code:     domain.WarnIRSAuditRisk,
				Severity: domain.SeverityWarn,
				Message:  "Annual W-2 appears below minimum reasonable compensation (advisory only).",
				Payload: map[string]any{
					"annual_w2_ytd":       validate.Money(annualW2),
					"min_reasonable_comp": validate.Money(minRC),
					"shortfall":           validate.Money(validate.QuantizeMoney(minRC.Sub(annualW2))),
				},
			})
		}
	}

	metrics := domain.MonthlyMetrics{
		Month:             in.TargetMonth,
		GrossW2:           grossW2,
		IRWETotal:         irweTotal,
		CountableEarnings: countable,
		DistTotal:         distTotal,
		SGALimitBlind:     sgaLimit,
		SGAHeadroom:       headroom,
	}

	irweApplied := "NO"
	if in.Config.IRWEEnabled {
		irweApplied = "YES"
	}
	conclusions := []string{
		fmt.Sprintf("Gross W-2 for %s: $%s", in.TargetMonth, validate.Money(grossW2)),
		fmt.Sprintf("IRWE applied: %s (documented total: $%s)", irweApplied, validate.Money(irweTotal)),
		fmt.Sprintf("Countable earnings for %s: $%s", in.TargetMonth, validate.Money(countable)),
		fmt.Sprintf("Blind SGA limit: $%s (headroom: $%s)", validate.Money(sgaLimit), validate.Money(headroom)),
		fmt.Sprintf("Distributions tracked (not counted toward SGA): $%s", validate.Money(distTotal)),
	}

	var nextActions []string
	if hasAlert(alerts, domain.AlertCriticalSGAExceeded) {
		nextActions = append(nextActions, "Stop and review planned work/income for the month; adjust decisions manually (Phoenix does not change values).")
	}
	if hasAlert(alerts, domain.WarnIRSAuditRisk) {
		nextActions = append(nextActions, "Discuss W-2 reasonable compensation with tax professional (advisory only; does not affect SSDI calculation).")
	}
	if hasFlag(flags, domain.FlagWorkActivityReview) {
		nextActions = append(nextActions, "Maintain narrative notes describing owner intervention/work activity to support SSA explainability if needed.")
	}
	if len(nextActions) == 0 {
		nextActions = []string{"No action required."}
	}

	explain := domain.Explainability{
		Month:        in.TargetMonth,
		RulesApplied: append([]string(nil), rulesApplied...),
		Measurements: map[string]any{
			"gross_w2":              validate.Money(grossW2),
			"irwe_enabled":          in.Config.IRWEEnabled,
			"irwe_total_documented": validate.Money(irweTotal),
			"countable_earnings":    validate.Money(countable),
			"sga_limit_blind":       validate.Money(sgaLimit),
			"sga_headroom":          validate.Money(headroom),
			"dist_total_tracked":    validate.Money(distTotal),
		},
		Conclusions: conclusions,
		NextActions: nextActions,
	}

	return &domain.DecisionRecord{
		Month:          in.TargetMonth,
		ConfigSnapshot: configSnapshot(in.Config),
		InputSummary: domain.InputSummary{
			TotalRowsReceived: len(rows),
			RowsInTargetMonth: len(monthRows),
			Timezone:          in.Config.Timezone,
		},
		Metrics: metrics,
		Flags:   flags,
		Alerts:  alerts,
		Explain: explain,
	}, nil
}

// configSnapshot captures the full configuration in the decision record so
// a reviewer can reproduce the run.
func configSnapshot(cfg domain.PhoenixConfig) map[string]any {
	snap := map[string]any{
		"sga_limit_blind":     validate.Money(validate.QuantizeMoney(cfg.SGALimitBlind)),
		"irwe_enabled":        cfg.IRWEEnabled,
		"min_reasonable_comp": nil,
		"timezone":            cfg.Timezone,
	}
	if cfg.MinReasonableComp != nil {
		snap["min_reasonable_comp"] = validate.Money(validate.QuantizeMoney(*cfg.MinReasonableComp))
	}
	return snap
}

func hasAlert(alerts []domain.Alert, code domain.AlertCode) bool {
	for _, a := range alerts {
		if a.Code == code {
			return true
		}
	}
	return false
}

func hasFlag(flags []domain.Flag, code domain.FlagCode) bool {
	for _, f := range flags {
		if f.Code == code {
			return true
		}
	}
	return false
}
