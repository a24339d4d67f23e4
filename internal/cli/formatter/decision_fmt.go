package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/phoenix/internal/domain"
	"github.com/alexanderramin/phoenix/internal/validate"
)

// FormatDecision renders a decision record as a terminal report for the
// beneficiary or a reviewing caseworker. The rendered form is display
// only; the archived JSON is the canonical record.
func FormatDecision(rec *domain.DecisionRecord) string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render(fmt.Sprintf("SGA Decision — %s", rec.Month)))
	b.WriteString("\n\n")

	b.WriteString(RenderTable(
		[]string{"Metric", "Amount"},
		[][]string{
			{"Gross W-2", "$" + validate.Money(rec.Metrics.GrossW2)},
			{"IRWE documented", "$" + validate.Money(rec.Metrics.IRWETotal)},
			{"Countable earnings", "$" + validate.Money(rec.Metrics.CountableEarnings)},
			{"Distributions (tracked)", "$" + validate.Money(rec.Metrics.DistTotal)},
			{"SGA limit (blind)", "$" + validate.Money(rec.Metrics.SGALimitBlind)},
			{"Headroom", headroomCell(rec)},
		},
	))
	b.WriteString("\n")

	if len(rec.Alerts) > 0 {
		b.WriteString(StyleBold.Render("Alerts"))
		b.WriteString("\n")
		for _, a := range rec.Alerts {
			b.WriteString(fmt.Sprintf("  %s  %s\n", SeverityBadge(a.Severity), a.Message))
		}
		b.WriteString("\n")
	}

	if len(rec.Flags) > 0 {
		b.WriteString(StyleBold.Render("Flags"))
		b.WriteString("\n")
		for _, f := range rec.Flags {
			b.WriteString(fmt.Sprintf("  %s  %s\n", SeverityBadge(f.Severity), f.Message))
			if desc, ok := f.Payload["description"].(string); ok && desc != "" {
				b.WriteString(StyleDim.Render(fmt.Sprintf("      %s (%v min)\n",
					desc, f.Payload["human_intervention_minutes"])))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(StyleBold.Render("Conclusions"))
	b.WriteString("\n")
	for _, c := range rec.Explain.Conclusions {
		b.WriteString("  • " + c + "\n")
	}
	b.WriteString("\n")

	b.WriteString(StyleBold.Render("Next actions"))
	b.WriteString("\n")
	for _, a := range rec.Explain.NextActions {
		b.WriteString("  → " + a + "\n")
	}

	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("rows: %d received, %d in %s · timezone: %s\n",
		rec.InputSummary.TotalRowsReceived,
		rec.InputSummary.RowsInTargetMonth,
		rec.Month,
		rec.InputSummary.Timezone)))

	return b.String()
}

func headroomCell(rec *domain.DecisionRecord) string {
	s := "$" + validate.Money(rec.Metrics.SGAHeadroom)
	if rec.Metrics.SGAHeadroom.IsNegative() {
		return StyleRed.Render(s)
	}
	return StyleGreen.Render(s)
}

// FormatHistory renders archived decisions as a table.
func FormatHistory(rows [][]string) string {
	if len(rows) == 0 {
		return StyleDim.Render("No archived decisions.") + "\n"
	}
	return RenderTable([]string{"Month", "Archived At", "ID"}, rows)
}
