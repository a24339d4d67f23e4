package engine

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/phoenix/internal/domain"
	"github.com/alexanderramin/phoenix/internal/testutil"
	"github.com/alexanderramin/phoenix/internal/validate"
)

type captureObserver struct {
	events []EvaluationEvent
}

func (c *captureObserver) ObserveEvaluation(e EvaluationEvent) {
	c.events = append(c.events, e)
}

func TestObserve_ReportsOneEventPerRun(t *testing.T) {
	obs := &captureObserver{}

	rec, err := Observe(obs, Input{
		Rows:        []domain.LedgerRow{testutil.Row("2025-03-01", domain.TypeW2, "3000.00")},
		Config:      testutil.Config("1550.00"),
		TargetMonth: "2025-03",
	})
	require.NoError(t, err)
	require.NotNil(t, rec)

	require.Len(t, obs.events, 1)
	event := obs.events[0]
	assert.Equal(t, "2025-03", event.Month)
	assert.Equal(t, 1, event.RowsTotal)
	assert.Equal(t, 1, event.RowsInMonth)
	assert.Equal(t, 1, event.AlertCount)
	assert.NoError(t, event.Err)
}

func TestObserve_ReportsFailures(t *testing.T) {
	obs := &captureObserver{}

	rec, err := Observe(obs, Input{
		Config:      testutil.Config("1550.00"),
		TargetMonth: "bogus",
	})
	assert.Nil(t, rec)
	assert.ErrorIs(t, err, validate.ErrInvalidMonthFormat)

	require.Len(t, obs.events, 1)
	assert.ErrorIs(t, obs.events[0].Err, validate.ErrInvalidMonthFormat)
}

func TestLogObserver_WritesStructuredLine(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogObserver(&buf)

	_, err := Observe(obs, Input{
		Rows:        []domain.LedgerRow{testutil.Row("2025-03-01", domain.TypeW2, "100.00")},
		Config:      testutil.Config("1550.00"),
		TargetMonth: "2025-03",
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "month=2025-03")
	assert.Contains(t, out, "rows_total=1")
}

func TestNewLogObserver_NilWriterIsNoop(t *testing.T) {
	assert.IsType(t, NoopObserver{}, NewLogObserver(nil))
}
