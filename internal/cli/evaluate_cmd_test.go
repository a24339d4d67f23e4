package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testLedger = "Date,Type,Amount,Description,Category,Actor,HumanInterventionMinutes,EvidenceLink,Notes\n" +
	"2025-03-01,W2,3000.00,March payroll,Payroll,PHOENIX,0,,\n" +
	"2025-04-01,W2,100.00,April payroll,Payroll,PHOENIX,0,,\n"

const testConfig = "sga_limit_blind: \"1550.00\"\n"

func newTestApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	return &App{
		Out:           &out,
		DefaultDBPath: filepath.Join(t.TempDir(), "phoenix.db"),
		IsInteractive: func() bool { return false },
	}, &out
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestEvaluateCmd_JSON(t *testing.T) {
	app, out := newTestApp(t)
	rows := writeFile(t, "ledger.csv", testLedger)
	cfg := writeFile(t, "phoenix.yaml", testConfig)

	root := NewRootCmd(app)
	root.SetArgs([]string{"evaluate", "--rows", rows, "--config", cfg, "--month", "2025-03", "--json"})
	require.NoError(t, root.Execute())

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	metrics := decoded["metrics"].(map[string]any)
	assert.Equal(t, "3000.00", metrics["countable_earnings"])

	summary := decoded["input_summary"].(map[string]any)
	assert.Equal(t, float64(2), summary["total_rows_received"])
	assert.Equal(t, float64(1), summary["rows_in_target_month"])
}

func TestEvaluateCmd_MonthRequiredWithoutTerminal(t *testing.T) {
	app, _ := newTestApp(t)
	rows := writeFile(t, "ledger.csv", testLedger)
	cfg := writeFile(t, "phoenix.yaml", testConfig)

	root := NewRootCmd(app)
	root.SetArgs([]string{"evaluate", "--rows", rows, "--config", cfg})
	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--month")
}

func TestEvaluateCmd_SaveThenHistory(t *testing.T) {
	app, out := newTestApp(t)
	rows := writeFile(t, "ledger.csv", testLedger)
	cfg := writeFile(t, "phoenix.yaml", testConfig)

	root := NewRootCmd(app)
	root.SetArgs([]string{"evaluate", "--rows", rows, "--config", cfg, "--month", "2025-03", "--save", "--json"})
	require.NoError(t, root.Execute())

	out.Reset()
	root = NewRootCmd(app)
	root.SetArgs([]string{"history"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "2025-03")

	out.Reset()
	root = NewRootCmd(app)
	root.SetArgs([]string{"history", "--month", "2025-03"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "ALERT_CRITICAL_SGA_EXCEEDED")
}

func TestEvaluateCmd_ValidationFailureSurfacesField(t *testing.T) {
	app, _ := newTestApp(t)
	badLedger := "Date,Type,Amount,Description,Category,Actor,HumanInterventionMinutes,EvidenceLink,Notes\n" +
		"2025-03-05,IRWE,200.00,Screen reader,Equipment,OWNER,0,,\n"
	rows := writeFile(t, "ledger.csv", badLedger)
	cfg := writeFile(t, "phoenix.yaml", testConfig)

	root := NewRootCmd(app)
	root.SetArgs([]string{"evaluate", "--rows", rows, "--config", cfg, "--month", "2025-03"})
	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EvidenceLink")
}
