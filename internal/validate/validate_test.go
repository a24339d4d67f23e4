package validate

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/phoenix/internal/domain"
	"github.com/alexanderramin/phoenix/internal/testutil"
)

func TestQuantizeMoney(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1.005", "1.01"},
		{"-1.005", "-1.01"},
		{"2.675", "2.68"},
		{"1550", "1550.00"},
		{"0.004", "0.00"},
		{"-0.005", "-0.01"},
		{"123.456", "123.46"},
	}
	for _, tc := range cases {
		d, err := decimal.NewFromString(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, Money(QuantizeMoney(d)), "input %s", tc.in)
	}
}

func TestEnsureDecimal(t *testing.T) {
	d, err := EnsureDecimal(" 1600.50 ")
	require.NoError(t, err)
	assert.Equal(t, "1600.50", Money(d))

	_, err = EnsureDecimal("not-a-number")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = EnsureDecimal("")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestValidateRow_Valid(t *testing.T) {
	assert.NoError(t, ValidateRow(testutil.Row("2025-03-01", domain.TypeW2, "1000.00")))
	assert.NoError(t, ValidateRow(testutil.Row("2025-03-01", domain.TypeIRWE, "200.00")))
}

func TestValidateRow_UnsetDate(t *testing.T) {
	row := testutil.Row("2025-03-01", domain.TypeW2, "1000.00")
	row.Date = time.Time{}
	assert.ErrorIs(t, ValidateRow(row), ErrInvalidDate)
}

func TestValidateRow_InvalidEnums(t *testing.T) {
	row := testutil.Row("2025-03-01", domain.TypeW2, "1000.00")
	row.Type = domain.LedgerType("1099")
	assert.ErrorIs(t, ValidateRow(row), ErrInvalidEnum)

	row = testutil.Row("2025-03-01", domain.TypeW2, "1000.00")
	row.Actor = domain.Actor("ACCOUNTANT")
	assert.ErrorIs(t, ValidateRow(row), ErrInvalidEnum)
}

func TestValidateRow_NegativeMinutes(t *testing.T) {
	row := testutil.Row("2025-03-01", domain.TypeW2, "1000.00")
	row.HumanInterventionMinutes = -5
	assert.ErrorIs(t, ValidateRow(row), ErrInvalidMinutes)
}

func TestValidateRow_EvidenceHardGate(t *testing.T) {
	row := testutil.Row("2025-03-01", domain.TypeIRWE, "200.00")
	row.EvidenceLink = ""
	assert.ErrorIs(t, ValidateRow(row), ErrMissingEvidence)

	row.EvidenceLink = "   \t "
	assert.ErrorIs(t, ValidateRow(row), ErrMissingEvidence)

	// Non-IRWE rows never require evidence.
	exp := testutil.Row("2025-03-01", domain.TypeExp, "50.00")
	exp.EvidenceLink = ""
	assert.NoError(t, ValidateRow(exp))
}

func TestValidateRows_StopsAtFirstFailure(t *testing.T) {
	bad := testutil.Row("2025-03-02", domain.TypeIRWE, "200.00")
	bad.EvidenceLink = ""
	rows := []domain.LedgerRow{
		testutil.Row("2025-03-01", domain.TypeW2, "1000.00"),
		bad,
		testutil.Row("2025-03-03", domain.TypeW2, "500.00"),
	}
	out, err := ValidateRows(rows)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, ErrMissingEvidence)
	assert.Contains(t, err.Error(), "row 1")
}

func TestValidateRows_ReturnsRowsUnchanged(t *testing.T) {
	rows := []domain.LedgerRow{
		testutil.Row("2025-03-01", domain.TypeW2, "1000.00"),
		testutil.Row("2025-03-02", domain.TypeDist, "250.00"),
	}
	out, err := ValidateRows(rows)
	require.NoError(t, err)
	assert.Equal(t, rows, out)
}

func TestValidateMonthString(t *testing.T) {
	y, m, err := ValidateMonthString("2025-03")
	require.NoError(t, err)
	assert.Equal(t, 2025, y)
	assert.Equal(t, 3, m)

	for _, bad := range []string{"2025-3", "202503", "2025/03", "2025-003", "abcd-ef", ""} {
		_, _, err := ValidateMonthString(bad)
		assert.ErrorIs(t, err, ErrInvalidMonthFormat, "input %q", bad)
	}

	for _, bad := range []string{"2025-00", "2025-13", "1899-12", "3001-01"} {
		_, _, err := ValidateMonthString(bad)
		assert.ErrorIs(t, err, ErrInvalidMonthRange, "input %q", bad)
	}

	// Bounds are inclusive.
	_, _, err = ValidateMonthString("1900-01")
	assert.NoError(t, err)
	_, _, err = ValidateMonthString("3000-12")
	assert.NoError(t, err)
}
