package cli

import (
	"github.com/charmbracelet/huh"

	"github.com/alexanderramin/phoenix/internal/validate"
)

func validateMonthInput(s string) error {
	_, _, err := validate.ValidateMonthString(s)
	return err
}

func validateOptionalDecimal(s string) error {
	if s == "" {
		return nil
	}
	_, err := validate.EnsureDecimal(s)
	return err
}

// runMonthForm collects the target month and optional YTD figure when the
// command is run interactively without --month.
func runMonthForm(month, annualYTD string) (string, string, error) {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Target month (YYYY-MM)").
				Placeholder("2025-03").
				Value(&month).
				Validate(validateMonthInput),
			huh.NewInput().
				Title("Annual W-2 YTD (blank to skip advisory check)").
				Placeholder("45000.00").
				Value(&annualYTD).
				Validate(validateOptionalDecimal),
		),
	).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return "", "", err
	}
	return month, annualYTD, nil
}
