package domain

import "github.com/shopspring/decimal"

// DefaultTimezone is recorded in decision records when no timezone is
// configured. It is audit metadata only and never applied to date math.
const DefaultTimezone = "America/Denver"

// PhoenixConfig holds the governance-locked rule parameters for one
// evaluation. It is passed by value into the engine and never mutated.
type PhoenixConfig struct {
	// SGALimitBlind is the governance-locked monthly SGA threshold.
	SGALimitBlind decimal.Decimal

	// IRWEEnabled gates whether documented IRWE amounts offset earnings.
	IRWEEnabled bool

	// MinReasonableComp is an advisory-only annual compensation floor.
	// Nil disables the advisory check.
	MinReasonableComp *decimal.Decimal

	// Timezone is carried into decision records for audit context.
	Timezone string
}
