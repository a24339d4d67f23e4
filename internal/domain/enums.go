package domain

type LedgerType string

const (
	TypeW2   LedgerType = "W2"
	TypeIRWE LedgerType = "IRWE"
	TypeDist LedgerType = "DIST"
	TypeExp  LedgerType = "EXP"
)

type Actor string

const (
	ActorPhoenix     Actor = "PHOENIX"
	ActorOwner       Actor = "OWNER"
	ActorNotaryAgent Actor = "NOTARY_AGENT"
)

type Severity string

const (
	SeverityInfo      Severity = "INFO"
	SeverityWarn      Severity = "WARN"
	SeverityCritical  Severity = "CRITICAL"
	SeverityHardError Severity = "HARD_ERROR"
)

type FlagCode string

const (
	FlagWorkActivityReview FlagCode = "FLAG_WORK_ACTIVITY_REVIEW"
)

type AlertCode string

const (
	AlertCriticalSGAExceeded AlertCode = "ALERT_CRITICAL_SGA_EXCEEDED"
	WarnIRSAuditRisk         AlertCode = "WARN_IRS_AUDIT_RISK"
)

// ValidLedgerTypes is the canonical set of accepted ledger type strings.
var ValidLedgerTypes = map[string]bool{
	"W2": true, "IRWE": true, "DIST": true, "EXP": true,
}

// ValidActors is the canonical set of accepted actor strings.
var ValidActors = map[string]bool{
	"PHOENIX": true, "OWNER": true, "NOTARY_AGENT": true,
}
