package model

import (
	"github.com/shopspring/decimal"
)

// CheckStatus is the outcome of one verification check.
type CheckStatus string

const (
	StatusPass CheckStatus = "pass"
	StatusFail CheckStatus = "fail"
)

// Severity grades a failing check by variance magnitude.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// ComponentLine is one component row retained in a casting result for
// traceability.
type ComponentLine struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// CastingResult is the outcome of verifying one vertical casting relationship.
// ComponentMismatch records that the extracted label array did not line up with
// the amounts and labels were padded or truncated.
type CastingResult struct {
	Section           string          `json:"section"`
	Description       string          `json:"description,omitempty"`
	TotalLabel        string          `json:"totalLabel"`
	Components        []ComponentLine `json:"components"`
	CalculatedTotal   decimal.Decimal `json:"calculatedTotal"`
	StatedTotal       decimal.Decimal `json:"statedTotal"`
	Variance          decimal.Decimal `json:"variance"`
	VariancePercent   decimal.Decimal `json:"variancePercent"`
	Status            CheckStatus     `json:"status"`
	ComponentMismatch bool            `json:"componentMismatch,omitempty"`
}

// BalanceResult is the outcome of the Assets = Liabilities + Equity check.
type BalanceResult struct {
	TotalAssets                     decimal.Decimal `json:"totalAssets"`
	TotalLiabilities                decimal.Decimal `json:"totalLiabilities"`
	TotalEquity                     decimal.Decimal `json:"totalEquity"`
	CalculatedLiabilitiesPlusEquity decimal.Decimal `json:"calculatedLiabilitiesPlusEquity"`
	Variance                        decimal.Decimal `json:"variance"`
	VariancePercent                 decimal.Decimal `json:"variancePercent"`
	Status                          CheckStatus     `json:"status"`
}

// MovementResult is the outcome of verifying one movement schedule.
type MovementResult struct {
	AccountName       string          `json:"accountName"`
	Opening           decimal.Decimal `json:"opening"`
	Additions         []MovementItem  `json:"additions"`
	Deductions        []MovementItem  `json:"deductions"`
	TotalAdditions    decimal.Decimal `json:"totalAdditions"`
	TotalDeductions   decimal.Decimal `json:"totalDeductions"`
	CalculatedClosing decimal.Decimal `json:"calculatedClosing"`
	StatedClosing     decimal.Decimal `json:"statedClosing"`
	Variance          decimal.Decimal `json:"variance"`
	VariancePercent   decimal.Decimal `json:"variancePercent"`
	Status            CheckStatus     `json:"status"`
}

// CrossReferenceResult is the outcome of verifying one note-to-statement tie.
// SignAdjusted means the magnitudes agree and the raw sign difference is
// explained by the expense presentation convention. SignSuspect means the
// magnitudes agree but no convention flag was extracted, so the mismatch needs
// a human look rather than an arithmetic correction.
type CrossReferenceResult struct {
	NoteRef           string          `json:"noteRef"`
	NoteDescription   string          `json:"noteDescription"`
	StatementLineItem string          `json:"statementLineItem"`
	NoteTotal         decimal.Decimal `json:"noteTotal"`
	StatementAmount   decimal.Decimal `json:"statementAmount"`
	Variance          decimal.Decimal `json:"variance"`
	VariancePercent   decimal.Decimal `json:"variancePercent"`
	Status            CheckStatus     `json:"status"`
	SignAdjusted      bool            `json:"signAdjusted,omitempty"`
	SignSuspect       bool            `json:"signSuspect,omitempty"`
}

// ExceptionType is the closed set of exception classifications.
type ExceptionType string

const (
	ExceptionCasting        ExceptionType = "Casting Error"
	ExceptionBalanceSheet   ExceptionType = "Balance Sheet Imbalance"
	ExceptionMovement       ExceptionType = "Movement Reconciliation Error"
	ExceptionCrossReference ExceptionType = "Cross Reference Mismatch"
	ExceptionHumanReview    ExceptionType = "Requires Human Review"
)

// Exception is one reportable finding synthesized from a failing check.
// Description embeds the stated and calculated amounts and their difference so
// the report reads standalone.
type Exception struct {
	ID               int             `json:"id"`
	Type             ExceptionType   `json:"type"`
	Location         string          `json:"location"`
	Description      string          `json:"description"`
	StatedAmount     decimal.Decimal `json:"statedAmount"`
	CalculatedAmount decimal.Decimal `json:"calculatedAmount"`
	Difference       decimal.Decimal `json:"difference"`
	Severity         Severity        `json:"severity"`
	Recommendation   string          `json:"recommendation"`
}

// KPI aggregates check counts across one verification run.
type KPI struct {
	TotalChecks     int `json:"totalChecks"`
	Passed          int `json:"passed"`
	Failed          int `json:"failed"`
	PassRate        int `json:"passRate"`
	ExceptionsFound int `json:"exceptionsFound"`
	HighSeverity    int `json:"highSeverity"`
	MediumSeverity  int `json:"mediumSeverity"`
	LowSeverity     int `json:"lowSeverity"`
}

// ConclusionItem is one prioritized line in the audit conclusion.
type ConclusionItem struct {
	Priority    Severity `json:"priority"`
	Note        string   `json:"note"`
	Description string   `json:"description"`
}

// VerificationResult is the complete output of one engine run. Results are
// created fresh each run and never mutated afterwards.
type VerificationResult struct {
	CompanyName           string                 `json:"companyName"`
	FinancialYearEnd      string                 `json:"financialYearEnd"`
	Currency              string                 `json:"currency"`
	CastingResults        []CastingResult        `json:"castingResults"`
	BalanceResult         *BalanceResult         `json:"balanceResult,omitempty"`
	MovementResults       []MovementResult       `json:"movementResults"`
	CrossReferenceResults []CrossReferenceResult `json:"crossReferenceResults"`
	Exceptions            []Exception            `json:"exceptions"`
	KPI                   KPI                    `json:"kpi"`
	ConclusionSummary     string                 `json:"conclusionSummary"`
	ConclusionItems       []ConclusionItem       `json:"conclusionItems"`
	ConclusionNote        string                 `json:"conclusionNote"`
	Warnings              []string               `json:"warnings,omitempty"`
}
