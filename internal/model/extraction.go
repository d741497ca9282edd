package model

import (
	"github.com/shopspring/decimal"
)

// StatementType identifies a primary financial statement.
type StatementType string

const (
	StatementSOFP StatementType = "SOFP" // Statement of Financial Position
	StatementSOCI StatementType = "SOCI" // Statement of Comprehensive Income
	StatementSOCE StatementType = "SOCE" // Statement of Changes in Equity
	StatementSCF  StatementType = "SCF"  // Statement of Cash Flows
)

// AmountPair holds a current-year figure and the optional prior-year comparative.
type AmountPair struct {
	Current decimal.Decimal  `json:"current"`
	Prior   *decimal.Decimal `json:"prior,omitempty"`
}

// Statement is one extracted primary statement. The three totals are only
// populated for a SOFP; any of them may be absent when extraction could not
// read the figure.
type Statement struct {
	Type             StatementType `json:"type"`
	Title            string        `json:"title,omitempty"`
	TotalAssets      *AmountPair   `json:"totalAssets,omitempty"`
	TotalLiabilities *AmountPair   `json:"totalLiabilities,omitempty"`
	TotalEquity      *AmountPair   `json:"totalEquity,omitempty"`
}

// CastingRelationship declares that a list of component amounts should sum to
// a stated total (vertical casting). ComponentLabels and ComponentAmounts are
// parallel arrays; labels are display-only and the amounts drive arithmetic.
type CastingRelationship struct {
	Section          string            `json:"section"`
	Description      string            `json:"description,omitempty"`
	TotalLabel       string            `json:"totalLabel"`
	TotalAmount      decimal.Decimal   `json:"totalAmount"`
	ComponentLabels  []string          `json:"componentLabels"`
	ComponentAmounts []decimal.Decimal `json:"componentAmounts"`
}

// MovementItem is one addition or deduction line in a movement schedule.
// Deduction amounts are stored as positive magnitudes to be subtracted.
type MovementItem struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// Movement declares Opening + Additions - Deductions = StatedClosing for one
// account (horizontal casting).
type Movement struct {
	AccountName   string          `json:"accountName"`
	Opening       decimal.Decimal `json:"opening"`
	Additions     []MovementItem  `json:"additions"`
	Deductions    []MovementItem  `json:"deductions"`
	StatedClosing decimal.Decimal `json:"statedClosing"`
}

// CrossReference ties a note-disclosed total to a statement line amount.
// IsExpenseOrDeduction marks items that notes present positive but the
// primary statement presents bracketed, so the comparison can be sign-aware.
type CrossReference struct {
	NoteRef              string          `json:"noteRef"`
	NoteDescription      string          `json:"noteDescription"`
	NoteTotal            decimal.Decimal `json:"noteTotal"`
	StatementType        StatementType   `json:"statementType"`
	StatementLineItem    string          `json:"statementLineItem"`
	StatementAmount      decimal.Decimal `json:"statementAmount"`
	IsExpenseOrDeduction bool            `json:"isExpenseOrDeduction,omitempty"`
	MappingConfidence    float64         `json:"mappingConfidence,omitempty"`
	MappingType          string          `json:"mappingType,omitempty"`
}

// ExtractionResult is the structured dataset an extraction producer emits for
// one document. Amounts are sign-normalized (bracketed figures already
// negative) and descaled to base currency units. Warnings are extraction-time
// uncertainties passed through to the final report unadjudicated.
type ExtractionResult struct {
	CompanyName          string                `json:"companyName"`
	FinancialYearEnd     string                `json:"financialYearEnd"`
	Currency             string                `json:"currency"`
	Statements           []Statement           `json:"statements"`
	CastingRelationships []CastingRelationship `json:"castingRelationships"`
	Movements            []Movement            `json:"movements"`
	CrossReferences      []CrossReference      `json:"crossReferences"`
	Warnings             []string              `json:"warnings,omitempty"`
}

// SOFP returns the first Statement of Financial Position, or nil.
func (e *ExtractionResult) SOFP() *Statement {
	for i := range e.Statements {
		if e.Statements[i].Type == StatementSOFP {
			return &e.Statements[i]
		}
	}
	return nil
}
