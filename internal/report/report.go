// Package report adapts a VerificationResult into the flat dashboard shape
// consumed by external renderers. Monetary fields are pre-formatted currency
// strings; VarianceAmount fields stay raw numbers for sorting and testing.
package report

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tickmark-dev/tickmark/internal/amount"
	"github.com/tickmark-dev/tickmark/internal/model"
)

// KPI is the dashboard headline block.
type KPI struct {
	TestsPassed      int    `json:"testsPassed"`
	TestsFailed      int    `json:"testsFailed"`
	TotalTests       int    `json:"totalTests"`
	ExceptionsFound  int    `json:"exceptionsFound"`
	HighSeverity     int    `json:"highSeverity"`
	MediumSeverity   int    `json:"mediumSeverity"`
	LowSeverity      int    `json:"lowSeverity"`
	PassRate         int    `json:"passRate"`
	HorizontalChecks string `json:"horizontalChecks"` // "passed/total" movements
}

// NamedValue is one formatted line in a breakdown table.
type NamedValue struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// VerticalCasting is one row of the vertical casting table.
type VerticalCasting struct {
	Section        string          `json:"section"`
	Description    string          `json:"description,omitempty"`
	Components     []NamedValue    `json:"components"`
	Calculated     string          `json:"calculated"`
	Stated         string          `json:"stated"`
	Variance       string          `json:"variance"`
	VarianceAmount float64         `json:"varianceAmount"`
	Status         string          `json:"status"`
}

// HorizontalCasting is one row of the movement table.
type HorizontalCasting struct {
	Account           string          `json:"account"`
	Opening           string          `json:"opening"`
	Additions         []NamedValue    `json:"additions"`
	Deductions        []NamedValue    `json:"deductions"`
	CalculatedClosing string          `json:"calculatedClosing"`
	StatedClosing     string          `json:"statedClosing"`
	Variance          string          `json:"variance"`
	VarianceAmount    float64         `json:"varianceAmount"`
	Status            string          `json:"status"`
}

// CrossReferenceCheck is one row of the note-to-statement table.
type CrossReferenceCheck struct {
	NoteRef         string          `json:"noteRef"`
	NoteDescription string          `json:"noteDescription"`
	LineItem        string          `json:"lineItem"`
	PerNote         string          `json:"perNote"`
	PerStatement    string          `json:"perStatement"`
	Variance        string          `json:"variance"`
	VarianceAmount  float64         `json:"varianceAmount"`
	Status          string          `json:"status"`
}

// Exception is one row of the exceptions table.
type Exception struct {
	ID             int    `json:"id"`
	Type           string `json:"type"`
	Location       string `json:"location"`
	Description    string `json:"description"`
	PerStatement   string `json:"perStatement"`
	PerCalculation string `json:"perCalculation"`
	Difference     string `json:"difference"`
	Severity       string `json:"severity"`
	Recommendation string `json:"recommendation"`
}

// ConclusionItem is one prioritized conclusion line.
type ConclusionItem struct {
	Priority    string `json:"priority"`
	Note        string `json:"note"`
	Description string `json:"description"`
}

// Report is the complete dashboard payload.
type Report struct {
	CompanyName          string                `json:"companyName"`
	FinancialYearEnd     string                `json:"financialYearEnd"`
	Currency             string                `json:"currency"`
	KPI                  KPI                   `json:"kpi"`
	VerticalCasting      []VerticalCasting     `json:"verticalCasting"`
	HorizontalCasting    []HorizontalCasting   `json:"horizontalCasting"`
	CrossReferenceChecks []CrossReferenceCheck `json:"crossReferenceChecks"`
	Exceptions           []Exception           `json:"exceptions"`
	ConclusionSummary    string                `json:"conclusionSummary"`
	ConclusionItems      []ConclusionItem      `json:"conclusionItems"`
	ConclusionNote       string                `json:"conclusionNote"`
	Warnings             []string              `json:"warnings,omitempty"`
}

// Build maps a VerificationResult into the dashboard shape.
func Build(res model.VerificationResult) Report {
	symbol := res.Currency
	f := func(d decimal.Decimal) string { return amount.Format(symbol, d) }

	rep := Report{
		CompanyName:       res.CompanyName,
		FinancialYearEnd:  res.FinancialYearEnd,
		Currency:          res.Currency,
		ConclusionSummary: res.ConclusionSummary,
		ConclusionNote:    res.ConclusionNote,
		Warnings:          res.Warnings,
	}

	movementsPassed := 0
	for _, m := range res.MovementResults {
		if m.Status == model.StatusPass {
			movementsPassed++
		}
	}
	rep.KPI = KPI{
		TestsPassed:      res.KPI.Passed,
		TestsFailed:      res.KPI.Failed,
		TotalTests:       res.KPI.TotalChecks,
		ExceptionsFound:  res.KPI.ExceptionsFound,
		HighSeverity:     res.KPI.HighSeverity,
		MediumSeverity:   res.KPI.MediumSeverity,
		LowSeverity:      res.KPI.LowSeverity,
		PassRate:         res.KPI.PassRate,
		HorizontalChecks: fmt.Sprintf("%d/%d", movementsPassed, len(res.MovementResults)),
	}

	rep.VerticalCasting = make([]VerticalCasting, len(res.CastingResults))
	for i, c := range res.CastingResults {
		components := make([]NamedValue, len(c.Components))
		for j, comp := range c.Components {
			components[j] = NamedValue{Name: comp.Label, Value: f(comp.Amount)}
		}
		rep.VerticalCasting[i] = VerticalCasting{
			Section:        c.Section,
			Description:    c.Description,
			Components:     components,
			Calculated:     f(c.CalculatedTotal),
			Stated:         f(c.StatedTotal),
			Variance:       f(c.Variance),
			VarianceAmount: c.Variance.InexactFloat64(),
			Status:         string(c.Status),
		}
	}

	rep.HorizontalCasting = make([]HorizontalCasting, len(res.MovementResults))
	for i, m := range res.MovementResults {
		rep.HorizontalCasting[i] = HorizontalCasting{
			Account:           m.AccountName,
			Opening:           f(m.Opening),
			Additions:         namedValues(symbol, m.Additions),
			Deductions:        namedValues(symbol, m.Deductions),
			CalculatedClosing: f(m.CalculatedClosing),
			StatedClosing:     f(m.StatedClosing),
			Variance:          f(m.Variance),
			VarianceAmount:    m.Variance.InexactFloat64(),
			Status:            string(m.Status),
		}
	}

	rep.CrossReferenceChecks = make([]CrossReferenceCheck, len(res.CrossReferenceResults))
	for i, x := range res.CrossReferenceResults {
		rep.CrossReferenceChecks[i] = CrossReferenceCheck{
			NoteRef:         x.NoteRef,
			NoteDescription: x.NoteDescription,
			LineItem:        x.StatementLineItem,
			PerNote:         f(x.NoteTotal),
			PerStatement:    f(x.StatementAmount),
			Variance:        f(x.Variance),
			VarianceAmount:  x.Variance.InexactFloat64(),
			Status:          string(x.Status),
		}
	}

	rep.Exceptions = make([]Exception, len(res.Exceptions))
	for i, e := range res.Exceptions {
		rep.Exceptions[i] = Exception{
			ID:             e.ID,
			Type:           string(e.Type),
			Location:       e.Location,
			Description:    e.Description,
			PerStatement:   f(e.StatedAmount),
			PerCalculation: f(e.CalculatedAmount),
			Difference:     f(e.Difference),
			Severity:       string(e.Severity),
			Recommendation: e.Recommendation,
		}
	}

	rep.ConclusionItems = make([]ConclusionItem, len(res.ConclusionItems))
	for i, it := range res.ConclusionItems {
		rep.ConclusionItems[i] = ConclusionItem{
			Priority:    string(it.Priority),
			Note:        it.Note,
			Description: it.Description,
		}
	}

	return rep
}

func namedValues(symbol string, items []model.MovementItem) []NamedValue {
	out := make([]NamedValue, len(items))
	for i, it := range items {
		out[i] = NamedValue{Name: it.Description, Value: amount.Format(symbol, it.Amount)}
	}
	return out
}
