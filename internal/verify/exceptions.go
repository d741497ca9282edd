package verify

import (
	"fmt"

	"github.com/tickmark-dev/tickmark/internal/amount"
	"github.com/tickmark-dev/tickmark/internal/model"
)

// recommendations is the fixed remediation text per exception type.
var recommendations = map[model.ExceptionType]string{
	model.ExceptionCasting:        "Re-add the component figures and correct either the stated subtotal or the misstated component.",
	model.ExceptionBalanceSheet:   "Investigate the statement of financial position: total assets must equal total liabilities plus total equity.",
	model.ExceptionMovement:       "Reconcile the movement schedule: opening balance plus additions less deductions must equal the stated closing balance.",
	model.ExceptionCrossReference: "Agree the note disclosure to the statement line item and correct whichever figure is misstated.",
	model.ExceptionHumanReview:    "Review the underlying disclosure manually; the discrepancy could not be resolved arithmetically.",
}

// synthesizeExceptions converts every non-passing result into a structured
// exception. Ids form one global 1-based sequence in a fixed order (castings,
// balance sheet, movements, cross-references) so identical input always
// yields identical output.
func (v *Verifier) synthesizeExceptions(res *model.VerificationResult) []model.Exception {
	symbol := res.Currency
	exceptions := []model.Exception{}
	nextID := 0

	for _, c := range res.CastingResults {
		if c.Status == model.StatusPass {
			continue
		}
		typ := model.ExceptionCasting
		if c.ComponentMismatch {
			typ = model.ExceptionHumanReview
		}
		nextID++
		exceptions = append(exceptions, model.Exception{
			ID:       nextID,
			Type:     typ,
			Location: fmt.Sprintf("%s / %s", c.Section, c.TotalLabel),
			Description: fmt.Sprintf("%s is stated as %s but its components cast to %s, a difference of %s.",
				c.TotalLabel,
				amount.Format(symbol, c.StatedTotal),
				amount.Format(symbol, c.CalculatedTotal),
				amount.Format(symbol, c.Variance)),
			StatedAmount:     c.StatedTotal,
			CalculatedAmount: c.CalculatedTotal,
			Difference:       c.Variance,
			Severity:         v.thresholds.Classify(c.Variance),
			Recommendation:   recommendations[typ],
		})
	}

	if b := res.BalanceResult; b != nil && b.Status != model.StatusPass {
		nextID++
		exceptions = append(exceptions, model.Exception{
			ID:       nextID,
			Type:     model.ExceptionBalanceSheet,
			Location: "Statement of Financial Position",
			Description: fmt.Sprintf("Total assets of %s do not equal liabilities plus equity of %s, a difference of %s.",
				amount.Format(symbol, b.TotalAssets),
				amount.Format(symbol, b.CalculatedLiabilitiesPlusEquity),
				amount.Format(symbol, b.Variance)),
			StatedAmount:     b.TotalAssets,
			CalculatedAmount: b.CalculatedLiabilitiesPlusEquity,
			Difference:       b.Variance,
			// A balance-sheet imbalance is categorically material.
			Severity:       model.SeverityHigh,
			Recommendation: recommendations[model.ExceptionBalanceSheet],
		})
	}

	for _, m := range res.MovementResults {
		if m.Status == model.StatusPass {
			continue
		}
		nextID++
		exceptions = append(exceptions, model.Exception{
			ID:       nextID,
			Type:     model.ExceptionMovement,
			Location: m.AccountName,
			Description: fmt.Sprintf("%s closes at a stated %s but the movements reconcile to %s, a difference of %s.",
				m.AccountName,
				amount.Format(symbol, m.StatedClosing),
				amount.Format(symbol, m.CalculatedClosing),
				amount.Format(symbol, m.Variance)),
			StatedAmount:     m.StatedClosing,
			CalculatedAmount: m.CalculatedClosing,
			Difference:       m.Variance,
			Severity:         v.thresholds.Classify(m.Variance),
			Recommendation:   recommendations[model.ExceptionMovement],
		})
	}

	for _, x := range res.CrossReferenceResults {
		if x.Status == model.StatusPass {
			continue
		}
		typ := model.ExceptionCrossReference
		desc := fmt.Sprintf("Note %s discloses %s but %s is stated at %s on the statement, a difference of %s.",
			x.NoteRef,
			amount.Format(symbol, x.NoteTotal),
			x.StatementLineItem,
			amount.Format(symbol, x.StatementAmount),
			amount.Format(symbol, x.Variance))
		if x.SignSuspect {
			typ = model.ExceptionHumanReview
			desc += " The magnitudes agree, so the difference is likely a sign presentation convention rather than a misstatement."
		}
		nextID++
		exceptions = append(exceptions, model.Exception{
			ID:               nextID,
			Type:             typ,
			Location:         fmt.Sprintf("Note %s / %s", x.NoteRef, x.StatementLineItem),
			Description:      desc,
			StatedAmount:     x.StatementAmount,
			CalculatedAmount: x.NoteTotal,
			Difference:       x.Variance,
			Severity:         v.thresholds.Classify(x.Variance),
			Recommendation:   recommendations[typ],
		})
	}

	return exceptions
}
