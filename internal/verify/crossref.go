package verify

import (
	"github.com/shopspring/decimal"

	"github.com/tickmark-dev/tickmark/internal/amount"
	"github.com/tickmark-dev/tickmark/internal/model"
)

// VerifyCrossReference checks that a note-disclosed total agrees with the
// corresponding statement line amount.
//
// Notes often present expense items positive while the primary statement shows
// them bracketed, so a raw comparison of equal magnitudes with opposite signs
// is not necessarily a misstatement. When the magnitudes agree:
//   - IsExpenseOrDeduction set: the difference is the presentation convention;
//     the check passes with SignAdjusted recorded.
//   - flag not set: the raw variance stands, SignSuspect is recorded, and the
//     finding is routed to human review rather than adjudicated here.
func VerifyCrossReference(x model.CrossReference) model.CrossReferenceResult {
	variance := amount.Variance(x.NoteTotal, x.StatementAmount)

	r := model.CrossReferenceResult{
		NoteRef:           x.NoteRef,
		NoteDescription:   x.NoteDescription,
		StatementLineItem: x.StatementLineItem,
		NoteTotal:         x.NoteTotal,
		StatementAmount:   x.StatementAmount,
	}

	if !variance.IsZero() && x.NoteTotal.Abs().Equal(x.StatementAmount.Abs()) {
		if x.IsExpenseOrDeduction {
			variance = decimal.Zero
			r.SignAdjusted = true
		} else {
			r.SignSuspect = true
		}
	}

	r.Variance = variance
	r.VariancePercent = amount.VariancePercent(variance, x.StatementAmount)
	r.Status = amount.StatusFor(variance)
	return r
}
