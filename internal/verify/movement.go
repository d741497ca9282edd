package verify

import (
	"github.com/tickmark-dev/tickmark/internal/amount"
	"github.com/tickmark-dev/tickmark/internal/model"
)

// VerifyMovement checks Opening + Additions - Deductions = Closing for one
// account's movement schedule (horizontal casting). Deduction amounts arrive
// as positive magnitudes and are subtracted here.
func VerifyMovement(m model.Movement) model.MovementResult {
	totalAdditions := amount.SumItems(m.Additions)
	totalDeductions := amount.SumItems(m.Deductions)
	calculated := amount.Sum(m.Opening, totalAdditions, totalDeductions.Neg())
	variance := amount.Variance(calculated, m.StatedClosing)

	return model.MovementResult{
		AccountName:       m.AccountName,
		Opening:           m.Opening,
		Additions:         m.Additions,
		Deductions:        m.Deductions,
		TotalAdditions:    totalAdditions,
		TotalDeductions:   totalDeductions,
		CalculatedClosing: calculated,
		StatedClosing:     m.StatedClosing,
		Variance:          variance,
		VariancePercent:   amount.VariancePercent(variance, m.StatedClosing),
		Status:            amount.StatusFor(variance),
	}
}
