package verify

import (
	"fmt"

	"github.com/tickmark-dev/tickmark/internal/amount"
	"github.com/tickmark-dev/tickmark/internal/model"
)

// VerifyCasting checks that a relationship's component amounts sum to its
// stated total (vertical casting). Labels are display-only; the amounts drive
// the arithmetic, so a label array that does not line up degrades to padded or
// truncated labels and a ComponentMismatch flag instead of aborting the run.
func VerifyCasting(rel model.CastingRelationship) model.CastingResult {
	mismatch := len(rel.ComponentLabels) != len(rel.ComponentAmounts)

	components := make([]model.ComponentLine, len(rel.ComponentAmounts))
	for i, amt := range rel.ComponentAmounts {
		label := fmt.Sprintf("Component %d", i+1)
		if i < len(rel.ComponentLabels) && rel.ComponentLabels[i] != "" {
			label = rel.ComponentLabels[i]
		}
		components[i] = model.ComponentLine{Label: label, Amount: amt}
	}

	calculated := amount.Sum(rel.ComponentAmounts...)
	variance := amount.Variance(calculated, rel.TotalAmount)

	return model.CastingResult{
		Section:           rel.Section,
		Description:       rel.Description,
		TotalLabel:        rel.TotalLabel,
		Components:        components,
		CalculatedTotal:   calculated,
		StatedTotal:       rel.TotalAmount,
		Variance:          variance,
		VariancePercent:   amount.VariancePercent(variance, rel.TotalAmount),
		Status:            amount.StatusFor(variance),
		ComponentMismatch: mismatch,
	}
}
