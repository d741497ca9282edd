package verify

import (
	"github.com/tickmark-dev/tickmark/internal/amount"
	"github.com/tickmark-dev/tickmark/internal/model"
)

// VerifyBalance checks the accounting identity Assets = Liabilities + Equity
// on the current-year column of a statement of financial position. Returns nil
// when the statement or any of its three totals is absent: the balance check
// is conditional, not mandatory.
func VerifyBalance(st *model.Statement) *model.BalanceResult {
	if st == nil || st.TotalAssets == nil || st.TotalLiabilities == nil || st.TotalEquity == nil {
		return nil
	}

	assets := st.TotalAssets.Current
	liabilities := st.TotalLiabilities.Current
	equity := st.TotalEquity.Current

	calculated := amount.Sum(liabilities, equity)
	variance := amount.Variance(calculated, assets)

	return &model.BalanceResult{
		TotalAssets:                     assets,
		TotalLiabilities:                liabilities,
		TotalEquity:                     equity,
		CalculatedLiabilitiesPlusEquity: calculated,
		Variance:                        variance,
		VariancePercent:                 amount.VariancePercent(variance, assets),
		Status:                          amount.StatusFor(variance),
	}
}
