// Package verify is the deterministic verification engine. It re-derives every
// arithmetic relationship in an extracted financial statement dataset and
// produces machine-verified pass/fail results, variances, exceptions, and an
// audit conclusion. No arithmetic is delegated to the extraction step.
package verify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/tickmark-dev/tickmark/internal/amount"
	"github.com/tickmark-dev/tickmark/internal/model"
)

// Verifier runs all verification passes over an ExtractionResult. It is
// stateless across runs; construct once and reuse.
type Verifier struct {
	thresholds amount.Thresholds
	logger     *slog.Logger
}

// Option configures a Verifier.
type Option func(*Verifier)

// WithThresholds overrides the default severity cutoffs.
func WithThresholds(t amount.Thresholds) Option {
	return func(v *Verifier) { v.thresholds = t }
}

// WithLogger attaches a structured log sink. Logging is a side channel only;
// no verification decision depends on it.
func WithLogger(l *slog.Logger) Option {
	return func(v *Verifier) { v.logger = l }
}

// New creates a Verifier with default thresholds.
func New(opts ...Option) *Verifier {
	v := &Verifier{thresholds: amount.DefaultThresholds()}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Run executes the full pipeline: the four verification passes, exception
// synthesis, KPI aggregation, and conclusion generation. Pure and idempotent:
// identical input always yields identical output. The four passes read
// disjoint slices of the input, so they fan out concurrently and join before
// synthesis; ordering within each result list follows input order.
func (v *Verifier) Run(ctx context.Context, input model.ExtractionResult) model.VerificationResult {
	res := model.VerificationResult{
		CompanyName:      input.CompanyName,
		FinancialYearEnd: input.FinancialYearEnd,
		Currency:         input.Currency,
		Warnings:         input.Warnings,
	}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		res.CastingResults = make([]model.CastingResult, len(input.CastingRelationships))
		for i, rel := range input.CastingRelationships {
			res.CastingResults[i] = VerifyCasting(rel)
		}
		return nil
	})
	g.Go(func() error {
		res.BalanceResult = VerifyBalance(input.SOFP())
		return nil
	})
	g.Go(func() error {
		res.MovementResults = make([]model.MovementResult, len(input.Movements))
		for i, m := range input.Movements {
			res.MovementResults[i] = VerifyMovement(m)
		}
		return nil
	})
	g.Go(func() error {
		res.CrossReferenceResults = make([]model.CrossReferenceResult, len(input.CrossReferences))
		for i, x := range input.CrossReferences {
			res.CrossReferenceResults[i] = VerifyCrossReference(x)
		}
		return nil
	})
	_ = g.Wait() // passes never return errors

	assertCoupling(&res)

	res.Exceptions = v.synthesizeExceptions(&res)
	res.KPI = buildKPI(&res)
	res.ConclusionSummary, res.ConclusionItems = v.buildConclusion(&res)
	res.ConclusionNote = balanceNote(res.Currency, res.BalanceResult)

	if v.logger != nil {
		v.logger.Info("verification complete",
			"company", res.CompanyName,
			"checks", res.KPI.TotalChecks,
			"passed", res.KPI.Passed,
			"failed", res.KPI.Failed,
			"exceptions", res.KPI.ExceptionsFound)
	}
	return res
}

// assertCoupling enforces the status/variance contract on every result: pass
// if and only if zero variance. A violation is a bug in a verifier, not bad
// input, and is worth crashing loudly over.
func assertCoupling(res *model.VerificationResult) {
	check := func(where string, status model.CheckStatus, variance decimal.Decimal) {
		if (status == model.StatusPass) != variance.IsZero() {
			panic(fmt.Sprintf("verify: %s reports status %q with variance %s", where, status, variance))
		}
	}
	for _, c := range res.CastingResults {
		check("casting "+c.TotalLabel, c.Status, c.Variance)
	}
	if b := res.BalanceResult; b != nil {
		check("balance equation", b.Status, b.Variance)
	}
	for _, m := range res.MovementResults {
		check("movement "+m.AccountName, m.Status, m.Variance)
	}
	for _, x := range res.CrossReferenceResults {
		check("cross-reference "+x.NoteRef, x.Status, x.Variance)
	}
}

// buildKPI aggregates pass/fail counts across all performed checks. A skipped
// balance check contributes nothing.
func buildKPI(res *model.VerificationResult) model.KPI {
	kpi := model.KPI{}
	count := func(status model.CheckStatus) {
		kpi.TotalChecks++
		if status == model.StatusPass {
			kpi.Passed++
		} else {
			kpi.Failed++
		}
	}
	for _, c := range res.CastingResults {
		count(c.Status)
	}
	if res.BalanceResult != nil {
		count(res.BalanceResult.Status)
	}
	for _, m := range res.MovementResults {
		count(m.Status)
	}
	for _, x := range res.CrossReferenceResults {
		count(x.Status)
	}

	kpi.ExceptionsFound = len(res.Exceptions)
	for _, e := range res.Exceptions {
		switch e.Severity {
		case model.SeverityHigh:
			kpi.HighSeverity++
		case model.SeverityMedium:
			kpi.MediumSeverity++
		default:
			kpi.LowSeverity++
		}
	}

	if kpi.TotalChecks == 0 {
		kpi.PassRate = 100
	} else {
		rate := decimal.NewFromInt(int64(kpi.Passed)).
			Div(decimal.NewFromInt(int64(kpi.TotalChecks))).
			Mul(decimal.NewFromInt(100)).
			Round(0)
		kpi.PassRate = int(rate.IntPart())
	}
	return kpi
}

// buildConclusion produces the narrative summary and the prioritized item
// list. Items are ordered high to medium to low, stable by exception id within
// a severity.
func (v *Verifier) buildConclusion(res *model.VerificationResult) (string, []model.ConclusionItem) {
	var summary string
	if len(res.Exceptions) == 0 {
		summary = fmt.Sprintf("All %d checks passed with no exceptions.", res.KPI.TotalChecks)
	} else {
		summary = fmt.Sprintf("Verification identified %s: %d high, %d medium and %d low severity.",
			plural(len(res.Exceptions), "exception"),
			res.KPI.HighSeverity, res.KPI.MediumSeverity, res.KPI.LowSeverity)
	}

	items := make([]model.ConclusionItem, 0, len(res.Exceptions))
	for _, sev := range []model.Severity{model.SeverityHigh, model.SeverityMedium, model.SeverityLow} {
		for _, e := range res.Exceptions {
			if e.Severity != sev {
				continue
			}
			items = append(items, model.ConclusionItem{
				Priority: e.Severity,
				Note:     e.Location,
				Description: fmt.Sprintf("Stated %s, calculated %s, difference %s.",
					amount.Format(res.Currency, e.StatedAmount),
					amount.Format(res.Currency, e.CalculatedAmount),
					amount.Format(res.Currency, e.Difference)),
			})
		}
	}
	return summary, items
}

// balanceNote states the balance-sheet position separately from the general
// conclusion.
func balanceNote(symbol string, b *model.BalanceResult) string {
	switch {
	case b == nil:
		return "No statement of financial position totals were available; the balance equation was not verified."
	case b.Status == model.StatusPass:
		return "The statement of financial position is in balance."
	default:
		return fmt.Sprintf("The statement of financial position does not balance: assets differ from liabilities plus equity by %s.",
			amount.Format(symbol, b.Variance))
	}
}

// plural renders "1 exception" / "3 exceptions".
func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
