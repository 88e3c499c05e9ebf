// Package compare runs the amortization engine across multiple loan
// configurations over a shared horizon and derives their pairwise position
// differences.
package compare

import (
	"fmt"

	"github.com/iwvelando/mortgage-compare/internal/engine"
	"go.uber.org/zap"
)

// Delta holds the position differences between two configurations after
// the analysis window. TotalInterest and RemainingBalance are first minus
// second; EquityBuilt is second minus first, so a positive value means the
// second configuration built more equity.
type Delta struct {
	FirstIndex       int
	SecondIndex      int
	TotalInterest    float64
	RemainingBalance float64
	EquityBuilt      float64
}

// Comparison holds the per-configuration results in input order plus the
// deltas for every ordered pair of configurations.
type Comparison struct {
	AnalysisYears int
	Results       []engine.PeriodResult
	Deltas        []Delta
}

// Compare simulates every configuration over the same horizon and computes
// deltas for all ordered pairs. With exactly two configurations the single
// delta matches the classic two-option comparison.
func Compare(logger *zap.Logger, analysisYears int, configs []engine.Terms) (*Comparison, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	comparison := &Comparison{AnalysisYears: analysisYears}

	for i, terms := range configs {
		eng, err := engine.New(logger, terms)
		if err != nil {
			return nil, fmt.Errorf("configuration %d: %w", i+1, err)
		}

		result, err := eng.Simulate(analysisYears)
		if err != nil {
			return nil, fmt.Errorf("configuration %d: %w", i+1, err)
		}

		logger.Debug(fmt.Sprintf("simulated configuration %d (%s) over %d years", i+1, terms.Name, analysisYears),
			zap.String("op", "compare.Compare"),
		)
		comparison.Results = append(comparison.Results, *result)
	}

	for i := 0; i < len(comparison.Results); i++ {
		for j := i + 1; j < len(comparison.Results); j++ {
			first := comparison.Results[i]
			second := comparison.Results[j]
			comparison.Deltas = append(comparison.Deltas, Delta{
				FirstIndex:       i,
				SecondIndex:      j,
				TotalInterest:    first.TotalInterest - second.TotalInterest,
				RemainingBalance: first.RemainingBalance - second.RemainingBalance,
				EquityBuilt:      second.EquityBuilt - first.EquityBuilt,
			})
		}
	}

	return comparison, nil
}
