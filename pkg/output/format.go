// Package output provides utilities for formatting and displaying
// comparison results.
package output

import (
	"fmt"

	"github.com/iwvelando/mortgage-compare/internal/compare"
	"github.com/iwvelando/mortgage-compare/internal/engine"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// optionLabel returns the display label for one configuration's result.
func optionLabel(index int, result engine.PeriodResult) string {
	if result.Name != "" {
		return fmt.Sprintf("Option %d (%s)", index+1, result.Name)
	}
	return fmt.Sprintf("Option %d (%d-year term)", index+1, result.TermYears)
}

// PrettyFormat outputs a human-readable rather than machine-readable summary.
func PrettyFormat(comparison *compare.Comparison) {
	p := message.NewPrinter(language.English)
	for i, result := range comparison.Results {
		fmt.Printf("\n%s:\n", optionLabel(i, result))
		_, _ = p.Printf("Base monthly payment: £%.2f\n", result.BaseMonthlyPayment)
		_, _ = p.Printf("Total interest paid: £%.2f\n", result.TotalInterest)
		_, _ = p.Printf("Total amount paid: £%.2f\n", result.TotalPaid)
		_, _ = p.Printf("Remaining balance: £%.2f\n", result.RemainingBalance)
		_, _ = p.Printf("Equity built: £%.2f\n", result.EquityBuilt)
		_, _ = p.Printf("Total overpayments made: £%.2f\n", result.TotalOverpayments)
		fmt.Printf("\nPayment Limitations:\n")
		_, _ = p.Printf("Total payments limited by annual cap: £%.2f\n", result.TotalLimitedByAnnual)
	}

	for _, delta := range comparison.Deltas {
		fmt.Printf("\nDifference in position after %d years (option %d vs option %d):\n",
			comparison.AnalysisYears, delta.FirstIndex+1, delta.SecondIndex+1)
		_, _ = p.Printf("Difference in total interest paid: £%.2f\n", delta.TotalInterest)
		_, _ = p.Printf("Difference in remaining balance: £%.2f\n", delta.RemainingBalance)
		_, _ = p.Printf("Difference in equity built: £%.2f\n", delta.EquityBuilt)
	}
}

// CsvFormat outputs the full monthly schedule of every configuration in
// comma-separated value format.
func CsvFormat(comparison *compare.Comparison) {
	fmt.Printf(`"option","month","payment","interest","principal","remaining","overpayment","limited_by_annual"`)
	fmt.Printf("\n")
	for i, result := range comparison.Results {
		for _, record := range result.Months {
			fmt.Printf(`"%d","%d","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f"`,
				i+1, record.Month, record.Payment, record.Interest, record.Principal,
				record.RemainingBalance, record.Overpayment, record.LimitedByAnnual)
			fmt.Printf("\n")
		}
	}
}
