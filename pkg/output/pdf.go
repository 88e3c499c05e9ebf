package output

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/iwvelando/mortgage-compare/internal/compare"
)

const (
	pageWidth    = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 20.0
	contentWidth = pageWidth - marginLeft - marginRight
)

// pdfText converts UTF-8 text to PDF-safe encoding. The £ sign in UTF-8 is
// 0xC2 0xA3, but PDF standard fonts expect Latin-1 (just 0xA3).
func pdfText(s string) string {
	return strings.ReplaceAll(s, "£", "\xa3")
}

// PdfFormat renders the comparison as a PDF report with a summary table per
// configuration followed by the pairwise differences.
func PdfFormat(comparison *compare.Comparison) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(true, marginBottom)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(contentWidth, 12, "Mortgage Comparison Report", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "I", 10)
	pdf.SetTextColor(80, 80, 80)
	pdf.CellFormat(contentWidth, 6, fmt.Sprintf("Generated: %s", time.Now().Format("2 January 2006")), "", 1, "C", false, 0, "")
	pdf.CellFormat(contentWidth, 6, fmt.Sprintf("Analysis period: %d years", comparison.AnalysisYears), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	for i, result := range comparison.Results {
		pdf.SetFont("Arial", "B", 13)
		pdf.SetTextColor(0, 51, 102)
		pdf.SetFillColor(245, 247, 250)
		pdf.CellFormat(contentWidth, 9, pdfText(optionLabel(i, result)), "1", 1, "L", true, 0, "")

		writeAmountRows(pdf, []amountRow{
			{"Base monthly payment", result.BaseMonthlyPayment},
			{"Total interest paid", result.TotalInterest},
			{"Total amount paid", result.TotalPaid},
			{"Remaining balance", result.RemainingBalance},
			{"Equity built", result.EquityBuilt},
			{"Total overpayments made", result.TotalOverpayments},
			{"Total payments limited by annual cap", result.TotalLimitedByAnnual},
		})
		pdf.Ln(6)
	}

	for _, delta := range comparison.Deltas {
		pdf.SetFont("Arial", "B", 13)
		pdf.SetTextColor(0, 51, 102)
		pdf.SetFillColor(245, 247, 250)
		pdf.CellFormat(contentWidth, 9,
			fmt.Sprintf("Difference in position after %d years (option %d vs option %d)",
				comparison.AnalysisYears, delta.FirstIndex+1, delta.SecondIndex+1),
			"1", 1, "L", true, 0, "")

		writeAmountRows(pdf, []amountRow{
			{"Difference in total interest paid", delta.TotalInterest},
			{"Difference in remaining balance", delta.RemainingBalance},
			{"Difference in equity built", delta.EquityBuilt},
		})
		pdf.Ln(6)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type amountRow struct {
	Label  string
	Amount float64
}

func writeAmountRows(pdf *fpdf.Fpdf, rows []amountRow) {
	pdf.SetFont("Arial", "", 11)
	pdf.SetTextColor(50, 50, 50)
	pdf.SetDrawColor(200, 200, 200)
	for _, row := range rows {
		pdf.CellFormat(contentWidth*0.65, 7, row.Label, "LB", 0, "L", false, 0, "")
		pdf.CellFormat(contentWidth*0.35, 7, pdfText(fmt.Sprintf("£%.2f", row.Amount)), "RB", 1, "R", false, 0, "")
	}
}
