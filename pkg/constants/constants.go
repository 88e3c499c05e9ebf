// Package constants provides shared constants for the mortgage-compare application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 penny)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// DefaultAnnualOverpaymentPercentage is the annual overpayment allowance
	// applied when a loan does not specify one, as a percentage of the
	// balance outstanding at the start of each year
	DefaultAnnualOverpaymentPercentage = 10.0

	// DefaultAnalysisYears is the analysis horizon used by the built-in
	// example configuration
	DefaultAnalysisYears = 5
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatPDF is the PDF report output format
	OutputFormatPDF = "pdf"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultPDFOutputFile is the file the PDF report is written to
	DefaultPDFOutputFile = "mortgage-compare.pdf"
)
