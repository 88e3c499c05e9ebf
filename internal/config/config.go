// Package config defines the data structures related to configuration and
// includes functions for loading and converting the config.
package config

import (
	"fmt"

	"github.com/iwvelando/mortgage-compare/internal/engine"
	"github.com/iwvelando/mortgage-compare/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for mortgage-compare.
type Configuration struct {
	AnalysisYears int
	Loans         []Loan
	Logging       LoggingConfig `yaml:"logging,omitempty"`
	Output        OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, pdf
}

// Loan holds one loan configuration to compare. The annual overpayment
// percentage is a pointer so that an omitted value falls back to the
// default while an explicit 0 disables overpayments entirely.
type Loan struct {
	Name                        string
	Principal                   float64
	TermYears                   int
	InterestRate                float64
	MaxMonthlyPayment           float64
	AnnualOverpaymentPercentage *float64
}

// Terms converts a loan configuration into engine terms, applying the
// default annual overpayment percentage when none is specified.
func (l Loan) Terms() engine.Terms {
	percentage := constants.DefaultAnnualOverpaymentPercentage
	if l.AnnualOverpaymentPercentage != nil {
		percentage = *l.AnnualOverpaymentPercentage
	}

	return engine.Terms{
		Name:                        l.Name,
		Principal:                   l.Principal,
		TermYears:                   l.TermYears,
		InterestRate:                l.InterestRate,
		MaxMonthlyPayment:           l.MaxMonthlyPayment,
		AnnualOverpaymentPercentage: percentage,
	}
}

// LoanTerms converts every configured loan into engine terms in input order.
func (conf *Configuration) LoanTerms() []engine.Terms {
	terms := make([]engine.Terms, len(conf.Loans))
	for i, loan := range conf.Loans {
		terms[i] = loan.Terms()
	}
	return terms
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// DefaultConfiguration returns the built-in example comparison: the same
// loan on a 20-year and a 10-year term, analyzed over five years. Used when
// no configuration file is present.
func DefaultConfiguration() *Configuration {
	return &Configuration{
		AnalysisYears: constants.DefaultAnalysisYears,
		Loans: []Loan{
			{
				Name:              "20-year term",
				Principal:         200000,
				TermYears:         20,
				InterestRate:      4.08,
				MaxMonthlyPayment: 1700,
			},
			{
				Name:              "10-year term",
				Principal:         200000,
				TermYears:         10,
				InterestRate:      4.08,
				MaxMonthlyPayment: 1700,
			},
		},
	}
}

// ValidateConfiguration performs general validation of the configuration
// and returns warnings. Hard contract violations (non-positive principal
// and the like) are left to the engine constructor.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if len(conf.Loans) == 0 {
		warnings = append(warnings, "no loans configured; nothing to compare")
	}

	for i, loan := range conf.Loans {
		if loan.Principal <= 0 || loan.TermYears <= 0 {
			continue
		}
		base := engine.CalculateBaseMonthlyPayment(loan.Principal, loan.InterestRate, loan.TermYears*constants.MonthsPerYear)
		if loan.MaxMonthlyPayment > 0 && loan.MaxMonthlyPayment < base {
			warnings = append(warnings, fmt.Sprintf(
				"loan %d (%s): max monthly payment %.2f is below the base monthly payment %.2f - the loan will not amortize within its term",
				i+1, loan.Name, loan.MaxMonthlyPayment, base))
		}
	}

	return warnings
}
