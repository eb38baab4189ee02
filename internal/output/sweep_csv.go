package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rpgo/savings-calculator/internal/calculation"
	"github.com/rpgo/savings-calculator/internal/locale"
	"github.com/shopspring/decimal"
)

// SweepCSVReport generates CSV exports for a parameter sweep
type SweepCSVReport struct {
	Scenario string
	Field    calculation.SweepField
	Points   []calculation.SweepPoint
	Locale   locale.Locale
}

func (s *SweepCSVReport) loc() locale.Locale {
	if s.Locale == nil {
		return locale.DefaultLocale
	}
	return s.Locale
}

// GenerateSummaryCSV creates a summary CSV with one row per swept value
func (s *SweepCSVReport) GenerateSummaryCSV(outputPath string) error {
	return writeCSVFile(outputPath, s.writeSummary)
}

// GenerateYearlyCSV creates a CSV with the balance at every year start of every run
func (s *SweepCSVReport) GenerateYearlyCSV(outputPath string) error {
	return writeCSVFile(outputPath, s.writeYearly)
}

// SummaryCSV returns the summary CSV as bytes
func (s *SweepCSVReport) SummaryCSV() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.writeSummary(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *SweepCSVReport) writeSummary(out io.Writer) error {
	writer := csv.NewWriter(out)

	// Write header
	header := []string{
		"Scenario", string(s.Field), "FinalNominal", "FinalReal", "FinalContribution", "RealChangeFromFirst",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	var first decimal.Decimal
	for i, pt := range s.Points {
		finalReal := decimal.NewFromFloat(pt.FinalReal)
		if i == 0 {
			first = finalReal
		}
		row := []string{
			s.Scenario,
			strconv.FormatFloat(pt.Value, 'f', -1, 64),
			decimal.NewFromFloat(pt.FinalNominal).StringFixed(2),
			finalReal.StringFixed(2),
			decimal.NewFromFloat(pt.Series.Final().Contribution).StringFixed(2),
			finalReal.Sub(first).StringFixed(2),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write sweep row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func (s *SweepCSVReport) writeYearly(out io.Writer) error {
	loc := s.loc()
	value, contribution := loc.ValueScale(), loc.ContributionScale()
	writer := csv.NewWriter(out)

	header := []string{
		string(s.Field), "Year", "Nominal " + value.Label, "Real " + value.Label, contribution.Label,
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, pt := range s.Points {
		for _, p := range pt.Series.YearStarts() {
			row := []string{
				strconv.FormatFloat(pt.Value, 'f', -1, 64),
				intToString(p.Year),
				formatScaled(p.Nominal, value, 6),
				formatScaled(p.Real, value, 6),
				formatScaled(p.Contribution, contribution, 6),
			}
			if err := writer.Write(row); err != nil {
				return fmt.Errorf("failed to write yearly row: %w", err)
			}
		}
	}

	writer.Flush()
	return writer.Error()
}

// GenerateAllCSVReports creates all CSV reports in a single directory
func (s *SweepCSVReport) GenerateAllCSVReports(outputDir string) error {
	// Create output directory if it doesn't exist
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := s.GenerateSummaryCSV(filepath.Join(outputDir, "sweep_summary.csv")); err != nil {
		return fmt.Errorf("failed to generate summary CSV: %w", err)
	}

	if err := s.GenerateYearlyCSV(filepath.Join(outputDir, "sweep_yearly.csv")); err != nil {
		return fmt.Errorf("failed to generate yearly CSV: %w", err)
	}

	return nil
}

func writeCSVFile(outputPath string, write func(io.Writer) error) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	if err := write(file); err != nil {
		return err
	}
	return file.Close()
}
