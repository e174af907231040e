// Package output renders projection, score and stress reports for the CLI
// in console, JSON and CSV formats. The calculation engine never formats
// values; all presentation lives here.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/thesoham2203/FinWise-Teen/internal/domain"
)

// Supported report formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
	FormatCSV     = "csv"
)

// WriteProjection renders a projection result in the requested format.
func WriteProjection(w io.Writer, result *domain.ProjectionResult, format string) error {
	switch format {
	case FormatConsole:
		return projectionConsole(w, result)
	case FormatJSON:
		return writeJSON(w, result)
	case FormatCSV:
		return projectionCSV(w, result)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func projectionConsole(w io.Writer, result *domain.ProjectionResult) error {
	fmt.Fprintln(w, "WEALTH PROJECTION")
	fmt.Fprintln(w, strings.Repeat("=", 50))
	fmt.Fprintf(w, "Monthly Investment:   %s\n", FormatCurrency(result.MonthlyInvestment))
	fmt.Fprintf(w, "Weighted Return:      %s p.a.\n", FormatRate(result.WeightedReturn))
	fmt.Fprintf(w, "Horizon:              %d years\n", result.Years)
	fmt.Fprintf(w, "Total Invested:       %s\n", FormatCurrency(result.TotalInvested))
	fmt.Fprintf(w, "Projected Corpus:     %s\n", FormatCurrency(result.ProjectedCorpus))
	fmt.Fprintln(w)

	if len(result.Series) > 0 {
		fmt.Fprintln(w, "YEAR-BY-YEAR")
		fmt.Fprintln(w, strings.Repeat("-", 30))
		for _, p := range result.Series {
			fmt.Fprintf(w, "%-10s %s\n", p.Label, FormatCurrency(p.Corpus))
		}
	}
	return nil
}

func projectionCSV(w io.Writer, result *domain.ProjectionResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Year", "Label", "Corpus"}); err != nil {
		return err
	}
	for _, p := range result.Series {
		row := []string{strconv.Itoa(p.Year), p.Label, p.Corpus.StringFixed(0)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteScore renders a fitness score in the requested format.
func WriteScore(w io.Writer, score *domain.FitnessScore, format string) error {
	switch format {
	case FormatConsole:
		return scoreConsole(w, score)
	case FormatJSON:
		return writeJSON(w, score)
	case FormatCSV:
		return scoreCSV(w, score)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func scoreConsole(w io.Writer, score *domain.FitnessScore) error {
	fmt.Fprintln(w, "FINANCIAL FITNESS SCORE")
	fmt.Fprintln(w, strings.Repeat("=", 50))
	fmt.Fprintf(w, "Total:                %d / 100 (%s)\n", score.Total, score.Label)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Diversification:      %d / 40\n", score.Breakdown.Diversification)
	fmt.Fprintf(w, "Safety Net:           %d / 25\n", score.Breakdown.SafetyNet)
	fmt.Fprintf(w, "Discipline:           %d / 20\n", score.Breakdown.Discipline)
	fmt.Fprintf(w, "Risk Alignment:       %d / 15\n", score.Breakdown.RiskAlignment)
	return nil
}

func scoreCSV(w io.Writer, score *domain.FitnessScore) error {
	cw := csv.NewWriter(w)
	rows := [][]string{
		{"Component", "Score", "Max"},
		{"Diversification", strconv.Itoa(score.Breakdown.Diversification), "40"},
		{"SafetyNet", strconv.Itoa(score.Breakdown.SafetyNet), "25"},
		{"Discipline", strconv.Itoa(score.Breakdown.Discipline), "20"},
		{"RiskAlignment", strconv.Itoa(score.Breakdown.RiskAlignment), "15"},
		{"Total", strconv.Itoa(score.Total), "100"},
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteStress renders stress results in the requested format.
func WriteStress(w io.Writer, results []domain.StressResult, format string) error {
	switch format {
	case FormatConsole:
		return stressConsole(w, results)
	case FormatJSON:
		return writeJSON(w, results)
	case FormatCSV:
		return stressCSV(w, results)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func stressConsole(w io.Writer, results []domain.StressResult) error {
	fmt.Fprintln(w, "STRESS TEST")
	fmt.Fprintln(w, strings.Repeat("=", 50))
	for _, res := range results {
		fmt.Fprintf(w, "\n%s (market drop %s)\n", res.Scenario.Name, FormatPercent(res.Scenario.DropPercent))
		fmt.Fprintln(w, strings.Repeat("-", 50))
		for _, b := range res.Buckets {
			fmt.Fprintf(w, "  %-28s %6s of portfolio  drop %s\n",
				b.Name, FormatPercent(b.Percentage), FormatPercent(b.ReportedDropPercent))
		}
		fmt.Fprintf(w, "  PORTFOLIO DRAWDOWN: %s\n", FormatPercent(res.TotalDrawdownPercent))
	}
	return nil
}

func stressCSV(w io.Writer, results []domain.StressResult) error {
	cw := csv.NewWriter(w)
	header := []string{"Scenario", "Bucket", "Percentage", "RiskLevel", "ReportedDrop", "Contribution", "TotalDrawdown"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, res := range results {
		for _, b := range res.Buckets {
			row := []string{
				res.Scenario.ID,
				b.Name,
				b.Percentage.StringFixed(1),
				b.RiskLevel,
				b.ReportedDropPercent.StringFixed(1),
				b.ContributionPercent.StringFixed(1),
				res.TotalDrawdownPercent.StringFixed(1),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WritePlan renders a generated plan as a console summary or JSON.
func WritePlan(w io.Writer, plan *domain.Plan, format string) error {
	switch format {
	case FormatConsole:
		return planConsole(w, plan)
	case FormatJSON, FormatCSV:
		return writeJSON(w, plan)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func planConsole(w io.Writer, plan *domain.Plan) error {
	fmt.Fprintln(w, "INVESTMENT PLAN")
	fmt.Fprintln(w, strings.Repeat("=", 50))
	fmt.Fprintf(w, "Monthly Investment:   %s\n", FormatCurrency(plan.MonthlyInvestment))
	if plan.Reasoning != "" {
		fmt.Fprintf(w, "Reasoning:            %s\n", plan.Reasoning)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "ALLOCATION")
	fmt.Fprintln(w, strings.Repeat("-", 50))
	for _, a := range plan.Allocation {
		fmt.Fprintf(w, "  %-28s %6s  %-12s %s\n",
			a.Name, FormatPercent(a.Percentage), a.RiskLevel, FormatCurrency(a.MonthlyAmount))
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Years to Retire:      %d\n", plan.RetirementProjection.YearsToRetire)
	fmt.Fprintf(w, "Projected Corpus:     %s\n", FormatCurrency(plan.RetirementProjection.ProjectedCorpus))
	fmt.Fprintf(w, "Monthly Needed:       %s\n", FormatCurrency(plan.RetirementProjection.MonthlyNeeded))
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
