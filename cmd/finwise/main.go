package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thesoham2203/FinWise-Teen/internal/calculation"
	"github.com/thesoham2203/FinWise-Teen/internal/domain"
	"github.com/thesoham2203/FinWise-Teen/internal/output"
	"github.com/thesoham2203/FinWise-Teen/internal/planner"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var logger zerolog.Logger

var rootCmd = &cobra.Command{
	Use:   "finwise",
	Short: "FinWise personal finance engine",
	Long:  "Investment plan generation, wealth projection, fitness scoring and stress testing for young investors",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		godotenv.Load()

		level := zerolog.InfoLevel
		if lv, err := zerolog.ParseLevel(os.Getenv("FINWISE_LOG_LEVEL")); err == nil && lv != zerolog.NoLevel {
			level = lv
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
			Level(level).
			With().Timestamp().Logger()
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "finwise %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

// loadProfile reads a profile document from a YAML or JSON file.
func loadProfile(path string) (*domain.UserProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}

	var profile domain.UserProfile
	if filepath.Ext(path) == ".json" {
		err = json.Unmarshal(data, &profile)
	} else {
		err = yaml.Unmarshal(data, &profile)
	}
	if err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", path, err)
	}
	return &profile, nil
}

// loadPlan reads a plan document (the JSON wire shape) from a file.
func loadPlan(path string) (*domain.Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan: %w", err)
	}
	var plan domain.Plan
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("parse plan %s: %w", path, err)
	}
	return &plan, nil
}

func planCmd() *cobra.Command {
	var profilePath, format string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate an investment plan for a profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := loadProfile(profilePath)
			if err != nil {
				return err
			}

			svc := plannerFromEnv()
			plan, err := svc.Generate(context.Background(), profile)
			if err != nil {
				return err
			}
			return output.WritePlan(os.Stdout, plan, format)
		},
	}
	cmd.Flags().StringVarP(&profilePath, "profile", "p", "profile.yaml", "profile file (YAML or JSON)")
	cmd.Flags().StringVarP(&format, "output", "o", output.FormatConsole, "output format: console, json")
	return cmd
}

// plannerFromEnv wires the plan generation service from environment
// variables; without PLANNER_BASE_URL the deterministic fallback is used.
func plannerFromEnv() *planner.Service {
	var remote planner.Generator
	if base := os.Getenv("PLANNER_BASE_URL"); base != "" {
		remote = planner.NewClient(base, os.Getenv("PLANNER_API_KEY"), 45*time.Second, logger)
	}
	return planner.NewService(remote, logger)
}

func projectCmd() *cobra.Command {
	var (
		planPath, format  string
		monthly, rate     float64
		years             int
		inflation, tax    bool
		inflationOverride float64
	)

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project corpus growth from a plan or raw amounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine := calculation.NewEngine()
			opts := domain.ProjectionOptions{
				ApplyInflation: inflation,
				ApplyTax:       tax,
			}
			if inflationOverride > 0 {
				opts.InflationRate = decimal.NewFromFloat(inflationOverride)
			}

			var result *domain.ProjectionResult
			if planPath != "" {
				plan, err := loadPlan(planPath)
				if err != nil {
					return err
				}
				if years > 0 {
					plan.RetirementProjection.YearsToRetire = years
				}
				result = engine.ProjectPlan(plan, opts)
			} else {
				payment := decimal.NewFromFloat(monthly)
				annual := decimal.NewFromFloat(rate)
				result = &domain.ProjectionResult{
					WeightedReturn:    annual,
					MonthlyInvestment: payment,
					Years:             years,
					ProjectedCorpus:   engine.ProjectCorpus(payment, annual, years, opts),
					TotalInvested:     payment.Mul(decimal.NewFromInt(int64(years) * 12)),
					Series:            engine.ProjectSeries(payment, annual, years, opts),
				}
			}
			return output.WriteProjection(os.Stdout, result, format)
		},
	}
	cmd.Flags().StringVar(&planPath, "plan", "", "plan file (JSON); overrides --monthly/--rate")
	cmd.Flags().Float64Var(&monthly, "monthly", 0, "monthly investment")
	cmd.Flags().Float64Var(&rate, "rate", 0.12, "annual return as a fraction")
	cmd.Flags().IntVar(&years, "years", 10, "projection horizon in years")
	cmd.Flags().BoolVar(&inflation, "inflation", false, "discount to today's money")
	cmd.Flags().BoolVar(&tax, "tax", false, "apply long-term capital gains tax")
	cmd.Flags().Float64Var(&inflationOverride, "inflation-rate", 0, "override the default 6% inflation rate")
	cmd.Flags().StringVarP(&format, "output", "o", output.FormatConsole, "output format: console, json, csv")
	return cmd
}

func scoreCmd() *cobra.Command {
	var profilePath, planPath, format string

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Compute the financial fitness score",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := loadProfile(profilePath)
			if err != nil {
				return err
			}
			plan, err := loadPlan(planPath)
			if err != nil {
				return err
			}

			engine := calculation.NewEngine()
			score := engine.FitnessScore(calculation.FitnessInput{
				Allocation:        plan.Allocation,
				RunwayMonths:      profile.RunwayMonths(),
				RiskAppetite:      profile.RiskAppetite,
				MonthlyInvestment: plan.MonthlyInvestment,
				MonthlyIncome:     profile.MonthlyIncome,
			})
			return output.WriteScore(os.Stdout, &score, format)
		},
	}
	cmd.Flags().StringVarP(&profilePath, "profile", "p", "profile.yaml", "profile file (YAML or JSON)")
	cmd.Flags().StringVar(&planPath, "plan", "plan.json", "plan file (JSON)")
	cmd.Flags().StringVarP(&format, "output", "o", output.FormatConsole, "output format: console, json, csv")
	return cmd
}

func stressCmd() *cobra.Command {
	var planPath, scenarioID, format string
	var drop float64

	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Stress-test a plan against market crash scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := loadPlan(planPath)
			if err != nil {
				return err
			}
			engine := calculation.NewEngine()

			var results []domain.StressResult
			switch {
			case scenarioID != "":
				sc, ok := calculation.FindStressScenario(scenarioID)
				if !ok {
					return fmt.Errorf("unknown scenario %q", scenarioID)
				}
				results = append(results, engine.EvaluateStress(plan.Allocation, sc))
			case drop > 0:
				sc := domain.StressScenario{
					ID:          "custom",
					Name:        "Custom Shock",
					DropPercent: decimal.NewFromFloat(drop),
				}
				results = append(results, engine.EvaluateStress(plan.Allocation, sc))
			default:
				for _, sc := range calculation.StressScenarios {
					results = append(results, engine.EvaluateStress(plan.Allocation, sc))
				}
			}
			return output.WriteStress(os.Stdout, results, format)
		},
	}
	cmd.Flags().StringVar(&planPath, "plan", "plan.json", "plan file (JSON)")
	cmd.Flags().StringVar(&scenarioID, "scenario", "", "built-in scenario id (default: all)")
	cmd.Flags().Float64Var(&drop, "drop", 0, "custom market drop percentage")
	cmd.Flags().StringVarP(&format, "output", "o", output.FormatConsole, "output format: console, json, csv")
	return cmd
}

func main() {
	rootCmd.AddCommand(
		planCmd(),
		projectCmd(),
		scoreCmd(),
		stressCmd(),
		serveCmd(),
		dashboardCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
