package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/thesoham2203/FinWise-Teen/internal/domain"
	"github.com/thesoham2203/FinWise-Teen/internal/tui"
)

func dashboardCmd() *cobra.Command {
	var profilePath, planPath string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive dashboard",
		Long:  "Projection chart with inflation/tax toggles, fitness score card and stress-scenario table. Without --plan a plan is generated for the profile first.",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := loadProfile(profilePath)
			if err != nil {
				return err
			}

			var plan *domain.Plan
			if planPath != "" {
				plan, err = loadPlan(planPath)
			} else {
				plan, err = plannerFromEnv().Generate(context.Background(), profile)
			}
			if err != nil {
				return fmt.Errorf("load or generate plan: %w", err)
			}

			p := tea.NewProgram(tui.NewModel(profile, plan), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}
	cmd.Flags().StringVarP(&profilePath, "profile", "p", "profile.yaml", "profile file (YAML or JSON)")
	cmd.Flags().StringVar(&planPath, "plan", "", "plan file (JSON); generated when omitted")
	return cmd
}
