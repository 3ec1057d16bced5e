package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/arpele/tempo/internal/domain"
)

var historyDays int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently completed phases",
	Long:  `Display the focus and relax phases completed over the last days, with the git branch you were on.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		since := time.Now().AddDate(0, 0, -historyDays)

		records, err := storageAdapter.History().FindRecent(ctx, since)
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}

		if len(records) == 0 {
			fmt.Printf("No phases completed in the last %d days.\n", historyDays)
			return nil
		}

		renderHistory(records)
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyDays, "days", "d", 7, "How many days back to show")
	rootCmd.AddCommand(historyCmd)
}

func renderHistory(records []*domain.PhaseRecord) {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	focusStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E05F5F"))
	relaxStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#4ECDC4"))

	wide := true
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w < 70 {
		wide = false
	}

	var lastDay string
	for _, rec := range records {
		day := rec.CompletedAt.Format("Mon Jan 2")
		if day != lastDay {
			fmt.Printf("\n  %s\n", dimStyle.Render(day))
			lastDay = day
		}

		style := relaxStyle
		label := "relax"
		if rec.Phase == domain.PhaseFocus {
			style = focusStyle
			label = "focus"
		}

		line := fmt.Sprintf("%s  %s  %5s  cycle %d",
			rec.CompletedAt.Format("15:04"),
			style.Render(label),
			domain.FormatClock(rec.PlannedSeconds),
			rec.CycleOrdinal,
		)
		if wide && rec.GitBranch != "" {
			line += dimStyle.Render(fmt.Sprintf("  %s@%s", rec.GitBranch, rec.GitCommit))
		}
		fmt.Printf("  %s\n", line)
	}
	fmt.Println()
}
