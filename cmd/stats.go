package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/arpele/tempo/internal/domain"
)

var statsPeriod string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show focus totals for today and the past period",
	RunE: func(cmd *cobra.Command, args []string) error {
		var days int
		switch statsPeriod {
		case "week":
			days = 7
		case "month":
			days = 30
		default:
			return fmt.Errorf("invalid period %q: must be week or month", statsPeriod)
		}

		ctx := context.Background()
		now := time.Now()

		today, err := storageAdapter.History().GetDailyTotals(ctx, now)
		if err != nil {
			return fmt.Errorf("failed to get daily totals: %w", err)
		}

		records, err := storageAdapter.History().FindRecent(ctx, now.AddDate(0, 0, -days))
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}

		fmt.Println()
		renderStats(today, records, now, days)
		return nil
	},
}

func init() {
	statsCmd.Flags().StringVarP(&statsPeriod, "period", "p", "week", "Period to chart: week or month")
	rootCmd.AddCommand(statsCmd)
}

func renderStats(today *domain.DailyTotals, records []*domain.PhaseRecord, now time.Time, days int) {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E05F5F"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	valueStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A0AEC0"))
	barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#E05F5F"))

	fmt.Printf("  %s\n", titleStyle.Render("Today"))
	fmt.Printf("  %s focus phases · %s relax phases · %s focused\n\n",
		valueStyle.Render(fmt.Sprintf("%d", today.FocusPhases)),
		valueStyle.Render(fmt.Sprintf("%d", today.RelaxPhases)),
		valueStyle.Render(formatFocusTime(today.FocusTime())),
	)

	// Focus seconds per day over the period.
	perDay := make(map[string]int)
	for _, rec := range records {
		if rec.Phase != domain.PhaseFocus {
			continue
		}
		perDay[rec.CompletedAt.Format("2006-01-02")] += rec.PlannedSeconds
	}

	maxSeconds := 0
	for _, s := range perDay {
		if s > maxSeconds {
			maxSeconds = s
		}
	}

	label := "Past week"
	dayFormat := "Mon"
	if days > 7 {
		label = "Past month"
		dayFormat = "Jan 02"
	}

	fmt.Printf("  %s\n", dimStyle.Render(label))
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		seconds := perDay[day.Format("2006-01-02")]

		barLen := 0
		if maxSeconds > 0 {
			barLen = seconds * 24 / maxSeconds
		}
		// Pad before styling so ANSI codes don't skew the columns.
		dayCell := fmt.Sprintf("%-6s", day.Format(dayFormat))
		barCell := fmt.Sprintf("%-24s", strings.Repeat("▇", barLen))
		fmt.Printf("  %s %s %s\n",
			dimStyle.Render(dayCell),
			barStyle.Render(barCell),
			dimStyle.Render(formatFocusTime(time.Duration(seconds)*time.Second)),
		)
	}
	fmt.Println()
}

// formatFocusTime renders a duration as "2h05m" or "45m".
func formatFocusTime(d time.Duration) string {
	minutes := int(d.Minutes())
	if minutes >= 60 {
		return fmt.Sprintf("%dh%02dm", minutes/60, minutes%60)
	}
	return fmt.Sprintf("%dm", minutes)
}
