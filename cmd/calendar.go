package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/postdeck/postdeck/internal/calendar"
)

var (
	calendarMonth string
	calendarCount  int
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Print a month calendar and exit",
	Long: `Print the month grid used by the Schedules view, Monday first, with today
highlighted when writing to a terminal.`,
	Args: cobra.NoArgs,
	RunE: runCalendar,
}

func init() {
	calendarCmd.Flags().StringVarP(&calendarMonth, "month", "m", "", "Month to show as YYYY-MM (default: current month)")
	calendarCmd.Flags().IntVarP(&calendarCount, "count", "n", 1, "Number of consecutive months to print")
	rootCmd.AddCommand(calendarCmd)
}

func runCalendar(cmd *cobra.Command, args []string) error {
	now := time.Now()
	cursor := calendar.CursorFor(now)
	if calendarMonth != "" {
		t, err := time.Parse("2006-01", calendarMonth)
		if err != nil {
			return fmt.Errorf("invalid --month %q, want YYYY-MM", calendarMonth)
		}
		cursor = calendar.CursorFor(t)
	}
	if calendarCount < 1 {
		return fmt.Errorf("invalid --count %d", calendarCount)
	}

	nav := calendar.NewNavigator(nil)
	today := lipgloss.NewStyle().Reverse(true)
	colored := term.IsTerminal(int(os.Stdout.Fd()))

	out := cmd.OutOrStdout()
	for i := 0; i < calendarCount; i++ {
		c := cursor
		opts := calendar.TextOptions{}
		if colored {
			opts.Highlight = func(day int, cell string) string {
				if nav.IsToday(c.Year, c.Month, day) {
					return today.Render(cell)
				}
				return cell
			}
		}
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprint(out, calendar.RenderText(c, opts))
		cursor = cursor.Next()
	}
	return nil
}
