package cli

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/task-tracker/internal/observability"
)

var (
	statsJSON  bool
	statsSince string
	statsUntil string
	statsTask  string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Display task activity from the event log",
	Long: `Display counts derived from the event log: tasks created, completed,
removed and retitled, notes added, and completions per day.

--since and --until take the same relative form (7d, 24h). --task limits
the counts to one task's history.

Requires the event log to be enabled (events.enabled in config.yaml).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if MetricsCalc == nil {
			return fmt.Errorf("metrics calculator not initialized (event log may be disabled)")
		}

		sinceTime, err := parseSinceDuration(statsSince)
		if err != nil {
			return fmt.Errorf("parsing --since: %w", err)
		}

		filter := observability.EventFilter{Since: &sinceTime, TaskID: strings.TrimSpace(statsTask)}
		if strings.TrimSpace(statsUntil) != "" {
			untilTime, err := parseSinceDuration(statsUntil)
			if err != nil {
				return fmt.Errorf("parsing --until: %w", err)
			}
			if untilTime.Before(sinceTime) {
				return fmt.Errorf("--until %s is earlier than --since %s", statsUntil, statsSince)
			}
			filter.Until = &untilTime
		}

		metrics, err := MetricsCalc.Calculate(filter)
		if err != nil {
			return fmt.Errorf("calculating metrics: %w", err)
		}

		out := cmd.OutOrStdout()
		if statsJSON {
			data, err := json.MarshalIndent(metrics, "", "  ")
			if err != nil {
				return fmt.Errorf("formatting metrics as JSON: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		fmt.Fprintf(out, "Stats (since %s", sinceTime.Local().Format("2006-01-02"))
		if filter.Until != nil {
			fmt.Fprintf(out, ", until %s", filter.Until.Local().Format("2006-01-02"))
		}
		if filter.TaskID != "" {
			fmt.Fprintf(out, ", task %s", filter.TaskID)
		}
		fmt.Fprint(out, ")\n\n")
		fmt.Fprintf(out, "  %-20s %d\n", "Events recorded:", metrics.EventCount)
		fmt.Fprintf(out, "  %-20s %d\n", "Tasks created:", metrics.TasksCreated)
		fmt.Fprintf(out, "  %-20s %d\n", "Tasks completed:", metrics.TasksCompleted)
		fmt.Fprintf(out, "  %-20s %d\n", "Tasks removed:", metrics.TasksRemoved)
		fmt.Fprintf(out, "  %-20s %d\n", "Tasks retitled:", metrics.TasksUpdated)
		fmt.Fprintf(out, "  %-20s %d\n", "Notes added:", metrics.NotesAdded)

		if len(metrics.CompletedByDay) > 0 {
			fmt.Fprintln(out, "\n  Completed by day:")
			days := make([]string, 0, len(metrics.CompletedByDay))
			for day := range metrics.CompletedByDay {
				days = append(days, day)
			}
			slices.Sort(days)
			for _, day := range days {
				fmt.Fprintf(out, "    %-18s %d\n", day+":", metrics.CompletedByDay[day])
			}
		}

		if metrics.OldestEvent != nil {
			fmt.Fprintf(out, "\n  %-20s %s\n", "Oldest event:", metrics.OldestEvent.Format(time.RFC3339))
		}
		if metrics.NewestEvent != nil {
			fmt.Fprintf(out, "  %-20s %s\n", "Newest event:", metrics.NewestEvent.Format(time.RFC3339))
		}

		return nil
	},
}

// parseSinceDuration parses a human-friendly duration string like "7d", "30d",
// or "24h" and returns the corresponding time in the past.
func parseSinceDuration(s string) (time.Time, error) {
	now := time.Now().UTC()
	s = strings.TrimSpace(s)
	if s == "" {
		return now.AddDate(0, 0, -7), nil
	}

	if strings.HasSuffix(s, "d") {
		days, err := strconv.Atoi(strings.TrimSuffix(s, "d"))
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid day duration %q", s)
		}
		return now.AddDate(0, 0, -days), nil
	}

	if strings.HasSuffix(s, "h") {
		hours, err := strconv.Atoi(strings.TrimSuffix(s, "h"))
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid hour duration %q", s)
		}
		return now.Add(-time.Duration(hours) * time.Hour), nil
	}

	return time.Time{}, fmt.Errorf("unsupported duration format %q (use e.g. 7d, 30d, 24h)", s)
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Output stats as JSON")
	statsCmd.Flags().StringVar(&statsSince, "since", "7d", "Start of the window (e.g. 7d, 30d, 24h ago)")
	statsCmd.Flags().StringVar(&statsUntil, "until", "", "End of the window (e.g. 1d ago); default now")
	statsCmd.Flags().StringVar(&statsTask, "task", "", "Only count events for this task ID")
	_ = statsCmd.RegisterFlagCompletionFunc("task", completeTaskIDs())
	rootCmd.AddCommand(statsCmd)
}
