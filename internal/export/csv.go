package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/sadopc/flowdeck/internal/focus"
)

// ScheduleToCSV writes a planned schedule as one row per session.
func ScheduleToCSV(plan *focus.Plan, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// Header
	if err := w.Write([]string{"Session", "Type", "Duration (min)", "Start (min)", "End (min)"}); err != nil {
		return err
	}

	for _, sess := range plan.Sessions {
		row := []string{
			fmt.Sprintf("%d", sess.Number),
			string(sess.Type),
			fmt.Sprintf("%d", sess.DurationMinutes),
			fmt.Sprintf("%d", sess.StartMinute),
			fmt.Sprintf("%d", sess.EndMinute),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

// TasksToCSV writes a prioritized task list, highest rank first.
func TasksToCSV(tasks []focus.ScoredTask, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"Rank", "Name", "Score", "Importance", "Effort", "Deadline", "Tags", "Notes"}); err != nil {
		return err
	}

	for _, t := range tasks {
		row := []string{
			fmt.Sprintf("%d", t.Rank),
			t.Name,
			fmt.Sprintf("%.2f", t.PriorityScore),
			fmt.Sprintf("%d", t.Importance),
			fmt.Sprintf("%d", t.Effort),
			t.Deadline,
			t.Tags,
			t.Notes,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}
