package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/flowdeck/internal/focus"
)

type scheduleExport struct {
	ExportedAt        string        `json:"exported_at"`
	Technique         string        `json:"technique,omitempty"`
	TotalWorkMinutes  int           `json:"total_work_minutes"`
	TotalBreakMinutes int           `json:"total_break_minutes"`
	WorkSessions      int           `json:"work_sessions"`
	Warning           string        `json:"warning,omitempty"`
	Sessions          []jsonSession `json:"sessions"`
}

type jsonSession struct {
	Number          int    `json:"number"`
	Type            string `json:"type"`
	DurationMinutes int    `json:"duration_minutes"`
	StartMinute     int    `json:"start_minute"`
	EndMinute       int    `json:"end_minute"`
}

// ScheduleToJSON writes a planned schedule with its summary metadata.
func ScheduleToJSON(plan *focus.Plan, technique focus.Technique, path string) error {
	export := scheduleExport{
		ExportedAt:        time.Now().UTC().Format(time.RFC3339),
		Technique:         string(technique),
		TotalWorkMinutes:  plan.TotalWorkMinutes,
		TotalBreakMinutes: plan.TotalBreakMinutes,
		WorkSessions:      plan.WorkSessions,
		Warning:           plan.Warning,
	}

	for _, sess := range plan.Sessions {
		export.Sessions = append(export.Sessions, jsonSession{
			Number:          sess.Number,
			Type:            string(sess.Type),
			DurationMinutes: sess.DurationMinutes,
			StartMinute:     sess.StartMinute,
			EndMinute:       sess.EndMinute,
		})
	}

	return writeJSON(export, path)
}

type tasksExport struct {
	ExportedAt string     `json:"exported_at"`
	Method     string     `json:"method"`
	Count      int        `json:"count"`
	Tasks      []jsonTask `json:"tasks"`
}

type jsonTask struct {
	Rank              int     `json:"rank"`
	Name              string  `json:"name"`
	PriorityScore     float64 `json:"priority_score"`
	Importance        int     `json:"importance"`
	Effort            int     `json:"effort"`
	Deadline          string  `json:"deadline,omitempty"`
	DaysUntilDeadline *int    `json:"days_until_deadline,omitempty"`
	Tags              string  `json:"tags,omitempty"`
	Notes             string  `json:"notes,omitempty"`
}

// TasksToJSON writes a prioritized task list, highest rank first.
func TasksToJSON(tasks []focus.ScoredTask, method focus.Method, path string) error {
	export := tasksExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Method:     string(method),
		Count:      len(tasks),
	}

	for _, t := range tasks {
		export.Tasks = append(export.Tasks, jsonTask{
			Rank:              t.Rank,
			Name:              t.Name,
			PriorityScore:     t.PriorityScore,
			Importance:        t.Importance,
			Effort:            t.Effort,
			Deadline:          t.Deadline,
			DaysUntilDeadline: t.DaysUntilDeadline,
			Tags:              t.Tags,
			Notes:             t.Notes,
		})
	}

	return writeJSON(export, path)
}

func writeJSON(v any, path string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
