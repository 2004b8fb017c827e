package tui

import "fmt"

// viewState represents the currently active view.
type viewState int

const (
	viewPlanner viewState = iota
	viewTasks
	viewBreaks
	viewAffirm
	viewSettings
)

var viewNames = []string{"Planner", "Tasks", "Breaks", "Affirm", "Settings"}

// --- Messages ---

type statusMsg struct {
	text    string
	isError bool
}

type exportDoneMsg struct {
	path string
}

// --- Helpers ---

// formatClock renders a minute offset as h:mm within the plan timeline.
func formatClock(minute int) string {
	return fmt.Sprintf("%d:%02d", minute/60, minute%60)
}

func formatMinutes(mins int) string {
	if mins >= 60 {
		h := mins / 60
		m := mins % 60
		if m == 0 {
			return fmt.Sprintf("%dh", h)
		}
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", mins)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
