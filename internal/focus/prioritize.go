// Package focus implements the pure planning functions behind flowdeck:
// task prioritization, pomodoro-style schedule building, break suggestions
// and developer affirmations. Every function is stateless and side-effect
// free; callers wanting reproducible random picks pass an explicit Seed.
package focus

import (
	"math"
	"sort"
	"time"
)

// Method selects the prioritization strategy.
type Method string

const (
	// MethodWeighted balances importance, inverted effort and deadline urgency.
	MethodWeighted Method = "weighted"
	// MethodDeadline ranks purely by deadline proximity.
	MethodDeadline Method = "deadline"
)

const dateLayout = "2006-01-02"

// Task is one unit of work to rank. Importance and Effort are 1-5 scales;
// zero means unset and defaults to 3. Values outside 1-5 are not clamped
// and propagate into the score as given. Deadline is "YYYY-MM-DD"; an empty
// or malformed deadline is treated as no deadline, never an error.
type Task struct {
	Name       string
	Importance int
	Effort     int
	Deadline   string
	Tags       string
	Notes      string
}

// ScoredTask is a Task annotated with its computed priority. All input
// fields pass through untouched. DaysUntilDeadline is populated by the
// deadline method only and stays nil for tasks without a usable deadline.
type ScoredTask struct {
	Task
	PriorityScore     float64
	Rank              int
	DaysUntilDeadline *int
}

// Weights are the per-factor multipliers for MethodWeighted. They are used
// as given; nothing enforces that they sum to 1.
type Weights struct {
	Importance float64
	Effort     float64
	Deadline   float64
}

// DefaultWeights returns the standard weighted-method multipliers.
func DefaultWeights() Weights {
	return Weights{Importance: 0.5, Effort: 0.3, Deadline: 0.2}
}

// Prioritize scores tasks with the given method and returns them sorted by
// descending score with 1-based ranks. Ties keep input order, so the task
// seen first wins the lower rank. A nil weights uses DefaultWeights; the
// weights are ignored by MethodDeadline.
func Prioritize(tasks []Task, method Method, weights *Weights) ([]ScoredTask, error) {
	if err := validatePrioritize(tasks, method, weights); err != nil {
		return nil, err
	}

	w := DefaultWeights()
	if weights != nil {
		w = *weights
	}

	today := time.Now()

	var scored []ScoredTask
	switch method {
	case MethodWeighted:
		scored = weightedScores(tasks, w, today)
	case MethodDeadline:
		scored = deadlineScores(tasks, today)
	}

	assignRanks(scored)
	return scored, nil
}

func validatePrioritize(tasks []Task, method Method, weights *Weights) error {
	if len(tasks) == 0 {
		return valueErrorf("tasks list cannot be empty")
	}
	for i, t := range tasks {
		if t.Name == "" {
			return valueErrorf("task at index %d missing required field 'name'", i)
		}
	}
	if method != MethodWeighted && method != MethodDeadline {
		return valueErrorf("invalid method %q; must be one of: weighted, deadline", method)
	}
	if weights != nil {
		for _, f := range []struct {
			name string
			val  float64
		}{
			{"importance", weights.Importance},
			{"effort", weights.Effort},
			{"deadline", weights.Deadline},
		} {
			if math.IsNaN(f.val) || math.IsInf(f.val, 0) {
				return typeErrorf("weight %q must be a finite number", f.name)
			}
		}
	}
	return nil
}

// daysUntil parses a YYYY-MM-DD deadline and returns whole days from today.
// Empty or malformed deadlines return nil; leniency here is deliberate.
func daysUntil(deadline string, today time.Time) *int {
	if deadline == "" {
		return nil
	}
	d, err := time.Parse(dateLayout, deadline)
	if err != nil {
		return nil
	}
	// Compare calendar dates in UTC so the difference is an exact day
	// count regardless of DST transitions in the local zone.
	from := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	days := int(to.Sub(from).Hours() / 24)
	return &days
}

// urgencyLevel converts days remaining into a 1-5 urgency score.
// No deadline gets the neutral middle score.
func urgencyLevel(daysLeft *int) int {
	if daysLeft == nil {
		return 3
	}
	switch d := *daysLeft; {
	case d <= 1:
		return 5
	case d <= 3:
		return 4
	case d <= 7:
		return 3
	case d <= 14:
		return 2
	default:
		return 1
	}
}

func weightedScores(tasks []Task, w Weights, today time.Time) []ScoredTask {
	scored := make([]ScoredTask, 0, len(tasks))
	for _, t := range tasks {
		importance := t.Importance
		if importance == 0 {
			importance = 3
		}
		effort := t.Effort
		if effort == 0 {
			effort = 3
		}

		urgency := urgencyLevel(daysUntil(t.Deadline, today))

		// Effort is inverted so that low-effort tasks score higher.
		score := float64(importance)*w.Importance +
			float64(6-effort)*w.Effort +
			float64(urgency)*w.Deadline

		scored = append(scored, ScoredTask{
			Task:          t,
			PriorityScore: round2(score),
		})
	}
	return scored
}

func deadlineScores(tasks []Task, today time.Time) []ScoredTask {
	scored := make([]ScoredTask, 0, len(tasks))
	for _, t := range tasks {
		daysLeft := daysUntil(t.Deadline, today)

		var score float64
		if daysLeft != nil {
			score = math.Max(0, float64(100-*daysLeft))
		}

		scored = append(scored, ScoredTask{
			Task:              t,
			PriorityScore:     score,
			DaysUntilDeadline: daysLeft,
		})
	}
	return scored
}

func assignRanks(scored []ScoredTask) {
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].PriorityScore > scored[j].PriorityScore
	})
	for i := range scored {
		scored[i].Rank = i + 1
	}
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
