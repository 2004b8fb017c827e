package focus

import "fmt"

// SessionType labels a scheduled block of time.
type SessionType string

const (
	SessionWork       SessionType = "work"
	SessionShortBreak SessionType = "short_break"
	SessionLongBreak  SessionType = "long_break"
)

// Technique names a preset bundle of work/break durations.
type Technique string

const (
	TechniquePomodoro Technique = "pomodoro"
	Technique5217     Technique = "52-17"
	Technique9020     Technique = "90-20"
	TechniqueCustom   Technique = "custom"
)

// Techniques lists the known techniques in display order.
var Techniques = []Technique{TechniquePomodoro, Technique5217, Technique9020, TechniqueCustom}

type preset struct {
	work       int
	shortBreak int
	longBreak  int
	interval   int
}

var presets = map[Technique]preset{
	TechniquePomodoro: {25, 5, 15, 4},
	Technique5217:     {52, 17, 17, 1}, // no long break distinction
	Technique9020:     {90, 20, 30, 2},
}

// Session is one contiguous block of a built plan. Number is 1-based and
// sequential; EndMinute is exclusive and equals StartMinute+DurationMinutes.
type Session struct {
	Number          int
	Type            SessionType
	DurationMinutes int
	StartMinute     int
	EndMinute       int
}

// Plan is a chronological session sequence plus summary metadata. Warning
// carries a non-fatal advisory (budget smaller than one work+break cycle)
// and never affects the sessions themselves.
type Plan struct {
	Sessions          []Session
	TotalWorkMinutes  int
	TotalBreakMinutes int
	WorkSessions      int
	Warning           string
}

// PlanRequest describes a schedule to build. Technique defaults to
// "pomodoro" when empty. The pointer fields distinguish "not provided" from
// an explicit value: custom requires WorkLength and ShortBreak, presets may
// override any of the three durations. LongBreakInterval applies to the
// custom technique only (default 4); presets keep their own interval even
// when one is provided.
type PlanRequest struct {
	TotalMinutes      int
	Technique         Technique
	WorkLength        *int
	ShortBreak        *int
	LongBreak         *int
	LongBreakInterval *int
}

// PlanSchedule builds a work/break schedule within a fixed time budget.
// The schedule always starts with a work session at minute 0 and alternates
// work and breaks until TotalMinutes is spent; a final session that does
// not fit is truncated, and zero-length sessions are never emitted. After
// every interval-th work session the break is a long one.
func PlanSchedule(req PlanRequest) (*Plan, error) {
	technique := req.Technique
	if technique == "" {
		technique = TechniquePomodoro
	}

	if err := validatePlan(req, technique); err != nil {
		return nil, err
	}

	var work, sBreak, lBreak, interval int
	if technique == TechniqueCustom {
		work = *req.WorkLength
		sBreak = *req.ShortBreak
		lBreak = sBreak
		if req.LongBreak != nil {
			lBreak = *req.LongBreak
		}
		interval = 4
		if req.LongBreakInterval != nil {
			interval = *req.LongBreakInterval
		}
	} else {
		p := presets[technique]
		work, sBreak, lBreak, interval = p.work, p.shortBreak, p.longBreak, p.interval
		if req.WorkLength != nil {
			work = *req.WorkLength
		}
		if req.ShortBreak != nil {
			sBreak = *req.ShortBreak
		}
		if req.LongBreak != nil {
			lBreak = *req.LongBreak
		}
	}

	plan := &Plan{}
	if req.TotalMinutes < work+sBreak {
		plan.Warning = fmt.Sprintf(
			"total time (%d min) is less than one work+break cycle (%d min)",
			req.TotalMinutes, work+sBreak,
		)
	}

	current := 0
	number := 0
	for current < req.TotalMinutes {
		remaining := req.TotalMinutes - current
		workDuration := minInt(work, remaining)
		number++
		plan.WorkSessions++
		plan.TotalWorkMinutes += workDuration
		plan.Sessions = append(plan.Sessions, Session{
			Number:          number,
			Type:            SessionWork,
			DurationMinutes: workDuration,
			StartMinute:     current,
			EndMinute:       current + workDuration,
		})
		current += workDuration

		remaining = req.TotalMinutes - current
		if remaining <= 0 {
			break
		}

		breakType := SessionShortBreak
		breakDuration := sBreak
		if plan.WorkSessions%interval == 0 {
			breakType = SessionLongBreak
			breakDuration = lBreak
		}
		breakDuration = minInt(breakDuration, remaining)

		number++
		plan.TotalBreakMinutes += breakDuration
		plan.Sessions = append(plan.Sessions, Session{
			Number:          number,
			Type:            breakType,
			DurationMinutes: breakDuration,
			StartMinute:     current,
			EndMinute:       current + breakDuration,
		})
		current += breakDuration
	}

	return plan, nil
}

func validatePlan(req PlanRequest, technique Technique) error {
	if req.TotalMinutes <= 0 {
		return valueErrorf("total_minutes must be positive")
	}

	known := false
	for _, t := range Techniques {
		if technique == t {
			known = true
			break
		}
	}
	if !known {
		return valueErrorf("invalid technique %q; must be one of: pomodoro, 52-17, 90-20, custom", technique)
	}

	if technique == TechniqueCustom && (req.WorkLength == nil || req.ShortBreak == nil) {
		return valueErrorf("custom technique requires work_length and short_break parameters")
	}

	for _, f := range []struct {
		name string
		val  *int
	}{
		{"work_length", req.WorkLength},
		{"short_break", req.ShortBreak},
		{"long_break", req.LongBreak},
		{"long_break_interval", req.LongBreakInterval},
	} {
		if f.val != nil && *f.val <= 0 {
			return valueErrorf("%s must be positive", f.name)
		}
	}
	return nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
