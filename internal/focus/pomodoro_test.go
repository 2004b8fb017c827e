package focus

import "testing"

// ============================================================
// Presets
// ============================================================

func TestPlanPomodoroPreset(t *testing.T) {
	plan, err := PlanSchedule(PlanRequest{TotalMinutes: 60, Technique: TechniquePomodoro})
	if err != nil {
		t.Fatalf("PlanSchedule: %v", err)
	}
	if len(plan.Sessions) == 0 {
		t.Fatal("empty plan")
	}
	first := plan.Sessions[0]
	if first.Type != SessionWork || first.DurationMinutes != 25 {
		t.Fatalf("first session = %s/%d, want work/25", first.Type, first.DurationMinutes)
	}
}

func TestPlanDefaultTechnique(t *testing.T) {
	plan, err := PlanSchedule(PlanRequest{TotalMinutes: 60})
	if err != nil {
		t.Fatal(err)
	}
	if plan.Sessions[0].DurationMinutes != 25 {
		t.Fatalf("empty technique should default to pomodoro, got %d-minute work", plan.Sessions[0].DurationMinutes)
	}
}

func TestPlan5217(t *testing.T) {
	plan, err := PlanSchedule(PlanRequest{TotalMinutes: 120, Technique: Technique5217})
	if err != nil {
		t.Fatal(err)
	}
	if plan.Sessions[0].DurationMinutes != 52 {
		t.Fatalf("first work = %d, want 52", plan.Sessions[0].DurationMinutes)
	}
	// Interval 1: the first break is already a long break.
	if plan.Sessions[1].Type != SessionLongBreak {
		t.Fatalf("second session = %s, want long_break", plan.Sessions[1].Type)
	}
}

func TestPlan9020(t *testing.T) {
	plan, err := PlanSchedule(PlanRequest{TotalMinutes: 180, Technique: Technique9020})
	if err != nil {
		t.Fatal(err)
	}
	if plan.Sessions[0].DurationMinutes != 90 {
		t.Fatalf("first work = %d, want 90", plan.Sessions[0].DurationMinutes)
	}
}

func TestPlanCustom(t *testing.T) {
	work, short := 20, 5
	plan, err := PlanSchedule(PlanRequest{
		TotalMinutes: 60,
		Technique:    TechniqueCustom,
		WorkLength:   &work,
		ShortBreak:   &short,
	})
	if err != nil {
		t.Fatal(err)
	}
	if plan.Sessions[0].DurationMinutes != 20 {
		t.Fatalf("first work = %d, want 20", plan.Sessions[0].DurationMinutes)
	}
	// Long break defaults to short break when unset.
	for _, s := range plan.Sessions {
		if s.Type == SessionLongBreak && s.DurationMinutes > short {
			t.Fatalf("long break = %d, want <= %d", s.DurationMinutes, short)
		}
	}
}

func TestPlanPresetDurationOverride(t *testing.T) {
	work := 10
	plan, err := PlanSchedule(PlanRequest{TotalMinutes: 60, Technique: TechniquePomodoro, WorkLength: &work})
	if err != nil {
		t.Fatal(err)
	}
	if plan.Sessions[0].DurationMinutes != 10 {
		t.Fatalf("first work = %d, want overridden 10", plan.Sessions[0].DurationMinutes)
	}
	// Short break keeps the preset value.
	if plan.Sessions[1].Type != SessionShortBreak || plan.Sessions[1].DurationMinutes != 5 {
		t.Fatalf("second session = %s/%d, want short_break/5", plan.Sessions[1].Type, plan.Sessions[1].DurationMinutes)
	}
}

func TestPlanPresetIntervalNotOverridable(t *testing.T) {
	// Presets keep their own long-break interval even when one is provided.
	interval := 1
	plan, err := PlanSchedule(PlanRequest{TotalMinutes: 60, Technique: TechniquePomodoro, LongBreakInterval: &interval})
	if err != nil {
		t.Fatal(err)
	}
	if plan.Sessions[1].Type != SessionShortBreak {
		t.Fatalf("first break = %s, want short_break (preset interval 4 kept)", plan.Sessions[1].Type)
	}
}

func TestPlanCustomInterval(t *testing.T) {
	work, short, interval := 10, 5, 2
	plan, err := PlanSchedule(PlanRequest{
		TotalMinutes:      60,
		Technique:         TechniqueCustom,
		WorkLength:        &work,
		ShortBreak:        &short,
		LongBreakInterval: &interval,
	})
	if err != nil {
		t.Fatal(err)
	}
	// work(10) short(5) work(10) -> second work session triggers a long break.
	if plan.Sessions[3].Type != SessionLongBreak {
		t.Fatalf("session 4 = %s, want long_break", plan.Sessions[3].Type)
	}
}

// ============================================================
// Truncation and invariants
// ============================================================

func TestPlanTruncatedSingleSession(t *testing.T) {
	plan, err := PlanSchedule(PlanRequest{TotalMinutes: 15, Technique: TechniquePomodoro})
	if err != nil {
		t.Fatal(err)
	}
	if len(plan.Sessions) != 1 {
		t.Fatalf("got %d sessions, want 1", len(plan.Sessions))
	}
	s := plan.Sessions[0]
	if s.Type != SessionWork || s.DurationMinutes != 15 || s.StartMinute != 0 || s.EndMinute != 15 {
		t.Fatalf("session = %+v, want work 0-15", s)
	}
	if plan.TotalWorkMinutes != 15 || plan.TotalBreakMinutes != 0 || plan.WorkSessions != 1 {
		t.Fatalf("metadata = %d/%d/%d, want 15/0/1", plan.TotalWorkMinutes, plan.TotalBreakMinutes, plan.WorkSessions)
	}
}

func TestPlanExactCycle(t *testing.T) {
	plan, err := PlanSchedule(PlanRequest{TotalMinutes: 30, Technique: TechniquePomodoro})
	if err != nil {
		t.Fatal(err)
	}
	if len(plan.Sessions) != 2 {
		t.Fatalf("got %d sessions, want 2", len(plan.Sessions))
	}
	if plan.Sessions[0].Type != SessionWork || plan.Sessions[0].DurationMinutes != 25 {
		t.Fatalf("session 1 = %+v", plan.Sessions[0])
	}
	if plan.Sessions[1].Type != SessionShortBreak || plan.Sessions[1].DurationMinutes != 5 {
		t.Fatalf("session 2 = %+v", plan.Sessions[1])
	}
	if plan.Sessions[1].EndMinute != 30 {
		t.Fatalf("end = %d, want 30", plan.Sessions[1].EndMinute)
	}
}

func TestPlanLongBreakInterval(t *testing.T) {
	plan, err := PlanSchedule(PlanRequest{TotalMinutes: 180, Technique: TechniquePomodoro})
	if err != nil {
		t.Fatal(err)
	}
	longBreaks := 0
	for _, s := range plan.Sessions {
		if s.Type == SessionLongBreak {
			longBreaks++
		}
	}
	if longBreaks < 1 {
		t.Fatal("expected at least one long break in 180 minutes")
	}
}

func TestPlanInvariants(t *testing.T) {
	work, short := 7, 3
	requests := []PlanRequest{
		{TotalMinutes: 1, Technique: TechniquePomodoro},
		{TotalMinutes: 25, Technique: TechniquePomodoro},
		{TotalMinutes: 26, Technique: TechniquePomodoro},
		{TotalMinutes: 120, Technique: TechniquePomodoro},
		{TotalMinutes: 121, Technique: Technique5217},
		{TotalMinutes: 333, Technique: Technique9020},
		{TotalMinutes: 97, Technique: TechniqueCustom, WorkLength: &work, ShortBreak: &short},
	}

	for _, req := range requests {
		plan, err := PlanSchedule(req)
		if err != nil {
			t.Fatalf("%+v: %v", req, err)
		}
		if len(plan.Sessions) == 0 {
			t.Fatalf("%+v: empty plan", req)
		}
		if plan.Sessions[0].Type != SessionWork || plan.Sessions[0].StartMinute != 0 {
			t.Fatalf("%+v: plan must start with work at minute 0", req)
		}

		prevEnd := 0
		var workSum, breakSum, workCount int
		for i, s := range plan.Sessions {
			if s.Number != i+1 {
				t.Fatalf("%+v: session number %d at index %d", req, s.Number, i)
			}
			if s.DurationMinutes <= 0 {
				t.Fatalf("%+v: zero-length session %d", req, s.Number)
			}
			if s.StartMinute != prevEnd {
				t.Fatalf("%+v: gap before session %d (start %d, prev end %d)", req, s.Number, s.StartMinute, prevEnd)
			}
			if s.EndMinute != s.StartMinute+s.DurationMinutes {
				t.Fatalf("%+v: inconsistent bounds in session %d", req, s.Number)
			}
			if s.EndMinute > req.TotalMinutes {
				t.Fatalf("%+v: session %d overruns budget (%d > %d)", req, s.Number, s.EndMinute, req.TotalMinutes)
			}
			prevEnd = s.EndMinute

			if s.Type == SessionWork {
				workSum += s.DurationMinutes
				workCount++
			} else {
				breakSum += s.DurationMinutes
			}
		}

		if plan.TotalWorkMinutes != workSum || plan.TotalBreakMinutes != breakSum || plan.WorkSessions != workCount {
			t.Fatalf("%+v: metadata %d/%d/%d, want %d/%d/%d", req,
				plan.TotalWorkMinutes, plan.TotalBreakMinutes, plan.WorkSessions, workSum, breakSum, workCount)
		}
	}
}

// ============================================================
// Warnings and validation
// ============================================================

func TestPlanShortBudgetWarning(t *testing.T) {
	plan, err := PlanSchedule(PlanRequest{TotalMinutes: 20, Technique: TechniquePomodoro})
	if err != nil {
		t.Fatal(err)
	}
	if plan.Warning == "" {
		t.Fatal("expected advisory warning for budget below one work+break cycle")
	}
	// The warning must not block schedule construction.
	if len(plan.Sessions) != 1 || plan.Sessions[0].DurationMinutes != 20 {
		t.Fatalf("warning altered the schedule: %+v", plan.Sessions)
	}
}

func TestPlanNoWarningWhenBudgetFits(t *testing.T) {
	plan, err := PlanSchedule(PlanRequest{TotalMinutes: 30, Technique: TechniquePomodoro})
	if err != nil {
		t.Fatal(err)
	}
	if plan.Warning != "" {
		t.Fatalf("unexpected warning: %q", plan.Warning)
	}
}

func TestPlanValidation(t *testing.T) {
	zero := 0
	work := 25

	tests := []struct {
		name string
		req  PlanRequest
	}{
		{"zero total", PlanRequest{TotalMinutes: 0}},
		{"negative total", PlanRequest{TotalMinutes: -10}},
		{"unknown technique", PlanRequest{TotalMinutes: 60, Technique: "sprint"}},
		{"custom missing params", PlanRequest{TotalMinutes: 60, Technique: TechniqueCustom}},
		{"custom missing short break", PlanRequest{TotalMinutes: 60, Technique: TechniqueCustom, WorkLength: &work}},
		{"zero work length", PlanRequest{TotalMinutes: 60, Technique: TechniqueCustom, WorkLength: &zero, ShortBreak: &work}},
		{"zero long break", PlanRequest{TotalMinutes: 60, Technique: TechniquePomodoro, LongBreak: &zero}},
		{"zero interval", PlanRequest{TotalMinutes: 60, Technique: TechniquePomodoro, LongBreakInterval: &zero}},
	}

	for _, tt := range tests {
		if _, err := PlanSchedule(tt.req); !IsValueError(err) {
			t.Fatalf("%s: expected value error, got %v", tt.name, err)
		}
	}
}
