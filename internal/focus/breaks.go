package focus

import "fmt"

// Activity is one entry of the static break catalog.
type Activity struct {
	Name           string
	Category       string // active, rest, social, mindful
	Duration       int    // minutes
	Location       string // indoor, outdoor, either
	EnergyRequired string // low, medium, high
	Description    string
}

var validBreakTypes = []string{"active", "rest", "social", "mindful", "any"}
var validDurations = []int{5, 10, 15, 20}

var activities = []Activity{
	// Active
	{"Desk Stretches", "active", 5, "indoor", "low", "Simple stretches you can do at your desk to relieve tension."},
	{"Quick Walk", "active", 10, "either", "medium", "Take a brisk walk around the office or outside."},
	{"Jumping Jacks", "active", 5, "indoor", "high", "Get your blood pumping with some jumping jacks."},
	{"Stair Climb", "active", 10, "indoor", "high", "Walk up and down stairs to boost energy."},
	{"Outdoor Walk", "active", 15, "outdoor", "medium", "Take a refreshing walk outside in fresh air."},
	// Rest
	{"Power Nap", "rest", 20, "indoor", "low", "Close your eyes and rest for a quick recharge."},
	{"Eye Rest", "rest", 5, "indoor", "low", "Look away from screen, focus on distant objects."},
	{"Quiet Sitting", "rest", 10, "indoor", "low", "Sit quietly without any stimulation."},
	// Social
	{"Chat with Colleague", "social", 10, "indoor", "medium", "Have a quick non-work chat with a coworker."},
	{"Message a Friend", "social", 5, "indoor", "low", "Send a quick message to someone you care about."},
	{"Coffee Break", "social", 15, "either", "medium", "Grab a coffee and chat with someone."},
	// Mindful
	{"Deep Breathing", "mindful", 5, "indoor", "low", "Practice 4-7-8 breathing or box breathing."},
	{"Guided Meditation", "mindful", 10, "indoor", "low", "Follow a short guided meditation."},
	{"Mindful Walking", "mindful", 15, "either", "medium", "Walk slowly and focus on each step."},
	{"Gratitude Reflection", "mindful", 5, "indoor", "low", "Think of three things you're grateful for."},
}

// BreakRequest describes the current working state and break preferences.
// BreakType defaults to "any" and Duration to 5 when left zero.
type BreakRequest struct {
	MinutesWorked int
	EnergyLevel   int // 1-10
	BreakType     string
	Duration      int // max minutes: 5, 10, 15 or 20
	IndoorOnly    bool
	Seed          *int64
}

// BreakSuggestion is the selected activity. Warning carries a non-fatal
// advisory when the user has worked more than two hours without a break.
type BreakSuggestion struct {
	Activity
	Warning string
}

// SuggestBreak picks one break activity by filtering the catalog against
// the request and sampling the survivors with energy-aware weights. The
// filter relaxes progressively (drop the duration cap, then everything) so
// a suggestion is always returned. Restful activities get a boost after
// long work stretches.
func SuggestBreak(req BreakRequest) (*BreakSuggestion, error) {
	breakType := req.BreakType
	if breakType == "" {
		breakType = "any"
	}
	duration := req.Duration
	if duration == 0 {
		duration = 5
	}

	if err := validateBreak(req, breakType, duration); err != nil {
		return nil, err
	}

	suggestion := &BreakSuggestion{}
	if req.MinutesWorked > 120 {
		suggestion.Warning = fmt.Sprintf(
			"you've worked %d minutes; consider taking a longer break",
			req.MinutesWorked,
		)
	}

	energyCat := energyCategory(req.EnergyLevel)
	candidates := filterActivities(breakType, duration, req.IndoorOnly, energyCat)

	weightedCandidates := make([]weighted[Activity], 0, len(candidates))
	for _, a := range candidates {
		w := 1.0
		if a.EnergyRequired == energyCat {
			w *= 2.0
		}
		// Favor winding down after a long stretch.
		if req.MinutesWorked > 90 && (a.Category == "rest" || a.Category == "mindful") {
			w *= 1.5
		}
		weightedCandidates = append(weightedCandidates, weighted[Activity]{item: a, weight: w})
	}

	suggestion.Activity = pickWeighted(newRNG(req.Seed), weightedCandidates)
	return suggestion, nil
}

func validateBreak(req BreakRequest, breakType string, duration int) error {
	if req.MinutesWorked < 0 {
		return valueErrorf("minutes_worked cannot be negative")
	}
	if req.EnergyLevel < 1 || req.EnergyLevel > 10 {
		return valueErrorf("energy_level must be between 1 and 10")
	}

	valid := false
	for _, t := range validBreakTypes {
		if breakType == t {
			valid = true
			break
		}
	}
	if !valid {
		return valueErrorf("invalid break_type %q; must be one of: active, rest, social, mindful, any", breakType)
	}

	valid = false
	for _, d := range validDurations {
		if duration == d {
			valid = true
			break
		}
	}
	if !valid {
		return valueErrorf("invalid duration %d; must be one of: %v", duration, validDurations)
	}
	return nil
}

func matchesFilters(a Activity, breakType string, indoorOnly bool, energyCat string, checkDuration bool, duration int) bool {
	if breakType != "any" && a.Category != breakType {
		return false
	}
	if checkDuration && a.Duration > duration {
		return false
	}
	if indoorOnly && a.Location == "outdoor" {
		return false
	}
	if energyCat == "low" && a.EnergyRequired == "high" {
		return false
	}
	return true
}

func filterActivities(breakType string, duration int, indoorOnly bool, energyCat string) []Activity {
	var candidates []Activity
	for _, a := range activities {
		if matchesFilters(a, breakType, indoorOnly, energyCat, true, duration) {
			candidates = append(candidates, a)
		}
	}

	// Relax the duration constraint before giving up on the other filters.
	if len(candidates) == 0 {
		for _, a := range activities {
			if matchesFilters(a, breakType, indoorOnly, energyCat, false, 0) {
				candidates = append(candidates, a)
			}
		}
	}

	if len(candidates) == 0 {
		candidates = append(candidates, activities...)
	}
	return candidates
}
