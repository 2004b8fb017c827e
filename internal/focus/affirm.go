package focus

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type affirmation struct {
	Text     string // contains a {name} placeholder
	Category string // motivation, confidence, persistence, self-care, growth
	Energy   string // low, medium, high
}

var validMoods = []string{"happy", "stressed", "anxious", "tired", "frustrated", "motivated", "neutral"}
var validCategories = []string{"motivation", "confidence", "persistence", "self-care", "growth"}

var affirmations = []affirmation{
	// Motivation
	{"{name}, small commits still move the project forward.", "motivation", "low"},
	{"Rest is part of the process, {name}.", "motivation", "low"},
	{"{name}, every bug fixed is progress.", "motivation", "low"},
	{"{name}, you have the skills to solve this.", "motivation", "medium"},
	{"Your code makes a difference, {name}.", "motivation", "medium"},
	{"{name}, you've debugged harder problems than this.", "motivation", "medium"},
	{"{name}, you're on fire! Ship that feature!", "motivation", "high"},
	{"Channel that energy into clean code, {name}!", "motivation", "high"},
	// Confidence
	{"{name}, you belong in tech.", "confidence", "low"},
	{"Trust your debugging instincts, {name}.", "confidence", "medium"},
	{"{name}, your unique perspective makes the team stronger.", "confidence", "medium"},
	{"You've got this, {name}!", "confidence", "high"},
	// Persistence
	{"{name}, even senior devs Google things.", "persistence", "low"},
	{"The bug will surrender eventually, {name}.", "persistence", "medium"},
	{"{name}, stuck is temporary. Keep digging.", "persistence", "medium"},
	{"Persistence beats talent, {name}. Keep going!", "persistence", "high"},
	// Self-care
	{"{name}, it's okay to step away from the screen.", "self-care", "low"},
	{"Your worth isn't measured in commits, {name}.", "self-care", "low"},
	{"{name}, take a break. The code will wait.", "self-care", "medium"},
	// Growth
	{"{name}, every error is a learning opportunity.", "growth", "low"},
	{"You're a better developer than you were yesterday, {name}.", "growth", "medium"},
	{"{name}, embrace the struggle. That's where growth happens.", "growth", "medium"},
	{"Level up, {name}! Challenge accepted!", "growth", "high"},
}

// moodCategories maps each mood to its preferred categories, first match
// preferred strongest.
var moodCategories = map[string][]string{
	"happy":      {"motivation", "growth"},
	"stressed":   {"self-care", "persistence"},
	"anxious":    {"confidence", "self-care"},
	"tired":      {"self-care", "motivation"},
	"frustrated": {"persistence", "confidence"},
	"motivated":  {"motivation", "growth"},
	"neutral":    {"motivation", "confidence"},
}

// AffirmRequest describes who to address and how they feel. Category, when
// set, overrides the mood-based preference entirely.
type AffirmRequest struct {
	Name     string
	Mood     string
	Energy   int // 1-10
	Category string
	Seed     *int64
}

// AffirmationResult is one personalized affirmation. MoodAlignment in
// [0,1] scores how well the selection matches the requested mood/energy.
type AffirmationResult struct {
	Text          string
	Category      string
	MoodAlignment float64
}

var titleCaser = cases.Title(language.English)

// Affirm selects a personalized developer affirmation by weighting the
// catalog toward the preferred categories for the given mood (or the
// explicit category override) and toward the matching energy bucket.
func Affirm(req AffirmRequest) (*AffirmationResult, error) {
	if err := validateAffirm(req); err != nil {
		return nil, err
	}

	displayName := sanitizeName(req.Name)
	energyCat := energyCategory(req.Energy)
	preferred := preferredCategories(req.Mood, req.Category)

	candidates := make([]weighted[affirmation], 0, len(affirmations))
	for _, a := range affirmations {
		w := 1.0

		if idx := indexOf(preferred, a.Category); idx >= 0 {
			if idx == 0 {
				w *= 3.0
			} else {
				w *= 2.0
			}
		} else {
			w *= 0.5
		}

		if a.Energy == energyCat {
			w *= 2.0
		} else if abs(energyIndex(a.Energy)-energyIndex(energyCat)) == 1 {
			w *= 1.5
		}

		candidates = append(candidates, weighted[affirmation]{item: a, weight: w})
	}

	selected := pickWeighted(newRNG(req.Seed), candidates)

	alignment := 0.5
	if indexOf(preferred, selected.Category) >= 0 {
		alignment += 0.3
	}
	if selected.Energy == energyCat {
		alignment += 0.2
	}
	if alignment > 1.0 {
		alignment = 1.0
	}

	return &AffirmationResult{
		Text:          strings.ReplaceAll(selected.Text, "{name}", displayName),
		Category:      selected.Category,
		MoodAlignment: round2(alignment),
	}, nil
}

func validateAffirm(req AffirmRequest) error {
	if indexOf(validMoods, strings.ToLower(req.Mood)) < 0 {
		return valueErrorf("invalid mood %q; must be one of: %s", req.Mood, strings.Join(validMoods, ", "))
	}
	if req.Energy < 1 || req.Energy > 10 {
		return valueErrorf("energy must be between 1 and 10")
	}
	if req.Category != "" && indexOf(validCategories, strings.ToLower(req.Category)) < 0 {
		return valueErrorf("invalid category %q; must be one of: %s", req.Category, strings.Join(validCategories, ", "))
	}
	return nil
}

// sanitizeName trims and title-cases the name; an empty or whitespace-only
// name becomes "Developer".
func sanitizeName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "Developer"
	}
	return titleCaser.String(trimmed)
}

func preferredCategories(mood, category string) []string {
	if category != "" {
		return []string{strings.ToLower(category)}
	}
	if cats, ok := moodCategories[strings.ToLower(mood)]; ok {
		return cats
	}
	return []string{"motivation"}
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
