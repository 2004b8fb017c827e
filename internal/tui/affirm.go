package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/flowdeck/internal/focus"
	"github.com/sadopc/flowdeck/internal/store"
)

var moods = []string{"happy", "stressed", "anxious", "tired", "frustrated", "motivated", "neutral"}
var affirmCategories = []string{"auto", "motivation", "confidence", "persistence", "self-care", "growth"}

type affirmModel struct {
	store  *store.Store
	width  int
	height int

	result  *focus.AffirmationResult
	lastReq *focus.AffirmRequest
	errText string

	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	name     *string
	mood     *string
	energy   *string
	category *string
}

func newAffirmModel(s *store.Store) affirmModel {
	name, mood, energy, cat := "", "", "", ""
	return affirmModel{
		store:    s,
		name:     &name,
		mood:     &mood,
		energy:   &energy,
		category: &cat,
	}
}

func (a *affirmModel) setSize(w, h int) {
	a.width = w
	a.height = h
}

func (a affirmModel) update(msg tea.Msg) (affirmModel, tea.Cmd) {
	if a.formActive && a.form != nil {
		return a.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Enter), key.Matches(msg, keys.New):
			return a.showForm()
		case key.Matches(msg, keys.Reroll):
			return a.reroll()
		}
	}
	return a, nil
}

func (a affirmModel) showForm() (affirmModel, tea.Cmd) {
	name, err := a.store.GetSetting("display_name")
	if err != nil {
		name = ""
	}
	mood, err := a.store.GetSetting("mood")
	if err != nil || mood == "" {
		mood = "neutral"
	}
	*a.name = name
	*a.mood = mood
	*a.energy = strconv.Itoa(a.store.GetSettingInt("energy", 5))
	*a.category = "auto"

	moodOptions := make([]huh.Option[string], len(moods))
	for i, m := range moods {
		moodOptions[i] = huh.NewOption(m, m)
	}
	catOptions := make([]huh.Option[string], len(affirmCategories))
	for i, c := range affirmCategories {
		catOptions[i] = huh.NewOption(c, c)
	}

	a.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Your name").Value(a.name),
			huh.NewSelect[string]().Title("Mood").Options(moodOptions...).Value(a.mood),
			huh.NewInput().Title("Energy level (1-10)").Value(a.energy),
			huh.NewSelect[string]().Title("Category").Description("auto = pick by mood").Options(catOptions...).Value(a.category),
		),
	).WithShowHelp(true).WithShowErrors(true)

	a.formActive = true
	return a, a.form.Init()
}

func (a affirmModel) updateForm(msg tea.Msg) (affirmModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			a.formActive = false
			a.form = nil
			return a, nil
		}
	}

	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	if a.form.State == huh.StateCompleted {
		a.formActive = false
		return a.affirm()
	}

	return a, cmd
}

func (a affirmModel) affirm() (affirmModel, tea.Cmd) {
	energy, err := strconv.Atoi(strings.TrimSpace(*a.energy))
	if err != nil {
		a.errText = "energy level must be a number"
		return a, nil
	}

	category := *a.category
	if category == "auto" {
		category = ""
	}

	req := focus.AffirmRequest{
		Name:     *a.name,
		Mood:     *a.mood,
		Energy:   energy,
		Category: category,
	}
	a.lastReq = &req

	// Remember the name for next time.
	if strings.TrimSpace(*a.name) != "" {
		a.store.SetSetting("display_name", strings.TrimSpace(*a.name))
	}

	return a.run(req)
}

func (a affirmModel) reroll() (affirmModel, tea.Cmd) {
	if a.lastReq == nil {
		return a, nil
	}
	return a.run(*a.lastReq)
}

func (a affirmModel) run(req focus.AffirmRequest) (affirmModel, tea.Cmd) {
	result, err := focus.Affirm(req)
	if err != nil {
		a.errText = err.Error()
		return a, nil
	}
	a.result = result
	a.errText = ""
	return a, nil
}

func (a affirmModel) view() string {
	w := a.width - 4

	if a.formActive && a.form != nil {
		title := titleStyle.Render("Get an Affirmation")
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", a.form.View()),
		)
	}

	title := titleStyle.Render("Affirm")

	if a.errText != "" {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			errorStyle.Render("  "+a.errText),
			"",
			mutedStyle.Render("  Press enter to try again"),
		)
		return panelStyle.Width(w).Render(content)
	}

	if a.result == nil {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render("Press enter for a developer affirmation."),
		)
		return panelStyle.Width(w).Render(content)
	}

	r := a.result
	card := cardStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		accentStyle.Render(r.Text),
		"",
		subtitleStyle.Render(fmt.Sprintf("%s · alignment %.2f", r.Category, r.MoodAlignment)),
	))

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		card,
		"",
		mutedStyle.Render("  r: another one  enter: new request"),
	)
	return panelStyle.Width(w).Render(content)
}
