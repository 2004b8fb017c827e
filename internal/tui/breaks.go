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

var breakTypes = []string{"any", "active", "rest", "social", "mindful"}
var breakDurations = []string{"5", "10", "15", "20"}

type breaksModel struct {
	store  *store.Store
	width  int
	height int

	suggestion *focus.BreakSuggestion
	lastReq    *focus.BreakRequest
	errText    string

	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	minutesWorked *string
	energyLevel   *string
	breakType     *string
	duration      *string
	indoorOnly    *bool
}

func newBreaksModel(s *store.Store) breaksModel {
	mw, el, bt, dur := "", "", "", ""
	indoor := false
	return breaksModel{
		store:         s,
		minutesWorked: &mw,
		energyLevel:   &el,
		breakType:     &bt,
		duration:      &dur,
		indoorOnly:    &indoor,
	}
}

func (b *breaksModel) setSize(w, h int) {
	b.width = w
	b.height = h
}

func (b breaksModel) update(msg tea.Msg) (breaksModel, tea.Cmd) {
	if b.formActive && b.form != nil {
		return b.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Enter), key.Matches(msg, keys.New):
			return b.showForm()
		case key.Matches(msg, keys.Reroll):
			return b.reroll()
		}
	}
	return b, nil
}

func (b breaksModel) showForm() (breaksModel, tea.Cmd) {
	*b.minutesWorked = "25"
	*b.energyLevel = strconv.Itoa(b.store.GetSettingInt("energy", 5))
	bt, err := b.store.GetSetting("break_type")
	if err != nil || bt == "" {
		bt = "any"
	}
	*b.breakType = bt
	*b.duration = strconv.Itoa(b.store.GetSettingInt("break_duration", 5))
	*b.indoorOnly = b.store.GetSettingInt("indoor_only", 0) == 1

	typeOptions := make([]huh.Option[string], len(breakTypes))
	for i, t := range breakTypes {
		typeOptions[i] = huh.NewOption(t, t)
	}
	durOptions := make([]huh.Option[string], len(breakDurations))
	for i, d := range breakDurations {
		durOptions[i] = huh.NewOption(d+" min", d)
	}

	b.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Minutes worked").Value(b.minutesWorked),
			huh.NewInput().Title("Energy level (1-10)").Value(b.energyLevel),
			huh.NewSelect[string]().Title("Break type").Options(typeOptions...).Value(b.breakType),
			huh.NewSelect[string]().Title("Max duration").Options(durOptions...).Value(b.duration),
			huh.NewConfirm().Title("Indoor only?").Value(b.indoorOnly),
		),
	).WithShowHelp(true).WithShowErrors(true)

	b.formActive = true
	return b, b.form.Init()
}

func (b breaksModel) updateForm(msg tea.Msg) (breaksModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			b.formActive = false
			b.form = nil
			return b, nil
		}
	}

	form, cmd := b.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		b.form = f
	}

	if b.form.State == huh.StateCompleted {
		b.formActive = false
		return b.suggest()
	}

	return b, cmd
}

func (b breaksModel) suggest() (breaksModel, tea.Cmd) {
	minutes, err := strconv.Atoi(strings.TrimSpace(*b.minutesWorked))
	if err != nil {
		b.errText = "minutes worked must be a number"
		return b, nil
	}
	energy, err := strconv.Atoi(strings.TrimSpace(*b.energyLevel))
	if err != nil {
		b.errText = "energy level must be a number"
		return b, nil
	}
	duration, _ := strconv.Atoi(*b.duration)

	req := focus.BreakRequest{
		MinutesWorked: minutes,
		EnergyLevel:   energy,
		BreakType:     *b.breakType,
		Duration:      duration,
		IndoorOnly:    *b.indoorOnly,
	}
	b.lastReq = &req
	return b.run(req)
}

func (b breaksModel) reroll() (breaksModel, tea.Cmd) {
	if b.lastReq == nil {
		return b, nil
	}
	return b.run(*b.lastReq)
}

func (b breaksModel) run(req focus.BreakRequest) (breaksModel, tea.Cmd) {
	suggestion, err := focus.SuggestBreak(req)
	if err != nil {
		b.errText = err.Error()
		return b, nil
	}
	b.suggestion = suggestion
	b.errText = ""
	return b, func() tea.Msg {
		return statusMsg{text: "Break suggested: " + suggestion.Name}
	}
}

func (b breaksModel) view() string {
	w := b.width - 4

	if b.formActive && b.form != nil {
		title := titleStyle.Render("Suggest a Break")
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", b.form.View()),
		)
	}

	title := titleStyle.Render("Breaks")

	if b.errText != "" {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			errorStyle.Render("  "+b.errText),
			"",
			mutedStyle.Render("  Press enter to try again"),
		)
		return panelStyle.Width(w).Render(content)
	}

	if b.suggestion == nil {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render("No suggestion yet. Press enter to get one."),
		)
		return panelStyle.Width(w).Render(content)
	}

	s := b.suggestion
	card := cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(s.Name),
		"",
		normalItemStyle.Render(s.Description),
		"",
		subtitleStyle.Render(fmt.Sprintf("%s · %d min · %s · %s energy",
			s.Category, s.Duration, s.Location, s.EnergyRequired)),
	))

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	rows = append(rows, card)
	if s.Warning != "" {
		rows = append(rows, "")
		rows = append(rows, warningStyle.Render("  "+s.Warning))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  r: reroll  enter: new request"))

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
