package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/flowdeck/internal/focus"
	"github.com/sadopc/flowdeck/internal/store"
)

type settingsModel struct {
	store  *store.Store
	width  int
	height int

	settings   []store.Setting
	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	displayName   *string
	technique     *string
	workLength    *string
	shortBreak    *string
	longBreak     *string
	interval      *string
	breakType     *string
	breakDuration *string
	indoorOnly    *bool
	mood          *string
	energy        *string
}

func newSettingsModel(s *store.Store) settingsModel {
	dn, tech := "", ""
	wl, sb, lb, iv := "", "", "", ""
	bt, bd, md, en := "", "", "", ""
	indoor := false
	return settingsModel{
		store:         s,
		displayName:   &dn,
		technique:     &tech,
		workLength:    &wl,
		shortBreak:    &sb,
		longBreak:     &lb,
		interval:      &iv,
		breakType:     &bt,
		breakDuration: &bd,
		indoorOnly:    &indoor,
		mood:          &md,
		energy:        &en,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

type settingsDataMsg struct {
	settings []store.Setting
}

func (s settingsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		settings, _ := s.store.GetAllSettings()
		return settingsDataMsg{settings: settings}
	}
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	switch msg := msg.(type) {
	case settingsDataMsg:
		s.settings = msg.settings
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Enter), key.Matches(msg, keys.New):
			return s.showForm()
		}
	}
	return s, nil
}

func (s settingsModel) showForm() (settingsModel, tea.Cmd) {
	// Load current values
	*s.displayName = s.getVal("display_name", "")
	*s.technique = s.getVal("technique", "pomodoro")
	*s.workLength = s.getVal("work_length", "25")
	*s.shortBreak = s.getVal("short_break", "5")
	*s.longBreak = s.getVal("long_break", "15")
	*s.interval = s.getVal("long_break_interval", "4")
	*s.breakType = s.getVal("break_type", "any")
	*s.breakDuration = s.getVal("break_duration", "5")
	*s.indoorOnly = s.getVal("indoor_only", "0") == "1"
	*s.mood = s.getVal("mood", "neutral")
	*s.energy = s.getVal("energy", "5")

	techOptions := make([]huh.Option[string], len(focus.Techniques))
	for i, t := range focus.Techniques {
		techOptions[i] = huh.NewOption(string(t), string(t))
	}
	typeOptions := make([]huh.Option[string], len(breakTypes))
	for i, t := range breakTypes {
		typeOptions[i] = huh.NewOption(t, t)
	}
	durOptions := make([]huh.Option[string], len(breakDurations))
	for i, d := range breakDurations {
		durOptions[i] = huh.NewOption(d+" min", d)
	}
	moodOptions := make([]huh.Option[string], len(moods))
	for i, m := range moods {
		moodOptions[i] = huh.NewOption(m, m)
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Display name").Value(s.displayName),
			huh.NewSelect[string]().Title("Mood").Options(moodOptions...).Value(s.mood),
			huh.NewInput().Title("Energy level (1-10)").Value(s.energy),
		).Title("Profile"),
		huh.NewGroup(
			huh.NewSelect[string]().Title("Technique").Options(techOptions...).Value(s.technique),
			huh.NewInput().Title("Work length (min)").Value(s.workLength),
			huh.NewInput().Title("Short break (min)").Value(s.shortBreak),
			huh.NewInput().Title("Long break (min)").Value(s.longBreak),
			huh.NewInput().Title("Long break interval").Value(s.interval),
		).Title("Planner"),
		huh.NewGroup(
			huh.NewSelect[string]().Title("Break type").Options(typeOptions...).Value(s.breakType),
			huh.NewSelect[string]().Title("Break duration").Options(durOptions...).Value(s.breakDuration),
			huh.NewConfirm().Title("Indoor only?").Value(s.indoorOnly),
		).Title("Breaks"),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func (s settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			s.formActive = false
			s.form = nil
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.formActive = false
		s.saveSettings()
		return s, s.refresh()
	}

	return s, cmd
}

func (s settingsModel) saveSettings() {
	s.store.SetSetting("display_name", *s.displayName)
	s.store.SetSetting("technique", *s.technique)
	s.store.SetSetting("work_length", *s.workLength)
	s.store.SetSetting("short_break", *s.shortBreak)
	s.store.SetSetting("long_break", *s.longBreak)
	s.store.SetSetting("long_break_interval", *s.interval)
	s.store.SetSetting("break_type", *s.breakType)
	s.store.SetSetting("break_duration", *s.breakDuration)
	s.store.SetSetting("indoor_only", boolToFlag(*s.indoorOnly))
	s.store.SetSetting("mood", *s.mood)
	s.store.SetSetting("energy", *s.energy)
}

func boolToFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func (s settingsModel) getVal(k, fallback string) string {
	v, err := s.store.GetSetting(k)
	if err != nil {
		return fallback
	}
	return v
}

func (s settingsModel) view() string {
	w := s.width - 4

	if s.formActive && s.form != nil {
		title := titleStyle.Render("Settings")
		formView := s.form.View()
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", formView),
		)
	}

	title := titleStyle.Render("Settings")
	hint := mutedStyle.Render("Press enter to edit settings")

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	for _, setting := range s.settings {
		label := lipgloss.NewStyle().Width(24).Render(setting.Key)
		value := highlightStyle.Render(formatSettingValue(setting.Key, setting.Value))
		rows = append(rows, fmt.Sprintf("  %s %s", label, value))
	}

	rows = append(rows, "")
	rows = append(rows, hint)

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func formatSettingValue(k, v string) string {
	switch k {
	case "work_length", "short_break", "long_break", "break_duration":
		if mins, err := strconv.Atoi(v); err == nil {
			return fmt.Sprintf("%d min", mins)
		}
	case "indoor_only":
		if v == "1" {
			return "yes"
		}
		return "no"
	case "display_name":
		if v == "" {
			return "(not set)"
		}
	}
	return v
}
