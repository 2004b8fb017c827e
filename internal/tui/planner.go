package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/flowdeck/internal/focus"
	"github.com/sadopc/flowdeck/internal/store"
)

type plannerModel struct {
	store  *store.Store
	width  int
	height int

	plan      *focus.Plan
	technique focus.Technique
	errText   string

	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	totalMinutes *string
	formTech     *string
	workLength   *string
	shortBreak   *string
	longBreak    *string
	interval     *string

	chart barchart.Model
}

func newPlannerModel(s *store.Store) plannerModel {
	total, tech := "", ""
	wl, sb, lb, iv := "", "", "", ""
	return plannerModel{
		store:        s,
		chart:        barchart.New(60, 10),
		totalMinutes: &total,
		formTech:     &tech,
		workLength:   &wl,
		shortBreak:   &sb,
		longBreak:    &lb,
		interval:     &iv,
	}
}

func (p *plannerModel) setSize(w, h int) {
	p.width = w
	p.height = h
	if p.plan != nil {
		p.buildChart()
	}
}

func (p plannerModel) update(msg tea.Msg) (plannerModel, tea.Cmd) {
	if p.formActive && p.form != nil {
		return p.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Enter), key.Matches(msg, keys.New):
			return p.showForm()
		}
	}
	return p, nil
}

func (p plannerModel) showForm() (plannerModel, tea.Cmd) {
	*p.totalMinutes = "120"
	tech, err := p.store.GetSetting("technique")
	if err != nil || tech == "" {
		tech = string(focus.TechniquePomodoro)
	}
	*p.formTech = tech
	*p.workLength = ""
	*p.shortBreak = ""
	*p.longBreak = ""
	*p.interval = ""
	if tech == string(focus.TechniqueCustom) {
		*p.workLength = strconv.Itoa(p.store.GetSettingInt("work_length", 25))
		*p.shortBreak = strconv.Itoa(p.store.GetSettingInt("short_break", 5))
		*p.longBreak = strconv.Itoa(p.store.GetSettingInt("long_break", 15))
		*p.interval = strconv.Itoa(p.store.GetSettingInt("long_break_interval", 4))
	}

	techOptions := make([]huh.Option[string], len(focus.Techniques))
	for i, t := range focus.Techniques {
		techOptions[i] = huh.NewOption(string(t), string(t))
	}

	p.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Available time (min)").Value(p.totalMinutes),
			huh.NewSelect[string]().Title("Technique").Options(techOptions...).Value(p.formTech),
		),
		huh.NewGroup(
			huh.NewInput().Title("Work length (min)").Description("blank = technique default").Value(p.workLength),
			huh.NewInput().Title("Short break (min)").Description("blank = technique default").Value(p.shortBreak),
			huh.NewInput().Title("Long break (min)").Description("blank = technique default").Value(p.longBreak),
			huh.NewInput().Title("Long break interval").Description("custom technique only").Value(p.interval),
		).Title("Durations"),
	).WithShowHelp(true).WithShowErrors(true)

	p.formActive = true
	return p, p.form.Init()
}

func (p plannerModel) updateForm(msg tea.Msg) (plannerModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			p.formActive = false
			p.form = nil
			return p, nil
		}
	}

	form, cmd := p.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		p.form = f
	}

	if p.form.State == huh.StateCompleted {
		p.formActive = false
		return p.buildPlan()
	}

	return p, cmd
}

func (p plannerModel) buildPlan() (plannerModel, tea.Cmd) {
	total, err := strconv.Atoi(strings.TrimSpace(*p.totalMinutes))
	if err != nil {
		p.errText = "available time must be a number"
		return p, nil
	}

	req := focus.PlanRequest{
		TotalMinutes:      total,
		Technique:         focus.Technique(*p.formTech),
		WorkLength:        parseOptionalInt(*p.workLength),
		ShortBreak:        parseOptionalInt(*p.shortBreak),
		LongBreak:         parseOptionalInt(*p.longBreak),
		LongBreakInterval: parseOptionalInt(*p.interval),
	}

	plan, err := focus.PlanSchedule(req)
	if err != nil {
		p.errText = err.Error()
		return p, nil
	}

	p.plan = plan
	p.technique = req.Technique
	p.errText = ""
	p.buildChart()
	return p, func() tea.Msg {
		return statusMsg{text: fmt.Sprintf("Planned %d work sessions", plan.WorkSessions)}
	}
}

func parseOptionalInt(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

func sessionColor(t focus.SessionType) lipgloss.Color {
	switch t {
	case focus.SessionWork:
		return colorPrimary
	case focus.SessionShortBreak:
		return colorSecondary
	default:
		return colorHighlight
	}
}

func sessionLabel(t focus.SessionType) string {
	switch t {
	case focus.SessionWork:
		return "work"
	case focus.SessionShortBreak:
		return "short break"
	default:
		return "long break"
	}
}

func (p *plannerModel) buildChart() {
	chartWidth := p.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 10
	if p.height > 30 {
		chartHeight = 14
	}

	p.chart = barchart.New(chartWidth, chartHeight)

	var bars []barchart.BarData
	for _, sess := range p.plan.Sessions {
		style := lipgloss.NewStyle().Foreground(sessionColor(sess.Type))
		bars = append(bars, barchart.BarData{
			Label: fmt.Sprintf("%d", sess.Number),
			Values: []barchart.BarValue{{
				Name:  sessionLabel(sess.Type),
				Value: float64(sess.DurationMinutes),
				Style: style,
			}},
		})
	}

	p.chart.PushAll(bars)
	p.chart.Draw()
}

func (p plannerModel) view() string {
	w := p.width - 4

	if p.formActive && p.form != nil {
		title := titleStyle.Render("Plan a Session")
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", p.form.View()),
		)
	}

	title := titleStyle.Render("Planner")

	if p.errText != "" {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			errorStyle.Render("  "+p.errText),
			"",
			mutedStyle.Render("  Press enter to plan again"),
		)
		return panelStyle.Width(w).Render(content)
	}

	if p.plan == nil {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render("No schedule yet. Press enter to plan a session."),
		)
		return panelStyle.Width(w).Render(content)
	}

	summary := fmt.Sprintf("  %s · %d work sessions · %s focus · %s break",
		p.technique,
		p.plan.WorkSessions,
		formatMinutes(p.plan.TotalWorkMinutes),
		formatMinutes(p.plan.TotalBreakMinutes),
	)

	var rows []string
	rows = append(rows, title)
	rows = append(rows, subtitleStyle.Render(summary))
	if p.plan.Warning != "" {
		rows = append(rows, warningStyle.Render("  "+p.plan.Warning))
	}
	rows = append(rows, "")
	rows = append(rows, p.chart.View())
	rows = append(rows, "")
	rows = append(rows, p.renderSessionTable(w))
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: replan  e: export"))

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (p plannerModel) renderSessionTable(w int) string {
	var rows []string
	header := mutedStyle.Render(fmt.Sprintf("  %-4s %-14s %8s %8s %8s", "#", "Type", "Length", "Start", "End"))
	rows = append(rows, header)
	rows = append(rows, mutedStyle.Render("  "+strings.Repeat("─", min(w-6, 46))))

	for _, sess := range p.plan.Sessions {
		dot := lipgloss.NewStyle().Foreground(sessionColor(sess.Type)).Render("●")
		rows = append(rows, fmt.Sprintf("  %-4d %s %-12s %8s %8s %8s",
			sess.Number, dot, sessionLabel(sess.Type),
			formatMinutes(sess.DurationMinutes),
			formatClock(sess.StartMinute),
			formatClock(sess.EndMinute),
		))
	}

	return strings.Join(rows, "\n")
}
