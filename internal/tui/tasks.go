package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/flowdeck/internal/focus"
	"github.com/sadopc/flowdeck/internal/store"
)

var importanceLevels = []string{"1", "2", "3", "4", "5"}

type tasksModel struct {
	store  *store.Store
	width  int
	height int

	tasks  []store.Task
	cursor int

	ranked  []focus.ScoredTask
	method  focus.Method
	showing bool // true = showing ranked results

	formActive bool
	form       *huh.Form

	// Form field pointers (survive value copies)
	formName       *string
	formImportance *string
	formEffort     *string
	formDeadline   *string
	formTags       *string
	formNotes      *string
}

func newTasksModel(s *store.Store) tasksModel {
	name, imp, eff := "", "3", "3"
	deadline, tags, notes := "", "", ""
	return tasksModel{
		store:          s,
		method:         focus.MethodWeighted,
		formName:       &name,
		formImportance: &imp,
		formEffort:     &eff,
		formDeadline:   &deadline,
		formTags:       &tags,
		formNotes:      &notes,
	}
}

func (t *tasksModel) setSize(w, h int) {
	t.width = w
	t.height = h
}

type tasksDataMsg struct {
	tasks []store.Task
}

func (t tasksModel) refresh() tea.Cmd {
	return func() tea.Msg {
		tasks, _ := t.store.ListTasks(false)
		return tasksDataMsg{tasks: tasks}
	}
}

func (t tasksModel) update(msg tea.Msg) (tasksModel, tea.Cmd) {
	if t.formActive && t.form != nil {
		return t.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tasksDataMsg:
		t.tasks = msg.tasks
		if t.cursor >= len(t.tasks) {
			t.cursor = max(0, len(t.tasks)-1)
		}
		return t, nil

	case tea.KeyMsg:
		if t.showing {
			return t.updateRankedView(msg)
		}
		return t.updateTaskList(msg)
	}
	return t, nil
}

func (t tasksModel) updateTaskList(msg tea.KeyMsg) (tasksModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if t.cursor > 0 {
			t.cursor--
		}
	case key.Matches(msg, keys.Down):
		if t.cursor < len(t.tasks)-1 {
			t.cursor++
		}
	case key.Matches(msg, keys.New):
		return t.showNewTaskForm()
	case key.Matches(msg, keys.Delete):
		if len(t.tasks) > 0 {
			task := t.tasks[t.cursor]
			t.store.ArchiveTask(task.ID)
			return t, t.refresh()
		}
	case key.Matches(msg, keys.Method):
		t.toggleMethod()
	case key.Matches(msg, keys.Prioritize):
		return t.prioritize()
	}
	return t, nil
}

func (t tasksModel) updateRankedView(msg tea.KeyMsg) (tasksModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Back):
		t.showing = false
	case key.Matches(msg, keys.Method):
		t.toggleMethod()
		return t.prioritize()
	case key.Matches(msg, keys.Prioritize):
		return t.prioritize()
	}
	return t, nil
}

func (t *tasksModel) toggleMethod() {
	if t.method == focus.MethodWeighted {
		t.method = focus.MethodDeadline
	} else {
		t.method = focus.MethodWeighted
	}
}

// toFocusTasks converts the stored task list for scoring.
func toFocusTasks(tasks []store.Task) []focus.Task {
	out := make([]focus.Task, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, focus.Task{
			Name:       t.Name,
			Importance: t.Importance,
			Effort:     t.Effort,
			Deadline:   t.Deadline,
			Tags:       t.Tags,
			Notes:      t.Notes,
		})
	}
	return out
}

func (t tasksModel) prioritize() (tasksModel, tea.Cmd) {
	if len(t.tasks) == 0 {
		return t, func() tea.Msg {
			return statusMsg{text: "No tasks to prioritize", isError: true}
		}
	}

	ranked, err := focus.Prioritize(toFocusTasks(t.tasks), t.method, nil)
	if err != nil {
		return t, func() tea.Msg {
			return statusMsg{text: fmt.Sprintf("Prioritize error: %v", err), isError: true}
		}
	}

	t.ranked = ranked
	t.showing = true
	return t, nil
}

func (t tasksModel) showNewTaskForm() (tasksModel, tea.Cmd) {
	*t.formName = ""
	*t.formImportance = "3"
	*t.formEffort = "3"
	*t.formDeadline = ""
	*t.formTags = ""
	*t.formNotes = ""

	levelOptions := make([]huh.Option[string], len(importanceLevels))
	for i, l := range importanceLevels {
		levelOptions[i] = huh.NewOption(l, l)
	}

	t.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Task Name").Value(t.formName),
			huh.NewSelect[string]().Title("Importance (1-5)").Options(levelOptions...).Value(t.formImportance),
			huh.NewSelect[string]().Title("Effort (1-5)").Options(levelOptions...).Value(t.formEffort),
			huh.NewInput().Title("Deadline (YYYY-MM-DD, optional)").Value(t.formDeadline),
			huh.NewInput().Title("Tags (comma-separated)").Value(t.formTags),
			huh.NewInput().Title("Notes").Value(t.formNotes),
		),
	).WithShowHelp(true).WithShowErrors(true)

	t.formActive = true
	return t, t.form.Init()
}

func (t tasksModel) updateForm(msg tea.Msg) (tasksModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			t.formActive = false
			t.form = nil
			return t, nil
		}
	}

	form, cmd := t.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		t.form = f
	}

	if t.form.State == huh.StateCompleted {
		t.formActive = false
		if *t.formName != "" {
			imp := parseLevel(*t.formImportance)
			eff := parseLevel(*t.formEffort)
			t.store.CreateTask(*t.formName, imp, eff, strings.TrimSpace(*t.formDeadline), *t.formTags, *t.formNotes)
		}
		return t, t.refresh()
	}

	return t, cmd
}

func parseLevel(s string) int {
	switch s {
	case "1", "2", "3", "4", "5":
		return int(s[0] - '0')
	}
	return 3
}

func (t tasksModel) view() string {
	if t.formActive && t.form != nil {
		title := titleStyle.Render("New Task")
		content := lipgloss.JoinVertical(lipgloss.Left, title, "", t.form.View())
		return panelStyle.Width(t.width - 4).Render(content)
	}

	if t.showing {
		return t.renderRankedView()
	}
	return t.renderTaskList()
}

func (t tasksModel) renderTaskList() string {
	w := t.width - 4
	title := titleStyle.Render("Tasks")

	if len(t.tasks) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render("No tasks yet. Press n to create one."),
		)
		return panelStyle.Width(w).Render(content)
	}

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	header := mutedStyle.Render(fmt.Sprintf("  %-3s %-28s %-4s %-4s %-12s %s", "", "Name", "Imp", "Eff", "Deadline", "Tags"))
	rows = append(rows, header)

	for i, task := range t.tasks {
		cursor := "  "
		style := normalItemStyle
		if i == t.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		deadline := task.Deadline
		if deadline == "" {
			deadline = "—"
		}
		row := style.Render(fmt.Sprintf("%s  %-28s %-4d %-4d %-12s", cursor, task.Name, task.Importance, task.Effort, deadline))
		if task.Tags != "" {
			row += mutedStyle.Render(" [" + task.Tags + "]")
		}
		rows = append(rows, row)
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render(fmt.Sprintf("  n: new  d: archive  p: prioritize  m: method (%s)", t.method)))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (t tasksModel) renderRankedView() string {
	w := t.width - 4
	title := titleStyle.Render(fmt.Sprintf("Prioritized — %s method", t.method))

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	header := mutedStyle.Render(fmt.Sprintf("  %-5s %-28s %8s %-12s %s", "Rank", "Name", "Score", "Deadline", "Due in"))
	rows = append(rows, header)
	rows = append(rows, mutedStyle.Render("  "+strings.Repeat("─", min(w-6, 62))))

	for _, st := range t.ranked {
		deadline := st.Deadline
		if deadline == "" {
			deadline = "—"
		}
		dueIn := ""
		if st.DaysUntilDeadline != nil {
			dueIn = fmt.Sprintf("%dd", *st.DaysUntilDeadline)
		}
		score := highlightStyle.Render(fmt.Sprintf("%8.2f", st.PriorityScore))
		rows = append(rows, fmt.Sprintf("  %-5d %-28s %s %-12s %s", st.Rank, st.Name, score, deadline, dueIn))
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  m: switch method  e: export  esc: back"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
