package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/gradeplan/internal/app"
	"github.com/alexanderramin/gradeplan/internal/cli/formatter"
	"github.com/alexanderramin/gradeplan/internal/domain"
	"github.com/alexanderramin/gradeplan/internal/preset"
	"github.com/alexanderramin/gradeplan/internal/service"
	"github.com/alexanderramin/gradeplan/internal/validation"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

type editorMode int

const (
	modeTable editorMode = iota
	modeForm
	modeAbout
)

// budgetStep is how much +/- change the weekly budget.
const budgetStep = 1.0

// resultMsg carries a finished solve back into the editor.
type resultMsg struct {
	res *app.OptimizationResult
	err error
}

// formState tracks an open add/edit form. index is -1 when adding.
type formState struct {
	form   *huh.Form
	fields *activityFields
	index  int
}

// EditorModel is the bubbletea model of the activity table editor.
type EditorModel struct {
	plan       service.PlanService
	activities []domain.Activity
	budget     float64
	name       string
	presetName string
	source     string

	table table.Model
	keys  editorKeyMap
	help  help.Model

	mode   editorMode
	form   *formState
	result *app.OptimizationResult
	err    error
	status string

	quitting bool
}

// NewEditorModel opens the editor on a loaded table.
func NewEditorModel(plan service.PlanService, src *loadedSource) EditorModel {
	t := table.New(
		table.WithColumns(editorColumns()),
		table.WithFocused(true),
		table.WithHeight(8),
	)
	t.SetStyles(editorTableStyles())

	m := EditorModel{
		plan:       plan,
		activities: domain.CloneActivities(src.Activities),
		budget:     src.BudgetHours,
		name:       src.Name,
		presetName: src.Preset,
		source:     src.Label,
		table:      t,
		keys:       newEditorKeyMap(),
		help:       help.New(),
	}
	m.refreshRows()
	return m
}

// Activities returns a copy of the table being edited.
func (m EditorModel) Activities() []domain.Activity {
	return domain.CloneActivities(m.activities)
}

func (m EditorModel) BudgetHours() float64 { return m.budget }

// Name is the activity-set label shown in the title.
func (m EditorModel) Name() string { return m.name }

// Result is the last solve, or nil when the table changed since.
func (m EditorModel) Result() *app.OptimizationResult { return m.result }

func editorColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 3},
		{Title: "Activity", Width: 20},
		{Title: "Weight", Width: 7},
		{Title: "h/pt", Width: 6},
		{Title: "Done", Width: 5},
		{Title: "Grade", Width: 6},
		{Title: "Hours", Width: 7},
		{Title: "Result", Width: 7},
	}
}

func editorTableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(formatter.ColorDim).
		BorderBottom(true).
		Foreground(formatter.ColorHeader).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(formatter.ColorFg).
		Background(lipgloss.Color("#504945")).
		Bold(false)
	return s
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m EditorModel) Init() tea.Cmd {
	return nil
}

func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.table.SetHeight(max(3, msg.Height-14))
		return m, nil

	case resultMsg:
		m.result, m.err = msg.res, msg.err
		m.status = ""
		m.refreshRows()
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.mode {
		case modeForm:
			return m.updateForm(msg)
		case modeAbout:
			m.mode = modeTable
			return m, nil
		}
		return m.handleKey(msg)
	}

	if m.mode == modeForm {
		return m.updateForm(msg)
	}
	return m, nil
}

func (m EditorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.table.MoveUp(1)

	case key.Matches(msg, m.keys.Down):
		m.table.MoveDown(1)

	case key.Matches(msg, m.keys.Toggle):
		if i, ok := m.selected(); ok {
			m.activities[i].ToggleDone()
			m.invalidate()
		}

	case key.Matches(msg, m.keys.Edit):
		if i, ok := m.selected(); ok {
			return m.openForm(i, fieldsFromActivity(m.activities[i]))
		}

	case key.Matches(msg, m.keys.Add):
		return m.openForm(-1, &activityFields{effort: "1"})

	case key.Matches(msg, m.keys.Delete):
		m.deleteSelected()

	case key.Matches(msg, m.keys.BudgetUp):
		m.budget = wrapBudget(m.budget + budgetStep)
		m.invalidate()

	case key.Matches(msg, m.keys.BudgetDown):
		m.budget = wrapBudget(m.budget - budgetStep)
		m.invalidate()

	case key.Matches(msg, m.keys.Preset):
		m.loadPreset(preset.Next(m.presetName))

	case key.Matches(msg, m.keys.Calculate):
		m.status = "Calculating…"
		return m, m.calculate()

	case key.Matches(msg, m.keys.About):
		m.mode = modeAbout
	}
	return m, nil
}

// wrapBudget keeps the budget in [0, 168], wrapping past either end.
func wrapBudget(h float64) float64 {
	switch {
	case h > domain.MaxWeeklyHours:
		return 0
	case h < 0:
		return domain.MaxWeeklyHours
	default:
		return h
	}
}

func (m EditorModel) selected() (int, bool) {
	i := m.table.Cursor()
	return i, i >= 0 && i < len(m.activities)
}

func (m *EditorModel) deleteSelected() {
	i, ok := m.selected()
	if !ok {
		return
	}
	if len(m.activities) == 1 {
		m.status = "A table needs at least one activity."
		return
	}
	label := m.activities[i].Label(i)
	m.activities = append(m.activities[:i], m.activities[i+1:]...)
	m.invalidate()
	if i >= len(m.activities) {
		m.table.SetCursor(len(m.activities) - 1)
	}
	m.status = fmt.Sprintf("Deleted %s.", label)
}

func (m *EditorModel) loadPreset(name string) {
	set, err := preset.Get(name)
	if err != nil {
		m.err = err
		return
	}
	m.activities = set.Activities
	m.budget = domain.ValueOr(set.BudgetHours, m.budget)
	m.name, m.presetName, m.source = set.Name, name, name
	m.table.SetCursor(0)
	m.invalidate()
	m.status = fmt.Sprintf("Loaded preset %s.", name)
}

// invalidate drops a result that no longer matches the table.
func (m *EditorModel) invalidate() {
	m.result, m.err = nil, nil
	m.status = ""
	m.refreshRows()
}

func (m EditorModel) calculate() tea.Cmd {
	req := app.NewOptimizeRequest(m.activities, m.budget)
	req.Source = m.source
	plan := m.plan
	return func() tea.Msg {
		res, err := plan.Optimize(context.Background(), req)
		return resultMsg{res: res, err: err}
	}
}

// ── form handling ────────────────────────────────────────────────────────────

func (m EditorModel) openForm(index int, fields *activityFields) (tea.Model, tea.Cmd) {
	title := "New activity"
	if index >= 0 {
		title = m.activities[index].Label(index)
	}
	m.form = &formState{form: newActivityForm(title, fields), fields: fields, index: index}
	m.mode = modeForm
	return m, m.form.form.Init()
}

func (m EditorModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.closeForm("Cancelled.")
		return m, nil
	}

	form, cmd := m.form.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form.form = f
	}

	switch m.form.form.State {
	case huh.StateAborted:
		m.closeForm("Cancelled.")
		return m, nil
	case huh.StateCompleted:
		m.commitForm()
		return m, nil
	}
	return m, cmd
}

func (m *EditorModel) commitForm() {
	fs := m.form
	row, id := fs.index, ""
	if row < 0 {
		row = len(m.activities)
	} else {
		id = m.activities[row].ID
	}

	a, err := applyActivityFields(row, id, fs.fields)
	if err != nil {
		m.closeForm("")
		m.err = err
		return
	}

	if fs.index < 0 {
		m.activities = append(m.activities, a)
	} else {
		m.activities[fs.index] = a
	}
	m.closeForm("")
	m.invalidate()
	m.table.SetCursor(row)
	m.status = fmt.Sprintf("Saved %s.", a.Label(row))
}

func (m *EditorModel) closeForm(status string) {
	m.form = nil
	m.mode = modeTable
	m.status = status
}

// ── rendering ────────────────────────────────────────────────────────────────

func (m *EditorModel) refreshRows() {
	rows := make([]table.Row, len(m.activities))
	for i, a := range m.activities {
		done, grade := "", ""
		if a.Done {
			done = "✔"
			grade = formatter.FormatGrade(a.GradeOr(0))
		}
		hours, result := "", ""
		if alloc, ok := m.result.AllocationFor(i); ok && m.result.IsOptimal() {
			hours = formatter.FormatHours(alloc.AllocatedHours)
			result = formatter.FormatGrade(alloc.ResultingGrade)
		}
		rows[i] = table.Row{
			strconv.Itoa(i + 1),
			a.Label(i),
			validation.FormatNumber(a.Weight),
			validation.FormatNumber(a.EffortPerGrade),
			done,
			grade,
			hours,
			result,
		}
	}
	m.table.SetRows(rows)
}

func (m EditorModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(formatter.StyleHeader.Render("GRADEPLAN"))
	if m.source != "" {
		b.WriteString(formatter.Dim("  " + domain.FirstSet(m.name, m.source)))
	}
	b.WriteString("\n\n")

	switch m.mode {
	case modeForm:
		b.WriteString(m.form.form.View())
		b.WriteString("\n")
		b.WriteString(formatter.Dim("esc cancel"))
		return b.String()
	case modeAbout:
		b.WriteString(formatter.FormatAbout())
		b.WriteString("\n")
		b.WriteString(formatter.Dim("press any key to return"))
		return b.String()
	}

	b.WriteString(m.table.View())
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s  %s %s %s   %s\n",
		formatter.Bold("Weekly budget"),
		formatter.Dim("◀"), formatter.StyleBlue.Render(formatter.FormatHours(m.budget)), formatter.Dim("▶"),
		formatter.Dim(fmt.Sprintf("weights sum to %.4f", domain.WeightSum(m.activities)))))
	b.WriteString("\n")
	b.WriteString(m.resultView())

	if m.status != "" {
		b.WriteString(formatter.Dim(m.status) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m EditorModel) resultView() string {
	if m.err != nil {
		return formatter.FormatError(m.err) + "\n"
	}
	if m.result == nil {
		return formatter.Dim("Press enter to calculate.") + "\n"
	}
	if !m.result.IsOptimal() {
		return formatter.FormatInvalidResult(m.result)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s\n", formatter.Bold("Best weighted average"), formatter.RenderGradeBar(m.result.WeightedAverage, 20)))
	if m.result.UnspentHours > 0 {
		b.WriteString(formatter.Dim(fmt.Sprintf("%s left over: every pending activity already reaches 10.",
			formatter.FormatHours(m.result.UnspentHours))) + "\n")
	}
	for _, w := range m.result.Warnings {
		b.WriteString(formatter.StyleYellow.Render("! "+w.Message) + "\n")
	}
	return b.String()
}
