// Package tui provides the interactive budget dashboard.
package tui

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"budgeteer/internal/budget"
	"budgeteer/internal/cli"
	"budgeteer/internal/model"
	"budgeteer/internal/service"
)

// saveDelay is how long the dashboard waits after the last edit before
// persisting. Rapid edits collapse into a single save.
const saveDelay = 750 * time.Millisecond

type inputMode int

const (
	modeBrowse inputMode = iota
	modeEditSpending
	modeEditPaycheck
)

type (
	saveTickMsg struct{}
	savedMsg    struct{ err error }
)

// Dashboard is the bubbletea model for the interactive budget view.
type Dashboard struct {
	store    service.Storage
	styles   *cli.Styles
	scenario model.Scenario
	symbol   string

	first    float64
	second   float64
	viewMode model.ViewMode
	basis    budget.Basis
	spending map[string]float64

	table table.Model
	input textinput.Model
	mode  inputMode

	dirty    bool
	lastEdit time.Time
	saveErr  error
	quitting bool
}

// NewDashboard builds the dashboard for a scenario with its persisted
// state already loaded.
func NewDashboard(store service.Storage, styles *cli.Styles, symbol string, scenario model.Scenario, data *service.ScenarioData) *Dashboard {
	first := scenario.DefaultPaycheck
	var second float64
	spending := make(map[string]float64)
	if data != nil {
		if data.FirstPaycheck > 0 {
			first = data.FirstPaycheck
		}
		second = data.SecondPaycheck
		for k, v := range data.Spending {
			spending[k] = v
		}
	}

	columns := []table.Column{
		{Title: "Category", Width: 22},
		{Title: "Pct", Width: 7},
		{Title: "Budgeted", Width: 11},
		{Title: "Actual", Width: 11},
		{Title: "Diff", Width: 11},
		{Title: "Status", Width: 13},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(len(scenario.Categories)+1),
	)
	ts := table.DefaultStyles()
	ts.Header = ts.Header.Bold(true)
	ts.Selected = ts.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	t.SetStyles(ts)

	input := textinput.New()
	input.CharLimit = 12
	input.Width = 14

	d := &Dashboard{
		store:    store,
		styles:   styles,
		scenario: scenario,
		symbol:   symbol,
		first:    first,
		second:   second,
		viewMode: model.ViewModeMonthly,
		basis:    budget.BasisBudgeted,
		spending: spending,
		table:    t,
		input:    input,
	}
	d.refreshRows()
	return d
}

// Init implements tea.Model.
func (d *Dashboard) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (d *Dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if d.mode != modeBrowse {
			return d.updateEditing(msg)
		}
		return d.updateBrowsing(msg)

	case saveTickMsg:
		if d.dirty && time.Since(d.lastEdit) >= saveDelay {
			return d, d.saveCmd()
		}
		return d, nil

	case savedMsg:
		d.saveErr = msg.err
		if msg.err == nil {
			d.dirty = false
		}
		if d.quitting {
			return d, tea.Quit
		}
		return d, nil
	}

	var cmd tea.Cmd
	d.table, cmd = d.table.Update(msg)
	return d, cmd
}

func (d *Dashboard) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		d.quitting = true
		if d.dirty {
			return d, d.saveCmd()
		}
		return d, tea.Quit

	case "enter":
		row := d.table.SelectedRow()
		if row == nil {
			return d, nil
		}
		d.mode = modeEditSpending
		d.input.Placeholder = "amount spent"
		d.input.SetValue("")
		d.input.Focus()
		return d, textinput.Blink

	case "p":
		d.mode = modeEditPaycheck
		d.input.Placeholder = fmt.Sprintf("paycheck (%.2f)", d.first)
		d.input.SetValue("")
		d.input.Focus()
		return d, textinput.Blink

	case "tab":
		d.viewMode = d.viewMode.Next()
		d.refreshRows()
		return d, nil

	case "b":
		if d.basis == budget.BasisBudgeted {
			d.basis = budget.BasisIncome
		} else {
			d.basis = budget.BasisBudgeted
		}
		return d, nil
	}

	var cmd tea.Cmd
	d.table, cmd = d.table.Update(msg)
	return d, cmd
}

func (d *Dashboard) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		d.mode = modeBrowse
		d.input.Blur()
		return d, nil

	case "enter":
		value, err := strconv.ParseFloat(d.input.Value(), 64)
		if err != nil || value < 0 {
			// Ignore unparseable input; stay in edit mode.
			return d, nil
		}

		if d.mode == modeEditPaycheck {
			d.first = value
		} else if row := d.table.SelectedRow(); row != nil {
			d.spending[row[0]] = value
		}

		d.mode = modeBrowse
		d.input.Blur()
		d.refreshRows()
		d.dirty = true
		d.lastEdit = time.Now()
		return d, tea.Tick(saveDelay, func(time.Time) tea.Msg { return saveTickMsg{} })
	}

	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

// saveCmd persists the current paychecks and spending.
func (d *Dashboard) saveCmd() tea.Cmd {
	data := &service.ScenarioData{
		Scenario:       d.scenario.Name,
		FirstPaycheck:  d.first,
		SecondPaycheck: d.second,
		Spending:       make(map[string]float64, len(d.spending)),
	}
	for k, v := range d.spending {
		data.Spending[k] = v
	}

	return func() tea.Msg {
		return savedMsg{err: d.store.SaveScenarioData(context.Background(), data)}
	}
}

func (d *Dashboard) refreshRows() {
	income := d.viewMode.Income(d.first, d.second)
	results := budget.ComputeCategoryResults(d.scenario, income, d.spending)
	d.table.SetRows(buildRows(d.symbol, results))
}

// buildRows converts results into table rows in alphabetical order.
func buildRows(symbol string, results map[string]budget.CategoryResult) []table.Row {
	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([]table.Row, 0, len(results))
	for _, name := range names {
		r := results[name]
		rows = append(rows, table.Row{
			r.Name,
			cli.Percent(r.Percentage),
			cli.Money(symbol, r.Budgeted),
			cli.Money(symbol, r.Actual),
			cli.Money(symbol, r.Difference),
			r.Status.Label(),
		})
	}
	return rows
}

// View implements tea.Model.
func (d *Dashboard) View() string {
	if d.quitting {
		return ""
	}

	income := d.viewMode.Income(d.first, d.second)
	results := budget.ComputeCategoryResults(d.scenario, income, d.spending)
	summary := budget.ComputeSummary(results, d.first, d.second, d.viewMode, d.basis)

	title := d.styles.Title.Render(cli.MoneyIcon + " " + d.scenario.Name)
	subtitle := d.styles.Subtle.Render(fmt.Sprintf("view: %s   basis: %s   paycheck: %s",
		d.viewMode, d.basis, cli.Money(d.symbol, d.first)))

	summaryBox := d.styles.Box.Render(fmt.Sprintf(
		"Budgeted %s   Spent %s   Remaining %s   %s %s",
		cli.Money(d.symbol, summary.TotalBudgeted),
		cli.Money(d.symbol, summary.TotalSpent),
		cli.Money(d.symbol, summary.Remaining),
		d.styles.StatusStyle(summary.Color).Render(string(summary.Status)),
		cli.Money(d.symbol, summary.OverUnder),
	))

	var warnings string
	for _, w := range d.scenario.Validate(income) {
		warnings += d.styles.FormatWarning(w) + "\n"
	}

	var footer string
	switch d.mode {
	case modeEditSpending:
		row := d.table.SelectedRow()
		category := ""
		if row != nil {
			category = row[0]
		}
		footer = fmt.Sprintf("spent on %s: %s", category, d.input.View())
	case modeEditPaycheck:
		footer = "paycheck: " + d.input.View()
	default:
		footer = d.styles.Subtle.Render("enter: edit spending • p: paycheck • tab: view mode • b: basis • q: quit")
		if d.dirty {
			footer += d.styles.Subtle.Render("  (unsaved)")
		}
		if d.saveErr != nil {
			footer += "\n" + d.styles.FormatError("save failed: "+d.saveErr.Error())
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		subtitle,
		d.table.View(),
		"",
		summaryBox,
		warnings,
		footer,
	)
}
