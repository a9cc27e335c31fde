package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"hudkit/internal/task"
	"hudkit/internal/ui/textutil"
)

// TaskRow holds display state for one configured task.
type TaskRow struct {
	Name     string
	Command  string
	Status   task.Status
	Runs     int
	LastTook time.Duration
	LastRun  time.Time
}

// taskItem implements list.Item for TaskRow.
type taskItem struct {
	TaskRow
}

func (t taskItem) FilterValue() string { return t.Name }

func (t taskItem) Title() string {
	marker := " "
	switch t.Status {
	case task.StatusRunning:
		marker = Styles.Running.Render("●")
	case task.StatusDone:
		marker = Styles.Title.Render("✓")
	case task.StatusError:
		marker = Styles.Danger.Render("✗")
	}
	return fmt.Sprintf("%s %s  %s", marker, t.Name,
		Styles.Muted.Render(textutil.Truncate(t.Command, 40)))
}

func (t taskItem) Description() string {
	if t.Runs == 0 {
		return "never run"
	}
	return fmt.Sprintf("ran %s, took %s (%d runs)",
		humanize.Time(t.LastRun), t.LastTook.Round(time.Millisecond), t.Runs)
}

// DashboardView lists the configured tasks; it is the base view the HUD
// overlays.
type DashboardView struct {
	Rows []TaskRow

	list list.Model
}

// Ensure DashboardView implements View.
var _ View = (*DashboardView)(nil)

// NewDashboardView creates a dashboard over the given rows.
func NewDashboardView(rows []TaskRow) *DashboardView {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = Styles.Selected
	delegate.Styles.SelectedDesc = Styles.Selected
	delegate.Styles.NormalTitle = Styles.Muted
	delegate.Styles.NormalDesc = Styles.Muted

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Tasks"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccent))

	d := &DashboardView{Rows: rows, list: l}
	d.refreshItems()
	return d
}

// Selected returns the currently selected row, or nil when empty.
func (d *DashboardView) Selected() *TaskRow {
	i := d.list.Index()
	if i < 0 || i >= len(d.Rows) {
		return nil
	}
	return &d.Rows[i]
}

// SetResult records a finished run on the matching row.
func (d *DashboardView) SetResult(res task.Result) {
	for i := range d.Rows {
		if d.Rows[i].Name != res.Name {
			continue
		}
		d.Rows[i].Status = res.Status
		d.Rows[i].Runs++
		d.Rows[i].LastTook = res.Duration()
		d.Rows[i].LastRun = res.Finished
		break
	}
	d.refreshItems()
}

// SetRunning marks a row as in flight.
func (d *DashboardView) SetRunning(name string) {
	for i := range d.Rows {
		if d.Rows[i].Name == name {
			d.Rows[i].Status = task.StatusRunning
			break
		}
	}
	d.refreshItems()
}

// Init implements View.
func (d *DashboardView) Init() tea.Cmd { return nil }

// Update implements View.
func (d *DashboardView) Update(msg tea.Msg) (View, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		d.list.SetWidth(ws.Width)
		d.list.SetHeight(ws.Height - 4) // reserve space for header and footer
		return d, nil
	}
	// list.Model handles j/k/g/G navigation natively; enter is handled by
	// App at the application level.
	var cmd tea.Cmd
	d.list, cmd = d.list.Update(msg)
	return d, cmd
}

// View implements View.
func (d *DashboardView) View() string {
	if d.list.Width() == 0 {
		d.list.SetWidth(80)
	}
	if d.list.Height() == 0 {
		d.list.SetHeight(20)
	}

	var b strings.Builder
	b.WriteString(Styles.Title.Render(fmt.Sprintf("Tasks (%d)", len(d.Rows))) + "\n")
	b.WriteString(Styles.Hint.Render("enter: run  h: hide hud  q: quit") + "\n\n")
	b.WriteString(d.list.View())
	return b.String()
}

func (d *DashboardView) refreshItems() {
	items := make([]list.Item, len(d.Rows))
	for i, r := range d.Rows {
		items[i] = taskItem{TaskRow: r}
	}
	d.list.SetItems(items)
}
