package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/daycheck/daycheck/internal/app"
	"github.com/daycheck/daycheck/internal/calendar"
	"github.com/daycheck/daycheck/internal/model"
	"github.com/daycheck/daycheck/internal/output"
)

// tickMsg is sent when the timer ticks.
type tickMsg time.Time

// DashboardModel is the main bubbletea model for the dashboard.
type DashboardModel struct {
	views *app.Coordinator

	// UI state
	width      int
	height     int
	err        error
	message    string
	messageExp time.Time

	refreshInterval time.Duration
}

// DashboardConfig holds configuration for the dashboard.
type DashboardConfig struct {
	Views           *app.Coordinator
	RefreshInterval time.Duration
}

// NewDashboardModel creates a new dashboard model.
func NewDashboardModel(config DashboardConfig) *DashboardModel {
	if config.RefreshInterval == 0 {
		config.RefreshInterval = time.Second
	}
	return &DashboardModel{
		views:           config.Views,
		refreshInterval: config.RefreshInterval,
	}
}

// Init initializes the model.
func (m *DashboardModel) Init() tea.Cmd {
	return m.tickCmd()
}

// Update handles messages and updates the model.
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		// Clear expired messages
		if !m.messageExp.IsZero() && time.Now().After(m.messageExp) {
			m.message = ""
			m.messageExp = time.Time{}
		}
		return m, m.tickCmd()
	}

	return m, nil
}

// handleKeyPress handles keyboard input.
func (m *DashboardModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "1":
		m.views.SwitchMode(model.ModeAttendance)
	case "2":
		m.views.SwitchMode(model.ModeSchedule)
	case "3":
		m.views.SwitchMode(model.ModeTodo)
	case "4":
		m.views.SwitchMode(model.ModeMemo)
	case "5":
		m.views.SwitchMode(model.ModeCounter)

	case "tab":
		if m.views.Mode() == model.ModeTodo {
			if m.views.Tab() == model.TabActive {
				m.views.SwitchTab(model.TabCompleted)
			} else {
				m.views.SwitchTab(model.TabActive)
			}
		}

	case "left", "h":
		m.views.PrevYear()
	case "right", "l":
		m.views.NextYear()

	case "a":
		if m.views.Mode() == model.ModeAttendance {
			if _, err := m.views.MarkAttendance(m.views.State().Today()); err != nil {
				m.err = err
			} else {
				m.err = nil
				m.setMessage("Attendance marked for today", 2*time.Second)
			}
		}

	case "f":
		m.views.ClearFilters()
		m.setMessage("Filters cleared", time.Second)
	}

	return m, nil
}

// View renders the dashboard.
func (m *DashboardModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var sections []string
	sections = append(sections, m.renderHeader())

	if m.err != nil {
		sections = append(sections, StyleError.Render(fmt.Sprintf("Error: %v", m.err)))
	}
	if m.message != "" {
		sections = append(sections, StyleWarning.Render(m.message))
	}

	view := &calendar.View{
		State: m.views.State(),
		Mode:  m.views.Mode(),
		Tab:   m.views.Tab(),
	}
	grid := RenderYear(view, m.views.Year(), m.width-8, m.views.State().Today())
	sections = append(sections, StyleCalendarBox.Width(m.width-4).Render(grid))

	sections = append(sections, StyleListBox.Width(m.width-4).Render(m.renderList()))
	sections = append(sections, m.renderHelp())

	return strings.Join(sections, "\n")
}

func (m *DashboardModel) renderHeader() string {
	stat := m.views.Stat()
	parts := make([]string, 0, len(model.Modes)+1)
	for i, mode := range model.Modes {
		label := fmt.Sprintf("%d:%s", i+1, mode)
		if mode == m.views.Mode() {
			parts = append(parts, StyleModeActive.Render(label))
		} else {
			parts = append(parts, StyleModeInactive.Render(label))
		}
	}
	modeBar := strings.Join(parts, "  ")
	statLine := StyleSubtitle.Render(fmt.Sprintf("%d  |  %s: %d",
		m.views.Year(), stat.Label, stat.Count))
	return StyleTitle.Render("Daycheck") + "\n" + modeBar + "\n" + statLine
}

func (m *DashboardModel) renderList() string {
	state := m.views.State()
	filters := m.views.Filters()

	var b strings.Builder
	switch m.views.Mode() {
	case model.ModeAttendance:
		entries := state.SortedLog()
		if len(entries) == 0 {
			return StyleSubtitle.Render("No attendance records")
		}
		limit := 8
		for i, e := range entries {
			if i == limit {
				b.WriteString(StyleSubtitle.Render(fmt.Sprintf("... %d more", len(entries)-limit)))
				break
			}
			line := fmt.Sprintf("%s  in %s", e.Date, output.FormatTimeOnly(e.CheckedInAt))
			if e.IsClockedOut() {
				line += ", out " + output.FormatTimeOnly(e.ClockedOutAt)
			}
			if e.Memo != "" {
				line += "  " + StyleSubtitle.Render(e.Memo)
			}
			b.WriteString(line + "\n")
		}

	case model.ModeSchedule:
		schedules := state.VisibleSchedules(filters)
		if len(schedules) == 0 {
			return StyleSubtitle.Render("No schedules")
		}
		for _, s := range schedules {
			b.WriteString(fmt.Sprintf("%s  %s to %s (%d days)\n",
				s.Title, s.StartDate, s.EndDate, len(s.Dates())))
		}

	case model.ModeTodo:
		todos := state.VisibleTodos(filters, m.views.Tab())
		if len(todos) == 0 {
			return StyleSubtitle.Render("No todos")
		}
		for _, t := range todos {
			box := "[ ]"
			if t.Completed {
				box = "[x]"
			}
			b.WriteString(fmt.Sprintf("%s %s\n", box, t.Text))
		}

	case model.ModeMemo:
		memos := state.VisibleMemos(filters)
		if len(memos) == 0 {
			return StyleSubtitle.Render("No memos")
		}
		for _, memo := range memos {
			b.WriteString(memo.Title)
			if preview := memo.Preview(); preview != "" {
				b.WriteString("  " + StyleSubtitle.Render(preview))
			}
			b.WriteString("\n")
		}

	case model.ModeCounter:
		counters := state.VisibleCounters(filters)
		if len(counters) == 0 {
			return StyleSubtitle.Render("No day counters")
		}
		for _, c := range counters {
			b.WriteString(fmt.Sprintf("%s  %s (%s)\n",
				c.Title, c.TargetDate, output.DaysText(state.DaysUntil(c))))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *DashboardModel) renderHelp() string {
	keys := []struct{ key, desc string }{
		{"1-5", "mode"},
		{"tab", "todo tab"},
		{"←/→", "year"},
		{"a", "attend today"},
		{"f", "clear filters"},
		{"q", "quit"},
	}
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, StyleHelpKey.Render(k.key)+" "+StyleSubtitle.Render(k.desc))
	}
	return StyleHelp.Render(strings.Join(parts, "  "))
}

func (m *DashboardModel) setMessage(text string, d time.Duration) {
	m.message = text
	m.messageExp = time.Now().Add(d)
}

func (m *DashboardModel) tickCmd() tea.Cmd {
	return tea.Tick(m.refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Run starts the dashboard program.
func Run(views *app.Coordinator) error {
	m := NewDashboardModel(DashboardConfig{Views: views})
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
