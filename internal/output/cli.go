package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/daycheck/daycheck/internal/app"
	"github.com/daycheck/daycheck/internal/model"
)

// Styles for CLI output.
var (
	// Colors
	colorPrimary = lipgloss.Color("#7C3AED") // Purple
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorWarning = lipgloss.Color("#F59E0B") // Yellow
	colorError   = lipgloss.Color("#EF4444") // Red
	colorSuccess = lipgloss.Color("#10B981") // Green

	// Styles
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleBold = lipgloss.NewStyle().
			Bold(true)
)

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	if c.IsColorEnabled() {
		c.Println(styleTitle.Render(text))
	} else {
		c.Println(text)
	}
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	if c.IsColorEnabled() {
		c.Println(styleSuccess.Render("✓ " + text))
	} else {
		c.Println("✓ " + text)
	}
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	if c.IsColorEnabled() {
		c.Println(styleWarning.Render("! " + text))
	} else {
		c.Println("! " + text)
	}
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	if c.IsColorEnabled() {
		c.Println(styleError.Render("✗ " + text))
	} else {
		c.Println("✗ " + text)
	}
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	if c.IsColorEnabled() {
		c.Println(styleMuted.Render(text))
	} else {
		c.Println(text)
	}
}

// PrintStat prints a mode aggregate.
func (c *CLIFormatter) PrintStat(stat app.Stat) {
	c.Printf("%s: %d\n", stat.Label, stat.Count)
}

// PrintAttendanceMarked prints a newly created attendance record.
func (c *CLIFormatter) PrintAttendanceMarked(entry *model.AttendanceLog) {
	c.Success(fmt.Sprintf("Attendance marked for %s", entry.Date))
	c.Printf("  Checked in: %s\n", FormatTime(entry.CheckedInAt))
}

// PrintAttendanceLog prints the attendance log as a table.
func (c *CLIFormatter) PrintAttendanceLog(entries []*model.AttendanceLog) {
	if len(entries) == 0 {
		c.Muted("No attendance records.")
		return
	}
	rows := make([]TableRow, 0, len(entries))
	for _, e := range entries {
		clockOut := "-"
		if e.IsClockedOut() {
			clockOut = FormatTimeOnly(e.ClockedOutAt)
		}
		rows = append(rows, TableRow{Columns: []string{
			fmt.Sprintf("%d", e.ID),
			e.Date,
			FormatTimeOnly(e.CheckedInAt),
			clockOut,
			e.Memo,
		}})
	}
	c.PrintTable([]string{"ID", "DATE", "IN", "OUT", "MEMO"}, rows)
}

// PrintSchedules prints the schedule list as a table.
func (c *CLIFormatter) PrintSchedules(schedules []*model.Schedule) {
	if len(schedules) == 0 {
		c.Muted("No schedules.")
		return
	}
	rows := make([]TableRow, 0, len(schedules))
	for _, s := range schedules {
		weekends := "yes"
		if s.SkipWeekends {
			weekends = "no"
		}
		rows = append(rows, TableRow{Columns: []string{
			fmt.Sprintf("%d", s.ID),
			s.Title,
			s.StartDate,
			s.EndDate,
			weekends,
			fmt.Sprintf("%d", len(s.Dates())),
		}})
	}
	c.PrintTable([]string{"ID", "TITLE", "START", "END", "WEEKENDS", "DAYS"}, rows)
}

// PrintTodos prints a todo list. Completed items show their completion time.
func (c *CLIFormatter) PrintTodos(todos []*model.Todo) {
	if len(todos) == 0 {
		c.Muted("No todos.")
		return
	}
	for _, t := range todos {
		box := "[ ]"
		if t.Completed {
			box = "[x]"
		}
		c.Printf("%s %d  %s\n", box, t.ID, t.Text)
		if t.Completed && !t.CompletedAt.IsZero() {
			c.Muted(fmt.Sprintf("      completed %s", FormatTimeShort(t.CompletedAt)))
		}
	}
}

// PrintMemos prints the memo list with previews.
func (c *CLIFormatter) PrintMemos(memos []*model.Memo) {
	if len(memos) == 0 {
		c.Muted("No memos.")
		return
	}
	for _, m := range memos {
		if c.IsColorEnabled() {
			c.Printf("%d  %s\n", m.ID, styleBold.Render(m.Title))
		} else {
			c.Printf("%d  %s\n", m.ID, m.Title)
		}
		preview := m.Preview()
		if preview != "" {
			c.Muted("   " + preview)
		}
	}
}

// PrintCounters prints the counter list with days-remaining text.
func (c *CLIFormatter) PrintCounters(counters []*model.DayCounter, daysFor func(*model.DayCounter) int) {
	if len(counters) == 0 {
		c.Muted("No day counters.")
		return
	}
	rows := make([]TableRow, 0, len(counters))
	for _, counter := range counters {
		rows = append(rows, TableRow{Columns: []string{
			fmt.Sprintf("%d", counter.ID),
			counter.Title,
			counter.TargetDate,
			DaysText(daysFor(counter)),
		}})
	}
	c.PrintTable([]string{"ID", "TITLE", "TARGET", "REMAINING"}, rows)
}

// PrintConfirmation prints a pending confirmation prompt.
func (c *CLIFormatter) PrintConfirmation(conf *app.Confirmation) {
	c.Title(conf.Title)
	c.Println(conf.Message)
}

// TableRow is one row of a CLI table.
type TableRow struct {
	Columns []string
}

// PrintTable prints a simple table.
func (c *CLIFormatter) PrintTable(headers []string, rows []TableRow) {
	if len(rows) == 0 {
		return
	}

	// Calculate column widths
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, col := range row.Columns {
			if i < len(widths) && len(col) > widths[i] {
				widths[i] = len(col)
			}
		}
	}

	// Print headers
	var headerLine strings.Builder
	for i, h := range headers {
		headerLine.WriteString(fmt.Sprintf("%-*s  ", widths[i], h))
	}
	if c.IsColorEnabled() {
		c.Println(styleBold.Render(strings.TrimRight(headerLine.String(), " ")))
	} else {
		c.Println(strings.TrimRight(headerLine.String(), " "))
	}

	// Print separator
	var sep strings.Builder
	for _, w := range widths {
		sep.WriteString(strings.Repeat("─", w) + "  ")
	}
	c.Println(strings.TrimRight(sep.String(), " "))

	// Print rows
	for _, row := range rows {
		var rowLine strings.Builder
		for i, col := range row.Columns {
			if i < len(widths) {
				rowLine.WriteString(fmt.Sprintf("%-*s  ", widths[i], col))
			}
		}
		c.Println(strings.TrimRight(rowLine.String(), " "))
	}
}
