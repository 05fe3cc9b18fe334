// Package tui provides the terminal user interface components for Daycheck.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/daycheck/daycheck/internal/calendar"
)

// Color palette for the TUI dashboard.
var (
	ColorPrimary   = lipgloss.Color("#7C3AED") // Purple
	ColorSecondary = lipgloss.Color("#10B981") // Green
	ColorMuted     = lipgloss.Color("#6B7280") // Gray
	ColorWarning   = lipgloss.Color("#F59E0B") // Yellow
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorSuccess   = lipgloss.Color("#10B981") // Green
	ColorActive    = lipgloss.Color("#3B82F6") // Blue
	ColorBorder    = lipgloss.Color("#4B5563") // Dark gray
	ColorAccent    = lipgloss.Color("#EC4899") // Pink
)

// Base styles for the TUI.
var (
	// StyleTitle is used for section titles.
	StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	// StyleSubtitle is used for subtitles and secondary information.
	StyleSubtitle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleError is used for error messages.
	StyleError = lipgloss.NewStyle().
			Foreground(ColorError)

	// StyleWarning is used for warning messages.
	StyleWarning = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// StyleSuccess is used for success messages.
	StyleSuccess = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// StyleHelp is used for help text at the bottom.
	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)

	// StyleHelpKey is used for keyboard shortcut keys.
	StyleHelpKey = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	// StyleModeActive is used for the selected mode in the mode bar.
	StyleModeActive = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// StyleModeInactive is used for unselected modes.
	StyleModeInactive = lipgloss.NewStyle().
				Foreground(ColorMuted)

	// StyleMonthHeader is used for month names above each grid.
	StyleMonthHeader = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorSecondary)

	// StyleWeekdayRow is used for the Su..Sa weekday header.
	StyleWeekdayRow = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Box styles for different sections.
var (
	// StyleCalendarBox wraps the calendar grid.
	StyleCalendarBox = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorder).
				Padding(1, 2).
				MarginBottom(1)

	// StyleListBox wraps the per-mode record list.
	StyleListBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2).
			MarginBottom(1)
)

// Day cell styles keyed by the calendar classification.
var (
	stylePlainDay = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#D1D5DB"))

	styleAttendedDay = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorSuccess)

	styleScheduleSingle = lipgloss.NewStyle().
				Foreground(ColorActive)

	styleScheduleDouble = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorActive)

	styleScheduleMultiple = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorAccent)

	styleTodoCreatedDay = lipgloss.NewStyle().
				Foreground(ColorWarning)

	styleTodoCompletedDay = lipgloss.NewStyle().
				Foreground(ColorSuccess)

	styleMemoDay = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	styleCounterDay = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)
)

// DayStyle maps a cell classification to its lipgloss style.
func DayStyle(style calendar.CellStyle) lipgloss.Style {
	switch style {
	case calendar.StyleAttended:
		return styleAttendedDay
	case calendar.StyleScheduleSingle:
		return styleScheduleSingle
	case calendar.StyleScheduleDouble:
		return styleScheduleDouble
	case calendar.StyleScheduleMultiple:
		return styleScheduleMultiple
	case calendar.StyleTodoCreated:
		return styleTodoCreatedDay
	case calendar.StyleTodoCompleted:
		return styleTodoCompletedDay
	case calendar.StyleMemoCreated:
		return styleMemoDay
	case calendar.StyleCounterTarget:
		return styleCounterDay
	default:
		return stylePlainDay
	}
}
