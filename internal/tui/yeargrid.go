package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/daycheck/daycheck/internal/calendar"
	"github.com/daycheck/daycheck/internal/dates"
)

// monthWidth is the rendered width of one month grid: seven three-column
// day cells.
const monthWidth = 21

var weekdayHeader = "Su Mo Tu We Th Fr Sa"

// TerminalWidth returns the width of the attached terminal, or a sensible
// default when stdout is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// RenderMonth renders one month grid with mode decorations. The today key is
// rendered inverted when it falls inside the month.
func RenderMonth(view *calendar.View, year int, month time.Month, today string) string {
	var b strings.Builder

	header := calendar.MonthLabel(year, month)
	pad := (monthWidth - len(header)) / 2
	if pad < 0 {
		pad = 0
	}
	b.WriteString(strings.Repeat(" ", pad))
	b.WriteString(StyleMonthHeader.Render(header))
	b.WriteString("\n")
	b.WriteString(StyleWeekdayRow.Render(weekdayHeader))
	b.WriteString("\n")

	for _, week := range calendar.MonthGrid(year, month) {
		cells := make([]string, 0, 7)
		for _, key := range week {
			if key == "" {
				cells = append(cells, "  ")
				continue
			}
			day := key[len(key)-2:]
			if day[0] == '0' {
				day = " " + day[1:]
			}
			style := DayStyle(view.StyleFor(key))
			if key == today {
				style = style.Reverse(true)
			}
			cells = append(cells, style.Render(day))
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderYear renders all twelve months flowed into as many columns as the
// given width allows.
func RenderYear(view *calendar.View, year, width int, today string) string {
	perRow := width / (monthWidth + 4)
	if perRow < 1 {
		perRow = 1
	}
	if perRow > 4 {
		perRow = 4
	}

	var rows []string
	for m := time.January; m <= time.December; m += time.Month(perRow) {
		var months []string
		for i := 0; i < perRow && m+time.Month(i) <= time.December; i++ {
			block := RenderMonth(view, year, m+time.Month(i), today)
			months = append(months, lipgloss.NewStyle().MarginRight(4).Render(block))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, months...))
	}
	return strings.Join(rows, "\n\n")
}

// RenderDayDetail renders the tooltip lines for a day, or a placeholder when
// the day carries nothing in the current mode.
func RenderDayDetail(view *calendar.View, dateKey string) string {
	lines := view.TooltipFor(dateKey)
	if len(lines) == 0 {
		return StyleSubtitle.Render(fmt.Sprintf("Nothing on %s", dates.Display(dateKey)))
	}
	return strings.Join(lines, "\n")
}
