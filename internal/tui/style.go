package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/rhyrak/course-planner/pkg/model"
)

const accent = lipgloss.Color("99")

var (
	accentStyle = lipgloss.NewStyle().Foreground(accent)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	headerStyle = lipgloss.NewStyle().Foreground(accent).Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// Theme is the huh theme used by the wizard forms.
func Theme() *huh.Theme {
	t := huh.ThemeCharm()
	t.Focused.Title = t.Focused.Title.Foreground(accent).Bold(true)
	t.Focused.Base = t.Focused.Base.Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(0, 1)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(accent)
	t.Focused.MultiSelectSelector = t.Focused.MultiSelectSelector.Foreground(accent)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(accent)
	t.Focused.SelectedPrefix = t.Focused.SelectedPrefix.Foreground(accent)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(accent)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(accent)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(lipgloss.Color("0")).Background(accent)
	t.Blurred.Base = t.Blurred.Base.Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)
	return t
}

func Accent(s string) string { return accentStyle.Render(s) }
func Error(s string) string  { return errorStyle.Render(s) }
func Muted(s string) string  { return mutedStyle.Render(s) }

// RenderSchedule draws one ranked schedule as a table of its courses.
func RenderSchedule(rank int, s model.Schedule) string {
	title := fmt.Sprintf("#%d  %d credits", rank, s.Credits)
	if s.Score != s.Credits {
		title += fmt.Sprintf(" (score %d)", s.Score)
	}
	if s.BackToBack {
		title += "  back-to-back"
	}

	rows := make([][]string, 0, len(s.Courses))
	for _, c := range s.Courses {
		rows = append(rows, []string{c.Name, c.Instructor, strconv.Itoa(c.Credit), sessionsText(c)})
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(mutedStyle).
		Headers("Course", "Instructor", "Credit", "Time").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	return accentStyle.Bold(true).Render(title) + "\n" + t.String()
}

// RenderResult draws every schedule of a result followed by the search
// statistics.
func RenderResult(res *model.Result) string {
	var b strings.Builder
	for i, s := range res.Schedules {
		b.WriteString(RenderSchedule(i+1, s))
		b.WriteString("\n\n")
	}
	stats := fmt.Sprintf("%d candidates, %d feasible combinations, %d nodes", res.Candidates, res.Feasible, res.Nodes)
	if res.Truncated {
		stats += ", search stopped early"
	}
	b.WriteString(Muted(stats))
	return b.String()
}

func sessionsText(c model.Course) string {
	if len(c.Sessions) == 0 {
		if c.RawTime != "" {
			return c.RawTime
		}
		return "-"
	}
	parts := make([]string, len(c.Sessions))
	for i, s := range c.Sessions {
		parts[i] = s.String()
	}
	return strings.Join(parts, " ")
}
