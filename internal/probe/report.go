package probe

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	passStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

var groupOrder = []string{GroupViews, GroupCharts, GroupInvariants, GroupErrors}

// Format renders the report as terminal panels, one per check group,
// followed by a summary panel.
func Format(r *Report) string {
	panels := []string{titleStyle.Render("Quantum Tech Revolution probe · " + r.BaseURL)}
	for _, g := range groupOrder {
		if p := groupPanel(r, g); p != "" {
			panels = append(panels, p)
		}
	}
	panels = append(panels, summaryPanel(r))
	return lipgloss.JoinVertical(lipgloss.Left, panels...) + "\n"
}

func groupPanel(r *Report, group string) string {
	var lines []string
	passed := 0
	for _, c := range r.Checks {
		if c.Group != group {
			continue
		}
		mark := passStyle.Render("✔")
		if c.Passed {
			passed++
		} else {
			mark = failStyle.Render("✘")
		}
		size := ""
		if c.Bytes > 0 {
			size = " " + humanize.Bytes(uint64(c.Bytes))
		}
		lines = append(lines, fmt.Sprintf("%s %s %s", mark, c.Name, mutedStyle.Render(c.Detail+size)))
	}
	if len(lines) == 0 {
		return ""
	}
	header := headerStyle.Render(fmt.Sprintf("%s (%d/%d)", strings.ToUpper(group), passed, len(lines)))
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, append([]string{header}, lines...)...))
}

func summaryPanel(r *Report) string {
	failed := len(r.Failed())
	status := passStyle.Render("PASS")
	if failed > 0 {
		status = failStyle.Render("FAIL")
	}
	lines := []string{
		fmt.Sprintf("%s  %s checks, %s failed", status, humanize.Comma(int64(len(r.Checks))), humanize.Comma(int64(failed))),
		mutedStyle.Render(fmt.Sprintf("%s transferred in %s", humanize.Bytes(uint64(r.Bytes())), r.Duration.Round(1e6))),
	}
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
