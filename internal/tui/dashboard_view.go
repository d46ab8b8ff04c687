package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nmansour/regnav/internal/assessment"
)

const gaugeWidth = 40

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

	severityStyles = map[assessment.Severity]lipgloss.Style{
		assessment.SeverityRed:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		assessment.SeverityAmber: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		assessment.SeverityGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	}

	bandStyles = map[assessment.Band]lipgloss.Style{
		assessment.BandHigh: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		assessment.BandMid:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		assessment.BandLow:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
)

func RenderDashboardView(m Model) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(jurisdictionLabel(m.jurisdiction)))
	b.WriteString("  ")
	b.WriteString(renderNav(m.page))
	b.WriteString("\n\n")

	b.WriteString(renderInputPane(m))
	b.WriteString("\n")
	b.WriteString(renderStatusLine(m))
	b.WriteString("\n\n")

	b.WriteString(renderScoreGauge(m))
	b.WriteString("\n\n")

	res := m.store.Result()
	b.WriteString(renderBreakdown(m, res))
	b.WriteString("\n")
	b.WriteString(renderCounters(res))
	b.WriteString("\n\n")
	b.WriteString(renderRecommendations(res))

	return b.String()
}

func renderNav(active Page) string {
	dashboard := "Dashboard"
	reports := "Reports"
	if active == PageDashboard {
		return headerStyle.Render(dashboard) + mutedStyle.Render("  "+reports)
	}
	return mutedStyle.Render(dashboard+"  ") + headerStyle.Render(reports)
}

func renderInputPane(m Model) string {
	label := "Documents"
	if m.activePane == PaneInput {
		label = label + " (editing, tab for results)"
	} else {
		label = label + " (tab to edit)"
	}
	return headerStyle.Render(label) + "\n" + m.input.View()
}

func renderStatusLine(m Model) string {
	if m.submitting {
		frame := spinnerFrames[m.spinnerIndex%len(spinnerFrames)]
		return mutedStyle.Render(frame + " " + m.submitLabel)
	}
	if m.exporting {
		frame := spinnerFrames[m.spinnerIndex%len(spinnerFrames)]
		return mutedStyle.Render(frame + " Generating PDF...")
	}
	if m.statusMessage == "" {
		return ""
	}
	if m.statusIsError {
		return errorStyle.Render(m.statusMessage)
	}
	return okStyle.Render(m.statusMessage)
}

// renderScoreGauge paints the readiness score bar. The fill is clamped to
// [0,100]; the numeric display shows the raw score verbatim, or an em dash
// placeholder when no score is known.
func renderScoreGauge(m Model) string {
	res := m.store.Result()
	if !m.scoreKnown || res == nil {
		empty := strings.Repeat("░", gaugeWidth)
		return headerStyle.Render("Readiness score: ") + "—" + "\n" + mutedStyle.Render(empty)
	}

	score := res.ReadinessScore
	fill := assessment.GaugeFill(score)
	filled := int(math.Round(fill / 100 * gaugeWidth))
	if filled > gaugeWidth {
		filled = gaugeWidth
	}

	bar := bandStyles[assessment.ScoreBand(score)].Render(strings.Repeat("█", filled)) +
		mutedStyle.Render(strings.Repeat("░", gaugeWidth-filled))

	display := strconv.FormatFloat(score, 'f', -1, 64)
	return headerStyle.Render("Readiness score: ") + display + "\n" + bar
}

func renderBreakdown(m Model, res *assessment.Result) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Score breakdown"))
	b.WriteString("\n")

	if res == nil || len(res.Breakdown) == 0 {
		b.WriteString(mutedStyle.Render("(no checks yet)"))
		return b.String()
	}

	b.WriteString(mutedStyle.Render(fmt.Sprintf("%-28s %-8s %7s %7s", "CHECK", "STATUS", "WEIGHT", "SCORE")))
	b.WriteString("\n")

	rows := m.failRows()
	failIdx := 0
	for _, c := range res.Breakdown {
		status := severityStyles[assessment.SeverityFor(c.Name, c.Status)].Render(fmt.Sprintf("%-8s", c.Status))

		marker := "  "
		if assessment.HasEvidence(c) {
			marker = "· "
			if m.activePane == PaneResults && failIdx < len(rows) && failIdx == m.failCursor {
				marker = "▸ "
			}
			failIdx++
		}

		// Weight and contribution are rounded for display only; the stored
		// result keeps the service's precision.
		b.WriteString(fmt.Sprintf("%s%-28s %s %7d %7d\n",
			marker, c.Name, status, roundUnit(c.Weight), roundUnit(c.Contribution)))
	}

	if len(rows) > 0 {
		b.WriteString(mutedStyle.Render("tab, then j/k + enter on a failed check to view the regulation text"))
		b.WriteString("\n")
	}
	return b.String()
}

func roundUnit(v float64) int {
	return int(math.Round(v))
}

func renderCounters(res *assessment.Result) string {
	passed, failed := 0, 0
	if res != nil {
		// Both counters derive from the same result that painted the table.
		passed = res.PassedCount()
		failed = res.FailedCount()
	}
	return okStyle.Render(fmt.Sprintf("Passed checks: %d", passed)) + "   " +
		errorStyle.Render(fmt.Sprintf("Failed checks: %d", failed))
}

func renderRecommendations(res *assessment.Result) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Recommendations"))
	b.WriteString("\n")

	if res == nil || len(res.Recommendations) == 0 {
		b.WriteString(mutedStyle.Render("No recommendations found."))
		return b.String()
	}

	for _, rec := range res.Recommendations {
		b.WriteString(lipgloss.NewStyle().Bold(true).Render(rec.Gap))
		b.WriteString("\n")
		if len(rec.Resources) == 0 {
			b.WriteString(mutedStyle.Render("  No resource matches in the mapping file."))
			b.WriteString("\n")
			continue
		}
		for _, r := range rec.Resources {
			b.WriteString("  - ")
			b.WriteString(r.Title)
			if r.Type != "" {
				b.WriteString(mutedStyle.Render(" [" + r.Type + "]"))
			}
			b.WriteString(" — ")
			b.WriteString(renderContact(r))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderContact(r assessment.Resource) string {
	switch r.ContactKind {
	case assessment.ContactEmail:
		return okStyle.Render(r.Contact)
	case assessment.ContactURL:
		return okStyle.Render(r.Contact)
	case assessment.ContactPlain:
		return r.Contact
	default:
		return mutedStyle.Render("no link/contact")
	}
}
