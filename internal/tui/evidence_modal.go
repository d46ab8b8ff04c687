package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nmansour/regnav/internal/assessment"
	"github.com/nmansour/regnav/internal/regtext"
	"github.com/nmansour/regnav/internal/session"
)

// EvidenceModal shows the regulation article backing a failed check. It is
// only ever opened from a FAIL row; the renderer's binding enforces that, the
// modal does not re-validate.
type EvidenceModal struct {
	Title string
	Body  string
}

// OpenEvidence resolves a check name to its article and text. A check without
// an article mapping, or an article without a cached text, yields the fixed
// fallback message naming the check; that is a displayable outcome, not an
// error.
func OpenEvidence(store *session.Store, check string) *EvidenceModal {
	title := check
	body := regtext.FallbackMessage(check)

	if articleID, ok := assessment.ArticleFor(check); ok {
		title = check + " — Article " + articleID
		if text, found := store.RegulationText(articleID); found {
			body = text
		}
	}

	return &EvidenceModal{Title: title, Body: body}
}

// HandleEvidenceKey handles keys while the modal is open. Closing never
// mutates the underlying result.
func HandleEvidenceKey(m Model, key string) (tea.Model, tea.Cmd) {
	switch key {
	case "esc", "enter", "q":
		m.evidence = nil
	}
	return m, nil
}

func RenderEvidenceModal(m Model, modal EvidenceModal) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	modalWidth := 70
	if m.windowWidth > 0 && m.windowWidth < modalWidth+4 {
		modalWidth = m.windowWidth - 4
	}

	body := lipgloss.NewStyle().Width(modalWidth - 6).Render(modal.Body)

	lines := []string{
		titleStyle.Render(modal.Title),
		"",
		body,
		"",
		helpStyle.Render("esc: close"),
	}

	modalStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("214")).
		Padding(1, 2).
		Width(modalWidth)

	rendered := modalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))

	if m.windowHeight > 0 {
		topPadding := (m.windowHeight - lipgloss.Height(rendered)) / 2
		if topPadding > 0 {
			return lipgloss.NewStyle().PaddingTop(topPadding).Render(rendered)
		}
	}
	return rendered
}
