package tui

import (
	"strings"
)

func RenderReportsView(m Model) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(jurisdictionLabel(m.jurisdiction)))
	b.WriteString("  ")
	b.WriteString(renderNav(m.page))
	b.WriteString("\n\n")

	b.WriteString(headerStyle.Render("Reports"))
	b.WriteString("\n\n")

	b.WriteString(renderPayloadSource(m))
	b.WriteString("\n\n")

	if m.lastReportPath == "" {
		b.WriteString(mutedStyle.Render("No report exported this session."))
	} else {
		b.WriteString("Last export: " + m.lastReportPath)
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(m.lastReportAt.Format("2006-01-02 15:04:05")))
	}
	b.WriteString("\n\n")
	b.WriteString(renderStatusLine(m))

	return b.String()
}

// renderPayloadSource previews which payload the exporter would send, in
// priority order: assessment id, raw input text, cached result.
func renderPayloadSource(m Model) string {
	switch {
	case m.store.AssessmentID() != "":
		return "Export will reference assessment " + m.store.AssessmentID() + "."
	case m.store.InputText() != "":
		return "Export will resubmit the current document text."
	case m.store.Result() != nil:
		return "Export will send the cached assessment result."
	default:
		return mutedStyle.Render("Nothing to export yet — run an assessment first.")
	}
}
