package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func RenderBottomBar(m Model) string {
	left := strings.Join(actionHints(m), " ")

	if m.submitting {
		frame := spinnerFrames[m.spinnerIndex%len(spinnerFrames)]
		left = fmt.Sprintf("%s | %s %s", left, frame, m.submitLabel)
	} else if m.exporting {
		frame := spinnerFrames[m.spinnerIndex%len(spinnerFrames)]
		left = fmt.Sprintf("%s | %s Generating PDF...", left, frame)
	}

	passed, failed := 0, 0
	if res := m.store.Result(); res != nil {
		passed = res.PassedCount()
		failed = res.FailedCount()
	}
	right := fmt.Sprintf("passed:%d failed:%d", passed, failed)

	contentWidth := m.windowWidth
	padding := 1
	if contentWidth > 0 {
		contentWidth = contentWidth - padding*2
		if contentWidth < 0 {
			contentWidth = 0
		}
	}
	bar := layoutBar(left, right, contentWidth)

	style := lipgloss.NewStyle().Reverse(true).Padding(0, padding)
	return style.Render(bar)
}

func actionHints(m Model) []string {
	if m.evidence != nil || m.fileSelect != nil {
		return []string{"[esc] close", "[ctrl+c] quit"}
	}
	if m.page == PageReports {
		return []string{"[ctrl+p]df", "[ctrl+n]av", "[ctrl+c] quit"}
	}
	return []string{
		"[ctrl+r]un",
		"[ctrl+f]iles",
		"[ctrl+l] sample",
		"[ctrl+p]df",
		"[ctrl+n]av",
		"[ctrl+j]urisdiction",
		"[ctrl+c] quit",
	}
}

func layoutBar(left string, right string, width int) string {
	if width <= 0 {
		return left + " " + right
	}
	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(right)
	gap := width - leftWidth - rightWidth
	if gap < 1 {
		availableLeft := width - rightWidth - 1
		if availableLeft < 0 {
			return truncate(right, width)
		}
		left = truncate(left, availableLeft)
		leftWidth = lipgloss.Width(left)
		gap = width - leftWidth - rightWidth
		if gap < 1 {
			gap = 1
		}
	}
	bar := left + strings.Repeat(" ", gap) + right
	return truncate(bar, width)
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width])
}
