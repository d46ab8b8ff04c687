package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nmansour/regnav/internal/api"
	"github.com/nmansour/regnav/internal/assessment"
	"github.com/nmansour/regnav/internal/regtext"
	"github.com/nmansour/regnav/internal/report"
)

// Service is the slice of the scoring client the TUI drives. *api.Client
// satisfies it; tests substitute stubs.
type Service interface {
	ScoreText(ctx context.Context, documents string) (assessment.Result, error)
	ScoreFiles(ctx context.Context, paths []string) (assessment.Result, error)
	RegulationTexts(ctx context.Context) (map[string]string, error)
	Report(ctx context.Context, req api.ReportRequest) ([]byte, error)
}

type spinnerTickMsg struct{}

// assessmentDoneMsg carries one completed submission, stamped with the token
// issued when it started so stale completions can be discarded.
type assessmentDoneMsg struct {
	token     int
	fromFiles bool
	result    assessment.Result
	err       error
}

type regTextsMsg struct {
	token int
	texts map[string]string
}

type reportDoneMsg struct {
	path string
	err  error
}

type statusClearMsg struct {
	seq int
}

var spinnerFrames = []string{"|", "/", "-", "\\"}

func spinnerTickCmd() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(time.Time) tea.Msg {
		return spinnerTickMsg{}
	})
}

func scoreTextCmd(service Service, token int, documents string) tea.Cmd {
	return func() tea.Msg {
		result, err := service.ScoreText(context.Background(), documents)
		return assessmentDoneMsg{token: token, result: result, err: err}
	}
}

func scoreFilesCmd(service Service, token int, paths []string) tea.Cmd {
	return func() tea.Msg {
		result, err := service.ScoreFiles(context.Background(), paths)
		return assessmentDoneMsg{token: token, fromFiles: true, result: result, err: err}
	}
}

func loadRegTextsCmd(service Service, token int) tea.Cmd {
	return func() tea.Msg {
		return regTextsMsg{token: token, texts: regtext.Load(context.Background(), service)}
	}
}

func exportReportCmd(service Service, payload report.Payload, dir string) tea.Cmd {
	return func() tea.Msg {
		path, err := report.Export(context.Background(), service, payload, dir)
		return reportDoneMsg{path: path, err: err}
	}
}
