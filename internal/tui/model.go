package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nmansour/regnav/internal/assessment"
	"github.com/nmansour/regnav/internal/config"
	"github.com/nmansour/regnav/internal/report"
	"github.com/nmansour/regnav/internal/sample"
	"github.com/nmansour/regnav/internal/session"
)

// Page identifies one of the navigable page sections.
type Page int

const (
	PageDashboard Page = iota
	PageReports
)

// ActivePane tracks which dashboard surface owns plain key presses.
type ActivePane int

const (
	PaneInput ActivePane = iota
	PaneResults
)

const statusClearAfter = 3 * time.Second

type Model struct {
	store   *session.Store
	service Service
	cfg     config.ResolvedConfig

	page       Page
	activePane ActivePane
	input      textarea.Model

	jurisdiction string

	submitting   bool
	submitLabel  string
	exporting    bool
	spinnerIndex int

	// scoreKnown is false before the first result and whenever a submission
	// is in flight or has hard-failed; the gauge then shows the unknown
	// placeholder instead of stale numbers.
	scoreKnown bool

	statusMessage string
	statusIsError bool
	statusSeq     int

	failCursor int

	fileSelect *FileSelectForm
	evidence   *EvidenceModal

	lastReportPath string
	lastReportAt   time.Time

	windowWidth  int
	windowHeight int
}

func NewModel(store *session.Store, service Service, cfg config.ResolvedConfig) Model {
	ta := textarea.New()
	ta.Placeholder = "Paste compliance documents here, or ctrl+l for a sample..."
	ta.CharLimit = 0
	ta.SetWidth(76)
	ta.SetHeight(8)
	ta.Focus()

	return Model{
		store:        store,
		service:      service,
		cfg:          cfg,
		page:         PageDashboard,
		activePane:   PaneInput,
		input:        ta,
		jurisdiction: cfg.Jurisdiction,
	}
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = typed.Width
		m.windowHeight = typed.Height
		m.resizeInput()
		if m.fileSelect != nil {
			m.fileSelect.SetSize(typed.Width, typed.Height)
		}
		return m, nil

	case spinnerTickMsg:
		if !m.submitting && !m.exporting {
			return m, nil
		}
		m.spinnerIndex = (m.spinnerIndex + 1) % len(spinnerFrames)
		return m, spinnerTickCmd()

	case assessmentDoneMsg:
		return m.handleAssessmentDone(typed)

	case regTextsMsg:
		// Late loads racing a newer submission are dropped, not shown.
		m.store.ApplyRegTexts(typed.token, typed.texts)
		return m, nil

	case reportDoneMsg:
		m.exporting = false
		if typed.err != nil {
			return m, m.setTransientStatus("Error: "+typed.err.Error(), true)
		}
		m.lastReportPath = typed.path
		m.lastReportAt = time.Now()
		return m, m.setTransientStatus("PDF saved: "+typed.path, false)

	case statusClearMsg:
		// A newer message re-arms the timer with a higher seq; an old timer
		// firing must not wipe it.
		if typed.seq == m.statusSeq {
			m.statusMessage = ""
			m.statusIsError = false
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(typed)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Modals are strictly modal: while one is open it is the only
	// interactive surface.
	if m.evidence != nil {
		if key == "ctrl+c" {
			return m, tea.Quit
		}
		return HandleEvidenceKey(m, key)
	}
	if m.fileSelect != nil {
		if key == "ctrl+c" {
			return m, tea.Quit
		}
		return HandleFileSelectKey(m, msg)
	}

	switch key {
	case "ctrl+c":
		return m, tea.Quit
	case "ctrl+n":
		if m.page == PageDashboard {
			m.navigate("reports")
		} else {
			m.navigate("dashboard")
		}
		return m, nil
	case "ctrl+p":
		return m.startExport()
	}

	if m.page == PageReports {
		return m, nil
	}

	switch key {
	case "tab":
		if m.activePane == PaneInput {
			m.activePane = PaneResults
			m.input.Blur()
		} else {
			m.activePane = PaneInput
			m.input.Focus()
		}
		return m, nil
	case "ctrl+r":
		return m.startTextSubmission()
	case "ctrl+f":
		form := NewFileSelectForm()
		form.SetSize(m.windowWidth, m.windowHeight)
		m.fileSelect = &form
		return m, nil
	case "ctrl+l":
		m.input.SetValue(sample.Text())
		m.store.SetInputText(sample.Text())
		return m, nil
	case "ctrl+j":
		m.jurisdiction = nextJurisdiction(m.jurisdiction)
		return m, m.setTransientStatus("Switched to "+jurisdictionLabel(m.jurisdiction), false)
	}

	if m.activePane == PaneResults {
		return m.handleResultsKey(key)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.store.SetInputText(m.input.Value())
	return m, cmd
}

// handleResultsKey moves the evidence cursor among FAIL rows only; rows with
// any other status are never interactively linked.
func (m Model) handleResultsKey(key string) (tea.Model, tea.Cmd) {
	rows := m.failRows()
	if len(rows) == 0 {
		return m, nil
	}
	switch key {
	case "up", "k":
		if m.failCursor > 0 {
			m.failCursor--
		}
		return m, nil
	case "down", "j":
		if m.failCursor < len(rows)-1 {
			m.failCursor++
		}
		return m, nil
	case "enter", " ":
		check := rows[m.failCursor].Name
		m.evidence = OpenEvidence(m.store, check)
		return m, nil
	}
	return m, nil
}

// failRows returns the breakdown rows that carry an evidence link, in input
// order.
func (m Model) failRows() []assessment.Check {
	res := m.store.Result()
	if res == nil {
		return nil
	}
	var rows []assessment.Check
	for _, c := range res.Breakdown {
		if assessment.HasEvidence(c) {
			rows = append(rows, c)
		}
	}
	return rows
}

func (m Model) startTextSubmission() (tea.Model, tea.Cmd) {
	text := m.input.Value()
	m.store.SetInputText(text)

	token := m.store.Begin()
	m.submitting = true
	m.submitLabel = "Running..."
	m.scoreKnown = false
	m.failCursor = 0
	// The in-progress indicator is part of this same update, so it renders
	// before the network command resolves.
	return m, tea.Batch(scoreTextCmd(m.service, token, text), spinnerTickCmd())
}

func (m Model) startFileSubmission(paths []string) (tea.Model, tea.Cmd) {
	if len(paths) == 0 {
		// Validation failure: no token consumed, no network call issued.
		return m, m.setTransientStatus("Error: Please choose one or more files", true)
	}

	token := m.store.Begin()
	m.submitting = true
	m.submitLabel = "Uploading & analyzing..."
	m.scoreKnown = false
	m.failCursor = 0
	return m, tea.Batch(scoreFilesCmd(m.service, token, paths), spinnerTickCmd())
}

func (m Model) handleAssessmentDone(msg assessmentDoneMsg) (tea.Model, tea.Cmd) {
	// Only the latest issued submission may land; earlier in-flight runs are
	// discarded wholesale rather than blended into the display.
	if msg.token != m.store.Current() {
		return m, nil
	}

	m.submitting = false
	m.submitLabel = ""

	if msg.err != nil {
		m.scoreKnown = false
		return m, m.setTransientStatus("Error: "+msg.err.Error(), true)
	}

	m.store.Apply(msg.token, msg.result)
	m.scoreKnown = true
	m.failCursor = 0
	if msg.fromFiles {
		m.input.SetValue("")
		m.store.SetInputText("")
	}

	return m, tea.Batch(
		loadRegTextsCmd(m.service, msg.token),
		m.setTransientStatus("Done", false),
	)
}

func (m Model) startExport() (tea.Model, tea.Cmd) {
	payload, ok := m.store.ReportPayload()
	if !ok {
		return m, m.setTransientStatus("Error: "+report.ErrNoPayload.Error(), true)
	}
	m.exporting = true
	return m, tea.Batch(exportReportCmd(m.service, payload, m.cfg.Report.OutputDir), spinnerTickCmd())
}

// setTransientStatus sets the status line and arms a sequence-stamped clear
// timer. Setting a newer message invalidates any pending clear.
func (m *Model) setTransientStatus(message string, isError bool) tea.Cmd {
	m.statusMessage = message
	m.statusIsError = isError
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(statusClearAfter, func(time.Time) tea.Msg {
		return statusClearMsg{seq: seq}
	})
}

// navigate swaps the visible page. Unknown keys are rejected outright so the
// page and the nav highlight can never diverge.
func (m *Model) navigate(pageKey string) bool {
	switch pageKey {
	case "dashboard":
		m.page = PageDashboard
	case "reports":
		m.page = PageReports
	default:
		return false
	}
	return true
}

func (m *Model) resizeInput() {
	width := m.windowWidth - 6
	if width < 40 {
		width = 40
	}
	if width > 120 {
		width = 120
	}
	m.input.SetWidth(width)

	height := m.windowHeight / 4
	if height < 4 {
		height = 4
	}
	if height > 10 {
		height = 10
	}
	m.input.SetHeight(height)
}

func nextJurisdiction(current string) string {
	switch current {
	case config.JurisdictionQatar:
		return config.JurisdictionUAE
	case config.JurisdictionUAE:
		return config.JurisdictionSaudi
	default:
		return config.JurisdictionQatar
	}
}

func jurisdictionLabel(j string) string {
	switch j {
	case config.JurisdictionQatar:
		return "QDB Regulatory Readiness Evaluator"
	case config.JurisdictionUAE:
		return "UAE Regulatory Readiness Evaluator"
	case config.JurisdictionSaudi:
		return "Saudi Arabia Regulatory Readiness Evaluator"
	default:
		return "Regulatory Readiness Evaluator"
	}
}

func (m Model) View() string {
	var content string
	if m.page == PageReports {
		content = RenderReportsView(m)
	} else {
		content = RenderDashboardView(m)
	}

	if m.fileSelect != nil {
		if modal := RenderFileSelectModal(m, *m.fileSelect); modal != "" {
			content = modal
		}
	}
	if m.evidence != nil {
		if modal := RenderEvidenceModal(m, *m.evidence); modal != "" {
			content = modal
		}
	}

	if m.windowHeight > 1 {
		return content + "\n" + RenderBottomBar(m)
	}
	return content
}
