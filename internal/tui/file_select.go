package tui

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	fileSelectMaxResults   = 200
	fileSelectDisplayLimit = 10
	fileSelectMaxDepth     = 6
)

// FileSelectForm is the file-mode submission picker: a query input over a
// walk of the working directory, with multi-select.
type FileSelectForm struct {
	query    textinput.Model
	matches  []string
	selected map[string]bool
	cursor   int
	width    int
	height   int
	walkErr  error
}

func NewFileSelectForm() FileSelectForm {
	ti := textinput.New()
	ti.Placeholder = "Filter files..."
	ti.CharLimit = 200
	ti.Width = 50
	ti.Focus()

	f := FileSelectForm{
		query:    ti,
		selected: map[string]bool{},
		width:    70,
		height:   25,
	}
	f.refreshMatches()
	return f
}

func (f *FileSelectForm) SetSize(width, height int) {
	f.width = width
	f.height = height

	inputWidth := width - 10
	if inputWidth > 80 {
		inputWidth = 80
	}
	if inputWidth < 40 {
		inputWidth = 40
	}
	f.query.Width = inputWidth
}

// refreshMatches rewalks the working directory filtered by the current query.
// Hidden directories are skipped; the walk is capped so huge trees stay cheap.
func (f *FileSelectForm) refreshMatches() {
	f.matches, f.walkErr = listFiles(".", f.query.Value())
	if f.cursor >= len(f.matches) {
		f.cursor = len(f.matches) - 1
	}
	if f.cursor < 0 {
		f.cursor = 0
	}
}

func listFiles(root string, query string) ([]string, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	var out []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		if rel == "." {
			return nil
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			if strings.Count(rel, string(os.PathSeparator)) >= fileSelectMaxDepth {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		if query != "" && !strings.Contains(strings.ToLower(rel), query) {
			return nil
		}
		out = append(out, rel)
		if len(out) >= fileSelectMaxResults {
			return filepath.SkipAll
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(out)
	return out, nil
}

// SelectedPaths returns the chosen files in stable (sorted) order.
func (f FileSelectForm) SelectedPaths() []string {
	var out []string
	for path, on := range f.selected {
		if on {
			out = append(out, path)
		}
	}
	sort.Strings(out)
	return out
}

// HandleFileSelectKey handles keys while the picker is open. Enter submits
// the selection; zero selected files fails fast locally, before any network
// call.
func HandleFileSelectKey(m Model, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	form := m.fileSelect

	switch msg.String() {
	case "esc":
		m.fileSelect = nil
		return m, nil
	case "up":
		if form.cursor > 0 {
			form.cursor--
		}
		return m, nil
	case "down":
		if form.cursor < len(form.matches)-1 {
			form.cursor++
		}
		return m, nil
	case "tab":
		if form.cursor >= 0 && form.cursor < len(form.matches) {
			path := form.matches[form.cursor]
			form.selected[path] = !form.selected[path]
		}
		return m, nil
	case "enter":
		paths := form.SelectedPaths()
		m.fileSelect = nil
		return m.startFileSubmission(paths)
	}

	var cmd tea.Cmd
	form.query, cmd = form.query.Update(msg)
	form.refreshMatches()
	return m, cmd
}

func RenderFileSelectModal(m Model, form FileSelectForm) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69"))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	cursorStyle := lipgloss.NewStyle().Background(lipgloss.Color("69")).Foreground(lipgloss.Color("15"))
	selectedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

	lines := []string{
		titleStyle.Render("Choose files to assess"),
		"",
		form.query.View(),
		"",
	}

	if len(form.matches) == 0 {
		lines = append(lines, helpStyle.Render("(no matching files)"))
	}

	start := 0
	if form.cursor >= fileSelectDisplayLimit {
		start = form.cursor - fileSelectDisplayLimit + 1
	}
	end := start + fileSelectDisplayLimit
	if end > len(form.matches) {
		end = len(form.matches)
	}

	for i := start; i < end; i++ {
		path := form.matches[i]
		mark := "[ ] "
		if form.selected[path] {
			mark = "[x] "
		}
		line := mark + path
		switch {
		case i == form.cursor:
			lines = append(lines, cursorStyle.Render(line))
		case form.selected[path]:
			lines = append(lines, selectedStyle.Render(line))
		default:
			lines = append(lines, line)
		}
	}

	lines = append(lines, "",
		helpStyle.Render(fmt.Sprintf("%d selected • ↑/↓: move • tab: toggle • enter: assess • esc: cancel", len(form.SelectedPaths()))))

	modalWidth := 70
	if m.windowWidth > 0 && m.windowWidth < modalWidth+4 {
		modalWidth = m.windowWidth - 4
	}

	modalStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("69")).
		Padding(1, 2).
		Width(modalWidth)

	modal := modalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))

	if m.windowHeight > 0 {
		topPadding := (m.windowHeight - lipgloss.Height(modal)) / 2
		if topPadding > 0 {
			return lipgloss.NewStyle().PaddingTop(topPadding).Render(modal)
		}
	}
	return modal
}
