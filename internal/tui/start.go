package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nmansour/regnav/internal/config"
	"github.com/nmansour/regnav/internal/session"
)

func Start(store *session.Store, service Service, cfg config.ResolvedConfig) error {
	model := NewModel(store, service, cfg)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
