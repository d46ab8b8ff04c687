// Package cli is the command surface of regnav. The bare command launches
// the interactive client; subcommands cover one-shot assessment, report
// export and a service health probe.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/nmansour/regnav/internal/api"
	"github.com/nmansour/regnav/internal/config"
	"github.com/nmansour/regnav/internal/session"
	"github.com/nmansour/regnav/internal/tui"
)

type UsageError struct {
	Message string
}

func (e UsageError) Error() string { return e.Message }

func Usage() string {
	return `regnav: regulatory readiness evaluation client

Usage:
  regnav [tui]
  regnav assess [--text <doc> | --sample | <file>...]
  regnav report [--out <dir>] [--from <result.json>]
  regnav status

Configuration:
  ~/.regnav/config.json, overridden per key by ./.regnav/config.json
`
}

func Run(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return runTUI(cfg)
	}

	switch args[0] {
	case "help", "-h", "--help":
		fmt.Fprintln(os.Stdout, Usage())
		return nil
	case "tui":
		if len(args) != 1 {
			return UsageError{Message: "tui takes no arguments"}
		}
		return runTUI(cfg)
	case "assess":
		return runAssess(cfg, args[1:])
	case "report":
		return runReport(cfg, args[1:])
	case "status":
		if len(args) != 1 {
			return UsageError{Message: "status takes no arguments"}
		}
		return runStatus(cfg)
	default:
		return UsageError{Message: fmt.Sprintf("unknown command: %q", args[0])}
	}
}

func loadConfig() (config.ResolvedConfig, error) {
	wd, err := os.Getwd()
	if err != nil {
		wd = ""
	}
	return config.LoadConfig(wd)
}

func newClient(cfg config.ResolvedConfig) *api.Client {
	return api.New(cfg.Service.URL, time.Duration(cfg.Service.RequestTimeoutSeconds)*time.Second)
}

func runTUI(cfg config.ResolvedConfig) error {
	return tui.Start(session.New(), newClient(cfg), cfg)
}
