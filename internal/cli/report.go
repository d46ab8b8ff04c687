package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/nmansour/regnav/internal/assessment"
	"github.com/nmansour/regnav/internal/config"
	"github.com/nmansour/regnav/internal/report"
)

// runReport exports a PDF outside the interactive session. With no session
// state to draw on, the payload comes from a saved result file; its embedded
// assessment id is preferred, else the full result is resubmitted.
func runReport(cfg config.ResolvedConfig, args []string) error {
	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	out := fs.String("out", cfg.Report.OutputDir, "directory to write the report into")
	from := fs.String("from", "", "path to a saved assessment result (JSON)")
	if err := fs.Parse(args); err != nil {
		return UsageError{Message: err.Error()}
	}
	if fs.NArg() != 0 {
		return UsageError{Message: "report takes no positional arguments"}
	}
	if *from == "" {
		return UsageError{Message: "report requires --from <result.json> (or use the interactive client)"}
	}

	data, err := os.ReadFile(*from)
	if err != nil {
		return fmt.Errorf("read result file: %w", err)
	}
	result, err := assessment.Decode(data)
	if err != nil {
		return err
	}

	payload := report.Payload{Result: &result}
	if result.AssessmentID != "" {
		payload = report.Payload{AssessmentID: result.AssessmentID}
	}

	path, err := report.Export(context.Background(), newClient(cfg), payload, *out)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "saved %s\n", path)
	return nil
}

func runStatus(cfg config.ResolvedConfig) error {
	status, err := newClient(cfg).ServiceStatus(context.Background())
	if err != nil {
		return fmt.Errorf("scoring service unreachable: %w", err)
	}
	fmt.Fprintf(os.Stdout, "%s\n", status)
	return nil
}
