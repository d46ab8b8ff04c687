package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/nmansour/regnav/internal/assessment"
	"github.com/nmansour/regnav/internal/config"
	"github.com/nmansour/regnav/internal/sample"
)

func runAssess(cfg config.ResolvedConfig, args []string) error {
	fs := flag.NewFlagSet("assess", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	text := fs.String("text", "", "document text to assess")
	useSample := fs.Bool("sample", false, "assess the bundled sample document")
	if err := fs.Parse(args); err != nil {
		return UsageError{Message: err.Error()}
	}

	files := fs.Args()
	// An explicitly passed empty --text is a legal submission, so presence is
	// tracked instead of comparing against the zero value.
	textSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "text" {
			textSet = true
		}
	})
	textMode := textSet || *useSample
	if textMode && len(files) > 0 {
		return UsageError{Message: "assess takes either --text/--sample or files, not both"}
	}
	if !textMode && len(files) == 0 {
		return UsageError{Message: "assess requires --text, --sample, or at least one file"}
	}

	client := newClient(cfg)
	ctx := context.Background()

	var result assessment.Result
	var err error
	if textMode {
		documents := *text
		if *useSample {
			documents = sample.Text()
		}
		result, err = client.ScoreText(ctx, documents)
	} else {
		result, err = client.ScoreFiles(ctx, files)
	}
	if err != nil {
		return err
	}

	printResult(os.Stdout, result)
	return nil
}

func printResult(w io.Writer, result assessment.Result) {
	fmt.Fprintf(w, "Readiness score: %s (%s)\n",
		strconv.FormatFloat(result.ReadinessScore, 'f', -1, 64),
		bandLabel(assessment.ScoreBand(result.ReadinessScore)))
	if result.AssessmentID != "" {
		fmt.Fprintf(w, "Assessment id: %s\n", result.AssessmentID)
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CHECK\tSTATUS\tWEIGHT\tSCORE")
	for _, c := range result.Breakdown {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\n",
			c.Name, c.Status, int(math.Round(c.Weight)), int(math.Round(c.Contribution)))
	}
	tw.Flush()

	fmt.Fprintf(w, "\nPassed checks: %d\nFailed checks: %d\n", result.PassedCount(), result.FailedCount())

	fmt.Fprintln(w)
	if len(result.Recommendations) == 0 {
		fmt.Fprintln(w, "No recommendations found.")
		return
	}
	for _, rec := range result.Recommendations {
		fmt.Fprintf(w, "%s\n", rec.Gap)
		if len(rec.Resources) == 0 {
			fmt.Fprintln(w, "  No resource matches in the mapping file.")
			continue
		}
		for _, r := range rec.Resources {
			contact := r.Contact
			if r.ContactKind == assessment.ContactNone {
				contact = "no link/contact"
			}
			if r.Type != "" {
				fmt.Fprintf(w, "  - %s [%s] — %s\n", r.Title, r.Type, contact)
			} else {
				fmt.Fprintf(w, "  - %s — %s\n", r.Title, contact)
			}
		}
	}
}

func bandLabel(b assessment.Band) string {
	switch b {
	case assessment.BandHigh:
		return "high"
	case assessment.BandMid:
		return "mid"
	default:
		return "low"
	}
}
