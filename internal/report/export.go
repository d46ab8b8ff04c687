// Package report drives PDF export: it selects the cheapest identifying
// payload for the report service and saves the returned bytes under a fixed
// file name.
package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/nmansour/regnav/internal/api"
	"github.com/nmansour/regnav/internal/assessment"
)

// FileName is the fixed name of the saved report.
const FileName = "readiness_report.pdf"

// ErrNoPayload means no assessment has completed and no input text exists, so
// there is nothing to report on.
var ErrNoPayload = errors.New("nothing to export: run an assessment first")

// Payload identifies the assessment to report on. Exactly one field is set;
// the wire contract rejects requests carrying more than one.
type Payload struct {
	AssessmentID string
	Documents    string
	Result       *assessment.Result
}

// Generator is the slice of the api client the exporter needs.
type Generator interface {
	Report(ctx context.Context, req api.ReportRequest) ([]byte, error)
}

// Export requests the PDF and writes it to dir under FileName. The write is
// atomic; on any failure a previously saved report is left untouched. Returns
// the saved path.
func Export(ctx context.Context, gen Generator, p Payload, dir string) (string, error) {
	req, err := buildRequest(p)
	if err != nil {
		return "", err
	}

	pdf, err := gen.Report(ctx, req)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, FileName)
	if err := atomicWriteFile(path, pdf, 0o644); err != nil {
		return "", fmt.Errorf("save report: %w", err)
	}
	return path, nil
}

func buildRequest(p Payload) (api.ReportRequest, error) {
	switch {
	case p.AssessmentID != "":
		return api.ReportRequest{AssessmentID: p.AssessmentID}, nil
	case p.Documents != "":
		return api.ReportRequest{Documents: p.Documents}, nil
	case p.Result != nil:
		raw, err := marshalResult(*p.Result)
		if err != nil {
			return api.ReportRequest{}, err
		}
		return api.ReportRequest{Result: raw}, nil
	default:
		return api.ReportRequest{}, ErrNoPayload
	}
}

// marshalResult re-encodes the in-memory result in the service's own field
// names so the report template sees the shape it produced.
func marshalResult(r assessment.Result) (json.RawMessage, error) {
	type wireResource struct {
		Title   string `json:"title"`
		Type    string `json:"type,omitempty"`
		Contact string `json:"contact,omitempty"`
	}
	type wireRecommendation struct {
		Gap       string         `json:"gap"`
		Resources []wireResource `json:"resources"`
	}
	type wireCheck struct {
		Check             string  `json:"check"`
		Status            string  `json:"status"`
		Weight            float64 `json:"weight"`
		ScoreContribution float64 `json:"score_contribution"`
	}

	out := struct {
		ReadinessScore  float64              `json:"readiness_score"`
		AssessmentID    string               `json:"assessment_id,omitempty"`
		ScoreBreakdown  []wireCheck          `json:"score_breakdown"`
		Recommendations []wireRecommendation `json:"recommendations"`
	}{
		ReadinessScore: r.ReadinessScore,
		AssessmentID:   r.AssessmentID,
	}
	for _, c := range r.Breakdown {
		out.ScoreBreakdown = append(out.ScoreBreakdown, wireCheck{
			Check:             c.Name,
			Status:            c.Status,
			Weight:            c.Weight,
			ScoreContribution: c.Contribution,
		})
	}
	for _, rec := range r.Recommendations {
		wr := wireRecommendation{Gap: rec.Gap}
		for _, res := range rec.Resources {
			wr.Resources = append(wr.Resources, wireResource{
				Title:   res.Title,
				Type:    res.Type,
				Contact: res.Contact,
			})
		}
		out.Recommendations = append(out.Recommendations, wr)
	}

	raw, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("encode result payload: %w", err)
	}
	return raw, nil
}
