package report

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nmansour/regnav/internal/api"
	"github.com/nmansour/regnav/internal/assessment"
)

type stubGenerator struct {
	got api.ReportRequest
	pdf []byte
	err error
}

func (g *stubGenerator) Report(_ context.Context, req api.ReportRequest) ([]byte, error) {
	g.got = req
	return g.pdf, g.err
}

func TestBuildRequestPriority(t *testing.T) {
	result := &assessment.Result{ReadinessScore: 70}

	tests := []struct {
		name    string
		payload Payload
		check   func(t *testing.T, req api.ReportRequest)
	}{
		{
			name:    "id wins over everything",
			payload: Payload{AssessmentID: "a-1", Documents: "docs", Result: result},
			check: func(t *testing.T, req api.ReportRequest) {
				if req.AssessmentID != "a-1" || req.Documents != "" || req.Result != nil {
					t.Fatalf("unexpected request: %+v", req)
				}
			},
		},
		{
			name:    "documents second",
			payload: Payload{Documents: "docs", Result: result},
			check: func(t *testing.T, req api.ReportRequest) {
				if req.Documents != "docs" || req.AssessmentID != "" || req.Result != nil {
					t.Fatalf("unexpected request: %+v", req)
				}
			},
		},
		{
			name:    "cached result last",
			payload: Payload{Result: result},
			check: func(t *testing.T, req api.ReportRequest) {
				if req.Result == nil || req.AssessmentID != "" || req.Documents != "" {
					t.Fatalf("unexpected request: %+v", req)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := buildRequest(tt.payload)
			if err != nil {
				t.Fatalf("buildRequest: %v", err)
			}
			tt.check(t, req)
		})
	}
}

func TestBuildRequestEmptyPayload(t *testing.T) {
	_, err := buildRequest(Payload{})
	if !errors.Is(err, ErrNoPayload) {
		t.Fatalf("expected ErrNoPayload, got %v", err)
	}
}

func TestMarshalResultUsesWireFieldNames(t *testing.T) {
	raw, err := marshalResult(assessment.Result{
		ReadinessScore: 70,
		AssessmentID:   "a-1",
		Breakdown: []assessment.Check{
			{Name: "Capital Shortfall", Status: "FAIL", Weight: 30, Contribution: 0},
		},
		Recommendations: []assessment.Recommendation{
			{Gap: "Capital Shortfall", Resources: []assessment.Resource{{Title: "Growth Program"}}},
		},
	})
	if err != nil {
		t.Fatalf("marshalResult: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"readiness_score", "assessment_id", "score_breakdown", "recommendations"} {
		if _, ok := decoded[key]; !ok {
			t.Fatalf("missing wire key %q in %s", key, raw)
		}
	}
	rows := decoded["score_breakdown"].([]any)
	row := rows[0].(map[string]any)
	if row["check"] != "Capital Shortfall" || row["score_contribution"] != float64(0) {
		t.Fatalf("unexpected row: %+v", row)
	}
}

func TestExportWritesFixedFileName(t *testing.T) {
	dir := t.TempDir()
	gen := &stubGenerator{pdf: []byte("%PDF-1.4 fake")}

	path, err := Export(context.Background(), gen, Payload{AssessmentID: "a-1"}, dir)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if path != filepath.Join(dir, FileName) {
		t.Fatalf("unexpected path %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read saved report: %v", err)
	}
	if string(data) != "%PDF-1.4 fake" {
		t.Fatalf("unexpected contents %q", data)
	}
}

func TestExportFailureLeavesPreviousReport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte("previous"), 0o644); err != nil {
		t.Fatal(err)
	}

	gen := &stubGenerator{err: errors.New("service down")}
	if _, err := Export(context.Background(), gen, Payload{AssessmentID: "a-1"}, dir); err == nil {
		t.Fatal("expected export error")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "previous" {
		t.Fatalf("previous report was clobbered: %q", data)
	}
}
