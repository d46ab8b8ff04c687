package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

const resultBody = `{
	"readiness_score": 45,
	"assessment_id": "a-1",
	"score_breakdown": [
		{"check": "Capital Shortfall", "status": "FAIL", "weight": 30, "score_contribution": 0}
	],
	"recommendations": []
}`

func TestScoreTextSendsDocumentsField(t *testing.T) {
	var gotPath string
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		io.WriteString(w, resultBody)
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	result, err := c.ScoreText(context.Background(), "")
	if err != nil {
		t.Fatalf("ScoreText: %v", err)
	}
	if gotPath != "/api/scorecard" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if v, ok := gotBody["documents"]; !ok || v != "" {
		t.Fatalf("empty text must still be sent as documents field, got %v", gotBody)
	}
	if result.ReadinessScore != 45 || result.AssessmentID != "a-1" {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestScoreTextServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	_, err := c.ScoreText(context.Background(), "docs")
	var serr *ServerError
	if !errors.As(err, &serr) {
		t.Fatalf("expected ServerError, got %v", err)
	}
	if serr.StatusCode != http.StatusInternalServerError {
		t.Fatalf("unexpected status code %d", serr.StatusCode)
	}
}

func TestScoreFilesMultipartUpload(t *testing.T) {
	dir := t.TempDir()
	pathA := filepath.Join(dir, "a.txt")
	pathB := filepath.Join(dir, "b.txt")
	if err := os.WriteFile(pathA, []byte("alpha"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(pathB, []byte("beta"), 0o644); err != nil {
		t.Fatal(err)
	}

	var gotNames []string
	var gotContents []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/scorecard_upload" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		for _, fh := range r.MultipartForm.File["files"] {
			gotNames = append(gotNames, fh.Filename)
			f, err := fh.Open()
			if err != nil {
				t.Errorf("open part: %v", err)
				continue
			}
			data, _ := io.ReadAll(f)
			f.Close()
			gotContents = append(gotContents, string(data))
		}
		io.WriteString(w, resultBody)
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	if _, err := c.ScoreFiles(context.Background(), []string{pathA, pathB}); err != nil {
		t.Fatalf("ScoreFiles: %v", err)
	}
	if len(gotNames) != 2 || gotNames[0] != "a.txt" || gotNames[1] != "b.txt" {
		t.Fatalf("unexpected part names %v", gotNames)
	}
	if gotContents[0] != "alpha" || gotContents[1] != "beta" {
		t.Fatalf("unexpected part contents %v", gotContents)
	}
}

func TestScoreFilesMissingFile(t *testing.T) {
	c := New("http://unused", 5*time.Second)
	if _, err := c.ScoreFiles(context.Background(), []string{"/does/not/exist.txt"}); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestRegulationTexts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/regulation_texts" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		io.WriteString(w, `{"1.2.2": "Minimum capital requirements apply."}`)
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	texts, err := c.RegulationTexts(context.Background())
	if err != nil {
		t.Fatalf("RegulationTexts: %v", err)
	}
	if texts["1.2.2"] != "Minimum capital requirements apply." {
		t.Fatalf("unexpected texts %v", texts)
	}
}

func TestReportRequiresExactlyOneField(t *testing.T) {
	c := New("http://unused", 5*time.Second)

	if _, err := c.Report(context.Background(), ReportRequest{}); err == nil {
		t.Fatal("expected error for empty request")
	}
	req := ReportRequest{AssessmentID: "a-1", Documents: "docs"}
	if _, err := c.Report(context.Background(), req); err == nil {
		t.Fatal("expected error for ambiguous request")
	}
}

func TestReportReturnsPDFBytes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/report" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		var body ReportRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if body.AssessmentID != "a-1" {
			t.Errorf("unexpected request body %+v", body)
		}
		w.Header().Set("Content-Type", "application/pdf")
		io.WriteString(w, "%PDF-1.4 fake")
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	pdf, err := c.Report(context.Background(), ReportRequest{AssessmentID: "a-1"})
	if err != nil {
		t.Fatalf("Report: %v", err)
	}
	if string(pdf) != "%PDF-1.4 fake" {
		t.Fatalf("unexpected pdf bytes %q", pdf)
	}
}

func TestServiceStatusFormatsVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"status": "ok", "version": "1.3.0"}`)
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	status, err := c.ServiceStatus(context.Background())
	if err != nil {
		t.Fatalf("ServiceStatus: %v", err)
	}
	if status != "ok (1.3.0)" {
		t.Fatalf("unexpected status %q", status)
	}
}
