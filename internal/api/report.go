package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// ReportRequest is the body for report generation. Exactly one field must be
// set; the service rejects ambiguous requests, so the exporter enforces the
// selection before this type is ever built.
type ReportRequest struct {
	AssessmentID string          `json:"assessment_id,omitempty"`
	Documents    string          `json:"documents,omitempty"`
	Result       json.RawMessage `json:"result,omitempty"`
}

func (r ReportRequest) populated() int {
	n := 0
	if r.AssessmentID != "" {
		n++
	}
	if r.Documents != "" {
		n++
	}
	if len(r.Result) > 0 {
		n++
	}
	return n
}

// Report requests a rendered PDF and returns its bytes.
func (c *Client) Report(ctx context.Context, reqBody ReportRequest) ([]byte, error) {
	if n := reqBody.populated(); n != 1 {
		return nil, fmt.Errorf("report request must carry exactly one payload field, got %d", n)
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("encode report request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+reportPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build report request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ServerError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	pdf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read report response: %w", err)
	}
	return pdf, nil
}
