// Package api is the HTTP client for the remote scoring service. The service
// owns document parsing, scoring and recommendation matching; this client only
// moves payloads and decodes responses.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nmansour/regnav/internal/assessment"
)

const (
	scorecardPath       = "/api/scorecard"
	scorecardUploadPath = "/api/scorecard_upload"
	regulationTextsPath = "/api/regulation_texts"
	reportPath          = "/api/report"
	statusPath          = "/api/status"
)

// ServerError marks a non-2xx response from the scoring service. It is a hard
// failure: the caller resets the score display to the unknown placeholder.
type ServerError struct {
	StatusCode int
	Status     string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server returned %s", e.Status)
}

type Client struct {
	baseURL string
	httpc   *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
	}
}

// ScoreText submits pasted document text for assessment. An empty string is a
// legal request and is sent as-is; review is the service's job.
func (c *Client) ScoreText(ctx context.Context, documents string) (assessment.Result, error) {
	body, err := json.Marshal(map[string]string{"documents": documents})
	if err != nil {
		return assessment.Result{}, fmt.Errorf("encode scorecard request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+scorecardPath, bytes.NewReader(body))
	if err != nil {
		return assessment.Result{}, fmt.Errorf("build scorecard request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.doScore(req)
}

// ScoreFiles submits one or more files for assessment as a multipart upload.
// All parts share the form key "files". The caller validates non-emptiness
// before any network work happens.
func (c *Client) ScoreFiles(ctx context.Context, paths []string) (assessment.Result, error) {
	if len(paths) == 0 {
		return assessment.Result{}, fmt.Errorf("no files to upload")
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, path := range paths {
		if err := appendFilePart(mw, path); err != nil {
			return assessment.Result{}, err
		}
	}
	if err := mw.Close(); err != nil {
		return assessment.Result{}, fmt.Errorf("finalize upload body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+scorecardUploadPath, &buf)
	if err != nil {
		return assessment.Result{}, fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return c.doScore(req)
}

func appendFilePart(mw *multipart.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	part, err := mw.CreateFormFile("files", filepath.Base(path))
	if err != nil {
		return fmt.Errorf("create form part for %s: %w", path, err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}

func (c *Client) doScore(req *http.Request) (assessment.Result, error) {
	resp, err := c.httpc.Do(req)
	if err != nil {
		return assessment.Result{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return assessment.Result{}, &ServerError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return assessment.Result{}, fmt.Errorf("read scorecard response: %w", err)
	}
	return assessment.Decode(data)
}

// RegulationTexts fetches the article id to article text mapping. Callers are
// expected to treat any failure as "texts not available"; the best-effort
// wrapper lives in package regtext.
func (c *Client) RegulationTexts(ctx context.Context) (map[string]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+regulationTextsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("build regulation texts request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ServerError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	var texts map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&texts); err != nil {
		return nil, fmt.Errorf("decode regulation texts: %w", err)
	}
	return texts, nil
}

// ServiceStatus probes the service health endpoint and returns its status
// string.
func (c *Client) ServiceStatus(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+statusPath, nil)
	if err != nil {
		return "", fmt.Errorf("build status request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &ServerError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	var body struct {
		Status  string `json:"status"`
		Version string `json:"version"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode status response: %w", err)
	}
	if body.Version != "" {
		return fmt.Sprintf("%s (%s)", body.Status, body.Version), nil
	}
	return body.Status, nil
}
