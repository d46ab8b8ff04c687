package assessment

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// wireResult mirrors the scoring service's response body. Fields the client
// does not consume (extracted_data, failed_gaps) are ignored on decode.
// The score stays raw at this layer: the service does not guarantee a JSON
// number, and a bad score must not sink the rest of the result.
type wireResult struct {
	ReadinessScore  json.RawMessage      `json:"readiness_score"`
	AssessmentID    string               `json:"assessment_id"`
	ScoreBreakdown  []wireCheck          `json:"score_breakdown"`
	Recommendations []wireRecommendation `json:"recommendations"`
}

type wireCheck struct {
	Check             string  `json:"check"`
	Status            string  `json:"status"`
	Weight            float64 `json:"weight"`
	ScoreContribution float64 `json:"score_contribution"`
}

type wireRecommendation struct {
	Gap       string         `json:"gap"`
	Resources []wireResource `json:"resources"`
}

// wireResource accepts both naming variants the service has been observed to
// emit: title|name for the label, link|contact for the contact surface.
type wireResource struct {
	Title   string `json:"title"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Link    string `json:"link"`
	Contact string `json:"contact"`
}

// Decode parses a raw service response and normalizes it into the canonical
// Result shape. Decoding is total over structurally valid JSON: a result with
// no breakdown or no recommendations is legal.
func Decode(data []byte) (Result, error) {
	var w wireResult
	if err := json.Unmarshal(data, &w); err != nil {
		return Result{}, fmt.Errorf("decode assessment result: %w", err)
	}
	return normalize(w), nil
}

func normalize(w wireResult) Result {
	out := Result{
		ReadinessScore: coerceScore(w.ReadinessScore),
		AssessmentID:   w.AssessmentID,
	}
	for _, c := range w.ScoreBreakdown {
		out.Breakdown = append(out.Breakdown, Check{
			Name:         c.Check,
			Status:       c.Status,
			Weight:       c.Weight,
			Contribution: c.ScoreContribution,
		})
	}
	for _, rec := range w.Recommendations {
		nr := Recommendation{Gap: rec.Gap}
		for _, res := range rec.Resources {
			nr.Resources = append(nr.Resources, normalizeResource(res))
		}
		out.Recommendations = append(out.Recommendations, nr)
	}
	return out
}

// coerceScore turns the raw score field into a float. Accepts a JSON number
// or a numeric string; anything non-coercible renders as 0 on the gauge while
// the breakdown still paints.
func coerceScore(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return 0
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		if v, err := n.Float64(); err == nil {
			return v
		}
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return v
		}
	}
	return 0
}

// normalizeResource resolves the field unions once. Canonical precedence for
// the contact surface is link before contact.
func normalizeResource(w wireResource) Resource {
	title := w.Title
	if title == "" {
		title = w.Name
	}
	if title == "" {
		title = "Resource"
	}

	contact := w.Link
	if contact == "" {
		contact = w.Contact
	}

	return Resource{
		Title:       title,
		Type:        w.Type,
		Contact:     contact,
		ContactKind: classifyContact(contact),
	}
}

func classifyContact(value string) ContactKind {
	switch {
	case value == "":
		return ContactNone
	case strings.Contains(value, "@"):
		return ContactEmail
	case strings.HasPrefix(value, "http://"), strings.HasPrefix(value, "https://"):
		return ContactURL
	default:
		return ContactPlain
	}
}
