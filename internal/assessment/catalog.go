package assessment

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Severity is the display color class for a breakdown row.
type Severity string

const (
	SeverityRed   Severity = "red"
	SeverityAmber Severity = "amber"
	SeverityGreen Severity = "green"
)

//go:embed catalog.yaml
var catalogYAML []byte

type catalogEntry struct {
	Name     string   `yaml:"name"`
	Article  string   `yaml:"article"`
	Severity Severity `yaml:"severity"`
}

type catalogFile struct {
	Checks []catalogEntry `yaml:"checks"`
}

var (
	checkToArticle  map[string]string
	checkToSeverity map[string]Severity
)

func init() {
	var err error
	checkToArticle, checkToSeverity, err = parseCatalog(catalogYAML)
	if err != nil {
		panic(err)
	}
}

func parseCatalog(data []byte) (map[string]string, map[string]Severity, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, nil, fmt.Errorf("parse rule catalog: %w", err)
	}
	articles := make(map[string]string, len(f.Checks))
	severities := make(map[string]Severity, len(f.Checks))
	for _, e := range f.Checks {
		if e.Name == "" {
			return nil, nil, fmt.Errorf("parse rule catalog: entry with empty name")
		}
		switch e.Severity {
		case SeverityRed, SeverityAmber, SeverityGreen:
		default:
			return nil, nil, fmt.Errorf("parse rule catalog: %s: unknown severity %q", e.Name, e.Severity)
		}
		if e.Article != "" {
			articles[e.Name] = e.Article
		}
		severities[e.Name] = e.Severity
	}
	return articles, severities, nil
}

// ArticleFor resolves a check name to its regulation article id. The second
// return is false for checks outside the catalog or without a backing article.
func ArticleFor(check string) (string, bool) {
	id, ok := checkToArticle[check]
	return id, ok
}

// SeverityFor resolves a check's display severity. Checks outside the catalog
// fall back on status: PASS is green, anything else amber.
func SeverityFor(check string, status string) Severity {
	if sev, ok := checkToSeverity[check]; ok {
		return sev
	}
	if status == StatusPass {
		return SeverityGreen
	}
	return SeverityAmber
}

// HasEvidence reports whether a breakdown row should be interactively linked.
// Only rows with status exactly FAIL are, regardless of catalog coverage; a
// missing article still resolves to a graceful "not available" message.
func HasEvidence(c Check) bool {
	return c.Status == StatusFail
}
