package assessment

import "testing"

func TestArticleForKnownChecks(t *testing.T) {
	tests := []struct {
		check string
		want  string
	}{
		{"Capital Shortfall", "1.2.2"},
		{"Data Residency Failure", "2.1.1"},
		{"Compliance Officer Missing", "2.2.1"},
		{"AML/CFT Policy Gap", "2.2.1"},
		{"Fit & Proper Docs Missing", "1.1.4"},
	}
	for _, tt := range tests {
		got, ok := ArticleFor(tt.check)
		if !ok {
			t.Fatalf("expected article for %q", tt.check)
		}
		if got != tt.want {
			t.Fatalf("ArticleFor(%q) = %q, expected %q", tt.check, got, tt.want)
		}
	}
}

func TestArticleForUnmappedChecks(t *testing.T) {
	for _, check := range []string{"AoA Submission", "Unknown Check"} {
		if _, ok := ArticleFor(check); ok {
			t.Fatalf("expected no article for %q", check)
		}
	}
}

func TestSeverityFor(t *testing.T) {
	tests := []struct {
		check  string
		status string
		want   Severity
	}{
		{"Capital Shortfall", StatusFail, SeverityRed},
		{"Capital Shortfall", StatusPass, SeverityRed},
		{"AML/CFT Policy Gap", StatusFail, SeverityAmber},
		{"AoA Submission", StatusPass, SeverityGreen},
		{"Unknown Check", StatusPass, SeverityGreen},
		{"Unknown Check", StatusFail, SeverityAmber},
		{"Unknown Check", "WARN", SeverityAmber},
	}
	for _, tt := range tests {
		if got := SeverityFor(tt.check, tt.status); got != tt.want {
			t.Fatalf("SeverityFor(%q, %q) = %v, expected %v", tt.check, tt.status, got, tt.want)
		}
	}
}

func TestHasEvidenceOnlyOnExactFail(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{StatusFail, true},
		{StatusPass, false},
		{"fail", false},
		{"WARN", false},
		{"", false},
	}
	for _, tt := range tests {
		c := Check{Name: "Capital Shortfall", Status: tt.status}
		if got := HasEvidence(c); got != tt.want {
			t.Fatalf("HasEvidence(status=%q) = %v, expected %v", tt.status, got, tt.want)
		}
	}
}

func TestParseCatalogRejectsBadSeverity(t *testing.T) {
	_, _, err := parseCatalog([]byte("checks:\n  - name: X\n    severity: purple\n"))
	if err == nil {
		t.Fatal("expected error for unknown severity")
	}
}

func TestParseCatalogRejectsEmptyName(t *testing.T) {
	_, _, err := parseCatalog([]byte("checks:\n  - article: \"1.1.1\"\n    severity: red\n"))
	if err == nil {
		t.Fatal("expected error for entry with empty name")
	}
}
